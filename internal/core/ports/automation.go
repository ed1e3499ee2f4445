package ports

import (
	"context"

	"go.trai.ch/stravex/internal/core/domain"
)

// Element is a transient handle into the target application's live
// accessibility tree. Handles are never cached across steps: the tree mutates
// as dialogs open and close, so callers re-resolve controls every time.
//
// Optional properties return an absent marker instead of failing.
//
//go:generate mockgen -source=automation.go -destination=mocks/mock_automation.go -package=mocks
type Element interface {
	// RuntimeID returns the element identity assigned by the accessibility layer.
	RuntimeID() (string, bool)
	// Role returns the control type of the element.
	Role() domain.Role
	// Name returns the display name of the element.
	Name() (string, bool)
	// AutomationID returns the stable internal identifier, or "" when absent.
	AutomationID() string
	// Value returns the value-pattern value, if the element exposes one.
	Value() (string, bool)
	// Selected reports the selection state, if the element is selectable.
	Selected() (selected bool, ok bool)
	// HasKeyboardFocus reports whether the element currently owns keyboard focus.
	HasKeyboardFocus() bool
	// Exists reports whether the element is still part of the live tree.
	Exists() bool
	// Children returns the direct children of the element.
	Children() ([]Element, error)

	// Click moves the pointer to the element and clicks it.
	Click() error
	// DoubleClick moves the pointer to the element and double-clicks it.
	DoubleClick() error
	// SetFocus gives keyboard focus to the element.
	SetFocus() error
	// CanInvoke reports whether the element exposes an explicit invoke action.
	CanInvoke() bool
	// Invoke triggers the element's default action without pointer input.
	Invoke() error
}

// Desktop is the entry point into the accessibility tree.
type Desktop interface {
	// Root returns the desktop element whose children are top-level windows.
	Root() (Element, error)
}

// AutomationOptions holds per-run collaborators of an automation run.
type AutomationOptions struct {
	Tracer Tracer
	Config *domain.Config
	RunID  string
}

// AutomationOption configures a single automation run.
type AutomationOption func(*AutomationOptions)

// WithTracer reports the steps of the run as spans of tracer.
func WithTracer(tracer Tracer) AutomationOption {
	return func(o *AutomationOptions) {
		o.Tracer = tracer
	}
}

// WithConfig overrides the layout, timing and row advance of the run.
func WithConfig(cfg *domain.Config) AutomationOption {
	return func(o *AutomationOptions) {
		o.Config = cfg
	}
}

// WithRunID tags the root span of the run with id.
func WithRunID(id string) AutomationOption {
	return func(o *AutomationOptions) {
		o.RunID = id
	}
}

// Automation drives the target application to export one report per kept entity.
type Automation interface {
	// RunAutomation performs one complete export run. It fails before any
	// input is injected when targetPeriod is malformed, and fails immediately
	// when another run is in progress.
	RunAutomation(
		ctx context.Context,
		targetPeriod string,
		entitiesToExclude []string,
		selectBatchSize int,
		iterations int,
		opts ...AutomationOption,
	) error
}
