// Package detector selects the progress renderer for the current terminal.
package detector

import (
	"os"

	"go.trai.ch/stravex/internal/core/domain"
	"go.trai.ch/zerr"
	"golang.org/x/term"
)

// OutputMode represents the rendering mode for a run.
type OutputMode int

const (
	// ModeAuto picks a renderer from the environment.
	ModeAuto OutputMode = iota
	// ModeTUI forces the interactive step list.
	ModeTUI
	// ModeLinear forces plain line-by-line output.
	ModeLinear
)

// String returns the flag value naming the mode.
func (m OutputMode) String() string {
	switch m {
	case ModeTUI:
		return "tui"
	case ModeLinear:
		return "linear"
	default:
		return "auto"
	}
}

// ParseMode converts an --output-mode flag value. "ci" is an alias for linear.
func ParseMode(flag string) (OutputMode, error) {
	switch flag {
	case "auto", "":
		return ModeAuto, nil
	case "tui":
		return ModeTUI, nil
	case "linear", "ci":
		return ModeLinear, nil
	default:
		return ModeAuto, zerr.With(domain.ErrInvalidOutputMode, "output_mode", flag)
	}
}

// DetectEnvironment returns the recommended output mode for this process.
// Redirected stdout and CI environments get the linear renderer.
func DetectEnvironment() OutputMode {
	return Detect(term.IsTerminal(int(os.Stdout.Fd())), os.Getenv)
}

// Detect decides the output mode from the TTY state and the environment.
func Detect(isTTY bool, getenv func(string) string) OutputMode {
	ci := getenv("CI")
	isCI := ci == "true" || ci == "1"

	if !isTTY || isCI {
		return ModeLinear
	}
	return ModeTUI
}

// ResolveMode applies the operator's choice to the detected mode.
// forceCI wins over everything; ModeAuto defers to the detection.
func ResolveMode(autoDetected, requested OutputMode, forceCI bool) OutputMode {
	if forceCI {
		return ModeLinear
	}
	if requested == ModeAuto {
		return autoDetected
	}
	return requested
}
