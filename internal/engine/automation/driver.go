// Package automation drives the STRAVIS client through its accessibility tree
// and synthetic input to export one report per kept entity.
package automation

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"sync"

	"go.trai.ch/stravex/internal/core/domain"
	"go.trai.ch/stravex/internal/core/ports"
	"go.trai.ch/zerr"
)

// Step names reported to the tracer, in execution order.
const (
	StepAttach         = "attach"
	StepOpenDataInput  = "open data input"
	StepResolveInput   = "resolve data input"
	StepApplyPeriod    = "apply period"
	StepOpenSelector   = "open entity selector"
	StepSelectEntities = "select entities"
	StepDisplay        = "display"
)

// RowStep returns the step name of the i-th exported row, counting from 1.
func RowStep(i int) string {
	return fmt.Sprintf("row %d", i)
}

// PlanSteps returns the ordered step names of a run exporting iterations rows.
func PlanSteps(iterations int) []string {
	steps := []string{
		StepAttach,
		StepOpenDataInput,
		StepResolveInput,
		StepApplyPeriod,
		StepOpenSelector,
		StepSelectEntities,
		StepDisplay,
	}
	for i := range iterations {
		steps = append(steps, RowStep(i+1))
	}
	return steps
}

// Driver replays the export flow against the desktop.
// The keyboard and focus of the desktop are shared by every caller, so the
// driver runs at most one flow at a time and rejects overlapping requests.
type Driver struct {
	desktop  ports.Desktop
	keyboard ports.Keyboard
	mu       sync.Mutex
}

// NewDriver creates a driver over the given accessibility tree and keyboard.
func NewDriver(desktop ports.Desktop, keyboard ports.Keyboard) *Driver {
	return &Driver{
		desktop:  desktop,
		keyboard: keyboard,
	}
}

// RunAutomation exports one report per kept entity.
//
// targetPeriod must look like YYYY.MM and is validated before any input is
// injected. entitiesToExclude are deselected in order. selectBatchSize is the
// number of rows covered by the select-all gesture. iterations is the number
// of result rows to export and must equal the number of kept entities; the
// driver does not check it.
//
// The first failing step aborts the run. ErrRunInProgress is returned
// immediately if another run holds the driver.
func (d *Driver) RunAutomation(
	ctx context.Context,
	targetPeriod string,
	entitiesToExclude []string,
	selectBatchSize int,
	iterations int,
	opts ...ports.AutomationOption,
) error {
	period, err := domain.ParsePeriod(targetPeriod)
	if err != nil {
		return err
	}
	if selectBatchSize < 0 {
		return zerr.With(domain.ErrInvalidBatchSize, "select_batch", selectBatchSize)
	}
	if iterations < 0 {
		return zerr.With(domain.ErrInvalidIterations, "iterations", iterations)
	}

	o := ports.AutomationOptions{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.Tracer == nil {
		o.Tracer = noopTracer{}
	}
	if o.Config == nil {
		o.Config = domain.DefaultConfig()
	}

	pattern, err := regexp.Compile(o.Config.Layout.PeriodPattern)
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrInvalidConfig.Error()), "period_pattern", o.Config.Layout.PeriodPattern)
	}

	if !d.mu.TryLock() {
		return domain.ErrRunInProgress
	}
	defer d.mu.Unlock()

	r := &run{
		desktop:    d.desktop,
		keys:       d.keyboard,
		tracer:     o.Tracer,
		layout:     o.Config.Layout,
		timing:     o.Config.Timing,
		rowAdvance: o.Config.RowAdvance,
		pattern:    pattern,
		period:     period,
		exclude:    entitiesToExclude,
		batch:      selectBatchSize,
		iterations: iterations,
		span:       noopSpan{},
		runID:      o.RunID,
	}
	return r.execute(ctx)
}

// run holds the state of one automation flow. Controls are re-resolved on
// every step except the main window and the data input container, which live
// for the whole run.
type run struct {
	desktop    ports.Desktop
	keys       ports.Keyboard
	tracer     ports.Tracer
	layout     domain.Layout
	timing     domain.Timing
	rowAdvance int
	pattern    *regexp.Regexp

	period     domain.Period
	exclude    []string
	batch      int
	iterations int
	runID      string

	main ports.Element
	base ports.Element
	span ports.Span
}

func (r *run) execute(ctx context.Context) error {
	ctx, span := r.tracer.Start(ctx, "export "+r.period.String())
	defer span.End()
	span.SetAttribute("period", r.period.String())
	span.SetAttribute("excluded", len(r.exclude))
	span.SetAttribute("iterations", r.iterations)
	if r.runID != "" {
		span.SetAttribute("run_id", r.runID)
	}

	r.tracer.EmitPlan(ctx, PlanSteps(r.iterations))

	steps := []struct {
		name string
		fn   func(context.Context) error
	}{
		{StepAttach, r.attach},
		{StepOpenDataInput, r.openDataInput},
		{StepResolveInput, r.resolveDataInput},
		{StepApplyPeriod, r.applyPeriod},
		{StepOpenSelector, r.openSelector},
		{StepSelectEntities, r.selectEntities},
		{StepDisplay, r.display},
	}
	for _, s := range steps {
		if err := r.step(ctx, s.name, s.fn); err != nil {
			span.RecordError(err)
			return err
		}
	}

	for i := range r.iterations {
		if err := r.step(ctx, RowStep(i+1), r.exportRow); err != nil {
			span.RecordError(err)
			return err
		}
	}
	return nil
}

// step runs fn inside its own span. Failures are tagged with the step name.
func (r *run) step(ctx context.Context, name string, fn func(context.Context) error) error {
	ctx, span := r.tracer.Start(ctx, name)
	defer span.End()

	parent := r.span
	r.span = span
	defer func() { r.span = parent }()

	if err := fn(ctx); err != nil {
		span.RecordError(err)
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return err
		}
		return zerr.With(err, "step", name)
	}
	return nil
}

// notef writes a progress note to the current step.
func (r *run) notef(format string, args ...any) {
	_, _ = fmt.Fprintf(r.span, format+"\n", args...)
}

func (r *run) attach(ctx context.Context) error {
	w, err := r.requireWindow(ctx, r.layout.MainWindow, 1, r.timing.Attach)
	if err != nil {
		return err
	}
	if err := w.SetFocus(); err != nil {
		return actionFailed(err, "focus", r.layout.MainWindow)
	}
	r.main = w
	r.notef("attached to %s", r.layout.MainWindow)
	return nil
}

func (r *run) openDataInput(ctx context.Context) error {
	node, err := RequireControl(ctx, r.main, domain.Query{Name: r.layout.NavigationNode}, r.timing.Navigation)
	if err != nil {
		return err
	}
	if err := r.act(ctx, "double-click", r.layout.NavigationNode, node.DoubleClick); err != nil {
		return err
	}
	if err := sleep(ctx, r.timing.NavigationSettle); err != nil {
		return err
	}
	if err := r.tap(ctx, domain.KeyDown, r.timing.KeyInterval); err != nil {
		return err
	}
	if err := r.press(ctx, domain.KeyEnter); err != nil {
		return err
	}
	r.notef("opened %s", r.layout.BaseInput)

	changed, err := r.waitForChange(ctx, r.main, r.timing.ViewChange)
	if err != nil {
		return err
	}
	if !changed {
		return zerr.With(domain.ErrNoChange, "after", "opening "+r.layout.BaseInput)
	}
	return nil
}

func (r *run) resolveDataInput(ctx context.Context) error {
	base, err := r.waitForBaseInput(ctx)
	if err != nil {
		return err
	}
	if err := base.SetFocus(); err != nil {
		return actionFailed(err, "focus", r.layout.BaseInput)
	}
	r.base = base
	return nil
}

func (r *run) applyPeriod(ctx context.Context) error {
	filter := BreadthFirst(r.base, NameMatches(r.pattern))
	if filter == nil {
		return zerr.With(domain.ErrPeriodControlNotFound, "pattern", r.pattern.String())
	}
	if err := r.act(ctx, "click", r.pattern.String(), filter.Click); err != nil {
		return err
	}
	name, _ := filter.Name()
	r.notef("period filter %s", name)

	// Clear the current filter.
	if err := r.tap(ctx, domain.KeyDown, r.timing.KeyInterval); err != nil {
		return err
	}
	if err := r.press(ctx, domain.KeySpace); err != nil {
		return err
	}

	if err := r.find(ctx, r.period.String()); err != nil {
		return err
	}
	if err := r.tap(ctx, domain.KeyDown, r.timing.KeyInterval); err != nil {
		return err
	}
	if err := r.press(ctx, domain.KeySpace); err != nil {
		return err
	}
	r.notef("selected period %s", r.period)
	return nil
}

func (r *run) openSelector(ctx context.Context) error {
	if err := r.waitDialogGone(ctx, r.layout.SaveDialog); err != nil {
		return err
	}
	if err := r.switchRibbonTab(ctx, r.layout.OperationTab); err != nil {
		return err
	}

	org, err := RequireControl(ctx, r.base, domain.Query{
		Role:         domain.RolePane,
		AutomationID: r.layout.OrganizationPaneID,
		Depth:        30,
	}, r.timing.Selector)
	if err != nil {
		return err
	}
	open, err := RequireControl(ctx, org, domain.Query{
		Role:  domain.RoleButton,
		Name:  r.layout.OpenButton,
		Depth: 8,
	}, r.timing.Exists)
	if err != nil {
		return err
	}
	if err := r.act(ctx, "click", r.layout.OpenButton, open.Click); err != nil {
		return err
	}
	r.notef("opened entity selector")
	return nil
}

func (r *run) selectEntities(ctx context.Context) error {
	// Normalize to the top of the list, then select everything below it.
	if err := r.tap(ctx, domain.KeyDown, r.timing.KeyInterval); err != nil {
		return err
	}
	if err := r.repeat(ctx, domain.KeyUp, r.batch, r.timing.SelectInterval); err != nil {
		return err
	}
	if err := r.shiftSelectDown(ctx, r.batch); err != nil {
		return err
	}
	if err := r.press(ctx, domain.KeySpace); err != nil {
		return err
	}
	r.notef("selected %d rows", r.batch)

	for _, code := range r.exclude {
		if err := r.deselectEntity(ctx, code); err != nil {
			return zerr.With(err, "entity", code)
		}
		r.notef("deselected %s", code)
	}
	return nil
}

func (r *run) display(ctx context.Context) error {
	if err := r.switchRibbonTab(ctx, r.layout.OperationTab); err != nil {
		return err
	}
	btn, err := RequireControl(ctx, r.base, domain.Query{
		Name:         r.layout.DisplayButton,
		AutomationID: r.layout.DisplayButtonID,
		Depth:        30,
	}, r.timing.Display)
	if err != nil {
		return err
	}
	if err := r.act(ctx, "click", r.layout.DisplayButton, btn.Click); err != nil {
		return err
	}
	if _, err := r.waitForChange(ctx, r.base, r.timing.DisplayChange); err != nil {
		return err
	}

	if err := sleep(ctx, r.timing.NavigationSettle); err != nil {
		return err
	}
	return r.repeat(ctx, domain.KeyDown, 2, r.timing.KeyInterval)
}

func (r *run) exportRow(ctx context.Context) error {
	if err := r.pressOpen(ctx); err != nil {
		return err
	}
	if err := r.waitUntilTabActive(ctx, r.layout.OperationTab); err != nil {
		return err
	}
	// The report renders without any observable signal; wait it out.
	if err := sleep(ctx, r.timing.RowDwell); err != nil {
		return err
	}
	if err := r.changeLanguage(ctx); err != nil {
		return err
	}

	if err := r.switchRibbonTab(ctx, r.layout.OperationTab); err != nil {
		return err
	}
	if err := r.waitUntilTabActive(ctx, r.layout.OperationTab); err != nil {
		return err
	}
	if err := r.clickSaveAsExcel(ctx); err != nil {
		return err
	}
	if err := r.selectSaveFolder(ctx); err != nil {
		return err
	}
	if err := sleep(ctx, r.timing.SaveSettle); err != nil {
		return err
	}
	if err := r.repeat(ctx, domain.KeyTab, 4, r.timing.KeyInterval); err != nil {
		return err
	}
	if err := r.press(ctx, domain.KeyEnter); err != nil {
		return err
	}
	r.notef("saved to %s", r.layout.TargetFolder)

	if err := r.switchRibbonTab(ctx, r.layout.OperationTab); err != nil {
		return err
	}
	if err := r.clickOperationClose(ctx); err != nil {
		return err
	}
	if err := r.repeat(ctx, domain.KeyTab, 4, r.timing.KeyInterval); err != nil {
		return err
	}
	return r.repeat(ctx, domain.KeyDown, r.rowAdvance, 0)
}

// waitForChange is WaitForChange with a progress note.
func (r *run) waitForChange(ctx context.Context, root ports.Element, p domain.Poll) (bool, error) {
	c, err := awaitChange(ctx, root, p)
	if err != nil {
		return false, err
	}
	if !c.changed {
		r.notef("no change within %s (%016x)", p.Timeout, c.before.Fingerprint())
		return false, nil
	}
	r.notef("ui changed (%016x -> %016x)", c.before.Fingerprint(), c.after.Fingerprint())
	return true, nil
}

// act performs an action on a control and gives the target application
// time to react before the next input.
func (r *run) act(ctx context.Context, action, control string, fn func() error) error {
	if err := fn(); err != nil {
		return actionFailed(err, action, control)
	}
	return sleep(ctx, r.timing.InputSettle)
}

func actionFailed(err error, action, control string) error {
	err = zerr.Wrap(err, domain.ErrActionFailed.Error())
	err = zerr.With(err, "action", action)
	return zerr.With(err, "control", control)
}
