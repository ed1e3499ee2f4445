// Package app implements the application layer for stravex.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
	"go.trai.ch/stravex/internal/adapters/detector"
	"go.trai.ch/stravex/internal/adapters/linear"
	"go.trai.ch/stravex/internal/adapters/telemetry"
	"go.trai.ch/stravex/internal/adapters/tui"
	"go.trai.ch/stravex/internal/core/domain"
	"go.trai.ch/stravex/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

const graceStep = time.Second

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	automation   ports.Automation
	logger       ports.Logger
	watcher      ports.Watcher
	teaOptions   []tea.ProgramOption
	disableTick  bool
	stdout       io.Writer
	stderr       io.Writer
	detect       func() detector.OutputMode
}

// New creates a new App instance. watcher may be nil, which disables the
// completion report.
func New(
	loader ports.ConfigLoader,
	automation ports.Automation,
	log ports.Logger,
	w ports.Watcher,
) *App {
	return &App{
		configLoader: loader,
		automation:   automation,
		logger:       log,
		watcher:      w,
		stdout:       os.Stdout,
		stderr:       os.Stderr,
		detect:       detector.DetectEnvironment,
	}
}

// WithTeaOptions adds bubbletea program options to the App.
// This is primarily used for testing to disable input/output.
func (a *App) WithTeaOptions(opts ...tea.ProgramOption) *App {
	a.teaOptions = append(a.teaOptions, opts...)
	return a
}

// WithDisableTick disables the TUI tick loop.
// This is primarily used for testing with synctest to avoid goroutine deadlocks.
func (a *App) WithDisableTick() *App {
	a.disableTick = true
	return a
}

// WithOutput redirects the renderer streams.
func (a *App) WithOutput(stdout, stderr io.Writer) *App {
	a.stdout = stdout
	a.stderr = stderr
	return a
}

// RunOptions configuration for the Run method.
type RunOptions struct {
	ConfigPath  string
	Period      string
	Include     []string
	SelectBatch int            // 0 uses run.select_batch
	Grace       *time.Duration // nil uses timing.grace_period
	Confirmed   bool
	OutputMode  string
	CI          bool
}

// Run exports one report per kept entity for the requested period.
//
//nolint:cyclop,funlen // orchestration function
func (a *App) Run(ctx context.Context, opts RunOptions) error {
	// 1. Load the configuration
	cfg, err := a.configLoader.Load(opts.ConfigPath)
	if err != nil {
		return zerr.Wrap(err, "failed to load configuration")
	}

	// 2. Derive the plan
	batch := cfg.SelectBatch
	if opts.SelectBatch != 0 {
		batch = opts.SelectBatch
	}
	plan, err := domain.NewPlan(cfg.Catalog, opts.Period, opts.Include, batch)
	if err != nil {
		return err
	}

	requested, err := detector.ParseMode(opts.OutputMode)
	if err != nil {
		return err
	}

	if !opts.Confirmed {
		return domain.ErrPreconditionsUnconfirmed
	}

	runID := uuid.NewString()
	a.logger.Info(fmt.Sprintf(
		"run %s: exporting %d entities for %s (%d excluded)",
		runID, plan.Iterations(), plan.Period, len(plan.Exclude),
	))

	// 3. Give the operator time to focus STRAVIS
	grace := cfg.Timing.GracePeriod
	if opts.Grace != nil {
		grace = *opts.Grace
	}
	if err := a.countdown(ctx, grace); err != nil {
		return err
	}

	// 4. Watch the export folder
	exports := a.watchExports(ctx, cfg.ExportDir)

	// 5. Initialize Renderer
	mode := detector.ResolveMode(a.detect(), requested, opts.CI)

	var renderer ports.Renderer
	if mode == detector.ModeTUI {
		model := tui.NewModel(a.stderr)
		if a.disableTick {
			model = model.WithDisableTick()
		}
		optsTea := append([]tea.ProgramOption{tea.WithContext(ctx), tea.WithOutput(a.stderr)}, a.teaOptions...)
		renderer = tui.NewRenderer(&model, optsTea...)
	} else {
		renderer = linear.NewRenderer(a.stdout, a.stderr)
	}

	// 6. Initialize Telemetry
	tp := telemetry.Setup(telemetry.NewBridge(renderer))
	tracer := telemetry.NewOTelTracer("stravex", telemetry.WithTracerProvider(tp)).WithRenderer(renderer)
	defer func() {
		_ = tracer.Shutdown(context.WithoutCancel(ctx))
		_ = tp.Shutdown(context.WithoutCancel(ctx))
	}()

	// 7. Run Renderer and Driver concurrently
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if err := renderer.Start(gctx); err != nil {
			return err
		}
		return renderer.Wait()
	})

	g.Go(func() (err error) {
		defer func() {
			if r := recover(); r != nil {
				err = zerr.With(domain.ErrAutomationFailed, "panic", fmt.Sprint(r))
			}
			_ = renderer.Stop()
		}()

		if err := a.automation.RunAutomation(
			gctx,
			plan.Period.String(),
			plan.ExcludeStrings(),
			plan.SelectBatch,
			plan.Iterations(),
			ports.WithTracer(tracer),
			ports.WithConfig(cfg),
			ports.WithRunID(runID),
		); err != nil {
			return errors.Join(domain.ErrAutomationFailed, err)
		}
		return nil
	})

	runErr := g.Wait()

	// 8. Report what reached the export folder
	a.report(exports.finish(), cfg.ExportDir, runErr == nil)
	return runErr
}

// Entities returns the entity catalog of the active configuration.
func (a *App) Entities(configPath string) (domain.Catalog, error) {
	cfg, err := a.configLoader.Load(configPath)
	if err != nil {
		return domain.Catalog{}, zerr.Wrap(err, "failed to load configuration")
	}
	return cfg.Catalog, nil
}

// countdown logs the seconds left before the first input.
func (a *App) countdown(ctx context.Context, grace time.Duration) error {
	for remaining := grace; remaining > 0; remaining -= graceStep {
		a.logger.Info(fmt.Sprintf("switch to STRAVIS now: starting in %s", remaining.Round(time.Second)))

		t := time.NewTimer(min(graceStep, remaining))
		select {
		case <-ctx.Done():
			t.Stop()
			return ctx.Err()
		case <-t.C:
		}
	}
	return nil
}

func (a *App) report(files []string, dir string, succeeded bool) {
	if files == nil {
		return
	}
	if len(files) == 0 {
		if succeeded {
			a.logger.Warn("no exported files detected in " + dir)
		}
		return
	}

	a.logger.Info(fmt.Sprintf("exported %d file(s) to %s", len(files), dir))
	for _, name := range files {
		a.logger.Info("  " + name)
	}
}
