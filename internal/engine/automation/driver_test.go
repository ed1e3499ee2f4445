package automation_test

import (
	"context"
	"errors"
	"slices"
	"strings"
	"testing"
	"testing/synctest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/stravex/internal/core/domain"
	"go.trai.ch/stravex/internal/core/ports"
	"go.trai.ch/stravex/internal/core/ports/mocks"
	"go.trai.ch/stravex/internal/engine/automation"
	"go.trai.ch/zerr"
	"go.uber.org/mock/gomock"
)

func TestRunAutomation_InvalidPeriodFailsBeforeInput(t *testing.T) {
	for _, period := range []string{"2025-03", "25.03", "", "2025.3", "AY2025.03"} {
		t.Run(period, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			// No expectations: any call into the tree or the keyboard fails the test.
			desktop := mocks.NewMockDesktop(ctrl)
			keyboard := mocks.NewMockKeyboard(ctrl)

			d := automation.NewDriver(desktop, keyboard)
			err := d.RunAutomation(context.Background(), period, nil, 20, 1)

			require.Error(t, err)
			assert.ErrorContains(t, err, domain.ErrInvalidPeriod.Error())
		})
	}
}

func TestRunAutomation_RejectsNegativeCounts(t *testing.T) {
	ctrl := gomock.NewController(t)
	d := automation.NewDriver(mocks.NewMockDesktop(ctrl), mocks.NewMockKeyboard(ctrl))

	err := d.RunAutomation(context.Background(), "2025.03", nil, -1, 1)
	require.ErrorContains(t, err, domain.ErrInvalidBatchSize.Error())

	err = d.RunAutomation(context.Background(), "2025.03", nil, 20, -1)
	require.ErrorContains(t, err, domain.ErrInvalidIterations.Error())
}

func TestRunAutomation_EndToEnd(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		s := newStravis()
		d := automation.NewDriver(s.desktop, s.keyboard)

		err := d.RunAutomation(context.Background(), "2025.03", []string{"CY41_HSO_INNOVIA"}, 20, 1)
		require.NoError(t, err)

		// One attach.
		assert.Equal(t, 1, s.main.focusCalls)
		assert.Equal(t, 1, s.node.doubleClicks)
		assert.Equal(t, 1, s.base.focusCalls)

		// Period filter, then one deselect cycle.
		assert.Equal(t, 1, s.period.clicks)
		assert.Equal(t, []string{"2025.03", "CY41_HSO_INNOVIA"}, s.keyboard.typed())
		assert.Equal(t, 1, s.open.clicks)

		// Select-all gesture covers the batch.
		assert.Equal(t, 20, s.keyboard.count("press:up"))
		assert.Equal(t, 1, s.keyboard.count("keydown:shift"))
		assert.Equal(t, 1, s.keyboard.count("keyup:shift"))

		// One display trigger.
		assert.Equal(t, 1, s.display.clicks)

		// One row: open, save, close.
		assert.Equal(t, 1, s.saveAsExcel.clicks)
		assert.Equal(t, 1, s.folder.invokes)
		assert.Equal(t, 1, s.closeButton.invokes)
		assert.Equal(t, 0, s.closeButton.clicks)
		assert.True(t, s.saveDialog.hidden)
	})
}

func TestRunAutomation_DeselectsEachExclusionInOrder(t *testing.T) {
	tests := []struct {
		name    string
		exclude []string
	}{
		{name: "None", exclude: nil},
		{name: "One", exclude: []string{"GH41_HSO_EOS"}},
		{name: "Several", exclude: []string{"WM41_HSO_MID LAB INC", "CY41_HSO_INNOVIA", "GG41_HSO_FRITZ RUCK"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			synctest.Test(t, func(t *testing.T) {
				s := newStravis()
				d := automation.NewDriver(s.desktop, s.keyboard)

				err := d.RunAutomation(context.Background(), "2025.03", tt.exclude, 20, 0)
				require.NoError(t, err)

				want := append([]string{"2025.03"}, tt.exclude...)
				assert.Equal(t, want, s.keyboard.typed())
				// Each find opens and clears the find box once more.
				assert.Equal(t, 1+2*len(tt.exclude), s.keyboard.count("hotkey:ctrl+f"))
				assert.Equal(t, len(tt.exclude), s.keyboard.count("hotkey:ctrl+a"))
				assert.Equal(t, 0, s.saveAsExcel.clicks)
			})
		})
	}
}

func TestRunAutomation_ExportsEveryRow(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		s := newStravis()
		d := automation.NewDriver(s.desktop, s.keyboard)

		cfg := domain.DefaultConfig()
		cfg.RowAdvance = 2

		err := d.RunAutomation(context.Background(), "2025.03", nil, 15, 3, ports.WithConfig(cfg))
		require.NoError(t, err)

		assert.Equal(t, 3, s.saveAsExcel.clicks)
		assert.Equal(t, 3, s.folder.invokes)
		assert.Equal(t, 3, s.closeButton.invokes)
		assert.Equal(t, 15, s.keyboard.count("press:up"))
		// 3 to open and 8 to confirm and leave each row.
		assert.Equal(t, 3*(3+4+4), s.keyboard.count("press:tab"))
	})
}

func TestRunAutomation_ReportsSteps(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		ctrl := gomock.NewController(t)
		tracer := mocks.NewMockTracer(ctrl)
		span := mocks.NewMockSpan(ctrl)

		span.EXPECT().Write(gomock.Any()).DoAndReturn(func(p []byte) (int, error) {
			return len(p), nil
		}).AnyTimes()
		span.EXPECT().SetAttribute(gomock.Any(), gomock.Any()).AnyTimes()
		span.EXPECT().End().AnyTimes()

		var started []string
		tracer.EXPECT().Start(gomock.Any(), gomock.Any()).DoAndReturn(
			func(ctx context.Context, name string, _ ...ports.SpanOption) (context.Context, ports.Span) {
				started = append(started, name)
				return ctx, span
			},
		).AnyTimes()
		tracer.EXPECT().EmitPlan(gomock.Any(), automation.PlanSteps(2)).Times(1)

		s := newStravis()
		d := automation.NewDriver(s.desktop, s.keyboard)

		err := d.RunAutomation(context.Background(), "2025.03", nil, 20, 2, ports.WithTracer(tracer))
		require.NoError(t, err)

		want := append([]string{"export 2025.03"}, automation.PlanSteps(2)...)
		assert.Equal(t, want, started)
	})
}

func TestRunAutomation_TagsRootSpanWithRunID(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		ctrl := gomock.NewController(t)
		tracer := mocks.NewMockTracer(ctrl)
		root := mocks.NewMockSpan(ctrl)
		step := mocks.NewMockSpan(ctrl)

		root.EXPECT().SetAttribute("run_id", "r-1").Times(1)
		root.EXPECT().SetAttribute("period", "2025.03").Times(1)
		root.EXPECT().SetAttribute(gomock.Any(), gomock.Any()).AnyTimes()
		root.EXPECT().End().Times(1)
		step.EXPECT().Write(gomock.Any()).DoAndReturn(func(p []byte) (int, error) {
			return len(p), nil
		}).AnyTimes()
		step.EXPECT().End().AnyTimes()

		gomock.InOrder(
			tracer.EXPECT().Start(gomock.Any(), "export 2025.03").DoAndReturn(
				func(ctx context.Context, _ string, _ ...ports.SpanOption) (context.Context, ports.Span) {
					return ctx, root
				},
			),
			tracer.EXPECT().Start(gomock.Any(), gomock.Any()).DoAndReturn(
				func(ctx context.Context, _ string, _ ...ports.SpanOption) (context.Context, ports.Span) {
					return ctx, step
				},
			).AnyTimes(),
		)
		tracer.EXPECT().EmitPlan(gomock.Any(), gomock.Any()).Times(1)

		s := newStravis()
		d := automation.NewDriver(s.desktop, s.keyboard)

		err := d.RunAutomation(context.Background(), "2025.03", nil, 20, 1,
			ports.WithTracer(tracer), ports.WithRunID("r-1"))
		require.NoError(t, err)
	})
}

func TestRunAutomation_RejectsConcurrentRun(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		s := newStravis()
		d := automation.NewDriver(s.desktop, s.keyboard)

		errCh := make(chan error, 1)
		go func() {
			errCh <- d.RunAutomation(context.Background(), "2025.03", nil, 20, 1)
		}()

		// The first run is now parked on one of its waits.
		synctest.Wait()

		err := d.RunAutomation(context.Background(), "2025.03", nil, 20, 1)
		require.ErrorIs(t, err, domain.ErrRunInProgress)

		require.NoError(t, <-errCh)

		// The guard is released once the run completes.
		require.NoError(t, d.RunAutomation(context.Background(), "2025.03", nil, 20, 0))
	})
}

func TestRunAutomation_MissingWindow(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		s := newStravis()
		s.main.hidden = true
		d := automation.NewDriver(s.desktop, s.keyboard)

		start := time.Now()
		err := d.RunAutomation(context.Background(), "2025.03", nil, 20, 1)

		require.ErrorContains(t, err, domain.ErrWindowNotFound.Error())
		assert.Equal(t, domain.DefaultTiming().Attach.Timeout, time.Since(start))
		assert.Empty(t, s.keyboard.events)
		assert.Equal(t, automation.StepAttach, stepOf(t, err))
	})
}

func TestRunAutomation_MissingDisplayButton(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		s := newStravis()
		s.display.hidden = true
		d := automation.NewDriver(s.desktop, s.keyboard)

		err := d.RunAutomation(context.Background(), "2025.03", nil, 20, 1)

		require.ErrorContains(t, err, domain.ErrControlNotFound.Error())
		assert.Equal(t, automation.StepDisplay, stepOf(t, err))
		assert.Equal(t, 0, s.saveAsExcel.clicks)

		var zErr *zerr.Error
		require.ErrorAs(t, err, &zErr)
		assert.Equal(t, "btnDisp", zErr.Metadata()["automation_id"])
	})
}

func TestRunAutomation_MissingPeriodFilter(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		s := newStravis()
		s.period.name = "AY2025(MTD)"
		d := automation.NewDriver(s.desktop, s.keyboard)

		err := d.RunAutomation(context.Background(), "2025.03", nil, 20, 1)

		require.ErrorContains(t, err, domain.ErrPeriodControlNotFound.Error())
		assert.Equal(t, automation.StepApplyPeriod, stepOf(t, err))
		assert.Empty(t, s.keyboard.typed())
	})
}

func TestRunAutomation_NoChangeAfterOpeningDataInput(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		s := newStravis()
		s.main.churn = false
		d := automation.NewDriver(s.desktop, s.keyboard)

		err := d.RunAutomation(context.Background(), "2025.03", nil, 20, 1)

		require.ErrorContains(t, err, domain.ErrNoChange.Error())
		assert.Equal(t, automation.StepOpenDataInput, stepOf(t, err))
	})
}

func TestRunAutomation_DataInputAsWindow(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		s := newStravis()
		s.base.role = domain.RoleWindow
		s.main.children = s.main.children[:2]
		s.desktop.root.add(s.base)
		d := automation.NewDriver(s.desktop, s.keyboard)

		err := d.RunAutomation(context.Background(), "2025.03", nil, 20, 1)
		require.NoError(t, err)
		assert.Equal(t, 1, s.display.clicks)
	})
}

func TestRunAutomation_RibbonFallbacks(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		s := newStravis()

		// Move both buttons out of their usual toolbars.
		ribbon := s.main.children[1]
		lower := ribbon.children[1]
		op := lower.children[0]
		op.children = nil
		ribbon.add(el(domain.RoleGroup, "Extras", s.saveAsExcel, s.closeButton))

		d := automation.NewDriver(s.desktop, s.keyboard)
		err := d.RunAutomation(context.Background(), "2025.03", nil, 20, 1)
		require.NoError(t, err)

		assert.Equal(t, 1, s.saveAsExcel.clicks)
		assert.Equal(t, 1, s.closeButton.invokes)
	})
}

func TestRunAutomation_TabNeverActive(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		s := newStravis()
		s.tab.selected = false
		d := automation.NewDriver(s.desktop, s.keyboard)

		err := d.RunAutomation(context.Background(), "2025.03", nil, 20, 1)

		require.ErrorContains(t, err, domain.ErrTabNotActive.Error())
		assert.Equal(t, automation.RowStep(1), stepOf(t, err))
	})
}

func TestRunAutomation_TabActiveByKeyboardFocus(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		s := newStravis()
		s.tab.selected = false
		s.tab.focused = true
		d := automation.NewDriver(s.desktop, s.keyboard)

		require.NoError(t, d.RunAutomation(context.Background(), "2025.03", nil, 20, 1))
	})
}

func TestRunAutomation_MissingSaveFolder(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		s := newStravis()
		s.folder.value = "Documents"
		d := automation.NewDriver(s.desktop, s.keyboard)

		err := d.RunAutomation(context.Background(), "2025.03", nil, 20, 1)

		require.ErrorContains(t, err, domain.ErrSaveFolderNotFound.Error())
		assert.Equal(t, 0, s.closeButton.invokes)
	})
}

func TestRunAutomation_SaveDialogStillOpen(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		s := newStravis()
		s.saveDialog.hidden = false
		s.keyboard.onPress = nil
		s.base.hidden = false
		d := automation.NewDriver(s.desktop, s.keyboard)

		err := d.RunAutomation(context.Background(), "2025.03", nil, 20, 1)

		require.ErrorContains(t, err, domain.ErrDialogStillOpen.Error())
		assert.Equal(t, automation.StepOpenSelector, stepOf(t, err))
	})
}

func TestRunAutomation_ReleasesShiftOnFailure(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		s := newStravis()
		held, downs := false, 0
		s.keyboard.fail = func(event string) error {
			switch event {
			case "keydown:shift":
				held = true
			case "keyup:shift":
				held = false
			case "press:down":
				if held {
					downs++
					if downs == 5 {
						return errors.New("input desktop switched")
					}
				}
			}
			return nil
		}
		d := automation.NewDriver(s.desktop, s.keyboard)

		err := d.RunAutomation(context.Background(), "2025.03", nil, 20, 1)

		require.ErrorContains(t, err, domain.ErrInputFailed.Error())
		assert.Equal(t, automation.StepSelectEntities, stepOf(t, err))
		assert.Equal(t, 1, s.keyboard.count("keyup:shift"))
		assert.Equal(t, "keyup:shift", s.keyboard.events[len(s.keyboard.events)-1])
	})
}

func TestRunAutomation_PacesInput(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		s := newStravis()
		var clickedAt time.Time
		nextEvent := -1
		s.period.onClick = func() {
			clickedAt = time.Now()
			nextEvent = len(s.keyboard.events)
		}
		d := automation.NewDriver(s.desktop, s.keyboard)

		err := d.RunAutomation(context.Background(), "2025.03", []string{"CY41_HSO_INNOVIA"}, 20, 1)
		require.NoError(t, err)

		timing := domain.DefaultTiming()
		events, at := s.keyboard.events, s.keyboard.at
		held := false
		for i, ev := range events[:len(events)-1] {
			gap := at[i+1].Sub(at[i])
			switch {
			case ev == "keydown:shift":
				held = true
			case ev == "keyup:shift":
				held = false
			case strings.HasPrefix(ev, "press:") && !held:
				assert.GreaterOrEqual(t, gap, timing.InputSettle, "after event %d (%s)", i, ev)
			case strings.HasPrefix(ev, "hotkey:"):
				assert.GreaterOrEqual(t, gap, timing.HotkeyPause, "after event %d (%s)", i, ev)
			}
		}

		// The first key after clicking the period filter waits for the click to settle.
		require.GreaterOrEqual(t, nextEvent, 0)
		require.Less(t, nextEvent, len(events))
		assert.GreaterOrEqual(t, at[nextEvent].Sub(clickedAt), timing.InputSettle)

		// The language walk: 15 Downs, each settled and spaced, before the first Right.
		right := slices.Index(events, "press:right")
		require.GreaterOrEqual(t, right, 15)
		for _, ev := range events[right-15 : right] {
			assert.Equal(t, "press:down", ev)
		}
		assert.Equal(t, 15*(timing.InputSettle+timing.KeyInterval), at[right].Sub(at[right-15]))
	})
}

func TestRunAutomation_Cancellation(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		s := newStravis()
		d := automation.NewDriver(s.desktop, s.keyboard)

		ctx, cancel := context.WithTimeout(context.Background(), 25*time.Second)
		defer cancel()

		err := d.RunAutomation(ctx, "2025.03", nil, 20, 1)

		require.ErrorIs(t, err, context.DeadlineExceeded)
		assert.Equal(t, 0, s.saveAsExcel.clicks)
	})
}

// stepOf returns the step metadata attached to a driver error.
func stepOf(t *testing.T, err error) string {
	t.Helper()
	var zErr *zerr.Error
	if !errors.As(err, &zErr) {
		t.Fatalf("expected zerr error, got %T", err)
	}
	step, _ := zErr.Metadata()["step"].(string)
	return step
}
