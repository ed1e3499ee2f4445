package automation_test

import (
	"context"
	"errors"
	"testing"
	"testing/synctest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/stravex/internal/core/domain"
	"go.trai.ch/stravex/internal/core/ports"
	"go.trai.ch/stravex/internal/core/ports/mocks"
	"go.trai.ch/stravex/internal/engine/automation"
	"go.uber.org/mock/gomock"
)

var waitPoll = domain.Poll{Timeout: 2 * time.Second, Interval: 200 * time.Millisecond}

func TestWaitForChange_DetectsChange(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		ctrl := gomock.NewController(t)
		root := mocks.NewMockElement(ctrl)

		grid := el(domain.RolePane, "Grid")
		dialog := el(domain.RoleWindow, "Save As")

		gomock.InOrder(
			root.EXPECT().Children().Return([]ports.Element{grid}, nil),
			root.EXPECT().Children().Return([]ports.Element{grid}, nil),
			root.EXPECT().Children().Return([]ports.Element{grid}, nil),
			root.EXPECT().Children().Return([]ports.Element{grid, dialog}, nil),
		)

		start := time.Now()
		changed, err := automation.WaitForChange(context.Background(), root, waitPoll)

		require.NoError(t, err)
		assert.True(t, changed)
		assert.Equal(t, 3*waitPoll.Interval, time.Since(start))
	})
}

func TestWaitForChange_TimesOut(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		ctrl := gomock.NewController(t)
		root := mocks.NewMockElement(ctrl)
		grid := el(domain.RolePane, "Grid")
		root.EXPECT().Children().Return([]ports.Element{grid}, nil).AnyTimes()

		start := time.Now()
		changed, err := automation.WaitForChange(context.Background(), root, waitPoll)

		require.NoError(t, err)
		assert.False(t, changed)
		assert.Equal(t, waitPoll.Timeout, time.Since(start))
	})
}

func TestWaitForChange_IsOrderSensitive(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		ctrl := gomock.NewController(t)
		root := mocks.NewMockElement(ctrl)
		a := el(domain.RolePane, "A")
		b := el(domain.RolePane, "B")

		gomock.InOrder(
			root.EXPECT().Children().Return([]ports.Element{a, b}, nil),
			root.EXPECT().Children().Return([]ports.Element{b, a}, nil),
		)

		changed, err := automation.WaitForChange(context.Background(), root, waitPoll)
		require.NoError(t, err)
		assert.True(t, changed)
	})
}

func TestWaitForChange_Canceled(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		ctrl := gomock.NewController(t)
		root := mocks.NewMockElement(ctrl)
		root.EXPECT().Children().Return(nil, nil).AnyTimes()

		ctx, cancel := context.WithTimeout(context.Background(), 500*time.Millisecond)
		defer cancel()

		changed, err := automation.WaitForChange(ctx, root, waitPoll)
		require.ErrorIs(t, err, context.DeadlineExceeded)
		assert.False(t, changed)
	})
}

func TestTakeSnapshot(t *testing.T) {
	gone := el(domain.RoleButton, "Gone").with(func(e *fakeElement) { e.hidden = true })
	nameless := el(domain.RoleText, "").with(func(e *fakeElement) {
		e.noName = true
		e.id = ""
	})
	root := &fakeElement{role: domain.RolePane}

	// Hidden children are filtered by Children; snapshot also skips any
	// enumerated child that no longer exists.
	root.children = []*fakeElement{el(domain.RolePane, "Grid"), nameless}
	snap := automation.TakeSnapshot(root)
	assert.Equal(t, domain.Snapshot{
		{ID: "Grid", Role: domain.RolePane, Name: "Grid"},
		{ID: "", Role: domain.RoleText, Name: ""},
	}, snap)

	ctrl := gomock.NewController(t)
	mixed := mocks.NewMockElement(ctrl)
	mixed.EXPECT().Children().Return([]ports.Element{gone}, nil)
	assert.Empty(t, automation.TakeSnapshot(mixed))

	broken := mocks.NewMockElement(ctrl)
	broken.EXPECT().Children().Return(nil, errors.New("element not available"))
	assert.Empty(t, automation.TakeSnapshot(broken))
}
