package main

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/stravex/internal/app"
	"go.trai.ch/stravex/internal/core/domain"
	"go.trai.ch/stravex/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func newProvider(t *testing.T) (ComponentProvider, *mocks.MockConfigLoader, *mocks.MockLogger) {
	t.Helper()
	ctrl := gomock.NewController(t)

	mockLoader := mocks.NewMockConfigLoader(ctrl)
	mockLogger := mocks.NewMockLogger(ctrl)
	application := app.New(mockLoader, mocks.NewMockAutomation(ctrl), mockLogger, nil)

	provider := func(_ context.Context) (*app.Components, func(), error) {
		return &app.Components{
			App:    application,
			Logger: mockLogger,
		}, func() {}, nil
	}
	return provider, mockLoader, mockLogger
}

// TestRun_Success verifies that the run function returns 0 when the command succeeds.
func TestRun_Success(t *testing.T) {
	provider, _, _ := newProvider(t)

	exitCode := run(context.Background(), []string{"version"}, new(bytes.Buffer), provider)

	assert.Equal(t, 0, exitCode)
}

// TestRun_InitializationError verifies that run returns 1 when component initialization fails.
func TestRun_InitializationError(t *testing.T) {
	provider := func(_ context.Context) (*app.Components, func(), error) {
		return nil, nil, errors.New("init failed")
	}

	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"version"}, stderr, provider)

	assert.Equal(t, 1, exitCode)
	assert.Contains(t, stderr.String(), "Error: init failed")
}

// TestRun_Unconfirmed verifies that a run without --yes is refused and logged.
func TestRun_Unconfirmed(t *testing.T) {
	provider, mockLoader, mockLogger := newProvider(t)
	mockLoader.EXPECT().Load("").Return(domain.DefaultConfig(), nil)
	mockLogger.EXPECT().Error(gomock.Any()).Do(func(err error) {
		assert.ErrorIs(t, err, domain.ErrPreconditionsUnconfirmed)
	})

	exitCode := run(context.Background(), []string{"run", "--period", "2025.03"}, new(bytes.Buffer), provider,
		func(a *app.App) { a.WithDisableTick() },
	)

	assert.Equal(t, 1, exitCode)
}

// TestRun_ConfigError verifies that a failing config load exits with 1.
func TestRun_ConfigError(t *testing.T) {
	provider, mockLoader, mockLogger := newProvider(t)
	mockLoader.EXPECT().Load("broken.yaml").Return(nil, domain.ErrConfigParseFailed)
	mockLogger.EXPECT().Error(gomock.Any())

	exitCode := run(context.Background(), []string{"entities", "--config", "broken.yaml"}, new(bytes.Buffer), provider)

	assert.Equal(t, 1, exitCode)
}
