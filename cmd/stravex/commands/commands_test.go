package commands_test

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/stravex/cmd/stravex/commands"
	"go.trai.ch/stravex/internal/app"
	"go.trai.ch/stravex/internal/build"
	"go.trai.ch/stravex/internal/core/domain"
)

type mockApp struct {
	runFunc      func(ctx context.Context, opts app.RunOptions) error
	entitiesFunc func(configPath string) (domain.Catalog, error)
}

func (m *mockApp) Run(ctx context.Context, opts app.RunOptions) error {
	if m.runFunc != nil {
		return m.runFunc(ctx, opts)
	}
	return nil
}

func (m *mockApp) Entities(configPath string) (domain.Catalog, error) {
	if m.entitiesFunc != nil {
		return m.entitiesFunc(configPath)
	}
	return domain.DefaultCatalog(), nil
}

func TestCommands_Run(t *testing.T) {
	t.Run("wires flags correctly", func(t *testing.T) {
		var captured app.RunOptions
		called := false

		mock := &mockApp{
			runFunc: func(_ context.Context, opts app.RunOptions) error {
				captured = opts
				called = true
				return nil
			},
		}

		cli := commands.New(mock)
		cli.SetArgs([]string{
			"run", "--period", "2025.03",
			"--include", "D341_HSO_HGM,CC41_HSO_HMIN", "--include", "GH41_HSO_EOS",
			"--select-batch", "25", "--grace", "5s", "--yes",
			"--config", "ops/stravex.yaml", "-o", "linear",
		})

		require.NoError(t, cli.Execute(context.Background()))
		require.True(t, called)
		assert.Equal(t, "2025.03", captured.Period)
		assert.Equal(t, []string{"D341_HSO_HGM", "CC41_HSO_HMIN", "GH41_HSO_EOS"}, captured.Include)
		assert.Equal(t, 25, captured.SelectBatch)
		require.NotNil(t, captured.Grace)
		assert.Equal(t, 5*time.Second, *captured.Grace)
		assert.True(t, captured.Confirmed)
		assert.Equal(t, "ops/stravex.yaml", captured.ConfigPath)
		assert.Equal(t, "linear", captured.OutputMode)
		assert.False(t, captured.CI)
	})

	t.Run("defaults defer to the configuration", func(t *testing.T) {
		var captured app.RunOptions
		mock := &mockApp{
			runFunc: func(_ context.Context, opts app.RunOptions) error {
				captured = opts
				return nil
			},
		}

		cli := commands.New(mock)
		cli.SetArgs([]string{"run", "-p", "2025.03", "--ci"})

		require.NoError(t, cli.Execute(context.Background()))
		assert.Nil(t, captured.Grace)
		assert.Zero(t, captured.SelectBatch)
		assert.Empty(t, captured.Include)
		assert.False(t, captured.Confirmed)
		assert.True(t, captured.CI)
		assert.Equal(t, "auto", captured.OutputMode)
	})

	t.Run("requires a period", func(t *testing.T) {
		mock := &mockApp{
			runFunc: func(context.Context, app.RunOptions) error {
				panic("should not be called")
			},
		}

		cli := commands.New(mock)
		cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))
		cli.SetArgs([]string{"run", "--yes"})

		err := cli.Execute(context.Background())
		require.ErrorContains(t, err, `required flag(s) "period" not set`)
	})

	t.Run("returns error on run failure", func(t *testing.T) {
		mock := &mockApp{
			runFunc: func(context.Context, app.RunOptions) error {
				return errors.New("simulated error")
			},
		}

		cli := commands.New(mock)
		cli.SetArgs([]string{"run", "-p", "2025.03"})
		cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))

		err := cli.Execute(context.Background())
		require.ErrorContains(t, err, "simulated error")
	})
}

func TestCommands_Entities(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	var path string
	mock := &mockApp{
		entitiesFunc: func(configPath string) (domain.Catalog, error) {
			path = configPath
			return domain.DefaultCatalog(), nil
		},
	}

	cli := commands.New(mock)
	buf := new(bytes.Buffer)
	cli.SetOutput(buf, buf)
	cli.SetArgs([]string{"entities", "--config", "stravex.yaml"})

	require.NoError(t, cli.Execute(context.Background()))
	assert.Equal(t, "stravex.yaml", path)

	g := goldie.New(t)
	g.Assert(t, "entities", buf.Bytes())
}

func TestCommands_EntitiesError(t *testing.T) {
	mock := &mockApp{
		entitiesFunc: func(string) (domain.Catalog, error) {
			return domain.Catalog{}, domain.ErrConfigParseFailed
		},
	}

	cli := commands.New(mock)
	cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))
	cli.SetArgs([]string{"entities"})

	require.ErrorIs(t, cli.Execute(context.Background()), domain.ErrConfigParseFailed)
}

func TestCommands_LogJSON(t *testing.T) {
	var enabled []bool
	cli := commands.New(&mockApp{}, commands.WithJSONLogs(func(on bool) {
		enabled = append(enabled, on)
	}))
	cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))
	cli.SetArgs([]string{"version", "--log-json"})

	require.NoError(t, cli.Execute(context.Background()))
	assert.Equal(t, []bool{true}, enabled)
}

func TestCommands_Version(t *testing.T) {
	cli := commands.New(&mockApp{})

	buf := new(bytes.Buffer)
	cli.SetOutput(buf, buf)
	cli.SetArgs([]string{"version"})

	require.NoError(t, cli.Execute(context.Background()))
	assert.Contains(t, buf.String(), "stravex version "+build.Version)
}
