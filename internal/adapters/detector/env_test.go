package detector_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/stravex/internal/adapters/detector"
	"go.trai.ch/stravex/internal/core/domain"
)

func env(vars map[string]string) func(string) string {
	return func(key string) string { return vars[key] }
}

func TestDetect(t *testing.T) {
	tests := []struct {
		name     string
		isTTY    bool
		ci       string
		expected detector.OutputMode
	}{
		{name: "terminal without CI", isTTY: true, expected: detector.ModeTUI},
		{name: "CI=true forces linear", isTTY: true, ci: "true", expected: detector.ModeLinear},
		{name: "CI=1 forces linear", isTTY: true, ci: "1", expected: detector.ModeLinear},
		{name: "CI=false keeps the TUI", isTTY: true, ci: "false", expected: detector.ModeTUI},
		{name: "redirected output", isTTY: false, expected: detector.ModeLinear},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := detector.Detect(tt.isTTY, env(map[string]string{"CI": tt.ci}))
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestDetectEnvironment_CI(t *testing.T) {
	t.Setenv("CI", "true")
	assert.Equal(t, detector.ModeLinear, detector.DetectEnvironment())
}

func TestParseMode(t *testing.T) {
	tests := []struct {
		flag     string
		expected detector.OutputMode
	}{
		{flag: "", expected: detector.ModeAuto},
		{flag: "auto", expected: detector.ModeAuto},
		{flag: "tui", expected: detector.ModeTUI},
		{flag: "linear", expected: detector.ModeLinear},
		{flag: "ci", expected: detector.ModeLinear},
	}

	for _, tt := range tests {
		t.Run(tt.flag, func(t *testing.T) {
			got, err := detector.ParseMode(tt.flag)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}

	_, err := detector.ParseMode("fancy")
	require.ErrorContains(t, err, domain.ErrInvalidOutputMode.Error())
}

func TestResolveMode(t *testing.T) {
	tests := []struct {
		name      string
		detected  detector.OutputMode
		requested detector.OutputMode
		forceCI   bool
		expected  detector.OutputMode
	}{
		{name: "auto keeps the TUI", detected: detector.ModeTUI, requested: detector.ModeAuto, expected: detector.ModeTUI},
		{name: "auto keeps linear", detected: detector.ModeLinear, requested: detector.ModeAuto, expected: detector.ModeLinear},
		{name: "tui overrides detection", detected: detector.ModeLinear, requested: detector.ModeTUI, expected: detector.ModeTUI},
		{name: "linear overrides detection", detected: detector.ModeTUI, requested: detector.ModeLinear, expected: detector.ModeLinear},
		{name: "ci flag wins", detected: detector.ModeTUI, requested: detector.ModeTUI, forceCI: true, expected: detector.ModeLinear},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, detector.ResolveMode(tt.detected, tt.requested, tt.forceCI))
		})
	}
}

func TestOutputMode_String(t *testing.T) {
	assert.Equal(t, "auto", detector.ModeAuto.String())
	assert.Equal(t, "tui", detector.ModeTUI.String())
	assert.Equal(t, "linear", detector.ModeLinear.String())
}
