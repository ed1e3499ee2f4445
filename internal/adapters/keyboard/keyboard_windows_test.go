//go:build windows

package keyboard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewInjector_DeclaresDPIAwareness(t *testing.T) {
	isAware := user32.NewProc("IsProcessDPIAware")
	require.NoError(t, isAware.Find())

	_ = newInjector()

	aware, _, _ := isAware.Call()
	assert.NotZero(t, aware, "clicks would use scaled coordinates")
}
