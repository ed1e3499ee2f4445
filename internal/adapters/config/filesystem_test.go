package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/stravex/internal/adapters/config"
)

func TestOSFS(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "stravex.yaml")
	require.NoError(t, os.WriteFile(path, []byte("version: \"1\"\n"), 0o600))

	fsys := config.NewOSFS()

	info, err := fsys.Stat(path)
	require.NoError(t, err)
	assert.False(t, info.IsDir())

	data, err := fsys.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "version: \"1\"\n", string(data))
}

func TestMapFSAdapter_PathsOutsideRoot(t *testing.T) {
	fsys := config.NewMapFSAdapter("/work", fstest.MapFS{
		"stravex.yaml": &fstest.MapFile{Data: []byte("x")},
	})

	_, err := fsys.ReadFile("/work/stravex.yaml")
	require.NoError(t, err)

	_, err = fsys.ReadFile("/workspace/stravex.yaml")
	require.Error(t, err)

	info, err := fsys.Stat("/work")
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}
