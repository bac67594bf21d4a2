package utils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPruneLogs(t *testing.T) {
	dir := t.TempDir()
	names := []string{
		"debug-20240101-100000.log",
		"debug-20240102-100000.log",
		"debug-20240103-100000.log",
		"debug-20240104-100000.log",
		"settings.json",
	}
	for _, n := range names {
		require.NoError(t, os.WriteFile(filepath.Join(dir, n), []byte("x"), 0o644))
	}

	removed, err := pruneLogs(dir, 2)
	require.NoError(t, err)
	assert.Equal(t, 2, removed)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	var left []string
	for _, e := range entries {
		left = append(left, e.Name())
	}
	assert.ElementsMatch(t, []string{
		"debug-20240103-100000.log",
		"debug-20240104-100000.log",
		"settings.json",
	}, left)
}

func TestPruneLogs_NothingToDo(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "debug-20240101-100000.log"), nil, 0o644))

	removed, err := pruneLogs(dir, 5)
	require.NoError(t, err)
	assert.Zero(t, removed)
}

func TestDebug_NoDirIsNoop(t *testing.T) {
	ConfigureDebug("")
	assert.NotPanics(t, func() { Debug("nothing %d", 1) })
}
