package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, run(dir))

	data, err := os.ReadFile(filepath.Join(dir, "testcases.json"))
	require.NoError(t, err)

	var index struct {
		TestCases []jsonCase `json:"testcases"`
	}
	require.NoError(t, json.Unmarshal(data, &index))
	require.NotEmpty(t, index.TestCases)

	for _, c := range index.TestCases {
		info, err := os.Stat(filepath.Join(dir, c.File))
		require.NoError(t, err, c.Name)
		assert.Positive(t, info.Size(), c.Name)
		assert.Positive(t, c.Width, c.Name)
		assert.Positive(t, c.Height, c.Name)
	}
}

func TestRunUnwritable(t *testing.T) {
	dir := t.TempDir()
	// a directory where the index file should go makes the final write fail
	require.NoError(t, os.Mkdir(filepath.Join(dir, "testcases.json"), 0o755))
	assert.Error(t, run(dir))
}
