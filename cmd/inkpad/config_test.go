package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"seehuhn.de/go/ink"
	"seehuhn.de/go/ink/client"
)

func TestDefaultConfigValid(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, ink.Pen, cfg.Pen.Tool)
	assert.Equal(t, float64(ink.DefaultStrokeSize), cfg.Pen.Size)
	assert.Equal(t, client.DefaultBaseURL, cfg.Service.URL)
}

func TestLoadConfigEmptyPath(t *testing.T) {
	cfg, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func writeConfig(t *testing.T, dir, text string) string {
	t.Helper()
	path := filepath.Join(dir, "inkpad.yaml")
	require.NoError(t, os.WriteFile(path, []byte(text), 0o644))
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, t.TempDir(), `
window:
  width: 1024
pen:
  tool: eraser
  size: 8
service:
  subject: chemistry
  level: hard
  timeout: 30s
`)
	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, 1024, cfg.Window.Width)
	assert.Equal(t, 600, cfg.Window.Height, "unset values keep their default")
	assert.Equal(t, ink.Eraser, cfg.Pen.Tool)
	assert.Equal(t, 8.0, cfg.Pen.Size)
	assert.Equal(t, client.Chemistry, cfg.Service.Subject)
	assert.Equal(t, client.Hard, cfg.Service.Level)
	assert.Equal(t, 30*time.Second, cfg.Service.Timeout)
}

func TestLoadConfigErrors(t *testing.T) {
	cases := map[string]string{
		"bad_tool":    "pen:\n  tool: brush\n",
		"bad_size":    "pen:\n  size: 40\n",
		"bad_window":  "window:\n  width: 0\n",
		"bad_subject": "service:\n  subject: history\n",
		"bad_level":   "service:\n  level: extreme\n",
		"bad_url":     "service:\n  url: not a url\n",
		"bad_yaml":    "pen: [\n",
	}
	for name, text := range cases {
		t.Run(name, func(t *testing.T) {
			path := writeConfig(t, t.TempDir(), text)
			_, err := LoadConfig(path)
			assert.Error(t, err)
		})
	}

	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestWatchConfig(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, "pen:\n  size: 4\n")

	ctx, cancel := context.WithCancel(context.Background())
	out := make(chan Config, 1)
	errc := make(chan error, 1)
	go func() { errc <- watchConfig(ctx, path, 20*time.Millisecond, out) }()

	// the watcher must be running before the file changes
	var cfg Config
	require.Eventually(t, func() bool {
		_ = os.WriteFile(path, []byte("pen:\n  size: 9\n"), 0o644)
		select {
		case cfg = <-out:
			return true
		default:
			return false
		}
	}, 5*time.Second, 100*time.Millisecond)
	assert.Equal(t, 9.0, cfg.Pen.Size)

	cancel()
	select {
	case err := <-errc:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("watcher did not stop")
	}
}

func TestDisplayFeedback(t *testing.T) {
	got := displayFeedback(`Good: $x_{1} = \alpha$ holds.`)
	assert.Equal(t, "Good: x1 = α holds.", got)

	assert.Equal(t, `x^2 = 4`, displayQuestion(`x^2 = 4`))
	assert.Equal(t, "Solve x2 = 4", displayQuestion(`\text{Solve } x^{2} = 4`))
}
