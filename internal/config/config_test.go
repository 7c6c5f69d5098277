package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "gloom.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.InDelta(t, 800.0/600.0, cfg.Aspect(), 1e-6)
}

func TestLoadMissingFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
window:
  width: 1024
  title: Helicopters
camera:
  start: [1, 2, 3]
scene:
  helicopters: 2
  helicopter_asset: assets/helicopter.glb
debug:
  print_graph: true
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 1024, cfg.Window.Width)
	assert.Equal(t, 600, cfg.Window.Height)
	assert.Equal(t, "Helicopters", cfg.Window.Title)
	assert.True(t, cfg.Window.VSync)
	assert.Equal(t, [3]float32{1, 2, 3}, cfg.Camera.Start)
	assert.Equal(t, 2, cfg.Scene.Helicopters)
	assert.Equal(t, "assets/helicopter.glb", cfg.Scene.HelicopterAsset)
	assert.Equal(t, float32(25), cfg.Scene.Altitude)
	assert.True(t, cfg.Debug.PrintGraph)
	assert.True(t, cfg.Debug.GLErrors)
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"malformed", "window: [1, 2"},
		{"wrong type", "window:\n  width: wide\n"},
		{"bad size", "window:\n  height: 0\n"},
		{"bad clip", "camera:\n  near: 10\n  far: 5\n"},
		{"bad fov", "camera:\n  fov: 4\n"},
		{"bad resolution", "scene:\n  terrain_resolution: 0\n"},
		{"bad count", "scene:\n  helicopters: -1\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			assert.Error(t, err)
		})
	}
}

func TestShippedConfigMatchesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join("..", "..", DefaultPath))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}
