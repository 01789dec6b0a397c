package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"persp3d/internal/holding"
	"persp3d/internal/physics"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.LogLevel)

	settings, err := cfg.Settings()
	require.NoError(t, err)
	assert.Equal(t, holding.DefaultSettings(), settings)
}

func TestLoadFileOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := []byte(`
log_level: debug
grid:
  mode: rect
  rows: 7
  cols: 9
hold:
  camera_gap: 1.25
  obstacle_layers: ["obstacle"]
  center_anchor: false
`)
	require.NoError(t, os.WriteFile(path, data, 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.LogLevel)

	settings, err := cfg.Settings()
	require.NoError(t, err)

	assert.Equal(t, holding.GridRectangular, settings.GridMode)
	assert.Equal(t, 7, settings.GridRows)
	assert.Equal(t, 9, settings.GridCols)
	assert.Equal(t, float32(1.25), settings.CameraGap)
	assert.Equal(t, physics.LayerObstacle, settings.ObstacleMask)
	assert.False(t, settings.CenterAnchor)

	// Values the file doesn't mention keep their defaults.
	d := holding.DefaultSettings()
	assert.Equal(t, d.NearGap, settings.NearGap)
	assert.Equal(t, d.MaxDistance, settings.MaxDistance)
	assert.Equal(t, d.TargetAnchor, settings.TargetAnchor)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestSettingsUnknownObstacleLayer(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	cfg.Hold.ObstacleLayers = []string{"lava"}

	_, err = cfg.Settings()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown obstacle layer")
}

func TestSettingsLayerNamesCaseInsensitive(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	cfg.Hold.ObstacleLayers = []string{"Obstacle", "DEFAULT"}

	settings, err := cfg.Settings()
	require.NoError(t, err)
	assert.Equal(t, physics.LayerObstacle|physics.LayerDefault, settings.ObstacleMask)
}
