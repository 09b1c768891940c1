package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"venom-editor/input"
)

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadDefaultsWithoutFile(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("HOME", t.TempDir())
	t.Setenv("VENOM_CONFIG", "")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadFileOverridesDefaults(t *testing.T) {
	path := writeFile(t, "venom.yaml", `
window:
  title: Scratch
  width: 640
  clear_color: [1, 0, 0, 1]
keys:
  forward: Up
  boost: rightshift
logging:
  level: debug
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "Scratch", cfg.Window.Title)
	assert.Equal(t, 640, cfg.Window.Width)
	assert.Equal(t, 720, cfg.Window.Height, "unset keys keep defaults")
	assert.Equal(t, [4]float32{1, 0, 0, 1}, cfg.Window.ClearColor)
	assert.Equal(t, "debug", cfg.Logging.Level)

	b, err := cfg.Bindings()
	require.NoError(t, err)
	assert.Equal(t, input.KeyUp, b.Forward)
	assert.Equal(t, input.KeyRightShift, b.Boost)
	assert.Equal(t, input.KeyS, b.Back)
}

func TestEnvOverridesFile(t *testing.T) {
	path := writeFile(t, "venom.yaml", "camera:\n  move_speed: 0.2\n")
	t.Setenv("VENOM_CAMERA_MOVE_SPEED", "0.5")
	t.Setenv("VENOM_WINDOW_HEIGHT", "1080")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.InDelta(t, 0.5, cfg.Camera.MoveSpeed, 1e-6)
	assert.Equal(t, 1080, cfg.Window.Height)
}

func TestLoadExplicitMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadMalformedFile(t *testing.T) {
	path := writeFile(t, "venom.yaml", "window: [not, a, map\n")
	_, err := Load(path)
	require.Error(t, err)
}

func TestValidateReportsEveryProblem(t *testing.T) {
	cfg := Default()
	cfg.Window.Width = 0
	cfg.Camera.FOV = 200
	cfg.Keys.Forward = "Wq"
	cfg.Keys.Boost = "LeftShfit"
	cfg.Export.ScenePath = ""

	err := cfg.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, input.ErrUnknownKeyName)
	msg := err.Error()
	assert.Contains(t, msg, "window size")
	assert.Contains(t, msg, "camera.fov")
	assert.Contains(t, msg, "keys.forward")
	assert.Contains(t, msg, "export.scene_path")
	assert.Contains(t, msg, `did you mean "LeftShift"`)
}

func TestWriteDefaultRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "venom.yaml")
	require.NoError(t, WriteDefault(path))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}
