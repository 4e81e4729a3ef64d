package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/golangdaddy/chasedrive/pkg/camera"
	"github.com/golangdaddy/chasedrive/pkg/vehicle"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileName), []byte(body), 0644))
	return dir
}

func TestLoad_DefaultValuesWithoutFile(t *testing.T) {
	cfg, err := Load(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 1.0, cfg.FrameDelta)
	assert.Equal(t, Window{Title: "Chase Drive", Width: 1024, Height: 600}, cfg.Window)
	assert.Equal(t, Input{GamepadLayout: "stick"}, cfg.Input)
	assert.Equal(t, vehicle.DefaultPhysics(), cfg.Physics)
	assert.Equal(t, camera.DefaultConfig(), cfg.Camera)
}

func TestLoad_WithValidConfigFile(t *testing.T) {
	dir := writeConfig(t, `{
		"logLevel": "debug",
		"frameDelta": 0.016666666666666666,
		"input": { "gamepadLayout": "triggers" },
		"physics": { "maxSpeed": 20, "friction": 0.9 },
		"camera": { "offset": [1, 6, 12], "positionLerp": 0.25, "followHeading": true }
	}`)

	cfg, err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.LogLevel)
	assert.InDelta(t, 1.0/60, cfg.FrameDelta, 1e-12)
	assert.Equal(t, "triggers", cfg.Input.GamepadLayout)
	assert.True(t, cfg.Camera.FollowHeading)
	assert.Equal(t, 20.0, cfg.Physics.MaxSpeed)
	assert.Equal(t, 0.9, cfg.Physics.Friction)
	assert.Equal(t, vehicle.DefaultPhysics().Acceleration, cfg.Physics.Acceleration)
	assert.Equal(t, mgl64.Vec3{1, 6, 12}, cfg.Camera.Offset)
	assert.Equal(t, 0.25, cfg.Camera.PositionLerp)
	assert.Equal(t, camera.DefaultConfig().RotationLerp, cfg.Camera.RotationLerp)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("CHASEDRIVE_PHYSICS_MAXSPEED", "30")
	t.Setenv("CHASEDRIVE_LOGLEVEL", "warn")

	cfg, err := Load(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, 30.0, cfg.Physics.MaxSpeed)
	assert.Equal(t, "warn", cfg.LogLevel)
}

func TestLoad_MalformedFile(t *testing.T) {
	dir := writeConfig(t, `{ "physics": `)

	_, err := Load(dir)
	assert.ErrorContains(t, err, "error reading config file")
}

func TestLoad_InvalidPhysics(t *testing.T) {
	dir := writeConfig(t, `{ "physics": { "friction": 1.5 } }`)

	_, err := Load(dir)
	assert.ErrorContains(t, err, "invalid physics")
}

func TestLoad_InvalidLerp(t *testing.T) {
	dir := writeConfig(t, `{ "camera": { "rotationLerp": 0 } }`)

	_, err := Load(dir)
	assert.ErrorContains(t, err, "lerp")
}

func TestLoad_UnknownGamepadLayout(t *testing.T) {
	dir := writeConfig(t, `{ "input": { "gamepadLayout": "wheel" } }`)

	_, err := Load(dir)
	assert.ErrorContains(t, err, "gamepad layout")
}

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, vehicle.DefaultPhysics(), cfg.Physics)
	assert.Equal(t, 1024, cfg.Window.Width)
	assert.False(t, cfg.Camera.FollowHeading)
}

func TestDefault_PanicsOnBadEnvironment(t *testing.T) {
	t.Setenv("CHASEDRIVE_PHYSICS_MAXSPEED", "-1")

	assert.PanicsWithValue(t,
		"default config: invalid physics: maxSpeed must be positive, got -1",
		func() { Default() })
}
