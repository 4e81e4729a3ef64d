package game

import (
	"math"
	"testing"

	"github.com/golangdaddy/chasedrive/pkg/config"
	"github.com/golangdaddy/chasedrive/pkg/input/device"
	"github.com/golangdaddy/chasedrive/pkg/models"
	"github.com/golangdaddy/chasedrive/pkg/ui"
	"github.com/golangdaddy/chasedrive/pkg/vehicle"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCarCorners(t *testing.T) {
	v := &vehicle.State{X: 10, Z: -5, Yaw: math.Pi / 2}

	c := carCorners(v, 1.2)

	// facing -X: front left is towards +Z
	assert.InDelta(t, 10-carHalfLength, c[0].X(), 1e-12)
	assert.InDelta(t, -5+carHalfWidth, c[0].Z(), 1e-12)
	assert.InDelta(t, 1.2, c[0].Y(), 1e-12)
	assert.InDelta(t, 10+carHalfLength, c[2].X(), 1e-12)
	assert.InDelta(t, -5-carHalfWidth, c[2].Z(), 1e-12)
}

func TestSpeedColors(t *testing.T) {
	assert.Equal(t, uint8(100), speedColor(0.2).R)
	assert.Equal(t, uint8(255), speedColor(0.6).G)
	assert.Equal(t, uint8(100), speedColor(0.9).G)

	assert.Equal(t, uint8(100), gaugeColor(0).R)
	assert.Equal(t, uint8(255), gaugeColor(0.5).R)
	assert.Equal(t, uint8(0), gaugeColor(1).B)
}

func TestNewGameplayScreen_UsesCarPhysics(t *testing.T) {
	cfg := config.Default()
	selected := models.CarInventory.GetAllCars()[4]

	gs := NewGameplayScreen(cfg, selected, zerolog.Nop(), nil)

	assert.Equal(t, selected.Physics(cfg.Physics), gs.Sim().Physics())
	assert.Equal(t, vehicle.State{}, *gs.Sim().Vehicle())
}

func TestGame_ScreenFlow(t *testing.T) {
	g := NewGame(config.Default(), zerolog.Nop())
	_, ok := g.Screen().(*ui.TitleScreen)
	require.True(t, ok)

	g.showGarage()
	_, ok = g.Screen().(*ui.GarageScreen)
	require.True(t, ok)

	g.startGameplay(nil)
	gs, ok := g.Screen().(*GameplayScreen)
	require.True(t, ok)
	assert.Equal(t, models.CarInventory.Default(), gs.selected)

	w, h := g.Layout(0, 0)
	assert.Equal(t, 1024, w)
	assert.Equal(t, 600, h)
}

func TestGameplay_PauseFreezesSimulation(t *testing.T) {
	gs := NewGameplayScreen(config.Default(), nil, zerolog.Nop(), nil)
	gs.Sim().Vehicle().Speed = 6

	gs.togglePause()
	require.True(t, gs.Sim().Paused())
	for i := 0; i < 20; i++ {
		gs.Sim().Tick(gs.frameDelta)
	}
	assert.Equal(t, vehicle.State{Speed: 6}, *gs.Sim().Vehicle())
	assert.Equal(t, uint64(0), gs.Sim().Ticks())

	gs.togglePause()
	assert.False(t, gs.Sim().Paused())
}

func TestButtonEdge(t *testing.T) {
	var b buttonEdge
	assert.False(t, b.pressed(false))
	assert.True(t, b.pressed(true))
	assert.False(t, b.pressed(true), "held is not a new press")
	assert.False(t, b.pressed(false))
	assert.True(t, b.pressed(true))
}

func TestNewGameplayScreen_GamepadLayoutFromConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Input.GamepadLayout = "triggers"

	gs := NewGameplayScreen(cfg, nil, zerolog.Nop(), nil)

	assert.Equal(t, device.LayoutTriggers, gs.gamepad.Layout())
	assert.Equal(t, 1.0, gs.frameDelta)
}
