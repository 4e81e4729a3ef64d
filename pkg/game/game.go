package game

import (
	"github.com/golangdaddy/chasedrive/pkg/config"
	"github.com/golangdaddy/chasedrive/pkg/models"
	"github.com/golangdaddy/chasedrive/pkg/models/car"
	"github.com/golangdaddy/chasedrive/pkg/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog"
)

// Screen represents a UI screen interface
type Screen interface {
	Update() error
	Draw(screen *ebiten.Image)
}

// Game implements the ebiten.Game interface and manages the overall game state
type Game struct {
	cfg           *config.Config
	log           zerolog.Logger
	currentScreen Screen
}

// NewGame creates a new game instance starting at the title screen
func NewGame(cfg *config.Config, log zerolog.Logger) *Game {
	g := &Game{
		cfg: cfg,
		log: log.With().Str("component", "game").Logger(),
	}
	g.showTitle()
	return g
}

// showTitle goes back to the title screen, which leads to the garage
func (g *Game) showTitle() {
	g.currentScreen = ui.NewTitleScreen(g.showGarage)
}

func (g *Game) showGarage() {
	g.currentScreen = ui.NewGarageScreen(g.startGameplay)
}

// startGameplay transitions to driving the selected car
func (g *Game) startGameplay(selectedCar *car.Car) {
	if selectedCar == nil {
		selectedCar = models.CarInventory.Default()
	}
	if selectedCar != nil {
		g.log.Info().Str("car", selectedCar.Name()).Msg("car selected")
	}
	g.currentScreen = NewGameplayScreen(g.cfg, selectedCar, g.log, g.showGarage)
}

// Screen is the active screen
func (g *Game) Screen() Screen {
	return g.currentScreen
}

// Update handles game logic updates
func (g *Game) Update() error {
	if g.currentScreen != nil {
		return g.currentScreen.Update()
	}
	return nil
}

// Draw renders the current screen
func (g *Game) Draw(screen *ebiten.Image) {
	if g.currentScreen != nil {
		g.currentScreen.Draw(screen)
	}
}

// Layout returns the game's logical screen dimensions
func (g *Game) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	return g.cfg.Window.Width, g.cfg.Window.Height
}
