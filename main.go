package main

import (
	"os"

	"github.com/golangdaddy/chasedrive/pkg/config"
	"github.com/golangdaddy/chasedrive/pkg/game"
	"github.com/golangdaddy/chasedrive/pkg/logging"
	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	// Config is read from the directory given as the first argument, or
	// the working directory.
	dir := "."
	if len(os.Args) > 1 {
		dir = os.Args[1]
	}

	cfg, err := config.Load(dir)
	if err != nil {
		bootLog := logging.New(nil, "info")
		bootLog.Fatal().Err(err).Str("dir", dir).Msg("failed to load config")
	}
	log := logging.New(nil, cfg.LogLevel)
	log.Info().
		Str("dir", dir).
		Int("width", cfg.Window.Width).
		Int("height", cfg.Window.Height).
		Float64("frameDelta", cfg.FrameDelta).
		Msg("config loaded")

	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)
	if err := ebiten.RunGame(game.NewGame(cfg, log)); err != nil {
		log.Fatal().Err(err).Msg("game loop exited")
	}
}
