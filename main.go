package main

import (
	"errors"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/ncruces/zenity"

	"github.com/iburimskiy/track-designer/internal/config"
	"github.com/iburimskiy/track-designer/internal/game"
	"github.com/iburimskiy/track-designer/internal/logging"
)

func main() {
	logger := logging.New(os.Stderr, logging.Level(config.Debug))

	ebiten.SetWindowSize(config.WindowWidth, config.WindowHeight)
	ebiten.SetWindowTitle(config.WindowTitle)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	g := game.New(logger)
	d := g.Panel().Design()
	logger.Info("starting", "tracks", d.Count, "length", d.Length)

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		logger.Error("window failed", "err", err)
		// best effort: the dialog needs a desktop session too
		_ = zenity.Error(err.Error(), zenity.Title(config.WindowTitle), zenity.ErrorIcon)
		os.Exit(1)
	}
	logger.Info("closed")
}
