// Package game runs the track designer inside an ebiten window.
package game

import (
	"image"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/iburimskiy/track-designer/internal/config"
	"github.com/iburimskiy/track-designer/internal/designer"
	"github.com/iburimskiy/track-designer/internal/ui"
)

// Game implements ebiten.Game. All state changes and lane rebuilds happen
// inside Update, on ebiten's game thread.
type Game struct {
	panel *designer.Panel
	log   *log.Logger

	// input edge detection
	prevKey map[ebiten.Key]bool
}

func New(logger *log.Logger) *Game {
	return &Game{
		panel:   designer.NewPanel(logger),
		log:     logger,
		prevKey: map[ebiten.Key]bool{},
	}
}

// Panel exposes the controls and the current design.
func (g *Game) Panel() *designer.Panel { return g.panel }

func (g *Game) Update() error {
	justPressed := func(k ebiten.Key) bool {
		pressed := ebiten.IsKeyPressed(k)
		jp := pressed && !g.prevKey[k]
		g.prevKey[k] = pressed
		return jp
	}

	if justPressed(ebiten.KeyEscape) || justPressed(ebiten.KeyQ) {
		g.log.Info("quit requested")
		return ebiten.Termination
	}

	keys := designer.Keys{
		Up:       justPressed(ebiten.KeyArrowUp),
		Down:     justPressed(ebiten.KeyArrowDown),
		Left:     justPressed(ebiten.KeyArrowLeft),
		Right:    justPressed(ebiten.KeyArrowRight),
		PageUp:   justPressed(ebiten.KeyPageUp),
		PageDown: justPressed(ebiten.KeyPageDown),
	}
	g.panel.Handle(pointer(), keys)
	return nil
}

// pointer samples the left mouse button in logical screen coordinates.
func pointer() ui.Pointer {
	x, y := ebiten.CursorPosition()
	return ui.Pointer{
		Pos:          image.Pt(x, y),
		Down:         ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
		JustPressed:  inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
		JustReleased: inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft),
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}
