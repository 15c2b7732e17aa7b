package game

import (
	"fmt"
	"image"
	"image/color"
	"strconv"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/track-designer/internal/config"
	"github.com/iburimskiy/track-designer/internal/ui"
)

var (
	backgroundColor = color.RGBA{R: 30, G: 34, B: 42, A: 255}
	panelColor      = color.RGBA{R: 192, G: 192, B: 192, A: 255} // light gray
	panelBorder     = color.RGBA{R: 64, G: 64, B: 64, A: 255}    // dark gray
	laneColor       = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	obstacleColor   = color.RGBA{R: 255, G: 0, B: 0, A: 255}

	buttonColor  = color.RGBA{R: 100, G: 120, B: 160, A: 255}
	borderColor  = color.RGBA{R: 150, G: 170, B: 200, A: 255}
	fieldColor   = color.RGBA{R: 20, G: 25, B: 35, A: 255}
	trackColor   = color.RGBA{R: 60, G: 70, B: 90, A: 255}
	knobColor    = color.RGBA{R: 220, G: 225, B: 235, A: 255}
	tickColor    = color.RGBA{R: 150, G: 160, B: 180, A: 255}
	chevronColor = color.RGBA{R: 255, G: 255, B: 255, A: 255}
)

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)

	g.drawLanePanel(screen)
	g.drawLanes(screen)

	p := g.panel
	for _, l := range p.Labels {
		ebitenutil.DebugPrintAt(screen, l.Text, l.Pos.X, l.Pos.Y)
	}
	drawStepper(screen, p.Count)
	drawButton(screen, p.Add)
	drawButton(screen, p.Remove)
	drawSlider(screen, p.Length)

	d := p.Design()
	status := fmt.Sprintf("Tracks: %d  Length: %d  |  Up/Down: tracks, Left/Right/PgUp/PgDn: length, Esc: quit", d.Count, d.Length)
	ebitenutil.DebugPrintAt(screen, status, config.LabelX, config.ScreenHeight-24)
}

func (g *Game) drawLanePanel(screen *ebiten.Image) {
	x, y := float32(config.PanelX), float32(config.PanelY)
	w, h := float32(config.PanelWidth), float32(config.PanelHeight)
	vector.DrawFilledRect(screen, x, y, w, h, panelColor, false)
	vector.StrokeRect(screen, x, y, w, h, config.PanelBorder, panelBorder, false)
}

func (g *Game) drawLanes(screen *ebiten.Image) {
	for _, lane := range g.panel.Lanes() {
		x, y, w, h := rectF(lane.Bounds)
		vector.DrawFilledRect(screen, x, y, w, h, laneColor, false)
		for _, ob := range lane.Obstacles {
			x, y, w, h := rectF(ob)
			vector.DrawFilledRect(screen, x, y, w, h, obstacleColor, false)
		}
	}
}

func drawButton(screen *ebiten.Image, b *ui.Button) {
	bg := buttonColor
	if b.Pressed() {
		bg = shade(buttonColor, 0.6)
	} else if b.Hovered() {
		bg = shade(buttonColor, 0.8)
	}

	x, y, w, h := rectF(b.Bounds)
	vector.DrawFilledRect(screen, x, y, w, h, bg, false)
	vector.StrokeRect(screen, x, y, w, h, 2, borderColor, false)

	if b.Text == "" {
		return
	}
	textX := b.Bounds.Min.X + (b.Bounds.Dx()-textWidth(b.Text))/2
	textY := b.Bounds.Min.Y + (b.Bounds.Dy()-16)/2
	ebitenutil.DebugPrintAt(screen, b.Text, textX, textY)
}

func drawStepper(screen *ebiten.Image, s *ui.Stepper) {
	box := s.ValueBox()
	x, y, w, h := rectF(box)
	vector.DrawFilledRect(screen, x, y, w, h, fieldColor, false)
	vector.StrokeRect(screen, x, y, w, h, 2, borderColor, false)

	v := strconv.Itoa(s.Value())
	ebitenutil.DebugPrintAt(screen, v, box.Max.X-textWidth(v)-6, box.Min.Y+(box.Dy()-16)/2)

	drawButton(screen, s.UpArrow())
	drawChevron(screen, s.UpArrow().Bounds, true)
	drawButton(screen, s.DownArrow())
	drawChevron(screen, s.DownArrow().Bounds, false)
}

// drawChevron draws a small ^ or v centered in r.
func drawChevron(screen *ebiten.Image, r image.Rectangle, up bool) {
	cx := float32(r.Min.X+r.Max.X) / 2
	cy := float32(r.Min.Y+r.Max.Y) / 2
	const dx, dy = 4, 2
	tip, base := cy-dy, cy+dy
	if !up {
		tip, base = base, tip
	}
	vector.StrokeLine(screen, cx-dx, base, cx, tip, 1.5, chevronColor, true)
	vector.StrokeLine(screen, cx, tip, cx+dx, base, 1.5, chevronColor, true)
}

func drawSlider(screen *ebiten.Image, s *ui.Slider) {
	midY := float32(s.Bounds.Min.Y+s.Bounds.Max.Y) / 2
	left, right := float32(s.Bounds.Min.X), float32(s.Bounds.Max.X)
	vector.DrawFilledRect(screen, left, midY-3, right-left, 6, trackColor, false)

	// major ticks with their labels underneath
	for _, v := range s.Ticks() {
		tx := float32(s.XFor(v))
		ty := float32(s.Bounds.Max.Y)
		vector.StrokeLine(screen, tx, ty, tx, ty+config.TickLength, 1, tickColor, false)
		label := strconv.Itoa(v)
		ebitenutil.DebugPrintAt(screen, label, int(tx)-textWidth(label)/2, s.Bounds.Max.Y+config.TickLength+2)
	}

	knob := knobColor
	if s.Dragging() {
		knob = shade(knobColor, 0.75)
	} else if s.Hovered() {
		knob = shade(knobColor, 0.9)
	}
	x, y, w, h := rectF(s.Knob())
	vector.DrawFilledRect(screen, x, y, w, h, knob, false)
	vector.StrokeRect(screen, x, y, w, h, 1, borderColor, false)

	v := strconv.Itoa(s.Value())
	ebitenutil.DebugPrintAt(screen, v, s.Bounds.Max.X+s.KnobWidth, s.Bounds.Min.Y+4)
}
