// Package designer wires the controls to the track design.
//
// A Panel owns the design and the widgets that edit it. Every input frame
// goes through Handle, which updates the design from whichever control
// changed and rebuilds the lanes before returning.
package designer

import (
	"image"

	"github.com/charmbracelet/log"

	"github.com/iburimskiy/track-designer/internal/config"
	"github.com/iburimskiy/track-designer/internal/track"
	"github.com/iburimskiy/track-designer/internal/ui"
)

// Keys holds the keys that went down this frame.
type Keys struct {
	Up, Down         bool
	Left, Right      bool
	PageUp, PageDown bool
}

type Panel struct {
	Count  *ui.Stepper
	Length *ui.Slider
	Add    *ui.Button
	Remove *ui.Button
	Labels []ui.Label

	log    *log.Logger
	design track.Design
	origin image.Point
	lanes  []track.Lane
}

// NewPanel builds the controls at their configured positions and renders
// the default design.
func NewPanel(logger *log.Logger) *Panel {
	d := track.NewDesign()
	row := config.ControlsY

	p := &Panel{
		Count: ui.NewStepper(
			image.Rect(config.StepperX, row, config.StepperX+config.StepperWidth, row+config.ControlHeight),
			config.ArrowWidth,
			config.MinTrackCount, config.MaxTrackCount, config.TrackCountStep, d.Count,
		),
		Length: ui.NewSlider(
			image.Rect(config.SliderX, config.SliderY, config.SliderX+config.SliderWidth, config.SliderY+config.SliderHeight),
			config.MinTrackLength, config.MaxTrackLength, config.LengthMajorTick, config.KnobWidth, d.Length,
		),
		Add: ui.NewButton(
			image.Rect(config.AddButtonX, row, config.AddButtonX+config.ButtonWidth, row+config.ControlHeight),
			"Add Track",
		),
		Remove: ui.NewButton(
			image.Rect(config.RemoveButtonX, row, config.RemoveButtonX+config.ButtonWidth, row+config.ControlHeight),
			"Remove Track",
		),
		Labels: []ui.Label{
			{Pos: image.Pt(config.LabelX, row+8), Text: "Number of Tracks:"},
			{Pos: image.Pt(config.LabelX, config.SliderY+4), Text: "Track Length:"},
		},
		log:    logger,
		design: d,
		origin: image.Pt(config.PanelX, config.PanelY),
	}
	p.render()
	return p
}

func (p *Panel) Design() track.Design { return p.design }

// Lanes returns the lanes of the latest render.
func (p *Panel) Lanes() []track.Lane { return p.lanes }

// Handle applies one frame of input. It reports whether the design changed,
// in which case the lanes have already been rebuilt.
func (p *Panel) Handle(ptr ui.Pointer, keys Keys) bool {
	next := p.design

	if p.Count.Update(ptr) {
		next = next.WithCount(p.Count.Value())
	}
	if p.Add.Update(ptr) {
		next = p.addTrack(next)
	}
	if p.Remove.Update(ptr) {
		next = p.removeTrack(next)
	}
	if p.Length.Update(ptr) {
		next = next.WithLength(p.Length.Value())
	}

	// Opposite keys in the same frame cancel out.
	switch {
	case keys.Up && !keys.Down:
		next = p.addTrack(next)
	case keys.Down && !keys.Up:
		next = p.removeTrack(next)
	}
	step := 0
	if keys.Right {
		step++
	}
	if keys.Left {
		step--
	}
	if keys.PageUp {
		step += config.LengthMajorTick
	}
	if keys.PageDown {
		step -= config.LengthMajorTick
	}
	if step != 0 {
		next = next.WithLength(next.Length + step)
	}

	return p.apply(next)
}

func (p *Panel) addTrack(d track.Design) track.Design {
	next, ok := d.AddTrack()
	if !ok {
		p.log.Debug("add track ignored", "count", d.Count)
	}
	return next
}

func (p *Panel) removeTrack(d track.Design) track.Design {
	next, ok := d.RemoveTrack()
	if !ok {
		p.log.Debug("remove track ignored", "count", d.Count)
	}
	return next
}

// apply makes next the current design. The controls are always brought back
// to next, since they may have moved during a frame whose edits cancel out.
func (p *Panel) apply(next track.Design) bool {
	p.Count.Set(next.Count)
	p.Length.Set(next.Length)
	if next == p.design {
		return false
	}
	p.design = next
	p.render()
	return true
}

func (p *Panel) render() {
	p.lanes = track.Render(p.design, p.origin)
	p.log.Debug("rendered tracks", "count", p.design.Count, "length", p.design.Length, "lanes", len(p.lanes))
}
