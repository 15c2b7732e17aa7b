// Package ui implements the track designer's controls as plain state machines.
//
// Widgets know nothing about the windowing toolkit. Each frame the caller
// samples the mouse into a Pointer and passes it to every widget's Update;
// drawing reads the widget state back.
package ui

import (
	"image"
	"math"
)

// Pointer is one frame's mouse sample in logical screen coordinates.
type Pointer struct {
	Pos          image.Point
	Down         bool
	JustPressed  bool
	JustReleased bool
}

// Label is static text anchored at its top-left corner.
type Label struct {
	Pos  image.Point
	Text string
}

// Button fires when a press that started inside it is released inside it.
type Button struct {
	Bounds image.Rectangle
	Text   string

	hovered bool
	pressed bool
}

func NewButton(bounds image.Rectangle, text string) *Button {
	return &Button{Bounds: bounds, Text: text}
}

func (b *Button) Hovered() bool { return b.hovered }
func (b *Button) Pressed() bool { return b.pressed }

// Update feeds one frame of input and reports whether the button was clicked.
func (b *Button) Update(p Pointer) bool {
	b.hovered = p.Pos.In(b.Bounds)

	if b.hovered && p.JustPressed {
		b.pressed = true
	}
	clicked := false
	if p.JustReleased {
		clicked = b.pressed && b.hovered
		b.pressed = false
	}
	return clicked
}

// Stepper is a bounded integer field with up and down arrows on its right edge.
type Stepper struct {
	Min, Max, Step int

	box   image.Rectangle
	up    *Button
	down  *Button
	value int
}

// NewStepper lays out a value box with the arrow column arrowWidth wide
// inside bounds.
func NewStepper(bounds image.Rectangle, arrowWidth, min, max, step, value int) *Stepper {
	split := bounds.Max.X - arrowWidth
	mid := bounds.Min.Y + bounds.Dy()/2
	s := &Stepper{
		Min:  min,
		Max:  max,
		Step: step,
		box:  image.Rect(bounds.Min.X, bounds.Min.Y, split, bounds.Max.Y),
		up:   NewButton(image.Rect(split, bounds.Min.Y, bounds.Max.X, mid), ""),
		down: NewButton(image.Rect(split, mid, bounds.Max.X, bounds.Max.Y), ""),
	}
	s.value = clampInt(value, min, max)
	return s
}

func (s *Stepper) Value() int                { return s.value }
func (s *Stepper) ValueBox() image.Rectangle { return s.box }
func (s *Stepper) UpArrow() *Button          { return s.up }
func (s *Stepper) DownArrow() *Button        { return s.down }

// Set clamps v into range and reports whether the value changed.
func (s *Stepper) Set(v int) bool {
	v = clampInt(v, s.Min, s.Max)
	if v == s.value {
		return false
	}
	s.value = v
	return true
}

func (s *Stepper) Increment() bool { return s.Set(s.value + s.Step) }
func (s *Stepper) Decrement() bool { return s.Set(s.value - s.Step) }

// Update handles arrow clicks and reports whether the value changed.
func (s *Stepper) Update(p Pointer) bool {
	changed := false
	if s.up.Update(p) {
		changed = s.Increment() || changed
	}
	if s.down.Update(p) {
		changed = s.Decrement() || changed
	}
	return changed
}

// Slider is a horizontal integer slider. Pressing anywhere on it jumps the
// knob to the cursor and drags until the button is released.
type Slider struct {
	Bounds    image.Rectangle
	Min, Max  int
	MajorTick int
	KnobWidth int

	value    int
	hovered  bool
	dragging bool
}

func NewSlider(bounds image.Rectangle, min, max, majorTick, knobWidth, value int) *Slider {
	return &Slider{
		Bounds:    bounds,
		Min:       min,
		Max:       max,
		MajorTick: majorTick,
		KnobWidth: knobWidth,
		value:     clampInt(value, min, max),
	}
}

func (s *Slider) Value() int     { return s.value }
func (s *Slider) Hovered() bool  { return s.hovered }
func (s *Slider) Dragging() bool { return s.dragging }

// Set clamps v into range and reports whether the value changed.
func (s *Slider) Set(v int) bool {
	v = clampInt(v, s.Min, s.Max)
	if v == s.value {
		return false
	}
	s.value = v
	return true
}

// Update feeds one frame of input and reports whether the value changed.
func (s *Slider) Update(p Pointer) bool {
	s.hovered = p.Pos.In(s.HitArea())

	if s.hovered && p.JustPressed {
		s.dragging = true
	}
	changed := false
	if s.dragging {
		changed = s.Set(s.ValueAt(p.Pos.X))
	}
	if p.JustReleased || !p.Down {
		s.dragging = false
	}
	return changed
}

// HitArea is Bounds widened by half a knob on each side, so the knob can be
// grabbed at either end of the track.
func (s *Slider) HitArea() image.Rectangle {
	r := s.Bounds
	r.Min.X -= s.KnobWidth / 2
	r.Max.X += s.KnobWidth / 2
	return r
}

// ValueAt maps a screen x coordinate to the nearest slider value.
func (s *Slider) ValueAt(x int) int {
	w := s.Bounds.Dx()
	if w <= 0 {
		return s.Min
	}
	frac := float64(x-s.Bounds.Min.X) / float64(w)
	return clampInt(s.Min+int(math.Round(frac*float64(s.Max-s.Min))), s.Min, s.Max)
}

// XFor is the inverse of ValueAt.
func (s *Slider) XFor(v int) int {
	if s.Max == s.Min {
		return s.Bounds.Min.X
	}
	frac := float64(clampInt(v, s.Min, s.Max)-s.Min) / float64(s.Max-s.Min)
	return s.Bounds.Min.X + int(math.Round(frac*float64(s.Bounds.Dx())))
}

// Knob is the knob rectangle centered on the current value.
func (s *Slider) Knob() image.Rectangle {
	x := s.XFor(s.value) - s.KnobWidth/2
	return image.Rect(x, s.Bounds.Min.Y, x+s.KnobWidth, s.Bounds.Max.Y)
}

// Ticks lists the labelled tick values, every MajorTick starting at Min.
func (s *Slider) Ticks() []int {
	if s.MajorTick <= 0 {
		return nil
	}
	var ticks []int
	for v := s.Min; v <= s.Max; v += s.MajorTick {
		ticks = append(ticks, v)
	}
	return ticks
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
