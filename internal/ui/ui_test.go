package ui

import (
	"image"
	"reflect"
	"testing"
)

func press(x, y int) Pointer   { return Pointer{Pos: image.Pt(x, y), Down: true, JustPressed: true} }
func hold(x, y int) Pointer    { return Pointer{Pos: image.Pt(x, y), Down: true} }
func release(x, y int) Pointer { return Pointer{Pos: image.Pt(x, y), JustReleased: true} }
func idle(x, y int) Pointer    { return Pointer{Pos: image.Pt(x, y)} }

func TestButtonClick(t *testing.T) {
	tests := []struct {
		name   string
		frames []Pointer
		want   bool
	}{
		{"press and release inside", []Pointer{press(15, 15), release(15, 15)}, true},
		{"release outside", []Pointer{press(15, 15), hold(50, 50), release(50, 50)}, false},
		{"press outside release inside", []Pointer{press(50, 50), hold(15, 15), release(15, 15)}, false},
		{"hover only", []Pointer{idle(15, 15), idle(16, 16)}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewButton(image.Rect(10, 10, 30, 30), "ok")
			clicked := false
			for _, p := range tt.frames {
				if b.Update(p) {
					clicked = true
				}
			}
			if clicked != tt.want {
				t.Errorf("clicked = %v, want %v", clicked, tt.want)
			}
			if b.Pressed() {
				t.Error("button still pressed after release")
			}
		})
	}
}

func TestButtonHover(t *testing.T) {
	b := NewButton(image.Rect(10, 10, 30, 30), "ok")
	b.Update(idle(20, 20))
	if !b.Hovered() {
		t.Error("Hovered() = false inside bounds")
	}
	b.Update(idle(40, 20))
	if b.Hovered() {
		t.Error("Hovered() = true outside bounds")
	}
}

func newTestStepper() *Stepper {
	// value box 0..50, arrows 50..70; up arrow y 0..15, down arrow y 15..30
	return NewStepper(image.Rect(0, 0, 70, 30), 20, 1, 10, 1, 1)
}

func click(p image.Point) []Pointer {
	return []Pointer{press(p.X, p.Y), release(p.X, p.Y)}
}

func TestStepperLayout(t *testing.T) {
	s := newTestStepper()
	if got := s.ValueBox(); got != image.Rect(0, 0, 50, 30) {
		t.Errorf("ValueBox() = %v", got)
	}
	if got := s.UpArrow().Bounds; got != image.Rect(50, 0, 70, 15) {
		t.Errorf("up arrow = %v", got)
	}
	if got := s.DownArrow().Bounds; got != image.Rect(50, 15, 70, 30) {
		t.Errorf("down arrow = %v", got)
	}
}

func TestStepperArrows(t *testing.T) {
	s := newTestStepper()
	up := image.Pt(60, 5)
	down := image.Pt(60, 25)

	for i := 0; i < 3; i++ {
		changed := false
		for _, p := range click(up) {
			changed = s.Update(p) || changed
		}
		if !changed {
			t.Fatalf("click %d on up arrow did not change the value", i)
		}
	}
	if s.Value() != 4 {
		t.Fatalf("Value() = %d after three increments, want 4", s.Value())
	}

	for _, p := range click(down) {
		s.Update(p)
	}
	if s.Value() != 3 {
		t.Errorf("Value() = %d after decrement, want 3", s.Value())
	}
}

func TestStepperBounds(t *testing.T) {
	s := newTestStepper()
	if s.Decrement() {
		t.Error("Decrement at min reported a change")
	}
	if s.Value() != 1 {
		t.Errorf("Value() = %d, want 1", s.Value())
	}

	s.Set(10)
	if s.Increment() {
		t.Error("Increment at max reported a change")
	}
	if s.Value() != 10 {
		t.Errorf("Value() = %d, want 10", s.Value())
	}

	s.Set(42)
	if s.Value() != 10 {
		t.Errorf("Set(42) = %d, want 10", s.Value())
	}
	s.Set(-5)
	if s.Value() != 1 {
		t.Errorf("Set(-5) = %d, want 1", s.Value())
	}
}

func newTestSlider() *Slider {
	// 900 units over 450 px: 2 units per pixel
	return NewSlider(image.Rect(100, 0, 550, 24), 100, 1000, 200, 12, 400)
}

func TestSliderValueAt(t *testing.T) {
	s := newTestSlider()
	tests := []struct {
		x    int
		want int
	}{
		{100, 100},
		{550, 1000},
		{325, 550},
		{0, 100},
		{900, 1000},
	}
	for _, tt := range tests {
		if got := s.ValueAt(tt.x); got != tt.want {
			t.Errorf("ValueAt(%d) = %d, want %d", tt.x, got, tt.want)
		}
	}
}

func TestSliderXForRoundTrip(t *testing.T) {
	s := newTestSlider()
	for _, v := range []int{100, 300, 550, 1000} {
		if got := s.ValueAt(s.XFor(v)); got != v {
			t.Errorf("ValueAt(XFor(%d)) = %d", v, got)
		}
	}
}

func TestSliderDrag(t *testing.T) {
	s := newTestSlider()

	if !s.Update(press(150, 12)) {
		t.Fatal("press on track did not change the value")
	}
	if s.Value() != 200 {
		t.Fatalf("Value() = %d after press, want 200", s.Value())
	}
	if !s.Dragging() {
		t.Fatal("not dragging after press")
	}

	// dragging continues outside the bounds and clamps
	s.Update(hold(900, 200))
	if s.Value() != 1000 {
		t.Errorf("Value() = %d dragged past the end, want 1000", s.Value())
	}

	s.Update(release(900, 200))
	if s.Dragging() {
		t.Error("still dragging after release")
	}
	if s.Update(idle(150, 12)) {
		t.Error("value changed without a press")
	}
}

func TestSliderIgnoresPressOutside(t *testing.T) {
	s := newTestSlider()
	if s.Update(press(300, 100)) {
		t.Error("press outside the slider changed the value")
	}
	if s.Update(hold(150, 12)) {
		t.Error("drag started from outside changed the value")
	}
	if s.Value() != 400 {
		t.Errorf("Value() = %d, want 400", s.Value())
	}
}

func TestSliderTicks(t *testing.T) {
	s := newTestSlider()
	want := []int{100, 300, 500, 700, 900}
	if got := s.Ticks(); !reflect.DeepEqual(got, want) {
		t.Errorf("Ticks() = %v, want %v", got, want)
	}
}

func TestSliderKnob(t *testing.T) {
	s := newTestSlider()
	k := s.Knob()
	if k.Dx() != 12 || k.Dy() != 24 {
		t.Errorf("knob size %dx%d, want 12x24", k.Dx(), k.Dy())
	}
	if center := k.Min.X + k.Dx()/2; center != s.XFor(400) {
		t.Errorf("knob centered at %d, want %d", center, s.XFor(400))
	}
}

func TestSliderGrabAtEnd(t *testing.T) {
	s := newTestSlider()
	if !s.Update(press(s.XFor(1000), 12)) {
		t.Fatal("press on the knob at the end of the track was ignored")
	}
	if s.Value() != 1000 {
		t.Errorf("Value() = %d, want 1000", s.Value())
	}
}
