// Package track holds the lane design state and turns it into lane
// descriptors for drawing.
package track

import (
	"image"

	"github.com/iburimskiy/track-designer/internal/config"
)

// Design is the whole user-adjustable state: how many lanes and how long.
type Design struct {
	Count  int
	Length int
}

// Lane is one rendered track with its obstacles, in logical screen units.
type Lane struct {
	Bounds    image.Rectangle
	Obstacles [config.ObstaclesPerLane]image.Rectangle
}

func NewDesign() Design {
	return Design{Count: config.DefaultTrackCount, Length: config.DefaultTrackLength}
}

// WithCount returns d with Count set to n, clamped to the stepper range.
func (d Design) WithCount(n int) Design {
	d.Count = clamp(n, config.MinTrackCount, config.MaxTrackCount)
	return d
}

// WithLength returns d with Length set to n, clamped to the slider range.
func (d Design) WithLength(n int) Design {
	d.Length = clamp(n, config.MinTrackLength, config.MaxTrackLength)
	return d
}

// AddTrack adds one lane. It reports false and leaves d unchanged at the upper bound.
func (d Design) AddTrack() (Design, bool) {
	if d.Count >= config.MaxTrackCount {
		return d, false
	}
	d.Count += config.TrackCountStep
	return d, true
}

// RemoveTrack drops one lane. It is a no-op at the lower bound.
func (d Design) RemoveTrack() (Design, bool) {
	if d.Count <= config.MinTrackCount {
		return d, false
	}
	d.Count -= config.TrackCountStep
	return d, true
}

// Render lays out d.Count lanes left to right inside a panel whose top-left
// corner is origin. Every call builds a fresh slice.
func Render(d Design, origin image.Point) []Lane {
	d = d.WithCount(d.Count).WithLength(d.Length)

	lanes := make([]Lane, 0, d.Count)
	y := origin.Y + config.LaneGap
	for i := 0; i < d.Count; i++ {
		x := origin.X + config.LaneGap + i*(config.LaneWidth+config.LaneGap)
		lane := Lane{Bounds: image.Rect(x, y, x+config.LaneWidth, y+d.Length)}
		for j := range lane.Obstacles {
			top := y + j*config.ObstacleSize
			lane.Obstacles[j] = image.Rect(x, top, x+config.ObstacleSize, top+config.ObstacleSize)
		}
		lanes = append(lanes, lane)
	}
	return lanes
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
