package game

import "github.com/vbelov/wirerun/internal/core"

// PathPoint is a sampled point on the corridor centerline together with the
// corridor half-width in effect at that location.
type PathPoint struct {
	core.Point
	HalfWidth float64
}

// Level is one generated corridor: the waypoint anchors, the sampled
// centerline, the derived wall rectangles, and the run parameters. A Level
// is immutable after generation; a fresh one is generated for every run.
type Level struct {
	difficulty Difficulty
	width      float64 // Canvas bounds the level was generated for
	height     float64

	waypoints []core.Point
	path      []PathPoint
	walls     []core.Rect

	start core.Point
	goal  core.Point

	corridorWidth float64
	speed         float64
}

// Difficulty returns the tier the level was generated for.
func (l *Level) Difficulty() Difficulty {
	return l.difficulty
}

// Bounds returns the canvas dimensions the level was generated for.
func (l *Level) Bounds() (w, h float64) {
	return l.width, l.height
}

// Start returns the run's starting point. Always left of the horizontal
// canvas midpoint.
func (l *Level) Start() core.Point {
	return l.start
}

// Goal returns the goal point. Always right of the horizontal canvas
// midpoint.
func (l *Level) Goal() core.Point {
	return l.goal
}

// Waypoints returns the generation anchors, start first and goal last.
// Callers must treat the slice as read-only.
func (l *Level) Waypoints() []core.Point {
	return l.waypoints
}

// Path returns the sampled corridor centerline in travel order.
// Callers must treat the slice as read-only.
func (l *Level) Path() []PathPoint {
	return l.path
}

// Walls returns the boundary rectangles, including the canvas-edge fence.
// Callers must treat the slice as read-only.
func (l *Level) Walls() []core.Rect {
	return l.walls
}

// CorridorWidth returns the full corridor width for this level.
func (l *Level) CorridorWidth() float64 {
	return l.corridorWidth
}

// Speed returns the character speed for this level in pixels per tick.
func (l *Level) Speed() float64 {
	return l.speed
}
