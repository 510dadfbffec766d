package game

import "github.com/vbelov/wirerun/internal/core"

// GoalSize is the side length of the goal hit-box square, centered on the
// level's goal point. Constant across all difficulties.
const GoalSize = 24.0

// edgeFence is the corridor-distance policy's safety margin: a character
// center this close to a canvas edge collides regardless of corridor
// distance.
const edgeFence = 10.0

// Tester evaluates a character against level geometry each tick. Two
// interchangeable policies exist: CorridorTester (distance from the path
// centerline, the default) and WallTester (AABB overlap with wall rects).
// Both are injected into the session, never looked up globally.
type Tester interface {
	// HitBoundary reports whether the character's bounds violate the level
	// boundary. A positive result records the character center for LastHit.
	HitBoundary(c *Character, l *Level) bool

	// HitGoal reports whether the character's bounds overlap the goal
	// hit-box.
	HitGoal(c *Character, l *Level) bool

	// LastHit returns the center point recorded by the most recent positive
	// boundary test. The point is only updated on new collisions; callers
	// must Reset between runs to avoid a stale point leaking into a new
	// run's first frame.
	LastHit() (core.Point, bool)

	// Reset clears the recorded collision point.
	Reset()
}

// goalRect returns the fixed-size goal hit-box for a level.
func goalRect(l *Level) core.Rect {
	return core.RectAround(l.Goal(), GoalSize)
}

// lastHit is the shared collision-point bookkeeping for both policies.
type lastHit struct {
	point core.Point
	ok    bool
}

func (h *lastHit) record(p core.Point) {
	h.point = p
	h.ok = true
}

// LastHit returns the most recently recorded collision point.
func (h *lastHit) LastHit() (core.Point, bool) {
	return h.point, h.ok
}

// Reset clears the recorded collision point.
func (h *lastHit) Reset() {
	h.point = core.Point{}
	h.ok = false
}

// CorridorTester treats the corridor as a strict tube: the character
// collides when its center strays farther from the nearest path point than
// the local half-width allows for its size. The canvas edges act as an
// unconditional fence.
type CorridorTester struct {
	lastHit
}

// NewCorridorTester creates the default collision policy.
func NewCorridorTester() *CorridorTester {
	return &CorridorTester{}
}

// HitBoundary implements Tester.
func (t *CorridorTester) HitBoundary(c *Character, l *Level) bool {
	center := c.Center()
	w, h := l.Bounds()

	// Canvas-edge fence applies regardless of corridor distance.
	if center.X < edgeFence || center.X > w-edgeFence ||
		center.Y < edgeFence || center.Y > h-edgeFence {
		t.record(center)
		return true
	}

	best := -1.0
	allowance := 0.0
	for _, pp := range l.Path() {
		d := center.Dist(pp.Point)
		if best < 0 || d < best {
			best = d
			allowance = pp.HalfWidth - c.Size()/2
		}
	}

	if best >= 0 && best > allowance {
		t.record(center)
		return true
	}
	return false
}

// HitGoal implements Tester.
func (t *CorridorTester) HitGoal(c *Character, l *Level) bool {
	return c.Bounds().Intersects(goalRect(l))
}

// WallTester collides the character against the level's explicit wall
// rectangles. The first overlap found wins; gaps between wall squares are
// passable, which makes this policy more forgiving than the corridor tube.
type WallTester struct {
	lastHit
}

// NewWallTester creates the rectangle-overlap collision policy.
func NewWallTester() *WallTester {
	return &WallTester{}
}

// HitBoundary implements Tester.
func (t *WallTester) HitBoundary(c *Character, l *Level) bool {
	bounds := c.Bounds()
	for _, wall := range l.Walls() {
		if bounds.Intersects(wall) {
			t.record(c.Center())
			return true
		}
	}
	return false
}

// HitGoal implements Tester.
func (t *WallTester) HitGoal(c *Character, l *Level) bool {
	return c.Bounds().Intersects(goalRect(l))
}
