package game

import "github.com/vbelov/wirerun/internal/core"

// CharacterSize is the bounding square side length in canvas pixels.
const CharacterSize = 16.0

// Character holds the player's position and heading. Position is anchored
// at the top-left corner of the bounding square and only changes through
// Tick or Reset; input events change the heading only.
type Character struct {
	pos     core.Point
	home    core.Point
	size    float64
	heading core.Direction
}

// NewCharacter creates a character whose bounding square is centered on
// start. The start point is remembered for Reset.
func NewCharacter(start core.Point, size float64) *Character {
	pos := core.P(start.X-size/2, start.Y-size/2)
	return &Character{
		pos:  pos,
		home: pos,
		size: size,
	}
}

// SetHeading changes the movement direction. Values outside the four
// steerable headings are silently ignored: no error, no state change.
// Changing heading never pauses motion; the very next Tick moves at full
// speed along the new axis.
func (c *Character) SetHeading(d core.Direction) {
	if !d.Valid() {
		return
	}
	c.heading = d
}

// Heading returns the current movement direction (DirNone when unset).
func (c *Character) Heading() core.Direction {
	return c.heading
}

// Tick displaces the character by exactly speed pixels along the heading's
// axis. A no-op while the heading is unset.
func (c *Character) Tick(speed float64) {
	dx, dy := c.heading.Delta()
	c.pos.X += dx * speed
	c.pos.Y += dy * speed
}

// Reset moves the character so its bounding square is centered on p, or
// back to its construction point when p is nil, and clears the heading.
func (c *Character) Reset(p *core.Point) {
	if p != nil {
		c.pos = core.P(p.X-c.size/2, p.Y-c.size/2)
	} else {
		c.pos = c.home
	}
	c.heading = core.DirNone
}

// Position returns the top-left corner of the bounding square.
func (c *Character) Position() core.Point {
	return c.pos
}

// Center returns the center of the bounding square.
func (c *Character) Center() core.Point {
	return core.P(c.pos.X+c.size/2, c.pos.Y+c.size/2)
}

// Size returns the bounding square side length.
func (c *Character) Size() float64 {
	return c.size
}

// Bounds returns the axis-aligned bounding square at the current position.
// This is the sole shape used for all collision tests.
func (c *Character) Bounds() core.Rect {
	return core.NewRect(c.pos.X, c.pos.Y, c.size, c.size)
}
