package game

import (
	"testing"

	"github.com/vbelov/wirerun/internal/core"
)

func TestCharacterHeadingMovement(t *testing.T) {
	tests := []struct {
		heading core.Direction
		dx, dy  float64
	}{
		{core.DirUp, 0, -1},
		{core.DirDown, 0, 1},
		{core.DirLeft, -1, 0},
		{core.DirRight, 1, 0},
	}

	const speed = 3.0

	for _, tt := range tests {
		t.Run(tt.heading.String(), func(t *testing.T) {
			c := NewCharacter(core.P(100, 100), CharacterSize)
			start := c.Position()

			c.SetHeading(tt.heading)
			c.Tick(speed)

			got := c.Position()
			if got.X != start.X+tt.dx*speed || got.Y != start.Y+tt.dy*speed {
				t.Errorf("after one tick: %v, want (%v, %v)", got, start.X+tt.dx*speed, start.Y+tt.dy*speed)
			}
		})
	}
}

func TestCharacterConstantSpeed(t *testing.T) {
	// N ticks displace exactly N*speed along the heading axis.
	c := NewCharacter(core.P(100, 100), CharacterSize)
	start := c.Position()

	c.SetHeading(core.DirRight)
	const speed, ticks = 4.0, 25
	for range ticks {
		c.Tick(speed)
	}

	if got := c.Position().X - start.X; got != speed*ticks {
		t.Errorf("displacement = %v, want %v", got, speed*ticks)
	}
	if c.Position().Y != start.Y {
		t.Errorf("Y drifted to %v", c.Position().Y)
	}
}

func TestCharacterHeadingChangeNoPause(t *testing.T) {
	// A heading change takes full effect on the very next tick.
	c := NewCharacter(core.P(100, 100), CharacterSize)
	c.SetHeading(core.DirRight)
	c.Tick(2)

	before := c.Position()
	c.SetHeading(core.DirDown)
	c.Tick(2)

	got := c.Position()
	if got.X != before.X || got.Y != before.Y+2 {
		t.Errorf("after heading change: %v, want (%v, %v)", got, before.X, before.Y+2)
	}
}

func TestCharacterNoHeadingNoMovement(t *testing.T) {
	c := NewCharacter(core.P(100, 100), CharacterSize)
	start := c.Position()

	for range 10 {
		c.Tick(5)
	}

	if c.Position() != start {
		t.Errorf("character moved without a heading: %v", c.Position())
	}
}

func TestCharacterInvalidHeadingIgnored(t *testing.T) {
	c := NewCharacter(core.P(100, 100), CharacterSize)
	c.SetHeading(core.DirUp)

	c.SetHeading(core.DirNone)
	if c.Heading() != core.DirUp {
		t.Errorf("DirNone overwrote heading: %v", c.Heading())
	}

	c.SetHeading(core.Direction(99))
	if c.Heading() != core.DirUp {
		t.Errorf("out-of-range value overwrote heading: %v", c.Heading())
	}
}

func TestCharacterCenteredOnStart(t *testing.T) {
	start := core.P(40, 300)
	c := NewCharacter(start, CharacterSize)

	if c.Center() != start {
		t.Errorf("Center() = %v, want %v", c.Center(), start)
	}

	bounds := c.Bounds()
	if bounds.W != CharacterSize || bounds.H != CharacterSize {
		t.Errorf("bounds = %+v, want %vx%v square", bounds, CharacterSize, CharacterSize)
	}
}

func TestCharacterReset(t *testing.T) {
	c := NewCharacter(core.P(100, 100), CharacterSize)
	c.SetHeading(core.DirLeft)
	c.Tick(10)

	c.Reset(nil)
	if c.Center() != core.P(100, 100) {
		t.Errorf("Reset(nil) center = %v, want construction point", c.Center())
	}
	if c.Heading() != core.DirNone {
		t.Errorf("Reset did not clear heading: %v", c.Heading())
	}

	p := core.P(250, 50)
	c.Reset(&p)
	if c.Center() != p {
		t.Errorf("Reset(&p) center = %v, want %v", c.Center(), p)
	}
}
