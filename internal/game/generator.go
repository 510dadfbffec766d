package game

import (
	"math"
	"math/rand"
	"time"

	"github.com/vbelov/wirerun/internal/core"
)

// Generator produces a fresh Level for a run. Implementations are expected
// to be randomized; a rand.Source can be injected for deterministic tests.
type Generator interface {
	Generate(canvasW, canvasH float64, d Difficulty) (*Level, error)
}

// Generation tuning constants, in canvas pixels.
const (
	startMarginX  = 40.0 // Start/goal inset from the left/right edges
	bandInsetY    = 60.0 // Vertical band inset keeping waypoints off the edges
	sampleSpacing = 8.0  // Target distance between path samples
	wallEvery     = 4    // Emit wall rects every Nth path sample
	wallThickness = 8.0  // Side length of offset wall squares
	fenceSize     = 10.0 // Thickness of the canvas-edge fence walls

	minInteriorWaypoints = 3
	maxInteriorWaypoints = 5
)

// CurveGenerator builds levels from randomized waypoints joined by
// quadratic curves through jittered midpoint control points. Corridor
// half-widths and perpendicular wall rectangles are derived from the
// sampled centerline.
type CurveGenerator struct {
	rng *rand.Rand
}

// NewCurveGenerator creates a generator. A nil source seeds from the
// current time; tests inject a fixed source for reproducible levels.
func NewCurveGenerator(src rand.Source) *CurveGenerator {
	if src == nil {
		src = rand.NewSource(time.Now().UnixNano())
	}
	return &CurveGenerator{rng: rand.New(src)}
}

// Generate builds a new randomized level. An unrecognized difficulty fails
// immediately with ErrUnknownDifficulty and no partial level is produced.
func (g *CurveGenerator) Generate(canvasW, canvasH float64, d Difficulty) (*Level, error) {
	setting, err := d.Setting()
	if err != nil {
		return nil, err
	}

	inset := math.Min(bandInsetY, canvasH/4)
	bandTop := inset
	bandBottom := canvasH - inset

	// Start at the left edge, vertically centered. Goal at the right edge
	// with a randomized vertical position inside the band.
	start := core.P(startMarginX, canvasH/2)
	goal := core.P(canvasW-startMarginX, g.randInBand(bandTop, bandBottom))

	waypoints := g.placeWaypoints(start, goal, bandTop, bandBottom)
	path := g.samplePath(waypoints, setting.CorridorWidth/2, canvasW, canvasH)
	walls := g.deriveWalls(path, canvasW, canvasH)

	return &Level{
		difficulty:    d,
		width:         canvasW,
		height:        canvasH,
		waypoints:     waypoints,
		path:          path,
		walls:         walls,
		start:         start,
		goal:          goal,
		corridorWidth: setting.CorridorWidth,
		speed:         setting.Speed,
	}, nil
}

// randInBand returns a uniform Y coordinate within [top, bottom].
func (g *CurveGenerator) randInBand(top, bottom float64) float64 {
	if bottom <= top {
		return top
	}
	return top + g.rng.Float64()*(bottom-top)
}

// placeWaypoints spreads interior anchors roughly evenly between start and
// goal, each with horizontal jitter and a random Y inside the band.
func (g *CurveGenerator) placeWaypoints(start, goal core.Point, bandTop, bandBottom float64) []core.Point {
	n := minInteriorWaypoints + g.rng.Intn(maxInteriorWaypoints-minInteriorWaypoints+1)

	span := goal.X - start.X
	slot := span / float64(n+1)

	waypoints := make([]core.Point, 0, n+2)
	waypoints = append(waypoints, start)
	for i := 1; i <= n; i++ {
		jitter := (g.rng.Float64()*2 - 1) * slot * 0.25
		x := start.X + slot*float64(i) + jitter
		waypoints = append(waypoints, core.P(x, g.randInBand(bandTop, bandBottom)))
	}
	waypoints = append(waypoints, goal)

	return waypoints
}

// samplePath joins consecutive waypoints with quadratic curves through a
// jittered midpoint control point. Sample density is proportional to the
// pair distance so long segments stay smooth.
func (g *CurveGenerator) samplePath(waypoints []core.Point, halfWidth, canvasW, canvasH float64) []PathPoint {
	path := make([]PathPoint, 0, 256)
	path = append(path, PathPoint{Point: waypoints[0], HalfWidth: halfWidth})

	for i := 0; i < len(waypoints)-1; i++ {
		a := waypoints[i]
		b := waypoints[i+1]
		dist := a.Dist(b)

		samples := int(dist / sampleSpacing)
		if samples < 2 {
			samples = 2
		}

		ctrl := g.jitterMidpoint(a, b, dist, canvasW, canvasH)

		for s := 1; s <= samples; s++ {
			t := float64(s) / float64(samples)
			p := quadratic(a, ctrl, b, t)
			p.X = core.ClampF(p.X, 0, canvasW)
			p.Y = core.ClampF(p.Y, 0, canvasH)
			path = append(path, PathPoint{Point: p, HalfWidth: halfWidth})
		}
	}

	return path
}

// jitterMidpoint returns the segment midpoint displaced by a random offset
// proportional to the segment length, kept inside the canvas.
func (g *CurveGenerator) jitterMidpoint(a, b core.Point, dist, canvasW, canvasH float64) core.Point {
	mid := core.P((a.X+b.X)/2, (a.Y+b.Y)/2)
	jx := (g.rng.Float64()*2 - 1) * dist * 0.25
	jy := (g.rng.Float64()*2 - 1) * dist * 0.25

	return core.P(
		core.ClampF(mid.X+jx, fenceSize, canvasW-fenceSize),
		core.ClampF(mid.Y+jy, fenceSize, canvasH-fenceSize),
	)
}

// quadratic evaluates the quadratic Bezier through (a, ctrl, b) at t.
func quadratic(a, ctrl, b core.Point, t float64) core.Point {
	u := 1 - t
	return core.P(
		u*u*a.X+2*u*t*ctrl.X+t*t*b.X,
		u*u*a.Y+2*u*t*ctrl.Y+t*t*b.Y,
	)
}

// deriveWalls emits wall squares perpendicular to the local path tangent on
// both sides of the corridor, plus the four canvas-edge fence rectangles.
// The fence guarantees at least one wall exists for any level.
func (g *CurveGenerator) deriveWalls(path []PathPoint, canvasW, canvasH float64) []core.Rect {
	walls := make([]core.Rect, 0, len(path)/wallEvery*2+4)

	// Outer fence along all four canvas edges.
	walls = append(walls,
		core.NewRect(0, 0, canvasW, fenceSize),
		core.NewRect(0, canvasH-fenceSize, canvasW, fenceSize),
		core.NewRect(0, 0, fenceSize, canvasH),
		core.NewRect(canvasW-fenceSize, 0, fenceSize, canvasH),
	)

	for i := wallEvery; i < len(path)-1; i += wallEvery {
		prev := path[i-1].Point
		next := path[i+1].Point

		dx := next.X - prev.X
		dy := next.Y - prev.Y
		length := math.Sqrt(dx*dx + dy*dy)
		if length == 0 {
			continue
		}

		// Unit normal to the local tangent.
		nx := -dy / length
		ny := dx / length

		offset := path[i].HalfWidth + wallThickness/2
		for _, side := range []float64{1, -1} {
			center := path[i].Point.Add(nx*offset*side, ny*offset*side)
			r := clampRect(core.RectAround(center, wallThickness), canvasW, canvasH)
			if r.W > 0 && r.H > 0 {
				walls = append(walls, r)
			}
		}
	}

	return walls
}

// clampRect intersects r with the canvas. A degenerate result has zero
// width or height.
func clampRect(r core.Rect, canvasW, canvasH float64) core.Rect {
	x0 := core.ClampF(r.X, 0, canvasW)
	y0 := core.ClampF(r.Y, 0, canvasH)
	x1 := core.ClampF(r.Right(), 0, canvasW)
	y1 := core.ClampF(r.Bottom(), 0, canvasH)
	return core.NewRect(x0, y0, x1-x0, y1-y0)
}
