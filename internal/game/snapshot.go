package game

// snapScale converts canvas coordinates to fixed-point for the snapshot.
// Primitive integer fields keep serialization and hashing stable across
// platforms.
const snapScale = 1000

// Snapshot contains the observable session state for replay/save tooling.
// Uses primitive types only for stable serialization.
type Snapshot struct {
	State      string
	Difficulty string

	ElapsedMillis int64
	Score         int64

	// Character position and heading (coordinates scaled by snapScale)
	CharX   int64
	CharY   int64
	Heading int

	AwaitingEffect bool
	EffectX        int64
	EffectY        int64
}

// Snapshot returns the current session state as a Snapshot.
func (s *Session) Snapshot() Snapshot {
	snap := Snapshot{
		State:         s.state.String(),
		Difficulty:    string(s.difficulty),
		ElapsedMillis: s.elapsed.Milliseconds(),
		Score:         s.score,
	}

	if s.char != nil {
		pos := s.char.Position()
		snap.CharX = int64(pos.X * snapScale)
		snap.CharY = int64(pos.Y * snapScale)
		snap.Heading = int(s.char.Heading())
	}

	if p, ok := s.EffectPoint(); ok {
		snap.AwaitingEffect = true
		snap.EffectX = int64(p.X * snapScale)
		snap.EffectY = int64(p.Y * snapScale)
	}

	return snap
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := uint64(17)
	for _, c := range snap.State {
		h = h*31 + uint64(c)
	}
	for _, c := range snap.Difficulty {
		h = h*31 + uint64(c)
	}
	h = h*31 + uint64(snap.ElapsedMillis) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Score)         //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.CharX)         //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.CharY)         //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Heading)       //#nosec G115 -- hash computation
	if snap.AwaitingEffect {
		h = h*31 + 1
	}
	h = h*31 + uint64(snap.EffectX) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.EffectY) //#nosec G115 -- hash computation
	return h
}
