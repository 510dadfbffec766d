package game

import (
	"time"

	"github.com/vbelov/wirerun/internal/core"
)

// State is the session's lifecycle state.
type State int

const (
	StateMenu     State = iota // Initial state, no run active
	StatePlaying               // Run in progress, timer advancing
	StatePaused                // Run suspended, timer frozen
	StateGameOver              // Terminal: boundary collision ended the run
	StateVictory               // Terminal: goal reached, score recorded
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StateMenu:
		return "menu"
	case StatePlaying:
		return "playing"
	case StatePaused:
		return "paused"
	case StateGameOver:
		return "gameover"
	case StateVictory:
		return "victory"
	default:
		return "unknown"
	}
}

// Terminal reports whether the state ends a run. Both terminal states
// freeze the timer and require Restart or a new Start to resume play.
func (s State) Terminal() bool {
	return s == StateGameOver || s == StateVictory
}

// Clock supplies the current time. Injected so tests can drive the timer
// deterministically; the elapsed time is always recomputed from the start
// timestamp, never accumulated, so it cannot drift with the frame rate.
type Clock func() time.Time

// Option configures a Session at construction.
type Option func(*Session)

// WithGenerator injects the level generator.
func WithGenerator(g Generator) Option {
	return func(s *Session) { s.gen = g }
}

// WithTester injects the collision policy.
func WithTester(t Tester) Option {
	return func(s *Session) { s.tester = t }
}

// WithClock injects the time source.
func WithClock(c Clock) Option {
	return func(s *Session) { s.clock = c }
}

// Session is the game state machine. It owns the active level and
// character, sequences kinematics and collision each tick, and keeps the
// run timer. All methods are synchronous and must be called from a single
// goroutine (the caller's frame loop).
type Session struct {
	cfg    core.RuntimeConfig
	gen    Generator
	tester Tester
	clock  Clock

	state      State
	difficulty Difficulty
	level      *Level
	char       *Character

	startedAt   time.Time
	pausedAt    time.Time
	pausedTotal time.Duration
	elapsed     time.Duration

	score int64 // Milliseconds, set once at a terminal transition

	awaitingEffect bool
	effectAt       core.Point

	destroyed bool
}

// NewSession creates a session in the menu state. Unset dependencies
// default to a time-seeded CurveGenerator, the corridor collision policy,
// and the wall clock.
func NewSession(cfg core.RuntimeConfig, opts ...Option) *Session {
	s := &Session{cfg: cfg, state: StateMenu}
	for _, opt := range opts {
		opt(s)
	}
	if s.gen == nil {
		s.gen = NewCurveGenerator(nil)
	}
	if s.tester == nil {
		s.tester = NewCorridorTester()
	}
	if s.clock == nil {
		s.clock = time.Now
	}
	return s
}

// Start begins a run at the given difficulty. Calling Start while a run is
// active is an implicit restart: the old level and character are discarded
// and a fresh level is generated. An unknown difficulty fails with
// ErrUnknownDifficulty before any state is touched, so a failed Start
// leaves the session exactly as it was.
func (s *Session) Start(d Difficulty) error {
	level, err := s.gen.Generate(s.cfg.CanvasW, s.cfg.CanvasH, d)
	if err != nil {
		return err
	}

	s.level = level
	s.char = NewCharacter(level.Start(), CharacterSize)
	s.tester.Reset()

	s.difficulty = d
	s.state = StatePlaying
	s.startedAt = s.clock()
	s.pausedTotal = 0
	s.elapsed = 0
	s.score = 0
	s.awaitingEffect = false
	s.effectAt = core.Point{}
	s.destroyed = false

	return nil
}

// Steer delivers a directional input event. Events outside the playing
// state are silently dropped, as are values that are not one of the four
// headings.
func (s *Session) Steer(d core.Direction) {
	if s.state != StatePlaying {
		return
	}
	s.char.SetHeading(d)
}

// Tick advances one simulation frame. A no-op in every state but playing,
// which lets callers run an unconditional frame loop. While playing the
// character moves first and collision is evaluated against the post-move
// position, so a boundary reached this frame ends the run this frame.
func (s *Session) Tick() State {
	if s.state != StatePlaying {
		return s.state
	}

	s.elapsed = s.clock().Sub(s.startedAt) - s.pausedTotal

	s.char.Tick(s.level.Speed())

	if s.tester.HitBoundary(s.char, s.level) {
		hit, _ := s.tester.LastHit()
		s.finish(StateGameOver, hit)
	} else if s.tester.HitGoal(s.char, s.level) {
		s.finish(StateVictory, s.level.Goal())
	}

	return s.state
}

// finish performs a terminal transition: freeze the timer, record the
// score once, and open the effect window for the presentation layer.
func (s *Session) finish(terminal State, at core.Point) {
	s.state = terminal
	s.score = s.elapsed.Milliseconds()
	s.awaitingEffect = true
	s.effectAt = at
}

// Pause suspends the run. Only meaningful while playing.
func (s *Session) Pause() {
	if s.state != StatePlaying {
		return
	}
	s.pausedAt = s.clock()
	s.state = StatePaused
}

// Resume continues a paused run. The paused interval is added to the
// cumulative exclusion so elapsed time never includes time spent paused,
// across any number of pause/resume cycles.
func (s *Session) Resume() {
	if s.state != StatePaused {
		return
	}
	s.pausedTotal += s.clock().Sub(s.pausedAt)
	s.state = StatePlaying
}

// AwaitingEffect reports whether a terminal transition's mandatory effect
// window is still open. Callers layering presentation on top must hold the
// player in the terminal screen until they call EffectFinished.
func (s *Session) AwaitingEffect() bool {
	return s.awaitingEffect
}

// EffectPoint returns the point carried by the pending terminal effect:
// the collision point for gameover, the goal point for victory.
func (s *Session) EffectPoint() (core.Point, bool) {
	if !s.awaitingEffect {
		return core.Point{}, false
	}
	return s.effectAt, true
}

// EffectFinished signals that the presentation effect completed, closing
// the effect window.
func (s *Session) EffectFinished() {
	s.awaitingEffect = false
}

// Restart returns to the menu from any state, discarding the level and
// character. Synchronous: after it returns no pending tick can observe the
// old run's state, and stale geometry queries return nil.
func (s *Session) Restart() {
	s.state = StateMenu
	s.level = nil
	s.char = nil
	s.difficulty = ""
	s.elapsed = 0
	s.score = 0
	s.awaitingEffect = false
	s.effectAt = core.Point{}
	s.tester.Reset()
}

// Destroy tears the session down. Equivalent to Restart, plus the session
// refuses all further operations until a new Start revives it.
func (s *Session) Destroy() {
	s.Restart()
	s.destroyed = true
}

// Destroyed reports whether Destroy was called without a Start since.
func (s *Session) Destroyed() bool {
	return s.destroyed
}

// State returns the current lifecycle state.
func (s *Session) State() State {
	return s.state
}

// Difficulty returns the active run's tier, or "" in the menu.
func (s *Session) Difficulty() Difficulty {
	return s.difficulty
}

// Level returns the active level, or nil when no run is active. Holding
// the pointer across a Restart is a programming error; the session nils
// its own reference so stale geometry fails fast.
func (s *Session) Level() *Level {
	return s.level
}

// Character returns the active character, or nil when no run is active.
func (s *Session) Character() *Character {
	return s.char
}

// Elapsed returns the run timer. Strictly increasing tick-over-tick while
// playing, frozen in every other state.
func (s *Session) Elapsed() time.Duration {
	return s.elapsed
}

// ElapsedMillis returns the run timer in integer milliseconds.
func (s *Session) ElapsedMillis() int64 {
	return s.elapsed.Milliseconds()
}

// Score returns the recorded completion time in milliseconds. Zero until a
// terminal transition; never mutated afterward.
func (s *Session) Score() int64 {
	return s.score
}
