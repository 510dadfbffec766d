package game

import (
	"errors"
	"math/rand"
	"testing"
	"time"

	"github.com/vbelov/wirerun/internal/core"
)

// fakeClock is a manually advanced time source.
type fakeClock struct {
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Unix(1000, 0)}
}

func (c *fakeClock) Now() time.Time {
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.now = c.now.Add(d)
}

// stubTester forces collision outcomes regardless of geometry.
type stubTester struct {
	lastHit
	boundary bool
	goal     bool
}

func (t *stubTester) HitBoundary(c *Character, _ *Level) bool {
	if t.boundary {
		t.record(c.Center())
	}
	return t.boundary
}

func (t *stubTester) HitGoal(*Character, *Level) bool {
	return t.goal
}

func newTestSession(t *testing.T, clock *fakeClock, tester Tester) *Session {
	t.Helper()
	opts := []Option{
		WithGenerator(NewCurveGenerator(rand.NewSource(1))),
		WithClock(clock.Now),
	}
	if tester != nil {
		opts = append(opts, WithTester(tester))
	}
	return NewSession(core.DefaultConfig(), opts...)
}

func TestSessionStart(t *testing.T) {
	clock := newFakeClock()
	s := newTestSession(t, clock, nil)

	if s.State() != StateMenu {
		t.Fatalf("initial state = %v, want menu", s.State())
	}

	if err := s.Start(DifficultyMedium); err != nil {
		t.Fatalf("Start() error = %v", err)
	}

	if s.State() != StatePlaying {
		t.Errorf("state = %v, want playing", s.State())
	}
	if s.Level() == nil || s.Character() == nil {
		t.Fatal("Start left level or character nil")
	}
	if s.Level().CorridorWidth() != 60 || s.Level().Speed() != 3 {
		t.Errorf("medium level = width %v speed %v, want 60 and 3", s.Level().CorridorWidth(), s.Level().Speed())
	}
	if s.Character().Center() != s.Level().Start() {
		t.Errorf("character center %v, want start %v", s.Character().Center(), s.Level().Start())
	}
	if s.Elapsed() != 0 || s.Score() != 0 {
		t.Errorf("fresh run has elapsed %v score %v", s.Elapsed(), s.Score())
	}
}

func TestSessionStartUnknownDifficulty(t *testing.T) {
	clock := newFakeClock()
	s := newTestSession(t, clock, nil)

	err := s.Start(Difficulty("brutal"))
	if !errors.Is(err, ErrUnknownDifficulty) {
		t.Fatalf("Start() error = %v, want ErrUnknownDifficulty", err)
	}
	if s.State() != StateMenu || s.Level() != nil {
		t.Error("failed Start mutated session state")
	}
}

func TestSessionImplicitRestart(t *testing.T) {
	clock := newFakeClock()
	s := newTestSession(t, clock, nil)

	if err := s.Start(DifficultyEasy); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	first := s.Level()

	clock.Advance(5 * time.Second)
	s.Tick()

	if err := s.Start(DifficultyHard); err != nil {
		t.Fatalf("second Start() error = %v", err)
	}
	if s.Level() == first {
		t.Error("implicit restart reused the old level")
	}
	if s.Difficulty() != DifficultyHard {
		t.Errorf("difficulty = %v, want hard", s.Difficulty())
	}
	clock.Advance(16 * time.Millisecond)
	s.Tick()
	if s.Elapsed() >= 5*time.Second {
		t.Errorf("timer carried over: %v", s.Elapsed())
	}
}

func TestSessionElapsedExcludesPause(t *testing.T) {
	clock := newFakeClock()
	s := newTestSession(t, clock, nil)
	if err := s.Start(DifficultyMedium); err != nil {
		t.Fatalf("Start() error = %v", err)
	}

	clock.Advance(2 * time.Second)
	s.Tick()

	// First pause cycle.
	s.Pause()
	if s.State() != StatePaused {
		t.Fatalf("state = %v, want paused", s.State())
	}
	clock.Advance(10 * time.Second)
	s.Tick() // No-op while paused
	s.Resume()

	clock.Advance(1 * time.Second)
	s.Tick()

	// Second pause cycle; exclusion accumulates.
	s.Pause()
	clock.Advance(30 * time.Second)
	s.Resume()

	clock.Advance(1 * time.Second)
	s.Tick()

	if got := s.Elapsed(); got != 4*time.Second {
		t.Errorf("Elapsed() = %v, want 4s of play time", got)
	}
}

func TestSessionTickNoOpOutsidePlaying(t *testing.T) {
	clock := newFakeClock()
	s := newTestSession(t, clock, nil)

	// Menu: nothing to advance.
	if st := s.Tick(); st != StateMenu {
		t.Errorf("Tick() in menu = %v", st)
	}

	if err := s.Start(DifficultyEasy); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	s.Steer(core.DirRight)
	s.Pause()
	pos := s.Character().Position()

	clock.Advance(time.Second)
	if st := s.Tick(); st != StatePaused {
		t.Errorf("Tick() while paused = %v", st)
	}
	if s.Character().Position() != pos {
		t.Error("character moved while paused")
	}
	if s.Elapsed() != 0 {
		t.Errorf("timer advanced while paused: %v", s.Elapsed())
	}
}

func TestSessionSteerGating(t *testing.T) {
	clock := newFakeClock()
	s := newTestSession(t, clock, nil)

	// Menu: dropped.
	s.Steer(core.DirUp)

	if err := s.Start(DifficultyEasy); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	if s.Character().Heading() != core.DirNone {
		t.Error("pre-start steering leaked into the run")
	}

	s.Steer(core.DirRight)
	if s.Character().Heading() != core.DirRight {
		t.Errorf("heading = %v, want right", s.Character().Heading())
	}

	// Paused: dropped.
	s.Pause()
	s.Steer(core.DirDown)
	if s.Character().Heading() != core.DirRight {
		t.Error("steering accepted while paused")
	}
}

func TestSessionGameOver(t *testing.T) {
	clock := newFakeClock()
	tester := &stubTester{}
	s := newTestSession(t, clock, tester)
	if err := s.Start(DifficultyMedium); err != nil {
		t.Fatalf("Start() error = %v", err)
	}

	clock.Advance(3 * time.Second)
	tester.boundary = true
	if st := s.Tick(); st != StateGameOver {
		t.Fatalf("Tick() = %v, want gameover", st)
	}

	if s.Score() != 3000 {
		t.Errorf("Score() = %d, want elapsed 3000ms", s.Score())
	}
	if !s.AwaitingEffect() {
		t.Error("terminal transition did not open the effect window")
	}
	p, ok := s.EffectPoint()
	if !ok {
		t.Fatal("no effect point recorded")
	}
	if want := s.Character().Center(); p != want {
		t.Errorf("effect point = %v, want collision center %v", p, want)
	}

	// Timer and score freeze after the terminal transition.
	clock.Advance(time.Minute)
	s.Tick()
	s.Steer(core.DirLeft)
	if s.Score() != 3000 || s.Elapsed() != 3*time.Second {
		t.Errorf("terminal state mutated: score=%d elapsed=%v", s.Score(), s.Elapsed())
	}
	if s.Character().Heading() != core.DirNone {
		t.Error("steering accepted after gameover")
	}
}

func TestSessionVictory(t *testing.T) {
	clock := newFakeClock()
	tester := &stubTester{}
	s := newTestSession(t, clock, tester)
	if err := s.Start(DifficultyHard); err != nil {
		t.Fatalf("Start() error = %v", err)
	}

	clock.Advance(1500 * time.Millisecond)
	tester.goal = true
	if st := s.Tick(); st != StateVictory {
		t.Fatalf("Tick() = %v, want victory", st)
	}

	if s.Score() != 1500 {
		t.Errorf("Score() = %d, want 1500", s.Score())
	}
	p, ok := s.EffectPoint()
	if !ok || p != s.Level().Goal() {
		t.Errorf("effect point = %v ok=%v, want goal %v", p, ok, s.Level().Goal())
	}

	s.EffectFinished()
	if s.AwaitingEffect() {
		t.Error("effect window still open after EffectFinished")
	}
}

func TestSessionBoundaryBeatsGoal(t *testing.T) {
	// When a frame produces both outcomes, boundary wins.
	clock := newFakeClock()
	tester := &stubTester{boundary: true, goal: true}
	s := newTestSession(t, clock, tester)
	if err := s.Start(DifficultyEasy); err != nil {
		t.Fatalf("Start() error = %v", err)
	}

	if st := s.Tick(); st != StateGameOver {
		t.Errorf("Tick() = %v, want gameover", st)
	}
}

func TestSessionRestart(t *testing.T) {
	clock := newFakeClock()
	tester := &stubTester{}
	s := newTestSession(t, clock, tester)
	if err := s.Start(DifficultyMedium); err != nil {
		t.Fatalf("Start() error = %v", err)
	}

	clock.Advance(2 * time.Second)
	tester.boundary = true
	s.Tick()

	s.Restart()
	if s.State() != StateMenu {
		t.Errorf("state = %v, want menu", s.State())
	}
	if s.Level() != nil || s.Character() != nil {
		t.Error("Restart kept stale level or character")
	}
	if s.Score() != 0 || s.Elapsed() != 0 {
		t.Errorf("Restart kept score %d elapsed %v", s.Score(), s.Elapsed())
	}
	if s.AwaitingEffect() {
		t.Error("Restart kept the effect window open")
	}
	if _, ok := tester.LastHit(); ok {
		t.Error("Restart did not reset the tester")
	}

	// A new run starts clean.
	tester.boundary = false
	if err := s.Start(DifficultyMedium); err != nil {
		t.Fatalf("Start() after Restart error = %v", err)
	}
	if s.State() != StatePlaying {
		t.Errorf("state = %v, want playing", s.State())
	}
}

func TestSessionDestroy(t *testing.T) {
	clock := newFakeClock()
	s := newTestSession(t, clock, nil)
	if err := s.Start(DifficultyEasy); err != nil {
		t.Fatalf("Start() error = %v", err)
	}

	s.Destroy()
	if !s.Destroyed() {
		t.Fatal("Destroyed() = false after Destroy")
	}
	if s.State() != StateMenu || s.Level() != nil {
		t.Error("Destroy left run state behind")
	}

	// Start revives the session.
	if err := s.Start(DifficultyEasy); err != nil {
		t.Fatalf("Start() after Destroy error = %v", err)
	}
	if s.Destroyed() {
		t.Error("Destroyed() = true after a fresh Start")
	}
}

func TestSessionElapsedMonotonic(t *testing.T) {
	clock := newFakeClock()
	s := newTestSession(t, clock, nil)
	if err := s.Start(DifficultyMedium); err != nil {
		t.Fatalf("Start() error = %v", err)
	}

	prev := s.Elapsed()
	for range 100 {
		clock.Advance(16 * time.Millisecond)
		s.Tick()
		if s.Elapsed() <= prev {
			t.Fatalf("elapsed not strictly increasing: %v then %v", prev, s.Elapsed())
		}
		prev = s.Elapsed()
	}
}

func TestSessionSnapshotDeterminism(t *testing.T) {
	run := func() Snapshot {
		clock := newFakeClock()
		s := newTestSession(t, clock, nil)
		if err := s.Start(DifficultyMedium); err != nil {
			t.Fatalf("Start() error = %v", err)
		}
		s.Steer(core.DirRight)
		for range 50 {
			clock.Advance(16 * time.Millisecond)
			s.Tick()
		}
		return s.Snapshot()
	}

	s1, s2 := run(), run()
	if s1.Hash() != s2.Hash() {
		t.Errorf("snapshot hashes differ: %d vs %d", s1.Hash(), s2.Hash())
	}
}
