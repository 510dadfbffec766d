package game

import (
	"fmt"
	"math/rand"

	"github.com/vbelov/wirerun/internal/core"
)

// DefaultEffectTicks is how many simulation ticks the terminal effect
// window stays open before input is accepted again (~0.75s at 60 FPS).
const DefaultEffectTicks = 45

// hudHeight is the number of screen rows reserved for the status bar.
const hudHeight = 2

// Game adapts a Session to the platform's fixed-tick game contract.
// The platform handles input mapping, timing, and terminal rendering;
// all rules live in the Session and its collaborators.
type Game struct {
	difficulty Difficulty
	cfg        core.RuntimeConfig

	session *Session

	newTester func() Tester

	effectTicks int
	effectLeft  int
	effectArmed bool
}

// New creates a game at the given difficulty. An unknown difficulty falls
// back to medium so the adapter never starts in a broken state; callers
// that care should validate with ParseDifficulty first.
func New(d Difficulty) *Game {
	if _, err := d.Setting(); err != nil {
		d = DifficultyMedium
	}
	return &Game{
		difficulty:  d,
		effectTicks: DefaultEffectTicks,
	}
}

// SetEffectTicks overrides the terminal effect window length. Values below
// one are clamped to one tick. Takes effect on the next terminal
// transition.
func (g *Game) SetEffectTicks(n int) {
	if n < 1 {
		n = 1
	}
	g.effectTicks = n
}

// SetTester overrides the collision policy constructor. A fresh tester is
// built for every Reset so runs never share collision state. Nil restores
// the default corridor policy.
func (g *Game) SetTester(newTester func() Tester) {
	g.newTester = newTester
}

// ID returns the game identifier used for CLI commands and score storage.
func (g *Game) ID() string {
	return "wirerun"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Wire Run"
}

// Difficulty returns the tier this game runs at.
func (g *Game) Difficulty() Difficulty {
	return g.difficulty
}

// Reset initializes or restarts the game. A fresh session is built with a
// generator seeded from the config, so equal seeds reproduce equal levels.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	if cfg.CanvasW <= 0 || cfg.CanvasH <= 0 {
		def := core.DefaultConfig()
		cfg.CanvasW = def.CanvasW
		cfg.CanvasH = def.CanvasH
	}
	g.cfg = cfg

	var src rand.Source
	if cfg.Seed != 0 {
		src = rand.NewSource(cfg.Seed)
	}

	opts := []Option{WithGenerator(NewCurveGenerator(src))}
	if g.newTester != nil {
		opts = append(opts, WithTester(g.newTester()))
	}
	g.session = NewSession(cfg, opts...)
	g.effectLeft = 0
	g.effectArmed = false

	// Generation cannot fail for a difficulty New has validated.
	_ = g.session.Start(g.difficulty)
}

// Step advances the simulation by one fixed tick.
func (g *Game) Step(input core.InputFrame) core.StepResult {
	if g.session == nil {
		return core.StepResult{}
	}

	// Restart only once the terminal effect window has closed; input during
	// the effect is dropped.
	if input.Has(core.ActionRestart) && g.session.State().Terminal() && !g.session.AwaitingEffect() {
		g.session.Start(g.difficulty) //nolint:errcheck // difficulty already validated
	}

	if input.Has(core.ActionPause) {
		switch g.session.State() {
		case StatePlaying:
			g.session.Pause()
		case StatePaused:
			g.session.Resume()
		}
	}

	if dir := input.Steering(); dir != core.DirNone {
		g.session.Steer(dir)
	}

	g.session.Tick()
	g.stepEffect()

	return core.StepResult{State: g.State()}
}

// stepEffect runs the terminal effect countdown and closes the session's
// effect window when it expires.
func (g *Game) stepEffect() {
	if g.session.AwaitingEffect() && !g.effectArmed {
		g.effectArmed = true
		g.effectLeft = g.effectTicks
	}
	if !g.effectArmed {
		return
	}
	g.effectLeft--
	if g.effectLeft <= 0 {
		g.session.EffectFinished()
		g.effectArmed = false
	}
}

// State returns the current game state for the platform layer.
func (g *Game) State() core.GameState {
	if g.session == nil {
		return core.GameState{}
	}
	st := g.session.State()
	return core.GameState{
		Score:    g.session.Score(),
		GameOver: st.Terminal(),
		Victory:  st == StateVictory,
		Paused:   st == StatePaused,
	}
}

// Render draws the current state into the screen buffer. The logical
// canvas is projected onto the character grid below the HUD.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.session == nil {
		return
	}

	g.renderHUD(dst)

	if g.session.Level() != nil {
		g.renderLevel(dst)
		g.renderCharacter(dst)
	}

	switch g.session.State() {
	case StatePaused:
		g.renderOverlay(dst, "Paused", "Press P to continue")
	case StateGameOver:
		g.renderOverlay(dst, "Game Over", restartHint(g.session))
	case StateVictory:
		g.renderOverlay(dst, fmt.Sprintf("Victory! %s", FormatMillis(g.session.Score())), restartHint(g.session))
	}
}

func restartHint(s *Session) string {
	if s.AwaitingEffect() {
		return "..."
	}
	return "Press R to restart"
}

// project maps a canvas point to a screen cell in the play area.
func (g *Game) project(p core.Point, dst *core.Screen) (int, int) {
	playH := dst.Height() - hudHeight
	x := int(p.X / g.cfg.CanvasW * float64(dst.Width()))
	y := hudHeight + int(p.Y/g.cfg.CanvasH*float64(playH))
	return x, y
}

// renderHUD draws the top status bar.
func (g *Game) renderHUD(dst *core.Screen) {
	hud := fmt.Sprintf(" Wire Run [%s]  Time: %s", g.difficulty, FormatMillis(g.session.ElapsedMillis()))
	dst.DrawText(0, 0, hud)
	dst.DrawHLine(0, 1, dst.Width(), '─')
}

// renderLevel draws the corridor centerline, the walls, and the goal.
func (g *Game) renderLevel(dst *core.Screen) {
	level := g.session.Level()

	for _, pp := range level.Path() {
		x, y := g.project(pp.Point, dst)
		if y >= hudHeight {
			dst.SetColor(x, y, '·', core.ColorGray)
		}
	}

	for _, wall := range level.Walls() {
		x0, y0 := g.project(core.P(wall.X, wall.Y), dst)
		x1, y1 := g.project(core.P(wall.Right(), wall.Bottom()), dst)
		for y := y0; y <= y1; y++ {
			for x := x0; x <= x1; x++ {
				if y >= hudHeight {
					dst.SetColor(x, y, '█', core.ColorRed)
				}
			}
		}
	}

	gx, gy := g.project(level.Goal(), dst)
	dst.SetColor(gx, gy, '◆', core.ColorBrightGreen)

	sx, sy := g.project(level.Start(), dst)
	dst.SetColor(sx, sy, '▷', core.ColorCyan)
}

// renderCharacter draws the player, or the effect marker while a terminal
// effect is pending.
func (g *Game) renderCharacter(dst *core.Screen) {
	if p, ok := g.session.EffectPoint(); ok {
		x, y := g.project(p, dst)
		dst.SetColor(x, y, '✶', core.ColorBrightYellow)
		return
	}

	char := g.session.Character()
	if char == nil {
		return
	}
	x, y := g.project(char.Center(), dst)
	dst.SetColor(x, y, '@', core.ColorBrightWhite)
}

// renderOverlay draws a centered message box.
func (g *Game) renderOverlay(dst *core.Screen, line1, line2 string) {
	maxLen := len(line1)
	if len(line2) > maxLen {
		maxLen = len(line2)
	}
	boxW := maxLen + 4
	boxH := 5
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2

	dst.FillRect(boxX, boxY, boxW, boxH, ' ')
	dst.DrawBox(boxX, boxY, boxW, boxH)
	dst.DrawTextCentered(boxY+1, line1)
	dst.DrawTextCentered(boxY+3, line2)
}

// FormatMillis renders a millisecond duration as "m:ss.mmm".
func FormatMillis(ms int64) string {
	if ms < 0 {
		ms = 0
	}
	minutes := ms / 60000
	seconds := (ms % 60000) / 1000
	millis := ms % 1000
	return fmt.Sprintf("%d:%02d.%03d", minutes, seconds, millis)
}
