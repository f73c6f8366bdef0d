package game

import (
	"errors"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/fruit2048/internal/board"
	"github.com/vovakirdan/fruit2048/internal/core"
)

// Game drives a Session from per-tick input and presents it on a screen.
type Game struct {
	session *Session
	playout *Playout
	mode    RenderMode
	logger  *log.Logger
	tick    uint64

	// Screen dimensions
	screenW int
	screenH int

	tooSmall bool
	hint     board.Direction
	showHint bool
}

// New creates a game around session.
func New(session *Session, durations Durations, mode RenderMode) *Game {
	if mode != ModeNumber {
		mode = ModeFruit
	}
	cfg := core.DefaultConfig()
	g := &Game{
		session: session,
		playout: NewPlayout(durations),
		mode:    mode,
		logger:  log.New(io.Discard),
	}
	g.Resize(cfg.ScreenW, cfg.ScreenH)
	return g
}

// SetLogger sets the logger used for unexpected move errors.
func (g *Game) SetLogger(logger *log.Logger) {
	if logger != nil {
		g.logger = logger
	}
}

// Session returns the underlying session.
func (g *Game) Session() *Session {
	return g.session
}

// Resize updates the screen dimensions.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	g.checkScreenSize()
}

// checkScreenSize checks if the screen is large enough.
func (g *Game) checkScreenSize() {
	g.tooSmall = g.screenW < minScreenW || g.screenH < minScreenH
}

// Restart starts a new game in the same session.
func (g *Game) Restart() {
	g.playout.Stop()
	g.showHint = false
	g.session.NewGame()
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	if in.Has(core.ActionRestart) {
		g.Restart()
		return core.StepResult{State: g.State()}
	}

	if g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	// Moves wait for slide and pop. A shake can be cut short.
	if g.playout.Active() {
		shaking := g.playout.Phase() == PhaseShake
		if !g.playout.Tick() {
			g.session.Settle()
		}
		if !shaking {
			return core.StepResult{State: g.State()}
		}
	}

	dir, ok := directionFor(in)
	if !ok {
		return core.StepResult{State: g.State()}
	}

	res, err := g.session.Move(dir)
	switch {
	case errors.Is(err, ErrGameOver), errors.Is(err, ErrBusy):
		return core.StepResult{State: g.State()}
	case err != nil:
		g.logger.Error("move failed", "direction", dir, "error", err)
		return core.StepResult{State: g.State()}
	}

	if !res.Changed {
		g.playout.StartShake()
		g.hint, g.showHint = g.session.Hint()
		return core.StepResult{State: g.State()}
	}

	g.showHint = false
	g.playout.StartMove(res)
	if !g.playout.Active() {
		g.session.Settle()
	}
	return core.StepResult{State: g.State(), Moved: true}
}

// directionFor maps input actions to a direction.
func directionFor(in core.InputFrame) (board.Direction, bool) {
	switch {
	case in.Has(core.ActionLeft):
		return board.Left, true
	case in.Has(core.ActionUp):
		return board.Up, true
	case in.Has(core.ActionRight):
		return board.Right, true
	case in.Has(core.ActionDown):
		return board.Down, true
	}
	return 0, false
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.session.Score(),
		Best:     g.session.Best(),
		GameOver: g.session.IsTerminal(),
		Busy:     g.session.Busy(),
	}
}

// Hint returns the direction shown to the player, if any.
func (g *Game) Hint() (board.Direction, bool) {
	return g.hint, g.showHint
}

// Playout returns the running animation.
func (g *Game) Playout() *Playout {
	return g.playout
}
