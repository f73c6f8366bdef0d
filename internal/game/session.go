// Package game owns a single game of fruit 2048: the session state machine,
// the animation playout that presents each move, and rendering to a
// core.Screen.
package game

import (
	"errors"
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/fruit2048/internal/board"
)

var (
	// ErrGameOver is returned by Move once the board is terminal.
	ErrGameOver = errors.New("game: game over")

	// ErrBusy is returned by Move while the previous move is still playing out.
	ErrBusy = errors.New("game: move in progress")
)

// DefaultHintThreshold is the number of consecutive no-op moves after which
// a hint is offered.
const DefaultHintThreshold = 2

// State is the session's position in the game lifecycle.
type State int

const (
	StateActive State = iota
	StateTerminal
)

// String returns the lowercase state name.
func (s State) String() string {
	switch s {
	case StateActive:
		return "active"
	case StateTerminal:
		return "terminal"
	default:
		return "unknown"
	}
}

// Session holds the state of one game. All mutation goes through Move and
// NewGame; it is not safe for concurrent use.
type Session struct {
	id    string
	grid  board.Grid
	score int
	best  int
	moves int
	state State

	invalidStreak int
	busy          bool

	hintThreshold int
	dist          board.SpawnDistribution
	rng           *rand.Rand
	spawner       *board.Spawner

	store    BestStore
	recorder ScoreRecorder
	logger   *log.Logger
}

// Option configures a Session.
type Option func(*Session)

// WithRand sets the random source used for spawning.
func WithRand(rng *rand.Rand) Option {
	return func(s *Session) {
		if rng != nil {
			s.rng = rng
		}
	}
}

// WithSeed seeds the spawn random source.
func WithSeed(seed int64) Option {
	return WithRand(rand.New(rand.NewSource(seed)))
}

// WithDistribution sets the spawn value distribution.
func WithDistribution(dist board.SpawnDistribution) Option {
	return func(s *Session) {
		s.dist = dist
	}
}

// WithHintThreshold sets how many consecutive no-op moves trigger a hint.
// Values below 1 are raised to 1.
func WithHintThreshold(n int) Option {
	return func(s *Session) {
		s.hintThreshold = max(n, 1)
	}
}

// WithBestStore persists the best score.
func WithBestStore(store BestStore) Option {
	return func(s *Session) {
		s.store = store
	}
}

// WithRecorder records every finished game.
func WithRecorder(rec ScoreRecorder) Option {
	return func(s *Session) {
		s.recorder = rec
	}
}

// WithLogger sets the logger. Sessions log nothing by default.
func WithLogger(logger *log.Logger) Option {
	return func(s *Session) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// NewSession creates a session and starts its first game.
func NewSession(opts ...Option) *Session {
	s := &Session{
		hintThreshold: DefaultHintThreshold,
		dist:          board.DefaultSpawnDistribution(),
		logger:        log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.rng == nil {
		s.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	s.spawner = board.NewSpawner(s.dist, s.rng)

	if s.store != nil {
		best, err := s.store.LoadBest()
		if err != nil {
			s.logger.Warn("cannot load best score", "error", err)
		} else {
			s.best = best
		}
	}

	s.NewGame()
	return s
}

// NewGame resets the board, score and invalid-move streak and spawns two
// tiles. The best score is kept.
func (s *Session) NewGame() {
	s.id = uuid.NewString()
	s.grid = board.Grid{}
	s.score = 0
	s.moves = 0
	s.state = StateActive
	s.invalidStreak = 0
	s.busy = false

	for range 2 {
		if _, err := s.spawner.Spawn(&s.grid); err != nil {
			s.logger.Error("initial spawn failed", "error", err)
		}
	}
	s.logger.Debug("new game", "session", s.id)
}

// Move applies d to the board.
//
// A move that leaves the board unchanged is not an error: the result has
// Changed false and the invalid-move streak grows. A changed move commits
// the new grid, adds the score gain, spawns a tile (reported in
// MoveResult.Spawned, with MoveResult.Grid holding the board before the
// spawn) and checks for a terminal board. The session then stays busy until
// Settle is called.
func (s *Session) Move(d board.Direction) (board.MoveResult, error) {
	if !d.Valid() {
		return board.MoveResult{}, fmt.Errorf("game: move %d: %w", int(d), board.ErrInvalidDirection)
	}
	if s.state == StateTerminal {
		return board.MoveResult{}, ErrGameOver
	}
	if s.busy {
		return board.MoveResult{}, ErrBusy
	}

	res := board.Move(s.grid, d)
	if !res.Changed {
		s.invalidStreak++
		s.logger.Debug("no-op move", "direction", d, "streak", s.invalidStreak)
		return res, nil
	}

	s.invalidStreak = 0
	s.grid = res.Grid
	s.score += res.ScoreGain
	s.moves++
	if s.score > s.best {
		s.best = s.score
		s.saveBest()
	}

	// A changed move always frees or keeps at least one cell.
	tile, err := s.spawner.Spawn(&s.grid)
	if err != nil {
		return res, fmt.Errorf("game: spawn after %s: %w", d, err)
	}
	res.Spawned = &tile
	s.busy = true

	if board.IsTerminal(s.grid) {
		s.state = StateTerminal
		s.logger.Info("game over", "session", s.id, "score", s.score, "max", board.MaxTile(s.grid))
		s.recordGame()
	}
	return res, nil
}

// Settle marks the current move's playout as finished.
func (s *Session) Settle() {
	s.busy = false
}

// SuggestHint returns a direction to try once invalidStreak reaches the
// hint threshold.
func (s *Session) SuggestHint(invalidStreak int) (board.Direction, bool) {
	if invalidStreak < s.hintThreshold {
		return 0, false
	}
	return board.Suggest(s.grid)
}

// Hint is SuggestHint with the session's own invalid-move streak.
func (s *Session) Hint() (board.Direction, bool) {
	return s.SuggestHint(s.invalidStreak)
}

func (s *Session) saveBest() {
	if s.store == nil {
		return
	}
	if err := s.store.SaveBest(s.best); err != nil {
		s.logger.Warn("cannot save best score", "best", s.best, "error", err)
	}
}

func (s *Session) recordGame() {
	if s.recorder == nil {
		return
	}
	if err := s.recorder.RecordGame(s.id, s.score, board.MaxTile(s.grid), s.moves); err != nil {
		s.logger.Warn("cannot record game", "session", s.id, "error", err)
	}
}

func (s *Session) Grid() board.Grid { return s.grid }
func (s *Session) Score() int { return s.score }
func (s *Session) Best() int { return s.best }
func (s *Session) State() State { return s.state }
func (s *Session) IsTerminal() bool { return s.state == StateTerminal }
func (s *Session) InvalidStreak() int { return s.invalidStreak }
func (s *Session) Busy() bool { return s.busy }
func (s *Session) ID() string { return s.id }
func (s *Session) Moves() int { return s.moves }
