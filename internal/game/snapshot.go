package game

import "github.com/vovakirdan/fruit2048/internal/board"

// Snapshot captures the session state for determinism testing and CLI output.
type Snapshot struct {
	ID            string
	Score         int
	Best          int
	Grid          board.Grid
	MaxTile       int // Highest tile on board
	Moves         int
	State         State
	InvalidStreak int
}

// Snapshot returns the current session snapshot.
func (s *Session) Snapshot() Snapshot {
	return Snapshot{
		ID:            s.id,
		Score:         s.score,
		Best:          s.best,
		Grid:          s.grid,
		MaxTile:       board.MaxTile(s.grid),
		Moves:         s.moves,
		State:         s.state,
		InvalidStreak: s.invalidStreak,
	}
}
