package board

// TileAction describes one tile's displacement during a move.
type TileAction struct {
	From     Position
	To       Position
	Value    int  // Value before the move
	Merged   bool // Tile took part in a merge
	Absorbed bool // Tile disappeared into the surviving tile at To
}

// Moved reports whether the tile changed position.
func (a TileAction) Moved() bool {
	return a.From != a.To
}

// MoveResult is the outcome of applying a direction to a grid.
type MoveResult struct {
	Direction Direction
	Grid      Grid
	Changed   bool
	ScoreGain int
	Actions   []TileAction

	// Spawned is the tile placed after the move was committed.
	// Move never sets it; the game session does.
	Spawned *Tile
}

// Move slides the grid in direction d. The input grid is not modified.
//
// All four directions reuse ReduceLine: the grid is rotated so d points
// left, each row is reduced on its own, and positions and the final grid are
// rotated back.
func Move(g Grid, d Direction) MoveResult {
	rot := RotationFor(d)
	back := inverse(rot)
	rotated := Rotate(g, rot)

	res := MoveResult{Direction: d}
	var reduced Grid
	for r := range Size {
		lr := ReduceLine(rotated[r])
		reduced[r] = lr.Line
		res.ScoreGain += lr.ScoreGain
		res.Changed = res.Changed || lr.Changed

		for _, a := range lr.Actions {
			res.Actions = append(res.Actions, TileAction{
				From:     RotatePoint(Position{Row: r, Col: a.From}, back),
				To:       RotatePoint(Position{Row: r, Col: a.To}, back),
				Value:    rotated[r][a.From],
				Merged:   a.Merged,
				Absorbed: a.Absorbed,
			})
		}
	}

	res.Grid = Rotate(reduced, back)
	return res
}

// MergedTargets returns the positions that hold a freshly merged tile.
func (m MoveResult) MergedTargets() []Position {
	var out []Position
	for _, a := range m.Actions {
		if a.Merged && !a.Absorbed {
			out = append(out, a.To)
		}
	}
	return out
}
