package board

// mergeWeight makes merge value dominate; free cells only break ties.
const mergeWeight = 100

// Score rates a simulated move for the hint.
func Score(m MoveResult) int {
	return m.ScoreGain*mergeWeight + EmptyCount(m.Grid)
}

// Suggest simulates each direction one move ahead and returns the one with
// the highest Score. Directions that leave the grid unchanged are skipped and
// ties keep the earliest direction in Directions order. It returns false when
// no direction changes the grid.
func Suggest(g Grid) (Direction, bool) {
	best, bestScore, found := Left, 0, false
	for _, d := range Directions {
		res := Move(g, d)
		if !res.Changed {
			continue
		}
		if s := Score(res); !found || s > bestScore {
			best, bestScore, found = d, s, true
		}
	}
	return best, found
}
