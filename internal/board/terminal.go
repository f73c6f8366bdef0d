package board

// IsTerminal reports whether no move can change the grid: every cell is
// filled and no two orthogonal neighbours are equal.
//
// A full board can still have a valid move, so this is only meaningful after
// the post-move spawn.
func IsTerminal(g Grid) bool {
	for r := range Size {
		for c := range Size {
			if g[r][c] == 0 {
				return false
			}
		}
	}

	for r := range Size {
		for c := range Size {
			v := g[r][c]
			if c < Size-1 && g[r][c+1] == v {
				return false
			}
			if r < Size-1 && g[r+1][c] == v {
				return false
			}
		}
	}
	return true
}
