package board

// RotationFor returns how many clockwise quarter turns bring d into
// leftward alignment. Moving a tile on row 0 "up" must keep it on row 0 and
// "down" must take it to the last row; swapping the up and down counts
// silently inverts them.
func RotationFor(d Direction) int {
	switch d {
	case Down:
		return 1
	case Right:
		return 2
	case Up:
		return 3
	default:
		return 0
	}
}

// inverse returns the turn count that undoes times clockwise turns.
func inverse(times int) int {
	return (Size - normalize(times)) % Size
}

func normalize(times int) int {
	return ((times % 4) + 4) % 4
}

// Rotate turns the grid clockwise the given number of quarter turns.
func Rotate(g Grid, times int) Grid {
	out := g
	for range normalize(times) {
		var next Grid
		for r := range Size {
			for c := range Size {
				next[c][Size-1-r] = out[r][c]
			}
		}
		out = next
	}
	return out
}

// RotatePoint maps a position through the given number of clockwise turns,
// matching Rotate.
func RotatePoint(p Position, times int) Position {
	for range normalize(times) {
		p = Position{Row: p.Col, Col: Size - 1 - p.Row}
	}
	return p
}
