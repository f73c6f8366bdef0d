package board

// LineAction records where one tile of a line ended up after a reduction.
// Indices are positions within the line.
type LineAction struct {
	From     int
	To       int
	Merged   bool // Tile took part in a merge
	Absorbed bool // Tile disappeared into the tile at To
}

// LineResult is the outcome of reducing one line toward index 0.
type LineResult struct {
	Line      [Size]int
	Actions   []LineAction
	Changed   bool
	ScoreGain int
}

// ReduceLine slides and merges a line toward index 0.
// Merges resolve strictly left to right and a tile merges at most once:
// [2,2,2,2] becomes [4,4,0,0], never [8,0,0,0].
func ReduceLine(line [Size]int) LineResult {
	type cell struct{ idx, val int }

	var tiles []cell
	for i := range Size {
		if line[i] != 0 {
			tiles = append(tiles, cell{idx: i, val: line[i]})
		}
	}

	var res LineResult
	out := 0
	for i := 0; i < len(tiles); {
		if i+1 < len(tiles) && tiles[i].val == tiles[i+1].val {
			merged := tiles[i].val * 2
			res.Line[out] = merged
			res.ScoreGain += merged
			res.Actions = append(res.Actions,
				LineAction{From: tiles[i].idx, To: out, Merged: true},
				LineAction{From: tiles[i+1].idx, To: out, Merged: true, Absorbed: true},
			)
			i += 2
		} else {
			res.Line[out] = tiles[i].val
			res.Actions = append(res.Actions, LineAction{From: tiles[i].idx, To: out})
			i++
		}
		out++
	}

	for _, a := range res.Actions {
		if a.From != a.To {
			res.Changed = true
			break
		}
	}
	return res
}
