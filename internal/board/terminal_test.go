package board

import "testing"

var checkerboard = Grid{
	{2, 4, 2, 4},
	{4, 2, 4, 2},
	{2, 4, 2, 4},
	{4, 2, 4, 2},
}

func TestIsTerminal(t *testing.T) {
	if !IsTerminal(checkerboard) {
		t.Error("checkerboard with no equal neighbours should be terminal")
	}

	horizontal := checkerboard
	horizontal[3][3] = 4 // equals its left neighbour
	if IsTerminal(horizontal) {
		t.Error("board with a horizontal pair should not be terminal")
	}

	vertical := checkerboard
	vertical[0][0] = 4 // equals the cell below
	if IsTerminal(vertical) {
		t.Error("board with a vertical pair should not be terminal")
	}

	withEmpty := checkerboard
	withEmpty[1][2] = 0
	if IsTerminal(withEmpty) {
		t.Error("board with an empty cell should not be terminal")
	}

	if IsTerminal(Grid{}) {
		t.Error("empty board should not be terminal")
	}
}

func TestIsTerminalAgreesWithMove(t *testing.T) {
	boards := []Grid{
		checkerboard,
		{
			{2, 4, 8, 16},
			{32, 64, 128, 256},
			{512, 1024, 2048, 4096},
			{8192, 16384, 32768, 65536},
		},
		{
			{2, 2, 8, 16},
			{32, 64, 128, 256},
			{512, 1024, 2048, 4096},
			{8192, 16384, 32768, 65536},
		},
	}

	for _, g := range boards {
		anyChange := false
		for _, d := range Directions {
			if Move(g, d).Changed {
				anyChange = true
			}
		}
		if IsTerminal(g) == anyChange {
			t.Errorf("IsTerminal=%v but some move changes=%v for\n%v", IsTerminal(g), anyChange, g)
		}
	}
}

func TestMaxTileAndEmptyCells(t *testing.T) {
	g := Grid{
		{2, 0, 8, 0},
		{0, 64, 0, 256},
		{512, 0, 2048, 0},
		{0, 16, 0, 64},
	}

	if got := MaxTile(g); got != 2048 {
		t.Errorf("MaxTile = %d, want 2048", got)
	}
	if got := len(EmptyCells(g)); got != 8 {
		t.Errorf("EmptyCells count = %d, want 8", got)
	}
	if got := EmptyCount(g); got != 8 {
		t.Errorf("EmptyCount = %d, want 8", got)
	}
	if got := Sum(g); got != 2+8+64+256+512+2048+16+64 {
		t.Errorf("Sum = %d", got)
	}
}
