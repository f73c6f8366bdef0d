// Package board implements the 2048 board-transform engine: line reduction,
// rotation-based moves in all four directions, tile spawning, terminal-state
// detection and the one-ply move hint.
//
// Everything here is pure and synchronous. The only state that changes is a
// caller-owned Grid passed to the Spawner.
package board

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Size is the board dimension.
const Size = 4

// Grid is a Size x Size matrix of tile values. 0 is an empty cell.
type Grid [Size][Size]int

// Position is a (row, column) board coordinate.
type Position struct {
	Row int
	Col int
}

// Tile is a value placed at a position.
type Tile struct {
	Pos   Position
	Value int
}

// Direction is a move direction.
type Direction int

// Directions in hint evaluation order.
const (
	Left Direction = iota
	Up
	Right
	Down
)

// Directions lists every direction in evaluation order.
var Directions = [...]Direction{Left, Up, Right, Down}

// ErrInvalidDirection is returned for a direction outside the closed set.
var ErrInvalidDirection = errors.New("board: invalid direction")

// Valid reports whether d is one of the four directions.
func (d Direction) Valid() bool {
	return d >= Left && d <= Down
}

func (d Direction) String() string {
	switch d {
	case Left:
		return "left"
	case Up:
		return "up"
	case Right:
		return "right"
	case Down:
		return "down"
	default:
		return "Direction(" + strconv.Itoa(int(d)) + ")"
	}
}

// Opposite returns the reverse direction.
func (d Direction) Opposite() Direction {
	switch d {
	case Left:
		return Right
	case Right:
		return Left
	case Up:
		return Down
	case Down:
		return Up
	default:
		return d
	}
}

// ParseDirection converts a direction name (case-insensitive) to a Direction.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "left":
		return Left, nil
	case "up":
		return Up, nil
	case "right":
		return Right, nil
	case "down":
		return Down, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidDirection, s)
}

// EmptyCells returns the empty positions in row-major order.
func EmptyCells(g Grid) []Position {
	var cells []Position
	for r := range Size {
		for c := range Size {
			if g[r][c] == 0 {
				cells = append(cells, Position{Row: r, Col: c})
			}
		}
	}
	return cells
}

// EmptyCount returns the number of empty cells.
func EmptyCount(g Grid) int {
	n := 0
	for r := range Size {
		for c := range Size {
			if g[r][c] == 0 {
				n++
			}
		}
	}
	return n
}

// MaxTile returns the highest tile value on the board.
func MaxTile(g Grid) int {
	maxVal := 0
	for r := range Size {
		for c := range Size {
			if g[r][c] > maxVal {
				maxVal = g[r][c]
			}
		}
	}
	return maxVal
}

// Sum returns the total of all tile values.
func Sum(g Grid) int {
	total := 0
	for r := range Size {
		for c := range Size {
			total += g[r][c]
		}
	}
	return total
}

// String renders the grid as right-aligned columns, one row per line.
// Empty cells are shown as dots.
func (g Grid) String() string {
	width := len(strconv.Itoa(MaxTile(g)))
	if width < 1 {
		width = 1
	}

	var sb strings.Builder
	for r := range Size {
		if r > 0 {
			sb.WriteByte('\n')
		}
		for c := range Size {
			if c > 0 {
				sb.WriteByte(' ')
			}
			cell := "."
			if g[r][c] != 0 {
				cell = strconv.Itoa(g[r][c])
			}
			sb.WriteString(strings.Repeat(" ", width-len(cell)))
			sb.WriteString(cell)
		}
	}
	return sb.String()
}
