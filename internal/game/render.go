package game

import (
	"fmt"
	"math"

	"github.com/vovakirdan/fruit2048/internal/board"
	"github.com/vovakirdan/fruit2048/internal/core"
)

const (
	cellWidth  = 7 // Width of each cell (including left border)
	cellHeight = 2 // Height of each cell (including top border)
	hudHeight  = 3

	boardW = board.Size*cellWidth + 1
	boardH = board.Size*cellHeight + 1

	minScreenW = boardW + 4
	minScreenH = hudHeight + boardH + 3
)

var hintArrows = map[board.Direction]string{
	board.Left:  "←",
	board.Up:    "↑",
	board.Right: "→",
	board.Down:  "↓",
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	boardX := (g.screenW-boardW)/2 + g.playout.ShakeOffset()
	boardY := hudHeight + 1

	g.renderHUD(dst, (g.screenW-boardW)/2)
	g.renderGrid(dst, boardX, boardY)
	if g.playout.Phase() == PhaseSlide {
		g.renderSprites(dst, boardX, boardY)
	} else {
		g.renderTiles(dst, boardX, boardY)
	}
	g.renderHint(dst, boardY+boardH+1)

	if g.session.IsTerminal() && !g.playout.Active() {
		maxStr := fmt.Sprintf("Max tile: %d", board.MaxTile(g.session.Grid()))
		scoreStr := fmt.Sprintf("Score: %d", g.session.Score())
		g.drawOverlay(dst, boardX+boardW/2, boardY+boardH/2, "GAME OVER", scoreStr, maxStr, "Press R to restart")
	}
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	y := g.screenH / 2
	dst.DrawTextCentered(y, "Window too small")
	dst.DrawTextCentered(y+1, fmt.Sprintf("Need %dx%d", minScreenW, minScreenH))
}

// renderHUD draws the title, score and best score.
func (g *Game) renderHUD(dst *core.Screen, x int) {
	title := "fruit 2048"
	dst.DrawTextColored(x+(boardW-core.TextWidth(title))/2, 0, title, core.ColorBrightYellow)

	dst.DrawText(x, 1, fmt.Sprintf("Score: %d", g.session.Score()))

	best := fmt.Sprintf("Best: %d", g.session.Best())
	dst.DrawText(core.Max(x, x+boardW-core.TextWidth(best)), 1, best)

	moves := fmt.Sprintf("Moves: %d", g.session.Moves())
	dst.DrawTextColored(x+(boardW-core.TextWidth(moves))/2, 2, moves, core.ColorGray)
}

// renderGrid draws the cell borders.
func (g *Game) renderGrid(dst *core.Screen, boardX, boardY int) {
	for y := range board.Size + 1 {
		for x := range board.Size + 1 {
			px := boardX + x*cellWidth
			py := boardY + y*cellHeight

			var corner rune
			switch {
			case y == 0 && x == 0:
				corner = '┌'
			case y == 0 && x == board.Size:
				corner = '┐'
			case y == board.Size && x == 0:
				corner = '└'
			case y == board.Size && x == board.Size:
				corner = '┘'
			case y == 0:
				corner = '┬'
			case y == board.Size:
				corner = '┴'
			case x == 0:
				corner = '├'
			case x == board.Size:
				corner = '┤'
			default:
				corner = '┼'
			}
			dst.SetColored(px, py, corner, core.ColorGray)

			if x < board.Size {
				for i := 1; i < cellWidth; i++ {
					dst.SetColored(px+i, py, '─', core.ColorGray)
				}
			}
			if y < board.Size {
				for i := 1; i < cellHeight; i++ {
					dst.SetColored(px, py+i, '│', core.ColorGray)
				}
			}
		}
	}
}

// renderTiles draws the committed board.
func (g *Game) renderTiles(dst *core.Screen, boardX, boardY int) {
	grid := g.session.Grid()
	for r := range board.Size {
		for c := range board.Size {
			val := grid[r][c]
			if val == 0 {
				continue
			}
			pos := board.Position{Row: r, Col: c}
			g.drawTile(dst, boardX+c*cellWidth+1, boardY+r*cellHeight+1, val, g.playout.Popping(pos))
		}
	}
}

// renderSprites draws tiles at their interpolated slide positions. Absorbed
// tiles are drawn first so survivors land on top.
func (g *Game) renderSprites(dst *core.Screen, boardX, boardY int) {
	t := g.playout.Progress()
	for _, absorbed := range []bool{true, false} {
		for _, sp := range g.playout.Sprites() {
			if sp.Absorbed != absorbed {
				continue
			}
			row, col := sp.Position(t)
			x := boardX + int(math.Round(col*cellWidth)) + 1
			y := boardY + int(math.Round(row*cellHeight)) + 1
			g.drawTile(dst, x, y, sp.Value, false)
		}
	}
}

// drawTile centers a tile label in the cell whose interior starts at (x, y).
func (g *Game) drawTile(dst *core.Screen, x, y, value int, pop bool) {
	label := TileLabel(value, g.mode)
	color := TileColor(value)
	inner := cellWidth - 1
	pad := core.Max((inner-core.TextWidth(label))/2, 0)

	if pop {
		dst.FillRect(core.NewRect(x, y, inner, 1), '░', color)
	}
	dst.DrawTextColored(x+pad, y, label, color)
}

// renderHint draws the suggested direction below the board.
func (g *Game) renderHint(dst *core.Screen, y int) {
	if !g.showHint {
		return
	}
	msg := fmt.Sprintf("Hint: %s %s", hintArrows[g.hint], g.hint)
	dst.DrawTextColored((g.screenW-core.TextWidth(msg))/2, y, msg, core.ColorBrightYellow)
}

// drawOverlay draws a centered text overlay.
func (g *Game) drawOverlay(dst *core.Screen, centerX, centerY int, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		maxLen = core.Max(maxLen, core.TextWidth(line))
	}

	boxW := maxLen + 4
	boxH := len(lines) + 2
	box := core.NewRect(centerX-boxW/2, centerY-boxH/2, boxW, boxH)

	dst.FillRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box)

	for i, line := range lines {
		dst.DrawTextColored(centerX-core.TextWidth(line)/2, box.Y+1+i, line, core.ColorBrightWhite)
	}
}
