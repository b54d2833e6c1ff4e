package snake

import (
	"fmt"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Glyphs used on the board.
const (
	glyphHead = '@'
	glyphBody = 'o'
	glyphFood = '*'
)

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	g.renderHUD(dst)

	if g.tooSmall {
		g.renderOverlay(dst, "Window too small",
			fmt.Sprintf("Need %dx%d", g.state.Grid.Width+2*borderSize, g.state.Grid.Height+2*borderSize+hudHeight))
		return
	}

	dst.DrawBox(core.NewRect(g.boardX, g.boardY,
		g.state.Grid.Width+2*borderSize, g.state.Grid.Height+2*borderSize), core.ColorGray)

	if g.state.HasFood {
		g.setCell(dst, g.state.Food, glyphFood, core.ColorOrange)
	}

	// Body first so the head wins if a collision left them overlapping
	for i := len(g.state.Snake) - 1; i >= 0; i-- {
		if i == 0 {
			g.setCell(dst, g.state.Snake[i], glyphHead, core.ColorBrightGreen)
		} else {
			g.setCell(dst, g.state.Snake[i], glyphBody, core.ColorGreen)
		}
	}

	switch {
	case g.state.Status == StatusWon:
		g.renderOverlay(dst, "You Win!", "Press SPACE to play again")
	case g.state.Status == StatusLost:
		g.renderOverlay(dst, "Game Over", "Press SPACE to play again")
	case g.paused:
		g.renderOverlay(dst, "Paused", "Press P to continue")
	}
}

// setCell draws a glyph at a grid cell, translated into screen coordinates.
func (g *Game) setCell(dst *core.Screen, p core.Point, r rune, c core.Color) {
	dst.SetColor(g.boardX+borderSize+p.X, g.boardY+borderSize+p.Y, r, c)
}

// renderHUD draws the top status bar.
func (g *Game) renderHUD(dst *core.Screen) {
	hud := fmt.Sprintf(" %s  Score: %d  Length: %d  Best: %d", g.Title(),
		g.state.Score, len(g.state.Snake), g.best)
	dst.DrawTextColor(0, 0, hud, core.ColorBrightYellow)

	for x := 0; x < dst.Width(); x++ {
		dst.SetColor(x, 1, '─', core.ColorGray)
	}
}

// renderOverlay draws a centered two-line message box.
func (g *Game) renderOverlay(dst *core.Screen, line1, line2 string) {
	maxLen := max(len(line1), len(line2))
	box := core.NewRect((dst.Width()-(maxLen+4))/2, (dst.Height()-5)/2, maxLen+4, 5)

	dst.DrawRect(box, ' ')
	dst.DrawBox(box, core.ColorWhite)
	dst.DrawTextCentered(box.Y+1, line1)
	dst.DrawTextCentered(box.Y+3, line2)
}
