package streamline

import (
	"fmt"
	"unicode/utf8"

	platformcore "github.com/vovakirdan/streamline/internal/core"
	"github.com/vovakirdan/streamline/internal/games/streamline/core"
)

const hudHeight = 2

// Render draws the game to the screen.
func (g *Game) Render(dst *platformcore.Screen) {
	dst.Clear()
	dst.DrawTextColor(0, 0, g.hud(), platformcore.ColorCyan)
	for x := range dst.Width() {
		dst.SetCell(x, 1, platformcore.Cell{Rune: '─', Color: platformcore.ColorGray})
	}

	if g.notice != "" {
		dst.DrawTextColor(1, dst.Height()-1, g.notice, g.noticeColor)
	}

	if g.gameOver {
		g.renderOverlay(dst, "All levels cleared!", "R: play again | Q: quit", platformcore.ColorGreen)
		return
	}

	s := g.Session()
	if s == nil {
		g.renderOverlay(dst, "No board", "Check the levels path", platformcore.ColorRed)
		return
	}

	if !g.renderBoard(dst, s.Current()) {
		g.renderOverlay(dst, "Window too small", "Resize to continue", platformcore.ColorYellow)
		return
	}

	if g.clearTicks > 0 {
		g.renderOverlay(dst, "Level Passed!",
			fmt.Sprintf("%d moves, %d undos", s.Moves(), s.Undos()), platformcore.ColorGreen)
	}
}

// renderBoard draws the bordered board centered below the HUD. It reports
// false when the board does not fit.
func (g *Game) renderBoard(dst *platformcore.Screen, b *core.Board) bool {
	boxW := 2*b.Width() + 3
	boxH := b.Height() + 2
	area := platformcore.NewRect(0, hudHeight, dst.Width(), dst.Height()-hudHeight-1)
	if boxW > area.W || boxH > area.H {
		return false
	}

	box := area.Centered(boxW, boxH)
	dst.DrawBox(box, platformcore.ColorGray)

	for r := range b.Height() {
		for c := range b.Width() {
			dst.SetCell(box.X+2+2*c, box.Y+1+r, cellGlyph(b, core.P(r, c)))
		}
	}
	return true
}

func cellGlyph(b *core.Board, p core.Pos) platformcore.Cell {
	switch {
	case p == b.Player():
		return platformcore.Cell{Rune: rune(core.PlayerChar), Color: platformcore.ColorYellow}
	case p == b.Goal():
		return platformcore.Cell{Rune: rune(core.GoalChar), Color: platformcore.ColorGreen}
	}
	switch b.At(p) {
	case core.CellObstacle:
		return platformcore.Cell{Rune: 'X', Color: platformcore.ColorRed}
	case core.CellTrail:
		return platformcore.Cell{Rune: '.', Color: platformcore.ColorBlue}
	}
	return platformcore.Cell{Rune: ' '}
}

// renderOverlay draws a centered two-line message box.
func (g *Game) renderOverlay(dst *platformcore.Screen, line1, line2 string, color platformcore.Color) {
	w := max(utf8.RuneCountInString(line1), utf8.RuneCountInString(line2)) + 4
	box := dst.Bounds().Centered(w, 5)

	for y := box.Y; y < box.Bottom(); y++ {
		for x := box.X; x < box.Right(); x++ {
			dst.Set(x, y, ' ')
		}
	}
	dst.DrawBox(box, color)
	dst.DrawTextCentered(box.Y+1, line1, color)
	dst.DrawTextCentered(box.Y+3, line2, platformcore.ColorGray)
}
