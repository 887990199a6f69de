package tetris

import (
	"fmt"

	"github.com/vovakirdan/tui-tetris/internal/config"
	platformcore "github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/games/tetris/core"
)

const (
	cellW     = 2 // terminal columns per board cell
	panelW    = 20
	panelGap  = 2
	blockRune = '█'
	emptyRune = '·'
)

// shapeColors follows the classic palette of the desktop game.
var shapeColors = [core.ShapeCount + 1]platformcore.Color{
	core.ShapeNone: platformcore.ColorGray,
	core.ShapeI:    platformcore.ColorRed,
	core.ShapeJ:    platformcore.ColorYellow,
	core.ShapeL:    platformcore.ColorMagenta,
	core.ShapeO:    platformcore.ColorBlue,
	core.ShapeS:    platformcore.ColorCyan,
	core.ShapeT:    platformcore.ColorGreen,
	core.ShapeZ:    platformcore.ColorOrange,
}

// ShapeColor returns the display color for a shape.
func ShapeColor(s core.Shape) platformcore.Color {
	if int(s) >= len(shapeColors) {
		return platformcore.ColorDefault
	}
	return shapeColors[s]
}

// minSize returns the smallest screen that fits the board and side panel.
func (g *Game) minSize() (w, h int) {
	bw, bh := g.boardBoxSize()
	return bw + panelGap + panelW, bh
}

func (g *Game) boardBoxSize() (w, h int) {
	return g.cfg.Board.Width*cellW + 2, g.cfg.Board.Height + 2
}

// Render draws the game to the screen.
func (g *Game) Render(dst *platformcore.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}
	snap, ok := g.Snapshot()
	if !ok {
		dst.DrawTextCentered(g.screenH/2, "Game failed to start")
		return
	}

	totalW, totalH := g.minSize()
	area := platformcore.NewRect(0, 0, g.screenW, g.screenH).Centered(totalW, totalH)
	bw, bh := g.boardBoxSize()
	box := platformcore.NewRect(area.X, area.Y, bw, bh)

	g.renderBoard(dst, box, snap)
	g.renderPanel(dst, box.Right()+panelGap, box.Y, snap)
	g.renderOverlay(dst, box, snap)
}

func (g *Game) renderTooSmall(dst *platformcore.Screen) {
	w, h := g.minSize()
	y := g.screenH / 2
	dst.DrawTextCentered(y-1, "Window too small")
	dst.DrawTextCentered(y, fmt.Sprintf("Need %dx%d", w, h))
}

func (g *Game) renderBoard(dst *platformcore.Screen, box platformcore.Rect, snap core.Snapshot) {
	dst.DrawBox(box, platformcore.ColorGray)

	for y := range snap.Board {
		for x := range snap.Board[y] {
			sx := box.X + 1 + x*cellW
			sy := box.Y + 1 + y
			s := snap.At(x, y)
			if s == core.ShapeNone {
				dst.SetColor(sx, sy, emptyRune, platformcore.ColorGray)
				continue
			}
			for i := range cellW {
				dst.SetColor(sx+i, sy, blockRune, ShapeColor(s))
			}
		}
	}
}

func (g *Game) renderPanel(dst *platformcore.Screen, x, y int, snap core.Snapshot) {
	dst.DrawTextColor(x, y, "T E T R I S", platformcore.ColorCyan)

	rows := []struct {
		label string
		value string
	}{
		{"Score", fmt.Sprintf("%d", snap.Score)},
		{"Level", fmt.Sprintf("%d", snap.Level)},
		{"Lines", fmt.Sprintf("%d", snap.Lines)},
		{"Difficulty", config.DifficultyLabel(snap.Difficulty)},
	}
	for i, r := range rows {
		dst.DrawTextColor(x, y+2+i, r.label, platformcore.ColorGray)
		dst.DrawText(x+11, y+2+i, r.value)
	}

	dst.DrawTextColor(x, y+7, "Next", platformcore.ColorGray)
	g.renderPreview(dst, x, y+8, snap.Next)

	help := []string{
		"←/→  move",
		"↓    soft drop",
		"q/z  rotate left",
		"e/x  rotate right",
		"p    pause",
		"b    menu",
	}
	for i, line := range help {
		dst.DrawTextColor(x, y+12+i, line, platformcore.ColorGray)
	}
}

// renderPreview draws the next shape in its spawn orientation.
func (g *Game) renderPreview(dst *platformcore.Screen, x, y int, s core.Shape) {
	cells, _ := core.Template(s)
	for _, c := range cells {
		// Template x offsets start at -1.
		sx := x + (c.X+1)*cellW
		for i := range cellW {
			dst.SetColor(sx+i, y+c.Y, blockRune, ShapeColor(s))
		}
	}
}

func (g *Game) renderOverlay(dst *platformcore.Screen, box platformcore.Rect, snap core.Snapshot) {
	var lines []string
	switch {
	case snap.GameOver():
		lines = []string{"GAME OVER", fmt.Sprintf("Score %d", snap.Score), "r restart", "esc menu"}
	case g.paused:
		lines = []string{"PAUSED", "p resume", "b menu"}
	default:
		return
	}

	top := box.Y + (box.H-len(lines))/2
	for i, line := range lines {
		w := len([]rune(line))
		x := box.X + (box.W-w)/2
		color := platformcore.ColorWhite
		if i == 0 {
			color = platformcore.ColorYellow
			// Blink the title twice a second at 60 fps.
			if snap.GameOver() && (g.frames/30)%2 == 1 {
				color = platformcore.ColorRed
			}
		}
		dst.DrawTextColor(x-1, top+i, " "+line+" ", color)
	}
}
