package blocky

import (
	"fmt"
	"sort"
	"strings"

	blk "github.com/vovakirdan/tui-blocky/internal/blocky"
	"github.com/vovakirdan/tui-blocky/internal/core"
)

// Each board pixel is one terminal row by cellW columns, so squares look
// roughly square.
const (
	cellW    = 2
	hudWidth = 36
	margin   = 1
)

// Visual characters for rendering
const (
	PointerChar = '◆'
	SwatchChar  = '■'
	TurnMarker  = '▶'
)

// layout maps board pixels to screen cells.
type layout struct {
	originX, originY int
	size             int // board side in pixels
	unit             int // unit cell side in pixels
	hudX             int
}

// newLayout sizes the board to size pixels, or to the largest multiple of
// the unit cell count that fits next to the HUD when size is 0.
func newLayout(screenW, screenH, maxDepth, size int) layout {
	cells := 1 << maxDepth
	if size <= 0 {
		avail := core.Min(screenH-2*margin, (screenW-hudWidth-3*margin)/cellW)
		size = avail / cells * cells
	}
	if size < cells {
		size = cells
	}
	return layout{
		originX: margin,
		originY: margin,
		size:    size,
		unit:    core.Max(1, size/cells),
		hudX:    margin + size*cellW + 2*margin,
	}
}

// bounds is the screen area covered by the board.
func (l layout) bounds() core.Rect {
	return l.toScreen(blk.Point{}, l.size)
}

// toBoard converts a screen cell to a board pixel.
func (l layout) toBoard(x, y int) (blk.Point, bool) {
	if !l.bounds().Contains(x, y) {
		return blk.Point{}, false
	}
	return blk.Pt((x-l.originX)/cellW, y-l.originY), true
}

// toScreen converts a board square to a screen rectangle.
func (l layout) toScreen(pos blk.Point, size int) core.Rect {
	return core.NewRect(l.originX+pos.X*cellW, l.originY+pos.Y, size*cellW, size)
}

func toCoreColor(c blk.Color) core.Color {
	return core.RGBColor(c.R, c.G, c.B)
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	g.drawBoard(dst)
	if s := g.seats[g.current]; s.human != nil && !g.gameOver {
		g.drawPointer(dst)
	}
	g.drawHUD(dst)

	if g.paused {
		g.drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}

	if g.gameOver {
		g.drawCenteredMessage(dst, g.resultTitle(), fmt.Sprintf("%s  |  Press N to play again", g.scoreLine()))
	}
}

// drawBoard rasterises the board's rectangles: fills first, then
// outlines in order of thickness so highlights end on top.
func (g *Game) drawBoard(dst *core.Screen) {
	rects := g.board.Rectangles()
	sort.SliceStable(rects, func(i, j int) bool {
		return rects[i].Thickness < rects[j].Thickness
	})

	for _, r := range rects {
		sr := g.layout.toScreen(r.Position, r.Size)
		switch {
		case r.Filled():
			dst.FillRect(sr, toCoreColor(r.Color))
		case r.Thickness >= blk.HighlightThickness:
			drawOutline(dst, sr, core.BoxHeavy, toCoreColor(r.Color))
		default:
			drawOutline(dst, sr, core.BoxLight, toCoreColor(r.Color))
		}
	}
}

// drawOutline draws a box where it fits. Single-row squares only get
// their side bars.
func drawOutline(dst *core.Screen, r core.Rect, style core.BoxStyle, fg core.Color) {
	if r.H >= 2 && r.W >= 2 {
		dst.DrawBoxColored(r, style, fg)
		return
	}
	if style == core.BoxHeavy {
		dst.SetColored(r.X, r.Y, '▐', fg)
		dst.SetColored(r.Right()-1, r.Y, '▌', fg)
	}
}

func (g *Game) drawPointer(dst *core.Screen) {
	x := g.layout.originX + g.pointer.X*cellW
	y := g.layout.originY + g.pointer.Y
	dst.SetColored(x, y, PointerChar, core.ColorBrightWhite)
}

// goalHints are short HUD explanations of each goal.
var goalHints = map[blk.GoalKind]string{
	blk.GoalBlob:      "largest connected blob",
	blk.GoalPerimeter: "most cells on the outer edge",
}

func (g *Game) drawHUD(dst *core.Screen) {
	x := g.layout.hudX
	y := g.layout.originY

	dst.DrawTextColored(x, y, strings.ToUpper(g.variant.Title), core.ColorBrightCyan)
	dst.DrawHLine(x, y+1, hudWidth-2, '─', core.ColorGray)
	y += 2
	dst.DrawText(x, y, fmt.Sprintf("Round %d/%d", g.round, g.cfg.Game.Rounds))
	y++
	dst.DrawText(x, y, fmt.Sprintf("Goal: %s (%s)", g.goal, goalHints[g.goal]))
	y += 2

	for i, s := range g.seats {
		marker := ' '
		if i == g.current && !g.gameOver {
			marker = TurnMarker
		}
		dst.SetColored(x, y, marker, core.ColorBrightYellow)
		dst.DrawText(x+2, y, fmt.Sprintf("%-5s %-6s", s.label(), s.player.Kind()))
		dst.SetColored(x+15, y, SwatchChar, toCoreColor(s.player.Goal().Color()))
		dst.SetColored(x+16, y, SwatchChar, toCoreColor(s.player.Goal().Color()))
		dst.DrawText(x+18, y, fmt.Sprintf("score %d", s.score))
		y++
		extra := s.color
		if s.human != nil {
			extra += fmt.Sprintf(", smashes left %d", s.human.SmashesLeft())
		}
		dst.DrawTextColored(x+4, y, extra, core.ColorGray)
		y++
	}
	y++

	if s := g.seats[g.current]; s.human != nil && !g.gameOver {
		dst.DrawText(x, y, fmt.Sprintf("Level %d/%d", s.human.Level(), g.board.MaxDepth))
	} else if g.cpuMove != nil {
		dst.DrawText(x, y, fmt.Sprintf("Thinking: %s", g.cpuMove.Kind))
	}
	y++
	dst.DrawTextColored(x, y, g.status, core.ColorYellow)
	y += 2

	hints := []string{
		"Arrows/mouse  move pointer",
		"[ ]           level up/down",
		"R E / clicks  rotate cw/ccw",
		"H V           swap horiz/vert",
		"X             smash",
		"P pause  N new  Q quit",
	}
	for _, h := range hints {
		dst.DrawTextColored(x, y, h, core.ColorGray)
		y++
	}
}

func (g *Game) resultTitle() string {
	winner := core.Winner(g.MatchResult().Players)
	if winner == 0 {
		return "DRAW!"
	}
	for _, s := range g.seats {
		if s.player.ID() == winner {
			return fmt.Sprintf("%s WINS!", s.label())
		}
	}
	return "GAME OVER"
}

func (g *Game) scoreLine() string {
	parts := make([]string, len(g.seats))
	for i, s := range g.seats {
		parts[i] = fmt.Sprintf("%d", s.score)
	}
	return strings.Join(parts, " - ")
}

// drawCenteredMessage draws a message box in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	boxW := core.Max(len([]rune(title)), len([]rune(subtitle))) + 4
	boxH := 5

	cx, cy := core.NewRect(0, 0, dst.Width(), dst.Height()).Center()
	box := core.NewRect(cx-boxW/2, cy-boxH/2, boxW, boxH)
	dst.FillRect(box, core.ColorDefault)
	dst.DrawBox(box)

	dst.DrawTextCentered(box, box.Y+1, title, core.ColorBrightYellow)
	dst.DrawTextCentered(box, box.Y+3, subtitle, core.ColorDefault)
}
