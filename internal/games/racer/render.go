package racer

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-racer/internal/core"
)

// Visual characters for rendering
const (
	GrassChar   = '░'
	EdgeChar    = '│'
	LaneChar    = '╎'
	CarChar     = '█'
	GhostChar   = '▒'
	CoinChar    = '●'
	laneCount   = 3
	dashPeriods = 4 // Lane dashes per playfield height
)

// competitorColors is indexed by Entity.Variant.
var competitorColors = []core.Color{
	core.ColorRed,
	core.ColorBlue,
	core.ColorMagenta,
	core.ColorOrange,
}

// projection maps world coordinates (y up) onto screen cells (y down).
type projection struct {
	sx, sy float64
	h      int
}

func newProjection(w World, dst *core.Screen) projection {
	return projection{
		sx: float64(dst.Width()) / w.Width,
		sy: float64(dst.Height()) / w.Height,
		h:  dst.Height(),
	}
}

func (p projection) col(x float64) int {
	return int(math.Floor(x * p.sx))
}

func (p projection) row(y float64) int {
	return p.h - 1 - int(math.Floor(y*p.sy))
}

// rect returns the cells covered by a world box, at least one cell.
func (p projection) rect(r core.RectF) core.Rect {
	x0 := int(math.Floor(r.Left() * p.sx))
	x1 := int(math.Ceil(r.Right() * p.sx))
	top := p.h - int(math.Ceil(r.Top()*p.sy))
	bottom := p.h - int(math.Floor(r.Bottom()*p.sy))
	return core.NewRect(x0, top, max(1, x1-x0), max(1, bottom-top))
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.state == nil {
		return
	}
	s := g.state
	proj := newProjection(s.world, dst)

	g.drawRoad(dst, proj)

	for _, c := range s.Coins {
		dst.SetColor(proj.col(c.X), proj.row(c.Y), CoinChar, core.ColorYellow)
	}
	for _, c := range s.Competitors {
		color := competitorColors[c.Variant%len(competitorColors)]
		dst.DrawRectColor(proj.rect(c.Bounds()), CarChar, color)
	}
	g.drawPlayer(dst, proj)

	g.drawHUD(dst)

	switch s.Screen {
	case ScreenInstructions:
		drawPanel(dst, []string{
			g.title,
			"",
			"Arrows/WASD steer   Space nitrous",
			"Dodge the traffic, grab the coins",
			"",
			"Click or press Enter to start",
		})
	case ScreenGameOver:
		drawPanel(dst, []string{
			"GAME OVER",
			"",
			fmt.Sprintf("Score: %05d   Time: %s", s.Score, clock(s.ElapsedTime)),
			"",
			"Click or Enter to race again  |  B for menu",
		})
	}
}

// drawRoad draws grass, the corridor edges and the scrolling lane dashes.
func (g *Game) drawRoad(dst *core.Screen, proj projection) {
	w := g.state.world
	left, right := proj.col(w.Left), proj.col(w.Right)

	for y := 0; y < dst.Height(); y++ {
		for x := 0; x < dst.Width(); x++ {
			if x < left || x > right {
				dst.SetColor(x, y, GrassChar, core.ColorGreen)
			}
		}
	}
	dst.DrawVLine(left, 0, dst.Height(), EdgeChar, core.ColorWhite)
	dst.DrawVLine(right, 0, dst.Height(), EdgeChar, core.ColorWhite)

	period := w.Height / dashPeriods
	for lane := 1; lane < laneCount; lane++ {
		x := proj.col(w.Left + (w.Right-w.Left)*float64(lane)/laneCount)
		for y := 0; y < dst.Height(); y++ {
			worldY := (float64(dst.Height()-1-y) + 0.5) / proj.sy
			if math.Mod(worldY+g.state.RoadOffset, period) < period/2 {
				dst.SetColor(x, y, LaneChar, core.ColorGray)
			}
		}
	}
}

// drawPlayer draws the player's car, tinted while the crash flash runs and
// ghosted while invulnerable.
func (g *Game) drawPlayer(dst *core.Screen, proj projection) {
	p := g.state.Player
	color := core.ColorCyan
	if g.state.Flash != core.ColorDefault {
		color = g.state.Flash
	}
	ch := CarChar
	if p.Respawning > 0 {
		ch = GhostChar
	}
	dst.DrawRectColor(proj.rect(p.Bounds()), ch, color)
}

// drawHUD draws time, score and lives in the bottom-left corner.
func (g *Game) drawHUD(dst *core.Screen) {
	s := g.state
	h := dst.Height()
	dst.DrawTextColor(1, h-3, fmt.Sprintf(" Lives: %d ", s.Lives), core.ColorRed)
	dst.DrawTextColor(1, h-2, fmt.Sprintf(" Score: %05d ", s.Score), core.ColorBrightBlue)
	dst.DrawTextColor(1, h-1, fmt.Sprintf(" Time: %s ", clock(s.ElapsedTime)), core.ColorBrightWhite)
}

// drawPanel draws a box in the center of the screen with the given lines.
func drawPanel(dst *core.Screen, lines []string) {
	width := 0
	for _, l := range lines {
		width = max(width, len([]rune(l)))
	}
	boxW := width + 4
	boxH := len(lines) + 2
	box := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)

	dst.DrawRect(box, ' ')
	dst.DrawBox(box)
	for i, l := range lines {
		x := box.X + (boxW-len([]rune(l)))/2
		dst.DrawTextColor(x, box.Y+1+i, l, core.ColorBrightWhite)
	}
}

// clock formats seconds as mm:ss.
func clock(seconds float64) string {
	total := int(seconds)
	return fmt.Sprintf("%02d:%02d", total/60, total%60)
}
