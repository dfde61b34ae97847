package stack

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-stack/internal/core"
)

// viewHeight is the number of world units visible vertically.
const viewHeight = 40.0

// Viewport maps view plane coordinates onto a grid of cells or pixels. The
// world origin lands in the middle of the grid.
type Viewport struct {
	Width, Height  int
	ScaleX, ScaleY float64 // Grid units per world unit
}

// TerminalViewport fits the view into a terminal of w by h cells. Cells are
// about twice as tall as they are wide.
func TerminalViewport(w, h int) Viewport {
	sy := float64(h) / viewHeight
	return Viewport{Width: w, Height: h, ScaleX: 2 * sy, ScaleY: sy}
}

// ToGrid converts a view plane point into grid coordinates.
func (v Viewport) ToGrid(x, y float64) (gx, gy float64) {
	return float64(v.Width)/2 + x*v.ScaleX, float64(v.Height)/2 + y*v.ScaleY
}

// Polygon projects q into grid coordinates.
func (v Viewport) Polygon(q Quad) [4][2]float64 {
	pts := q.Project()
	for i := range pts {
		pts[i][0], pts[i][1] = v.ToGrid(pts[i][0], pts[i][1])
	}
	return pts
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	snap := g.Snapshot()
	w, h := dst.Width(), dst.Height()

	// row_group_size counts pixel rows; a cell row is already coarser than
	// one band, so every cell row gets its own color.
	style := RampStyle{
		Lightening:   g.cfg.Background.Lightening,
		Desaturation: g.cfg.Background.Desaturation,
		GroupSize:    1,
	}
	for y, c := range Ramp(snap.Background, h, style) {
		dst.FillRowBackground(y, c)
	}

	vp := TerminalViewport(w, h)
	for _, q := range snap.Faces() {
		fillQuad(dst, vp.Polygon(q), q.Color)
	}

	g.renderHUD(dst, snap)
	g.renderOverlays(dst, snap)
}

// fillQuad paints every cell whose center lies inside the convex polygon.
func fillQuad(dst *core.Screen, pts [4][2]float64, c core.RGB) {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, p := range pts {
		minX, maxX = math.Min(minX, p[0]), math.Max(maxX, p[0])
		minY, maxY = math.Min(minY, p[1]), math.Max(maxY, p[1])
	}

	x0 := core.Max(0, int(math.Floor(minX)))
	y0 := core.Max(0, int(math.Floor(minY)))
	x1 := core.Min(dst.Width()-1, int(math.Ceil(maxX)))
	y1 := core.Min(dst.Height()-1, int(math.Ceil(maxY)))
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			if insideConvex(pts, float64(x)+0.5, float64(y)+0.5) {
				dst.SetBackground(x, y, c)
			}
		}
	}
}

// insideConvex reports whether (x, y) lies inside or on the convex polygon,
// regardless of its winding.
func insideConvex(pts [4][2]float64, x, y float64) bool {
	var pos, neg bool
	for i := range pts {
		a, b := pts[i], pts[(i+1)%len(pts)]
		cross := (b[0]-a[0])*(y-a[1]) - (b[1]-a[1])*(x-a[0])
		if cross > 0 {
			pos = true
		} else if cross < 0 {
			neg = true
		}
		if pos && neg {
			return false
		}
	}
	return true
}

// renderHUD draws the score line.
func (g *Game) renderHUD(dst *core.Screen, snap Snapshot) {
	dst.DrawTextCentered(1, fmt.Sprintf("%d", snap.Score))

	status := ""
	if snap.Streak > 1 {
		status = fmt.Sprintf("Perfect x%d", snap.Streak)
	}
	if snap.Assist {
		if status != "" {
			status += "  "
		}
		status += "[assist]"
	}
	if status != "" {
		dst.DrawTextCentered(2, status)
	}
}

// renderOverlays draws the pause and game over messages.
func (g *Game) renderOverlays(dst *core.Screen, snap Snapshot) {
	switch {
	case snap.GameOver:
		g.drawCenteredMessage(dst, "GAME OVER", fmt.Sprintf("Score: %d", snap.Score), "Press R to restart")
	case snap.Paused:
		g.drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}
}

// drawCenteredMessage draws a framed message in the middle of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, lines ...string) {
	width := 0
	for _, l := range lines {
		width = core.Max(width, len([]rune(l)))
	}
	box := core.NewRect((dst.Width()-width-4)/2, (dst.Height()-len(lines)-2)/2, width+4, len(lines)+2)
	dst.DrawRect(box, ' ')
	dst.DrawBox(box)
	for i, l := range lines {
		dst.DrawTextCentered(box.Y+1+i, l)
	}
}
