package tui

import (
	"math"

	"github.com/vovakirdan/flappy/internal/core"
	"github.com/vovakirdan/flappy/internal/flappy"
)

// cellAspect is how many times taller a terminal cell is than it is wide.
const cellAspect = 2.0

// glyph is how a sprite is drawn on the character grid.
type glyph struct {
	body     rune
	color    core.Color
	cap      rune // Drawn on the pipe's mouth row; 0 for none
	capColor core.Color
}

var glyphs = map[flappy.Sprite]glyph{
	flappy.SpriteBackground: {body: ' ', color: core.ColorDefault},
	flappy.SpriteBird:       {body: '@', color: core.ColorBrightYellow},
	flappy.SpriteTopPipe:    {body: '█', color: core.ColorGreen, cap: '▀', capColor: core.ColorBrightGreen},
	flappy.SpriteBottomPipe: {body: '█', color: core.ColorGreen, cap: '▄', capColor: core.ColorBrightGreen},
}

var textColors = map[flappy.TextStyle]core.Color{
	flappy.TextScore:    core.ColorBrightWhite,
	flappy.TextGameOver: core.ColorBrightRed,
	flappy.TextHint:     core.ColorWhite,
}

// Viewport returns the screen cells the board is drawn into: as large as
// fits while keeping the board's aspect ratio, centered horizontally.
func Viewport(screenW, screenH, boardW, boardH int) core.Rect {
	if screenW <= 0 || screenH <= 0 || boardW <= 0 || boardH <= 0 {
		return core.Rect{}
	}

	// Columns needed per row to keep proportions.
	ratio := float64(boardW) / float64(boardH) * cellAspect
	h := screenH
	w := int(math.Round(float64(h) * ratio))
	if w > screenW {
		w = screenW
		h = core.Max(1, int(math.Round(float64(w)/ratio)))
	}
	w = core.Max(1, w)

	return core.NewRect((screenW-w)/2, (screenH-h)/2, w, h)
}

// Rasterize projects a frame onto the screen.
func Rasterize(f flappy.Frame, s *core.Screen) {
	s.Clear()
	vp := Viewport(s.Width(), s.Height(), f.Width, f.Height)
	if vp.W == 0 {
		return
	}

	sx := float64(vp.W) / float64(f.Width)
	sy := float64(vp.H) / float64(f.Height)

	for _, op := range f.Sprites {
		g, ok := glyphs[op.Sprite]
		if !ok {
			continue
		}
		cell := project(op.Rect, vp, sx, sy)
		// The board is a clipping region: pipes slide in and out of it.
		cell = clip(cell, vp)
		if cell.W <= 0 || cell.H <= 0 {
			continue
		}
		s.DrawRect(cell, g.body, g.color)

		if g.cap == 0 {
			continue
		}
		mouth := projectedMouth(op, vp, sx, sy)
		if mouth >= vp.Y && mouth < vp.Bottom() {
			s.DrawHLine(cell.X, mouth, cell.W, g.cap, g.capColor)
		}
	}

	for _, t := range f.Texts {
		x := vp.X + int(float64(t.X)*sx)
		// Baselines sit at the bottom of the line; move up to the row above.
		y := vp.Y + int(float64(t.Y)*sy) - 1
		y = core.Clamp(y, vp.Y, vp.Bottom()-1)
		if t.Centered {
			s.DrawTextCentered(x, y, t.Text, textColors[t.Style])
		} else {
			s.DrawText(x, y, t.Text, textColors[t.Style])
		}
	}
}

// project scales a board rect into screen cells. Every visible rect covers
// at least one cell.
func project(r core.Rect, vp core.Rect, sx, sy float64) core.Rect {
	x0 := int(math.Floor(float64(r.X) * sx))
	y0 := int(math.Floor(float64(r.Y) * sy))
	x1 := int(math.Ceil(float64(r.Right()) * sx))
	y1 := int(math.Ceil(float64(r.Bottom()) * sy))
	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y1 = y0 + 1
	}
	return core.NewRect(vp.X+x0, vp.Y+y0, x1-x0, y1-y0)
}

// projectedMouth returns the screen row of a pipe's open end.
func projectedMouth(op flappy.DrawOp, vp core.Rect, sx, sy float64) int {
	cell := project(op.Rect, vp, sx, sy)
	if op.Sprite == flappy.SpriteTopPipe {
		return cell.Bottom() - 1
	}
	return cell.Y
}

func clip(r, bounds core.Rect) core.Rect {
	x0 := core.Max(r.X, bounds.X)
	y0 := core.Max(r.Y, bounds.Y)
	x1 := core.Min(r.Right(), bounds.Right())
	y1 := core.Min(r.Bottom(), bounds.Bottom())
	return core.NewRect(x0, y0, x1-x0, y1-y0)
}
