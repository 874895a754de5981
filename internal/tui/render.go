package tui

import (
	"image"
	"math"
	"strings"
)

// viewport maps canvas pixels onto the braille microgrid of a w×h cell area,
// keeping the canvas square and centered.
type viewport struct {
	scale  float64
	ox, oy int
}

func newViewport(canvas, w, h int) viewport {
	wMic, hMic := w*2, h*4
	side := min(wMic, hMic)
	return viewport{
		scale: float64(side-1) / float64(canvas),
		ox:    (wMic - side) / 2,
		oy:    (hMic - side) / 2,
	}
}

// micro maps a canvas coordinate to micro-pixel coordinates.
func (v viewport) micro(x, y float64) (int, int) {
	return v.ox + int(math.Round(x*v.scale)), v.oy + int(math.Round(y*v.scale))
}

// renderCanvas draws the shape outline, the traversal edges with arrow heads
// and the start marker into a w×h block of text.
func (m Model) renderCanvas(w, h int) string {
	outline := newBrailleBuf(w, h)
	path := newBrailleBuf(w, h)
	if !m.ready {
		return strings.TrimRight(strings.Repeat(strings.Repeat(" ", w)+"\n", h), "\n")
	}
	vp := newViewport(m.cfg.Canvas, w, h)

	// shape outline
	ol := m.frame.Geometry.Outline()
	for i := range ol {
		a, b := ol[i], ol[(i+1)%len(ol)]
		x0, y0 := vp.micro(float64(a[0]), float64(a[1]))
		x1, y1 := vp.micro(float64(b[0]), float64(b[1]))
		outline.drawLineMicro(x0, y0, x1, y1)
	}

	// traversal edges, only the ones that were encoded
	c := m.frame.Contour
	for i := range m.frame.Offsets {
		a, b := c[i], c[(i+1)%len(c)]
		x0, y0 := vp.micro(float64(a.X), float64(a.Y))
		x1, y1 := vp.micro(float64(b.X), float64(b.Y))
		path.drawLineMicro(x0, y0, x1, y1)
		drawArrowHead(path, x0, y0, x1, y1)
	}

	marker := image.Pt(-1, -1)
	if len(c) > 0 {
		mx, my := vp.micro(float64(c[0].X), float64(c[0].Y))
		marker = image.Pt(mx/2, my/4)
	}
	return strings.Join(compose(outline, path, marker), "\n")
}

// arrowTip is the head length as a fraction of the edge length.
const arrowTip = 0.3

func drawArrowHead(b *brailleBuf, x0, y0, x1, y1 int) {
	dx, dy := float64(x0-x1), float64(y0-y1)
	l := math.Hypot(dx, dy)
	if l < 4 {
		return
	}
	angle := math.Atan2(dy, dx)
	tip := arrowTip * l
	for _, s := range []float64{math.Pi / 4, -math.Pi / 4} {
		hx := x1 + int(math.Round(tip*math.Cos(angle+s)))
		hy := y1 + int(math.Round(tip*math.Sin(angle+s)))
		b.drawLineMicro(x1, y1, hx, hy)
	}
}

// compose merges both layers cell by cell; a cell touched by the path takes
// the path color and the marker cell shows the start cross. Runs of cells
// with the same color are styled together.
func compose(outline, path *brailleBuf, marker image.Point) []string {
	const (
		layerNone = iota
		layerOutline
		layerPath
	)
	lines := make([]string, outline.h)
	for y := 0; y < outline.h; y++ {
		var b strings.Builder
		run := make([]rune, 0, outline.w)
		cur := layerNone
		flush := func() {
			if len(run) == 0 {
				return
			}
			s := string(run)
			switch cur {
			case layerOutline:
				s = outlineStyle.Render(s)
			case layerPath:
				s = pathStyle.Render(s)
			}
			b.WriteString(s)
			run = run[:0]
		}
		for x := 0; x < outline.w; x++ {
			om, pm := outline.mask(x, y), path.mask(x, y)
			layer := layerNone
			switch {
			case pm != 0:
				layer = layerPath
			case om != 0:
				layer = layerOutline
			}
			if x == marker.X && y == marker.Y {
				flush()
				b.WriteString(markerStyle.Render("✕"))
				continue
			}
			if layer != cur {
				flush()
				cur = layer
			}
			run = append(run, glyph(om|pm))
		}
		flush()
		lines[y] = b.String()
	}
	return lines
}
