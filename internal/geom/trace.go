package geom

import (
	"errors"
	"image"
)

// ErrNoContour is returned when a mask holds no foreground pixel.
var ErrNoContour = errors.New("no contour found")

// Tracer extracts the outer boundary ring of a binary region.
type Tracer interface {
	Trace(mask *image.Alpha) (Contour, error)
}

// MooreTracer walks the outer boundary of the first foreground component in
// raster order with Moore-neighbour tracing. Every boundary pixel is kept.
type MooreTracer struct {
	// Threshold overrides MaskThreshold when nonzero.
	Threshold uint8
}

// 8-neighbourhood, clockwise on screen: E, SE, S, SW, W, NW, N, NE.
var (
	ndx = [8]int{1, 1, 0, -1, -1, -1, 0, 1}
	ndy = [8]int{0, 1, 1, 1, 0, -1, -1, -1}
)

const dirWest = 4

func dirIndex(dx, dy int) int {
	for i := range 8 {
		if ndx[i] == dx && ndy[i] == dy {
			return i
		}
	}
	return dirWest
}

func (t MooreTracer) Trace(mask *image.Alpha) (Contour, error) {
	thr := t.Threshold
	if thr == 0 {
		thr = MaskThreshold
	}
	b := mask.Bounds()
	inside := func(p Point) bool {
		return image.Pt(p.X, p.Y).In(b) && mask.AlphaAt(p.X, p.Y).A >= thr
	}

	start, ok := firstPixel(b, inside)
	if !ok {
		return nil, ErrNoContour
	}

	// The west neighbour of the first pixel in raster order is background.
	ring := Contour{start}
	cur, back := start, dirWest
	limit := 4*b.Dx()*b.Dy() + 8
	for steps := 0; steps < limit; steps++ {
		next, nback, found := advance(inside, cur, back)
		if !found {
			break // isolated pixel
		}
		if cur == start && len(ring) > 2 && next == ring[1] {
			// Back at the start about to repeat the first move: the last
			// appended point is the start itself.
			ring = ring[:len(ring)-1]
			break
		}
		ring = append(ring, next)
		cur, back = next, nback
	}
	return ring, nil
}

func firstPixel(b image.Rectangle, inside func(Point) bool) (Point, bool) {
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if p := (Point{X: x, Y: y}); inside(p) {
				return p, true
			}
		}
	}
	return Point{}, false
}

// advance scans the neighbours of cur clockwise, starting after the
// background neighbour in direction back. It returns the first foreground
// neighbour and the direction, seen from it, of the background cell examined
// just before it.
func advance(inside func(Point) bool, cur Point, back int) (Point, int, bool) {
	prev := cur.Add(Point{X: ndx[back], Y: ndy[back]})
	for k := 1; k <= 8; k++ {
		d := (back + k) % 8
		p := cur.Add(Point{X: ndx[d], Y: ndy[d]})
		if inside(p) {
			delta := prev.Sub(p)
			return p, dirIndex(delta.X, delta.Y), true
		}
		prev = p
	}
	return Point{}, 0, false
}
