package geom

import (
	"math"
	"math/rand/v2"
	"slices"
)

// MaxDispersion is the largest jitter amplitude Perturb honours; larger
// values are clamped to it.
const MaxDispersion = math.MaxInt32

// Perturb adds independent integer jitter drawn uniformly from [-d, d] to
// each coordinate of every point, in place. d <= 0 leaves c untouched and
// draws nothing from rng.
func Perturb(rng *rand.Rand, c Contour, d int) {
	if d <= 0 {
		return
	}
	d = min(d, MaxDispersion)
	span := 2*d + 1
	for i := range c {
		c[i].X += rng.IntN(span) - d
		c[i].Y += rng.IntN(span) - d
	}
}

// Orientation alternates traversal direction between iterations. The zero
// value leaves the first contour in tracer order.
type Orientation struct {
	reversed bool
}

// Apply reverses c when the current iteration runs against tracer order,
// then flips the direction for the next iteration. It reports whether c was
// reversed.
func (o *Orientation) Apply(c Contour) bool {
	r := o.reversed
	if r {
		slices.Reverse(c)
	}
	o.reversed = !o.reversed
	return r
}
