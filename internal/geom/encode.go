package geom

// Encode walks c from index 0 and returns one Offset per edge i -> (i+1)%n.
// An open traversal omits the closing edge back to the first point. Relative
// offsets are divided by the canvas size and are not clamped.
func Encode(c Contour, closed bool, w, h int) []Offset {
	n := len(c)
	edges := n
	if !closed {
		edges = n - 1
	}
	if edges <= 0 {
		return nil
	}
	out := make([]Offset, 0, edges)
	for i := 0; i < edges; i++ {
		abs := c[(i+1)%n].Sub(c[i])
		out = append(out, Offset{
			Abs: abs,
			Rel: [2]float64{float64(abs.X) / float64(w), float64(abs.Y) / float64(h)},
		})
	}
	return out
}
