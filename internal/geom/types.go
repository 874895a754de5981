package geom

import (
	"errors"
	"fmt"

	"golang.org/x/image/math/f32"
)

// Point is an integer pixel coordinate on the canvas.
type Point struct {
	X int
	Y int
}

func (p Point) Add(q Point) Point { return Point{X: p.X + q.X, Y: p.Y + q.Y} }
func (p Point) Sub(q Point) Point { return Point{X: p.X - q.X, Y: p.Y - q.Y} }

// Contour is a single closed ring of points. Closure is implied: the edge
// after the last point leads back to the first.
type Contour []Point

// Clone returns a copy that can be mutated independently.
func (c Contour) Clone() Contour {
	out := make(Contour, len(c))
	copy(out, c)
	return out
}

// Kind selects the primitive to generate.
type Kind int

const (
	Ellipse Kind = iota
	Rectangle
	Triangle
)

var kindNames = [...]string{"ellipse", "rectangle", "triangle"}

// ErrUnknownShape is returned by ParseKind for names outside kindNames.
var ErrUnknownShape = errors.New("unknown shape")

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// Kinds lists the accepted shape names in CLI order.
func Kinds() []string { return kindNames[:] }

// ParseKind maps a CLI token to a Kind. Matching is exact.
func ParseKind(s string) (Kind, error) {
	for i, n := range kindNames {
		if s == n {
			return Kind(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownShape, s)
}

// Descriptor is an oriented bounding rectangle from which every primitive
// variant is derived. Size is (width, height), Angle is in degrees.
type Descriptor struct {
	Kind   Kind
	Center f32.Vec2
	Size   f32.Vec2
	Angle  float32
}

// Offset is the displacement along one contour edge, absolute in pixels and
// relative to the canvas size.
type Offset struct {
	Abs Point
	Rel [2]float64
}
