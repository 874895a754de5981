package geom

import (
	"math"

	jgeom "github.com/jbeda/geom"
	"golang.org/x/image/math/f32"
	"golang.org/x/image/vector"
)

// Geometry is a closed primitive ready to be filled into a mask and drawn.
type Geometry interface {
	Kind() Kind
	// Outline is a closed polyline approximation in canvas pixels.
	Outline() []f32.Vec2
	Bounds() jgeom.Rect
	// Fill adds the closed path to z. The caller owns Draw.
	Fill(z *vector.Rasterizer)
}

// GeometryBuilder derives the drawable geometry of one primitive kind from a
// descriptor.
type GeometryBuilder interface {
	Build(d Descriptor) Geometry
}

type (
	EllipseBuilder   struct{}
	RectangleBuilder struct{}
	TriangleBuilder  struct{}
)

// BuilderFor returns the strategy for kind.
func BuilderFor(kind Kind) (GeometryBuilder, error) {
	switch kind {
	case Ellipse:
		return EllipseBuilder{}, nil
	case Rectangle:
		return RectangleBuilder{}, nil
	case Triangle:
		return TriangleBuilder{}, nil
	}
	return nil, ErrUnknownShape
}

func (EllipseBuilder) Build(d Descriptor) Geometry {
	ax, ay := axes(d)
	return &EllipseShape{
		center: coord(d.Center),
		rx:     ax.Times(float64(d.Size[0]) / 2),
		ry:     ay.Times(float64(d.Size[1]) / 2),
	}
}

func (RectangleBuilder) Build(d Descriptor) Geometry {
	c := Corners(d)
	return &Polygon{kind: Rectangle, Vertices: c[:]}
}

// The triangle collapses the side between corners 2 and 3 to its midpoint.
func (TriangleBuilder) Build(d Descriptor) Geometry {
	c := Corners(d)
	mid := f32.Vec2{(c[2][0] + c[3][0]) * 0.5, (c[2][1] + c[3][1]) * 0.5}
	return &Polygon{kind: Triangle, Vertices: []f32.Vec2{c[0], c[1], mid}}
}

// axes returns unit vectors along the rotated width and height directions.
func axes(d Descriptor) (jgeom.Coord, jgeom.Coord) {
	rad := float64(d.Angle) * math.Pi / 180
	sin, cos := math.Sincos(rad)
	return jgeom.Coord{X: cos, Y: sin}, jgeom.Coord{X: -sin, Y: cos}
}

func coord(v f32.Vec2) jgeom.Coord { return jgeom.Coord{X: float64(v[0]), Y: float64(v[1])} }
func vec(c jgeom.Coord) f32.Vec2   { return f32.Vec2{float32(c.X), float32(c.Y)} }

// Corners returns the four rotated corners of the descriptor's rectangle in
// rotated-rectangle order: bottom-left, top-left, top-right, bottom-right
// before rotation (y grows downwards).
func Corners(d Descriptor) [4]f32.Vec2 {
	ax, ay := axes(d)
	c := coord(d.Center)
	hw := ax.Times(float64(d.Size[0]) / 2)
	hh := ay.Times(float64(d.Size[1]) / 2)
	return [4]f32.Vec2{
		vec(c.Minus(hw).Plus(hh)),
		vec(c.Minus(hw).Minus(hh)),
		vec(c.Plus(hw).Minus(hh)),
		vec(c.Plus(hw).Plus(hh)),
	}
}

// Polygon is a closed polygon given by its vertices in drawing order.
type Polygon struct {
	kind     Kind
	Vertices []f32.Vec2
}

func (p *Polygon) Kind() Kind          { return p.kind }
func (p *Polygon) Outline() []f32.Vec2 { return p.Vertices }

func (p *Polygon) Bounds() jgeom.Rect { return boundsOf(p.Vertices) }

func (p *Polygon) Fill(z *vector.Rasterizer) {
	if len(p.Vertices) == 0 {
		return
	}
	z.MoveTo(p.Vertices[0][0], p.Vertices[0][1])
	for _, v := range p.Vertices[1:] {
		z.LineTo(v[0], v[1])
	}
	z.ClosePath()
}

// kappa places cubic control points so a quarter arc stays within 0.03% of
// the true ellipse.
const kappa = 0.5522847498

// outlineSegments is the polyline resolution used for display.
const outlineSegments = 72

// EllipseShape is the ellipse inscribed in a rotated rectangle. rx and ry are
// the semi-axis vectors.
type EllipseShape struct {
	center jgeom.Coord
	rx, ry jgeom.Coord
}

func (e *EllipseShape) Kind() Kind { return Ellipse }

func (e *EllipseShape) at(t float64) jgeom.Coord {
	return e.center.Plus(e.rx.Times(math.Cos(t))).Plus(e.ry.Times(math.Sin(t)))
}

func (e *EllipseShape) Outline() []f32.Vec2 {
	out := make([]f32.Vec2, outlineSegments)
	for i := range out {
		out[i] = vec(e.at(2 * math.Pi * float64(i) / outlineSegments))
	}
	return out
}

func (e *EllipseShape) Bounds() jgeom.Rect { return boundsOf(e.Outline()) }

// Fill emits four cubic quadrants starting at the end of the width axis.
func (e *EllipseShape) Fill(z *vector.Rasterizer) {
	ends := [4]jgeom.Coord{e.rx, e.ry, e.rx.Times(-1), e.ry.Times(-1)}
	start := vec(e.center.Plus(ends[0]))
	z.MoveTo(start[0], start[1])
	for i := range ends {
		a, b := ends[i], ends[(i+1)%4]
		c1 := vec(e.center.Plus(a).Plus(b.Times(kappa)))
		c2 := vec(e.center.Plus(b).Plus(a.Times(kappa)))
		p := vec(e.center.Plus(b))
		z.CubeTo(c1[0], c1[1], c2[0], c2[1], p[0], p[1])
	}
	z.ClosePath()
}

func boundsOf(vs []f32.Vec2) jgeom.Rect {
	if len(vs) == 0 {
		return jgeom.Rect{}
	}
	r := jgeom.Rect{Min: coord(vs[0]), Max: coord(vs[0])}
	for _, v := range vs[1:] {
		r.ExpandToContainCoord(coord(v))
	}
	return r
}
