package geom

import (
	"image"
	"image/draw"

	"golang.org/x/image/vector"
)

// MaskThreshold is the minimum coverage for a pixel to count as foreground.
const MaskThreshold = 0x80

// Rasterize fills g into a w×h alpha mask. Anti-aliased edge pixels keep
// their partial coverage; tracers compare against MaskThreshold.
func Rasterize(g Geometry, w, h int) *image.Alpha {
	z := vector.NewRasterizer(w, h)
	z.DrawOp = draw.Src
	g.Fill(z)
	dst := image.NewAlpha(image.Rect(0, 0, w, h))
	z.Draw(dst, dst.Bounds(), image.Opaque, image.Point{})
	return dst
}
