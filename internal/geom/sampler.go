package geom

import (
	"math/rand/v2"

	"golang.org/x/image/math/f32"
)

// Size ratio bounds: each side of the bounding rectangle is canvas/u with
// u drawn from [MinRatio, MaxRatio).
const (
	MinRatio = 1.3
	MaxRatio = 3.0
)

// Sampler draws randomized shape descriptors centered on a fixed canvas.
type Sampler struct {
	rng    *rand.Rand
	width  float32
	height float32
}

func NewSampler(rng *rand.Rand, width, height int) *Sampler {
	return &Sampler{rng: rng, width: float32(width), height: float32(height)}
}

func (s *Sampler) uniform(a, b float32) float32 {
	return a + s.rng.Float32()*(b-a)
}

// Sample returns a descriptor for kind with random aspect and rotation.
// The width ratio is drawn before the height ratio, then the angle.
func (s *Sampler) Sample(kind Kind) Descriptor {
	w := s.width / s.uniform(MinRatio, MaxRatio)
	h := s.height / s.uniform(MinRatio, MaxRatio)
	return Descriptor{
		Kind:   kind,
		Center: f32.Vec2{s.width * 0.5, s.height * 0.5},
		Size:   f32.Vec2{w, h},
		Angle:  s.uniform(0, 360),
	}
}
