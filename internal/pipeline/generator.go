package pipeline

import (
	"fmt"
	"log"
	"math/rand/v2"
	"time"

	"shapegen/internal/geom"
)

// Frame is everything one iteration produced.
type Frame struct {
	Iteration  int
	Descriptor geom.Descriptor
	Geometry   geom.Geometry
	Contour    geom.Contour
	Offsets    []geom.Offset
	Reversed   bool
}

// Generator runs the shape pipeline one iteration at a time. It owns the
// random generator and the orientation flag, the only state carried between
// iterations. It is not safe for concurrent use.
type Generator struct {
	cfg     Config
	rng     *rand.Rand
	sampler *geom.Sampler
	builder geom.GeometryBuilder
	tracer  geom.Tracer
	orient  geom.Orientation
	next    int
}

type Option func(*Generator)

// WithTracer replaces the default Moore-neighbour tracer.
func WithTracer(t geom.Tracer) Option {
	return func(g *Generator) { g.tracer = t }
}

// WithRand replaces the seeded generator.
func WithRand(r *rand.Rand) Option {
	return func(g *Generator) { g.rng = r }
}

func NewGenerator(cfg Config, opts ...Option) (*Generator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	b, err := geom.BuilderFor(cfg.Shape)
	if err != nil {
		return nil, err
	}
	g := &Generator{cfg: cfg, builder: b, tracer: geom.MooreTracer{}}
	for _, o := range opts {
		o(g)
	}
	if g.rng == nil {
		seed := cfg.Seed
		if seed == 0 {
			seed = uint64(time.Now().UnixNano())
		}
		g.rng = rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	}
	g.sampler = geom.NewSampler(g.rng, cfg.Canvas, cfg.Canvas)
	return g, nil
}

func (g *Generator) Config() Config { return g.cfg }

// Iteration is the index the next call to Next will produce.
func (g *Generator) Iteration() int { return g.next }

// Next generates, traces, decimates, perturbs, orients and encodes one
// contour. A tracer failure is fatal for the run.
func (g *Generator) Next() (Frame, error) {
	it := g.next
	d := g.sampler.Sample(g.cfg.Shape)
	shape := g.builder.Build(d)

	mask := geom.Rasterize(shape, g.cfg.Canvas, g.cfg.Canvas)
	contour, err := g.tracer.Trace(mask)
	if err != nil {
		return Frame{}, fmt.Errorf("iteration %d: trace %v: %w", it, g.cfg.Shape, err)
	}
	traced := len(contour)

	contour = geom.Reduce(contour, g.cfg.ReduceIterations)
	geom.Perturb(g.rng, contour, g.cfg.Dispersion)
	reversed := g.orient.Apply(contour)

	offsets := geom.Encode(contour, g.cfg.Closed, g.cfg.Canvas, g.cfg.Canvas)
	g.next++
	b := shape.Bounds()
	log.Printf("iteration %d: %v size=%.1fx%.1f angle=%.1f bounds=(%.0f,%.0f)-(%.0f,%.0f) traced=%d kept=%d reversed=%v",
		it, g.cfg.Shape, d.Size[0], d.Size[1], d.Angle, b.Min.X, b.Min.Y, b.Max.X, b.Max.Y, traced, len(contour), reversed)

	return Frame{
		Iteration:  it,
		Descriptor: d,
		Geometry:   shape,
		Contour:    contour,
		Offsets:    offsets,
		Reversed:   reversed,
	}, nil
}
