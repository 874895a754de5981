package pipeline

import (
	"errors"
	"fmt"
	"time"

	"shapegen/internal/geom"
)

// DefaultCanvas is the side of the square canvas in pixels.
const DefaultCanvas = 512

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("invalid configuration")

// Config is the run configuration. It is built once at startup and never
// mutated.
type Config struct {
	Shape            geom.Kind
	ReduceIterations int
	Dispersion       int
	Closed           bool
	Delay            time.Duration

	Canvas int
	// Seed for the random generator; zero seeds from the clock.
	Seed   uint64
	OutDir string
	// WKT also writes the final contour of each iteration as WKT.
	WKT bool
}

func (c Config) Validate() error {
	switch {
	case c.ReduceIterations < 0:
		return fmt.Errorf("%w: reduce_iterations must be >= 0, got %d", ErrInvalidConfig, c.ReduceIterations)
	case c.Dispersion < 0 || c.Dispersion > geom.MaxDispersion:
		return fmt.Errorf("%w: abs_dispersion must be in [0, %d], got %d", ErrInvalidConfig, geom.MaxDispersion, c.Dispersion)
	case c.Delay < 0:
		return fmt.Errorf("%w: delay must be >= 0, got %v", ErrInvalidConfig, c.Delay)
	case c.Canvas < 16:
		return fmt.Errorf("%w: canvas must be >= 16, got %d", ErrInvalidConfig, c.Canvas)
	}
	if _, err := geom.BuilderFor(c.Shape); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return nil
}
