package report

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"shapegen/internal/geom"
	"shapegen/internal/pipeline"
)

// FormatFloat renders v with six significant digits, the precision used in
// both the console and the .dat files.
func FormatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', 6, 64)
}

// Header is the first console line of an iteration.
func Header(iteration, points int) string {
	return fmt.Sprintf(">> Iteration: %d; Points: %d", iteration, points)
}

// EdgeLine formats one offset as "[dx, dy] [rx, ry]".
func EdgeLine(o geom.Offset) string {
	return fmt.Sprintf("[%2d, %2d] [%s, %s]", o.Abs.X, o.Abs.Y, FormatFloat(o.Rel[0]), FormatFloat(o.Rel[1]))
}

// Console returns the full console record of a frame: header, one line per
// edge and a trailing blank line.
func Console(f pipeline.Frame) string {
	var b strings.Builder
	b.WriteString(Header(f.Iteration, len(f.Contour)))
	b.WriteByte('\n')
	for _, o := range f.Offsets {
		b.WriteString(EdgeLine(o))
		b.WriteByte('\n')
	}
	b.WriteByte('\n')
	return b.String()
}

// DatName is the per-iteration file name: <shape>_<iteration>.dat.
func DatName(kind geom.Kind, iteration int) string {
	return fmt.Sprintf("%s_%d.dat", kind, iteration)
}

// WriteDat writes one "rx,ry" record per offset.
func WriteDat(w io.Writer, offs []geom.Offset) error {
	cw := csv.NewWriter(w)
	for _, o := range offs {
		if err := cw.Write([]string{FormatFloat(o.Rel[0]), FormatFloat(o.Rel[1])}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// ReadDat loads the relative offsets written by WriteDat.
func ReadDat(path string) ([][2]float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	r := csv.NewReader(f)
	r.FieldsPerRecord = 2
	r.TrimLeadingSpace = true
	recs, err := r.ReadAll()
	if err != nil {
		return nil, err
	}
	out := make([][2]float64, 0, len(recs))
	for i, row := range recs {
		x, err1 := strconv.ParseFloat(strings.TrimSpace(row[0]), 64)
		y, err2 := strconv.ParseFloat(strings.TrimSpace(row[1]), 64)
		if err := errors.Join(err1, err2); err != nil {
			return nil, fmt.Errorf("dat line %d: %w", i+1, err)
		}
		out = append(out, [2]float64{x, y})
	}
	return out, nil
}

// Recorder persists every frame to Dir and optionally echoes the console
// record.
type Recorder struct {
	Dir     string
	Kind    geom.Kind
	Closed  bool
	WKT     bool
	Console io.Writer
}

func NewRecorder(cfg pipeline.Config, console io.Writer) *Recorder {
	dir := cfg.OutDir
	if dir == "" {
		dir = "."
	}
	return &Recorder{Dir: dir, Kind: cfg.Shape, Closed: cfg.Closed, WKT: cfg.WKT, Console: console}
}

// Record writes the .dat file (and .wkt when enabled) for f, truncating any
// previous file of the same name.
func (r *Recorder) Record(f pipeline.Frame) error {
	if r.Console != nil {
		if _, err := io.WriteString(r.Console, Console(f)); err != nil {
			return fmt.Errorf("console: %w", err)
		}
	}
	path := filepath.Join(r.Dir, DatName(r.Kind, f.Iteration))
	if err := writeFile(path, func(w io.Writer) error { return WriteDat(w, f.Offsets) }); err != nil {
		return err
	}
	if r.WKT {
		path = strings.TrimSuffix(path, ".dat") + ".wkt"
		wkt := f.Contour.WKT(r.Closed) + "\n"
		if err := writeFile(path, func(w io.Writer) error {
			_, err := io.WriteString(w, wkt)
			return err
		}); err != nil {
			return err
		}
	}
	return nil
}

func writeFile(path string, fn func(io.Writer) error) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("close %s: %w", path, cerr)
		}
	}()
	if err := fn(f); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
