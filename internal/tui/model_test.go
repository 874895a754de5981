package tui

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"shapegen/internal/geom"
	"shapegen/internal/pipeline"
	"shapegen/internal/report"
)

func newTestModel(t *testing.T, delay time.Duration) (Model, string) {
	t.Helper()
	dir := t.TempDir()
	cfg := pipeline.Config{
		Shape:            geom.Triangle,
		ReduceIterations: 1,
		Closed:           true,
		Delay:            delay,
		Canvas:           pipeline.DefaultCanvas,
		Seed:             9,
		OutDir:           dir,
	}
	gen, err := pipeline.NewGenerator(cfg)
	if err != nil {
		t.Fatal(err)
	}
	m := New(gen, report.NewRecorder(cfg, nil), WithoutEcho())
	next, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	return next.(Model), dir
}

func key(s string) tea.KeyMsg {
	if s == " " {
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestStepProducesFrameAndFile(t *testing.T) {
	m, dir := newTestModel(t, 20*time.Millisecond)

	next, cmd := m.Update(stepMsg{seq: 0})
	m = next.(Model)
	f, ok := m.Frame()
	if !ok {
		t.Fatal("no frame after step")
	}
	if f.Iteration != 0 || len(f.Offsets) != len(f.Contour) {
		t.Errorf("frame %d: %d edges for %d points", f.Iteration, len(f.Offsets), len(f.Contour))
	}
	if cmd == nil {
		t.Error("no tick scheduled after a frame")
	}
	if _, err := os.Stat(filepath.Join(dir, "triangle_0.dat")); err != nil {
		t.Errorf("dat file missing: %v", err)
	}

	view := m.View()
	if !strings.Contains(view, "shapegen") || !strings.Contains(view, "iteration 0") {
		t.Errorf("view lacks header or status:\n%s", view)
	}
}

func TestStaleTickIsDropped(t *testing.T) {
	m, _ := newTestModel(t, 20*time.Millisecond)
	next, _ := m.Update(stepMsg{seq: 0})
	m = next.(Model)

	next, _ = m.Update(stepMsg{seq: 0})
	m = next.(Model)
	if f, _ := m.Frame(); f.Iteration != 0 {
		t.Errorf("stale tick advanced to iteration %d", f.Iteration)
	}
}

func TestPauseStopsTicks(t *testing.T) {
	m, _ := newTestModel(t, 20*time.Millisecond)
	next, _ := m.Update(stepMsg{seq: 0})
	m = next.(Model)
	pending := m.seq

	next, _ = m.Update(key(" "))
	m = next.(Model)
	if !m.paused {
		t.Fatal("space did not pause")
	}
	next, _ = m.Update(stepMsg{seq: pending})
	m = next.(Model)
	if f, _ := m.Frame(); f.Iteration != 0 {
		t.Errorf("tick while paused advanced to iteration %d", f.Iteration)
	}

	next, cmd := m.Update(key(" "))
	m = next.(Model)
	if m.paused || cmd == nil {
		t.Fatal("space did not resume")
	}
	next, _ = m.Update(cmd())
	m = next.(Model)
	if f, _ := m.Frame(); f.Iteration != 1 {
		t.Errorf("resume produced iteration %d, want 1", f.Iteration)
	}
}

func TestStepModeAdvancesOnKey(t *testing.T) {
	m, _ := newTestModel(t, 0)
	next, _ := m.Update(stepMsg{seq: 0})
	m = next.(Model)

	next, _ = m.Update(key("n"))
	m = next.(Model)
	if f, _ := m.Frame(); f.Iteration != 1 {
		t.Errorf("key press produced iteration %d, want 1", f.Iteration)
	}
}

func TestQuitKey(t *testing.T) {
	m, _ := newTestModel(t, 20*time.Millisecond)
	_, cmd := m.Update(key("q"))
	if cmd == nil {
		t.Fatal("q returned no command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("q did not quit")
	}
}

func TestRecordFailureQuits(t *testing.T) {
	m, dir := newTestModel(t, 20*time.Millisecond)
	if err := os.RemoveAll(dir); err != nil {
		t.Fatal(err)
	}
	next, cmd := m.Update(stepMsg{seq: 0})
	m = next.(Model)
	if m.Err() == nil {
		t.Fatal("missing output directory did not fail")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("fatal error did not quit")
	}
}

func TestTableToggle(t *testing.T) {
	m, _ := newTestModel(t, 20*time.Millisecond)
	next, _ := m.Update(stepMsg{seq: 0})
	m = next.(Model)
	next, _ = m.Update(key("t"))
	m = next.(Model)
	if !m.showTable {
		t.Fatal("t did not show the table")
	}
	if !strings.Contains(m.View(), "rx") {
		t.Error("table columns not rendered")
	}
}

func TestViewportKeepsSquare(t *testing.T) {
	vp := newViewport(512, 100, 30)
	x0, y0 := vp.micro(0, 0)
	x1, y1 := vp.micro(512, 512)
	if x1-x0 != y1-y0 {
		t.Errorf("canvas maps to %dx%d dots, want square", x1-x0, y1-y0)
	}
	if x1 >= 200 || y1 >= 120 {
		t.Errorf("canvas corner (%d,%d) falls outside the grid", x1, y1)
	}
}

func TestStepModeTableKeysScroll(t *testing.T) {
	m, _ := newTestModel(t, 0)
	next, _ := m.Update(stepMsg{seq: 0})
	m = next.(Model)
	next, _ = m.Update(key("t"))
	m = next.(Model)

	for _, k := range []tea.KeyMsg{key("j"), {Type: tea.KeyDown}} {
		next, _ = m.Update(k)
		m = next.(Model)
	}
	if f, _ := m.Frame(); f.Iteration != 0 {
		t.Errorf("table key advanced to iteration %d", f.Iteration)
	}
	if got := m.tbl.Cursor(); got != 2 {
		t.Errorf("table cursor = %d, want 2", got)
	}

	next, _ = m.Update(key("n"))
	m = next.(Model)
	if f, _ := m.Frame(); f.Iteration != 1 {
		t.Errorf("non-table key produced iteration %d, want 1", f.Iteration)
	}
}
