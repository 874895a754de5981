package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"shapegen/internal/geom"
)

func TestParseArgs(t *testing.T) {
	cfg, err := parseArgs([]string{"triangle", "3", "2", "1", "250"})
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Shape != geom.Triangle || cfg.ReduceIterations != 3 || cfg.Dispersion != 2 ||
		!cfg.Closed || cfg.Delay != 250*time.Millisecond {
		t.Errorf("parseArgs() = %+v", cfg)
	}

	cfg, err = parseArgs([]string{"ellipse", "0", "0", "0", "0"})
	if err != nil || cfg.Closed || cfg.Delay != 0 {
		t.Errorf("parseArgs(open) = %+v, %v", cfg, err)
	}
}

func TestParseArgsRejects(t *testing.T) {
	tests := [][]string{
		{"hexagon", "0", "0", "0", "0"},
		{"ellipse", "x", "0", "0", "0"},
		{"ellipse", "0", "1.5", "0", "0"},
		{"ellipse", "-1", "0", "0", "0"},
		{"ellipse", "0", "0", "0", "-5"},
	}
	for _, args := range tests {
		if _, err := parseArgs(args); !errors.Is(err, errUsage) {
			t.Errorf("parseArgs(%v) error = %v, want usage error", args, err)
		}
	}
}

func TestRootWrongArgCount(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetArgs([]string{"ellipse", "1"})
	cmd.SetOut(new(bytes.Buffer))
	cmd.SetErr(new(bytes.Buffer))
	if err := cmd.Execute(); !errors.Is(err, errUsage) {
		t.Errorf("Execute() error = %v, want usage error", err)
	}
}

func TestHeadlessRun(t *testing.T) {
	dir := t.TempDir()
	var stdout, stderr bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs([]string{"rectangle", "1", "0", "1", "0",
		"--headless", "--frames", "2", "--seed", "5", "--out", dir, "--wkt"})
	if err := cmd.ExecuteContext(context.Background()); err != nil {
		t.Fatal(err)
	}

	out := stdout.String()
	if !strings.Contains(out, ">> Iteration: 0; Points: ") || !strings.Contains(out, ">> Iteration: 1; Points: ") {
		t.Errorf("stdout lacks iteration headers:\n%s", out)
	}
	if strings.Contains(out, ">> Iteration: 2;") {
		t.Error("ran past --frames")
	}
	for _, name := range []string{"rectangle_0.dat", "rectangle_1.dat", "rectangle_0.wkt"} {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			t.Errorf("%s: %v", name, err)
		}
	}
}

func TestHeadlessStopsOnCancel(t *testing.T) {
	dir := t.TempDir()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	cmd := newRootCmd()
	cmd.SetOut(new(bytes.Buffer))
	cmd.SetErr(new(bytes.Buffer))
	cmd.SetArgs([]string{"ellipse", "0", "0", "1", "1000", "--headless", "--seed", "1", "--out", dir})
	done := make(chan error, 1)
	go func() { done <- cmd.ExecuteContext(ctx) }()
	select {
	case err := <-done:
		if err != nil {
			t.Fatal(err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("headless run ignored cancellation")
	}
	if _, err := os.Stat(filepath.Join(dir, "ellipse_0.dat")); err != nil {
		t.Errorf("first iteration not written: %v", err)
	}
}

func TestRootRejectsHugeDispersion(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetOut(new(bytes.Buffer))
	cmd.SetErr(new(bytes.Buffer))
	cmd.SetArgs([]string{"ellipse", "0", "4611686018427387904", "1", "0",
		"--headless", "--frames", "1", "--out", t.TempDir()})
	if err := cmd.Execute(); !errors.Is(err, errUsage) {
		t.Errorf("Execute() error = %v, want usage error", err)
	}
}
