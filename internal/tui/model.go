package tui

import (
	table "github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"shapegen/internal/pipeline"
	"shapegen/internal/report"
)

type Model struct {
	width  int
	height int

	helpVisible bool
	showTable   bool
	paused      bool

	status string

	// Pipeline
	cfg   pipeline.Config
	gen   *pipeline.Generator
	rec   *report.Recorder
	frame pipeline.Frame
	ready bool
	err   error

	// echo prints each console record above the canvas
	echo bool
	// seq tags scheduled ticks so a stale tick after pause/resume is dropped
	seq int

	tbl table.Model
	num *message.Printer
}

// Option tweaks a Model at construction.
type Option func(*Model)

// WithoutEcho stops console records from being printed above the canvas.
func WithoutEcho() Option {
	return func(m *Model) { m.echo = false }
}

func New(gen *pipeline.Generator, rec *report.Recorder, opts ...Option) Model {
	m := Model{
		helpVisible: true,
		status:      "shapegen ready",
		cfg:         gen.Config(),
		gen:         gen,
		rec:         rec,
		echo:        true,
		num:         message.NewPrinter(language.English),
	}
	m.tbl = table.New(
		table.WithColumns(offsetColumns()),
		table.WithFocused(false),
		table.WithHeight(12),
	)
	for _, o := range opts {
		o(&m)
	}
	return m
}

// Init generates the first frame right away.
func (m Model) Init() tea.Cmd { return m.step() }

// Err is the fatal error that stopped the loop, if any.
func (m Model) Err() error { return m.err }

// Frame returns the most recent frame and whether one was produced.
func (m Model) Frame() (pipeline.Frame, bool) { return m.frame, m.ready }
