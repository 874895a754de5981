package tui

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	table "github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"

	"shapegen/internal/report"
)

// stepMsg asks for the next iteration. seq must match the model's current
// tag, otherwise the message belongs to a cancelled schedule.
type stepMsg struct{ seq int }

func (m Model) step() tea.Cmd {
	seq := m.seq
	return func() tea.Msg { return stepMsg{seq: seq} }
}

// schedule arms the checkpoint after a frame: a tick after the configured
// delay, or nothing in step mode (zero delay) where any key advances.
func (m *Model) schedule() tea.Cmd {
	m.seq++
	if m.cfg.Delay <= 0 || m.paused {
		return nil
	}
	seq := m.seq
	return tea.Tick(m.cfg.Delay, func(time.Time) tea.Msg { return stepMsg{seq: seq} })
}

func (m Model) stepMode() bool { return m.cfg.Delay <= 0 }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	case stepMsg:
		if msg.seq != m.seq || m.paused {
			return m, nil
		}
		return m.advance()
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			m.status = "stopped"
			return m, tea.Quit
		case "h":
			m.helpVisible = !m.helpVisible
			return m, nil
		case "t":
			m.showTable = !m.showTable
			if m.showTable {
				m.tbl.Focus()
			} else {
				m.tbl.Blur()
			}
			return m, nil
		case " ":
			if m.stepMode() {
				break
			}
			m.paused = !m.paused
			if m.paused {
				m.seq++
				m.status = "paused"
				return m, nil
			}
			return m, m.step()
		}
		if m.showTable && isTableKey(msg) {
			var cmd tea.Cmd
			m.tbl, cmd = m.tbl.Update(msg)
			return m, cmd
		}
		if m.stepMode() && m.ready {
			return m.advance()
		}
	}
	return m, nil
}

// isTableKey reports whether k scrolls the offsets table.
func isTableKey(k tea.KeyMsg) bool {
	km := table.DefaultKeyMap()
	return key.Matches(k, km.LineUp, km.LineDown, km.PageUp, km.PageDown,
		km.HalfPageUp, km.HalfPageDown, km.GotoTop, km.GotoBottom)
}

// advance runs one pipeline iteration, records it and arms the next
// checkpoint. Any error is fatal and quits the program.
func (m Model) advance() (tea.Model, tea.Cmd) {
	f, err := m.gen.Next()
	if err == nil && m.rec != nil {
		err = m.rec.Record(f)
	}
	if err != nil {
		m.err = err
		m.status = "error: " + err.Error()
		return m, tea.Quit
	}
	m.frame, m.ready = f, true
	m.refreshTable()
	m.status = m.num.Sprintf("iteration %d  points %d  edges %d", f.Iteration, len(f.Contour), len(f.Offsets))

	var cmds []tea.Cmd
	if m.echo {
		cmds = append(cmds, tea.Println(strings.TrimSuffix(report.Console(f), "\n")))
	}
	cmds = append(cmds, m.schedule())
	return m, tea.Batch(cmds...)
}
