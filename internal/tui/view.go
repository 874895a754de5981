package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	// Layout sizes
	headerHeight := 1
	footerHeight := 2
	contentHeight := max(4, m.height-headerHeight-footerHeight)
	contentWidth := max(10, m.width)

	// Header
	title := fmt.Sprintf(" shapegen ─ %s  reduce=%d  dispersion=%d  closed=%v ",
		m.cfg.Shape, m.cfg.ReduceIterations, m.cfg.Dispersion, m.cfg.Closed)
	header := lipgloss.NewStyle().Width(contentWidth).Render(titleStyle.Render(title))

	// Canvas, with the offsets table on the right when visible
	canvasWidth := contentWidth
	var side string
	if m.showTable && contentWidth > tableWidth+20 {
		canvasWidth = contentWidth - tableWidth - 1
		m.tbl.SetHeight(max(2, contentHeight-3))
		side = boxStyle.Width(tableWidth - 2).Render(m.tbl.View())
	}
	canvas := lipgloss.NewStyle().Width(canvasWidth).Height(contentHeight).
		Render(m.renderCanvas(canvasWidth, contentHeight))

	body := canvas
	if side != "" {
		body = lipgloss.JoinHorizontal(lipgloss.Top, canvas, " ", side)
	}

	// Footer / help
	var status string
	if m.err != nil {
		status = errStyle.Render(" " + m.status + " ")
	} else {
		status = dimStyle.Render(" " + m.status + " ")
	}
	footer := lipgloss.NewStyle().Width(contentWidth).Render(lipgloss.JoinVertical(lipgloss.Left, status, m.renderHelp()))

	ui := lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
	return appStyle.Width(contentWidth).Height(m.height).Render(ui)
}

func (m Model) renderHelp() string {
	if !m.helpVisible {
		return ""
	}
	keys := []string{"t table", "h help", "q quit"}
	if m.stepMode() {
		keys = append([]string{"any key next"}, keys...)
	} else {
		keys = append([]string{"space pause"}, keys...)
	}
	return dimStyle.Render("  " + strings.Join(keys, "  "))
}
