// Package viz renders grid snapshots, result tables and frontier charts
// for the terminal.
package viz

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/pathlab/internal/grid"
	"github.com/san-kum/pathlab/internal/results"
)

// Each cell is two columns wide so the board renders roughly square.
const cellWidth = 2

// RenderGrid draws a snapshot. cursor, when non-nil, is highlighted so
// the interactive editor shows where the next edit lands.
func RenderGrid(snap grid.Snapshot, cursor *grid.Pos) string {
	var b strings.Builder
	for r := 0; r < snap.Rows(); r++ {
		for c := 0; c < len(snap[r]); c++ {
			p := grid.Pos{Row: r, Col: c}
			style := CellStyle(snap.At(p))
			cell := strings.Repeat(" ", cellWidth)
			switch {
			case cursor != nil && *cursor == p:
				cell = cursorStyle.Inherit(style).Render("[]")
			case snap.At(p) == grid.Start:
				cell = style.Render("S ")
			case snap.At(p) == grid.End:
				cell = style.Render("E ")
			default:
				cell = style.Render(cell)
			}
			b.WriteString(cell)
		}
		if r < snap.Rows()-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

// FormatLength prints a path length, spelling out the unreachable
// sentinel.
func FormatLength(r results.Result) string {
	if !r.Reachable() {
		return "no path"
	}
	return fmt.Sprintf("%d", r.PathLength)
}

// ResultsTable renders the per-algorithm outcomes in execution order,
// with the winner called out below.
func ResultsTable(set []results.Result, best results.Result, ok bool) string {
	var b strings.Builder
	b.WriteString(headerStyle.Render("ALGO     PATH      TIME") + "\n")
	for _, r := range set {
		line := fmt.Sprintf("%-8s %-9s %s", r.Algorithm, FormatLength(r), r.Elapsed.Round(100*time.Microsecond))
		b.WriteString(valueStyle.Render(line) + "\n")
	}
	if ok {
		b.WriteString("\n" + bestStyle.Render("BEST: "+best.Algorithm))
	} else {
		b.WriteString("\n" + noticeStyle.Render("no algorithm found a path"))
	}
	return panelStyle.Render(b.String())
}

// FrontierChart plots frontier size over steps for one algorithm.
func FrontierChart(name string, series []float64) string {
	if len(series) < 2 {
		return ""
	}
	return asciigraph.Plot(series,
		asciigraph.Height(8),
		asciigraph.Width(60),
		asciigraph.Caption(fmt.Sprintf("%s frontier size", name)),
	)
}

// Header, Notice and Help style one-line chrome for the TUI.
func Header(s string) string { return headerStyle.Render(s) }

func Notice(s string) string { return noticeStyle.Render(s) }

func Help(s string) string { return helpStyle.Render(s) }

// Legend names the cell colors.
func Legend() string {
	entries := []struct {
		state grid.CellState
		label string
	}{
		{grid.Start, "start"},
		{grid.End, "end"},
		{grid.Wall, "wall"},
		{grid.Open, "open"},
		{grid.Closed, "closed"},
		{grid.Path, "path"},
	}
	parts := make([]string, 0, len(entries))
	for _, e := range entries {
		parts = append(parts, CellStyle(e.state).Render("  ")+" "+labelStyle.Render(e.label))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, strings.Join(parts, "  "))
}
