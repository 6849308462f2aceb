package viz

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/pathlab/internal/grid"
)

// Cell palette, lifted from the classic maze solver colors.
var (
	unvisitedStyle = lipgloss.NewStyle().Background(lipgloss.Color("#2e0249"))
	openStyle      = lipgloss.NewStyle().Background(lipgloss.Color("#7f11c2"))
	closedStyle    = lipgloss.NewStyle().Background(lipgloss.Color("#570987"))
	pathStyle      = lipgloss.NewStyle().Background(lipgloss.Color("#ffd24c"))
	wallStyle      = lipgloss.NewStyle().Background(lipgloss.Color("#f806cc"))
	startStyle     = lipgloss.NewStyle().Background(lipgloss.Color("#00ffab")).Foreground(lipgloss.Color("#000000")).Bold(true)
	endStyle       = lipgloss.NewStyle().Background(lipgloss.Color("#2fff00")).Foreground(lipgloss.Color("#000000")).Bold(true)

	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	noticeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("220")).Bold(true)
	bestStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("82")).Bold(true)
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	cursorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#ffffff")).Bold(true)
	panelStyle  = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(1, 2)
)

// CellStyle maps a visitation state to its rendering style.
func CellStyle(s grid.CellState) lipgloss.Style {
	switch s {
	case grid.Open:
		return openStyle
	case grid.Closed:
		return closedStyle
	case grid.Path:
		return pathStyle
	case grid.Wall:
		return wallStyle
	case grid.Start:
		return startStyle
	case grid.End:
		return endStyle
	default:
		return unvisitedStyle
	}
}
