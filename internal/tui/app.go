// Package tui is the interactive board editor and animation front end.
// All engine access goes through the session boundary; while a run is
// active the session rejects edits and the UI surfaces that as a notice
// instead of mutating a live search.
package tui

import (
	"errors"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/pathlab/internal/grid"
	"github.com/san-kum/pathlab/internal/results"
	"github.com/san-kum/pathlab/internal/session"
	"github.com/san-kum/pathlab/internal/viz"
)

type snapshotMsg grid.Snapshot

type resultMsg results.Result

type comparisonMsg struct {
	set  []results.Result
	best results.Result
	ok   bool
}

type cancelledMsg struct{}

// consumer forwards engine callbacks into the bubbletea message loop.
// tea.Program.Send is safe to call from the comparison worker.
type consumer struct {
	p *tea.Program
}

func (c *consumer) OnSnapshot(snap grid.Snapshot) { c.p.Send(snapshotMsg(snap)) }
func (c *consumer) OnResult(res results.Result)   { c.p.Send(resultMsg(res)) }
func (c *consumer) OnComparison(set []results.Result, best results.Result, ok bool) {
	c.p.Send(comparisonMsg{set: set, best: best, ok: ok})
}
func (c *consumer) OnCancelled() { c.p.Send(cancelledMsg{}) }

type model struct {
	sess   *session.Session
	snap   grid.Snapshot
	cursor grid.Pos
	status string

	set         []results.Result
	best        results.Result
	bestOK      bool
	showResults bool
}

func newModel(sess *session.Session) model {
	rows := sess.Rows()
	return model{
		sess:   sess,
		snap:   sess.Snapshot(),
		cursor: grid.Pos{Row: rows / 2, Col: rows / 2},
		status: "place a start and an end, then press r",
	}
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case snapshotMsg:
		m.snap = grid.Snapshot(msg)
		return m, nil
	case resultMsg:
		res := results.Result(msg)
		m.set = append(m.set, res)
		m.status = fmt.Sprintf("%s: path %s in %s", res.Algorithm, viz.FormatLength(res), res.Elapsed.Round(time.Millisecond))
		return m, nil
	case comparisonMsg:
		m.set = msg.set
		m.best = msg.best
		m.bestOK = msg.ok
		m.showResults = true
		m.status = "comparison complete"
		return m, nil
	case cancelledMsg:
		m.status = "run cancelled"
		return m, nil
	}
	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		m.sess.Cancel()
		return m, tea.Quit
	case "esc":
		m.sess.Cancel()
		return m, nil
	case "up", "k":
		m.moveCursor(-1, 0)
	case "down", "j":
		m.moveCursor(1, 0)
	case "left", "h":
		m.moveCursor(0, -1)
	case "right", "l":
		m.moveCursor(0, 1)
	case "s":
		m.edit(func() error { return m.sess.PlaceStart(m.cursor) })
	case "e":
		m.edit(func() error { return m.sess.PlaceEnd(m.cursor) })
	case "x":
		m.edit(func() error { return m.sess.RemoveRole(m.cursor) })
	case "w", " ":
		wall := m.snap.At(m.cursor) != grid.Wall
		m.edit(func() error { return m.sess.SetWall(m.cursor, wall) })
	case "g":
		m.edit(func() error { return m.sess.Scatter() })
	case "c":
		m.edit(func() error { return m.sess.RequestClear() })
	case "+", "=":
		m.adjustDensity(session.DensityStep)
	case "-", "_":
		m.adjustDensity(-session.DensityStep)
	case "r":
		m.requestRun("all")
	case "1":
		m.requestRun("astar")
	case "2":
		m.requestRun("bfs")
	case "3":
		m.requestRun("dfs")
	}
	return m, nil
}

func (m *model) moveCursor(dr, dc int) {
	rows := m.sess.Rows()
	r, c := m.cursor.Row+dr, m.cursor.Col+dc
	if r >= 0 && r < rows && c >= 0 && c < rows {
		m.cursor = grid.Pos{Row: r, Col: c}
	}
}

// edit applies a session mutation, refreshing the board or reporting the
// rejection.
func (m *model) edit(fn func() error) {
	if err := fn(); err != nil {
		m.status = notice(err)
		return
	}
	m.snap = m.sess.Snapshot()
	m.showResults = false
	m.status = ""
}

func (m *model) adjustDensity(delta float64) {
	if err := m.sess.SetWallDensity(m.sess.WallDensity() + delta); err != nil {
		m.status = notice(err)
		return
	}
	m.status = fmt.Sprintf("wall density: %.2f (g to rescatter)", m.sess.WallDensity())
}

func (m *model) requestRun(name string) {
	if err := m.sess.RequestRun(name); err != nil {
		m.status = notice(err)
		return
	}
	m.set = nil
	m.showResults = false
	if name == "all" {
		m.status = "comparing A*, BFS, DFS..."
	} else {
		m.status = "running " + name + "..."
	}
}

func notice(err error) string {
	switch {
	case errors.Is(err, session.ErrEndpointsUnset):
		return "set start and end first!"
	case errors.Is(err, session.ErrRunActive):
		return "run in progress (esc to cancel)"
	default:
		return err.Error()
	}
}

func (m model) View() string {
	var cursor *grid.Pos
	if !m.sess.Running() {
		c := m.cursor
		cursor = &c
	}

	var b strings.Builder
	b.WriteString(viz.Header("PATHLAB") + "\n")
	b.WriteString(viz.RenderGrid(m.snap, cursor) + "\n")
	b.WriteString(viz.Legend() + "\n")
	if m.status != "" {
		b.WriteString(viz.Notice(m.status) + "\n")
	}

	board := b.String()
	if m.showResults {
		return lipgloss.JoinHorizontal(lipgloss.Top, board, " ", viz.ResultsTable(m.set, m.best, m.bestOK))
	}
	return board + viz.Help("move: arrows  s/e: start/end  w: wall  g: scatter  c: clear  +/-: density  r: compare  1/2/3: single  q: quit")
}

// Run launches the interactive app over the given session.
func Run(sess *session.Session) error {
	p := tea.NewProgram(newModel(sess))
	sess.SetConsumer(&consumer{p: p})
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}
