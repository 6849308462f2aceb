// Package grid owns the node arena searched by the pathfinding strategies:
// a fixed rows×rows board whose border cells are permanently walls, with
// 4-connected adjacency computed from live wall state.
package grid

import (
	"fmt"
	"math/rand"
)

// MinRows keeps room for at least a 3×3 interior inside the border walls.
const MinRows = 5

// DefaultRows matches the classic 30×30 board.
const DefaultRows = 30

// Grid is a fixed-size arena of nodes. It is created once and never
// resized; all cross-references into it are positions, not pointers.
// A Grid has no internal locking: during a run the caller must guarantee
// exclusive access.
type Grid struct {
	rows  int
	nodes []Node
}

// New builds a rows×rows grid with border walls asserted.
func New(rows int) (*Grid, error) {
	if rows < MinRows {
		return nil, fmt.Errorf("grid: rows must be at least %d, got %d", MinRows, rows)
	}
	g := &Grid{
		rows:  rows,
		nodes: make([]Node, rows*rows),
	}
	for r := 0; r < rows; r++ {
		for c := 0; c < rows; c++ {
			g.nodes[r*rows+c].Pos = Pos{Row: r, Col: c}
		}
	}
	g.assertBorder()
	return g, nil
}

func (g *Grid) Rows() int { return g.rows }

// Size returns the number of cells in the arena.
func (g *Grid) Size() int { return len(g.nodes) }

func (g *Grid) InBounds(p Pos) bool {
	return p.Row >= 0 && p.Row < g.rows && p.Col >= 0 && p.Col < g.rows
}

// Index maps a position to its arena slot. Search bookkeeping (parent
// chains, visited sets) is keyed by these indices.
func (g *Grid) Index(p Pos) int { return p.Row*g.rows + p.Col }

// At returns the node at p. p must be in bounds.
func (g *Grid) At(p Pos) *Node { return &g.nodes[g.Index(p)] }

func (g *Grid) IsWall(p Pos) bool { return g.At(p).wall }

// SetWall flips wall-ness of a cell. Border cells stay walls no matter
// what; an in-flight search picks the change up at its next expansion
// because adjacency is never cached.
func (g *Grid) SetWall(p Pos, wall bool) {
	if g.isBorder(p) {
		return
	}
	n := g.At(p)
	n.wall = wall
	if wall {
		n.state = Unvisited
		n.Score = 0
	}
}

// SetState records a visitation transition. Walls keep no visitation
// state.
func (g *Grid) SetState(p Pos, s CellState) {
	n := g.At(p)
	if n.wall {
		return
	}
	n.state = s
}

func (g *Grid) State(p Pos) CellState { return g.At(p).state }

// Neighbors returns the passable 4-neighborhood of p in the fixed order
// up, down, left, right. The order is load-bearing: it decides traversal
// tie-breaks, so it must never change. The result reflects wall state at
// call time.
func (g *Grid) Neighbors(p Pos) []Pos {
	out := make([]Pos, 0, 4)
	for _, q := range [4]Pos{
		{p.Row - 1, p.Col},
		{p.Row + 1, p.Col},
		{p.Row, p.Col - 1},
		{p.Row, p.Col + 1},
	} {
		if g.InBounds(q) && !g.At(q).wall {
			out = append(out, q)
		}
	}
	return out
}

// Reset clears visitation state of every non-wall cell and re-asserts the
// border walls. Interior walls survive. Calling it twice is the same as
// calling it once.
func (g *Grid) Reset() {
	for i := range g.nodes {
		if g.nodes[i].wall {
			continue
		}
		g.nodes[i].state = Unvisited
		g.nodes[i].Score = 0
	}
	g.assertBorder()
}

// ClearAll removes every interior wall and all visitation state, then
// re-asserts the border.
func (g *Grid) ClearAll() {
	for i := range g.nodes {
		g.nodes[i].wall = false
		g.nodes[i].state = Unvisited
		g.nodes[i].Score = 0
	}
	g.assertBorder()
}

// Scatter redraws the interior with random walls at the given density,
// wiping previous interior walls and visitation state. Density is clamped
// to [0,1].
func (g *Grid) Scatter(rng *rand.Rand, density float64) {
	if density < 0 {
		density = 0
	}
	if density > 1 {
		density = 1
	}
	for r := 1; r < g.rows-1; r++ {
		for c := 1; c < g.rows-1; c++ {
			n := &g.nodes[r*g.rows+c]
			n.state = Unvisited
			n.Score = 0
			n.wall = rng.Float64() < density
		}
	}
}

// Snapshot captures the full visitation map, walls stamped in. Start/End
// roles live in the session, not the grid, and are stamped by the caller.
func (g *Grid) Snapshot() Snapshot {
	snap := make(Snapshot, g.rows)
	for r := 0; r < g.rows; r++ {
		row := make([]CellState, g.rows)
		for c := 0; c < g.rows; c++ {
			n := &g.nodes[r*g.rows+c]
			if n.wall {
				row[c] = Wall
			} else {
				row[c] = n.state
			}
		}
		snap[r] = row
	}
	return snap
}

func (g *Grid) isBorder(p Pos) bool {
	return p.Row == 0 || p.Row == g.rows-1 || p.Col == 0 || p.Col == g.rows-1
}

func (g *Grid) assertBorder() {
	for i := 0; i < g.rows; i++ {
		g.nodes[i].wall = true
		g.nodes[(g.rows-1)*g.rows+i].wall = true
		g.nodes[i*g.rows].wall = true
		g.nodes[i*g.rows+g.rows-1].wall = true
	}
}

// Snapshot is a point-in-time copy of the board, row major.
type Snapshot [][]CellState

func (s Snapshot) Rows() int { return len(s) }

func (s Snapshot) At(p Pos) CellState { return s[p.Row][p.Col] }

// Stamp overrides one cell, used to overlay Start/End roles on top of the
// visitation map.
func (s Snapshot) Stamp(p Pos, state CellState) {
	if p.Row >= 0 && p.Row < len(s) && p.Col >= 0 && p.Col < len(s[p.Row]) {
		s[p.Row][p.Col] = state
	}
}

// Count tallies cells in the given state.
func (s Snapshot) Count(state CellState) int {
	n := 0
	for _, row := range s {
		for _, cs := range row {
			if cs == state {
				n++
			}
		}
	}
	return n
}
