package grid

import "fmt"

// CellState is the visitation state of a single cell. Wall is only ever
// reported through snapshots; on the node itself wall-ness is a separate
// flag so that clearing visitation state cannot erase walls.
type CellState uint8

const (
	Unvisited CellState = iota
	Open
	Closed
	Path
	Start
	End
	Wall
)

func (s CellState) String() string {
	switch s {
	case Unvisited:
		return "unvisited"
	case Open:
		return "open"
	case Closed:
		return "closed"
	case Path:
		return "path"
	case Start:
		return "start"
	case End:
		return "end"
	case Wall:
		return "wall"
	}
	return fmt.Sprintf("state(%d)", uint8(s))
}

// Pos identifies a cell by position. Two nodes are the same node iff their
// positions are equal; nodes are never relocated.
type Pos struct {
	Row int
	Col int
}

func (p Pos) String() string { return fmt.Sprintf("(%d,%d)", p.Row, p.Col) }

// Manhattan is the 4-connected distance lower bound between two cells.
func (p Pos) Manhattan(q Pos) int {
	return absInt(p.Row-q.Row) + absInt(p.Col-q.Col)
}

// Node is one cell of the arena. Score holds whatever the active search
// wants to display for the cell (A* stores its f value there).
type Node struct {
	Pos   Pos
	wall  bool
	state CellState
	Score int
}

func (n *Node) IsWall() bool     { return n.wall }
func (n *Node) State() CellState { return n.state }

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
