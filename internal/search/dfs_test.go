package search

import (
	"testing"

	"github.com/san-kum/pathlab/internal/grid"
)

// DFS pushes neighbors before checking visited-ness, so the same cell
// can enter the frontier several times; it must still be expanded at
// most once. This pins the semantics that produce DFS's non-shortest
// paths.
func TestDFSPushBeforeVisitedCheck(t *testing.T) {
	g := openBoard(t)
	start := grid.Pos{Row: 1, Col: 1}
	end := grid.Pos{Row: 3, Col: 3}

	length, events := runStrategy(t, NewDFS(), g, start, end)

	opened := make(map[grid.Pos]int)
	expanded := make(map[grid.Pos]int)
	for _, ev := range events {
		switch ev.Kind {
		case Opened:
			opened[ev.Pos]++
		case Expanded:
			expanded[ev.Pos]++
		}
	}

	for p, n := range expanded {
		if n > 1 {
			t.Errorf("cell %s expanded %d times", p, n)
		}
	}

	multi := 0
	for _, n := range opened {
		if n > 1 {
			multi++
		}
	}
	if multi == 0 {
		t.Error("no cell entered the frontier twice; push-before-check semantics lost")
	}

	if length < 4 {
		t.Errorf("DFS length %d shorter than the true shortest path 4", length)
	}
}

func TestDFSNeverMarksEndpointsClosed(t *testing.T) {
	g := openBoard(t)
	start := grid.Pos{Row: 1, Col: 1}
	end := grid.Pos{Row: 3, Col: 3}

	_, events := runStrategy(t, NewDFS(), g, start, end)
	for _, ev := range events {
		if ev.Kind == Expanded && (ev.Pos == start || ev.Pos == end) {
			t.Errorf("endpoint %s marked Closed", ev.Pos)
		}
	}
}
