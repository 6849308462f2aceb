package search

import (
	"context"

	"github.com/san-kum/pathlab/internal/grid"
)

// DFS explores in LIFO order. Visited-ness is checked when a cell is
// popped, not when it is pushed, so a cell can sit on the stack several
// times but is expanded at most once. The push-before-check ordering is
// intentional and must stay: it is what gives DFS its characteristic
// winding, non-shortest paths.
type DFS struct{}

func NewDFS() *DFS { return &DFS{} }

func (d *DFS) Name() string { return "DFS" }

func (d *DFS) Run(ctx context.Context, g *grid.Grid, start, end grid.Pos, emit EmitFunc) (int, error) {
	size := g.Size()
	visited := make([]bool, size)
	parent := make([]int, size)
	for i := range parent {
		parent[i] = -1
	}

	startIdx := g.Index(start)
	endIdx := g.Index(end)
	stack := make([]int, 0, 64)
	stack = append(stack, startIdx)

	for len(stack) > 0 {
		if err := checkCtx(ctx); err != nil {
			return 0, err
		}

		curIdx := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if visited[curIdx] {
			continue
		}
		visited[curIdx] = true
		cur := posOf(g, curIdx)

		if curIdx == endIdx {
			return trace(g, parent, start, end, emit)
		}

		for _, nb := range g.Neighbors(cur) {
			nbIdx := g.Index(nb)
			if visited[nbIdx] {
				continue
			}
			// Later pushes of the same cell overwrite the parent; the
			// chain that survives is whichever one the pop order ends
			// up following.
			parent[nbIdx] = curIdx
			stack = append(stack, nbIdx)
			g.SetState(nb, grid.Open)
			if err := emit(StepEvent{Pos: nb, Kind: Opened}); err != nil {
				return 0, err
			}
		}

		if curIdx != startIdx {
			g.SetState(cur, grid.Closed)
			if err := emit(StepEvent{Pos: cur, Kind: Expanded}); err != nil {
				return 0, err
			}
		}
	}

	return Unreachable, nil
}
