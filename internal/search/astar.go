package search

import (
	"container/heap"
	"context"

	"github.com/san-kum/pathlab/internal/grid"
)

// AStar searches with f = g + h, h being the Manhattan distance to the
// end cell. With unit-cost 4-connected movement the heuristic is
// admissible and consistent, so the first time the end is popped its g
// is optimal.
type AStar struct{}

func NewAStar() *AStar { return &AStar{} }

func (a *AStar) Name() string { return "A*" }

func (a *AStar) Run(ctx context.Context, g *grid.Grid, start, end grid.Pos, emit EmitFunc) (int, error) {
	size := g.Size()
	gScore := make([]int, size)
	for i := range gScore {
		gScore[i] = Unreachable
	}
	parent := make([]int, size)
	for i := range parent {
		parent[i] = -1
	}
	inOpen := make([]bool, size)

	startIdx := g.Index(start)
	gScore[startIdx] = 0

	open := make(frontier, 0, 64)
	heap.Init(&open)
	seq := 0
	heap.Push(&open, &frontierItem{idx: startIdx, g: 0, f: start.Manhattan(end), seq: seq})
	inOpen[startIdx] = true

	for open.Len() > 0 {
		if err := checkCtx(ctx); err != nil {
			return 0, err
		}

		item := heap.Pop(&open).(*frontierItem)
		cur := posOf(g, item.idx)
		inOpen[item.idx] = false

		if cur == end {
			return trace(g, parent, start, end, emit)
		}

		// Neighbors come from the live grid so wall edits made between
		// runs (or between steps, in principle) are honored.
		for _, nb := range g.Neighbors(cur) {
			nbIdx := g.Index(nb)
			tentative := gScore[item.idx] + 1
			if tentative >= gScore[nbIdx] {
				continue
			}
			parent[nbIdx] = item.idx
			gScore[nbIdx] = tentative
			f := tentative + nb.Manhattan(end)
			g.At(nb).Score = f
			if !inOpen[nbIdx] {
				seq++
				heap.Push(&open, &frontierItem{idx: nbIdx, g: tentative, f: f, seq: seq})
				inOpen[nbIdx] = true
				g.SetState(nb, grid.Open)
				if err := emit(StepEvent{Pos: nb, Kind: Opened}); err != nil {
					return 0, err
				}
			}
		}

		if cur != start {
			g.SetState(cur, grid.Closed)
			if err := emit(StepEvent{Pos: cur, Kind: Expanded}); err != nil {
				return 0, err
			}
		}
	}

	return Unreachable, nil
}
