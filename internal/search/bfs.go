package search

import (
	"context"

	"github.com/san-kum/pathlab/internal/grid"
)

// BFS explores in FIFO order. Cells are marked visited when enqueued, so
// each cell enters the frontier at most once; in a unit-cost grid the
// first dequeue of the end cell is a shortest path.
type BFS struct{}

func NewBFS() *BFS { return &BFS{} }

func (b *BFS) Name() string { return "BFS" }

func (b *BFS) Run(ctx context.Context, g *grid.Grid, start, end grid.Pos, emit EmitFunc) (int, error) {
	size := g.Size()
	visited := make([]bool, size)
	parent := make([]int, size)
	for i := range parent {
		parent[i] = -1
	}

	startIdx := g.Index(start)
	queue := make([]int, 0, 64)
	queue = append(queue, startIdx)
	visited[startIdx] = true

	for len(queue) > 0 {
		if err := checkCtx(ctx); err != nil {
			return 0, err
		}

		curIdx := queue[0]
		queue = queue[1:]
		cur := posOf(g, curIdx)

		if cur == end {
			return trace(g, parent, start, end, emit)
		}

		for _, nb := range g.Neighbors(cur) {
			nbIdx := g.Index(nb)
			if visited[nbIdx] {
				continue
			}
			visited[nbIdx] = true
			parent[nbIdx] = curIdx
			queue = append(queue, nbIdx)
			g.SetState(nb, grid.Open)
			if err := emit(StepEvent{Pos: nb, Kind: Opened}); err != nil {
				return 0, err
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
