// Package search implements the grid pathfinding strategies. Every
// strategy shares the same instrumentation: it mutates cell visitation
// state on the grid and emits one step event per transition, so the same
// driver can animate any of them.
package search

import (
	"context"
	"fmt"
	"math"
	"sort"

	"github.com/san-kum/pathlab/internal/grid"
)

// Unreachable is the path length reported when the frontier empties
// before the end cell is dequeued. It is reserved: no real path can have
// this length.
const Unreachable = math.MaxInt

// EventKind classifies a single node transition.
type EventKind uint8

const (
	// Opened marks a cell entering the frontier.
	Opened EventKind = iota
	// Expanded marks a cell leaving the frontier fully explored.
	Expanded
	// Traced marks a cell of the reconstructed path, emitted after the
	// search terminates, from the end's parent back toward the start.
	Traced
)

func (k EventKind) String() string {
	switch k {
	case Opened:
		return "opened"
	case Expanded:
		return "expanded"
	case Traced:
		return "traced"
	}
	return fmt.Sprintf("kind(%d)", uint8(k))
}

// StepEvent is one observable node transition.
type StepEvent struct {
	Pos  grid.Pos
	Kind EventKind
}

// EmitFunc receives each step event. Returning an error aborts the
// search; the driver uses this to pace the animation and to propagate
// cancellation.
type EmitFunc func(StepEvent) error

// Strategy is the common contract of A*, BFS and DFS: search g from
// start to end, reporting the path length in unit steps or Unreachable.
// Preconditions (start != end, neither a wall, both in bounds) are the
// caller's to enforce. Adjacency must be queried from the grid at each
// expansion, never cached for the whole run.
type Strategy interface {
	Name() string
	Run(ctx context.Context, g *grid.Grid, start, end grid.Pos, emit EmitFunc) (int, error)
}

// Registry maps strategy names to constructors, mirroring how models and
// integrators are looked up elsewhere in the codebase.
type Registry struct {
	strategies map[string]func() Strategy
}

func NewRegistry() *Registry {
	r := &Registry{strategies: make(map[string]func() Strategy)}
	r.strategies["astar"] = func() Strategy { return NewAStar() }
	r.strategies["bfs"] = func() Strategy { return NewBFS() }
	r.strategies["dfs"] = func() Strategy { return NewDFS() }
	return r
}

func (r *Registry) Get(name string) (Strategy, error) {
	fn, ok := r.strategies[name]
	if !ok {
		return nil, fmt.Errorf("unknown strategy: %s", name)
	}
	return fn(), nil
}

func (r *Registry) List() []string {
	names := make([]string, 0, len(r.strategies))
	for name := range r.strategies {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// All returns the strategies of a full comparison in execution order.
func (r *Registry) All() []Strategy {
	return []Strategy{NewAStar(), NewBFS(), NewDFS()}
}

// trace walks the parent chain from end back to start, marking and
// emitting every ancestor strictly between them, and returns the path
// length in edges. parent is keyed by arena index, -1 meaning unset.
func trace(g *grid.Grid, parent []int, start, end grid.Pos, emit EmitFunc) (int, error) {
	length := 0
	cur := g.Index(end)
	startIdx := g.Index(start)
	for parent[cur] != -1 {
		cur = parent[cur]
		length++
		if cur != startIdx {
			p := posOf(g, cur)
			g.SetState(p, grid.Path)
			if err := emit(StepEvent{Pos: p, Kind: Traced}); err != nil {
				return 0, err
			}
		}
	}
	return length, nil
}

func posOf(g *grid.Grid, idx int) grid.Pos {
	return grid.Pos{Row: idx / g.Rows(), Col: idx % g.Rows()}
}

func checkCtx(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
		return nil
	}
}
