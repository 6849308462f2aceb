package search

import (
	"context"
	"testing"

	"github.com/san-kum/pathlab/internal/grid"
)

// openBoard is a 5x5 grid with border walls only.
func openBoard(t *testing.T) *grid.Grid {
	t.Helper()
	g, err := grid.New(5)
	if err != nil {
		t.Fatalf("grid.New failed: %v", err)
	}
	return g
}

// sealedEnd is a board whose end cell is fully enclosed by walls.
func sealedEnd(t *testing.T) (*grid.Grid, grid.Pos, grid.Pos) {
	t.Helper()
	g, start, end, err := grid.Decode([]string{
		"#######",
		"#S....#",
		"#..####",
		"#..#E##",
		"#..####",
		"#.....#",
		"#######",
	})
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	return g, *start, *end
}

// collect tallies events by kind and position.
func collect(events *[]StepEvent) EmitFunc {
	return func(ev StepEvent) error {
		*events = append(*events, ev)
		return nil
	}
}

func runStrategy(t *testing.T, s Strategy, g *grid.Grid, start, end grid.Pos) (int, []StepEvent) {
	t.Helper()
	var events []StepEvent
	length, err := s.Run(context.Background(), g, start, end, collect(&events))
	if err != nil {
		t.Fatalf("%s run failed: %v", s.Name(), err)
	}
	return length, events
}

func closedCount(events []StepEvent) int {
	n := 0
	for _, ev := range events {
		if ev.Kind == Expanded {
			n++
		}
	}
	return n
}

func TestRegistry(t *testing.T) {
	r := NewRegistry()

	for _, name := range []string{"astar", "bfs", "dfs"} {
		if _, err := r.Get(name); err != nil {
			t.Errorf("Get(%q) failed: %v", name, err)
		}
	}
	if _, err := r.Get("dijkstra"); err == nil {
		t.Error("expected error for unknown strategy")
	}

	all := r.All()
	if len(all) != 3 {
		t.Fatalf("All: got %d strategies, want 3", len(all))
	}
	order := []string{"A*", "BFS", "DFS"}
	for i, s := range all {
		if s.Name() != order[i] {
			t.Errorf("execution order[%d]: got %s, want %s", i, s.Name(), order[i])
		}
	}
}

func TestStrategiesOnOpenBoard(t *testing.T) {
	start := grid.Pos{Row: 1, Col: 1}
	end := grid.Pos{Row: 3, Col: 3}

	tests := []struct {
		strat   Strategy
		exact   bool
		wantLen int
	}{
		{NewAStar(), true, 4},
		{NewBFS(), true, 4},
		{NewDFS(), false, 4}, // DFS only guarantees >= shortest
	}

	for _, tt := range tests {
		t.Run(tt.strat.Name(), func(t *testing.T) {
			g := openBoard(t)
			length, _ := runStrategy(t, tt.strat, g, start, end)
			if tt.exact && length != tt.wantLen {
				t.Errorf("path length: got %d, want %d", length, tt.wantLen)
			}
			if !tt.exact && length < tt.wantLen {
				t.Errorf("path length: got %d, want >= %d", length, tt.wantLen)
			}
		})
	}
}

func TestStrategiesUnreachable(t *testing.T) {
	for _, strat := range []Strategy{NewAStar(), NewBFS(), NewDFS()} {
		t.Run(strat.Name(), func(t *testing.T) {
			g, start, end := sealedEnd(t)
			length, _ := runStrategy(t, strat, g, start, end)
			if length != Unreachable {
				t.Errorf("got length %d, want Unreachable", length)
			}
		})
	}
}

func TestStrategiesMarkPathOnGrid(t *testing.T) {
	start := grid.Pos{Row: 1, Col: 1}
	end := grid.Pos{Row: 3, Col: 3}

	for _, strat := range []Strategy{NewAStar(), NewBFS(), NewDFS()} {
		t.Run(strat.Name(), func(t *testing.T) {
			g := openBoard(t)
			length, events := runStrategy(t, strat, g, start, end)

			traced := 0
			for _, ev := range events {
				if ev.Kind == Traced {
					traced++
					if g.State(ev.Pos) != grid.Path {
						t.Errorf("traced cell %s not marked Path", ev.Pos)
					}
					if ev.Pos == start || ev.Pos == end {
						t.Errorf("endpoint %s was marked Path", ev.Pos)
					}
				}
			}
			// Path marks exclude both endpoints, so there is one fewer
			// than the edge count.
			if traced != length-1 {
				t.Errorf("traced %d cells for length %d", traced, length)
			}
		})
	}
}

func TestStrategiesNeverVisitWalls(t *testing.T) {
	g, start, end, err := grid.Decode([]string{
		"#########",
		"#S..#...#",
		"#.#.#.#.#",
		"#.#...#E#",
		"#.#####.#",
		"#.......#",
		"#.#####.#",
		"#.......#",
		"#########",
	})
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	for _, strat := range []Strategy{NewAStar(), NewBFS(), NewDFS()} {
		t.Run(strat.Name(), func(t *testing.T) {
			g.Reset()
			_, events := runStrategy(t, strat, g, *start, *end)
			for _, ev := range events {
				if g.IsWall(ev.Pos) {
					t.Errorf("event on wall cell %s", ev.Pos)
				}
			}
		})
	}
}

func TestCancellationStopsRun(t *testing.T) {
	start := grid.Pos{Row: 1, Col: 1}
	end := grid.Pos{Row: 3, Col: 3}

	for _, strat := range []Strategy{NewAStar(), NewBFS(), NewDFS()} {
		t.Run(strat.Name(), func(t *testing.T) {
			g := openBoard(t)
			ctx, cancel := context.WithCancel(context.Background())

			steps := 0
			emit := func(StepEvent) error {
				steps++
				if steps == 2 {
					cancel()
				}
				return ctx.Err()
			}

			_, err := strat.Run(ctx, g, start, end, emit)
			if err == nil {
				t.Fatal("expected cancellation error, got nil")
			}
			// The grid must stay usable: reset and run to completion.
			g.Reset()
			length, _ := runStrategy(t, strat, g, start, end)
			if length == Unreachable {
				t.Error("rerun after cancellation found no path")
			}
		})
	}
}
