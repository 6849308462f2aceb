package driver

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/san-kum/pathlab/internal/grid"
	"github.com/san-kum/pathlab/internal/search"
)

func testBoard(t *testing.T) (*grid.Grid, grid.Pos, grid.Pos) {
	t.Helper()
	g, err := grid.New(5)
	if err != nil {
		t.Fatalf("grid.New failed: %v", err)
	}
	return g, grid.Pos{Row: 1, Col: 1}, grid.Pos{Row: 3, Col: 3}
}

// countingPacer records how the driver paced each step.
type countingPacer struct {
	expand int
	trace  int
}

func (p *countingPacer) Pace(ctx context.Context, kind search.EventKind) error {
	if kind == search.Traced {
		p.trace++
	} else {
		p.expand++
	}
	return ctx.Err()
}

func TestDriverCompletesAndReportsResult(t *testing.T) {
	g, start, end := testBoard(t)

	snapshots := 0
	d := New(g, NopPacer{}, func(grid.Snapshot) { snapshots++ })
	if d.State() != Idle {
		t.Fatalf("initial state: got %v, want idle", d.State())
	}

	res, err := d.Run(context.Background(), search.NewBFS(), start, end)
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if d.State() != Completed {
		t.Errorf("state: got %v, want completed", d.State())
	}
	if res.Algorithm != "BFS" {
		t.Errorf("algorithm: got %s, want BFS", res.Algorithm)
	}
	if res.PathLength != 4 {
		t.Errorf("path length: got %d, want 4", res.PathLength)
	}
	if res.Elapsed < 0 {
		t.Errorf("negative elapsed time: %v", res.Elapsed)
	}
	// One snapshot per step event plus the terminal one.
	if snapshots < 2 {
		t.Errorf("expected snapshots to be published, got %d", snapshots)
	}
}

func TestDriverPacesTraceStepsSeparately(t *testing.T) {
	g, start, end := testBoard(t)

	pacer := &countingPacer{}
	d := New(g, pacer, nil)

	if _, err := d.Run(context.Background(), search.NewBFS(), start, end); err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if pacer.expand == 0 {
		t.Error("no expansion steps paced")
	}
	// Path of length 4 has 3 intermediate cells.
	if pacer.trace != 3 {
		t.Errorf("trace steps: got %d, want 3", pacer.trace)
	}
}

func TestDriverObserverSeesFrontierCounts(t *testing.T) {
	g, start, end := testBoard(t)

	var counts []int
	d := New(g, NopPacer{}, nil)
	d.AddObserver(observerFunc(func(ev search.StepEvent, open int) {
		counts = append(counts, open)
	}))

	if _, err := d.Run(context.Background(), search.NewBFS(), start, end); err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if len(counts) == 0 {
		t.Fatal("observer never called")
	}
	for i, n := range counts {
		if n < 0 {
			t.Fatalf("negative frontier size %d at step %d", n, i)
		}
	}
}

type observerFunc func(search.StepEvent, int)

func (f observerFunc) OnStep(ev search.StepEvent, open int) { f(ev, open) }

func TestDriverCancellation(t *testing.T) {
	g, start, end := testBoard(t)

	ctx, cancel := context.WithCancel(context.Background())
	steps := 0
	d := New(g, NopPacer{}, func(grid.Snapshot) {
		steps++
		if steps == 3 {
			cancel()
		}
	})

	_, err := d.Run(ctx, search.NewBFS(), start, end)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if d.State() != Cancelled {
		t.Errorf("state: got %v, want cancelled", d.State())
	}

	// Grid state is suspended, not corrupted: a reset and rerun works.
	g.Reset()
	res, err := d.Run(context.Background(), search.NewBFS(), start, end)
	if err != nil {
		t.Fatalf("rerun failed: %v", err)
	}
	if res.PathLength != 4 {
		t.Errorf("rerun path length: got %d, want 4", res.PathLength)
	}
}

func TestSleepPacerHonorsCancellation(t *testing.T) {
	p := SleepPacer{Expand: time.Hour, Trace: time.Hour}
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() { done <- p.Pace(ctx, search.Opened) }()
	cancel()

	select {
	case err := <-done:
		if !errors.Is(err, context.Canceled) {
			t.Errorf("expected context.Canceled, got %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("pacer did not return after cancellation")
	}
}

func TestDefaultPacerIntervals(t *testing.T) {
	p := DefaultPacer()
	if p.Trace <= p.Expand {
		t.Error("trace pacing should be coarser than expansion pacing")
	}
}
