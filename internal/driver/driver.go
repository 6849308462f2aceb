// Package driver turns a strategy's step events into a paced, observable
// animation. It owns the Idle → Running → {Completed, Cancelled} state
// machine and the per-step snapshot publishing.
package driver

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/san-kum/pathlab/internal/grid"
	"github.com/san-kum/pathlab/internal/results"
	"github.com/san-kum/pathlab/internal/search"
)

// State of the driver's run lifecycle.
type State uint8

const (
	Idle State = iota
	Running
	Completed
	Cancelled
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Running:
		return "running"
	case Completed:
		return "completed"
	case Cancelled:
		return "cancelled"
	}
	return fmt.Sprintf("state(%d)", uint8(s))
}

// Pacer suspends between steps. The suspension must be cooperative:
// return promptly with ctx.Err() once the context is cancelled, and
// never hold a lock across the wait.
type Pacer interface {
	Pace(ctx context.Context, kind search.EventKind) error
}

// SleepPacer waits a fixed interval per step, a coarser one during path
// reconstruction so the final path reads clearly.
type SleepPacer struct {
	Expand time.Duration
	Trace  time.Duration
}

// DefaultPacer matches the classic animation timing.
func DefaultPacer() SleepPacer {
	return SleepPacer{Expand: 10 * time.Millisecond, Trace: 20 * time.Millisecond}
}

func (p SleepPacer) Pace(ctx context.Context, kind search.EventKind) error {
	d := p.Expand
	if kind == search.Traced {
		d = p.Trace
	}
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// NopPacer skips the waits entirely; tests use it so the algorithm core
// runs free of wall-clock pacing.
type NopPacer struct{}

func (NopPacer) Pace(ctx context.Context, kind search.EventKind) error { return ctx.Err() }

// Observer is notified after every published step, mirroring the
// observer hook on the simulation loop this driver descends from.
type Observer interface {
	OnStep(ev search.StepEvent, openCount int)
}

// Driver animates one strategy run at a time over a single grid. It is
// not safe for concurrent runs; the session layer serializes access.
type Driver struct {
	g         *grid.Grid
	pacer     Pacer
	publish   func(grid.Snapshot)
	observers []Observer
	state     State
	openCount int
}

// New builds a driver. publish may be nil when no presentation layer is
// attached (headless runs that only want the result).
func New(g *grid.Grid, pacer Pacer, publish func(grid.Snapshot)) *Driver {
	if pacer == nil {
		pacer = DefaultPacer()
	}
	return &Driver{g: g, pacer: pacer, publish: publish, state: Idle}
}

func (d *Driver) AddObserver(o Observer) { d.observers = append(d.observers, o) }

func (d *Driver) State() State { return d.state }

// Run executes one strategy to termination, publishing a snapshot and
// pacing after every node transition. On success the outcome is returned
// as an immutable record; elapsed time covers the full animated run. On
// cancellation the partial outcome is discarded and the grid's
// visitation state is left as-is for the next Reset to clear.
func (d *Driver) Run(ctx context.Context, strat search.Strategy, start, end grid.Pos) (results.Result, error) {
	if d.state == Running {
		return results.Result{}, errors.New("driver: run already in progress")
	}
	d.state = Running
	d.openCount = 0

	emit := func(ev search.StepEvent) error {
		switch ev.Kind {
		case search.Opened:
			d.openCount++
		case search.Expanded:
			d.openCount--
		}
		if d.publish != nil {
			d.publish(d.g.Snapshot())
		}
		for _, o := range d.observers {
			o.OnStep(ev, d.openCount)
		}
		return d.pacer.Pace(ctx, ev.Kind)
	}

	began := time.Now()
	length, err := strat.Run(ctx, d.g, start, end, emit)
	elapsed := time.Since(began)

	if err != nil {
		d.state = Cancelled
		return results.Result{}, err
	}

	d.state = Completed
	if d.publish != nil {
		d.publish(d.g.Snapshot())
	}
	return results.Result{Algorithm: strat.Name(), PathLength: length, Elapsed: elapsed}, nil
}
