// Package session is the boundary between the presentation layer and
// the engine. It owns the single mutable grid, validates every edit
// against the current start/end/bounds state, and refuses conflicting
// input while a search is running instead of interleaving it into a
// live run.
package session

import (
	"context"
	"errors"
	"math/rand"
	"sync"
	"time"

	"github.com/san-kum/pathlab/internal/driver"
	"github.com/san-kum/pathlab/internal/grid"
	"github.com/san-kum/pathlab/internal/results"
	"github.com/san-kum/pathlab/internal/search"
)

var (
	// ErrRunActive rejects edits and run requests while a search holds
	// the grid.
	ErrRunActive = errors.New("session: run in progress")
	// ErrEndpointsUnset rejects run requests before both start and end
	// are placed.
	ErrEndpointsUnset = errors.New("session: set start and end first")
)

const (
	// DefaultWallDensity matches the classic 35% scatter.
	DefaultWallDensity = 0.35
	// MaxWallDensity caps the scatter so boards stay solvable often
	// enough to be interesting.
	MaxWallDensity = 0.9
	// DensityStep is the increment used by the density hotkeys.
	DensityStep = 0.05
	// DefaultInterRunPause separates the runs of a full comparison.
	DefaultInterRunPause = 300 * time.Millisecond
)

// Consumer receives engine output. Callbacks fire on the comparison
// worker goroutine; implementations must be safe to call from there.
type Consumer interface {
	OnSnapshot(snap grid.Snapshot)
	OnResult(res results.Result)
	OnComparison(set []results.Result, best results.Result, ok bool)
	OnCancelled()
}

// Options configures a session.
type Options struct {
	Rows        int
	WallDensity float64
	Seed        int64
	Pacer       driver.Pacer
	InterPause  time.Duration
	Consumer    Consumer
}

// Session serializes all access to one grid. The running flag is the
// exclusivity mechanism: while set, every mutating entry point returns
// ErrRunActive.
type Session struct {
	mu       sync.Mutex
	g        *grid.Grid
	registry *search.Registry
	pacer    driver.Pacer
	consumer Consumer
	rng      *rand.Rand

	start      *grid.Pos
	end        *grid.Pos
	density    float64
	interPause time.Duration

	running bool
	cancel  context.CancelFunc
}

// New builds a session with a freshly scattered grid.
func New(opts Options) (*Session, error) {
	rows := opts.Rows
	if rows == 0 {
		rows = grid.DefaultRows
	}
	g, err := grid.New(rows)
	if err != nil {
		return nil, err
	}
	density := opts.WallDensity
	if density == 0 {
		density = DefaultWallDensity
	}
	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	interPause := opts.InterPause
	if interPause == 0 {
		interPause = DefaultInterRunPause
	}
	s := &Session{
		g:          g,
		registry:   search.NewRegistry(),
		pacer:      opts.Pacer,
		consumer:   opts.Consumer,
		rng:        rand.New(rand.NewSource(seed)),
		density:    density,
		interPause: interPause,
	}
	s.g.Scatter(s.rng, s.density)
	return s, nil
}

// SetConsumer attaches the presentation layer. Must be called before the
// first run request when the consumer could not be known at build time.
func (s *Session) SetConsumer(c Consumer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.consumer = c
}

// UseGrid swaps in a pre-built board (for example a decoded ASCII maze)
// together with its roles. Rejected while running.
func (s *Session) UseGrid(g *grid.Grid, start, end *grid.Pos) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.running {
		return ErrRunActive
	}
	s.g = g
	s.start = start
	s.end = end
	return nil
}

func (s *Session) Running() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.running
}

func (s *Session) Rows() int { return s.g.Rows() }

func (s *Session) Start() (grid.Pos, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.start == nil {
		return grid.Pos{}, false
	}
	return *s.start, true
}

func (s *Session) End() (grid.Pos, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.end == nil {
		return grid.Pos{}, false
	}
	return *s.end, true
}

func (s *Session) WallDensity() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.density
}

// PlaceStart sets the start role. Invalid placements (out of bounds, on
// a wall, on the end cell, or with a start already placed) are no-ops,
// not errors. Rejected while running.
func (s *Session) PlaceStart(p grid.Pos) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.running {
		return ErrRunActive
	}
	if !s.g.InBounds(p) || s.g.IsWall(p) || s.start != nil || (s.end != nil && *s.end == p) {
		return nil
	}
	q := p
	s.start = &q
	return nil
}

// PlaceEnd mirrors PlaceStart for the end role.
func (s *Session) PlaceEnd(p grid.Pos) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.running {
		return ErrRunActive
	}
	if !s.g.InBounds(p) || s.g.IsWall(p) || s.end != nil || (s.start != nil && *s.start == p) {
		return nil
	}
	q := p
	s.end = &q
	return nil
}

// RemoveRole clears whichever role sits at p, if any.
func (s *Session) RemoveRole(p grid.Pos) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.running {
		return ErrRunActive
	}
	if s.start != nil && *s.start == p {
		s.start = nil
	}
	if s.end != nil && *s.end == p {
		s.end = nil
	}
	return nil
}

// SetWall toggles a wall. Role cells and out-of-bounds positions are
// no-ops; border cells are kept walls by the grid itself.
func (s *Session) SetWall(p grid.Pos, wall bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.running {
		return ErrRunActive
	}
	if !s.g.InBounds(p) {
		return nil
	}
	if (s.start != nil && *s.start == p) || (s.end != nil && *s.end == p) {
		return nil
	}
	s.g.SetWall(p, wall)
	return nil
}

// SetWallDensity clamps into [0, MaxWallDensity]; takes effect on the
// next scatter.
func (s *Session) SetWallDensity(d float64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.running {
		return ErrRunActive
	}
	if d < 0 {
		d = 0
	}
	if d > MaxWallDensity {
		d = MaxWallDensity
	}
	s.density = d
	return nil
}

// Scatter redraws random interior walls at the current density. Role
// cells are carved back open so the start/end never end up inside a
// wall.
func (s *Session) Scatter() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.running {
		return ErrRunActive
	}
	s.g.Scatter(s.rng, s.density)
	if s.start != nil {
		s.g.SetWall(*s.start, false)
	}
	if s.end != nil {
		s.g.SetWall(*s.end, false)
	}
	return nil
}

// RequestClear wipes roles and walls, then rescatters, matching the
// classic clear-all behavior.
func (s *Session) RequestClear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.running {
		return ErrRunActive
	}
	s.start = nil
	s.end = nil
	s.g.ClearAll()
	s.g.Scatter(s.rng, s.density)
	return nil
}

// Snapshot returns the stamped board for rendering. Only valid outside a
// run; during one, consumers get pushed snapshots instead.
func (s *Session) Snapshot() grid.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stampedSnapshot()
}

// stampedSnapshot must be called with s.mu held or from the run worker.
func (s *Session) stampedSnapshot() grid.Snapshot {
	snap := s.g.Snapshot()
	if s.start != nil {
		snap.Stamp(*s.start, grid.Start)
	}
	if s.end != nil {
		snap.Stamp(*s.end, grid.End)
	}
	return snap
}

// RequestRun starts one algorithm by name, or the full comparison with
// "all", on a dedicated goroutine so input handling stays responsive.
// Precondition failures (missing endpoints) are surfaced as errors, not
// silent no-ops, so the UI can show a notice.
func (s *Session) RequestRun(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.running {
		return ErrRunActive
	}
	if s.start == nil || s.end == nil {
		return ErrEndpointsUnset
	}

	var strategies []search.Strategy
	if name == "all" {
		strategies = s.registry.All()
	} else {
		strat, err := s.registry.Get(name)
		if err != nil {
			return err
		}
		strategies = []search.Strategy{strat}
	}

	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel
	s.running = true
	start, end := *s.start, *s.end

	go s.runSequence(ctx, strategies, start, end)
	return nil
}

// Cancel aborts the active comparison, if any. Grid visitation state is
// left where the search stopped; the next reset or clear wipes it.
func (s *Session) Cancel() {
	s.mu.Lock()
	cancel := s.cancel
	s.mu.Unlock()
	if cancel != nil {
		cancel()
	}
}

func (s *Session) runSequence(ctx context.Context, strategies []search.Strategy, start, end grid.Pos) {
	defer func() {
		s.mu.Lock()
		s.running = false
		s.cancel = nil
		s.mu.Unlock()
	}()

	var publish func(grid.Snapshot)
	if s.consumer != nil {
		publish = func(snap grid.Snapshot) {
			snap.Stamp(start, grid.Start)
			snap.Stamp(end, grid.End)
			s.consumer.OnSnapshot(snap)
		}
	}

	recorder := results.NewRecorder()
	for i, strat := range strategies {
		// Fresh visitation state per run so nothing leaks between
		// algorithms. Walls and roles survive.
		s.g.Reset()

		d := driver.New(s.g, s.pacer, publish)
		res, err := d.Run(ctx, strat, start, end)
		if err != nil {
			// Partial results of the interrupted algorithm are
			// discarded; completed ones were already delivered.
			if s.consumer != nil {
				s.consumer.OnCancelled()
			}
			return
		}

		recorder.Add(res.Algorithm, res.PathLength, res.Elapsed)
		if s.consumer != nil {
			s.consumer.OnResult(res)
		}

		if i < len(strategies)-1 {
			t := time.NewTimer(s.interPause)
			select {
			case <-ctx.Done():
				t.Stop()
				if s.consumer != nil {
					s.consumer.OnCancelled()
				}
				return
			case <-t.C:
			}
		}
	}

	best, ok := recorder.Best()
	if s.consumer != nil {
		s.consumer.OnComparison(recorder.Results(), best, ok)
	}
}
