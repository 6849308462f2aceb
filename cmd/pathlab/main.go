package main

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/san-kum/pathlab/internal/config"
	"github.com/san-kum/pathlab/internal/driver"
	"github.com/san-kum/pathlab/internal/grid"
	"github.com/san-kum/pathlab/internal/results"
	"github.com/san-kum/pathlab/internal/search"
	"github.com/san-kum/pathlab/internal/session"
	"github.com/san-kum/pathlab/internal/storage"
	"github.com/san-kum/pathlab/internal/tui"
	"github.com/san-kum/pathlab/internal/viz"
)

var (
	dataDir     string
	rows        int
	density     float64
	seed        int64
	configFile  string
	preset      string
	expandDelay int
	traceDelay  int
)

// main registers commands and flags; with no subcommand it launches the
// interactive board editor.
func main() {
	rootCmd := &cobra.Command{
		Use:   "pathlab",
		Short: "grid pathfinding visualizer and comparator",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInteractive(cmd)
		},
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".pathlab", "data directory")
	rootCmd.PersistentFlags().IntVar(&rows, "rows", config.DefaultRows, "grid size (rows x rows)")
	rootCmd.PersistentFlags().Float64Var(&density, "density", config.DefaultWallDensity, "random wall density")
	rootCmd.PersistentFlags().Int64Var(&seed, "seed", 0, "random seed (0 = time-based)")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&preset, "preset", "", "use preset board")

	runCmd := &cobra.Command{
		Use:   "run [algorithm]",
		Short: "run one algorithm headless",
		Args:  cobra.ExactArgs(1),
		RunE:  runOne,
	}
	runCmd.Flags().IntVar(&expandDelay, "delay", 0, "animation delay per expansion (ms)")
	runCmd.Flags().IntVar(&traceDelay, "trace-delay", 0, "animation delay per path step (ms)")

	compareCmd := &cobra.Command{
		Use:   "compare",
		Short: "run A*, BFS and DFS on the same board and rank them",
		RunE:  runCompare,
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list stored comparisons",
		RunE:  listComparisons,
	}

	showCmd := &cobra.Command{
		Use:   "show [id]",
		Short: "show a stored comparison with frontier charts",
		Args:  cobra.ExactArgs(1),
		RunE:  showComparison,
	}

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [id]",
		Short: "export a stored comparison to JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			meta, err := storage.New(dataDir).Load(args[0])
			if err != nil {
				return err
			}
			return storage.ExportJSONStdout(meta)
		},
	}

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [id]",
		Short: "export a stored comparison to CSV",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			meta, err := storage.New(dataDir).Load(args[0])
			if err != nil {
				return err
			}
			return storage.ExportCSVStdout(meta)
		},
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available board presets",
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range config.ListPresets() {
				fmt.Println(name)
			}
		},
	}

	benchCmd := &cobra.Command{
		Use:   "bench",
		Short: "benchmark the algorithms across board sizes",
		RunE:  runBench,
	}

	rootCmd.AddCommand(runCmd, compareCmd, listCmd, showCmd, exportJSONCmd, exportCSVCmd, presetsCmd, benchCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadConfig folds preset, config file and CLI flags, flags winning.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		cfg = p
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	if cmd.Flags().Changed("rows") {
		cfg.Rows = rows
	}
	if cmd.Flags().Changed("density") {
		cfg.WallDensity = density
	}
	if cmd.Flags().Changed("seed") {
		cfg.Seed = seed
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// buildBoard materializes the configured grid, scattering walls when no
// explicit maze is given, and fills in default corner roles so headless
// commands always have endpoints.
func buildBoard(cfg *config.Config) (*grid.Grid, grid.Pos, grid.Pos, error) {
	g, startRef, endRef, err := cfg.Board()
	if err != nil {
		return nil, grid.Pos{}, grid.Pos{}, err
	}

	if len(cfg.Maze) == 0 {
		s := cfg.Seed
		if s == 0 {
			s = time.Now().UnixNano()
		}
		g.Scatter(rand.New(rand.NewSource(s)), cfg.WallDensity)
	}

	start := grid.Pos{Row: 1, Col: 1}
	if startRef != nil {
		start = *startRef
	}
	end := grid.Pos{Row: g.Rows() - 2, Col: g.Rows() - 2}
	if endRef != nil {
		end = *endRef
	}
	if start == end {
		return nil, grid.Pos{}, grid.Pos{}, fmt.Errorf("start and end are both %s", start)
	}
	// Roles must never sit inside walls; carve them open.
	g.SetWall(start, false)
	g.SetWall(end, false)
	return g, start, end, nil
}

func pacerFromFlags() driver.Pacer {
	if expandDelay <= 0 && traceDelay <= 0 {
		return driver.NopPacer{}
	}
	return driver.SleepPacer{
		Expand: time.Duration(expandDelay) * time.Millisecond,
		Trace:  time.Duration(traceDelay) * time.Millisecond,
	}
}

func runInteractive(cmd *cobra.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	sess, err := session.New(session.Options{
		Rows:        cfg.Rows,
		WallDensity: cfg.WallDensity,
		Seed:        cfg.Seed,
		Pacer: driver.SleepPacer{
			Expand: time.Duration(cfg.ExpandDelayMS) * time.Millisecond,
			Trace:  time.Duration(cfg.TraceDelayMS) * time.Millisecond,
		},
		InterPause: time.Duration(cfg.RunPauseMS) * time.Millisecond,
	})
	if err != nil {
		return err
	}

	if len(cfg.Maze) > 0 {
		g, start, end, err := cfg.Board()
		if err != nil {
			return err
		}
		if err := sess.UseGrid(g, start, end); err != nil {
			return err
		}
	}

	return tui.Run(sess)
}

// frontierRecorder collects the frontier-size series the show command
// charts later.
type frontierRecorder struct {
	series []float64
}

func (f *frontierRecorder) OnStep(ev search.StepEvent, openCount int) {
	f.series = append(f.series, float64(openCount))
}

func runOne(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	strat, err := search.NewRegistry().Get(args[0])
	if err != nil {
		return err
	}
	g, start, end, err := buildBoard(cfg)
	if err != nil {
		return err
	}

	d := driver.New(g, pacerFromFlags(), nil)
	res, err := d.Run(context.Background(), strat, start, end)
	if err != nil {
		return err
	}

	fmt.Printf("board: %dx%d, start %s, end %s\n", g.Rows(), g.Rows(), start, end)
	fmt.Printf("%s: path %s in %v\n", res.Algorithm, viz.FormatLength(res), res.Elapsed)
	return nil
}

func runCompare(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	g, start, end, err := buildBoard(cfg)
	if err != nil {
		return err
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	recorder := results.NewRecorder()
	frontier := make(map[string][]float64)

	for _, strat := range search.NewRegistry().All() {
		g.Reset()

		rec := &frontierRecorder{}
		d := driver.New(g, driver.NopPacer{}, nil)
		d.AddObserver(rec)

		res, err := d.Run(context.Background(), strat, start, end)
		if err != nil {
			return err
		}
		recorder.Add(res.Algorithm, res.PathLength, res.Elapsed)
		frontier[res.Algorithm] = rec.series
	}

	set := recorder.Results()
	best, ok := recorder.Best()

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ALGO\tPATH\tTIME")
	for _, r := range set {
		fmt.Fprintf(w, "%s\t%s\t%v\n", r.Algorithm, viz.FormatLength(r), r.Elapsed)
	}
	if err := w.Flush(); err != nil {
		return err
	}
	if ok {
		fmt.Printf("\nBEST: %s\n", best.Algorithm)
	} else {
		fmt.Println("\nno algorithm found a path")
	}

	meta := storage.Metadata{
		Rows:        g.Rows(),
		WallDensity: cfg.WallDensity,
		Seed:        cfg.Seed,
		Start:       [2]int{start.Row, start.Col},
		End:         [2]int{end.Row, end.Col},
	}
	if ok {
		meta.Best = best.Algorithm
	}
	id, err := st.Save(meta, set, frontier)
	if err != nil {
		return err
	}
	fmt.Printf("saved: %s\n", id)
	return nil
}

func listComparisons(cmd *cobra.Command, args []string) error {
	runs, err := storage.New(dataDir).List()
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Println("no comparisons found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTIME\tROWS\tDENSITY\tBEST")
	for _, run := range runs {
		best := run.Best
		if best == "" {
			best = "-"
		}
		fmt.Fprintf(w, "%s\t%s\t%d\t%.2f\t%s\n",
			run.ID,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Rows,
			run.WallDensity,
			best,
		)
	}
	return w.Flush()
}

func showComparison(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}

	fmt.Printf("comparison: %s\n", meta.ID)
	fmt.Printf("board: %dx%d, density %.2f, start (%d,%d), end (%d,%d)\n\n",
		meta.Rows, meta.Rows, meta.WallDensity, meta.Start[0], meta.Start[1], meta.End[0], meta.End[1])

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ALGO\tPATH\tTIME(ms)")
	for _, r := range meta.Results {
		length := fmt.Sprintf("%d", r.PathLength)
		if !r.Reachable() {
			length = "no path"
		}
		fmt.Fprintf(w, "%s\t%s\t%.3f\n", r.Algorithm, length, r.ElapsedMS)
	}
	if err := w.Flush(); err != nil {
		return err
	}
	if meta.Best != "" {
		fmt.Printf("\nBEST: %s\n", meta.Best)
	}

	frontier, err := st.LoadFrontier(meta.ID)
	if err != nil {
		return err
	}
	for _, r := range meta.Results {
		if chart := viz.FrontierChart(r.Algorithm, frontier[r.Algorithm]); chart != "" {
			fmt.Println()
			fmt.Println(chart)
		}
	}
	return nil
}

func runBench(cmd *cobra.Command, args []string) error {
	sizes := []int{10, 30, 60, 100}
	registry := search.NewRegistry()

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ROWS\tALGO\tPATH\tSTEPS\tTIME\tSTEPS/SEC")

	for _, size := range sizes {
		for _, strat := range registry.All() {
			g, err := grid.New(size)
			if err != nil {
				return err
			}
			g.Scatter(rand.New(rand.NewSource(42)), 0.3)
			start := grid.Pos{Row: 1, Col: 1}
			end := grid.Pos{Row: size - 2, Col: size - 2}
			g.SetWall(start, false)
			g.SetWall(end, false)

			rec := &frontierRecorder{}
			d := driver.New(g, driver.NopPacer{}, nil)
			d.AddObserver(rec)

			res, err := d.Run(context.Background(), strat, start, end)
			if err != nil {
				return err
			}

			steps := len(rec.series)
			perSec := 0.0
			if res.Elapsed > 0 {
				perSec = float64(steps) / res.Elapsed.Seconds()
			}
			fmt.Fprintf(w, "%d\t%s\t%s\t%d\t%v\t%.0f\n",
				size, res.Algorithm, viz.FormatLength(res), steps, res.Elapsed, perSec)
		}
	}
	return w.Flush()
}
