package config

import "sort"

// Presets are ready-made boards and densities for quick experiments.
var Presets = map[string]*Config{
	"open": {
		Rows: 30, WallDensity: 0,
		ExpandDelayMS: DefaultExpandDelay, TraceDelayMS: DefaultTraceDelay, RunPauseMS: DefaultRunPause,
		Start: &CellRef{Row: 1, Col: 1}, End: &CellRef{Row: 28, Col: 28},
	},
	"sparse": {
		Rows: 30, WallDensity: 0.2, Seed: 7,
		ExpandDelayMS: DefaultExpandDelay, TraceDelayMS: DefaultTraceDelay, RunPauseMS: DefaultRunPause,
	},
	"classic": {
		Rows: 30, WallDensity: DefaultWallDensity, Seed: 42,
		ExpandDelayMS: DefaultExpandDelay, TraceDelayMS: DefaultTraceDelay, RunPauseMS: DefaultRunPause,
	},
	"dense": {
		Rows: 30, WallDensity: 0.5, Seed: 42,
		ExpandDelayMS: DefaultExpandDelay, TraceDelayMS: DefaultTraceDelay, RunPauseMS: DefaultRunPause,
	},
	// A fixed corridor maze where DFS's winding paths show clearly.
	"corridor": {
		ExpandDelayMS: DefaultExpandDelay, TraceDelayMS: DefaultTraceDelay, RunPauseMS: DefaultRunPause,
		Maze: []string{
			"###########",
			"#S..#.....#",
			"#.#.#.###.#",
			"#.#.#...#.#",
			"#.#.###.#.#",
			"#.#.....#.#",
			"#.###.#.#.#",
			"#...#.#.#.#",
			"###.#.#.#.#",
			"#.....#..E#",
			"###########",
		},
	},
}

// GetPreset returns nil when the name is unknown.
func GetPreset(name string) *Config {
	return Presets[name]
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
