// Package config loads board and animation settings from YAML and ships
// a handful of named presets.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/pathlab/internal/grid"
)

const (
	DefaultRows        = 30
	DefaultWallDensity = 0.35
	DefaultExpandDelay = 10  // milliseconds per frontier step
	DefaultTraceDelay  = 20  // milliseconds per path step
	DefaultRunPause    = 300 // milliseconds between comparison runs
)

type Config struct {
	Rows          int      `yaml:"rows"`
	WallDensity   float64  `yaml:"wall_density"`
	Seed          int64    `yaml:"seed"`
	ExpandDelayMS int      `yaml:"expand_delay_ms"`
	TraceDelayMS  int      `yaml:"trace_delay_ms"`
	RunPauseMS    int      `yaml:"run_pause_ms"`
	Start         *CellRef `yaml:"start,omitempty"`
	End           *CellRef `yaml:"end,omitempty"`
	// Maze, when set, overrides Rows/WallDensity with an explicit ASCII
	// board ('#' wall, '.' open, optional 'S'/'E').
	Maze []string `yaml:"maze,omitempty"`
}

type CellRef struct {
	Row int `yaml:"row"`
	Col int `yaml:"col"`
}

func (c *CellRef) Pos() grid.Pos { return grid.Pos{Row: c.Row, Col: c.Col} }

func DefaultConfig() *Config {
	return &Config{
		Rows:          DefaultRows,
		WallDensity:   DefaultWallDensity,
		ExpandDelayMS: DefaultExpandDelay,
		TraceDelayMS:  DefaultTraceDelay,
		RunPauseMS:    DefaultRunPause,
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) Validate() error {
	if len(c.Maze) == 0 && c.Rows < grid.MinRows {
		return fmt.Errorf("config: rows must be at least %d, got %d", grid.MinRows, c.Rows)
	}
	if c.WallDensity < 0 || c.WallDensity > 1 {
		return fmt.Errorf("config: wall_density must be in [0,1], got %g", c.WallDensity)
	}
	if c.ExpandDelayMS < 0 || c.TraceDelayMS < 0 || c.RunPauseMS < 0 {
		return fmt.Errorf("config: delays must be non-negative")
	}
	return nil
}

// Board materializes the configured grid plus any start/end roles, from
// the explicit maze when present, otherwise a blank bordered board (the
// caller scatters walls itself so it controls the RNG).
func (c *Config) Board() (*grid.Grid, *grid.Pos, *grid.Pos, error) {
	if len(c.Maze) > 0 {
		return grid.Decode(c.Maze)
	}
	g, err := grid.New(c.Rows)
	if err != nil {
		return nil, nil, nil, err
	}
	var start, end *grid.Pos
	if c.Start != nil {
		p := c.Start.Pos()
		if !g.InBounds(p) || g.IsWall(p) {
			return nil, nil, nil, fmt.Errorf("config: invalid start %s", p)
		}
		start = &p
	}
	if c.End != nil {
		p := c.End.Pos()
		if !g.InBounds(p) || g.IsWall(p) {
			return nil, nil, nil, fmt.Errorf("config: invalid end %s", p)
		}
		end = &p
	}
	if start != nil && end != nil && *start == *end {
		return nil, nil, nil, fmt.Errorf("config: start and end are both %s", *start)
	}
	return g, start, end, nil
}
