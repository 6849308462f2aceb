package grid

import (
	"fmt"
	"strings"
)

// ASCII maze format: one line per row, '#' for walls, '.' for open cells,
// optional 'S' and 'E' for the start and end roles. Used by config files
// and the corridor presets.

// Decode parses an ASCII maze. The maze must be square and at least
// MinRows wide; border cells are forced to walls regardless of input.
// Start and end positions are returned when present (nil otherwise).
func Decode(lines []string) (*Grid, *Pos, *Pos, error) {
	rows := len(lines)
	g, err := New(rows)
	if err != nil {
		return nil, nil, nil, err
	}

	var start, end *Pos
	for r, line := range lines {
		line = strings.TrimRight(line, "\r\n")
		if len(line) != rows {
			return nil, nil, nil, fmt.Errorf("grid: row %d has %d cells, want %d", r, len(line), rows)
		}
		for c, ch := range line {
			p := Pos{Row: r, Col: c}
			switch ch {
			case '#':
				g.SetWall(p, true)
			case '.':
			case 'S':
				if start != nil {
					return nil, nil, nil, fmt.Errorf("grid: duplicate start at %s", p)
				}
				q := p
				start = &q
			case 'E':
				if end != nil {
					return nil, nil, nil, fmt.Errorf("grid: duplicate end at %s", p)
				}
				q := p
				end = &q
			default:
				return nil, nil, nil, fmt.Errorf("grid: unknown cell %q at %s", ch, p)
			}
		}
	}

	if start != nil && g.IsWall(*start) {
		return nil, nil, nil, fmt.Errorf("grid: start %s is a wall", *start)
	}
	if end != nil && g.IsWall(*end) {
		return nil, nil, nil, fmt.Errorf("grid: end %s is a wall", *end)
	}
	if start != nil && end != nil && *start == *end {
		return nil, nil, nil, fmt.Errorf("grid: start and end are both %s", *start)
	}
	return g, start, end, nil
}

// Encode renders walls and roles back to the ASCII format. Visitation
// state is not encoded; Decode(Encode(g)) reproduces walls only.
func Encode(g *Grid, start, end *Pos) []string {
	lines := make([]string, g.rows)
	var b strings.Builder
	for r := 0; r < g.rows; r++ {
		b.Reset()
		for c := 0; c < g.rows; c++ {
			p := Pos{Row: r, Col: c}
			switch {
			case start != nil && p == *start:
				b.WriteByte('S')
			case end != nil && p == *end:
				b.WriteByte('E')
			case g.IsWall(p):
				b.WriteByte('#')
			default:
				b.WriteByte('.')
			}
		}
		lines[r] = b.String()
	}
	return lines
}
