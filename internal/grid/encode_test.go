package grid

import (
	"reflect"
	"testing"
)

func TestDecodeRoundTrip(t *testing.T) {
	lines := []string{
		"#####",
		"#S..#",
		"#.#.#",
		"#..E#",
		"#####",
	}
	g, start, end, err := Decode(lines)
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if start == nil || *start != (Pos{1, 1}) {
		t.Errorf("start: got %v, want (1,1)", start)
	}
	if end == nil || *end != (Pos{3, 3}) {
		t.Errorf("end: got %v, want (3,3)", end)
	}
	if !g.IsWall(Pos{2, 2}) {
		t.Error("interior wall not decoded")
	}

	if got := Encode(g, start, end); !reflect.DeepEqual(got, lines) {
		t.Errorf("round trip:\ngot  %q\nwant %q", got, lines)
	}
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		name  string
		lines []string
	}{
		{"ragged row", []string{"#####", "#S.#", "#.#.#", "#..E#", "#####"}},
		{"unknown cell", []string{"#####", "#S?.#", "#.#.#", "#..E#", "#####"}},
		{"duplicate start", []string{"#####", "#SS.#", "#.#.#", "#..E#", "#####"}},
		{"duplicate end", []string{"#####", "#S..#", "#.#.#", "#EEE#", "#####"}},
		{"too small", []string{"###", "#S#", "###"}},
		{"start on border", []string{"####S", "#...#", "#.#.#", "#..E#", "#####"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, _, _, err := Decode(tt.lines); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}
