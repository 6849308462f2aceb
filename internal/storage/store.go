// Package storage persists completed comparisons under a data directory,
// one subdirectory per comparison: metadata.json with the ranked results
// and frontier.csv with the frontier-size series used by the show chart.
package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"

	"github.com/san-kum/pathlab/internal/results"
)

type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

// ResultRecord is the JSON shape of one run. Unreachable runs carry
// path_length -1 so the sentinel never leaks into files.
type ResultRecord struct {
	Algorithm  string  `json:"algorithm"`
	PathLength int     `json:"path_length"`
	ElapsedMS  float64 `json:"elapsed_ms"`
}

type Metadata struct {
	ID          string         `json:"id"`
	Timestamp   time.Time      `json:"timestamp"`
	Rows        int            `json:"rows"`
	WallDensity float64        `json:"wall_density"`
	Seed        int64          `json:"seed"`
	Start       [2]int         `json:"start"`
	End         [2]int         `json:"end"`
	Best        string         `json:"best,omitempty"`
	Results     []ResultRecord `json:"results"`
}

func toRecord(r results.Result) ResultRecord {
	length := r.PathLength
	if !r.Reachable() {
		length = -1
	}
	return ResultRecord{
		Algorithm:  r.Algorithm,
		PathLength: length,
		ElapsedMS:  float64(r.Elapsed.Microseconds()) / 1000,
	}
}

// Reachable reports whether the stored run found a path.
func (r ResultRecord) Reachable() bool { return r.PathLength >= 0 }

// Save writes one comparison. frontier maps algorithm name to its
// frontier-size-per-step series and may be nil.
func (s *Store) Save(meta Metadata, set []results.Result, frontier map[string][]float64) (string, error) {
	meta.ID = fmt.Sprintf("compare_%d", time.Now().UnixNano())
	meta.Timestamp = time.Now()
	meta.Results = make([]ResultRecord, len(set))
	for i, r := range set {
		meta.Results[i] = toRecord(r)
	}

	runDir := filepath.Join(s.baseDir, meta.ID)
	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	metaFile, err := os.Create(filepath.Join(runDir, "metadata.json"))
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	if len(frontier) == 0 {
		return meta.ID, nil
	}

	csvFile, err := os.Create(filepath.Join(runDir, "frontier.csv"))
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	defer w.Flush()

	if err := w.Write([]string{"algorithm", "step", "open_count"}); err != nil {
		return "", err
	}
	names := make([]string, 0, len(frontier))
	for name := range frontier {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		for step, open := range frontier[name] {
			row := []string{name, strconv.Itoa(step), strconv.FormatFloat(open, 'f', 0, 64)}
			if err := w.Write(row); err != nil {
				return "", err
			}
		}
	}

	return meta.ID, nil
}

func (s *Store) List() ([]Metadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []Metadata{}, nil
		}
		return nil, err
	}

	runs := make([]Metadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		data, err := os.ReadFile(filepath.Join(s.baseDir, entry.Name(), "metadata.json"))
		if err != nil {
			continue
		}
		var meta Metadata
		if err := json.Unmarshal(data, &meta); err != nil {
			continue
		}
		runs = append(runs, meta)
	}

	return runs, nil
}

func (s *Store) Load(id string) (*Metadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, id, "metadata.json"))
	if err != nil {
		return nil, err
	}
	var meta Metadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}
	return &meta, nil
}

// LoadFrontier reads back the per-algorithm frontier series. Missing
// file means the comparison was saved without one.
func (s *Store) LoadFrontier(id string) (map[string][]float64, error) {
	file, err := os.Open(filepath.Join(s.baseDir, id, "frontier.csv"))
	if err != nil {
		if os.IsNotExist(err) {
			return map[string][]float64{}, nil
		}
		return nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}

	out := make(map[string][]float64)
	for i := 1; i < len(records); i++ {
		rec := records[i]
		if len(rec) != 3 {
			continue
		}
		open, err := strconv.ParseFloat(rec[2], 64)
		if err != nil {
			continue
		}
		out[rec[0]] = append(out[rec[0]], open)
	}
	return out, nil
}

// ExportJSONStdout dumps a stored comparison to stdout.
func ExportJSONStdout(meta *Metadata) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(meta)
}

// ExportCSVStdout dumps the result table of a stored comparison.
func ExportCSVStdout(meta *Metadata) error {
	w := csv.NewWriter(os.Stdout)
	defer w.Flush()
	if err := w.Write([]string{"algorithm", "path_length", "elapsed_ms"}); err != nil {
		return err
	}
	for _, r := range meta.Results {
		length := strconv.Itoa(r.PathLength)
		if !r.Reachable() {
			length = "unreachable"
		}
		row := []string{r.Algorithm, length, strconv.FormatFloat(r.ElapsedMS, 'f', 3, 64)}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return nil
}
