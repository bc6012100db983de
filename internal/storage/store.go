// Package storage persists evaluation runs as a metadata.json plus an
// accelerations.csv per run directory.
package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/mwerner/sphpair/internal/vecmath"
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

type RunMetadata struct {
	ID          string             `json:"id"`
	Timestamp   time.Time          `json:"timestamp"`
	Formulation string             `json:"formulation"`
	Particles   int                `json:"particles"`
	Pairs       int                `json:"pairs"`
	Workers     int                `json:"workers"`
	Metrics     map[string]float64 `json:"metrics"`
}

// Save writes one evaluation run and returns its id.
func (s *Store) Save(formulation string, numPairs, workers int,
	acc []vecmath.Vec, metrics map[string]float64) (string, error) {
	runID := fmt.Sprintf("%s_%d", formulation, time.Now().Unix())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:          runID,
		Timestamp:   time.Now(),
		Formulation: formulation,
		Particles:   len(acc),
		Pairs:       numPairs,
		Workers:     workers,
		Metrics:     metrics,
	}

	metaPath := filepath.Join(runDir, "metadata.json")
	metaFile, err := os.Create(metaPath)
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	csvPath := filepath.Join(runDir, "accelerations.csv")
	csvFile, err := os.Create(csvPath)
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	defer w.Flush()

	if err := w.Write([]string{"particle", "ax", "ay", "az", "mag"}); err != nil {
		return "", err
	}

	for i, a := range acc {
		row := []string{
			strconv.Itoa(i),
			strconv.FormatFloat(a[0], 'g', -1, 64),
			strconv.FormatFloat(a[1], 'g', -1, 64),
			strconv.FormatFloat(a[2], 'g', -1, 64),
			strconv.FormatFloat(a.Norm(), 'g', -1, 64),
		}
		if err := w.Write(row); err != nil {
			return "", err
		}
	}

	return runID, nil
}

func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RunMetadata{}, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		metaPath := filepath.Join(s.baseDir, entry.Name(), "metadata.json")
		data, err := os.ReadFile(metaPath)
		if err != nil {
			continue
		}

		var meta RunMetadata
		if err := json.Unmarshal(data, &meta); err != nil {
			continue
		}

		runs = append(runs, meta)
	}

	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	metaPath := filepath.Join(s.baseDir, runID, "metadata.json")
	data, err := os.ReadFile(metaPath)
	if err != nil {
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}

	return &meta, nil
}

// LoadAccelerations reads back a run's acceleration field.
func (s *Store) LoadAccelerations(runID string) ([]vecmath.Vec, error) {
	csvPath := filepath.Join(s.baseDir, runID, "accelerations.csv")
	file, err := os.Open(csvPath)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}

	acc := make([]vecmath.Vec, 0, len(records))
	for i, rec := range records {
		if i == 0 || len(rec) < 4 {
			continue
		}
		var a vecmath.Vec
		for k := 0; k < 3; k++ {
			v, err := strconv.ParseFloat(rec[k+1], 64)
			if err != nil {
				return nil, fmt.Errorf("row %d: %w", i, err)
			}
			a[k] = v
		}
		acc = append(acc, a)
	}

	return acc, nil
}
