// Package storage persists simulation runs: one directory per run with
// a metadata.json and one CSV of states per particle.
package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/san-kum/geodesim/internal/geodesic"
)

var csvHeader = []string{"t", "r", "phi", "u_t", "u_r", "u_phi"}

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
	ID         string    `json:"id"`
	Timestamp  time.Time `json:"timestamp"`
	MassSolar  float64   `json:"mass_solar"`
	Spin       float64   `json:"spin"`
	Rs         float64   `json:"schwarzschild_radius_m"`
	Particles  int       `json:"particles"`
	Seed       int64     `json:"seed"`
	Steps      int       `json:"steps"`
	StepSize   float64   `json:"step_size"`
	Integrator string    `json:"integrator"`
	Outcomes   []string  `json:"outcomes"`
	Lengths    []int     `json:"lengths"`
}

// Save writes a run directory and returns its ID. Outcomes and state
// counts are summarized in the metadata so listings don't need to read
// the CSVs.
func (s *Store) Save(meta RunMetadata, trajs []*geodesic.Trajectory) (string, error) {
	runID := fmt.Sprintf("bh%.0f_%d", meta.MassSolar, time.Now().Unix())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta.ID = runID
	meta.Timestamp = time.Now()
	meta.Particles = len(trajs)
	meta.Outcomes = make([]string, len(trajs))
	meta.Lengths = make([]int, len(trajs))
	for i, traj := range trajs {
		meta.Outcomes[i] = traj.Outcome.String()
		meta.Lengths[i] = traj.Len()
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

	for i, traj := range trajs {
		if err := s.writeTrajectory(runDir, i, traj); err != nil {
			return "", err
		}
	}

	return runID, nil
}

func (s *Store) writeTrajectory(runDir string, particle int, traj *geodesic.Trajectory) error {
	path := filepath.Join(runDir, fmt.Sprintf("particle_%02d.csv", particle))
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	w := csv.NewWriter(file)
	defer w.Flush()

	if err := w.Write(csvHeader); err != nil {
		return err
	}
	row := make([]string, geodesic.StateDim)
	for _, state := range traj.States {
		for j, v := range state {
			row[j] = strconv.FormatFloat(v, 'g', 17, 64)
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return w.Error()
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
		meta, err := s.Load(entry.Name())
		if err != nil {
			continue
		}
		runs = append(runs, *meta)
	}
	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, "metadata.json"))
	if err != nil {
		return nil, err
	}
	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}
	return &meta, nil
}

// LoadTrajectory reads back one particle's state sequence. The stored
// outcome is restored from the run metadata.
func (s *Store) LoadTrajectory(runID string, particle int) (*geodesic.Trajectory, error) {
	meta, err := s.Load(runID)
	if err != nil {
		return nil, err
	}
	if particle < 0 || particle >= len(meta.Outcomes) {
		return nil, fmt.Errorf("storage: run %s has no particle %d", runID, particle)
	}

	path := filepath.Join(s.baseDir, runID, fmt.Sprintf("particle_%02d.csv", particle))
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) < 1 {
		return nil, fmt.Errorf("storage: empty trajectory file %s", path)
	}

	traj := &geodesic.Trajectory{
		States:  make([]geodesic.State, 0, len(records)-1),
		Outcome: parseOutcome(meta.Outcomes[particle]),
	}
	for _, rec := range records[1:] {
		if len(rec) != geodesic.StateDim {
			return nil, fmt.Errorf("storage: bad row width %d in %s", len(rec), path)
		}
		state := make(geodesic.State, geodesic.StateDim)
		for j, field := range rec {
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, fmt.Errorf("storage: parsing %s: %w", path, err)
			}
			state[j] = v
		}
		traj.States = append(traj.States, state)
	}
	return traj, nil
}

func parseOutcome(s string) geodesic.Outcome {
	switch s {
	case "captured":
		return geodesic.Captured
	case "escaped":
		return geodesic.Escaped
	default:
		return geodesic.BudgetExhausted
	}
}
