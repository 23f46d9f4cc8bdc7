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

	"github.com/san-kum/maptrack/internal/dynamo"
)

const (
	metadataFile   = "metadata.json"
	trajectoryFile = "trajectory.csv"
	sweepFile      = "sweep.csv"

	KindRun   = "run"
	KindSweep = "sweep"
)

type Store struct {
	baseDir string
	now     func() time.Time
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir, now: time.Now}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type RunMetadata struct {
	ID         string             `json:"id"`
	Kind       string             `json:"kind"`
	Model      string             `json:"model"`
	Integrator string             `json:"integrator,omitempty"`
	Timestamp  time.Time          `json:"timestamp"`
	Iterations int                `json:"iterations"`
	Conditions int                `json:"conditions,omitempty"`
	Initial    dynamo.Point       `json:"initial"`
	Params     map[string]float64 `json:"params"`
	Metrics    map[string]float64 `json:"metrics,omitempty"`
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// writeRun creates the run directory, writes the data file, then the
// metadata. A run without metadata is never listed, and a failed write
// removes the directory.
func (s *Store) writeRun(meta *RunMetadata, kind, dataFile string, rows [][]string) (err error) {
	now := s.now()
	meta.ID = fmt.Sprintf("%s_%d", meta.Model, now.UnixNano())
	meta.Kind = kind
	meta.Timestamp = now

	runDir := filepath.Join(s.baseDir, meta.ID)
	if err := os.MkdirAll(runDir, 0755); err != nil {
		return err
	}
	defer func() {
		if err != nil {
			os.RemoveAll(runDir)
		}
	}()

	if err := writeCSV(filepath.Join(runDir, dataFile), rows); err != nil {
		return err
	}
	return s.writeMetadata(runDir, meta)
}

func writeCSV(path string, rows [][]string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	w := csv.NewWriter(f)
	if err := w.WriteAll(rows); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func (s *Store) writeMetadata(runDir string, meta *RunMetadata) error {
	metaFile, err := os.Create(filepath.Join(runDir, metadataFile))
	if err != nil {
		return err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	return enc.Encode(meta)
}

// Save stores one trajectory and returns the generated run id. ID, Kind
// and Timestamp of meta are filled in.
func (s *Store) Save(meta RunMetadata, traj dynamo.Trajectory) (string, error) {
	if err := traj.Validate(); err != nil {
		return "", err
	}
	meta.Iterations = traj.Len()

	rows := make([][]string, 0, traj.Len()+1)
	rows = append(rows, []string{"step", "theta", "p"})
	for i := 0; i < traj.Len(); i++ {
		rows = append(rows, []string{strconv.Itoa(i), formatFloat(traj.Theta[i]), formatFloat(traj.P[i])})
	}

	if err := s.writeRun(&meta, KindRun, trajectoryFile, rows); err != nil {
		return "", err
	}
	return meta.ID, nil
}

// SaveSweep stores a family of orbits as one CSV row per initial condition,
// each row holding theta0,p0,theta1,p1,... .
func (s *Store) SaveSweep(meta RunMetadata, trajs []dynamo.Trajectory) (string, error) {
	meta.Conditions = len(trajs)
	if len(trajs) > 0 {
		meta.Iterations = trajs[0].Len()
	}
	for i, traj := range trajs {
		if traj.Len() != meta.Iterations {
			return "", fmt.Errorf("condition %d: %w", i, dynamo.ErrLengthMismatch)
		}
	}

	rows := make([][]string, 0, len(trajs))
	for _, traj := range trajs {
		row := make([]string, 0, 2*traj.Len())
		for i := 0; i < traj.Len(); i++ {
			row = append(row, formatFloat(traj.Theta[i]), formatFloat(traj.P[i]))
		}
		rows = append(rows, row)
	}

	if err := s.writeRun(&meta, KindSweep, sweepFile, rows); err != nil {
		return "", err
	}
	return meta.ID, nil
}

// List returns the metadata of every stored run, oldest first.
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

	sort.Slice(runs, func(i, j int) bool {
		return runs[i].Timestamp.Before(runs[j].Timestamp)
	})
	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, metadataFile))
	if err != nil {
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, fmt.Errorf("run %s: %w", runID, err)
	}

	return &meta, nil
}

func (s *Store) readCSV(runID, name string) ([][]string, error) {
	file, err := os.Open(filepath.Join(s.baseDir, runID, name))
	if err != nil {
		return nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	r.FieldsPerRecord = -1
	return r.ReadAll()
}

func parseFloat(runID string, row, col int, field string) (float64, error) {
	v, err := strconv.ParseFloat(field, 64)
	if err != nil {
		return 0, fmt.Errorf("run %s: row %d col %d: %w", runID, row, col, err)
	}
	return v, nil
}

// LoadTrajectory reads back the trajectory written by Save.
func (s *Store) LoadTrajectory(runID string) (dynamo.Trajectory, error) {
	records, err := s.readCSV(runID, trajectoryFile)
	if err != nil {
		return dynamo.Trajectory{}, err
	}
	if len(records) < 2 {
		return dynamo.NewTrajectory(0), nil
	}

	traj := dynamo.NewTrajectory(len(records) - 1)
	for i, record := range records[1:] {
		if len(record) != 3 {
			return dynamo.Trajectory{}, fmt.Errorf("run %s: row %d has %d fields", runID, i+1, len(record))
		}
		if traj.Theta[i], err = parseFloat(runID, i+1, 1, record[1]); err != nil {
			return dynamo.Trajectory{}, err
		}
		if traj.P[i], err = parseFloat(runID, i+1, 2, record[2]); err != nil {
			return dynamo.Trajectory{}, err
		}
	}

	return traj, nil
}

// LoadSweep reads back the orbits written by SaveSweep.
func (s *Store) LoadSweep(runID string) ([]dynamo.Trajectory, error) {
	meta, err := s.Load(runID)
	if err != nil {
		return nil, err
	}
	records, err := s.readCSV(runID, sweepFile)
	if err != nil {
		return nil, err
	}

	// empty rows are skipped by the reader
	if len(records) == 0 && meta.Iterations == 0 {
		trajs := make([]dynamo.Trajectory, meta.Conditions)
		for i := range trajs {
			trajs[i] = dynamo.NewTrajectory(0)
		}
		return trajs, nil
	}
	if len(records) != meta.Conditions {
		return nil, fmt.Errorf("run %s: %d rows for %d conditions: %w", runID, len(records), meta.Conditions, dynamo.ErrLengthMismatch)
	}

	trajs := make([]dynamo.Trajectory, len(records))
	for i, record := range records {
		if len(record)%2 != 0 {
			return nil, fmt.Errorf("run %s: row %d: %w", runID, i, dynamo.ErrLengthMismatch)
		}
		traj := dynamo.NewTrajectory(len(record) / 2)
		for j := 0; j < traj.Len(); j++ {
			if traj.Theta[j], err = parseFloat(runID, i, 2*j, record[2*j]); err != nil {
				return nil, err
			}
			if traj.P[j], err = parseFloat(runID, i, 2*j+1, record[2*j+1]); err != nil {
				return nil, err
			}
		}
		trajs[i] = traj
	}

	return trajs, nil
}
