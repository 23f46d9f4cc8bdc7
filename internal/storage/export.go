package storage

import (
	"encoding/json"
	"io"

	"github.com/san-kum/maptrack/internal/dynamo"
)

type ExportData struct {
	ID         string             `json:"id"`
	Model      string             `json:"model"`
	Integrator string             `json:"integrator,omitempty"`
	Params     map[string]float64 `json:"params"`
	Steps      int                `json:"steps"`
	Theta      []float64          `json:"theta"`
	P          []float64          `json:"p"`
	Metrics    map[string]float64 `json:"metrics,omitempty"`
}

// ExportJSON writes a stored run and its samples as indented JSON.
func ExportJSON(w io.Writer, meta *RunMetadata, traj dynamo.Trajectory) error {
	data := ExportData{
		ID:         meta.ID,
		Model:      meta.Model,
		Integrator: meta.Integrator,
		Params:     meta.Params,
		Steps:      traj.Len(),
		Theta:      traj.Theta,
		P:          traj.P,
		Metrics:    meta.Metrics,
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}
