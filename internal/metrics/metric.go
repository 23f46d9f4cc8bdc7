package metrics

import (
	"math"

	"github.com/san-kum/maptrack/internal/dynamo"
)

// Metric accumulates a scalar summary over the samples of a trajectory.
type Metric interface {
	Name() string
	Observe(x dynamo.Point)
	Value() float64
	Reset()
}

// Evaluate resets each metric, feeds it every sample of traj and collects
// the values by name.
func Evaluate(traj dynamo.Trajectory, ms ...Metric) map[string]float64 {
	out := make(map[string]float64, len(ms))
	for _, m := range ms {
		m.Reset()
	}
	for i := 0; i < traj.Len(); i++ {
		pt := traj.At(i)
		for _, m := range ms {
			m.Observe(pt)
		}
	}
	for _, m := range ms {
		out[m.Name()] = m.Value()
	}
	return out
}

// ForModel returns the default metric set for a model name.
func ForModel(model string, params map[string]float64) []Metric {
	switch model {
	case "pendulum":
		w := params["omega"]
		return []Metric{NewEnergy(w), NewEnergyDrift(w), NewStability(2 * math.Pi)}
	default:
		return []Metric{NewStability(1.0)}
	}
}
