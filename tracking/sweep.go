package tracking

import (
	"context"
	"fmt"

	"github.com/san-kum/maptrack/internal/dynamo"
)

// Linspace returns num evenly spaced values over [start, stop], endpoint
// included. num <= 0 yields an empty slice and num == 1 yields [start].
func Linspace(start, stop float64, num int) []float64 {
	if num <= 0 {
		return []float64{}
	}
	out := make([]float64, num)
	if num == 1 {
		out[0] = start
		return out
	}

	step := (stop - start) / float64(num-1)
	for i := range out {
		out[i] = start + float64(i)*step
	}
	out[num-1] = stop
	return out
}

// SweepConfig describes a family of standard-map orbits that share p0 and k
// and differ in their initial angle.
type SweepConfig struct {
	Thetas     []float64
	P0         float64
	K          float64
	Iterations int
	Workers    int
}

// Sweep runs StandardMapTracking once per initial angle. The result is
// ordered like cfg.Thetas. Orbits are independent and computed in parallel
// with at most cfg.Workers goroutines.
func Sweep(ctx context.Context, cfg SweepConfig) ([]dynamo.Trajectory, error) {
	if err := dynamo.CheckCount("iterations", cfg.Iterations); err != nil {
		return nil, fmt.Errorf("sweep: %w", err)
	}

	out := make([]dynamo.Trajectory, len(cfg.Thetas))
	err := dynamo.ParallelFor(ctx, len(cfg.Thetas), cfg.Workers, func(_ context.Context, i int) error {
		theta, p := StandardMapTracking(cfg.Thetas[i], cfg.P0, cfg.K, cfg.Iterations)
		out[i] = dynamo.Trajectory{Theta: theta, P: p}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("sweep: %w", err)
	}
	return out, nil
}
