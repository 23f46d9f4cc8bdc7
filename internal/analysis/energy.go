package analysis

import (
	"github.com/san-kum/maptrack/internal/dynamo"
	"github.com/san-kum/maptrack/internal/physics"
)

// EnergySeries evaluates the pendulum energy proxy at every sample.
func EnergySeries(traj dynamo.Trajectory, w float64) []float64 {
	out := make([]float64, traj.Len())
	for i := range out {
		out[i] = physics.PendulumEnergy(traj.Theta[i], traj.P[i], w)
	}
	return out
}

// DriftTrend fits ys[i] ≈ intercept + slope·i by least squares. A slope that is
// large compared to the spread of ys indicates secular drift rather than
// bounded oscillation.
func DriftTrend(ys []float64) (slope, intercept float64) {
	n := float64(len(ys))
	switch len(ys) {
	case 0:
		return 0, 0
	case 1:
		return 0, ys[0]
	}

	var sumX, sumY, sumXY, sumXX float64
	for i, y := range ys {
		x := float64(i)
		sumX += x
		sumY += y
		sumXY += x * y
		sumXX += x * x
	}

	slope = (n*sumXY - sumX*sumY) / (n*sumXX - sumX*sumX)
	intercept = (sumY - slope*sumX) / n
	return slope, intercept
}
