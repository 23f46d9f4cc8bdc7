package tracking

import (
	"fmt"

	"github.com/san-kum/maptrack/internal/dynamo"
	"github.com/san-kum/maptrack/internal/integrators"
	"github.com/san-kum/maptrack/internal/physics"
)

func mustCount(n int) {
	if err := dynamo.CheckCount("n", n); err != nil {
		panic(fmt.Sprintf("tracking: %v", err))
	}
}

// PendulumTracking samples n states of the pendulum θ̈ = -w²·sin θ started
// at (theta, thetaDot) and advanced with time step dt.
//
// It panics if n is negative.
func PendulumTracking(theta, thetaDot, w, dt float64, n int) ([]float64, []float64) {
	mustCount(n)

	thetaOut := make([]float64, n)
	thetaDotOut := make([]float64, n)
	x, p := theta, thetaDot

	for i := 0; i < n; i++ {
		thetaOut[i] = x
		thetaDotOut[i] = p
		x, p = integrators.Yoshida4Pendulum(x, p, dt, w)
	}

	return thetaOut, thetaDotOut
}

// StandardMapTracking samples n states of the standard map with kick
// strength k started at (theta, p).
//
// It panics if n is negative.
func StandardMapTracking(theta, p, k float64, n int) ([]float64, []float64) {
	mustCount(n)

	thetaOut := make([]float64, n)
	pOut := make([]float64, n)
	x, y := theta, p

	for i := 0; i < n; i++ {
		thetaOut[i] = x
		pOut[i] = y
		x, y = physics.StandardMapStep(x, y, k)
	}

	return thetaOut, pOut
}

// Track samples n states of an arbitrary stepper with the same
// sample-then-advance ordering as the two entry points.
//
// It panics if n is negative.
func Track(s dynamo.Stepper, x0 dynamo.Point, n int) dynamo.Trajectory {
	mustCount(n)

	traj := dynamo.NewTrajectory(n)
	pt := x0
	for i := 0; i < n; i++ {
		traj.Theta[i] = pt.Theta
		traj.P[i] = pt.P
		pt = s.Step(pt)
	}
	return traj
}

// PendulumTrackingWith is PendulumTracking with a caller-chosen integrator.
func PendulumTrackingWith(integ integrators.Integrator, theta, thetaDot, w, dt float64, n int) dynamo.Trajectory {
	pend := physics.NewPendulum(w)
	return Track(integrators.Bind(integ, dt, pend.Acceleration), dynamo.Point{Theta: theta, P: thetaDot}, n)
}
