package analysis

import (
	"math"

	"github.com/san-kum/maptrack/internal/dynamo"
)

// Distance returns the separation vector from a to b.
type Distance func(a, b dynamo.Point) (dTheta, dP float64)

// EuclideanDistance is the plain coordinate difference.
func EuclideanDistance(a, b dynamo.Point) (float64, float64) {
	return b.Theta - a.Theta, b.P - a.P
}

// CircleDistance reduces both coordinate differences to [-π, π], for
// coordinates that live on a circle of length 2π.
func CircleDistance(a, b dynamo.Point) (float64, float64) {
	return math.Remainder(b.Theta-a.Theta, 2*math.Pi), math.Remainder(b.P-a.P, 2*math.Pi)
}

// LyapunovExponent estimates the largest Lyapunov exponent per step using
// the trajectory separation method.
//
// Algorithm:
// 1. Run the orbit of x0 and of x0 shifted by d0 in theta
// 2. Accumulate ln(|δx|/d0) after every step
// 3. Rescale the companion back to distance d0 along δx
//
// Divide by dt to get a rate for a time-stepped flow.
func LyapunovExponent(s dynamo.Stepper, x0 dynamo.Point, d0 float64, steps int, dist Distance) float64 {
	if steps <= 0 || d0 <= 0 {
		return 0
	}

	x := x0
	xp := dynamo.Point{Theta: x0.Theta + d0, P: x0.P}
	sumLog := 0.0

	for i := 0; i < steps; i++ {
		x = s.Step(x)
		xp = s.Step(xp)

		dTheta, dP := dist(x, xp)
		sep := math.Hypot(dTheta, dP)
		if sep == 0 || math.IsNaN(sep) || math.IsInf(sep, 0) {
			continue
		}
		sumLog += math.Log(sep / d0)

		scale := d0 / sep
		xp = dynamo.Point{Theta: x.Theta + dTheta*scale, P: x.P + dP*scale}
	}

	return sumLog / float64(steps)
}
