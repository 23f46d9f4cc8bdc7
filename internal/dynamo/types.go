package dynamo

import "math"

// Point is a phase-space point: an angle and its conjugate momentum
// (angular velocity for the pendulum).
type Point struct {
	Theta float64 `json:"theta"`
	P     float64 `json:"p"`
}

func (p Point) IsValid() bool {
	return !math.IsNaN(p.Theta) && !math.IsInf(p.Theta, 0) &&
		!math.IsNaN(p.P) && !math.IsInf(p.P, 0)
}

// Trajectory holds the sampled angle and momentum sequences of one run.
// Theta[i] and P[i] were recorded at the same iteration.
type Trajectory struct {
	Theta []float64
	P     []float64
}

// NewTrajectory allocates a zeroed trajectory of n samples.
func NewTrajectory(n int) Trajectory {
	return Trajectory{
		Theta: make([]float64, n),
		P:     make([]float64, n),
	}
}

func (t Trajectory) Len() int {
	return len(t.Theta)
}

func (t Trajectory) At(i int) Point {
	return Point{Theta: t.Theta[i], P: t.P[i]}
}

func (t Trajectory) Points() []Point {
	pts := make([]Point, len(t.Theta))
	for i := range pts {
		pts[i] = t.At(i)
	}
	return pts
}

// Validate reports a length mismatch or the first non-finite sample.
func (t Trajectory) Validate() error {
	if len(t.Theta) != len(t.P) {
		return ErrLengthMismatch
	}
	for i := range t.Theta {
		if pt := t.At(i); !pt.IsValid() {
			return &StepError{Step: i, Point: pt, Wrapped: ErrInvalidState}
		}
	}
	return nil
}

// Stepper advances a phase-space point by one application of a map or
// one integration step.
type Stepper interface {
	Step(p Point) Point
}

// StepFunc adapts a plain function to Stepper.
type StepFunc func(Point) Point

func (f StepFunc) Step(p Point) Point { return f(p) }

// Configurable exposes named model parameters for live tuning.
type Configurable interface {
	GetParams() map[string]float64
	SetParam(name string, value float64) error
}

// Hamiltonian models report a conserved energy at a phase-space point.
type Hamiltonian interface {
	Energy(theta, p float64) float64
}
