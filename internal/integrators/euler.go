package integrators

// Euler is the explicit first-order method. It is not symplectic and its
// energy grows without bound on oscillators; it is kept as a baseline.
type Euler struct{}

func NewEuler() *Euler {
	return &Euler{}
}

func (e *Euler) Step(x, p, dt float64, a Accel) (float64, float64) {
	return x + dt*p, p + dt*a(x)
}
