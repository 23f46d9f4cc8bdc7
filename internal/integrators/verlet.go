package integrators

// Leapfrog is the second-order kick-drift-kick symplectic scheme.
type Leapfrog struct{}

func NewLeapfrog() *Leapfrog {
	return &Leapfrog{}
}

func (l *Leapfrog) Step(x, p, dt float64, a Accel) (float64, float64) {
	halfDt := dt * 0.5

	pHalf := p + a(x)*halfDt
	nx := x + pHalf*dt
	np := pHalf + a(nx)*halfDt

	return nx, np
}
