package integrators

// RK4 is the classic fourth-order Runge-Kutta method applied to
// ẋ = p, ṗ = a(x). Accurate but not symplectic.
type RK4 struct{}

func NewRK4() *RK4 {
	return &RK4{}
}

func (r *RK4) Step(x, p, dt float64, a Accel) (float64, float64) {
	halfDt := dt * 0.5

	k1x, k1p := p, a(x)
	k2x, k2p := p+halfDt*k1p, a(x+halfDt*k1x)
	k3x, k3p := p+halfDt*k2p, a(x+halfDt*k2x)
	k4x, k4p := p+dt*k3p, a(x+dt*k3x)

	dt6 := dt / 6.0
	nx := x + dt6*(k1x+2*k2x+2*k3x+k4x)
	np := p + dt6*(k1p+2*k2p+2*k3p+k4p)

	return nx, np
}
