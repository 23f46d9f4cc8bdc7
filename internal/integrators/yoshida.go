package integrators

import (
	"math"

	"github.com/san-kum/maptrack/internal/physics"
)

// SubStep is the shared drift/kick primitive term + cd·ap·dt. As a drift
// ap is the momentum; as a kick ap is the acceleration.
func SubStep(term, cd, ap, dt float64) float64 {
	return term + cd*ap*dt
}

// Yoshida4Coefficients returns the position (c) and momentum (d)
// coefficients of the fourth-order Yoshida composition.
//
//	c1 = c4 = 1 / (2·(2 - ∛2))    c2 = c3 = (1 - ∛2)·c1
//	d1 = d3 = 1 / (2 - ∛2)        d2 = -∛2 / (2 - ∛2)    d4 = 0
func Yoshida4Coefficients() (c, d [4]float64) {
	cbrt2 := math.Pow(2, 1.0/3)

	c1 := 1.0 / 2.0 / (2 - cbrt2)
	c2 := (1 - cbrt2) * c1
	d1 := 1 / (2 - cbrt2)
	d2 := -cbrt2 / (2 - cbrt2)

	c = [4]float64{c1, c2, c2, c1}
	d = [4]float64{d1, d2, d1, 0}
	return c, d
}

// YoshidaStage applies one drift-then-kick stage: x moves by c·p·dt, the
// acceleration is re-evaluated at the new x, then p moves by d·a·dt.
func YoshidaStage(x, p, c, d, dt float64, a Accel) (float64, float64) {
	nx := SubStep(x, c, p, dt)
	anx := a(nx)
	np := SubStep(p, d, anx, dt)
	return nx, np
}

// Yoshida4Step advances (x, p) by dt with four stages using (c1,d1),
// (c2,d2), (c3,d3), (c4,d4) in that order.
func Yoshida4Step(x, p, dt float64, a Accel) (float64, float64) {
	c, d := Yoshida4Coefficients()

	for i := 0; i < 4; i++ {
		x, p = YoshidaStage(x, p, c[i], d[i], dt, a)
	}
	return x, p
}

// Yoshida4Pendulum advances the pendulum θ̈ = -w²·sin θ by one step.
func Yoshida4Pendulum(x, p, dt, w float64) (float64, float64) {
	return Yoshida4Step(x, p, dt, func(x float64) float64 {
		return physics.PendulumAcceleration(x, w)
	})
}

// Yoshida4 is the fourth-order symplectic integrator.
type Yoshida4 struct{}

func NewYoshida4() *Yoshida4 {
	return &Yoshida4{}
}

func (y *Yoshida4) Step(x, p, dt float64, a Accel) (float64, float64) {
	return Yoshida4Step(x, p, dt, a)
}
