package physics

import (
	"fmt"
	"math"
)

// PendulumAcceleration returns the angular acceleration -w²·sin(x) of an
// undamped pendulum with natural angular frequency w.
func PendulumAcceleration(x, w float64) float64 {
	return -(w * w) * math.Sin(x)
}

// PendulumEnergy is the mechanical-energy proxy 0.5·θ̇² - w²·cos(θ), the
// Hamiltonian of the unit pendulum up to a constant.
func PendulumEnergy(theta, thetaDot, w float64) float64 {
	return 0.5*thetaDot*thetaDot - w*w*math.Cos(theta)
}

// Pendulum binds a natural frequency to the acceleration law so it can be
// handed to an integrator.
type Pendulum struct {
	Omega float64
}

func NewPendulum(omega float64) *Pendulum {
	return &Pendulum{Omega: omega}
}

func (p *Pendulum) Acceleration(x float64) float64 {
	return PendulumAcceleration(x, p.Omega)
}

func (p *Pendulum) Energy(theta, thetaDot float64) float64 {
	return PendulumEnergy(theta, thetaDot, p.Omega)
}

func (p *Pendulum) GetParams() map[string]float64 {
	return map[string]float64{
		"omega": p.Omega,
	}
}

func (p *Pendulum) SetParam(name string, value float64) error {
	switch name {
	case "omega":
		p.Omega = value
	default:
		return fmt.Errorf("unknown param: %s", name)
	}
	return nil
}
