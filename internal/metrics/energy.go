package metrics

import (
	"math"

	"github.com/san-kum/maptrack/internal/dynamo"
	"github.com/san-kum/maptrack/internal/physics"
)

// Energy is the mean pendulum energy proxy over the observed samples.
type Energy struct {
	name        string
	omega       float64
	samples     int
	totalEnergy float64
}

func NewEnergy(omega float64) *Energy {
	return &Energy{
		name:  "energy",
		omega: omega,
	}
}

func (e *Energy) Name() string { return e.name }

func (e *Energy) Observe(x dynamo.Point) {
	e.totalEnergy += physics.PendulumEnergy(x.Theta, x.P, e.omega)
	e.samples++
}

func (e *Energy) Value() float64 {
	if e.samples == 0 {
		return 0
	}
	return e.totalEnergy / float64(e.samples)
}

func (e *Energy) Reset() {
	e.totalEnergy = 0
	e.samples = 0
}

// EnergyDrift is the largest deviation of the energy proxy from its first
// observed value, relative to |E0| when E0 is non-zero.
type EnergyDrift struct {
	name          string
	omega         float64
	initialEnergy float64
	maxDrift      float64
	samples       int
}

func NewEnergyDrift(omega float64) *EnergyDrift {
	return &EnergyDrift{
		name:  "energy_drift",
		omega: omega,
	}
}

func (e *EnergyDrift) Name() string { return e.name }

func (e *EnergyDrift) Observe(x dynamo.Point) {
	energy := physics.PendulumEnergy(x.Theta, x.P, e.omega)

	if e.samples == 0 {
		e.initialEnergy = energy
	}
	e.samples++

	drift := math.Abs(energy - e.initialEnergy)
	if e.initialEnergy != 0 {
		drift /= math.Abs(e.initialEnergy)
	}
	e.maxDrift = math.Max(e.maxDrift, drift)
}

func (e *EnergyDrift) Value() float64 {
	return e.maxDrift
}

func (e *EnergyDrift) Reset() {
	e.initialEnergy = 0
	e.maxDrift = 0
	e.samples = 0
}
