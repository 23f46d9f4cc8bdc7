package integrators

import (
	"fmt"
	"sort"

	"github.com/san-kum/maptrack/internal/dynamo"
)

// Accel returns the acceleration of a one-degree-of-freedom system at
// position x.
type Accel func(x float64) float64

// Integrator advances a (position, momentum) pair by one fixed step dt.
type Integrator interface {
	Step(x, p, dt float64, a Accel) (float64, float64)
}

// Bind turns an integrator, a step size and an acceleration law into a
// dynamo.Stepper.
func Bind(integ Integrator, dt float64, a Accel) dynamo.Stepper {
	return dynamo.StepFunc(func(pt dynamo.Point) dynamo.Point {
		x, p := integ.Step(pt.Theta, pt.P, dt, a)
		return dynamo.Point{Theta: x, P: p}
	})
}

var registry = map[string]func() Integrator{
	"euler":    func() Integrator { return NewEuler() },
	"leapfrog": func() Integrator { return NewLeapfrog() },
	"rk4":      func() Integrator { return NewRK4() },
	"yoshida4": func() Integrator { return NewYoshida4() },
}

// New returns the integrator registered under name.
func New(name string) (Integrator, error) {
	fn, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s (available: %v)", dynamo.ErrUnknownStepper, name, Names())
	}
	return fn(), nil
}

// Names lists the registered integrators in lexical order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
