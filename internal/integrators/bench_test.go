package integrators

import (
	"math"
	"testing"
)

func benchmarkIntegrator(b *testing.B, integ Integrator) {
	a := pendulumAccel(2 * math.Pi * 0.5)
	x, p := math.Pi/4, 0.0

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		x, p = integ.Step(x, p, 0.01, a)
	}
}

func BenchmarkEuler(b *testing.B) {
	benchmarkIntegrator(b, NewEuler())
}

func BenchmarkLeapfrog(b *testing.B) {
	benchmarkIntegrator(b, NewLeapfrog())
}

func BenchmarkRK4(b *testing.B) {
	benchmarkIntegrator(b, NewRK4())
}

func BenchmarkYoshida4(b *testing.B) {
	benchmarkIntegrator(b, NewYoshida4())
}

func BenchmarkYoshida4Pendulum(b *testing.B) {
	w := 2 * math.Pi * 0.5
	x, p := math.Pi/4, 0.0

	for i := 0; i < b.N; i++ {
		x, p = Yoshida4Pendulum(x, p, 0.01, w)
	}
}
