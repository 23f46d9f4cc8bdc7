// Package physics provides the two dynamical-system models tracked by
// maptrack.
//
//   - [Pendulum]: the undamped pendulum θ̈ = -ω²·sin θ, integrated by the
//     steppers in package integrators
//   - [StandardMap]: the Chirikov standard map, iterated directly
//
// Both models implement a GetParams/SetParam pair for runtime parameter
// adjustment from the CLI and the live view.
//
// # Energy
//
// The pendulum is Hamiltonian. Use [PendulumEnergy] to monitor drift:
//
//	e0 := physics.PendulumEnergy(theta[0], thetaDot[0], w)
//	en := physics.PendulumEnergy(theta[n-1], thetaDot[n-1], w)
package physics
