// Package tracking computes sampled trajectories of the pendulum and of the
// Chirikov standard map.
//
// The two entry points mirror each other:
//
//   - [PendulumTracking]: pendulum advanced by the fourth-order Yoshida
//     integrator
//   - [StandardMapTracking]: standard map iterated directly
//
// Each returns two slices of length n. Index i holds the state before the
// i-th advance, so the first sample is always the initial condition and the
// state after the last advance is discarded.
//
// # Example
//
//	theta, thetaDot := tracking.PendulumTracking(0.1, 0.0, 2*math.Pi*0.5, 1e-2, 10)
//	theta, p := tracking.StandardMapTracking(0.1, 0.2, -0.5, 100)
//
// # Thread Safety
//
// All functions are reentrant. Every call allocates its own buffers and no
// package state is written, so concurrent calls need no locking.
package tracking
