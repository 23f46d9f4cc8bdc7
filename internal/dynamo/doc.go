// Package dynamo provides the value types shared by the trajectory code.
//
// The package defines the phase-space primitives used by the integrators,
// the maps and the drivers:
//
//   - [Point]: a two-dimensional phase-space point (angle, momentum)
//   - [Trajectory]: a pair of equally long sample sequences
//   - sentinel errors returned at the tool boundary
//
// # Example
//
//	theta, p := tracking.StandardMapTracking(0.1, 0.2, -0.5, 100)
//	traj := dynamo.Trajectory{Theta: theta, P: p}
//	for i, pt := range traj.Points() {
//	    fmt.Println(i, pt.Theta, pt.P)
//	}
//
// # Thread Safety
//
// Every type here is a plain value. Nothing in the package holds mutable
// state, so values may be shared freely between goroutines once built.
package dynamo
