// Package viz provides terminal visualization of a stepping trajectory.
//
// [Model] is a Bubble Tea program that advances a [dynamo.Stepper] on a
// timer and draws the accumulated phase portrait on a Braille [Canvas],
// with an energy chart for models that implement [dynamo.Hamiltonian].
//
// # Key Bindings
//
//	Space - Pause/Resume
//	R     - Reset to initial state and parameters
//	Tab   - Select next parameter
//	↑/↓   - Scale selected parameter by ±5%
//	T     - Cycle color themes
//	Q     - Quit
package viz
