package dynamo

import (
	"errors"
	"fmt"
)

// Domain errors for trajectory operations.
var (
	// ErrNegativeCount indicates a negative iteration or sample count.
	ErrNegativeCount = errors.New("dynamo: negative iteration count")

	// ErrInvalidState indicates a trajectory containing NaN or Inf.
	ErrInvalidState = errors.New("dynamo: invalid state (NaN or Inf detected)")

	// ErrLengthMismatch indicates the two sequences of a trajectory differ in length.
	ErrLengthMismatch = errors.New("dynamo: trajectory sequences differ in length")

	// ErrUnknownModel indicates a model name with no registered driver.
	ErrUnknownModel = errors.New("dynamo: unknown model")

	// ErrUnknownStepper indicates an integrator name with no registered stepper.
	ErrUnknownStepper = errors.New("dynamo: unknown stepper")
)

// CheckCount returns ErrNegativeCount wrapped with the offending name when n < 0.
func CheckCount(name string, n int) error {
	if n < 0 {
		return fmt.Errorf("%s = %d: %w", name, n, ErrNegativeCount)
	}
	return nil
}

// StepError wraps an error with the sample index it was detected at.
type StepError struct {
	Step    int
	Point   Point
	Wrapped error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("step %d (theta=%.6g, p=%.6g): %v", e.Step, e.Point.Theta, e.Point.P, e.Wrapped)
}

func (e *StepError) Unwrap() error {
	return e.Wrapped
}
