package dynamo

import (
	"context"
	"errors"
	"math"
	"sync/atomic"
	"testing"
)

func TestPoint_IsValid(t *testing.T) {
	tests := []struct {
		name  string
		point Point
		valid bool
	}{
		{"zeros", Point{0, 0}, true},
		{"normal", Point{1.5, -2.0}, true},
		{"NaN theta", Point{math.NaN(), 0}, false},
		{"+Inf p", Point{0, math.Inf(1)}, false},
		{"-Inf theta", Point{math.Inf(-1), 0}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.point.IsValid(); got != tt.valid {
				t.Errorf("IsValid() = %v, want %v", got, tt.valid)
			}
		})
	}
}

func TestTrajectory_Points(t *testing.T) {
	traj := Trajectory{Theta: []float64{1, 2, 3}, P: []float64{4, 5, 6}}

	pts := traj.Points()
	if len(pts) != traj.Len() {
		t.Fatalf("expected %d points, got %d", traj.Len(), len(pts))
	}
	if pts[1] != (Point{2, 5}) {
		t.Errorf("point 1 = %v, want {2 5}", pts[1])
	}
}

func TestTrajectory_Validate(t *testing.T) {
	if err := NewTrajectory(4).Validate(); err != nil {
		t.Errorf("zero trajectory should be valid, got %v", err)
	}

	mismatch := Trajectory{Theta: []float64{1}, P: nil}
	if err := mismatch.Validate(); !errors.Is(err, ErrLengthMismatch) {
		t.Errorf("expected ErrLengthMismatch, got %v", err)
	}

	bad := Trajectory{Theta: []float64{0, math.NaN()}, P: []float64{0, 0}}
	err := bad.Validate()
	if !errors.Is(err, ErrInvalidState) {
		t.Fatalf("expected ErrInvalidState, got %v", err)
	}
	var stepErr *StepError
	if !errors.As(err, &stepErr) || stepErr.Step != 1 {
		t.Errorf("expected StepError at step 1, got %v", err)
	}
}

func TestCheckCount(t *testing.T) {
	if err := CheckCount("n", 0); err != nil {
		t.Errorf("n=0 should be accepted, got %v", err)
	}
	err := CheckCount("iterations", -3)
	if !errors.Is(err, ErrNegativeCount) {
		t.Fatalf("expected ErrNegativeCount, got %v", err)
	}
	if err.Error() != "iterations = -3: dynamo: negative iteration count" {
		t.Errorf("unexpected message %q", err.Error())
	}
}

func TestParallelFor(t *testing.T) {
	var calls atomic.Int64
	out := make([]int, 50)

	err := ParallelFor(context.Background(), len(out), 4, func(_ context.Context, i int) error {
		calls.Add(1)
		out[i] = i * i
		return nil
	})
	if err != nil {
		t.Fatalf("ParallelFor failed: %v", err)
	}
	if calls.Load() != 50 {
		t.Errorf("expected 50 calls, got %d", calls.Load())
	}
	for i, v := range out {
		if v != i*i {
			t.Fatalf("out[%d] = %d, want %d", i, v, i*i)
		}
	}
}

func TestParallelFor_Error(t *testing.T) {
	boom := errors.New("boom")
	err := ParallelFor(context.Background(), 10, 2, func(_ context.Context, i int) error {
		if i == 3 {
			return boom
		}
		return nil
	})
	if !errors.Is(err, boom) {
		t.Errorf("expected boom, got %v", err)
	}
}

func TestParallelFor_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := ParallelFor(ctx, 10, 2, func(context.Context, int) error { return nil })
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}

func TestParallelFor_NegativeCount(t *testing.T) {
	err := ParallelFor(context.Background(), -1, 1, func(context.Context, int) error { return nil })
	if !errors.Is(err, ErrNegativeCount) {
		t.Errorf("expected ErrNegativeCount, got %v", err)
	}
}
