package integrators

import (
	"errors"
	"reflect"
	"testing"

	"github.com/san-kum/maptrack/internal/dynamo"
)

func TestNew(t *testing.T) {
	for _, name := range Names() {
		integ, err := New(name)
		if err != nil {
			t.Errorf("New(%q) failed: %v", name, err)
		}
		if integ == nil {
			t.Errorf("New(%q) returned nil", name)
		}
	}

	if _, err := New("midpoint"); !errors.Is(err, dynamo.ErrUnknownStepper) {
		t.Errorf("expected ErrUnknownStepper, got %v", err)
	}
}

func TestNames(t *testing.T) {
	want := []string{"euler", "leapfrog", "rk4", "yoshida4"}
	if got := Names(); !reflect.DeepEqual(got, want) {
		t.Errorf("Names() = %v, want %v", got, want)
	}
}

func TestBind(t *testing.T) {
	a := pendulumAccel(3)
	s := Bind(NewYoshida4(), 0.01, a)

	got := s.Step(dynamo.Point{Theta: 0.2, P: 0.1})
	x, p := Yoshida4Step(0.2, 0.1, 0.01, a)
	if got.Theta != x || got.P != p {
		t.Errorf("bound step = %v, want {%v %v}", got, x, p)
	}
}
