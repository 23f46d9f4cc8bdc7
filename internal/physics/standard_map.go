package physics

import (
	"fmt"
	"math"

	"github.com/san-kum/maptrack/internal/dynamo"
)

// TwoPi is the modulus both standard-map coordinates are reduced by.
const TwoPi = 2 * math.Pi

// StandardMapStep applies one iteration of the Chirikov standard map:
//
//	p'     = (p + k·sin θ) mod 2π
//	θ'     = (θ + p')      mod 2π
//
// The kick uses the old angle and the drift uses the new momentum. The
// reduction is math.Mod, so a negative dividend yields a negative result
// and both coordinates stay in (-2π, 2π).
func StandardMapStep(theta, p, k float64) (float64, float64) {
	np := math.Mod(p+k*math.Sin(theta), TwoPi)
	ntheta := math.Mod(theta+np, TwoPi)
	return ntheta, np
}

// StandardMap is the standard map with a fixed kick strength K.
type StandardMap struct {
	K float64
}

func NewStandardMap(k float64) *StandardMap {
	return &StandardMap{K: k}
}

func (m *StandardMap) Step(pt dynamo.Point) dynamo.Point {
	theta, p := StandardMapStep(pt.Theta, pt.P, m.K)
	return dynamo.Point{Theta: theta, P: p}
}

func (m *StandardMap) GetParams() map[string]float64 {
	return map[string]float64{"k": m.K}
}

func (m *StandardMap) SetParam(name string, value float64) error {
	switch name {
	case "k":
		m.K = value
	default:
		return fmt.Errorf("unknown param: %s", name)
	}
	return nil
}
