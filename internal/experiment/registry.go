package experiment

import (
	"fmt"
	"sort"

	"github.com/san-kum/maptrack/internal/config"
	"github.com/san-kum/maptrack/internal/dynamo"
	"github.com/san-kum/maptrack/internal/integrators"
	"github.com/san-kum/maptrack/internal/metrics"
	"github.com/san-kum/maptrack/internal/physics"
)

// Builder constructs the one-step map of a model from its parameters. The
// returned Configurable tunes the same instance the Stepper advances.
type Builder func(integ integrators.Integrator, params map[string]float64) (dynamo.Stepper, dynamo.Configurable)

type Registry struct {
	models map[string]Builder
}

func NewRegistry() *Registry {
	r := &Registry{models: make(map[string]Builder)}

	r.models[config.ModelPendulum] = func(integ integrators.Integrator, params map[string]float64) (dynamo.Stepper, dynamo.Configurable) {
		pend := physics.NewPendulum(params["omega"])
		return integrators.Bind(integ, params["dt"], pend.Acceleration), pend
	}
	r.models[config.ModelStandardMap] = func(_ integrators.Integrator, params map[string]float64) (dynamo.Stepper, dynamo.Configurable) {
		sm := physics.NewStandardMap(params["k"])
		return sm, sm
	}

	return r
}

// Stepper builds a model by name. integrator is only consulted by models
// that integrate a flow; an empty name selects the default.
func (r *Registry) Stepper(model, integrator string, params map[string]float64) (dynamo.Stepper, dynamo.Configurable, error) {
	build, ok := r.models[model]
	if !ok {
		return nil, nil, fmt.Errorf("%w: %q", dynamo.ErrUnknownModel, model)
	}

	if integrator == "" {
		integrator = config.DefaultIntegrator
	}
	var integ integrators.Integrator
	if model == config.ModelPendulum {
		var err error
		if integ, err = integrators.New(integrator); err != nil {
			return nil, nil, err
		}
	}

	s, c := build(integ, params)
	return s, c, nil
}

func (r *Registry) ListModels() []string {
	names := make([]string, 0, len(r.models))
	for name := range r.models {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (r *Registry) DefaultMetrics(model string, params map[string]float64) []metrics.Metric {
	return metrics.ForModel(model, params)
}
