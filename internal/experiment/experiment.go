package experiment

import (
	"context"
	"fmt"
	"time"

	"github.com/san-kum/maptrack/internal/config"
	"github.com/san-kum/maptrack/internal/dynamo"
	"github.com/san-kum/maptrack/internal/integrators"
	"github.com/san-kum/maptrack/internal/metrics"
	"github.com/san-kum/maptrack/internal/storage"
	"github.com/san-kum/maptrack/tracking"
)

type Result struct {
	Trajectory dynamo.Trajectory
	Metrics    map[string]float64
	Elapsed    time.Duration
}

// Experiment tracks one initial condition of a configured model.
type Experiment struct {
	cfg     *config.Config
	metrics []metrics.Metric
}

// New validates cfg and prepares an experiment with the model's default
// metrics.
func New(cfg *config.Config) (*Experiment, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if cfg.Model == config.ModelPendulum {
		if _, err := integrators.New(cfg.Integrator); err != nil {
			return nil, err
		}
	}
	return &Experiment{
		cfg:     cfg,
		metrics: NewRegistry().DefaultMetrics(cfg.Model, cfg.Params()),
	}, nil
}

// AddMetric adds m to the metrics evaluated by Run, replacing a metric of
// the same name.
func (e *Experiment) AddMetric(m metrics.Metric) {
	for i, old := range e.metrics {
		if old.Name() == m.Name() {
			e.metrics[i] = m
			return
		}
	}
	e.metrics = append(e.metrics, m)
}

func (e *Experiment) Run(ctx context.Context) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	start := time.Now()
	traj, err := e.track()
	if err != nil {
		return nil, err
	}

	return &Result{
		Trajectory: traj,
		Metrics:    metrics.Evaluate(traj, e.metrics...),
		Elapsed:    time.Since(start),
	}, nil
}

func (e *Experiment) track() (dynamo.Trajectory, error) {
	var traj dynamo.Trajectory
	n := e.cfg.Iterations

	switch e.cfg.Model {
	case config.ModelPendulum:
		pc := e.cfg.Pendulum
		if e.cfg.Integrator == config.DefaultIntegrator {
			traj.Theta, traj.P = tracking.PendulumTracking(pc.Theta, pc.ThetaDot, pc.Omega, pc.Dt, n)
			return traj, nil
		}
		integ, err := integrators.New(e.cfg.Integrator)
		if err != nil {
			return traj, err
		}
		return tracking.PendulumTrackingWith(integ, pc.Theta, pc.ThetaDot, pc.Omega, pc.Dt, n), nil
	case config.ModelStandardMap:
		mc := e.cfg.StandardMap
		traj.Theta, traj.P = tracking.StandardMapTracking(mc.Theta, mc.P, mc.K, n)
		return traj, nil
	default:
		return traj, fmt.Errorf("%w: %q", dynamo.ErrUnknownModel, e.cfg.Model)
	}
}

// Metadata describes the run for storage. The integrator is recorded only
// for models that use one.
func (e *Experiment) Metadata(res *Result) storage.RunMetadata {
	meta := storage.RunMetadata{
		Model:      e.cfg.Model,
		Iterations: e.cfg.Iterations,
		Initial:    e.cfg.InitState(),
		Params:     e.cfg.Params(),
		Metrics:    res.Metrics,
	}
	if e.cfg.Model == config.ModelPendulum {
		meta.Integrator = e.cfg.Integrator
	}
	return meta
}
