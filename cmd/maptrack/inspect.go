package main

import (
	"fmt"
	"math"
	"os"
	"sort"
	"text/tabwriter"

	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/maptrack/internal/analysis"
	"github.com/san-kum/maptrack/internal/config"
	"github.com/san-kum/maptrack/internal/dynamo"
	"github.com/san-kum/maptrack/internal/experiment"
	"github.com/san-kum/maptrack/internal/export"
	"github.com/san-kum/maptrack/internal/storage"
	"github.com/san-kum/maptrack/internal/viz"
	"github.com/spf13/cobra"
)

func sortedKeys(m map[string]float64) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// loadRun returns the metadata of a run and all of its trajectories: one
// for a single run, one per initial condition for a sweep.
func loadRun(runID string) (*storage.RunMetadata, []dynamo.Trajectory, error) {
	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return nil, nil, err
	}

	if meta.Kind == storage.KindSweep {
		trajs, err := st.LoadSweep(runID)
		return meta, trajs, err
	}

	traj, err := st.LoadTrajectory(runID)
	if err != nil {
		return nil, nil, err
	}
	return meta, []dynamo.Trajectory{traj}, nil
}

func flatten(trajs []dynamo.Trajectory) dynamo.Trajectory {
	var all dynamo.Trajectory
	for _, t := range trajs {
		all.Theta = append(all.Theta, t.Theta...)
		all.P = append(all.P, t.P...)
	}
	return all
}

func listRuns(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	st := storage.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Fprintln(out, "no runs found")
		return nil
	}

	fmt.Fprintln(out, viz.HeaderStyle.Render(fmt.Sprintf("%d runs in %s", len(runs), dataDir)))

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tKIND\tMODEL\tTIME\tSTEPS\tINTEG\tPARAMS")

	for _, run := range runs {
		params := ""
		for _, k := range sortedKeys(run.Params) {
			params += fmt.Sprintf("%s=%.4g ", k, run.Params[k])
		}
		integ := run.Integrator
		if integ == "" {
			integ = "-"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\t%s\t%s\n",
			run.ID,
			run.Kind,
			run.Model,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Iterations,
			integ,
			params,
		)
	}

	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	meta, trajs, err := loadRun(args[0])
	if err != nil {
		return err
	}
	if len(trajs) == 0 || trajs[0].Len() == 0 {
		return fmt.Errorf("no data to plot")
	}

	fmt.Fprintf(out, "run: %s\n", meta.ID)
	fmt.Fprintf(out, "model: %s\n", meta.Model)
	fmt.Fprintf(out, "samples: %d\n\n", trajs[0].Len())

	angle, momentum := "theta (angle)", "p (momentum)"
	if meta.Model == config.ModelPendulum {
		momentum = "theta_dot (angular velocity)"
	}

	if meta.Kind == storage.KindSweep {
		// a handful of conditions spread over the sweep
		const maxSeries = 5
		stride := max(len(trajs)/maxSeries, 1)
		var series [][]float64
		for i := 0; i < len(trajs) && len(series) < maxSeries; i += stride {
			series = append(series, trajs[i].Theta)
		}
		fmt.Fprintln(out, asciigraph.PlotMany(series,
			asciigraph.Height(plotHeight),
			asciigraph.Width(plotWidth),
			asciigraph.Caption(angle+fmt.Sprintf(", %d of %d conditions", len(series), len(trajs))),
		))
		return nil
	}

	for _, s := range []struct {
		data    []float64
		caption string
	}{{trajs[0].Theta, angle}, {trajs[0].P, momentum}} {
		graph := asciigraph.Plot(s.data,
			asciigraph.Height(plotHeight),
			asciigraph.Width(plotWidth),
			asciigraph.Caption(s.caption),
		)
		fmt.Fprintln(out, graph)
		fmt.Fprintln(out)
	}

	return nil
}

func phasePlot(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	meta, trajs, err := loadRun(args[0])
	if err != nil {
		return err
	}

	all := flatten(trajs)
	if all.Len() == 0 {
		return fmt.Errorf("no data to plot")
	}

	fmt.Fprintf(out, "phase space plot: %s\n", meta.ID)
	fmt.Fprintf(out, "model: %s\n\n", meta.Model)
	fmt.Fprint(out, analysis.PhasePortraitToASCII(all, phaseWidth, phaseHeight))
	fmt.Fprintf(out, "\nLegend: . = early, o = middle, • = late\n")
	return nil
}

func analyzeRun(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	meta, trajs, err := loadRun(args[0])
	if err != nil {
		return err
	}
	if meta.Kind == storage.KindSweep {
		return fmt.Errorf("analyze needs a single run, %s is a sweep", meta.ID)
	}
	traj := trajs[0]
	if traj.Len() < 2 {
		return fmt.Errorf("no data")
	}

	fmt.Fprintf(out, "analysis: %s\n", meta.ID)
	fmt.Fprintf(out, "model: %s\n\n", meta.Model)

	// sample spacing: dt for the pendulum, one iteration for the map
	spacing := 1.0
	if meta.Model == config.ModelPendulum {
		spacing = meta.Params["dt"]
	}
	if spacing <= 0 {
		return fmt.Errorf("run %s has non-positive sample spacing %g", meta.ID, spacing)
	}

	freq, ps := analysis.DominantFrequency(traj.Theta, spacing)
	if len(ps) >= 4 {
		graph := asciigraph.Plot(ps[:len(ps)/4],
			asciigraph.Height(15),
			asciigraph.Width(80),
			asciigraph.Caption("power spectrum (theta)"),
		)
		fmt.Fprintln(out, graph)
		fmt.Fprintln(out)
	}
	fmt.Fprintf(out, "dominant frequency: %.4f per unit\n", freq)
	if freq > 0 {
		fmt.Fprintf(out, "period: %.4f\n", 1.0/freq)
	}

	if meta.Model == config.ModelPendulum {
		energy := analysis.EnergySeries(traj, meta.Params["omega"])
		slope, _ := analysis.DriftTrend(energy)
		fmt.Fprintf(out, "energy trend: %.3e per step\n", slope)
	}

	stepper, _, err := experiment.NewRegistry().Stepper(meta.Model, meta.Integrator, meta.Params)
	if err != nil {
		return err
	}
	dist := analysis.EuclideanDistance
	if meta.Model == config.ModelStandardMap {
		dist = analysis.CircleDistance
	}
	lambda := analysis.LyapunovExponent(stepper, meta.Initial, 1e-8, traj.Len(), dist) / spacing
	if math.IsNaN(lambda) {
		return fmt.Errorf("lyapunov estimate diverged")
	}
	fmt.Fprintf(out, "lyapunov exponent: %.4g\n", lambda)
	if lambda > 0.01 {
		fmt.Fprintln(out, "orbit: chaotic")
	} else {
		fmt.Fprintln(out, "orbit: regular")
	}
	return nil
}

func exportJSON(cmd *cobra.Command, args []string) error {
	meta, trajs, err := loadRun(args[0])
	if err != nil {
		return err
	}
	return storage.ExportJSON(cmd.OutOrStdout(), meta, flatten(trajs))
}

func exportSVG(cmd *cobra.Command, args []string) error {
	meta, trajs, err := loadRun(args[0])
	if err != nil {
		return err
	}

	var svg string
	if meta.Model == config.ModelPendulum {
		svg = export.TrajectoryToSVG(trajs[0], svgWidth, svgHeight, "#00ff88")
	} else {
		svg = export.ScatterToSVG(trajs, svgWidth, svgHeight, "#ff00ff")
	}
	if svg == "" {
		return fmt.Errorf("run %s has too few samples to render", meta.ID)
	}

	if outFile == "" {
		_, err := fmt.Fprintln(cmd.OutOrStdout(), svg)
		return err
	}
	if err := os.WriteFile(outFile, []byte(svg), 0644); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", outFile)
	return nil
}
