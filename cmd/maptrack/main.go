package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"text/tabwriter"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/san-kum/maptrack/internal/analysis"
	"github.com/san-kum/maptrack/internal/config"
	"github.com/san-kum/maptrack/internal/dynamo"
	"github.com/san-kum/maptrack/internal/experiment"
	"github.com/san-kum/maptrack/internal/integrators"
	"github.com/san-kum/maptrack/internal/metrics"
	"github.com/san-kum/maptrack/internal/storage"
	"github.com/san-kum/maptrack/internal/viz"
	"github.com/san-kum/maptrack/tracking"
	"github.com/spf13/cobra"
)

var (
	dataDir    string
	verbose    bool
	configFile string
	preset     string
	iterations int
	integrator string
	// pendulum
	theta    float64
	thetaDot float64
	omega    float64
	dt       float64
	// standard map
	mapTheta float64
	mapP     float64
	kick     float64
	// sweep
	count    int
	maxTheta float64
	workers  int
	// metrics
	stabilityBound float64
	// live view
	stepsPerTick int
	themeName    string
	// rendering
	plotWidth   int
	plotHeight  int
	phaseWidth  int
	phaseHeight int
	svgWidth    int
	svgHeight   int
	outFile     string
)

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "maptrack",
		Short:        "pendulum and standard map trajectory tracker",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := slog.LevelInfo
			if verbose {
				level = slog.LevelDebug
			}
			handler := slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})
			slog.SetDefault(slog.New(handler))
		},
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".maptrack", "data directory")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")

	pendulumCmd := &cobra.Command{
		Use:   "pendulum",
		Short: "track a pendulum with a symplectic integrator",
		Args:  cobra.NoArgs,
		RunE:  runPendulum,
	}
	addRunFlags(pendulumCmd)
	addPendulumFlags(pendulumCmd)
	addMetricFlags(pendulumCmd)

	standardMapCmd := &cobra.Command{
		Use:   "standard-map",
		Short: "iterate the Chirikov standard map",
		Args:  cobra.NoArgs,
		RunE:  runStandardMap,
	}
	addRunFlags(standardMapCmd)
	addMapFlags(standardMapCmd)
	addMetricFlags(standardMapCmd)

	sweepCmd := &cobra.Command{
		Use:   "sweep",
		Short: "iterate the standard map over a range of initial angles",
		Args:  cobra.NoArgs,
		RunE:  runSweep,
	}
	addRunFlags(sweepCmd)
	addMapFlags(sweepCmd)
	sweepCmd.Flags().IntVar(&count, "count", config.DefaultSweepCount, "number of initial angles")
	sweepCmd.Flags().Float64Var(&maxTheta, "max-theta", config.DefaultMaxTheta, "largest initial angle")
	sweepCmd.Flags().IntVar(&workers, "workers", 0, "parallel workers (0 = GOMAXPROCS)")

	compareCmd := &cobra.Command{
		Use:   "compare [integrator...]",
		Short: "compare energy conservation of pendulum integrators",
		RunE:  compareIntegrators,
	}
	addRunFlags(compareCmd)
	addPendulumFlags(compareCmd)

	liveCmd := &cobra.Command{
		Use:   "live [model]",
		Short: "step a model with live visualization",
		Args:  cobra.ExactArgs(1),
		RunE:  runLive,
	}
	liveCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	liveCmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
	liveCmd.Flags().StringVar(&integrator, "integrator", config.DefaultIntegrator, "pendulum integrator")
	addPendulumFlags(liveCmd)
	addMapFlags(liveCmd)
	liveCmd.Flags().IntVar(&stepsPerTick, "speed", 1, "steps per frame")
	liveCmd.Flags().StringVar(&themeName, "theme", viz.Themes[0].Name, "color theme ("+strings.Join(viz.ThemeNames(), ", ")+")")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list runs",
		Args:  cobra.NoArgs,
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot run samples against step",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}
	plotCmd.Flags().IntVar(&plotWidth, "width", 80, "plot width")
	plotCmd.Flags().IntVar(&plotHeight, "height", 10, "plot height")

	phaseCmd := &cobra.Command{
		Use:   "phase [run_id]",
		Short: "phase space plot",
		Args:  cobra.ExactArgs(1),
		RunE:  phasePlot,
	}
	phaseCmd.Flags().IntVar(&phaseWidth, "width", 70, "plot width")
	phaseCmd.Flags().IntVar(&phaseHeight, "height", 20, "plot height")

	analyzeCmd := &cobra.Command{
		Use:   "analyze [run_id]",
		Short: "spectrum, energy trend and Lyapunov exponent of a run",
		Args:  cobra.ExactArgs(1),
		RunE:  analyzeRun,
	}

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export run data to JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportJSON,
	}

	exportSVGCmd := &cobra.Command{
		Use:   "export-svg [run_id]",
		Short: "render the phase portrait of a run as SVG",
		Args:  cobra.ExactArgs(1),
		RunE:  exportSVG,
	}
	exportSVGCmd.Flags().IntVar(&svgWidth, "width", 800, "image width")
	exportSVGCmd.Flags().IntVar(&svgHeight, "height", 600, "image height")
	exportSVGCmd.Flags().StringVarP(&outFile, "output", "o", "", "output file (default stdout)")

	presetsCmd := &cobra.Command{
		Use:   "presets [model]",
		Short: "list available presets for a model",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			presets := config.ListPresets(args[0])
			if len(presets) == 0 {
				fmt.Fprintf(out, "no presets for model: %s\n", args[0])
				return nil
			}
			fmt.Fprintf(out, "presets for %s:\n", args[0])
			for _, p := range presets {
				fmt.Fprintf(out, "  %s\n", p)
			}
			return nil
		},
	}

	rootCmd.AddCommand(pendulumCmd, standardMapCmd, sweepCmd, compareCmd, liveCmd,
		listCmd, plotCmd, phaseCmd, analyzeCmd, exportJSONCmd, exportSVGCmd, presetsCmd)
	return rootCmd
}

func addRunFlags(cmd *cobra.Command) {
	cmd.Flags().IntVarP(&iterations, "iterations", "n", config.DefaultIterations, "number of samples")
	cmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	cmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
}

func addPendulumFlags(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&theta, "theta", config.DefaultTheta, "initial angle")
	cmd.Flags().Float64Var(&thetaDot, "theta-dot", config.DefaultThetaDot, "initial angular velocity")
	cmd.Flags().Float64Var(&omega, "omega", config.DefaultOmega, "natural angular frequency")
	cmd.Flags().Float64Var(&dt, "dt", config.DefaultDt, "timestep")
	if cmd.Flags().Lookup("integrator") == nil {
		cmd.Flags().StringVar(&integrator, "integrator", config.DefaultIntegrator, "integrator ("+strings.Join(integrators.Names(), ", ")+")")
	}
}

func addMetricFlags(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&stabilityBound, "stability-bound", 0, "bound on |theta| and |p| for the stability metric")
}

func addMapFlags(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&mapTheta, "map-theta", config.DefaultMapTheta, "initial standard map angle")
	cmd.Flags().Float64Var(&mapP, "p", config.DefaultMapP, "initial standard map momentum")
	cmd.Flags().Float64Var(&kick, "k", config.DefaultK, "kick strength")
}

// resolveConfig layers defaults, preset, config file and explicitly set
// flags, in that order.
func resolveConfig(cmd *cobra.Command, model string) (*config.Config, error) {
	cfg := config.DefaultConfig()
	cfg.Model = model

	if preset != "" {
		p := config.GetPreset(model, preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets(model))
		}
		cfg.Iterations = p.Iterations
		switch model {
		case config.ModelPendulum:
			cfg.Pendulum = p.Pendulum
			if p.Integrator != "" {
				cfg.Integrator = p.Integrator
			}
		case config.ModelStandardMap:
			cfg.StandardMap = p.StandardMap
			if p.Sweep.Count > 0 {
				cfg.Sweep = p.Sweep
			}
		}
		slog.Debug("applied preset", "model", model, "preset", preset)
	}

	if configFile != "" {
		if err := cfg.Merge(configFile); err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg.Model = model
		slog.Debug("loaded config", "path", configFile)
	}

	flags := cmd.Flags()
	if flags.Changed("iterations") {
		cfg.Iterations = iterations
	}
	if flags.Changed("integrator") {
		cfg.Integrator = integrator
	}
	if flags.Changed("theta") {
		cfg.Pendulum.Theta = theta
	}
	if flags.Changed("theta-dot") {
		cfg.Pendulum.ThetaDot = thetaDot
	}
	if flags.Changed("omega") {
		cfg.Pendulum.Omega = omega
	}
	if flags.Changed("dt") {
		cfg.Pendulum.Dt = dt
	}
	if flags.Changed("map-theta") {
		cfg.StandardMap.Theta = mapTheta
	}
	if flags.Changed("p") {
		cfg.StandardMap.P = mapP
	}
	if flags.Changed("k") {
		cfg.StandardMap.K = kick
	}
	if flags.Changed("count") {
		cfg.Sweep.Count = count
	}
	if flags.Changed("max-theta") {
		cfg.Sweep.MaxTheta = maxTheta
	}
	if flags.Changed("workers") {
		cfg.Sweep.Workers = workers
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

func openStore() (*storage.Store, error) {
	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return nil, err
	}
	return st, nil
}

func printRun(cmd *cobra.Command, runID string, n int, elapsed time.Duration, ms map[string]float64) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "completed in %v\n", elapsed)
	fmt.Fprintf(out, "run id: %s\n", runID)
	fmt.Fprintf(out, "steps: %d\n", n)
	if len(ms) > 0 {
		fmt.Fprintln(out, viz.Separator(40))
		for _, name := range sortedKeys(ms) {
			fmt.Fprintf(out, "  %s %s\n", viz.MetricLabel.Render(name+":"), viz.MetricValue.Render(fmt.Sprintf("%.6g", ms[name])))
		}
	}
}

func runPendulum(cmd *cobra.Command, args []string) error {
	return runModel(cmd, config.ModelPendulum)
}

func runStandardMap(cmd *cobra.Command, args []string) error {
	return runModel(cmd, config.ModelStandardMap)
}

func runModel(cmd *cobra.Command, model string) error {
	cfg, err := resolveConfig(cmd, model)
	if err != nil {
		return err
	}
	st, err := openStore()
	if err != nil {
		return err
	}

	exp, err := experiment.New(cfg)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("stability-bound") {
		if stabilityBound <= 0 {
			return fmt.Errorf("stability bound must be positive, got %g", stabilityBound)
		}
		exp.AddMetric(metrics.NewStability(stabilityBound))
	}

	x0 := cfg.InitState()
	slog.Info("running "+model, "theta", x0.Theta, "p", x0.P, "n", cfg.Iterations,
		"params", cfg.Params(), "integrator", cfg.Integrator)

	res, err := exp.Run(commandContext(cmd))
	if err != nil {
		return err
	}

	runID, err := st.Save(exp.Metadata(res), res.Trajectory)
	if err != nil {
		return err
	}
	slog.Debug("run stored", "id", runID, "dir", dataDir)

	printRun(cmd, runID, res.Trajectory.Len(), res.Elapsed, res.Metrics)
	return nil
}

func runSweep(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, config.ModelStandardMap)
	if err != nil {
		return err
	}
	st, err := openStore()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(commandContext(cmd), os.Interrupt)
	defer stop()

	thetas := tracking.Linspace(0, cfg.Sweep.MaxTheta, cfg.Sweep.Count)
	slog.Info("sweeping standard map", "conditions", len(thetas), "max_theta", cfg.Sweep.MaxTheta,
		"p", cfg.StandardMap.P, "k", cfg.StandardMap.K, "n", cfg.Iterations)
	start := time.Now()

	trajs, err := tracking.Sweep(ctx, tracking.SweepConfig{
		Thetas:     thetas,
		P0:         cfg.StandardMap.P,
		K:          cfg.StandardMap.K,
		Iterations: cfg.Iterations,
		Workers:    cfg.Sweep.Workers,
	})
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	runID, err := st.SaveSweep(storage.RunMetadata{
		Model:      cfg.Model,
		Iterations: cfg.Iterations,
		Initial:    dynamo.Point{P: cfg.StandardMap.P},
		Params:     map[string]float64{"k": cfg.StandardMap.K, "max_theta": cfg.Sweep.MaxTheta},
	}, trajs)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "completed in %v\n", elapsed)
	fmt.Fprintf(out, "run id: %s\n", runID)
	fmt.Fprintf(out, "shape: (%d, %d, 2)\n", len(trajs), cfg.Iterations)
	return nil
}

func compareIntegrators(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, config.ModelPendulum)
	if err != nil {
		return err
	}

	names := args
	if len(names) == 0 {
		names = []string{"yoshida4", "leapfrog", "rk4", "euler"}
	}

	pc := cfg.Pendulum
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, viz.HeaderStyle.Render(fmt.Sprintf("pendulum θ0=%.4g ω=%.4g dt=%g n=%d", pc.Theta, pc.Omega, pc.Dt, cfg.Iterations)))

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "INTEGRATOR\tMAX DRIFT\tTREND/STEP\tTIME\tENERGY")

	for _, name := range names {
		integ, err := integrators.New(name)
		if err != nil {
			return err
		}

		start := time.Now()
		traj := tracking.PendulumTrackingWith(integ, pc.Theta, pc.ThetaDot, pc.Omega, pc.Dt, cfg.Iterations)
		elapsed := time.Since(start)

		drift := metrics.Evaluate(traj, metrics.NewEnergyDrift(pc.Omega))["energy_drift"]
		energy := analysis.EnergySeries(traj, pc.Omega)
		slope, _ := analysis.DriftTrend(energy)

		fmt.Fprintf(w, "%s\t%.3e\t%.3e\t%v\t%s\n", name, drift, slope, elapsed, viz.SparklineChart(energy, 24))
	}

	return w.Flush()
}

func runLive(cmd *cobra.Command, args []string) error {
	model := args[0]
	if model == "standard-map" {
		model = config.ModelStandardMap
	}

	cfg, err := resolveConfig(cmd, model)
	if err != nil {
		return err
	}

	stepper, params, err := experiment.NewRegistry().Stepper(cfg.Model, cfg.Integrator, cfg.Params())
	if err != nil {
		return err
	}

	theme, err := viz.GetTheme(themeName)
	if err != nil {
		return err
	}

	m := viz.NewModel(cfg.Model, stepper, params, cfg.InitState(), stepsPerTick).WithTheme(theme)
	p := tea.NewProgram(m)
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}
