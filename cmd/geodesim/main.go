package main

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/san-kum/geodesim/internal/config"
	"github.com/san-kum/geodesim/internal/export"
	"github.com/san-kum/geodesim/internal/geodesic"
	"github.com/san-kum/geodesim/internal/integrators"
	"github.com/san-kum/geodesim/internal/metrics"
	"github.com/san-kum/geodesim/internal/schwarzschild"
	"github.com/san-kum/geodesim/internal/storage"
	"github.com/san-kum/geodesim/internal/tui"
	"github.com/san-kum/geodesim/internal/viz"
)

var (
	dataDir    string
	massSolar  float64
	spin       float64
	particles  int
	steps      int
	stepSize   float64
	seed       int64
	integrator string
	configFile string
	preset     string

	particleIdx  int
	plotWidth    int
	plotHeight   int
	canvasWidth  int
	canvasHeight int
	outFile      string
	csvOutFile   string
	lMult        float64
	rMaxFactor   float64
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "geodesim",
		Short: "schwarzschild geodesic simulation lab",
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".geodesim", "data directory")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "integrate a particle ensemble and store the run",
		RunE:  runSimulation,
	}
	runCmd.Flags().Float64Var(&massSolar, "mass", config.DefaultMassSolar, "body mass in solar units")
	runCmd.Flags().Float64Var(&spin, "spin", 0.0, "spin parameter (accepted but ignored by the Schwarzschild core)")
	runCmd.Flags().IntVar(&particles, "particles", config.DefaultParticles, "number of particles")
	runCmd.Flags().IntVar(&steps, "steps", config.DefaultSteps, "step budget per particle")
	runCmd.Flags().Float64Var(&stepSize, "dt", config.DefaultStepSize, "affine-parameter step size")
	runCmd.Flags().Int64Var(&seed, "seed", config.DefaultSeed, "sampling seed")
	runCmd.Flags().StringVar(&integrator, "integrator", "rk4", "integrator (rk4, euler)")
	runCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	runCmd.Flags().StringVar(&preset, "preset", "", "preset configuration")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list stored runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot one particle's radius against the step index",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}
	plotCmd.Flags().IntVar(&particleIdx, "particle", 0, "particle index")
	plotCmd.Flags().IntVar(&plotWidth, "width", 100, "plot width")
	plotCmd.Flags().IntVar(&plotHeight, "height", 20, "plot height")

	orbitsCmd := &cobra.Command{
		Use:   "orbits [run_id]",
		Short: "draw the (x,y) projection of a run with reference circles",
		Args:  cobra.ExactArgs(1),
		RunE:  orbitsRun,
	}
	orbitsCmd.Flags().IntVar(&canvasWidth, "width", 72, "canvas width in characters")
	orbitsCmd.Flags().IntVar(&canvasHeight, "height", 36, "canvas height in characters")

	exportSVGCmd := &cobra.Command{
		Use:   "export-svg [run_id]",
		Short: "export the orbit projection as SVG",
		Args:  cobra.ExactArgs(1),
		RunE:  exportSVGRun,
	}
	exportSVGCmd.Flags().StringVar(&outFile, "out", "orbits.svg", "output file")
	exportSVGCmd.Flags().IntVar(&canvasWidth, "width", 72, "canvas width in characters")
	exportSVGCmd.Flags().IntVar(&canvasHeight, "height", 36, "canvas height in characters")

	exportCmd := &cobra.Command{
		Use:   "export [run_id]",
		Short: "print run metadata as json",
		Args:  cobra.ExactArgs(1),
		RunE:  exportRun,
	}

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "export all particles of a run as one merged csv",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSVRun,
	}
	exportCSVCmd.Flags().StringVar(&csvOutFile, "out", "", "output file (default stdout)")

	batchCmd := &cobra.Command{
		Use:   "batch [preset...]",
		Short: "run and store several preset configurations",
		RunE:  runBatch,
	}
	batchCmd.Flags().StringVar(&integrator, "integrator", "rk4", "integrator (rk4, euler)")

	potentialCmd := &cobra.Command{
		Use:   "potential",
		Short: "plot the effective potential for an equatorial orbit",
		RunE:  plotPotential,
	}
	potentialCmd.Flags().Float64Var(&massSolar, "mass", config.DefaultMassSolar, "body mass in solar units")
	potentialCmd.Flags().Float64Var(&lMult, "l-mult", 1.0, "angular momentum in units of √(rs·5rs)")
	potentialCmd.Flags().Float64Var(&rMaxFactor, "r-max", 30, "plot range in units of rs")
	potentialCmd.Flags().IntVar(&plotWidth, "width", 100, "plot width")
	potentialCmd.Flags().IntVar(&plotHeight, "height", 20, "plot height")

	infoCmd := &cobra.Command{
		Use:   "info",
		Short: "print characteristic scales for a body",
		RunE:  printInfo,
	}
	infoCmd.Flags().Float64Var(&massSolar, "mass", config.DefaultMassSolar, "body mass in solar units")

	browseCmd := &cobra.Command{
		Use:   "browse",
		Short: "interactive browser for stored runs",
		RunE: func(cmd *cobra.Command, args []string) error {
			return tui.Browse(storage.New(dataDir))
		},
	}

	compareCmd := &cobra.Command{
		Use:   "compare",
		Short: "compare integrators on a bound orbit via conserved-quantity drift",
		RunE:  compareIntegrators,
	}
	compareCmd.Flags().Float64Var(&massSolar, "mass", config.DefaultMassSolar, "body mass in solar units")
	compareCmd.Flags().IntVar(&steps, "steps", config.DefaultSteps, "step budget")
	compareCmd.Flags().Float64Var(&stepSize, "dt", config.DefaultStepSize, "affine-parameter step size")

	rootCmd.AddCommand(runCmd, batchCmd, listCmd, plotCmd, orbitsCmd,
		exportSVGCmd, exportCmd, exportCSVCmd, potentialCmd, infoCmd,
		browseCmd, compareCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func buildConfig() (*config.Config, error) {
	if configFile != "" {
		return config.Load(configFile)
	}
	if preset != "" {
		cfg := config.GetPreset(preset)
		if cfg == nil {
			return nil, fmt.Errorf("unknown preset %q (have %v)", preset, config.ListPresets())
		}
		return cfg, nil
	}
	return &config.Config{
		MassSolar:  massSolar,
		Spin:       spin,
		Particles:  particles,
		Steps:      steps,
		StepSize:   stepSize,
		Seed:       seed,
		Integrator: integrator,
	}, nil
}

func newIntegrator(name string) func() geodesic.Integrator {
	if name == "euler" {
		return func() geodesic.Integrator { return integrators.NewEuler() }
	}
	return func() geodesic.Integrator { return integrators.NewRK4() }
}

// executeRun samples, integrates and stores one configured ensemble.
func executeRun(store *storage.Store, cfg *config.Config) (string, *schwarzschild.Metric, []geodesic.Params, []*geodesic.Trajectory, error) {
	if err := cfg.Validate(); err != nil {
		return "", nil, nil, nil, err
	}
	if cfg.Spin != 0 {
		fmt.Println(viz.Warn.Render(
			fmt.Sprintf("spin=%.3f accepted but ignored: core models a non-rotating body", cfg.Spin)))
	}

	metric, err := schwarzschild.New(cfg.MassSolar)
	if err != nil {
		return "", nil, nil, nil, err
	}

	params := geodesic.NewSampler(metric, cfg.Seed).
		SampleAll(cfg.Particles, cfg.Steps, cfg.StepSize)

	ens := geodesic.NewEnsemble(metric, newIntegrator(cfg.Integrator))
	trajs, err := ens.Run(context.Background(), params)
	if err != nil {
		return "", nil, nil, nil, err
	}

	runID, err := store.Save(storage.RunMetadata{
		MassSolar:  cfg.MassSolar,
		Spin:       cfg.Spin,
		Rs:         metric.Rs(),
		Seed:       cfg.Seed,
		Steps:      cfg.Steps,
		StepSize:   cfg.StepSize,
		Integrator: cfg.Integrator,
	}, trajs)
	if err != nil {
		return "", nil, nil, nil, err
	}
	return runID, metric, params, trajs, nil
}

func runSimulation(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig()
	if err != nil {
		return err
	}

	store := storage.New(dataDir)
	if err := store.Init(); err != nil {
		return err
	}
	runID, metric, params, trajs, err := executeRun(store, cfg)
	if err != nil {
		return err
	}

	fmt.Println(viz.Title.Render(fmt.Sprintf("run %s", runID)))
	fmt.Printf("%s %s\n", viz.Label.Render("rs:"),
		viz.Value.Render(fmt.Sprintf("%.1f m (%.1f M☉)", metric.Rs(), cfg.MassSolar)))

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "particle\tr0/rs\tsteps\tfinal r/rs\toutcome")
	for i, traj := range trajs {
		fmt.Fprintf(w, "%02d\t%.2f\t%d\t%.3f\t%s\n",
			i,
			params[i].R0/metric.Rs(),
			traj.Len()-1,
			traj.Final()[geodesic.IdxR]/metric.Rs(),
			viz.OutcomeBadge(traj.Outcome.String()))
	}
	return w.Flush()
}

func runBatch(cmd *cobra.Command, args []string) error {
	names := args
	if len(names) == 0 {
		names = config.ListPresets()
	}

	store := storage.New(dataDir)
	if err := store.Init(); err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "preset\trun\trs (m)\tcaptured\tescaped\texhausted")
	for _, name := range names {
		cfg := config.GetPreset(name)
		if cfg == nil {
			return fmt.Errorf("unknown preset %q (have %v)", name, config.ListPresets())
		}
		cfg.Integrator = integrator

		runID, metric, _, trajs, err := executeRun(store, cfg)
		if err != nil {
			return fmt.Errorf("preset %s: %w", name, err)
		}

		var captured, escaped, exhausted int
		for _, traj := range trajs {
			switch traj.Outcome {
			case geodesic.Captured:
				captured++
			case geodesic.Escaped:
				escaped++
			default:
				exhausted++
			}
		}
		fmt.Fprintf(w, "%s\t%s\t%.3g\t%d\t%d\t%d\n",
			name, runID, metric.Rs(), captured, escaped, exhausted)
	}
	return w.Flush()
}

func exportCSVRun(cmd *cobra.Command, args []string) error {
	store := storage.New(dataDir)
	if csvOutFile == "" {
		return store.ExportCSV(args[0], os.Stdout)
	}
	file, err := os.Create(csvOutFile)
	if err != nil {
		return err
	}
	defer file.Close()
	if err := store.ExportCSV(args[0], file); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", csvOutFile)
	return nil
}

func listRuns(cmd *cobra.Command, args []string) error {
	runs, err := storage.New(dataDir).List()
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Println("no stored runs")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "id\tmass\tparticles\tsteps\tdt\tseed")
	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%.1f\t%d\t%d\t%g\t%d\n",
			run.ID, run.MassSolar, run.Particles, run.Steps, run.StepSize, run.Seed)
	}
	return w.Flush()
}

func loadRunMetric(runID string) (*storage.Store, *schwarzschild.Metric, error) {
	store := storage.New(dataDir)
	meta, err := store.Load(runID)
	if err != nil {
		return nil, nil, err
	}
	metric, err := schwarzschild.New(meta.MassSolar)
	if err != nil {
		return nil, nil, err
	}
	return store, metric, nil
}

func plotRun(cmd *cobra.Command, args []string) error {
	store, metric, err := loadRunMetric(args[0])
	if err != nil {
		return err
	}
	traj, err := store.LoadTrajectory(args[0], particleIdx)
	if err != nil {
		return err
	}
	fmt.Println(viz.RadiusProfile(metric, traj, plotWidth, plotHeight))
	return nil
}

func loadAllTrajectories(store *storage.Store, runID string) ([]*geodesic.Trajectory, error) {
	meta, err := store.Load(runID)
	if err != nil {
		return nil, err
	}
	trajs := make([]*geodesic.Trajectory, 0, meta.Particles)
	for i := 0; i < meta.Particles; i++ {
		traj, err := store.LoadTrajectory(runID, i)
		if err != nil {
			return nil, err
		}
		trajs = append(trajs, traj)
	}
	return trajs, nil
}

func orbitsRun(cmd *cobra.Command, args []string) error {
	store, metric, err := loadRunMetric(args[0])
	if err != nil {
		return err
	}
	trajs, err := loadAllTrajectories(store, args[0])
	if err != nil {
		return err
	}
	canvas := viz.OrbitPlot(metric, trajs, canvasWidth, canvasHeight)
	fmt.Print(canvas.String())
	fmt.Println(viz.Label.Render("circles: horizon, photon sphere (1.5rs), isco (3rs)"))
	return nil
}

func exportSVGRun(cmd *cobra.Command, args []string) error {
	store, metric, err := loadRunMetric(args[0])
	if err != nil {
		return err
	}
	trajs, err := loadAllTrajectories(store, args[0])
	if err != nil {
		return err
	}
	canvas := viz.OrbitPlot(metric, trajs, canvasWidth, canvasHeight)
	if err := os.WriteFile(outFile, []byte(export.CanvasToSVG(canvas, 4.0)), 0644); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", outFile)
	return nil
}

func exportRun(cmd *cobra.Command, args []string) error {
	meta, err := storage.New(dataDir).Load(args[0])
	if err != nil {
		return err
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(meta)
}

func plotPotential(cmd *cobra.Command, args []string) error {
	metric, err := schwarzschild.New(massSolar)
	if err != nil {
		return err
	}
	rs := metric.Rs()
	l := lMult * math.Sqrt(rs*5*rs)
	fmt.Println(viz.PotentialCurve(metric, l, rMaxFactor*rs, plotWidth, plotHeight))
	return nil
}

func printInfo(cmd *cobra.Command, args []string) error {
	metric, err := schwarzschild.New(massSolar)
	if err != nil {
		return err
	}

	line := func(label, value string) string {
		return fmt.Sprintf("%s %s", viz.Label.Render(fmt.Sprintf("%-22s", label)), viz.Value.Render(value))
	}

	body := fmt.Sprintf("%s\n%s\n%s\n%s\n%s\n%s\n%s\n%s",
		viz.Title.Render(fmt.Sprintf("black hole, %.3g M☉", massSolar)),
		line("schwarzschild radius", fmt.Sprintf("%.4g m", metric.Rs())),
		line("photon sphere", fmt.Sprintf("%.4g m", metric.PhotonSphereRadius())),
		line("isco", fmt.Sprintf("%.4g m", metric.ISCORadius())),
		line("hawking temperature", fmt.Sprintf("%.4g K", metric.HawkingTemperature())),
		line("entropy", fmt.Sprintf("%.4g J/K", metric.Entropy())),
		line("escape velocity @2rs", fmt.Sprintf("%.4g m/s", metric.EscapeVelocity(2*metric.Rs()))),
		line("time dilation @isco", fmt.Sprintf("%.4f", metric.TimeDilation(metric.ISCORadius()))))

	fmt.Println(viz.Panel.Render(body))
	return nil
}

func compareIntegrators(cmd *cobra.Command, args []string) error {
	metric, err := schwarzschild.New(massSolar)
	if err != nil {
		return err
	}
	rs := metric.Rs()
	p := geodesic.Params{
		R0:       5 * rs,
		VR0:      -0.1,
		L:        math.Sqrt(rs * 5 * rs),
		MaxSteps: steps,
		StepSize: stepSize,
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "integrator\tsteps\toutcome\tenergy drift\tL drift")

	for _, name := range []string{"rk4", "euler"} {
		gen := geodesic.NewGenerator(metric, newIntegrator(name)())
		energy := metrics.NewEnergyDrift(metric)
		angular := metrics.NewAngularMomentumDrift(metric)
		gen.AddObserver(energy)
		gen.AddObserver(angular)

		traj, err := gen.Integrate(context.Background(), p)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%s\t%d\t%s\t%.3e\t%.3e\n",
			name, traj.Len()-1, traj.Outcome, energy.Value(), angular.Value())
	}
	return w.Flush()
}
