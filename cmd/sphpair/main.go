package main

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"text/tabwriter"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
	"github.com/mwerner/sphpair/internal/config"
	"github.com/mwerner/sphpair/internal/metrics"
	"github.com/mwerner/sphpair/internal/momentum"
	"github.com/mwerner/sphpair/internal/pairs"
	"github.com/mwerner/sphpair/internal/storage"
	"github.com/spf13/cobra"
)

var (
	dataDir     string
	configFile  string
	preset      string
	formulation string
	workers     int
	kernelCorr  float64
	bgPressure  bool
	genBgPress  bool
	transportVel bool
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#00ccff"))

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888899"))

	valueStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#00ff88"))
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "sphpair",
		Short: "pairwise SPH momentum exchange evaluation",
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".sphpair", "data directory")

	evalCmd := &cobra.Command{
		Use:   "eval [scene.yaml]",
		Short: "evaluate momentum exchange over a scene's pair list",
		Args:  cobra.ExactArgs(1),
		RunE:  runEval,
	}
	evalCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	evalCmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
	evalCmd.Flags().StringVar(&formulation, "formulation", config.DefaultFormulation, "momentum formulation")
	evalCmd.Flags().IntVar(&workers, "workers", config.DefaultWorkers, "parallel workers")
	evalCmd.Flags().Float64Var(&kernelCorr, "kernel-correction", config.DefaultKernelCorrection, "kernel correction factor")
	evalCmd.Flags().BoolVar(&bgPressure, "background-pressure", false, "apply standard background pressure")
	evalCmd.Flags().BoolVar(&genBgPress, "generalized-background-pressure", false, "apply generalized background pressure")
	evalCmd.Flags().BoolVar(&transportVel, "transport-velocity", false, "apply transport-velocity correction")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list saved runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot acceleration magnitudes per particle",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export run metadata as JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportJSON,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available config presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			names := config.ListPresets()
			sort.Strings(names)
			for _, n := range names {
				fmt.Println(n)
			}
			return nil
		},
	}

	formulationsCmd := &cobra.Command{
		Use:   "formulations",
		Short: "list available momentum formulations",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, k := range momentum.Kinds() {
				fmt.Println(k)
			}
			return nil
		},
	}

	rootCmd.AddCommand(evalCmd, listCmd, plotCmd, exportJSONCmd, presetsCmd, formulationsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func buildConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		cfg = p
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	// CLI flags override preset and config file
	if cmd.Flags().Changed("formulation") {
		cfg.Formulation = formulation
	}
	if cmd.Flags().Changed("workers") {
		cfg.Workers = workers
	}
	if cmd.Flags().Changed("kernel-correction") {
		cfg.KernelCorrection = kernelCorr
	}
	if cmd.Flags().Changed("background-pressure") {
		cfg.BackgroundPressure = bgPressure
	}
	if cmd.Flags().Changed("generalized-background-pressure") {
		cfg.GeneralizedBackgroundPressure = genBgPress
	}
	if cmd.Flags().Changed("transport-velocity") {
		cfg.TransportVelocity = transportVel
	}

	return cfg, nil
}

func runEval(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}

	scene, err := config.LoadScene(args[0])
	if err != nil {
		return fmt.Errorf("failed to load scene: %w", err)
	}
	if err := scene.Validate(); err != nil {
		return fmt.Errorf("invalid scene: %w", err)
	}

	form, err := momentum.New(momentum.Kind(cfg.Formulation))
	if err != nil {
		return err
	}

	particles := scene.BuildParticles()
	pairList := scene.BuildPairs(cfg.KernelCorrection)

	ev := pairs.NewEvaluator(form, particles, pairs.Options{
		BackgroundPressure:            cfg.BackgroundPressure,
		GeneralizedBackgroundPressure: cfg.GeneralizedBackgroundPressure,
		TransportVelocity:             cfg.TransportVelocity,
	})

	fmt.Printf("evaluating %d pairs over %d particles (%s)...\n",
		len(pairList), len(particles), cfg.Formulation)
	start := time.Now()

	if err := ev.EvaluateParallel(pairList, cfg.Workers); err != nil {
		return err
	}

	elapsed := time.Since(start)

	obs := []metrics.Metric{metrics.NewNetForce(), metrics.NewPeakAcceleration()}
	for i, p := range particles {
		if p.Ghost {
			continue
		}
		for _, m := range obs {
			m.Observe(p.Mass, ev.Acc[i])
		}
	}
	vals := make(map[string]float64, len(obs))
	for _, m := range obs {
		vals[m.Name()] = m.Value()
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}
	runID, err := st.Save(cfg.Formulation, len(pairList), cfg.Workers, ev.Acc, vals)
	if err != nil {
		return err
	}

	fmt.Println(titleStyle.Render("evaluation complete"))
	fmt.Printf("%s %v\n", labelStyle.Render("elapsed:"), elapsed)
	fmt.Printf("%s %s\n", labelStyle.Render("run id:"), valueStyle.Render(runID))
	fmt.Println(labelStyle.Render("metrics:"))
	for _, m := range obs {
		fmt.Printf("  %s: %s\n", m.Name(), valueStyle.Render(fmt.Sprintf("%.6g", m.Value())))
	}

	return nil
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	sort.Slice(runs, func(i, j int) bool { return runs[i].Timestamp.Before(runs[j].Timestamp) })

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tFORMULATION\tPARTICLES\tPAIRS\tNET FORCE")
	for _, r := range runs {
		fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%.3g\n",
			r.ID, r.Formulation, r.Particles, r.Pairs, r.Metrics["net_force"])
	}
	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	acc, err := st.LoadAccelerations(args[0])
	if err != nil {
		return err
	}

	data := make([]float64, len(acc))
	for i, a := range acc {
		data[i] = a.Norm()
	}

	graph := asciigraph.Plot(data,
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption("acceleration magnitude per particle"),
	)
	fmt.Println(graph)

	return nil
}

func exportJSON(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(meta)
}
