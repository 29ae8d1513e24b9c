package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/moguls753/kvbench/internal/benchmark"
	"github.com/moguls753/kvbench/internal/config"
	"github.com/moguls753/kvbench/internal/container"
	"github.com/moguls753/kvbench/internal/runner"
)

var rootCmd = &cobra.Command{
	Use:   "kvbench",
	Short: "Measure lookup latency of key/value containers",
	Long: `kvbench fills key/value containers with random fixed-size keys and times
repeated lookups over them, reporting mean and standard deviation per
container, key size and element count.`,
	SilenceUsage: true,
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the benchmark sweep",
	RunE:  runSweep,
}

var containersCmd = &cobra.Command{
	Use:   "containers",
	Short: "List the containers that can be benchmarked",
	Run: func(cmd *cobra.Command, args []string) {
		for _, name := range container.Names() {
			e, _ := container.Lookup(name)
			fmt.Fprintf(cmd.OutOrStdout(), "%-10s %s\n", e.Name, e.Description)
		}
	},
}

var scenariosCmd = &cobra.Command{
	Use:   "scenarios",
	Short: "List the workload presets",
	Run: func(cmd *cobra.Command, args []string) {
		for _, s := range runner.Scenarios {
			fmt.Fprintf(cmd.OutOrStdout(), "%-18s %s\n", s.Name, s.Description)
		}
	},
}

var (
	configPath   string
	containers   []string
	baseline     string
	keySizes     []int
	valueSize    int
	elements     []int
	iterations   uint64
	trials       int
	workload     string
	missFraction float64
	seed         uint64
	keyPattern   string
	scenario     string
	summary      bool
	format       string
	verbose      bool
)

func init() {
	defaults := config.DefaultConfig()

	f := runCmd.Flags()
	f.StringVarP(&configPath, "config", "c", "", "YAML file with the sweep matrix")
	f.StringSliceVar(&containers, "containers", defaults.Containers, "containers to benchmark")
	f.StringVar(&baseline, "baseline", defaults.Baseline, "container the others are compared against")
	f.IntSliceVar(&keySizes, "key-sizes", defaults.KeySizes, "key sizes in bytes")
	f.IntVar(&valueSize, "value-size", defaults.ValueSize, "value size in bytes")
	f.IntSliceVar(&elements, "elements", defaults.Elements, "element counts")
	f.Uint64Var(&iterations, "iterations", defaults.Iterations, "lookups per trial")
	f.IntVar(&trials, "trials", defaults.Trials, "timed trials per configuration")
	f.StringVar(&workload, "workload", defaults.Workload, "workload type ("+workloadNames()+")")
	f.Float64Var(&missFraction, "miss-fraction", defaults.MissFraction, "fraction of probed keys never inserted (shuffled-with-misses only)")
	f.Uint64Var(&seed, "seed", defaults.Seed, "random seed, 0 derives one from the clock")
	f.StringVar(&keyPattern, "key-pattern", defaults.KeyPattern, "key pattern ("+keyPatternNames()+"); uuidv4 and ulid need key sizes of 16 or more")
	f.StringVar(&scenario, "scenario", "", "workload preset, overrides --workload and --miss-fraction")
	f.BoolVar(&summary, "summary", defaults.Summary, "print statistical summary against the baseline")
	f.StringVar(&format, "format", defaults.Format, "output format ("+strings.Join(config.Formats, ", ")+")")
	f.BoolVarP(&verbose, "verbose", "v", false, "debug logging")

	rootCmd.AddCommand(runCmd, containersCmd, scenariosCmd)
}

// loadConfig reads --config and lets explicitly set flags override it
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return cfg, err
	}

	f := cmd.Flags()
	if f.Changed("containers") {
		cfg.Containers = containers
	}
	if f.Changed("baseline") {
		cfg.Baseline = baseline
	}
	if f.Changed("key-sizes") {
		cfg.KeySizes = keySizes
	}
	if f.Changed("value-size") {
		cfg.ValueSize = valueSize
	}
	if f.Changed("elements") {
		cfg.Elements = elements
	}
	if f.Changed("iterations") {
		cfg.Iterations = iterations
	}
	if f.Changed("trials") {
		cfg.Trials = trials
	}
	if f.Changed("workload") {
		cfg.Workload = workload
	}
	if f.Changed("miss-fraction") {
		cfg.MissFraction = missFraction
	}
	if f.Changed("seed") {
		cfg.Seed = seed
	}
	if f.Changed("key-pattern") {
		cfg.KeyPattern = keyPattern
	}
	if f.Changed("scenario") {
		cfg.Scenario = scenario
	}
	if f.Changed("summary") {
		cfg.Summary = summary
	}
	if f.Changed("format") {
		cfg.Format = format
	}
	return cfg, nil
}

func runSweep(cmd *cobra.Command, args []string) error {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	sweep, err := runner.New(cfg, cmd.OutOrStdout(), logger)
	if err != nil {
		return err
	}
	logger.Debug("starting sweep",
		"run_id", sweep.RunID(),
		"seed", sweep.Seed(),
		"key_pattern", cfg.KeyPattern,
		"workload", cfg.Workload,
	)

	_, err = sweep.Run(cmd.Context())
	return err
}

func workloadNames() string {
	var names []string
	for _, w := range benchmark.WorkloadTypes() {
		names = append(names, w.String())
	}
	return strings.Join(names, ", ")
}

func keyPatternNames() string {
	var names []string
	for _, p := range benchmark.KeyPatterns {
		names = append(names, string(p))
	}
	return strings.Join(names, ", ")
}
