package config

import (
	"errors"
	"fmt"
	"os"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/moguls753/kvbench/internal/benchmark"
	"github.com/moguls753/kvbench/internal/container"
)

var ErrInvalidConfig = errors.New("invalid configuration")

// Config is the sweep matrix: every container is run for every key size and
// every element count.
type Config struct {
	Containers   []string `yaml:"containers"`
	Baseline     string   `yaml:"baseline"`
	KeySizes     []int    `yaml:"key_sizes"`
	ValueSize    int      `yaml:"value_size"`
	Elements     []int    `yaml:"elements"`
	Iterations   uint64   `yaml:"iterations"`
	Trials       int      `yaml:"trials"`
	Workload     string   `yaml:"workload"`
	MissFraction float64  `yaml:"miss_fraction"`
	Seed         uint64   `yaml:"seed"` // 0 derives a seed from the clock
	KeyPattern   string   `yaml:"key_pattern"`
	Scenario     string   `yaml:"scenario,omitempty"`
	Summary      bool     `yaml:"summary"`
	Format       string   `yaml:"format"`
}

// Output formats
const (
	FormatText   = "text"
	FormatCSV    = "csv"
	FormatCSVRaw = "csv-raw"
)

var Formats = []string{FormatText, FormatCSV, FormatCSVRaw}

// DefaultConfig reproduces the classic sweep: builtin hash map against the ordered
// tree, 1e6 lookups, 10 trials, 5% misses.
func DefaultConfig() Config {
	return Config{
		Containers:   []string{"hashmap", "treemap"},
		Baseline:     "treemap",
		KeySizes:     []int{1, 2, 3, 4, 5, 6, 7, 8, 16, 32, 64, 128},
		ValueSize:    8,
		Elements:     []int{1, 2, 3, 4, 8, 10, 12, 16, 24, 32, 48, 60, 256, 512, 1024, 2048, 4096, 10000},
		Iterations:   1000000,
		Trials:       10,
		Workload:     benchmark.ShuffledWithMisses.String(),
		MissFraction: 0.05,
		KeyPattern:   string(benchmark.PatternRandom),
		Format:       FormatText,
	}
}

// Load reads a YAML file on top of the defaults. An empty path returns the defaults.
func Load(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return cfg, nil
}

// Shapes expands the key sizes into benchmark shapes sharing the value size
func (c Config) Shapes() []benchmark.Shape {
	shapes := make([]benchmark.Shape, 0, len(c.KeySizes))
	for _, ks := range c.KeySizes {
		shapes = append(shapes, benchmark.Shape{KeySize: ks, ValSize: c.ValueSize})
	}
	return shapes
}

// Validate reports every problem at once
func (c Config) Validate() error {
	var errs []error

	if len(c.Containers) == 0 {
		errs = append(errs, errors.New("no containers selected"))
	}
	for _, name := range c.Containers {
		if _, err := container.Lookup(name); err != nil {
			errs = append(errs, err)
		}
	}
	if c.Baseline != "" && !slices.Contains(c.Containers, c.Baseline) {
		errs = append(errs, fmt.Errorf("baseline %q is not among the selected containers", c.Baseline))
	}
	if len(c.KeySizes) == 0 {
		errs = append(errs, errors.New("no key sizes"))
	}
	for _, ks := range c.KeySizes {
		if ks < 1 {
			errs = append(errs, fmt.Errorf("key size %d must be positive", ks))
		}
	}
	if c.ValueSize < 1 {
		errs = append(errs, fmt.Errorf("value size %d must be positive", c.ValueSize))
	}
	if len(c.Elements) == 0 {
		errs = append(errs, errors.New("no element counts"))
	}
	for _, n := range c.Elements {
		if n < 1 {
			errs = append(errs, fmt.Errorf("element count %d must be positive", n))
		}
	}
	if c.Trials < 1 {
		errs = append(errs, fmt.Errorf("trials %d must be at least 1", c.Trials))
	}
	if c.MissFraction < 0 || c.MissFraction > 1 {
		errs = append(errs, fmt.Errorf("miss fraction %v outside [0, 1]", c.MissFraction))
	}
	if _, err := benchmark.ParseWorkloadType(c.Workload); err != nil {
		errs = append(errs, err)
	}
	if pattern, err := benchmark.ParseKeyPattern(c.KeyPattern); err != nil {
		errs = append(errs, err)
	} else {
		for _, ks := range c.KeySizes {
			if ks > 0 && ks < pattern.MinKeySize() {
				errs = append(errs, fmt.Errorf("key pattern %s needs key sizes of at least %d bytes, got %d",
					pattern, pattern.MinKeySize(), ks))
			}
		}
	}

	if !slices.Contains(Formats, c.Format) {
		errs = append(errs, fmt.Errorf("unknown output format %q", c.Format))
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, errors.Join(errs...))
	}
	return nil
}
