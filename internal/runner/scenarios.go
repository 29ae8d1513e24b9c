package runner

import (
	"fmt"

	"github.com/moguls753/kvbench/internal/benchmark"
	"github.com/moguls753/kvbench/internal/config"
)

// Scenario is a named workload preset
type Scenario struct {
	Name         string
	Description  string
	Workload     benchmark.WorkloadType
	MissFraction float64
}

// Scenarios lists the presets selectable with --scenario
var Scenarios = []Scenario{
	{
		Name:         "lookup-misses",
		Description:  "shuffled lookups, 5% of probed keys were never inserted",
		Workload:     benchmark.ShuffledWithMisses,
		MissFraction: 0.05,
	},
	{
		Name:        "lookup-hits",
		Description: "shuffled lookups, every probed key is present",
		Workload:    benchmark.Shuffled,
	},
	{
		Name:        "lookup-sequential",
		Description: "lookups in insertion order, every probed key is present",
		Workload:    benchmark.AllUniqueNonShuffled,
	},
}

func LookupScenario(name string) (Scenario, error) {
	for _, s := range Scenarios {
		if s.Name == name {
			return s, nil
		}
	}
	return Scenario{}, fmt.Errorf("unknown scenario %q", name)
}

// Apply overrides the workload settings of cfg
func (s Scenario) Apply(cfg *config.Config) {
	cfg.Workload = s.Workload.String()
	cfg.MissFraction = s.MissFraction
}
