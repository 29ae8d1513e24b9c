package display

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/moguls753/kvbench/internal/benchmark"
	"github.com/moguls753/kvbench/internal/host"
)

// Row is one finished request of the sweep
type Row struct {
	Container string
	Shape     benchmark.Shape
	Result    *benchmark.Result
}

// ResultLine formats a result as
// <container><KEY, VAL> iter:<N> elem:<M> <avg>msec dev=<stddev>
func ResultLine(container string, shape benchmark.Shape, r *benchmark.Result) string {
	return fmt.Sprintf("%s<%-5d, %d> iter:%d elem:%-7d %-8.2fmsec dev=%.4f",
		container,
		shape.KeySize,
		shape.ValSize,
		r.Request.Iterations,
		r.Elements,
		r.MeanMillis(),
		r.DevMillis(),
	)
}

func PrintResult(w io.Writer, row Row) {
	fmt.Fprintln(w, ResultLine(row.Container, row.Shape, row.Result))
}

// Header describes the sweep about to run
type Header struct {
	RunID      string
	Started    time.Time
	Host       host.Info
	Containers []string
	Baseline   string
	Workload   string
	Misses     float64
	Iterations uint64
	Trials     int
	KeyPattern string
	Seed       uint64
}

func PrintHeader(w io.Writer, h Header) {
	fmt.Fprintln(w, "Key/Value Container Lookup Benchmark")
	fmt.Fprintln(w, strings.Repeat("=", 50))
	fmt.Fprintf(w, "Run:          %s\n", h.RunID)
	fmt.Fprintf(w, "Started:      %s\n", h.Started.Format(time.RFC3339))
	if h.Host.Hostname != "" {
		fmt.Fprintf(w, "Host:         %s\n", h.Host.Hostname)
	}
	fmt.Fprintf(w, "Go:           %s %s/%s\n", h.Host.GoVersion, h.Host.OS, h.Host.Arch)
	if h.Host.CPUModel != "" {
		fmt.Fprintf(w, "CPU:          %s\n", h.Host.CPUModel)
	}
	fmt.Fprintf(w, "Cores:        %d (GOMAXPROCS %d)\n", h.Host.NumCPU, h.Host.GOMAXPROCS)
	if h.Host.TotalMemory > 0 {
		fmt.Fprintf(w, "Memory:       %s total, %s available\n",
			FormatBytes(int64(h.Host.TotalMemory)), FormatBytes(int64(h.Host.FreeMemory)))
	}
	fmt.Fprintf(w, "Containers:   %s\n", strings.Join(h.Containers, ", "))
	if h.Baseline != "" {
		fmt.Fprintf(w, "Baseline:     %s\n", h.Baseline)
	}
	fmt.Fprintf(w, "Workload:     %s", h.Workload)
	if h.Workload == benchmark.ShuffledWithMisses.String() {
		fmt.Fprintf(w, " (%.1f%% misses)", h.Misses*100)
	}
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Iterations:   %d\n", h.Iterations)
	fmt.Fprintf(w, "Trials:       %d\n", h.Trials)
	fmt.Fprintf(w, "Key pattern:  %s\n", h.KeyPattern)
	fmt.Fprintf(w, "Seed:         %d\n", h.Seed)
	fmt.Fprintln(w)
}

func FormatBytes(bytes int64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}
	div, exp := int64(unit), 0
	for n := bytes / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %cB", float64(bytes)/float64(div), "KMGTPE"[exp])
}
