// Package host describes the machine a sweep runs on, so printed timings can be
// read against the hardware that produced them.
package host

import (
	"os"
	"runtime"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/mem"
)

type Info struct {
	Hostname    string
	GoVersion   string
	OS          string
	Arch        string
	CPUModel    string
	NumCPU      int
	GOMAXPROCS  int
	TotalMemory uint64 // bytes
	FreeMemory  uint64 // bytes
}

// Describe collects host information. Fields gopsutil cannot read on this platform
// are left empty rather than failing the sweep.
func Describe() Info {
	info := Info{
		GoVersion:  runtime.Version(),
		OS:         runtime.GOOS,
		Arch:       runtime.GOARCH,
		NumCPU:     runtime.NumCPU(),
		GOMAXPROCS: runtime.GOMAXPROCS(0),
	}
	if hostname, err := os.Hostname(); err == nil {
		info.Hostname = hostname
	}
	if cpus, err := cpu.Info(); err == nil && len(cpus) > 0 {
		info.CPUModel = cpus[0].ModelName
	}
	if vm, err := mem.VirtualMemory(); err == nil {
		info.TotalMemory = vm.Total
		info.FreeMemory = vm.Available
	}
	return info
}
