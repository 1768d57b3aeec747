package stats

import (
	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/mem"
)

// ResourceSnapshot captures host resource usage at a point in time, attached
// to terminal attack events so long runs can be correlated with load.
type ResourceSnapshot struct {
	CPUPercent    float64 `json:"cpu_percent"`
	MemoryPercent float64 `json:"memory_percent"`
	MemoryUsedMB  uint64  `json:"memory_used_mb"`
}

const bytesPerMB = 1024 * 1024

// CaptureResources samples current CPU and memory usage. Sampling failures are
// tolerated: the affected fields stay zero rather than failing the attack.
func CaptureResources() ResourceSnapshot {
	var snapshot ResourceSnapshot

	if percents, err := cpu.Percent(0, false); err == nil && len(percents) > 0 {
		snapshot.CPUPercent = percents[0]
	}

	if vm, err := mem.VirtualMemory(); err == nil {
		snapshot.MemoryPercent = vm.UsedPercent
		snapshot.MemoryUsedMB = vm.Used / bytesPerMB
	}

	return snapshot
}
