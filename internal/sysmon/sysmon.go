// Package sysmon samples host CPU topology and utilisation for the verbose
// execution banner.
package sysmon

import (
	"runtime"

	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/mem"
)

// Stats holds a single snapshot of system-wide resource usage.
type Stats struct {
	LogicalCPUs  int     // hardware threads
	PhysicalCPUs int     // cores, 0 if unknown
	CPUPercent   float64 // 0.0 .. 100.0
	MemPercent   float64 // 0.0 .. 100.0
}

// Sample collects a single system-wide snapshot. CPU utilisation uses
// interval=0 (delta since last call). Fields that cannot be read stay zero,
// except LogicalCPUs which falls back to the Go runtime's view.
func Sample() Stats {
	s := Stats{LogicalCPUs: runtime.NumCPU()}
	if n, err := cpu.Counts(true); err == nil && n > 0 {
		s.LogicalCPUs = n
	}
	if n, err := cpu.Counts(false); err == nil {
		s.PhysicalCPUs = n
	}
	if pcts, err := cpu.Percent(0, false); err == nil && len(pcts) > 0 {
		s.CPUPercent = pcts[0]
	}
	if vmem, err := mem.VirtualMemory(); err == nil && vmem != nil {
		s.MemPercent = vmem.UsedPercent
	}
	return s
}
