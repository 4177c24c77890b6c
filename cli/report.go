package cli

import (
	"fmt"

	"github.com/shirou/gopsutil/cpu"
	"github.com/shirou/gopsutil/host"
	"github.com/shirou/gopsutil/mem"
)

// hostReport summarises the machine a run executes on. Fields that cannot be
// queried are reported as "unknown".
func hostReport() string {
	platform, model, ram := "unknown", "unknown", "unknown"
	if h, err := host.Info(); err == nil && h.Platform != "" {
		platform = h.Platform
	}
	if c, err := cpu.Info(); err == nil && len(c) > 0 {
		model = c[0].ModelName
	}
	if v, err := mem.VirtualMemory(); err == nil {
		ram = fmt.Sprintf("%d GB", v.Total/1024/1024/1024)
	}

	return fmt.Sprintf("platform=%s cpu=%q ram=%s", platform, model, ram)
}
