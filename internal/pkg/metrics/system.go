package metrics

import (
	"context"
	"runtime"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/mem"
)

const cpuSampleWindow = time.Second

var (
	SystemCPUUsage = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "system_cpu_usage_percent",
			Help: "CPU usage percentage",
		},
	)

	SystemMemoryUsage = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "system_memory_usage_bytes",
			Help: "System memory usage in bytes",
		},
	)

	ApplicationHeapUsage = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "pickup_application_heap_bytes",
			Help: "Go heap allocation of the pickup service",
		},
	)

	ApplicationGoroutines = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "pickup_application_goroutines",
			Help: "Number of goroutines of the pickup service",
		},
	)
)

// SystemCollector снимает показатели хоста и процесса, запускается фоновым воркером.
type SystemCollector struct {
	interval time.Duration
}

func NewSystemCollector(interval time.Duration) *SystemCollector {
	return &SystemCollector{interval: interval}
}

func (c *SystemCollector) TTL() time.Duration {
	return c.interval
}

func (c *SystemCollector) Info() string {
	return "system metrics"
}

// Do ошибки gopsutil не критичны, соответствующий gauge просто не обновляется.
func (c *SystemCollector) Do(ctx context.Context) error {
	cpuPercent, err := cpu.PercentWithContext(ctx, cpuSampleWindow, false)
	if err == nil && len(cpuPercent) > 0 {
		SystemCPUUsage.Set(cpuPercent[0])
	}

	vmStat, err := mem.VirtualMemoryWithContext(ctx)
	if err == nil {
		SystemMemoryUsage.Set(float64(vmStat.Used))
	}

	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	ApplicationHeapUsage.Set(float64(m.Alloc))
	ApplicationGoroutines.Set(float64(runtime.NumGoroutine()))

	return ctx.Err()
}
