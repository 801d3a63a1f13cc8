package metrics

import (
	"runtime"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/mem"
)

var (
	SystemCPUUsagePercent = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "system_cpu_usage_percent",
			Help: "Current CPU usage percentage",
		},
		[]string{"service"},
	)

	SystemMemoryUsedBytes = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "system_memory_used_bytes",
			Help: "Current memory usage in bytes",
		},
		[]string{"service"},
	)

	GoMemstatsAllocBytes = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "console_go_memstats_alloc_bytes",
			Help: "Number of bytes allocated and still in use in the console service",
		},
		[]string{"service"},
	)

	GoMemstatsSysBytes = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "console_go_memstats_sys_bytes",
			Help: "Number of bytes obtained from system in the console service",
		},
		[]string{"service"},
	)

	GoGoroutines = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "console_go_goroutines",
			Help: "Number of goroutines in the console service",
		},
		[]string{"service"},
	)
)

// UpdateSystemMetrics updates system and Go runtime metrics with service label
func UpdateSystemMetrics(serviceName string) {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)

	GoMemstatsAllocBytes.WithLabelValues(serviceName).Set(float64(m.Alloc))
	GoMemstatsSysBytes.WithLabelValues(serviceName).Set(float64(m.Sys))
	GoGoroutines.WithLabelValues(serviceName).Set(float64(runtime.NumGoroutine()))

	// gopsutil calls can fail on exotic platforms; skip the sample then
	if percents, err := cpu.Percent(0, false); err == nil && len(percents) > 0 {
		SystemCPUUsagePercent.WithLabelValues(serviceName).Set(percents[0])
	}
	if vm, err := mem.VirtualMemory(); err == nil {
		SystemMemoryUsedBytes.WithLabelValues(serviceName).Set(float64(vm.Used))
	}
}

// StartSystemMetricsCollection starts a goroutine to collect system metrics
func StartSystemMetricsCollection(serviceName string) {
	go func() {
		ticker := time.NewTicker(15 * time.Second)
		defer ticker.Stop()

		for range ticker.C {
			UpdateSystemMetrics(serviceName)
		}
	}()
}
