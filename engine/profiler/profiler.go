package profiler

import (
	"runtime"
	"sort"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

// Probe reports one value to include in every profiler report.
type Probe func() any

// Profiler tracks tick rate and memory statistics and logs them at a fixed interval.
// Named probes add application values (camera pose, velocity) to each report.
type Profiler struct {
	mu *sync.Mutex

	logger         *logrus.Logger
	updateInterval time.Duration
	probes         map[string]Probe

	tickCount      int
	lastTime       time.Time
	memStats       runtime.MemStats
	lastGCCount    uint32
	lastTotalAlloc uint64
}

// ProfilerOption is a functional option for configuring a Profiler.
type ProfilerOption func(*Profiler)

// WithInterval sets how often a report is logged. Defaults to 1 second.
//
// Parameters:
//   - interval: time between reports
//
// Returns:
//   - ProfilerOption: option function to apply
func WithInterval(interval time.Duration) ProfilerOption {
	return func(p *Profiler) {
		p.updateInterval = interval
	}
}

// WithLogger sets the logger reports are written to. Defaults to logrus.StandardLogger().
//
// Parameters:
//   - logger: the logger (nil is ignored)
//
// Returns:
//   - ProfilerOption: option function to apply
func WithLogger(logger *logrus.Logger) ProfilerOption {
	return func(p *Profiler) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// NewProfiler creates a new Profiler.
//
// Parameters:
//   - options: functional options to configure the profiler
//
// Returns:
//   - *Profiler: the newly created profiler instance
func NewProfiler(options ...ProfilerOption) *Profiler {
	p := &Profiler{
		mu:             &sync.Mutex{},
		logger:         logrus.StandardLogger(),
		updateInterval: time.Second,
		probes:         make(map[string]Probe),
		lastTime:       time.Now(),
	}
	for _, opt := range options {
		opt(p)
	}
	return p
}

// AddProbe registers a named value to sample on every report. A probe with the same
// name replaces the previous one.
//
// Parameters:
//   - name: the log field name
//   - probe: function returning the current value
func (p *Profiler) AddProbe(name string, probe Probe) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.probes[name] = probe
}

// RemoveProbe unregisters a named probe.
//
// Parameters:
//   - name: the log field name
func (p *Profiler) RemoveProbe(name string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	delete(p.probes, name)
}

// Tick should be called once per engine tick.
// Logs a report when the update interval has elapsed: tick rate, heap usage, allocation rate,
// GC count and pause times, process memory and every probe value.
//
// Returns:
//   - bool: true if a report was logged this tick
func (p *Profiler) Tick() bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.tickCount++
	now := time.Now()
	elapsed := now.Sub(p.lastTime)
	if elapsed < p.updateInterval || elapsed <= 0 {
		return false
	}

	runtime.ReadMemStats(&p.memStats)
	allocDelta := p.memStats.TotalAlloc - p.lastTotalAlloc

	gcCount := p.memStats.NumGC
	var lastPauseUs, maxPauseUs uint64
	if gcCount > 0 {
		// PauseNs is a circular buffer of the last 256 pauses.
		lastPauseUs = p.memStats.PauseNs[(gcCount-1)%256] / 1000
		startIdx := p.lastGCCount
		if gcCount-startIdx > 256 {
			startIdx = gcCount - 256
		}
		for i := startIdx; i < gcCount; i++ {
			if pause := p.memStats.PauseNs[i%256] / 1000; pause > maxPauseUs {
				maxPauseUs = pause
			}
		}
	}

	fields := logrus.Fields{
		"tps":        float64(p.tickCount) / elapsed.Seconds(),
		"heap_mb":    float64(p.memStats.Alloc) / 1024 / 1024,
		"alloc_mb_s": float64(allocDelta) / 1024 / 1024 / elapsed.Seconds(),
		"gc":         gcCount,
		"gc_last_us": lastPauseUs,
		"gc_max_us":  maxPauseUs,
		"sys_mb":     float64(p.memStats.Sys) / 1024 / 1024,
	}
	names := make([]string, 0, len(p.probes))
	for name := range p.probes {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fields[name] = p.probes[name]()
	}
	p.logger.WithFields(fields).Info("profiler")

	p.tickCount = 0
	p.lastTime = now
	p.lastGCCount = gcCount
	p.lastTotalAlloc = p.memStats.TotalAlloc
	return true
}
