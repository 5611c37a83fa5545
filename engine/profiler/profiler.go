package profiler

import (
	"log"
	"runtime"
	"time"
)

// Stats is one profiler report.
type Stats struct {
	FPS         float64
	HeapMB      float64
	AllocRateMB float64
	SysMB       float64
	GCCount     uint32
	LastPauseUs uint64
	MaxPauseUs  uint64
	Extra       string
}

// Profiler tracks frame rate and memory statistics for performance monitoring.
// Outputs stats to the log at a configurable interval.
type Profiler struct {
	frameCount     int
	lastTime       time.Time
	updateInterval time.Duration
	memStats       runtime.MemStats
	lastGCCount    uint32
	lastTotalAlloc uint64

	now   func() time.Time
	extra func() string
	quiet bool
	last  Stats
}

// NewProfiler creates a new Profiler. Update interval defaults to 1 second.
//
// Parameters:
//   - options: functional options to configure the profiler
//
// Returns:
//   - *Profiler: the newly created profiler instance
func NewProfiler(options ...ProfilerOption) *Profiler {
	p := &Profiler{
		updateInterval: time.Second,
		now:            time.Now,
	}
	for _, opt := range options {
		opt(p)
	}
	p.lastTime = p.now()
	return p
}

// Tick should be called once per frame. When the update interval has elapsed it samples
// memory statistics, logs a report and resets the frame counter.
//
// Returns:
//   - bool: true if a report was produced this tick
func (p *Profiler) Tick() bool {
	p.frameCount++
	current := p.now()
	elapsed := current.Sub(p.lastTime)
	if elapsed < p.updateInterval || elapsed <= 0 {
		return false
	}

	runtime.ReadMemStats(&p.memStats)
	s := Stats{
		FPS:         float64(p.frameCount) / elapsed.Seconds(),
		HeapMB:      float64(p.memStats.Alloc) / 1024 / 1024,
		SysMB:       float64(p.memStats.Sys) / 1024 / 1024,
		AllocRateMB: float64(p.memStats.TotalAlloc-p.lastTotalAlloc) / 1024 / 1024 / elapsed.Seconds(),
		GCCount:     p.memStats.NumGC,
	}
	s.LastPauseUs, s.MaxPauseUs = pauses(&p.memStats, p.lastGCCount)
	if p.extra != nil {
		s.Extra = p.extra()
	}

	if !p.quiet {
		line := "[Profiler] FPS: %.2f | Heap: %.2f MB | Alloc Rate: %.2f MB/s | GC: %d (last: %d µs, max: %d µs) | Sys: %.2f MB"
		args := []any{s.FPS, s.HeapMB, s.AllocRateMB, s.GCCount, s.LastPauseUs, s.MaxPauseUs, s.SysMB}
		if s.Extra != "" {
			line += " | %s"
			args = append(args, s.Extra)
		}
		log.Printf(line, args...)
	}

	p.last = s
	p.frameCount = 0
	p.lastTime = current
	p.lastGCCount = s.GCCount
	p.lastTotalAlloc = p.memStats.TotalAlloc
	return true
}

// Last returns the most recent report.
//
// Returns:
//   - Stats: the last report, zero before the first one
func (p *Profiler) Last() Stats {
	return p.last
}

// pauses returns the latest GC pause and the longest pause since sinceGC, in microseconds.
// PauseNs is a circular buffer of the last 256 pauses.
func pauses(m *runtime.MemStats, sinceGC uint32) (last, longest uint64) {
	n := m.NumGC
	if n == 0 {
		return 0, 0
	}
	last = m.PauseNs[(n-1)%256] / 1000
	start := sinceGC
	if n-start > 256 {
		start = n - 256
	}
	for i := start; i < n; i++ {
		if pause := m.PauseNs[i%256] / 1000; pause > longest {
			longest = pause
		}
	}
	return last, longest
}

// ProfilerOption configures a Profiler.
type ProfilerOption func(*Profiler)

// WithInterval sets how often a report is produced. Non-positive values are ignored.
//
// Parameters:
//   - d: report interval
//
// Returns:
//   - ProfilerOption: option function to apply
func WithInterval(d time.Duration) ProfilerOption {
	return func(p *Profiler) {
		if d > 0 {
			p.updateInterval = d
		}
	}
}

// WithClock replaces the wall clock.
//
// Parameters:
//   - now: clock function
//
// Returns:
//   - ProfilerOption: option function to apply
func WithClock(now func() time.Time) ProfilerOption {
	return func(p *Profiler) {
		if now != nil {
			p.now = now
		}
	}
}

// WithExtra appends a host-supplied field (for example the mounted label count) to each report.
//
// Parameters:
//   - extra: returns the text to append
//
// Returns:
//   - ProfilerOption: option function to apply
func WithExtra(extra func() string) ProfilerOption {
	return func(p *Profiler) {
		p.extra = extra
	}
}

// WithQuiet disables logging; reports are still available through Last.
//
// Parameters:
//   - quiet: true to suppress log output
//
// Returns:
//   - ProfilerOption: option function to apply
func WithQuiet(quiet bool) ProfilerOption {
	return func(p *Profiler) {
		p.quiet = quiet
	}
}
