package profiler

import (
	"log"
	"runtime"
	"time"
)

// Profiler tracks frame statistics for an on-demand render loop. Because
// frames only render when something changed, it reports frames per wall
// second alongside the time spent inside the render call, which is the
// number that actually reflects scene cost.
type Profiler struct {
	frameCount     int
	renderTime     time.Duration
	lastTime       time.Time
	updateInterval time.Duration
	memStats       runtime.MemStats
}

// New creates a Profiler logging once per second.
//
// Returns:
//   - *Profiler: the newly created profiler
func New() *Profiler {
	return &Profiler{
		lastTime:       time.Now(),
		updateInterval: time.Second,
	}
}

// RecordFrame accounts one rendered frame and the time it took.
//
// Parameters:
//   - renderTime: the duration of the render call
func (p *Profiler) RecordFrame(renderTime time.Duration) {
	p.frameCount++
	p.renderTime += renderTime
}

// Tick logs the accumulated statistics when the update interval has
// elapsed. Call it once per loop iteration.
//
// Returns:
//   - bool: true if stats were logged this tick
func (p *Profiler) Tick() bool {
	now := time.Now()
	elapsed := now.Sub(p.lastTime)
	if elapsed < p.updateInterval {
		return false
	}

	fps := float64(p.frameCount) / elapsed.Seconds()
	var avgRenderMs float64
	if p.frameCount > 0 {
		avgRenderMs = p.renderTime.Seconds() * 1000 / float64(p.frameCount)
	}

	runtime.ReadMemStats(&p.memStats)
	heapMB := float64(p.memStats.Alloc) / 1024 / 1024

	log.Printf("[profiler] frames: %d | fps: %.2f | render: %.2f ms avg | heap: %.2f MB",
		p.frameCount, fps, avgRenderMs, heapMB)

	p.frameCount = 0
	p.renderTime = 0
	p.lastTime = now
	return true
}
