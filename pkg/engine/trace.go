package engine

import (
	"sync"
	"time"

	"github.com/go-drift/lattice/pkg/state"
)

const (
	traceSamplesDefault   = 240
	defaultTraceThreshold = 16667 * time.Microsecond
)

// PhaseTimings captures time spent in each update phase (ms).
type PhaseTimings struct {
	OverlayMs  float64 `json:"overlayMs"`
	DispatchMs float64 `json:"dispatchMs"`
	LayoutMs   float64 `json:"layoutMs"`
}

// UpdateCounts captures per-update workload indicators.
type UpdateCounts struct {
	Events    int `json:"events"`
	Captured  int `json:"captured"`
	Messages  int `json:"messages"`
	Relayouts int `json:"relayouts"`
	TreeNodes int `json:"treeNodes"`
}

// UpdateSample is a single update trace sample.
type UpdateSample struct {
	Timestamp int64        `json:"ts"`
	UpdateMs  float64      `json:"updateMs"`
	Phases    PhaseTimings `json:"phases"`
	Counts    UpdateCounts `json:"counts"`
	Outdated  bool         `json:"outdated,omitempty"`
	Overlay   bool         `json:"overlay,omitempty"`
}

// Timeline is a chronological view of the buffer.
type Timeline struct {
	Samples     []UpdateSample `json:"samples"`
	SlowUpdates int            `json:"slowUpdates"`
	ThresholdMs float64        `json:"thresholdMs"`
}

// TraceBuffer stores recent update samples in a ring buffer.
type TraceBuffer struct {
	mu        sync.RWMutex
	samples   []UpdateSample
	index     int
	count     int
	slow      int
	threshold time.Duration
}

// NewTraceBuffer creates a new trace buffer. Non-positive arguments select
// the defaults of 240 samples and one 60Hz frame.
func NewTraceBuffer(capacity int, threshold time.Duration) *TraceBuffer {
	if capacity <= 0 {
		capacity = traceSamplesDefault
	}
	if threshold <= 0 {
		threshold = defaultTraceThreshold
	}
	return &TraceBuffer{
		samples:   make([]UpdateSample, capacity),
		threshold: threshold,
	}
}

// Capacity returns the buffer capacity.
func (b *TraceBuffer) Capacity() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.samples)
}

// SetThreshold updates the slow update threshold.
func (b *TraceBuffer) SetThreshold(threshold time.Duration) {
	if threshold <= 0 {
		threshold = defaultTraceThreshold
	}
	b.mu.Lock()
	b.threshold = threshold
	b.mu.Unlock()
}

// Threshold returns the slow update threshold.
func (b *TraceBuffer) Threshold() time.Duration {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.threshold
}

// Add records a sample and updates the slow update count.
func (b *TraceBuffer) Add(sample UpdateSample, elapsed time.Duration) {
	b.mu.Lock()
	b.samples[b.index] = sample
	b.index = (b.index + 1) % len(b.samples)
	if b.count < len(b.samples) {
		b.count++
	}
	if elapsed > b.threshold {
		b.slow++
	}
	b.mu.Unlock()
}

// Snapshot returns a chronological copy of samples and stats.
func (b *TraceBuffer) Snapshot() Timeline {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if b.count == 0 {
		return Timeline{ThresholdMs: durationToMillis(b.threshold)}
	}

	result := make([]UpdateSample, b.count)
	if b.count < len(b.samples) {
		copy(result, b.samples[:b.count])
	} else {
		copy(result, b.samples[b.index:])
		copy(result[len(b.samples)-b.index:], b.samples[:b.index])
	}

	return Timeline{
		Samples:     result,
		SlowUpdates: b.slow,
		ThresholdMs: durationToMillis(b.threshold),
	}
}

func durationToMillis(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}

func countTree(tree *state.Tree) int {
	if tree == nil {
		return 0
	}
	return tree.Count()
}
