package engine

import (
	"runtime"
	"time"
)

// MemorySample captures runtime memory and GC stats.
type MemorySample struct {
	Timestamp    int64  `json:"ts"`
	HeapAlloc    uint64 `json:"heapAlloc"`
	HeapInuse    uint64 `json:"heapInuse"`
	HeapObjects  uint64 `json:"heapObjects"`
	NumGC        uint32 `json:"numGC"`
	PauseTotalNs uint64 `json:"pauseTotalNs"`
	LastPauseNs  uint64 `json:"lastPauseNs"`
}

// ReadMemorySample reads the current runtime memory stats. It stops the
// world briefly, so it is meant for tooling rather than every update.
func ReadMemorySample() MemorySample {
	var stats runtime.MemStats
	runtime.ReadMemStats(&stats)

	lastPause := uint64(0)
	if stats.NumGC > 0 {
		lastPause = stats.PauseNs[(stats.NumGC+255)%256]
	}
	return MemorySample{
		Timestamp:    time.Now().UnixMilli(),
		HeapAlloc:    stats.HeapAlloc,
		HeapInuse:    stats.HeapInuse,
		HeapObjects:  stats.HeapObjects,
		NumGC:        stats.NumGC,
		PauseTotalNs: stats.PauseTotalNs,
		LastPauseNs:  lastPause,
	}
}

// Delta returns how far s grew since before. Counters that shrank report
// zero.
func (s MemorySample) Delta(before MemorySample) MemorySample {
	sub := func(a, b uint64) uint64 {
		if a < b {
			return 0
		}
		return a - b
	}
	return MemorySample{
		Timestamp:    s.Timestamp,
		HeapAlloc:    sub(s.HeapAlloc, before.HeapAlloc),
		HeapInuse:    sub(s.HeapInuse, before.HeapInuse),
		HeapObjects:  sub(s.HeapObjects, before.HeapObjects),
		NumGC:        s.NumGC - min(before.NumGC, s.NumGC),
		PauseTotalNs: sub(s.PauseTotalNs, before.PauseTotalNs),
		LastPauseNs:  s.LastPauseNs,
	}
}
