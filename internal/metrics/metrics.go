package metrics

import (
	"sync"
	"time"
)

type sourceStats struct {
	loads           int
	errors          int
	rows            int
	lastLoadLatency time.Duration
}

// Recorder captures lightweight, in-memory metrics about source loads,
// scoring and name matching, mirroring them to OpenTelemetry when configured.
type Recorder struct {
	mu        sync.Mutex
	sources   map[string]*sourceStats
	tiers     map[string]int
	ambiguous int
	scored    int
	otel      *otelInstruments
}

func NewRecorder() *Recorder {
	return newRecorder(nil)
}

func newRecorder(otel *otelInstruments) *Recorder {
	return &Recorder{
		sources: make(map[string]*sourceStats),
		tiers:   make(map[string]int),
		otel:    otel,
	}
}

// RecordSourceLoad tracks one read of a standings source.
func (r *Recorder) RecordSourceLoad(source string, duration time.Duration, rows int, err error) {
	if r == nil {
		return
	}

	r.mu.Lock()
	stats, ok := r.sources[source]
	if !ok {
		stats = &sourceStats{}
		r.sources[source] = stats
	}
	stats.loads++
	stats.rows += rows
	stats.lastLoadLatency = duration
	if err != nil {
		stats.errors++
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordSourceLoad(source, duration, rows, err)
	}
}

// RecordScored counts records that received a strength index.
func (r *Recorder) RecordScored(n int) {
	if r == nil || n <= 0 {
		return
	}
	r.mu.Lock()
	r.scored += n
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordScored(n)
	}
}

// RecordMatch counts a name-match outcome by tier.
func (r *Recorder) RecordMatch(tier string, ambiguous bool) {
	if r == nil {
		return
	}
	r.mu.Lock()
	r.tiers[tier]++
	if ambiguous {
		r.ambiguous++
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordMatch(tier, ambiguous)
	}
}

// RecordHTTPRequest tracks basic HTTP metrics.
func (r *Recorder) RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	if r == nil || r.otel == nil {
		return
	}
	r.otel.recordHTTPRequest(method, path, status, duration)
}

// Snapshot returns a copy of the current stats for a source.
type Snapshot struct {
	Loads           int
	Errors          int
	Rows            int
	LastLoadLatency time.Duration
}

func (r *Recorder) Snapshot(source string) Snapshot {
	if r == nil {
		return Snapshot{}
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	stats, ok := r.sources[source]
	if !ok || stats == nil {
		return Snapshot{}
	}
	return Snapshot{
		Loads:           stats.loads,
		Errors:          stats.errors,
		Rows:            stats.rows,
		LastLoadLatency: stats.lastLoadLatency,
	}
}

// SourceLoads returns the total loads recorded for a source.
func (r *Recorder) SourceLoads(source string) int {
	return r.Snapshot(source).Loads
}

// SourceErrors returns the failed loads recorded for a source.
func (r *Recorder) SourceErrors(source string) int {
	return r.Snapshot(source).Errors
}

// MatchCount returns how many matches landed in the tier.
func (r *Recorder) MatchCount(tier string) int {
	if r == nil {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.tiers[tier]
}

// AmbiguousMatches returns the number of tie-broken medium matches.
func (r *Recorder) AmbiguousMatches() int {
	if r == nil {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.ambiguous
}

// RecordsScored returns the number of scored records.
func (r *Recorder) RecordsScored() int {
	if r == nil {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.scored
}
