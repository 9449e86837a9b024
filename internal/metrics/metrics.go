package metrics

import (
	"sync/atomic"
	"time"
)

// MetricID identifies a specific counter or histogram bucket.
type MetricID uint16

const (
	// MetricRequestAuthorized counts outbound requests sent with a bearer token.
	MetricRequestAuthorized MetricID = iota
	// MetricRequestAnonymous counts outbound requests sent without a token.
	MetricRequestAnonymous
	// MetricUnauthorizedResponse counts 401 responses observed by the interceptor.
	MetricUnauthorizedResponse
	// MetricGuardAllow counts navigations the guard let through.
	MetricGuardAllow
	// MetricGuardRedirectLogin counts navigations redirected to the login route.
	MetricGuardRedirectLogin
	// MetricGuardRedirectDashboard counts admin-gate redirects to the dashboard.
	MetricGuardRedirectDashboard
	// MetricIdentityFetchSuccess counts identity fetches that resolved a user.
	MetricIdentityFetchSuccess
	// MetricIdentityFetchFailure counts identity fetches rejected by the backend.
	MetricIdentityFetchFailure
	// MetricIdentityFetchStale counts identity results discarded by the epoch guard.
	MetricIdentityFetchStale
	// MetricTokenSet counts token installations.
	MetricTokenSet
	// MetricTokenCleared counts token removals.
	MetricTokenCleared
	// MetricSessionHydrated counts successful bootstrap hydrations from storage.
	MetricSessionHydrated
	// MetricBootstrapOverride counts dev-token URL overrides consumed at bootstrap.
	MetricBootstrapOverride
	// MetricExpiredTokenPruned counts visibly expired JWTs cleared before any fetch.
	MetricExpiredTokenPruned
	// MetricGuardLatency is the guard evaluation latency histogram.
	MetricGuardLatency

	// MetricIDCount is the number of defined metric IDs.
	MetricIDCount
)

// bucket upper bounds in milliseconds, last bucket is +Inf
var bucketBoundsMS = [bucketCount - 1]int64{5, 10, 25, 50, 100, 250, 500}

const bucketCount = 8

type paddedCounter struct {
	value uint64
	_     [7]uint64
}

// Config controls whether metric writes are recorded at all.
type Config struct {
	Enabled       bool
	EnableLatency bool
}

// Metrics holds atomic counters and optional latency histograms.
// A nil Metrics, or one built with Enabled false, ignores all writes.
type Metrics struct {
	enabled    bool
	latency    bool
	counters   [MetricIDCount]paddedCounter
	histograms [MetricIDCount][bucketCount]paddedCounter
	sums       [MetricIDCount]paddedCounter
}

// New creates a Metrics instance. When cfg.Enabled is false all operations
// are no-ops.
func New(cfg Config) *Metrics {
	return &Metrics{
		enabled: cfg.Enabled,
		latency: cfg.Enabled && cfg.EnableLatency,
	}
}

// Inc atomically increments the counter for id.
func (m *Metrics) Inc(id MetricID) {
	if m == nil || !m.enabled || id >= MetricIDCount {
		return
	}
	atomic.AddUint64(&m.counters[id].value, 1)
}

// Observe records d into the histogram for id. The observed time is also
// accumulated into the histogram's sum, tracked in microseconds.
func (m *Metrics) Observe(id MetricID, d time.Duration) {
	if m == nil || !m.latency || id >= MetricIDCount {
		return
	}
	if d < 0 {
		d = 0
	}
	ms := d.Milliseconds()
	bucket := bucketCount - 1
	for i, bound := range bucketBoundsMS {
		if ms <= bound {
			bucket = i
			break
		}
	}
	atomic.AddUint64(&m.histograms[id][bucket].value, 1)
	atomic.AddUint64(&m.sums[id].value, uint64(d.Microseconds()))
}

// Snapshot is a point-in-time deep copy of all metrics. Sums carries the
// accumulated observed time per histogram, in microseconds.
type Snapshot struct {
	Counters   map[MetricID]uint64
	Histograms map[MetricID][]uint64
	Sums       map[MetricID]uint64
}

// Snapshot copies every non-zero counter and histogram.
func (m *Metrics) Snapshot() Snapshot {
	snap := Snapshot{
		Counters:   map[MetricID]uint64{},
		Histograms: map[MetricID][]uint64{},
		Sums:       map[MetricID]uint64{},
	}
	if m == nil || !m.enabled {
		return snap
	}

	for id := MetricID(0); id < MetricIDCount; id++ {
		if v := atomic.LoadUint64(&m.counters[id].value); v > 0 {
			snap.Counters[id] = v
		}
	}
	if !m.latency {
		return snap
	}
	for id := MetricID(0); id < MetricIDCount; id++ {
		var buckets []uint64
		nonZero := false
		for b := 0; b < bucketCount; b++ {
			v := atomic.LoadUint64(&m.histograms[id][b].value)
			if v > 0 {
				nonZero = true
			}
			buckets = append(buckets, v)
		}
		if nonZero {
			snap.Histograms[id] = buckets
			snap.Sums[id] = atomic.LoadUint64(&m.sums[id].value)
		}
	}
	return snap
}
