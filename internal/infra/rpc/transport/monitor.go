package transport

import (
	"sort"
	"sync"
	"time"

	"k8s.io/utils/clock"

	"github.com/vietddude/rpcdispatch/internal/core/domain"
)

// Status represents the health state of a datacenter link.
type Status int

const (
	StatusHealthy   Status = iota // Link is working normally
	StatusDegraded                // Link is slow or failing often
	StatusThrottled               // Datacenter asked us to back off
)

func (s Status) String() string {
	switch s {
	case StatusHealthy:
		return "healthy"
	case StatusDegraded:
		return "degraded"
	case StatusThrottled:
		return "throttled"
	}
	return "unknown"
}

// Stats holds monitoring statistics for one datacenter.
type Stats struct {
	Datacenter     domain.DatacenterID `json:"dc"`
	Status         Status              `json:"-"`
	StatusName     string              `json:"status"`
	AverageLatency time.Duration       `json:"average_latency"`
	Containers     int                 `json:"containers"`
	Calls          int                 `json:"calls"`
	Failures       int                 `json:"failures"`
	FloodWaits     int                 `json:"flood_waits"`
	MigrationsOut  int                 `json:"migrations_out"`
	ThrottledUntil time.Time           `json:"throttled_until,omitzero"`
}

type dcMonitor struct {
	recentLatencies []time.Duration
	containers      int
	calls           int
	failures        int
	floodWaits      int
	migrationsOut   int
	throttledUntil  time.Time
}

// Monitor tracks per datacenter link health.
type Monitor struct {
	mu    sync.RWMutex
	clock clock.PassiveClock
	dcs   map[domain.DatacenterID]*dcMonitor

	maxLatencyWindow      int
	slowResponseThreshold time.Duration
	degradedThreshold     float64
}

// NewMonitor creates a new monitor with default settings.
func NewMonitor(clk clock.PassiveClock) *Monitor {
	if clk == nil {
		clk = clock.RealClock{}
	}
	return &Monitor{
		clock:                 clk,
		dcs:                   make(map[domain.DatacenterID]*dcMonitor),
		maxLatencyWindow:      100,
		slowResponseThreshold: 3 * time.Second,
		degradedThreshold:     0.3, // 30% failure rate
	}
}

// get must be called with mu held for writing.
func (m *Monitor) get(dc domain.DatacenterID) *dcMonitor {
	d, ok := m.dcs[dc]
	if !ok {
		d = &dcMonitor{recentLatencies: make([]time.Duration, 0, m.maxLatencyWindow)}
		m.dcs[dc] = d
	}
	return d
}

// RecordContainer records a container that was answered in latency.
func (m *Monitor) RecordContainer(dc domain.DatacenterID, calls int, latency time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()

	d := m.get(dc)
	d.containers++
	d.calls += calls
	d.recentLatencies = append(d.recentLatencies, latency)
	if len(d.recentLatencies) > m.maxLatencyWindow {
		d.recentLatencies = d.recentLatencies[1:]
	}
}

// RecordFailure records a container lost to a transport failure.
func (m *Monitor) RecordFailure(dc domain.DatacenterID) {
	m.mu.Lock()
	defer m.mu.Unlock()

	d := m.get(dc)
	d.containers++
	d.failures++
}

// RecordFloodWait records a flood wait requested by dc.
func (m *Monitor) RecordFloodWait(dc domain.DatacenterID, wait time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()

	d := m.get(dc)
	d.floodWaits++
	if until := m.clock.Now().Add(wait); until.After(d.throttledUntil) {
		d.throttledUntil = until
	}
}

// RecordMigration records a call redirected away from dc.
func (m *Monitor) RecordMigration(from domain.DatacenterID) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.get(from).migrationsOut++
}

// Status returns the current status of dc.
func (m *Monitor) Status(dc domain.DatacenterID) Status {
	m.mu.RLock()
	defer m.mu.RUnlock()

	d, ok := m.dcs[dc]
	if !ok {
		return StatusHealthy
	}
	return m.status(d)
}

func (m *Monitor) status(d *dcMonitor) Status {
	if m.clock.Now().Before(d.throttledUntil) {
		return StatusThrottled
	}
	if d.containers > 10 && float64(d.failures)/float64(d.containers) > m.degradedThreshold {
		return StatusDegraded
	}
	if len(d.recentLatencies) > 10 && averageLatency(d.recentLatencies) > m.slowResponseThreshold {
		return StatusDegraded
	}
	return StatusHealthy
}

// Stats returns a snapshot for every datacenter seen so far, ordered by id.
func (m *Monitor) Stats() []Stats {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]Stats, 0, len(m.dcs))
	for dc, d := range m.dcs {
		st := m.status(d)
		s := Stats{
			Datacenter:     dc,
			Status:         st,
			StatusName:     st.String(),
			AverageLatency: averageLatency(d.recentLatencies),
			Containers:     d.containers,
			Calls:          d.calls,
			Failures:       d.failures,
			FloodWaits:     d.floodWaits,
			MigrationsOut:  d.migrationsOut,
		}
		if st == StatusThrottled {
			s.ThrottledUntil = d.throttledUntil
		}
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Datacenter < out[j].Datacenter })
	return out
}

func averageLatency(latencies []time.Duration) time.Duration {
	if len(latencies) == 0 {
		return 0
	}
	var total time.Duration
	for _, lat := range latencies {
		total += lat
	}
	return total / time.Duration(len(latencies))
}
