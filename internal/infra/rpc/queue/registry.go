package queue

import (
	"sort"
	"sync"

	"github.com/vietddude/rpcdispatch/internal/core/domain"
)

// Registry creates queues on first use and indexes them by datacenter.
type Registry struct {
	mu     sync.RWMutex
	queues map[Key]*Queue
	byDC   map[domain.DatacenterID][]*Queue
}

func NewRegistry() *Registry {
	return &Registry{
		queues: make(map[Key]*Queue),
		byDC:   make(map[domain.DatacenterID][]*Queue),
	}
}

// Get returns the queue for key, creating it if needed.
func (r *Registry) Get(key Key) *Queue {
	r.mu.RLock()
	q, ok := r.queues[key]
	r.mu.RUnlock()
	if ok {
		return q
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if q, ok := r.queues[key]; ok {
		return q
	}
	q = newQueue(key)
	r.queues[key] = q
	r.byDC[key.Datacenter] = append(r.byDC[key.Datacenter], q)
	return q
}

// Enqueue appends call to the queue it names.
func (r *Registry) Enqueue(call *domain.CallRequest, ready bool) *Entry {
	return r.Get(Key{Datacenter: call.Datacenter, Queue: call.Queue}).Push(call, ready)
}

// Drain returns the next ready batch of a queue, or nil.
func (r *Registry) Drain(key Key) []*Entry {
	r.mu.RLock()
	q, ok := r.queues[key]
	r.mu.RUnlock()
	if !ok {
		return nil
	}
	return q.Drain()
}

// Datacenter returns the queues of dc in creation order.
func (r *Registry) Datacenter(dc domain.DatacenterID) []*Queue {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*Queue, len(r.byDC[dc]))
	copy(out, r.byDC[dc])
	return out
}

// Datacenters lists every datacenter with at least one queue.
func (r *Registry) Datacenters() []domain.DatacenterID {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.DatacenterID, 0, len(r.byDC))
	for dc := range r.byDC {
		out = append(out, dc)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Pending counts calls waiting on dc.
func (r *Registry) Pending(dc domain.DatacenterID) int {
	n := 0
	for _, q := range r.Datacenter(dc) {
		n += q.Len()
	}
	return n
}
