// Package batch decides when queued calls leave for the transport.
//
// Calls submitted with Postpone accumulate until a call without Postpone
// arrives for the same datacenter, Flush is called, or the datacenter has
// been idle for the configured interval. All ready calls of one datacenter
// then leave together in a single Container.
package batch

import (
	"sync"
	"time"

	"k8s.io/utils/clock"

	"github.com/vietddude/rpcdispatch/internal/core/domain"
	"github.com/vietddude/rpcdispatch/internal/infra/rpc/queue"
	"github.com/vietddude/rpcdispatch/internal/metrics"
)

// Container is one transmission to a datacenter. It holds one batch per
// queue, each in submission order.
type Container struct {
	Datacenter domain.DatacenterID
	Batches    [][]*queue.Entry
}

// Calls flattens the container.
func (c *Container) Calls() []*domain.CallRequest {
	out := make([]*domain.CallRequest, 0, c.Len())
	for _, b := range c.Batches {
		for _, e := range b {
			out = append(out, e.Call)
		}
	}
	return out
}

func (c *Container) Len() int {
	n := 0
	for _, b := range c.Batches {
		n += len(b)
	}
	return n
}

// SendFunc receives every container the controller assembles. It is called
// with the datacenter locked and must not block.
type SendFunc func(*Container)

type dcState struct {
	mu      sync.Mutex
	timer   clock.Timer
	stopped bool
}

// Controller assembles containers from a queue registry.
type Controller struct {
	registry *queue.Registry
	send     SendFunc
	clock    clock.WithDelayedExecution
	idle     time.Duration

	mu      sync.Mutex
	dcs     map[domain.DatacenterID]*dcState
	stopped bool
}

// NewController creates a Controller. An idle interval of zero disables the
// idle flush, leaving postponed calls to explicit flushes.
func NewController(registry *queue.Registry, send SendFunc, clk clock.WithDelayedExecution, idle time.Duration) *Controller {
	if clk == nil {
		clk = clock.RealClock{}
	}
	return &Controller{
		registry: registry,
		send:     send,
		clock:    clk,
		idle:     idle,
		dcs:      make(map[domain.DatacenterID]*dcState),
	}
}

func (c *Controller) state(dc domain.DatacenterID) *dcState {
	c.mu.Lock()
	defer c.mu.Unlock()

	st, ok := c.dcs[dc]
	if !ok {
		st = &dcState{stopped: c.stopped}
		c.dcs[dc] = st
	}
	return st
}

// Submit enqueues call. A call without Postpone flushes its datacenter.
func (c *Controller) Submit(call *domain.CallRequest) *queue.Entry {
	dc := call.Datacenter
	st := c.state(dc)

	st.mu.Lock()
	defer st.mu.Unlock()

	e := c.registry.Enqueue(call, !call.Postpone)
	if call.Postpone {
		if st.timer == nil && c.idle > 0 && !st.stopped {
			st.timer = c.clock.AfterFunc(c.idle, func() { c.Flush(dc) })
		}
		metrics.QueueDepth.WithLabelValues(dc.String()).Set(float64(c.registry.Pending(dc)))
		return e
	}
	c.dispatch(st, c.collect(dc, st, true))
	return e
}

// Flush releases every call waiting on dc. Calls whose queue has a batch in
// flight leave as soon as that batch resolves.
func (c *Controller) Flush(dc domain.DatacenterID) {
	st := c.state(dc)

	st.mu.Lock()
	defer st.mu.Unlock()

	c.dispatch(st, c.collect(dc, st, true))
}

// Resume ends the in flight batch of key and sends whatever became ready.
func (c *Controller) Resume(key queue.Key) {
	if !c.registry.Get(key).Resolve() {
		return
	}
	st := c.state(key.Datacenter)

	st.mu.Lock()
	defer st.mu.Unlock()

	c.dispatch(st, c.collect(key.Datacenter, st, false))
}

// Stop disarms idle timers and prevents any further container from being
// sent. Calls left in the queues stay there.
func (c *Controller) Stop() {
	c.mu.Lock()
	c.stopped = true
	states := make([]*dcState, 0, len(c.dcs))
	for _, st := range c.dcs {
		states = append(states, st)
	}
	c.mu.Unlock()

	for _, st := range states {
		st.mu.Lock()
		st.stopped = true
		if st.timer != nil {
			st.timer.Stop()
			st.timer = nil
		}
		st.mu.Unlock()
	}
}

// collect and dispatch must be called with st.mu held.
func (c *Controller) collect(dc domain.DatacenterID, st *dcState, release bool) *Container {
	if st.stopped {
		return &Container{Datacenter: dc}
	}
	if release && st.timer != nil {
		st.timer.Stop()
		st.timer = nil
	}

	cont := &Container{Datacenter: dc}
	for _, q := range c.registry.Datacenter(dc) {
		if release {
			q.Release()
		}
		if b := q.Drain(); len(b) > 0 {
			cont.Batches = append(cont.Batches, b)
		}
	}
	return cont
}

func (c *Controller) dispatch(st *dcState, cont *Container) {
	dc := cont.Datacenter.String()
	metrics.QueueDepth.WithLabelValues(dc).Set(float64(c.registry.Pending(cont.Datacenter)))
	if cont.Len() == 0 || st.stopped {
		return
	}

	metrics.ContainersSent.WithLabelValues(dc).Inc()
	metrics.ContainerSize.Observe(float64(cont.Len()))
	c.send(cont)
}
