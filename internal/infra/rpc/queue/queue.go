// Package queue keeps the ordered call queues of the dispatcher.
//
// A queue is identified by datacenter and queue key. Calls leave a queue in
// batches, and a queue never has more than one batch in flight: the next
// batch is only released after the previous one resolved.
package queue

import (
	"sync"

	"github.com/vietddude/rpcdispatch/internal/core/domain"
)

// Key identifies a queue.
type Key struct {
	Datacenter domain.DatacenterID
	Queue      domain.QueueKey
}

func (k Key) String() string {
	if k.Queue == domain.DefaultQueue {
		return k.Datacenter.String()
	}
	return k.Datacenter.String() + "/" + string(k.Queue)
}

// State of a queue.
type State int

const (
	StateIdle State = iota
	StateAccumulating
	StateInFlight
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateAccumulating:
		return "accumulating"
	case StateInFlight:
		return "in_flight"
	}
	return "unknown"
}

// Entry is the pending handle of an enqueued call.
type Entry struct {
	Call *domain.CallRequest

	queue *Queue
	ready bool
	taken bool
}

// Queue returns the queue holding the entry.
func (e *Entry) Queue() *Queue {
	return e.queue
}

// Queue is a FIFO of calls sharing a key.
type Queue struct {
	key Key

	mu       sync.Mutex
	pending  []*Entry
	inFlight bool
}

func newQueue(key Key) *Queue {
	return &Queue{key: key}
}

func (q *Queue) Key() Key {
	return q.key
}

// Push appends call. A ready entry may be drained on the next dispatch; an
// entry that is not ready waits for Release.
func (q *Queue) Push(call *domain.CallRequest, ready bool) *Entry {
	e := &Entry{Call: call, queue: q, ready: ready}

	q.mu.Lock()
	q.pending = append(q.pending, e)
	q.mu.Unlock()
	return e
}

// Release marks every pending entry ready.
func (q *Queue) Release() {
	q.mu.Lock()
	defer q.mu.Unlock()
	for _, e := range q.pending {
		e.ready = true
	}
}

// Drain takes the ready prefix of the queue as the next batch and marks the
// queue in flight. It returns nil if a batch is already in flight or the head
// of the queue is not ready.
func (q *Queue) Drain() []*Entry {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.inFlight {
		return nil
	}
	n := 0
	for n < len(q.pending) && q.pending[n].ready {
		n++
	}
	if n == 0 {
		return nil
	}

	batch := make([]*Entry, n)
	copy(batch, q.pending[:n])
	for _, e := range batch {
		e.taken = true
	}
	q.pending = append(q.pending[:0], q.pending[n:]...)
	q.inFlight = true
	return batch
}

// Resolve ends the in flight batch. It reports whether the head of the queue
// is ready to be drained.
func (q *Queue) Resolve() bool {
	q.mu.Lock()
	defer q.mu.Unlock()

	q.inFlight = false
	return len(q.pending) > 0 && q.pending[0].ready
}

// Remove withdraws an entry that has not been drained yet. It returns false
// if the entry already left the queue.
func (q *Queue) Remove(e *Entry) bool {
	q.mu.Lock()
	defer q.mu.Unlock()

	if e.taken {
		return false
	}
	for i, p := range q.pending {
		if p == e {
			q.pending = append(q.pending[:i], q.pending[i+1:]...)
			e.taken = true
			return true
		}
	}
	return false
}

// RemoveAll withdraws every pending entry.
func (q *Queue) RemoveAll() []*Entry {
	q.mu.Lock()
	defer q.mu.Unlock()

	out := q.pending
	for _, e := range out {
		e.taken = true
	}
	q.pending = nil
	return out
}

func (q *Queue) State() State {
	q.mu.Lock()
	defer q.mu.Unlock()

	switch {
	case q.inFlight:
		return StateInFlight
	case len(q.pending) > 0:
		return StateAccumulating
	}
	return StateIdle
}

// Len counts pending entries.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.pending)
}
