package rpc

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"k8s.io/utils/clock"

	"github.com/vietddude/rpcdispatch/internal/core/domain"
	"github.com/vietddude/rpcdispatch/internal/infra/rpc/batch"
	"github.com/vietddude/rpcdispatch/internal/infra/rpc/classify"
	"github.com/vietddude/rpcdispatch/internal/infra/rpc/flood"
	"github.com/vietddude/rpcdispatch/internal/infra/rpc/queue"
	"github.com/vietddude/rpcdispatch/internal/infra/rpc/rpcerr"
	"github.com/vietddude/rpcdispatch/internal/infra/rpc/schema"
	"github.com/vietddude/rpcdispatch/internal/infra/rpc/transport"
	"github.com/vietddude/rpcdispatch/internal/metrics"
)

// ErrInvalidDatacenter is returned for calls without a valid target datacenter.
var ErrInvalidDatacenter = errors.New("invalid datacenter")

// Classifier turns raw remote errors into classified ones.
type Classifier interface {
	Classify(ctx context.Context, raw domain.RawError) *rpcerr.Error
}

// Config holds dispatcher defaults.
type Config struct {
	// ToleratedWait is the longest flood wait slept through transparently
	// for calls that do not set their own.
	ToleratedWait time.Duration
	// IdleFlush sends postponed calls after this much inactivity. Zero
	// leaves them to explicit flushes.
	IdleFlush       time.Duration
	MaxMigrations   int
	MaxFloodRetries int
}

func DefaultConfig() Config {
	return Config{
		ToleratedWait:   5 * time.Second,
		IdleFlush:       250 * time.Millisecond,
		MaxMigrations:   flood.DefaultConfig.MaxMigrations,
		MaxFloodRetries: flood.DefaultConfig.MaxFloodRetries,
	}
}

type pendingCall struct {
	req     *domain.CallRequest
	ctx     context.Context
	entry   *queue.Entry
	attempt flood.Attempt

	// admitted is closed once entry is set or the call was rejected.
	admitted chan struct{}

	once    sync.Once
	done    chan struct{}
	release func()
	result  any
	err     error
}

// resolve settles the call once. Later results are dropped.
func (p *pendingCall) resolve(result any, err error) {
	p.once.Do(func() {
		p.result, p.err = result, err
		close(p.done)
		if p.release != nil {
			p.release()
		}
	})
}

// Pending is a call accepted by the dispatcher that has not necessarily
// resolved yet.
type Pending struct {
	d  *Dispatcher
	pc *pendingCall
}

// ID returns the correlation id assigned to the call.
func (p *Pending) ID() string {
	return p.pc.req.ID
}

// Done is closed once the call has resolved.
func (p *Pending) Done() <-chan struct{} {
	return p.pc.done
}

// Wait blocks until the call resolves. If ctx ends first the call is
// cancelled as if its own context had ended.
func (p *Pending) Wait(ctx context.Context) (any, error) {
	select {
	case <-p.pc.done:
	case <-ctx.Done():
		p.d.abandon(p.pc, ctx.Err())
		<-p.pc.done
	}
	return p.pc.result, p.pc.err
}

// Cancel withdraws the call. A call already sent keeps its queue slot until
// its reply arrives.
func (p *Pending) Cancel() {
	p.d.abandon(p.pc, context.Canceled)
}

// Dispatcher submits calls to datacenters through ordered queues, batches
// them into containers and applies the flood and migration policy to
// failures before resolving each call exactly once.
type Dispatcher struct {
	transport  transport.Transport
	classifier Classifier
	policy     *flood.Policy
	registry   *queue.Registry
	batches    *batch.Controller
	monitor    *transport.Monitor
	schema     *schema.Registry
	clock      clock.WithDelayedExecution
	config     Config
	log        *slog.Logger

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup

	lifecycle sync.RWMutex
	closed    bool
	calls     sync.Map // call id -> *pendingCall
}

// NewDispatcher creates a Dispatcher. A nil classifier classifies against the
// static taxonomy only.
func NewDispatcher(t transport.Transport, classifier Classifier, cfg Config, opts ...Option) *Dispatcher {
	def := DefaultConfig()
	if cfg.ToleratedWait < 0 {
		cfg.ToleratedWait = 0
	}
	if cfg.MaxMigrations <= 0 {
		cfg.MaxMigrations = def.MaxMigrations
	}
	if cfg.MaxFloodRetries <= 0 {
		cfg.MaxFloodRetries = def.MaxFloodRetries
	}
	if classifier == nil {
		classifier = classify.New(nil, nil, classify.DefaultConfig())
	}

	ctx, cancel := context.WithCancel(context.Background())
	d := &Dispatcher{
		transport:  t,
		classifier: classifier,
		registry:   queue.NewRegistry(),
		clock:      clock.RealClock{},
		config:     cfg,
		log:        slog.Default(),
		ctx:        ctx,
		cancel:     cancel,
	}
	for _, opt := range opts {
		opt(d)
	}
	if d.monitor == nil {
		d.monitor = transport.NewMonitor(d.clock)
	}

	d.log = d.log.With("component", "dispatcher")
	d.policy = flood.NewPolicy(d.clock, flood.Config{
		MaxMigrations:   cfg.MaxMigrations,
		MaxFloodRetries: cfg.MaxFloodRetries,
	})
	d.batches = batch.NewController(d.registry, d.send, d.clock, cfg.IdleFlush)
	return d
}

// Call submits method to dc and blocks until the call resolves or ctx ends.
func (d *Dispatcher) Call(ctx context.Context, method string, params any, dc domain.DatacenterID, opts ...CallOption) (any, error) {
	p, err := d.Go(ctx, method, params, dc, opts...)
	if err != nil {
		return nil, err
	}
	return p.Wait(ctx)
}

// Go submits method to dc and returns once the call is queued. ctx governs
// the call until it resolves.
func (d *Dispatcher) Go(ctx context.Context, method string, params any, dc domain.DatacenterID, opts ...CallOption) (*Pending, error) {
	req := &domain.CallRequest{
		Method:     method,
		Params:     params,
		Datacenter: dc,
	}
	for _, opt := range opts {
		opt(req)
	}
	return d.Enqueue(ctx, req)
}

// Submit is Call for a prepared request.
func (d *Dispatcher) Submit(ctx context.Context, req *domain.CallRequest) (any, error) {
	p, err := d.Enqueue(ctx, req)
	if err != nil {
		return nil, err
	}
	return p.Wait(ctx)
}

// Enqueue is Go for a prepared request. The request is copied and given a
// fresh correlation id; an id set by the caller is kept as Reference. A zero
// ToleratedWait takes the configured default.
func (d *Dispatcher) Enqueue(ctx context.Context, req *domain.CallRequest) (*Pending, error) {
	call := *req
	if call.Reference == "" {
		call.Reference = call.ID
	}
	call.ID = uuid.NewString()
	if call.ToleratedWait == 0 {
		call.ToleratedWait = d.config.ToleratedWait
	}
	if !call.Datacenter.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidDatacenter, call.Datacenter)
	}
	if d.schema != nil && !d.schema.HasMethod(call.Method) {
		return nil, fmt.Errorf("%w: %s", rpcerr.ErrUnknownMethod, call.Method)
	}
	if err := ctx.Err(); err != nil {
		return nil, rpcerr.Cancelled(err)
	}
	call.SubmittedAt = d.clock.Now()

	pctx, cancel := context.WithCancel(ctx)
	stopClose := context.AfterFunc(d.ctx, cancel)
	pc := &pendingCall{
		req:      &call,
		ctx:      pctx,
		done:     make(chan struct{}),
		admitted: make(chan struct{}),
	}
	stopWatch := context.AfterFunc(ctx, func() { d.abandon(pc, ctx.Err()) })
	pc.release = func() {
		stopWatch()
		stopClose()
		cancel()
		metrics.OutcomesTotal.WithLabelValues(call.Method, outcome(pc.err)).Inc()
		metrics.CallLatency.WithLabelValues(call.Method).Observe(d.clock.Since(call.SubmittedAt).Seconds())
	}

	d.lifecycle.RLock()
	if d.closed {
		d.lifecycle.RUnlock()
		close(pc.admitted)
		pc.resolve(nil, rpcerr.ErrClosed)
		return nil, rpcerr.ErrClosed
	}
	d.calls.Store(call.ID, pc)
	metrics.CallsTotal.WithLabelValues(call.Method, call.Datacenter.String()).Inc()
	pc.entry = d.batches.Submit(&call)
	close(pc.admitted)
	d.lifecycle.RUnlock()

	return &Pending{d: d, pc: pc}, nil
}

// abandon resolves pc as cancelled. A call still queued leaves its queue; a
// call already sent keeps its slot until the reply arrives and only its
// result is dropped.
func (d *Dispatcher) abandon(pc *pendingCall, cause error) {
	<-pc.admitted
	if pc.entry != nil && pc.entry.Queue().Remove(pc.entry) {
		d.calls.Delete(pc.req.ID)
	}
	pc.resolve(nil, rpcerr.Cancelled(cause))
}

// Flush sends every call postponed on dc.
func (d *Dispatcher) Flush(dc domain.DatacenterID) {
	d.batches.Flush(dc)
}

// Stats is a snapshot of per datacenter activity.
type Stats struct {
	Links  []transport.Stats `json:"links"`
	Queued map[string]int    `json:"queued"`
}

func (d *Dispatcher) Stats() Stats {
	s := Stats{
		Links:  d.monitor.Stats(),
		Queued: make(map[string]int),
	}
	for _, dc := range d.registry.Datacenters() {
		s.Queued[dc.String()] = d.registry.Pending(dc)
	}
	return s
}

// Close rejects new calls, resolves queued calls with ErrClosed and waits for
// containers in flight. The transport is expected to end its reply streams
// once its context is cancelled.
func (d *Dispatcher) Close() error {
	d.lifecycle.Lock()
	if d.closed {
		d.lifecycle.Unlock()
		return nil
	}
	d.closed = true
	d.lifecycle.Unlock()

	d.batches.Stop()
	d.cancel()
	for _, dc := range d.registry.Datacenters() {
		for _, q := range d.registry.Datacenter(dc) {
			for _, e := range q.RemoveAll() {
				if pc, ok := d.pending(e.Call.ID); ok {
					d.finish(pc, nil, rpcerr.ErrClosed)
				}
			}
		}
	}
	d.wg.Wait()
	return nil
}

func (d *Dispatcher) pending(id string) (*pendingCall, bool) {
	v, ok := d.calls.Load(id)
	if !ok {
		return nil, false
	}
	return v.(*pendingCall), true
}

func (d *Dispatcher) finish(pc *pendingCall, result any, err error) {
	d.calls.Delete(pc.req.ID)
	pc.resolve(result, err)
}

// send is the batch.SendFunc of the dispatcher. Every queue batch of the
// container is processed on its own goroutine.
func (d *Dispatcher) send(cont *batch.Container) {
	d.wg.Add(1)
	go func() {
		defer d.wg.Done()

		slots, err := d.roundTrip(cont.Datacenter, cont.Calls())
		for _, b := range cont.Batches {
			d.wg.Add(1)
			go func(b []*queue.Entry) {
				defer d.wg.Done()
				d.process(cont.Datacenter, b, slots, err)
			}(b)
		}
	}()
}

// process resolves one queue batch in submission order, then lets the queue
// release its next batch.
func (d *Dispatcher) process(dc domain.DatacenterID, entries []*queue.Entry, slots map[string]<-chan domain.Reply, sendErr error) {
	defer d.batches.Resume(entries[0].Queue().Key())

	for _, e := range entries {
		pc, ok := d.pending(e.Call.ID)
		if !ok {
			continue
		}
		result, err := d.await(pc, dc, slots[e.Call.ID], sendErr)
		d.finish(pc, result, err)
	}
}

// await waits for the reply of pc and applies the flood and migration policy.
// Retries are sent on their own, outside the queue, to the datacenter the
// policy picked.
func (d *Dispatcher) await(pc *pendingCall, dc domain.DatacenterID, slot <-chan domain.Reply, sendErr error) (any, error) {
	for {
		if sendErr != nil {
			if d.ctx.Err() != nil {
				return nil, rpcerr.ErrClosed
			}
			return nil, fmt.Errorf("%w: %w", rpcerr.ErrTransport, sendErr)
		}

		reply, ok := <-slot
		if !ok {
			if d.ctx.Err() != nil {
				return nil, rpcerr.ErrClosed
			}
			return nil, rpcerr.ErrDisconnected
		}
		if reply.Err == nil {
			return reply.Result, nil
		}

		raw := *reply.Err
		if raw.Method == "" {
			raw.Method = pc.req.Method
		}
		cerr := d.classifier.Classify(pc.ctx, raw)
		if cerr.Kind == rpcerr.KindFloodWait {
			d.monitor.RecordFloodWait(dc, cerr.Wait)
		}

		dec := d.policy.Handle(pc.ctx, cerr, dc, pc.req.ToleratedWait, &pc.attempt)
		if dec.Action == flood.ActionSurface {
			if d.ctx.Err() != nil && errors.Is(dec.Err, rpcerr.ErrCancelled) {
				return nil, rpcerr.ErrClosed
			}
			return nil, dec.Err
		}
		if d.ctx.Err() != nil {
			return nil, rpcerr.ErrClosed
		}
		if err := pc.ctx.Err(); err != nil {
			return nil, rpcerr.Cancelled(err)
		}

		if cerr.Kind == rpcerr.KindMigrate {
			d.monitor.RecordMigration(dc)
			d.log.Debug("Migrating call", "method", pc.req.Method, "from", dc, "to", dec.Datacenter)
		} else {
			d.log.Debug("Retrying after flood wait", "method", pc.req.Method, "dc", dc, "wait", cerr.Wait)
		}

		dc = dec.Datacenter
		retry := *pc.req
		retry.Datacenter = dc

		var slots map[string]<-chan domain.Reply
		slots, sendErr = d.roundTrip(dc, []*domain.CallRequest{&retry})
		slot = slots[retry.ID]
	}
}

// roundTrip hands calls to the transport and fans the reply stream out into
// one single-use channel per call. A channel closed without a value means
// the stream ended without answering that call.
func (d *Dispatcher) roundTrip(dc domain.DatacenterID, calls []*domain.CallRequest) (map[string]<-chan domain.Reply, error) {
	out := make(map[string]<-chan domain.Reply, len(calls))
	in := make(map[string]chan domain.Reply, len(calls))
	for _, c := range calls {
		ch := make(chan domain.Reply, 1)
		in[c.ID], out[c.ID] = ch, ch
	}

	start := d.clock.Now()
	stream, err := d.transport.Send(d.ctx, dc, calls)
	if err != nil {
		d.monitor.RecordFailure(dc)
		d.log.Warn("Failed to send container", "dc", dc, "calls", len(calls), "error", err)
		for _, ch := range in {
			close(ch)
		}
		return out, err
	}

	d.wg.Add(1)
	go func() {
		defer d.wg.Done()
		for r := range stream {
			if ch, ok := in[r.CallID]; ok {
				ch <- r
				close(ch)
				delete(in, r.CallID)
			}
		}
		for _, ch := range in {
			close(ch)
		}
		d.monitor.RecordContainer(dc, len(calls), d.clock.Since(start))
	}()
	return out, nil
}

func outcome(err error) string {
	if err == nil {
		return "ok"
	}
	if e, ok := rpcerr.As(err); ok {
		return e.Kind.String()
	}
	switch {
	case errors.Is(err, rpcerr.ErrCancelled):
		return "cancelled"
	case errors.Is(err, rpcerr.ErrTransport):
		return "transport"
	case errors.Is(err, rpcerr.ErrDisconnected):
		return "disconnected"
	case errors.Is(err, rpcerr.ErrClosed):
		return "closed"
	}
	return "error"
}
