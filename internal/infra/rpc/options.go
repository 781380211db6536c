package rpc

import (
	"log/slog"
	"time"

	"k8s.io/utils/clock"

	"github.com/vietddude/rpcdispatch/internal/core/domain"
	"github.com/vietddude/rpcdispatch/internal/infra/rpc/schema"
	"github.com/vietddude/rpcdispatch/internal/infra/rpc/transport"
)

// Option configures a Dispatcher.
type Option func(*Dispatcher)

// WithLogger sets the logger used by the dispatcher.
func WithLogger(log *slog.Logger) Option {
	return func(d *Dispatcher) {
		if log != nil {
			d.log = log
		}
	}
}

// WithClock replaces the real clock, typically with a fake one in tests.
func WithClock(clk clock.WithDelayedExecution) Option {
	return func(d *Dispatcher) {
		if clk != nil {
			d.clock = clk
		}
	}
}

// WithSchema rejects calls to methods missing from reg.
func WithSchema(reg *schema.Registry) Option {
	return func(d *Dispatcher) {
		d.schema = reg
	}
}

// WithMonitor shares a link monitor between dispatchers.
func WithMonitor(m *transport.Monitor) Option {
	return func(d *Dispatcher) {
		d.monitor = m
	}
}

// CallOption configures a single call.
type CallOption func(*domain.CallRequest)

// WithQueue orders the call after earlier calls with the same key on the
// same datacenter.
func WithQueue(key string) CallOption {
	return func(r *domain.CallRequest) {
		r.Queue = domain.QueueKey(key)
	}
}

// WithToleratedWait overrides the longest flood wait slept through for this call.
func WithToleratedWait(d time.Duration) CallOption {
	return func(r *domain.CallRequest) {
		if d < 0 {
			d = 0
		}
		r.ToleratedWait = d
	}
}

// WithPostpone lets the call wait for a flush so it can share a container.
func WithPostpone() CallOption {
	return func(r *domain.CallRequest) {
		r.Postpone = true
	}
}
