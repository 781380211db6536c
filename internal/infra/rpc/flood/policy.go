// Package flood decides what happens to a call after a rate limiting or
// migration error.
package flood

import (
	"context"
	"time"

	"k8s.io/utils/clock"

	"github.com/vietddude/rpcdispatch/internal/core/domain"
	"github.com/vietddude/rpcdispatch/internal/infra/rpc/rpcerr"
	"github.com/vietddude/rpcdispatch/internal/metrics"
)

// Config bounds the retries a single call may consume.
type Config struct {
	MaxMigrations   int
	MaxFloodRetries int
}

// DefaultConfig provides sensible defaults.
var DefaultConfig = Config{
	MaxMigrations:   5,
	MaxFloodRetries: 5,
}

// Action determines how to handle a classified error.
type Action int

const (
	ActionSurface Action = iota
	ActionRetry
)

func (a Action) String() string {
	if a == ActionRetry {
		return "retry"
	}
	return "surface"
}

// Decision is the outcome of Handle. Datacenter is where a retry goes.
type Decision struct {
	Action     Action
	Datacenter domain.DatacenterID
	Err        error
}

// Attempt carries the retry budget already spent by one call.
type Attempt struct {
	Migrations   int
	FloodRetries int
}

// Policy applies the flood and migration rules.
type Policy struct {
	clock  clock.Clock
	config Config
}

func NewPolicy(clk clock.Clock, cfg Config) *Policy {
	if clk == nil {
		clk = clock.RealClock{}
	}
	if cfg.MaxMigrations <= 0 {
		cfg.MaxMigrations = DefaultConfig.MaxMigrations
	}
	if cfg.MaxFloodRetries <= 0 {
		cfg.MaxFloodRetries = DefaultConfig.MaxFloodRetries
	}
	return &Policy{clock: clk, config: cfg}
}

// Handle decides whether a call that failed with err is retried. Flood waits
// up to tolerated are slept through here; the sleep ends early with a
// cancellation outcome when ctx is done. dc is where the call was sent.
func (p *Policy) Handle(ctx context.Context, err *rpcerr.Error, dc domain.DatacenterID, tolerated time.Duration, attempt *Attempt) Decision {
	switch err.Kind {
	case rpcerr.KindFloodWait:
		if err.Wait > tolerated || attempt.FloodRetries >= p.config.MaxFloodRetries {
			metrics.FloodWaitSeconds.WithLabelValues("surfaced").Observe(err.Wait.Seconds())
			return Decision{Action: ActionSurface, Err: err}
		}
		metrics.FloodWaitSeconds.WithLabelValues("slept").Observe(err.Wait.Seconds())
		if serr := p.sleep(ctx, err.Wait); serr != nil {
			return Decision{Action: ActionSurface, Err: rpcerr.Cancelled(serr)}
		}
		attempt.FloodRetries++
		return Decision{Action: ActionRetry, Datacenter: dc}

	case rpcerr.KindMigrate:
		attempt.Migrations++
		if attempt.Migrations > p.config.MaxMigrations {
			return Decision{Action: ActionSurface, Err: rpcerr.MigrateLoop(err, p.config.MaxMigrations)}
		}
		metrics.MigrationsTotal.WithLabelValues(dc.String(), err.Datacenter.String()).Inc()
		return Decision{Action: ActionRetry, Datacenter: err.Datacenter}
	}

	return Decision{Action: ActionSurface, Err: err}
}

func (p *Policy) sleep(ctx context.Context, d time.Duration) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if d <= 0 {
		return nil
	}

	t := p.clock.NewTimer(d)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C():
		return nil
	}
}
