// Package classify turns the raw error triple returned by the remote service
// into a classified *rpcerr.Error.
package classify

import (
	"context"
	"errors"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/jellydator/ttlcache/v3"
	"golang.org/x/sync/singleflight"

	"github.com/vietddude/rpcdispatch/internal/core/domain"
	"github.com/vietddude/rpcdispatch/internal/infra/rpc/rpcerr"
	"github.com/vietddude/rpcdispatch/internal/infra/rpc/taxonomy"
	"github.com/vietddude/rpcdispatch/internal/metrics"
)

// Lookuper describes identifiers missing from the taxonomy.
type Lookuper interface {
	Lookup(ctx context.Context, method string, code int, identifier string) (string, error)
}

// Config tunes the fallback lookup.
type Config struct {
	// LookupTimeout bounds a single lookup attempt.
	LookupTimeout time.Duration
	// NegativeTTL is how long a failed lookup is not retried for the same identifier.
	NegativeTTL time.Duration
}

func DefaultConfig() Config {
	return Config{
		LookupTimeout: 3 * time.Second,
		NegativeTTL:   10 * time.Minute,
	}
}

// Classifier is safe for concurrent use.
type Classifier struct {
	taxonomy *taxonomy.Taxonomy
	lookup   Lookuper
	timeout  time.Duration

	group  singleflight.Group
	failed *ttlcache.Cache[string, struct{}]

	log *slog.Logger
}

// New creates a Classifier. lookup may be nil, in which case unknown
// identifiers are described by themselves.
func New(tax *taxonomy.Taxonomy, lookup Lookuper, cfg Config) *Classifier {
	def := DefaultConfig()
	if cfg.LookupTimeout <= 0 {
		cfg.LookupTimeout = def.LookupTimeout
	}
	if cfg.NegativeTTL <= 0 {
		cfg.NegativeTTL = def.NegativeTTL
	}
	if tax == nil {
		tax = taxonomy.New(nil)
	}

	return &Classifier{
		taxonomy: tax,
		lookup:   lookup,
		timeout:  cfg.LookupTimeout,
		failed: ttlcache.New(
			ttlcache.WithTTL[string, struct{}](cfg.NegativeTTL),
			ttlcache.WithCapacity[string, struct{}](4096),
			ttlcache.WithDisableTouchOnHit[string, struct{}](),
		),
		log: slog.Default().With("component", "classifier"),
	}
}

// Classify maps raw to exactly one kind. Migration and flood wait are
// recognized structurally, then internal errors, then the static catalogue.
// Anything else is Unknown.
func (c *Classifier) Classify(ctx context.Context, raw domain.RawError) *rpcerr.Error {
	err := c.classify(ctx, raw)
	metrics.ClassifiedTotal.WithLabelValues(err.Kind.String()).Inc()
	return err
}

func (c *Classifier) classify(ctx context.Context, raw domain.RawError) *rpcerr.Error {
	id := raw.Identifier
	desc, known := taxonomy.Static(id)

	if strings.Contains(id, "_MIGRATE_") {
		if dc, ok := trailingInt(id); ok && dc > 0 {
			return rpcerr.NewMigrate(raw, domain.DatacenterID(dc), desc)
		}
	}
	if strings.HasPrefix(id, "FLOOD_WAIT_") {
		if secs, ok := trailingInt(id); ok {
			return rpcerr.NewFloodWait(raw, time.Duration(secs)*time.Second, desc)
		}
	}

	if taxonomy.IsBad(id, raw.Code, raw.Method) {
		return rpcerr.NewTransient(raw, desc)
	}
	if known {
		return rpcerr.NewFatal(raw, desc)
	}
	return rpcerr.NewUnknown(raw, c.describe(ctx, raw))
}

// IsBad reports whether raw would be classified without consulting the lookup.
func (c *Classifier) IsBad(raw domain.RawError) bool {
	return taxonomy.IsBad(raw.Identifier, raw.Code, raw.Method)
}

// describe never fails: any problem falls back to the bare identifier.
func (c *Classifier) describe(ctx context.Context, raw domain.RawError) string {
	if raw.Method == "" || raw.Code == 0 || raw.Identifier == "" {
		return raw.Identifier
	}

	key := taxonomy.Normalize(raw.Identifier)
	if d, ok, err := c.taxonomy.Learned(ctx, key); err != nil {
		c.log.Warn("Failed to read learned description", "identifier", key, "error", err)
	} else if ok {
		metrics.LookupsTotal.WithLabelValues("cached").Inc()
		return d
	}

	if c.lookup == nil {
		return raw.Identifier
	}
	if c.failed.Has(key) {
		metrics.LookupsTotal.WithLabelValues("suppressed").Inc()
		return raw.Identifier
	}

	v, err, _ := c.group.Do(key, func() (any, error) {
		lctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), c.timeout)
		defer cancel()

		d, err := c.lookup.Lookup(lctx, raw.Method, raw.Code, key)
		if err != nil {
			c.failed.Set(key, struct{}{}, ttlcache.DefaultTTL)
			return "", err
		}
		if err := c.taxonomy.Remember(lctx, key, d); err != nil {
			c.log.Warn("Failed to store learned description", "identifier", key, "error", err)
		}
		return d, nil
	})
	if err != nil {
		result := "failed"
		if errors.Is(err, context.DeadlineExceeded) {
			result = "timeout"
		}
		metrics.LookupsTotal.WithLabelValues(result).Inc()
		c.log.Debug("Description lookup failed", "identifier", key, "method", raw.Method, "error", err)
		return raw.Identifier
	}

	metrics.LookupsTotal.WithLabelValues("resolved").Inc()
	return v.(string)
}

func trailingInt(id string) (int, bool) {
	i := strings.LastIndexByte(id, '_')
	if i < 0 || i == len(id)-1 {
		return 0, false
	}
	n, err := strconv.Atoi(id[i+1:])
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}
