package classify

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vietddude/rpcdispatch/internal/core/domain"
	"github.com/vietddude/rpcdispatch/internal/infra/rpc/rpcerr"
	"github.com/vietddude/rpcdispatch/internal/infra/rpc/taxonomy"
	"github.com/vietddude/rpcdispatch/internal/metrics"
)

type fakeLookup struct {
	calls atomic.Int32
	delay time.Duration
	fn    func(method string, code int, identifier string) (string, error)
}

func (f *fakeLookup) Lookup(ctx context.Context, method string, code int, identifier string) (string, error) {
	f.calls.Add(1)
	if f.delay > 0 {
		select {
		case <-time.After(f.delay):
		case <-ctx.Done():
			return "", ctx.Err()
		}
	}
	return f.fn(method, code, identifier)
}

func raw(code int, id, method string) domain.RawError {
	return domain.RawError{Code: code, Identifier: id, Method: method}
}

func TestClassify_Kinds(t *testing.T) {
	c := New(nil, nil, Config{})
	ctx := context.Background()

	flood := c.Classify(ctx, raw(420, "FLOOD_WAIT_2", "messages.sendMessage"))
	assert.Equal(t, rpcerr.KindFloodWait, flood.Kind)
	assert.Equal(t, 2*time.Second, flood.Wait)

	fatal := c.Classify(ctx, raw(400, "CHANNEL_PRIVATE", "channels.getFullChannel"))
	assert.Equal(t, rpcerr.KindFatal, fatal.Kind)
	assert.Equal(t, "You haven't joined this channel/supergroup", fatal.Description)

	migrate := c.Classify(ctx, raw(303, "PHONE_MIGRATE_3", "auth.sendCode"))
	assert.Equal(t, rpcerr.KindMigrate, migrate.Kind)
	assert.Equal(t, domain.DC3, migrate.Datacenter)

	for _, id := range []string{"USER_MIGRATE_5", "NETWORK_MIGRATE_2", "FILE_MIGRATE_4", "STATS_MIGRATE_1"} {
		assert.Equal(t, rpcerr.KindMigrate, c.Classify(ctx, raw(303, id, "m.x")).Kind, id)
	}

	transient := c.Classify(ctx, raw(500, "RPC_CALL_FAIL", "help.getConfig"))
	assert.Equal(t, rpcerr.KindTransient, transient.Kind)

	// Known but internal identifiers stay transient.
	assert.Equal(t, rpcerr.KindTransient, c.Classify(ctx, raw(400, "PEER_FLOOD", "messages.sendMessage")).Kind)

	unknown := c.Classify(ctx, raw(400, "SOME_NEW_ERROR_X", "messages.sendMessage"))
	assert.Equal(t, rpcerr.KindUnknown, unknown.Kind)
	assert.Equal(t, "SOME_NEW_ERROR_X", unknown.Description)
}

func TestClassify_StructuralPrecedence(t *testing.T) {
	c := New(nil, nil, Config{})
	ctx := context.Background()

	// Malformed payloads fall through to the internal check.
	assert.Equal(t, rpcerr.KindTransient, c.Classify(ctx, raw(420, "FLOOD_WAIT_ABC", "m.x")).Kind)
	assert.Equal(t, rpcerr.KindTransient, c.Classify(ctx, raw(303, "USER_MIGRATE_", "m.x")).Kind)

	zero := c.Classify(ctx, raw(420, "FLOOD_WAIT_0", "m.x"))
	assert.Equal(t, rpcerr.KindFloodWait, zero.Kind)
	assert.Zero(t, zero.Wait)

	// Normalized static entries are Fatal.
	slow := c.Classify(ctx, raw(420, "SLOWMODE_WAIT_30", "messages.sendMessage"))
	assert.Equal(t, rpcerr.KindFatal, slow.Kind)
	assert.Equal(t, "SLOWMODE_WAIT_30", slow.Identifier)
}

func TestClassify_LookupOnceAndCache(t *testing.T) {
	lk := &fakeLookup{fn: func(method string, code int, id string) (string, error) {
		assert.Equal(t, "messages.sendMessage", method)
		assert.Equal(t, 400, code)
		assert.Equal(t, "SOME_NEW_ERROR_X", id)
		return "Something new.", nil
	}}
	c := New(taxonomy.New(nil), lk, Config{})
	ctx := context.Background()

	first := c.Classify(ctx, raw(400, "SOME_NEW_ERROR_7", "messages.sendMessage"))
	second := c.Classify(ctx, raw(400, "SOME_NEW_ERROR_9", "messages.sendMessage"))

	assert.Equal(t, rpcerr.KindUnknown, first.Kind)
	assert.Equal(t, "Something new.", first.Description)
	assert.Equal(t, first.Kind, second.Kind)
	assert.Equal(t, first.Description, second.Description)
	assert.Equal(t, int32(1), lk.calls.Load())
}

func TestClassify_LookupFailureFallsBack(t *testing.T) {
	lk := &fakeLookup{fn: func(string, int, string) (string, error) {
		return "", errors.New("unreachable")
	}}
	c := New(nil, lk, Config{})
	ctx := context.Background()

	err := c.Classify(ctx, raw(400, "SOME_NEW_ERROR_X", "messages.sendMessage"))
	assert.Equal(t, rpcerr.KindUnknown, err.Kind)
	assert.Equal(t, "SOME_NEW_ERROR_X", err.Description)

	// The failure is remembered and not retried.
	again := c.Classify(ctx, raw(400, "SOME_NEW_ERROR_X", "messages.sendMessage"))
	assert.Equal(t, err.Kind, again.Kind)
	assert.Equal(t, err.Description, again.Description)
	assert.Equal(t, int32(1), lk.calls.Load())
}

func TestClassify_LookupTimeout(t *testing.T) {
	lk := &fakeLookup{delay: time.Second, fn: func(string, int, string) (string, error) {
		return "late", nil
	}}
	c := New(nil, lk, Config{LookupTimeout: 20 * time.Millisecond})

	start := time.Now()
	err := c.Classify(context.Background(), raw(400, "SLOW_ERROR", "messages.sendMessage"))
	assert.Less(t, time.Since(start), 500*time.Millisecond)
	assert.Equal(t, "SLOW_ERROR", err.Description)
}

func TestClassify_NoLookupWithoutContext(t *testing.T) {
	lk := &fakeLookup{fn: func(string, int, string) (string, error) { return "x", nil }}
	c := New(nil, lk, Config{})
	ctx := context.Background()

	c.Classify(ctx, raw(0, "SOME_NEW_ERROR", "messages.sendMessage"))
	// Internal errors are never looked up.
	c.Classify(ctx, raw(500, "RPC_CALL_FAIL", "messages.sendMessage"))
	c.Classify(ctx, raw(400, "CHANNEL_PRIVATE", "channels.getFullChannel"))

	assert.Zero(t, lk.calls.Load())
}

func TestClassify_ConcurrentLookupsCollapse(t *testing.T) {
	release := make(chan struct{})
	lk := &fakeLookup{fn: func(string, int, string) (string, error) {
		<-release
		return "Shared.", nil
	}}
	c := New(nil, lk, Config{LookupTimeout: 5 * time.Second})

	var wg sync.WaitGroup
	results := make([]string, 8)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = c.Classify(context.Background(), raw(400, "NEW_ERROR", "m.x")).Description
		}(i)
	}

	require.Eventually(t, func() bool { return lk.calls.Load() == 1 }, time.Second, time.Millisecond)
	time.Sleep(20 * time.Millisecond)
	close(release)
	wg.Wait()

	for _, r := range results {
		assert.Equal(t, "Shared.", r)
	}
	assert.Equal(t, int32(1), lk.calls.Load())
}

func TestClassify_CountsKinds(t *testing.T) {
	c := New(nil, nil, Config{})
	transient := metrics.ClassifiedTotal.WithLabelValues("transient")
	before := testutil.ToFloat64(transient)

	c.Classify(context.Background(), raw(500, "RPC_CALL_FAIL", "help.getConfig"))
	c.Classify(context.Background(), raw(500, "No workers running", "help.getConfig"))

	assert.Equal(t, before+2, testutil.ToFloat64(transient))
}
