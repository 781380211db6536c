package flood

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	testclock "k8s.io/utils/clock/testing"

	"github.com/vietddude/rpcdispatch/internal/core/domain"
	"github.com/vietddude/rpcdispatch/internal/infra/rpc/rpcerr"
)

func floodWait(secs int) *rpcerr.Error {
	return rpcerr.NewFloodWait(domain.RawError{Code: 420, Identifier: "FLOOD_WAIT_X", Method: "messages.sendMessage"},
		time.Duration(secs)*time.Second, "")
}

func migrate(dc domain.DatacenterID) *rpcerr.Error {
	return rpcerr.NewMigrate(domain.RawError{Code: 303, Identifier: "USER_MIGRATE_X", Method: "users.getUsers"}, dc, "")
}

func TestPolicy_FloodWaitWithinTolerance(t *testing.T) {
	fc := testclock.NewFakeClock(time.Now())
	p := NewPolicy(fc, Config{})
	attempt := &Attempt{}

	done := make(chan Decision, 1)
	go func() {
		done <- p.Handle(context.Background(), floodWait(3), domain.DC2, 5*time.Second, attempt)
	}()

	require.Eventually(t, fc.HasWaiters, time.Second, time.Millisecond)
	fc.Step(2 * time.Second)
	select {
	case <-done:
		t.Fatal("returned before the requested wait elapsed")
	case <-time.After(20 * time.Millisecond):
	}

	fc.Step(time.Second)
	select {
	case d := <-done:
		assert.Equal(t, ActionRetry, d.Action)
		assert.Equal(t, domain.DC2, d.Datacenter)
		assert.Equal(t, 1, attempt.FloodRetries)
	case <-time.After(time.Second):
		t.Fatal("no decision after the wait elapsed")
	}
}

func TestPolicy_FloodWaitBeyondTolerance(t *testing.T) {
	fc := testclock.NewFakeClock(time.Now())
	p := NewPolicy(fc, Config{})

	d := p.Handle(context.Background(), floodWait(60), domain.DC2, 5*time.Second, &Attempt{})
	assert.Equal(t, ActionSurface, d.Action)
	assert.ErrorIs(t, d.Err, rpcerr.ErrFloodWait)
	assert.False(t, fc.HasWaiters(), "no wait before surfacing")
}

func TestPolicy_FloodWaitZero(t *testing.T) {
	p := NewPolicy(testclock.NewFakeClock(time.Now()), Config{})

	d := p.Handle(context.Background(), floodWait(0), domain.DC1, 0, &Attempt{})
	assert.Equal(t, ActionRetry, d.Action)
}

func TestPolicy_FloodRetryBudget(t *testing.T) {
	p := NewPolicy(testclock.NewFakeClock(time.Now()), Config{MaxFloodRetries: 2})
	attempt := &Attempt{FloodRetries: 2}

	d := p.Handle(context.Background(), floodWait(0), domain.DC1, time.Minute, attempt)
	assert.Equal(t, ActionSurface, d.Action)
	assert.ErrorIs(t, d.Err, rpcerr.ErrFloodWait)
}

func TestPolicy_FloodWaitCancelled(t *testing.T) {
	fc := testclock.NewFakeClock(time.Now())
	p := NewPolicy(fc, Config{})
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan Decision, 1)
	go func() {
		done <- p.Handle(ctx, floodWait(3), domain.DC2, 5*time.Second, &Attempt{})
	}()

	require.Eventually(t, fc.HasWaiters, time.Second, time.Millisecond)
	cancel()

	select {
	case d := <-done:
		assert.Equal(t, ActionSurface, d.Action)
		assert.ErrorIs(t, d.Err, rpcerr.ErrCancelled)
		assert.ErrorIs(t, d.Err, context.Canceled)
	case <-time.After(time.Second):
		t.Fatal("sleep was not interrupted")
	}
}

func TestPolicy_Migrate(t *testing.T) {
	p := NewPolicy(testclock.NewFakeClock(time.Now()), Config{MaxMigrations: 2})
	attempt := &Attempt{}

	d := p.Handle(context.Background(), migrate(domain.DC5), domain.DC2, 0, attempt)
	assert.Equal(t, ActionRetry, d.Action)
	assert.Equal(t, domain.DC5, d.Datacenter)

	d = p.Handle(context.Background(), migrate(domain.DC4), domain.DC5, 0, attempt)
	assert.Equal(t, ActionRetry, d.Action)
	assert.Equal(t, domain.DC4, d.Datacenter)

	d = p.Handle(context.Background(), migrate(domain.DC5), domain.DC4, 0, attempt)
	assert.Equal(t, ActionSurface, d.Action)
	assert.ErrorIs(t, d.Err, rpcerr.ErrFatal)
	assert.ErrorIs(t, d.Err, rpcerr.ErrMigrateLoop)
}

func TestPolicy_OtherKindsSurface(t *testing.T) {
	p := NewPolicy(testclock.NewFakeClock(time.Now()), Config{})
	raw := domain.RawError{Code: 400, Identifier: "CHANNEL_PRIVATE", Method: "channels.getFullChannel"}

	for _, err := range []*rpcerr.Error{
		rpcerr.NewFatal(raw, ""),
		rpcerr.NewTransient(raw, ""),
		rpcerr.NewUnknown(raw, ""),
	} {
		d := p.Handle(context.Background(), err, domain.DC2, time.Minute, &Attempt{})
		assert.Equal(t, ActionSurface, d.Action)
		assert.Same(t, err, d.Err)
	}
}
