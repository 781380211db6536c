package redis

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vietddude/rpcdispatch/internal/infra/rpc/taxonomy"
)

func newTestClient(t *testing.T) (*Client, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	c, err := NewClient(Config{URL: "redis://" + mr.Addr()})
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close() })
	return c, mr
}

func TestDescriptionStore(t *testing.T) {
	c, mr := newTestClient(t)
	s := NewDescriptionStore(c)
	ctx := context.Background()

	_, ok, err := s.Get(ctx, "SOME_NEW_ERROR_X")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, s.Set(ctx, "SOME_NEW_ERROR_X", "Something new."))
	require.NoError(t, s.Set(ctx, "SOME_NEW_ERROR_X", "Overwritten?"))

	d, ok, err := s.Get(ctx, "SOME_NEW_ERROR_X")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "Something new.", d, "first description wins")

	assert.Equal(t, "Something new.", mr.HGet("rpc:error_descriptions", "SOME_NEW_ERROR_X"))

	require.NoError(t, s.Set(ctx, "ANOTHER_ERROR", "Another."))

	list, err := s.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []Description{
		{Identifier: "ANOTHER_ERROR", Description: "Another.", Hits: 0},
		{Identifier: "SOME_NEW_ERROR_X", Description: "Something new.", Hits: 1},
	}, list)
}

func TestDescriptionStore_HitCounterFailureIsLogged(t *testing.T) {
	c, mr := newTestClient(t)
	s := NewDescriptionStore(c)
	var logs bytes.Buffer
	s.log = slog.New(slog.NewTextHandler(&logs, nil))
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "SOME_NEW_ERROR_X", "Something new."))
	// A string at the counter key makes HINCRBY fail with WRONGTYPE.
	require.NoError(t, mr.Set("rpc:error_occurrences", "not a hash"))

	d, ok, err := s.Get(ctx, "SOME_NEW_ERROR_X")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "Something new.", d)
	assert.Contains(t, logs.String(), "Failed to count description hit")
	assert.Contains(t, logs.String(), "WRONGTYPE")
}

func TestDescriptionStore_SharedBetweenTaxonomies(t *testing.T) {
	c, _ := newTestClient(t)
	ctx := context.Background()

	first := taxonomy.New(taxonomy.NewTieredStore(taxonomy.NewMemoryStore(), NewDescriptionStore(c)))
	second := taxonomy.New(taxonomy.NewTieredStore(taxonomy.NewMemoryStore(), NewDescriptionStore(c)))

	require.NoError(t, first.Remember(ctx, "SHARED_ERROR_3", "Learned once."))

	d, ok, err := second.Learned(ctx, "SHARED_ERROR_7")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "Learned once.", d)
}

func TestNewClient_Errors(t *testing.T) {
	_, err := NewClient(Config{URL: "not a url"})
	assert.Error(t, err)

	mr := miniredis.RunT(t)
	addr := mr.Addr()
	mr.Close()
	_, err = NewClient(Config{URL: "redis://" + addr})
	assert.Error(t, err)
}

func TestClient_KeyPrefix(t *testing.T) {
	mr := miniredis.RunT(t)
	c, err := NewClient(Config{URL: "redis://" + mr.Addr(), KeyPrefix: "tenant1"})
	require.NoError(t, err)
	defer c.Close()

	require.NoError(t, NewDescriptionStore(c).Set(context.Background(), "E_X", "d"))
	assert.True(t, mr.Exists("tenant1:error_descriptions"))
	assert.NoError(t, c.Ping(context.Background()))
}
