package cli

import (
	"bytes"
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vietddude/rpcdispatch/internal/core/config"
	redisclient "github.com/vietddude/rpcdispatch/internal/infra/redis"
)

func TestListDescriptions_Redis(t *testing.T) {
	mr := miniredis.RunT(t)
	cfg := config.Default()
	cfg.Redis.URL = "redis://" + mr.Addr()
	ctx := context.Background()

	client, err := redisclient.NewClient(cfg.Redis)
	require.NoError(t, err)
	defer client.Close()
	store := redisclient.NewDescriptionStore(client)
	require.NoError(t, store.Set(ctx, "SOME_NEW_ERROR_X", "Something new."))
	_, _, err = store.Get(ctx, "SOME_NEW_ERROR_X")
	require.NoError(t, err)

	rows, err := listDescriptions(ctx, cfg, "")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "SOME_NEW_ERROR_X", rows[0].Identifier)
	assert.EqualValues(t, 1, rows[0].Hits)

	var buf bytes.Buffer
	require.NoError(t, printDescriptions(&buf, rows))
	assert.Contains(t, buf.String(), "SOME_NEW_ERROR_X")
	assert.Contains(t, buf.String(), "Something new.")
}

func TestListDescriptions_Unconfigured(t *testing.T) {
	cfg := config.Default()
	ctx := context.Background()

	_, err := listDescriptions(ctx, cfg, "")
	assert.ErrorContains(t, err, "redis.url is not configured")
	_, err = listDescriptions(ctx, cfg, "postgres")
	assert.ErrorContains(t, err, "database.url is not configured")
	_, err = listDescriptions(ctx, cfg, "mongo")
	assert.ErrorContains(t, err, "unknown tier")
}
