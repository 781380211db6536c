package control

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vietddude/rpcdispatch/internal/core/config"
	"github.com/vietddude/rpcdispatch/internal/core/domain"
	"github.com/vietddude/rpcdispatch/internal/infra/rpc"
)

// gateway answers every call with its method name, or with an error for
// methods starting with "fail.".
func gateway(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var calls []struct {
			ID     string `json:"id"`
			Method string `json:"method"`
		}
		if err := json.NewDecoder(r.Body).Decode(&calls); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		out := make([]map[string]any, 0, len(calls))
		for _, c := range calls {
			if c.Method == "fail.getConfig" {
				out = append(out, map[string]any{
					"id":    c.ID,
					"error": map[string]any{"code": 400, "message": "CHANNEL_PRIVATE"},
				})
				continue
			}
			out = append(out, map[string]any{"id": c.ID, "result": c.Method})
		}
		_ = json.NewEncoder(w).Encode(out)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestApp_Dispatch(t *testing.T) {
	srv := gateway(t)
	cfg, err := config.Parse([]byte("dispatch: {lookup: {disabled: true}}\ndatacenters:\n  2: \"" + srv.URL + "\"\n"))
	require.NoError(t, err)

	ctx := context.Background()
	app, err := NewApp(ctx, cfg)
	require.NoError(t, err)
	require.NotNil(t, app.Dispatcher())

	res, err := app.Dispatcher().Call(ctx, "help.getConfig", nil, domain.DC2)
	require.NoError(t, err)
	assert.JSONEq(t, `"help.getConfig"`, string(res.(json.RawMessage)))

	_, err = app.Dispatcher().Call(ctx, "fail.getConfig", nil, domain.DC2, rpc.WithQueue("q"))
	assert.ErrorIs(t, err, rpc.ErrFatal)

	require.NoError(t, app.Stop(ctx))
	_, err = app.Dispatcher().Call(ctx, "help.getConfig", nil, domain.DC2)
	assert.ErrorIs(t, err, rpc.ErrClosed)
}

func TestApp_LearnsIntoRedis(t *testing.T) {
	mr := miniredis.RunT(t)
	var lookups atomic.Int32
	lookupSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		lookups.Add(1)
		_, _ = w.Write([]byte(`{"ok":true,"result":"Something new happened."}`))
	}))
	defer lookupSrv.Close()

	cfg := config.Default()
	cfg.Redis.URL = "redis://" + mr.Addr()
	cfg.Dispatch.Lookup.URL = lookupSrv.URL

	ctx := context.Background()
	app, err := NewApp(ctx, cfg)
	require.NoError(t, err)
	defer func() { _ = app.Stop(ctx) }()
	assert.Nil(t, app.Dispatcher())

	raw := domain.RawError{Code: 400, Identifier: "SOMETHING_NEW", Method: "help.getConfig"}
	e := app.Classifier().Classify(ctx, raw)
	assert.Equal(t, rpc.KindUnknown, e.Kind)
	assert.Equal(t, "Something new happened.", e.Description)
	assert.Equal(t, "Something new happened.", mr.HGet("rpc:error_descriptions", "SOMETHING_NEW"))

	// Served from the store on the second pass.
	e = app.Classifier().Classify(ctx, raw)
	assert.Equal(t, "Something new happened.", e.Description)
	assert.EqualValues(t, 1, lookups.Load())

	rec := httptest.NewRecorder()
	app.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health/detailed", nil))
	assert.Contains(t, rec.Body.String(), `"redis":"ok"`)
}

func TestNewApp_BadRedis(t *testing.T) {
	cfg := config.Default()
	cfg.Redis.URL = "not a url"
	_, err := NewApp(context.Background(), cfg)
	assert.ErrorContains(t, err, "failed to init redis")
}
