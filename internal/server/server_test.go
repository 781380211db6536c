package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vietddude/rpcdispatch/internal/infra/rpc"
	"github.com/vietddude/rpcdispatch/internal/infra/rpc/classify"
	"github.com/vietddude/rpcdispatch/internal/infra/rpc/taxonomy"
	"github.com/vietddude/rpcdispatch/internal/infra/rpc/transport"
)

type staticStats rpc.Stats

func (s staticStats) Stats() rpc.Stats { return rpc.Stats(s) }

func newTestServer(stats StatsSource, checks map[string]CheckFunc) *Server {
	return New(stats, classify.New(taxonomy.New(nil), nil, classify.Config{}), checks, 0)
}

func get(t *testing.T, s *Server, target string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestHealth(t *testing.T) {
	tests := []struct {
		name   string
		stats  StatsSource
		checks map[string]CheckFunc
		code   int
		status SystemStatus
	}{
		{"no dispatcher", nil, nil, http.StatusOK, StatusHealthy},
		{
			"healthy links",
			staticStats{Links: []transport.Stats{{Datacenter: 2, Status: transport.StatusHealthy}}},
			map[string]CheckFunc{"redis": func(context.Context) error { return nil }},
			http.StatusOK, StatusHealthy,
		},
		{
			"throttled link",
			staticStats{Links: []transport.Stats{{Datacenter: 2, Status: transport.StatusThrottled}}},
			nil,
			http.StatusOK, StatusDegraded,
		},
		{
			"store down",
			nil,
			map[string]CheckFunc{"postgres": func(context.Context) error { return errors.New("refused") }},
			http.StatusServiceUnavailable, StatusCritical,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := get(t, newTestServer(tt.stats, tt.checks), "/health")
			assert.Equal(t, tt.code, rec.Code)

			var body map[string]string
			require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
			assert.Equal(t, string(tt.status), body["status"])
		})
	}
}

func TestHealthDetailed(t *testing.T) {
	stats := staticStats{
		Links:  []transport.Stats{{Datacenter: 4, StatusName: "healthy", Calls: 3}},
		Queued: map[string]int{"dc4": 2},
	}
	checks := map[string]CheckFunc{"postgres": func(context.Context) error { return errors.New("refused") }}

	rec := get(t, newTestServer(stats, checks), "/health/detailed")
	require.Equal(t, http.StatusOK, rec.Code)

	var report Report
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&report))
	assert.Equal(t, StatusCritical, report.Status)
	assert.Equal(t, map[string]int{"dc4": 2}, report.Queued)
	assert.Equal(t, "refused", report.Dependencies["postgres"])
	require.Len(t, report.Links, 1)
	assert.Equal(t, 3, report.Links[0].Calls)
}

func TestClassify(t *testing.T) {
	s := newTestServer(nil, nil)

	tests := []struct {
		name   string
		target string
		check  func(t *testing.T, c Classification)
	}{
		{
			"fatal",
			"/classify?error=CHANNEL_PRIVATE&code=400&method=channels.getFullChannel",
			func(t *testing.T, c Classification) {
				assert.Equal(t, "fatal", c.Kind)
				assert.Equal(t, "CHANNEL_PRIVATE", c.Variant)
				assert.Equal(t, "You haven't joined this channel/supergroup", c.Description)
				assert.Equal(t, "InvalidArgument", c.GRPCCode)
			},
		},
		{
			"flood wait",
			"/classify?error=FLOOD_WAIT_30&code=420&method=messages.sendMessage",
			func(t *testing.T, c Classification) {
				assert.Equal(t, "flood_wait", c.Kind)
				assert.EqualValues(t, 30, c.WaitSeconds)
				assert.Equal(t, "ResourceExhausted", c.GRPCCode)
			},
		},
		{
			"migrate",
			"/classify?error=USER_MIGRATE_5&code=303&method=auth.sendCode",
			func(t *testing.T, c Classification) {
				assert.Equal(t, "migrate", c.Kind)
				assert.Equal(t, 5, c.Datacenter)
			},
		},
		{
			"transient",
			"/classify?error=RPC_CALL_FAIL&code=500&method=help.getConfig",
			func(t *testing.T, c Classification) {
				assert.Equal(t, "transient", c.Kind)
			},
		},
		{
			"unknown without lookup",
			"/classify?error=SOMETHING_NEW&code=400&method=help.getConfig",
			func(t *testing.T, c Classification) {
				assert.Equal(t, "unknown", c.Kind)
				assert.Equal(t, "SOMETHING_NEW", c.Description)
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := get(t, s, tt.target)
			require.Equal(t, http.StatusOK, rec.Code)

			var c Classification
			require.NoError(t, json.NewDecoder(rec.Body).Decode(&c))
			tt.check(t, c)
		})
	}
}

func TestClassify_BadRequest(t *testing.T) {
	s := newTestServer(nil, nil)
	assert.Equal(t, http.StatusBadRequest, get(t, s, "/classify?code=400").Code)
	assert.Equal(t, http.StatusBadRequest, get(t, s, "/classify?error=X&code=abc").Code)
}

func TestMetrics(t *testing.T) {
	rec := get(t, newTestServer(nil, nil), "/metrics")
	assert.Equal(t, http.StatusOK, rec.Code)
}
