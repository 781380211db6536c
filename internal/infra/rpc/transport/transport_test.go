package transport

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	testclock "k8s.io/utils/clock/testing"

	"github.com/vietddude/rpcdispatch/internal/core/domain"
)

func collect(ch <-chan domain.Reply) map[string]domain.Reply {
	out := make(map[string]domain.Reply)
	for r := range ch {
		out[r.CallID] = r
	}
	return out
}

func TestHTTPTransport_Send(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var calls []wireCall
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&calls))
		if assert.Len(t, calls, 3) {
			assert.Equal(t, "help.getConfig", calls[0].Method)
		}

		_, _ = w.Write([]byte(`[
			{"id":"c","error":{"code":420,"message":"FLOOD_WAIT_3"}},
			{"id":"a","result":{"this_dc":2}},
			{"id":"stray","result":1}
		]`))
	}))
	defer srv.Close()

	tr := NewHTTPTransport(map[domain.DatacenterID]string{domain.DC2: srv.URL}, time.Second)
	defer tr.Close()

	ch, err := tr.Send(context.Background(), domain.DC2, []*domain.CallRequest{
		{ID: "a", Method: "help.getConfig"},
		{ID: "b", Method: "help.getNearestDc"},
		{ID: "c", Method: "messages.sendMessage", Params: map[string]any{"message": "hi"}},
	})
	require.NoError(t, err)

	replies := collect(ch)
	require.Len(t, replies, 2, "missing and stray ids are not delivered")

	assert.Nil(t, replies["a"].Err)
	assert.JSONEq(t, `{"this_dc":2}`, string(replies["a"].Result.(json.RawMessage)))

	require.NotNil(t, replies["c"].Err)
	assert.Equal(t, domain.RawError{Code: 420, Identifier: "FLOOD_WAIT_3", Method: "messages.sendMessage"}, *replies["c"].Err)
}

func TestHTTPTransport_Failures(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gateway down", http.StatusBadGateway)
	}))
	defer srv.Close()

	tr := NewHTTPTransport(map[domain.DatacenterID]string{domain.DC1: srv.URL}, time.Second)

	_, err := tr.Send(context.Background(), domain.DC1, []*domain.CallRequest{{ID: "a", Method: "m.x"}})
	assert.ErrorContains(t, err, "http 502")

	_, err = tr.Send(context.Background(), domain.DC4, []*domain.CallRequest{{ID: "a", Method: "m.x"}})
	assert.ErrorIs(t, err, ErrNoEndpoint)
}

func TestReplies(t *testing.T) {
	ch := Replies(domain.Reply{CallID: "a"}, domain.Reply{CallID: "b"})
	assert.Len(t, collect(ch), 2)
}

func TestMonitor(t *testing.T) {
	fc := testclock.NewFakeClock(time.Now())
	m := NewMonitor(fc)

	assert.Equal(t, StatusHealthy, m.Status(domain.DC2))

	m.RecordContainer(domain.DC2, 3, 100*time.Millisecond)
	m.RecordContainer(domain.DC2, 1, 300*time.Millisecond)
	m.RecordFloodWait(domain.DC2, 10*time.Second)
	m.RecordMigration(domain.DC1)

	assert.Equal(t, StatusThrottled, m.Status(domain.DC2))

	stats := m.Stats()
	require.Len(t, stats, 2)
	assert.Equal(t, domain.DC1, stats[0].Datacenter)
	assert.Equal(t, 1, stats[0].MigrationsOut)
	assert.Equal(t, 4, stats[1].Calls)
	assert.Equal(t, 2, stats[1].Containers)
	assert.Equal(t, 200*time.Millisecond, stats[1].AverageLatency)
	assert.Equal(t, "throttled", stats[1].StatusName)

	fc.Step(11 * time.Second)
	assert.Equal(t, StatusHealthy, m.Status(domain.DC2))

	for i := 0; i < 12; i++ {
		m.RecordFailure(domain.DC3)
	}
	assert.Equal(t, StatusDegraded, m.Status(domain.DC3))
}
