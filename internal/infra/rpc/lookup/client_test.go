package lookup

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	testclock "k8s.io/utils/clock/testing"
)

func TestClient_Lookup(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "messages.sendMessage", q.Get("method"))
		assert.Equal(t, "400", q.Get("code"))
		assert.Equal(t, "SOME_NEW_ERROR_X", q.Get("error"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"ok":true,"result":"Something new went wrong."}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Second)
	defer c.Close()

	d, err := c.Lookup(context.Background(), "messages.sendMessage", 400, "SOME_NEW_ERROR_X")
	require.NoError(t, err)
	assert.Equal(t, "Something new went wrong.", d)
}

func TestClient_LookupNoDescription(t *testing.T) {
	for name, body := range map[string]string{
		"not ok":       `{"ok":false,"description":"nope"}`,
		"empty result": `{"ok":true,"result":""}`,
		"not a string": `{"ok":true,"result":{"x":1}}`,
	} {
		t.Run(name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(body))
			}))
			defer srv.Close()

			_, err := NewClient(srv.URL, time.Second).Lookup(context.Background(), "m.x", 400, "E")
			assert.ErrorIs(t, err, ErrNoDescription)
		})
	}
}

func TestClient_LookupFailures(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL, time.Second).Lookup(context.Background(), "m.x", 400, "E")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "http 500")

	bad := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`not json`))
	}))
	defer bad.Close()

	_, err = NewClient(bad.URL, time.Second).Lookup(context.Background(), "m.x", 400, "E")
	assert.ErrorContains(t, err, "parse response")
}

func TestClient_LookupTimeout(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()
	defer close(release)

	_, err := NewClient(srv.URL, 50*time.Millisecond).Lookup(context.Background(), "m.x", 400, "E")
	assert.Error(t, err)
}

func TestClient_Throttle(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.Header().Set("Retry-After", "30")
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	fc := testclock.NewFakeClock(time.Now())
	c := NewClient(srv.URL, time.Second)
	c.clock = fc

	_, err := c.Lookup(context.Background(), "m.x", 400, "E")
	assert.ErrorIs(t, err, ErrThrottled)
	_, err = c.Lookup(context.Background(), "m.x", 400, "E")
	assert.ErrorIs(t, err, ErrThrottled)
	assert.Equal(t, int32(1), hits.Load(), "second lookup must not reach the service")

	fc.Step(31 * time.Second)
	_, err = c.Lookup(context.Background(), "m.x", 400, "E")
	assert.ErrorIs(t, err, ErrThrottled)
	assert.Equal(t, int32(2), hits.Load())
}
