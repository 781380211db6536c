// Package lookup asks the public error catalogue service to describe an
// identifier the compiled-in taxonomy does not know.
package lookup

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"sync"
	"time"

	"k8s.io/utils/clock"
)

// DefaultEndpoint is the public catalogue service.
const DefaultEndpoint = "https://report-rpc-error.madelineproto.xyz/"

var (
	// ErrNoDescription is returned when the service answered but had nothing to say.
	ErrNoDescription = errors.New("lookup: no description")

	// ErrThrottled is returned while the service asked us to back off.
	ErrThrottled = errors.New("lookup: throttled")
)

// Client implements the fallback lookup over HTTP.
type Client struct {
	endpoint   string
	httpClient *http.Client
	clock      clock.PassiveClock

	mu           sync.Mutex
	blockedUntil time.Time
}

// NewClient creates a lookup client. Each request is bounded by timeout.
func NewClient(endpoint string, timeout time.Duration) *Client {
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	return &Client{
		endpoint: endpoint,
		httpClient: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				MaxIdleConns:        10,
				MaxIdleConnsPerHost: 2,
				IdleConnTimeout:     90 * time.Second,
			},
		},
		clock: clock.RealClock{},
	}
}

// Lookup fetches the description of identifier as raised by method with code.
func (c *Client) Lookup(ctx context.Context, method string, code int, identifier string) (string, error) {
	if c.throttled() {
		return "", ErrThrottled
	}

	u, err := url.Parse(c.endpoint)
	if err != nil {
		return "", fmt.Errorf("parse endpoint: %w", err)
	}
	q := u.Query()
	q.Set("method", method)
	q.Set("code", strconv.Itoa(code))
	q.Set("error", identifier)
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("lookup %s: %w", identifier, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		c.backOff(resp.Header.Get("Retry-After"))
		return "", ErrThrottled
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("http %d: %s", resp.StatusCode, string(body))
	}

	var res struct {
		OK     bool `json:"ok"`
		Result any  `json:"result"`
	}
	if err := json.Unmarshal(body, &res); err != nil {
		return "", fmt.Errorf("parse response: %w", err)
	}

	description, _ := res.Result.(string)
	if !res.OK || description == "" {
		return "", ErrNoDescription
	}
	return description, nil
}

// Close releases idle connections.
func (c *Client) Close() error {
	c.httpClient.CloseIdleConnections()
	return nil
}

func (c *Client) throttled() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.clock.Now().Before(c.blockedUntil)
}

func (c *Client) backOff(retryAfter string) {
	wait := time.Minute
	if secs, err := strconv.Atoi(retryAfter); err == nil && secs > 0 {
		wait = time.Duration(secs) * time.Second
	}

	c.mu.Lock()
	c.blockedUntil = c.clock.Now().Add(wait)
	c.mu.Unlock()
}
