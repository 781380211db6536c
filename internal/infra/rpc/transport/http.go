package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/vietddude/rpcdispatch/internal/core/domain"
)

// ErrNoEndpoint is returned for datacenters without a configured endpoint.
var ErrNoEndpoint = errors.New("no endpoint for datacenter")

type wireCall struct {
	ID     string `json:"id"`
	Method string `json:"method"`
	Params any    `json:"params,omitempty"`
}

type wireReply struct {
	ID     string          `json:"id"`
	Result json.RawMessage `json:"result,omitempty"`
	Error  *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

// HTTPTransport posts each container as a JSON array to the gateway of its
// datacenter and expects an array of replies in return.
type HTTPTransport struct {
	endpoints  map[domain.DatacenterID]string
	httpClient *http.Client
}

// NewHTTPTransport creates a transport for the given gateway endpoints.
func NewHTTPTransport(endpoints map[domain.DatacenterID]string, timeout time.Duration) *HTTPTransport {
	eps := make(map[domain.DatacenterID]string, len(endpoints))
	for dc, url := range endpoints {
		eps[dc] = url
	}
	return &HTTPTransport{
		endpoints: eps,
		httpClient: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
	}
}

// Send posts calls to the gateway of dc.
func (t *HTTPTransport) Send(ctx context.Context, dc domain.DatacenterID, calls []*domain.CallRequest) (<-chan domain.Reply, error) {
	endpoint, ok := t.endpoints[dc]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNoEndpoint, dc)
	}

	batch := make([]wireCall, len(calls))
	for i, c := range calls {
		batch[i] = wireCall{ID: c.ID, Method: c.Method, Params: c.Params}
	}
	jsonData, err := json.Marshal(batch)
	if err != nil {
		return nil, fmt.Errorf("marshal container: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(jsonData))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := t.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("send container: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("http %d: %s", resp.StatusCode, string(body))
	}

	var wire []wireReply
	if err := json.Unmarshal(body, &wire); err != nil {
		return nil, fmt.Errorf("parse container reply: %w", err)
	}

	methods := make(map[string]string, len(calls))
	for _, c := range calls {
		methods[c.ID] = c.Method
	}

	out := make(chan domain.Reply, len(wire))
	for _, w := range wire {
		method, ok := methods[w.ID]
		if !ok {
			continue
		}
		r := domain.Reply{CallID: w.ID}
		if w.Error != nil {
			r.Err = &domain.RawError{Code: w.Error.Code, Identifier: w.Error.Message, Method: method}
		} else {
			r.Result = w.Result
		}
		out <- r
	}
	close(out)
	return out, nil
}

// Close releases idle connections.
func (t *HTTPTransport) Close() error {
	t.httpClient.CloseIdleConnections()
	return nil
}
