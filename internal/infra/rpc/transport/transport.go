// Package transport moves containers of calls to a datacenter and streams
// the replies back.
//
// The dispatcher only needs Transport. HTTPTransport bridges to a gateway
// speaking JSON over HTTP; Func adapts plain functions, mostly for tests.
package transport

import (
	"context"

	"github.com/vietddude/rpcdispatch/internal/core/domain"
)

// Transport sends a container of calls to a datacenter.
//
// Send returns a channel delivering at most one Reply per call, in any
// order, correlated by CallID. The channel is closed once every call was
// answered or the connection is lost; calls left without a reply are
// considered disconnected. A non-nil error means nothing was sent.
type Transport interface {
	Send(ctx context.Context, dc domain.DatacenterID, calls []*domain.CallRequest) (<-chan domain.Reply, error)
}

// Func adapts a function to Transport.
type Func func(ctx context.Context, dc domain.DatacenterID, calls []*domain.CallRequest) (<-chan domain.Reply, error)

func (f Func) Send(ctx context.Context, dc domain.DatacenterID, calls []*domain.CallRequest) (<-chan domain.Reply, error) {
	return f(ctx, dc, calls)
}

// Replies builds an already closed reply channel.
func Replies(replies ...domain.Reply) <-chan domain.Reply {
	ch := make(chan domain.Reply, len(replies))
	for _, r := range replies {
		ch <- r
	}
	close(ch)
	return ch
}
