// Package rpc dispatches remote procedure calls to the datacenters of an
// MTProto style service.
//
// This package offers:
//   - Ordered queues: calls sharing a queue key on a datacenter resolve in
//     submission order, one batch in flight at a time
//   - Batching: postponed calls share a container until flushed
//   - Error classification against the service's error catalogue
//   - Transparent flood wait retries up to a tolerated wait
//   - Datacenter migration with a bounded number of hops
//
// # Quick Start
//
//	import "github.com/vietddude/rpcdispatch/internal/infra/rpc"
//
//	// Setup
//	lookup := rpc.NewLookupClient(rpc.DefaultLookupEndpoint, 3*time.Second)
//	classifier := rpc.NewClassifier(rpc.NewTaxonomy(nil), lookup, rpc.ClassifyConfig{})
//	d := rpc.NewDispatcher(t, classifier, rpc.DefaultConfig())
//	defer d.Close()
//
//	// Make calls
//	cfg, err := d.Call(ctx, "help.getConfig", nil, domain.DC2)
//	_, err = d.Call(ctx, "messages.sendMessage", params, domain.DC2, rpc.WithQueue("chat:42"))
//
//	// Queue postponed calls without blocking, then send them together
//	p, err := d.Go(ctx, "messages.readHistory", params, domain.DC2, rpc.WithPostpone())
//	d.Flush(domain.DC2)
//	_, err = p.Wait(ctx)
//
// # Package Structure
//
//   - rpcerr/    - Classified errors and local outcomes
//   - taxonomy/  - Error catalogue, internal error predicate, learned descriptions
//   - classify/  - Classifier with the fallback lookup
//   - lookup/    - HTTP client of the catalogue service
//   - queue/     - Ordered call queues
//   - batch/     - Container assembly and flushing
//   - flood/     - Flood wait and migration policy
//   - transport/ - Transport interface, HTTP bridge, link monitor
//   - schema/    - TL schema registry
//
// Most types are re-exported at the root level for convenience.
package rpc

import (
	"time"

	"github.com/vietddude/rpcdispatch/internal/infra/rpc/classify"
	"github.com/vietddude/rpcdispatch/internal/infra/rpc/lookup"
	"github.com/vietddude/rpcdispatch/internal/infra/rpc/rpcerr"
	"github.com/vietddude/rpcdispatch/internal/infra/rpc/taxonomy"
	"github.com/vietddude/rpcdispatch/internal/infra/rpc/transport"
)

// =============================================================================
// Re-exported types from rpcerr package
// =============================================================================

// Error is a classified remote error.
type Error = rpcerr.Error

// Kind is the classification family of a remote error.
type Kind = rpcerr.Kind

// Kind constants
const (
	KindUnknown   = rpcerr.KindUnknown
	KindFatal     = rpcerr.KindFatal
	KindTransient = rpcerr.KindTransient
	KindFloodWait = rpcerr.KindFloodWait
	KindMigrate   = rpcerr.KindMigrate
)

// Sentinel errors
var (
	ErrUnknown       = rpcerr.ErrUnknown
	ErrFatal         = rpcerr.ErrFatal
	ErrTransient     = rpcerr.ErrTransient
	ErrFloodWait     = rpcerr.ErrFloodWait
	ErrMigrate       = rpcerr.ErrMigrate
	ErrCancelled     = rpcerr.ErrCancelled
	ErrTransport     = rpcerr.ErrTransport
	ErrDisconnected  = rpcerr.ErrDisconnected
	ErrClosed        = rpcerr.ErrClosed
	ErrUnknownMethod = rpcerr.ErrUnknownMethod
	ErrMigrateLoop   = rpcerr.ErrMigrateLoop
)

// IsLocal reports whether err is a local outcome rather than a remote rejection.
var IsLocal = rpcerr.IsLocal

// =============================================================================
// Re-exported types from taxonomy, classify and lookup packages
// =============================================================================

// Taxonomy combines the static catalogue with learned descriptions.
type Taxonomy = taxonomy.Taxonomy

// DescriptionStore persists learned descriptions.
type DescriptionStore = taxonomy.Store

// ClassifyConfig tunes the fallback lookup.
type ClassifyConfig = classify.Config

// LookupClient implements the fallback lookup over HTTP.
type LookupClient = lookup.Client

// DefaultLookupEndpoint is the public catalogue service.
const DefaultLookupEndpoint = lookup.DefaultEndpoint

// NewTaxonomy returns a Taxonomy backed by store.
func NewTaxonomy(store DescriptionStore) *Taxonomy {
	return taxonomy.New(store)
}

// NewClassifier creates a classifier. lookup may be nil.
func NewClassifier(tax *Taxonomy, lookup classify.Lookuper, cfg ClassifyConfig) *classify.Classifier {
	return classify.New(tax, lookup, cfg)
}

// NewLookupClient creates a catalogue lookup client.
func NewLookupClient(endpoint string, timeout time.Duration) *LookupClient {
	return lookup.NewClient(endpoint, timeout)
}

// =============================================================================
// Re-exported types from transport package
// =============================================================================

// Transport sends a container of calls to a datacenter.
type Transport = transport.Transport

// TransportFunc adapts a function to Transport.
type TransportFunc = transport.Func

// HTTPTransport bridges to a JSON over HTTP gateway.
type HTTPTransport = transport.HTTPTransport

// LinkStats holds monitoring statistics for one datacenter.
type LinkStats = transport.Stats
