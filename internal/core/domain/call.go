package domain

import (
	"fmt"
	"time"
)

// QueueKey is a caller-supplied ordering token. The zero value selects the
// default queue of the target datacenter.
type QueueKey string

// DefaultQueue is the ambient queue shared by calls without an explicit key.
const DefaultQueue QueueKey = ""

// CallRequest is one pending invocation of a remote method.
type CallRequest struct {
	// ID correlates the call with its reply inside a container. The
	// dispatcher assigns it on submission.
	ID string

	// Reference is an optional caller label. It is never used for
	// correlation, so duplicates are harmless.
	Reference string

	// Method is the remote method identifier (e.g. "messages.sendMessage").
	Method string

	// Params are the encoded parameters. The dispatcher never inspects them.
	Params any

	// Datacenter is the current target. It changes when the remote end
	// answers with a migrate error.
	Datacenter DatacenterID

	Queue    QueueKey
	Postpone bool

	// ToleratedWait is the longest flood wait slept through before the
	// error is surfaced. Zero takes the dispatcher default; a negative
	// value never sleeps.
	ToleratedWait time.Duration

	// SubmittedAt is set by the dispatcher when the call is accepted.
	SubmittedAt time.Time
}

// RawError is the undecoded (code, identifier, method) triple returned by the
// remote end for a failed call.
type RawError struct {
	Code       int
	Identifier string
	Method     string
}

func (e RawError) Error() string {
	return fmt.Sprintf("rpc error %d: %s (%s)", e.Code, e.Identifier, e.Method)
}

// Reply is the outcome of one call inside a sent container.
type Reply struct {
	CallID string
	Result any
	Err    *RawError
}
