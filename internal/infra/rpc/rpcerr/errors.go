// Package rpcerr defines the classified outcome of a failed remote call.
//
// Every remote failure is turned into an *Error carrying one Kind:
//   - KindFatal: known, described, never retried
//   - KindTransient: internal or structurally understood, not enriched
//   - KindFloodWait: rate limited, Wait holds the requested pause
//   - KindMigrate: the call belongs to another datacenter
//   - KindUnknown: not in the taxonomy, described by the fallback lookup if possible
//
// Local faults (cancellation, transport loss) are plain sentinel errors so
// callers can tell them apart from protocol rejections, see IsLocal.
package rpcerr

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/vietddude/rpcdispatch/internal/core/domain"
)

// Kind is the classification family of a remote error.
type Kind int

const (
	KindUnknown Kind = iota
	KindFatal
	KindTransient
	KindFloodWait
	KindMigrate
)

func (k Kind) String() string {
	switch k {
	case KindUnknown:
		return "unknown"
	case KindFatal:
		return "fatal"
	case KindTransient:
		return "transient"
	case KindFloodWait:
		return "flood_wait"
	case KindMigrate:
		return "migrate"
	default:
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Kind sentinels, matched with errors.Is against any *Error of that kind.
var (
	ErrUnknown   = errors.New("unknown rpc error")
	ErrFatal     = errors.New("fatal rpc error")
	ErrTransient = errors.New("transient rpc error")
	ErrFloodWait = errors.New("flood wait")
	ErrMigrate   = errors.New("datacenter migration")
)

// Variant names an identifier that callers commonly match on.
type Variant string

func (v Variant) Error() string {
	return string(v)
}

// Error is a classified remote error. Values are immutable once built.
type Error struct {
	Kind        Kind
	Code        int
	Identifier  string
	Method      string
	Description string

	// Wait is set for KindFloodWait.
	Wait time.Duration

	// Datacenter is the migration target for KindMigrate.
	Datacenter domain.DatacenterID

	cause error
}

// NewFatal builds a known, non-retryable error.
func NewFatal(raw domain.RawError, description string) *Error {
	return newError(KindFatal, raw, description)
}

// NewTransient builds an error the dispatcher does not enrich or retry.
func NewTransient(raw domain.RawError, description string) *Error {
	return newError(KindTransient, raw, description)
}

// NewFloodWait builds a rate limiting error asking for a pause of wait.
func NewFloodWait(raw domain.RawError, wait time.Duration, description string) *Error {
	e := newError(KindFloodWait, raw, description)
	e.Wait = wait
	return e
}

// NewMigrate builds an error redirecting the call to dc.
func NewMigrate(raw domain.RawError, dc domain.DatacenterID, description string) *Error {
	e := newError(KindMigrate, raw, description)
	e.Datacenter = dc
	return e
}

// NewUnknown builds an error for an identifier missing from the taxonomy.
func NewUnknown(raw domain.RawError, description string) *Error {
	return newError(KindUnknown, raw, description)
}

func newError(kind Kind, raw domain.RawError, description string) *Error {
	if description == "" {
		description = raw.Identifier
	}
	return &Error{
		Kind:        kind,
		Code:        raw.Code,
		Identifier:  raw.Identifier,
		Method:      raw.Method,
		Description: description,
	}
}

// MigrateLoop turns the last migrate error of a redirect chain that exceeded
// max hops into a Fatal error wrapping ErrMigrateLoop.
func MigrateLoop(last *Error, max int) *Error {
	return &Error{
		Kind:        KindFatal,
		Code:        last.Code,
		Identifier:  last.Identifier,
		Method:      last.Method,
		Description: fmt.Sprintf("gave up after %d datacenter migrations", max),
		Datacenter:  last.Datacenter,
		cause:       ErrMigrateLoop,
	}
}

// Raw returns the triple the error was classified from.
func (e *Error) Raw() domain.RawError {
	return domain.RawError{Code: e.Code, Identifier: e.Identifier, Method: e.Method}
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindFloodWait:
		return fmt.Sprintf("%s (%d) in %s: retry after %s", e.Identifier, e.Code, e.Method, e.Wait)
	case KindMigrate:
		return fmt.Sprintf("%s (%d) in %s: migrate to %s", e.Identifier, e.Code, e.Method, e.Datacenter)
	}
	if e.Description == e.Identifier {
		return fmt.Sprintf("%s (%d) in %s", e.Identifier, e.Code, e.Method)
	}
	return fmt.Sprintf("%s (%d) in %s: %s", e.Identifier, e.Code, e.Method, e.Description)
}

func (e *Error) Unwrap() error {
	return e.cause
}

// Is matches kind sentinels and named variants.
func (e *Error) Is(target error) bool {
	switch t := target.(type) {
	case Variant:
		return e.Identifier == string(t)
	case *Error:
		return e.Kind == t.Kind && e.Identifier == t.Identifier
	}
	switch target {
	case ErrUnknown:
		return e.Kind == KindUnknown
	case ErrFatal:
		return e.Kind == KindFatal
	case ErrTransient:
		return e.Kind == KindTransient
	case ErrFloodWait:
		return e.Kind == KindFloodWait
	case ErrMigrate:
		return e.Kind == KindMigrate
	}
	return false
}

// RetryAfter returns the requested pause for flood wait errors and zero otherwise.
func (e *Error) RetryAfter() time.Duration {
	if e.Kind != KindFloodWait {
		return 0
	}
	return e.Wait
}

// Named returns the variant of the error, if it has one.
func (e *Error) Named() (Variant, bool) {
	v, ok := variantSet[e.Identifier]
	return v, ok
}

var variantSet = func() map[string]Variant {
	m := make(map[string]Variant, len(Variants))
	for _, v := range Variants {
		m[string(v)] = v
	}
	return m
}()

// As extracts the classified error from err.
func As(err error) (*Error, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}
