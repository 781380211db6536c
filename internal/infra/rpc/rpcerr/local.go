package rpcerr

import (
	"errors"
	"fmt"
)

// Local outcomes. None of them means the remote end rejected the call.
var (
	// ErrCancelled is returned when the caller's context ends before the call
	// resolves. It wraps the context error.
	ErrCancelled = errors.New("call cancelled")

	// ErrTransport is returned when a container could not be handed to the transport.
	ErrTransport = errors.New("transport failure")

	// ErrDisconnected is returned when the reply stream ended without an answer for the call.
	ErrDisconnected = errors.New("transport closed before reply")

	// ErrClosed is returned for calls submitted to, or pending in, a closed dispatcher.
	ErrClosed = errors.New("dispatcher closed")

	// ErrUnknownMethod is returned when a schema is configured and the method is not part of it.
	ErrUnknownMethod = errors.New("unknown method")

	// ErrMigrateLoop is wrapped by the Fatal error surfaced after too many migrations.
	ErrMigrateLoop = errors.New("too many datacenter migrations")
)

// Cancelled wraps a context error as a cancellation outcome.
func Cancelled(cause error) error {
	if cause == nil {
		return ErrCancelled
	}
	return fmt.Errorf("%w: %w", ErrCancelled, cause)
}

// IsLocal reports whether err is a local outcome rather than a remote rejection.
func IsLocal(err error) bool {
	if _, ok := As(err); ok {
		return false
	}
	return errors.Is(err, ErrCancelled) ||
		errors.Is(err, ErrTransport) ||
		errors.Is(err, ErrDisconnected) ||
		errors.Is(err, ErrClosed) ||
		errors.Is(err, ErrUnknownMethod)
}
