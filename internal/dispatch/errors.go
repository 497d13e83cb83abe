package dispatch

import "errors"

// Dispatcher errors.
var (
	// ErrTerminated indicates the dispatcher has been terminated.
	ErrTerminated = errors.New("dispatch: dispatcher terminated")

	// ErrHandlerExists indicates a second registration for a method.
	ErrHandlerExists = errors.New("dispatch: handler already registered")

	// ErrNotIncomingMethod indicates a registration for a method outside
	// the incoming registries.
	ErrNotIncomingMethod = errors.New("dispatch: method is not an incoming LSP method")

	// ErrWrongHandlerKind indicates a request handler registered for a
	// notification method or vice versa.
	ErrWrongHandlerKind = errors.New("dispatch: handler kind does not match method kind")
)
