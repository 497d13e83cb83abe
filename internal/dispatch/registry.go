package dispatch

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/dshills/lspcore/internal/anyval"
	"github.com/dshills/lspcore/internal/codec"
	"github.com/dshills/lspcore/internal/protocol"
)

// RequestHandler consumes decoded request params and produces either a
// result value or a response error. Implementations work at the anyval
// level; use Request to lift a typed function.
type RequestHandler func(ctx context.Context, params anyval.Value) (anyval.Value, *protocol.ResponseError)

// NotificationHandler consumes decoded notification params. A returned
// error is logged by the dispatcher; notifications have no response to
// carry it.
type NotificationHandler func(ctx context.Context, params anyval.Value) error

// Registry maps incoming method names to their handlers. Registration is
// validated against the incoming method registries so a typo cannot
// silently shadow a real method.
type Registry struct {
	mu            sync.RWMutex
	requests      map[string]RequestHandler
	notifications map[string]NotificationHandler
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		requests:      make(map[string]RequestHandler),
		notifications: make(map[string]NotificationHandler),
	}
}

// RegisterRequest associates a handler with an incoming request method.
func (r *Registry) RegisterRequest(method string, h RequestHandler) error {
	if !protocol.IsIncomingRequest(method) {
		if protocol.IsIncomingNotification(method) {
			return fmt.Errorf("%w: %s is a notification", ErrWrongHandlerKind, method)
		}
		return fmt.Errorf("%w: %s", ErrNotIncomingMethod, method)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.requests[method]; exists {
		return fmt.Errorf("%w: %s", ErrHandlerExists, method)
	}
	r.requests[method] = h
	return nil
}

// RegisterNotification associates a handler with an incoming notification
// method.
func (r *Registry) RegisterNotification(method string, h NotificationHandler) error {
	if !protocol.IsIncomingNotification(method) {
		if protocol.IsIncomingRequest(method) {
			return fmt.Errorf("%w: %s is a request", ErrWrongHandlerKind, method)
		}
		return fmt.Errorf("%w: %s", ErrNotIncomingMethod, method)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.notifications[method]; exists {
		return fmt.Errorf("%w: %s", ErrHandlerExists, method)
	}
	r.notifications[method] = h
	return nil
}

// ReplaceRequest installs a handler, displacing any existing one. Used by
// the server's built-ins so embedders can override them.
func (r *Registry) ReplaceRequest(method string, h RequestHandler) error {
	if !protocol.IsIncomingRequest(method) {
		return fmt.Errorf("%w: %s", ErrNotIncomingMethod, method)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.requests[method] = h
	return nil
}

// ReplaceNotification installs a handler, displacing any existing one.
func (r *Registry) ReplaceNotification(method string, h NotificationHandler) error {
	if !protocol.IsIncomingNotification(method) {
		return fmt.Errorf("%w: %s", ErrNotIncomingMethod, method)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.notifications[method] = h
	return nil
}

// Request looks up the handler for a request method.
func (r *Registry) Request(method string) (RequestHandler, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	h, ok := r.requests[method]
	return h, ok
}

// Notification looks up the handler for a notification method.
func (r *Registry) Notification(method string) (NotificationHandler, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	h, ok := r.notifications[method]
	return h, ok
}

// Methods returns the registered request and notification method names.
func (r *Registry) Methods() (requests, notifications []string) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for m := range r.requests {
		requests = append(requests, m)
	}
	for m := range r.notifications {
		notifications = append(notifications, m)
	}
	return requests, notifications
}

// Request lifts a typed handler into a RequestHandler: params decode into
// P, results encode back to the wire, and errors map onto the LSP error
// model. A *protocol.ResponseError passes through; codec failures become
// InvalidParams; anything else becomes InternalError.
func Request[P, R any](fn func(ctx context.Context, params *P) (R, error)) RequestHandler {
	return func(ctx context.Context, params anyval.Value) (anyval.Value, *protocol.ResponseError) {
		decoded := new(P)
		// Absent params decode as the zero value, matching methods whose
		// params member is optional.
		if !params.IsNull() {
			if err := codec.Decode(params, decoded); err != nil {
				return anyval.Value{}, codec.AsResponseError(err)
			}
		}
		result, err := fn(ctx, decoded)
		if err != nil {
			return anyval.Value{}, asResponseError(err)
		}
		encoded, err := codec.Encode(result)
		if err != nil {
			return anyval.Value{}, protocol.NewInternalError(err.Error())
		}
		return encoded, nil
	}
}

// Notification lifts a typed handler into a NotificationHandler. Decode
// failures surface through the dispatcher's logger.
func Notification[P any](fn func(ctx context.Context, params *P)) NotificationHandler {
	return func(ctx context.Context, params anyval.Value) error {
		decoded := new(P)
		if !params.IsNull() {
			if err := codec.Decode(params, decoded); err != nil {
				return err
			}
		}
		fn(ctx, decoded)
		return nil
	}
}

func asResponseError(err error) *protocol.ResponseError {
	var respErr *protocol.ResponseError
	if errors.As(err, &respErr) {
		return respErr
	}
	var decodeErr *codec.DecodeError
	if errors.As(err, &decodeErr) {
		return decodeErr.ResponseError()
	}
	return protocol.NewInternalError(err.Error())
}
