package rpc

import "errors"

// Message-layer errors.
var (
	// ErrQueueClosed indicates the queue was closed while enqueuing or
	// waiting to dequeue.
	ErrQueueClosed = errors.New("rpc: message queue closed")

	// ErrMissingContentLength indicates a frame without a Content-Length
	// header.
	ErrMissingContentLength = errors.New("rpc: missing Content-Length header")

	// ErrInvalidContentLength indicates an unparseable or negative
	// Content-Length value, or a header line without a colon.
	ErrInvalidContentLength = errors.New("rpc: invalid Content-Length header")

	// ErrInvalidMessage indicates a JSON document that is not a valid
	// JSON-RPC 2.0 request, notification, or response.
	ErrInvalidMessage = errors.New("rpc: invalid JSON-RPC message")
)
