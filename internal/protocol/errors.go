package protocol

import (
	"errors"
	"fmt"

	"github.com/dshills/lspcore/internal/anyval"
)

// Schema errors.
var (
	// ErrUnknownEnumValue indicates a name or value outside an enum's
	// defined set.
	ErrUnknownEnumValue = errors.New("protocol: unknown enum value")

	// ErrUnknownMethod indicates a method string absent from the registry
	// for its direction.
	ErrUnknownMethod = errors.New("protocol: unknown method")
)

// Error codes defined by JSON-RPC 2.0 and the LSP specification.
const (
	// JSON-RPC standard errors
	CodeParseError     = -32700
	CodeInvalidRequest = -32600
	CodeMethodNotFound = -32601
	CodeInvalidParams  = -32602
	CodeInternalError  = -32603

	// LSP-specific errors
	CodeServerNotInitialized = -32002
	CodeUnknownErrorCode     = -32001
	CodeRequestFailed        = -32803
	CodeServerCancelled      = -32802
	CodeContentModified      = -32801
	CodeRequestCancelled     = -32800
)

// ResponseError is the error member of a JSON-RPC response.
type ResponseError struct {
	Code    int          `json:"code"`
	Message string       `json:"message"`
	Data    anyval.Value `json:"data,omitempty"`
}

// Error implements the error interface.
func (e *ResponseError) Error() string {
	return fmt.Sprintf("jsonrpc error %d: %s", e.Code, e.Message)
}

// NewParseError returns a ResponseError with code -32700.
func NewParseError(msg string) *ResponseError {
	return &ResponseError{Code: CodeParseError, Message: msg}
}

// NewInvalidRequest returns a ResponseError with code -32600.
func NewInvalidRequest(msg string) *ResponseError {
	return &ResponseError{Code: CodeInvalidRequest, Message: msg}
}

// NewMethodNotFound returns a ResponseError with code -32601 naming method.
func NewMethodNotFound(method string) *ResponseError {
	return &ResponseError{Code: CodeMethodNotFound, Message: fmt.Sprintf("method not found: %s", method)}
}

// NewInvalidParams returns a ResponseError with code -32602.
func NewInvalidParams(msg string) *ResponseError {
	return &ResponseError{Code: CodeInvalidParams, Message: msg}
}

// NewInternalError returns a ResponseError with code -32603.
func NewInternalError(msg string) *ResponseError {
	return &ResponseError{Code: CodeInternalError, Message: msg}
}

// NewServerNotInitialized returns a ResponseError with code -32002.
func NewServerNotInitialized(method string) *ResponseError {
	return &ResponseError{
		Code:    CodeServerNotInitialized,
		Message: fmt.Sprintf("server not initialized: %s received before initialize", method),
	}
}

// NewRequestCancelled returns a ResponseError with code -32800.
func NewRequestCancelled() *ResponseError {
	return &ResponseError{Code: CodeRequestCancelled, Message: "request cancelled"}
}

// NewContentModified returns a ResponseError with code -32801.
func NewContentModified() *ResponseError {
	return &ResponseError{Code: CodeContentModified, Message: "content modified"}
}
