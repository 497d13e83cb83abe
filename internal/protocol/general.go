package protocol

import (
	"fmt"

	"github.com/dshills/lspcore/internal/anyval"
)

// ClientInfo identifies the connecting client.
type ClientInfo struct {
	Name    string  `json:"name"`
	Version *string `json:"version,omitempty"`
}

// ServerInfo identifies the server in the initialize result.
type ServerInfo struct {
	Name    string  `json:"name"`
	Version *string `json:"version,omitempty"`
}

// InitializeParams are the parameters of the initialize request.
//
// processId and rootUri are required members that may be null; they are
// modeled as pointers whose absence and null both decode to nil.
type InitializeParams struct {
	WorkDoneProgressParams
	ProcessID             *int32             `json:"processId"`
	ClientInfo            *ClientInfo        `json:"clientInfo,omitempty"`
	Locale                *string            `json:"locale,omitempty"`
	RootPath              *string            `json:"rootPath,omitempty"`
	RootURI               *DocumentURI       `json:"rootUri"`
	InitializationOptions anyval.Value       `json:"initializationOptions,omitempty"`
	Capabilities          ClientCapabilities `json:"capabilities"`
	Trace                 *TraceValues       `json:"trace,omitempty"`
	WorkspaceFolders      []WorkspaceFolder  `json:"workspaceFolders,omitempty"`
}

// InitializeResult is the result of the initialize request.
type InitializeResult struct {
	Capabilities ServerCapabilities `json:"capabilities"`
	ServerInfo   *ServerInfo        `json:"serverInfo,omitempty"`
}

// InitializeError is the error data of a failed initialize request.
type InitializeError struct {
	Retry bool `json:"retry"`
}

// InitializedParams are the parameters of the initialized notification.
type InitializedParams struct{}

// SetTraceParams are the parameters of the $/setTrace notification.
type SetTraceParams struct {
	Value TraceValues `json:"value"`
}

// LogTraceParams are the parameters of the $/logTrace notification.
type LogTraceParams struct {
	Message string  `json:"message"`
	Verbose *string `json:"verbose,omitempty"`
}

// CancelParams are the parameters of the $/cancelRequest notification.
// The id names the request to cancel; delivery is advisory only.
type CancelParams struct {
	ID CancelID `json:"id"`
}

// CancelID is the integer-or-string id of the request being cancelled.
// Exactly one field is set.
type CancelID struct {
	Int *int32
	Str *string
}

// DecodeAny discriminates by value kind.
func (c *CancelID) DecodeAny(v anyval.Value) error {
	if i, ok := v.AsInt(); ok {
		c.Int = &i
		return nil
	}
	if s, ok := v.AsString(); ok {
		c.Str = &s
		return nil
	}
	return fmt.Errorf("CancelID: expected integer or string, received %s", v.Kind())
}

// EncodeAny implements the inverse of DecodeAny.
func (c CancelID) EncodeAny() (anyval.Value, error) {
	switch {
	case c.Int != nil:
		return anyval.Int(*c.Int), nil
	case c.Str != nil:
		return anyval.String(*c.Str), nil
	default:
		return anyval.Value{}, fmt.Errorf("CancelID: no variant set")
	}
}

// WorkDoneProgressCreateParams are the parameters of
// window/workDoneProgress/create.
type WorkDoneProgressCreateParams struct {
	Token ProgressToken `json:"token"`
}

// WorkDoneProgressCancelParams are the parameters of
// window/workDoneProgress/cancel.
type WorkDoneProgressCancelParams struct {
	Token ProgressToken `json:"token"`
}

// ProgressParams carry a $/progress payload.
type ProgressParams struct {
	Token ProgressToken `json:"token"`
	Value anyval.Value  `json:"value"`
}
