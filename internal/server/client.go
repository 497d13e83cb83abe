package server

import (
	"fmt"
	"log/slog"
	"sync/atomic"

	"github.com/google/uuid"

	"github.com/dshills/lspcore/internal/anyval"
	"github.com/dshills/lspcore/internal/codec"
	"github.com/dshills/lspcore/internal/protocol"
	"github.com/dshills/lspcore/internal/rpc"
)

// Client is the proxy for server-to-client traffic. Notifications and
// requests are encoded and placed directly on the outbound queue; they do
// not participate in the response-ordering scheduler, which orders only
// answers to client requests.
//
// Responses the client sends back to server-initiated requests are
// classified and logged by the dispatcher, not correlated; the outgoing
// id mainly serves log matching.
type Client struct {
	outbound *rpc.MessageQueue
	logger   *slog.Logger
	nextID   atomic.Int64
	trace    atomic.Value // protocol.TraceValues
}

func newClient(outbound *rpc.MessageQueue, logger *slog.Logger) *Client {
	c := &Client{outbound: outbound, logger: logger}
	c.trace.Store(protocol.TraceOff)
	return c
}

// SetTrace sets the $/logTrace gate.
func (c *Client) SetTrace(v protocol.TraceValues) { c.trace.Store(v) }

// Trace returns the current trace value.
func (c *Client) Trace() protocol.TraceValues {
	return c.trace.Load().(protocol.TraceValues)
}

// Notify encodes params and sends a notification. The method must be in
// the outgoing notification registry.
func (c *Client) Notify(method string, params any) error {
	if !protocol.IsOutgoingNotification(method) {
		return fmt.Errorf("%w: %s", protocol.ErrUnknownMethod, method)
	}
	return c.post(func() (anyval.Value, error) { return codec.Encode(params) }, func(encoded anyval.Value) ([]byte, error) {
		return rpc.EncodeNotification(method, encoded)
	})
}

// Request encodes params and sends a server-initiated request, returning
// the id used. The method must be in the outgoing request registry.
func (c *Client) Request(method string, params any) (rpc.RequestID, error) {
	if !protocol.IsOutgoingRequest(method) {
		return rpc.RequestID{}, fmt.Errorf("%w: %s", protocol.ErrUnknownMethod, method)
	}
	id := rpc.NewIntID(c.nextID.Add(1))
	err := c.post(func() (anyval.Value, error) { return codec.Encode(params) }, func(encoded anyval.Value) ([]byte, error) {
		return rpc.EncodeRequest(id, method, encoded)
	})
	if err != nil {
		return rpc.RequestID{}, err
	}
	return id, nil
}

func (c *Client) post(encode func() (anyval.Value, error), frame func(anyval.Value) ([]byte, error)) error {
	encoded, err := encode()
	if err != nil {
		return err
	}
	payload, err := frame(encoded)
	if err != nil {
		return err
	}
	return c.outbound.Enqueue(payload)
}

// PublishDiagnostics pushes diagnostics for a document.
func (c *Client) PublishDiagnostics(params protocol.PublishDiagnosticsParams) error {
	return c.Notify(protocol.MethodPublishDiagnostics, params)
}

// ShowMessage displays a message in the client UI.
func (c *Client) ShowMessage(typ protocol.MessageType, message string) error {
	return c.Notify(protocol.MethodWindowShowMessage, protocol.ShowMessageParams{Type: typ, Message: message})
}

// LogMessage writes to the client's log channel.
func (c *Client) LogMessage(typ protocol.MessageType, message string) error {
	return c.Notify(protocol.MethodWindowLogMessage, protocol.LogMessageParams{Type: typ, Message: message})
}

// LogTrace emits a $/logTrace notification, gated by the value set via
// $/setTrace: off suppresses everything, messages drops the verbose
// field, verbose passes it through.
func (c *Client) LogTrace(message, verbose string) error {
	switch c.Trace() {
	case protocol.TraceOff:
		return nil
	case protocol.TraceMessages:
		return c.Notify(protocol.MethodLogTrace, protocol.LogTraceParams{Message: message})
	default:
		params := protocol.LogTraceParams{Message: message}
		if verbose != "" {
			params.Verbose = &verbose
		}
		return c.Notify(protocol.MethodLogTrace, params)
	}
}

// Telemetry emits a telemetry/event notification with a free-form
// payload.
func (c *Client) Telemetry(data anyval.Value) error {
	if !protocol.IsOutgoingNotification(protocol.MethodTelemetryEvent) {
		return fmt.Errorf("%w: %s", protocol.ErrUnknownMethod, protocol.MethodTelemetryEvent)
	}
	payload, err := rpc.EncodeNotification(protocol.MethodTelemetryEvent, data.Clone())
	if err != nil {
		return err
	}
	return c.outbound.Enqueue(payload)
}

// RegisterCapability sends client/registerCapability. Registrations with
// an empty ID are assigned a fresh UUID; the (possibly filled-in)
// registrations are returned for later unregistration.
func (c *Client) RegisterCapability(regs []protocol.Registration) ([]protocol.Registration, error) {
	for i := range regs {
		if regs[i].ID == "" {
			regs[i].ID = uuid.NewString()
		}
	}
	_, err := c.Request(protocol.MethodClientRegisterCapability, protocol.RegistrationParams{Registrations: regs})
	if err != nil {
		return nil, err
	}
	return regs, nil
}

// UnregisterCapability sends client/unregisterCapability.
func (c *Client) UnregisterCapability(unregs []protocol.Unregistration) error {
	_, err := c.Request(protocol.MethodClientUnregisterCapability, protocol.UnregistrationParams{Unregisterations: unregs})
	return err
}

// CreateWorkDoneProgress asks the client for a progress stream and
// returns the UUID token to report against.
func (c *Client) CreateWorkDoneProgress() (protocol.ProgressToken, error) {
	token := uuid.NewString()
	pt := protocol.ProgressToken{Str: &token}
	_, err := c.Request(protocol.MethodWorkDoneProgressCreate, protocol.WorkDoneProgressCreateParams{Token: pt})
	if err != nil {
		return protocol.ProgressToken{}, err
	}
	return pt, nil
}

// ApplyEdit asks the client to apply a workspace edit.
func (c *Client) ApplyEdit(label string, edit protocol.WorkspaceEdit) error {
	params := protocol.ApplyWorkspaceEditParams{Edit: edit}
	if label != "" {
		params.Label = &label
	}
	_, err := c.Request(protocol.MethodWorkspaceApplyEdit, params)
	return err
}

// Configuration asks the client for configuration sections.
func (c *Client) Configuration(items []protocol.ConfigurationItem) error {
	_, err := c.Request(protocol.MethodWorkspaceConfiguration, protocol.ConfigurationParams{Items: items})
	return err
}

// ShowDocument asks the client to open a document.
func (c *Client) ShowDocument(params protocol.ShowDocumentParams) error {
	_, err := c.Request(protocol.MethodWindowShowDocument, params)
	return err
}

// ShowMessageRequest displays a message with action buttons.
func (c *Client) ShowMessageRequest(params protocol.ShowMessageRequestParams) error {
	_, err := c.Request(protocol.MethodWindowShowMessageRequest, params)
	return err
}

// WorkspaceFolders asks the client for its workspace folders.
func (c *Client) WorkspaceFolders() error {
	_, err := c.Request(protocol.MethodWorkspaceWorkspaceFolders, struct{}{})
	return err
}

// Refresh sends one of the workspace refresh requests
// (workspace/semanticTokens/refresh and friends).
func (c *Client) Refresh(method string) error {
	_, err := c.Request(method, struct{}{})
	return err
}
