package script

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/dshills/lspcore/internal/anyval"
	"github.com/dshills/lspcore/internal/dispatch"
	"github.com/dshills/lspcore/internal/protocol"
)

func testEngine(t *testing.T) (*Engine, *dispatch.Registry) {
	t.Helper()
	registry := dispatch.NewRegistry()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	e := NewEngine(registry, logger)
	t.Cleanup(e.Close)
	return e, registry
}

func TestEngine_RequestHandler(t *testing.T) {
	e, registry := testEngine(t)

	err := e.LoadString(`
lspcore.on_request("textDocument/hover", function(params)
    return {
        contents = {
            kind = "plaintext",
            value = "hover for " .. params.textDocument.uri,
        },
    }
end)
`)
	if err != nil {
		t.Fatalf("LoadString() error = %v", err)
	}

	handler, ok := registry.Request(protocol.MethodHover)
	if !ok {
		t.Fatal("handler not registered")
	}

	params, _ := anyval.DecodeJSON([]byte(`{"textDocument":{"uri":"file:///a.go"},"position":{"line":0,"character":0}}`))
	result, respErr := handler(context.Background(), params)
	if respErr != nil {
		t.Fatalf("handler error = %v", respErr)
	}
	contents, _ := result.Get("contents")
	value, _ := contents.Get("value")
	if s, _ := value.AsString(); s != "hover for file:///a.go" {
		t.Errorf("value = %q", s)
	}
}

func TestEngine_NotificationHandler(t *testing.T) {
	e, registry := testEngine(t)

	err := e.LoadString(`
opened = nil
lspcore.on_notification("textDocument/didOpen", function(params)
    opened = params.textDocument.uri
end)
`)
	if err != nil {
		t.Fatalf("LoadString() error = %v", err)
	}

	handler, ok := registry.Notification(protocol.MethodDidOpen)
	if !ok {
		t.Fatal("handler not registered")
	}
	params, _ := anyval.DecodeJSON([]byte(`{"textDocument":{"uri":"file:///b.go","languageId":"go","version":1,"text":""}}`))
	if err := handler(context.Background(), params); err != nil {
		t.Fatalf("handler error = %v", err)
	}
}

func TestEngine_ScriptErrorBecomesInternalError(t *testing.T) {
	e, registry := testEngine(t)

	err := e.LoadString(`
lspcore.on_request("textDocument/definition", function(params)
    error("deliberate failure")
end)
`)
	if err != nil {
		t.Fatalf("LoadString() error = %v", err)
	}

	handler, _ := registry.Request(protocol.MethodDefinition)
	params, _ := anyval.DecodeJSON([]byte(`{}`))
	_, respErr := handler(context.Background(), params)
	if respErr == nil {
		t.Fatal("handler error = nil, want InternalError")
	}
	if respErr.Code != protocol.CodeInternalError {
		t.Errorf("code = %d, want %d", respErr.Code, protocol.CodeInternalError)
	}
	if !strings.Contains(respErr.Message, "deliberate failure") {
		t.Errorf("message = %q", respErr.Message)
	}
}

func TestEngine_RejectsUnknownMethod(t *testing.T) {
	e, _ := testEngine(t)

	err := e.LoadString(`lspcore.on_request("textDocument/teleport", function(params) end)`)
	if err == nil {
		t.Error("registration for unknown method succeeded")
	}
}

func TestBridge_RoundTrip(t *testing.T) {
	e, registry := testEngine(t)

	// The identity handler exercises both conversion directions.
	err := e.LoadString(`lspcore.on_request("workspace/executeCommand", function(params) return params end)`)
	if err != nil {
		t.Fatalf("LoadString() error = %v", err)
	}
	handler, _ := registry.Request(protocol.MethodWorkspaceExecuteCommand)

	src := `{"command":"run","arguments":[1,"two",true,{"nested":[3.5]}]}`
	params, _ := anyval.DecodeJSON([]byte(src))
	result, respErr := handler(context.Background(), params)
	if respErr != nil {
		t.Fatalf("handler error = %v", respErr)
	}
	if !anyval.Equal(params, result) {
		got, _ := anyval.EncodeJSON(result)
		t.Errorf("round trip changed value: %s", got)
	}
}
