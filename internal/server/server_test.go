package server

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/dshills/lspcore/internal/dispatch"
	"github.com/dshills/lspcore/internal/protocol"
	"github.com/dshills/lspcore/internal/rpc"
)

// session drives a server over in-memory pipes like a client would.
type session struct {
	t      *testing.T
	srv    *Server
	toSrv  *io.PipeWriter
	frames *rpc.Reader
	writer *rpc.Writer
	done   chan error
}

func startSession(t *testing.T, register func(*Server)) *session {
	t.Helper()
	clientToServer, srvIn := io.Pipe()
	srvOut, serverToClient := io.Pipe()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	srv := New(
		WithLogger(logger),
		WithStreams(clientToServer, serverToClient),
	)
	if register != nil {
		register(srv)
	}

	s := &session{
		t:      t,
		srv:    srv,
		toSrv:  srvIn,
		frames: rpc.NewReader(srvOut),
		writer: rpc.NewWriter(srvIn),
		done:   make(chan error, 1),
	}
	go func() { s.done <- srv.Run(context.Background()) }()
	t.Cleanup(func() {
		srvIn.Close()
		select {
		case <-s.done:
		case <-time.After(2 * time.Second):
		}
	})
	return s
}

func (s *session) send(payload string) {
	s.t.Helper()
	if err := s.writer.Write([]byte(payload)); err != nil {
		s.t.Fatalf("client write error = %v", err)
	}
}

func (s *session) recv() map[string]any {
	s.t.Helper()
	type result struct {
		raw []byte
		err error
	}
	ch := make(chan result, 1)
	go func() {
		raw, err := s.frames.Read()
		ch <- result{raw, err}
	}()
	select {
	case r := <-ch:
		if r.err != nil {
			s.t.Fatalf("client read error = %v", r.err)
		}
		var decoded map[string]any
		if err := json.Unmarshal(r.raw, &decoded); err != nil {
			s.t.Fatalf("server payload is not JSON: %v", err)
		}
		return decoded
	case <-time.After(3 * time.Second):
		s.t.Fatal("no server payload within deadline")
		return nil
	}
}

func (s *session) initialize() {
	s.t.Helper()
	s.send(`{"jsonrpc":"2.0","id":1,"method":"initialize","params":{"processId":null,"rootUri":null,"capabilities":{}}}`)
	resp := s.recv()
	if resp["id"].(float64) != 1 {
		s.t.Fatalf("initialize response id = %v", resp["id"])
	}
	result, ok := resp["result"].(map[string]any)
	if !ok {
		s.t.Fatalf("initialize result missing: %v", resp)
	}
	if _, ok := result["capabilities"].(map[string]any); !ok {
		s.t.Fatalf("initialize result has no capabilities object: %v", result)
	}
}

func TestServer_InitializeFlow(t *testing.T) {
	s := startSession(t, func(srv *Server) {
		srv.Registry().RegisterRequest(protocol.MethodHover, //nolint:errcheck
			dispatch.Request(func(ctx context.Context, params *protocol.HoverParams) (*protocol.Hover, error) {
				return &protocol.Hover{Contents: protocol.HoverContents{
					Markup: &protocol.MarkupContent{Kind: protocol.MarkupPlainText, Value: "hi"},
				}}, nil
			}))
	})
	s.initialize()

	// The registered hover handler answers the request.
	s.send(`{"jsonrpc":"2.0","id":2,"method":"textDocument/hover","params":{"textDocument":{"uri":"file:///a"},"position":{"line":0,"character":0}}}`)
	resp := s.recv()
	result := resp["result"].(map[string]any)
	contents := result["contents"].(map[string]any)
	if contents["value"] != "hi" {
		t.Errorf("hover value = %v", contents["value"])
	}
}

func TestServer_RequestBeforeInitialize(t *testing.T) {
	s := startSession(t, nil)

	s.send(`{"jsonrpc":"2.0","id":1,"method":"shutdown"}`)
	resp := s.recv()
	errObj := resp["error"].(map[string]any)
	if int(errObj["code"].(float64)) != protocol.CodeServerNotInitialized {
		t.Errorf("code = %v, want %d", errObj["code"], protocol.CodeServerNotInitialized)
	}
}

func TestServer_InitializeOnlyOnce(t *testing.T) {
	s := startSession(t, nil)
	s.initialize()

	s.send(`{"jsonrpc":"2.0","id":2,"method":"initialize","params":{"processId":null,"rootUri":null,"capabilities":{}}}`)
	resp := s.recv()
	errObj, ok := resp["error"].(map[string]any)
	if !ok {
		t.Fatalf("second initialize succeeded: %v", resp)
	}
	if int(errObj["code"].(float64)) != protocol.CodeInvalidRequest {
		t.Errorf("code = %v, want %d", errObj["code"], protocol.CodeInvalidRequest)
	}
}

func TestServer_ShutdownThenExit(t *testing.T) {
	s := startSession(t, nil)
	s.initialize()

	s.send(`{"jsonrpc":"2.0","id":2,"method":"shutdown"}`)
	resp := s.recv()
	if _, hasResult := resp["result"]; !hasResult {
		t.Errorf("shutdown response missing result: %v", resp)
	}

	s.send(`{"jsonrpc":"2.0","method":"exit"}`)
	select {
	case <-s.done:
	case <-time.After(3 * time.Second):
		t.Fatal("server did not exit")
	}
	if code := s.srv.ExitCode(); code != 0 {
		t.Errorf("ExitCode() = %d, want 0 after shutdown", code)
	}
}

func TestServer_ExitWithoutShutdown(t *testing.T) {
	s := startSession(t, nil)
	s.initialize()

	s.send(`{"jsonrpc":"2.0","method":"exit"}`)
	select {
	case <-s.done:
	case <-time.After(3 * time.Second):
		t.Fatal("server did not exit")
	}
	if code := s.srv.ExitCode(); code != 1 {
		t.Errorf("ExitCode() = %d, want 1 without shutdown", code)
	}
}

func TestServer_PublishDiagnosticsNotification(t *testing.T) {
	var srv *Server
	s := startSession(t, func(s *Server) { srv = s })
	s.initialize()

	sev := protocol.SeverityWarning
	err := srv.Client().PublishDiagnostics(protocol.PublishDiagnosticsParams{
		URI: "file:///a.go",
		Diagnostics: []protocol.Diagnostic{{
			Range:    protocol.Range{Start: protocol.Position{Line: 1}, End: protocol.Position{Line: 1, Character: 4}},
			Severity: &sev,
			Message:  "unused variable",
		}},
	})
	if err != nil {
		t.Fatalf("PublishDiagnostics() error = %v", err)
	}

	note := s.recv()
	if note["method"] != protocol.MethodPublishDiagnostics {
		t.Fatalf("method = %v", note["method"])
	}
	params := note["params"].(map[string]any)
	diags := params["diagnostics"].([]any)
	if len(diags) != 1 {
		t.Fatalf("diagnostics = %v", diags)
	}
	if diags[0].(map[string]any)["message"] != "unused variable" {
		t.Errorf("diagnostic = %v", diags[0])
	}
}

func TestClient_LogTraceGating(t *testing.T) {
	var srv *Server
	s := startSession(t, func(s *Server) { srv = s })
	s.initialize()

	// off: suppressed entirely.
	srv.Client().SetTrace(protocol.TraceOff)
	if err := srv.Client().LogTrace("quiet", "detail"); err != nil {
		t.Fatalf("LogTrace() error = %v", err)
	}

	// verbose: delivered with the verbose field.
	srv.Client().SetTrace(protocol.TraceVerbose)
	if err := srv.Client().LogTrace("loud", "detail"); err != nil {
		t.Fatalf("LogTrace() error = %v", err)
	}

	note := s.recv()
	if note["method"] != "$/logTrace" {
		t.Fatalf("method = %v (the off-gated trace leaked?)", note["method"])
	}
	params := note["params"].(map[string]any)
	if params["message"] != "loud" || params["verbose"] != "detail" {
		t.Errorf("params = %v", params)
	}
}

func TestServer_UnknownTraceValueIsInvalidParams(t *testing.T) {
	s := startSession(t, nil)

	s.send(`{"jsonrpc":"2.0","id":1,"method":"initialize","params":{"processId":null,"rootUri":null,"capabilities":{},"trace":"deep"}}`)
	resp := s.recv()
	errObj, ok := resp["error"].(map[string]any)
	if !ok {
		t.Fatalf("initialize with bad trace succeeded: %v", resp)
	}
	if int(errObj["code"].(float64)) != protocol.CodeInvalidParams {
		t.Errorf("code = %v, want %d", errObj["code"], protocol.CodeInvalidParams)
	}
	if msg := errObj["message"].(string); !strings.Contains(msg, "deep") {
		t.Errorf("message %q does not cite the bad value", msg)
	}
}
