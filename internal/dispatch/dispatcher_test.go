package dispatch

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/dshills/lspcore/internal/anyval"
	"github.com/dshills/lspcore/internal/pool"
	"github.com/dshills/lspcore/internal/protocol"
	"github.com/dshills/lspcore/internal/rpc"
)

func testDispatcher(t *testing.T, requestWorkers int) *Dispatcher {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	d := New(Options{
		Inbound:  rpc.NewMessageQueue(64),
		Outbound: rpc.NewMessageQueue(64),
		Requests: pool.New("request", requestWorkers, logger),
		Workers:  pool.New("worker", 1, logger),
		Registry: NewRegistry(),
		Logger:   logger,
	})
	d.SetReady()
	t.Cleanup(func() {
		d.Terminate()
		d.inbound.Close()
		d.outbound.Close()
		d.requests.Shutdown()
		d.workers.Shutdown()
	})
	return d
}

func startListener(d *Dispatcher) {
	go d.Listen(context.Background()) //nolint:errcheck
}

func enqueue(t *testing.T, d *Dispatcher, payload string) {
	t.Helper()
	if err := d.inbound.Enqueue([]byte(payload)); err != nil {
		t.Fatalf("Enqueue() error = %v", err)
	}
}

func dequeueResponse(t *testing.T, d *Dispatcher) map[string]any {
	t.Helper()
	type result struct {
		raw []byte
		err error
	}
	ch := make(chan result, 1)
	go func() {
		raw, err := d.outbound.Dequeue()
		ch <- result{raw, err}
	}()
	select {
	case r := <-ch:
		if r.err != nil {
			t.Fatalf("outbound Dequeue() error = %v", r.err)
		}
		var decoded map[string]any
		if err := json.Unmarshal(r.raw, &decoded); err != nil {
			t.Fatalf("outbound payload is not JSON: %v", err)
		}
		return decoded
	case <-time.After(2 * time.Second):
		t.Fatal("no outbound payload within deadline")
		return nil
	}
}

func registerEcho(t *testing.T, d *Dispatcher, method string, delay time.Duration) {
	t.Helper()
	err := d.Registry().RegisterRequest(method, func(ctx context.Context, params anyval.Value) (anyval.Value, *protocol.ResponseError) {
		if delay > 0 {
			time.Sleep(delay)
		}
		obj := anyval.NewObject()
		obj.Set("ok", anyval.Bool(true)) //nolint:errcheck
		return obj, nil
	})
	if err != nil {
		t.Fatalf("RegisterRequest(%s) error = %v", method, err)
	}
}

func TestDispatcher_OrderingUnderReorder(t *testing.T) {
	d := testDispatcher(t, 4)

	// id=1 is slow, id=2 is fast; the fast handler finishes first but its
	// response must wait for the earlier ordinal.
	registerEcho(t, d, protocol.MethodHover, 100*time.Millisecond)
	registerEcho(t, d, protocol.MethodDefinition, 0)

	startListener(d)
	enqueue(t, d, `{"jsonrpc":"2.0","id":1,"method":"textDocument/hover","params":{"textDocument":{"uri":"file:///a"},"position":{"line":0,"character":0}}}`)
	enqueue(t, d, `{"jsonrpc":"2.0","id":2,"method":"textDocument/definition","params":{"textDocument":{"uri":"file:///a"},"position":{"line":0,"character":0}}}`)

	first := dequeueResponse(t, d)
	second := dequeueResponse(t, d)
	if first["id"].(float64) != 1 || second["id"].(float64) != 2 {
		t.Errorf("responses out of order: got ids %v then %v", first["id"], second["id"])
	}
}

func TestDispatcher_NotificationReleasesSlot(t *testing.T) {
	d := testDispatcher(t, 2)

	var mu sync.Mutex
	var seen []string
	err := d.Registry().RegisterNotification(protocol.MethodDidOpen, func(ctx context.Context, params anyval.Value) error {
		mu.Lock()
		seen = append(seen, "didOpen")
		mu.Unlock()
		return nil
	})
	if err != nil {
		t.Fatalf("RegisterNotification() error = %v", err)
	}
	registerEcho(t, d, protocol.MethodHover, 0)

	startListener(d)
	// The notification consumes ordinal 0; the request behind it must
	// still emit.
	enqueue(t, d, `{"jsonrpc":"2.0","method":"textDocument/didOpen","params":{"textDocument":{"uri":"file:///a","languageId":"go","version":1,"text":""}}}`)
	enqueue(t, d, `{"jsonrpc":"2.0","id":9,"method":"textDocument/hover","params":{"textDocument":{"uri":"file:///a"},"position":{"line":0,"character":0}}}`)

	resp := dequeueResponse(t, d)
	if resp["id"].(float64) != 9 {
		t.Errorf("response id = %v, want 9", resp["id"])
	}
	mu.Lock()
	defer mu.Unlock()
	if len(seen) != 1 {
		t.Errorf("notification handler ran %d times, want 1", len(seen))
	}
}

func TestDispatcher_ParseErrorNullID(t *testing.T) {
	d := testDispatcher(t, 1)
	startListener(d)

	enqueue(t, d, `{"jsonrpc":"2.0",`)

	resp := dequeueResponse(t, d)
	if resp["id"] != nil {
		t.Errorf("id = %v, want null", resp["id"])
	}
	errObj := resp["error"].(map[string]any)
	if int(errObj["code"].(float64)) != protocol.CodeParseError {
		t.Errorf("code = %v, want %d", errObj["code"], protocol.CodeParseError)
	}
}

func TestDispatcher_MethodNotFound(t *testing.T) {
	d := testDispatcher(t, 1)
	startListener(d)

	enqueue(t, d, `{"jsonrpc":"2.0","id":4,"method":"textDocument/teleport"}`)

	resp := dequeueResponse(t, d)
	errObj := resp["error"].(map[string]any)
	if int(errObj["code"].(float64)) != protocol.CodeMethodNotFound {
		t.Errorf("code = %v, want %d", errObj["code"], protocol.CodeMethodNotFound)
	}
	if !strings.Contains(errObj["message"].(string), "textDocument/teleport") {
		t.Errorf("message %q does not name the method", errObj["message"])
	}
}

func TestDispatcher_InvalidParamsNamesTypeAndField(t *testing.T) {
	d := testDispatcher(t, 1)
	err := d.Registry().RegisterRequest(protocol.MethodDefinition,
		Request(func(ctx context.Context, params *protocol.DefinitionParams) ([]protocol.Location, error) {
			return nil, nil
		}))
	if err != nil {
		t.Fatalf("RegisterRequest() error = %v", err)
	}
	startListener(d)

	enqueue(t, d, `{"jsonrpc":"2.0","id":5,"method":"textDocument/definition","params":{"textDocument":{"uri":"file:///a"}}}`)

	resp := dequeueResponse(t, d)
	errObj := resp["error"].(map[string]any)
	if int(errObj["code"].(float64)) != protocol.CodeInvalidParams {
		t.Errorf("code = %v, want %d", errObj["code"], protocol.CodeInvalidParams)
	}
	msg := errObj["message"].(string)
	if !strings.Contains(msg, "DefinitionParams") || !strings.Contains(msg, "position") {
		t.Errorf("message %q does not name DefinitionParams and position", msg)
	}
}

func TestDispatcher_NotInitializedGate(t *testing.T) {
	d := testDispatcher(t, 1)
	d.ready.Store(false)
	registerEcho(t, d, protocol.MethodHover, 0)
	startListener(d)

	enqueue(t, d, `{"jsonrpc":"2.0","id":7,"method":"textDocument/hover","params":{"textDocument":{"uri":"file:///a"},"position":{"line":0,"character":0}}}`)

	resp := dequeueResponse(t, d)
	errObj := resp["error"].(map[string]any)
	if int(errObj["code"].(float64)) != protocol.CodeServerNotInitialized {
		t.Errorf("code = %v, want %d", errObj["code"], protocol.CodeServerNotInitialized)
	}
}

func TestDispatcher_CancelIsForwardedNotEnforced(t *testing.T) {
	d := testDispatcher(t, 2)

	release := make(chan struct{})
	cancelSeen := make(chan int32, 1)

	err := d.Registry().RegisterRequest(protocol.MethodHover, func(ctx context.Context, params anyval.Value) (anyval.Value, *protocol.ResponseError) {
		<-release
		return anyval.Null(), nil
	})
	if err != nil {
		t.Fatalf("RegisterRequest() error = %v", err)
	}
	err = d.Registry().RegisterNotification(protocol.MethodCancelRequest,
		Notification(func(ctx context.Context, params *protocol.CancelParams) {
			cancelSeen <- *params.ID.Int
		}))
	if err != nil {
		t.Fatalf("RegisterNotification() error = %v", err)
	}
	startListener(d)

	enqueue(t, d, `{"jsonrpc":"2.0","id":7,"method":"textDocument/hover","params":{"textDocument":{"uri":"file:///a"},"position":{"line":0,"character":0}}}`)
	enqueue(t, d, `{"jsonrpc":"2.0","method":"$/cancelRequest","params":{"id":7}}`)

	// The cancel notification reaches the handler while id=7 is still
	// running; the dispatcher keeps waiting for the response.
	select {
	case id := <-cancelSeen:
		if id != 7 {
			t.Errorf("cancel forwarded id = %d, want 7", id)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("cancel notification not forwarded")
	}

	close(release)
	resp := dequeueResponse(t, d)
	if resp["id"].(float64) != 7 {
		t.Errorf("response id = %v, want 7", resp["id"])
	}
}

func TestDispatcher_TerminationMidFlight(t *testing.T) {
	d := testDispatcher(t, 2)

	blockFirst := make(chan struct{})
	secondDone := make(chan struct{})

	d.Registry().RegisterRequest(protocol.MethodHover, func(ctx context.Context, params anyval.Value) (anyval.Value, *protocol.ResponseError) { //nolint:errcheck
		<-blockFirst
		return anyval.Null(), nil
	})
	d.Registry().RegisterRequest(protocol.MethodDefinition, func(ctx context.Context, params anyval.Value) (anyval.Value, *protocol.ResponseError) { //nolint:errcheck
		defer close(secondDone)
		return anyval.Null(), nil
	})
	startListener(d)

	enqueue(t, d, `{"jsonrpc":"2.0","id":1,"method":"textDocument/hover","params":{"textDocument":{"uri":"file:///a"},"position":{"line":0,"character":0}}}`)
	enqueue(t, d, `{"jsonrpc":"2.0","id":2,"method":"textDocument/definition","params":{"textDocument":{"uri":"file:///a"},"position":{"line":0,"character":0}}}`)

	// The second worker is now waiting on its ordinal. Terminate must
	// wake it; it returns without emitting.
	<-secondDone
	time.Sleep(20 * time.Millisecond)
	d.Terminate()
	close(blockFirst)

	time.Sleep(50 * time.Millisecond)
	if n := d.outbound.Len(); n != 0 {
		t.Errorf("outbound has %d payloads after termination, want 0", n)
	}
}

func TestDispatcher_DuplicateRequestIDsBothProceed(t *testing.T) {
	d := testDispatcher(t, 2)
	registerEcho(t, d, protocol.MethodHover, 0)
	startListener(d)

	enqueue(t, d, `{"jsonrpc":"2.0","id":1,"method":"textDocument/hover","params":{"textDocument":{"uri":"file:///a"},"position":{"line":0,"character":0}}}`)
	enqueue(t, d, `{"jsonrpc":"2.0","id":1,"method":"textDocument/hover","params":{"textDocument":{"uri":"file:///a"},"position":{"line":0,"character":0}}}`)

	first := dequeueResponse(t, d)
	second := dequeueResponse(t, d)
	if first["id"].(float64) != 1 || second["id"].(float64) != 1 {
		t.Errorf("got ids %v and %v, want 1 and 1", first["id"], second["id"])
	}
}
