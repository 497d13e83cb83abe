package rpc

import (
	"errors"
	"testing"

	"github.com/dshills/lspcore/internal/anyval"
	"github.com/dshills/lspcore/internal/protocol"
)

func classifyJSON(t *testing.T, src string) (Message, error) {
	t.Helper()
	v, err := anyval.DecodeJSON([]byte(src))
	if err != nil {
		t.Fatalf("DecodeJSON(%s) error = %v", src, err)
	}
	return Classify(v)
}

func TestClassify_Request(t *testing.T) {
	msg, err := classifyJSON(t, `{"jsonrpc":"2.0","id":1,"method":"initialize","params":{"capabilities":{}}}`)
	if err != nil {
		t.Fatalf("Classify() error = %v", err)
	}
	req, ok := msg.(*Request)
	if !ok {
		t.Fatalf("Classify() = %T, want *Request", msg)
	}
	if n, _ := req.ID.Int(); n != 1 {
		t.Errorf("id = %v", req.ID)
	}
	if req.Name != "initialize" {
		t.Errorf("method = %s", req.Name)
	}
}

func TestClassify_StringID(t *testing.T) {
	msg, err := classifyJSON(t, `{"jsonrpc":"2.0","id":"abc-1","method":"shutdown"}`)
	if err != nil {
		t.Fatalf("Classify() error = %v", err)
	}
	req := msg.(*Request)
	if s, ok := req.ID.Str(); !ok || s != "abc-1" {
		t.Errorf("id = %v", req.ID)
	}
}

func TestClassify_Notification(t *testing.T) {
	msg, err := classifyJSON(t, `{"jsonrpc":"2.0","method":"exit"}`)
	if err != nil {
		t.Fatalf("Classify() error = %v", err)
	}
	if _, ok := msg.(*Notification); !ok {
		t.Fatalf("Classify() = %T, want *Notification", msg)
	}
}

func TestClassify_Response(t *testing.T) {
	msg, err := classifyJSON(t, `{"jsonrpc":"2.0","id":3,"result":{"applied":true}}`)
	if err != nil {
		t.Fatalf("Classify() error = %v", err)
	}
	resp, ok := msg.(*Response)
	if !ok {
		t.Fatalf("Classify() = %T, want *Response", msg)
	}
	if resp.Err != nil {
		t.Errorf("Err = %v", resp.Err)
	}
}

func TestClassify_Invalid(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"missing jsonrpc", `{"id":1,"method":"x"}`},
		{"wrong version", `{"jsonrpc":"1.0","method":"x"}`},
		{"scalar params", `{"jsonrpc":"2.0","method":"x","params":42}`},
		{"result and error", `{"jsonrpc":"2.0","id":1,"result":null,"error":{"code":1,"message":"m"}}`},
		{"no method or result", `{"jsonrpc":"2.0","id":1}`},
		{"boolean id", `{"jsonrpc":"2.0","id":true,"method":"x"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := classifyJSON(t, tt.src); !errors.Is(err, ErrInvalidMessage) {
				t.Errorf("Classify() error = %v, want ErrInvalidMessage", err)
			}
		})
	}
}

func TestEncodeResponse_NullResult(t *testing.T) {
	data, err := EncodeResponse(EchoID(NewIntID(2)), anyval.Null())
	if err != nil {
		t.Fatalf("EncodeResponse() error = %v", err)
	}
	want := `{"jsonrpc":"2.0","id":2,"result":null}`
	if string(data) != want {
		t.Errorf("EncodeResponse() = %s, want %s", data, want)
	}
}

func TestEncodeErrorResponse_NullID(t *testing.T) {
	data, err := EncodeErrorResponse(NullResponseID, protocol.NewParseError("bad json"))
	if err != nil {
		t.Fatalf("EncodeErrorResponse() error = %v", err)
	}
	want := `{"jsonrpc":"2.0","id":null,"error":{"code":-32700,"message":"bad json"}}`
	if string(data) != want {
		t.Errorf("EncodeErrorResponse() = %s, want %s", data, want)
	}
}
