package rpc

import (
	"bytes"
	"errors"
	"io"
	"strconv"
	"strings"
	"testing"
)

func TestReader_SingleFrame(t *testing.T) {
	payload := `{"jsonrpc":"2.0","method":"initialized"}`
	src := "Content-Length: " + strconv.Itoa(len(payload)) + "\r\n\r\n" + payload

	fr := NewReader(strings.NewReader(src))
	got, err := fr.Read()
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if string(got) != payload {
		t.Errorf("Read() = %q, want %q", got, payload)
	}
	if _, err := fr.Read(); err != io.EOF {
		t.Errorf("second Read() error = %v, want io.EOF", err)
	}
}

func TestReader_ContentTypeTolerated(t *testing.T) {
	payload := `{}`
	src := "Content-Type: application/vscode-jsonrpc; charset=utf-8\r\n" +
		"Content-Length: 2\r\n\r\n" + payload

	fr := NewReader(strings.NewReader(src))
	got, err := fr.Read()
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if string(got) != payload {
		t.Errorf("Read() = %q", got)
	}
}

func TestReader_MissingContentLength(t *testing.T) {
	fr := NewReader(strings.NewReader("Content-Type: text/plain\r\n\r\n{}"))
	if _, err := fr.Read(); !errors.Is(err, ErrMissingContentLength) {
		t.Errorf("Read() error = %v, want ErrMissingContentLength", err)
	}
}

func TestReader_UTF8ByteLength(t *testing.T) {
	payload := `{"text":"héllo"}`
	src := "Content-Length: " + strconv.Itoa(len(payload)) + "\r\n\r\n" + payload

	fr := NewReader(strings.NewReader(src))
	got, err := fr.Read()
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if string(got) != payload {
		t.Errorf("Read() = %q, want %q", got, payload)
	}
}

func TestWriter_Frames(t *testing.T) {
	var buf bytes.Buffer
	fw := NewWriter(&buf)

	payload := []byte(`{"jsonrpc":"2.0","id":1,"result":null}`)
	if err := fw.Write(payload); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	want := "Content-Length: " + strconv.Itoa(len(payload)) + "\r\n\r\n" + string(payload)
	if buf.String() != want {
		t.Errorf("Write() produced %q, want %q", buf.String(), want)
	}

	// Frames round-trip through the reader.
	fr := NewReader(bytes.NewReader(buf.Bytes()))
	got, err := fr.Read()
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if !bytes.Equal(got, payload) {
		t.Errorf("round trip = %q", got)
	}
}

func TestReader_MultipleFrames(t *testing.T) {
	var buf bytes.Buffer
	fw := NewWriter(&buf)
	payloads := []string{`{"a":1}`, `{"b":2}`, `{"c":3}`}
	for _, p := range payloads {
		if err := fw.Write([]byte(p)); err != nil {
			t.Fatalf("Write(%s) error = %v", p, err)
		}
	}

	fr := NewReader(&buf)
	for i, want := range payloads {
		got, err := fr.Read()
		if err != nil {
			t.Fatalf("Read() #%d error = %v", i, err)
		}
		if string(got) != want {
			t.Errorf("Read() #%d = %q, want %q", i, got, want)
		}
	}
}
