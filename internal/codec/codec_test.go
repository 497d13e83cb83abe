package codec

import (
	"strings"
	"testing"

	"github.com/dshills/lspcore/internal/anyval"
	"github.com/dshills/lspcore/internal/protocol"
)

func mustDecodeJSON(t *testing.T, src string) anyval.Value {
	t.Helper()
	v, err := anyval.DecodeJSON([]byte(src))
	if err != nil {
		t.Fatalf("DecodeJSON(%s) error = %v", src, err)
	}
	return v
}

func TestDecode_MissingRequiredField(t *testing.T) {
	v := mustDecodeJSON(t, `{"textDocument":{"uri":"file:///a.go"}}`)

	var params protocol.DefinitionParams
	err := Decode(v, &params)
	if err == nil {
		t.Fatal("Decode() succeeded, want missing-field error")
	}
	msg := err.Error()
	if !strings.Contains(msg, "position") {
		t.Errorf("error %q does not name the missing attribute position", msg)
	}
	respErr := AsResponseError(err)
	if respErr.Code != protocol.CodeInvalidParams {
		t.Errorf("ResponseError code = %d, want %d", respErr.Code, protocol.CodeInvalidParams)
	}
}

func TestDecode_WrongTag(t *testing.T) {
	v := mustDecodeJSON(t, `{"textDocument":{"uri":42},"position":{"line":0,"character":0}}`)

	var params protocol.DefinitionParams
	err := Decode(v, &params)
	if err == nil {
		t.Fatal("Decode() succeeded, want tag-mismatch error")
	}
	if !strings.Contains(err.Error(), "expected string") {
		t.Errorf("error %q does not cite the expected tag", err.Error())
	}
}

func TestDecode_IntEnumOutOfRange(t *testing.T) {
	v := mustDecodeJSON(t, `{"textDocument":{"uri":"file:///a"},"reason":9}`)

	var params protocol.WillSaveTextDocumentParams
	if err := Decode(v, &params); err == nil {
		t.Fatal("Decode() accepted out-of-range TextDocumentSaveReason")
	}
}

func TestDecode_StringEnumUnknown(t *testing.T) {
	v := mustDecodeJSON(t, `{"value":"deep"}`)

	var params protocol.SetTraceParams
	err := Decode(v, &params)
	if err == nil {
		t.Fatal("Decode() accepted unknown trace value")
	}
	if !strings.Contains(err.Error(), "deep") {
		t.Errorf("error %q does not cite the rejected value", err.Error())
	}
}

func TestDecode_OptionalAbsent(t *testing.T) {
	v := mustDecodeJSON(t, `{"textDocument":{"uri":"file:///a"},"position":{"line":1,"character":2},"context":null}`)

	var params protocol.CompletionParams
	if err := Decode(v, &params); err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if params.Context != nil {
		t.Error("null context decoded non-nil")
	}
	if params.Position.Line != 1 || params.Position.Character != 2 {
		t.Errorf("position = %+v", params.Position)
	}
}

func TestNumericCoercion(t *testing.T) {
	if i, err := AsInt(anyval.Float(3.0)); err != nil || i != 3 {
		t.Errorf("AsInt(3.0) = %d, %v; want 3, nil", i, err)
	}
	if _, err := AsInt(anyval.Float(3.5)); err == nil {
		t.Error("AsInt(3.5) succeeded, want precision error")
	}
	if _, err := AsUint(anyval.Int(-1)); err == nil {
		t.Error("AsUint(-1) succeeded, want range error")
	}
	if u, err := AsUint(anyval.Uint(1)); err != nil || u != 1 {
		t.Errorf("AsUint(1u) = %d, %v; want 1, nil", u, err)
	}
	if i, err := AsInt(anyval.Uint(7)); err != nil || i != 7 {
		t.Errorf("AsInt(7u) = %d, %v; want 7, nil", i, err)
	}
	if _, err := AsInt(anyval.Uint(3000000000)); err == nil {
		t.Error("AsInt(3e9u) succeeded, want overflow error")
	}
}

func TestRoundTrip_InitializeParams(t *testing.T) {
	src := `{"processId":1234,"rootUri":"file:///work","capabilities":{"textDocument":{"hover":{"contentFormat":["markdown","plaintext"]}}},"trace":"messages","workspaceFolders":[{"uri":"file:///work","name":"work"}]}`
	v := mustDecodeJSON(t, src)

	params, err := As[protocol.InitializeParams](v)
	if err != nil {
		t.Fatalf("As() error = %v", err)
	}
	if params.ProcessID == nil || *params.ProcessID != 1234 {
		t.Errorf("ProcessID = %v", params.ProcessID)
	}
	if *params.Trace != protocol.TraceMessages {
		t.Errorf("Trace = %v", *params.Trace)
	}

	back, err := Encode(params)
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	again, err := As[protocol.InitializeParams](back)
	if err != nil {
		t.Fatalf("re-As() error = %v", err)
	}
	reback, err := Encode(again)
	if err != nil {
		t.Fatalf("re-Encode() error = %v", err)
	}
	if !anyval.Equal(back, reback) {
		t.Error("round trip is not stable")
	}
}

func TestRoundTrip_CompletionItem(t *testing.T) {
	item := protocol.CompletionItem{
		Label: "Println",
		Kind:  ptr(protocol.CompletionItemKindFunction),
		Documentation: &protocol.Documentation{
			Markup: &protocol.MarkupContent{Kind: protocol.MarkupMarkdown, Value: "prints a line"},
		},
		TextEdit: &protocol.CompletionTextEdit{
			Edit: &protocol.TextEdit{
				Range:   protocol.Range{Start: protocol.Position{Line: 1, Character: 0}, End: protocol.Position{Line: 1, Character: 3}},
				NewText: "Println",
			},
		},
	}
	v, err := Encode(item)
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	got, err := As[protocol.CompletionItem](v)
	if err != nil {
		t.Fatalf("As() error = %v", err)
	}
	if got.Label != item.Label || *got.Kind != *item.Kind {
		t.Errorf("got %+v", got)
	}
	if got.Documentation.Markup == nil || got.Documentation.Markup.Value != "prints a line" {
		t.Errorf("documentation = %+v", got.Documentation)
	}
	if got.TextEdit.Edit == nil || got.TextEdit.Edit.NewText != "Println" {
		t.Errorf("textEdit = %+v", got.TextEdit)
	}
}

func TestDecode_ContentChangeUnion(t *testing.T) {
	v := mustDecodeJSON(t, `{"textDocument":{"uri":"file:///a","version":2},"contentChanges":[{"range":{"start":{"line":0,"character":0},"end":{"line":0,"character":1}},"text":"x"},{"text":"whole"}]}`)

	params, err := As[protocol.DidChangeTextDocumentParams](v)
	if err != nil {
		t.Fatalf("As() error = %v", err)
	}
	if len(params.ContentChanges) != 2 {
		t.Fatalf("len(ContentChanges) = %d", len(params.ContentChanges))
	}
	if params.ContentChanges[0].Incremental == nil {
		t.Error("first change: want incremental variant")
	}
	if params.ContentChanges[1].Whole == nil || params.ContentChanges[1].Whole.Text != "whole" {
		t.Error("second change: want whole-document variant")
	}
}

func TestDecode_DeepCopyIndependence(t *testing.T) {
	v := mustDecodeJSON(t, `{"label":"x","data":{"inner":{"n":1}}}`)

	item, err := As[protocol.CompletionItem](v)
	if err != nil {
		t.Fatalf("As() error = %v", err)
	}

	// Mutate the decoded free-form tree; the source must not change.
	inner, _ := item.Data.Get("inner")
	inner.Set("n", anyval.Int(99)) //nolint:errcheck

	srcData, _ := v.Get("data")
	srcInner, _ := srcData.Get("inner")
	n, _ := srcInner.Get("n")
	if got, _ := n.AsInt(); got != 1 {
		t.Errorf("source tree mutated through decoded value: n = %d", got)
	}
}

func TestDecode_BoolOrUnion(t *testing.T) {
	caps, err := As[protocol.ServerCapabilities](mustDecodeJSON(t,
		`{"hoverProvider":true,"renameProvider":{"prepareProvider":true}}`))
	if err != nil {
		t.Fatalf("As() error = %v", err)
	}
	if caps.HoverProvider == nil || caps.HoverProvider.Bool == nil || !*caps.HoverProvider.Bool {
		t.Errorf("hoverProvider = %+v", caps.HoverProvider)
	}
	if caps.RenameProvider == nil || caps.RenameProvider.Value == nil ||
		caps.RenameProvider.Value.PrepareProvider == nil || !*caps.RenameProvider.Value.PrepareProvider {
		t.Errorf("renameProvider = %+v", caps.RenameProvider)
	}
}

func TestDecode_DocumentChangeUnion(t *testing.T) {
	v := mustDecodeJSON(t, `{"documentChanges":[{"textDocument":{"uri":"file:///a","version":1},"edits":[]},{"kind":"rename","oldUri":"file:///a","newUri":"file:///b"}]}`)

	edit, err := As[protocol.WorkspaceEdit](v)
	if err != nil {
		t.Fatalf("As() error = %v", err)
	}
	if len(edit.DocumentChanges) != 2 {
		t.Fatalf("len(DocumentChanges) = %d", len(edit.DocumentChanges))
	}
	if edit.DocumentChanges[0].TextDocument == nil {
		t.Error("first change: want TextDocumentEdit variant")
	}
	if edit.DocumentChanges[1].Rename == nil || edit.DocumentChanges[1].Rename.NewURI != "file:///b" {
		t.Error("second change: want RenameFile variant")
	}
}

func TestDecode_DiagnosticReportUnion(t *testing.T) {
	full, err := As[protocol.DocumentDiagnosticReport](mustDecodeJSON(t,
		`{"kind":"full","items":[{"range":{"start":{"line":0,"character":0},"end":{"line":0,"character":1}},"message":"bad"}]}`))
	if err != nil {
		t.Fatalf("As(full) error = %v", err)
	}
	if full.Full == nil || len(full.Full.Items) != 1 {
		t.Errorf("full report = %+v", full)
	}

	unchanged, err := As[protocol.DocumentDiagnosticReport](mustDecodeJSON(t,
		`{"kind":"unchanged","resultId":"r1"}`))
	if err != nil {
		t.Fatalf("As(unchanged) error = %v", err)
	}
	if unchanged.Unchanged == nil || unchanged.Unchanged.ResultID != "r1" {
		t.Errorf("unchanged report = %+v", unchanged)
	}

	if _, err := As[protocol.DocumentDiagnosticReport](mustDecodeJSON(t, `{"kind":"partial"}`)); err == nil {
		t.Error("unknown report kind accepted")
	}
}

func TestDecode_HoverContents(t *testing.T) {
	var h protocol.Hover
	if err := Decode(mustDecodeJSON(t, `{"contents":{"kind":"markdown","value":"**doc**"}}`), &h); err != nil {
		t.Fatalf("Decode(markup) error = %v", err)
	}
	if h.Contents.Markup == nil || h.Contents.Markup.Kind != protocol.MarkupMarkdown {
		t.Errorf("contents = %+v", h.Contents)
	}

	var h2 protocol.Hover
	if err := Decode(mustDecodeJSON(t, `{"contents":["plain",{"language":"go","value":"x := 1"}]}`), &h2); err != nil {
		t.Fatalf("Decode(marked list) error = %v", err)
	}
	if len(h2.Contents.Marked) != 2 || h2.Contents.Marked[1].Code.Language != "go" {
		t.Errorf("contents = %+v", h2.Contents)
	}
}

func TestEncode_OmitsAbsentOptionals(t *testing.T) {
	v, err := Encode(protocol.CompletionItem{Label: "x"})
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	if v.Len() != 1 || !v.Has("label") {
		data, _ := anyval.EncodeJSON(v)
		t.Errorf("Encode() = %s, want only label", data)
	}
}

func ptr[T any](v T) *T { return &v }
