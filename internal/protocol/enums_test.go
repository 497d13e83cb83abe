package protocol

import (
	"errors"
	"testing"
)

func TestIntEnumTotality(t *testing.T) {
	// Every defined value round-trips; the value just past the range is
	// rejected.
	tests := []struct {
		name    string
		defined []int32
		beyond  int32
		from    func(int32) (any, error)
	}{
		{"DiagnosticSeverity", rangeOf(1, 4), 5, func(v int32) (any, error) { return DiagnosticSeverityFromValue(v) }},
		{"SymbolKind", rangeOf(1, 26), 27, func(v int32) (any, error) { return SymbolKindFromValue(v) }},
		{"CompletionItemKind", rangeOf(1, 25), 26, func(v int32) (any, error) { return CompletionItemKindFromValue(v) }},
		{"TextDocumentSyncKind", rangeOf(0, 2), 3, func(v int32) (any, error) { return TextDocumentSyncKindFromValue(v) }},
		{"MessageType", rangeOf(1, 4), 5, func(v int32) (any, error) { return MessageTypeFromValue(v) }},
		{"FileChangeType", rangeOf(1, 3), 4, func(v int32) (any, error) { return FileChangeTypeFromValue(v) }},
		{"TextDocumentSaveReason", rangeOf(1, 3), 4, func(v int32) (any, error) { return TextDocumentSaveReasonFromValue(v) }},
		{"DocumentHighlightKind", rangeOf(1, 3), 4, func(v int32) (any, error) { return DocumentHighlightKindFromValue(v) }},
		{"NotebookCellKind", rangeOf(1, 2), 3, func(v int32) (any, error) { return NotebookCellKindFromValue(v) }},
		{"InsertTextFormat", rangeOf(1, 2), 3, func(v int32) (any, error) { return InsertTextFormatFromValue(v) }},
		{"InlayHintKind", rangeOf(1, 2), 3, func(v int32) (any, error) { return InlayHintKindFromValue(v) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, v := range tt.defined {
				if _, err := tt.from(v); err != nil {
					t.Errorf("%s(%d) error = %v, want defined", tt.name, v, err)
				}
			}
			if _, err := tt.from(tt.beyond); !errors.Is(err, ErrUnknownEnumValue) {
				t.Errorf("%s(%d) error = %v, want ErrUnknownEnumValue", tt.name, tt.beyond, err)
			}
			if _, err := tt.from(-1); !errors.Is(err, ErrUnknownEnumValue) {
				t.Errorf("%s(-1) accepted", tt.name)
			}
		})
	}
}

func rangeOf(lo, hi int32) []int32 {
	var out []int32
	for v := lo; v <= hi; v++ {
		out = append(out, v)
	}
	return out
}

func TestStringEnumTotality(t *testing.T) {
	if _, err := ParseTraceValues("off"); err != nil {
		t.Errorf("ParseTraceValues(off) error = %v", err)
	}
	if _, err := ParseTraceValues("deep"); !errors.Is(err, ErrUnknownEnumValue) {
		t.Errorf("ParseTraceValues(deep) error = %v, want ErrUnknownEnumValue", err)
	}
	if _, err := ParseMarkupKind("markdown"); err != nil {
		t.Errorf("ParseMarkupKind(markdown) error = %v", err)
	}
	if _, err := ParseMarkupKind("html"); !errors.Is(err, ErrUnknownEnumValue) {
		t.Errorf("ParseMarkupKind(html) error = %v", err)
	}
	if _, err := ParsePositionEncodingKind("utf-16"); err != nil {
		t.Errorf("ParsePositionEncodingKind(utf-16) error = %v", err)
	}
	if _, err := ParseCodeActionKind("quickfix"); err != nil {
		t.Errorf("ParseCodeActionKind(quickfix) error = %v", err)
	}
	if _, err := ParseFoldingRangeKind("banner"); !errors.Is(err, ErrUnknownEnumValue) {
		t.Errorf("ParseFoldingRangeKind(banner) error = %v", err)
	}
	if _, err := ParseDocumentDiagnosticReportKind("partial"); !errors.Is(err, ErrUnknownEnumValue) {
		t.Errorf("ParseDocumentDiagnosticReportKind(partial) error = %v", err)
	}
}

func TestWatchKindMask(t *testing.T) {
	for _, v := range []int32{1, 2, 3, 4, 5, 6, 7} {
		if _, err := WatchKindFromValue(v); err != nil {
			t.Errorf("WatchKindFromValue(%d) error = %v", v, err)
		}
	}
	for _, v := range []int32{0, 8, -1} {
		if _, err := WatchKindFromValue(v); err == nil {
			t.Errorf("WatchKindFromValue(%d) accepted", v)
		}
	}
}

func TestMethodRegistries(t *testing.T) {
	if !IsIncomingRequest(MethodInitialize) || !IsIncomingRequest(MethodSemanticTokensFullDelta) {
		t.Error("incoming request registry incomplete")
	}
	if !IsIncomingNotification(MethodCancelRequest) || !IsIncomingNotification(MethodNotebookDidChange) {
		t.Error("incoming notification registry incomplete")
	}
	if !IsOutgoingRequest(MethodWorkspaceApplyEdit) || !IsOutgoingNotification(MethodPublishDiagnostics) {
		t.Error("outgoing registries incomplete")
	}
	if IsIncomingRequest(MethodPublishDiagnostics) {
		t.Error("outgoing notification classified as incoming request")
	}

	isReq, err := CheckIncoming(MethodHover)
	if err != nil || !isReq {
		t.Errorf("CheckIncoming(hover) = %v, %v", isReq, err)
	}
	isReq, err = CheckIncoming(MethodDidOpen)
	if err != nil || isReq {
		t.Errorf("CheckIncoming(didOpen) = %v, %v", isReq, err)
	}
	if _, err := CheckIncoming("textDocument/teleport"); !errors.Is(err, ErrUnknownMethod) {
		t.Errorf("CheckIncoming(unknown) error = %v", err)
	}
}

func TestContentChangeEvent_Discrimination(t *testing.T) {
	whole := TextDocumentContentChangeEvent{Whole: &WholeDocumentChange{Text: "all"}}
	v, err := whole.EncodeAny()
	if err != nil {
		t.Fatalf("EncodeAny() error = %v", err)
	}
	var back TextDocumentContentChangeEvent
	if err := back.DecodeAny(v); err != nil {
		t.Fatalf("DecodeAny() error = %v", err)
	}
	if back.Whole == nil || back.Whole.Text != "all" {
		t.Errorf("round trip = %+v", back)
	}

	length := uint32(3)
	inc := TextDocumentContentChangeEvent{Incremental: &IncrementalChange{
		Range:       Range{Start: Position{Line: 1, Character: 2}, End: Position{Line: 1, Character: 5}},
		RangeLength: &length,
		Text:        "xyz",
	}}
	v, err = inc.EncodeAny()
	if err != nil {
		t.Fatalf("EncodeAny() error = %v", err)
	}
	var back2 TextDocumentContentChangeEvent
	if err := back2.DecodeAny(v); err != nil {
		t.Fatalf("DecodeAny() error = %v", err)
	}
	if back2.Incremental == nil || back2.Incremental.Range.End.Character != 5 {
		t.Errorf("round trip = %+v", back2)
	}
}

func TestResponseErrorConstructors(t *testing.T) {
	if NewParseError("x").Code != CodeParseError {
		t.Error("parse error code")
	}
	if NewMethodNotFound("m").Code != CodeMethodNotFound {
		t.Error("method-not-found code")
	}
	if NewServerNotInitialized("m").Code != CodeServerNotInitialized {
		t.Error("not-initialized code")
	}
	if NewRequestCancelled().Code != -32800 || NewContentModified().Code != -32801 {
		t.Error("LSP error codes")
	}
}
