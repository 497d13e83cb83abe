package protocol

import (
	"fmt"

	"github.com/dshills/lspcore/internal/anyval"
)

// DidOpenTextDocumentParams are the parameters of textDocument/didOpen.
type DidOpenTextDocumentParams struct {
	TextDocument TextDocumentItem `json:"textDocument"`
}

// DidChangeTextDocumentParams are the parameters of textDocument/didChange.
type DidChangeTextDocumentParams struct {
	TextDocument   VersionedTextDocumentIdentifier  `json:"textDocument"`
	ContentChanges []TextDocumentContentChangeEvent `json:"contentChanges"`
}

// TextDocumentContentChangeEvent describes a change to a text document.
//
// Discrimination: a "range" key present selects the incremental variant
// (range + text, optional rangeLength); absent selects the whole-document
// variant (text only). Exactly one of Incremental/Whole is set.
type TextDocumentContentChangeEvent struct {
	Incremental *IncrementalChange
	Whole       *WholeDocumentChange
}

// IncrementalChange replaces the given range with new text.
type IncrementalChange struct {
	Range       Range   `json:"range"`
	RangeLength *uint32 `json:"rangeLength,omitempty"`
	Text        string  `json:"text"`
}

// WholeDocumentChange replaces the entire document content.
type WholeDocumentChange struct {
	Text string `json:"text"`
}

// DecodeAny discriminates on presence of the range key.
func (e *TextDocumentContentChangeEvent) DecodeAny(v anyval.Value) error {
	if v.Kind() != anyval.KindObject {
		return fmt.Errorf("TextDocumentContentChangeEvent: expected object, received %s", v.Kind())
	}
	textVal, ok := v.Get("text")
	if !ok {
		return fmt.Errorf("TextDocumentContentChangeEvent: missing required attribute text")
	}
	text, ok := textVal.AsString()
	if !ok {
		return fmt.Errorf("TextDocumentContentChangeEvent: text: expected string, received %s", textVal.Kind())
	}
	rangeVal, hasRange := v.Get("range")
	if !hasRange {
		e.Whole = &WholeDocumentChange{Text: text}
		return nil
	}
	var r Range
	if err := decodeRange(rangeVal, &r); err != nil {
		return fmt.Errorf("TextDocumentContentChangeEvent: %w", err)
	}
	inc := &IncrementalChange{Range: r, Text: text}
	if lenVal, ok := v.Get("rangeLength"); ok {
		u, ok := lenVal.AsUint()
		if !ok {
			if i, iok := lenVal.AsInt(); iok && i >= 0 {
				u = uint32(i)
			} else {
				return fmt.Errorf("TextDocumentContentChangeEvent: rangeLength: expected unsigned integer, received %s", lenVal.Kind())
			}
		}
		inc.RangeLength = &u
	}
	e.Incremental = inc
	return nil
}

// EncodeAny implements the inverse of DecodeAny.
func (e TextDocumentContentChangeEvent) EncodeAny() (anyval.Value, error) {
	obj := anyval.NewObject()
	switch {
	case e.Incremental != nil:
		obj.Set("range", encodeRange(e.Incremental.Range)) //nolint:errcheck
		if e.Incremental.RangeLength != nil {
			obj.Set("rangeLength", anyval.Uint(*e.Incremental.RangeLength)) //nolint:errcheck
		}
		obj.Set("text", anyval.String(e.Incremental.Text)) //nolint:errcheck
		return obj, nil
	case e.Whole != nil:
		obj.Set("text", anyval.String(e.Whole.Text)) //nolint:errcheck
		return obj, nil
	default:
		return anyval.Value{}, fmt.Errorf("TextDocumentContentChangeEvent: no variant set")
	}
}

func decodeRange(v anyval.Value, out *Range) error {
	if v.Kind() != anyval.KindObject {
		return fmt.Errorf("Range: expected object, received %s", v.Kind())
	}
	start, ok := v.Get("start")
	if !ok {
		return fmt.Errorf("Range: missing required attribute start")
	}
	end, ok := v.Get("end")
	if !ok {
		return fmt.Errorf("Range: missing required attribute end")
	}
	if err := decodePosition(start, &out.Start); err != nil {
		return err
	}
	return decodePosition(end, &out.End)
}

func decodePosition(v anyval.Value, out *Position) error {
	if v.Kind() != anyval.KindObject {
		return fmt.Errorf("Position: expected object, received %s", v.Kind())
	}
	for _, attr := range []struct {
		key  string
		dest *uint32
	}{{"line", &out.Line}, {"character", &out.Character}} {
		val, ok := v.Get(attr.key)
		if !ok {
			return fmt.Errorf("Position: missing required attribute %s", attr.key)
		}
		if u, ok := val.AsUint(); ok {
			*attr.dest = u
		} else if i, ok := val.AsInt(); ok && i >= 0 {
			*attr.dest = uint32(i)
		} else {
			return fmt.Errorf("Position: %s: expected unsigned integer, received %s", attr.key, val.Kind())
		}
	}
	return nil
}

func encodeRange(r Range) anyval.Value {
	obj := anyval.NewObject()
	obj.Set("start", encodePosition(r.Start)) //nolint:errcheck
	obj.Set("end", encodePosition(r.End))     //nolint:errcheck
	return obj
}

func encodePosition(p Position) anyval.Value {
	obj := anyval.NewObject()
	obj.Set("line", anyval.Uint(p.Line))           //nolint:errcheck
	obj.Set("character", anyval.Uint(p.Character)) //nolint:errcheck
	return obj
}

// DidCloseTextDocumentParams are the parameters of textDocument/didClose.
type DidCloseTextDocumentParams struct {
	TextDocument TextDocumentIdentifier `json:"textDocument"`
}

// DidSaveTextDocumentParams are the parameters of textDocument/didSave.
type DidSaveTextDocumentParams struct {
	TextDocument TextDocumentIdentifier `json:"textDocument"`
	Text         *string                `json:"text,omitempty"`
}

// WillSaveTextDocumentParams are the parameters of textDocument/willSave
// and textDocument/willSaveWaitUntil.
type WillSaveTextDocumentParams struct {
	TextDocument TextDocumentIdentifier `json:"textDocument"`
	Reason       TextDocumentSaveReason `json:"reason"`
}

// TextDocumentSyncOptions advertise the sync behavior in capabilities.
type TextDocumentSyncOptions struct {
	OpenClose         *bool                 `json:"openClose,omitempty"`
	Change            *TextDocumentSyncKind `json:"change,omitempty"`
	WillSave          *bool                 `json:"willSave,omitempty"`
	WillSaveWaitUntil *bool                 `json:"willSaveWaitUntil,omitempty"`
	Save              *BoolOr[SaveOptions]  `json:"save,omitempty"`
}

// SaveOptions configure didSave content inclusion.
type SaveOptions struct {
	IncludeText *bool `json:"includeText,omitempty"`
}

// --- diagnostics ---

// Diagnostic represents a problem reported for a document.
type Diagnostic struct {
	Range              Range                          `json:"range"`
	Severity           *DiagnosticSeverity            `json:"severity,omitempty"`
	Code               *DiagnosticCode                `json:"code,omitempty"`
	CodeDescription    *CodeDescription               `json:"codeDescription,omitempty"`
	Source             *string                        `json:"source,omitempty"`
	Message            string                         `json:"message"`
	Tags               []DiagnosticTag                `json:"tags,omitempty"`
	RelatedInformation []DiagnosticRelatedInformation `json:"relatedInformation,omitempty"`
	Data               anyval.Value                   `json:"data,omitempty"`
}

// DiagnosticCode is the integer-or-string code of a diagnostic. Exactly
// one field is set.
type DiagnosticCode struct {
	Int *int32
	Str *string
}

// DecodeAny discriminates by value kind.
func (c *DiagnosticCode) DecodeAny(v anyval.Value) error {
	if i, ok := v.AsInt(); ok {
		c.Int = &i
		return nil
	}
	if s, ok := v.AsString(); ok {
		c.Str = &s
		return nil
	}
	return fmt.Errorf("DiagnosticCode: expected integer or string, received %s", v.Kind())
}

// EncodeAny implements the inverse of DecodeAny.
func (c DiagnosticCode) EncodeAny() (anyval.Value, error) {
	switch {
	case c.Int != nil:
		return anyval.Int(*c.Int), nil
	case c.Str != nil:
		return anyval.String(*c.Str), nil
	default:
		return anyval.Value{}, fmt.Errorf("DiagnosticCode: no variant set")
	}
}

// CodeDescription links to further documentation for a diagnostic code.
type CodeDescription struct {
	Href URI `json:"href"`
}

// DiagnosticRelatedInformation points at related occurrences.
type DiagnosticRelatedInformation struct {
	Location Location `json:"location"`
	Message  string   `json:"message"`
}

// PublishDiagnosticsParams are the parameters of
// textDocument/publishDiagnostics.
type PublishDiagnosticsParams struct {
	URI         DocumentURI  `json:"uri"`
	Version     *int32       `json:"version,omitempty"`
	Diagnostics []Diagnostic `json:"diagnostics"`
}

// DocumentDiagnosticParams are the parameters of textDocument/diagnostic.
type DocumentDiagnosticParams struct {
	WorkDoneProgressParams
	PartialResultParams
	TextDocument     TextDocumentIdentifier `json:"textDocument"`
	Identifier       *string                `json:"identifier,omitempty"`
	PreviousResultID *string                `json:"previousResultId,omitempty"`
}

// DocumentDiagnosticReport is the result of textDocument/diagnostic,
// discriminated by the kind attribute: "full" → Full, "unchanged" →
// Unchanged.
type DocumentDiagnosticReport struct {
	Full      *FullDocumentDiagnosticReport
	Unchanged *UnchangedDocumentDiagnosticReport
}

// FullDocumentDiagnosticReport carries the complete diagnostic set.
type FullDocumentDiagnosticReport struct {
	Kind     DocumentDiagnosticReportKind `json:"kind"`
	ResultID *string                      `json:"resultId,omitempty"`
	Items    []Diagnostic                 `json:"items"`
}

// UnchangedDocumentDiagnosticReport signals an unchanged result set.
type UnchangedDocumentDiagnosticReport struct {
	Kind     DocumentDiagnosticReportKind `json:"kind"`
	ResultID string                       `json:"resultId"`
}

// WorkspaceDiagnosticParams are the parameters of workspace/diagnostic.
type WorkspaceDiagnosticParams struct {
	WorkDoneProgressParams
	PartialResultParams
	Identifier        *string            `json:"identifier,omitempty"`
	PreviousResultIDs []PreviousResultID `json:"previousResultIds"`
}

// PreviousResultID pairs a document with its previous diagnostic result id.
type PreviousResultID struct {
	URI   DocumentURI `json:"uri"`
	Value string      `json:"value"`
}

// WorkspaceDiagnosticReport is the result of workspace/diagnostic.
type WorkspaceDiagnosticReport struct {
	Items []WorkspaceDocumentDiagnosticReport `json:"items"`
}

// WorkspaceDocumentDiagnosticReport extends a document report with its
// URI and version. Discriminated by the kind attribute like
// DocumentDiagnosticReport.
type WorkspaceDocumentDiagnosticReport struct {
	URI       DocumentURI                        `json:"uri"`
	Version   *int32                             `json:"version"`
	Full      *FullDocumentDiagnosticReport      `json:"-"`
	Unchanged *UnchangedDocumentDiagnosticReport `json:"-"`
}
