package protocol

import (
	"fmt"

	"github.com/dshills/lspcore/internal/anyval"
)

// DocumentURI represents a URI as used in LSP, typically file://.
type DocumentURI string

// URI is a non-document URI (workspace folders, external resources).
type URI = DocumentURI

// Position in a text document expressed as zero-based line and character
// offset. Character offset is measured per the negotiated position encoding
// (UTF-16 by default).
type Position struct {
	Line      uint32 `json:"line"`
	Character uint32 `json:"character"`
}

// Range in a text document expressed as start and end positions.
type Range struct {
	Start Position `json:"start"`
	End   Position `json:"end"`
}

// Location represents a location inside a resource.
type Location struct {
	URI   DocumentURI `json:"uri"`
	Range Range       `json:"range"`
}

// LocationLink represents a link between a source and a target location.
type LocationLink struct {
	OriginSelectionRange *Range      `json:"originSelectionRange,omitempty"`
	TargetURI            DocumentURI `json:"targetUri"`
	TargetRange          Range       `json:"targetRange"`
	TargetSelectionRange Range       `json:"targetSelectionRange"`
}

// TextDocumentIdentifier identifies a text document.
type TextDocumentIdentifier struct {
	URI DocumentURI `json:"uri"`
}

// VersionedTextDocumentIdentifier identifies a specific version of a text
// document.
type VersionedTextDocumentIdentifier struct {
	TextDocumentIdentifier
	Version int32 `json:"version"`
}

// OptionalVersionedTextDocumentIdentifier carries a version that may be
// null when the document is not open or versioning is unknown.
type OptionalVersionedTextDocumentIdentifier struct {
	TextDocumentIdentifier
	Version *int32 `json:"version"`
}

// TextDocumentItem transfers a text document from the client to the server.
type TextDocumentItem struct {
	URI        DocumentURI `json:"uri"`
	LanguageID string      `json:"languageId"`
	Version    int32       `json:"version"`
	Text       string      `json:"text"`
}

// TextDocumentPositionParams is the parameter literal shared by requests
// that address a position inside a document.
type TextDocumentPositionParams struct {
	TextDocument TextDocumentIdentifier `json:"textDocument"`
	Position     Position               `json:"position"`
}

// ProgressToken is an integer-or-string token identifying a progress
// stream. Exactly one field is set.
type ProgressToken struct {
	Int *int32
	Str *string
}

// DecodeAny implements union discrimination by value kind.
func (t *ProgressToken) DecodeAny(v anyval.Value) error {
	if i, ok := v.AsInt(); ok {
		t.Int = &i
		return nil
	}
	if s, ok := v.AsString(); ok {
		t.Str = &s
		return nil
	}
	return fmt.Errorf("ProgressToken: expected integer or string, received %s", v.Kind())
}

// EncodeAny implements the inverse of DecodeAny.
func (t ProgressToken) EncodeAny() (anyval.Value, error) {
	switch {
	case t.Int != nil:
		return anyval.Int(*t.Int), nil
	case t.Str != nil:
		return anyval.String(*t.Str), nil
	default:
		return anyval.Value{}, fmt.Errorf("ProgressToken: no variant set")
	}
}

// WorkDoneProgressParams carries the optional client-supplied progress
// token on request parameters.
type WorkDoneProgressParams struct {
	WorkDoneToken *ProgressToken `json:"workDoneToken,omitempty"`
}

// PartialResultParams carries the optional partial-result token.
type PartialResultParams struct {
	PartialResultToken *ProgressToken `json:"partialResultToken,omitempty"`
}

// TextEdit represents a textual edit applicable to a text document.
type TextEdit struct {
	Range   Range  `json:"range"`
	NewText string `json:"newText"`
}

// AnnotatedTextEdit is a TextEdit carrying a change-annotation reference.
type AnnotatedTextEdit struct {
	TextEdit
	AnnotationID string `json:"annotationId"`
}

// ChangeAnnotation describes a workspace-edit change for user confirmation.
type ChangeAnnotation struct {
	Label             string  `json:"label"`
	NeedsConfirmation *bool   `json:"needsConfirmation,omitempty"`
	Description       *string `json:"description,omitempty"`
}

// Command represents a reference to a command.
type Command struct {
	Title     string         `json:"title"`
	Command   string         `json:"command"`
	Arguments []anyval.Value `json:"arguments,omitempty"`
}

// MarkupContent represents human readable text in a given format.
type MarkupContent struct {
	Kind  MarkupKind `json:"kind"`
	Value string     `json:"value"`
}

// MarkedString is the deprecated pre-MarkupContent hover payload: either a
// plain string or a language/value pair. Exactly one variant is set.
type MarkedString struct {
	Plain *string
	Code  *MarkedStringCode
}

// MarkedStringCode is the language/value variant of MarkedString.
type MarkedStringCode struct {
	Language string `json:"language"`
	Value    string `json:"value"`
}

// DecodeAny discriminates by kind: string → Plain, object → Code.
func (m *MarkedString) DecodeAny(v anyval.Value) error {
	if s, ok := v.AsString(); ok {
		m.Plain = &s
		return nil
	}
	if v.Kind() == anyval.KindObject {
		lang, ok := v.Get("language")
		if !ok {
			return fmt.Errorf("MarkedString: missing required attribute language")
		}
		val, ok := v.Get("value")
		if !ok {
			return fmt.Errorf("MarkedString: missing required attribute value")
		}
		langS, ok1 := lang.AsString()
		valS, ok2 := val.AsString()
		if !ok1 || !ok2 {
			return fmt.Errorf("MarkedString: language and value must be strings")
		}
		m.Code = &MarkedStringCode{Language: langS, Value: valS}
		return nil
	}
	return fmt.Errorf("MarkedString: expected string or object, received %s", v.Kind())
}

// EncodeAny implements the inverse of DecodeAny.
func (m MarkedString) EncodeAny() (anyval.Value, error) {
	switch {
	case m.Plain != nil:
		return anyval.String(*m.Plain), nil
	case m.Code != nil:
		obj := anyval.NewObject()
		obj.Set("language", anyval.String(m.Code.Language)) //nolint:errcheck
		obj.Set("value", anyval.String(m.Code.Value))       //nolint:errcheck
		return obj, nil
	default:
		return anyval.Value{}, fmt.Errorf("MarkedString: no variant set")
	}
}

// WorkspaceFolder represents a root folder of the workspace.
type WorkspaceFolder struct {
	URI  DocumentURI `json:"uri"`
	Name string      `json:"name"`
}

// DocumentFilter selects documents by language, scheme, or glob pattern.
type DocumentFilter struct {
	Language *string `json:"language,omitempty"`
	Scheme   *string `json:"scheme,omitempty"`
	Pattern  *string `json:"pattern,omitempty"`
}

// DocumentSelector is a set of document filters.
type DocumentSelector []DocumentFilter

// BoolOr is a union of boolean and T, used by option fields declared as
// "boolean | T" in the schema (save options, provider options, and the
// like). Discrimination: boolean wire value → Bool, object → Value.
// Exactly one variant is set; the codec dispatches on the marker method.
type BoolOr[T any] struct {
	Bool  *bool
	Value *T
}

// BoolOrUnion is the discrimination marker the codec dispatches on.
func (BoolOr[T]) BoolOrUnion() {}

// True returns a BoolOr holding the boolean true.
func True[T any]() BoolOr[T] {
	b := true
	return BoolOr[T]{Bool: &b}
}

// Of returns a BoolOr holding an options value.
func Of[T any](v T) BoolOr[T] {
	return BoolOr[T]{Value: &v}
}
