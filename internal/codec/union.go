package codec

import (
	"fmt"
	"reflect"

	"github.com/dshills/lspcore/internal/anyval"
	"github.com/dshills/lspcore/internal/protocol"
)

// unionHandler decodes and encodes a union whose variants need recursive
// struct decoding and therefore cannot implement AnyDecoder inside the
// protocol package. Each handler documents its discrimination rule.
type unionHandler struct {
	decode func(v anyval.Value, rv reflect.Value) error
	encode func(rv reflect.Value) (anyval.Value, error)
}

var unionHandlers = map[reflect.Type]unionHandler{}

func registerUnion[T any](h unionHandler) {
	unionHandlers[reflect.TypeOf(*new(T))] = h
}

func init() {
	// InlayHintLabel: string → Text, array → Parts.
	registerUnion[protocol.InlayHintLabel](unionHandler{
		decode: func(v anyval.Value, rv reflect.Value) error {
			label := rv.Addr().Interface().(*protocol.InlayHintLabel)
			if s, ok := v.AsString(); ok {
				label.Text = &s
				return nil
			}
			if v.Kind() == anyval.KindArray {
				var parts []protocol.InlayHintLabelPart
				if err := Decode(v, &parts); err != nil {
					return err
				}
				label.Parts = parts
				return nil
			}
			return &DecodeError{Type: "InlayHintLabel", Reason: fmt.Sprintf("expected string or array, received %s", v.Kind())}
		},
		encode: func(rv reflect.Value) (anyval.Value, error) {
			label := rv.Interface().(protocol.InlayHintLabel)
			switch {
			case label.Text != nil:
				return anyval.String(*label.Text), nil
			case label.Parts != nil:
				return Encode(label.Parts)
			default:
				return anyval.Value{}, fmt.Errorf("InlayHintLabel: no variant set")
			}
		},
	})

	// InlineValue: text key → Text, caseSensitiveLookup key → Variable,
	// otherwise → Expression.
	registerUnion[protocol.InlineValue](unionHandler{
		decode: func(v anyval.Value, rv reflect.Value) error {
			iv := rv.Addr().Interface().(*protocol.InlineValue)
			if v.Kind() != anyval.KindObject {
				return &DecodeError{Type: "InlineValue", Reason: fmt.Sprintf("expected object, received %s", v.Kind())}
			}
			switch {
			case v.Has("text"):
				iv.Text = &protocol.InlineValueText{}
				return Decode(v, iv.Text)
			case v.Has("caseSensitiveLookup"):
				iv.Variable = &protocol.InlineValueVariableLookup{}
				return Decode(v, iv.Variable)
			default:
				iv.Expression = &protocol.InlineValueEvaluatableExpression{}
				return Decode(v, iv.Expression)
			}
		},
		encode: func(rv reflect.Value) (anyval.Value, error) {
			iv := rv.Interface().(protocol.InlineValue)
			switch {
			case iv.Text != nil:
				return Encode(*iv.Text)
			case iv.Variable != nil:
				return Encode(*iv.Variable)
			case iv.Expression != nil:
				return Encode(*iv.Expression)
			default:
				return anyval.Value{}, fmt.Errorf("InlineValue: no variant set")
			}
		},
	})

	// DocumentDiagnosticReport: kind "full" → Full, "unchanged" → Unchanged.
	registerUnion[protocol.DocumentDiagnosticReport](unionHandler{
		decode: func(v anyval.Value, rv reflect.Value) error {
			rep := rv.Addr().Interface().(*protocol.DocumentDiagnosticReport)
			kind, err := diagnosticReportKind(v, "DocumentDiagnosticReport")
			if err != nil {
				return err
			}
			if kind == protocol.DiagnosticReportFull {
				rep.Full = &protocol.FullDocumentDiagnosticReport{}
				return Decode(v, rep.Full)
			}
			rep.Unchanged = &protocol.UnchangedDocumentDiagnosticReport{}
			return Decode(v, rep.Unchanged)
		},
		encode: func(rv reflect.Value) (anyval.Value, error) {
			rep := rv.Interface().(protocol.DocumentDiagnosticReport)
			switch {
			case rep.Full != nil:
				return Encode(*rep.Full)
			case rep.Unchanged != nil:
				return Encode(*rep.Unchanged)
			default:
				return anyval.Value{}, fmt.Errorf("DocumentDiagnosticReport: no variant set")
			}
		},
	})

	// WorkspaceDocumentDiagnosticReport: like DocumentDiagnosticReport
	// plus uri and a nullable version.
	registerUnion[protocol.WorkspaceDocumentDiagnosticReport](unionHandler{
		decode: func(v anyval.Value, rv reflect.Value) error {
			rep := rv.Addr().Interface().(*protocol.WorkspaceDocumentDiagnosticReport)
			kind, err := diagnosticReportKind(v, "WorkspaceDocumentDiagnosticReport")
			if err != nil {
				return err
			}
			uriVal, ok := v.Get("uri")
			if !ok {
				return missingField("WorkspaceDocumentDiagnosticReport", "uri")
			}
			uri, ok := uriVal.AsString()
			if !ok {
				return wrongKind("WorkspaceDocumentDiagnosticReport", "uri", "string", uriVal.Kind())
			}
			rep.URI = protocol.DocumentURI(uri)
			if verVal, ok := v.Get("version"); ok && !verVal.IsNull() {
				ver, err := AsInt(verVal)
				if err != nil {
					return &DecodeError{Type: "WorkspaceDocumentDiagnosticReport", Field: "version", Reason: err.Error()}
				}
				rep.Version = &ver
			}
			if kind == protocol.DiagnosticReportFull {
				rep.Full = &protocol.FullDocumentDiagnosticReport{}
				return Decode(v, rep.Full)
			}
			rep.Unchanged = &protocol.UnchangedDocumentDiagnosticReport{}
			return Decode(v, rep.Unchanged)
		},
		encode: func(rv reflect.Value) (anyval.Value, error) {
			rep := rv.Interface().(protocol.WorkspaceDocumentDiagnosticReport)
			var inner anyval.Value
			var err error
			switch {
			case rep.Full != nil:
				inner, err = Encode(*rep.Full)
			case rep.Unchanged != nil:
				inner, err = Encode(*rep.Unchanged)
			default:
				return anyval.Value{}, fmt.Errorf("WorkspaceDocumentDiagnosticReport: no variant set")
			}
			if err != nil {
				return anyval.Value{}, err
			}
			inner.Set("uri", anyval.String(string(rep.URI))) //nolint:errcheck
			if rep.Version != nil {
				inner.Set("version", anyval.Int(*rep.Version)) //nolint:errcheck
			} else {
				inner.Set("version", anyval.Null()) //nolint:errcheck
			}
			return inner, nil
		},
	})

	// DocumentChange: kind "create"/"rename"/"delete" selects the resource
	// operation; no kind key selects TextDocumentEdit.
	registerUnion[protocol.DocumentChange](unionHandler{
		decode: func(v anyval.Value, rv reflect.Value) error {
			ch := rv.Addr().Interface().(*protocol.DocumentChange)
			if v.Kind() != anyval.KindObject {
				return &DecodeError{Type: "DocumentChange", Reason: fmt.Sprintf("expected object, received %s", v.Kind())}
			}
			kindVal, hasKind := v.Get("kind")
			if !hasKind {
				ch.TextDocument = &protocol.TextDocumentEdit{}
				return Decode(v, ch.TextDocument)
			}
			kindS, ok := kindVal.AsString()
			if !ok {
				return wrongKind("DocumentChange", "kind", "string", kindVal.Kind())
			}
			kind, err := protocol.ParseResourceOperationKind(kindS)
			if err != nil {
				return &DecodeError{Type: "DocumentChange", Field: "kind", Reason: err.Error()}
			}
			switch kind {
			case protocol.ResourceOperationCreate:
				ch.Create = &protocol.CreateFile{}
				return Decode(v, ch.Create)
			case protocol.ResourceOperationRename:
				ch.Rename = &protocol.RenameFile{}
				return Decode(v, ch.Rename)
			default:
				ch.Delete = &protocol.DeleteFile{}
				return Decode(v, ch.Delete)
			}
		},
		encode: func(rv reflect.Value) (anyval.Value, error) {
			ch := rv.Interface().(protocol.DocumentChange)
			switch {
			case ch.TextDocument != nil:
				return Encode(*ch.TextDocument)
			case ch.Create != nil:
				return Encode(*ch.Create)
			case ch.Rename != nil:
				return Encode(*ch.Rename)
			case ch.Delete != nil:
				return Encode(*ch.Delete)
			default:
				return anyval.Value{}, fmt.Errorf("DocumentChange: no variant set")
			}
		},
	})
}

func diagnosticReportKind(v anyval.Value, typ string) (protocol.DocumentDiagnosticReportKind, error) {
	if v.Kind() != anyval.KindObject {
		return "", &DecodeError{Type: typ, Reason: fmt.Sprintf("expected object, received %s", v.Kind())}
	}
	kindVal, ok := v.Get("kind")
	if !ok {
		return "", missingField(typ, "kind")
	}
	kindS, ok := kindVal.AsString()
	if !ok {
		return "", wrongKind(typ, "kind", "string", kindVal.Kind())
	}
	kind, err := protocol.ParseDocumentDiagnosticReportKind(kindS)
	if err != nil {
		return "", &DecodeError{Type: typ, Field: "kind", Reason: err.Error()}
	}
	return kind, nil
}
