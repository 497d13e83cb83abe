package codec

import (
	"errors"
	"fmt"

	"github.com/dshills/lspcore/internal/protocol"
)

// Codec errors.
var (
	// ErrNotPointer indicates Decode was given a non-pointer target.
	ErrNotPointer = errors.New("codec: decode target must be a non-nil pointer")

	// ErrUnsupportedType indicates a Go type the codec cannot map.
	ErrUnsupportedType = errors.New("codec: unsupported type")
)

// DecodeError reports a validation failure with the type and attribute
// that failed. It renders as an InvalidParams response.
type DecodeError struct {
	Type   string // protocol type being decoded, e.g. "DefinitionParams"
	Field  string // attribute within the type, empty for the value itself
	Reason string // human-readable failure, e.g. "expected string, received integer"
}

// Error implements the error interface.
func (e *DecodeError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s: %s: %s", e.Type, e.Field, e.Reason)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Reason)
}

// ResponseError converts the failure into an InvalidParams payload.
func (e *DecodeError) ResponseError() *protocol.ResponseError {
	return protocol.NewInvalidParams(e.Error())
}

// AsResponseError converts any codec failure into an InvalidParams
// payload, preserving DecodeError detail when present.
func AsResponseError(err error) *protocol.ResponseError {
	var de *DecodeError
	if errors.As(err, &de) {
		return de.ResponseError()
	}
	return protocol.NewInvalidParams(err.Error())
}

func missingField(typ, field string) *DecodeError {
	return &DecodeError{Type: typ, Field: field, Reason: "missing required attribute"}
}

func wrongKind(typ, field, expected string, received fmt.Stringer) *DecodeError {
	return &DecodeError{
		Type:   typ,
		Field:  field,
		Reason: fmt.Sprintf("expected %s, received %s", expected, received),
	}
}
