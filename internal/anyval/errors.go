package anyval

import "errors"

// Value errors.
var (
	// ErrNotObject indicates an object operation on a non-object value.
	ErrNotObject = errors.New("anyval: value is not an object")

	// ErrNotArray indicates an array operation on a non-array value.
	ErrNotArray = errors.New("anyval: value is not an array")

	// ErrInvalidJSON indicates the input is not well-formed JSON.
	ErrInvalidJSON = errors.New("anyval: invalid JSON")

	// ErrTrailingData indicates extra bytes after a complete JSON document.
	ErrTrailingData = errors.New("anyval: trailing data after JSON document")
)
