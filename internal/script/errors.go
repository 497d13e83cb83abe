package script

import "errors"

// Script errors.
var (
	// ErrEngineClosed indicates a call after Close.
	ErrEngineClosed = errors.New("script: engine closed")

	// ErrNotAFunction indicates a registration whose handler argument is
	// not a Lua function.
	ErrNotAFunction = errors.New("script: handler must be a function")

	// ErrBadReturn indicates a scripted handler returned a value the
	// bridge cannot convert.
	ErrBadReturn = errors.New("script: unconvertible handler return value")
)
