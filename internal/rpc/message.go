package rpc

import (
	"fmt"

	"github.com/dshills/lspcore/internal/anyval"
	"github.com/dshills/lspcore/internal/protocol"
)

// Version is the JSON-RPC protocol version spoken on the wire.
const Version = "2.0"

// RequestID is the integer-or-string id of a request. The zero value is
// invalid; use NewIntID or NewStringID.
type RequestID struct {
	num   int64
	str   string
	isStr bool
	valid bool
}

// NewIntID returns a numeric request id.
func NewIntID(n int64) RequestID { return RequestID{num: n, valid: true} }

// NewStringID returns a string request id.
func NewStringID(s string) RequestID { return RequestID{str: s, isStr: true, valid: true} }

// Int returns the numeric payload.
func (id RequestID) Int() (int64, bool) { return id.num, id.valid && !id.isStr }

// Str returns the string payload.
func (id RequestID) Str() (string, bool) { return id.str, id.valid && id.isStr }

// Valid reports whether the id holds a value.
func (id RequestID) Valid() bool { return id.valid }

// String renders the id for logs.
func (id RequestID) String() string {
	switch {
	case !id.valid:
		return "<none>"
	case id.isStr:
		return fmt.Sprintf("%q", id.str)
	default:
		return fmt.Sprintf("%d", id.num)
	}
}

// Value renders the id as a wire value.
func (id RequestID) Value() anyval.Value {
	if id.isStr {
		return anyval.String(id.str)
	}
	if id.num >= -2147483648 && id.num <= 2147483647 {
		return anyval.Int(int32(id.num))
	}
	return anyval.Float(float64(id.num))
}

// ResponseID is a RequestID that may additionally be null, used when a
// parse error prevented recovering the request id.
type ResponseID struct {
	id     RequestID
	isNull bool
}

// NullResponseID is the id of a parse-error response.
var NullResponseID = ResponseID{isNull: true}

// EchoID wraps a request id as the matching response id.
func EchoID(id RequestID) ResponseID { return ResponseID{id: id} }

// IsNull reports whether the id is null.
func (id ResponseID) IsNull() bool { return id.isNull }

// Request returns the underlying request id for non-null ids.
func (id ResponseID) Request() (RequestID, bool) { return id.id, !id.isNull }

// String renders the id for logs.
func (id ResponseID) String() string {
	if id.isNull {
		return "null"
	}
	return id.id.String()
}

// Value renders the id as a wire value.
func (id ResponseID) Value() anyval.Value {
	if id.isNull {
		return anyval.Null()
	}
	return id.id.Value()
}

// Message is the closed sum of the three JSON-RPC message shapes.
type Message interface {
	// Method returns the method name, or "" for responses.
	Method() string
	isMessage()
}

// Request expects a paired Response carrying the same id.
type Request struct {
	ID     RequestID
	Name   string
	Params anyval.Value // object, array, or null when absent
}

// Method returns the request's method name.
func (r *Request) Method() string { return r.Name }
func (*Request) isMessage()       {}

// Notification is fire-and-forget; it never produces a response.
type Notification struct {
	Name   string
	Params anyval.Value
}

// Method returns the notification's method name.
func (n *Notification) Method() string { return n.Name }
func (*Notification) isMessage()       {}

// Response answers a prior Request. Exactly one of Result and Error is
// meaningful: Err == nil means Result stands, even when null.
type Response struct {
	ID     ResponseID
	Result anyval.Value
	Err    *protocol.ResponseError
}

// Method returns "" — responses carry no method.
func (*Response) Method() string { return "" }
func (*Response) isMessage()     {}

// Classify validates a decoded JSON document as one of the three message
// shapes. It enforces jsonrpc == "2.0", params as array-or-object, and
// exactly-one-of result/error on responses.
func Classify(v anyval.Value) (Message, error) {
	if v.Kind() != anyval.KindObject {
		return nil, fmt.Errorf("%w: expected object, received %s", ErrInvalidMessage, v.Kind())
	}
	if ver, ok := v.Get("jsonrpc"); ok {
		s, isStr := ver.AsString()
		if !isStr || s != Version {
			return nil, fmt.Errorf("%w: jsonrpc must be the string %q", ErrInvalidMessage, Version)
		}
	} else {
		return nil, fmt.Errorf("%w: missing jsonrpc member", ErrInvalidMessage)
	}

	methodVal, hasMethod := v.Get("method")
	idVal, hasID := v.Get("id")
	_, hasResult := v.Get("result")
	errVal, hasError := v.Get("error")

	switch {
	case hasMethod:
		method, ok := methodVal.AsString()
		if !ok {
			return nil, fmt.Errorf("%w: method must be a string", ErrInvalidMessage)
		}
		params, err := classifyParams(v)
		if err != nil {
			return nil, err
		}
		if !hasID {
			return &Notification{Name: method, Params: params}, nil
		}
		id, err := classifyID(idVal)
		if err != nil {
			return nil, err
		}
		return &Request{ID: id, Name: method, Params: params}, nil

	case hasResult || hasError:
		if hasResult && hasError {
			return nil, fmt.Errorf("%w: response carries both result and error", ErrInvalidMessage)
		}
		if !hasID {
			return nil, fmt.Errorf("%w: response missing id", ErrInvalidMessage)
		}
		resp := &Response{}
		if idVal.IsNull() {
			resp.ID = NullResponseID
		} else {
			id, err := classifyID(idVal)
			if err != nil {
				return nil, err
			}
			resp.ID = EchoID(id)
		}
		if hasError {
			respErr, err := classifyError(errVal)
			if err != nil {
				return nil, err
			}
			resp.Err = respErr
		} else {
			result, _ := v.Get("result")
			resp.Result = result
		}
		return resp, nil

	default:
		return nil, fmt.Errorf("%w: neither method nor result/error present", ErrInvalidMessage)
	}
}

func classifyParams(v anyval.Value) (anyval.Value, error) {
	params, ok := v.Get("params")
	if !ok || params.IsNull() {
		return anyval.Null(), nil
	}
	switch params.Kind() {
	case anyval.KindArray, anyval.KindObject:
		return params, nil
	default:
		return anyval.Value{}, fmt.Errorf("%w: params must be an array or object, received %s", ErrInvalidMessage, params.Kind())
	}
}

func classifyID(v anyval.Value) (RequestID, error) {
	if s, ok := v.AsString(); ok {
		return NewStringID(s), nil
	}
	if i, ok := v.AsInt(); ok {
		return NewIntID(int64(i)), nil
	}
	if u, ok := v.AsUint(); ok {
		return NewIntID(int64(u)), nil
	}
	if f, ok := v.AsFloat(); ok && f == float64(int64(f)) {
		return NewIntID(int64(f)), nil
	}
	return RequestID{}, fmt.Errorf("%w: id must be an integer or string, received %s", ErrInvalidMessage, v.Kind())
}

func classifyError(v anyval.Value) (*protocol.ResponseError, error) {
	if v.Kind() != anyval.KindObject {
		return nil, fmt.Errorf("%w: error must be an object, received %s", ErrInvalidMessage, v.Kind())
	}
	codeVal, ok := v.Get("code")
	if !ok {
		return nil, fmt.Errorf("%w: error missing code", ErrInvalidMessage)
	}
	code, ok := codeVal.AsInt()
	if !ok {
		return nil, fmt.Errorf("%w: error code must be an integer", ErrInvalidMessage)
	}
	msgVal, ok := v.Get("message")
	if !ok {
		return nil, fmt.Errorf("%w: error missing message", ErrInvalidMessage)
	}
	msg, ok := msgVal.AsString()
	if !ok {
		return nil, fmt.Errorf("%w: error message must be a string", ErrInvalidMessage)
	}
	respErr := &protocol.ResponseError{Code: int(code), Message: msg}
	if data, ok := v.Get("data"); ok {
		respErr.Data = data.Clone()
	}
	return respErr, nil
}

// EncodeRequest renders a request as wire JSON.
func EncodeRequest(id RequestID, method string, params anyval.Value) ([]byte, error) {
	obj := anyval.NewObject()
	obj.Set("jsonrpc", anyval.String(Version)) //nolint:errcheck
	obj.Set("id", id.Value())                  //nolint:errcheck
	obj.Set("method", anyval.String(method))   //nolint:errcheck
	if !params.IsNull() {
		obj.Set("params", params) //nolint:errcheck
	}
	return anyval.EncodeJSON(obj)
}

// EncodeNotification renders a notification as wire JSON.
func EncodeNotification(method string, params anyval.Value) ([]byte, error) {
	obj := anyval.NewObject()
	obj.Set("jsonrpc", anyval.String(Version)) //nolint:errcheck
	obj.Set("method", anyval.String(method))   //nolint:errcheck
	if !params.IsNull() {
		obj.Set("params", params) //nolint:errcheck
	}
	return anyval.EncodeJSON(obj)
}

// EncodeResponse renders a success response as wire JSON. A null result
// is emitted explicitly, as shutdown and friends require.
func EncodeResponse(id ResponseID, result anyval.Value) ([]byte, error) {
	obj := anyval.NewObject()
	obj.Set("jsonrpc", anyval.String(Version)) //nolint:errcheck
	obj.Set("id", id.Value())                  //nolint:errcheck
	obj.Set("result", result)                  //nolint:errcheck
	return anyval.EncodeJSON(obj)
}

// EncodeErrorResponse renders an error response as wire JSON.
func EncodeErrorResponse(id ResponseID, respErr *protocol.ResponseError) ([]byte, error) {
	errObj := anyval.NewObject()
	errObj.Set("code", anyval.Int(int32(respErr.Code)))   //nolint:errcheck
	errObj.Set("message", anyval.String(respErr.Message)) //nolint:errcheck
	if !respErr.Data.IsNull() {
		errObj.Set("data", respErr.Data.Clone()) //nolint:errcheck
	}
	obj := anyval.NewObject()
	obj.Set("jsonrpc", anyval.String(Version)) //nolint:errcheck
	obj.Set("id", id.Value())                  //nolint:errcheck
	obj.Set("error", errObj)                   //nolint:errcheck
	return anyval.EncodeJSON(obj)
}
