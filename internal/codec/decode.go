package codec

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/dshills/lspcore/internal/anyval"
)

// AnyDecoder is implemented by union types that decode themselves from a
// dynamic value. The codec dispatches to it before structural decoding.
type AnyDecoder interface {
	DecodeAny(v anyval.Value) error
}

// AnyEncoder is the inverse of AnyDecoder.
type AnyEncoder interface {
	EncodeAny() (anyval.Value, error)
}

// Validator is implemented by enum types; decoded values outside the
// defined set are rejected as InvalidParams.
type Validator interface {
	Valid() bool
}

// boolOrUnion marks protocol.BoolOr instantiations.
type boolOrUnion interface {
	BoolOrUnion()
}

var (
	anyValueType = reflect.TypeOf(anyval.Value{})
)

// Decode validates v against the shape of out and fills it. out must be a
// non-nil pointer; failures are DecodeErrors naming type and attribute.
func Decode(v anyval.Value, out any) error {
	rv := reflect.ValueOf(out)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return ErrNotPointer
	}
	elem := rv.Elem()
	return decodeValue(v, elem, typeName(elem.Type()), "")
}

// As decodes v into a fresh T.
func As[T any](v anyval.Value) (T, error) {
	var out T
	err := Decode(v, &out)
	return out, err
}

func typeName(t reflect.Type) string {
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Name() != "" {
		return t.Name()
	}
	return t.String()
}

func decodeValue(v anyval.Value, rv reflect.Value, typ, field string) error {
	t := rv.Type()

	// Pointers: null and absent both leave nil; otherwise allocate.
	if t.Kind() == reflect.Pointer {
		if v.IsNull() {
			rv.SetZero()
			return nil
		}
		ptr := reflect.New(t.Elem())
		if err := decodeValue(v, ptr.Elem(), typ, field); err != nil {
			return err
		}
		rv.Set(ptr)
		return nil
	}

	// Free-form values are deep-copied, never aliased.
	if t == anyValueType {
		rv.Set(reflect.ValueOf(v.Clone()))
		return nil
	}

	// Self-decoding unions.
	if rv.CanAddr() {
		if dec, ok := rv.Addr().Interface().(AnyDecoder); ok {
			if err := dec.DecodeAny(v); err != nil {
				return &DecodeError{Type: typ, Field: field, Reason: err.Error()}
			}
			return nil
		}
	}

	// Recursive unions registered in union.go.
	if h, ok := unionHandlers[t]; ok {
		if err := h.decode(v, rv); err != nil {
			return wrapDecode(err, typ, field)
		}
		return nil
	}

	// boolean | options unions.
	if _, ok := rv.Interface().(boolOrUnion); ok {
		return decodeBoolOr(v, rv, typ, field)
	}

	switch t.Kind() {
	case reflect.Bool:
		b, ok := v.AsBool()
		if !ok {
			return wrongKind(typ, field, "boolean", v.Kind())
		}
		rv.SetBool(b)
		return nil

	case reflect.String:
		s, ok := v.AsString()
		if !ok {
			return wrongKind(typ, field, "string", v.Kind())
		}
		rv.SetString(s)
		return validateEnum(rv, typ, field)

	case reflect.Int32, reflect.Int, reflect.Int64:
		i, err := AsInt(v)
		if err != nil {
			return &DecodeError{Type: typ, Field: field, Reason: err.Error()}
		}
		rv.SetInt(int64(i))
		return validateEnum(rv, typ, field)

	case reflect.Uint32, reflect.Uint, reflect.Uint64:
		u, err := AsUint(v)
		if err != nil {
			return &DecodeError{Type: typ, Field: field, Reason: err.Error()}
		}
		rv.SetUint(uint64(u))
		return validateEnum(rv, typ, field)

	case reflect.Float64:
		f, err := AsFloat(v)
		if err != nil {
			return &DecodeError{Type: typ, Field: field, Reason: err.Error()}
		}
		rv.SetFloat(f)
		return nil

	case reflect.Slice:
		arr, ok := v.AsArray()
		if !ok {
			return wrongKind(typ, field, "array", v.Kind())
		}
		out := reflect.MakeSlice(t, len(arr), len(arr))
		for i, elem := range arr {
			if err := decodeValue(elem, out.Index(i), typ, fmt.Sprintf("%s[%d]", field, i)); err != nil {
				return err
			}
		}
		rv.Set(out)
		return nil

	case reflect.Array:
		arr, ok := v.AsArray()
		if !ok {
			return wrongKind(typ, field, "array", v.Kind())
		}
		if len(arr) != t.Len() {
			return &DecodeError{Type: typ, Field: field,
				Reason: fmt.Sprintf("expected %d elements, received %d", t.Len(), len(arr))}
		}
		for i, elem := range arr {
			if err := decodeValue(elem, rv.Index(i), typ, fmt.Sprintf("%s[%d]", field, i)); err != nil {
				return err
			}
		}
		return nil

	case reflect.Map:
		if v.Kind() != anyval.KindObject {
			return wrongKind(typ, field, "object", v.Kind())
		}
		if t.Key().Kind() != reflect.String {
			return fmt.Errorf("%w: map key %s", ErrUnsupportedType, t.Key())
		}
		out := reflect.MakeMapWithSize(t, v.Len())
		for _, key := range v.Keys() {
			val, _ := v.Get(key)
			mv := reflect.New(t.Elem()).Elem()
			if err := decodeValue(val, mv, typ, fmt.Sprintf("%s[%s]", field, key)); err != nil {
				return err
			}
			mk := reflect.New(t.Key()).Elem()
			mk.SetString(key)
			out.SetMapIndex(mk, mv)
		}
		rv.Set(out)
		return nil

	case reflect.Struct:
		return decodeStruct(v, rv)

	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedType, t)
	}
}

func decodeStruct(v anyval.Value, rv reflect.Value) error {
	typ := typeName(rv.Type())
	if v.Kind() != anyval.KindObject {
		return wrongKind(typ, "", "object", v.Kind())
	}
	return decodeStructFields(v, rv, typ)
}

// decodeStructFields flattens embedded structs the way encoding/json does.
func decodeStructFields(v anyval.Value, rv reflect.Value, typ string) error {
	t := rv.Type()
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		if !sf.IsExported() {
			continue
		}
		if sf.Anonymous && sf.Type.Kind() == reflect.Struct && jsonTagName(sf) == "" {
			if err := decodeStructFields(v, rv.Field(i), typ); err != nil {
				return err
			}
			continue
		}
		name := jsonTagName(sf)
		if name == "-" {
			continue
		}
		if name == "" {
			name = sf.Name
		}
		fieldVal, present := v.Get(name)
		if !present {
			if fieldRequired(sf) {
				return missingField(typ, name)
			}
			continue
		}
		if fieldVal.IsNull() && !fieldRequired(sf) {
			continue
		}
		if err := decodeValue(fieldVal, rv.Field(i), typ, name); err != nil {
			return err
		}
	}
	return nil
}

func decodeBoolOr(v anyval.Value, rv reflect.Value, typ, field string) error {
	if b, ok := v.AsBool(); ok {
		bp := reflect.New(reflect.TypeOf(true))
		bp.Elem().SetBool(b)
		rv.FieldByName("Bool").Set(bp)
		return nil
	}
	valField := rv.FieldByName("Value")
	ptr := reflect.New(valField.Type().Elem())
	if err := decodeValue(v, ptr.Elem(), typ, field); err != nil {
		return err
	}
	valField.Set(ptr)
	return nil
}

func validateEnum(rv reflect.Value, typ, field string) error {
	val, ok := rv.Interface().(Validator)
	if !ok {
		return nil
	}
	if !val.Valid() {
		return &DecodeError{
			Type:   typ,
			Field:  field,
			Reason: fmt.Sprintf("value %v is not a defined %s", rv.Interface(), typeName(rv.Type())),
		}
	}
	return nil
}

func jsonTagName(sf reflect.StructField) string {
	tag := sf.Tag.Get("json")
	if tag == "" {
		return ""
	}
	if idx := strings.IndexByte(tag, ','); idx >= 0 {
		return tag[:idx]
	}
	return tag
}

// fieldRequired reports whether absence of the field is a validation
// error: scalar non-pointer fields without omitempty are required.
func fieldRequired(sf reflect.StructField) bool {
	switch sf.Type.Kind() {
	case reflect.Pointer, reflect.Slice, reflect.Map:
		return false
	}
	if sf.Type == anyValueType {
		return false
	}
	return !strings.Contains(sf.Tag.Get("json"), ",omitempty")
}

func wrapDecode(err error, typ, field string) error {
	if _, ok := err.(*DecodeError); ok {
		return err
	}
	return &DecodeError{Type: typ, Field: field, Reason: err.Error()}
}
