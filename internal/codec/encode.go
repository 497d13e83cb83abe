package codec

import (
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/dshills/lspcore/internal/anyval"
)

// Encode serializes a typed value into a dynamic tree. Nil pointers and
// absent optional fields are omitted; anyval.Value fields are deep-copied
// out so the result shares no structure with in.
func Encode(in any) (anyval.Value, error) {
	if in == nil {
		return anyval.Null(), nil
	}
	return encodeValue(reflect.ValueOf(in))
}

// ToObject serializes a typed struct and reports an error if the result
// is not an object, which message params must be.
func ToObject(in any) (anyval.Value, error) {
	v, err := Encode(in)
	if err != nil {
		return anyval.Value{}, err
	}
	if v.Kind() != anyval.KindObject {
		return anyval.Value{}, fmt.Errorf("codec: %s encodes to %s, not object", typeName(reflect.TypeOf(in)), v.Kind())
	}
	return v, nil
}

func encodeValue(rv reflect.Value) (anyval.Value, error) {
	t := rv.Type()

	if t.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return anyval.Null(), nil
		}
		return encodeValue(rv.Elem())
	}

	if t == anyValueType {
		return rv.Interface().(anyval.Value).Clone(), nil
	}

	if enc, ok := rv.Interface().(AnyEncoder); ok {
		return enc.EncodeAny()
	}

	if h, ok := unionHandlers[t]; ok {
		return h.encode(rv)
	}

	if _, ok := rv.Interface().(boolOrUnion); ok {
		return encodeBoolOr(rv)
	}

	switch t.Kind() {
	case reflect.Bool:
		return anyval.Bool(rv.Bool()), nil
	case reflect.String:
		return anyval.String(rv.String()), nil
	case reflect.Int, reflect.Int32, reflect.Int64:
		return anyval.Int(int32(rv.Int())), nil
	case reflect.Uint, reflect.Uint32, reflect.Uint64:
		return anyval.Uint(uint32(rv.Uint())), nil
	case reflect.Float64:
		return anyval.FromNumber(rv.Float()), nil
	case reflect.Slice, reflect.Array:
		arr := anyval.Array()
		for i := 0; i < rv.Len(); i++ {
			elem, err := encodeValue(rv.Index(i))
			if err != nil {
				return anyval.Value{}, err
			}
			arr, _ = arr.Append(elem)
		}
		return arr, nil
	case reflect.Map:
		obj := anyval.NewObject()
		keys := rv.MapKeys()
		// Deterministic output: sort string keys.
		sorted := make([]string, len(keys))
		for i, k := range keys {
			sorted[i] = k.String()
		}
		sort.Strings(sorted)
		for _, ks := range sorted {
			mk := reflect.New(t.Key()).Elem()
			mk.SetString(ks)
			val, err := encodeValue(rv.MapIndex(mk))
			if err != nil {
				return anyval.Value{}, err
			}
			obj.Set(ks, val) //nolint:errcheck
		}
		return obj, nil
	case reflect.Struct:
		obj := anyval.NewObject()
		if err := encodeStructFields(rv, obj); err != nil {
			return anyval.Value{}, err
		}
		return obj, nil
	default:
		return anyval.Value{}, fmt.Errorf("%w: %s", ErrUnsupportedType, t)
	}
}

func encodeStructFields(rv reflect.Value, obj anyval.Value) error {
	t := rv.Type()
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		if !sf.IsExported() {
			continue
		}
		fv := rv.Field(i)
		if sf.Anonymous && sf.Type.Kind() == reflect.Struct && jsonTagName(sf) == "" {
			if err := encodeStructFields(fv, obj); err != nil {
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
		if omitField(sf, fv) {
			continue
		}
		val, err := encodeValue(fv)
		if err != nil {
			return err
		}
		obj.Set(name, val) //nolint:errcheck
	}
	return nil
}

// omitField reports whether an absent optional should be skipped: nil
// pointers always, empty slices/maps and null anyval with omitempty.
func omitField(sf reflect.StructField, fv reflect.Value) bool {
	omitempty := strings.Contains(sf.Tag.Get("json"), ",omitempty")
	switch fv.Kind() {
	case reflect.Pointer:
		return fv.IsNil()
	case reflect.Slice, reflect.Map:
		return omitempty && fv.Len() == 0
	}
	if fv.Type() == anyValueType {
		return omitempty && fv.Interface().(anyval.Value).IsNull()
	}
	return false
}

func encodeBoolOr(rv reflect.Value) (anyval.Value, error) {
	boolField := rv.FieldByName("Bool")
	if !boolField.IsNil() {
		return anyval.Bool(boolField.Elem().Bool()), nil
	}
	valField := rv.FieldByName("Value")
	if valField.IsNil() {
		return anyval.Value{}, fmt.Errorf("codec: %s: no variant set", typeName(rv.Type()))
	}
	return encodeValue(valField.Elem())
}
