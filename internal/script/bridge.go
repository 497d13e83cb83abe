package script

import (
	"fmt"
	"math"

	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/lspcore/internal/anyval"
)

// toLua converts a dynamic value into its Lua representation. Objects
// become hash tables, arrays become sequences.
func toLua(L *lua.LState, v anyval.Value) lua.LValue {
	switch v.Kind() {
	case anyval.KindNull:
		return lua.LNil
	case anyval.KindBool:
		b, _ := v.AsBool()
		return lua.LBool(b)
	case anyval.KindInt:
		i, _ := v.AsInt()
		return lua.LNumber(i)
	case anyval.KindUint:
		u, _ := v.AsUint()
		return lua.LNumber(u)
	case anyval.KindFloat:
		f, _ := v.AsFloat()
		return lua.LNumber(f)
	case anyval.KindString:
		s, _ := v.AsString()
		return lua.LString(s)
	case anyval.KindArray:
		arr, _ := v.AsArray()
		table := L.CreateTable(len(arr), 0)
		for _, elem := range arr {
			table.Append(toLua(L, elem))
		}
		return table
	case anyval.KindObject:
		table := L.CreateTable(0, v.Len())
		for _, key := range v.Keys() {
			val, _ := v.Get(key)
			table.RawSetString(key, toLua(L, val))
		}
		return table
	default:
		return lua.LNil
	}
}

// fromLua converts a Lua value back into a dynamic value. Tables with
// only sequential integer keys starting at 1 become arrays; all other
// tables become objects with stringified keys.
func fromLua(lv lua.LValue) (anyval.Value, error) {
	switch v := lv.(type) {
	case *lua.LNilType, nil:
		return anyval.Null(), nil
	case lua.LBool:
		return anyval.Bool(bool(v)), nil
	case lua.LNumber:
		f := float64(v)
		if f == math.Trunc(f) {
			return anyval.FromNumber(f), nil
		}
		return anyval.Float(f), nil
	case lua.LString:
		return anyval.String(string(v)), nil
	case *lua.LTable:
		return tableToValue(v)
	default:
		return anyval.Value{}, fmt.Errorf("%w: %s", ErrBadReturn, lv.Type())
	}
}

func tableToValue(t *lua.LTable) (anyval.Value, error) {
	length := t.Len()
	isArray := length > 0
	var convErr error

	if isArray {
		// A sequence is an array only when no extra keys exist.
		count := 0
		t.ForEach(func(k, _ lua.LValue) {
			count++
			kn, ok := k.(lua.LNumber)
			if !ok || float64(kn) != math.Trunc(float64(kn)) || int(kn) < 1 || int(kn) > length {
				isArray = false
			}
		})
		if count != length {
			isArray = false
		}
	}

	if isArray {
		arr := anyval.Array()
		for i := 1; i <= length; i++ {
			elem, err := fromLua(t.RawGetInt(i))
			if err != nil {
				return anyval.Value{}, err
			}
			arr, _ = arr.Append(elem)
		}
		return arr, nil
	}

	obj := anyval.NewObject()
	t.ForEach(func(k, v lua.LValue) {
		if convErr != nil {
			return
		}
		key := ""
		switch kv := k.(type) {
		case lua.LString:
			key = string(kv)
		case lua.LNumber:
			key = kv.String()
		default:
			convErr = fmt.Errorf("%w: table key of type %s", ErrBadReturn, k.Type())
			return
		}
		val, err := fromLua(v)
		if err != nil {
			convErr = err
			return
		}
		obj.Set(key, val) //nolint:errcheck
	})
	if convErr != nil {
		return anyval.Value{}, convErr
	}
	return obj, nil
}
