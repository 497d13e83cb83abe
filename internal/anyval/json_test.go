package anyval

import (
	"errors"
	"testing"
)

func TestDecodeJSON_NumberFidelity(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want Kind
	}{
		{"small int", `3`, KindInt},
		{"negative int", `-7`, KindInt},
		{"above int32", `2147483648`, KindUint},
		{"max uint32", `4294967295`, KindUint},
		{"above uint32", `4294967296`, KindFloat},
		{"fraction", `3.5`, KindFloat},
		{"exponent", `1e3`, KindFloat},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := DecodeJSON([]byte(tt.in))
			if err != nil {
				t.Fatalf("DecodeJSON() error = %v", err)
			}
			if v.Kind() != tt.want {
				t.Errorf("Kind() = %v, want %v", v.Kind(), tt.want)
			}
		})
	}
}

func TestDecodeJSON_KeyOrder(t *testing.T) {
	v, err := DecodeJSON([]byte(`{"z":1,"a":2,"m":{"q":[1,2,3]}}`))
	if err != nil {
		t.Fatalf("DecodeJSON() error = %v", err)
	}
	keys := v.Keys()
	if len(keys) != 3 || keys[0] != "z" || keys[1] != "a" || keys[2] != "m" {
		t.Errorf("Keys() = %v, want [z a m]", keys)
	}
}

func TestDecodeJSON_DuplicateKeys(t *testing.T) {
	v, err := DecodeJSON([]byte(`{"a":1,"a":2}`))
	if err != nil {
		t.Fatalf("DecodeJSON() error = %v", err)
	}
	got, _ := v.Get("a")
	if i, _ := got.AsInt(); i != 2 {
		t.Errorf("duplicate key a = %d, want last write 2", i)
	}
	if v.Len() != 1 {
		t.Errorf("Len() = %d, want 1", v.Len())
	}
}

func TestDecodeJSON_Errors(t *testing.T) {
	if _, err := DecodeJSON([]byte(`{"a":`)); err == nil {
		t.Error("truncated JSON did not error")
	}
	if _, err := DecodeJSON([]byte(`{} {}`)); !errors.Is(err, ErrTrailingData) {
		t.Errorf("trailing data error = %v, want ErrTrailingData", err)
	}
}

func TestEncodeJSON_RoundTrip(t *testing.T) {
	inputs := []string{
		`null`,
		`true`,
		`-42`,
		`3000000000`,
		`"héllo\nworld"`,
		`[1,"two",null,{"k":false}]`,
		`{"jsonrpc":"2.0","id":1,"method":"initialize","params":{"processId":null,"capabilities":{}}}`,
	}
	for _, in := range inputs {
		v, err := DecodeJSON([]byte(in))
		if err != nil {
			t.Fatalf("DecodeJSON(%s) error = %v", in, err)
		}
		data, err := EncodeJSON(v)
		if err != nil {
			t.Fatalf("EncodeJSON(%s) error = %v", in, err)
		}
		back, err := DecodeJSON(data)
		if err != nil {
			t.Fatalf("re-DecodeJSON(%s) error = %v", data, err)
		}
		if !Equal(v, back) {
			t.Errorf("round trip of %s changed value: %s", in, data)
		}
	}
}

func TestEncodeJSON_FloatKeepsPoint(t *testing.T) {
	data, err := EncodeJSON(Float(3))
	if err != nil {
		t.Fatalf("EncodeJSON() error = %v", err)
	}
	if string(data) != "3.0" {
		t.Errorf("EncodeJSON(Float(3)) = %s, want 3.0", data)
	}
}
