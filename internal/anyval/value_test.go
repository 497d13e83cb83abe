package anyval

import "testing"

func TestObject_LastWriteWins(t *testing.T) {
	obj := NewObject()
	if err := obj.Set("a", Int(1)); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	if err := obj.Set("b", Int(2)); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	if err := obj.Set("a", Int(3)); err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	got, ok := obj.Get("a")
	if !ok {
		t.Fatal("Get(a) not found")
	}
	if i, _ := got.AsInt(); i != 3 {
		t.Errorf("Get(a) = %d, want 3", i)
	}

	keys := obj.Keys()
	if len(keys) != 2 || keys[0] != "a" || keys[1] != "b" {
		t.Errorf("Keys() = %v, want [a b]", keys)
	}
}

func TestClone_Independence(t *testing.T) {
	inner := NewObject()
	inner.Set("x", Int(1))
	orig := NewObject()
	orig.Set("nested", inner)
	orig.Set("list", Array(String("a")))

	clone := orig.Clone()

	// Mutate the clone; the original must not change.
	nested, _ := clone.Get("nested")
	nested.Set("x", Int(99))

	origNested, _ := orig.Get("nested")
	x, _ := origNested.Get("x")
	if i, _ := x.AsInt(); i != 1 {
		t.Errorf("original mutated through clone: x = %d, want 1", i)
	}
}

func TestEqual(t *testing.T) {
	a := NewObject()
	a.Set("k1", Int(1))
	a.Set("k2", String("v"))

	b := NewObject()
	b.Set("k2", String("v"))
	b.Set("k1", Int(1))

	tests := []struct {
		name string
		x, y Value
		want bool
	}{
		{"objects ignore key order", a, b, true},
		{"int equals uint of same value", Int(3), Uint(3), true},
		{"int equals integral float", Int(3), Float(3.0), true},
		{"int not equal other int", Int(3), Int(4), false},
		{"null equals null", Null(), Null(), true},
		{"null not bool", Null(), Bool(false), false},
		{"arrays ordered", Array(Int(1), Int(2)), Array(Int(2), Int(1)), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Equal(tt.x, tt.y); got != tt.want {
				t.Errorf("Equal() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFromNumber(t *testing.T) {
	tests := []struct {
		in   float64
		want Kind
	}{
		{3, KindInt},
		{-3, KindInt},
		{2147483648, KindUint},
		{4294967295, KindUint},
		{4294967296, KindFloat},
		{3.5, KindFloat},
	}
	for _, tt := range tests {
		if got := FromNumber(tt.in).Kind(); got != tt.want {
			t.Errorf("FromNumber(%v).Kind() = %v, want %v", tt.in, got, tt.want)
		}
	}
}
