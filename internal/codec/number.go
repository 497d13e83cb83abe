package codec

import (
	"fmt"
	"math"

	"github.com/dshills/lspcore/internal/anyval"
)

// AsInt projects a numeric value onto int32. Accepted: Int; Uint within
// int32 range; Float iff floor(x) == x and in range. Everything else
// fails with a message naming the precision or range problem.
func AsInt(v anyval.Value) (int32, error) {
	switch v.Kind() {
	case anyval.KindInt:
		i, _ := v.AsInt()
		return i, nil
	case anyval.KindUint:
		u, _ := v.AsUint()
		if u > math.MaxInt32 {
			return 0, fmt.Errorf("unsigned integer %d overflows integer range", u)
		}
		return int32(u), nil
	case anyval.KindFloat:
		f, _ := v.AsFloat()
		if f != math.Trunc(f) {
			return 0, fmt.Errorf("float %v has a fractional part, cannot narrow to integer", f)
		}
		if f < math.MinInt32 || f > math.MaxInt32 {
			return 0, fmt.Errorf("float %v is outside integer range", f)
		}
		return int32(f), nil
	default:
		return 0, fmt.Errorf("expected integer, received %s", v.Kind())
	}
}

// AsUint projects a numeric value onto uint32. Accepted: Uint; Int >= 0;
// Float iff a non-negative integral value.
func AsUint(v anyval.Value) (uint32, error) {
	switch v.Kind() {
	case anyval.KindUint:
		u, _ := v.AsUint()
		return u, nil
	case anyval.KindInt:
		i, _ := v.AsInt()
		if i < 0 {
			return 0, fmt.Errorf("integer %d is negative, cannot narrow to unsigned integer", i)
		}
		return uint32(i), nil
	case anyval.KindFloat:
		f, _ := v.AsFloat()
		if f != math.Trunc(f) {
			return 0, fmt.Errorf("float %v has a fractional part, cannot narrow to unsigned integer", f)
		}
		if f < 0 || f > math.MaxUint32 {
			return 0, fmt.Errorf("float %v is outside unsigned integer range", f)
		}
		return uint32(f), nil
	default:
		return 0, fmt.Errorf("expected unsigned integer, received %s", v.Kind())
	}
}

// AsFloat projects any numeric value onto float64.
func AsFloat(v anyval.Value) (float64, error) {
	switch v.Kind() {
	case anyval.KindFloat:
		f, _ := v.AsFloat()
		return f, nil
	case anyval.KindInt:
		i, _ := v.AsInt()
		return float64(i), nil
	case anyval.KindUint:
		u, _ := v.AsUint()
		return float64(u), nil
	default:
		return 0, fmt.Errorf("expected number, received %s", v.Kind())
	}
}
