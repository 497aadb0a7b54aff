package optparse

import (
	"reflect"
	"strconv"
)

// Scalar is the set of kinds the conversion helpers know how to produce from
// argument text. Named types whose underlying type is one of these work too.
type Scalar interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64 | ~string
}

// Convert produces a T from raw argument text. Integers are parsed with base
// detection, so "0x1f" and "0755" mean what they look like; floats accept
// anything strconv.ParseFloat does; strings pass through untouched.
//
// Malformed input is not an error. The value strconv produced is used as is:
// unparseable text yields zero, an out-of-range number yields the nearest
// representable value, and a result wider than T is truncated by conversion.
// Callbacks that need to reject bad input should parse the text themselves.
func Convert[T Scalar](s string) T {
	var v T
	rv := reflect.ValueOf(&v).Elem()
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, _ := strconv.ParseInt(s, 0, 64)
		rv.Set(reflect.ValueOf(n).Convert(rv.Type()))
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		n, _ := strconv.ParseUint(s, 0, 64)
		rv.Set(reflect.ValueOf(n).Convert(rv.Type()))
	case reflect.Float32, reflect.Float64:
		f, _ := strconv.ParseFloat(s, 64)
		rv.Set(reflect.ValueOf(f).Convert(rv.Type()))
	default:
		rv.Set(reflect.ValueOf(s).Convert(rv.Type()))
	}
	return v
}

// Set returns a handler that converts the flag's argument with [Convert] and
// stores the result through p. It never fails; see Convert for how malformed
// input is handled.
func Set[T Scalar](p *T) Handler {
	return func(value string) error {
		*p = Convert[T](value)
		return nil
	}
}

// Append returns a handler that converts the flag's argument with [Convert]
// and appends the result to the slice p points to, so repeating the flag
// collects every occurrence.
func Append[T Scalar](p *[]T) Handler {
	return func(value string) error {
		*p = append(*p, Convert[T](value))
		return nil
	}
}

// Store returns a callback for [Flags.AddSwitch] that assigns the fixed value
// v through p when the switch is matched.
func Store[T any](p *T, v T) func() error {
	return func() error {
		*p = v
		return nil
	}
}
