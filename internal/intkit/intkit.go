// Package intkit converts dynamically typed integers to int.
package intkit

import (
	"math"
	"reflect"
)

// FromAny returns v as an int when v is of any integer kind and its value fits into an int.
func FromAny(v any) (int, bool) {
	if v == nil {
		return 0, false
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n := rv.Int()
		if n < math.MinInt || math.MaxInt < n {
			return 0, false
		}
		return int(n), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		n := rv.Uint()
		if math.MaxInt < n {
			return 0, false
		}
		return int(n), true
	default:
		return 0, false
	}
}
