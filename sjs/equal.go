package sjs

import "reflect"

// identical is the default equality used by data and value nodes. Comparable
// values compare with ==, everything else falls back to reflect.DeepEqual.
func identical[T any](a, b T) bool {
	x, y := any(a), any(b)
	if isComparable(x) && isComparable(y) {
		return x == y
	}
	return reflect.DeepEqual(x, y)
}

func isComparable(v any) bool {
	if v == nil {
		return true
	}
	return reflect.ValueOf(v).Comparable()
}
