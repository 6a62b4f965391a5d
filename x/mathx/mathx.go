package mathx

import "golang.org/x/exp/constraints"

// Next returns (i+1) mod n. n must be positive.
func Next[T constraints.Integer](i, n T) T {
	return (i + 1) % n
}

// Prev returns i-1, wrapping from 0 to n-1. n must be positive.
func Prev[T constraints.Integer](i, n T) T {
	if i == 0 {
		return n - 1
	}
	return i - 1
}

// StrictlyBetween reports lo < v && v < hi.
func StrictlyBetween[T constraints.Ordered](v, lo, hi T) bool {
	return lo < v && v < hi
}

// Or returns v, or def when v is the zero value.
func Or[T constraints.Integer | constraints.Float](v, def T) T {
	if v == 0 {
		return def
	}
	return v
}
