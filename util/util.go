package util

import (
	"golang.org/x/exp/constraints"
	"golang.org/x/exp/slices"
)

// GetKeys returns the keys of m in ascending order.
func GetKeys[A constraints.Ordered, B any](m map[A]B) []A {
	keys := make([]A, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// Mod is the floored modulo, so Mod(-1, 12) == 11.
func Mod[A constraints.Signed](a A, n A) A {
	res := a % n
	if res < 0 {
		res += n
	}
	return res
}

// FloorDiv rounds toward negative infinity.
func FloorDiv[A constraints.Signed](a A, n A) A {
	q := a / n
	if (a%n != 0) && ((a < 0) != (n < 0)) {
		q--
	}
	return q
}

func RotateLeft[A any](items []A, n int) []A {
	if len(items) == 0 {
		return items
	}
	n = Mod(n, len(items))
	res := make([]A, 0, len(items))
	res = append(res, items[n:]...)
	return append(res, items[:n]...)
}

func Clamp[A constraints.Integer](num A, lo A, hi A) A {
	return Max(lo, Min(num, hi))
}

func Min[A constraints.Integer](num1 A, num2 A) A {
	if num1 > num2 {
		return num2
	}
	return num1
}

func Max[A constraints.Integer](num1 A, num2 A) A {
	if num1 < num2 {
		return num2
	}
	return num1
}
