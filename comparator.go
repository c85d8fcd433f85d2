package functions

import "golang.org/x/exp/constraints"

// Comparator is a three-way ordering: negative when a orders before b, zero
// when they tie, positive when a orders after b.
//
// Comparator : (T, T) -> int.
type Comparator[T any] func(a, b T) int

// ToComparator derives an ordering over T from a transform extracting an
// ordered sort key. One instantiation per key type covers every kind the
// compiler can order, integers through strings. The key transform runs twice
// per comparison, so keep it cheap or memoize outside.
func ToComparator[T any, R constraints.Ordered](f Func[T, R]) Comparator[T] {
	return func(a, b T) int {
		ka, kb := f(a), f(b)
		switch {
		case ka < kb:
			return -1

		case ka > kb:
			return 1

		default:
			return 0
		}
	}
}

// Reversed returns the inverted ordering. Ties stay ties.
func (c Comparator[T]) Reversed() Comparator[T] {
	return func(a, b T) int {
		return c(b, a)
	}
}
