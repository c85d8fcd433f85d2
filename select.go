package functions

// FirstNonZero returns a transform that probes each candidate in order and
// yields the first result that is not the zero value of V. Candidates after
// the winning one are never evaluated. When every candidate misses the zero
// value itself is returned, indistinguishable from a final candidate that
// produced it.
//
// FirstNonZero : [T -> V] -> (T -> V).
func FirstNonZero[T any, V comparable](candidates ...Func[T, V]) Func[T, V] {
	return func(t T) V {
		var zero V
		for _, f := range candidates {
			if v := f(t); v != zero {
				return v
			}
		}

		return zero
	}
}

// FirstNonEmptyString selects by emptiness instead of zeroness: the first
// candidate producing a string with at least one byte wins. Probing stops at
// the winner.
func FirstNonEmptyString[T any](candidates ...Func[T, string]) Func[T, string] {
	return func(t T) string {
		for _, f := range candidates {
			if s := f(t); len(s) > 0 {
				return s
			}
		}

		return ""
	}
}

// FirstNonEmptySlice returns the first candidate result holding at least one
// element. A nil slice counts as empty, and a miss across the board comes
// back as nil.
func FirstNonEmptySlice[T, E any](candidates ...Func[T, []E]) Func[T, []E] {
	return func(t T) []E {
		for _, f := range candidates {
			if s := f(t); len(s) > 0 {
				return s
			}
		}

		return nil
	}
}
