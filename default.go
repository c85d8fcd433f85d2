package functions

// WithDefault wraps f and substitutes def exactly when f produces the zero
// value of its result type. The input always reaches f; only an absent
// result is replaced, and def itself may legitimately be the zero value.
// Use ZeroSafe to guard the input side instead.
//
// WithDefault : (T -> V, V) -> (T -> V).
func WithDefault[T any, V comparable](f Func[T, V], def V) Func[T, V] {
	return func(t T) V {
		var zero V
		if v := f(t); v != zero {
			return v
		}

		return def
	}
}

// ZeroSafe wraps f and returns sub when the input is the zero value of its
// argument type, bypassing f entirely. An absent input and an absent result
// are different conditions: only the former short-circuits here, and a
// present input producing a zero result passes through untouched.
//
// ZeroSafe : (T -> V, V) -> (T -> V).
func ZeroSafe[T comparable, V any](f Func[T, V], sub V) Func[T, V] {
	return func(t T) V {
		var zero T
		if t == zero {
			return sub
		}

		return f(t)
	}
}
