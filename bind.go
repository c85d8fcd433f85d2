package functions

// Bind fixes the second argument of a binary operation, producing a unary
// transform: Bind(f, p)(t) == f(t, p). The parameter is captured once at
// bind time.
//
// Bind : ((T, P) -> R, P) -> (T -> R).
func Bind[T, P, R any](f Func2[T, P, R], param P) Func[T, R] {
	return func(t T) R {
		return f(t, param)
	}
}

// BindProc prepends a transform to a consumer: the returned consumer applies
// f to its input and hands the result to delegate.
//
// BindProc : (B -> (), A -> B) -> (A -> ()).
func BindProc[A, B any](delegate Proc[B], f Func[A, B]) Proc[A] {
	return func(a A) {
		delegate(f(a))
	}
}

// BindIndexed is BindProc for consumers that also receive an element index.
// Only the element is transformed; the index passes through untouched.
func BindIndexed[A, B any](delegate IndexedProc[B], f Func[A, B]) IndexedProc[A] {
	return func(a A, i int) {
		delegate(f(a), i)
	}
}

// BindProc2 transforms the first argument of a two-argument consumer and
// passes the second through untouched.
func BindProc2[A, B, C any](delegate Proc2[B, C], f Func[A, B]) Proc2[A, C] {
	return func(a A, c C) {
		delegate(f(a), c)
	}
}
