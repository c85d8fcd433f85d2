package functions

// Chain composes two transforms left to right: the returned transform
// applies f1 and feeds its output to f2. Composition is associative, so
// longer pipelines are built by chaining chains in whatever grouping reads
// best; each stage costs one indirect call and nothing else. The compiler
// monomorphizes every instantiation, so a chain ending in an int or float
// stage is exactly as cheap as one ending in a pointer stage.
//
// Chain : (A -> B, B -> C) -> (A -> C).
func Chain[A, B, C any](f1 Func[A, B], f2 Func[B, C]) Func[A, C] {
	return func(a A) C {
		return f2(f1(a))
	}
}

// ChainErr composes two fallible transforms left to right, stopping at the
// first error. The second stage never runs when the first refuses its
// input. Errors pass through unwrapped, so callers can still match them
// with errors.Is.
//
// ChainErr : (A -> (B, error), B -> (C, error)) -> (A -> (C, error)).
func ChainErr[A, B, C any](f1 ErrFunc[A, B], f2 ErrFunc[B, C]) ErrFunc[A, C] {
	return func(a A) (C, error) {
		b, err := f1(a)
		if err != nil {
			var zero C
			return zero, err
		}

		return f2(b)
	}
}
