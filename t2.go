package functions

// T2 is the simplest 2-tuple type. It captures an ad hoc conjunction of two
// values so that a single transform can carry both.
type T2[A, B any] struct {
	first  A
	second B
}

// NewT2 is the canonical constructor for a T2. It exists because the fields
// themselves are unexported.
func NewT2[A, B any](a A, b B) T2[A, B] {
	return T2[A, B]{
		first:  a,
		second: b,
	}
}

// First returns the first value in the T2.
func (t2 T2[A, B]) First() A {
	return t2.first
}

// Second returns the second value in the T2.
func (t2 T2[A, B]) Second() B {
	return t2.second
}

// Unpack ejects the 2-tuple's members into the multiple return values that
// are customary in go idiom.
func (t2 T2[A, B]) Unpack() (A, B) {
	return t2.first, t2.second
}

// Swap returns the mirrored tuple. Swapping twice is the identity.
func (t2 T2[A, B]) Swap() T2[B, A] {
	return T2[B, A]{
		first:  t2.second,
		second: t2.first,
	}
}

// PairOf takes two transforms that share the same argument type, runs both
// over one input and pairs their results.
//
// PairOf : (A -> B, A -> C) -> (A -> T2[B, C]).
func PairOf[A, B, C any](f Func[A, B], g Func[A, C]) Func[A, T2[B, C]] {
	return func(a A) T2[B, C] {
		return NewT2(f(a), g(a))
	}
}

// FirstOfPair returns a transform extracting the first element of a tuple.
func FirstOfPair[A, B any]() Func[T2[A, B], A] {
	return func(t2 T2[A, B]) A {
		return t2.first
	}
}

// SecondOfPair returns a transform extracting the second element of a tuple.
func SecondOfPair[A, B any]() Func[T2[A, B], B] {
	return func(t2 T2[A, B]) B {
		return t2.second
	}
}

// SwappedPair returns a transform mirroring a tuple.
func SwappedPair[A, B any]() Func[T2[A, B], T2[B, A]] {
	return T2[A, B].Swap
}
