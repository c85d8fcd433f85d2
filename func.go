// Package functions is a toolkit of reusable unary transforms. It provides
// factories for the trivial transforms (identity, constants, predicates),
// adapters that graft defaults, branching, selection, synchronization or
// error handling onto existing transforms, and combinators that compose
// transforms into pipelines. Everything here is wired once, up front: the
// returned closures hold no mutable state unless their doc comment says
// otherwise, and may be shared freely across goroutines.
package functions

import (
	"fmt"
	"reflect"
)

// Func is a unary transform from T to V. It is the common currency of this
// package: every factory below either returns a Func or wraps one.
//
// Func : T -> V.
type Func[T, V any] func(T) V

// Pred decides a property of its argument.
//
// Pred : T -> bool.
type Pred[T any] func(T) bool

// Proc is a unary consumer, invoked purely for its side effects.
type Proc[T any] func(T)

// IndexedProc is a consumer that also receives the position of the element
// it is handed.
type IndexedProc[T any] func(T, int)

// Proc2 is a two-argument consumer.
type Proc2[T, U any] func(T, U)

// Func2 is a binary operation. Bind fixes its second argument to recover a
// unary Func.
//
// Func2 : (T, P) -> R.
type Func2[T, P, R any] func(T, P) R

// Identity returns the pass-through transform. The input value comes back
// untouched, never copied, so for pointer and interface inputs the output is
// the very same reference.
//
// Identity : () -> (T -> T).
func Identity[T any]() Func[T, T] {
	return func(t T) T {
		return t
	}
}

// Constant returns a transform that ignores its input and always produces
// value. The value is captured once; callers handing over a pointer share
// whatever it points at with every invocation.
//
// Constant : V -> (T -> V).
func Constant[T, V any](value V) Func[T, V] {
	return func(T) V {
		return value
	}
}

// True returns a predicate-shaped transform mapping every input to true.
func True[T any]() Func[T, bool] {
	return Constant[T](true)
}

// False returns a predicate-shaped transform mapping every input to false.
func False[T any]() Func[T, bool] {
	return Constant[T](false)
}

// ToString returns a transform rendering any value in the default fmt
// format. It is total: a nil interface value renders as "<nil>" rather than
// failing.
func ToString[T any]() Func[T, string] {
	return func(t T) string {
		return fmt.Sprint(t)
	}
}

// TypeOf returns a transform reporting the dynamic type of its input. A nil
// interface value carries no type at all, so the transform panics when
// handed one.
func TypeOf[T any]() Func[T, reflect.Type] {
	return func(t T) reflect.Type {
		return reflect.ValueOf(t).Type()
	}
}

// Size returns a transform reporting the number of elements in a slice. A
// nil slice has size zero.
func Size[E any]() Func[[]E, int] {
	return func(s []E) int {
		return len(s)
	}
}
