package functions

import (
	"errors"
	"fmt"
)

// ErrFunc is a transform that can refuse its input. The error return makes
// the failure part of the signature; Must bridges into the panic world for
// call sites that can rule the failure out, and Attempt bridges back.
//
// ErrFunc : T -> (V, error).
type ErrFunc[T, V any] func(T) (V, error)

// ErrTransformFailed marks failures re-raised by Must and panics captured by
// Attempt. Recover sites can match it with errors.Is alongside the original
// cause.
var ErrTransformFailed = errors.New("transform failed")

// Must converts a fallible transform into one that panics instead of
// returning an error. The panic value is an error wrapping both
// ErrTransformFailed and the original failure, so a recover site can
// identify the source with errors.Is on either. Panics raised inside f
// itself propagate unchanged. This is the one place in the package where a
// declared failure becomes an undeclared one, so reserve it for inputs
// already known to be well formed.
func Must[T, V any](f ErrFunc[T, V]) Func[T, V] {
	return func(t T) V {
		v, err := f(t)
		if err != nil {
			panic(fmt.Errorf("%w: %w", ErrTransformFailed, err))
		}

		return v
	}
}

// Attempt is the inverse of Must: it converts a panicking transform into a
// fallible one. A panic carrying an error is returned as that error; any
// other panic value is formatted into an error wrapping ErrTransformFailed.
// Panics are only translated, never swallowed silently: the error always
// carries the original payload.
func Attempt[T, V any](f Func[T, V]) ErrFunc[T, V] {
	return func(t T) (v V, err error) {
		defer func() {
			r := recover()
			if r == nil {
				return
			}

			if e, ok := r.(error); ok {
				err = e
				return
			}

			err = fmt.Errorf("%w: %v", ErrTransformFailed, r)
		}()

		return f(t), nil
	}
}
