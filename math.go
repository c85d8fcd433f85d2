package functions

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Real is the constraint for types with a meaningful float64 image: the
// fixed-width integers and floats, but not the complex kinds.
type Real interface {
	constraints.Integer | constraints.Float
}

// Sine returns a transform computing the sine of any real-valued input,
// widening to float64 first.
func Sine[N Real]() Func[N, float64] {
	return func(n N) float64 {
		return math.Sin(float64(n))
	}
}

// Squared returns a transform multiplying an integer by itself. The result
// type never widens, so overflow wraps with the usual fixed-width
// semantics.
func Squared[N constraints.Integer]() Func[N, N] {
	return func(n N) N {
		return n * n
	}
}
