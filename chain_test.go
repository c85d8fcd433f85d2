package functions

import (
	"errors"
	"math"
	"strconv"
	"testing"
	"testing/quick"

	"github.com/stretchr/testify/require"
)

func TestChain(t *testing.T) {
	double := func(n int) int { return n * 2 }
	toHex := func(n int) string { return strconv.FormatInt(int64(n), 16) }

	f := Chain(double, toHex)
	require.Equal(t, "1e", f(15))

	prop := func(n int16) bool {
		return f(int(n)) == toHex(double(int(n)))
	}
	require.NoError(t, quick.Check(prop, nil))
}

// TestChainAssociative pins that grouping does not matter: chaining a chain
// gives the same transform either way.
func TestChainAssociative(t *testing.T) {
	inc := func(n int) int { return n + 3 }
	dbl := func(n int) int { return n * 2 }
	neg := func(n int) int { return -n }

	left := Chain(Chain(inc, dbl), neg)
	right := Chain(inc, Chain(dbl, neg))

	prop := func(n int) bool {
		return left(n) == right(n)
	}
	require.NoError(t, quick.Check(prop, nil))
}

func TestChainMixedTypes(t *testing.T) {
	parseTrimmed := Chain(TrimString(), Must(ParseInt()))

	require.Equal(t, 7, parseTrimmed("  7\n"))
	require.Equal(t, 49, Chain(parseTrimmed, Squared[int]())(" 7 "))
}

func TestChainIntoPrimitive(t *testing.T) {
	strlen := func(s string) int { return len(s) }

	require.Equal(t, 16, Chain(strlen, Squared[int]())("abcd"))
	require.InDelta(t, math.Sin(4), Chain(strlen, Sine[int]())("abcd"), 1e-12)
}

func TestChainErr(t *testing.T) {
	errOdd := errors.New("odd")
	half := func(n int) (int, error) {
		if n%2 != 0 {
			return 0, errOdd
		}
		return n / 2, nil
	}

	f := ChainErr(ParseInt(), half)

	n, err := f("10")
	require.NoError(t, err)
	require.Equal(t, 5, n)

	_, err = f("11")
	require.ErrorIs(t, err, errOdd)

	_, err = f("nope")
	require.ErrorIs(t, err, strconv.ErrSyntax)
}

// TestChainErrShortCircuits pins that the second stage never runs once the
// first has refused its input.
func TestChainErrShortCircuits(t *testing.T) {
	errBoom := errors.New("boom")

	secondCalls := 0
	first := func(string) (int, error) { return 0, errBoom }
	second := func(n int) (int, error) {
		secondCalls++
		return n, nil
	}

	_, err := ChainErr(first, second)("in")
	require.ErrorIs(t, err, errBoom)
	require.Zero(t, secondCalls)
}
