package functions

// IfElse returns a total two-way branch: onTrue's result when the predicate
// holds, onFalse's otherwise. Only the chosen branch is evaluated.
//
// IfElse : (T -> bool, T -> V, T -> V) -> (T -> V).
func IfElse[T, V any](p Pred[T], onTrue, onFalse Func[T, V]) Func[T, V] {
	return func(t T) V {
		if p(t) {
			return onTrue(t)
		}

		return onFalse(t)
	}
}

// When returns a single-branch conditional: f's result when the predicate
// holds, the zero value of V otherwise. Callers that need a real value on
// the false branch want IfElse instead.
//
// When : (T -> bool, T -> V) -> (T -> V).
func When[T, V any](p Pred[T], f Func[T, V]) Func[T, V] {
	return func(t T) V {
		if p(t) {
			return f(t)
		}

		var zero V
		return zero
	}
}

// caseEntry is one guarded transform in a dispatch table.
type caseEntry[T, V any] struct {
	pred Pred[T]
	fn   Func[T, V]
}

// CaseBuilder assembles an ordered predicate dispatch table. Assembly is a
// single-goroutine affair; Build snapshots the table into an immutable
// dispatcher that is then safe to share.
type CaseBuilder[T, V any] struct {
	def   Func[T, V]
	cases []caseEntry[T, V]
}

// CaseDefault starts a dispatch table around the transform applied when no
// case matches.
func CaseDefault[T, V any](def Func[T, V]) *CaseBuilder[T, V] {
	return &CaseBuilder[T, V]{def: def}
}

// AddCase appends a guarded transform to the table and returns the builder
// for chaining. Earlier cases win: dispatch is first match, not best match,
// so overlapping predicates resolve by insertion order.
func (b *CaseBuilder[T, V]) AddCase(p Pred[T], f Func[T, V]) *CaseBuilder[T, V] {
	b.cases = append(b.cases, caseEntry[T, V]{pred: p, fn: f})
	return b
}

// Build freezes the current table into a dispatcher. The dispatcher probes
// predicates in insertion order and applies the transform of the first one
// that holds, falling back to the default when none do. Cases added to the
// builder after Build do not affect dispatchers already built.
func (b *CaseBuilder[T, V]) Build() Func[T, V] {
	table := make([]caseEntry[T, V], len(b.cases))
	copy(table, b.cases)
	def := b.def

	return func(t T) V {
		for _, c := range table {
			if c.pred(t) {
				return c.fn(t)
			}
		}

		return def(t)
	}
}
