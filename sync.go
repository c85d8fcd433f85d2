package functions

import "sync"

// valueLock is one entry in a lock table: a mutex plus the number of callers
// currently holding or waiting on it. The count lets the table drop entries
// as soon as the last interested caller leaves, instead of growing with
// every distinct input ever seen.
type valueLock struct {
	mu   sync.Mutex
	refs int
}

// lockTable hands out one mutex per distinct key. acquire and release pair
// around a delegate call; the entry disappears from the table when the last
// holder releases it.
type lockTable[K comparable] struct {
	// mu guards the locks map. It is never held while blocking on an
	// entry's mutex, so contention on one key cannot stall acquisition
	// of another.
	mu    sync.Mutex
	locks map[K]*valueLock
}

func newLockTable[K comparable]() *lockTable[K] {
	return &lockTable[K]{
		locks: make(map[K]*valueLock),
	}
}

// acquire registers interest in key's lock and then blocks until it is held.
// The ref count is bumped under the table mutex, before blocking, so release
// can never reap an entry a waiter has already found.
func (t *lockTable[K]) acquire(key K) *valueLock {
	t.mu.Lock()
	l, ok := t.locks[key]
	if !ok {
		l = &valueLock{}
		t.locks[key] = l
	}
	l.refs++
	t.mu.Unlock()

	l.mu.Lock()

	return l
}

// release unlocks key's lock and drops the table entry if no other caller
// holds or awaits it.
func (t *lockTable[K]) release(key K, l *valueLock) {
	l.mu.Unlock()

	t.mu.Lock()
	l.refs--
	if l.refs == 0 {
		delete(t.locks, key)
	}
	t.mu.Unlock()
}

// Synchronized wraps f so that invocations with equal inputs are mutually
// exclusive while invocations with different inputs proceed independently.
// Go has no per-object monitor, so the wrapper keys a private lock table on
// the input value itself; equality of inputs, not identity of lock objects,
// is what serializes callers. The lock is released on every exit path,
// including a panic out of f, and the table entry is reclaimed once the last
// caller for that input leaves.
//
// Each Synchronized call builds its own table: two wrappers around the same
// f do not exclude each other.
func Synchronized[T comparable, V any](f Func[T, V]) Func[T, V] {
	table := newLockTable[T]()

	return func(t T) V {
		l := table.acquire(t)
		defer table.release(t, l)

		return f(t)
	}
}
