package pcmi

import "sync"

// Iterator is a lazy, pull-style sequence of decoded records, modeled
// on database/sql.Rows: call Next to advance, Value to read the
// current item, and Err after Next returns false to distinguish a
// clean end from a failure. Closing an iterator before it is drained
// sends PCMI_BREAK to abandon the in-progress download rather than
// leaving the controller waiting on a record it will never ask for
// again (spec.md §5, session abandonment).
type Iterator[T any] struct {
	mu      sync.Mutex
	next    func() (T, bool, error)
	closeFn func() error
	cur     T
	err     error
	closed  bool
}

// newIterator builds an Iterator from a next function that produces
// the next item (or reports end-of-sequence / error) and a close
// function invoked at most once, whether the sequence was drained or
// abandoned early.
func newIterator[T any](next func() (T, bool, error), closeFn func() error) *Iterator[T] {
	return &Iterator[T]{next: next, closeFn: closeFn}
}

// Next advances the iterator, reporting whether a value is available.
// It returns false both at a clean end and after an error; call Err to
// tell the two apart.
func (it *Iterator[T]) Next() bool {
	it.mu.Lock()
	defer it.mu.Unlock()

	if it.closed || it.err != nil {
		return false
	}
	v, ok, err := it.next()
	if err != nil {
		it.err = err
		return false
	}
	if !ok {
		return false
	}
	it.cur = v
	return true
}

// Value returns the item produced by the most recent successful Next.
func (it *Iterator[T]) Value() T {
	it.mu.Lock()
	defer it.mu.Unlock()
	return it.cur
}

// Err returns the error that stopped iteration, or nil if the sequence
// ended cleanly or has not stopped yet.
func (it *Iterator[T]) Err() error {
	it.mu.Lock()
	defer it.mu.Unlock()
	return it.err
}

// Close releases the iterator's underlying session resources. If the
// sequence was not fully drained, the close function abandons the
// download (PCMI_BREAK) rather than leaving the controller mid-stream.
// Close is idempotent.
func (it *Iterator[T]) Close() error {
	it.mu.Lock()
	defer it.mu.Unlock()
	if it.closed {
		return nil
	}
	it.closed = true
	if it.closeFn == nil {
		return nil
	}
	return it.closeFn()
}
