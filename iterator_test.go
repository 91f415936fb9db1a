package pcmi

import (
	"errors"
	"testing"
)

func TestIteratorDrainsValues(t *testing.T) {
	values := []int{1, 2, 3}
	i := 0
	it := newIterator(func() (int, bool, error) {
		if i >= len(values) {
			return 0, false, nil
		}
		v := values[i]
		i++
		return v, true, nil
	}, func() error { return nil })

	var got []int
	for it.Next() {
		got = append(got, it.Value())
	}
	if err := it.Err(); err != nil {
		t.Fatalf("Err() = %v, want nil", err)
	}
	if len(got) != 3 || got[0] != 1 || got[1] != 2 || got[2] != 3 {
		t.Errorf("drained values = %v, want [1 2 3]", got)
	}
}

func TestIteratorStopsOnError(t *testing.T) {
	sentinel := errors.New("boom")
	it := newIterator(func() (int, bool, error) {
		return 0, false, sentinel
	}, func() error { return nil })

	if it.Next() {
		t.Fatal("Next() should return false when the underlying call errors")
	}
	if !errors.Is(it.Err(), sentinel) {
		t.Errorf("Err() = %v, want %v", it.Err(), sentinel)
	}
	// Once stopped by an error, Next must keep returning false.
	if it.Next() {
		t.Error("Next() should continue returning false after an error")
	}
}

func TestIteratorCloseIsIdempotentAndCallsCloseFn(t *testing.T) {
	calls := 0
	it := newIterator(func() (int, bool, error) {
		return 0, false, nil
	}, func() error {
		calls++
		return nil
	})

	if err := it.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if err := it.Close(); err != nil {
		t.Fatalf("second Close: %v", err)
	}
	if calls != 1 {
		t.Errorf("closeFn called %d times, want 1", calls)
	}
}

func TestIteratorNextAfterCloseReturnsFalse(t *testing.T) {
	it := newIterator(func() (int, bool, error) {
		return 7, true, nil
	}, func() error { return nil })

	it.Close()
	if it.Next() {
		t.Error("Next() should return false after Close")
	}
}
