// Copyright (c) Tailscale Inc & AUTHORS
// SPDX-License-Identifier: BSD-3-Clause

package sliceiter

import (
	"iter"

	"github.com/tailscale/sliceiter/types/views"
)

// CopyIter is a double-ended iterator over a contiguous region of T values
// that yields copies of the elements.
//
// The zero value is an empty iterator. A CopyIter is a plain value: copying
// it yields an independent iterator over the same memory.
type CopyIter[T any] struct {
	s span[T]
}

// CopyOf returns a CopyIter over the elements of s.
// It panics if T has zero size.
func CopyOf[T any](s []T) CopyIter[T] {
	return CopyIter[T]{spanOf(s)}
}

// UnsafeCopyIter returns a CopyIter over [start, end).
//
// It panics if T has zero size or if end precedes start. Otherwise the
// caller guarantees that every position in [start, end) holds an
// initialized, properly aligned T, that both cursors point into the same
// allocation, and that the memory is neither freed nor mutated while the
// iterator or any copy of it is in use. None of that is checked.
func UnsafeCopyIter[T any](start, end Cursor[T]) CopyIter[T] {
	return CopyIter[T]{newSpan(start, end)}
}

// Next returns the element at the front and advances past it.
// It returns the zero value and false once the iterator is exhausted.
func (it *CopyIter[T]) Next() (T, bool) {
	p, ok := it.s.next()
	if !ok {
		var zero T
		return zero, false
	}
	return *p, true
}

// NextBack returns the element at the back and removes it.
// It returns the zero value and false once the iterator is exhausted.
func (it *CopyIter[T]) NextBack() (T, bool) {
	p, ok := it.s.nextBack()
	if !ok {
		var zero T
		return zero, false
	}
	return *p, true
}

// Len returns the number of elements not yet produced.
func (it CopyIter[T]) Len() int { return it.s.len() }

// IsEmpty reports whether the iterator is exhausted.
func (it CopyIter[T]) IsEmpty() bool { return it.s.len() == 0 }

// SizeHint returns the bounds on the remaining length. They are always exact.
func (it CopyIter[T]) SizeHint() (lo, hi int, ok bool) {
	n := it.s.len()
	return n, n, true
}

// Count returns the number of remaining elements without visiting them.
func (it CopyIter[T]) Count() int { return it.s.len() }

// Last returns the last remaining element without visiting the others.
// The receiver is a copy; it is not consumed.
func (it CopyIter[T]) Last() (T, bool) { return it.NextBack() }

// At returns the i'th remaining element, counting from the front.
// It panics if i is out of range.
func (it CopyIter[T]) At(i int) T { return *it.s.at(i) }

// Raw returns the cursors delimiting the remaining elements.
func (it CopyIter[T]) Raw() (start, end Cursor[T]) { return it.s.start, it.s.end }

// Start returns the cursor at the front.
func (it CopyIter[T]) Start() Cursor[T] { return it.s.start }

// End returns the cursor one past the back.
func (it CopyIter[T]) End() Cursor[T] { return it.s.end }

// Remaining returns the unproduced elements as a slice sharing the
// iterator's memory. It returns nil if the iterator is exhausted.
func (it CopyIter[T]) Remaining() []T { return it.s.remaining() }

// View is like Remaining but returns a read-only view.
func (it CopyIter[T]) View() views.Slice[T] { return views.SliceOf(it.s.remaining()) }

// Find advances the iterator until pred reports true and returns that
// element. The match and everything before it are consumed; if nothing
// matches, the iterator ends up exhausted.
func (it *CopyIter[T]) Find(pred func(T) bool) (T, bool) {
	for {
		v, ok := it.Next()
		if !ok || pred(v) {
			return v, ok
		}
	}
}

// Position is like Find but returns the index of the match relative to the
// front of the iterator at the time of the call.
func (it *CopyIter[T]) Position(pred func(T) bool) (int, bool) {
	for i := 0; ; i++ {
		v, ok := it.Next()
		if !ok {
			return -1, false
		}
		if pred(v) {
			return i, true
		}
	}
}

// All returns a single-use sequence that drains it from the front.
// Stopping early leaves the rest in it.
func (it *CopyIter[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for {
			v, ok := it.Next()
			if !ok || !yield(v) {
				return
			}
		}
	}
}

// Backward is like All but drains it from the back.
func (it *CopyIter[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		for {
			v, ok := it.NextBack()
			if !ok || !yield(v) {
				return
			}
		}
	}
}

func (it CopyIter[T]) String() string { return "CopyIter" + it.s.String() }
