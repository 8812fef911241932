// Copyright (c) Tailscale Inc & AUTHORS
// SPDX-License-Identifier: BSD-3-Clause

package sliceiter

import (
	"iter"

	"github.com/tailscale/sliceiter/types/views"
)

// Iter is a double-ended iterator over a contiguous region of T values
// that yields pointers into the region.
//
// The returned pointers stay valid for as long as the underlying memory
// does, independent of the Iter value. Writing through them is outside the
// iterator's contract.
//
// The zero value is an empty iterator. An Iter is a plain value: copying
// it yields an independent iterator over the same memory.
type Iter[T any] struct {
	s span[T]
}

// Of returns an Iter over the elements of s.
// It panics if T has zero size.
func Of[T any](s []T) Iter[T] {
	return Iter[T]{spanOf(s)}
}

// UnsafeIter returns an Iter over [start, end).
//
// It panics if T has zero size or if end precedes start. Otherwise the
// caller guarantees that every position in [start, end) holds an
// initialized, properly aligned T, that both cursors point into the same
// allocation, and that the memory is neither freed nor mutated while the
// iterator or any copy of it is in use. None of that is checked.
func UnsafeIter[T any](start, end Cursor[T]) Iter[T] {
	return Iter[T]{newSpan(start, end)}
}

// Next returns the element at the front and advances past it.
// It returns nil and false once the iterator is exhausted.
func (it *Iter[T]) Next() (*T, bool) { return it.s.next() }

// NextBack returns the element at the back and removes it.
// It returns nil and false once the iterator is exhausted.
func (it *Iter[T]) NextBack() (*T, bool) { return it.s.nextBack() }

// Peek returns the element Next would return, without advancing.
func (it *Iter[T]) Peek() (*T, bool) { return it.s.peek() }

// Len returns the number of elements not yet produced.
func (it Iter[T]) Len() int { return it.s.len() }

// IsEmpty reports whether the iterator is exhausted.
func (it Iter[T]) IsEmpty() bool { return it.s.len() == 0 }

// SizeHint returns the bounds on the remaining length. They are always exact.
func (it Iter[T]) SizeHint() (lo, hi int, ok bool) {
	n := it.s.len()
	return n, n, true
}

// Count returns the number of remaining elements without visiting them.
func (it Iter[T]) Count() int { return it.s.len() }

// Last returns the last remaining element without visiting the others.
// The receiver is a copy; it is not consumed.
func (it Iter[T]) Last() (*T, bool) { return it.s.nextBack() }

// At returns the i'th remaining element, counting from the front.
// It panics if i is out of range.
func (it Iter[T]) At(i int) *T { return it.s.at(i) }

// Raw returns the cursors delimiting the remaining elements.
func (it Iter[T]) Raw() (start, end Cursor[T]) { return it.s.start, it.s.end }

// Start returns the cursor at the front.
func (it Iter[T]) Start() Cursor[T] { return it.s.start }

// End returns the cursor one past the back.
func (it Iter[T]) End() Cursor[T] { return it.s.end }

// Remaining returns the unproduced elements as a slice sharing the
// iterator's memory. It returns nil if the iterator is exhausted.
func (it Iter[T]) Remaining() []T { return it.s.remaining() }

// View is like Remaining but returns a read-only view.
func (it Iter[T]) View() views.Slice[T] { return views.SliceOf(it.s.remaining()) }

// All returns a single-use sequence that drains it from the front.
// Stopping early leaves the rest in it.
func (it *Iter[T]) All() iter.Seq[*T] {
	return func(yield func(*T) bool) {
		for {
			p, ok := it.s.next()
			if !ok || !yield(p) {
				return
			}
		}
	}
}

// Backward is like All but drains it from the back.
func (it *Iter[T]) Backward() iter.Seq[*T] {
	return func(yield func(*T) bool) {
		for {
			p, ok := it.s.nextBack()
			if !ok || !yield(p) {
				return
			}
		}
	}
}

func (it Iter[T]) String() string { return "Iter" + it.s.String() }
