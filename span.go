// Copyright (c) Tailscale Inc & AUTHORS
// SPDX-License-Identifier: BSD-3-Clause

package sliceiter

import (
	"fmt"
	"unsafe"
)

// span is the half-open range [start, end) of elements that have not been
// produced yet. It is consumed from the front by advancing start and from
// the back by receding end; it never widens.
//
// start and end always share a base, so comparing offsets is enough.
// The zero span is empty and never dereferenced.
type span[T any] struct {
	start, end Cursor[T]
}

func spanOf[T any](s []T) span[T] {
	mustSize[T]()
	p := unsafe.SliceData(s)
	if p == nil {
		return span[T]{}
	}
	start := Cursor[T]{base: unsafe.Pointer(p)}
	return span[T]{start: start, end: start.Offset(len(s))}
}

func newSpan[T any](start, end Cursor[T]) span[T] {
	mustSize[T]()
	if start.IsNil() || end.IsNil() {
		if start.IsNil() && end.IsNil() {
			return span[T]{}
		}
		panic("sliceiter: nil cursor in non-empty range")
	}
	end = end.rebase(start)
	if end.off < start.off {
		panic(fmt.Sprintf("sliceiter: range end %#x precedes start %#x", end.Addr(), start.Addr()))
	}
	return span[T]{start: start, end: end}
}

func (s *span[T]) len() int { return s.end.off - s.start.off }

func (s *span[T]) next() (*T, bool) {
	if s.start.off == s.end.off {
		return nil, false
	}
	return s.start.PostInc().Pointer(), true
}

func (s *span[T]) nextBack() (*T, bool) {
	if s.start.off == s.end.off {
		return nil, false
	}
	s.end.Dec()
	return s.end.Pointer(), true
}

func (s *span[T]) peek() (*T, bool) {
	if s.start.off == s.end.off {
		return nil, false
	}
	return s.start.Pointer(), true
}

func (s *span[T]) at(i int) *T {
	if n := s.len(); uint(i) >= uint(n) {
		panicIndex(i, n)
	}
	return s.start.Offset(i).Pointer()
}

// remaining returns the unproduced elements as a slice aliasing the region.
func (s *span[T]) remaining() []T {
	n := s.len()
	if n == 0 {
		return nil
	}
	return unsafe.Slice(s.start.Pointer(), n)
}

func (s span[T]) String() string {
	return fmt.Sprintf("[%#x, %#x) len=%d", s.start.Addr(), s.end.Addr(), s.len())
}

//go:noinline
func panicIndex(i, n int) {
	panic(fmt.Sprintf("sliceiter: index out of range [%d] with length %d", i, n))
}
