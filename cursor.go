// Copyright (c) Tailscale Inc & AUTHORS
// SPDX-License-Identifier: BSD-3-Clause

package sliceiter

import "unsafe"

// Cursor is a position in a contiguous region of T values.
//
// It is the caller's responsibility to keep a Cursor inside its region, or
// at most one element past its end. None of the methods check this, and
// moving a Cursor anywhere else is undefined behavior once it is used to
// build an iterator.
//
// A Cursor is represented as a base address plus an element offset rather
// than as a single address: Go does not allow a pointer to be advanced past
// the end of its allocation, but the one-past-the-end position is exactly
// where an exhausted iterator sits. The base keeps the region reachable by
// the garbage collector. Only Pointer materializes a *T.
type Cursor[T any] struct {
	base unsafe.Pointer
	off  int // in elements, relative to base
}

// CursorOf returns a Cursor positioned at p.
//
// It panics if T has zero size.
func CursorOf[T any](p *T) Cursor[T] {
	mustSize[T]()
	return Cursor[T]{base: unsafe.Pointer(p)}
}

// sizeOf reports the size in bytes of a T.
func sizeOf[T any]() uintptr {
	var zero T
	return unsafe.Sizeof(zero)
}

// mustSize is like sizeOf but panics for zero-sized types, for which
// address arithmetic cannot tell elements apart.
func mustSize[T any]() uintptr {
	sz := sizeOf[T]()
	if sz == 0 {
		panic("sliceiter: zero-sized element type")
	}
	return sz
}

// IsNil reports whether c was not derived from any address.
func (c Cursor[T]) IsNil() bool { return c.base == nil }

// Offset returns the cursor i elements away from c. i may be negative.
func (c Cursor[T]) Offset(i int) Cursor[T] {
	return Cursor[T]{base: c.base, off: c.off + i}
}

// Inc advances c by one element.
func (c *Cursor[T]) Inc() { c.off++ }

// Dec moves c back by one element.
func (c *Cursor[T]) Dec() { c.off-- }

// PostInc advances c by one element and returns the position it had before.
func (c *Cursor[T]) PostInc() Cursor[T] {
	old := *c
	c.off++
	return old
}

// StrideOffset returns the cursor stride*index elements away from c.
func (c Cursor[T]) StrideOffset(stride, index int) Cursor[T] {
	return c.Offset(stride * index)
}

// Sub returns the number of elements from d to c, c - d.
// Both cursors must point into the same region.
func (c Cursor[T]) Sub(d Cursor[T]) int {
	if c.base == d.base {
		return c.off - d.off
	}
	return int(c.Addr()-d.Addr()) / int(sizeOf[T]())
}

// Addr returns the address c denotes.
// It may be one past the end of the region and is not safe to dereference.
func (c Cursor[T]) Addr() uintptr {
	return uintptr(c.base) + uintptr(c.off)*sizeOf[T]()
}

// Pointer returns the element c points at.
// c must be inside its region, not at the one-past-the-end position.
func (c Cursor[T]) Pointer() *T {
	return (*T)(unsafe.Add(c.base, c.off*int(sizeOf[T]())))
}

// rebase returns c expressed as an offset from base's address, so that two
// cursors derived separately share one valid base pointer.
func (c Cursor[T]) rebase(base Cursor[T]) Cursor[T] {
	if c.base == base.base {
		return c
	}
	return base.Offset(c.Sub(base))
}
