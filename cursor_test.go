// Copyright (c) Tailscale Inc & AUTHORS
// SPDX-License-Identifier: BSD-3-Clause

package sliceiter

import (
	"testing"
	"unsafe"

	qt "github.com/frankban/quicktest"
)

func TestCursor(t *testing.T) {
	c := qt.New(t)
	s := []uint32{1, 2, 3, 4, 5, 6, 7, 8}

	cur := CursorOf(&s[0])
	c.Check(cur.IsNil(), qt.IsFalse)
	c.Check(*cur.Pointer(), qt.Equals, uint32(1))
	c.Check(*cur.Offset(3).Pointer(), qt.Equals, uint32(4))
	c.Check(*cur.Offset(5).Offset(-2).Pointer(), qt.Equals, uint32(4))
	c.Check(*cur.StrideOffset(2, 3).Pointer(), qt.Equals, uint32(7))
	c.Check(cur.Offset(len(s)).Sub(cur), qt.Equals, len(s))
	c.Check(cur.Sub(cur.Offset(3)), qt.Equals, -3)

	cur.Inc()
	cur.Inc()
	c.Check(*cur.Pointer(), qt.Equals, uint32(3))
	cur.Dec()
	c.Check(*cur.Pointer(), qt.Equals, uint32(2))

	old := cur.PostInc()
	c.Check(*old.Pointer(), qt.Equals, uint32(2))
	c.Check(*cur.Pointer(), qt.Equals, uint32(3))
	c.Check(cur.Sub(old), qt.Equals, 1)
}

func TestCursorAddr(t *testing.T) {
	s := []uint64{10, 20, 30}
	cur := CursorOf(&s[0])
	for i := range s {
		if got, want := cur.Offset(i).Addr(), uintptr(unsafe.Pointer(&s[i])); got != want {
			t.Errorf("Offset(%d).Addr() = %#x, want %#x", i, got, want)
		}
	}
	end := cur.Offset(len(s))
	if got, want := end.Addr()-cur.Addr(), uintptr(len(s))*8; got != want {
		t.Errorf("end.Addr()-start.Addr() = %d, want %d", got, want)
	}
}

func TestCursorSubAcrossBases(t *testing.T) {
	s := []int16{1, 2, 3, 4, 5}
	a := CursorOf(&s[1])
	b := CursorOf(&s[4])
	if got := b.Sub(a); got != 3 {
		t.Errorf("b.Sub(a) = %d, want 3", got)
	}
	if got := a.Sub(b); got != -3 {
		t.Errorf("a.Sub(b) = %d, want -3", got)
	}

	r := b.Offset(1).rebase(a)
	if r.base != a.base || r.off != 4 {
		t.Errorf("rebase = {%p, %d}, want {%p, 4}", r.base, r.off, a.base)
	}
	if got := *r.Offset(-1).Pointer(); got != 5 {
		t.Errorf("rebased element = %d, want 5", got)
	}
}

func TestCursorOfZeroSize(t *testing.T) {
	c := qt.New(t)
	var z struct{}
	c.Assert(func() { CursorOf(&z) }, qt.PanicMatches, "sliceiter: zero-sized element type")
}

func TestZeroCursor(t *testing.T) {
	var cur Cursor[int]
	if !cur.IsNil() {
		t.Error("zero Cursor is not nil")
	}
	if cur.Addr() != 0 {
		t.Errorf("zero Cursor Addr() = %#x, want 0", cur.Addr())
	}
}
