// Copyright (c) Tailscale Inc & AUTHORS
// SPDX-License-Identifier: BSD-3-Clause

package sliceiter

// The loops below are unrolled by hand four ways, which keeps them on par
// with slices.IndexFunc (see BenchmarkPosition and cmd/sliceiterperf).
// Every step is a fetch-then-advance of the front cursor, so on a match the
// front is already past the matched element.

// Find advances the iterator until pred reports true and returns that
// element. The match and everything before it are consumed; if nothing
// matches, the iterator ends up exhausted.
//
// pred is called on the elements in order, exactly once each.
func (it *Iter[T]) Find(pred func(*T) bool) (*T, bool) {
	s := &it.s
	for s.end.off-s.start.off >= 4 {
		if p := s.start.PostInc().Pointer(); pred(p) {
			return p, true
		}
		if p := s.start.PostInc().Pointer(); pred(p) {
			return p, true
		}
		if p := s.start.PostInc().Pointer(); pred(p) {
			return p, true
		}
		if p := s.start.PostInc().Pointer(); pred(p) {
			return p, true
		}
	}
	for s.start.off != s.end.off {
		if p := s.start.PostInc().Pointer(); pred(p) {
			return p, true
		}
	}
	return nil, false
}

// Position is like Find but returns the index of the match relative to the
// front of the iterator at the time of the call, or -1 and false.
func (it *Iter[T]) Position(pred func(*T) bool) (int, bool) {
	s := &it.s
	front := s.start
	for s.end.off-s.start.off >= 4 {
		if c := s.start.PostInc(); pred(c.Pointer()) {
			return c.Sub(front), true
		}
		if c := s.start.PostInc(); pred(c.Pointer()) {
			return c.Sub(front), true
		}
		if c := s.start.PostInc(); pred(c.Pointer()) {
			return c.Sub(front), true
		}
		if c := s.start.PostInc(); pred(c.Pointer()) {
			return c.Sub(front), true
		}
	}
	for s.start.off != s.end.off {
		if c := s.start.PostInc(); pred(c.Pointer()) {
			return c.Sub(front), true
		}
	}
	return -1, false
}
