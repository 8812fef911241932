// Copyright (c) Tailscale Inc & AUTHORS
// SPDX-License-Identifier: BSD-3-Clause

// Package sliceiter provides double-ended iterators over contiguous regions
// of memory that can be built from a pair of positions as well as from a
// slice.
//
// [CopyIter] yields copies of the elements and [Iter] yields pointers into
// the region. Both report their exact remaining length in O(1), support
// random access relative to the front, and stay exhausted once empty.
// Neither checks bounds when stepping: the range is validated once, when the
// iterator is built.
//
// Iterators built with [Of] or [CopyOf] are safe. [UnsafeIter] and
// [UnsafeCopyIter] take two [Cursor] values from the caller and trust them;
// see their documentation for what the caller must guarantee.
//
// Zero-sized element types are not supported and panic at construction.
package sliceiter
