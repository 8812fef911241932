// Copyright (c) Tailscale Inc & AUTHORS
// SPDX-License-Identifier: BSD-3-Clause

package sliceiter_test

import (
	"fmt"

	"github.com/tailscale/sliceiter"
)

func ExampleCopyIter() {
	it := sliceiter.CopyOf([]int{10, 20, 30, 40, 50})

	first, _ := it.Next()
	last, _ := it.NextBack()
	fmt.Println(first, last, it.Len())

	pos, ok := it.Position(func(x int) bool { return x == 30 })
	fmt.Println(pos, ok, it.Remaining())
	// Output:
	// 10 50 3
	// 1 true [40]
}

func ExampleUnsafeIter() {
	words := []string{"alpha", "beta", "gamma", "delta"}

	// Positions obtained separately, e.g. from another data structure.
	start := sliceiter.CursorOf(&words[1])
	end := sliceiter.CursorOf(&words[3]).Offset(1)

	it := sliceiter.UnsafeIter(start, end)
	for p := range it.All() {
		fmt.Println(*p)
	}
	// Output:
	// beta
	// gamma
	// delta
}

func ExampleIter_Find() {
	type entry struct {
		key string
		val int
	}
	entries := []entry{{"a", 1}, {"b", 2}, {"c", 3}}

	it := sliceiter.Of(entries)
	e, ok := it.Find(func(e *entry) bool { return e.key == "b" })
	fmt.Println(e.val, ok, e == &entries[1], it.Len())
	// Output:
	// 2 true true 1
}
