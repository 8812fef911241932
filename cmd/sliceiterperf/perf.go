// Copyright (c) Tailscale Inc & AUTHORS
// SPDX-License-Identifier: BSD-3-Clause

package main

import (
	"fmt"
	"io"
	"slices"
	"text/tabwriter"
	"time"
	"unsafe"

	"github.com/tailscale/sliceiter"
	"github.com/tailscale/sliceiter/types/logger"
)

type mode int

const (
	modePosition mode = iota
	modeFind
	modeStep
)

func (m mode) String() string {
	switch m {
	case modePosition:
		return "position"
	case modeFind:
		return "find"
	case modeStep:
		return "step"
	}
	return fmt.Sprintf("mode(%d)", int(m))
}

type config struct {
	mode   mode
	n      int
	match  int
	rounds int
	logf   logger.Logf
}

// record is a multi-word element, to see how the loops cope with strides
// larger than a register.
type record struct {
	key      uint64
	lo, hi   uint64
	checksum uint32
}

// contender is one way of walking the region. It returns the index it
// stopped at (or a checksum, for step), so that all contenders can be
// checked against each other.
type contender[T comparable] struct {
	name string
	fn   func(s []T, want T) int
}

type result struct {
	name    string
	elapsed time.Duration
	bytes   int64 // scanned per round
	rounds  int
	got     int
}

func (r result) nsPerRound() float64 {
	return float64(r.elapsed.Nanoseconds()) / float64(r.rounds)
}

func (r result) gbPerSec() float64 {
	if r.elapsed <= 0 {
		return 0
	}
	return float64(r.bytes) * float64(r.rounds) / r.elapsed.Seconds() / 1e9
}

var sink int

func runElem(cfg config, elem string) ([]result, error) {
	switch elem {
	case "u8":
		return runMode(cfg, func(i int) uint8 { return uint8(i % 251) })
	case "u32":
		return runMode(cfg, func(i int) uint32 { return uint32(i) })
	case "u64":
		return runMode(cfg, func(i int) uint64 { return uint64(i) })
	case "struct":
		return runMode(cfg, func(i int) record {
			return record{key: uint64(i), lo: uint64(i) << 1, hi: uint64(i) << 2, checksum: uint32(i)}
		})
	}
	return nil, fmt.Errorf("unknown element type %q", elem)
}

// runMode fills a region using gen and times every contender of cfg.mode
// on it. For searches, gen must not repeat the value at cfg.match before
// that index.
func runMode[T comparable](cfg config, gen func(i int) T) ([]result, error) {
	s := make([]T, cfg.n)
	for i := range s {
		s[i] = gen(i)
	}
	want := s[cfg.match]
	if i := slices.Index(s, want); cfg.mode != modeStep && i != cfg.match {
		return nil, fmt.Errorf("value at -match %d first appears at %d; pick a smaller index or another -elem", cfg.match, i)
	}

	var cs []contender[T]
	var elemsPerRound int
	switch cfg.mode {
	case modePosition:
		cs = positionContenders[T]()
		elemsPerRound = cfg.match + 1
	case modeFind:
		cs = findContenders[T]()
		elemsPerRound = cfg.match + 1
	case modeStep:
		cs = stepContenders[T]()
		elemsPerRound = cfg.n
	default:
		return nil, fmt.Errorf("unknown mode %v", cfg.mode)
	}
	var zero T
	bytes := int64(elemsPerRound) * int64(unsafe.Sizeof(zero))

	results := make([]result, 0, len(cs))
	for _, c := range cs {
		r := measure(cfg, c, s, want)
		r.bytes = bytes
		results = append(results, r)
	}
	for _, r := range results[1:] {
		if r.got != results[0].got {
			return results, fmt.Errorf("%s got %d, %s got %d", r.name, r.got, results[0].name, results[0].got)
		}
	}
	return results, nil
}

func measure[T comparable](cfg config, c contender[T], s []T, want T) result {
	logf := logger.WithPrefix(cfg.logf, "round ")
	r := result{name: c.name, rounds: cfg.rounds}
	for i := range cfg.rounds {
		start := time.Now()
		r.got = c.fn(s, want)
		d := time.Since(start)
		r.elapsed += d
		logf("%d %s: %v", i, c.name, d)
	}
	sink += r.got
	return r
}

func positionContenders[T comparable]() []contender[T] {
	return []contender[T]{
		{"Iter.Position", func(s []T, want T) int {
			it := sliceiter.Of(s)
			i, _ := it.Position(func(p *T) bool { return *p == want })
			return i
		}},
		{"CopyIter.Position", func(s []T, want T) int {
			it := sliceiter.CopyOf(s)
			i, _ := it.Position(func(v T) bool { return v == want })
			return i
		}},
		{"slices.IndexFunc", func(s []T, want T) int {
			return slices.IndexFunc(s, func(v T) bool { return v == want })
		}},
		{"range", func(s []T, want T) int {
			for i := range s {
				if s[i] == want {
					return i
				}
			}
			return -1
		}},
	}
}

func findContenders[T comparable]() []contender[T] {
	return []contender[T]{
		{"Iter.Find", func(s []T, want T) int {
			it := sliceiter.Of(s)
			if _, ok := it.Find(func(p *T) bool { return *p == want }); !ok {
				return -1
			}
			// Find leaves the front just past the match.
			return len(s) - it.Len() - 1
		}},
		{"CopyIter.Find", func(s []T, want T) int {
			it := sliceiter.CopyOf(s)
			if _, ok := it.Find(func(v T) bool { return v == want }); !ok {
				return -1
			}
			return len(s) - it.Len() - 1
		}},
		{"slices.IndexFunc", func(s []T, want T) int {
			return slices.IndexFunc(s, func(v T) bool { return v == want })
		}},
	}
}

// stepContenders count the elements equal to want, visiting all of them.
func stepContenders[T comparable]() []contender[T] {
	return []contender[T]{
		{"CopyIter.Next", func(s []T, want T) int {
			n := 0
			it := sliceiter.CopyOf(s)
			for v, ok := it.Next(); ok; v, ok = it.Next() {
				if v == want {
					n++
				}
			}
			return n
		}},
		{"Iter.Next", func(s []T, want T) int {
			n := 0
			it := sliceiter.Of(s)
			for p, ok := it.Next(); ok; p, ok = it.Next() {
				if *p == want {
					n++
				}
			}
			return n
		}},
		{"Iter.NextBack", func(s []T, want T) int {
			n := 0
			it := sliceiter.Of(s)
			for p, ok := it.NextBack(); ok; p, ok = it.NextBack() {
				if *p == want {
					n++
				}
			}
			return n
		}},
		{"range", func(s []T, want T) int {
			n := 0
			for i := range s {
				if s[i] == want {
					n++
				}
			}
			return n
		}},
	}
}

func writeResults(w io.Writer, cfg config, results []result) {
	tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', 0)
	fmt.Fprintf(tw, "%s\tn=%d\trounds=%d\n", cfg.mode, cfg.n, cfg.rounds)
	for _, r := range results {
		fmt.Fprintf(tw, "%s\t%.0f ns/round\t%.2f GB/s\n", r.name, r.nsPerRound(), r.gbPerSec())
	}
	tw.Flush()
}
