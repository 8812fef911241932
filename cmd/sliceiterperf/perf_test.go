// Copyright (c) Tailscale Inc & AUTHORS
// SPDX-License-Identifier: BSD-3-Clause

package main

import (
	"bytes"
	"strings"
	"testing"

	qt "github.com/frankban/quicktest"
	"github.com/tailscale/sliceiter/types/logger"
)

func TestRunElem(t *testing.T) {
	for _, m := range []mode{modePosition, modeFind, modeStep} {
		for _, elem := range []string{"u8", "u32", "u64", "struct"} {
			t.Run(m.String()+"/"+elem, func(t *testing.T) {
				c := qt.New(t)
				cfg := config{mode: m, n: 200, match: 137, rounds: 3, logf: t.Logf}
				results, err := runElem(cfg, elem)
				c.Assert(err, qt.IsNil)
				c.Assert(results, qt.Not(qt.HasLen), 0)
				for _, r := range results {
					c.Check(r.rounds, qt.Equals, 3)
					if m != modeStep {
						c.Check(r.got, qt.Equals, 137, qt.Commentf("%s", r.name))
					}
				}
			})
		}
	}
}

func TestRunElemUnknown(t *testing.T) {
	c := qt.New(t)
	_, err := runElem(config{mode: modeStep, n: 1, rounds: 1, logf: logger.Discard}, "u16")
	c.Assert(err, qt.ErrorMatches, `unknown element type "u16"`)
}

func TestRunElemRepeatedMatch(t *testing.T) {
	c := qt.New(t)
	// u8 values wrap at 251, so index 300 repeats index 49.
	_, err := runElem(config{mode: modePosition, n: 400, match: 300, rounds: 1, logf: logger.Discard}, "u8")
	c.Assert(err, qt.ErrorMatches, `value at -match 300 first appears at 49.*`)
}

func TestConfigFromArgs(t *testing.T) {
	tests := []struct {
		n, match, rounds int
		wantMatch        int
		wantErr          string
	}{
		{n: 10, match: -1, rounds: 1, wantMatch: 9},
		{n: 10, match: 3, rounds: 1, wantMatch: 3},
		{n: 0, match: -1, rounds: 1, wantErr: "invalid -n 0: must be positive"},
		{n: 10, match: 10, rounds: 1, wantErr: `invalid -match 10: want -1 or \[0, 10\)`},
		{n: 10, match: -2, rounds: 1, wantErr: `invalid -match -2: want -1 or \[0, 10\)`},
		{n: 10, match: 0, rounds: 0, wantErr: "invalid -rounds 0: must be positive"},
	}
	for _, tt := range tests {
		perfArgs.n, perfArgs.match, perfArgs.rounds = tt.n, tt.match, tt.rounds
		cfg, err := configFromArgs(modePosition)
		if tt.wantErr != "" {
			qt.New(t).Check(err, qt.ErrorMatches, tt.wantErr)
			continue
		}
		if err != nil {
			t.Errorf("configFromArgs(n=%d, match=%d): %v", tt.n, tt.match, err)
			continue
		}
		if cfg.match != tt.wantMatch {
			t.Errorf("match = %d, want %d", cfg.match, tt.wantMatch)
		}
	}
}

func TestWriteResults(t *testing.T) {
	var buf bytes.Buffer
	cfg := config{mode: modeFind, n: 8, rounds: 2}
	writeResults(&buf, cfg, []result{{name: "Iter.Find", rounds: 2, bytes: 64, elapsed: 2000}})
	out := buf.String()
	for _, want := range []string{"find", "n=8", "rounds=2", "Iter.Find", "1000 ns/round", "0.06 GB/s"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}
