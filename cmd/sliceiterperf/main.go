// Copyright (c) Tailscale Inc & AUTHORS
// SPDX-License-Identifier: BSD-3-Clause

// Command sliceiterperf compares the throughput of the sliceiter search and
// stepping loops with slices.IndexFunc and plain range loops.
//
// Run with "position", "find" or "step". Flags can also be set from
// SLICEITERPERF_* environment variables or a -config file.
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"

	"github.com/peterbourgon/ff/v3"
	"github.com/peterbourgon/ff/v3/ffcli"
	"github.com/tailscale/sliceiter/types/logger"
	"golang.org/x/sys/cpu"
)

var perfArgs struct {
	n       int
	match   int
	rounds  int
	elem    string
	verbose bool
}

func newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ExitOnError)
	fs.IntVar(&perfArgs.n, "n", 1<<16, "number of elements in the region")
	fs.IntVar(&perfArgs.match, "match", -1, "index of the element searched for; -1 means the last one")
	fs.IntVar(&perfArgs.rounds, "rounds", 200, "number of passes over the region per contender")
	fs.StringVar(&perfArgs.elem, "elem", "u64", "element type: u8, u32, u64 or struct")
	fs.BoolVar(&perfArgs.verbose, "v", false, "log every round")
	fs.String("config", "", "config file (optional)")
	return fs
}

var ffOptions = []ff.Option{
	ff.WithEnvVarPrefix("SLICEITERPERF"),
	ff.WithConfigFileFlag("config"),
	ff.WithConfigFileParser(ff.PlainParser),
}

func main() {
	subcommand := func(name, help string, m mode) *ffcli.Command {
		return &ffcli.Command{
			Name:       name,
			ShortUsage: "sliceiterperf " + name + " [flags]",
			ShortHelp:  help,
			FlagSet:    newFlagSet(name),
			Options:    ffOptions,
			Exec: func(ctx context.Context, args []string) error {
				return run(m)
			},
		}
	}
	root := &ffcli.Command{
		Exec: func(ctx context.Context, args []string) error {
			return flag.ErrHelp
		},
		ShortUsage: "sliceiterperf <position|find|step> [flags]",
		ShortHelp:  "sliceiter throughput comparison tool",
		FlagSet:    flag.NewFlagSet("sliceiterperf", flag.ExitOnError),
		Subcommands: []*ffcli.Command{
			subcommand("position", "Time Iter.Position against slices.IndexFunc", modePosition),
			subcommand("find", "Time Iter.Find against slices.IndexFunc", modeFind),
			subcommand("step", "Time Next and NextBack against range loops", modeStep),
		},
	}

	if err := root.ParseAndRun(context.Background(), os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(m mode) error {
	cfg, err := configFromArgs(m)
	if err != nil {
		return err
	}
	logf := logger.Logf(log.New(os.Stderr, "", log.LstdFlags).Printf)
	if !perfArgs.verbose {
		logf = logger.WithoutPrefix(logf, "round ")
	}
	cfg.logf = logf

	logf("%s/%s, GOMAXPROCS=%d, cpu: %v", runtime.GOOS, runtime.GOARCH, runtime.GOMAXPROCS(0), logger.ArgWriter(writeCPUFeatures))

	results, err := runElem(cfg, perfArgs.elem)
	if err != nil {
		return err
	}
	writeResults(os.Stdout, cfg, results)
	return nil
}

func configFromArgs(m mode) (config, error) {
	cfg := config{
		mode:   m,
		n:      perfArgs.n,
		match:  perfArgs.match,
		rounds: perfArgs.rounds,
	}
	if cfg.n <= 0 {
		return config{}, fmt.Errorf("invalid -n %d: must be positive", cfg.n)
	}
	if cfg.rounds <= 0 {
		return config{}, fmt.Errorf("invalid -rounds %d: must be positive", cfg.rounds)
	}
	if cfg.match == -1 {
		cfg.match = cfg.n - 1
	}
	if cfg.match < 0 || cfg.match >= cfg.n {
		return config{}, fmt.Errorf("invalid -match %d: want -1 or [0, %d)", perfArgs.match, cfg.n)
	}
	return cfg, nil
}

// writeCPUFeatures writes the vector extensions relevant to tight loops.
func writeCPUFeatures(bw *bufio.Writer) {
	var feats []string
	switch runtime.GOARCH {
	case "amd64", "386":
		for _, f := range []struct {
			name string
			ok   bool
		}{
			{"sse4.2", cpu.X86.HasSSE42},
			{"avx", cpu.X86.HasAVX},
			{"avx2", cpu.X86.HasAVX2},
			{"avx512f", cpu.X86.HasAVX512F},
		} {
			if f.ok {
				feats = append(feats, f.name)
			}
		}
	case "arm64":
		if cpu.ARM64.HasASIMD {
			feats = append(feats, "asimd")
		}
		if cpu.ARM64.HasSVE {
			feats = append(feats, "sve")
		}
	}
	if len(feats) == 0 {
		bw.WriteString("none")
		return
	}
	for i, f := range feats {
		if i > 0 {
			bw.WriteByte(',')
		}
		bw.WriteString(f)
	}
}
