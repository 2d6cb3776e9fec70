// Copyright (c) 2026 Nlaak Studios (https://nlaak.com)
// Author: Andrew Donelson (https://www.linkedin.com/in/andrew-donelson/)
//
// main.go — CLI entry point for jsonbvgen.

// jsonbvgen generates jsonb envelope column bindings for Go types.
//
// For each named type it emits Value and Scan methods that forward to
// github.com/AndrewDonelson/jsonbv, making the type storable in a jsonb
// column through database/sql. Intended for use with go:generate:
//
//	//go:generate jsonbvgen --type Bar
//
// There are no behaviour options: one protocol, one output shape.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var (
		types   []string
		dir     string
		output  string
		verbose bool
	)

	flagSet := pflag.NewFlagSet("jsonbvgen", pflag.ContinueOnError)
	flagSet.StringSliceVar(&types, "type", nil, "type name(s) to bind; required, may repeat")
	flagSet.StringVar(&dir, "dir", ".", "package directory to scan")
	flagSet.StringVar(&output, "output", "", "output file (default <dir>/<type>_jsonbv.go from the first type)")
	flagSet.BoolVarP(&verbose, "verbose", "v", false, "log progress to stderr")

	if err := flagSet.Parse(os.Args[1:]); err != nil {
		if err == pflag.ErrHelp {
			return nil
		}
		return err
	}
	if len(types) == 0 {
		return fmt.Errorf("jsonbvgen: at least one --type is required")
	}

	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	src, err := Generate(dir, types)
	if err != nil {
		return err
	}

	if output == "" {
		output = filepath.Join(dir, strings.ToLower(types[0])+"_jsonbv.go")
	}
	logger.Debug("writing bindings", "output", output, "types", strings.Join(types, ","))
	return os.WriteFile(output, src, 0o644)
}
