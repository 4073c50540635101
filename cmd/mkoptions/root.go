// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/albertocavalcante/mkoptions/generator"
	"github.com/albertocavalcante/mkoptions/generators/frozen"
	"github.com/albertocavalcante/mkoptions/internal/errs"
	"github.com/albertocavalcante/mkoptions/internal/logger"
)

const (
	usageMessage    = "Wrong number of arguments! Please specify header directory."
	upToDateMessage = "Output files up-to-date."
)

// app carries everything a run touches, so tests can swap the filesystem,
// the output streams and the generator timestamp.
type app struct {
	fs      afero.Fs
	stdout  io.Writer
	stderr  io.Writer
	modTime func() (time.Time, error)

	force     bool
	dryRun    bool
	verbose   bool
	namespace string
}

func (a *app) command() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mkoptions <header-root> <source-root>",
		Short: "Generate compile_options.hpp from src/compile_options.json",
		Long: `Generate the compile-time option tables of the kernel manager.

Reads <source-root>/src/compile_options.json and writes
<header-root>/compile_options.hpp, one frozen::unordered_map per map in
document order. Nothing is written when the header is newer than this
executable.

Examples:
  mkoptions build/include .             # Regenerate if stale
  mkoptions --force build/include .     # Always regenerate
  mkoptions --dry-run build/include .   # Print the header instead`,
		Version:       fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
		Args:          exactArgs,
		RunE:          a.run,
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	cmd.SetOut(a.stdout)
	cmd.SetErr(a.stderr)

	flags := cmd.Flags()
	flags.BoolVar(&a.force, "force", false, "Regenerate even if the header is up to date")
	flags.BoolVar(&a.dryRun, "dry-run", false, "Print the header to stdout without writing it")
	flags.StringVar(&a.namespace, "namespace", frozen.DefaultNamespace, "C++ namespace for the generated tables")
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "Debug logging on stderr")

	return cmd
}

// exactArgs enforces the two positional arguments before any file is
// touched.
func exactArgs(_ *cobra.Command, args []string) error {
	if len(args) != 2 {
		return errs.Usagef("expected 2 arguments, got %d", len(args))
	}
	return nil
}

// execute runs the command line and returns the process exit status.
func (a *app) execute(args []string) int {
	if args == nil {
		// cobra falls back to os.Args on nil.
		args = []string{}
	}
	cmd := a.command()
	cmd.SetArgs(args)

	err := cmd.ExecuteContext(context.Background())
	if err == nil {
		return 0
	}

	if errs.KindOf(err) == errs.Usage {
		fmt.Fprintln(a.stdout, usageMessage)
		return 1
	}

	fmt.Fprintf(a.stderr, "error: %v\n", err)
	if hint := errors.FlattenHints(err); hint != "" {
		fmt.Fprintf(a.stderr, "hint: %s\n", hint)
	}
	return 1
}

func (a *app) run(cmd *cobra.Command, args []string) error {
	log := logger.New(a.stderr, a.verbose)
	defer func() { _ = log.Sync() }()

	g, err := generator.Lookup(frozen.Name)
	if err != nil {
		return err
	}

	mtime, err := a.modTime()
	if err != nil {
		return err
	}

	cfg := generator.Config{
		HeaderRoot:       args[0],
		SourceRoot:       args[1],
		GeneratorModTime: mtime,
		Force:            a.force || a.dryRun,
		DryRun:           a.dryRun,
		Options:          map[string]string{"namespace": a.namespace},
	}

	res, err := generator.Run(cmd.Context(), a.fs, g, cfg, log)
	if err != nil {
		return err
	}

	switch {
	case res.UpToDate:
		fmt.Fprintln(a.stdout, upToDateMessage)
	case a.dryRun:
		for _, name := range res.Output.Names() {
			if _, err := a.stdout.Write(res.Output.Files[name]); err != nil {
				return errs.IOf(err, "write %s to stdout", name)
			}
		}
	default:
		log.Debugw("regenerated", "files", res.Written)
	}
	return nil
}
