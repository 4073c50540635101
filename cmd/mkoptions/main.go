// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Command mkoptions generates compile_options.hpp, the compile-time option
// tables of the kernel manager, from src/compile_options.json.
//
// Usage:
//
//	mkoptions [flags] <header-root> <source-root>
//
// The header is regenerated only when it is missing or older than the
// mkoptions executable. Flags:
//
//	--force          Regenerate even if the header is up to date
//	--dry-run        Print the header to stdout without writing it
//	--namespace      C++ namespace for the tables (default: detail)
//	--verbose        Debug logging on stderr
//	--version        Show version information
package main

import (
	"os"
	"time"

	"github.com/spf13/afero"

	"github.com/albertocavalcante/mkoptions/internal/errs"
)

var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	a := &app{
		fs:      afero.NewOsFs(),
		stdout:  os.Stdout,
		stderr:  os.Stderr,
		modTime: executableModTime,
	}
	os.Exit(a.execute(os.Args[1:]))
}

// executableModTime returns the modification time of the running binary.
// A rebuilt generator may emit different output, so it invalidates every
// header produced by an older build.
func executableModTime() (time.Time, error) {
	exe, err := os.Executable()
	if err != nil {
		return time.Time{}, errs.IOf(err, "locate executable")
	}
	info, err := os.Stat(exe)
	if err != nil {
		return time.Time{}, errs.IOf(err, "stat %s", exe)
	}
	return info.ModTime(), nil
}
