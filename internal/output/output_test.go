// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package output

import (
	"io/fs"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/spf13/afero"

	"github.com/albertocavalcante/mkoptions/internal/errs"
)

func TestWriteFile(t *testing.T) {
	t.Run("creates file and parent directory", func(t *testing.T) {
		fsys := afero.NewMemMapFs()
		path := "/build/include/compile_options.hpp"

		if err := WriteFile(fsys, path, []byte("#pragma once\n")); err != nil {
			t.Fatalf("WriteFile: %v", err)
		}

		got, err := afero.ReadFile(fsys, path)
		if err != nil {
			t.Fatalf("read back: %v", err)
		}
		if diff := cmp.Diff("#pragma once\n", string(got)); diff != "" {
			t.Errorf("content mismatch (-want +got):\n%s", diff)
		}

		info, err := fsys.Stat(path)
		if err != nil {
			t.Fatalf("stat: %v", err)
		}
		if info.Mode().Perm() != FileMode {
			t.Errorf("mode = %v, want %v", info.Mode().Perm(), fs.FileMode(FileMode))
		}
	})

	t.Run("replaces existing content entirely", func(t *testing.T) {
		fsys := afero.NewMemMapFs()
		path := "/out/compile_options.hpp"
		if err := afero.WriteFile(fsys, path, []byte(strings.Repeat("old\n", 100)), 0o644); err != nil {
			t.Fatal(err)
		}

		if err := WriteFile(fsys, path, []byte("new\n")); err != nil {
			t.Fatalf("WriteFile: %v", err)
		}

		got, _ := afero.ReadFile(fsys, path)
		if string(got) != "new\n" {
			t.Errorf("got %q, want %q", got, "new\n")
		}
	})

	t.Run("preserves LF line endings", func(t *testing.T) {
		fsys := afero.NewMemMapFs()
		path := "/out/a.hpp"
		if err := WriteFile(fsys, path, []byte("a\nb\n")); err != nil {
			t.Fatal(err)
		}
		got, _ := afero.ReadFile(fsys, path)
		if strings.Contains(string(got), "\r") {
			t.Errorf("unexpected carriage return in %q", got)
		}
	})

	t.Run("leaves no temporary files behind", func(t *testing.T) {
		fsys := afero.NewMemMapFs()
		if err := WriteFile(fsys, "/out/a.hpp", []byte("x")); err != nil {
			t.Fatal(err)
		}
		assertOnlyFiles(t, fsys, "/out", "a.hpp")
	})
}

// renameFailFs fails every Rename.
type renameFailFs struct {
	afero.Fs
}

func (renameFailFs) Rename(oldname, newname string) error {
	return &fs.PathError{Op: "rename", Path: oldname, Err: fs.ErrPermission}
}

func TestWriteFile_FailureKeepsPrevious(t *testing.T) {
	base := afero.NewMemMapFs()
	path := "/out/compile_options.hpp"
	if err := afero.WriteFile(base, path, []byte("previous\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	err := WriteFile(renameFailFs{base}, path, []byte("next\n"))
	if err == nil {
		t.Fatal("expected rename failure")
	}
	if got := errs.KindOf(err); got != errs.IO {
		t.Errorf("kind = %v, want %v", got, errs.IO)
	}

	got, _ := afero.ReadFile(base, path)
	if string(got) != "previous\n" {
		t.Errorf("previous artifact changed: %q", got)
	}
	assertOnlyFiles(t, base, "/out", filepath.Base(path))
}

func TestWriteFile_ReadOnly(t *testing.T) {
	fsys := afero.NewReadOnlyFs(afero.NewMemMapFs())

	err := WriteFile(fsys, "/out/a.hpp", []byte("x"))
	if err == nil {
		t.Fatal("expected error on read-only filesystem")
	}
	if got := errs.KindOf(err); got != errs.IO {
		t.Errorf("kind = %v, want %v", got, errs.IO)
	}
}

func assertOnlyFiles(t *testing.T, fsys afero.Fs, dir string, want ...string) {
	t.Helper()
	entries, err := afero.ReadDir(fsys, dir)
	if err != nil {
		t.Fatalf("read dir %s: %v", dir, err)
	}
	var got []string
	for _, e := range entries {
		got = append(got, e.Name())
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("files in %s mismatch (-want +got):\n%s", dir, diff)
	}
}
