// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Package output writes generated artifacts to disk.
package output

import (
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/albertocavalcante/mkoptions/internal/errs"
)

// FileMode is the permission given to every written artifact.
const FileMode = 0o644

// WriteFile replaces path with data in full. The bytes go to a temporary
// file in the same directory which is renamed over path only after it has
// been synced and closed, so path holds either the old or the new content,
// never a truncated mix. Data is written as-is; no line-ending translation.
func WriteFile(fsys afero.Fs, path string, data []byte) (err error) {
	dir := filepath.Dir(path)
	if err := fsys.MkdirAll(dir, 0o755); err != nil {
		return errs.IOf(err, "create output directory %s", dir)
	}

	tmp, err := afero.TempFile(fsys, dir, "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return errs.IOf(err, "create temporary file in %s", dir)
	}
	tmpName := tmp.Name()

	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = fsys.Remove(tmpName)
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		return errs.IOf(err, "write %s", tmpName)
	}
	if err := tmp.Sync(); err != nil {
		return errs.IOf(err, "sync %s", tmpName)
	}
	if err := tmp.Close(); err != nil {
		return errs.IOf(err, "close %s", tmpName)
	}
	if err := fsys.Chmod(tmpName, FileMode); err != nil {
		return errs.IOf(err, "chmod %s", tmpName)
	}
	if err := fsys.Rename(tmpName, path); err != nil {
		return errs.IOf(err, "rename %s to %s", tmpName, path)
	}
	return nil
}
