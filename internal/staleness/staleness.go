// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Package staleness decides whether generated artifacts must be rebuilt.
//
// An artifact is stale when it does not exist or when its modification time
// is strictly earlier than the generator's. Timestamps are the only signal;
// content is never inspected.
package staleness

import (
	"io/fs"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/spf13/afero"

	"github.com/albertocavalcante/mkoptions/internal/errs"
)

// NeedsRegeneration reports whether the artifact at outputPath is missing or
// older than generatorModTime. Only a missing artifact is absorbed; every
// other stat failure is returned as an I/O error.
func NeedsRegeneration(fsys afero.Fs, outputPath string, generatorModTime time.Time) (bool, error) {
	info, err := fsys.Stat(outputPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return true, nil
		}
		return false, errs.IOf(err, "stat %s", outputPath)
	}
	return info.ModTime().Before(generatorModTime), nil
}

// Any reports whether at least one of paths needs regeneration.
// It stops at the first stale artifact.
func Any(fsys afero.Fs, paths []string, generatorModTime time.Time) (bool, error) {
	for _, p := range paths {
		stale, err := NeedsRegeneration(fsys, p, generatorModTime)
		if err != nil {
			return false, err
		}
		if stale {
			return true, nil
		}
	}
	return false, nil
}
