// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package generator

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/spf13/afero"
	"go.uber.org/zap"

	"github.com/albertocavalcante/mkoptions/internal/output"
	"github.com/albertocavalcante/mkoptions/internal/staleness"
	"github.com/albertocavalcante/mkoptions/model"
)

// Result describes what a Run did.
type Result struct {
	// UpToDate is set when every output was fresh and nothing was generated.
	UpToDate bool

	// Output is the generated content. Nil when UpToDate.
	Output *Output

	// Written lists the paths that were replaced on disk, in write order.
	// Empty for dry runs.
	Written []string
}

// Run checks whether g's outputs are stale and, if so, regenerates them
// from the configuration document and replaces them on disk.
//
// The document is loaded and the output generated in memory before any file
// is touched, so a broken document never damages an existing header.
func Run(ctx context.Context, fsys afero.Fs, g Generator, cfg Config, log *zap.SugaredLogger) (*Result, error) {
	meta := g.Metadata()
	log = log.With("generator", meta.Name)

	if !cfg.Force {
		paths := make([]string, len(meta.Outputs))
		for i, name := range meta.Outputs {
			paths[i] = cfg.OutputPath(name)
		}
		stale, err := staleness.Any(fsys, paths, cfg.GeneratorModTime)
		if err != nil {
			return nil, errors.Wrap(err, "check outputs")
		}
		if !stale {
			log.Debugw("outputs up to date", "outputs", paths, "generator_mtime", cfg.GeneratorModTime)
			return &Result{UpToDate: true}, nil
		}
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	doc, err := model.Load(fsys, cfg.ConfigPath())
	if err != nil {
		return nil, err
	}
	log.Debugw("loaded configuration", "path", cfg.ConfigPath(), "maps", len(doc.Maps))

	out, err := g.Generate(ctx, doc, cfg)
	if err != nil {
		return nil, errors.Wrapf(err, "generate %s", meta.Name)
	}

	res := &Result{Output: out}
	if cfg.DryRun {
		return res, nil
	}

	for _, name := range out.Names() {
		path := cfg.OutputPath(name)
		if err := output.WriteFile(fsys, path, out.Files[name]); err != nil {
			return nil, err
		}
		res.Written = append(res.Written, path)
		log.Debugw("wrote output", "path", path, "bytes", len(out.Files[name]))
	}
	return res, nil
}
