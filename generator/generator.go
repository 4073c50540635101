// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Package generator defines the interface for compile-option table
// generators and the pipeline that drives them.
package generator

import (
	"context"

	"github.com/albertocavalcante/mkoptions/model"
)

// Generator is the interface that all code generators must implement.
type Generator interface {
	// Metadata returns information about this generator.
	Metadata() Metadata

	// Generate produces output files from the configuration document.
	// It must be deterministic: the same document and config yield the
	// same bytes.
	Generate(ctx context.Context, doc *model.Document, cfg Config) (*Output, error)
}

// Metadata describes a generator.
type Metadata struct {
	// Name is the short identifier (e.g., "frozen").
	Name string

	// Version is the generator version (semver).
	Version string

	// Description is a human-readable description.
	Description string

	// Outputs lists the file names the generator writes, relative to the
	// header root. The staleness check runs against exactly these files.
	Outputs []string

	// URL is the homepage/documentation URL (optional).
	URL string
}
