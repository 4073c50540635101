// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package generator

import (
	"path/filepath"
	"time"
)

// ConfigFile is the location of the configuration document relative to the
// source root.
const ConfigFile = "src/compile_options.json"

// Config is the invocation context shared by the staleness check and the
// generator.
type Config struct {
	// HeaderRoot is the directory generated headers are written to.
	HeaderRoot string

	// SourceRoot is the project source root holding src/compile_options.json.
	SourceRoot string

	// GeneratorModTime stands in for "the generation rules changed".
	// Outputs older than this are regenerated.
	GeneratorModTime time.Time

	// Force regenerates even when outputs are up to date.
	Force bool

	// DryRun generates without writing anything.
	DryRun bool

	// Options contains target-specific options.
	Options map[string]string
}

// ConfigPath returns the path of the configuration document.
func (c Config) ConfigPath() string {
	return filepath.Join(c.SourceRoot, filepath.FromSlash(ConfigFile))
}

// OutputPath returns the path of a generated file under HeaderRoot.
func (c Config) OutputPath(name string) string {
	return filepath.Join(c.HeaderRoot, name)
}

// Option returns a target-specific option with default.
func (c Config) Option(key, defaultValue string) string {
	if v, ok := c.Options[key]; ok {
		return v
	}
	return defaultValue
}
