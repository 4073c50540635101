// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package frozen

import (
	"context"

	"github.com/albertocavalcante/mkoptions/generator"
	"github.com/albertocavalcante/mkoptions/model"
)

// Name is the registry name of this generator.
const Name = "frozen"

// Generator implements [generator.Generator] for frozen C++ headers.
type Generator struct{}

// NewGenerator creates a new frozen header generator.
func NewGenerator() *Generator {
	return &Generator{}
}

// Metadata returns information about this generator.
func (g *Generator) Metadata() generator.Metadata {
	return generator.Metadata{
		Name:        Name,
		Version:     "1.0.0",
		Description: "Generate frozen::unordered_map option tables as a C++ header",
		Outputs:     []string{HeaderFile},
		URL:         "https://github.com/serge-sans-paille/frozen",
	}
}

// Generate produces the header from the configuration document.
func (g *Generator) Generate(ctx context.Context, doc *model.Document, cfg generator.Config) (*generator.Output, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	internalCfg := Config{
		Namespace: cfg.Option("namespace", DefaultNamespace),
	}

	gen := New(doc, internalCfg)
	return generator.Single(HeaderFile, gen.Generate()), nil
}
