// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Package frozen generates a C++ header of compile-time option tables
// backed by frozen::unordered_map.
//
// Each map of the configuration document becomes one constexpr table whose
// capacity template argument is the map's entry count. frozen builds a
// perfect hash at compile time, so the capacity must match the number of
// initializers exactly.
//
// Keys and values are emitted inside double quotes verbatim. They must not
// contain characters that need escaping in a C++ string literal ('"', '\\',
// control characters); this is a precondition of the input, not checked.
package frozen

import (
	"bytes"
	"fmt"

	"github.com/albertocavalcante/mkoptions/model"
)

// licenseHeader is copied verbatim to the top of every generated header.
const licenseHeader = `// Copyright (C) 2022 Vladislav Nepogodin
//
// This file is part of CachyOS kernel manager.
//
// This program is free software; you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation; either version 2 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License along
// with this program; if not, write to the Free Software Foundation, Inc.,
// 51 Franklin Street, Fifth Floor, Boston, MA 02110-1301 USA.
`

// prelude follows the license. frozen trips -Wsign-conversion on clang and
// additionally -Wuseless-cast on GCC, so its headers are included with
// those warnings silenced for either compiler.
const prelude = `#pragma once

#if defined(__clang__)
#pragma clang diagnostic push
#pragma clang diagnostic ignored "-Wsign-conversion"
#elif defined(__GNUC__)
#pragma GCC diagnostic push
#pragma GCC diagnostic ignored "-Wuseless-cast"
#pragma GCC diagnostic ignored "-Wsign-conversion"
#endif

#include <frozen/unordered_map.h>
#include <frozen/string.h>

#if defined(__clang__)
#pragma clang diagnostic pop
#elif defined(__GNUC__)
#pragma GCC diagnostic pop
#endif

#include <string_view>

`

// Codegen renders a configuration document as a C++ header.
type Codegen struct {
	doc    *model.Document
	config Config
}

// New creates a new header Codegen.
func New(doc *model.Document, cfg Config) *Codegen {
	if cfg.Namespace == "" {
		cfg.Namespace = DefaultNamespace
	}
	return &Codegen{doc: doc, config: cfg}
}

// Generate returns the complete header. Output uses LF line endings only
// and depends on nothing but the document and config.
func (g *Codegen) Generate() []byte {
	var buf bytes.Buffer

	buf.WriteString(licenseHeader)
	buf.WriteString(prelude)

	fmt.Fprintf(&buf, "namespace %s {\n\n", g.config.Namespace)
	for _, m := range g.doc.Maps {
		writeTable(&buf, m)
	}
	fmt.Fprintf(&buf, "\n} // namespace %s\n", g.config.Namespace)

	return buf.Bytes()
}

// writeTable emits one constexpr table. The capacity is taken from the same
// slice the initializers are written from.
func writeTable(buf *bytes.Buffer, m model.Map) {
	fmt.Fprintf(buf, "constexpr frozen::unordered_map<frozen::string, std::string_view, %d> %s {\n", m.Len(), m.Name)
	for _, e := range m.Entries {
		fmt.Fprintf(buf, "    {%s, %s},\n", quote(e.Key), quote(e.Value))
	}
	buf.WriteString("\n};\n")
}

// quote wraps s in double quotes without escaping.
func quote(s string) string {
	return `"` + s + `"`
}
