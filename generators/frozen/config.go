// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package frozen

const (
	// DefaultNamespace wraps every generated table.
	DefaultNamespace = "detail"

	// HeaderFile is the name of the generated header.
	HeaderFile = "compile_options.hpp"
)

// Config holds configuration for header generation.
type Config struct {
	// Namespace is the C++ namespace the tables are declared in.
	Namespace string
}

// DefaultConfig returns the configuration the kernel manager build expects.
func DefaultConfig() Config {
	return Config{Namespace: DefaultNamespace}
}
