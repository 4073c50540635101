// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package main

import (
	"github.com/albertocavalcante/mkoptions/generator"
	"github.com/albertocavalcante/mkoptions/generators/frozen"
)

func init() {
	generator.Register(frozen.NewGenerator())
}
