// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Package errs classifies mkoptions failures into a small set of kinds.
//
// Errors are built with github.com/cockroachdb/errors and tagged with one of
// the sentinel markers below via [errors.Mark], so callers can branch on the
// kind with [errors.Is] without parsing messages:
//
//	if errors.Is(err, errs.ErrConfigNotFound) {
//	    // ...
//	}
package errs

import (
	"github.com/cockroachdb/errors"
)

// Kind markers. They are never returned directly; they mark wrapped causes.
var (
	ErrUsage           = errors.New("usage error")
	ErrConfigNotFound  = errors.New("configuration not found")
	ErrConfigMalformed = errors.New("configuration malformed")
	ErrIO              = errors.New("i/o error")
)

// Kind enumerates failure classes.
type Kind int

const (
	Unknown Kind = iota
	Usage
	ConfigNotFound
	ConfigMalformed
	IO
)

func (k Kind) String() string {
	switch k {
	case Usage:
		return "UsageError"
	case ConfigNotFound:
		return "ConfigNotFound"
	case ConfigMalformed:
		return "ConfigMalformed"
	case IO:
		return "IoError"
	default:
		return "Unknown"
	}
}

// KindOf reports the kind an error was marked with. Nil maps to Unknown.
func KindOf(err error) Kind {
	switch {
	case err == nil:
		return Unknown
	case errors.Is(err, ErrUsage):
		return Usage
	case errors.Is(err, ErrConfigNotFound):
		return ConfigNotFound
	case errors.Is(err, ErrConfigMalformed):
		return ConfigMalformed
	case errors.Is(err, ErrIO):
		return IO
	default:
		return Unknown
	}
}

// Usagef returns a usage error with the given message.
func Usagef(format string, args ...any) error {
	return errors.Mark(errors.Newf(format, args...), ErrUsage)
}

// NotFound wraps err as a missing configuration document.
func NotFound(err error, path string) error {
	return errors.Mark(errors.Wrapf(err, "read %s", path), ErrConfigNotFound)
}

// Malformed wraps err as an unparseable configuration document.
func Malformed(err error, format string, args ...any) error {
	return errors.Mark(errors.Wrapf(err, format, args...), ErrConfigMalformed)
}

// Malformedf creates a malformed-document error without an underlying cause.
func Malformedf(format string, args ...any) error {
	return errors.Mark(errors.Newf(format, args...), ErrConfigMalformed)
}

// IOf wraps err as a filesystem failure.
func IOf(err error, format string, args ...any) error {
	return errors.Mark(errors.Wrapf(err, format, args...), ErrIO)
}
