// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Package model defines the configuration document consumed by mkoptions
// generators and decodes it from JSON.
//
// A document maps table names to entry sets, each entry set mapping option
// keys to option values:
//
//	{
//	  "option_map": {"hz": "CONFIG_HZ", "tickrate": "CONFIG_HZ_PERIODIC"},
//	  "default_option_map": {"hz": "500"}
//	}
//
// Order is significant. Map names and the keys within each map keep the
// order in which they appear in the source, so generated output is
// deterministic and diffs cleanly.
package model

import (
	"bytes"
	"encoding/json"
	"io/fs"

	"github.com/cockroachdb/errors"
	"github.com/spf13/afero"
	orderedmap "github.com/wk8/go-ordered-map/v2"

	"github.com/albertocavalcante/mkoptions/internal/errs"
)

// Document is an ordered collection of named maps.
type Document struct {
	Maps []Map
}

// Map is a named, ordered set of string entries.
type Map struct {
	Name    string
	Entries []Entry
}

// Entry is a single option key and its value.
type Entry struct {
	Key   string
	Value string
}

// Len returns the number of entries. Generated tables are sized by it.
func (m Map) Len() int {
	return len(m.Entries)
}

// Lookup returns the map with the given name.
func (d *Document) Lookup(name string) (Map, bool) {
	for _, m := range d.Maps {
		if m.Name == name {
			return m, true
		}
	}
	return Map{}, false
}

// Load reads and parses the document at path.
func Load(fsys afero.Fs, path string) (*Document, error) {
	data, err := afero.ReadFile(fsys, path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, errors.WithHint(errs.NotFound(err, path),
				"the second argument must be the project source root containing src/compile_options.json")
		}
		return nil, errs.IOf(err, "read %s", path)
	}

	doc, err := Parse(data)
	if err != nil {
		return nil, errors.Wrapf(err, "parse %s", path)
	}
	return doc, nil
}

// Parse decodes a JSON document of the form {name: {key: value}}.
// Anything else, including null maps and non-string values, is rejected.
// When a key repeats, the first position and the last value win.
func Parse(data []byte) (*Document, error) {
	if !isObject(data) {
		return nil, errs.Malformedf("document must be a JSON object of maps")
	}

	top := orderedmap.New[string, json.RawMessage]()
	if err := json.Unmarshal(data, top); err != nil {
		return nil, errs.Malformed(err, "decode document")
	}

	doc := &Document{Maps: make([]Map, 0, top.Len())}
	for pair := top.Oldest(); pair != nil; pair = pair.Next() {
		m, err := parseMap(pair.Key, pair.Value)
		if err != nil {
			return nil, err
		}
		doc.Maps = append(doc.Maps, m)
	}
	return doc, nil
}

func parseMap(name string, raw json.RawMessage) (Map, error) {
	if !isObject(raw) {
		return Map{}, errs.Malformedf("map %q must be a JSON object of strings", name)
	}

	entries := orderedmap.New[string, json.RawMessage]()
	if err := json.Unmarshal(raw, entries); err != nil {
		return Map{}, errs.Malformed(err, "decode map %q", name)
	}

	m := Map{Name: name, Entries: make([]Entry, 0, entries.Len())}
	for pair := entries.Oldest(); pair != nil; pair = pair.Next() {
		key := pair.Key
		value := bytes.TrimSpace(pair.Value)
		if len(value) == 0 || value[0] != '"' {
			return Map{}, errs.Malformedf("map %q: value of %q must be a string, got %s", name, key, value)
		}
		var s string
		if err := json.Unmarshal(value, &s); err != nil {
			return Map{}, errs.Malformed(err, "map %q: decode value of %q", name, key)
		}
		m.Entries = append(m.Entries, Entry{Key: key, Value: s})
	}
	return m, nil
}

func isObject(data []byte) bool {
	data = bytes.TrimSpace(data)
	return len(data) > 0 && data[0] == '{'
}
