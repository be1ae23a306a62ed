// Copyright 2025 Ian Lewis
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package resolve maps the varying field names found in lesson files onto a
// canonical card record using an ordered synonym table.
package resolve

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/ianlewis/go-flashcards/normalize"
)

// Canonical field names.
const (
	FieldPrimary            = "primary"
	FieldTranslation        = "translation"
	FieldConnection         = "connection"
	FieldExample            = "example"
	FieldExampleTranslation = "example_translation"
	FieldNotes              = "notes"
	FieldPronunciation      = "pronunciation"
)

// MissingFieldError indicates an entry is missing a required field and
// cannot become a card.
type MissingFieldError struct {
	// Field is the canonical name of the missing field.
	Field string
}

// Error implements the error interface.
func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("missing required field %q", e.Field)
}

// Record is the canonical representation of one card's source data,
// independent of the original document shape.
type Record struct {
	// Primary is the target-language term or phrase. Always non-empty.
	Primary string

	// Translation is the native-language meaning. Always non-empty.
	Translation string

	// Connection is an optional bridge-language annotation.
	Connection string

	Example            string
	ExampleTranslation string
	Notes              string
	Pronunciation      string

	// Metadata holds section metadata and any entry fields not claimed
	// by a canonical field, all stringified.
	Metadata map[string]string

	// Path is the entry's traversal path in the source document.
	Path []string
}

// Resolve produces a canonical record from a raw entry, or a
// *MissingFieldError if the entry lacks a primary text or translation.
func (t *SynonymTable) Resolve(entry *normalize.Entry) (*Record, error) {
	rec := &Record{
		Metadata: map[string]string{},
		Path:     entry.Path,
	}

	claimed := map[string]bool{}
	lookup := func(field string) string {
		for _, key := range t.fields[field] {
			v, ok := entry.Fields[key]
			if !ok {
				continue
			}
			s := flatten(v)
			if s != "" {
				claimed[key] = true
				return s
			}
		}
		return ""
	}

	rec.Primary = lookup(FieldPrimary)
	if rec.Primary == "" {
		return nil, &MissingFieldError{Field: FieldPrimary}
	}
	rec.Translation = lookup(FieldTranslation)
	if rec.Translation == "" {
		return nil, &MissingFieldError{Field: FieldTranslation}
	}

	rec.Connection = lookup(FieldConnection)
	rec.Example = lookup(FieldExample)
	rec.ExampleTranslation = lookup(FieldExampleTranslation)
	rec.Notes = lookup(FieldNotes)
	rec.Pronunciation = lookup(FieldPronunciation)

	// A "connections" sub-mapping may carry the bridge-language
	// annotation under the language's own name.
	if conns, ok := entry.Fields["connections"].(map[string]any); ok {
		claimed["connections"] = true
		if rec.Connection == "" {
			for _, lang := range t.connectionLanguages {
				if s := flatten(conns[lang]); s != "" {
					rec.Connection = s
					break
				}
			}
		}
	}

	// Section metadata first so entry fields of the same name win.
	for k, v := range entry.Meta {
		rec.Metadata[k] = v
	}
	for k, v := range entry.Fields {
		if claimed[k] {
			continue
		}
		if s := flatten(v); s != "" {
			rec.Metadata[k] = s
		}
	}

	return rec, nil
}

// flatten renders a raw JSON value as a string. Lists are joined with
// commas and mappings are flattened to "key: value" pairs in key order.
func flatten(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(t)
	case float64:
		if t == float64(int64(t)) {
			return strconv.FormatInt(int64(t), 10)
		}
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(t)
	case []any:
		var parts []string
		for _, item := range t {
			if s := flatten(item); s != "" {
				parts = append(parts, s)
			}
		}
		return strings.Join(parts, ", ")
	case map[string]any:
		keys := make([]string, 0, len(t))
		for k := range t {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		var parts []string
		for _, k := range keys {
			if s := flatten(t[k]); s != "" {
				parts = append(parts, k+": "+s)
			}
		}
		return strings.Join(parts, ", ")
	default:
		return fmt.Sprintf("%v", t)
	}
}
