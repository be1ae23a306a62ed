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

// Package normalize flattens heterogeneous lesson documents into a uniform
// sequence of raw card entries.
//
// Lesson files come in several shapes: a flat entry list at the top level, a
// day-keyed mapping of word and phrase lists, or arbitrarily nested
// unit/lesson mappings. The Scanner detects the shape and yields entries with
// a traversal path and inherited section metadata, so later pipeline stages
// never need to know which shape the file used.
package normalize

import (
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strconv"
)

// ErrMalformedDocument indicates the source is not a recognizable lesson
// document at all, for example a top-level scalar or array of scalars.
var ErrMalformedDocument = errors.New("malformed document")

// metaKeys are top-level and section-level scalar keys that describe the
// surrounding content rather than a single entry.
var metaKeys = []string{
	"target_language",
	"native_language",
	"content_type",
	"topic",
	"title",
	"week",
	"level",
}

var trailingNumber = regexp.MustCompile(`([0-9]+)$`)

// Document is a parsed lesson document.
type Document struct {
	root map[string]any

	// Meta holds the document-level metadata values such as
	// target_language, content_type, topic and week.
	Meta map[string]string
}

// Parse parses a lesson document from raw JSON. The top level must be an
// object; anything else returns ErrMalformedDocument.
func Parse(data []byte) (*Document, error) {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedDocument, err)
	}

	root, ok := raw.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: top level is %T, expected object", ErrMalformedDocument, raw)
	}

	doc := &Document{
		root: root,
		Meta: map[string]string{},
	}
	for _, k := range metaKeys {
		if v, ok := root[k]; ok {
			if s := scalarString(v); s != "" {
				doc.Meta[k] = s
			}
		}
	}
	// A title can stand in for a missing topic.
	if doc.Meta["topic"] == "" && doc.Meta["title"] != "" {
		doc.Meta["topic"] = doc.Meta["title"]
	}
	delete(doc.Meta, "title")

	return doc, nil
}

// scalarString renders a scalar JSON value as a string. Non-scalar values
// render as the empty string.
func scalarString(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case float64:
		// encoding/json decodes all numbers as float64.
		if t == float64(int64(t)) {
			return strconv.FormatInt(int64(t), 10)
		}
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(t)
	default:
		return ""
	}
}

// keyNumber extracts a trailing number from container keys like "day_3",
// "week2" or "unit_10". It returns -1 when the key carries no number.
func keyNumber(key string) int {
	m := trailingNumber.FindString(key)
	if m == "" {
		return -1
	}
	n, err := strconv.Atoi(m)
	if err != nil {
		return -1
	}
	return n
}

// keyLess orders container keys numerically when both carry a trailing
// number, so day_10 sorts after day_9 rather than after day_1.
func keyLess(a, b string) bool {
	na, nb := keyNumber(a), keyNumber(b)
	if na >= 0 && nb >= 0 && na != nb {
		return na < nb
	}
	return a < b
}
