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

package resolve

import (
	"errors"
	"fmt"
)

// ErrUnknownField indicates a synonym table entry for a field that is not
// one of the canonical field names.
var ErrUnknownField = errors.New("unknown canonical field")

var canonicalFields = []string{
	FieldPrimary,
	FieldTranslation,
	FieldConnection,
	FieldExample,
	FieldExampleTranslation,
	FieldNotes,
	FieldPronunciation,
}

// SynonymTable maps canonical field names to the ordered source keys that
// may supply them. The first present, non-empty key wins. A table is
// immutable once built and safe for concurrent use.
type SynonymTable struct {
	fields              map[string][]string
	connectionLanguages []string
}

// NewSynonymTable builds a table from per-field synonym lists. Fields not
// named fall back to the defaults. Unknown field names are an error.
func NewSynonymTable(fields map[string][]string, connectionLanguages []string) (*SynonymTable, error) {
	t := DefaultSynonyms()
	for field, keys := range fields {
		if !contains(canonicalFields, field) {
			return nil, fmt.Errorf("%w: %q", ErrUnknownField, field)
		}
		if len(keys) > 0 {
			t.fields[field] = append([]string{}, keys...)
		}
	}
	if len(connectionLanguages) > 0 {
		t.connectionLanguages = append([]string{}, connectionLanguages...)
	}
	return t, nil
}

// DefaultSynonyms returns the synonym table covering the known vocabulary,
// grammar and phrase lesson formats.
func DefaultSynonyms() *SynonymTable {
	return &SynonymTable{
		fields: map[string][]string{
			FieldPrimary: {
				"german", "target", "word", "term", "phrase", "rule_name", "question",
			},
			FieldTranslation: {
				"english", "native", "translation", "meaning", "answer",
			},
			FieldConnection: {
				"dutch_connection", "connection",
			},
			FieldExample: {
				"example", "examples", "example_sentence",
			},
			FieldExampleTranslation: {
				"example_translation",
			},
			FieldNotes: {
				"notes", "note", "memory_tip", "tip",
			},
			FieldPronunciation: {
				"pronunciation", "phonetic", "sound",
			},
		},
		connectionLanguages: []string{"dutch"},
	}
}

// Keys returns the source keys consulted for a canonical field, in order.
func (t *SynonymTable) Keys(field string) []string {
	return append([]string{}, t.fields[field]...)
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
