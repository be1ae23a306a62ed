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

package normalize

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// ErrRecursionLimit indicates a subtree was nested deeper than the scanner's
// depth ceiling and was skipped.
var ErrRecursionLimit = errors.New("recursion limit exceeded")

// ErrNotObject indicates a list element that should have been an entry
// object but was some other value.
var ErrNotObject = errors.New("entry is not an object")

// entryListKeys are mapping keys whose list values hold card entries. They
// are tried in this order before any other keys of the same mapping.
var entryListKeys = []string{"entries", "words", "items", "phrases"}

// sectionKeys are container key prefixes whose trailing number is recorded
// as section metadata, e.g. "day_3" sets day=3 for entries below it.
var sectionKeys = []string{"week", "day", "unit", "lesson", "chapter", "section"}

// Entry is one raw card entry found in a document.
type Entry struct {
	// Path is the traversal path from the document root to the entry,
	// e.g. ["days", "day_3", "words", "2"]. It is used for error
	// attribution and is never empty.
	Path []string

	// Fields is the entry object verbatim.
	Fields map[string]any

	// Meta is the metadata inherited from the document and the entry's
	// enclosing sections: target_language, content_type, topic, week,
	// day and so on.
	Meta map[string]string
}

// Warning records a skipped entry or subtree.
type Warning struct {
	Path   []string
	Reason error
}

// Options are options for the document scanner.
type Options struct {
	// MaxDepth is the recursion ceiling for nested unit/lesson mappings.
	// Subtrees nested deeper are skipped with a warning.
	MaxDepth int
}

// DefaultOptions is the default options for a Scanner.
var DefaultOptions = &Options{
	MaxDepth: 12,
}

// Scanner yields the entries of a document in a stable order. A Scanner is
// consumed once; it is not restartable.
type Scanner struct {
	entries  []*Entry
	warnings []Warning
	sections int

	cur *Entry
}

// NewScanner returns a scanner over the document's entries. Day-keyed and
// other numbered containers are visited in numeric order regardless of their
// order in the source file.
func NewScanner(doc *Document, options *Options) *Scanner {
	if options == nil {
		options = DefaultOptions
	}

	s := &Scanner{}

	// Shape 1: a flat entry list at the top level.
	for _, key := range entryListKeys {
		if list, ok := doc.root[key].([]any); ok {
			s.emitList(list, []string{key}, doc.Meta)
			return s
		}
	}

	// Shapes 2 and 3: day-keyed or nested unit/lesson mappings. Both are
	// handled by the same bounded descent.
	s.descend(doc.root, nil, doc.Meta, 0, options.MaxDepth)

	return s
}

// Scan advances the scanner to the next entry. It returns false when the
// entries are exhausted.
func (s *Scanner) Scan() bool {
	if len(s.entries) == 0 {
		return false
	}
	s.cur = s.entries[0]
	s.entries = s.entries[1:]
	return true
}

// Entry returns the current entry.
func (s *Scanner) Entry() *Entry {
	return s.cur
}

// Warnings returns the entries and subtrees that were skipped during the
// walk. It is populated once the scanner is constructed.
func (s *Scanner) Warnings() []Warning {
	return s.warnings
}

// Sections returns the number of leaf entry lists found in the document.
func (s *Scanner) Sections() int {
	return s.sections
}

// descend walks a mapping looking for leaf entry lists and nested sections.
func (s *Scanner) descend(m map[string]any, path []string, meta map[string]string, depth, maxDepth int) {
	if depth > maxDepth {
		s.warnings = append(s.warnings, Warning{
			Path:   clonePath(path),
			Reason: fmt.Errorf("%w: depth %d", ErrRecursionLimit, depth),
		})
		return
	}

	// Scalars local to this mapping refine the inherited metadata.
	local := meta
	for _, k := range []string{"topic", "title", "content_type"} {
		key := k
		if key == "title" {
			// A title only stands in for a missing topic.
			if _, ok := m["topic"]; ok {
				continue
			}
			key = "topic"
		}
		if v, ok := m[k]; ok {
			if str := scalarString(v); str != "" {
				if local[key] != str {
					local = cloneMeta(local)
					local[key] = str
				}
			}
		}
	}

	for _, key := range sortedKeys(m) {
		childPath := append(clonePath(path), key)
		switch v := m[key].(type) {
		case []any:
			if isEntryList(v) {
				s.emitList(v, childPath, sectionMeta(local, key))
			}
		case map[string]any:
			s.descend(v, childPath, sectionMeta(local, key), depth+1, maxDepth)
		}
	}
}

// emitList yields the entries of a leaf entry list. Elements that are not
// objects are skipped with a warning.
func (s *Scanner) emitList(list []any, path []string, meta map[string]string) {
	s.sections++
	for i, item := range list {
		itemPath := append(clonePath(path), strconv.Itoa(i))
		fields, ok := item.(map[string]any)
		if !ok {
			s.warnings = append(s.warnings, Warning{
				Path:   itemPath,
				Reason: fmt.Errorf("%w: %T", ErrNotObject, item),
			})
			continue
		}
		s.entries = append(s.entries, &Entry{
			Path:   itemPath,
			Fields: fields,
			Meta:   meta,
		})
	}
}

// isEntryList reports whether a list holds card entry objects. Scalar lists
// such as tag lists are not entry lists.
func isEntryList(list []any) bool {
	for _, item := range list {
		if _, ok := item.(map[string]any); ok {
			return true
		}
	}
	return false
}

// sectionMeta derives the metadata for entries below the given container
// key. Numbered section keys like "day_3" record their number.
func sectionMeta(meta map[string]string, key string) map[string]string {
	n := keyNumber(key)
	if n < 0 {
		return meta
	}
	base := strings.TrimRight(strings.TrimRight(key, "0123456789"), "_-")
	for _, sk := range sectionKeys {
		if base == sk || base == sk+"s" {
			m := cloneMeta(meta)
			m[sk] = strconv.Itoa(n)
			return m
		}
	}
	return meta
}

// sortedKeys returns the mapping's keys with known entry list keys first and
// the remainder in numeric-aware order.
func sortedKeys(m map[string]any) []string {
	var keys []string
	for _, k := range entryListKeys {
		if _, ok := m[k]; ok {
			keys = append(keys, k)
		}
	}
	var rest []string
	for k := range m {
		if !contains(entryListKeys, k) {
			rest = append(rest, k)
		}
	}
	sort.Slice(rest, func(i, j int) bool {
		return keyLess(rest[i], rest[j])
	})
	return append(keys, rest...)
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

func clonePath(path []string) []string {
	return append([]string{}, path...)
}

func cloneMeta(meta map[string]string) map[string]string {
	m := make(map[string]string, len(meta))
	for k, v := range meta {
		m[k] = v
	}
	return m
}
