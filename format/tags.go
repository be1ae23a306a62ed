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

package format

import (
	"regexp"
	"strings"

	"golang.org/x/text/transform"

	"github.com/ianlewis/go-flashcards/internal/folding"
	"github.com/ianlewis/go-flashcards/resolve"
)

var placeholder = regexp.MustCompile(`\{([a-z_]+)\}`)

// tags synthesizes the card's tags from the tag template, the record's
// topic and any free-form tag list in the record metadata.
func (f *Formatter) tags(rec *resolve.Record) []string {
	var tags []string

	template := f.opts.TagTemplate
	for _, token := range strings.Fields(template) {
		tag, ok := expand(token, rec.Metadata)
		if !ok {
			// A token with an unresolved placeholder is dropped rather
			// than left literal.
			continue
		}
		if tag = foldTag(tag); tag != "" {
			tags = append(tags, tag)
		}
	}

	if topic := rec.Metadata["topic"]; topic != "" {
		if tag := foldTag(topic); tag != "" {
			tags = append(tags, tag)
		}
	}

	for _, raw := range strings.Split(rec.Metadata["tags"], ",") {
		if tag := foldTag(raw); tag != "" {
			tags = append(tags, tag)
		}
	}

	return dedupe(tags)
}

// expand substitutes placeholders in a template token with metadata values.
// It reports false if any placeholder has no value.
func expand(token string, meta map[string]string) (string, bool) {
	ok := true
	expanded := placeholder.ReplaceAllStringFunc(token, func(m string) string {
		key := m[1 : len(m)-1]
		v := meta[key]
		if v == "" {
			ok = false
		}
		return v
	})
	return expanded, ok
}

// foldTag normalizes a tag: lowercased, trimmed, internal whitespace spans
// folded to single underscores.
func foldTag(s string) string {
	folded, _, err := transform.String(&folding.TagFolder{}, s)
	if err != nil {
		// TagFolder never returns a permanent error; fall back to the
		// unfolded text if that ever changes.
		return strings.TrimSpace(s)
	}
	return folded
}

// dedupe removes duplicate tags preserving the first occurrence's order.
func dedupe(tags []string) []string {
	seen := map[string]bool{}
	var out []string
	for _, t := range tags {
		if seen[t] {
			continue
		}
		seen[t] = true
		out = append(out, t)
	}
	return out
}
