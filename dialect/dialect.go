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

// Package dialect describes the CSV layouts understood by the downstream
// flashcard apps.
package dialect

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/ianlewis/go-flashcards/format"
)

// ErrUnknownDialect indicates a dialect name with no registered layout.
var ErrUnknownDialect = errors.New("unknown dialect")

// Dialect is a CSV column layout, delimiter and tag join convention
// expected by a downstream app. Output is always UTF-8.
type Dialect struct {
	// Name identifies the dialect.
	Name string

	// Headers is the header row. A nil Headers writes no header row.
	Headers []string

	// Comma is the field delimiter.
	Comma rune

	// Columns is the number of fields per row. Rows are padded with empty
	// fields up to this count.
	Columns int

	// TagColumn includes a tag field after the front and back fields.
	TagColumn bool

	// TagSeparator joins a card's tags into the tag field.
	TagSeparator string
}

// Row renders a card as a row in this dialect.
func (d *Dialect) Row(card *format.Card) []string {
	row := []string{card.Front, card.Back}
	if d.TagColumn {
		row = append(row, strings.Join(card.Tags, d.TagSeparator))
	}
	for len(row) < d.Columns {
		row = append(row, "")
	}
	return row
}

// AnkiApp is the default dialect: three comma-separated columns with a
// Front,Back,Tag header and comma-joined tags.
var AnkiApp = Dialect{
	Name:         "ankiapp",
	Headers:      []string{"Front", "Back", "Tag"},
	Comma:        ',',
	Columns:      3,
	TagColumn:    true,
	TagSeparator: ",",
}

// Anki is a six-column tab-separated layout with space-joined tags and no
// header row. Anki ignores the trailing empty fields.
var Anki = Dialect{
	Name:         "anki",
	Comma:        '\t',
	Columns:      6,
	TagColumn:    true,
	TagSeparator: " ",
}

// Quizlet is a headerless two-column term/definition layout. Quizlet has no
// tag field.
var Quizlet = Dialect{
	Name:    "quizlet",
	Comma:   ',',
	Columns: 2,
}

var dialects = map[string]Dialect{
	AnkiApp.Name: AnkiApp,
	Anki.Name:    Anki,
	Quizlet.Name: Quizlet,
}

// Get returns the dialect registered under the given name.
func Get(name string) (Dialect, error) {
	d, ok := dialects[strings.ToLower(name)]
	if !ok {
		return Dialect{}, fmt.Errorf("%w: %q", ErrUnknownDialect, name)
	}
	return d, nil
}

// Names returns the registered dialect names in sorted order.
func Names() []string {
	var names []string
	for name := range dialects {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
