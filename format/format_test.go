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

package format_test

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ianlewis/go-flashcards/format"
	"github.com/ianlewis/go-flashcards/resolve"
)

// TestFormatter_Format tests card rendering in both markup modes.
func TestFormatter_Format(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		options *format.Options
		record  *resolve.Record

		expected *format.Card
	}{
		{
			name: "html full record",
			record: &resolve.Record{
				Primary:            " das Haus ",
				Translation:        "the house",
				Connection:         "het huis",
				Example:            "Das Haus ist groß.",
				ExampleTranslation: "The house is big.",
				Pronunciation:      "dahs hows",
				Notes:              "Neuter noun",
			},

			expected: &format.Card{
				Front: "das Haus",
				Back: "<b>the house</b> <i>(Dutch: het huis)</i>" +
					"<br><br>Example: Das Haus ist groß.<br><i>The house is big.</i>" +
					"<br><br><i>Pronunciation: dahs hows</i>" +
					"<br><br>Note: Neuter noun",
			},
		},
		{
			name: "plain full record",
			options: &format.Options{
				ShowConnections:      true,
				IncludeExamples:      true,
				IncludePronunciation: true,
				ConnectionLabel:      "Dutch",
			},
			record: &resolve.Record{
				Primary:            "das Haus",
				Translation:        "the house",
				Connection:         "het huis",
				Example:            "Das Haus ist groß.",
				ExampleTranslation: "The house is big.",
			},

			expected: &format.Card{
				Front: "das Haus",
				Back: "**the house** *(Dutch: het huis)*\n" +
					"Example: Das Haus ist groß.\n*The house is big.*",
			},
		},
		{
			name: "translation only has no stray separators",
			record: &resolve.Record{
				Primary:     "Hallo",
				Translation: "Hello",
			},

			expected: &format.Card{
				Front: "Hallo",
				Back:  "<b>Hello</b>",
			},
		},
		{
			name: "connections disabled",
			options: &format.Options{
				HTML:            true,
				IncludeExamples: true,
			},
			record: &resolve.Record{
				Primary:     "das Haus",
				Translation: "the house",
				Connection:  "het huis",
			},

			expected: &format.Card{
				Front: "das Haus",
				Back:  "<b>the house</b>",
			},
		},
		{
			name: "examples disabled",
			options: &format.Options{
				HTML:            true,
				ShowConnections: true,
			},
			record: &resolve.Record{
				Primary:     "gehen",
				Translation: "to go",
				Example:     "Ich gehe nach Hause.",
			},

			expected: &format.Card{
				Front: "gehen",
				Back:  "<b>to go</b>",
			},
		},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			if test.record.Metadata == nil {
				test.record.Metadata = map[string]string{}
			}

			card := format.NewFormatter(test.options).Format(test.record)
			if diff := cmp.Diff(test.expected, card); diff != "" {
				t.Fatalf("Format (-want, +got):\n%s", diff)
			}
		})
	}
}

// TestFormatter_tags tests tag synthesis.
func TestFormatter_tags(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		options *format.Options
		record  *resolve.Record

		expected []string
	}{
		{
			name: "week day and topic",
			record: &resolve.Record{
				Primary:     "Hallo",
				Translation: "Hello",
				Metadata: map[string]string{
					"week":  "2",
					"day":   "3",
					"topic": "Greetings & Politeness",
				},
			},

			expected: []string{"week_2", "day_3", "greetings_&_politeness"},
		},
		{
			name: "unresolved placeholders are dropped",
			record: &resolve.Record{
				Primary:     "Hallo",
				Translation: "Hello",
				Metadata: map[string]string{
					"day":   "1",
					"topic": "Greetings",
				},
			},

			expected: []string{"day_1", "greetings"},
		},
		{
			name: "free form tags are folded",
			record: &resolve.Record{
				Primary:     "gehen",
				Translation: "to go",
				Metadata: map[string]string{
					"tags": "Verb, Movement Words",
				},
			},

			expected: []string{"verb", "movement_words"},
		},
		{
			name: "duplicates removed",
			record: &resolve.Record{
				Primary:     "Hallo",
				Translation: "Hello",
				Metadata: map[string]string{
					"topic": "Greetings",
					"tags":  "greetings, common",
				},
			},

			expected: []string{"greetings", "common"},
		},
		{
			name: "difficulty placeholder",
			options: &format.Options{
				HTML:        true,
				TagTemplate: "week_{week} difficulty_{difficulty}",
			},
			record: &resolve.Record{
				Primary:     "Hallo",
				Translation: "Hello",
				Metadata: map[string]string{
					"difficulty": "1",
				},
			},

			expected: []string{"difficulty_1"},
		},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			card := format.NewFormatter(test.options).Format(test.record)
			if diff := cmp.Diff(test.expected, card.Tags); diff != "" {
				t.Fatalf("Format tags (-want, +got):\n%s", diff)
			}
		})
	}
}

// TestFormatter_nonEmptyFront tests that formatting always yields a
// non-empty front for records that passed resolution.
func TestFormatter_nonEmptyFront(t *testing.T) {
	t.Parallel()

	records := []*resolve.Record{
		{Primary: "a", Translation: "b", Metadata: map[string]string{}},
		{Primary: "  padded  ", Translation: "b", Metadata: map[string]string{}},
		{Primary: "multi\nline", Translation: "b", Metadata: map[string]string{}},
	}

	f := format.NewFormatter(nil)
	for _, rec := range records {
		card := f.Format(rec)
		if strings.TrimSpace(card.Front) == "" {
			t.Fatalf("Format front is empty for %q", rec.Primary)
		}
	}
}
