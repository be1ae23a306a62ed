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

package flashcards_test

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ianlewis/go-flashcards"
	"github.com/ianlewis/go-flashcards/internal/testutil"
	"github.com/ianlewis/go-flashcards/normalize"
	"github.com/ianlewis/go-flashcards/resolve"
)

// TestRun_dayKeyedLesson tests a full conversion of a day-keyed lesson with
// the default AnkiApp configuration.
func TestRun_dayKeyedLesson(t *testing.T) {
	t.Parallel()

	src := testutil.WriteTempLesson(t, map[string]any{
		"days": map[string]any{
			"day_1": map[string]any{
				"topic": "Greetings",
				"words": []any{
					map[string]any{
						"german":              "Hallo",
						"english":             "Hello",
						"example":             "Hallo!",
						"example_translation": "Hello!",
					},
				},
			},
		},
	})
	dest := filepath.Join(t.TempDir(), "out.csv")

	result, err := flashcards.Run(src, dest, nil)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if got, want := result.Processed, 1; got != want {
		t.Fatalf("Run processed: got %d, want %d", got, want)
	}
	if len(result.Rejections) != 0 {
		t.Fatalf("Run rejections: got %v, want none", result.Rejections)
	}

	data, err := os.ReadFile(dest)
	if err != nil {
		t.Fatalf("os.ReadFile: %v", err)
	}
	rows, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	if err != nil {
		t.Fatalf("csv.ReadAll: %v", err)
	}

	expected := [][]string{
		{"Front", "Back", "Tag"},
		{
			"Hallo",
			"<b>Hello</b><br><br>Example: Hallo!<br><i>Hello!</i>",
			"day_1,greetings",
		},
	}
	if diff := cmp.Diff(expected, rows); diff != "" {
		t.Fatalf("Rows (-want, +got):\n%s", diff)
	}
}

// TestRun_batchResilience tests that one bad entry does not stop the batch.
func TestRun_batchResilience(t *testing.T) {
	t.Parallel()

	var entries []any
	for i := 0; i < 10; i++ {
		entry := map[string]any{
			"german":  fmt.Sprintf("Wort %d", i),
			"english": fmt.Sprintf("word %d", i),
		}
		if i == 4 {
			// The fifth entry is missing its translation.
			delete(entry, "english")
		}
		entries = append(entries, entry)
	}
	src := testutil.WriteTempLesson(t, map[string]any{"entries": entries})
	dest := filepath.Join(t.TempDir(), "out.csv")

	result, err := flashcards.Run(src, dest, nil)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if got, want := result.Processed, 9; got != want {
		t.Fatalf("Run processed: got %d, want %d", got, want)
	}
	if got, want := len(result.Rejections), 1; got != want {
		t.Fatalf("Run rejections: got %d, want %d", got, want)
	}

	rejection := result.Rejections[0]
	if diff := cmp.Diff([]string{"entries", "4"}, rejection.Path); diff != "" {
		t.Fatalf("Rejection path (-want, +got):\n%s", diff)
	}
	var missingErr *resolve.MissingFieldError
	if !errors.As(rejection.Reason, &missingErr) {
		t.Fatalf("Rejection reason: got %v, want *MissingFieldError", rejection.Reason)
	}
	if got, want := missingErr.Field, resolve.FieldTranslation; got != want {
		t.Fatalf("Rejection field: got %q, want %q", got, want)
	}

	data, err := os.ReadFile(dest)
	if err != nil {
		t.Fatalf("os.ReadFile: %v", err)
	}
	rows, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	if err != nil {
		t.Fatalf("csv.ReadAll: %v", err)
	}
	// Header plus nine data rows.
	if got, want := len(rows), 10; got != want {
		t.Fatalf("Rows: got %d, want %d", got, want)
	}
}

// TestRun_idempotent tests that repeated runs produce byte-identical
// output.
func TestRun_idempotent(t *testing.T) {
	t.Parallel()

	src := testutil.WriteTempLesson(t, map[string]any{
		"target_language": "german",
		"days": map[string]any{
			"day_2": map[string]any{
				"topic": "Numbers",
				"words": []any{
					map[string]any{"german": "zwei", "english": "two"},
					map[string]any{"german": "drei", "english": "three"},
				},
			},
			"day_1": map[string]any{
				"topic": "Greetings",
				"words": []any{
					map[string]any{"german": "Hallo", "english": "Hello"},
				},
			},
		},
	})

	dir := t.TempDir()
	first := filepath.Join(dir, "first.csv")
	second := filepath.Join(dir, "second.csv")

	if _, err := flashcards.Run(src, first, nil); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if _, err := flashcards.Run(src, second, nil); err != nil {
		t.Fatalf("Run: %v", err)
	}

	firstData, err := os.ReadFile(first)
	if err != nil {
		t.Fatalf("os.ReadFile: %v", err)
	}
	secondData, err := os.ReadFile(second)
	if err != nil {
		t.Fatalf("os.ReadFile: %v", err)
	}
	if !bytes.Equal(firstData, secondData) {
		t.Fatalf("Run output differs between runs:\n%q\n%q", firstData, secondData)
	}
}

// TestRun_noRecords tests that a batch with no surviving records fails and
// writes nothing.
func TestRun_noRecords(t *testing.T) {
	t.Parallel()

	src := testutil.WriteTempLesson(t, map[string]any{
		"entries": []any{
			map[string]any{"german": "Hallo"},
		},
	})
	dest := filepath.Join(t.TempDir(), "out.csv")

	result, err := flashcards.Run(src, dest, nil)
	if !errors.Is(err, flashcards.ErrNoRecords) {
		t.Fatalf("Run: got %v, want %v", err, flashcards.ErrNoRecords)
	}
	if result == nil || len(result.Rejections) != 1 {
		t.Fatalf("Run result: got %+v, want one rejection", result)
	}

	if _, err := os.Stat(dest); !os.IsNotExist(err) {
		t.Fatalf("os.Stat: output file exists after failed batch")
	}
}

// TestRun_malformedDocument tests that an unparseable document aborts the
// batch.
func TestRun_malformedDocument(t *testing.T) {
	t.Parallel()

	src := filepath.Join(t.TempDir(), "lesson.json")
	if err := os.WriteFile(src, []byte(`"just a string"`), 0o600); err != nil {
		t.Fatalf("os.WriteFile: %v", err)
	}
	dest := filepath.Join(t.TempDir(), "out.csv")

	_, err := flashcards.Run(src, dest, nil)
	if !errors.Is(err, normalize.ErrMalformedDocument) {
		t.Fatalf("Run: got %v, want %v", err, normalize.ErrMalformedDocument)
	}
	if _, err := os.Stat(dest); !os.IsNotExist(err) {
		t.Fatalf("os.Stat: output file exists after failed batch")
	}
}

// TestPreview tests card preview without writing.
func TestPreview(t *testing.T) {
	t.Parallel()

	src := testutil.WriteTempLesson(t, map[string]any{
		"entries": []any{
			map[string]any{"german": "eins", "english": "one"},
			map[string]any{"german": "zwei", "english": "two"},
			map[string]any{"german": "drei", "english": "three"},
		},
	})

	cards, rejections, err := flashcards.Preview(src, nil, 2)
	if err != nil {
		t.Fatalf("Preview: %v", err)
	}
	if len(rejections) != 0 {
		t.Fatalf("Preview rejections: got %v, want none", rejections)
	}
	if got, want := len(cards), 2; got != want {
		t.Fatalf("Preview cards: got %d, want %d", got, want)
	}
	if got, want := cards[0].Front, "eins"; got != want {
		t.Fatalf("Preview front: got %q, want %q", got, want)
	}
}

// TestStats tests document statistics.
func TestStats(t *testing.T) {
	t.Parallel()

	src := testutil.WriteTempLesson(t, map[string]any{
		"target_language": "german",
		"content_type":    "vocabulary",
		"topic":           "Basics",
		"days": map[string]any{
			"day_1": map[string]any{
				"words": []any{
					map[string]any{"german": "Hallo", "english": "Hello"},
					"stray",
				},
			},
			"day_2": map[string]any{
				"words": []any{
					map[string]any{"german": "zwei", "english": "two"},
				},
			},
		},
	})

	stats, err := flashcards.Stats(src)
	if err != nil {
		t.Fatalf("Stats: %v", err)
	}

	expected := &flashcards.DocumentStats{
		ContentType:    "vocabulary",
		TargetLanguage: "german",
		Topic:          "Basics",
		Sections:       2,
		Entries:        2,
		Skipped:        1,
	}
	if diff := cmp.Diff(expected, stats); diff != "" {
		t.Fatalf("Stats (-want, +got):\n%s", diff)
	}
}
