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

package flashcards

import (
	"errors"
	"fmt"
	"os"

	"github.com/ianlewis/go-flashcards/csvout"
	"github.com/ianlewis/go-flashcards/format"
	"github.com/ianlewis/go-flashcards/normalize"
)

// ErrNoRecords indicates no record in the document survived normalization
// and field resolution, so there is nothing to write.
var ErrNoRecords = errors.New("no records produced")

// Rejection is a record that was skipped, with the source path it was found
// at and the reason it was rejected.
type Rejection struct {
	// Path is the traversal path of the rejected entry in the source
	// document.
	Path []string

	// Reason is the rejection reason.
	Reason error
}

// BatchResult is the outcome of one pipeline run.
type BatchResult struct {
	// Processed is the number of cards written.
	Processed int

	// Rejections are the records that were skipped, in document order.
	Rejections []Rejection

	// OutputPath is the path of the written CSV file. Empty if nothing
	// was written.
	OutputPath string
}

// Run converts the lesson file at sourcePath into a CSV flashcard file at
// destPath.
//
// Per-record failures are collected in the result's Rejections and do not
// stop the batch. Run fails outright only when the source cannot be read or
// parsed, when no record survives, or when writing the destination fails; a
// write failure never leaves a partial output file behind.
func Run(sourcePath, destPath string, config *Config) (*BatchResult, error) {
	if config == nil {
		config = DefaultConfig()
	}

	cards, rejections, err := convertFile(sourcePath, config)
	if err != nil {
		return nil, err
	}

	result := &BatchResult{
		Processed:  len(cards),
		Rejections: rejections,
	}
	if len(cards) == 0 {
		return result, fmt.Errorf("%w: %q", ErrNoRecords, sourcePath)
	}

	w := csvout.NewWriter(config.Dialect)
	if err := w.WriteFile(destPath, cards); err != nil {
		return result, fmt.Errorf("writing %q: %w", destPath, err)
	}
	result.OutputPath = destPath

	return result, nil
}

// Preview converts the lesson file at sourcePath and returns the first
// limit formatted cards without writing anything. A limit <= 0 returns all
// cards.
func Preview(sourcePath string, config *Config, limit int) ([]*format.Card, []Rejection, error) {
	if config == nil {
		config = DefaultConfig()
	}

	cards, rejections, err := convertFile(sourcePath, config)
	if err != nil {
		return nil, nil, err
	}
	if limit > 0 && len(cards) > limit {
		cards = cards[:limit]
	}
	return cards, rejections, nil
}

// DocumentStats summarizes a lesson file without converting it.
type DocumentStats struct {
	ContentType    string
	TargetLanguage string
	Topic          string

	// Sections is the number of leaf entry lists in the document.
	Sections int

	// Entries is the number of entries found.
	Entries int

	// Skipped is the number of entries and subtrees skipped during
	// normalization.
	Skipped int
}

// Stats returns summary statistics for the lesson file at sourcePath.
func Stats(sourcePath string) (*DocumentStats, error) {
	doc, err := loadDocument(sourcePath)
	if err != nil {
		return nil, err
	}

	s := normalize.NewScanner(doc, nil)
	stats := &DocumentStats{
		ContentType:    doc.Meta["content_type"],
		TargetLanguage: doc.Meta["target_language"],
		Topic:          doc.Meta["topic"],
	}
	for s.Scan() {
		stats.Entries++
	}
	stats.Sections = s.Sections()
	stats.Skipped = len(s.Warnings())

	return stats, nil
}

// convertFile runs the normalize, resolve and format stages over a lesson
// file.
func convertFile(sourcePath string, config *Config) ([]*format.Card, []Rejection, error) {
	doc, err := loadDocument(sourcePath)
	if err != nil {
		return nil, nil, err
	}

	var cards []*format.Card
	var rejections []Rejection
	f := format.NewFormatter(&config.Format)

	s := normalize.NewScanner(doc, nil)
	for s.Scan() {
		entry := s.Entry()
		rec, err := config.Synonyms.Resolve(entry)
		if err != nil {
			rejections = append(rejections, Rejection{
				Path:   entry.Path,
				Reason: err,
			})
			continue
		}
		cards = append(cards, f.Format(rec))
	}
	for _, w := range s.Warnings() {
		rejections = append(rejections, Rejection{
			Path:   w.Path,
			Reason: w.Reason,
		})
	}

	return cards, rejections, nil
}

func loadDocument(sourcePath string) (*normalize.Document, error) {
	data, err := os.ReadFile(sourcePath)
	if err != nil {
		return nil, fmt.Errorf("reading %q: %w", sourcePath, err)
	}
	doc, err := normalize.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parsing %q: %w", sourcePath, err)
	}
	return doc, nil
}
