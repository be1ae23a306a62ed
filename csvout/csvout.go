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

// Package csvout serializes formatted cards to CSV in a given dialect.
package csvout

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/ianlewis/go-flashcards/dialect"
	"github.com/ianlewis/go-flashcards/format"
)

// Writer writes card sequences as CSV files in a single dialect.
type Writer struct {
	dialect dialect.Dialect
}

// NewWriter returns a writer for the given dialect.
func NewWriter(d dialect.Dialect) *Writer {
	return &Writer{dialect: d}
}

// WriteTo writes the cards to w in input order, header first when the
// dialect has one. Fields containing the delimiter, quotes or line breaks
// are quoted per RFC 4180.
func (w *Writer) WriteTo(out io.Writer, cards []*format.Card) error {
	cw := csv.NewWriter(out)
	cw.Comma = w.dialect.Comma

	if w.dialect.Headers != nil {
		if err := cw.Write(w.dialect.Headers); err != nil {
			return fmt.Errorf("writing header: %w", err)
		}
	}
	for _, card := range cards {
		if err := cw.Write(w.dialect.Row(card)); err != nil {
			return fmt.Errorf("writing card %q: %w", card.Front, err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flushing csv: %w", err)
	}
	return nil
}

// WriteFile writes the cards to the named file. Output is staged to a
// temporary file in the destination directory and renamed into place only
// after every row is written, so a failure never leaves a partial file
// behind.
func (w *Writer) WriteFile(path string, cards []*format.Card) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("creating temp file in %q: %w", dir, err)
	}
	tmpPath := tmp.Name()

	if err := w.WriteTo(tmp, cards); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("closing %q: %w", tmpPath, err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("replacing %q: %w", path, err)
	}
	return nil
}
