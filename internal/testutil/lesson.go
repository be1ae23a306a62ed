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

package testutil

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

// MakeLesson marshals a lesson document to JSON.
func MakeLesson(doc map[string]any) []byte {
	b, err := json.Marshal(doc)
	if err != nil {
		panic(err)
	}
	return b
}

// WriteTempLesson writes a lesson document to a file in a temporary
// directory and returns its path.
func WriteTempLesson(t *testing.T, doc map[string]any) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "lesson.json")
	if err := os.WriteFile(path, MakeLesson(doc), 0o600); err != nil {
		t.Fatalf("writing lesson file: %v", err)
	}
	return path
}
