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

// Package flashcards converts structured JSON vocabulary and grammar lesson
// files into CSV flashcard files for import into spaced-repetition apps.
//
// The pipeline has four stages composed by [Run]:
//
//  1. normalize: the lesson document is flattened into a uniform sequence of
//     raw entries regardless of its shape (flat entry lists, day-keyed
//     mappings, or nested unit/lesson mappings).
//  2. resolve: each entry's varying field names are mapped onto a canonical
//     card record using an ordered synonym table.
//  3. format: each record is rendered into a front/back card with HTML or
//     plain markup, and tags are synthesized from metadata.
//  4. csvout: the cards are written in one of the supported CSV dialects.
//
// Records that cannot be converted are reported in the [BatchResult] rather
// than aborting the batch; the batch fails only when the document itself is
// malformed, no record survives, or the output cannot be written.
package flashcards
