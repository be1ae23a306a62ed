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

// Package format renders canonical card records into front/back card text.
//
// Cards are rendered in one of two markup modes. HTML mode uses <b>, <i> and
// <br> markup for apps that accept embedded HTML. Plain mode uses asterisk
// emphasis markers and newlines for apps that do not.
package format

import (
	"strings"

	"github.com/ianlewis/go-flashcards/resolve"
)

// Options are options for a Formatter.
type Options struct {
	// HTML enables HTML markup in card backs. When false, plain emphasis
	// markers and newlines are used instead.
	HTML bool

	// ShowConnections includes the bridge-language annotation in card
	// backs when the record carries one.
	ShowConnections bool

	// IncludeExamples includes the example block in card backs.
	IncludeExamples bool

	// IncludePronunciation includes the pronunciation hint in card backs.
	IncludePronunciation bool

	// ConnectionLabel is the bridge-language name shown before connection
	// annotations, e.g. "Dutch".
	ConnectionLabel string

	// TagTemplate builds tags from whitespace-separated tokens. The
	// placeholders {week}, {day}, {topic} and {difficulty} are replaced
	// with record metadata; tokens with unresolved placeholders are
	// dropped.
	TagTemplate string
}

// DefaultOptions is the default options for a Formatter.
var DefaultOptions = &Options{
	HTML:                 true,
	ShowConnections:      true,
	IncludeExamples:      true,
	IncludePronunciation: true,
	ConnectionLabel:      "Dutch",
	TagTemplate:          "week_{week} day_{day}",
}

// Card is a formatted flashcard.
type Card struct {
	// Front is the target-language side. Never empty.
	Front string

	// Back is the rendered translation side.
	Back string

	// Tags are the card's tags, normalized and deduplicated.
	Tags []string
}

// Formatter renders records into cards.
type Formatter struct {
	opts Options
}

// NewFormatter returns a formatter with the given options.
func NewFormatter(options *Options) *Formatter {
	if options == nil {
		options = DefaultOptions
	}
	return &Formatter{opts: *options}
}

// Format renders a record into a card. It never fails for a record that
// passed resolution; missing optional fields degrade to omission.
func (f *Formatter) Format(rec *resolve.Record) *Card {
	var segments []string

	translation := f.bold(rec.Translation)
	if f.opts.ShowConnections && rec.Connection != "" {
		label := f.opts.ConnectionLabel
		if label == "" {
			label = DefaultOptions.ConnectionLabel
		}
		translation += " " + f.italic("("+label+": "+rec.Connection+")")
	}
	segments = append(segments, translation)

	if f.opts.IncludeExamples && rec.Example != "" {
		example := "Example: " + rec.Example
		if rec.ExampleTranslation != "" {
			example += f.lineBreak() + f.italic(rec.ExampleTranslation)
		}
		segments = append(segments, example)
	}

	if f.opts.IncludePronunciation && rec.Pronunciation != "" {
		segments = append(segments, f.italic("Pronunciation: "+rec.Pronunciation))
	}

	if rec.Notes != "" {
		segments = append(segments, "Note: "+rec.Notes)
	}

	return &Card{
		Front: strings.TrimSpace(rec.Primary),
		Back:  strings.Join(segments, f.segmentBreak()),
		Tags:  f.tags(rec),
	}
}

func (f *Formatter) bold(s string) string {
	if f.opts.HTML {
		return "<b>" + s + "</b>"
	}
	return "**" + s + "**"
}

func (f *Formatter) italic(s string) string {
	if f.opts.HTML {
		return "<i>" + s + "</i>"
	}
	return "*" + s + "*"
}

func (f *Formatter) lineBreak() string {
	if f.opts.HTML {
		return "<br>"
	}
	return "\n"
}

func (f *Formatter) segmentBreak() string {
	if f.opts.HTML {
		return "<br><br>"
	}
	return "\n"
}
