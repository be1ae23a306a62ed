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
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/ianlewis/go-flashcards/dialect"
	"github.com/ianlewis/go-flashcards/format"
	"github.com/ianlewis/go-flashcards/resolve"
)

// Config is the full configuration for a pipeline run. It is assembled once
// and treated as immutable; the pipeline never mutates or persists it.
type Config struct {
	// Synonyms maps canonical field names to accepted source keys.
	Synonyms *resolve.SynonymTable

	// Format are the card formatting options.
	Format format.Options

	// Dialect is the output CSV dialect.
	Dialect dialect.Dialect
}

// DefaultConfig returns the default configuration: default synonyms, HTML
// formatting and the AnkiApp dialect.
func DefaultConfig() *Config {
	return &Config{
		Synonyms: resolve.DefaultSynonyms(),
		Format:   *format.DefaultOptions,
		Dialect:  dialect.AnkiApp,
	}
}

// fileConfig is the YAML form of a Config. Omitted values keep their
// defaults.
type fileConfig struct {
	Dialect string `yaml:"dialect"`

	Format struct {
		HTML                 *bool  `yaml:"html"`
		ShowConnections      *bool  `yaml:"show_connections"`
		IncludeExamples      *bool  `yaml:"include_examples"`
		IncludePronunciation *bool  `yaml:"include_pronunciation"`
		ConnectionLabel      string `yaml:"connection_label"`
		TagTemplate          string `yaml:"tag_template"`
	} `yaml:"format"`

	Synonyms            map[string][]string `yaml:"synonyms"`
	ConnectionLanguages []string            `yaml:"connection_languages"`
}

// LoadConfig reads a YAML configuration file. Values not present in the
// file keep their defaults. The configuration is validated once here rather
// than probed during formatting.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config %q: %w", path, err)
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return nil, fmt.Errorf("parsing config %q: %w", path, err)
	}

	config := DefaultConfig()

	if fc.Dialect != "" {
		d, err := dialect.Get(fc.Dialect)
		if err != nil {
			return nil, fmt.Errorf("config %q: %w", path, err)
		}
		config.Dialect = d
	}

	if fc.Format.HTML != nil {
		config.Format.HTML = *fc.Format.HTML
	}
	if fc.Format.ShowConnections != nil {
		config.Format.ShowConnections = *fc.Format.ShowConnections
	}
	if fc.Format.IncludeExamples != nil {
		config.Format.IncludeExamples = *fc.Format.IncludeExamples
	}
	if fc.Format.IncludePronunciation != nil {
		config.Format.IncludePronunciation = *fc.Format.IncludePronunciation
	}
	if fc.Format.ConnectionLabel != "" {
		config.Format.ConnectionLabel = fc.Format.ConnectionLabel
	}
	if fc.Format.TagTemplate != "" {
		config.Format.TagTemplate = fc.Format.TagTemplate
	}

	if len(fc.Synonyms) > 0 || len(fc.ConnectionLanguages) > 0 {
		table, err := resolve.NewSynonymTable(fc.Synonyms, fc.ConnectionLanguages)
		if err != nil {
			return nil, fmt.Errorf("config %q: %w", path, err)
		}
		config.Synonyms = table
	}

	return config, nil
}
