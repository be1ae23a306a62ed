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

package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/ianlewis/go-flashcards"
	"github.com/ianlewis/go-flashcards/dialect"
)

const (
	// ExitCodeSuccess is successful error code.
	ExitCodeSuccess int = iota

	// ExitCodeFlagParseError is the exit code for a flag parsing error.
	ExitCodeFlagParseError

	// ExitCodeUnknownError is the exit code for an unknown error.
	ExitCodeUnknownError
)

// ErrFlashgen is a parent error for all command errors.
var ErrFlashgen = errors.New("flashgen")

// ErrFlagParse is a flag parsing error.
var ErrFlagParse = fmt.Errorf("%w: parsing flags", ErrFlashgen)

//nolint:gochecknoinits // init needed needed for global variable.
func init() {
	// Set the HelpFlag to a random name so that it isn't used. `cli` handles
	// the flag with the root command such that it takes a command name argument
	// but we don't use commands.
	//
	// This flag is hidden by the help output.
	// See: github.com/urfave/cli/issues/1809
	cli.HelpFlag = &cli.BoolFlag{
		// NOTE: Use a random name no one would guess.
		Name:               "d41d8cd98f00b204e980",
		DisableDefaultText: true,
	}
}

// check checks the error and panics if not nil.
func check(err error) {
	if err != nil {
		panic(err)
	}
}

// runConfig builds the pipeline configuration from the command's flags.
func runConfig(c *cli.Context) (*flashcards.Config, error) {
	var config *flashcards.Config
	var err error
	if path := c.String("config"); path != "" {
		config, err = flashcards.LoadConfig(path)
		if err != nil {
			return nil, err
		}
	} else {
		config = flashcards.DefaultConfig()
	}

	if name := c.String("dialect"); name != "" {
		d, err := dialect.Get(name)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrFlagParse, err)
		}
		config.Dialect = d
	}
	if c.Bool("plain") {
		config.Format.HTML = false
	}
	if c.Bool("no-connections") {
		config.Format.ShowConnections = false
	}
	if c.Bool("no-examples") {
		config.Format.IncludeExamples = false
	}

	return config, nil
}

// historyPath returns the path of the export history database.
func historyPath() string {
	if path := os.Getenv("FLASHGEN_HISTORY"); path != "" {
		return path
	}
	if homeDir, err := os.UserHomeDir(); err == nil && homeDir != "" {
		return filepath.Join(homeDir, ".flashgen", "history.db")
	}
	return "flashgen-history.db"
}

func newFlashgenApp() *cli.App {
	return &cli.App{
		Name:  filepath.Base(os.Args[0]),
		Usage: "Generate flashcard CSV files from JSON lesson files.",
		Description: strings.Join([]string{
			"Flashcard CSV generator written in Go.",
			"http://github.com/ianlewis/go-flashcards",
		}, "\n"),
		Flags: []cli.Flag{
			// Special flags are shown at the end.
			&cli.BoolFlag{
				Name:               "help",
				Usage:              "print this help text and exit",
				Aliases:            []string{"h"},
				DisableDefaultText: true,
			},
			&cli.BoolFlag{
				Name:               "version",
				Usage:              "print version information and exit",
				Aliases:            []string{"V"},
				DisableDefaultText: true,
			},
		},
		HideHelp:        true,
		HideHelpCommand: true,
		Action: func(c *cli.Context) error {
			if c.Bool("version") {
				return printVersion(c)
			}

			check(cli.ShowAppHelp(c))
			return nil
		},
		Commands: []*cli.Command{
			convertCommand(),
			previewCommand(),
			statsCommand(),
			historyCommand(),
		},
	}
}
