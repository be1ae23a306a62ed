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
	"fmt"
	"os"

	"github.com/rodaine/table"
	"github.com/urfave/cli/v2"

	"github.com/ianlewis/go-flashcards"
)

func statsCommand() *cli.Command {
	return &cli.Command{
		Name:      "stats",
		Usage:     "Show entry statistics for lesson files",
		ArgsUsage: "SRC...",
		Action: func(c *cli.Context) error {
			if c.NArg() < 1 {
				cli.ShowSubcommandHelpAndExit(c, ExitCodeFlagParseError)
			}

			tbl := table.New("File", "Type", "Language", "Topic", "Sections", "Entries", "Skipped")

			var failed bool
			for _, path := range c.Args().Slice() {
				stats, err := flashcards.Stats(path)
				if err != nil {
					fmt.Fprintln(os.Stderr, err)
					failed = true
					continue
				}
				tbl.AddRow(path, stats.ContentType, stats.TargetLanguage, stats.Topic,
					stats.Sections, stats.Entries, stats.Skipped)
			}
			tbl.Print()

			if failed {
				os.Exit(ExitCodeUnknownError)
			}
			return nil
		},
	}
}
