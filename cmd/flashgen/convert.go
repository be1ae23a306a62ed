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
	"path/filepath"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/ianlewis/go-flashcards"
	"github.com/ianlewis/go-flashcards/internal/history"
)

func convertCommand() *cli.Command {
	return &cli.Command{
		Name:      "convert",
		Usage:     "Convert a lesson file to a flashcard CSV file",
		ArgsUsage: "SRC [DEST]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Usage:   "read configuration from `FILE`",
				Aliases: []string{"c"},
			},
			&cli.StringFlag{
				Name:  "dialect",
				Usage: "output dialect (ankiapp, anki, quizlet)",
			},
			&cli.BoolFlag{
				Name:  "plain",
				Usage: "use plain text markup instead of HTML",
			},
			&cli.BoolFlag{
				Name:  "no-connections",
				Usage: "omit bridge-language connection annotations",
			},
			&cli.BoolFlag{
				Name:  "no-examples",
				Usage: "omit example sentences",
			},
			&cli.BoolFlag{
				Name:  "no-history",
				Usage: "do not record the export in history",
			},
		},
		Action: func(c *cli.Context) error {
			if c.NArg() < 1 || c.NArg() > 2 {
				cli.ShowSubcommandHelpAndExit(c, ExitCodeFlagParseError)
			}
			src := c.Args().Get(0)
			dest := c.Args().Get(1)
			if dest == "" {
				dest = strings.TrimSuffix(src, filepath.Ext(src)) + ".csv"
			}

			config, err := runConfig(c)
			if err != nil {
				return err
			}

			result, err := flashcards.Run(src, dest, config)
			if result != nil {
				for _, r := range result.Rejections {
					fmt.Fprintf(os.Stderr, "skipped %s: %v\n", strings.Join(r.Path, "/"), r.Reason)
				}
			}
			if err != nil {
				return err
			}

			fmt.Printf("Wrote %s (%d cards, %d rejected)\n", result.OutputPath, result.Processed, len(result.Rejections))

			if !c.Bool("no-history") {
				if err := recordExport(src, result, config.Dialect.Name); err != nil {
					fmt.Fprintf(os.Stderr, "recording history: %v\n", err)
				}
			}

			return nil
		},
	}
}

func recordExport(src string, result *flashcards.BatchResult, dialectName string) error {
	path := historyPath()
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return err
	}
	store, err := history.Open(path)
	if err != nil {
		return err
	}
	defer store.Close()

	return store.Record(&history.Export{
		Source:    src,
		Output:    result.OutputPath,
		Dialect:   dialectName,
		Processed: result.Processed,
		Rejected:  len(result.Rejections),
	})
}
