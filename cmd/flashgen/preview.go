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
	"strings"

	"github.com/k3a/html2text"
	"github.com/urfave/cli/v2"

	"github.com/ianlewis/go-flashcards"
)

func previewCommand() *cli.Command {
	return &cli.Command{
		Name:      "preview",
		Usage:     "Preview formatted cards without writing a file",
		ArgsUsage: "SRC",
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
			&cli.IntFlag{
				Name:    "limit",
				Usage:   "number of cards to preview",
				Aliases: []string{"n"},
				Value:   5,
			},
		},
		Action: func(c *cli.Context) error {
			if c.NArg() != 1 {
				cli.ShowSubcommandHelpAndExit(c, ExitCodeFlagParseError)
			}

			config, err := runConfig(c)
			if err != nil {
				return err
			}

			cards, rejections, err := flashcards.Preview(c.Args().Get(0), config, c.Int("limit"))
			if err != nil {
				return err
			}
			for _, r := range rejections {
				fmt.Fprintf(os.Stderr, "skipped %s: %v\n", strings.Join(r.Path, "/"), r.Reason)
			}

			for _, card := range cards {
				back := card.Back
				if config.Format.HTML {
					back = html2text.HTML2Text(back)
				}
				fmt.Printf("Front: %s\n", card.Front)
				fmt.Printf("Back:  %s\n", strings.ReplaceAll(back, "\n", "\n       "))
				fmt.Printf("Tags:  %s\n", strings.Join(card.Tags, ", "))
				fmt.Println()
			}

			return nil
		},
	}
}
