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
	"time"

	"github.com/rodaine/table"
	"github.com/urfave/cli/v2"

	"github.com/ianlewis/go-flashcards/internal/history"
)

func historyCommand() *cli.Command {
	return &cli.Command{
		Name:  "history",
		Usage: "Show past exports",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:    "limit",
				Usage:   "number of exports to show",
				Aliases: []string{"n"},
				Value:   20,
			},
			&cli.BoolFlag{
				Name:  "clear",
				Usage: "clear the export history",
			},
		},
		Action: func(c *cli.Context) error {
			store, err := history.Open(historyPath())
			if err != nil {
				return err
			}
			defer store.Close()

			if c.Bool("clear") {
				return store.Clear()
			}

			exports, err := store.List(c.Int("limit"))
			if err != nil {
				return err
			}

			tbl := table.New("When", "Source", "Output", "Dialect", "Cards", "Rejected")
			for _, e := range exports {
				tbl.AddRow(e.CreatedAt.Local().Format(time.DateTime),
					e.Source, e.Output, e.Dialect, e.Processed, e.Rejected)
			}
			tbl.Print()

			return nil
		},
	}
}
