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
	"runtime"
	"slices"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"github.com/ianlewis/go-hunspell/aff"
	"github.com/ianlewis/go-hunspell/internal/folding"
	"github.com/ianlewis/go-hunspell/internal/index"
)

// ErrWordNotFound indicates a word not generated by the dictionary.
var ErrWordNotFound = fmt.Errorf("%w: word not found", ErrHunspellWords)

func (a *app) lookupCommand() *cli.Command {
	return &cli.Command{
		Name:      "lookup",
		Usage:     "Find the dictionary entries generating words",
		ArgsUsage: "DICT WORD...",
		HideHelp:  true,
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:  "max-depth",
				Usage: "apply at most `N` affixes in a chain",
				Value: a.cfg.MaxDepth,
			},
			&cli.IntFlag{
				Name:    "jobs",
				Usage:   "expand `N` batches of entries in parallel",
				Aliases: []string{"j"},
				Value:   runtime.NumCPU(),
			},
			helpFlag(),
		},
		Action: a.lookup,
	}
}

func (a *app) lookup(c *cli.Context) error {
	if commandHelp(c) {
		return nil
	}
	if c.NArg() < 2 {
		return fmt.Errorf("%w: expected a dictionary and at least one word", ErrFlagParse)
	}
	depth := c.Int("max-depth")
	if depth < 0 {
		return fmt.Errorf("%w: --max-depth must not be negative", ErrFlagParse)
	}

	dict, err := a.openDict(c, c.Args().First())
	if err != nil {
		return err
	}
	dict.Aff().MaxSuffixDepth = depth

	fold := folding.New(folding.Options{
		Lower: true,
		Lang:  dict.Aff().Lang,
	})

	var b index.Builder[*aff.Word]
	gen := &generator{
		dict:        dict,
		jobs:        c.Int("jobs"),
		keepFlagged: true,
	}
	err = gen.generate(c.Context, func(r result) error {
		for _, w := range r.words {
			// Queries are matched before output conversion.
			key, err := folding.String(fold, w.Prefix+w.Base+w.Suffix)
			if err != nil {
				return fmt.Errorf("%w: %w", ErrHunspellWords, err)
			}
			b.Add(key, w)
		}
		return nil
	})
	if err != nil {
		return err
	}
	idx := b.Build()
	a.logger.Debug("indexed words", zap.Int("words", idx.Len()))

	var missing int
	for _, query := range c.Args().Slice()[1:] {
		key, err := folding.String(fold, dict.Aff().InputConversion.Convert(query))
		if err != nil {
			return fmt.Errorf("%w: %w", ErrHunspellWords, err)
		}

		var seen []string
		for _, w := range idx.Search(key) {
			if slices.Contains(seen, w.Dic) {
				continue
			}
			seen = append(seen, w.Dic)
			fmt.Fprintf(c.App.Writer, "%s\t%s\t[%s ]\t(%s)%s\n", query, w.Infix(), w.Rules(), w.Dic, flagNote(w.Flags))
		}
		if len(seen) == 0 {
			missing++
			fmt.Fprintf(c.App.ErrWriter, "%s: not found\n", query)
		}
	}

	if missing > 0 {
		return fmt.Errorf("%w: %d of %d", ErrWordNotFound, missing, c.NArg()-1)
	}
	return nil
}

// flagNote describes the marker flags relevant to a lookup.
func flagNote(f aff.WordFlags) string {
	switch {
	case f.Forbidden:
		return "\tforbidden"
	case f.NeedAffix:
		return "\tneeds affix"
	case f.OnlyInCompound:
		return "\tonly in compounds"
	default:
		return ""
	}
}
