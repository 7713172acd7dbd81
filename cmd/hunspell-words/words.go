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
	"bufio"
	"fmt"
	"io"
	"os"
	"runtime"
	"slices"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
	"golang.org/x/text/transform"

	"github.com/ianlewis/go-hunspell/aff"
	"github.com/ianlewis/go-hunspell/internal/folding"
	"github.com/ianlewis/go-hunspell/internal/unique"
)

// uniqueHistorySize is the number of recent words remembered by --unique.
const uniqueHistorySize = 500000

// progressRate is how many entries are processed between progress updates.
const progressRate = 253

func (a *app) wordsCommand() *cli.Command {
	return &cli.Command{
		Name:      "words",
		Usage:     "Output all the words in a dictionary",
		ArgsUsage: "DICT",
		HideHelp:  true,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "output",
				Usage:   "write words to `FILE` instead of stdout",
				Aliases: []string{"o"},
			},
			&cli.BoolFlag{
				Name:               "sort",
				Usage:              "sort the list of words",
				Aliases:            []string{"s"},
				DisableDefaultText: true,
			},
			&cli.BoolFlag{
				Name:               "unique",
				Usage:              "remove repeated words",
				Aliases:            []string{"u"},
				DisableDefaultText: true,
			},
			&cli.BoolFlag{
				Name:               "lower-case",
				Usage:              "output words in lower case",
				Aliases:            []string{"l"},
				DisableDefaultText: true,
			},
			&cli.BoolFlag{
				Name:               "no-transform",
				Usage:              "do not apply affix rules, output root words only",
				Aliases:            []string{"T"},
				DisableDefaultText: true,
			},
			&cli.BoolFlag{
				Name:               "infix",
				Usage:              `mark the root of each word, e.g. "un<do>ing"`,
				Aliases:            []string{"x"},
				DisableDefaultText: true,
			},
			&cli.BoolFlag{
				Name:               "rules",
				Usage:              "append the rules used to generate each word",
				Aliases:            []string{"r"},
				DisableDefaultText: true,
			},
			&cli.BoolFlag{
				Name:               "progress",
				Usage:              "show progress",
				Aliases:            []string{"p"},
				DisableDefaultText: true,
			},
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
			&cli.BoolFlag{
				Name:               "keep-flagged",
				Usage:              "keep words marked FORBIDDENWORD or NEEDAFFIX",
				DisableDefaultText: true,
			},
			helpFlag(),
		},
		Action: a.words,
	}
}

// wordFormatter formats generated words for output.
type wordFormatter struct {
	infix bool
	rules bool
	fold  transform.Transformer
}

func (f *wordFormatter) format(w *aff.Word) (string, error) {
	text := w.Word
	if f.infix {
		text = w.Infix()
	}

	f.fold.Reset()
	text, _, err := transform.String(f.fold, text)
	if err != nil {
		return "", fmt.Errorf("%w: folding %q: %w", ErrHunspellWords, text, err)
	}

	if f.rules && text != "" {
		text += "\t[" + w.Rules() + " ]\t(" + w.Dic + ")"
	}
	return text, nil
}

func (a *app) words(c *cli.Context) error {
	if commandHelp(c) {
		return nil
	}
	if c.NArg() != 1 {
		return fmt.Errorf("%w: expected one dictionary", ErrFlagParse)
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

	a.logger.Info("writing words",
		zap.String("aff", dict.AffPath()),
		zap.String("dic", dict.DicPath()),
		zap.Bool("sort", c.Bool("sort")),
		zap.Bool("unique", c.Bool("unique")),
		zap.Int("max-depth", depth),
	)

	var out io.Writer = c.App.Writer
	if path := c.String("output"); path != "" {
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrHunspellWords, err)
		}
		defer f.Close()
		out = f
	}
	w := bufio.NewWriter(out)

	var filter *unique.Filter[string]
	if c.Bool("unique") {
		filter, err = unique.New[string](uniqueHistorySize)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrHunspellWords, err)
		}
	}

	f := &wordFormatter{
		infix: c.Bool("infix"),
		rules: c.Bool("rules"),
		fold: folding.New(folding.Options{
			Lower: c.Bool("lower-case"),
			Lang:  dict.Aff().Lang,
		})(),
	}

	gen := &generator{
		dict:        dict,
		jobs:        c.Int("jobs"),
		rootsOnly:   c.Bool("no-transform"),
		keepFlagged: c.Bool("keep-flagged"),
	}

	total := int64(-1)
	if c.Bool("progress") {
		s, err := dict.Scanner()
		if err != nil {
			return fmt.Errorf("%w: %w", ErrHunspellWords, err)
		}
		total = s.Count()
		s.Close()
	}

	sortWords := c.Bool("sort")
	var sorted []string
	var current, reported int
	err = gen.generate(c.Context, func(r result) error {
		for _, word := range r.words {
			text, err := f.format(word)
			if err != nil {
				return err
			}
			if text == "" {
				continue
			}
			if filter != nil && !filter.Keep(text) {
				continue
			}
			if sortWords {
				sorted = append(sorted, text)
				continue
			}
			if _, err := fmt.Fprintln(w, text); err != nil {
				return fmt.Errorf("%w: writing words: %w", ErrHunspellWords, err)
			}
		}

		current += r.entries
		if total >= 0 && current/progressRate != reported/progressRate {
			reported = current
			fmt.Fprintf(c.App.ErrWriter, "\r%d / %d", current, total)
		}
		return nil
	})
	if err != nil {
		return err
	}

	if sortWords {
		a.logger.Info("sorting", zap.Int("words", len(sorted)))
		slices.Sort(sorted)
		for _, text := range sorted {
			if _, err := fmt.Fprintln(w, text); err != nil {
				return fmt.Errorf("%w: writing words: %w", ErrHunspellWords, err)
			}
		}
	}

	if err := w.Flush(); err != nil {
		return fmt.Errorf("%w: writing words: %w", ErrHunspellWords, err)
	}
	if total >= 0 {
		fmt.Fprintf(c.App.ErrWriter, "\r%d / %d\n", current, total)
	}
	a.logger.Info("done")
	return nil
}
