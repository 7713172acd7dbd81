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
	"go.uber.org/zap"

	"github.com/ianlewis/go-hunspell"
)

const (
	// ExitCodeSuccess is successful error code.
	ExitCodeSuccess int = iota

	// ExitCodeFlagParseError is the exit code for a flag parsing error.
	ExitCodeFlagParseError

	// ExitCodeUnknownError is the exit code for an unknown error.
	ExitCodeUnknownError
)

// ErrHunspellWords is a parent error for all command errors.
var ErrHunspellWords = errors.New("hunspell-words")

// ErrFlagParse is a flag parsing error.
var ErrFlagParse = fmt.Errorf("%w: parsing flags", ErrHunspellWords)

// ErrDictNotFound indicates a dictionary could not be found.
var ErrDictNotFound = fmt.Errorf("%w: dictionary not found", ErrHunspellWords)

var copyrightNames = []string{
	"2025 Ian Lewis",
}

//nolint:gochecknoinits // init needed needed for global variable.
func init() {
	// Set the HelpFlag to a random name so that it isn't used. `cli` handles
	// the flag with the root command such that it takes a command name argument
	// but we don't use commands that way.
	//
	// This is done because `hunspell-words --help foo` will display a
	// "command foo not found" error instead of the help.
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

// helpFlag is added to every command since the default help flag is disabled.
func helpFlag() cli.Flag {
	return &cli.BoolFlag{
		Name:               "help",
		Usage:              "print this help text and exit",
		Aliases:            []string{"h"},
		DisableDefaultText: true,
	}
}

// app holds the state shared by commands.
type app struct {
	cfg    *config
	logger *zap.Logger
}

// openDict opens a dictionary given as a path or as a name found in one of
// the data directories.
func (a *app) openDict(c *cli.Context, name string) (*hunspell.Hunspell, error) {
	opts := &hunspell.Options{Logger: a.logger}

	h, err := hunspell.Open(name, opts)
	if err == nil {
		return h, nil
	}
	if !errors.Is(err, os.ErrNotExist) || strings.ContainsRune(name, filepath.Separator) {
		return nil, fmt.Errorf("%w: %w", ErrHunspellWords, err)
	}

	for _, dir := range c.StringSlice("data-dir") {
		h, err := hunspell.Open(filepath.Join(dir, name), opts)
		if err == nil {
			return h, nil
		}
		if !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %w", ErrHunspellWords, err)
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrDictNotFound, name)
}

// openAll opens all dictionaries in the data directories.
func (a *app) openAll(c *cli.Context) []*hunspell.Hunspell {
	var dicts []*hunspell.Hunspell
	for _, dir := range c.StringSlice("data-dir") {
		openDicts, openErrs := hunspell.OpenAll(dir, &hunspell.Options{Logger: a.logger})
		for _, err := range openErrs {
			if errors.Is(err, os.ErrNotExist) {
				a.logger.Debug("skipping", zap.String("dir", dir), zap.Error(err))
				continue
			}
			a.logger.Warn("opening dictionary", zap.String("dir", dir), zap.Error(err))
		}
		dicts = append(dicts, openDicts...)
	}
	return dicts
}

func newHunspellWordsApp(cfg *config) *cli.App {
	a := &app{
		cfg:    cfg,
		logger: zap.NewNop(),
	}

	return &cli.App{
		Name:  filepath.Base(os.Args[0]),
		Usage: "Generate all words from Hunspell dictionaries.",
		Description: strings.Join([]string{
			"Hunspell dictionary word list generator written in Go.",
			"http://github.com/ianlewis/go-hunspell",
		}, "\n"),
		Flags: []cli.Flag{
			&cli.StringSliceFlag{
				Name:    "data-dir",
				Usage:   "search for dictionaries in `DIR`",
				Aliases: []string{"d"},
				Value:   cli.NewStringSlice(dictLocations(cfg)...),
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "log messages at `LEVEL` and above",
				Value: cfg.LogLevel,
			},

			// Special flags are shown at the end.
			helpFlag(),
			&cli.BoolFlag{
				Name:               "version",
				Usage:              "print version information and exit",
				Aliases:            []string{"V"},
				DisableDefaultText: true,
			},
		},
		Copyright:       strings.Join(copyrightNames, "\n"),
		HideHelp:        true,
		HideHelpCommand: true,
		Before: func(c *cli.Context) error {
			logger, err := newLogger(c.String("log-level"))
			if err != nil {
				return err
			}
			a.logger = logger
			return nil
		},
		After: func(*cli.Context) error {
			// Syncing stderr fails on some platforms.
			_ = a.logger.Sync()
			return nil
		},
		Action: func(c *cli.Context) error {
			if c.Bool("version") {
				return printVersion(c)
			}

			check(cli.ShowAppHelp(c))
			return nil
		},
		Commands: []*cli.Command{
			a.wordsCommand(),
			a.infoCommand(),
			a.listCommand(),
			a.lookupCommand(),
		},
	}
}

// commandHelp shows the command's help if --help was given.
func commandHelp(c *cli.Context) bool {
	if !c.Bool("help") {
		return false
	}
	check(cli.ShowCommandHelp(c, c.Command.Name))
	return true
}
