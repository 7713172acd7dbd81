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

	"github.com/rodaine/table"
	"github.com/urfave/cli/v2"
)

func (a *app) listCommand() *cli.Command {
	return &cli.Command{
		Name:     "list",
		Usage:    "List the dictionaries found in the data directories",
		HideHelp: true,
		Flags: []cli.Flag{
			helpFlag(),
		},
		Action: a.list,
	}
}

func (a *app) list(c *cli.Context) error {
	if commandHelp(c) {
		return nil
	}
	if c.NArg() != 0 {
		return fmt.Errorf("%w: unexpected arguments", ErrFlagParse)
	}

	tbl := table.New("Name", "Lang", "Set", "Flag", "Prefixes", "Suffixes", "Path").WithWriter(c.App.Writer)
	for _, d := range a.openAll(c) {
		aff := d.Aff()
		tbl.AddRow(
			d.Name(),
			aff.Lang,
			aff.CharacterSet,
			aff.FlagMode,
			aff.Prefixes.Len(),
			aff.Suffixes.Len(),
			d.DicPath(),
		)
	}
	tbl.Print()

	return nil
}
