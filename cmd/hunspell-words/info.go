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
	"io"
	"strconv"

	"github.com/rodaine/table"
	"github.com/urfave/cli/v2"
	"gopkg.in/yaml.v3"

	"github.com/ianlewis/go-hunspell"
	"github.com/ianlewis/go-hunspell/aff"
)

type entryInfo struct {
	Strip        string   `yaml:"strip"`
	Add          string   `yaml:"add"`
	Continuation string   `yaml:"continuation,omitempty"`
	Condition    string   `yaml:"condition"`
	Morph        []string `yaml:"morph,omitempty"`
}

type ruleInfo struct {
	Flag         string      `yaml:"flag"`
	CrossProduct bool        `yaml:"cross_product"`
	Entries      []entryInfo `yaml:"entries"`
}

type convInfo struct {
	Pattern     string `yaml:"pattern"`
	Replacement string `yaml:"replacement"`
}

// affInfo is the summary of an .aff file written by the info command.
type affInfo struct {
	Name           string     `yaml:"name"`
	Aff            string     `yaml:"aff"`
	Dic            string     `yaml:"dic"`
	Set            string     `yaml:"set"`
	Flag           string     `yaml:"flag"`
	Lang           string     `yaml:"lang,omitempty"`
	Try            string     `yaml:"try,omitempty"`
	WordChars      string     `yaml:"wordchars,omitempty"`
	NoSuggest      string     `yaml:"nosuggest,omitempty"`
	ForbiddenWord  string     `yaml:"forbiddenword,omitempty"`
	NeedAffix      string     `yaml:"needaffix,omitempty"`
	KeepCase       string     `yaml:"keepcase,omitempty"`
	OnlyInCompound string     `yaml:"onlyincompound,omitempty"`
	CompoundFlag   string     `yaml:"compoundflag,omitempty"`
	CompoundMin    int        `yaml:"compoundmin"`
	CompoundRules  []string   `yaml:"compoundrules,omitempty"`
	FlagAliases    []string   `yaml:"af,omitempty"`
	InputConv      []convInfo `yaml:"iconv,omitempty"`
	OutputConv     []convInfo `yaml:"oconv,omitempty"`
	Prefixes       []ruleInfo `yaml:"prefixes,omitempty"`
	Suffixes       []ruleInfo `yaml:"suffixes,omitempty"`
}

func newAffInfo(h *hunspell.Hunspell) *affInfo {
	a := h.Aff()
	info := &affInfo{
		Name:           h.Name(),
		Aff:            h.AffPath(),
		Dic:            h.DicPath(),
		Set:            a.CharacterSet,
		Flag:           a.FlagMode.String(),
		Lang:           a.Lang,
		Try:            a.Try,
		WordChars:      a.WordChars,
		NoSuggest:      a.NoSuggest,
		ForbiddenWord:  a.ForbiddenWord,
		NeedAffix:      a.NeedAffix,
		KeepCase:       a.KeepCase,
		OnlyInCompound: a.OnlyInCompound,
		CompoundFlag:   a.CompoundFlag,
		CompoundMin:    a.CompoundMin,
		CompoundRules:  a.CompoundRules,
		FlagAliases:    a.FlagAliases,
		InputConv:      convInfos(a.InputConversion),
		OutputConv:     convInfos(a.OutputConversion),
		Prefixes:       ruleInfos(a.Prefixes),
		Suffixes:       ruleInfos(a.Suffixes),
	}
	return info
}

func convInfos(t *aff.ConvTable) []convInfo {
	var out []convInfo
	for _, c := range t.Conversions() {
		out = append(out, convInfo(c))
	}
	return out
}

func ruleInfos(t *aff.RuleTable) []ruleInfo {
	var out []ruleInfo
	for _, r := range t.Rules() {
		ri := ruleInfo{
			Flag:         r.ID,
			CrossProduct: r.CrossProduct,
		}
		for _, e := range r.Entries {
			ri.Entries = append(ri.Entries, entryInfo{
				Strip:        e.Strip,
				Add:          e.Add,
				Continuation: e.Continuation,
				Condition:    e.Condition.String(),
				Morph:        e.Morph,
			})
		}
		out = append(out, ri)
	}
	return out
}

func (a *app) infoCommand() *cli.Command {
	return &cli.Command{
		Name:      "info",
		Usage:     "Show the settings and affix rules of a dictionary",
		ArgsUsage: "DICT",
		HideHelp:  true,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "format",
				Usage: "output `FORMAT`, text or yaml",
				Value: "text",
			},
			helpFlag(),
		},
		Action: a.info,
	}
}

func (a *app) info(c *cli.Context) error {
	if commandHelp(c) {
		return nil
	}
	if c.NArg() != 1 {
		return fmt.Errorf("%w: expected one dictionary", ErrFlagParse)
	}

	var write func(io.Writer, *affInfo) error
	switch c.String("format") {
	case "text":
		write = writeInfoText
	case "yaml":
		write = writeInfoYAML
	default:
		return fmt.Errorf("%w: unknown format %q", ErrFlagParse, c.String("format"))
	}

	dict, err := a.openDict(c, c.Args().First())
	if err != nil {
		return err
	}
	return write(c.App.Writer, newAffInfo(dict))
}

func writeInfoYAML(w io.Writer, info *affInfo) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(info); err != nil {
		return fmt.Errorf("%w: encoding yaml: %w", ErrHunspellWords, err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("%w: encoding yaml: %w", ErrHunspellWords, err)
	}
	return nil
}

func writeInfoText(w io.Writer, info *affInfo) error {
	settings := table.New("Directive", "Value").WithWriter(w)
	for _, row := range [][2]string{
		{"Name", info.Name},
		{"Aff", info.Aff},
		{"Dic", info.Dic},
		{"SET", info.Set},
		{"FLAG", info.Flag},
		{"LANG", info.Lang},
		{"TRY", info.Try},
		{"WORDCHARS", info.WordChars},
		{"NOSUGGEST", info.NoSuggest},
		{"FORBIDDENWORD", info.ForbiddenWord},
		{"NEEDAFFIX", info.NeedAffix},
		{"KEEPCASE", info.KeepCase},
		{"ONLYINCOMPOUND", info.OnlyInCompound},
		{"COMPOUNDFLAG", info.CompoundFlag},
		{"COMPOUNDMIN", strconv.Itoa(info.CompoundMin)},
		{"COMPOUNDRULE", strconv.Itoa(len(info.CompoundRules))},
		{"AF", strconv.Itoa(len(info.FlagAliases))},
		{"ICONV", strconv.Itoa(len(info.InputConv))},
		{"OCONV", strconv.Itoa(len(info.OutputConv))},
	} {
		if row[1] == "" {
			continue
		}
		settings.AddRow(row[0], row[1])
	}
	settings.Print()

	if _, err := fmt.Fprintln(w); err != nil {
		return fmt.Errorf("%w: %w", ErrHunspellWords, err)
	}

	rules := table.New("Kind", "Flag", "Cross", "Entries").WithWriter(w)
	for _, r := range info.Prefixes {
		rules.AddRow(aff.KindPrefix, r.Flag, yesNo(r.CrossProduct), len(r.Entries))
	}
	for _, r := range info.Suffixes {
		rules.AddRow(aff.KindSuffix, r.Flag, yesNo(r.CrossProduct), len(r.Entries))
	}
	rules.Print()
	return nil
}

func yesNo(v bool) string {
	if v {
		return "Y"
	}
	return "N"
}
