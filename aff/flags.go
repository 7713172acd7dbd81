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

package aff

import (
	"slices"
	"strconv"
	"strings"
)

// RuleRef is a flag resolved against the prefix or suffix table.
type RuleRef struct {
	ID   string
	Kind Kind
	Rule *Rule
}

// WordFlags are the non-affix flags that mark a word.
type WordFlags struct {
	NoSuggest      bool
	OnlyInCompound bool
	NeedAffix      bool
	Forbidden      bool
	KeepCase       bool
}

// resolveAlias replaces an AF alias number with the flags it stands for.
func (a *Aff) resolveAlias(flags string) string {
	if len(a.FlagAliases) == 0 || flags == "" {
		return flags
	}
	n, err := strconv.Atoi(flags)
	if err != nil || n < 1 || n > len(a.FlagAliases) {
		return flags
	}
	return a.FlagAliases[n-1]
}

// SeparateRules splits a flag string into flags according to the flag mode.
// Repeated flags are returned once, at the position of their first
// occurrence, in every mode.
func (a *Aff) SeparateRules(flags string) []string {
	flags = a.resolveAlias(flags)

	var tokens []string
	switch a.FlagMode {
	case FlagModeLong:
		runes := []rune(flags)
		for i := 0; i < len(runes); i += 2 {
			tokens = append(tokens, string(runes[i:min(i+2, len(runes))]))
		}
	case FlagModeNum:
		for _, t := range strings.Split(flags, ",") {
			if t = strings.TrimSpace(t); t != "" {
				tokens = append(tokens, t)
			}
		}
	default:
		for _, r := range flags {
			tokens = append(tokens, string(r))
		}
	}

	// Applying a rule twice has no further effect so flags are a set.
	unique := tokens[:0]
	for _, t := range tokens {
		if !slices.Contains(unique, t) {
			unique = append(unique, t)
		}
	}
	return unique
}

// MatchingRules resolves the flags in a flag string to affix rules. Flags
// matching no rule are dropped. A flag naming both a prefix and a suffix rule
// yields the prefix first.
func (a *Aff) MatchingRules(flags string) []RuleRef {
	var refs []RuleRef
	for _, id := range a.SeparateRules(flags) {
		if r, ok := a.Prefixes.Get(id); ok {
			refs = append(refs, RuleRef{ID: id, Kind: KindPrefix, Rule: r})
		}
		if r, ok := a.Suffixes.Get(id); ok {
			refs = append(refs, RuleRef{ID: id, Kind: KindSuffix, Rule: r})
		}
	}
	return refs
}

// hasFlag reports whether flag is one of the flags in a flag string.
func (a *Aff) hasFlag(flags, flag string) bool {
	return flag != "" && flags != "" && slices.Contains(a.SeparateRules(flags), flag)
}

// WordFlags returns the marker flags present in a flag string.
func (a *Aff) WordFlags(flags string) WordFlags {
	var wf WordFlags
	if flags == "" {
		return wf
	}
	ids := a.SeparateRules(flags)
	has := func(flag string) bool {
		return flag != "" && slices.Contains(ids, flag)
	}
	wf.NoSuggest = has(a.NoSuggest)
	wf.OnlyInCompound = has(a.OnlyInCompound)
	wf.NeedAffix = has(a.NeedAffix)
	wf.Forbidden = has(a.ForbiddenWord)
	wf.KeepCase = has(a.KeepCase)
	return wf
}
