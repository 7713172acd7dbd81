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
	"fmt"
)

// DefaultMaxSuffixDepth is the default depth at which affix application stops
// recursing.
const DefaultMaxSuffixDepth = 5

// DefaultCompoundMin is the Hunspell default for COMPOUNDMIN.
const DefaultCompoundMin = 3

// FlagMode is the encoding used for flags in the .aff and .dic files.
type FlagMode int

const (
	// FlagModeChar is the default mode. Each character is a flag. "FLAG UTF-8"
	// also selects this mode since flags are always read as runes.
	FlagModeChar FlagMode = iota

	// FlagModeLong uses two character flags ("FLAG long").
	FlagModeLong

	// FlagModeNum uses comma separated decimal flags ("FLAG num").
	FlagModeNum
)

// String implements [fmt.Stringer.String].
func (m FlagMode) String() string {
	switch m {
	case FlagModeChar:
		return "char"
	case FlagModeLong:
		return "long"
	case FlagModeNum:
		return "num"
	default:
		return fmt.Sprintf("FlagMode(%d)", int(m))
	}
}

// Kind is the kind of an affix rule.
type Kind int

const (
	// KindPrefix is a prefix rule (PFX).
	KindPrefix Kind = iota

	// KindSuffix is a suffix rule (SFX).
	KindSuffix
)

// String implements [fmt.Stringer.String].
func (k Kind) String() string {
	if k == KindPrefix {
		return "pfx"
	}
	return "sfx"
}

// Entry is a single strip/add/condition variant of an affix rule.
type Entry struct {
	// Strip is the text removed from the word before Add is attached.
	Strip string

	// Add is the text attached to the word.
	Add string

	// Continuation holds the flags following a "/" in the add field. They
	// select rules which may be applied to the affixed word.
	Continuation string

	// Condition is the pattern the word must match at the attachment point.
	Condition *Condition

	// Morph holds any morphological fields following the condition.
	Morph []string
}

// Rule is a named group of affix entries.
type Rule struct {
	// ID is the rule's flag.
	ID string

	// Kind is whether the rule is a prefix or a suffix.
	Kind Kind

	// CrossProduct is true if the rule may be combined with rules of the
	// opposite kind.
	CrossProduct bool

	// Entries are the rule's entries in declaration order.
	Entries []*Entry

	// count is the number of entries declared in the header.
	count int
}

// RuleTable maps flags to rules while remembering declaration order.
type RuleTable struct {
	rules map[string]*Rule
	order []string
}

func newRuleTable() *RuleTable {
	return &RuleTable{
		rules: map[string]*Rule{},
	}
}

// Get returns the rule with the given id.
func (t *RuleTable) Get(id string) (*Rule, bool) {
	if t == nil {
		return nil, false
	}
	r, ok := t.rules[id]
	return r, ok
}

// Len returns the number of rules in the table.
func (t *RuleTable) Len() int {
	if t == nil {
		return 0
	}
	return len(t.order)
}

// Rules returns the rules in declaration order.
func (t *RuleTable) Rules() []*Rule {
	if t == nil {
		return nil
	}
	rules := make([]*Rule, 0, len(t.order))
	for _, id := range t.order {
		rules = append(rules, t.rules[id])
	}
	return rules
}

func (t *RuleTable) add(r *Rule) bool {
	if _, ok := t.rules[r.ID]; ok {
		return false
	}
	t.rules[r.ID] = r
	t.order = append(t.order, r.ID)
	return true
}

// Aff is a parsed .aff file.
type Aff struct {
	// CharacterSet is the value of the SET directive.
	CharacterSet string

	// Try is the value of the TRY directive.
	Try string

	// Lang is the value of the LANG directive.
	Lang string

	// Key is the value of the KEY directive.
	Key string

	// FlagMode is the flag encoding selected by the FLAG directive.
	FlagMode FlagMode

	// WordChars is the value of the WORDCHARS directive.
	WordChars string

	// InputConversion is the ICONV table.
	InputConversion *ConvTable

	// OutputConversion is the OCONV table. It is applied to all generated
	// words.
	OutputConversion *ConvTable

	// CompoundMin is the value of COMPOUNDMIN.
	CompoundMin int

	// CompoundRules are the COMPOUNDRULE patterns.
	CompoundRules []string

	// CompoundFlag is the COMPOUNDFLAG flag.
	CompoundFlag string

	// OnlyInCompound is the ONLYINCOMPOUND flag.
	OnlyInCompound string

	// NoSuggest is the NOSUGGEST flag.
	NoSuggest string

	// NeedAffix is the NEEDAFFIX flag.
	NeedAffix string

	// ForbiddenWord is the FORBIDDENWORD flag.
	ForbiddenWord string

	// KeepCase is the KEEPCASE flag.
	KeepCase string

	// Circumfix is the CIRCUMFIX flag.
	Circumfix string

	// FullStrip is true if FULLSTRIP is present. It allows affix entries to
	// strip the whole word.
	FullStrip bool

	// FlagAliases are the AF aliases. Dictionary flags "1".."n" refer to
	// FlagAliases[0]..FlagAliases[n-1].
	FlagAliases []string

	// Prefixes are the PFX rules.
	Prefixes *RuleTable

	// Suffixes are the SFX rules.
	Suffixes *RuleTable

	// MaxSuffixDepth bounds how many affixes are applied in a chain. A depth
	// of zero disables affix application. Callers may change it between
	// expansions but must not change it while expansions are in progress.
	MaxSuffixDepth int
}

// New returns an empty Aff with default settings.
func New() *Aff {
	return &Aff{
		InputConversion:  &ConvTable{},
		OutputConversion: &ConvTable{},
		CompoundMin:      DefaultCompoundMin,
		Prefixes:         newRuleTable(),
		Suffixes:         newRuleTable(),
		MaxSuffixDepth:   DefaultMaxSuffixDepth,
	}
}
