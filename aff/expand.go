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
	"iter"
	"slices"
	"strings"

	"github.com/ianlewis/go-hunspell/dic"
)

// form is a word under construction.
type form struct {
	prefix string
	base   string
	suffix string
	rules  []string

	// circumfix prefix and suffix applied.
	cpfx, csfx bool
}

func (f *form) word() string {
	return f.prefix + f.base + f.suffix
}

// ApplyRulesToDicEntry returns all words generated from a dictionary line.
func (a *Aff) ApplyRulesToDicEntry(line string) []*Word {
	return slices.Collect(a.Expand(line))
}

// Expand returns the words generated from a dictionary line such as
// "motivate/CDSG". The unmodified root word is always the first word. Affixes
// are applied up to MaxSuffixDepth deep, as set when Expand is called.
//
// The returned sequence may be iterated more than once and stopped early.
// Lines with no word produce an empty sequence.
func (a *Aff) Expand(line string) iter.Seq[*Word] {
	return a.ExpandDepth(line, a.MaxSuffixDepth)
}

// ExpandDepth is like Expand but applies at most depth affixes in a chain.
func (a *Aff) ExpandDepth(line string, depth int) iter.Seq[*Word] {
	e, err := dic.ParseEntry(line)
	if err != nil {
		return func(func(*Word) bool) {}
	}
	return a.ExpandEntryDepth(e, depth)
}

// ExpandEntry returns the words generated from a parsed dictionary entry.
func (a *Aff) ExpandEntry(e *dic.Entry) iter.Seq[*Word] {
	return a.expandEntry(e, a.MaxSuffixDepth)
}

// ExpandEntryDepth is like ExpandEntry but applies at most depth affixes in a
// chain. A depth of zero returns only the root word.
func (a *Aff) ExpandEntryDepth(e *dic.Entry, depth int) iter.Seq[*Word] {
	return a.expandEntry(e, depth)
}

func (a *Aff) expandEntry(e *dic.Entry, depth int) iter.Seq[*Word] {
	return func(yield func(*Word) bool) {
		x := &expander{
			aff:   a,
			dic:   e.Line,
			yield: yield,
		}
		root := &form{base: e.Word}
		if x.emit(root, e.Flags) {
			x.expand(root, e.Flags, depth)
		}
	}
}

type expander struct {
	aff   *Aff
	dic   string
	yield func(*Word) bool
}

func (x *expander) emit(f *form, flags string) bool {
	return x.yield(&Word{
		Word:         x.aff.OutputConversion.Convert(f.word()),
		Prefix:       f.prefix,
		Base:         f.base,
		Suffix:       f.suffix,
		RulesApplied: slices.Clone(f.rules),
		Flags:        x.aff.WordFlags(flags),
		Dic:          x.dic,
	})
}

// derive emits f and then the words derived from it. A form with only one half
// of a circumfix is not a word but its derived forms may be.
func (x *expander) derive(f *form, flags string, depth int) bool {
	if f.cpfx == f.csfx && !x.emit(f, flags) {
		return false
	}
	return x.expand(f, flags, depth-1)
}

// expand emits the words formed by applying the rules named by flags to f. It
// returns false if the consumer stopped the iteration.
func (x *expander) expand(f *form, flags string, depth int) bool {
	if depth <= 0 || flags == "" {
		return true
	}

	var pfx, sfx []*Rule
	for _, ref := range x.aff.MatchingRules(flags) {
		if ref.Kind == KindPrefix {
			pfx = append(pfx, ref.Rule)
		} else {
			sfx = append(sfx, ref.Rule)
		}
	}

	for _, p := range pfx {
		for _, pe := range p.Entries {
			pf, ok := x.aff.applyPrefix(f, p, pe)
			if !ok {
				continue
			}
			if !x.derive(pf, pe.Continuation, depth) {
				return false
			}
			if !p.CrossProduct {
				continue
			}
			// Cross product forms are at the same depth as the prefixed form.
			for _, s := range sfx {
				if !s.CrossProduct {
					continue
				}
				for _, se := range s.Entries {
					cf, ok := x.aff.applySuffix(pf, s, se)
					if !ok {
						continue
					}
					if !x.derive(cf, se.Continuation, depth) {
						return false
					}
				}
			}
		}
	}

	for _, s := range sfx {
		for _, se := range s.Entries {
			sf, ok := x.aff.applySuffix(f, s, se)
			if !ok {
				continue
			}
			if !x.derive(sf, se.Continuation, depth) {
				return false
			}
		}
	}

	return true
}

// applyPrefix applies a prefix entry to f. The entry's condition and strip
// text are checked against the start of the word.
func (a *Aff) applyPrefix(f *form, r *Rule, e *Entry) (*form, bool) {
	word := f.word()
	if !strings.HasPrefix(word, e.Strip) || !e.Condition.MatchPrefix(word) {
		return nil, false
	}
	if len(word) == len(e.Strip) && !a.FullStrip {
		return nil, false
	}

	w := e.Add + word[len(e.Strip):]
	d := len(e.Add) - len(e.Strip)
	p := max(len(e.Add), len(f.prefix)+d)
	s := max(len(word)-len(f.suffix)+d, p)

	return &form{
		prefix: w[:p],
		base:   w[p:s],
		suffix: w[s:],
		rules:  append(slices.Clone(f.rules), r.ID),
		cpfx:   f.cpfx || a.hasFlag(e.Continuation, a.Circumfix),
		csfx:   f.csfx,
	}, true
}

// applySuffix applies a suffix entry to f. The entry's condition and strip
// text are checked against the end of the word.
func (a *Aff) applySuffix(f *form, r *Rule, e *Entry) (*form, bool) {
	word := f.word()
	if !strings.HasSuffix(word, e.Strip) || !e.Condition.MatchSuffix(word) {
		return nil, false
	}
	stem := len(word) - len(e.Strip)
	if stem == 0 && !a.FullStrip {
		return nil, false
	}

	w := word[:stem] + e.Add
	s := min(stem, len(word)-len(f.suffix))
	p := min(len(f.prefix), s)

	return &form{
		prefix: w[:p],
		base:   w[p:s],
		suffix: w[s:],
		rules:  append(slices.Clone(f.rules), r.ID),
		cpfx:   f.cpfx,
		csfx:   f.csfx || a.hasFlag(e.Continuation, a.Circumfix),
	}, true
}
