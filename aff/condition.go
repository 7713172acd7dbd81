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
	"errors"
	"fmt"
	"slices"
	"unicode/utf8"
)

var (
	errUnterminatedClass = errors.New("unterminated character class")
	errEmptyClass        = errors.New("empty character class")
)

// atom matches a single rune.
type atom struct {
	any    bool
	negate bool
	runes  []rune
}

func (a atom) match(r rune) bool {
	if a.any {
		return true
	}
	return slices.Contains(a.runes, r) != a.negate
}

// Condition is a compiled affix condition. A condition is a sequence of atoms
// each matching one rune: "." matches any rune, "[abc]" matches any of the
// listed runes, "[^abc]" matches any rune not listed and any other rune
// matches itself.
type Condition struct {
	src   string
	atoms []atom
}

// CompileCondition compiles a condition pattern. An empty pattern or "."
// matches every word.
func CompileCondition(pattern string) (*Condition, error) {
	c := &Condition{src: pattern}
	runes := []rune(pattern)
	for i := 0; i < len(runes); i++ {
		switch runes[i] {
		case '.':
			c.atoms = append(c.atoms, atom{any: true})
		case '[':
			j := i + 1
			var a atom
			if j < len(runes) && runes[j] == '^' {
				a.negate = true
				j++
			}
			for ; j < len(runes) && runes[j] != ']'; j++ {
				a.runes = append(a.runes, runes[j])
			}
			if j >= len(runes) {
				return nil, fmt.Errorf("%w: %q", errUnterminatedClass, pattern)
			}
			if len(a.runes) == 0 {
				return nil, fmt.Errorf("%w: %q", errEmptyClass, pattern)
			}
			c.atoms = append(c.atoms, a)
			i = j
		default:
			c.atoms = append(c.atoms, atom{runes: []rune{runes[i]}})
		}
	}

	// A lone "." matches everything so drop it to keep matching trivial.
	if len(c.atoms) == 1 && c.atoms[0].any {
		c.atoms = nil
	}

	return c, nil
}

// String returns the condition's source pattern.
func (c *Condition) String() string {
	return c.src
}

// Len returns the number of runes the condition examines.
func (c *Condition) Len() int {
	return len(c.atoms)
}

// MatchPrefix reports whether the start of word matches the condition.
func (c *Condition) MatchPrefix(word string) bool {
	if c == nil || len(c.atoms) == 0 {
		return true
	}
	i := 0
	for _, r := range word {
		if i == len(c.atoms) {
			return true
		}
		if !c.atoms[i].match(r) {
			return false
		}
		i++
	}
	return i == len(c.atoms)
}

// MatchSuffix reports whether the end of word matches the condition.
func (c *Condition) MatchSuffix(word string) bool {
	if c == nil || len(c.atoms) == 0 {
		return true
	}
	i := len(c.atoms) - 1
	for end := len(word); end > 0 && i >= 0; i-- {
		r, size := utf8.DecodeLastRuneInString(word[:end])
		if !c.atoms[i].match(r) {
			return false
		}
		end -= size
	}
	return i < 0
}
