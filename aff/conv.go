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
	"strings"
	"unicode/utf8"
)

// Conversion is a single ICONV/OCONV rule.
type Conversion struct {
	Pattern     string
	Replacement string
}

// ConvTable is an ordered list of literal substitutions.
type ConvTable struct {
	conv []Conversion
}

// NewConvTable returns a table with the given conversions in order.
func NewConvTable(conv ...Conversion) *ConvTable {
	t := &ConvTable{}
	for _, c := range conv {
		t.Add(c.Pattern, c.Replacement)
	}
	return t
}

// Add appends a conversion. Empty patterns are ignored.
func (t *ConvTable) Add(pattern, replacement string) {
	if pattern == "" {
		return
	}
	t.conv = append(t.conv, Conversion{
		Pattern:     pattern,
		Replacement: replacement,
	})
}

// Conversions returns the conversions in declaration order.
func (t *ConvTable) Conversions() []Conversion {
	if t == nil {
		return nil
	}
	return append([]Conversion(nil), t.conv...)
}

// Len returns the number of conversions.
func (t *ConvTable) Len() int {
	if t == nil {
		return 0
	}
	return len(t.conv)
}

// Convert applies the table to text. The text is scanned from left to right.
// At each position the first conversion, in declaration order, whose pattern
// matches is applied and scanning resumes after the matched text. Replaced
// text is never rescanned.
func (t *ConvTable) Convert(text string) string {
	if t.Len() == 0 {
		return text
	}

	var b strings.Builder
	b.Grow(len(text))
	for i := 0; i < len(text); {
		matched := false
		for _, c := range t.conv {
			if strings.HasPrefix(text[i:], c.Pattern) {
				b.WriteString(c.Replacement)
				i += len(c.Pattern)
				matched = true
				break
			}
		}
		if !matched {
			_, size := utf8.DecodeRuneInString(text[i:])
			b.WriteString(text[i : i+size])
			i += size
		}
	}
	return b.String()
}
