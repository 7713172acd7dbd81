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
)

// Word is a word generated from a dictionary entry.
type Word struct {
	// Word is the generated word after output conversion.
	Word string

	// Prefix, Base and Suffix are the pieces of the word before output
	// conversion. Prefix + Base + Suffix is the unconverted word.
	Prefix string
	Base   string
	Suffix string

	// RulesApplied are the flags of the rules applied, in order.
	RulesApplied []string

	// Flags are the marker flags of the word.
	Flags WordFlags

	// Dic is the dictionary line the word was generated from.
	Dic string
}

// String implements [fmt.Stringer.String].
func (w *Word) String() string {
	return w.Word
}

// Infix returns the unconverted word with the base marked, e.g. "de<motivat>ing".
func (w *Word) Infix() string {
	return w.Prefix + "<" + w.Base + ">" + w.Suffix
}

// Rules returns the applied rules as a space separated list.
func (w *Word) Rules() string {
	return strings.Join(w.RulesApplied, " ")
}
