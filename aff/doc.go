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

// Package aff implements reading Hunspell .aff files and applying their affix
// rules to dictionary entries.
//
// An .aff file is a line oriented list of directives. Each line starts with a
// directive keyword followed by whitespace separated fields. Directives come in
// two shapes:
//  1. Single value directives (e.g. "SET UTF-8", "FLAG long", "TRY abc").
//  2. Table directives whose header line gives an identifier and/or a count
//     of detail lines that follow it (e.g. "PFX", "SFX", "ICONV", "OCONV",
//     "COMPOUNDRULE", "AF").
//
// Prefix and suffix rules are defined as a header line followed by entries:
//
//	SFX D Y 2
//	SFX D   0     d          e
//	SFX D   y     ied        [^aeiou]y
//
// The header gives the rule flag, whether the rule may be combined with rules
// of the opposite kind (cross product) and the number of entries. Each entry
// gives the text stripped from the word, the text added to it (optionally
// followed by "/" and continuation flags) and the condition the word must
// satisfy. A literal "0" denotes an empty strip or add text.
//
// The parsed [Aff] can expand dictionary entries such as "motivate/CDSG" into
// all of the word forms generated by the entry's flags.
//
// More info on the format can be found in the hunspell(5) man page.
package aff
