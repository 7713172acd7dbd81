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

// Package hunspell implements a library for reading Hunspell dictionaries in
// pure Go and expanding them into word lists.
//
// Hunspell dictionaries contain two files:
//  1. An .aff file that defines the character set, flag encoding and the
//     prefix and suffix rules. See package aff.
//  2. A .dic file that lists root words and the flags of the rules that apply
//     to them. The dic file can be compressed using gzip or dictzip. See
//     package dic.
//
// Open reads the .aff file of a dictionary and Words streams every word the
// dictionary generates:
//
//	h, err := hunspell.Open("/usr/share/hunspell/en_US.dic", nil)
//	if err != nil {
//		return err
//	}
//	for w, err := range h.Words(ctx) {
//		if err != nil {
//			return err
//		}
//		fmt.Println(w.Word)
//	}
//
// More info on the dictionary format can be found in the hunspell(5) man
// page.
package hunspell
