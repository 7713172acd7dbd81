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

// Package dic implements reading Hunspell .dic files.
//
// A .dic file is a list of dictionary entries, one per line:
//  1. The first line is optional and holds the approximate number of
//     entries.
//  2. Each entry is a word optionally followed by "/" and the word's flags.
//     A literal slash in the word is escaped as "\/".
//  3. Morphological fields may follow the entry after whitespace. They are
//     kept but not interpreted.
//
// Lines starting with whitespace hold no word and are skipped. The file is
// encoded in the character set named by the SET directive of the companion
// .aff file and may be compressed with gzip or dictzip.
package dic
