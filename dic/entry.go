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

package dic

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// ErrNoWord indicates a dictionary line without a word.
var ErrNoWord = errors.New("no word")

// EntryFormatError is returned for dictionary lines that hold no word.
type EntryFormatError struct {
	// Line is the 1-based line number, or zero if unknown.
	Line int

	// Text is the offending line.
	Text string

	// Err is the underlying error.
	Err error
}

// Error implements [error.Error].
func (e *EntryFormatError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("line %d: %v: %q", e.Line, e.Err, e.Text)
	}
	return fmt.Sprintf("%v: %q", e.Err, e.Text)
}

// Unwrap returns the underlying error.
func (e *EntryFormatError) Unwrap() error {
	return e.Err
}

// Entry is a .dic file entry.
type Entry struct {
	// Line is the entry's line without the line terminator.
	Line string

	// Word is the root word.
	Word string

	// Flags is the flag string following the "/".
	Flags string

	// Morph holds the morphological fields following the entry.
	Morph []string
}

// ParseEntry parses a .dic line.
func ParseEntry(line string) (*Entry, error) {
	line = strings.TrimRight(line, "\r\n")
	if r, _ := utf8.DecodeRuneInString(line); line == "" || unicode.IsSpace(r) {
		return nil, &EntryFormatError{Text: line, Err: ErrNoWord}
	}

	e := &Entry{
		Line: line,
	}

	head := line
	if i := strings.IndexFunc(line, unicode.IsSpace); i >= 0 {
		head = line[:i]
		e.Morph = strings.Fields(line[i:])
	}

	word := head
	for i := 0; i < len(head); i++ {
		if head[i] == '\\' && i+1 < len(head) && head[i+1] == '/' {
			i++
			continue
		}
		if head[i] == '/' {
			word = head[:i]
			e.Flags = head[i+1:]
			break
		}
	}
	e.Word = strings.ReplaceAll(word, `\/`, "/")

	if e.Word == "" {
		return nil, &EntryFormatError{Text: line, Err: ErrNoWord}
	}
	return e, nil
}
