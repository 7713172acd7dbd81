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
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"golang.org/x/text/transform"
)

// maxLineSize is the longest .dic line accepted.
const maxLineSize = 1024 * 1024

// ScannerOptions are options for scanning a .dic file.
type ScannerOptions struct {
	// Decoder returns a [transform.Transformer] that decodes the file to
	// UTF-8. Defaults to no transformation.
	Decoder func() transform.Transformer

	// OnMalformed is called for each line that is not a valid entry. The
	// line is skipped.
	OnMalformed func(*EntryFormatError)
}

// DefaultScannerOptions is the default options for a Scanner.
var DefaultScannerOptions = &ScannerOptions{
	Decoder: func() transform.Transformer {
		return transform.Nop
	},
}

// Scanner scans a .dic file from start to end.
type Scanner struct {
	r    io.ReadCloser
	s    *bufio.Scanner
	opts ScannerOptions

	// count is the entry count from the first line or -1.
	count int64

	// pending is a first line that turned out not to be a count.
	pending *string

	line  int
	entry *Entry
}

// byteOrderMark is the decoded UTF-8 byte order mark.
const byteOrderMark = "\ufeff"

// NewScanner returns a new scanner that scans the .dic data from start to
// end. The first line is read immediately to find the entry count. The
// Scanner assumes ownership of the reader and should be closed with the Close
// method.
func NewScanner(r io.ReadCloser, options *ScannerOptions) (*Scanner, error) {
	opts := *DefaultScannerOptions
	if options != nil {
		if options.Decoder != nil {
			opts.Decoder = options.Decoder
		}
		opts.OnMalformed = options.OnMalformed
	}

	s := &Scanner{
		r:     r,
		s:     bufio.NewScanner(transform.NewReader(r, opts.Decoder())),
		opts:  opts,
		count: -1,
	}
	s.s.Buffer(nil, maxLineSize)

	if s.s.Scan() {
		text := strings.TrimPrefix(s.s.Text(), byteOrderMark)
		if n, err := strconv.ParseInt(strings.TrimSpace(text), 10, 64); err == nil {
			s.count = n
			s.line++
		} else {
			s.pending = &text
		}
	}
	if err := s.s.Err(); err != nil {
		return nil, fmt.Errorf("reading .dic header: %w", err)
	}

	return s, nil
}

// Count returns the approximate number of entries given on the first line of
// the file or -1 if the file has no count.
func (s *Scanner) Count() int64 {
	return s.count
}

// Line returns the line number of the current entry.
func (s *Scanner) Line() int {
	return s.line
}

// Scan advances the scanner to the next entry. Blank lines are skipped.
// Malformed lines are skipped and reported to the OnMalformed option. It
// returns false if the scan stops either by reaching the end of the file or
// an error.
func (s *Scanner) Scan() bool {
	for {
		var text string
		if s.pending != nil {
			text = *s.pending
			s.pending = nil
		} else {
			if !s.s.Scan() {
				s.entry = nil
				return false
			}
			text = s.s.Text()
		}
		s.line++

		if strings.TrimSpace(text) == "" {
			continue
		}

		e, err := ParseEntry(text)
		if err != nil {
			var efe *EntryFormatError
			if errors.As(err, &efe) && s.opts.OnMalformed != nil {
				efe.Line = s.line
				s.opts.OnMalformed(efe)
			}
			continue
		}
		s.entry = e
		return true
	}
}

// Entry returns the current entry.
func (s *Scanner) Entry() *Entry {
	return s.entry
}

// Err returns the first error encountered.
func (s *Scanner) Err() error {
	//nolint:wrapcheck // error should not be wrapped
	return s.s.Err()
}

// Close closes the underlying reader.
func (s *Scanner) Close() error {
	err := s.r.Close()
	if err != nil {
		return fmt.Errorf("closing dic file: %w", err)
	}
	return nil
}
