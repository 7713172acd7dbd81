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
)

var (
	// ErrMalformed indicates a directive with missing or invalid fields.
	ErrMalformed = errors.New("malformed directive")

	// ErrEntryCount indicates that a table directive was followed by a
	// different number of entries than its header declared.
	ErrEntryCount = errors.New("entry count mismatch")

	// ErrFlagMode indicates an unknown FLAG value.
	ErrFlagMode = errors.New("unknown flag mode")

	// ErrCondition indicates an affix entry with an invalid condition.
	ErrCondition = errors.New("invalid condition")

	// ErrCharset indicates an unsupported SET value.
	ErrCharset = errors.New("unsupported character set")
)

// ParseError is an error encountered while parsing an .aff file.
type ParseError struct {
	// Path is the path of the .aff file if known.
	Path string

	// Line is the 1-based line number of the offending line.
	Line int

	// Directive is the directive being parsed.
	Directive string

	// Err is the underlying error.
	Err error
}

// Error implements [error.Error].
func (e *ParseError) Error() string {
	path := e.Path
	if path == "" {
		path = "<aff>"
	}
	if e.Directive == "" {
		return fmt.Sprintf("%s:%d: %v", path, e.Line, e.Err)
	}
	return fmt.Sprintf("%s:%d: %s: %v", path, e.Line, e.Directive, e.Err)
}

// Unwrap returns the underlying error.
func (e *ParseError) Unwrap() error {
	return e.Err
}
