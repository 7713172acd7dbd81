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

// Package folding implements text transformers used to normalize generated
// words before they are written or compared.
package folding

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/transform"
)

// Options select the folding performed by New.
type Options struct {
	// Lower lower cases the text using the rules of Lang.
	Lower bool

	// Lang is the language used for lower casing, e.g. "tr" or "en_US".
	// Hunspell LANG values with underscores are accepted.
	Lang string
}

// Tag returns the language tag for a Hunspell LANG value. Unknown values
// return [language.Und].
func Tag(lang string) language.Tag {
	if lang == "" {
		return language.Und
	}
	t, err := language.Parse(strings.ReplaceAll(lang, "_", "-"))
	if err != nil {
		return language.Und
	}
	return t
}

// New returns a function creating a transformer that folds whitespace and,
// if requested, lower cases text. Transformers are not safe for concurrent
// use so a new one should be created for each goroutine.
func New(opts Options) func() transform.Transformer {
	tag := Tag(opts.Lang)
	return func() transform.Transformer {
		if !opts.Lower {
			return &Whitespace{}
		}
		return transform.Chain(&Whitespace{}, cases.Lower(tag))
	}
}

// String applies a new transformer from f to s.
func String(f func() transform.Transformer, s string) (string, error) {
	out, _, err := transform.String(f(), s)
	if err != nil {
		return "", fmt.Errorf("folding %q: %w", s, err)
	}
	return out, nil
}
