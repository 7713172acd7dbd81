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

package folding

import (
	"testing"

	"golang.org/x/text/language"
)

func TestString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		opts     Options
		input    string
		expected string
	}{
		{
			name:     "whitespace only",
			input:    "  Foo \t Bar\n",
			expected: "Foo Bar",
		},
		{
			name:     "lower",
			opts:     Options{Lower: true},
			input:    "Motivate",
			expected: "motivate",
		},
		{
			name:     "turkish",
			opts:     Options{Lower: true, Lang: "tr_TR"},
			input:    "İSTANBUL",
			expected: "istanbul",
		},
		{
			name:     "turkish dotless",
			opts:     Options{Lower: true, Lang: "tr_TR"},
			input:    "KIŞ",
			expected: "kış",
		},
		{
			name:     "empty",
			opts:     Options{Lower: true},
			input:    "",
			expected: "",
		},
		{
			name:     "all space",
			input:    " \t ",
			expected: "",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			got, err := String(New(test.opts), test.input)
			if err != nil {
				t.Fatalf("String: %v", err)
			}
			if want := test.expected; want != got {
				t.Errorf("String(%q); want: %q, got: %q", test.input, want, got)
			}
		})
	}
}

func TestTag(t *testing.T) {
	t.Parallel()

	tests := map[string]language.Tag{
		"":        language.Und,
		"en_US":   language.AmericanEnglish,
		"tr":      language.Turkish,
		"no such": language.Und,
	}
	for lang, want := range tests {
		if got := Tag(lang); want != got {
			t.Errorf("Tag(%q); want: %v, got: %v", lang, want, got)
		}
	}
}
