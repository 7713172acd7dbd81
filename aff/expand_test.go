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

package aff_test

import (
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/ianlewis/go-hunspell/aff"
	"github.com/ianlewis/go-hunspell/dic"
)

func words(ww []*aff.Word) []string {
	var out []string
	for _, w := range ww {
		out = append(out, w.Word)
	}
	return out
}

func TestAff_ApplyRulesToDicEntry(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		aff      string
		line     string
		expected []string
	}{
		{
			name: "motivate",
			aff:  enAff,
			line: "motivate/CDSG",
			expected: []string{
				"motivate",
				"demotivate",
				"demotivated",
				"demotivates",
				"demotivating",
				"motivated",
				"motivates",
				"motivating",
			},
		},
		{
			name:     "no flags",
			aff:      enAff,
			line:     "abc",
			expected: []string{"abc"},
		},
		{
			name:     "unknown flags",
			aff:      enAff,
			line:     "abc/QR",
			expected: []string{"abc"},
		},
		{
			name:     "condition not met",
			aff:      enAff,
			line:     "fly/N",
			expected: []string{"fly", "flication"},
		},
		{
			name:     "morph fields",
			aff:      enAff,
			line:     "cry/DS po:verb",
			expected: []string{"cry", "cried", "cries"},
		},
		{
			name:     "non cross product",
			aff:      enAff,
			line:     "quick/AZ",
			expected: []string{"quick", "requick", "quickly"},
		},
		{
			name:     "numeric flags",
			aff:      frAff,
			line:     "badger/10",
			expected: []string{"badger", "badgeant"},
		},
		{
			name:     "output conversion",
			aff:      frAff,
			line:     "avoir/180,181",
			expected: []string{"avoir", "n’avoir", "avoirs"},
		},
		{
			name:     "long flags",
			aff:      nlAff,
			line:     "huis/PcAaZb",
			expected: []string{"huis", "behuis", "behuiss", "behuistje", "huiss", "huistje"},
		},
		{
			name: "continuation",
			aff:  huAff,
			line: "kemping/17",
			expected: []string{
				"kemping",
				"kempingben",
				"kempingbeni",
				"kempingbenit",
				"kempinget",
			},
		},
		{
			name: "empty line",
			aff:  enAff,
			line: "",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			a := mustParse(t, test.aff)
			got := words(a.ApplyRulesToDicEntry(test.line))
			if diff := cmp.Diff(test.expected, got); diff != "" {
				t.Errorf("ApplyRulesToDicEntry(%q) (-want, +got):\n%s", test.line, diff)
			}
		})
	}
}

func TestAff_ExpandDepth(t *testing.T) {
	t.Parallel()

	a := mustParse(t, huAff)

	tests := []struct {
		depth    int
		expected []string
	}{
		{0, []string{"kemping"}},
		{1, []string{"kemping", "kempingben", "kempinget"}},
		{2, []string{"kemping", "kempingben", "kempingbeni", "kempinget"}},
		{3, []string{"kemping", "kempingben", "kempingbeni", "kempingbenit", "kempinget"}},
		{10, []string{"kemping", "kempingben", "kempingbeni", "kempingbenit", "kempinget"}},
	}

	for _, test := range tests {
		got := words(slices.Collect(a.ExpandDepth("kemping/17", test.depth)))
		if diff := cmp.Diff(test.expected, got); diff != "" {
			t.Errorf("ExpandDepth(%d) (-want, +got):\n%s", test.depth, diff)
		}
	}
}

// TestAff_Expand_maxSuffixDepth tests that MaxSuffixDepth is read when Expand
// is called.
func TestAff_Expand_maxSuffixDepth(t *testing.T) {
	t.Parallel()

	a := mustParse(t, huAff)
	a.MaxSuffixDepth = 0
	seq := a.Expand("kemping/17")
	a.MaxSuffixDepth = 5

	if diff := cmp.Diff([]string{"kemping"}, words(slices.Collect(seq))); diff != "" {
		t.Errorf("Expand (-want, +got):\n%s", diff)
	}
}

// TestAff_Expand_monotonic tests that deeper expansion never loses words.
func TestAff_Expand_monotonic(t *testing.T) {
	t.Parallel()

	for _, test := range []struct{ aff, line string }{
		{enAff, "motivate/CDSG"},
		{enAff, "cry/ADSGN"},
		{huAff, "kemping/17"},
		{nlAff, "huis/PaPbPcAaAbZbCh"},
	} {
		a := mustParse(t, test.aff)
		prev := []string{}
		for depth := range 5 {
			got := words(slices.Collect(a.ExpandDepth(test.line, depth)))
			if len(got) == 0 || got[0] != slices.Collect(a.ExpandDepth(test.line, 0))[0].Word {
				t.Fatalf("ExpandDepth(%q, %d): root is not first: %v", test.line, depth, got)
			}
			for _, w := range prev {
				if !slices.Contains(got, w) {
					t.Errorf("ExpandDepth(%q, %d): missing %q", test.line, depth, w)
				}
			}
			prev = got
		}
	}
}

// TestAff_Expand_pieces tests that the word pieces reassemble the word.
func TestAff_Expand_pieces(t *testing.T) {
	t.Parallel()

	a := mustParse(t, enAff)

	type pieces struct {
		Word, Infix, Rules string
	}
	var got []pieces
	for w := range a.Expand("motivate/CDSG") {
		if want, got := w.Word, w.Prefix+w.Base+w.Suffix; want != got {
			t.Errorf("Prefix+Base+Suffix; want: %q, got: %q", want, got)
		}
		if want, got := "motivate/CDSG", w.Dic; want != got {
			t.Errorf("Dic; want: %q, got: %q", want, got)
		}
		got = append(got, pieces{w.Word, w.Infix(), w.Rules()})
	}

	want := []pieces{
		{"motivate", "<motivate>", ""},
		{"demotivate", "de<motivate>", "C"},
		{"demotivated", "de<motivate>d", "C D"},
		{"demotivates", "de<motivate>s", "C S"},
		{"demotivating", "de<motivat>ing", "C G"},
		{"motivated", "<motivate>d", "D"},
		{"motivates", "<motivate>s", "S"},
		{"motivating", "<motivat>ing", "G"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Expand (-want, +got):\n%s", diff)
	}
}

// TestAff_Expand_outputConversion tests that pieces are not converted.
func TestAff_Expand_outputConversion(t *testing.T) {
	t.Parallel()

	a := mustParse(t, frAff)
	ww := a.ApplyRulesToDicEntry("avoir/180")
	if want, got := 2, len(ww); want != got {
		t.Fatalf("len; want: %d, got: %d", want, got)
	}
	w := ww[1]
	if want, got := "n’avoir", w.Word; want != got {
		t.Errorf("Word; want: %q, got: %q", want, got)
	}
	if want, got := "n'<avoir>", w.Infix(); want != got {
		t.Errorf("Infix; want: %q, got: %q", want, got)
	}
}

func TestAff_Expand_stop(t *testing.T) {
	t.Parallel()

	a := mustParse(t, enAff)

	var got []string
	for w := range a.Expand("motivate/CDSG") {
		got = append(got, w.Word)
		if len(got) == 3 {
			break
		}
	}
	if diff := cmp.Diff([]string{"motivate", "demotivate", "demotivated"}, got); diff != "" {
		t.Errorf("Expand (-want, +got):\n%s", diff)
	}
}

func TestAff_Expand_strip(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		aff      string
		line     string
		expected []string
	}{
		{
			name:     "strip must match",
			aff:      "SFX A Y 1\nSFX A ey ies .\n",
			line:     "fly/A",
			expected: []string{"fly"},
		},
		{
			name:     "prefix strip",
			aff:      "PFX A Y 1\nPFX A un re un\n",
			line:     "undo/A",
			expected: []string{"undo", "redo"},
		},
		{
			name:     "whole word strip",
			aff:      "SFX A Y 1\nSFX A ab cd ab\n",
			line:     "ab/A",
			expected: []string{"ab"},
		},
		{
			name:     "whole word strip with FULLSTRIP",
			aff:      "FULLSTRIP\nSFX A Y 1\nSFX A ab cd ab\n",
			line:     "ab/A",
			expected: []string{"ab", "cd"},
		},
		{
			name:     "every matching entry",
			aff:      "SFX A Y 2\nSFX A 0 s .\nSFX A 0 es .\n",
			line:     "box/A",
			expected: []string{"box", "boxs", "boxes"},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			a := mustParse(t, test.aff)
			got := words(a.ApplyRulesToDicEntry(test.line))
			if diff := cmp.Diff(test.expected, got); diff != "" {
				t.Errorf("ApplyRulesToDicEntry(%q) (-want, +got):\n%s", test.line, diff)
			}
		})
	}
}

func TestAff_ExpandEntry(t *testing.T) {
	t.Parallel()

	a := mustParse(t, "FORBIDDENWORD *\nNEEDAFFIX ~\nSFX S Y 1\nSFX S 0 s .\n")
	e, err := dic.ParseEntry("cat/S~*")
	if err != nil {
		t.Fatalf("ParseEntry: %v", err)
	}

	got := slices.Collect(a.ExpandEntry(e))
	want := []*aff.Word{
		{
			Word:  "cat",
			Base:  "cat",
			Flags: aff.WordFlags{NeedAffix: true, Forbidden: true},
			Dic:   "cat/S~*",
		},
		{
			Word:         "cats",
			Base:         "cat",
			Suffix:       "s",
			RulesApplied: []string{"S"},
			Dic:          "cat/S~*",
		},
	}
	if diff := cmp.Diff(want, got, cmpopts.EquateEmpty()); diff != "" {
		t.Errorf("ExpandEntry (-want, +got):\n%s", diff)
	}
}

func TestAff_Expand_circumfix(t *testing.T) {
	t.Parallel()

	a := mustParse(t, `CIRCUMFIX X
PFX A Y 1
PFX A 0 leg/X .
PFX B Y 1
PFX B 0 legesleg/X .
SFX C Y 3
SFX C 0 obb .
SFX C 0 obb/AX .
SFX C 0 obb/BX .
`)

	tests := []struct {
		line     string
		expected []string
	}{
		{"nagy/C", []string{"nagy", "nagyobb", "legnagyobb", "legeslegnagyobb"}},
		{"nagy/A", []string{"nagy"}},
		{"nagy", []string{"nagy"}},
	}

	for _, test := range tests {
		got := words(a.ApplyRulesToDicEntry(test.line))
		if diff := cmp.Diff(test.expected, got); diff != "" {
			t.Errorf("ApplyRulesToDicEntry(%q) (-want, +got):\n%s", test.line, diff)
		}
	}
}
