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
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ianlewis/go-hunspell/aff"
)

func TestAff_SeparateRules(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		mode     aff.FlagMode
		aliases  []string
		flags    string
		expected []string
	}{
		{
			name:     "char",
			mode:     aff.FlagModeChar,
			flags:    "ZbCcChC1",
			expected: []string{"Z", "b", "C", "c", "h", "1"},
		},
		{
			name:     "char multibyte",
			mode:     aff.FlagModeChar,
			flags:    "äÖ",
			expected: []string{"ä", "Ö"},
		},
		{
			name:     "long",
			mode:     aff.FlagModeLong,
			flags:    "ZbCcChC1",
			expected: []string{"Zb", "Cc", "Ch", "C1"},
		},
		{
			name:     "long with odd length",
			mode:     aff.FlagModeLong,
			flags:    "ZbCcChC199",
			expected: []string{"Zb", "Cc", "Ch", "C1", "99"},
		},
		{
			name:     "long trailing rune",
			mode:     aff.FlagModeLong,
			flags:    "ZbC",
			expected: []string{"Zb", "C"},
		},
		{
			name:     "long repeated",
			mode:     aff.FlagModeLong,
			flags:    "ZbCcZb",
			expected: []string{"Zb", "Cc"},
		},
		{
			name:     "num",
			mode:     aff.FlagModeNum,
			flags:    "10,180,181",
			expected: []string{"10", "180", "181"},
		},
		{
			name:     "num repeated",
			mode:     aff.FlagModeNum,
			flags:    "10,10,2",
			expected: []string{"10", "2"},
		},
		{
			name:     "alias",
			mode:     aff.FlagModeLong,
			aliases:  []string{"AaAb", "PaAa"},
			flags:    "2",
			expected: []string{"Pa", "Aa"},
		},
		{
			name:     "alias out of range",
			mode:     aff.FlagModeChar,
			aliases:  []string{"AB"},
			flags:    "2",
			expected: []string{"2"},
		},
		{
			name:  "empty",
			mode:  aff.FlagModeChar,
			flags: "",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			a := aff.New()
			a.FlagMode = test.mode
			a.FlagAliases = test.aliases

			got := a.SeparateRules(test.flags)
			if len(test.expected) == 0 && len(got) == 0 {
				return
			}
			if diff := cmp.Diff(test.expected, got); diff != "" {
				t.Errorf("SeparateRules(%q) (-want, +got):\n%s", test.flags, diff)
			}
		})
	}
}

type ref struct {
	ID   string
	Kind aff.Kind
}

func refs(rr []aff.RuleRef) []ref {
	var out []ref
	for _, r := range rr {
		out = append(out, ref{r.ID, r.Kind})
	}
	return out
}

func TestAff_MatchingRules(t *testing.T) {
	t.Parallel()

	a := mustParse(t, nlAff)

	got := refs(a.MatchingRules("PaAaAbPbAcAdPcAeZbXx"))
	want := []ref{
		{"Pa", aff.KindPrefix},
		{"Aa", aff.KindSuffix},
		{"Ab", aff.KindSuffix},
		{"Pb", aff.KindPrefix},
		{"Ac", aff.KindSuffix},
		{"Ad", aff.KindSuffix},
		{"Pc", aff.KindPrefix},
		{"Ae", aff.KindSuffix},
		{"Zb", aff.KindSuffix},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("MatchingRules (-want, +got):\n%s", diff)
	}

	for _, r := range a.MatchingRules("PaAa") {
		if r.Rule == nil || r.Rule.ID != r.ID || r.Rule.Kind != r.Kind {
			t.Errorf("MatchingRules: unexpected rule for %q: %+v", r.ID, r.Rule)
		}
	}
}

func TestAff_MatchingRules_bothTables(t *testing.T) {
	t.Parallel()

	a := mustParse(t, `SFX A Y 1
SFX A 0 s .
PFX A Y 1
PFX A 0 re .
`)

	got := refs(a.MatchingRules("AB"))
	want := []ref{
		{"A", aff.KindPrefix},
		{"A", aff.KindSuffix},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("MatchingRules (-want, +got):\n%s", diff)
	}
}

func TestAff_WordFlags(t *testing.T) {
	t.Parallel()

	a := mustParse(t, "NOSUGGEST !\nFORBIDDENWORD *\nNEEDAFFIX ~\nKEEPCASE k\nONLYINCOMPOUND c\n")

	tests := []struct {
		flags    string
		expected aff.WordFlags
	}{
		{"", aff.WordFlags{}},
		{"AB", aff.WordFlags{}},
		{"A!", aff.WordFlags{NoSuggest: true}},
		{"*", aff.WordFlags{Forbidden: true}},
		{"~kc", aff.WordFlags{NeedAffix: true, KeepCase: true, OnlyInCompound: true}},
	}

	for _, test := range tests {
		if diff := cmp.Diff(test.expected, a.WordFlags(test.flags)); diff != "" {
			t.Errorf("WordFlags(%q) (-want, +got):\n%s", test.flags, diff)
		}
	}
}
