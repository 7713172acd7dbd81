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

	"github.com/ianlewis/go-hunspell/aff"
)

// simpleAff is an indented .aff file with a bit of everything.
const simpleAff = `
    SET UTF-8
    TRY esianrtolcdugmphbyfvkwzESIANRTOLCDUGMPHBYFVKWZ'
    ICONV 1
    ICONV ’ '
    NOSUGGEST !

    # ordinal numbers
    COMPOUNDMIN 1
    # only in compounds: 1th, 2th, 3th
    ONLYINCOMPOUND c
    # compound rules:
    # 1. [0-9]*1[0-9]th (10th, 11th, 12th, 56714th, etc.)
    # 2. [0-9]*[02-9](1st|2nd|3rd|[4-9]th) (21st, 22nd, 123rd, 1234th, etc.)
    COMPOUNDRULE 2
    COMPOUNDRULE n*1t
    COMPOUNDRULE n*mp
    WORDCHARS 0123456789

    PFX A Y 1
    PFX A   0     re         .

    PFX I Y 1
    PFX I   0     in         .

    PFX U Y 1
    PFX U   0     un         .

    PFX X Y 4
    PFX X   0     un         .
    PFX X   0     re         .
    PFX X   0     in         .
    PFX X   0     a          .

    SFX Y Y 2
    SFX Y   0     ly         [^y]
    SFX Y   y     ily        [y]

    SFX G Y 2
    SFX G   e     ing        e
    SFX G   0     ing        [^e]

    SFX J Y 2
    SFX J   e     ings       e
    SFX J   0     ings       [^e]
`

// enAff is a subset of the en_US .aff file.
const enAff = `SET UTF-8
TRY esianrtolcdugmphbyfvkwzESIANRTOLCDUGMPHBYFVKWZ'
ICONV 1
ICONV ’ '
NOSUGGEST !
FORBIDDENWORD *

PFX A Y 1
PFX A   0     re         .

PFX C Y 1
PFX C   0     de          .

PFX E Y 1
PFX E   0     dis         .

SFX D Y 4
SFX D   0     d          e
SFX D   y     ied        [^aeiou]y
SFX D   0     ed         [^ey]
SFX D   0     ed         [aeiou]y

SFX S Y 4
SFX S   y     ies        [^aeiou]y
SFX S   0     s          [aeiou]y
SFX S   0     es         [sxzh]
SFX S   0     s          [^sxzhy]

SFX G Y 2
SFX G   e     ing        e
SFX G   0     ing        [^e]

SFX N Y 3
SFX N   e     ion        e
SFX N   y     ication    y
SFX N   0     en         [^ey]

SFX Z N 1
SFX Z   0     ly         .
`

// nlAff uses two character flags.
const nlAff = `SET UTF-8
FLAG long

PFX Pa Y 1
PFX Pa 0 aan .

PFX Pb Y 1
PFX Pb 0 af .

PFX Pc Y 1
PFX Pc 0 be .

SFX Aa Y 1
SFX Aa 0 s .

SFX Ab Y 1
SFX Ab 0 en .

SFX Ac Y 1
SFX Ac 0 e .

SFX Ad Y 1
SFX Ad 0 er .

SFX Ae Y 1
SFX Ae 0 st .

SFX Ai Y 1
SFX Ai 0 je .

SFX Zb Y 1
SFX Zb 0 tje .

SFX Cc Y 1
SFX Cc 0 s .

PFX Ch Y 1
PFX Ch 0 ge .
`

// frAff uses numeric flags and converts apostrophes on output.
const frAff = `SET UTF-8
FLAG num

OCONV 1
OCONV ' ’

SFX 10 Y 2
SFX 10 er eant ger
SFX 10 er ant [^g]er

PFX 180 Y 1
PFX 180 0 n' [aeiouyhâàäéèêëîïôöûüù]

SFX 181 N 1
SFX 181 0 s .
`

// huAff chains suffixes through continuation flags.
const huAff = `SET UTF-8
FLAG num

SFX 17 Y 2
SFX 17 0 ben/18 .
SFX 17 0 et .

SFX 18 Y 1
SFX 18 0 i/19 .

SFX 19 Y 1
SFX 19 0 t .
`

func mustParse(t *testing.T, data string) *aff.Aff {
	t.Helper()

	a, err := aff.ParseString(data, nil)
	if err != nil {
		t.Fatalf("ParseString: %v", err)
	}
	return a
}
