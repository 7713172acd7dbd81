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
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/transform"
)

// Whitespace trims leading and trailing whitespace and replaces each internal
// run of whitespace with a single ASCII space.
type Whitespace struct {
	// seen is true once a non-space rune has been written.
	seen bool

	// gap is true while inside a run of whitespace following a non-space
	// rune.
	gap bool
}

// Transform implements [transform.Transformer.Transform].
func (w *Whitespace) Transform(dst, src []byte, atEOF bool) (int, int, error) {
	nDst, nSrc := 0, 0
	for nSrc < len(src) {
		if !atEOF && !utf8.FullRune(src[nSrc:]) {
			return nDst, nSrc, transform.ErrShortSrc
		}
		r, size := utf8.DecodeRune(src[nSrc:])

		if unicode.IsSpace(r) {
			w.gap = w.seen
			nSrc += size
			continue
		}

		// Invalid bytes are written as the replacement rune.
		need := utf8.RuneLen(r)
		if w.gap {
			need++
		}
		if nDst+need > len(dst) {
			return nDst, nSrc, transform.ErrShortDst
		}
		if w.gap {
			dst[nDst] = ' '
			nDst++
			w.gap = false
		}
		nDst += utf8.EncodeRune(dst[nDst:], r)
		nSrc += size
		w.seen = true
	}
	return nDst, nSrc, nil
}

// Reset implements [transform.Transformer.Reset].
func (w *Whitespace) Reset() {
	*w = Whitespace{}
}
