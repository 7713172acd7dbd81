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
	"bufio"
	"bytes"
	"fmt"
	"regexp"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/encoding/unicode"
)

var (
	// Hunspell spells ISO-8859-n as ISO8859-n.
	isoRegex = regexp.MustCompile(`(?i)^ISO[-_]?8859[-_]?(\d+)$`)

	// OpenOffice dictionaries use microsoft-cp1251 and friends.
	cpRegex = regexp.MustCompile(`(?i)^(?:microsoft-)?cp-?(\d+)$`)

	utf8BOM = []byte{0xEF, 0xBB, 0xBF}
)

// Encoding returns the text encoding for a SET value. An empty value is
// UTF-8.
func Encoding(set string) (encoding.Encoding, error) {
	name := strings.TrimSpace(set)
	if name == "" || strings.EqualFold(name, "UTF-8") || strings.EqualFold(name, "UTF8") {
		return unicode.UTF8, nil
	}
	if m := isoRegex.FindStringSubmatch(name); m != nil {
		name = "ISO-8859-" + m[1]
	} else if m := cpRegex.FindStringSubmatch(name); m != nil {
		name = "windows-" + m[1]
	}

	enc, err := ianaindex.IANA.Encoding(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrCharset, set)
	}
	// ianaindex returns a nil encoding for registered but unsupported names.
	if enc == nil {
		return nil, fmt.Errorf("%w: %q", ErrCharset, set)
	}
	return enc, nil
}

// Encoding returns the encoding of the .aff file and its dictionary. Unknown
// character sets are treated as UTF-8.
func (a *Aff) Encoding() encoding.Encoding {
	enc, err := Encoding(a.CharacterSet)
	if err != nil {
		return unicode.UTF8
	}
	return enc
}

// detectSet returns the value of the first SET directive in raw .aff data.
// Directive keywords are ASCII in every supported encoding so the data can be
// scanned before it is decoded.
func detectSet(b []byte) string {
	s := bufio.NewScanner(bytes.NewReader(bytes.TrimPrefix(b, utf8BOM)))
	s.Buffer(nil, maxLineSize)
	for s.Scan() {
		fields := strings.Fields(s.Text())
		if len(fields) >= 2 && fields[0] == "SET" {
			return fields[1]
		}
	}
	return ""
}
