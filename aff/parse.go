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
	"io"
	"os"
	"strconv"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/text/encoding/unicode"
)

// maxLineSize is the longest .aff line accepted. Some dictionaries have very
// long AF and TRY lines.
const maxLineSize = 1024 * 1024

// Options are options for parsing an .aff file.
type Options struct {
	// Path is the path of the file being parsed. It is used in errors.
	Path string

	// Logger receives warnings and debug messages. Defaults to a no-op
	// logger.
	Logger *zap.Logger
}

// DefaultOptions is the default options for Parse.
var DefaultOptions = &Options{
	Logger: zap.NewNop(),
}

// table is a table directive whose entries are still being read.
type table struct {
	directive string
	id        string
	line      int
	remaining int
	rule      *Rule
}

type parser struct {
	aff    *Aff
	path   string
	logger *zap.Logger

	line    int
	pending *table
}

// ParseFile parses the .aff file at path.
func ParseFile(path string, options *Options) (*Aff, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening .aff file: %w", err)
	}
	defer f.Close()

	opts := Options{}
	if options != nil {
		opts = *options
	}
	if opts.Path == "" {
		opts.Path = path
	}
	return Parse(f, &opts)
}

// ParseString parses .aff data held in a string.
func ParseString(s string, options *Options) (*Aff, error) {
	return Parse(strings.NewReader(s), options)
}

// Parse reads and parses .aff data from r. The data is decoded to UTF-8
// according to its SET directive before parsing.
func Parse(r io.Reader, options *Options) (*Aff, error) {
	if options == nil {
		options = DefaultOptions
	}
	p := &parser{
		aff:    New(),
		path:   options.Path,
		logger: options.Logger,
	}
	if p.logger == nil {
		p.logger = zap.NewNop()
	}

	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading .aff data: %w", err)
	}

	set := detectSet(raw)
	enc, err := Encoding(set)
	if err != nil {
		p.logger.Warn("unsupported character set, assuming UTF-8",
			zap.String("path", p.path),
			zap.String("set", set),
		)
		enc = unicode.UTF8
	}
	data, err := enc.NewDecoder().Bytes(bytes.TrimPrefix(raw, utf8BOM))
	if err != nil {
		return nil, fmt.Errorf("decoding .aff data as %q: %w", set, err)
	}

	s := bufio.NewScanner(bytes.NewReader(data))
	s.Buffer(nil, maxLineSize)
	for s.Scan() {
		p.line++
		if err := p.parseLine(s.Text()); err != nil {
			return nil, err
		}
	}
	if err := s.Err(); err != nil {
		return nil, fmt.Errorf("scanning .aff data: %w", err)
	}

	if t := p.pending; t != nil {
		return nil, p.errorAt(t.line, t.directive,
			fmt.Errorf("%w: %s declared %d more entries than found", ErrEntryCount, t.label(), t.remaining))
	}

	return p.aff, nil
}

func (t *table) label() string {
	if t.id != "" {
		return t.directive + " " + t.id
	}
	return t.directive
}

func (p *parser) errorAt(line int, directive string, err error) *ParseError {
	return &ParseError{
		Path:      p.path,
		Line:      line,
		Directive: directive,
		Err:       err,
	}
}

func (p *parser) errorf(directive string, err error, format string, args ...any) *ParseError {
	return p.errorAt(p.line, directive, fmt.Errorf("%w: "+format, append([]any{err}, args...)...))
}

func (p *parser) parseLine(line string) error {
	fields := strings.Fields(line)
	if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
		return nil
	}
	directive := fields[0]

	if t := p.pending; t != nil {
		if directive != t.directive || (t.id != "" && (len(fields) < 2 || fields[1] != t.id)) {
			return p.errorAt(t.line, t.directive,
				fmt.Errorf("%w: %s declared %d more entries than found", ErrEntryCount, t.label(), t.remaining))
		}
		if err := p.parseEntry(t, fields); err != nil {
			return err
		}
		t.remaining--
		if t.remaining == 0 {
			p.pending = nil
		}
		return nil
	}

	switch directive {
	case "PFX", "SFX":
		return p.parseAffixHeader(fields)
	case "ICONV", "OCONV", "COMPOUNDRULE", "AF":
		return p.parseTableHeader(fields)
	case "FLAG":
		return p.parseFlag(fields)
	case "COMPOUNDMIN":
		v, err := p.value(fields)
		if err != nil {
			return err
		}
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return p.errorf(directive, ErrMalformed, "invalid value %q", v)
		}
		p.aff.CompoundMin = n
		return nil
	case "FULLSTRIP":
		p.aff.FullStrip = true
		return nil
	}

	if dst := p.scalar(directive); dst != nil {
		v, err := p.value(fields)
		if err != nil {
			return err
		}
		*dst = v
		return nil
	}

	p.logger.Debug("ignoring directive",
		zap.String("path", p.path),
		zap.Int("line", p.line),
		zap.String("directive", directive),
	)
	return nil
}

// scalar returns the destination of a single string valued directive.
func (p *parser) scalar(directive string) *string {
	a := p.aff
	switch directive {
	case "SET":
		return &a.CharacterSet
	case "TRY":
		return &a.Try
	case "LANG":
		return &a.Lang
	case "KEY":
		return &a.Key
	case "WORDCHARS":
		return &a.WordChars
	case "ONLYINCOMPOUND":
		return &a.OnlyInCompound
	case "COMPOUNDFLAG":
		return &a.CompoundFlag
	case "NOSUGGEST":
		return &a.NoSuggest
	case "NEEDAFFIX":
		return &a.NeedAffix
	case "FORBIDDENWORD":
		return &a.ForbiddenWord
	case "KEEPCASE":
		return &a.KeepCase
	case "CIRCUMFIX":
		return &a.Circumfix
	default:
		return nil
	}
}

func (p *parser) value(fields []string) (string, error) {
	if len(fields) < 2 {
		return "", p.errorf(fields[0], ErrMalformed, "missing value")
	}
	return fields[1], nil
}

func (p *parser) parseFlag(fields []string) error {
	v, err := p.value(fields)
	if err != nil {
		return err
	}
	switch {
	case v == "long":
		p.aff.FlagMode = FlagModeLong
	case v == "num":
		p.aff.FlagMode = FlagModeNum
	case strings.EqualFold(v, "UTF-8"):
		p.aff.FlagMode = FlagModeChar
	default:
		return p.errorf(fields[0], ErrFlagMode, "%q", v)
	}
	return nil
}

func (p *parser) count(directive, v string) (int, error) {
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		return 0, p.errorf(directive, ErrMalformed, "invalid entry count %q", v)
	}
	return n, nil
}

// parseTableHeader parses the header of ICONV, OCONV, COMPOUNDRULE and AF
// tables.
func (p *parser) parseTableHeader(fields []string) error {
	directive := fields[0]
	v, err := p.value(fields)
	if err != nil {
		return err
	}
	if len(fields) > 2 && !strings.HasPrefix(fields[2], "#") {
		// An entry line without a preceding header.
		return p.errorf(directive, ErrEntryCount, "entry found outside of a %s table", directive)
	}
	n, err := p.count(directive, v)
	if err != nil {
		return err
	}
	if n > 0 {
		p.pending = &table{
			directive: directive,
			line:      p.line,
			remaining: n,
		}
	}
	return nil
}

// parseAffixHeader parses a PFX or SFX header line, "PFX flag Y|N count".
func (p *parser) parseAffixHeader(fields []string) error {
	directive := fields[0]
	rules := p.aff.Prefixes
	kind := KindPrefix
	if directive == "SFX" {
		rules = p.aff.Suffixes
		kind = KindSuffix
	}
	if len(fields) < 4 {
		return p.errorf(directive, ErrMalformed, "expected \"%s flag Y|N count\"", directive)
	}

	id := fields[1]
	if r, ok := rules.Get(id); ok {
		if fields[2] == "Y" || fields[2] == "N" {
			return p.errorf(directive, ErrMalformed, "duplicate rule %q", id)
		}
		return p.errorf(directive, ErrEntryCount, "%s %s declared %d entries", directive, id, r.count)
	}

	var cross bool
	switch fields[2] {
	case "Y":
		cross = true
	case "N":
	default:
		return p.errorf(directive, ErrMalformed, "invalid cross product value %q", fields[2])
	}

	n, err := p.count(directive, fields[3])
	if err != nil {
		return err
	}

	r := &Rule{
		ID:           id,
		Kind:         kind,
		CrossProduct: cross,
		count:        n,
	}
	rules.add(r)
	if n > 0 {
		p.pending = &table{
			directive: directive,
			id:        id,
			line:      p.line,
			remaining: n,
			rule:      r,
		}
	}
	return nil
}

func (p *parser) parseEntry(t *table, fields []string) error {
	switch t.directive {
	case "PFX", "SFX":
		e, err := p.parseAffixEntry(fields)
		if err != nil {
			return err
		}
		t.rule.Entries = append(t.rule.Entries, e)
	case "ICONV", "OCONV":
		if len(fields) < 3 {
			return p.errorf(t.directive, ErrMalformed, "expected \"%s pattern replacement\"", t.directive)
		}
		conv := p.aff.InputConversion
		if t.directive == "OCONV" {
			conv = p.aff.OutputConversion
		}
		conv.Add(fields[1], fields[2])
	case "COMPOUNDRULE":
		v, err := p.value(fields)
		if err != nil {
			return err
		}
		p.aff.CompoundRules = append(p.aff.CompoundRules, v)
	case "AF":
		v, err := p.value(fields)
		if err != nil {
			return err
		}
		p.aff.FlagAliases = append(p.aff.FlagAliases, v)
	}
	return nil
}

// parseAffixEntry parses "PFX flag strip add[/flags] [condition [morph...]]".
func (p *parser) parseAffixEntry(fields []string) (*Entry, error) {
	directive := fields[0]
	if len(fields) < 4 {
		return nil, p.errorf(directive, ErrMalformed, "expected \"%s flag strip add [condition]\"", directive)
	}

	e := &Entry{
		Strip: fields[2],
		Add:   fields[3],
	}
	if e.Strip == "0" {
		e.Strip = ""
	}
	if i := strings.IndexByte(e.Add, '/'); i >= 0 {
		e.Continuation = e.Add[i+1:]
		e.Add = e.Add[:i]
	}
	if e.Add == "0" {
		e.Add = ""
	}

	cond := "."
	if len(fields) > 4 {
		cond = fields[4]
	}
	if len(fields) > 5 {
		e.Morph = fields[5:]
	}
	c, err := CompileCondition(cond)
	if err != nil {
		return nil, p.errorf(directive, ErrCondition, "%v", err)
	}
	e.Condition = c

	return e, nil
}
