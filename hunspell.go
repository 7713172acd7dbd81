// Copyright 2021 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package hunspell

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"iter"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/text/transform"

	"github.com/ianlewis/go-hunspell/aff"
	"github.com/ianlewis/go-hunspell/dic"
)

// ErrBadExtension indicates a path that does not name an .aff or .dic file.
var ErrBadExtension = errors.New("bad extension")

// Options are options for opening a dictionary.
type Options struct {
	// Logger receives warnings and debug messages. Defaults to a no-op
	// logger.
	Logger *zap.Logger
}

// DefaultOptions is the default options for Open.
var DefaultOptions = &Options{
	Logger: zap.NewNop(),
}

// Hunspell is a Hunspell dictionary.
type Hunspell struct {
	aff *aff.Aff

	basePath string
	affPath  string
	dicPath  string

	logger *zap.Logger
}

// OpenAll opens all dictionaries under a directory. This function will return
// all successfully opened dictionaries along with any errors that occurred.
func OpenAll(path string, options *Options) ([]*Hunspell, []error) {
	var dicts []*Hunspell
	var errs []error
	if err := filepath.WalkDir(path, func(path string, info fs.DirEntry, err error) error {
		// Walking the file path will ignore errors.
		if err != nil {
			errs = append(errs, err)
			return nil
		}
		if !info.IsDir() && strings.EqualFold(filepath.Ext(info.Name()), ".aff") {
			h, err := Open(path, options)
			if err != nil {
				errs = append(errs, err)
				return nil
			}
			dicts = append(dicts, h)
		}
		return nil
	}); err != nil {
		errs = append(errs, err)
		return nil, errs
	}
	return dicts, errs
}

// basePath strips the .aff or .dic extension, including compression
// extensions, from path.
func basePath(path string) (string, error) {
	p := path
	switch strings.ToLower(filepath.Ext(p)) {
	case ".gz", ".dz":
		p = strings.TrimSuffix(p, filepath.Ext(p))
	}
	ext := filepath.Ext(p)
	switch strings.ToLower(ext) {
	case ".aff", ".dic":
		return strings.TrimSuffix(p, ext), nil
	case "":
		return p, nil
	default:
		return "", fmt.Errorf("%w: %v", ErrBadExtension, ext)
	}
}

func findAffPath(base string) (string, error) {
	for _, ext := range []string{".aff", ".AFF"} {
		p := base + ext
		_, err := os.Stat(p)
		if err == nil {
			return p, nil
		}
		if !errors.Is(err, os.ErrNotExist) {
			return "", fmt.Errorf("finding .aff file: %w", err)
		}
	}
	return "", fmt.Errorf("finding .aff file for %q: %w", base, os.ErrNotExist)
}

// Open opens a Hunspell dictionary. The path may name the .aff file, the .dic
// file or their common path without extension.
func Open(path string, options *Options) (*Hunspell, error) {
	if options == nil {
		options = DefaultOptions
	}
	logger := options.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	base, err := basePath(path)
	if err != nil {
		return nil, err
	}

	h := &Hunspell{
		basePath: base,
		logger:   logger,
	}

	h.affPath, err = findAffPath(base)
	if err != nil {
		return nil, err
	}
	h.dicPath, err = dic.Find(base)
	if err != nil {
		return nil, err
	}

	h.aff, err = aff.ParseFile(h.affPath, &aff.Options{
		Logger: logger,
	})
	if err != nil {
		return nil, fmt.Errorf("reading %q: %w", h.affPath, err)
	}

	return h, nil
}

// Name returns the dictionary name, the base name of its files.
func (h *Hunspell) Name() string {
	return filepath.Base(h.basePath)
}

// Aff returns the dictionary's parsed .aff file.
func (h *Hunspell) Aff() *aff.Aff {
	return h.aff
}

// AffPath returns the path to the .aff file.
func (h *Hunspell) AffPath() string {
	return h.affPath
}

// DicPath returns the path to the .dic file.
func (h *Hunspell) DicPath() string {
	return h.dicPath
}

// Scanner returns a new scanner over the dictionary's .dic file decoded to
// UTF-8. The caller must close the scanner.
func (h *Hunspell) Scanner() (*dic.Scanner, error) {
	r, err := dic.Open(h.dicPath)
	if err != nil {
		return nil, err
	}

	enc := h.aff.Encoding()
	s, err := dic.NewScanner(r, &dic.ScannerOptions{
		Decoder: func() transform.Transformer {
			return enc.NewDecoder()
		},
		OnMalformed: func(err *dic.EntryFormatError) {
			h.logger.Debug("skipping dictionary line",
				zap.String("path", h.dicPath),
				zap.Error(err),
			)
		},
	})
	if err != nil {
		r.Close()
		return nil, fmt.Errorf("reading %q: %w", h.dicPath, err)
	}
	return s, nil
}

// Words returns all words generated by the dictionary. Iteration stops at the
// first error, which is yielded with a nil word, or when ctx is done.
func (h *Hunspell) Words(ctx context.Context) iter.Seq2[*aff.Word, error] {
	return h.scan(ctx, h.aff.ExpandEntry)
}

// RootWords returns the dictionary's root words without applying any affix
// rules.
func (h *Hunspell) RootWords(ctx context.Context) iter.Seq2[*aff.Word, error] {
	return h.scan(ctx, func(e *dic.Entry) iter.Seq[*aff.Word] {
		return h.aff.ExpandEntryDepth(e, 0)
	})
}

func (h *Hunspell) scan(ctx context.Context, expand func(*dic.Entry) iter.Seq[*aff.Word]) iter.Seq2[*aff.Word, error] {
	return func(yield func(*aff.Word, error) bool) {
		s, err := h.Scanner()
		if err != nil {
			yield(nil, err)
			return
		}
		defer s.Close()

		for s.Scan() {
			if err := ctx.Err(); err != nil {
				yield(nil, err)
				return
			}
			for w := range expand(s.Entry()) {
				if !yield(w, nil) {
					return
				}
			}
		}
		if err := s.Err(); err != nil {
			yield(nil, fmt.Errorf("reading %q: %w", h.dicPath, err))
		}
	}
}
