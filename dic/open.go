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

package dic

import (
	"compress/gzip"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ianlewis/go-dictzip"
)

// Exts are the recognized .dic file extensions in lookup order.
var Exts = []string{
	".dic",
	".DIC",
	".dic.dz",
	".dic.gz",
	".DIC.DZ",
	".DIC.GZ",
}

// multiCloser closes a decompressor and the file beneath it.
type multiCloser struct {
	io.Reader
	closers []io.Closer
}

func (m *multiCloser) Close() error {
	var errs []error
	for _, c := range m.closers {
		// Some decompressors close the file themselves.
		if err := c.Close(); err != nil && !errors.Is(err, os.ErrClosed) {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Find returns the path of the .dic file for the given base path (the path
// without extension).
func Find(basePath string) (string, error) {
	for _, ext := range Exts {
		p := basePath + ext
		_, err := os.Stat(p)
		if err == nil {
			return p, nil
		}
		if !errors.Is(err, os.ErrNotExist) {
			return "", fmt.Errorf("finding .dic file: %w", err)
		}
	}
	return "", fmt.Errorf("finding .dic file for %q: %w", basePath, os.ErrNotExist)
}

// Open opens the .dic file at path. Files ending in .dz are read as dictzip
// and files ending in .gz as gzip.
func Open(path string) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening .dic file: %w", err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".dz":
		z, err := dictzip.NewReader(f)
		if err != nil {
			f.Close()
			return nil, fmt.Errorf("creating .dic dictzip reader: %w", err)
		}
		var r io.Reader = z
		m := &multiCloser{Reader: r}
		if c, ok := r.(io.Closer); ok {
			m.closers = append(m.closers, c)
		}
		m.closers = append(m.closers, f)
		return m, nil
	case ".gz":
		z, err := gzip.NewReader(f)
		if err != nil {
			f.Close()
			return nil, fmt.Errorf("creating .dic gzip reader: %w", err)
		}
		return &multiCloser{
			Reader:  z,
			closers: []io.Closer{z, f},
		}, nil
	default:
		return f, nil
	}
}
