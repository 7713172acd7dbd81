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

// Package testutil implements helpers for writing test dictionaries.
package testutil

import (
	"bytes"
	"compress/gzip"
	"os"
	"path/filepath"
	"testing"

	"github.com/ianlewis/go-dictzip"
	"golang.org/x/text/encoding"
)

// Compression is the compression applied to a test .dic file.
type Compression int

const (
	// None writes a plain .dic file.
	None Compression = iota

	// Gzip writes a .dic.gz file.
	Gzip

	// DictZip writes a .dic.dz file.
	DictZip
)

// MakeDictOptions are options for MakeDict.
type MakeDictOptions struct {
	// Name is the base name of the dictionary files. Defaults to "test".
	Name string

	// Compression is the .dic file compression.
	Compression Compression

	// Encoding encodes both files. Defaults to UTF-8.
	Encoding encoding.Encoding
}

// GetName returns the dictionary base name.
func (o *MakeDictOptions) GetName() string {
	if o != nil && o.Name != "" {
		return o.Name
	}
	return "test"
}

// GetDicExt returns the extension of the .dic file.
func (o *MakeDictOptions) GetDicExt() string {
	if o != nil {
		switch o.Compression {
		case Gzip:
			return ".dic.gz"
		case DictZip:
			return ".dic.dz"
		}
	}
	return ".dic"
}

// MakeDict writes an .aff and a .dic file to dir and returns the path of the
// .dic file.
func MakeDict(t *testing.T, dir, affData, dicData string, opts *MakeDictOptions) string {
	t.Helper()

	base := filepath.Join(dir, opts.GetName())
	WriteFile(t, base+".aff", encode(t, []byte(affData), opts))

	d := encode(t, []byte(dicData), opts)
	var b bytes.Buffer
	switch {
	case opts != nil && opts.Compression == Gzip:
		z := gzip.NewWriter(&b)
		if _, err := z.Write(d); err != nil {
			t.Fatal(err)
		}
		if err := z.Close(); err != nil {
			t.Fatal(err)
		}
	case opts != nil && opts.Compression == DictZip:
		// dictzip writes its header after the data so it needs a file.
		dicPath := base + opts.GetDicExt()
		f, err := os.Create(dicPath)
		if err != nil {
			t.Fatal(err)
		}
		defer f.Close()
		z, err := dictzip.NewWriter(f)
		if err != nil {
			t.Fatal(err)
		}
		if _, err := z.Write(d); err != nil {
			t.Fatal(err)
		}
		if err := z.Close(); err != nil {
			t.Fatal(err)
		}
		return dicPath
	default:
		b.Write(d)
	}

	dicPath := base + opts.GetDicExt()
	WriteFile(t, dicPath, b.Bytes())
	return dicPath
}

// WriteFile writes data to path, failing the test on error.
func WriteFile(t *testing.T, path string, data []byte) {
	t.Helper()

	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}
}

func encode(t *testing.T, b []byte, opts *MakeDictOptions) []byte {
	t.Helper()

	if opts == nil || opts.Encoding == nil {
		return b
	}
	out, err := opts.Encoding.NewEncoder().Bytes(b)
	if err != nil {
		t.Fatal(err)
	}
	return out
}
