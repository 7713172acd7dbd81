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

// Package unique implements filtering of repeated values with a bounded
// memory of recently seen values.
package unique

import (
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"
)

// Filter reports whether a value has not been seen among the most recent
// values. Values that fell out of the history are reported as new again.
type Filter[K comparable] struct {
	seen *lru.Cache[K, struct{}]
}

// New returns a filter remembering up to size values.
func New[K comparable](size int) (*Filter[K], error) {
	c, err := lru.New[K, struct{}](size)
	if err != nil {
		return nil, fmt.Errorf("creating unique filter: %w", err)
	}
	return &Filter[K]{seen: c}, nil
}

// Keep returns true if k was not among the remembered values and records it.
func (f *Filter[K]) Keep(k K) bool {
	if f.seen.Contains(k) {
		// Refresh k so that frequent values stay in the history.
		f.seen.Get(k)
		return false
	}
	f.seen.Add(k, struct{}{})
	return true
}
