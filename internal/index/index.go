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

// Package index implements an in-memory sorted index of values keyed by
// strings.
package index

import (
	"slices"
	"strings"
)

type item[V any] struct {
	key   string
	value V
}

// Index is a generic sorted array index. Values sharing a key keep their
// insertion order.
type Index[V any] struct {
	items []item[V]
}

// Builder accumulates values for an Index.
type Builder[V any] struct {
	items []item[V]
}

// Add adds a value under key.
func (b *Builder[V]) Add(key string, value V) {
	b.items = append(b.items, item[V]{key: key, value: value})
}

// Len returns the number of values added.
func (b *Builder[V]) Len() int {
	return len(b.items)
}

// Build sorts the values and returns the index. The builder should not be
// used afterwards.
func (b *Builder[V]) Build() *Index[V] {
	items := b.items
	b.items = nil
	slices.SortStableFunc(items, func(x, y item[V]) int {
		return strings.Compare(x.key, y.key)
	})
	return &Index[V]{items: items}
}

// Len returns the number of values in the index.
func (idx *Index[V]) Len() int {
	return len(idx.items)
}

// Search performs a binary search over the index and returns the values
// stored under key.
func (idx *Index[V]) Search(key string) []V {
	i, found := slices.BinarySearchFunc(idx.items, key, func(it item[V], k string) int {
		return strings.Compare(it.key, k)
	})
	if !found {
		return nil
	}

	var values []V
	for ; i < len(idx.items) && idx.items[i].key == key; i++ {
		values = append(values, idx.items[i].value)
	}
	return values
}
