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

package unique

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestFilter_Keep(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		size     int
		input    []int
		expected []int
	}{
		{
			name:     "large history",
			size:     100,
			input:    []int{1, 2, 1, 3, 4, 5, 3, 4, 2, 3},
			expected: []int{1, 2, 3, 4, 5},
		},
		{
			name:     "history of three",
			size:     3,
			input:    []int{1, 2, 1, 3, 4, 5, 3, 4, 2, 3},
			expected: []int{1, 2, 3, 4, 5, 2},
		},
		{
			name:     "no input",
			size:     3,
			input:    nil,
			expected: nil,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			f, err := New[int](test.size)
			if err != nil {
				t.Fatalf("New: %v", err)
			}

			var got []int
			for _, v := range test.input {
				if f.Keep(v) {
					got = append(got, v)
				}
			}

			if diff := cmp.Diff(test.expected, got); diff != "" {
				t.Fatalf("Keep (-want, +got):\n%s", diff)
			}
		})
	}
}

func TestNew_invalidSize(t *testing.T) {
	t.Parallel()

	if _, err := New[string](0); err == nil {
		t.Fatal("New: expected failure")
	}
}
