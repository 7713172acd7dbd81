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

package main

import (
	"context"
	"fmt"
	"iter"

	"golang.org/x/sync/errgroup"

	"github.com/ianlewis/go-hunspell"
	"github.com/ianlewis/go-hunspell/aff"
	"github.com/ianlewis/go-hunspell/dic"
)

// batchSize is the number of dictionary entries expanded by one job.
const batchSize = 500

// generator expands the entries of a dictionary in parallel.
type generator struct {
	dict *hunspell.Hunspell

	// jobs is the number of batches expanded at once.
	jobs int

	// rootsOnly disables affix expansion.
	rootsOnly bool

	// keepFlagged keeps words marked FORBIDDENWORD or NEEDAFFIX.
	keepFlagged bool
}

// result is the words generated from a batch of entries.
type result struct {
	entries int
	words   []*aff.Word
}

// batches groups the scanner's entries.
func batches(s *dic.Scanner, size int) iter.Seq[[]*dic.Entry] {
	return func(yield func([]*dic.Entry) bool) {
		var b []*dic.Entry
		for s.Scan() {
			b = append(b, s.Entry())
			if len(b) == size {
				if !yield(b) {
					return
				}
				b = nil
			}
		}
		if len(b) > 0 {
			yield(b)
		}
	}
}

func (g *generator) expand(entries []*dic.Entry) result {
	a := g.dict.Aff()
	r := result{entries: len(entries)}
	for _, e := range entries {
		seq := a.ExpandEntry(e)
		if g.rootsOnly {
			seq = a.ExpandEntryDepth(e, 0)
		}
		for w := range seq {
			if !g.keepFlagged && (w.Flags.Forbidden || w.Flags.NeedAffix) {
				continue
			}
			r.words = append(r.words, w)
		}
	}
	return r
}

// generate expands the dictionary and calls emit with the words of each
// batch. Batches are emitted in dictionary order.
func (g *generator) generate(ctx context.Context, emit func(result) error) error {
	s, err := g.dict.Scanner()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrHunspellWords, err)
	}
	defer s.Close()

	jobs := max(g.jobs, 1)
	eg, ctx := errgroup.WithContext(ctx)

	// Each batch gets a slot so that results are read in order.
	slots := make(chan chan result, jobs)

	eg.Go(func() error {
		defer close(slots)

		var workers errgroup.Group
		workers.SetLimit(jobs)
		defer func() { _ = workers.Wait() }()

		for b := range batches(s, batchSize) {
			slot := make(chan result, 1)
			select {
			case slots <- slot:
			case <-ctx.Done():
				return ctx.Err()
			}
			workers.Go(func() error {
				slot <- g.expand(b)
				return nil
			})
		}
		if err := s.Err(); err != nil {
			return fmt.Errorf("%w: reading %q: %w", ErrHunspellWords, g.dict.DicPath(), err)
		}
		return nil
	})

	eg.Go(func() error {
		for slot := range slots {
			select {
			case r := <-slot:
				if err := emit(r); err != nil {
					return err
				}
			case <-ctx.Done():
				return ctx.Err()
			}
		}
		return nil
	})

	//nolint:wrapcheck // errors are wrapped by the jobs.
	return eg.Wait()
}
