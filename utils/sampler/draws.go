// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package sampler

import (
	"iter"

	"golang.org/x/exp/slices"

	"github.com/ava-labs/sampling/utils"
)

// IndexDraws lazily produces a bounded number of index draws. Each call to
// Next consumes randomness from the sampler's RNG.
//
// IndexDraws is not safe for concurrent use.
type IndexDraws struct {
	sampler *Weighted
	mode    string

	// indices[i] is the input position of the i-th element still in the
	// population. weights is aligned with indices, or nil for uniform draws.
	indices []int
	weights []float64

	allowRepeating bool
	remaining      int
	err            error
}

func newIndexDraws(
	sampler *Weighted,
	mode string,
	weights []float64,
	count int,
	allowRepeating bool,
) *IndexDraws {
	d := newUniformIndexDraws(sampler, len(weights), count, allowRepeating)
	d.mode = mode
	d.weights = slices.Clone(weights)
	return d
}

func newUniformIndexDraws(sampler *Weighted, n int, count int, allowRepeating bool) *IndexDraws {
	indices := make([]int, n)
	for i := range indices {
		indices[i] = i
	}
	return &IndexDraws{
		sampler:        sampler,
		mode:           modeUniform,
		indices:        indices,
		allowRepeating: allowRepeating,
		remaining:      count,
	}
}

// Remaining returns the number of draws that may still be made.
func (d *IndexDraws) Remaining() int {
	if d.err != nil {
		return 0
	}
	return d.remaining
}

// done reports whether Next has nothing left to return, including a failed
// draw.
func (d *IndexDraws) done() bool {
	return d.err == nil && d.remaining <= 0
}

// Next returns the input position of the next drawn element.
func (d *IndexDraws) Next() (int, error) {
	if d.err != nil {
		return 0, d.err
	}
	if d.remaining <= 0 {
		return 0, ErrOutOfRange
	}

	var i int
	if d.weights == nil {
		i = d.sampler.rng.Intn(len(d.indices))
	} else {
		// Removing elements may leave only zero weights behind.
		sum, err := sumWeights(d.weights)
		if err != nil {
			d.err = d.sampler.fail(d.mode, err)
			return 0, d.err
		}
		i = d.sampler.draw(d.weights, sum)
	}
	d.sampler.metrics.observe(d.mode, len(d.indices))
	d.remaining--

	index := d.indices[i]
	if !d.allowRepeating {
		d.indices = slices.Delete(d.indices, i, i+1)
		if d.weights != nil {
			d.weights = slices.Delete(d.weights, i, i+1)
		}
	}
	return index, nil
}

// Draws lazily produces a bounded number of element draws.
//
// Draws is not safe for concurrent use.
type Draws[T any] struct {
	items   []T
	indices *IndexDraws
}

// Remaining returns the number of draws that may still be made.
func (d *Draws[T]) Remaining() int {
	return d.indices.Remaining()
}

// Next returns the next drawn element.
func (d *Draws[T]) Next() (T, error) {
	item, _, err := d.NextIndexed()
	return item, err
}

// NextIndexed returns the next drawn element along with its position in the
// input.
func (d *Draws[T]) NextIndexed() (T, int, error) {
	index, err := d.indices.Next()
	if err != nil {
		return utils.Zero[T](), 0, err
	}
	return d.items[index], index, nil
}

// All iterates over the remaining draws. Iteration stops after the first
// error is yielded.
func (d *Draws[T]) All() iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		for !d.indices.done() {
			item, err := d.Next()
			if !yield(item, err) || err != nil {
				return
			}
		}
	}
}

// Collect performs every remaining draw.
func (d *Draws[T]) Collect() ([]T, error) {
	items := make([]T, 0, d.Remaining())
	for item, err := range d.All() {
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}
