// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package sampler

import (
	"golang.org/x/exp/slices"

	"github.com/ava-labs/sampling/utils"
)

// SampleOne returns an element of [items] drawn with probability proportional
// to its entry in [weights], along with its index.
//
// [weights] must be aligned with [items], contain no negative entries and sum
// to a positive value.
func SampleOne[T any](w *Weighted, items []T, weights []float64) (T, int, error) {
	if len(items) == 0 {
		return utils.Zero[T](), 0, w.fail(modeWeighted, ErrEmptyInput)
	}
	if err := checkAligned(len(items), len(weights)); err != nil {
		return utils.Zero[T](), 0, w.fail(modeWeighted, err)
	}
	index, err := w.SampleIndex(weights)
	if err != nil {
		return utils.Zero[T](), 0, err
	}
	return items[index], index, nil
}

// SampleOneWithDecay returns an element of [items] where each element is
// [factor] times as likely to be drawn as the one before it.
func SampleOneWithDecay[T any](w *Weighted, items []T, factor float64) (T, error) {
	index, err := w.SampleIndexWithDecay(len(items), factor)
	if err != nil {
		return utils.Zero[T](), err
	}
	return items[index], nil
}

// SampleMany returns [count] lazy draws from [items] weighted by [weights].
//
// If [allowRepeating] is false, every drawn element is removed from the
// population before the next draw, so [count] may not exceed len(items).
func SampleMany[T any](
	w *Weighted,
	items []T,
	weights []float64,
	count int,
	allowRepeating bool,
) (*Draws[T], error) {
	if len(items) == 0 {
		return nil, w.fail(modeWeighted, ErrEmptyInput)
	}
	if err := checkAligned(len(items), len(weights)); err != nil {
		return nil, w.fail(modeWeighted, err)
	}
	indices, err := w.SampleIndices(weights, count, allowRepeating)
	if err != nil {
		return nil, err
	}
	return &Draws[T]{
		items:   slices.Clone(items),
		indices: indices,
	}, nil
}

// UniformOne returns an element of [items] drawn uniformly, along with its
// index.
func UniformOne[T any](w *Weighted, items []T) (T, int, error) {
	if len(items) == 0 {
		return utils.Zero[T](), 0, w.fail(modeUniform, ErrEmptyInput)
	}
	w.metrics.observe(modeUniform, len(items))
	index := w.rng.Intn(len(items))
	return items[index], index, nil
}

// UniformOrDefault returns an element of [items] drawn uniformly, or [def] if
// [items] is empty.
func UniformOrDefault[T any](w *Weighted, items []T, def T) T {
	if len(items) == 0 {
		return def
	}
	item, _, _ := UniformOne(w, items)
	return item
}

// UniformMany returns [count] lazy uniform draws from [items].
func UniformMany[T any](w *Weighted, items []T, count int, allowRepeating bool) (*Draws[T], error) {
	if len(items) == 0 {
		return nil, w.fail(modeUniform, ErrEmptyInput)
	}
	if err := checkCount(len(items), count, allowRepeating); err != nil {
		return nil, w.fail(modeUniform, err)
	}
	return &Draws[T]{
		items:   slices.Clone(items),
		indices: newUniformIndexDraws(w, len(items), count, allowRepeating),
	}, nil
}
