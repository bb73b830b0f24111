// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package sampler

import (
	"fmt"
	"math"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/ava-labs/sampling/utils"
	"github.com/ava-labs/sampling/utils/logging"
)

// Weighted draws indices with probability proportional to a weight list.
//
// Sampling is performed by walking the weights in order and subtracting each
// weight from a value drawn uniformly in [0, sum(weights)). The first index
// with a positive weight where the remainder is <= 0 is selected, so zero
// weights are never drawn by the walk.
//
// Sampling takes O(n) time. Weighted holds no state between calls, so it may
// be shared as long as its RNG may be shared.
type Weighted struct {
	rng     RNG
	log     logging.Logger
	metrics *metrics
}

// NewWeighted returns a sampler that draws from [rng] without logging or
// metrics.
func NewWeighted(rng RNG) *Weighted {
	return &Weighted{
		rng:     rng,
		log:     logging.NoLog{},
		metrics: noMetrics,
	}
}

// New returns a sampler that draws from [rng], logs to [log] and registers
// its metrics under [namespace] with [registerer].
func New(
	rng RNG,
	log logging.Logger,
	namespace string,
	registerer prometheus.Registerer,
) (*Weighted, error) {
	m, err := newMetrics(namespace, registerer)
	if err != nil {
		return nil, err
	}
	return &Weighted{
		rng:     rng,
		log:     log,
		metrics: m,
	}, nil
}

// SampleIndex returns an index in [0, len(weights)) drawn proportionally to
// [weights].
func (w *Weighted) SampleIndex(weights []float64) (int, error) {
	if len(weights) == 0 {
		return 0, w.fail(modeWeighted, ErrEmptyInput)
	}
	sum, err := sumWeights(weights)
	if err != nil {
		return 0, w.fail(modeWeighted, err)
	}
	w.metrics.observe(modeWeighted, len(weights))
	return w.draw(weights, sum), nil
}

// SampleIndexWithDecay returns an index in [0, n) where index i has weight
// factor^i.
func (w *Weighted) SampleIndexWithDecay(n int, factor float64) (int, error) {
	weights, err := DecayWeights(n, factor)
	if err != nil {
		return 0, w.fail(modeDecay, err)
	}
	sum, err := sumWeights(weights)
	if err != nil {
		return 0, w.fail(modeDecay, err)
	}
	w.metrics.observe(modeDecay, n)
	return w.draw(weights, sum), nil
}

// SampleIndices returns [count] lazy draws over [weights]. If
// [allowRepeating] is false, every drawn index is removed from the population
// before the next draw.
func (w *Weighted) SampleIndices(weights []float64, count int, allowRepeating bool) (*IndexDraws, error) {
	if len(weights) == 0 {
		return nil, w.fail(modeWeighted, ErrEmptyInput)
	}
	if err := checkCount(len(weights), count, allowRepeating); err != nil {
		return nil, w.fail(modeWeighted, err)
	}
	if _, err := sumWeights(weights); err != nil {
		return nil, w.fail(modeWeighted, err)
	}
	return newIndexDraws(w, modeWeighted, weights, count, allowRepeating), nil
}

// walk is the state of the cumulative walk after subtracting [weight].
type walk struct {
	remainder float64
	weight    float64
}

// draw assumes [sum] is the positive, finite sum of [weights].
func (w *Weighted) draw(weights []float64, sum float64) int {
	p := w.rng.Float64(0, sum)
	index, ok := utils.AggregateFirst(
		weights,
		walk{remainder: p},
		func(state walk, weight float64) walk {
			return walk{
				remainder: state.remainder - weight,
				weight:    weight,
			}
		},
		// A draw of exactly 0 must not stop on a leading zero weight.
		func(state walk) bool {
			return state.remainder <= 0 && state.weight > 0
		},
	)
	if ok {
		return index
	}

	// Rounding left a positive remainder after every weight was subtracted.
	index = w.rng.Intn(len(weights))
	w.metrics.fallbacks.Inc()
	w.log.Debug("falling back to uniform selection",
		zap.Float64("draw", p),
		zap.Float64("sum", sum),
		zap.Int("index", index),
	)
	return index
}

func (w *Weighted) fail(mode string, err error) error {
	w.metrics.failed(err)
	w.log.Verbo("rejected sampling request",
		zap.String("mode", mode),
		zap.Error(err),
	)
	return err
}

// DecayWeights returns the geometric weights 1, factor, factor^2, ... of
// length [n].
func DecayWeights(n int, factor float64) ([]float64, error) {
	if n <= 0 {
		return nil, ErrEmptyInput
	}
	if math.IsNaN(factor) || math.IsInf(factor, 0) || factor <= 0 {
		return nil, fmt.Errorf("%w: decay factor %v must be positive and finite", ErrInvalidArgument, factor)
	}

	weights := make([]float64, n)
	weights[0] = 1
	for i := 1; i < n; i++ {
		weights[i] = weights[i-1] * factor
	}
	return weights, nil
}

func sumWeights(weights []float64) (float64, error) {
	sum := 0.
	for i, weight := range weights {
		if math.IsNaN(weight) || math.IsInf(weight, 0) || weight < 0 {
			return 0, fmt.Errorf("%w: weight %v at index %d", ErrInvalidArgument, weight, i)
		}
		sum += weight
	}
	if math.IsInf(sum, 0) || sum <= 0 {
		return 0, fmt.Errorf("%w: weights sum to %v", ErrInvalidArgument, sum)
	}
	return sum, nil
}

func checkCount(population, count int, allowRepeating bool) error {
	if count < 0 {
		return fmt.Errorf("%w: negative count %d", ErrInvalidArgument, count)
	}
	if !allowRepeating && count > population {
		return fmt.Errorf("%w: can't draw %d of %d elements without repetition",
			ErrInvalidArgument,
			count,
			population,
		)
	}
	return nil
}

func checkAligned(items, weights int) error {
	if items != weights {
		return fmt.Errorf("%w: %d weights for %d elements", ErrInvalidArgument, weights, items)
	}
	return nil
}
