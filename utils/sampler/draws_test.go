// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package sampler

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/ava-labs/sampling/utils/sampler/samplermock"
)

func TestSampleManyWithoutRepetition(t *testing.T) {
	require := require.New(t)
	ctrl := gomock.NewController(t)

	rng := samplermock.NewRNG(ctrl)
	gomock.InOrder(
		// 2.5-1 = 1.5, 1.5-2 = -0.5 => "b"
		rng.EXPECT().Float64(0., 6.).Return(2.5),
		// "b" was removed: 3.5-1 = 2.5, 2.5-3 = -0.5 => "c"
		rng.EXPECT().Float64(0., 4.).Return(3.5),
		rng.EXPECT().Float64(0., 1.).Return(0.2),
	)

	draws, err := SampleMany(NewWeighted(rng), []string{"a", "b", "c"}, []float64{1, 2, 3}, 3, false)
	require.NoError(err)
	require.Equal(3, draws.Remaining())

	item, index, err := draws.NextIndexed()
	require.NoError(err)
	require.Equal("b", item)
	require.Equal(1, index)

	item, index, err = draws.NextIndexed()
	require.NoError(err)
	require.Equal("c", item)
	require.Equal(2, index)

	item, index, err = draws.NextIndexed()
	require.NoError(err)
	require.Equal("a", item)
	require.Zero(index)

	require.Zero(draws.Remaining())
	_, err = draws.Next()
	require.ErrorIs(err, ErrOutOfRange)
}

func TestSampleManyWithRepetition(t *testing.T) {
	require := require.New(t)
	ctrl := gomock.NewController(t)

	rng := samplermock.NewRNG(ctrl)
	rng.EXPECT().Float64(0., 6.).Return(2.5).Times(3)

	draws, err := SampleMany(NewWeighted(rng), []string{"a", "b", "c"}, []float64{1, 2, 3}, 3, true)
	require.NoError(err)

	items, err := draws.Collect()
	require.NoError(err)
	require.Equal([]string{"b", "b", "b"}, items)
}

func TestSampleManyIsLazy(t *testing.T) {
	require := require.New(t)
	ctrl := gomock.NewController(t)

	// Only the draws that are requested consume randomness.
	rng := samplermock.NewRNG(ctrl)
	rng.EXPECT().Float64(0., 2.).Return(0.5)

	draws, err := SampleMany(NewWeighted(rng), []int{7, 8}, []float64{1, 1}, 2, false)
	require.NoError(err)

	for item, err := range draws.All() {
		require.NoError(err)
		require.Equal(7, item)
		break
	}
	require.Equal(1, draws.Remaining())
}

func TestSampleManyPermutation(t *testing.T) {
	require := require.New(t)

	w := NewWeighted(NewDeterministicRNG(6))
	items := []string{"a", "b", "c", "d", "e", "f"}
	weights := []float64{1, 10, 0.5, 3, 3, 100}

	for i := 0; i < 100; i++ {
		draws, err := SampleMany(w, items, weights, len(items), false)
		require.NoError(err)

		drawn, err := draws.Collect()
		require.NoError(err)
		require.ElementsMatch(items, drawn)
	}
}

func TestSampleManyErrors(t *testing.T) {
	tests := []struct {
		name           string
		items          []string
		weights        []float64
		count          int
		allowRepeating bool
		expectedErr    error
	}{
		{
			name:        "empty",
			items:       nil,
			weights:     nil,
			count:       1,
			expectedErr: ErrEmptyInput,
		},
		{
			name:        "mismatched weights",
			items:       []string{"a", "b"},
			weights:     []float64{1},
			count:       1,
			expectedErr: ErrInvalidArgument,
		},
		{
			name:        "too many draws without repetition",
			items:       []string{"a", "b"},
			weights:     []float64{1, 1},
			count:       3,
			expectedErr: ErrInvalidArgument,
		},
		{
			name:           "negative count",
			items:          []string{"a", "b"},
			weights:        []float64{1, 1},
			count:          -1,
			allowRepeating: true,
			expectedErr:    ErrInvalidArgument,
		},
		{
			name:           "zero sum",
			items:          []string{"a", "b"},
			weights:        []float64{0, 0},
			count:          1,
			allowRepeating: true,
			expectedErr:    ErrInvalidArgument,
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			require := require.New(t)
			ctrl := gomock.NewController(t)

			rng := samplermock.NewRNG(ctrl)
			_, err := SampleMany(NewWeighted(rng), test.items, test.weights, test.count, test.allowRepeating)
			require.ErrorIs(err, test.expectedErr)
		})
	}
}

func TestSampleManyExhaustsPositiveWeights(t *testing.T) {
	require := require.New(t)

	w := NewWeighted(NewDeterministicRNG(7))
	draws, err := SampleMany(w, []string{"a", "b"}, []float64{1, 0}, 2, false)
	require.NoError(err)

	item, err := draws.Next()
	require.NoError(err)
	require.Equal("a", item)

	// Only a zero weight remains.
	_, err = draws.Next()
	require.ErrorIs(err, ErrInvalidArgument)
	require.Zero(draws.Remaining())

	_, err = draws.Next()
	require.ErrorIs(err, ErrInvalidArgument)

	_, err = draws.Collect()
	require.ErrorIs(err, ErrInvalidArgument)
}

func TestSampleManyCollectReportsErrors(t *testing.T) {
	require := require.New(t)

	w := NewWeighted(NewDeterministicRNG(8))
	draws, err := SampleMany(w, []string{"a", "b", "c"}, []float64{1, 0, 0}, 3, false)
	require.NoError(err)

	_, err = draws.Collect()
	require.ErrorIs(err, ErrInvalidArgument)
}

func TestSampleManyDoesNotModifyInputs(t *testing.T) {
	require := require.New(t)

	items := []string{"a", "b", "c", "d"}
	weights := []float64{4, 3, 2, 1}

	w := NewWeighted(NewDeterministicRNG(9))
	draws, err := SampleMany(w, items, weights, len(items), false)
	require.NoError(err)

	// Mutating the inputs after the call doesn't change what is drawn.
	items[0] = "z"
	weights[0] = 0

	drawn, err := draws.Collect()
	require.NoError(err)
	require.ElementsMatch([]string{"a", "b", "c", "d"}, drawn)
	require.Equal([]float64{0, 3, 2, 1}, weights)
}

func TestSampleManyZeroCount(t *testing.T) {
	require := require.New(t)
	ctrl := gomock.NewController(t)

	rng := samplermock.NewRNG(ctrl)
	draws, err := SampleMany(NewWeighted(rng), []int{1}, []float64{1}, 0, false)
	require.NoError(err)

	drawn, err := draws.Collect()
	require.NoError(err)
	require.Empty(drawn)
}

func TestSampleManyDistribution(t *testing.T) {
	require := require.New(t)

	// Drawing 2 of [3, 1, 0] without repetition always yields both positive
	// weights, with the heavier one first 75% of the time.
	w := NewWeighted(NewDeterministicRNG(10))
	items := []int{0, 1, 2}
	weights := []float64{3, 1, 0}

	firsts := make([]int, len(items))
	for i := 0; i < iterations; i++ {
		draws, err := SampleMany(w, items, weights, 2, false)
		require.NoError(err)

		drawn, err := draws.Collect()
		require.NoError(err)
		require.ElementsMatch([]int{0, 1}, drawn)
		firsts[drawn[0]]++
	}
	require.InDelta(0.75, float64(firsts[0])/iterations, tolerance)
}
