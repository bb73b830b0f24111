// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package utils

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAggregateFirst(t *testing.T) {
	subtract := func(remainder, weight float64) float64 {
		return remainder - weight
	}
	exhausted := func(remainder float64) bool {
		return remainder <= 0
	}

	tests := []struct {
		name          string
		weights       []float64
		initial       float64
		expectedIndex int
		expectedOk    bool
	}{
		{
			name:          "empty",
			weights:       nil,
			initial:       1,
			expectedIndex: 0,
			expectedOk:    false,
		},
		{
			name:          "first element",
			weights:       []float64{1, 1, 1},
			initial:       0.5,
			expectedIndex: 0,
			expectedOk:    true,
		},
		{
			name:          "exact boundary",
			weights:       []float64{1, 1, 1},
			initial:       2,
			expectedIndex: 1,
			expectedOk:    true,
		},
		{
			name:          "middle element",
			weights:       []float64{1, 1, 1},
			initial:       1.5,
			expectedIndex: 1,
			expectedOk:    true,
		},
		{
			name:          "never satisfied",
			weights:       []float64{1, 1, 1},
			initial:       3.5,
			expectedIndex: 0,
			expectedOk:    false,
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			require := require.New(t)

			index, ok := AggregateFirst(test.weights, test.initial, subtract, exhausted)
			require.Equal(test.expectedOk, ok)
			require.Equal(test.expectedIndex, index)
		})
	}
}

func TestZero(t *testing.T) {
	require := require.New(t)

	require.Zero(Zero[int]())
	require.Nil(Zero[*int]())
	require.Equal(struct{ a string }{}, Zero[struct{ a string }]())
}
