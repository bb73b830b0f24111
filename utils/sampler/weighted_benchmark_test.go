// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package sampler

import (
	"fmt"
	"testing"
)

func BenchmarkSampleOne(b *testing.B) {
	for _, size := range []int{10, 100, 1000} {
		b.Run(fmt.Sprintf("%d", size), func(b *testing.B) {
			w := NewWeighted(NewDeterministicRNG(0))
			items := make([]int, size)
			weights := make([]float64, size)
			for i := range weights {
				items[i] = i
				weights[i] = float64(i + 1)
			}

			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				_, _, _ = SampleOne(w, items, weights)
			}
		})
	}
}

func BenchmarkSampleManyWithoutRepetition(b *testing.B) {
	for _, size := range []int{10, 100, 1000} {
		b.Run(fmt.Sprintf("%d", size), func(b *testing.B) {
			w := NewWeighted(NewDeterministicRNG(0))
			items := make([]int, size)
			weights := make([]float64, size)
			for i := range weights {
				items[i] = i
				weights[i] = float64(i + 1)
			}

			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				draws, err := SampleMany(w, items, weights, size/2, false)
				if err != nil {
					b.Fatal(err)
				}
				if _, err := draws.Collect(); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
