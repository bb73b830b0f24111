// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package utils

// Returns a new instance of a T.
func Zero[T any]() T {
	return *new(T)
}

// AggregateFirst folds [s] into an accumulator starting from [initial] and
// returns the index of the first element after which [until] reports true.
// Returns false if [until] never reports true.
func AggregateFirst[T, A any](
	s []T,
	initial A,
	aggregate func(A, T) A,
	until func(A) bool,
) (int, bool) {
	acc := initial
	for i, v := range s {
		acc = aggregate(acc, v)
		if until(acc) {
			return i, true
		}
	}
	return 0, false
}
