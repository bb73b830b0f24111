// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package sampler

import "errors"

var (
	// ErrEmptyInput is returned when a draw is requested over zero elements.
	ErrEmptyInput = errors.New("empty input")
	// ErrInvalidArgument is returned for mismatched weights, invalid weight
	// sums, bad decay factors and unsatisfiable draw counts.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrOutOfRange is returned by Draws once every requested draw was made.
	ErrOutOfRange = errors.New("out of range")
)
