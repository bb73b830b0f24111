// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package metric

// Useful population size buckets
var PopulationBuckets = []float64{
	1,
	2,
	4,
	8,
	16,
	64,
	256,
	1024,
	4096,
	// anything larger than 4096 candidates will be bucketed together
}
