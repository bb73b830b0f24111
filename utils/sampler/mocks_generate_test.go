// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package sampler

//go:generate go run go.uber.org/mock/mockgen@v0.4 -package=${GOPACKAGE}mock -source=rand.go -destination=${GOPACKAGE}mock/rng.go -mock_names=RNG=RNG -exclude_interfaces=Source
