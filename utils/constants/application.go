// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package constants

// Const variables to be exported
const (
	AppName = "sampler"

	// EnvPrefix is prepended to configuration keys read from the environment.
	EnvPrefix = "SAMPLER"
)
