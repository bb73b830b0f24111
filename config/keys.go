// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package config

const (
	ConfigFileKey       = "config-file"
	ItemsKey            = "items"
	WeightsKey          = "weights"
	DecayFactorKey      = "decay-factor"
	CountKey            = "count"
	AllowRepeatingKey   = "allow-repeating"
	SeedKey             = "seed"
	LogLevelKey         = "log-level"
	LogFormatKey        = "log-format"
	MetricsNamespaceKey = "metrics-namespace"
)
