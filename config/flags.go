// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/ava-labs/sampling/utils/constants"
	"github.com/ava-labs/sampling/utils/logging"
)

// AddFlags adds every configuration flag to [fs].
func AddFlags(fs *pflag.FlagSet) {
	fs.String(ConfigFileKey, "", "Specifies a JSON or YAML config file")

	// Population
	fs.StringSlice(ItemsKey, nil, "Elements to sample from")
	fs.StringSlice(WeightsKey, nil, "Weight of each element, aligned with --"+ItemsKey)
	fs.Float64(DecayFactorKey, 0, "Derive weights as 1, f, f^2, ... from this factor instead of --"+WeightsKey)

	// Draws
	fs.Int(CountKey, 1, "Number of elements to draw")
	fs.Bool(AllowRepeatingKey, false, "Whether an element may be drawn more than once")
	fs.Uint64(SeedKey, 0, "Seed of the random source. Zero seeds from the clock")

	// Logging
	fs.String(LogLevelKey, logging.Info.String(), fmt.Sprintf("The log level. Should be one of {%s, %s, %s, %s, %s, %s, %s, %s}",
		logging.Verbo,
		logging.Debug,
		logging.Trace,
		logging.Info,
		logging.Warn,
		logging.Error,
		logging.Fatal,
		logging.Off,
	))
	fs.String(LogFormatKey, "auto", "The structure of log format. Defaults to 'auto' which formats terminal-like logs, when the output is a terminal. Otherwise, should be one of {auto, plain, colors, json}")

	// Metrics
	fs.String(MetricsNamespaceKey, constants.AppName, "Prometheus namespace of the sampler metrics")
}

// BuildFlagSet returns a complete set of flags.
func BuildFlagSet() *pflag.FlagSet {
	fs := pflag.NewFlagSet(constants.AppName, pflag.ContinueOnError)
	AddFlags(fs)
	return fs
}

// BuildViper returns the viper environment built from [fs] after parsing
// [args]. Values are resolved from flags, then the environment, then the
// config file.
func BuildViper(fs *pflag.FlagSet, args []string) (*viper.Viper, error) {
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	return BindViper(fs)
}

// BindViper returns the viper environment built from the already parsed [fs].
func BindViper(fs *pflag.FlagSet) (*viper.Viper, error) {
	v := viper.New()
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.SetEnvPrefix(constants.EnvPrefix)
	if err := v.BindPFlags(fs); err != nil {
		return nil, err
	}

	if configFile := v.GetString(ConfigFileKey); configFile != "" {
		expanded := os.ExpandEnv(configFile)
		v.SetConfigFile(expanded)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("couldn't read config file %q: %w", expanded, err)
		}
	}
	return v, nil
}
