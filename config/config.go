// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package config

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/viper"

	"github.com/ava-labs/sampling/utils/logging"
)

// Sampling modes
const (
	Uniform Mode = iota
	Weighted
	Decay
)

var (
	errNoItems             = errors.New("at least one item is required")
	errWeightsAndDecay     = fmt.Errorf("--%s and --%s are mutually exclusive", WeightsKey, DecayFactorKey)
	errNonPositiveCount    = fmt.Errorf("--%s must be positive", CountKey)
	errMismatchedWeights   = fmt.Errorf("--%s must have one entry per item", WeightsKey)
	errNonPositiveDecay    = fmt.Errorf("--%s must be positive", DecayFactorKey)
	errUnknownMode         = errors.New("unknown mode")
	errInvalidLoggingLevel = errors.New("invalid logging level")
)

// Mode selects how the weights of a draw are determined.
type Mode int

func (m Mode) String() string {
	switch m {
	case Uniform:
		return "uniform"
	case Weighted:
		return "weighted"
	case Decay:
		return "decay"
	default:
		return errUnknownMode.Error()
	}
}

type Config struct {
	Mode           Mode      `json:"mode"`
	Items          []string  `json:"items"`
	Weights        []float64 `json:"weights"`
	DecayFactor    float64   `json:"decayFactor"`
	Count          int       `json:"count"`
	AllowRepeating bool      `json:"allowRepeating"`
	// Seed of the random source. Zero means the source is seeded from the
	// clock.
	Seed uint64 `json:"seed"`

	LogLevel  logging.Level  `json:"logLevel"`
	LogFormat logging.Format `json:"logFormat"`

	MetricsNamespace string `json:"metricsNamespace"`
}

// notTerminal is never a valid file descriptor.
const notTerminal = ^uintptr(0)

// GetConfig returns the validated config held by [v]. [logOutput] is where
// logs will be written, and decides the "auto" log format.
func GetConfig(v *viper.Viper, logOutput io.Writer) (Config, error) {
	items, err := getList(v, ItemsKey)
	if err != nil {
		return Config{}, err
	}
	config := Config{
		Items:            items,
		Count:            v.GetInt(CountKey),
		AllowRepeating:   v.GetBool(AllowRepeatingKey),
		Seed:             v.GetUint64(SeedKey),
		MetricsNamespace: v.GetString(MetricsNamespaceKey),
	}
	if len(config.Items) == 0 {
		return Config{}, errNoItems
	}
	if config.Count <= 0 {
		return Config{}, errNonPositiveCount
	}

	hasWeights := v.IsSet(WeightsKey)
	hasDecay := v.IsSet(DecayFactorKey)
	switch {
	case hasWeights && hasDecay:
		return Config{}, errWeightsAndDecay
	case hasWeights:
		weights, err := getFloats(v, WeightsKey)
		if err != nil {
			return Config{}, err
		}
		if len(weights) != len(config.Items) {
			return Config{}, errMismatchedWeights
		}
		config.Mode = Weighted
		config.Weights = weights
	case hasDecay:
		config.DecayFactor = v.GetFloat64(DecayFactorKey)
		if config.DecayFactor <= 0 {
			return Config{}, errNonPositiveDecay
		}
		config.Mode = Decay
	default:
		config.Mode = Uniform
	}

	config.LogLevel, err = logging.ToLevel(v.GetString(LogLevelKey))
	if err != nil {
		return Config{}, fmt.Errorf("%w: %w", errInvalidLoggingLevel, err)
	}
	config.LogFormat, err = logging.ToFormat(v.GetString(LogFormatKey), fd(logOutput))
	if err != nil {
		return Config{}, err
	}
	return config, nil
}

// getList returns the entries of [key] verbatim. Flags and config file
// arrays are already lists, while environment variables and config file
// strings are comma separated values, quoted the way pflag quotes them.
func getList(v *viper.Viper, key string) ([]string, error) {
	raw, ok := v.Get(key).(string)
	if !ok {
		return v.GetStringSlice(key), nil
	}
	if raw == "" {
		return nil, nil
	}
	list, err := csv.NewReader(strings.NewReader(raw)).Read()
	if err != nil {
		return nil, fmt.Errorf("couldn't parse --%s %q: %w", key, raw, err)
	}
	return list, nil
}

func getFloats(v *viper.Viper, key string) ([]float64, error) {
	list, err := getList(v, key)
	if err != nil {
		return nil, err
	}
	floats := make([]float64, len(list))
	for i, entry := range list {
		f, err := strconv.ParseFloat(strings.TrimSpace(entry), 64)
		if err != nil {
			return nil, fmt.Errorf("couldn't parse --%s entry %q: %w", key, entry, err)
		}
		floats[i] = f
	}
	return floats, nil
}

func fd(w io.Writer) uintptr {
	if f, ok := w.(interface{ Fd() uintptr }); ok {
		return f.Fd()
	}
	return notTerminal
}
