// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package main

import (
	"fmt"
	"io"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ava-labs/sampling/config"
	"github.com/ava-labs/sampling/utils/constants"
	"github.com/ava-labs/sampling/utils/logging"
	"github.com/ava-labs/sampling/utils/sampler"
)

type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error {
	return nil
}

type runner struct {
	config   config.Config
	log      logging.Logger
	registry *prometheus.Registry
	sampler  *sampler.Weighted
	out      io.Writer
}

func newRunner(c *cobra.Command) (*runner, error) {
	v, err := config.BindViper(c.Flags())
	if err != nil {
		return nil, err
	}
	cfg, err := config.GetConfig(v, c.ErrOrStderr())
	if err != nil {
		return nil, err
	}

	log := logging.NewLogger(
		constants.AppName,
		logging.NewWrappedCore(
			cfg.LogLevel,
			nopCloser{Writer: c.ErrOrStderr()},
			cfg.LogFormat.ConsoleEncoder(),
		),
	)

	rng := sampler.DefaultRNG()
	if cfg.Seed != 0 {
		rng = sampler.NewDeterministicRNG(cfg.Seed)
	}

	registry := prometheus.NewRegistry()
	s, err := sampler.New(rng, log, cfg.MetricsNamespace, registry)
	if err != nil {
		return nil, err
	}

	log.Debug("starting sampler",
		zap.Stringer("mode", cfg.Mode),
		zap.Int("items", len(cfg.Items)),
		zap.Int("count", cfg.Count),
		zap.Bool("allowRepeating", cfg.AllowRepeating),
		zap.Uint64("seed", cfg.Seed),
	)
	return &runner{
		config:   cfg,
		log:      log,
		registry: registry,
		sampler:  s,
		out:      c.OutOrStdout(),
	}, nil
}

func oneFunc(c *cobra.Command, _ []string) error {
	r, err := newRunner(c)
	if err != nil {
		return err
	}
	defer r.stop()

	var index int
	switch r.config.Mode {
	case config.Weighted:
		_, index, err = sampler.SampleOne(r.sampler, r.config.Items, r.config.Weights)
	case config.Decay:
		index, err = r.sampler.SampleIndexWithDecay(len(r.config.Items), r.config.DecayFactor)
	default:
		_, index, err = sampler.UniformOne(r.sampler, r.config.Items)
	}
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(r.out, "%d\t%s\n", index, r.config.Items[index])
	return err
}

func manyFunc(c *cobra.Command, _ []string) error {
	r, err := newRunner(c)
	if err != nil {
		return err
	}
	defer r.stop()

	draws, err := r.draws()
	if err != nil {
		return err
	}
	for item, err := range draws.All() {
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintln(r.out, item); err != nil {
			return err
		}
	}
	return nil
}

func (r *runner) draws() (*sampler.Draws[string], error) {
	switch r.config.Mode {
	case config.Weighted:
		return sampler.SampleMany(r.sampler, r.config.Items, r.config.Weights, r.config.Count, r.config.AllowRepeating)
	case config.Decay:
		weights, err := sampler.DecayWeights(len(r.config.Items), r.config.DecayFactor)
		if err != nil {
			return nil, err
		}
		return sampler.SampleMany(r.sampler, r.config.Items, weights, r.config.Count, r.config.AllowRepeating)
	default:
		return sampler.UniformMany(r.sampler, r.config.Items, r.config.Count, r.config.AllowRepeating)
	}
}

func (r *runner) stop() {
	families, err := r.registry.Gather()
	if err != nil {
		r.log.Warn("failed to gather metrics", zap.Error(err))
	}
	for _, family := range families {
		for _, metric := range family.GetMetric() {
			fields := []zap.Field{zap.String("name", family.GetName())}
			for _, label := range metric.GetLabel() {
				fields = append(fields, zap.String(label.GetName(), label.GetValue()))
			}
			switch {
			case metric.GetCounter() != nil:
				fields = append(fields, zap.Float64("value", metric.GetCounter().GetValue()))
			case metric.GetHistogram() != nil:
				fields = append(fields, zap.Uint64("samples", metric.GetHistogram().GetSampleCount()))
			}
			r.log.Debug("metric", fields...)
		}
	}
	r.log.Stop()
}
