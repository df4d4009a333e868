// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package tracing

import (
	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	"github.com/canonical/webhook-service/internal/logging"
)

// Config selects the span exporter. An empty endpoint pair means stdout.
type Config struct {
	Enabled bool

	GRPCEndpoint string
	HTTPEndpoint string

	// SampleRatio applies to root spans, children follow their parent.
	SampleRatio float64

	Logger logging.LoggerInterface
}

func (c *Config) sampler() sdktrace.Sampler {
	switch {
	case c.SampleRatio <= 0:
		return sdktrace.ParentBased(sdktrace.NeverSample())
	case c.SampleRatio >= 1:
		return sdktrace.ParentBased(sdktrace.AlwaysSample())
	default:
		return sdktrace.ParentBased(sdktrace.TraceIDRatioBased(c.SampleRatio))
	}
}

func NewConfig(enabled bool, grpcEndpoint, httpEndpoint string, ratio float64, logger logging.LoggerInterface) *Config {
	c := new(Config)

	c.Enabled = enabled
	c.GRPCEndpoint = grpcEndpoint
	c.HTTPEndpoint = httpEndpoint
	c.SampleRatio = ratio
	c.Logger = logger

	return c
}

func NewNoopConfig() *Config {
	return new(Config)
}
