// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package openfga

import (
	"context"

	fga "github.com/openfga/go-sdk"

	"github.com/canonical/webhook-service/internal/logging"
	"github.com/canonical/webhook-service/internal/monitoring"
	"github.com/canonical/webhook-service/internal/tracing"
)

// NoopClient denies every relation check, leaving ownership as the only grant.
type NoopClient struct {
	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (c *NoopClient) Check(ctx context.Context, user, relation, object string, contextualTuples ...Tuple) (bool, error) {
	return false, nil
}

func (c *NoopClient) ReadModel(ctx context.Context) (*fga.AuthorizationModel, error) {
	return nil, nil
}

func (c *NoopClient) CompareModel(ctx context.Context, model fga.AuthorizationModel) (bool, error) {
	return true, nil
}

func (c *NoopClient) WriteTuple(ctx context.Context, user, relation, object string) error {
	return nil
}

func NewNoopClient(tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *NoopClient {
	c := new(NoopClient)

	c.tracer = tracer
	c.monitor = monitor
	c.logger = logger

	return c
}
