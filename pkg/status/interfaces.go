// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package status

import (
	"context"

	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

type PingerInterface interface {
	Ping(ctx context.Context) error
}

// HealthSetterInterface is satisfied by the grpc health server.
type HealthSetterInterface interface {
	SetServingStatus(service string, servingStatus healthpb.HealthCheckResponse_ServingStatus)
}

type ServiceInterface interface {
	Check(ctx context.Context) *Status
}
