// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package status

import (
	"context"
	"time"

	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/canonical/webhook-service/internal/logging"
	"github.com/canonical/webhook-service/internal/monitoring"
	"github.com/canonical/webhook-service/internal/tracing"
	"github.com/canonical/webhook-service/internal/version"
)

const pingTimeout = 2 * time.Second

type Status struct {
	Version  string `json:"version"`
	Database string `json:"database"`
	Healthy  bool   `json:"healthy"`
}

var _ ServiceInterface = (*Service)(nil)

// Service reports dependency availability to the API, the metrics gauge and the grpc health server.
type Service struct {
	db     PingerInterface
	health HealthSetterInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (s *Service) Check(ctx context.Context) *Status {
	ctx, span := s.tracer.Start(ctx, "status.Service.Check")
	defer span.End()

	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	st := &Status{Version: version.Version, Database: "ok", Healthy: true}
	available := 1.0
	serving := healthpb.HealthCheckResponse_SERVING

	if err := s.db.Ping(ctx); err != nil {
		s.logger.Warnf("database ping failed: %v", err)
		st.Database = "unavailable"
		st.Healthy = false
		available = 0
		serving = healthpb.HealthCheckResponse_NOT_SERVING
	}

	if err := s.monitor.SetDependencyAvailability(map[string]string{"component": "database"}, available); err != nil {
		s.logger.Debugf("error recording dependency availability: %v", err)
	}

	if s.health != nil {
		s.health.SetServingStatus("", serving)
	}

	return st
}

// Watch re-checks on every tick until ctx is done.
func (s *Service) Watch(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	s.Check(ctx)

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.Check(ctx)
		}
	}
}

func NewService(db PingerInterface, health HealthSetterInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Service {
	s := new(Service)

	s.db = db
	s.health = health

	s.tracer = tracer
	s.monitor = monitor
	s.logger = logger

	return s
}
