// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package prometheus

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/canonical/webhook-service/internal/logging"
	"github.com/canonical/webhook-service/internal/monitoring"
)

var _ monitoring.MonitorInterface = (*Monitor)(nil)

type Monitor struct {
	service string

	responseTime *prometheus.HistogramVec
	dependencies *prometheus.GaugeVec
	renewals     *prometheus.CounterVec
	teardowns    *prometheus.CounterVec

	logger logging.LoggerInterface
}

func (m *Monitor) GetService() string {
	return m.service
}

func (m *Monitor) SetResponseTimeMetric(tags map[string]string, value float64) error {
	if m.responseTime == nil {
		return fmt.Errorf("metric not instantiated")
	}

	m.responseTime.With(tags).Observe(value)

	return nil
}

func (m *Monitor) SetDependencyAvailability(tags map[string]string, value float64) error {
	if m.dependencies == nil {
		return fmt.Errorf("metric not instantiated")
	}

	m.dependencies.With(tags).Set(value)

	return nil
}

func (m *Monitor) IncRenewalOutcome(tags map[string]string) error {
	if m.renewals == nil {
		return fmt.Errorf("metric not instantiated")
	}

	m.renewals.With(tags).Inc()

	return nil
}

func (m *Monitor) IncTeardownOutcome(tags map[string]string) error {
	if m.teardowns == nil {
		return fmt.Errorf("metric not instantiated")
	}

	m.teardowns.With(tags).Inc()

	return nil
}

func (m *Monitor) registerHistograms() {
	m.responseTime = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:        "http_response_time_seconds",
			Help:        "http_response_time_seconds",
			ConstLabels: prometheus.Labels{"service": m.service},
		},
		[]string{"route", "status"},
	)

	m.register(m.responseTime)
}

func (m *Monitor) registerGauges() {
	m.dependencies = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name:        "dependency_available",
			Help:        "dependency_available",
			ConstLabels: prometheus.Labels{"service": m.service},
		},
		[]string{"component"},
	)

	m.register(m.dependencies)
}

func (m *Monitor) registerCounters() {
	m.renewals = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name:        "webhook_renewals_total",
			Help:        "outcome of webhook subscription renewals",
			ConstLabels: prometheus.Labels{"service": m.service},
		},
		[]string{"provider", "outcome"},
	)

	m.teardowns = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name:        "webhook_teardowns_total",
			Help:        "outcome of remote webhook teardowns",
			ConstLabels: prometheus.Labels{"service": m.service},
		},
		[]string{"provider", "outcome"},
	)

	m.register(m.renewals)
	m.register(m.teardowns)
}

func (m *Monitor) register(c prometheus.Collector) {
	if err := prometheus.Register(c); err != nil {
		m.logger.Errorf("failed to register metric: %v", err)
	}
}

func NewMonitor(service string, logger logging.LoggerInterface) *Monitor {
	m := new(Monitor)

	m.service = service
	m.logger = logger

	m.registerHistograms()
	m.registerGauges()
	m.registerCounters()

	return m
}
