// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package prometheus

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/tenantflow/tenantflow/internal/logging"
	"github.com/tenantflow/tenantflow/internal/monitoring"
)

var _ monitoring.MonitorInterface = (*Monitor)(nil)

type Monitor struct {
	service string

	responseTime           *prometheus.HistogramVec
	dependencyAvailability *prometheus.GaugeVec

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
	if m.dependencyAvailability == nil {
		return fmt.Errorf("metric not instantiated")
	}

	m.dependencyAvailability.With(tags).Set(value)

	return nil
}

func (m *Monitor) registerHistograms() {
	m.responseTime = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "http_response_time_seconds",
			Help: "http_response_time_seconds",
			ConstLabels: prometheus.Labels{
				"service": m.service,
			},
		},
		[]string{"route", "status"},
	)

	if err := prometheus.Register(m.responseTime); err != nil {
		m.logger.Debugf("response time histogram already registered: %v", err)
	}
}

func (m *Monitor) registerGauges() {
	m.dependencyAvailability = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "dependency_available",
			Help: "dependency_available",
			ConstLabels: prometheus.Labels{
				"service": m.service,
			},
		},
		[]string{"component"},
	)

	if err := prometheus.Register(m.dependencyAvailability); err != nil {
		m.logger.Debugf("dependency gauge already registered: %v", err)
	}
}

// NewMonitor creates a new prometheus monitor
func NewMonitor(service string, logger logging.LoggerInterface) *Monitor {
	m := new(Monitor)

	m.service = service
	m.logger = logger

	m.registerHistograms()
	m.registerGauges()

	return m
}
