// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package tracing

import (
	"github.com/tenantflow/tenantflow/internal/logging"
)

// Config selects the span exporter, gRPC wins over HTTP and stdout is used
// when neither endpoint is set
type Config struct {
	OtelHTTPEndpoint string
	OtelGRPCEndpoint string
	Logger           logging.LoggerInterface

	Enabled bool
}

func NewConfig(enabled bool, otelGRPCEndpoint, otelHTTPEndpoint string, logger logging.LoggerInterface) *Config {
	c := new(Config)

	c.OtelGRPCEndpoint = otelGRPCEndpoint
	c.OtelHTTPEndpoint = otelHTTPEndpoint
	c.Logger = logger
	c.Enabled = enabled

	return c
}

// NewNoopConfig is used by the client commands, which never export spans
func NewNoopConfig() *Config {
	c := new(Config)
	c.Enabled = false
	c.Logger = logging.NewNoopLogger()
	return c
}
