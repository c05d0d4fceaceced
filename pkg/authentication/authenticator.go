// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"
	"fmt"

	"github.com/tenantflow/tenantflow/internal/logging"
	"github.com/tenantflow/tenantflow/internal/monitoring"
	"github.com/tenantflow/tenantflow/internal/tracing"
)

const (
	ModeKratos = "kratos"
	ModeJWT    = "jwt"
	ModeHeader = "header"
	ModeNoop   = "noop"
)

// Config selects and parametrizes the token verifier
type Config struct {
	Mode string

	KratosPublicURL string

	Issuer  string
	JwksURL string
	Policy  Policy
}

// NewVerifier builds the token verifier for the configured mode, header mode
// has no verifier and is served by the identity middleware instead
func NewVerifier(
	ctx context.Context,
	cfg Config,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) (TokenVerifierInterface, error) {
	switch cfg.Mode {
	case ModeKratos:
		if cfg.KratosPublicURL == "" {
			return nil, fmt.Errorf("kratos public url is required for kratos authentication")
		}
		logger.Info("Kratos session authentication is enabled")
		return NewKratosVerifier(cfg.KratosPublicURL, tracer, monitor, logger), nil
	case ModeJWT:
		if cfg.Issuer == "" {
			return nil, fmt.Errorf("issuer is required for JWT authentication")
		}

		verifier, err := newIDTokenVerifier(ctx, cfg.Issuer, cfg.JwksURL)
		if err != nil {
			return nil, err
		}

		logger.Infof("JWT authentication is enabled for issuer %s", cfg.Issuer)
		return NewJWTVerifier(verifier, cfg.Policy, tracer, monitor, logger), nil
	case ModeNoop:
		logger.Warn("authentication is disabled, bearer tokens are taken as user IDs")
		return NewNoopVerifier(), nil
	case ModeHeader:
		return nil, fmt.Errorf("header authentication does not use a token verifier")
	}

	return nil, fmt.Errorf("unknown authentication mode %q", cfg.Mode)
}
