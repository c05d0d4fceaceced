// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"
	"fmt"
	"net/http"

	ory "github.com/ory/client-go"

	"github.com/tenantflow/tenantflow/internal/logging"
	"github.com/tenantflow/tenantflow/internal/monitoring"
	"github.com/tenantflow/tenantflow/internal/tracing"
	domain "github.com/tenantflow/tenantflow/internal/types"
)

// KratosVerifier resolves Kratos session tokens, as issued by the native
// login and registration flows, to the identity they belong to
type KratosVerifier struct {
	client *ory.APIClient

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (v *KratosVerifier) VerifyToken(ctx context.Context, rawToken string) (*Principal, error) {
	ctx, span := v.tracer.Start(ctx, "authentication.KratosVerifier.VerifyToken")
	defer span.End()

	session, r, err := v.client.FrontendAPI.ToSession(ctx).XSessionToken(rawToken).Execute()
	if err != nil {
		if r != nil && r.StatusCode == http.StatusUnauthorized {
			v.logger.Security().AuthnFailure("", "invalid or expired session")
			return nil, fmt.Errorf("unauthorized: invalid session")
		}
		return nil, fmt.Errorf("failed to resolve session: %w", err)
	}

	if !session.GetActive() {
		v.logger.Security().AuthnFailure("", "inactive session")
		return nil, fmt.Errorf("unauthorized: session is not active")
	}

	identity := session.GetIdentity()
	if identity.Id == "" {
		return nil, fmt.Errorf("unauthorized: session has no identity")
	}

	principal := &Principal{UserID: identity.Id, Source: ModeKratos}
	if traits, ok := identity.Traits.(map[string]interface{}); ok {
		if r, ok := traits["role"].(string); ok {
			if role := domain.Role(r); role.Valid() {
				principal.Role = &role
			}
		}
	}

	return principal, nil
}

func NewKratosVerifier(kratosPublicURL string, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *KratosVerifier {
	conf := ory.NewConfiguration()
	conf.Servers = ory.ServerConfigurations{{URL: kratosPublicURL}}
	conf.HTTPClient = &otelHTTPClient

	return &KratosVerifier{
		client:  ory.NewAPIClient(conf),
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}
