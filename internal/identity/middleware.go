// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package identity

import (
	"net/http"

	"github.com/tenantflow/tenantflow/internal/http/types"
	"github.com/tenantflow/tenantflow/internal/logging"
	"github.com/tenantflow/tenantflow/internal/monitoring"
	"github.com/tenantflow/tenantflow/internal/tracing"
	"github.com/tenantflow/tenantflow/pkg/authentication"
)

const (
	// HeaderName is the header an upstream proxy (oathkeeper) uses to pass the
	// authenticated identity ID
	HeaderName = "X-Kratos-Authenticated-Identity-Id"
)

// Middleware trusts the identity header set by a proxy in front of the API,
// it is only meant for deployments where the API is not directly reachable
type Middleware struct {
	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewMiddleware(tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Middleware {
	return &Middleware{
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}

func (m *Middleware) HTTPMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, span := m.tracer.Start(r.Context(), "identity.Middleware.HTTPMiddleware")
		defer span.End()

		userID := r.Header.Get(HeaderName)
		if userID == "" {
			m.logger.Security().AuthnFailure("", "missing identity header")

			_ = types.WriteError(w, http.StatusUnauthorized, types.CodeUnauthorized, "missing identity header")
			return
		}

		principal := &authentication.Principal{UserID: userID, Source: authentication.ModeHeader}
		next.ServeHTTP(w, r.WithContext(authentication.WithPrincipal(ctx, principal)))
	})
}
