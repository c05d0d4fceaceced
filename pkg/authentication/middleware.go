// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"net/http"
	"strings"

	"github.com/tenantflow/tenantflow/internal/http/types"
	"github.com/tenantflow/tenantflow/internal/logging"
	"github.com/tenantflow/tenantflow/internal/monitoring"
	"github.com/tenantflow/tenantflow/internal/tracing"
)

const bearerPrefix = "Bearer "

type Middleware struct {
	verifier TokenVerifierInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

// Authenticate rejects requests without a valid bearer credential and stores
// the resolved principal in the request context
func (m *Middleware) Authenticate() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, span := m.tracer.Start(r.Context(), "authentication.Middleware.Authenticate")
			defer span.End()

			token, found := bearerToken(r.Header)
			if !found {
				_ = types.WriteError(w, http.StatusUnauthorized, types.CodeUnauthorized, "missing authorization header")
				return
			}

			principal, err := m.verifier.VerifyToken(ctx, token)
			if err != nil {
				m.logger.Debugf("token verification failed: %v", err)
				m.logger.Security().AuthnFailure("", "invalid token")
				_ = types.WriteError(w, http.StatusUnauthorized, types.CodeUnauthorized, "invalid token")
				return
			}

			next.ServeHTTP(w, r.WithContext(WithPrincipal(ctx, principal)))
		})
	}
}

func bearerToken(headers http.Header) (string, bool) {
	token, found := strings.CutPrefix(headers.Get("Authorization"), bearerPrefix)
	if !found || token == "" {
		return "", false
	}

	return token, true
}

func NewMiddleware(verifier TokenVerifierInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Middleware {
	return &Middleware{
		verifier: verifier,
		tracer:   tracer,
		monitor:  monitor,
		logger:   logger,
	}
}
