// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package identity

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/tenantflow/tenantflow/internal/logging"
	"github.com/tenantflow/tenantflow/internal/monitoring"
	"github.com/tenantflow/tenantflow/internal/tracing"
	"github.com/tenantflow/tenantflow/pkg/authentication"
)

func TestMiddleware_HTTPMiddleware(t *testing.T) {
	tests := []struct {
		name           string
		header         string
		expectedStatus int
		expectedUserID string
	}{
		{
			name:           "identity header present",
			header:         "identity-123",
			expectedStatus: http.StatusOK,
			expectedUserID: "identity-123",
		},
		{
			name:           "identity header missing",
			expectedStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger := logging.NewNoopLogger()
			mdw := NewMiddleware(tracing.NewNoopTracer(), monitoring.NewNoopMonitor("test", logger), logger)

			var seen string
			handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				seen, _ = authentication.GetUserID(r.Context())
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/api/v0/houses", nil)
			if tt.header != "" {
				req.Header.Set(HeaderName, tt.header)
			}
			rr := httptest.NewRecorder()

			mdw.HTTPMiddleware(handler).ServeHTTP(rr, req)

			if rr.Code != tt.expectedStatus {
				t.Errorf("expected status %d, got %d", tt.expectedStatus, rr.Code)
			}
			if seen != tt.expectedUserID {
				t.Errorf("expected user %q, got %q", tt.expectedUserID, seen)
			}
		})
	}
}
