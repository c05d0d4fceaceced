// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/tenantflow/tenantflow/internal/logging"
	"github.com/tenantflow/tenantflow/internal/monitoring"
	"github.com/tenantflow/tenantflow/internal/tracing"
)

func TestKratosVerifier_VerifyToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/sessions/whoami" {
			w.WriteHeader(http.StatusNotFound)
			return
		}

		w.Header().Set("Content-Type", "application/json")

		switch r.Header.Get("X-Session-Token") {
		case "good-token":
			_ = json.NewEncoder(w).Encode(map[string]interface{}{
				"id":     "session-1",
				"active": true,
				"identity": map[string]interface{}{
					"id":         "identity-1",
					"schema_id":  "default",
					"schema_url": "http://kratos/schemas/default",
					"traits":     map[string]interface{}{"email": "landlord@example.com", "role": "landlord"},
				},
			})
		case "inactive-token":
			_ = json.NewEncoder(w).Encode(map[string]interface{}{
				"id":     "session-2",
				"active": false,
			})
		default:
			w.WriteHeader(http.StatusUnauthorized)
			_ = json.NewEncoder(w).Encode(map[string]interface{}{
				"error": map[string]interface{}{"code": 401, "message": "No valid session credentials found"},
			})
		}
	}))
	defer srv.Close()

	logger := logging.NewNoopLogger()
	v := NewKratosVerifier(srv.URL, tracing.NewNoopTracer(), monitoring.NewNoopMonitor("test", logger), logger)

	tests := []struct {
		name        string
		token       string
		expectedID   string
		expectedRole string
		expectedErr  bool
	}{
		{name: "active session", token: "good-token", expectedID: "identity-1", expectedRole: "landlord"},
		{name: "inactive session", token: "inactive-token", expectedErr: true},
		{name: "unknown session", token: "bad-token", expectedErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := v.VerifyToken(context.Background(), tt.token)

			if tt.expectedErr {
				if err == nil {
					t.Errorf("expected error, got %+v", p)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if p.UserID != tt.expectedID || p.Source != ModeKratos {
				t.Errorf("expected %q from kratos, got %+v", tt.expectedID, p)
			}
			if p.Role == nil || string(*p.Role) != tt.expectedRole {
				t.Errorf("expected role %q, got %v", tt.expectedRole, p.Role)
			}
		})
	}
}
