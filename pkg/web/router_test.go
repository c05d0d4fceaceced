// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package web

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/mock/gomock"

	"github.com/tenantflow/tenantflow/internal/http/types"
	itypes "github.com/tenantflow/tenantflow/internal/types"
	"github.com/tenantflow/tenantflow/pkg/authentication"
	"github.com/tenantflow/tenantflow/pkg/property"
	"github.com/tenantflow/tenantflow/pkg/webhooks"
)

//go:generate mockgen -build_flags=--mod=mod -package web -destination ./mock_db.go -source=../../internal/db/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package web -destination ./mock_logger.go -source=../../internal/logging/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package web -destination ./mock_monitor.go -source=../../internal/monitoring/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package web -destination ./mock_tracing.go -source=../../internal/tracing/interfaces.go

const testUserHeader = "X-Test-User"

// headerAuth stands in for the configured authentication middleware
func headerAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(testUserHeader)
		if id == "" {
			_ = types.WriteError(w, http.StatusUnauthorized, types.CodeUnauthorized, "unauthenticated")
			return
		}
		next.ServeHTTP(w, r.WithContext(authentication.WithUserID(r.Context(), id)))
	})
}

type routerMocks struct {
	property *property.MockServiceInterface
	webhooks *webhooks.MockServiceInterface
	db       *MockDBClientInterface
}

func newTestRouter(t *testing.T, ctrl *gomock.Controller, cfg Config) (http.Handler, *routerMocks) {
	t.Helper()

	mockTracer := NewMockTracingInterface(ctrl)
	mockMonitor := NewMockMonitorInterface(ctrl)
	mockLogger := NewMockLoggerInterface(ctrl)

	mockTracer.EXPECT().Start(gomock.Any(), gomock.Any()).
		Return(context.Background(), trace.SpanFromContext(context.Background())).AnyTimes()
	mockMonitor.EXPECT().SetResponseTimeMetric(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockMonitor.EXPECT().SetDependencyAvailability(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockLogger.EXPECT().Debugf(gomock.Any(), gomock.Any()).AnyTimes()
	mockLogger.EXPECT().Warnf(gomock.Any(), gomock.Any()).AnyTimes()
	mockLogger.EXPECT().Errorf(gomock.Any(), gomock.Any()).AnyTimes()

	m := &routerMocks{
		property: property.NewMockServiceInterface(ctrl),
		webhooks: webhooks.NewMockServiceInterface(ctrl),
		db:       NewMockDBClientInterface(ctrl),
	}

	m.db.EXPECT().WithTx(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		},
	).AnyTimes()

	return NewRouter(cfg, headerAuth, m.property, m.webhooks, m.db, mockTracer, mockMonitor, mockLogger), m
}

func TestNewRouter(t *testing.T) {
	role := itypes.RoleLandlord

	testCases := []struct {
		name           string
		method         string
		path           string
		body           string
		user           string
		setupMocks     func(*routerMocks)
		expectedStatus int
	}{
		{
			name:   "status is public",
			method: http.MethodGet,
			path:   "/api/v0/status",
			setupMocks: func(m *routerMocks) {
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:   "ready pings the database",
			method: http.MethodGet,
			path:   "/api/v0/ready",
			setupMocks: func(m *routerMocks) {
				m.db.EXPECT().Ping(gomock.Any()).Return(nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:   "metrics are public",
			method: http.MethodGet,
			path:   "/api/v0/metrics",
			setupMocks: func(m *routerMocks) {
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:   "profiles require authentication",
			method: http.MethodGet,
			path:   "/api/v0/profiles",
			setupMocks: func(m *routerMocks) {
			},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:   "authenticated profile lookup",
			method: http.MethodGet,
			path:   "/api/v0/profiles/landlord-1",
			user:   "landlord-1",
			setupMocks: func(m *routerMocks) {
				m.property.EXPECT().GetProfile(gomock.Any(), "landlord-1", "landlord-1").
					Return(&itypes.Profile{ID: "landlord-1", Role: &role}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:   "registration webhook runs without authentication",
			method: http.MethodPost,
			path:   "/api/v0/webhooks/registration",
			body:   `{"id":"landlord-1","traits":{"email":"l@example.com"}}`,
			setupMocks: func(m *routerMocks) {
				m.webhooks.EXPECT().HandleRegistration(gomock.Any(), gomock.Any()).Return(nil)
			},
			expectedStatus: http.StatusOK,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			router, m := newTestRouter(t, ctrl, Config{CORSAllowedOrigins: []string{"*"}, RateLimitRPS: 100, RateLimitBurst: 100})
			tc.setupMocks(m)

			req := httptest.NewRequest(tc.method, tc.path, strings.NewReader(tc.body))
			if tc.user != "" {
				req.Header.Set(testUserHeader, tc.user)
			}

			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			if w.Code != tc.expectedStatus {
				t.Errorf("expected status %d, got %d: %s", tc.expectedStatus, w.Code, w.Body.String())
			}
		})
	}
}

func TestNewRouter_RateLimited(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	router, m := newTestRouter(t, ctrl, Config{CORSAllowedOrigins: []string{"*"}, RateLimitRPS: 0.001, RateLimitBurst: 1})
	m.property.EXPECT().ListProfiles(gomock.Any(), "tenant-1").Return([]*itypes.Profile{}, nil).Times(1)

	send := func() *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/api/v0/profiles", nil)
		req.Header.Set(testUserHeader, "tenant-1")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w
	}

	if w := send(); w.Code != http.StatusOK {
		t.Fatalf("expected first request to pass, got %d", w.Code)
	}

	w := send()
	if w.Code != http.StatusTooManyRequests {
		t.Fatalf("expected status 429, got %d", w.Code)
	}

	if w.Header().Get("Retry-After") == "" {
		t.Error("expected a Retry-After header")
	}

	resp := new(types.ErrorResponse)
	if err := json.NewDecoder(w.Body).Decode(resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if resp.Code != CodeRateLimited {
		t.Errorf("expected code %q, got %q", CodeRateLimited, resp.Code)
	}
}

func TestCORSPreflight(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	router, _ := newTestRouter(t, ctrl, Config{CORSAllowedOrigins: []string{"https://app.example.com"}, RateLimitRPS: 1, RateLimitBurst: 1})

	req := httptest.NewRequest(http.MethodOptions, "/api/v0/houses", nil)
	req.Header.Set("Origin", "https://app.example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "https://app.example.com" {
		t.Errorf("expected allowed origin header, got %q", got)
	}
}
