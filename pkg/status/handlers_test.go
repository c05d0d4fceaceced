// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package status

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/mock/gomock"

	"github.com/tenantflow/tenantflow/internal/version"
)

//go:generate mockgen -build_flags=--mod=mod -package status -destination ./mock_status.go -source=./interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package status -destination ./mock_logger.go -source=../../internal/logging/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package status -destination ./mock_monitor.go -source=../../internal/monitoring/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package status -destination ./mock_tracing.go -source=../../internal/tracing/interfaces.go

func TestAPI_Alive(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockTracer := NewMockTracingInterface(ctrl)
	mockTracer.EXPECT().Start(gomock.Any(), "status.API.alive").
		Return(context.Background(), trace.SpanFromContext(context.Background()))

	mux := chi.NewMux()
	NewAPI(NewMockDatabaseInterface(ctrl), mockTracer, NewMockMonitorInterface(ctrl), NewMockLoggerInterface(ctrl)).RegisterEndpoints(mux)

	w := httptest.NewRecorder()
	mux.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v0/status", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}

	s := new(Status)
	if err := json.NewDecoder(w.Body).Decode(s); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if s.Status != okValue {
		t.Errorf("expected status %q, got %q", okValue, s.Status)
	}
}

func TestAPI_Version(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mux := chi.NewMux()
	NewAPI(NewMockDatabaseInterface(ctrl), NewMockTracingInterface(ctrl), NewMockMonitorInterface(ctrl), NewMockLoggerInterface(ctrl)).RegisterEndpoints(mux)

	w := httptest.NewRecorder()
	mux.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v0/version", nil))

	v := new(Version)
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if v.Version != version.Version {
		t.Errorf("expected version %q, got %q", version.Version, v.Version)
	}
}

func TestAPI_Ready(t *testing.T) {
	testCases := []struct {
		name         string
		pingErr      error
		expectedCode int
		expectedDB   string
		availability float64
	}{
		{
			name:         "database reachable",
			expectedCode: http.StatusOK,
			expectedDB:   okValue,
			availability: 1,
		},
		{
			name:         "database down",
			pingErr:      errors.New("connection refused"),
			expectedCode: http.StatusServiceUnavailable,
			expectedDB:   unavailableValue,
			availability: 0,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockDB := NewMockDatabaseInterface(ctrl)
			mockTracer := NewMockTracingInterface(ctrl)
			mockMonitor := NewMockMonitorInterface(ctrl)
			mockLogger := NewMockLoggerInterface(ctrl)

			mockTracer.EXPECT().Start(gomock.Any(), "status.API.ready").
				Return(context.Background(), trace.SpanFromContext(context.Background()))
			mockDB.EXPECT().Ping(gomock.Any()).Return(tc.pingErr)
			mockMonitor.EXPECT().SetDependencyAvailability(map[string]string{"component": "database"}, tc.availability).Return(nil)
			if tc.pingErr != nil {
				mockLogger.EXPECT().Errorf(gomock.Any(), gomock.Any())
			}

			mux := chi.NewMux()
			NewAPI(mockDB, mockTracer, mockMonitor, mockLogger).RegisterEndpoints(mux)

			w := httptest.NewRecorder()
			mux.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v0/ready", nil))

			if w.Code != tc.expectedCode {
				t.Fatalf("expected status %d, got %d", tc.expectedCode, w.Code)
			}

			r := new(Ready)
			if err := json.NewDecoder(w.Body).Decode(r); err != nil {
				t.Fatalf("failed to decode response: %v", err)
			}

			if r.Database != tc.expectedDB {
				t.Errorf("expected database %q, got %q", tc.expectedDB, r.Database)
			}
		})
	}
}
