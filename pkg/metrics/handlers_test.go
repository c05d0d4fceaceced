// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/tenantflow/tenantflow/internal/logging"
)

func TestMetricsEndpoint(t *testing.T) {
	mux := chi.NewMux()
	NewAPI(logging.NewNoopLogger()).RegisterEndpoints(mux)

	req := httptest.NewRequest(http.MethodGet, "/api/v0/metrics", nil)
	w := httptest.NewRecorder()

	mux.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}

	if !strings.Contains(w.Body.String(), "go_goroutines") {
		t.Errorf("expected the default go collector in the output")
	}
}
