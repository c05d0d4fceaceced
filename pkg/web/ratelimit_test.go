// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package web

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/tenantflow/tenantflow/internal/logging"
	"github.com/tenantflow/tenantflow/pkg/authentication"
)

func TestRateLimiter_PerUserBuckets(t *testing.T) {
	rl := NewRateLimiter(0.001, 1, logging.NewNoopLogger())

	handler := rl.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	send := func(user string) int {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		if user != "" {
			req = req.WithContext(authentication.WithUserID(req.Context(), user))
		}
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)
		return w.Code
	}

	if code := send(""); code != http.StatusUnauthorized {
		t.Errorf("expected 401 without a user, got %d", code)
	}

	if code := send("a"); code != http.StatusNoContent {
		t.Errorf("expected first request of a to pass, got %d", code)
	}

	if code := send("a"); code != http.StatusTooManyRequests {
		t.Errorf("expected second request of a to be limited, got %d", code)
	}

	if code := send("b"); code != http.StatusNoContent {
		t.Errorf("expected b to have its own bucket, got %d", code)
	}

	if rl.Len() != 2 {
		t.Errorf("expected 2 buckets, got %d", rl.Len())
	}
}

func TestRateLimiter_PrunesIdleBuckets(t *testing.T) {
	rl := NewRateLimiter(1, 1, logging.NewNoopLogger())

	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	rl.now = func() time.Time { return now }

	rl.limiter("a")
	rl.limiter("b")

	now = now.Add(limiterTTL + time.Second)
	rl.limiter("c")

	if rl.Len() != 1 {
		t.Errorf("expected idle buckets to be pruned, got %d buckets", rl.Len())
	}
}

func TestRateLimiter_Disabled(t *testing.T) {
	rl := NewRateLimiter(0, 0, logging.NewNoopLogger())

	for i := 0; i < 50; i++ {
		if !rl.limiter("a").Allow() {
			t.Fatalf("request %d was limited with limiting disabled", i)
		}
	}
}
