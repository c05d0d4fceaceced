// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package web

import (
	"math"
	"net/http"
	"strconv"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/tenantflow/tenantflow/internal/http/types"
	"github.com/tenantflow/tenantflow/internal/logging"
	"github.com/tenantflow/tenantflow/pkg/authentication"
)

const (
	CodeRateLimited = "rate-limited"

	limiterTTL = 10 * time.Minute
)

type userLimiter struct {
	limiter    *rate.Limiter
	lastAccess time.Time
}

// RateLimiter keeps one token bucket per authenticated user, it has to run
// after the authentication middleware
type RateLimiter struct {
	limit rate.Limit
	burst int

	mu       sync.RWMutex
	limiters map[string]*userLimiter

	now    func() time.Time
	logger logging.LoggerInterface
}

func (rl *RateLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, ok := authentication.GetUserID(r.Context())
		if !ok {
			_ = types.WriteError(w, http.StatusUnauthorized, types.CodeUnauthorized, "unauthenticated")
			return
		}

		if !rl.limiter(userID).Allow() {
			rl.logger.Warnf("rate limit exceeded for user %s", userID)

			retryAfter := 1
			if rl.limit > 0 {
				retryAfter = max(1, int(math.Ceil(1.0/float64(rl.limit))))
			}

			w.Header().Set("Retry-After", strconv.Itoa(retryAfter))
			_ = types.WriteError(w, http.StatusTooManyRequests, CodeRateLimited, "too many requests")
			return
		}

		next.ServeHTTP(w, r)
	})
}

func (rl *RateLimiter) limiter(userID string) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	if ul, ok := rl.limiters[userID]; ok {
		ul.lastAccess = rl.now()
		return ul.limiter
	}

	rl.prune()

	ul := &userLimiter{limiter: rate.NewLimiter(rl.limit, rl.burst), lastAccess: rl.now()}
	rl.limiters[userID] = ul

	return ul.limiter
}

// prune drops idle buckets, callers hold the write lock
func (rl *RateLimiter) prune() {
	now := rl.now()
	for id, ul := range rl.limiters {
		if now.Sub(ul.lastAccess) > limiterTTL {
			delete(rl.limiters, id)
		}
	}
}

func (rl *RateLimiter) Len() int {
	rl.mu.RLock()
	defer rl.mu.RUnlock()

	return len(rl.limiters)
}

// NewRateLimiter returns a limiter allowing rps requests per second per user
// with the given burst, a non positive rps disables limiting
func NewRateLimiter(rps float64, burst int, logger logging.LoggerInterface) *RateLimiter {
	limit := rate.Limit(rps)
	if rps <= 0 {
		limit = rate.Inf
	}

	if burst < 1 {
		burst = 1
	}

	return &RateLimiter{
		limit:    limit,
		burst:    burst,
		limiters: make(map[string]*userLimiter),
		now:      time.Now,
		logger:   logger,
	}
}
