// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"

	domain "github.com/tenantflow/tenantflow/internal/types"
)

// Principal is the caller a request was authenticated as
type Principal struct {
	UserID string
	// Role is only known when the credential carries it, handlers still read
	// the profile for authorization decisions
	Role   *domain.Role
	Source string
}

type principalKey struct{}

func WithPrincipal(ctx context.Context, p *Principal) context.Context {
	return context.WithValue(ctx, principalKey{}, p)
}

func PrincipalFromContext(ctx context.Context) (*Principal, bool) {
	p, ok := ctx.Value(principalKey{}).(*Principal)
	return p, ok && p != nil
}

// WithUserID stores a principal known only by its ID
func WithUserID(ctx context.Context, userID string) context.Context {
	return WithPrincipal(ctx, &Principal{UserID: userID})
}

func GetUserID(ctx context.Context) (string, bool) {
	p, ok := PrincipalFromContext(ctx)
	if !ok || p.UserID == "" {
		return "", false
	}

	return p.UserID, true
}
