// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/coreos/go-oidc/v3/oidc"

	"github.com/tenantflow/tenantflow/internal/logging"
	"github.com/tenantflow/tenantflow/internal/monitoring"
	"github.com/tenantflow/tenantflow/internal/tracing"
	domain "github.com/tenantflow/tenantflow/internal/types"
)

// Policy decides which verified tokens may call the API. A token passes when
// any of the configured criteria match.
type Policy struct {
	AllowedSubjects []string
	RequiredScope   string
	// AcceptRoleClaim admits end-user tokens carrying the profile role added
	// by the token hook
	AcceptRoleClaim bool
}

func (p Policy) empty() bool {
	return len(p.AllowedSubjects) == 0 && p.RequiredScope == "" && !p.AcceptRoleClaim
}

type jwtClaims struct {
	Subject string   `json:"sub"`
	Scope   string   `json:"scope"`
	Scopes  []string `json:"scp"`
	Role    string   `json:"role"`
}

func (c *jwtClaims) hasScope(scope string) bool {
	return slices.Contains(strings.Fields(c.Scope), scope) || slices.Contains(c.Scopes, scope)
}

type JWTVerifier struct {
	verifier *oidc.IDTokenVerifier
	policy   Policy

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (v *JWTVerifier) VerifyToken(ctx context.Context, rawToken string) (*Principal, error) {
	ctx, span := v.tracer.Start(ctx, "authentication.JWTVerifier.VerifyToken")
	defer span.End()

	token, err := v.verifier.Verify(ctx, rawToken)
	if err != nil {
		return nil, err
	}

	claims := new(jwtClaims)
	if err := token.Claims(claims); err != nil {
		v.logger.Debugf("failed to extract claims: %v", err)
		return nil, err
	}

	principal := &Principal{UserID: claims.Subject, Source: ModeJWT}
	if role := domain.Role(claims.Role); role.Valid() {
		principal.Role = &role
	}

	switch {
	case v.policy.empty():
		v.logger.Security().AuthzFailure(claims.Subject, "jwt_api_access")
		return nil, fmt.Errorf("unauthorized: no access policy configured")
	case slices.Contains(v.policy.AllowedSubjects, claims.Subject):
		return principal, nil
	case v.policy.RequiredScope != "" && claims.hasScope(v.policy.RequiredScope):
		return principal, nil
	case v.policy.AcceptRoleClaim && principal.Role != nil:
		return principal, nil
	}

	v.logger.Security().AuthzFailure(claims.Subject, "jwt_api_access")
	return nil, fmt.Errorf("unauthorized: token does not satisfy the access policy")
}

func NewJWTVerifier(
	verifier *oidc.IDTokenVerifier,
	policy Policy,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *JWTVerifier {
	return &JWTVerifier{
		verifier: verifier,
		policy:   policy,
		tracer:   tracer,
		monitor:  monitor,
		logger:   logger,
	}
}
