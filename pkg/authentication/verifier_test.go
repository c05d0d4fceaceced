// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"
	"crypto"
	"crypto/rand"
	"crypto/rsa"
	"testing"
	"time"

	"github.com/coreos/go-oidc/v3/oidc"
	"github.com/golang-jwt/jwt/v5"

	"github.com/tenantflow/tenantflow/internal/logging"
	"github.com/tenantflow/tenantflow/internal/monitoring"
	"github.com/tenantflow/tenantflow/internal/tracing"
)

const testIssuer = "https://hydra.example.com"

type testClaims struct {
	jwt.RegisteredClaims
	Scope string `json:"scope,omitempty"`
	Role  string `json:"role,omitempty"`
}

func signToken(t *testing.T, key *rsa.PrivateKey, claims testClaims) string {
	t.Helper()

	token := jwt.NewWithClaims(jwt.SigningMethodRS256, claims)
	raw, err := token.SignedString(key)
	if err != nil {
		t.Fatalf("failed to sign token: %v", err)
	}
	return raw
}

func newTestJWTVerifier(t *testing.T, key *rsa.PrivateKey, policy Policy) *JWTVerifier {
	t.Helper()

	keySet := &oidc.StaticKeySet{PublicKeys: []crypto.PublicKey{&key.PublicKey}}
	idTokenVerifier := oidc.NewVerifier(testIssuer, keySet, &oidc.Config{SkipClientIDCheck: true})

	logger := logging.NewNoopLogger()
	return NewJWTVerifier(idTokenVerifier, policy, tracing.NewNoopTracer(), monitoring.NewNoopMonitor("test", logger), logger)
}

func TestJWTVerifier_VerifyToken(t *testing.T) {
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		t.Fatalf("failed to generate key: %v", err)
	}
	otherKey, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		t.Fatalf("failed to generate key: %v", err)
	}

	valid := func(subject, scope, role string) testClaims {
		return testClaims{
			RegisteredClaims: jwt.RegisteredClaims{
				Issuer:    testIssuer,
				Subject:   subject,
				IssuedAt:  jwt.NewNumericDate(time.Now()),
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			},
			Scope: scope,
			Role:  role,
		}
	}

	tests := []struct {
		name            string
		signingKey      *rsa.PrivateKey
		claims          testClaims
		policy          Policy
		expectedSubject string
		expectedRole    string
		expectedErr     bool
	}{
		{
			name:            "allowed subject",
			signingKey:      key,
			claims:          valid("service-a", "", ""),
			policy:          Policy{AllowedSubjects: []string{"service-a"}},
			expectedSubject: "service-a",
		},
		{
			name:            "required scope present",
			signingKey:      key,
			claims:          valid("user-1", "openid tenantflow", ""),
			policy:          Policy{RequiredScope: "tenantflow"},
			expectedSubject: "user-1",
		},
		{
			name:          "required scope missing",
			signingKey:    key,
			claims:        valid("user-1", "openid", ""),
			policy:        Policy{RequiredScope: "tenantflow"},
			expectedErr:   true,
		},
		{
			name:            "role claim from the token hook",
			signingKey:      key,
			claims:          valid("user-2", "openid", "tenant"),
			policy:          Policy{RequiredScope: "tenantflow", AcceptRoleClaim: true},
			expectedSubject: "user-2",
			expectedRole:    "tenant",
		},
		{
			name:        "unknown role claim",
			signingKey:  key,
			claims:      valid("user-2", "openid", "admin"),
			policy:      Policy{AcceptRoleClaim: true},
			expectedErr: true,
		},
		{
			name:        "no access policy configured",
			signingKey:  key,
			claims:      valid("user-1", "tenantflow", ""),
			expectedErr: true,
		},
		{
			name:            "wrong signing key",
			signingKey:      otherKey,
			claims:          valid("service-a", "", ""),
			policy:          Policy{AllowedSubjects: []string{"service-a"}},
			expectedErr:     true,
		},
		{
			name:       "expired token",
			signingKey: key,
			claims: testClaims{RegisteredClaims: jwt.RegisteredClaims{
				Issuer:    testIssuer,
				Subject:   "service-a",
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
			}},
			policy:          Policy{AllowedSubjects: []string{"service-a"}},
			expectedErr:     true,
		},
		{
			name:       "wrong issuer",
			signingKey: key,
			claims: testClaims{RegisteredClaims: jwt.RegisteredClaims{
				Issuer:    "https://elsewhere.example.com",
				Subject:   "service-a",
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			}},
			policy:          Policy{AllowedSubjects: []string{"service-a"}},
			expectedErr:     true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := newTestJWTVerifier(t, key, tt.policy)

			p, err := v.VerifyToken(context.Background(), signToken(t, tt.signingKey, tt.claims))

			if tt.expectedErr {
				if err == nil {
					t.Errorf("expected error, got principal %+v", p)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if p.UserID != tt.expectedSubject {
				t.Errorf("expected subject %q, got %q", tt.expectedSubject, p.UserID)
			}

			role := ""
			if p.Role != nil {
				role = string(*p.Role)
			}
			if role != tt.expectedRole {
				t.Errorf("expected role %q, got %q", tt.expectedRole, role)
			}
		})
	}
}

func TestNewVerifier(t *testing.T) {
	logger := logging.NewNoopLogger()
	tracer := tracing.NewNoopTracer()
	monitor := monitoring.NewNoopMonitor("test", logger)

	tests := []struct {
		name        string
		cfg         Config
		expectedErr bool
	}{
		{name: "kratos", cfg: Config{Mode: ModeKratos, KratosPublicURL: "http://kratos:4433"}},
		{name: "kratos without url", cfg: Config{Mode: ModeKratos}, expectedErr: true},
		{name: "jwt without issuer", cfg: Config{Mode: ModeJWT}, expectedErr: true},
		{name: "jwt with jwks url", cfg: Config{Mode: ModeJWT, Issuer: testIssuer, JwksURL: testIssuer + "/.well-known/jwks.json"}},
		{name: "noop", cfg: Config{Mode: ModeNoop}},
		{name: "header", cfg: Config{Mode: ModeHeader}, expectedErr: true},
		{name: "unknown", cfg: Config{Mode: "basic"}, expectedErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := NewVerifier(context.Background(), tt.cfg, tracer, monitor, logger)

			if tt.expectedErr {
				if err == nil {
					t.Error("expected error but got none")
				}
				return
			}
			if err != nil || v == nil {
				t.Errorf("expected a verifier, got %v (%v)", v, err)
			}
		})
	}
}

func TestNoopVerifier(t *testing.T) {
	p, err := NewNoopVerifier().VerifyToken(context.Background(), "user-42")
	if err != nil || p.UserID != "user-42" {
		t.Errorf("expected the token to be returned as the user id, got %+v (%v)", p, err)
	}

	if _, err := NewNoopVerifier().VerifyToken(context.Background(), ""); err == nil {
		t.Error("expected an empty token to be rejected")
	}
}
