// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package config

import (
	"time"
)

// EnvSpec is the basic environment configuration setup needed for the server to start
type EnvSpec struct {
	OtelGRPCEndpoint string `envconfig:"otel_grpc_endpoint"`
	OtelHTTPEndpoint string `envconfig:"otel_http_endpoint"`
	TracingEnabled   bool   `envconfig:"tracing_enabled" default:"true"`

	KratosPublicURL string `envconfig:"kratos_public_url"`
	KratosAdminURL  string `envconfig:"kratos_admin_url" required:"true"`

	// TenantDefaultPassword is the password given to identities created by a landlord
	TenantDefaultPassword string `envconfig:"tenant_default_password" default:"tenant123"`

	LogLevel string `envconfig:"log_level" default:"error"`
	Debug    bool   `envconfig:"debug" default:"false"`

	Port     int `envconfig:"port" default:"8080"`
	GRPCPort int `envconfig:"grpc_port" default:"50051"`

	DSN string `envconfig:"DSN" required:"true"`

	DBMaxConns        int32         `envconfig:"db_max_conns" default:"25"`
	DBMinConns        int32         `envconfig:"db_min_conns" default:"2"`
	DBMaxConnLifetime time.Duration `envconfig:"db_max_conn_lifetime" default:"1h"`
	DBMaxConnIdleTime time.Duration `envconfig:"db_max_conn_idle_time" default:"30m"`

	// AuthenticationMode is one of kratos, jwt, header or noop
	AuthenticationMode            string   `envconfig:"authentication_mode" default:"kratos"`
	AuthenticationIssuer          string   `envconfig:"authentication_issuer"`
	AuthenticationJwksURL         string   `envconfig:"authentication_jwks_url"`
	AuthenticationAllowedSubjects []string `envconfig:"authentication_allowed_subjects"`
	AuthenticationRequiredScope   string   `envconfig:"authentication_required_scope"`
	// AuthenticationAcceptRoleClaim admits Hydra tokens carrying the profile role
	AuthenticationAcceptRoleClaim bool     `envconfig:"authentication_accept_role_claim" default:"true"`

	AuthorizationEnabled bool   `envconfig:"authorization_enabled" default:"false"`
	OpenfgaApiScheme     string `envconfig:"openfga_api_scheme" default:""`
	OpenfgaApiHost       string `envconfig:"openfga_api_host"`
	OpenfgaApiToken      string `envconfig:"openfga_api_token"`
	OpenfgaStoreId       string `envconfig:"openfga_store_id"`
	OpenfgaModelId       string `envconfig:"openfga_authorization_model_id" default:""`

	RateLimitRPS   float64 `envconfig:"rate_limit_rps" default:"20"`
	RateLimitBurst int     `envconfig:"rate_limit_burst" default:"40"`

	CORSAllowedOrigins []string `envconfig:"cors_allowed_origins" default:"*"`
}

// ClientSpec configures the tenantflow client commands, flags take precedence
type ClientSpec struct {
	APIURL          string        `envconfig:"api_url" default:"http://localhost:8080"`
	KratosPublicURL string        `envconfig:"kratos_public_url" default:"http://localhost:4433"`
	SessionFile     string        `envconfig:"session_file"`
	LogLevel        string        `envconfig:"log_level" default:"error"`
	Timeout         time.Duration `envconfig:"timeout" default:"30s"`
}
