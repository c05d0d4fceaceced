// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"
	"fmt"
	"net/http"

	"github.com/coreos/go-oidc/v3/oidc"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

var otelHTTPClient = http.Client{Transport: otelhttp.NewTransport(http.DefaultTransport)}

// newIDTokenVerifier verifies tokens of the issuer against jwksURL, or the key
// set found through OIDC discovery when jwksURL is empty
func newIDTokenVerifier(ctx context.Context, issuer, jwksURL string) (*oidc.IDTokenVerifier, error) {
	ctx = oidc.ClientContext(ctx, &otelHTTPClient)
	config := &oidc.Config{SkipClientIDCheck: true}

	if jwksURL != "" {
		return oidc.NewVerifier(issuer, oidc.NewRemoteKeySet(ctx, jwksURL), config), nil
	}

	provider, err := oidc.NewProvider(ctx, issuer)
	if err != nil {
		return nil, fmt.Errorf("failed to discover issuer %s: %w", issuer, err)
	}

	return provider.Verifier(config), nil
}
