// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"
)

type TokenVerifierInterface interface {
	// VerifyToken resolves a bearer credential to the principal it was issued to
	VerifyToken(ctx context.Context, rawToken string) (*Principal, error)
}
