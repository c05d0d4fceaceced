// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package webhooks

import (
	"context"

	"github.com/ory/hydra/v2/oauth2"

	"github.com/tenantflow/tenantflow/internal/types"
)

// StorageInterface defines the storage operations required by the webhooks package.
// It is a subset of the internal/storage interface.
type StorageInterface interface {
	GetProfile(ctx context.Context, id string) (*types.Profile, error)
	CreateProfile(ctx context.Context, p *types.Profile) (*types.Profile, error)
}

// AuthorizerInterface defines the authorization operations required by the webhooks package.
// It is a subset of the internal/authorization interface.
type AuthorizerInterface interface {
	AssignProfileSelf(ctx context.Context, profileID string) error
}

// ServiceInterface defines the webhook service operations.
type ServiceInterface interface {
	HandleRegistration(ctx context.Context, identity *KratosIdentity) error
	HandleTokenHook(ctx context.Context, req *oauth2.TokenHookRequest) (*TokenHookResponse, error)
}
