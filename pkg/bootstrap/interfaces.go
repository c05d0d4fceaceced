// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package bootstrap

import (
	"context"

	"github.com/tenantflow/tenantflow/internal/types"
)

// AuthProviderInterface calls the handler once with the current session on
// Subscribe and again on every sign in and sign out
type AuthProviderInterface interface {
	Subscribe(func(*Session)) func()
	SignOut(context.Context) error
}

// DataSourceInterface reports a missing profile with ErrProfileNotFound
type DataSourceInterface interface {
	GetProfile(context.Context, string) (*types.Profile, error)
	ListHousesByLandlord(context.Context, string) ([]*types.House, error)
	ListLeasesByLandlord(context.Context, string) ([]*types.Lease, error)
	ListProfiles(context.Context) ([]*types.Profile, error)
}
