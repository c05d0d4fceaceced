// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"time"

	"github.com/tenantflow/tenantflow/internal/types"
)

type StorageInterface interface {
	GetProfile(ctx context.Context, id string) (*types.Profile, error)
	GetVisibleProfile(ctx context.Context, viewerID, id string) (*types.Profile, error)
	ListVisibleProfiles(ctx context.Context, viewerID string) ([]*types.Profile, error)
	CreateProfile(ctx context.Context, p *types.Profile) (*types.Profile, error)
	UpdateProfile(ctx context.Context, id string, u *types.ProfileUpdate) (*types.Profile, error)
	DeleteProfile(ctx context.Context, id string) error

	ListHousesByLandlord(ctx context.Context, landlordID, viewerID string) ([]*types.House, error)
	GetHouse(ctx context.Context, id string) (*types.House, error)
	CreateHouse(ctx context.Context, h *types.House) (*types.House, error)
	UpdateHouse(ctx context.Context, h *types.House) (*types.House, error)
	DeleteHouse(ctx context.Context, id string) error

	ListLeasesByLandlord(ctx context.Context, landlordID string) ([]*types.Lease, error)
	ListLeasesByTenant(ctx context.Context, tenantID, status string) ([]*types.Lease, error)
	ListLeases(ctx context.Context, filter types.LeaseFilter) ([]*types.Lease, error)
	GetLease(ctx context.Context, id string) (*types.Lease, error)
	HasActiveLease(ctx context.Context, tenantID, excludeLeaseID string) (bool, error)
	CreateLease(ctx context.Context, l *types.Lease) (*types.Lease, error)
	UpdateLease(ctx context.Context, l *types.Lease) (*types.Lease, error)
	DeleteLease(ctx context.Context, id string) error
	DeleteLeases(ctx context.Context, filter types.LeaseFilter) (int64, error)

	ListPaymentsByLeases(ctx context.Context, leaseIDs []string) ([]*types.Payment, error)
	GetPayment(ctx context.Context, id string) (*types.Payment, error)
	CreatePayment(ctx context.Context, p *types.Payment) (*types.Payment, error)
	UpdatePaymentStatus(ctx context.Context, id, status string) (*types.Payment, error)

	ListMaintenanceRequests(ctx context.Context, filter types.MaintenanceFilter) ([]*types.MaintenanceRequest, error)
	GetMaintenanceRequest(ctx context.Context, id string) (*types.MaintenanceRequest, error)
	CreateMaintenanceRequest(ctx context.Context, m *types.MaintenanceRequest) (*types.MaintenanceRequest, error)
	UpdateMaintenanceStatus(ctx context.Context, id, status string, resolvedAt *time.Time, notes *string) (*types.MaintenanceRequest, error)
}
