// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package property

import (
	"context"
	"time"

	"github.com/tenantflow/tenantflow/internal/types"
)

type ServiceInterface interface {
	GetProfile(ctx context.Context, viewerID, id string) (*types.Profile, error)
	ListProfiles(ctx context.Context, viewerID string) ([]*types.Profile, error)
	UpdateProfile(ctx context.Context, viewerID, id string, u *types.ProfileUpdate) (*types.Profile, error)
	CreateTenant(ctx context.Context, landlordID string, req *CreateTenantRequest) (*types.Profile, error)
	DeleteTenant(ctx context.Context, landlordID, tenantID string) error

	ListHouses(ctx context.Context, viewerID, landlordID string) ([]*types.House, error)
	CreateHouse(ctx context.Context, landlordID string, h *types.House) (*types.House, error)
	UpdateHouse(ctx context.Context, landlordID string, h *types.House) (*types.House, error)
	DeleteHouse(ctx context.Context, landlordID, id string) error

	ListLeasesByLandlord(ctx context.Context, viewerID, landlordID string) ([]*types.Lease, error)
	ListLeasesByTenant(ctx context.Context, viewerID, tenantID, status string) ([]*types.Lease, error)
	CreateLease(ctx context.Context, landlordID string, l *types.Lease) (*types.Lease, error)
	UpdateLease(ctx context.Context, landlordID string, l *types.Lease) (*types.Lease, error)
	DeleteLease(ctx context.Context, landlordID, id string) error
	DeleteLeases(ctx context.Context, landlordID string, filter types.LeaseFilter) (int64, error)

	ListPayments(ctx context.Context, viewerID string, leaseIDs []string) ([]*types.Payment, error)
	CreatePayment(ctx context.Context, viewerID string, p *types.Payment) (*types.Payment, error)
	UpdatePaymentStatus(ctx context.Context, viewerID, id, status string) (*types.Payment, error)

	ListMaintenanceRequests(ctx context.Context, viewerID string, filter types.MaintenanceFilter) ([]*types.MaintenanceRequest, error)
	CreateMaintenanceRequest(ctx context.Context, viewerID string, m *types.MaintenanceRequest) (*types.MaintenanceRequest, error)
	UpdateMaintenanceStatus(ctx context.Context, viewerID, id, status string, notes *string) (*types.MaintenanceRequest, error)
}

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

// TxInterface runs fn inside one database transaction
type TxInterface interface {
	WithTx(ctx context.Context, fn func(context.Context) error) error
}

type AuthzInterface interface {
	CheckAccess(ctx context.Context, userID, relation, object string) (bool, error)
	AssignHouseLandlord(ctx context.Context, houseID, landlordID string) error
	AssignProfileManager(ctx context.Context, profileID, landlordID string) error
	AssignLease(ctx context.Context, l *types.Lease) error
	RemoveLease(ctx context.Context, l *types.Lease) error
	DeleteObject(ctx context.Context, object string) error
}

type KratosClientInterface interface {
	CreateIdentity(ctx context.Context, email, password, name string, role types.Role) (string, error)
	DeleteIdentity(ctx context.Context, id string) error
}
