// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package property

import (
	"context"
	"errors"
	"slices"

	"github.com/tenantflow/tenantflow/internal/authorization"
	"github.com/tenantflow/tenantflow/internal/storage"
	"github.com/tenantflow/tenantflow/internal/types"
)

var leaseStatuses = []string{
	types.LeaseStatusPending,
	types.LeaseStatusActive,
	types.LeaseStatusEnded,
	types.LeaseStatusCancelled,
}

func (s *Service) validateLease(ctx context.Context, l *types.Lease, house *types.House) error {
	if l.Status == "" {
		l.Status = types.LeaseStatusPending
	}
	if !slices.Contains(leaseStatuses, l.Status) {
		return invalidInput("unknown lease status %q", l.Status)
	}

	if l.LeaseStartDate.IsZero() || l.LeaseEndDate.IsZero() {
		return invalidInput("lease start and end dates are required")
	}
	if l.LeaseEndDate.Before(l.LeaseStartDate) {
		return invalidInput("lease cannot end before it starts")
	}
	if l.RentAmount < 0 || l.Deposit < 0 {
		return invalidInput("rent and deposit cannot be negative")
	}

	l.RoomOrUnitID = s.clean(l.RoomOrUnitID)
	if house.Type == types.HouseTypeMultiUnit && l.RoomOrUnitID != "" {
		known := slices.ContainsFunc(house.Units, func(u types.Unit) bool {
			return u.ID == l.RoomOrUnitID || u.Number == l.RoomOrUnitID
		})
		if !known {
			return invalidInput("unit %q does not belong to house %s", l.RoomOrUnitID, house.ID)
		}
	}

	tenant, err := s.storage.GetProfile(ctx, l.TenantID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return invalidInput("tenant %s does not exist", l.TenantID)
		}
		return err
	}
	if !tenant.HasRole(types.RoleTenant) {
		return invalidInput("profile %s is not a tenant", l.TenantID)
	}

	return nil
}

// checkActiveLease rejects a second active lease for the same tenant, it
// must run in the same transaction as the write it guards
func (s *Service) checkActiveLease(ctx context.Context, l *types.Lease) error {
	if l.Status != types.LeaseStatusActive {
		return nil
	}

	exists, err := s.storage.HasActiveLease(ctx, l.TenantID, l.ID)
	if err != nil {
		return err
	}
	if exists {
		return storage.ErrActiveLeaseExists
	}

	return nil
}

// ownedLease loads a lease and checks landlordID may edit it
func (s *Service) ownedLease(ctx context.Context, landlordID, id string) (*types.Lease, error) {
	l, err := s.storage.GetLease(ctx, id)
	if err != nil {
		return nil, err
	}

	if l.LandlordID != landlordID {
		s.logger.Security().AuthzFailure(landlordID, authorization.LeaseTuple(id))
		return nil, ErrForbidden
	}

	if err := s.checkAccess(ctx, landlordID, authorization.CAN_EDIT_PERMISSION, authorization.LeaseTuple(id)); err != nil {
		return nil, err
	}

	return l, nil
}

// ListLeasesByLandlord returns the landlord's leases, a viewer other than the
// landlord only sees their own leases among them
func (s *Service) ListLeasesByLandlord(ctx context.Context, viewerID, landlordID string) ([]*types.Lease, error) {
	ctx, span := s.tracer.Start(ctx, "property.Service.ListLeasesByLandlord")
	defer span.End()

	if landlordID == "" {
		return nil, invalidInput("landlord ID is required")
	}

	leases, err := s.storage.ListLeasesByLandlord(ctx, landlordID)
	if err != nil {
		return nil, err
	}

	if viewerID == landlordID {
		return leases, nil
	}

	return slices.DeleteFunc(leases, func(l *types.Lease) bool { return l.TenantID != viewerID }), nil
}

func (s *Service) ListLeasesByTenant(ctx context.Context, viewerID, tenantID, status string) ([]*types.Lease, error) {
	ctx, span := s.tracer.Start(ctx, "property.Service.ListLeasesByTenant")
	defer span.End()

	if tenantID == "" {
		return nil, invalidInput("tenant ID is required")
	}

	leases, err := s.storage.ListLeasesByTenant(ctx, tenantID, status)
	if err != nil {
		return nil, err
	}

	if viewerID == tenantID {
		return leases, nil
	}

	return slices.DeleteFunc(leases, func(l *types.Lease) bool { return l.LandlordID != viewerID }), nil
}

func (s *Service) CreateLease(ctx context.Context, landlordID string, l *types.Lease) (*types.Lease, error) {
	ctx, span := s.tracer.Start(ctx, "property.Service.CreateLease")
	defer span.End()

	if l.HouseID == "" || l.TenantID == "" {
		return nil, invalidInput("house and tenant are required")
	}

	house, err := s.ownedHouse(ctx, landlordID, l.HouseID)
	if err != nil {
		return nil, err
	}

	l.ID = ""
	l.LandlordID = landlordID
	if err := s.validateLease(ctx, l, house); err != nil {
		return nil, err
	}

	var created *types.Lease
	err = s.tx.WithTx(ctx, func(ctx context.Context) error {
		if err := s.checkActiveLease(ctx, l); err != nil {
			return err
		}

		var err error
		created, err = s.storage.CreateLease(ctx, l)
		return err
	})
	if err != nil {
		return nil, err
	}

	if err := s.authz.AssignLease(ctx, created); err != nil {
		s.logger.Errorf("failed to assign lease in authz: %v", err)
	}

	return created, nil
}

func (s *Service) UpdateLease(ctx context.Context, landlordID string, l *types.Lease) (*types.Lease, error) {
	ctx, span := s.tracer.Start(ctx, "property.Service.UpdateLease")
	defer span.End()

	existing, err := s.ownedLease(ctx, landlordID, l.ID)
	if err != nil {
		return nil, err
	}

	if l.HouseID == "" {
		l.HouseID = existing.HouseID
	}
	if l.TenantID == "" {
		l.TenantID = existing.TenantID
	}

	house, err := s.ownedHouse(ctx, landlordID, l.HouseID)
	if err != nil {
		return nil, err
	}

	l.LandlordID = landlordID
	if err := s.validateLease(ctx, l, house); err != nil {
		return nil, err
	}

	var updated *types.Lease
	err = s.tx.WithTx(ctx, func(ctx context.Context) error {
		if err := s.checkActiveLease(ctx, l); err != nil {
			return err
		}

		var err error
		updated, err = s.storage.UpdateLease(ctx, l)
		return err
	})
	if err != nil {
		return nil, err
	}

	if existing.HouseID != updated.HouseID || existing.TenantID != updated.TenantID {
		if err := s.authz.RemoveLease(ctx, existing); err != nil {
			s.logger.Errorf("failed to remove lease from authz: %v", err)
		}
		if err := s.authz.AssignLease(ctx, updated); err != nil {
			s.logger.Errorf("failed to assign lease in authz: %v", err)
		}
	}

	return updated, nil
}

func (s *Service) DeleteLease(ctx context.Context, landlordID, id string) error {
	ctx, span := s.tracer.Start(ctx, "property.Service.DeleteLease")
	defer span.End()

	l, err := s.ownedLease(ctx, landlordID, id)
	if err != nil {
		return err
	}

	if err := s.storage.DeleteLease(ctx, id); err != nil {
		return err
	}

	if err := s.authz.RemoveLease(ctx, l); err != nil {
		s.logger.Errorf("failed to remove lease from authz: %v", err)
	}

	return nil
}

// DeleteLeases removes the landlord's leases matching the tenant and/or house
// of filter, the landlord is always forced into the filter
func (s *Service) DeleteLeases(ctx context.Context, landlordID string, filter types.LeaseFilter) (int64, error) {
	ctx, span := s.tracer.Start(ctx, "property.Service.DeleteLeases")
	defer span.End()

	if filter.TenantID == "" && filter.HouseID == "" {
		return 0, invalidInput("a tenant or house is required to delete leases")
	}

	if _, err := s.requireLandlord(ctx, landlordID); err != nil {
		return 0, err
	}

	filter.LandlordID = landlordID

	leases, err := s.storage.ListLeases(ctx, filter)
	if err != nil {
		return 0, err
	}

	n, err := s.storage.DeleteLeases(ctx, filter)
	if err != nil {
		return 0, err
	}

	for _, l := range leases {
		if err := s.authz.RemoveLease(ctx, l); err != nil {
			s.logger.Errorf("failed to remove lease %s from authz: %v", l.ID, err)
		}
	}

	return n, nil
}
