// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/tenantflow/tenantflow/internal/types"
)

const leaseReturning = "RETURNING id, landlord_id, house_id, tenant_id, room_or_unit_id, rent_amount, deposit, lease_start_date, lease_end_date, status, created_at"

// leaseSelect joins the house and tenant summaries every lease listing carries
func (s *Storage) leaseSelect(ctx context.Context) sq.SelectBuilder {
	return s.db.Statement(ctx).
		Select(
			"l.id", "l.landlord_id", "l.house_id", "l.tenant_id", "l.room_or_unit_id",
			"l.rent_amount", "l.deposit", "l.lease_start_date", "l.lease_end_date", "l.status", "l.created_at",
			"h.name", "h.address", "h.type",
			"t.name", "t.email",
		).
		From("leases l").
		Join("houses h ON h.id = l.house_id").
		Join("profiles t ON t.id = l.tenant_id")
}

func scanLease(row scanner) (*types.Lease, error) {
	var l types.Lease

	err := row.Scan(
		&l.ID, &l.LandlordID, &l.HouseID, &l.TenantID, &l.RoomOrUnitID,
		&l.RentAmount, &l.Deposit, &l.LeaseStartDate, &l.LeaseEndDate, &l.Status, &l.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &l, nil
}

func scanJoinedLease(row scanner) (*types.Lease, error) {
	var l types.Lease
	house := new(types.HouseSummary)
	tenant := new(types.PersonSummary)

	err := row.Scan(
		&l.ID, &l.LandlordID, &l.HouseID, &l.TenantID, &l.RoomOrUnitID,
		&l.RentAmount, &l.Deposit, &l.LeaseStartDate, &l.LeaseEndDate, &l.Status, &l.CreatedAt,
		&house.Name, &house.Address, &house.Type,
		&tenant.Name, &tenant.Email,
	)
	if err != nil {
		return nil, err
	}

	house.ID = l.HouseID
	tenant.ID = l.TenantID
	l.House = house
	l.Tenant = tenant

	return &l, nil
}

func (s *Storage) queryLeases(ctx context.Context, q sq.SelectBuilder) ([]*types.Lease, error) {
	rows, err := q.QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list leases: %w", err)
	}
	defer rows.Close()

	leases := make([]*types.Lease, 0)
	for rows.Next() {
		l, err := scanJoinedLease(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan lease: %w", err)
		}
		leases = append(leases, l)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return leases, nil
}

func (s *Storage) ListLeasesByLandlord(ctx context.Context, landlordID string) ([]*types.Lease, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListLeasesByLandlord")
	defer span.End()

	return s.queryLeases(ctx,
		s.leaseSelect(ctx).
			Where(sq.Eq{"l.landlord_id": landlordID}).
			OrderBy("l.created_at DESC"),
	)
}

// ListLeasesByTenant returns the tenant's leases, an empty status matches all of them
func (s *Storage) ListLeasesByTenant(ctx context.Context, tenantID, status string) ([]*types.Lease, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListLeasesByTenant")
	defer span.End()

	q := s.leaseSelect(ctx).
		Where(sq.Eq{"l.tenant_id": tenantID}).
		OrderBy("l.lease_start_date DESC")

	if status != "" {
		q = q.Where(sq.Eq{"l.status": status})
	}

	return s.queryLeases(ctx, q)
}

func leaseFilter(f types.LeaseFilter) sq.And {
	cond := sq.And{}
	if f.LandlordID != "" {
		cond = append(cond, sq.Eq{"landlord_id": f.LandlordID})
	}
	if f.TenantID != "" {
		cond = append(cond, sq.Eq{"tenant_id": f.TenantID})
	}
	if f.HouseID != "" {
		cond = append(cond, sq.Eq{"house_id": f.HouseID})
	}
	return cond
}

func (s *Storage) ListLeases(ctx context.Context, filter types.LeaseFilter) ([]*types.Lease, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListLeases")
	defer span.End()

	if filter.Empty() {
		return nil, fmt.Errorf("refusing to list leases without a filter")
	}

	rows, err := s.db.Statement(ctx).
		Select("id", "landlord_id", "house_id", "tenant_id", "room_or_unit_id", "rent_amount", "deposit", "lease_start_date", "lease_end_date", "status", "created_at").
		From("leases").
		Where(leaseFilter(filter)).
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list leases: %w", err)
	}
	defer rows.Close()

	leases := make([]*types.Lease, 0)
	for rows.Next() {
		l, err := scanLease(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan lease: %w", err)
		}
		leases = append(leases, l)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return leases, nil
}

func (s *Storage) GetLease(ctx context.Context, id string) (*types.Lease, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetLease")
	defer span.End()

	l, err := scanJoinedLease(
		s.leaseSelect(ctx).
			Where(sq.Eq{"l.id": id}).
			QueryRowContext(ctx),
	)
	if err != nil {
		if isNoRows(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get lease: %w", err)
	}

	return l, nil
}

// HasActiveLease reports whether the tenant holds an active lease other than excludeLeaseID
func (s *Storage) HasActiveLease(ctx context.Context, tenantID, excludeLeaseID string) (bool, error) {
	ctx, span := s.tracer.Start(ctx, "storage.HasActiveLease")
	defer span.End()

	q := s.db.Statement(ctx).
		Select("COUNT(*)").
		From("leases").
		Where(sq.Eq{"tenant_id": tenantID, "status": types.LeaseStatusActive})

	if excludeLeaseID != "" {
		q = q.Where(sq.NotEq{"id": excludeLeaseID})
	}

	var count int
	if err := q.QueryRowContext(ctx).Scan(&count); err != nil {
		return false, fmt.Errorf("failed to count active leases: %w", err)
	}

	return count > 0, nil
}

func (s *Storage) CreateLease(ctx context.Context, l *types.Lease) (*types.Lease, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateLease")
	defer span.End()

	id, err := newID()
	if err != nil {
		return nil, err
	}

	created, err := scanLease(
		s.db.Statement(ctx).
			Insert("leases").
			Columns("id", "landlord_id", "house_id", "tenant_id", "room_or_unit_id", "rent_amount", "deposit", "lease_start_date", "lease_end_date", "status").
			Values(id, l.LandlordID, l.HouseID, l.TenantID, l.RoomOrUnitID, l.RentAmount, l.Deposit, l.LeaseStartDate, l.LeaseEndDate, l.Status).
			Suffix(leaseReturning).
			QueryRowContext(ctx),
	)
	if err != nil {
		return nil, wrapWriteError(err, "failed to insert lease")
	}

	return created, nil
}

func (s *Storage) UpdateLease(ctx context.Context, l *types.Lease) (*types.Lease, error) {
	ctx, span := s.tracer.Start(ctx, "storage.UpdateLease")
	defer span.End()

	updated, err := scanLease(
		s.db.Statement(ctx).
			Update("leases").
			Set("house_id", l.HouseID).
			Set("tenant_id", l.TenantID).
			Set("room_or_unit_id", l.RoomOrUnitID).
			Set("rent_amount", l.RentAmount).
			Set("deposit", l.Deposit).
			Set("lease_start_date", l.LeaseStartDate).
			Set("lease_end_date", l.LeaseEndDate).
			Set("status", l.Status).
			Where(sq.Eq{"id": l.ID}).
			Suffix(leaseReturning).
			QueryRowContext(ctx),
	)
	if err != nil {
		if isNoRows(err) {
			return nil, ErrNotFound
		}
		return nil, wrapWriteError(err, "failed to update lease")
	}

	return updated, nil
}

func (s *Storage) DeleteLease(ctx context.Context, id string) error {
	ctx, span := s.tracer.Start(ctx, "storage.DeleteLease")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Delete("leases").
		Where(sq.Eq{"id": id}).
		ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete lease: %w", err)
	}

	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}

	return nil
}

// DeleteLeases removes every lease matching filter and returns how many went
func (s *Storage) DeleteLeases(ctx context.Context, filter types.LeaseFilter) (int64, error) {
	ctx, span := s.tracer.Start(ctx, "storage.DeleteLeases")
	defer span.End()

	if filter.Empty() {
		return 0, fmt.Errorf("refusing to delete leases without a filter")
	}

	res, err := s.db.Statement(ctx).
		Delete("leases").
		Where(leaseFilter(filter)).
		ExecContext(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to delete leases: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to count deleted leases: %w", err)
	}

	return n, nil
}
