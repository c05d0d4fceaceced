// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/tenantflow/tenantflow/internal/types"
)

var maintenanceColumns = []string{
	"m.id", "m.lease_id", "m.house_id", "m.tenant_id", "m.description", "m.priority", "m.status",
	"m.submitted_date", "m.resolved_at", "m.resolution_notes", "m.created_at",
	"l.room_or_unit_id", "h.name", "h.address", "t.name", "t.email",
}

func (s *Storage) maintenanceSelect(ctx context.Context) sq.SelectBuilder {
	return s.db.Statement(ctx).
		Select(maintenanceColumns...).
		From("maintenance_requests m").
		Join("leases l ON l.id = m.lease_id").
		Join("houses h ON h.id = m.house_id").
		Join("profiles t ON t.id = m.tenant_id")
}

func scanMaintenanceRequest(row scanner) (*types.MaintenanceRequest, error) {
	var m types.MaintenanceRequest
	house := new(types.HouseSummary)
	tenant := new(types.PersonSummary)

	err := row.Scan(
		&m.ID, &m.LeaseID, &m.HouseID, &m.TenantID, &m.Description, &m.Priority, &m.Status,
		&m.SubmittedDate, &m.ResolvedAt, &m.ResolutionNotes, &m.CreatedAt,
		&m.RoomOrUnitID, &house.Name, &house.Address, &tenant.Name, &tenant.Email,
	)
	if err != nil {
		return nil, err
	}

	house.ID = m.HouseID
	tenant.ID = m.TenantID
	m.House = house
	m.Tenant = tenant

	return &m, nil
}

// ListMaintenanceRequests returns requests newest first. A filter without
// houses or tenant yields an empty list.
func (s *Storage) ListMaintenanceRequests(ctx context.Context, filter types.MaintenanceFilter) ([]*types.MaintenanceRequest, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListMaintenanceRequests")
	defer span.End()

	requests := make([]*types.MaintenanceRequest, 0)

	q := s.maintenanceSelect(ctx).OrderBy("m.submitted_date DESC")
	switch {
	case len(filter.HouseIDs) > 0:
		q = q.Where(sq.Eq{"m.house_id": filter.HouseIDs})
	case filter.TenantID != "":
		q = q.Where(sq.Eq{"m.tenant_id": filter.TenantID})
	default:
		return requests, nil
	}

	rows, err := q.QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list maintenance requests: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		m, err := scanMaintenanceRequest(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan maintenance request: %w", err)
		}
		requests = append(requests, m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return requests, nil
}

func (s *Storage) GetMaintenanceRequest(ctx context.Context, id string) (*types.MaintenanceRequest, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetMaintenanceRequest")
	defer span.End()

	m, err := scanMaintenanceRequest(
		s.maintenanceSelect(ctx).
			Where(sq.Eq{"m.id": id}).
			QueryRowContext(ctx),
	)
	if err != nil {
		if isNoRows(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get maintenance request: %w", err)
	}

	return m, nil
}

func (s *Storage) CreateMaintenanceRequest(ctx context.Context, m *types.MaintenanceRequest) (*types.MaintenanceRequest, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateMaintenanceRequest")
	defer span.End()

	id, err := newID()
	if err != nil {
		return nil, err
	}

	_, err = s.db.Statement(ctx).
		Insert("maintenance_requests").
		Columns("id", "lease_id", "house_id", "tenant_id", "description", "priority", "status", "submitted_date").
		Values(id, m.LeaseID, m.HouseID, m.TenantID, m.Description, m.Priority, m.Status, m.SubmittedDate).
		ExecContext(ctx)
	if err != nil {
		return nil, wrapWriteError(err, "failed to insert maintenance request")
	}

	return s.GetMaintenanceRequest(ctx, id)
}

// UpdateMaintenanceStatus sets status and resolved_at, notes are only
// overwritten when provided
func (s *Storage) UpdateMaintenanceStatus(ctx context.Context, id, status string, resolvedAt *time.Time, notes *string) (*types.MaintenanceRequest, error) {
	ctx, span := s.tracer.Start(ctx, "storage.UpdateMaintenanceStatus")
	defer span.End()

	q := s.db.Statement(ctx).
		Update("maintenance_requests").
		Set("status", status).
		Set("resolved_at", resolvedAt).
		Where(sq.Eq{"id": id})

	if notes != nil {
		q = q.Set("resolution_notes", *notes)
	}

	res, err := q.ExecContext(ctx)
	if err != nil {
		return nil, wrapWriteError(err, "failed to update maintenance request")
	}

	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return nil, ErrNotFound
	}

	return s.GetMaintenanceRequest(ctx, id)
}
