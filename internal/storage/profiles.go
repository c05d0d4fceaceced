// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/tenantflow/tenantflow/internal/types"
)

var profileColumns = []string{"p.id", "p.name", "p.email", "p.phone", "p.role", "p.created_by", "p.created_at"}

// visibleProfile mirrors the row level rules on profiles: a viewer sees
// itself, the tenants it created and everyone it shares a lease with
func visibleProfile(viewerID string) sq.Sqlizer {
	return sq.Or{
		sq.Eq{"p.id": viewerID},
		sq.Eq{"p.created_by": viewerID},
		sq.Expr("EXISTS (SELECT 1 FROM leases vl WHERE vl.landlord_id = ? AND vl.tenant_id = p.id)", viewerID),
		sq.Expr("EXISTS (SELECT 1 FROM leases vl WHERE vl.tenant_id = ? AND vl.landlord_id = p.id)", viewerID),
	}
}

func scanProfile(row scanner) (*types.Profile, error) {
	var p types.Profile
	var role *string

	if err := row.Scan(&p.ID, &p.Name, &p.Email, &p.Phone, &role, &p.CreatedBy, &p.CreatedAt); err != nil {
		return nil, err
	}

	if role != nil {
		r := types.Role(*role)
		p.Role = &r
	}

	return &p, nil
}

func (s *Storage) GetProfile(ctx context.Context, id string) (*types.Profile, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetProfile")
	defer span.End()

	p, err := scanProfile(
		s.db.Statement(ctx).
			Select(profileColumns...).
			From("profiles p").
			Where(sq.Eq{"p.id": id}).
			QueryRowContext(ctx),
	)
	if err != nil {
		if isNoRows(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}

	return p, nil
}

func (s *Storage) GetVisibleProfile(ctx context.Context, viewerID, id string) (*types.Profile, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetVisibleProfile")
	defer span.End()

	p, err := scanProfile(
		s.db.Statement(ctx).
			Select(profileColumns...).
			From("profiles p").
			Where(sq.Eq{"p.id": id}).
			Where(visibleProfile(viewerID)).
			QueryRowContext(ctx),
	)
	if err != nil {
		if isNoRows(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}

	return p, nil
}

func (s *Storage) ListVisibleProfiles(ctx context.Context, viewerID string) ([]*types.Profile, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListVisibleProfiles")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select(profileColumns...).
		From("profiles p").
		Where(visibleProfile(viewerID)).
		OrderBy("p.created_at DESC").
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list profiles: %w", err)
	}
	defer rows.Close()

	profiles := make([]*types.Profile, 0)
	for rows.Next() {
		p, err := scanProfile(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan profile: %w", err)
		}
		profiles = append(profiles, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return profiles, nil
}

func (s *Storage) CreateProfile(ctx context.Context, p *types.Profile) (*types.Profile, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateProfile")
	defer span.End()

	var role *string
	if p.Role != nil {
		r := string(*p.Role)
		role = &r
	}

	created, err := scanProfile(
		s.db.Statement(ctx).
			Insert("profiles").
			Columns("id", "name", "email", "phone", "role", "created_by").
			Values(p.ID, p.Name, p.Email, p.Phone, role, p.CreatedBy).
			Suffix("RETURNING id, name, email, phone, role, created_by, created_at").
			QueryRowContext(ctx),
	)
	if err != nil {
		return nil, wrapWriteError(err, "failed to insert profile")
	}

	return created, nil
}

func (s *Storage) UpdateProfile(ctx context.Context, id string, u *types.ProfileUpdate) (*types.Profile, error) {
	ctx, span := s.tracer.Start(ctx, "storage.UpdateProfile")
	defer span.End()

	q := s.db.Statement(ctx).
		Update("profiles").
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING id, name, email, phone, role, created_by, created_at")

	changed := false
	if u.Name != nil {
		q = q.Set("name", *u.Name)
		changed = true
	}
	if u.Phone != nil {
		q = q.Set("phone", *u.Phone)
		changed = true
	}

	if !changed {
		return s.GetProfile(ctx, id)
	}

	p, err := scanProfile(q.QueryRowContext(ctx))
	if err != nil {
		if isNoRows(err) {
			return nil, ErrNotFound
		}
		return nil, wrapWriteError(err, "failed to update profile")
	}

	return p, nil
}

func (s *Storage) DeleteProfile(ctx context.Context, id string) error {
	ctx, span := s.tracer.Start(ctx, "storage.DeleteProfile")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Delete("profiles").
		Where(sq.Eq{"id": id}).
		ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete profile: %w", err)
	}

	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}

	return nil
}
