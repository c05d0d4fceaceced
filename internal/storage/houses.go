// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"encoding/json"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/tenantflow/tenantflow/internal/types"
)

var houseColumns = []string{"h.id", "h.landlord_id", "h.name", "h.address", "h.type", "h.rooms", "h.units", "h.notes", "h.created_at"}

const houseReturning = "RETURNING id, landlord_id, name, address, type, rooms, units, notes, created_at"

func scanHouse(row scanner) (*types.House, error) {
	var h types.House
	var units []byte

	if err := row.Scan(&h.ID, &h.LandlordID, &h.Name, &h.Address, &h.Type, &h.Rooms, &units, &h.Notes, &h.CreatedAt); err != nil {
		return nil, err
	}

	if len(units) > 0 {
		if err := json.Unmarshal(units, &h.Units); err != nil {
			return nil, fmt.Errorf("invalid units for house %s: %w", h.ID, err)
		}
	}

	return &h, nil
}

// encodeUnits returns nil for houses without units so the column stays NULL
func encodeUnits(units []types.Unit) (any, error) {
	if units == nil {
		return nil, nil
	}

	b, err := json.Marshal(units)
	if err != nil {
		return nil, fmt.Errorf("failed to encode units: %w", err)
	}

	return string(b), nil
}

// ListHousesByLandlord returns the landlord's houses that viewerID is allowed
// to see, newest first
func (s *Storage) ListHousesByLandlord(ctx context.Context, landlordID, viewerID string) ([]*types.House, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListHousesByLandlord")
	defer span.End()

	q := s.db.Statement(ctx).
		Select(houseColumns...).
		From("houses h").
		Where(sq.Eq{"h.landlord_id": landlordID}).
		OrderBy("h.created_at DESC")

	if viewerID != landlordID {
		q = q.Where(sq.Expr("EXISTS (SELECT 1 FROM leases vl WHERE vl.house_id = h.id AND vl.tenant_id = ?)", viewerID))
	}

	rows, err := q.QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list houses: %w", err)
	}
	defer rows.Close()

	houses := make([]*types.House, 0)
	for rows.Next() {
		h, err := scanHouse(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan house: %w", err)
		}
		houses = append(houses, h)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return houses, nil
}

func (s *Storage) GetHouse(ctx context.Context, id string) (*types.House, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetHouse")
	defer span.End()

	h, err := scanHouse(
		s.db.Statement(ctx).
			Select(houseColumns...).
			From("houses h").
			Where(sq.Eq{"h.id": id}).
			QueryRowContext(ctx),
	)
	if err != nil {
		if isNoRows(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get house: %w", err)
	}

	return h, nil
}

func (s *Storage) CreateHouse(ctx context.Context, h *types.House) (*types.House, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateHouse")
	defer span.End()

	id, err := newID()
	if err != nil {
		return nil, err
	}

	units, err := encodeUnits(h.Units)
	if err != nil {
		return nil, err
	}

	created, err := scanHouse(
		s.db.Statement(ctx).
			Insert("houses").
			Columns("id", "landlord_id", "name", "address", "type", "rooms", "units", "notes").
			Values(id, h.LandlordID, h.Name, h.Address, h.Type, h.Rooms, units, h.Notes).
			Suffix(houseReturning).
			QueryRowContext(ctx),
	)
	if err != nil {
		return nil, wrapWriteError(err, "failed to insert house")
	}

	return created, nil
}

func (s *Storage) UpdateHouse(ctx context.Context, h *types.House) (*types.House, error) {
	ctx, span := s.tracer.Start(ctx, "storage.UpdateHouse")
	defer span.End()

	units, err := encodeUnits(h.Units)
	if err != nil {
		return nil, err
	}

	updated, err := scanHouse(
		s.db.Statement(ctx).
			Update("houses").
			Set("name", h.Name).
			Set("address", h.Address).
			Set("type", h.Type).
			Set("rooms", h.Rooms).
			Set("units", units).
			Set("notes", h.Notes).
			Where(sq.Eq{"id": h.ID}).
			Suffix(houseReturning).
			QueryRowContext(ctx),
	)
	if err != nil {
		if isNoRows(err) {
			return nil, ErrNotFound
		}
		return nil, wrapWriteError(err, "failed to update house")
	}

	return updated, nil
}

func (s *Storage) DeleteHouse(ctx context.Context, id string) error {
	ctx, span := s.tracer.Start(ctx, "storage.DeleteHouse")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Delete("houses").
		Where(sq.Eq{"id": id}).
		ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete house: %w", err)
	}

	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}

	return nil
}
