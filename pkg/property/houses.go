// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package property

import (
	"context"
	"fmt"
	"slices"

	"github.com/google/uuid"

	"github.com/tenantflow/tenantflow/internal/authorization"
	"github.com/tenantflow/tenantflow/internal/types"
)

// normalizeHouse enforces the rooms or units shape of a house: multi unit
// houses carry units and no rooms, everything else carries rooms only
func (s *Service) normalizeHouse(h *types.House) error {
	h.Name = s.clean(h.Name)
	h.Address = s.clean(h.Address)
	h.Notes = s.clean(h.Notes)

	if h.Name == "" || h.Address == "" {
		return invalidInput("name and address are required")
	}

	if h.Type == "" {
		h.Type = types.HouseTypeShared
	}
	if !slices.Contains(types.HouseTypes, h.Type) {
		return invalidInput("unknown house type %q", h.Type)
	}

	if h.Type != types.HouseTypeMultiUnit {
		h.Units = nil
		if h.Rooms == nil || *h.Rooms < 1 {
			rooms := 1
			h.Rooms = &rooms
		}
		return nil
	}

	h.Rooms = nil
	if h.Units == nil {
		h.Units = []types.Unit{}
	}

	for i := range h.Units {
		u := &h.Units[i]
		u.Number = s.clean(u.Number)
		u.Size = s.clean(u.Size)
		u.Notes = s.clean(u.Notes)

		if u.Number == "" || u.Size == "" {
			return invalidInput("unit number and size are required")
		}

		if u.ID == "" {
			id, err := uuid.NewV7()
			if err != nil {
				return fmt.Errorf("failed to generate unit ID: %w", err)
			}
			u.ID = id.String()
		}
	}

	return nil
}

// ownedHouse loads a house and checks landlordID may edit it
func (s *Service) ownedHouse(ctx context.Context, landlordID, houseID string) (*types.House, error) {
	h, err := s.storage.GetHouse(ctx, houseID)
	if err != nil {
		return nil, err
	}

	if h.LandlordID != landlordID {
		s.logger.Security().AuthzFailure(landlordID, authorization.HouseTuple(houseID))
		return nil, ErrForbidden
	}

	if err := s.checkAccess(ctx, landlordID, authorization.CAN_EDIT_PERMISSION, authorization.HouseTuple(houseID)); err != nil {
		return nil, err
	}

	return h, nil
}

func (s *Service) ListHouses(ctx context.Context, viewerID, landlordID string) ([]*types.House, error) {
	ctx, span := s.tracer.Start(ctx, "property.Service.ListHouses")
	defer span.End()

	if landlordID == "" {
		return nil, invalidInput("landlord ID is required")
	}

	return s.storage.ListHousesByLandlord(ctx, landlordID, viewerID)
}

func (s *Service) CreateHouse(ctx context.Context, landlordID string, h *types.House) (*types.House, error) {
	ctx, span := s.tracer.Start(ctx, "property.Service.CreateHouse")
	defer span.End()

	if _, err := s.requireLandlord(ctx, landlordID); err != nil {
		return nil, err
	}

	if err := s.normalizeHouse(h); err != nil {
		return nil, err
	}
	h.LandlordID = landlordID

	created, err := s.storage.CreateHouse(ctx, h)
	if err != nil {
		return nil, err
	}

	if err := s.authz.AssignHouseLandlord(ctx, created.ID, landlordID); err != nil {
		s.logger.Errorf("failed to assign house landlord in authz: %v", err)
	}

	return created, nil
}

func (s *Service) UpdateHouse(ctx context.Context, landlordID string, h *types.House) (*types.House, error) {
	ctx, span := s.tracer.Start(ctx, "property.Service.UpdateHouse")
	defer span.End()

	if _, err := s.ownedHouse(ctx, landlordID, h.ID); err != nil {
		return nil, err
	}

	if err := s.normalizeHouse(h); err != nil {
		return nil, err
	}
	h.LandlordID = landlordID

	return s.storage.UpdateHouse(ctx, h)
}

// DeleteHouse removes the leases on the house before the house itself, a
// failure to remove them is logged and the house deletion proceeds
func (s *Service) DeleteHouse(ctx context.Context, landlordID, id string) error {
	ctx, span := s.tracer.Start(ctx, "property.Service.DeleteHouse")
	defer span.End()

	if _, err := s.ownedHouse(ctx, landlordID, id); err != nil {
		return err
	}

	filter := types.LeaseFilter{HouseID: id}

	leases, err := s.storage.ListLeases(ctx, filter)
	if err != nil {
		s.logger.Warnf("could not list leases for house %s: %v", id, err)
	}

	if _, err := s.storage.DeleteLeases(ctx, filter); err != nil {
		s.logger.Warnf("could not delete leases for house %s, house deletion will proceed: %v", id, err)
	}

	if err := s.storage.DeleteHouse(ctx, id); err != nil {
		return err
	}

	for _, l := range leases {
		if err := s.authz.RemoveLease(ctx, l); err != nil {
			s.logger.Errorf("failed to remove lease %s from authz: %v", l.ID, err)
		}
	}

	if err := s.authz.DeleteObject(ctx, authorization.HouseTuple(id)); err != nil {
		s.logger.Errorf("failed to delete house from authz: %v", err)
	}

	return nil
}
