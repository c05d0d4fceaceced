// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package property

import (
	"context"
	"errors"
	"slices"
	"time"

	"github.com/tenantflow/tenantflow/internal/authorization"
	"github.com/tenantflow/tenantflow/internal/storage"
	"github.com/tenantflow/tenantflow/internal/types"
)

var (
	maintenanceStatuses = []string{
		types.MaintenanceStatusOpen,
		types.MaintenanceStatusInProgress,
		types.MaintenanceStatusResolved,
		types.MaintenanceStatusClosed,
	}
	maintenancePriorities = []string{
		types.MaintenancePriorityLow,
		types.MaintenancePriorityMedium,
		types.MaintenancePriorityHigh,
	}
)

// ListMaintenanceRequests returns the requests matching filter that the
// viewer filed or that concern the viewer's houses
func (s *Service) ListMaintenanceRequests(ctx context.Context, viewerID string, filter types.MaintenanceFilter) ([]*types.MaintenanceRequest, error) {
	ctx, span := s.tracer.Start(ctx, "property.Service.ListMaintenanceRequests")
	defer span.End()

	if len(filter.HouseIDs) == 0 && filter.TenantID == "" {
		return []*types.MaintenanceRequest{}, nil
	}

	requests, err := s.storage.ListMaintenanceRequests(ctx, filter)
	if err != nil {
		return nil, err
	}

	owned := make(map[string]bool)
	var lookupErr error

	requests = slices.DeleteFunc(requests, func(m *types.MaintenanceRequest) bool {
		if m.TenantID == viewerID {
			return false
		}

		mine, ok := owned[m.HouseID]
		if !ok {
			h, err := s.storage.GetHouse(ctx, m.HouseID)
			if err != nil && !errors.Is(err, storage.ErrNotFound) {
				lookupErr = err
			}
			mine = err == nil && h.LandlordID == viewerID
			owned[m.HouseID] = mine
		}

		return !mine
	})

	if lookupErr != nil {
		return nil, lookupErr
	}

	return requests, nil
}

// CreateMaintenanceRequest files a request from the tenant of the lease, the
// request always starts Open
func (s *Service) CreateMaintenanceRequest(ctx context.Context, viewerID string, m *types.MaintenanceRequest) (*types.MaintenanceRequest, error) {
	ctx, span := s.tracer.Start(ctx, "property.Service.CreateMaintenanceRequest")
	defer span.End()

	m.Description = s.clean(m.Description)
	if m.LeaseID == "" || m.Description == "" {
		return nil, invalidInput("lease and description are required")
	}

	if m.Priority == "" {
		m.Priority = types.MaintenancePriorityMedium
	}
	if !slices.Contains(maintenancePriorities, m.Priority) {
		return nil, invalidInput("unknown priority %q", m.Priority)
	}

	l, err := s.storage.GetLease(ctx, m.LeaseID)
	if err != nil {
		return nil, err
	}

	if l.TenantID != viewerID {
		s.logger.Security().AuthzFailure(viewerID, authorization.LeaseTuple(l.ID))
		return nil, ErrForbidden
	}

	if m.HouseID == "" {
		m.HouseID = l.HouseID
	}
	if m.HouseID != l.HouseID {
		return nil, invalidInput("house %s does not match the lease", m.HouseID)
	}

	if err := s.checkAccess(ctx, viewerID, authorization.CAN_REQUEST_MAINTENANCE_PERMISSION, authorization.LeaseTuple(l.ID)); err != nil {
		return nil, err
	}

	m.ID = ""
	m.TenantID = viewerID
	m.Status = types.MaintenanceStatusOpen
	m.ResolvedAt = nil
	m.ResolutionNotes = nil
	if m.SubmittedDate.IsZero() {
		m.SubmittedDate = s.now()
	}

	return s.storage.CreateMaintenanceRequest(ctx, m)
}

// UpdateMaintenanceStatus moves a request through its lifecycle, resolved_at
// is stamped for Resolved and Closed and cleared for any other status
func (s *Service) UpdateMaintenanceStatus(ctx context.Context, viewerID, id, status string, notes *string) (*types.MaintenanceRequest, error) {
	ctx, span := s.tracer.Start(ctx, "property.Service.UpdateMaintenanceStatus")
	defer span.End()

	if !slices.Contains(maintenanceStatuses, status) {
		return nil, invalidInput("unknown maintenance status %q", status)
	}

	m, err := s.storage.GetMaintenanceRequest(ctx, id)
	if err != nil {
		return nil, err
	}

	if _, err := s.ownedHouse(ctx, viewerID, m.HouseID); err != nil {
		return nil, err
	}

	var resolvedAt *time.Time
	if types.IsTerminalMaintenanceStatus(status) {
		now := s.now()
		resolvedAt = &now
	}

	if notes != nil {
		cleaned := s.clean(*notes)
		notes = &cleaned
	}

	return s.storage.UpdateMaintenanceStatus(ctx, id, status, resolvedAt, notes)
}
