// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package property

import (
	"context"
	"errors"
	"fmt"
	"html"
	"strings"
	"time"

	"github.com/microcosm-cc/bluemonday"

	"github.com/tenantflow/tenantflow/internal/authorization"
	"github.com/tenantflow/tenantflow/internal/logging"
	"github.com/tenantflow/tenantflow/internal/monitoring"
	"github.com/tenantflow/tenantflow/internal/storage"
	"github.com/tenantflow/tenantflow/internal/tracing"
	"github.com/tenantflow/tenantflow/internal/types"
)

var _ ServiceInterface = (*Service)(nil)

type Service struct {
	storage StorageInterface
	tx      TxInterface
	authz   AuthzInterface
	kratos  KratosClientInterface

	defaultPassword string
	policy          *bluemonday.Policy
	now             func() time.Time

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewService(
	storage StorageInterface,
	tx TxInterface,
	authz AuthzInterface,
	kratos KratosClientInterface,
	defaultPassword string,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	return &Service{
		storage:         storage,
		tx:              tx,
		authz:           authz,
		kratos:          kratos,
		defaultPassword: defaultPassword,
		policy:          bluemonday.StrictPolicy(),
		now:             time.Now,
		tracer:          tracer,
		monitor:         monitor,
		logger:          logger,
	}
}

// clean strips markup from free text entered by users
func (s *Service) clean(v string) string {
	return strings.TrimSpace(html.UnescapeString(s.policy.Sanitize(v)))
}

func (s *Service) checkAccess(ctx context.Context, userID, relation, object string) error {
	allowed, err := s.authz.CheckAccess(ctx, userID, relation, object)
	if err != nil {
		return fmt.Errorf("failed to check access: %w", err)
	}

	if !allowed {
		s.logger.Security().AuthzFailure(userID, object)
		return ErrForbidden
	}

	return nil
}

func (s *Service) requireLandlord(ctx context.Context, userID string) (*types.Profile, error) {
	p, err := s.storage.GetProfile(ctx, userID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			s.logger.Security().AuthzFailure(userID, "landlord_operations")
			return nil, ErrForbidden
		}
		return nil, err
	}

	if !p.HasRole(types.RoleLandlord) {
		s.logger.Security().AuthzFailure(userID, "landlord_operations")
		return nil, ErrForbidden
	}

	return p, nil
}

func (s *Service) GetProfile(ctx context.Context, viewerID, id string) (*types.Profile, error) {
	ctx, span := s.tracer.Start(ctx, "property.Service.GetProfile")
	defer span.End()

	return s.storage.GetVisibleProfile(ctx, viewerID, id)
}

func (s *Service) ListProfiles(ctx context.Context, viewerID string) ([]*types.Profile, error) {
	ctx, span := s.tracer.Start(ctx, "property.Service.ListProfiles")
	defer span.End()

	return s.storage.ListVisibleProfiles(ctx, viewerID)
}

// UpdateProfile lets a user edit their own profile and a landlord edit the
// profiles they created
func (s *Service) UpdateProfile(ctx context.Context, viewerID, id string, u *types.ProfileUpdate) (*types.Profile, error) {
	ctx, span := s.tracer.Start(ctx, "property.Service.UpdateProfile")
	defer span.End()

	p, err := s.storage.GetVisibleProfile(ctx, viewerID, id)
	if err != nil {
		return nil, err
	}

	if p.ID != viewerID && (p.CreatedBy == nil || *p.CreatedBy != viewerID) {
		s.logger.Security().AuthzFailure(viewerID, authorization.ProfileTuple(id))
		return nil, ErrForbidden
	}

	if err := s.checkAccess(ctx, viewerID, authorization.CAN_EDIT_PERMISSION, authorization.ProfileTuple(id)); err != nil {
		return nil, err
	}

	update := new(types.ProfileUpdate)
	if u.Name != nil {
		name := s.clean(*u.Name)
		if name == "" {
			return nil, invalidInput("name cannot be empty")
		}
		update.Name = &name
	}
	if u.Phone != nil {
		phone := s.clean(*u.Phone)
		update.Phone = &phone
	}

	return s.storage.UpdateProfile(ctx, id, update)
}

// CreateTenant registers an identity for the tenant with the default
// password and a tenant profile managed by the landlord
func (s *Service) CreateTenant(ctx context.Context, landlordID string, req *CreateTenantRequest) (*types.Profile, error) {
	ctx, span := s.tracer.Start(ctx, "property.Service.CreateTenant")
	defer span.End()

	if _, err := s.requireLandlord(ctx, landlordID); err != nil {
		return nil, err
	}

	name := s.clean(req.Name)
	if name == "" || req.Email == "" {
		return nil, invalidInput("name and email are required")
	}

	password := req.Password
	if password == "" {
		password = s.defaultPassword
	}

	identityID, err := s.kratos.CreateIdentity(ctx, req.Email, password, name, types.RoleTenant)
	if err != nil {
		return nil, fmt.Errorf("failed to create tenant identity: %w", err)
	}

	role := types.RoleTenant
	created, err := s.storage.CreateProfile(ctx, &types.Profile{
		ID:        identityID,
		Name:      name,
		Email:     req.Email,
		Phone:     s.clean(req.Phone),
		Role:      &role,
		CreatedBy: &landlordID,
	})
	if err != nil {
		if derr := s.kratos.DeleteIdentity(ctx, identityID); derr != nil {
			s.logger.Errorf("failed to roll back identity %s: %v", identityID, derr)
		}
		return nil, fmt.Errorf("failed to create tenant profile: %w", err)
	}

	if err := s.authz.AssignProfileManager(ctx, created.ID, landlordID); err != nil {
		s.logger.Errorf("failed to assign profile manager in authz: %v", err)
	}

	s.logger.Security().AdminAction(landlordID, "create_tenant", authorization.ProfileTuple(created.ID))

	return created, nil
}

// DeleteTenant removes the tenant's leases with the landlord and then the
// tenant itself, lease removal failures are logged and do not stop it
func (s *Service) DeleteTenant(ctx context.Context, landlordID, tenantID string) error {
	ctx, span := s.tracer.Start(ctx, "property.Service.DeleteTenant")
	defer span.End()

	p, err := s.storage.GetProfile(ctx, tenantID)
	if err != nil {
		return err
	}

	if !p.HasRole(types.RoleTenant) || p.CreatedBy == nil || *p.CreatedBy != landlordID {
		s.logger.Security().AuthzFailure(landlordID, authorization.ProfileTuple(tenantID))
		return ErrForbidden
	}

	if err := s.checkAccess(ctx, landlordID, authorization.CAN_EDIT_PERMISSION, authorization.ProfileTuple(tenantID)); err != nil {
		return err
	}

	filter := types.LeaseFilter{LandlordID: landlordID, TenantID: tenantID}

	leases, err := s.storage.ListLeases(ctx, filter)
	if err != nil {
		s.logger.Warnf("could not list leases of tenant %s: %v", tenantID, err)
	}

	if _, err := s.storage.DeleteLeases(ctx, filter); err != nil {
		s.logger.Warnf("could not delete leases of tenant %s, tenant deletion will proceed: %v", tenantID, err)
	}

	if err := s.storage.DeleteProfile(ctx, tenantID); err != nil {
		return fmt.Errorf("failed to delete tenant profile: %w", err)
	}

	if err := s.kratos.DeleteIdentity(ctx, tenantID); err != nil {
		s.logger.Errorf("failed to delete identity %s: %v", tenantID, err)
	}

	for _, l := range leases {
		if err := s.authz.RemoveLease(ctx, l); err != nil {
			s.logger.Errorf("failed to remove lease %s from authz: %v", l.ID, err)
		}
	}

	if err := s.authz.DeleteObject(ctx, authorization.ProfileTuple(tenantID)); err != nil {
		s.logger.Errorf("failed to delete profile from authz: %v", err)
	}

	s.logger.Security().AdminAction(landlordID, "delete_tenant", authorization.ProfileTuple(tenantID))

	return nil
}
