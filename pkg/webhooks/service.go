// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package webhooks

import (
	"context"
	"errors"
	"fmt"

	"github.com/ory/hydra/v2/oauth2"

	"github.com/tenantflow/tenantflow/internal/logging"
	"github.com/tenantflow/tenantflow/internal/monitoring"
	"github.com/tenantflow/tenantflow/internal/storage"
	"github.com/tenantflow/tenantflow/internal/tracing"
	"github.com/tenantflow/tenantflow/internal/types"
)

const roleClaim = "role"

var _ ServiceInterface = (*Service)(nil)

type Service struct {
	storage StorageInterface
	authz   AuthorizerInterface
	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewService(
	storage StorageInterface,
	authz AuthorizerInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	return &Service{
		storage: storage,
		authz:   authz,
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}

// HandleRegistration provisions the landlord profile of a freshly registered
// identity. Calling it again for the same identity is a no-op, and identities
// registered as tenants are left to the landlord who creates them.
func (s *Service) HandleRegistration(ctx context.Context, identity *KratosIdentity) error {
	ctx, span := s.tracer.Start(ctx, "webhooks.Service.HandleRegistration")
	defer span.End()

	if identity == nil || identity.ID == "" || identity.Traits.Email == "" {
		return fmt.Errorf("identity ID or email is empty")
	}

	s.logger.Debugf("Handling registration for identity %s with email %s", identity.ID, identity.Traits.Email)

	if types.Role(identity.Traits.Role) == types.RoleTenant {
		s.logger.Debugf("identity %s registered as a tenant, skipping provisioning", identity.ID)
		return nil
	}

	_, err := s.storage.GetProfile(ctx, identity.ID)
	if err == nil {
		s.logger.Debugf("profile %s already provisioned", identity.ID)
		return nil
	}
	if !errors.Is(err, storage.ErrNotFound) {
		return fmt.Errorf("failed to look up profile: %w", err)
	}

	name := identity.Traits.Name
	if name == "" {
		name = identity.Traits.Email
	}

	role := types.RoleLandlord
	_, err = s.storage.CreateProfile(ctx, &types.Profile{
		ID:    identity.ID,
		Name:  name,
		Email: identity.Traits.Email,
		Role:  &role,
	})
	if errors.Is(err, storage.ErrDuplicateKey) {
		s.logger.Debugf("profile %s provisioned concurrently", identity.ID)
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to create profile: %w", err)
	}

	if err := s.authz.AssignProfileSelf(ctx, identity.ID); err != nil {
		return fmt.Errorf("failed to assign profile in authz: %w", err)
	}

	s.logger.Infof("Successfully provisioned landlord profile for identity %s", identity.ID)
	return nil
}

func subject(req *oauth2.TokenHookRequest) string {
	if req == nil || req.Session == nil || req.Session.DefaultSession == nil {
		return ""
	}

	if req.Session.DefaultSession.Subject != "" {
		return req.Session.DefaultSession.Subject
	}

	if req.Session.DefaultSession.Claims != nil {
		return req.Session.DefaultSession.Claims.Subject
	}

	return ""
}

// HandleTokenHook adds the role of the subject's profile to the issued
// tokens, subjects without a profile (service clients) get no extra claims
func (s *Service) HandleTokenHook(ctx context.Context, req *oauth2.TokenHookRequest) (*TokenHookResponse, error) {
	ctx, span := s.tracer.Start(ctx, "webhooks.Service.HandleTokenHook")
	defer span.End()

	resp := new(TokenHookResponse)
	resp.Session.IDToken = map[string]interface{}{}
	resp.Session.AccessToken = map[string]interface{}{}

	sub := subject(req)
	if sub == "" {
		return nil, fmt.Errorf("token hook request has no subject")
	}

	p, err := s.storage.GetProfile(ctx, sub)
	if errors.Is(err, storage.ErrNotFound) {
		s.logger.Debugf("no profile for subject %s, issuing token without role", sub)
		return resp, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to look up profile: %w", err)
	}

	if p.Role != nil {
		resp.Session.IDToken[roleClaim] = string(*p.Role)
		resp.Session.AccessToken[roleClaim] = string(*p.Role)
	}

	return resp, nil
}
