// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package client

import (
	"context"
	"fmt"
	"net/http"

	"github.com/tenantflow/tenantflow/internal/types"
	"github.com/tenantflow/tenantflow/pkg/bootstrap"
	"github.com/tenantflow/tenantflow/pkg/property"
)

// GetProfile fails with bootstrap.ErrProfileNotFound when the API has no
// profile for id
func (c *Client) GetProfile(ctx context.Context, id string) (*types.Profile, error) {
	ctx, span := c.tracer.Start(ctx, "client.Client.GetProfile")
	defer span.End()

	p, err := pathParam("id", id)
	if err != nil {
		return nil, err
	}

	profile := new(types.Profile)
	err = c.do(ctx, http.MethodGet, "/profiles/"+p, nil, nil, profile)
	if IsNotFound(err) {
		return nil, fmt.Errorf("%w: %s", bootstrap.ErrProfileNotFound, id)
	}
	if err != nil {
		return nil, err
	}

	return profile, nil
}

// ListProfiles returns every profile visible to the caller
func (c *Client) ListProfiles(ctx context.Context) ([]*types.Profile, error) {
	ctx, span := c.tracer.Start(ctx, "client.Client.ListProfiles")
	defer span.End()

	profiles := make([]*types.Profile, 0)
	if err := c.do(ctx, http.MethodGet, "/profiles", nil, nil, &profiles); err != nil {
		return nil, err
	}

	return profiles, nil
}

func (c *Client) UpdateProfile(ctx context.Context, id string, req *property.UpdateProfileRequest) (*types.Profile, error) {
	ctx, span := c.tracer.Start(ctx, "client.Client.UpdateProfile")
	defer span.End()

	p, err := pathParam("id", id)
	if err != nil {
		return nil, err
	}

	profile := new(types.Profile)
	if err := c.do(ctx, http.MethodPatch, "/profiles/"+p, nil, req, profile); err != nil {
		return nil, err
	}

	return profile, nil
}

// CreateTenant registers a tenant identity and profile owned by the caller
func (c *Client) CreateTenant(ctx context.Context, req *property.CreateTenantRequest) (*types.Profile, error) {
	ctx, span := c.tracer.Start(ctx, "client.Client.CreateTenant")
	defer span.End()

	profile := new(types.Profile)
	if err := c.do(ctx, http.MethodPost, "/tenants", nil, req, profile); err != nil {
		return nil, err
	}

	return profile, nil
}

func (c *Client) DeleteTenant(ctx context.Context, id string) error {
	ctx, span := c.tracer.Start(ctx, "client.Client.DeleteTenant")
	defer span.End()

	p, err := pathParam("id", id)
	if err != nil {
		return err
	}

	return c.do(ctx, http.MethodDelete, "/tenants/"+p, nil, nil, nil)
}
