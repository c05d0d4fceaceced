// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package client

import (
	"context"
	"net/http"
	"net/url"

	"github.com/tenantflow/tenantflow/internal/types"
	"github.com/tenantflow/tenantflow/pkg/property"
)

func (c *Client) listLeases(ctx context.Context, q url.Values) ([]*types.Lease, error) {
	leases := make([]*types.Lease, 0)
	if err := c.do(ctx, http.MethodGet, "/leases", q, nil, &leases); err != nil {
		return nil, err
	}

	return leases, nil
}

func (c *Client) ListLeasesByLandlord(ctx context.Context, landlordID string) ([]*types.Lease, error) {
	ctx, span := c.tracer.Start(ctx, "client.Client.ListLeasesByLandlord")
	defer span.End()

	q := url.Values{}
	if err := addQuery(q, "landlord_id", landlordID); err != nil {
		return nil, err
	}

	return c.listLeases(ctx, q)
}

// ListLeasesByTenant lists the leases of a tenant, all of them when status
// is empty
func (c *Client) ListLeasesByTenant(ctx context.Context, tenantID, status string) ([]*types.Lease, error) {
	ctx, span := c.tracer.Start(ctx, "client.Client.ListLeasesByTenant")
	defer span.End()

	q := url.Values{}
	if err := addQuery(q, "tenant_id", tenantID); err != nil {
		return nil, err
	}
	if err := addQuery(q, "status", status); err != nil {
		return nil, err
	}

	return c.listLeases(ctx, q)
}

func (c *Client) CreateLease(ctx context.Context, req *property.LeaseRequest) (*types.Lease, error) {
	ctx, span := c.tracer.Start(ctx, "client.Client.CreateLease")
	defer span.End()

	lease := new(types.Lease)
	if err := c.do(ctx, http.MethodPost, "/leases", nil, req, lease); err != nil {
		return nil, err
	}

	return lease, nil
}

func (c *Client) UpdateLease(ctx context.Context, id string, req *property.LeaseRequest) (*types.Lease, error) {
	ctx, span := c.tracer.Start(ctx, "client.Client.UpdateLease")
	defer span.End()

	p, err := pathParam("id", id)
	if err != nil {
		return nil, err
	}

	lease := new(types.Lease)
	if err := c.do(ctx, http.MethodPut, "/leases/"+p, nil, req, lease); err != nil {
		return nil, err
	}

	return lease, nil
}

func (c *Client) DeleteLease(ctx context.Context, id string) error {
	ctx, span := c.tracer.Start(ctx, "client.Client.DeleteLease")
	defer span.End()

	p, err := pathParam("id", id)
	if err != nil {
		return err
	}

	return c.do(ctx, http.MethodDelete, "/leases/"+p, nil, nil, nil)
}

// DeleteLeases removes the caller's leases matching filter and returns how
// many were removed
func (c *Client) DeleteLeases(ctx context.Context, filter types.LeaseFilter) (int64, error) {
	ctx, span := c.tracer.Start(ctx, "client.Client.DeleteLeases")
	defer span.End()

	q := url.Values{}
	if err := addQuery(q, "tenant_id", filter.TenantID); err != nil {
		return 0, err
	}
	if err := addQuery(q, "house_id", filter.HouseID); err != nil {
		return 0, err
	}

	resp := new(property.DeleteLeasesResponse)
	if err := c.do(ctx, http.MethodDelete, "/leases", q, nil, resp); err != nil {
		return 0, err
	}

	return resp.Deleted, nil
}
