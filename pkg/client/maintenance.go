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

// ListMaintenanceRequests selects by house ids when any are given, by tenant
// otherwise. A filter on an empty set of houses yields no requests.
func (c *Client) ListMaintenanceRequests(ctx context.Context, filter types.MaintenanceFilter) ([]*types.MaintenanceRequest, error) {
	ctx, span := c.tracer.Start(ctx, "client.Client.ListMaintenanceRequests")
	defer span.End()

	requests := make([]*types.MaintenanceRequest, 0)
	if len(filter.HouseIDs) == 0 && filter.TenantID == "" {
		return requests, nil
	}

	q := url.Values{}
	if err := addQuery(q, "house_id", filter.HouseIDs); err != nil {
		return nil, err
	}
	if err := addQuery(q, "tenant_id", filter.TenantID); err != nil {
		return nil, err
	}

	if err := c.do(ctx, http.MethodGet, "/maintenance-requests", q, nil, &requests); err != nil {
		return nil, err
	}

	return requests, nil
}

func (c *Client) CreateMaintenanceRequest(ctx context.Context, req *property.MaintenanceRequestRequest) (*types.MaintenanceRequest, error) {
	ctx, span := c.tracer.Start(ctx, "client.Client.CreateMaintenanceRequest")
	defer span.End()

	m := new(types.MaintenanceRequest)
	if err := c.do(ctx, http.MethodPost, "/maintenance-requests", nil, req, m); err != nil {
		return nil, err
	}

	return m, nil
}

func (c *Client) UpdateMaintenanceStatus(ctx context.Context, id, status string, notes *string) (*types.MaintenanceRequest, error) {
	ctx, span := c.tracer.Start(ctx, "client.Client.UpdateMaintenanceStatus")
	defer span.End()

	p, err := pathParam("id", id)
	if err != nil {
		return nil, err
	}

	body := &property.MaintenanceStatusRequest{Status: status, ResolutionNotes: notes}

	m := new(types.MaintenanceRequest)
	if err := c.do(ctx, http.MethodPatch, "/maintenance-requests/"+p+"/status", nil, body, m); err != nil {
		return nil, err
	}

	return m, nil
}
