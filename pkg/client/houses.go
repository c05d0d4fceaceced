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

func (c *Client) ListHousesByLandlord(ctx context.Context, landlordID string) ([]*types.House, error) {
	ctx, span := c.tracer.Start(ctx, "client.Client.ListHousesByLandlord")
	defer span.End()

	q := url.Values{}
	if err := addQuery(q, "landlord_id", landlordID); err != nil {
		return nil, err
	}

	houses := make([]*types.House, 0)
	if err := c.do(ctx, http.MethodGet, "/houses", q, nil, &houses); err != nil {
		return nil, err
	}

	return houses, nil
}

func (c *Client) CreateHouse(ctx context.Context, req *property.HouseRequest) (*types.House, error) {
	ctx, span := c.tracer.Start(ctx, "client.Client.CreateHouse")
	defer span.End()

	house := new(types.House)
	if err := c.do(ctx, http.MethodPost, "/houses", nil, req, house); err != nil {
		return nil, err
	}

	return house, nil
}

func (c *Client) UpdateHouse(ctx context.Context, id string, req *property.HouseRequest) (*types.House, error) {
	ctx, span := c.tracer.Start(ctx, "client.Client.UpdateHouse")
	defer span.End()

	p, err := pathParam("id", id)
	if err != nil {
		return nil, err
	}

	house := new(types.House)
	if err := c.do(ctx, http.MethodPut, "/houses/"+p, nil, req, house); err != nil {
		return nil, err
	}

	return house, nil
}

// DeleteHouse removes the house together with its leases
func (c *Client) DeleteHouse(ctx context.Context, id string) error {
	ctx, span := c.tracer.Start(ctx, "client.Client.DeleteHouse")
	defer span.End()

	p, err := pathParam("id", id)
	if err != nil {
		return err
	}

	return c.do(ctx, http.MethodDelete, "/houses/"+p, nil, nil, nil)
}
