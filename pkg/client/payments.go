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

// ListPayments lists the payments of the given leases, an empty set yields no
// payments without calling the API
func (c *Client) ListPayments(ctx context.Context, leaseIDs []string) ([]*types.Payment, error) {
	ctx, span := c.tracer.Start(ctx, "client.Client.ListPayments")
	defer span.End()

	payments := make([]*types.Payment, 0)
	if len(leaseIDs) == 0 {
		return payments, nil
	}

	q := url.Values{}
	if err := addQuery(q, "lease_id", leaseIDs); err != nil {
		return nil, err
	}

	if err := c.do(ctx, http.MethodGet, "/payments", q, nil, &payments); err != nil {
		return nil, err
	}

	return payments, nil
}

func (c *Client) CreatePayment(ctx context.Context, req *property.PaymentRequest) (*types.Payment, error) {
	ctx, span := c.tracer.Start(ctx, "client.Client.CreatePayment")
	defer span.End()

	payment := new(types.Payment)
	if err := c.do(ctx, http.MethodPost, "/payments", nil, req, payment); err != nil {
		return nil, err
	}

	return payment, nil
}

func (c *Client) UpdatePaymentStatus(ctx context.Context, id, status string) (*types.Payment, error) {
	ctx, span := c.tracer.Start(ctx, "client.Client.UpdatePaymentStatus")
	defer span.End()

	p, err := pathParam("id", id)
	if err != nil {
		return nil, err
	}

	payment := new(types.Payment)
	if err := c.do(ctx, http.MethodPatch, "/payments/"+p+"/status", nil, &property.StatusRequest{Status: status}, payment); err != nil {
		return nil, err
	}

	return payment, nil
}
