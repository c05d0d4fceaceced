// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package property

import (
	"context"
	"errors"
	"slices"

	"github.com/tenantflow/tenantflow/internal/authorization"
	"github.com/tenantflow/tenantflow/internal/storage"
	"github.com/tenantflow/tenantflow/internal/types"
)

var reviewStatuses = []string{
	types.PaymentStatusPending,
	types.PaymentStatusApproved,
	types.PaymentStatusRejected,
}

// ListPayments returns the payments of the given leases the viewer is a party
// to, newest payment first. No lease IDs yields an empty list.
func (s *Service) ListPayments(ctx context.Context, viewerID string, leaseIDs []string) ([]*types.Payment, error) {
	ctx, span := s.tracer.Start(ctx, "property.Service.ListPayments")
	defer span.End()

	visible := make([]string, 0, len(leaseIDs))
	for _, id := range leaseIDs {
		if id == "" || slices.Contains(visible, id) {
			continue
		}

		l, err := s.storage.GetLease(ctx, id)
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				continue
			}
			return nil, err
		}

		if l.LandlordID == viewerID || l.TenantID == viewerID {
			visible = append(visible, id)
		}
	}

	if len(visible) == 0 {
		return []*types.Payment{}, nil
	}

	return s.storage.ListPaymentsByLeases(ctx, visible)
}

// CreatePayment records a payment by the tenant of the lease, always pending
// until the landlord reviews it
func (s *Service) CreatePayment(ctx context.Context, viewerID string, p *types.Payment) (*types.Payment, error) {
	ctx, span := s.tracer.Start(ctx, "property.Service.CreatePayment")
	defer span.End()

	if p.LeaseID == "" || p.Amount <= 0 || p.PaymentDate.IsZero() {
		return nil, invalidInput("lease, amount and payment date are required")
	}

	l, err := s.storage.GetLease(ctx, p.LeaseID)
	if err != nil {
		return nil, err
	}

	if l.TenantID != viewerID {
		s.logger.Security().AuthzFailure(viewerID, authorization.LeaseTuple(l.ID))
		return nil, ErrForbidden
	}

	if err := s.checkAccess(ctx, viewerID, authorization.CAN_PAY_PERMISSION, authorization.LeaseTuple(l.ID)); err != nil {
		return nil, err
	}

	p.ID = ""
	p.Status = types.PaymentStatusPending
	p.Method = s.clean(p.Method)
	if p.Method == "" {
		p.Method = types.PaymentMethodCash
	}

	return s.storage.CreatePayment(ctx, p)
}

// UpdatePaymentStatus is the landlord review of a payment
func (s *Service) UpdatePaymentStatus(ctx context.Context, viewerID, id, status string) (*types.Payment, error) {
	ctx, span := s.tracer.Start(ctx, "property.Service.UpdatePaymentStatus")
	defer span.End()

	if !slices.Contains(reviewStatuses, status) {
		return nil, invalidInput("unknown payment status %q", status)
	}

	p, err := s.storage.GetPayment(ctx, id)
	if err != nil {
		return nil, err
	}

	if _, err := s.ownedLease(ctx, viewerID, p.LeaseID); err != nil {
		return nil, err
	}

	return s.storage.UpdatePaymentStatus(ctx, id, status)
}
