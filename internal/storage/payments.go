// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/tenantflow/tenantflow/internal/types"
)

const paymentReturning = "RETURNING id, lease_id, amount, payment_date, method, status, created_at"

func scanPayment(row scanner) (*types.Payment, error) {
	var p types.Payment

	if err := row.Scan(&p.ID, &p.LeaseID, &p.Amount, &p.PaymentDate, &p.Method, &p.Status, &p.CreatedAt); err != nil {
		return nil, err
	}

	return &p, nil
}

// ListPaymentsByLeases returns the payments of the given leases, most recent
// payment date first. No lease ids means no payments.
func (s *Storage) ListPaymentsByLeases(ctx context.Context, leaseIDs []string) ([]*types.Payment, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListPaymentsByLeases")
	defer span.End()

	payments := make([]*types.Payment, 0)
	if len(leaseIDs) == 0 {
		return payments, nil
	}

	rows, err := s.db.Statement(ctx).
		Select("id", "lease_id", "amount", "payment_date", "method", "status", "created_at").
		From("payments").
		Where(sq.Eq{"lease_id": leaseIDs}).
		OrderBy("payment_date DESC", "created_at DESC").
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list payments: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		p, err := scanPayment(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan payment: %w", err)
		}
		payments = append(payments, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return payments, nil
}

func (s *Storage) GetPayment(ctx context.Context, id string) (*types.Payment, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetPayment")
	defer span.End()

	p, err := scanPayment(
		s.db.Statement(ctx).
			Select("id", "lease_id", "amount", "payment_date", "method", "status", "created_at").
			From("payments").
			Where(sq.Eq{"id": id}).
			QueryRowContext(ctx),
	)
	if err != nil {
		if isNoRows(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get payment: %w", err)
	}

	return p, nil
}

func (s *Storage) CreatePayment(ctx context.Context, p *types.Payment) (*types.Payment, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreatePayment")
	defer span.End()

	id, err := newID()
	if err != nil {
		return nil, err
	}

	created, err := scanPayment(
		s.db.Statement(ctx).
			Insert("payments").
			Columns("id", "lease_id", "amount", "payment_date", "method", "status").
			Values(id, p.LeaseID, p.Amount, p.PaymentDate, p.Method, p.Status).
			Suffix(paymentReturning).
			QueryRowContext(ctx),
	)
	if err != nil {
		return nil, wrapWriteError(err, "failed to insert payment")
	}

	return created, nil
}

func (s *Storage) UpdatePaymentStatus(ctx context.Context, id, status string) (*types.Payment, error) {
	ctx, span := s.tracer.Start(ctx, "storage.UpdatePaymentStatus")
	defer span.End()

	p, err := scanPayment(
		s.db.Statement(ctx).
			Update("payments").
			Set("status", status).
			Where(sq.Eq{"id": id}).
			Suffix(paymentReturning).
			QueryRowContext(ctx),
	)
	if err != nil {
		if isNoRows(err) {
			return nil, ErrNotFound
		}
		return nil, wrapWriteError(err, "failed to update payment status")
	}

	return p, nil
}
