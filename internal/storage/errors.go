// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
)

// Sentinel errors for storage operations.
var (
	ErrNotFound            = errors.New("resource not found")
	ErrDuplicateKey        = errors.New("duplicate key violation")
	ErrForeignKeyViolation = errors.New("foreign key violation")
	ErrActiveLeaseExists   = errors.New("tenant already has an active lease")
)

// PostgreSQL error codes
const (
	pgErrCodeUniqueViolation     = "23505"
	pgErrCodeForeignKeyViolation = "23503"
	pgErrCodeCheckViolation      = "23514"
)

const activeLeaseConstraint = "leases_one_active_per_tenant_idx"

func pgError(err error) (*pgconn.PgError, bool) {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr, true
	}
	return nil, false
}

// IsDuplicateKeyError checks if the error is a PostgreSQL unique constraint violation.
func IsDuplicateKeyError(err error) bool {
	pgErr, ok := pgError(err)
	return ok && pgErr.Code == pgErrCodeUniqueViolation
}

// IsForeignKeyViolation checks if the error is a PostgreSQL foreign key violation.
func IsForeignKeyViolation(err error) bool {
	pgErr, ok := pgError(err)
	return ok && pgErr.Code == pgErrCodeForeignKeyViolation
}

// IsCheckViolation checks if the error is a PostgreSQL check constraint violation.
func IsCheckViolation(err error) bool {
	pgErr, ok := pgError(err)
	return ok && pgErr.Code == pgErrCodeCheckViolation
}

func isActiveLeaseViolation(err error) bool {
	pgErr, ok := pgError(err)
	return ok && pgErr.Code == pgErrCodeUniqueViolation && pgErr.ConstraintName == activeLeaseConstraint
}

// wrapWriteError maps constraint violations raised by an insert or update
// to the storage sentinels
func wrapWriteError(err error, op string) error {
	switch {
	case isActiveLeaseViolation(err):
		return fmt.Errorf("%s: %w", op, ErrActiveLeaseExists)
	case IsDuplicateKeyError(err):
		return fmt.Errorf("%s: %w", op, ErrDuplicateKey)
	case IsForeignKeyViolation(err):
		return fmt.Errorf("%s: %w", op, ErrForeignKeyViolation)
	default:
		return fmt.Errorf("%s: %w", op, err)
	}
}
