// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package db

import (
	"context"
	"database/sql"

	sq "github.com/Masterminds/squirrel"
)

type DBClientInterface interface {
	Statement(context.Context) sq.StatementBuilderType
	BeginTx(context.Context) (context.Context, TxInterface, error)
	WithTx(context.Context, func(context.Context) error) error
	Ping(context.Context) error
	DB() *sql.DB
	Close()
}

type TxInterface interface {
	Commit() error
	Rollback() error
	sq.BaseRunner
}
