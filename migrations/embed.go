// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package migrations

import (
	"database/sql"
	"embed"
	"fmt"

	"github.com/pressly/goose/v3"
)

//go:embed *.sql
var EmbedMigrations embed.FS

// NewProvider returns a goose provider over the embedded migrations, a quiet
// provider does not log applied migrations
func NewProvider(db *sql.DB, quiet bool) (*goose.Provider, error) {
	var opts []goose.ProviderOption
	if quiet {
		opts = append(opts, goose.WithLogger(goose.NopLogger()))
	}

	provider, err := goose.NewProvider(goose.DialectPostgres, db, EmbedMigrations, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create goose provider: %w", err)
	}

	return provider, nil
}
