// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"github.com/spf13/cobra"

	"github.com/tenantflow/tenantflow/migrations"
)

// migrateCmd performs DB migrations
var migrateCmd = &cobra.Command{
	Use:   "migrate [up|down [version]|status|check]",
	Short: "Run database migrations",
	Long:  `Apply, roll back or inspect the TenantFlow schema migrations, the DSN defaults to the DSN environment variable`,
	Args:  migrateArgs,
	RunE:  runMigrate,
}

func init() {
	migrateCmd.Flags().String("dsn", "", "PostgreSQL DSN connection string")
	migrateCmd.Flags().StringP("format", "f", "text", "Output format (text or json)")

	rootCmd.AddCommand(migrateCmd)
}

func migrateArgs(cmd *cobra.Command, args []string) error {
	if err := cobra.RangeArgs(0, 2)(cmd, args); err != nil {
		return err
	}

	if len(args) == 0 {
		return nil
	}

	switch args[0] {
	case "up", "down", "status", "check":
	default:
		return fmt.Errorf("invalid first argument: %q", args[0])
	}

	if len(args) == 2 {
		if args[0] != "down" {
			return fmt.Errorf("invalid argument combination: %q", args)
		}

		if version, err := strconv.Atoi(args[1]); err != nil || version < 0 {
			return fmt.Errorf("invalid version number: %q", args[1])
		}
	}

	return nil
}

func runMigrate(cmd *cobra.Command, args []string) error {
	command := "up"
	if len(args) > 0 {
		command = args[0]
	}

	version := -1
	if len(args) > 1 {
		version, _ = strconv.Atoi(args[1])
	}

	dsn, _ := cmd.Flags().GetString("dsn")
	if dsn == "" {
		dsn = os.Getenv("DSN")
	}
	if dsn == "" {
		return fmt.Errorf("a DSN is required, use --dsn or the DSN environment variable")
	}

	format, _ := cmd.Flags().GetString("format")
	if format != "text" && format != "json" {
		return fmt.Errorf("unknown output format %q", format)
	}

	cfg, err := pgx.ParseConfig(dsn)
	if err != nil {
		return fmt.Errorf("DSN validation failed: %v", err)
	}

	db := stdlib.OpenDB(*cfg)
	defer db.Close()

	ctx := cmd.Context()
	if err := db.PingContext(ctx); err != nil {
		return fmt.Errorf("DB connection failed: %v", err)
	}

	provider, err := migrations.NewProvider(db, format == "json")
	if err != nil {
		return err
	}

	m := &migrator{provider: provider, json: format == "json", out: cmd.OutOrStdout()}

	switch command {
	case "down":
		return m.down(ctx, version)
	case "status":
		return m.status(ctx)
	case "check":
		return m.check(ctx)
	}

	return m.up(ctx)
}

type migrator struct {
	provider *goose.Provider
	json     bool
	out      io.Writer
}

func (m *migrator) results(results []*goose.MigrationResult) error {
	if results == nil {
		results = []*goose.MigrationResult{}
	}

	if m.json {
		return json.NewEncoder(m.out).Encode(map[string]interface{}{"applied": results})
	}

	for _, r := range results {
		fmt.Fprintf(m.out, "%-6s %s (%s)\n", r.Direction, r.Source.Path, r.Duration)
	}
	return nil
}

func (m *migrator) up(ctx context.Context) error {
	results, err := m.provider.Up(ctx)
	if err != nil {
		return err
	}

	return m.results(results)
}

func (m *migrator) down(ctx context.Context, version int) error {
	if version == -1 {
		result, err := m.provider.Down(ctx)
		if err != nil {
			return err
		}
		return m.results([]*goose.MigrationResult{result})
	}

	results, err := m.provider.DownTo(ctx, int64(version))
	if err != nil {
		return err
	}

	return m.results(results)
}

func (m *migrator) status(ctx context.Context) error {
	statuses, err := m.provider.Status(ctx)
	if err != nil {
		return err
	}

	if m.json {
		return json.NewEncoder(m.out).Encode(statuses)
	}

	fmt.Fprintln(m.out, "    Applied At                  Migration")
	fmt.Fprintln(m.out, "    =======================================")
	for _, s := range statuses {
		appliedAt := "Pending"
		if s.State == goose.StateApplied {
			appliedAt = s.AppliedAt.Format(time.RFC3339)
		}
		fmt.Fprintf(m.out, "    %-24s -- %s\n", appliedAt, s.Source.Path)
	}
	return nil
}

func (m *migrator) check(ctx context.Context) error {
	pending, err := m.provider.HasPending(ctx)
	if err != nil {
		return fmt.Errorf("failed to check pending migrations: %w", err)
	}

	current, verr := m.provider.GetDBVersion(ctx)

	if m.json {
		status := "ok"
		switch {
		case pending:
			status = "pending"
		case verr != nil:
			status = "unknown"
		}
		return json.NewEncoder(m.out).Encode(map[string]interface{}{
			"status":  status,
			"version": current,
		})
	}

	if pending {
		return fmt.Errorf("migrations are pending: current version %d", current)
	}

	fmt.Fprintf(m.out, "Database is up to date (version %d)\n", current)
	return nil
}
