// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"os"
	"time"

	"github.com/spf13/cobra"
)

// flags shared by the client commands, they override the TENANTFLOW_*
// environment
var clientFlags struct {
	apiURL      string
	kratosURL   string
	sessionFile string
	logLevel    string
	timeout     time.Duration
	plain       bool
}

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:          "tenantflow",
	Short:        "TenantFlow property management",
	Long:         `TenantFlow lets landlords manage houses, tenants, leases, payments and maintenance requests, and tenants follow their leases.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	flags := rootCmd.PersistentFlags()

	flags.StringVar(&clientFlags.apiURL, "api-url", "", "TenantFlow API URL (TENANTFLOW_API_URL)")
	flags.StringVar(&clientFlags.kratosURL, "kratos-url", "", "Kratos public URL (TENANTFLOW_KRATOS_PUBLIC_URL)")
	flags.StringVar(&clientFlags.sessionFile, "session-file", "", "Session file, defaults to the user config directory (TENANTFLOW_SESSION_FILE)")
	flags.StringVar(&clientFlags.logLevel, "log-level", "", "Log level (TENANTFLOW_LOG_LEVEL)")
	flags.DurationVar(&clientFlags.timeout, "timeout", 0, "Timeout of a command (TENANTFLOW_TIMEOUT)")
	flags.BoolVar(&clientFlags.plain, "plain", false, "Disable colors")
}
