// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tenantflow/tenantflow/pkg/bootstrap"
	"github.com/tenantflow/tenantflow/pkg/property"
)

type tenantArgs struct {
	name         string
	email        string
	phone        string
	passwordFile string
}

var tenantFlags tenantArgs

var tenantCmd = &cobra.Command{
	Use:   "tenant",
	Short: "Manage tenants",
}

var tenantCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a tenant account",
	Long: `Create a tenant account. Without --password-file the tenant gets the default
password configured on the server and should change it on first sign in.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		req := &property.CreateTenantRequest{
			Name:  tenantFlags.name,
			Email: tenantFlags.email,
			Phone: tenantFlags.phone,
		}

		if tenantFlags.passwordFile != "" {
			password, err := readPassword(cmd, tenantFlags.passwordFile)
			if err != nil {
				return err
			}
			req.Password = password
		}

		return landlordAction(cmd, func(ctx context.Context, a *app, _ *bootstrap.User) error {
			p, err := a.api.CreateTenant(ctx, req)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Tenant %s created for %s\n", p.ID, p.Email)
			return nil
		})
	},
}

var tenantDeleteCmd = &cobra.Command{
	Use:   "delete ID",
	Short: "Delete a tenant together with their leases",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return landlordAction(cmd, func(ctx context.Context, a *app, _ *bootstrap.User) error {
			if err := a.api.DeleteTenant(ctx, args[0]); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Tenant %s deleted\n", args[0])
			return nil
		})
	},
}

func init() {
	tenantCreateCmd.Flags().StringVar(&tenantFlags.name, "name", "", "Full name")
	tenantCreateCmd.Flags().StringVar(&tenantFlags.email, "email", "", "Email address")
	tenantCreateCmd.Flags().StringVar(&tenantFlags.phone, "phone", "", "Phone number")
	tenantCreateCmd.Flags().StringVar(&tenantFlags.passwordFile, "password-file", "", "Read the initial password from a file")
	_ = tenantCreateCmd.MarkFlagRequired("name")
	_ = tenantCreateCmd.MarkFlagRequired("email")

	tenantCmd.AddCommand(tenantCreateCmd, tenantDeleteCmd)
	rootCmd.AddCommand(tenantCmd)
}
