// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tenantflow/tenantflow/internal/types"
	"github.com/tenantflow/tenantflow/pkg/bootstrap"
	"github.com/tenantflow/tenantflow/pkg/property"
)

type maintenanceArgs struct {
	leaseID     string
	description string
	priority    string
	notes       string
}

var maintenanceFlags maintenanceArgs

var maintenanceCmd = &cobra.Command{
	Use:   "maintenance",
	Short: "File and follow maintenance requests",
}

var maintenanceCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Submit a maintenance request for one of your active leases",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		a, err := newApp(cmd)
		if err != nil {
			return err
		}

		ctx, cancel := a.context(cmd)
		defer cancel()

		w, _, err := a.user(ctx, bootstrap.PhaseTenantDashboard)
		if err != nil {
			return err
		}
		defer w.Stop()

		m, err := a.api.CreateMaintenanceRequest(ctx, &property.MaintenanceRequestRequest{
			LeaseID:     maintenanceFlags.leaseID,
			Description: maintenanceFlags.description,
			Priority:    maintenanceFlags.priority,
		})
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Maintenance request %s submitted successfully!\n", m.ID)
		return nil
	},
}

var maintenanceStatusCmd = &cobra.Command{
	Use:   "status ID STATUS",
	Short: "Move a maintenance request to Open, In Progress, Resolved or Closed",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		var notes *string
		if cmd.Flags().Changed("notes") {
			notes = &maintenanceFlags.notes
		}

		return landlordAction(cmd, func(ctx context.Context, a *app, _ *bootstrap.User) error {
			m, err := a.api.UpdateMaintenanceStatus(ctx, args[0], args[1], notes)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Maintenance request %s is %s\n", m.ID, m.Status)
			return nil
		})
	},
}

func init() {
	maintenanceCreateCmd.Flags().StringVar(&maintenanceFlags.leaseID, "lease", "", "Lease ID")
	maintenanceCreateCmd.Flags().StringVar(&maintenanceFlags.description, "description", "", "What needs fixing")
	maintenanceCreateCmd.Flags().StringVar(&maintenanceFlags.priority, "priority", types.MaintenancePriorityMedium, "Low, Medium or High")
	_ = maintenanceCreateCmd.MarkFlagRequired("lease")
	_ = maintenanceCreateCmd.MarkFlagRequired("description")

	maintenanceStatusCmd.Flags().StringVar(&maintenanceFlags.notes, "notes", "", "Resolution notes")

	maintenanceCmd.AddCommand(maintenanceCreateCmd, maintenanceStatusCmd)
	rootCmd.AddCommand(maintenanceCmd)
}
