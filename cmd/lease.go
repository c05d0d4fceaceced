// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/tenantflow/tenantflow/internal/types"
	"github.com/tenantflow/tenantflow/pkg/bootstrap"
	"github.com/tenantflow/tenantflow/pkg/property"
)

type leaseArgs struct {
	houseID  string
	tenantID string
	unit     string
	rent     float64
	deposit  float64
	start    string
	end      string
	status   string
}

var leaseFlags leaseArgs

var leaseCmd = &cobra.Command{
	Use:   "lease",
	Short: "Manage leases",
}

var leaseCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Lease a house, room or unit to a tenant",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		req, err := leaseFlags.request()
		if err != nil {
			return err
		}

		return landlordAction(cmd, func(ctx context.Context, a *app, _ *bootstrap.User) error {
			l, err := a.api.CreateLease(ctx, req)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Lease %s created\n", l.ID)
			return nil
		})
	},
}

var leaseUpdateCmd = &cobra.Command{
	Use:   "update ID",
	Short: "Replace the terms of a lease",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		req, err := leaseFlags.request()
		if err != nil {
			return err
		}

		return landlordAction(cmd, func(ctx context.Context, a *app, _ *bootstrap.User) error {
			l, err := a.api.UpdateLease(ctx, args[0], req)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Lease %s updated\n", l.ID)
			return nil
		})
	},
}

var leaseDeleteCmd = &cobra.Command{
	Use:   "delete [ID]",
	Short: "Delete a lease, or every lease of a tenant or house",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		filter := types.LeaseFilter{TenantID: leaseFlags.tenantID, HouseID: leaseFlags.houseID}
		if len(args) == 0 && filter.Empty() {
			return errors.New("give a lease ID, --tenant or --house")
		}

		return landlordAction(cmd, func(ctx context.Context, a *app, _ *bootstrap.User) error {
			if len(args) == 1 {
				if err := a.api.DeleteLease(ctx, args[0]); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Lease %s deleted\n", args[0])
				return nil
			}

			n, err := a.api.DeleteLeases(ctx, filter)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%d leases deleted\n", n)
			return nil
		})
	},
}

func parseDate(name, v string) (time.Time, error) {
	if v == "" {
		return time.Time{}, nil
	}

	t, err := time.Parse(time.DateOnly, v)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid --%s, expected YYYY-MM-DD: %w", name, err)
	}

	return t, nil
}

func (f *leaseArgs) request() (*property.LeaseRequest, error) {
	start, err := parseDate("start", f.start)
	if err != nil {
		return nil, err
	}

	end, err := parseDate("end", f.end)
	if err != nil {
		return nil, err
	}

	return &property.LeaseRequest{
		HouseID:        f.houseID,
		TenantID:       f.tenantID,
		RoomOrUnitID:   f.unit,
		RentAmount:     f.rent,
		Deposit:        f.deposit,
		LeaseStartDate: start,
		LeaseEndDate:   end,
		Status:         f.status,
	}, nil
}

func init() {
	for _, c := range []*cobra.Command{leaseCreateCmd, leaseUpdateCmd} {
		c.Flags().StringVar(&leaseFlags.houseID, "house", "", "House ID")
		c.Flags().StringVar(&leaseFlags.tenantID, "tenant", "", "Tenant ID")
		c.Flags().StringVar(&leaseFlags.unit, "unit", "", "Room or unit")
		c.Flags().Float64Var(&leaseFlags.rent, "rent", 0, "Monthly rent")
		c.Flags().Float64Var(&leaseFlags.deposit, "deposit", 0, "Deposit")
		c.Flags().StringVar(&leaseFlags.start, "start", "", "Start date, YYYY-MM-DD")
		c.Flags().StringVar(&leaseFlags.end, "end", "", "End date, YYYY-MM-DD")
		c.Flags().StringVar(&leaseFlags.status, "status", types.LeaseStatusActive, "pending, active, ended or cancelled")
		_ = c.MarkFlagRequired("house")
		_ = c.MarkFlagRequired("tenant")
	}

	leaseDeleteCmd.Flags().StringVar(&leaseFlags.tenantID, "tenant", "", "Delete every lease of this tenant")
	leaseDeleteCmd.Flags().StringVar(&leaseFlags.houseID, "house", "", "Delete every lease of this house")

	leaseCmd.AddCommand(leaseCreateCmd, leaseUpdateCmd, leaseDeleteCmd)
	rootCmd.AddCommand(leaseCmd)
}
