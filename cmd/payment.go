// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/tenantflow/tenantflow/internal/types"
	"github.com/tenantflow/tenantflow/pkg/bootstrap"
	"github.com/tenantflow/tenantflow/pkg/property"
)

type paymentArgs struct {
	leaseID string
	amount  float64
	date    string
	method  string
}

var paymentFlags paymentArgs

var paymentCmd = &cobra.Command{
	Use:   "payment",
	Short: "Record and review rent payments",
}

var paymentCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Record a payment on one of your leases",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		date, err := parseDate("date", paymentFlags.date)
		if err != nil {
			return err
		}
		if date.IsZero() {
			date = time.Now().UTC().Truncate(24 * time.Hour)
		}

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

		p, err := a.api.CreatePayment(ctx, &property.PaymentRequest{
			LeaseID:     paymentFlags.leaseID,
			Amount:      paymentFlags.amount,
			PaymentDate: date,
			Method:      paymentFlags.method,
		})
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Payment %s recorded, waiting for approval\n", p.ID)
		return nil
	},
}

func paymentStatusCmd(use, status string) *cobra.Command {
	return &cobra.Command{
		Use:   use + " ID",
		Short: fmt.Sprintf("Mark a payment %s", status),
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return landlordAction(cmd, func(ctx context.Context, a *app, _ *bootstrap.User) error {
				p, err := a.api.UpdatePaymentStatus(ctx, args[0], status)
				if err != nil {
					return err
				}

				fmt.Fprintf(cmd.OutOrStdout(), "Payment %s %s\n", p.ID, p.Status)
				return nil
			})
		},
	}
}

func init() {
	paymentCreateCmd.Flags().StringVar(&paymentFlags.leaseID, "lease", "", "Lease ID")
	paymentCreateCmd.Flags().Float64Var(&paymentFlags.amount, "amount", 0, "Amount paid")
	paymentCreateCmd.Flags().StringVar(&paymentFlags.date, "date", "", "Payment date, YYYY-MM-DD, defaults to today")
	paymentCreateCmd.Flags().StringVar(&paymentFlags.method, "method", types.PaymentMethodCash, "Payment method")
	_ = paymentCreateCmd.MarkFlagRequired("lease")
	_ = paymentCreateCmd.MarkFlagRequired("amount")

	paymentCmd.AddCommand(
		paymentCreateCmd,
		paymentStatusCmd("approve", types.PaymentStatusApproved),
		paymentStatusCmd("reject", types.PaymentStatusRejected),
	)
	rootCmd.AddCommand(paymentCmd)
}
