// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tenantflow/tenantflow/pkg/bootstrap"
	"github.com/tenantflow/tenantflow/pkg/property"
)

type profileArgs struct {
	name  string
	phone string
}

var profileFlags profileArgs

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Update your profile",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		req := new(property.UpdateProfileRequest)
		if cmd.Flags().Changed("name") {
			req.Name = &profileFlags.name
		}
		if cmd.Flags().Changed("phone") {
			req.Phone = &profileFlags.phone
		}
		if req.Name == nil && req.Phone == nil {
			return errors.New("nothing to update, give --name or --phone")
		}

		return userAction(cmd, func(ctx context.Context, a *app, u *bootstrap.User) error {
			p, err := a.api.UpdateProfile(ctx, u.Profile.ID, req)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Profile of %s updated\n", p.Email)
			return nil
		})
	},
}

func init() {
	profileCmd.Flags().StringVar(&profileFlags.name, "name", "", "Full name")
	profileCmd.Flags().StringVar(&profileFlags.phone, "phone", "", "Phone number")

	rootCmd.AddCommand(profileCmd)
}
