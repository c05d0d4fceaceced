// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tenantflow/tenantflow/internal/types"
	"github.com/tenantflow/tenantflow/pkg/bootstrap"
	"github.com/tenantflow/tenantflow/pkg/property"
)

type houseArgs struct {
	name    string
	address string
	kind    string
	rooms   int
	units   []string
	notes   string
}

var houseFlags houseArgs

var houseCmd = &cobra.Command{
	Use:   "house",
	Short: "Manage houses",
}

var houseCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Add a house",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return landlordAction(cmd, func(ctx context.Context, a *app, _ *bootstrap.User) error {
			h, err := a.api.CreateHouse(ctx, houseFlags.request(cmd))
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "House %s added\n", h.ID)
			return nil
		})
	},
}

var houseUpdateCmd = &cobra.Command{
	Use:   "update ID",
	Short: "Replace the details of a house",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return landlordAction(cmd, func(ctx context.Context, a *app, _ *bootstrap.User) error {
			h, err := a.api.UpdateHouse(ctx, args[0], houseFlags.request(cmd))
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "House %s updated\n", h.ID)
			return nil
		})
	},
}

var houseDeleteCmd = &cobra.Command{
	Use:   "delete ID",
	Short: "Delete a house and its leases",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return landlordAction(cmd, func(ctx context.Context, a *app, _ *bootstrap.User) error {
			if err := a.api.DeleteHouse(ctx, args[0]); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "House %s deleted\n", args[0])
			return nil
		})
	},
}

// request builds the house from the flags, a multi unit house gets one unit
// per --unit NUMBER=SIZE
func (f *houseArgs) request(cmd *cobra.Command) *property.HouseRequest {
	req := &property.HouseRequest{
		Name:    f.name,
		Address: f.address,
		Type:    f.kind,
		Notes:   f.notes,
	}

	if f.kind == types.HouseTypeMultiUnit {
		req.Units = make([]property.UnitRequest, 0, len(f.units))
		for _, u := range f.units {
			number, size, _ := strings.Cut(u, "=")
			req.Units = append(req.Units, property.UnitRequest{Number: number, Size: size})
		}
		return req
	}

	if cmd.Flags().Changed("rooms") {
		rooms := f.rooms
		req.Rooms = &rooms
	}

	return req
}

func init() {
	for _, c := range []*cobra.Command{houseCreateCmd, houseUpdateCmd} {
		c.Flags().StringVar(&houseFlags.name, "name", "", "House name")
		c.Flags().StringVar(&houseFlags.address, "address", "", "Address")
		c.Flags().StringVar(&houseFlags.kind, "type", types.HouseTypeShared, fmt.Sprintf("One of %q", types.HouseTypes))
		c.Flags().IntVar(&houseFlags.rooms, "rooms", 1, "Number of rooms")
		c.Flags().StringSliceVar(&houseFlags.units, "unit", nil, "Unit of a multi-unit house as NUMBER=SIZE, repeatable")
		c.Flags().StringVar(&houseFlags.notes, "notes", "", "Notes")
		_ = c.MarkFlagRequired("name")
		_ = c.MarkFlagRequired("address")
	}

	houseCmd.AddCommand(houseCreateCmd, houseUpdateCmd, houseDeleteCmd)
	rootCmd.AddCommand(houseCmd)
}
