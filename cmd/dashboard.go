// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/tenantflow/tenantflow/pkg/bootstrap"
	"github.com/tenantflow/tenantflow/pkg/dashboard"
)

type dashboardArgs struct {
	tab   string
	watch bool
}

var dashboardFlags dashboardArgs

var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Show the dashboard of the signed in user",
	Long: `Show the dashboard of the signed in user.

Landlords pick a tab with --tab, tenants always see their leases and maintenance requests.
With --watch the dashboard is rendered again on every sign in and sign out, including
those made from another terminal, until interrupted.`,
	RunE: runDashboard,
}

// render writes the dashboard routed for s, failures of the view's own
// fetches are returned after rendering what was loaded
func render(ctx context.Context, a *app, s bootstrap.State, tab dashboard.Tab) error {
	view := bootstrap.Route(s)

	switch view.Phase {
	case bootstrap.PhaseLandlordDashboard:
		lv, err := a.loader.Landlord(ctx, &s.Bundle, tab)
		if lv != nil {
			a.renderer.Landlord(s.User.Profile, lv)
		}
		return err
	case bootstrap.PhaseTenantDashboard:
		tv, err := a.loader.Tenant(ctx, s.User.Profile.ID)
		a.renderer.Tenant(s.User.Profile, tv)
		return err
	}

	a.renderer.View(view)
	return nil
}

func runDashboard(cmd *cobra.Command, _ []string) error {
	tab := dashboard.Tab(dashboardFlags.tab)
	if !tab.Valid() {
		return fmt.Errorf("unknown tab %q, expected one of %v", tab, dashboard.Tabs)
	}

	a, err := newApp(cmd)
	if err != nil {
		return err
	}

	if !dashboardFlags.watch {
		ctx, cancel := a.context(cmd)
		defer cancel()

		w, s, err := a.bootstrap(ctx)
		if err != nil {
			return err
		}
		defer w.Stop()

		return render(ctx, a, s, tab)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return watchDashboard(ctx, cmd, a, tab)
}

func watchDashboard(ctx context.Context, cmd *cobra.Command, a *app, tab dashboard.Tab) error {
	w := bootstrap.NewWatcher(a.provider, a.api, a.tracer, a.monitor, a.logger)
	if err := w.Start(ctx); err != nil {
		return err
	}
	defer w.Stop()

	go func() {
		if err := a.provider.Watch(ctx); err != nil {
			a.logger.Errorf("session file watch stopped: %v", err)
		}
	}()

	var last bootstrap.View

	for {
		changed := w.Changed()
		s := w.State()
		view := bootstrap.Route(s)

		// placeholders are written once per phase, settled views on every change
		if view.Settled() || view != last {
			fmt.Fprintln(cmd.OutOrStdout())
			if err := render(ctx, a, s, tab); err != nil {
				fmt.Fprintln(cmd.ErrOrStderr(), err)
			}
		}
		last = view

		select {
		case <-ctx.Done():
			return nil
		case <-changed:
		}
	}
}

func init() {
	dashboardCmd.Flags().StringVar(&dashboardFlags.tab, "tab", string(dashboard.TabHouses), fmt.Sprintf("Landlord tab, one of %v", dashboard.Tabs))
	dashboardCmd.Flags().BoolVar(&dashboardFlags.watch, "watch", false, "Keep rendering on every session change")

	rootCmd.AddCommand(dashboardCmd)
}
