// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/kelseyhightower/envconfig"
	"github.com/spf13/cobra"

	"github.com/tenantflow/tenantflow/internal/config"
	"github.com/tenantflow/tenantflow/internal/logging"
	"github.com/tenantflow/tenantflow/internal/monitoring"
	"github.com/tenantflow/tenantflow/internal/tracing"
	"github.com/tenantflow/tenantflow/pkg/bootstrap"
	"github.com/tenantflow/tenantflow/pkg/client"
	"github.com/tenantflow/tenantflow/pkg/dashboard"
	"github.com/tenantflow/tenantflow/pkg/session"
)

var errSignedOut = errors.New("not signed in, run `tenantflow login` first")

// app is the wiring shared by the client commands
type app struct {
	specs *config.ClientSpec

	provider *session.Provider
	api      *client.Client
	loader   *dashboard.Loader
	renderer *dashboard.Renderer

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func clientSpecs(cmd *cobra.Command) (*config.ClientSpec, error) {
	specs := new(config.ClientSpec)
	if err := envconfig.Process("tenantflow", specs); err != nil {
		return nil, fmt.Errorf("issues with environment sourcing: %s", err)
	}

	flags := cmd.Flags()
	if flags.Changed("api-url") {
		specs.APIURL = clientFlags.apiURL
	}
	if flags.Changed("kratos-url") {
		specs.KratosPublicURL = clientFlags.kratosURL
	}
	if flags.Changed("session-file") {
		specs.SessionFile = clientFlags.sessionFile
	}
	if flags.Changed("log-level") {
		specs.LogLevel = clientFlags.logLevel
	}
	if flags.Changed("timeout") {
		specs.Timeout = clientFlags.timeout
	}

	if specs.SessionFile == "" {
		path, err := session.DefaultPath()
		if err != nil {
			return nil, fmt.Errorf("failed to locate the session file: %w", err)
		}
		specs.SessionFile = path
	}

	return specs, nil
}

func newApp(cmd *cobra.Command) (*app, error) {
	specs, err := clientSpecs(cmd)
	if err != nil {
		return nil, err
	}

	logger := logging.NewLogger(specs.LogLevel)
	monitor := monitoring.NewNoopMonitor("tenantflow", logger)
	tracer := tracing.NewNoopTracer()

	provider, err := session.NewProvider(specs.KratosPublicURL, session.NewFileStore(specs.SessionFile), tracer, monitor, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to load the session: %w", err)
	}

	api, err := client.NewClient(specs.APIURL, tracer, monitor, logger, client.WithBearerToken(provider.Token))
	if err != nil {
		return nil, err
	}

	return &app{
		specs:    specs,
		provider: provider,
		api:      api,
		loader:   dashboard.NewLoader(api, tracer, monitor, logger),
		renderer: dashboard.NewRenderer(cmd.OutOrStdout(), clientFlags.plain),
		tracer:   tracer,
		monitor:  monitor,
		logger:   logger,
	}, nil
}

// context bounds a command by the configured timeout, zero means no bound
func (a *app) context(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	if a.specs.Timeout <= 0 {
		return context.WithCancel(ctx)
	}

	return context.WithTimeout(ctx, a.specs.Timeout)
}

// bootstrap starts a watcher and waits until the signed in user is routed,
// the caller stops the watcher
func (a *app) bootstrap(ctx context.Context) (*bootstrap.Watcher, bootstrap.State, error) {
	w := bootstrap.NewWatcher(a.provider, a.api, a.tracer, a.monitor, a.logger)

	if err := w.Start(ctx); err != nil {
		return nil, bootstrap.State{}, err
	}

	s, err := w.WaitSettled(ctx)
	if err != nil {
		_ = w.Stop()
		return nil, s, fmt.Errorf("gave up waiting for the session: %w", err)
	}

	return w, s, nil
}

// user returns the routed user, it fails when nobody is signed in or the
// user is routed to none of phases
func (a *app) user(ctx context.Context, phases ...bootstrap.Phase) (*bootstrap.Watcher, *bootstrap.User, error) {
	w, s, err := a.bootstrap(ctx)
	if err != nil {
		return nil, nil, err
	}

	view := bootstrap.Route(s)
	if view.Phase == bootstrap.PhaseLoggedOut {
		_ = w.Stop()
		return nil, nil, errSignedOut
	}

	if len(phases) == 0 || slices.Contains(phases, view.Phase) {
		return w, s.User, nil
	}

	_ = w.Stop()
	return nil, nil, fmt.Errorf("this command is not available to %s", s.User.Session.Email)
}

// landlordAction runs f for the signed in landlord and reloads the landlord
// data afterwards
func landlordAction(cmd *cobra.Command, f func(context.Context, *app, *bootstrap.User) error) error {
	a, err := newApp(cmd)
	if err != nil {
		return err
	}

	ctx, cancel := a.context(cmd)
	defer cancel()

	w, user, err := a.user(ctx, bootstrap.PhaseLandlordDashboard)
	if err != nil {
		return err
	}
	defer w.Stop()

	if err := f(ctx, a, user); err != nil {
		return err
	}

	if err := w.Refresh(ctx); err != nil {
		return err
	}

	b := w.State().Bundle
	fmt.Fprintf(cmd.ErrOrStderr(), "%d houses, %d leases, %d profiles\n", len(b.Houses), len(b.Leases), len(b.Profiles))

	return nil
}

// userAction runs f for any signed in user
func userAction(cmd *cobra.Command, f func(context.Context, *app, *bootstrap.User) error) error {
	a, err := newApp(cmd)
	if err != nil {
		return err
	}

	ctx, cancel := a.context(cmd)
	defer cancel()

	w, user, err := a.user(ctx)
	if err != nil {
		return err
	}
	defer w.Stop()

	return f(ctx, a, user)
}
