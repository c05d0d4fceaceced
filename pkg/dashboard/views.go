// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package dashboard

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/tenantflow/tenantflow/internal/logging"
	"github.com/tenantflow/tenantflow/internal/monitoring"
	"github.com/tenantflow/tenantflow/internal/tracing"
	"github.com/tenantflow/tenantflow/internal/types"
	"github.com/tenantflow/tenantflow/pkg/bootstrap"
)

// Tab is a section of the landlord dashboard
type Tab string

const (
	TabHouses      Tab = "houses"
	TabTenants     Tab = "tenants"
	TabLeases      Tab = "leases"
	TabPayments    Tab = "payments"
	TabMaintenance Tab = "maintenance"
)

var Tabs = []Tab{TabHouses, TabTenants, TabLeases, TabPayments, TabMaintenance}

func (t Tab) Valid() bool {
	for _, tab := range Tabs {
		if t == tab {
			return true
		}
	}

	return false
}

// TenantView is what a tenant sees, either list may be partial when its
// fetch failed
type TenantView struct {
	Leases   []*types.Lease
	Requests []*types.MaintenanceRequest
}

// LandlordView is the selected tab of the landlord dashboard
type LandlordView struct {
	Tab      Tab
	Bundle   *bootstrap.Bundle
	Tenants  []*types.Profile
	Payments []*types.Payment
	Requests []*types.MaintenanceRequest
}

type Loader struct {
	data DataSourceInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

// Tenant loads the active leases and maintenance requests of tenantID
// concurrently, the errors of both fetches are returned together
func (l *Loader) Tenant(ctx context.Context, tenantID string) (*TenantView, error) {
	ctx, span := l.tracer.Start(ctx, "dashboard.Loader.Tenant")
	defer span.End()

	view := new(TenantView)

	var g errgroup.Group
	var leasesErr, reqsErr error

	g.Go(func() error {
		leases, err := l.data.ListLeasesByTenant(ctx, tenantID, types.LeaseStatusActive)
		if err != nil {
			leasesErr = fmt.Errorf("could not load your lease details: %w", err)
			return leasesErr
		}
		view.Leases = leases
		return nil
	})

	g.Go(func() error {
		requests, err := l.data.ListMaintenanceRequests(ctx, types.MaintenanceFilter{TenantID: tenantID})
		if err != nil {
			reqsErr = fmt.Errorf("could not load your maintenance requests: %w", err)
			return reqsErr
		}
		view.Requests = requests
		return nil
	})

	if g.Wait() != nil {
		err := errors.Join(leasesErr, reqsErr)
		l.logger.Errorf("failed to load tenant dashboard of %s: %v", tenantID, err)
		return view, err
	}

	return view, nil
}

// Landlord builds the tab of the landlord dashboard out of the prefetched
// bundle, payments and maintenance requests are fetched for that tab only
func (l *Loader) Landlord(ctx context.Context, bundle *bootstrap.Bundle, tab Tab) (*LandlordView, error) {
	ctx, span := l.tracer.Start(ctx, "dashboard.Loader.Landlord")
	defer span.End()

	if bundle == nil {
		bundle = new(bootstrap.Bundle)
	}

	view := &LandlordView{Tab: tab, Bundle: bundle}

	var err error

	switch tab {
	case TabTenants:
		view.Tenants = Tenants(bundle.Profiles)
	case TabPayments:
		view.Payments, err = l.data.ListPayments(ctx, LeaseIDs(bundle.Leases))
		if err != nil {
			l.logger.Errorf("failed to fetch payments: %v", err)
			err = fmt.Errorf("could not load payments: %w", err)
		}
	case TabMaintenance:
		view.Requests, err = l.data.ListMaintenanceRequests(ctx, types.MaintenanceFilter{HouseIDs: HouseIDs(bundle.Leases)})
		if err != nil {
			l.logger.Errorf("failed to fetch maintenance requests: %v", err)
			err = fmt.Errorf("could not load maintenance requests: %w", err)
		}
	case TabHouses, TabLeases:
	default:
		return nil, fmt.Errorf("unknown tab %q", tab)
	}

	return view, err
}

// Tenants keeps the profiles carrying the tenant role
func Tenants(profiles []*types.Profile) []*types.Profile {
	tenants := make([]*types.Profile, 0, len(profiles))
	for _, p := range profiles {
		if p.HasRole(types.RoleTenant) {
			tenants = append(tenants, p)
		}
	}

	return tenants
}

func LeaseIDs(leases []*types.Lease) []string {
	ids := make([]string, 0, len(leases))
	for _, lease := range leases {
		ids = append(ids, lease.ID)
	}

	return ids
}

// HouseIDs returns the distinct houses of leases in first seen order
func HouseIDs(leases []*types.Lease) []string {
	seen := make(map[string]struct{}, len(leases))
	ids := make([]string, 0, len(leases))

	for _, lease := range leases {
		if lease.HouseID == "" {
			continue
		}
		if _, ok := seen[lease.HouseID]; ok {
			continue
		}
		seen[lease.HouseID] = struct{}{}
		ids = append(ids, lease.HouseID)
	}

	return ids
}

func NewLoader(data DataSourceInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Loader {
	l := new(Loader)

	l.data = data
	l.tracer = tracer
	l.monitor = monitor
	l.logger = logger

	return l
}
