// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package dashboard

import (
	"context"

	"github.com/tenantflow/tenantflow/internal/types"
)

// DataSourceInterface serves the secondary data views load on demand
type DataSourceInterface interface {
	ListLeasesByTenant(context.Context, string, string) ([]*types.Lease, error)
	ListPayments(context.Context, []string) ([]*types.Payment, error)
	ListMaintenanceRequests(context.Context, types.MaintenanceFilter) ([]*types.MaintenanceRequest, error)
}
