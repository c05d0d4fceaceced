// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package bootstrap

import (
	"github.com/tenantflow/tenantflow/internal/types"
)

type Phase string

const (
	PhaseInitializing      Phase = "initializing"
	PhaseLoggedOut         Phase = "logged-out"
	PhaseLandlordDashboard Phase = "landlord-dashboard"
	PhaseTenantDashboard   Phase = "tenant-dashboard"
	PhaseRedirecting       Phase = "redirecting"
)

const (
	PlaceholderApplication = "Loading Application..."
	PlaceholderDashboard   = "Initializing Dashboard..."
)

// View is what gets rendered for a state, Placeholder is set instead of a
// page while loading
type View struct {
	Phase       Phase
	Placeholder string
}

// Settled is true once the view no longer waits on a fetch
func (v View) Settled() bool {
	return v.Phase != PhaseInitializing && v.Phase != PhaseRedirecting
}

// Route derives the view of s. A dashboard is never shown while loading, so a
// partially prefetched bundle cannot be rendered.
func Route(s State) View {
	switch {
	case s.Loading && s.User == nil:
		return View{Phase: PhaseInitializing, Placeholder: PlaceholderApplication}
	case s.Page == PageDashboard && (s.User == nil || s.User.Profile == nil):
		return View{Phase: PhaseRedirecting}
	case s.Loading && s.Page == PageDashboard:
		return View{Phase: PhaseInitializing, Placeholder: PlaceholderDashboard}
	case s.Loading:
		return View{Phase: PhaseInitializing, Placeholder: PlaceholderApplication}
	case s.Page != PageDashboard:
		return View{Phase: PhaseLoggedOut}
	case s.User.Profile.HasRole(types.RoleLandlord):
		return View{Phase: PhaseLandlordDashboard}
	case s.User.Profile.HasRole(types.RoleTenant):
		return View{Phase: PhaseTenantDashboard}
	}

	return View{Phase: PhaseRedirecting}
}
