// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package bootstrap

import (
	"errors"
	"testing"

	"github.com/tenantflow/tenantflow/internal/types"
)

func profile(id string, role *types.Role) *types.Profile {
	return &types.Profile{ID: id, Name: id, Role: role}
}

func role(r types.Role) *types.Role {
	return &r
}

// landlordEpoch is the epoch of landlordState, the first user resolved after
// InitialState
const landlordEpoch = 1

func landlordState() State {
	s := Reduce(InitialState(), ProfileResolved{Session: &Session{UserID: "u2"}, Profile: profile("u2", role(types.RoleLandlord))})
	return Reduce(s, PrefetchCompleted{
		LandlordID: "u2",
		Epoch:      s.Epoch,
		Bundle: Bundle{
			Houses:   []*types.House{{ID: "h1"}},
			Leases:   []*types.Lease{{ID: "l1"}},
			Profiles: []*types.Profile{{ID: "t1"}},
		},
	})
}

func TestReduce(t *testing.T) {
	testCases := []struct {
		name   string
		events []Event
		check  func(*testing.T, State)
	}{
		{
			name:   "null session after a landlord session clears everything",
			events: []Event{SessionCleared{}},
			check: func(t *testing.T, s State) {
				if s.Page != PageLogin || s.User != nil || !s.Bundle.Empty() || s.Loading {
					t.Errorf("expected logged out state, got %+v", s)
				}
			},
		},
		{
			name:   "explicit sign out clears everything",
			events: []Event{SignedOut{}},
			check: func(t *testing.T, s State) {
				if s.Page != PageLogin || s.User != nil || !s.Bundle.Empty() {
					t.Errorf("expected logged out state, got %+v", s)
				}
			},
		},
		{
			name:   "recovery resets to logged out",
			events: []Event{Recovered{Reason: "boom"}},
			check: func(t *testing.T, s State) {
				if s.Page != PageLogin || s.User != nil || s.Loading || !s.Bundle.Empty() {
					t.Errorf("expected logged out state, got %+v", s)
				}
			},
		},
		{
			name:   "missing profile routes to login without error",
			events: []Event{ProfileMissing{Session: &Session{UserID: "u3"}}},
			check: func(t *testing.T, s State) {
				if s.Page != PageLogin || s.Loading {
					t.Errorf("expected login page, got %+v", s)
				}
				if s.User == nil || s.User.Session.UserID != "u3" || s.User.Profile != nil {
					t.Errorf("expected session without profile, got %+v", s.User)
				}
				if !s.Bundle.Empty() {
					t.Error("expected an empty bundle")
				}
			},
		},
		{
			name:   "profile fetch failure routes to login",
			events: []Event{ProfileFailed{Session: &Session{UserID: "u3"}, Err: errors.New("timeout")}},
			check: func(t *testing.T, s State) {
				if s.Page != PageLogin || s.Loading || s.User == nil || s.User.Profile != nil {
					t.Errorf("expected login page with a bare session, got %+v", s)
				}
			},
		},
		{
			name:   "tenant goes to the dashboard without a bundle",
			events: []Event{SessionCleared{}, ProfileResolved{Session: &Session{UserID: "u1"}, Profile: profile("u1", role(types.RoleTenant))}},
			check: func(t *testing.T, s State) {
				if s.Page != PageDashboard || s.Loading || s.Pending != PendingNone {
					t.Errorf("expected settled dashboard, got %+v", s)
				}
				if !s.User.Profile.HasRole(types.RoleTenant) {
					t.Error("expected tenant profile")
				}
				if !s.Bundle.Empty() {
					t.Error("expected an empty bundle")
				}
			},
		},
		{
			name:   "landlord hands loading to the prefetch",
			events: []Event{SessionCleared{}, ProfileResolved{Session: &Session{UserID: "u2"}, Profile: profile("u2", role(types.RoleLandlord))}},
			check: func(t *testing.T, s State) {
				if s.Page != PageDashboard || !s.Loading || s.Pending != PendingLandlordPrefetch {
					t.Errorf("expected pending landlord prefetch, got %+v", s)
				}
			},
		},
		{
			name:   "unknown role routes to login",
			events: []Event{ProfileResolved{Session: &Session{UserID: "u4"}, Profile: profile("u4", role("admin"))}},
			check: func(t *testing.T, s State) {
				if s.Page != PageLogin || s.Loading {
					t.Errorf("expected login page, got %+v", s)
				}
			},
		},
		{
			name:   "missing role routes to login",
			events: []Event{ProfileResolved{Session: &Session{UserID: "u4"}, Profile: profile("u4", nil)}},
			check: func(t *testing.T, s State) {
				if s.Page != PageLogin || s.Loading {
					t.Errorf("expected login page, got %+v", s)
				}
			},
		},
		{
			name: "failed collection keeps its previous value",
			events: []Event{
				PrefetchStarted{LandlordID: "u2", Epoch: landlordEpoch},
				PrefetchCompleted{
					LandlordID: "u2",
					Epoch:      landlordEpoch,
					Bundle:     Bundle{Leases: []*types.Lease{{ID: "l2"}}, Profiles: []*types.Profile{}},
					Failed:     CollectionHouses,
				},
			},
			check: func(t *testing.T, s State) {
				if s.Loading || s.Pending != PendingNone {
					t.Errorf("expected loading cleared, got %+v", s)
				}
				if len(s.Bundle.Houses) != 1 || s.Bundle.Houses[0].ID != "h1" {
					t.Errorf("expected previous houses, got %+v", s.Bundle.Houses)
				}
				if len(s.Bundle.Leases) != 1 || s.Bundle.Leases[0].ID != "l2" {
					t.Errorf("expected new leases, got %+v", s.Bundle.Leases)
				}
				if len(s.Bundle.Profiles) != 0 {
					t.Errorf("expected new empty profiles, got %+v", s.Bundle.Profiles)
				}
			},
		},
		{
			name:   "overall prefetch failure empties the bundle",
			events: []Event{PrefetchStarted{LandlordID: "u2", Epoch: landlordEpoch}, PrefetchFailed{LandlordID: "u2", Epoch: landlordEpoch}},
			check: func(t *testing.T, s State) {
				if !s.Bundle.Empty() || s.Loading || s.Pending != PendingNone {
					t.Errorf("expected empty settled bundle, got %+v", s)
				}
			},
		},
		{
			name: "prefetch of another landlord is ignored",
			events: []Event{
				PrefetchStarted{LandlordID: "other", Epoch: landlordEpoch},
				PrefetchCompleted{LandlordID: "other", Epoch: landlordEpoch, Bundle: Bundle{Houses: []*types.House{}}},
			},
			check: func(t *testing.T, s State) {
				if s.Loading || len(s.Bundle.Houses) != 1 {
					t.Errorf("expected untouched landlord state, got %+v", s)
				}
			},
		},
		{
			name:   "prefetch completing after sign out is ignored",
			events: []Event{SignedOut{}, PrefetchCompleted{LandlordID: "u2", Epoch: landlordEpoch, Bundle: Bundle{Houses: []*types.House{{ID: "h9"}}}}},
			check: func(t *testing.T, s State) {
				if !s.Bundle.Empty() || s.User != nil {
					t.Errorf("expected bundle to stay empty, got %+v", s)
				}
			},
		},
		{
			name: "same landlord notified again keeps the houses of a failed fetch",
			events: []Event{
				ProfileResolved{Session: &Session{UserID: "u2"}, Profile: profile("u2", role(types.RoleLandlord))},
				PrefetchStarted{LandlordID: "u2", Epoch: landlordEpoch},
				PrefetchCompleted{
					LandlordID: "u2",
					Epoch:      landlordEpoch,
					Bundle:     Bundle{Leases: []*types.Lease{{ID: "l2"}}, Profiles: []*types.Profile{{ID: "t1"}}},
					Failed:     CollectionHouses,
				},
			},
			check: func(t *testing.T, s State) {
				if s.Page != PageDashboard || s.Loading {
					t.Errorf("expected settled dashboard, got %+v", s)
				}
				if len(s.Bundle.Houses) != 1 || s.Bundle.Houses[0].ID != "h1" {
					t.Errorf("expected previous houses, got %+v", s.Bundle.Houses)
				}
				if len(s.Bundle.Leases) != 1 || s.Bundle.Leases[0].ID != "l2" {
					t.Errorf("expected new leases, got %+v", s.Bundle.Leases)
				}
			},
		},
		{
			name:   "another landlord starts from an empty bundle",
			events: []Event{ProfileResolved{Session: &Session{UserID: "u5"}, Profile: profile("u5", role(types.RoleLandlord))}},
			check: func(t *testing.T, s State) {
				if !s.Bundle.Empty() || !s.Loading || s.Epoch == landlordEpoch {
					t.Errorf("expected a fresh loading landlord state, got %+v", s)
				}
			},
		},
		{
			name: "prefetch from before a sign out is ignored once the landlord is back",
			events: []Event{
				SignedOut{},
				ProfileResolved{Session: &Session{UserID: "u2"}, Profile: profile("u2", role(types.RoleLandlord))},
				PrefetchCompleted{LandlordID: "u2", Epoch: landlordEpoch, Bundle: Bundle{Houses: []*types.House{{ID: "h9"}}}},
			},
			check: func(t *testing.T, s State) {
				if !s.Loading || s.Pending != PendingLandlordPrefetch {
					t.Errorf("expected the new prefetch to still own loading, got %+v", s)
				}
				if !s.Bundle.Empty() {
					t.Errorf("expected the stale bundle to be dropped, got %+v", s.Bundle)
				}
			},
		},
		{
			name:   "redirect resolves to login",
			events: []Event{RedirectResolved{}},
			check: func(t *testing.T, s State) {
				if s.Page != PageLogin || !s.Bundle.Empty() {
					t.Errorf("expected login page, got %+v", s)
				}
			},
		},
	}

	if s := landlordState(); s.Epoch != landlordEpoch || len(s.Bundle.Houses) != 1 {
		t.Fatalf("unexpected landlord state %+v", s)
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s := landlordState()
			for _, e := range tc.events {
				s = Reduce(s, e)
			}
			tc.check(t, s)
		})
	}
}

func TestReduce_DoesNotMutateInput(t *testing.T) {
	before := landlordState()
	houses := before.Bundle.Houses

	_ = Reduce(before, PrefetchFailed{LandlordID: "u2", Epoch: landlordEpoch})

	if len(before.Bundle.Houses) != 1 || before.Bundle.Houses[0] != houses[0] {
		t.Error("expected the input state to be untouched")
	}
	if before.Loading {
		t.Error("expected the input loading flag to be untouched")
	}
}
