// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package bootstrap

import (
	"github.com/tenantflow/tenantflow/internal/types"
)

// Session is the identity handed out by the auth provider, it is only valid
// until the next notification
type Session struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	Token  string `json:"token,omitempty"`
}

// User is a session merged with its profile, Profile is nil when it could
// not be resolved
type User struct {
	Session *Session
	Profile *types.Profile
}

func (u *User) landlordID() (string, bool) {
	if u == nil || !u.Profile.HasRole(types.RoleLandlord) {
		return "", false
	}

	return u.Profile.ID, true
}

// Bundle is the data a landlord dashboard renders from
type Bundle struct {
	Houses   []*types.House
	Leases   []*types.Lease
	Profiles []*types.Profile
}

func (b Bundle) Empty() bool {
	return len(b.Houses) == 0 && len(b.Leases) == 0 && len(b.Profiles) == 0
}

type Page string

const (
	PageLogin     Page = "login"
	PageDashboard Page = "dashboard"
)

// Pending names the step that owns the loading flag
type Pending string

const (
	PendingNone             Pending = ""
	PendingLandlordPrefetch Pending = "landlord-prefetch"
)

// State is the whole bootstrap state, only the watcher writes it. Epoch
// changes whenever the signed in user changes or leaves.
type State struct {
	Page    Page
	Loading bool
	Pending Pending
	User    *User
	Bundle  Bundle
	Epoch   uint64
}

// InitialState is the state before the first auth notification
func InitialState() State {
	return State{Page: PageLogin, Loading: true}
}

// Collections is a set of bundle collections
type Collections uint8

const (
	CollectionHouses Collections = 1 << iota
	CollectionLeases
	CollectionProfiles
)

func (c Collections) Has(o Collections) bool {
	return c&o != 0
}
