// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package bootstrap

import (
	"github.com/tenantflow/tenantflow/internal/types"
)

// Event is an input of Reduce
type Event interface {
	event()
}

// SessionCleared is a notification without a session
type SessionCleared struct{}

// SignedOut is an explicit sign out by the user
type SignedOut struct{}

// Recovered resets the state after the bootstrap sequence blew up
type Recovered struct {
	Reason any
}

// ProfileMissing is a session whose profile does not exist yet
type ProfileMissing struct {
	Session *Session
}

// ProfileFailed is a session whose profile could not be fetched
type ProfileFailed struct {
	Session *Session
	Err     error
}

// ProfileResolved is a session with its profile
type ProfileResolved struct {
	Session *Session
	Profile *types.Profile
}

// PrefetchStarted hands the loading flag to the landlord prefetch, Epoch is
// the state epoch the prefetch was started in
type PrefetchStarted struct {
	LandlordID string
	Epoch      uint64
}

// PrefetchCompleted publishes the prefetched collections, the ones in Failed
// keep their previous value
type PrefetchCompleted struct {
	LandlordID string
	Epoch      uint64
	Bundle     Bundle
	Failed     Collections
}

// PrefetchFailed is a prefetch that failed as a whole
type PrefetchFailed struct {
	LandlordID string
	Epoch      uint64
}

// RedirectResolved leaves an inconsistent dashboard for the login page
type RedirectResolved struct{}

func (SessionCleared) event()    {}
func (SignedOut) event()         {}
func (Recovered) event()         {}
func (ProfileMissing) event()    {}
func (ProfileFailed) event()     {}
func (ProfileResolved) event()   {}
func (PrefetchStarted) event()   {}
func (PrefetchCompleted) event() {}
func (PrefetchFailed) event()    {}
func (RedirectResolved) event()  {}

func loggedOut(epoch uint64) State {
	return State{Page: PageLogin, Epoch: epoch}
}

func withoutProfile(epoch uint64, s *Session) State {
	return State{Page: PageLogin, User: &User{Session: s}, Epoch: epoch}
}

// owns reports whether a prefetch of landlordID started in epoch may still
// write to s
func owns(s State, landlordID string, epoch uint64) bool {
	id, ok := s.User.landlordID()
	return ok && id == landlordID && s.Epoch == epoch
}

// Reduce is the transition function of the bootstrap state machine, it never
// mutates s
func Reduce(s State, e Event) State {
	switch e := e.(type) {
	case SessionCleared, SignedOut, Recovered:
		return loggedOut(s.Epoch + 1)
	case ProfileMissing:
		return withoutProfile(s.Epoch+1, e.Session)
	case ProfileFailed:
		return withoutProfile(s.Epoch+1, e.Session)
	case ProfileResolved:
		return resolve(s, e)
	case PrefetchStarted:
		if !owns(s, e.LandlordID, e.Epoch) {
			return s
		}
		s.Loading = true
		s.Pending = PendingLandlordPrefetch
		return s
	case PrefetchCompleted:
		if !owns(s, e.LandlordID, e.Epoch) {
			return s
		}
		if !e.Failed.Has(CollectionHouses) {
			s.Bundle.Houses = e.Bundle.Houses
		}
		if !e.Failed.Has(CollectionLeases) {
			s.Bundle.Leases = e.Bundle.Leases
		}
		if !e.Failed.Has(CollectionProfiles) {
			s.Bundle.Profiles = e.Bundle.Profiles
		}
		s.Loading = false
		s.Pending = PendingNone
		return s
	case PrefetchFailed:
		if !owns(s, e.LandlordID, e.Epoch) {
			return s
		}
		s.Bundle = Bundle{}
		s.Loading = false
		s.Pending = PendingNone
		return s
	case RedirectResolved:
		s.Epoch++
		s.Page = PageLogin
		s.Loading = false
		s.Pending = PendingNone
		s.Bundle = Bundle{}
		return s
	}

	return s
}

// resolve keeps the bundle and epoch when the same landlord is notified
// again, so a failing prefetch still leaves the previous collections
func resolve(s State, e ProfileResolved) State {
	user := &User{Session: e.Session, Profile: e.Profile}
	epoch := s.Epoch + 1

	switch {
	case e.Profile == nil:
		return withoutProfile(epoch, e.Session)
	case e.Profile.HasRole(types.RoleLandlord):
		next := State{Page: PageDashboard, Loading: true, Pending: PendingLandlordPrefetch, User: user, Epoch: epoch}
		if id, ok := s.User.landlordID(); ok && id == e.Profile.ID {
			next.Bundle = s.Bundle
			next.Epoch = s.Epoch
		}
		return next
	case e.Profile.HasRole(types.RoleTenant):
		return State{Page: PageDashboard, User: user, Epoch: epoch}
	}

	// missing or unknown role
	return State{Page: PageLogin, User: user, Epoch: epoch}
}
