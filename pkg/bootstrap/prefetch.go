// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package bootstrap

import (
	"context"
	"fmt"
	"sync"

	"golang.org/x/sync/errgroup"
)

// Refresh reloads the landlord bundle of the signed in landlord, it is meant
// to run after every mutation
func (w *Watcher) Refresh(ctx context.Context) error {
	gen := w.generation.Load()
	state := w.State()

	id, ok := state.User.landlordID()
	if !ok {
		return ErrNotLandlord
	}

	w.prefetch(ctx, gen, state.Epoch, id)
	return nil
}

// fetch runs f and turns a panic into an error, so that it fails the whole
// prefetch instead of the process
func fetch(name string, f func() error) func() error {
	return func() (err error) {
		defer func() {
			if r := recover(); r != nil {
				err = fmt.Errorf("%s fetch panicked: %v", name, r)
			}
		}()

		return f()
	}
}

// prefetch loads the three landlord collections concurrently. A failed fetch
// is logged and leaves its collection untouched, the completion commit is the
// only one clearing the loading flag of a landlord. Results are dropped once
// the state has left epoch.
func (w *Watcher) prefetch(ctx context.Context, gen, epoch uint64, landlordID string) {
	ctx, span := w.tracer.Start(ctx, "bootstrap.Watcher.prefetch")
	defer span.End()

	if !w.commit(gen, PrefetchStarted{LandlordID: landlordID, Epoch: epoch}) {
		return
	}

	var (
		mu     sync.Mutex
		bundle Bundle
		failed Collections
	)

	fail := func(c Collections, what string, err error) {
		w.logger.Errorf("failed to prefetch %s of landlord %s: %v", what, landlordID, err)

		mu.Lock()
		failed |= c
		mu.Unlock()
	}

	g := new(errgroup.Group)

	g.Go(fetch("houses", func() error {
		houses, err := w.data.ListHousesByLandlord(ctx, landlordID)
		if err != nil {
			fail(CollectionHouses, "houses", err)
			return nil
		}

		mu.Lock()
		bundle.Houses = houses
		mu.Unlock()
		return nil
	}))

	g.Go(fetch("leases", func() error {
		leases, err := w.data.ListLeasesByLandlord(ctx, landlordID)
		if err != nil {
			fail(CollectionLeases, "leases", err)
			return nil
		}

		mu.Lock()
		bundle.Leases = leases
		mu.Unlock()
		return nil
	}))

	g.Go(fetch("profiles", func() error {
		profiles, err := w.data.ListProfiles(ctx)
		if err != nil {
			fail(CollectionProfiles, "profiles", err)
			return nil
		}

		mu.Lock()
		bundle.Profiles = profiles
		mu.Unlock()
		return nil
	}))

	if err := g.Wait(); err != nil {
		w.logger.Errorf("landlord prefetch failed: %v", err)
		w.commit(gen, PrefetchFailed{LandlordID: landlordID, Epoch: epoch})
		return
	}

	w.commit(gen, PrefetchCompleted{LandlordID: landlordID, Epoch: epoch, Bundle: bundle, Failed: failed})
}
