// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/tenantflow/tenantflow/internal/logging"
	"github.com/tenantflow/tenantflow/internal/monitoring"
	"github.com/tenantflow/tenantflow/internal/tracing"
	"github.com/tenantflow/tenantflow/internal/types"
)

// Watcher turns auth notifications into bootstrap state. Notifications are
// handled one at a time by a single goroutine and only the latest pending one
// is kept. Every commit is checked against the generation it started in, so
// nothing is written once Stop has returned.
type Watcher struct {
	auth AuthProviderInterface
	data DataSourceInterface

	generation atomic.Uint64

	mu      sync.Mutex
	state   State
	changed chan struct{}
	wake    chan struct{}
	next    *Session
	queued  bool

	lifecycle   sync.Mutex
	running     bool
	unsubscribe func()
	cancel      context.CancelFunc
	done        chan struct{}

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

// Start subscribes to the auth provider and begins handling notifications
func (w *Watcher) Start(ctx context.Context) error {
	w.lifecycle.Lock()
	defer w.lifecycle.Unlock()

	if w.running {
		return ErrAlreadyStarted
	}

	ctx, cancel := context.WithCancel(ctx)
	gen := w.generation.Load()

	wake := make(chan struct{}, 1)

	w.mu.Lock()
	w.wake = wake
	w.next, w.queued = nil, false
	w.mu.Unlock()

	w.running = true
	w.cancel = cancel
	w.done = make(chan struct{})

	go w.loop(ctx, gen, wake, w.done)

	// the provider may call back synchronously, notify must not take the
	// lifecycle lock
	w.unsubscribe = w.auth.Subscribe(w.notify)

	return nil
}

// Stop unregisters from the auth provider and discards any result still in
// flight. It waits for the handling goroutine to exit.
func (w *Watcher) Stop() error {
	w.lifecycle.Lock()

	if !w.running {
		w.lifecycle.Unlock()
		return ErrNotStarted
	}

	w.generation.Add(1)
	w.running = false

	if w.unsubscribe != nil {
		w.unsubscribe()
		w.unsubscribe = nil
	}
	w.cancel()
	done := w.done

	w.lifecycle.Unlock()

	<-done
	return nil
}

func (w *Watcher) notify(s *Session) {
	w.mu.Lock()
	w.next, w.queued = s, true
	wake := w.wake
	w.mu.Unlock()

	select {
	case wake <- struct{}{}:
	default:
	}
}

func (w *Watcher) loop(ctx context.Context, gen uint64, wake <-chan struct{}, done chan<- struct{}) {
	defer close(done)

	for {
		select {
		case <-ctx.Done():
			return
		case <-wake:
		}

		w.mu.Lock()
		s, ok := w.next, w.queued
		w.next, w.queued = nil, false
		w.mu.Unlock()

		if ok {
			w.handle(ctx, gen, s)
		}
	}
}

// handle runs the bootstrap sequence for one notification
func (w *Watcher) handle(ctx context.Context, gen uint64, s *Session) {
	ctx, span := w.tracer.Start(ctx, "bootstrap.Watcher.handle")
	defer span.End()

	defer func() {
		if r := recover(); r != nil {
			w.logger.Errorf("bootstrap sequence failed, signing out locally: %v", r)
			w.commit(gen, Recovered{Reason: r})
		}
	}()

	if s == nil {
		w.logger.Debug("no session, showing login")
		w.commit(gen, SessionCleared{})
		return
	}

	profile, err := w.data.GetProfile(ctx, s.UserID)

	switch {
	case errors.Is(err, ErrProfileNotFound):
		w.logger.Warnf("no profile for user %s yet, showing login", s.UserID)
		w.commit(gen, ProfileMissing{Session: s})
		return
	case err != nil:
		w.logger.Errorf("failed to fetch profile of user %s: %v", s.UserID, err)
		w.commit(gen, ProfileFailed{Session: s, Err: err})
		return
	case profile == nil:
		panic(fmt.Sprintf("data source returned no profile and no error for user %s", s.UserID))
	}

	if profile.Role == nil || !profile.Role.Valid() {
		w.logger.Errorf("profile %s has no usable role, showing login", profile.ID)
	}

	state, ok := w.apply(gen, ProfileResolved{Session: s, Profile: profile})
	if !ok {
		return
	}

	if profile.HasRole(types.RoleLandlord) {
		w.prefetch(ctx, gen, state.Epoch, profile.ID)
	}
}

// SignOut signs out of the auth provider and drops the user and bundle, the
// provider error is returned to the caller
func (w *Watcher) SignOut(ctx context.Context) error {
	if err := w.auth.SignOut(ctx); err != nil {
		return fmt.Errorf("failed to sign out: %w", err)
	}

	w.commit(w.generation.Load(), SignedOut{})
	return nil
}

func (w *Watcher) commit(gen uint64, e Event) bool {
	_, ok := w.apply(gen, e)
	return ok
}

// apply reduces e if gen is still current and returns the committed state,
// an inconsistent dashboard is resolved in the same commit
func (w *Watcher) apply(gen uint64, e Event) (State, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.generation.Load() != gen {
		w.logger.Debugf("discarding stale %T", e)
		return w.state, false
	}

	w.state = Reduce(w.state, e)

	if Route(w.state).Phase == PhaseRedirecting {
		w.logger.Warn("dashboard requested without a resolved profile, redirecting to login")
		w.state = Reduce(w.state, RedirectResolved{})
	}

	close(w.changed)
	w.changed = make(chan struct{})

	return w.state, true
}

// State returns a snapshot of the current state
func (w *Watcher) State() State {
	w.mu.Lock()
	defer w.mu.Unlock()

	return w.state
}

// Changed returns a channel closed on the next commit
func (w *Watcher) Changed() <-chan struct{} {
	w.mu.Lock()
	defer w.mu.Unlock()

	return w.changed
}

// WaitSettled blocks until the current view no longer waits on a fetch
func (w *Watcher) WaitSettled(ctx context.Context) (State, error) {
	for {
		w.mu.Lock()
		s, changed := w.state, w.changed
		w.mu.Unlock()

		if Route(s).Settled() {
			return s, nil
		}

		select {
		case <-ctx.Done():
			return s, ctx.Err()
		case <-changed:
		}
	}
}

func NewWatcher(
	auth AuthProviderInterface,
	data DataSourceInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Watcher {
	w := new(Watcher)

	w.auth = auth
	w.data = data
	w.state = InitialState()
	w.changed = make(chan struct{})

	w.tracer = tracer
	w.monitor = monitor
	w.logger = logger

	return w
}
