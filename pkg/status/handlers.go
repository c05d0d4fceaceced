// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package status

import (
	"net/http"
	"runtime/debug"

	"github.com/go-chi/chi/v5"

	"github.com/tenantflow/tenantflow/internal/http/types"
	"github.com/tenantflow/tenantflow/internal/logging"
	"github.com/tenantflow/tenantflow/internal/monitoring"
	"github.com/tenantflow/tenantflow/internal/tracing"
	"github.com/tenantflow/tenantflow/internal/version"
)

const (
	okValue          = "ok"
	unavailableValue = "unavailable"
)

type API struct {
	db DatabaseInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (a *API) RegisterEndpoints(mux chi.Router) {
	mux.Get("/api/v0/status", a.alive)
	mux.Get("/api/v0/version", a.version)
	mux.Get("/api/v0/ready", a.ready)
}

func (a *API) alive(w http.ResponseWriter, r *http.Request) {
	_, span := a.tracer.Start(r.Context(), "status.API.alive")
	defer span.End()

	s := Status{Status: okValue}

	if info, ok := debug.ReadBuildInfo(); ok {
		s.BuildInfo = info.Main.Version
	}

	_ = types.WriteJSON(w, http.StatusOK, s)
}

func (a *API) version(w http.ResponseWriter, r *http.Request) {
	_ = types.WriteJSON(w, http.StatusOK, Version{Version: version.Version})
}

// ready reports the database reachability and mirrors it into the
// dependency availability gauge
func (a *API) ready(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "status.API.ready")
	defer span.End()

	tags := map[string]string{"component": "database"}

	if err := a.db.Ping(ctx); err != nil {
		a.logger.Errorf("database is not reachable: %v", err)
		_ = a.monitor.SetDependencyAvailability(tags, 0)
		_ = types.WriteJSON(w, http.StatusServiceUnavailable, Ready{Database: unavailableValue})
		return
	}

	_ = a.monitor.SetDependencyAvailability(tags, 1)
	_ = types.WriteJSON(w, http.StatusOK, Ready{Database: okValue})
}

func NewAPI(db DatabaseInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *API {
	a := new(API)

	a.db = db
	a.tracer = tracer
	a.monitor = monitor
	a.logger = logger

	return a
}
