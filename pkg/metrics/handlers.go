// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package metrics

import (
	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/tenantflow/tenantflow/internal/logging"
)

type API struct {
	logger logging.LoggerInterface
}

func (a *API) RegisterEndpoints(mux chi.Router) {
	mux.Handle("/api/v0/metrics", promhttp.Handler())
}

func NewAPI(logger logging.LoggerInterface) *API {
	a := new(API)
	a.logger = logger

	return a
}
