// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package webhooks

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/ory/hydra/v2/oauth2"

	"github.com/tenantflow/tenantflow/internal/http/types"
	"github.com/tenantflow/tenantflow/internal/logging"
)

type API struct {
	service ServiceInterface
	logger  logging.LoggerInterface
}

func NewAPI(service ServiceInterface, logger logging.LoggerInterface) *API {
	return &API{
		service: service,
		logger:  logger,
	}
}

func (a *API) RegisterEndpoints(mux chi.Router) {
	mux.Post("/api/v0/webhooks/registration", a.registration)
	mux.Post("/api/v0/webhooks/token", a.tokenHook)
}

func (a *API) registration(w http.ResponseWriter, r *http.Request) {
	identity := new(KratosIdentity)
	if err := json.NewDecoder(r.Body).Decode(identity); err != nil {
		a.logger.Errorf("failed to decode registration hook: %v", err)
		_ = types.WriteError(w, http.StatusBadRequest, types.CodeInvalidInput, "invalid request body")
		return
	}

	a.logger.Debugf("registration hook for identity %s", identity.ID)

	if err := a.service.HandleRegistration(r.Context(), identity); err != nil {
		a.logger.Errorf("registration hook failed: %v", err)
		_ = types.WriteError(w, http.StatusInternalServerError, types.CodeInternal, err.Error())
		return
	}

	w.WriteHeader(http.StatusOK)
}

func (a *API) tokenHook(w http.ResponseWriter, r *http.Request) {
	req := new(oauth2.TokenHookRequest)
	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		a.logger.Errorf("failed to decode token hook: %v", err)
		_ = types.WriteError(w, http.StatusBadRequest, types.CodeInvalidInput, "invalid request body")
		return
	}

	resp, err := a.service.HandleTokenHook(r.Context(), req)
	if err != nil {
		a.logger.Errorf("token hook failed: %v", err)
		_ = types.WriteError(w, http.StatusInternalServerError, types.CodeInternal, err.Error())
		return
	}

	_ = types.WriteJSON(w, http.StatusOK, resp)
}
