// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package property

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/oapi-codegen/runtime"

	"github.com/tenantflow/tenantflow/internal/http/types"
	"github.com/tenantflow/tenantflow/internal/logging"
	"github.com/tenantflow/tenantflow/internal/monitoring"
	"github.com/tenantflow/tenantflow/internal/storage"
	"github.com/tenantflow/tenantflow/internal/tracing"
	domain "github.com/tenantflow/tenantflow/internal/types"
	"github.com/tenantflow/tenantflow/pkg/authentication"
)

const maxBodyBytes = 1 << 20

// API exposes the property service over REST
type API struct {
	service  ServiceInterface
	validate *validator.Validate

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewAPI(service ServiceInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *API {
	return &API{
		service:  service,
		validate: validator.New(validator.WithRequiredStructEnabled()),
		tracer:   tracer,
		monitor:  monitor,
		logger:   logger,
	}
}

func (a *API) RegisterEndpoints(mux chi.Router) {
	mux.Get("/api/v0/profiles", a.handleListProfiles)
	mux.Get("/api/v0/profiles/{id}", a.handleGetProfile)
	mux.Patch("/api/v0/profiles/{id}", a.handleUpdateProfile)

	mux.Post("/api/v0/tenants", a.handleCreateTenant)
	mux.Delete("/api/v0/tenants/{id}", a.handleDeleteTenant)

	mux.Get("/api/v0/houses", a.handleListHouses)
	mux.Post("/api/v0/houses", a.handleCreateHouse)
	mux.Put("/api/v0/houses/{id}", a.handleUpdateHouse)
	mux.Delete("/api/v0/houses/{id}", a.handleDeleteHouse)

	mux.Get("/api/v0/leases", a.handleListLeases)
	mux.Post("/api/v0/leases", a.handleCreateLease)
	mux.Delete("/api/v0/leases", a.handleDeleteLeases)
	mux.Put("/api/v0/leases/{id}", a.handleUpdateLease)
	mux.Delete("/api/v0/leases/{id}", a.handleDeleteLease)

	mux.Get("/api/v0/payments", a.handleListPayments)
	mux.Post("/api/v0/payments", a.handleCreatePayment)
	mux.Patch("/api/v0/payments/{id}/status", a.handleUpdatePaymentStatus)

	mux.Get("/api/v0/maintenance-requests", a.handleListMaintenance)
	mux.Post("/api/v0/maintenance-requests", a.handleCreateMaintenance)
	mux.Patch("/api/v0/maintenance-requests/{id}/status", a.handleUpdateMaintenanceStatus)
}

// caller returns the authenticated user, writing a 401 when there is none
func (a *API) caller(w http.ResponseWriter, r *http.Request) (string, bool) {
	userID, ok := authentication.GetUserID(r.Context())
	if !ok || userID == "" {
		_ = types.WriteError(w, http.StatusUnauthorized, types.CodeUnauthorized, "authentication required")
		return "", false
	}

	return userID, true
}

func (a *API) pathID(w http.ResponseWriter, r *http.Request) (string, bool) {
	var id string

	err := runtime.BindStyledParameterWithOptions(
		"simple", "id", chi.URLParam(r, "id"), &id,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true},
	)
	if err != nil || id == "" {
		_ = types.WriteError(w, http.StatusBadRequest, types.CodeInvalidInput, "invalid id path parameter")
		return "", false
	}

	return id, true
}

func (a *API) queryString(w http.ResponseWriter, r *http.Request, name string) (string, bool) {
	var v string

	if err := runtime.BindQueryParameter("form", true, false, name, r.URL.Query(), &v); err != nil {
		_ = types.WriteError(w, http.StatusBadRequest, types.CodeInvalidInput, fmt.Sprintf("invalid %s query parameter", name))
		return "", false
	}

	return v, true
}

func (a *API) queryStrings(w http.ResponseWriter, r *http.Request, name string) ([]string, bool) {
	var v []string

	if err := runtime.BindQueryParameter("form", true, false, name, r.URL.Query(), &v); err != nil {
		_ = types.WriteError(w, http.StatusBadRequest, types.CodeInvalidInput, fmt.Sprintf("invalid %s query parameter", name))
		return nil, false
	}

	return v, true
}

// decode reads and validates a JSON body into dst
func (a *API) decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()

	if err := dec.Decode(dst); err != nil {
		_ = types.WriteError(w, http.StatusBadRequest, types.CodeInvalidInput, fmt.Sprintf("malformed request body: %v", err))
		return false
	}

	if err := a.validate.Struct(dst); err != nil {
		_ = types.WriteError(w, http.StatusBadRequest, types.CodeInvalidInput, err.Error())
		return false
	}

	return true
}

// writeServiceError maps service and storage errors to API errors
func (a *API) writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, storage.ErrNotFound):
		_ = types.WriteError(w, http.StatusNotFound, types.CodeNotFound, "resource not found")
	case errors.Is(err, ErrForbidden):
		_ = types.WriteError(w, http.StatusForbidden, types.CodeForbidden, "forbidden")
	case errors.Is(err, ErrInvalidInput), errors.Is(err, storage.ErrForeignKeyViolation):
		_ = types.WriteError(w, http.StatusBadRequest, types.CodeInvalidInput, err.Error())
	case errors.Is(err, storage.ErrActiveLeaseExists), errors.Is(err, storage.ErrDuplicateKey):
		_ = types.WriteError(w, http.StatusConflict, types.CodeConflict, err.Error())
	default:
		a.logger.Errorf("request failed: %v", err)
		_ = types.WriteError(w, http.StatusInternalServerError, types.CodeInternal, "internal server error")
	}
}

func (a *API) respond(w http.ResponseWriter, status int, data any, err error) {
	if err != nil {
		a.writeServiceError(w, err)
		return
	}

	_ = types.WriteData(w, status, data)
}

func (a *API) handleListProfiles(w http.ResponseWriter, r *http.Request) {
	userID, ok := a.caller(w, r)
	if !ok {
		return
	}

	profiles, err := a.service.ListProfiles(r.Context(), userID)
	a.respond(w, http.StatusOK, profiles, err)
}

func (a *API) handleGetProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := a.caller(w, r)
	if !ok {
		return
	}
	id, ok := a.pathID(w, r)
	if !ok {
		return
	}

	profile, err := a.service.GetProfile(r.Context(), userID, id)
	a.respond(w, http.StatusOK, profile, err)
}

func (a *API) handleUpdateProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := a.caller(w, r)
	if !ok {
		return
	}
	id, ok := a.pathID(w, r)
	if !ok {
		return
	}

	req := new(UpdateProfileRequest)
	if !a.decode(w, r, req) {
		return
	}

	profile, err := a.service.UpdateProfile(r.Context(), userID, id, req.ProfileUpdate())
	a.respond(w, http.StatusOK, profile, err)
}

func (a *API) handleCreateTenant(w http.ResponseWriter, r *http.Request) {
	userID, ok := a.caller(w, r)
	if !ok {
		return
	}

	req := new(CreateTenantRequest)
	if !a.decode(w, r, req) {
		return
	}

	profile, err := a.service.CreateTenant(r.Context(), userID, req)
	a.respond(w, http.StatusCreated, profile, err)
}

func (a *API) handleDeleteTenant(w http.ResponseWriter, r *http.Request) {
	userID, ok := a.caller(w, r)
	if !ok {
		return
	}
	id, ok := a.pathID(w, r)
	if !ok {
		return
	}

	if err := a.service.DeleteTenant(r.Context(), userID, id); err != nil {
		a.writeServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (a *API) handleListHouses(w http.ResponseWriter, r *http.Request) {
	userID, ok := a.caller(w, r)
	if !ok {
		return
	}
	landlordID, ok := a.queryString(w, r, "landlord_id")
	if !ok {
		return
	}

	houses, err := a.service.ListHouses(r.Context(), userID, landlordID)
	a.respond(w, http.StatusOK, houses, err)
}

func (a *API) handleCreateHouse(w http.ResponseWriter, r *http.Request) {
	userID, ok := a.caller(w, r)
	if !ok {
		return
	}

	req := new(HouseRequest)
	if !a.decode(w, r, req) {
		return
	}

	house, err := a.service.CreateHouse(r.Context(), userID, req.House(""))
	a.respond(w, http.StatusCreated, house, err)
}

func (a *API) handleUpdateHouse(w http.ResponseWriter, r *http.Request) {
	userID, ok := a.caller(w, r)
	if !ok {
		return
	}
	id, ok := a.pathID(w, r)
	if !ok {
		return
	}

	req := new(HouseRequest)
	if !a.decode(w, r, req) {
		return
	}

	house, err := a.service.UpdateHouse(r.Context(), userID, req.House(id))
	a.respond(w, http.StatusOK, house, err)
}

func (a *API) handleDeleteHouse(w http.ResponseWriter, r *http.Request) {
	userID, ok := a.caller(w, r)
	if !ok {
		return
	}
	id, ok := a.pathID(w, r)
	if !ok {
		return
	}

	if err := a.service.DeleteHouse(r.Context(), userID, id); err != nil {
		a.writeServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// handleListLeases serves both the landlord and the tenant listing, tenant_id
// takes precedence when both are given
func (a *API) handleListLeases(w http.ResponseWriter, r *http.Request) {
	userID, ok := a.caller(w, r)
	if !ok {
		return
	}

	tenantID, ok := a.queryString(w, r, "tenant_id")
	if !ok {
		return
	}
	landlordID, ok := a.queryString(w, r, "landlord_id")
	if !ok {
		return
	}
	status, ok := a.queryString(w, r, "status")
	if !ok {
		return
	}

	var (
		leases []*domain.Lease
		err    error
	)

	switch {
	case tenantID != "":
		leases, err = a.service.ListLeasesByTenant(r.Context(), userID, tenantID, status)
	case landlordID != "":
		leases, err = a.service.ListLeasesByLandlord(r.Context(), userID, landlordID)
	default:
		_ = types.WriteError(w, http.StatusBadRequest, types.CodeInvalidInput, "landlord_id or tenant_id is required")
		return
	}

	a.respond(w, http.StatusOK, leases, err)
}

func (a *API) handleCreateLease(w http.ResponseWriter, r *http.Request) {
	userID, ok := a.caller(w, r)
	if !ok {
		return
	}

	req := new(LeaseRequest)
	if !a.decode(w, r, req) {
		return
	}

	lease, err := a.service.CreateLease(r.Context(), userID, req.Lease(""))
	a.respond(w, http.StatusCreated, lease, err)
}

func (a *API) handleUpdateLease(w http.ResponseWriter, r *http.Request) {
	userID, ok := a.caller(w, r)
	if !ok {
		return
	}
	id, ok := a.pathID(w, r)
	if !ok {
		return
	}

	req := new(LeaseRequest)
	if !a.decode(w, r, req) {
		return
	}

	lease, err := a.service.UpdateLease(r.Context(), userID, req.Lease(id))
	a.respond(w, http.StatusOK, lease, err)
}

func (a *API) handleDeleteLease(w http.ResponseWriter, r *http.Request) {
	userID, ok := a.caller(w, r)
	if !ok {
		return
	}
	id, ok := a.pathID(w, r)
	if !ok {
		return
	}

	if err := a.service.DeleteLease(r.Context(), userID, id); err != nil {
		a.writeServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (a *API) handleDeleteLeases(w http.ResponseWriter, r *http.Request) {
	userID, ok := a.caller(w, r)
	if !ok {
		return
	}

	tenantID, ok := a.queryString(w, r, "tenant_id")
	if !ok {
		return
	}
	houseID, ok := a.queryString(w, r, "house_id")
	if !ok {
		return
	}

	n, err := a.service.DeleteLeases(r.Context(), userID, domain.LeaseFilter{TenantID: tenantID, HouseID: houseID})
	a.respond(w, http.StatusOK, DeleteLeasesResponse{Deleted: n}, err)
}

func (a *API) handleListPayments(w http.ResponseWriter, r *http.Request) {
	userID, ok := a.caller(w, r)
	if !ok {
		return
	}
	leaseIDs, ok := a.queryStrings(w, r, "lease_id")
	if !ok {
		return
	}

	payments, err := a.service.ListPayments(r.Context(), userID, leaseIDs)
	a.respond(w, http.StatusOK, payments, err)
}

func (a *API) handleCreatePayment(w http.ResponseWriter, r *http.Request) {
	userID, ok := a.caller(w, r)
	if !ok {
		return
	}

	req := new(PaymentRequest)
	if !a.decode(w, r, req) {
		return
	}

	payment, err := a.service.CreatePayment(r.Context(), userID, req.Payment())
	a.respond(w, http.StatusCreated, payment, err)
}

func (a *API) handleUpdatePaymentStatus(w http.ResponseWriter, r *http.Request) {
	userID, ok := a.caller(w, r)
	if !ok {
		return
	}
	id, ok := a.pathID(w, r)
	if !ok {
		return
	}

	req := new(StatusRequest)
	if !a.decode(w, r, req) {
		return
	}

	payment, err := a.service.UpdatePaymentStatus(r.Context(), userID, id, req.Status)
	a.respond(w, http.StatusOK, payment, err)
}

func (a *API) handleListMaintenance(w http.ResponseWriter, r *http.Request) {
	userID, ok := a.caller(w, r)
	if !ok {
		return
	}

	houseIDs, ok := a.queryStrings(w, r, "house_id")
	if !ok {
		return
	}
	tenantID, ok := a.queryString(w, r, "tenant_id")
	if !ok {
		return
	}

	requests, err := a.service.ListMaintenanceRequests(r.Context(), userID, domain.MaintenanceFilter{HouseIDs: houseIDs, TenantID: tenantID})
	a.respond(w, http.StatusOK, requests, err)
}

func (a *API) handleCreateMaintenance(w http.ResponseWriter, r *http.Request) {
	userID, ok := a.caller(w, r)
	if !ok {
		return
	}

	req := new(MaintenanceRequestRequest)
	if !a.decode(w, r, req) {
		return
	}

	request, err := a.service.CreateMaintenanceRequest(r.Context(), userID, req.MaintenanceRequest())
	a.respond(w, http.StatusCreated, request, err)
}

func (a *API) handleUpdateMaintenanceStatus(w http.ResponseWriter, r *http.Request) {
	userID, ok := a.caller(w, r)
	if !ok {
		return
	}
	id, ok := a.pathID(w, r)
	if !ok {
		return
	}

	req := new(MaintenanceStatusRequest)
	if !a.decode(w, r, req) {
		return
	}

	request, err := a.service.UpdateMaintenanceStatus(r.Context(), userID, id, req.Status, req.ResolutionNotes)
	a.respond(w, http.StatusOK, request, err)
}
