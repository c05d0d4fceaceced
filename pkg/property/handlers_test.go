// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package property

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"go.uber.org/mock/gomock"

	httptypes "github.com/tenantflow/tenantflow/internal/http/types"
	"github.com/tenantflow/tenantflow/internal/storage"
	"github.com/tenantflow/tenantflow/internal/types"
	"github.com/tenantflow/tenantflow/pkg/authentication"
)

func TestAPI_Endpoints(t *testing.T) {
	notes := "replaced the washer"

	testCases := []struct {
		name         string
		method       string
		target       string
		body         string
		user         string
		setupMocks   func(*MockServiceInterface, *MockLoggerInterface)
		expectedCode int
		errorCode    string
	}{
		{
			name:         "unauthenticated",
			method:       http.MethodGet,
			target:       "/api/v0/profiles",
			setupMocks:   func(*MockServiceInterface, *MockLoggerInterface) {},
			expectedCode: http.StatusUnauthorized,
			errorCode:    httptypes.CodeUnauthorized,
		},
		{
			name:   "list profiles",
			method: http.MethodGet,
			target: "/api/v0/profiles",
			user:   landlordID,
			setupMocks: func(s *MockServiceInterface, _ *MockLoggerInterface) {
				s.EXPECT().ListProfiles(gomock.Any(), landlordID).Return([]*types.Profile{tenantProfile()}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:   "missing profile is a not-found",
			method: http.MethodGet,
			target: "/api/v0/profiles/" + tenantID,
			user:   strangerID,
			setupMocks: func(s *MockServiceInterface, _ *MockLoggerInterface) {
				s.EXPECT().GetProfile(gomock.Any(), strangerID, tenantID).Return(nil, storage.ErrNotFound)
			},
			expectedCode: http.StatusNotFound,
			errorCode:    httptypes.CodeNotFound,
		},
		{
			name:   "update profile",
			method: http.MethodPatch,
			target: "/api/v0/profiles/" + tenantID,
			body:   `{"phone":"555-0100"}`,
			user:   tenantID,
			setupMocks: func(s *MockServiceInterface, _ *MockLoggerInterface) {
				s.EXPECT().UpdateProfile(gomock.Any(), tenantID, tenantID, gomock.Any()).Return(tenantProfile(), nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:         "create tenant with a bad email",
			method:       http.MethodPost,
			target:       "/api/v0/tenants",
			body:         `{"name":"Tom","email":"not-an-email"}`,
			user:         landlordID,
			setupMocks:   func(*MockServiceInterface, *MockLoggerInterface) {},
			expectedCode: http.StatusBadRequest,
			errorCode:    httptypes.CodeInvalidInput,
		},
		{
			name:   "create tenant forbidden",
			method: http.MethodPost,
			target: "/api/v0/tenants",
			body:   `{"name":"Tom","email":"tom@example.com"}`,
			user:   tenantID,
			setupMocks: func(s *MockServiceInterface, _ *MockLoggerInterface) {
				s.EXPECT().CreateTenant(gomock.Any(), tenantID, gomock.Any()).Return(nil, ErrForbidden)
			},
			expectedCode: http.StatusForbidden,
			errorCode:    httptypes.CodeForbidden,
		},
		{
			name:   "delete tenant",
			method: http.MethodDelete,
			target: "/api/v0/tenants/" + tenantID,
			user:   landlordID,
			setupMocks: func(s *MockServiceInterface, _ *MockLoggerInterface) {
				s.EXPECT().DeleteTenant(gomock.Any(), landlordID, tenantID).Return(nil)
			},
			expectedCode: http.StatusNoContent,
		},
		{
			name:   "list houses",
			method: http.MethodGet,
			target: "/api/v0/houses?landlord_id=" + landlordID,
			user:   tenantID,
			setupMocks: func(s *MockServiceInterface, _ *MockLoggerInterface) {
				s.EXPECT().ListHouses(gomock.Any(), tenantID, landlordID).Return([]*types.House{ownedHouseFixture()}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:         "create house with an unknown type",
			method:       http.MethodPost,
			target:       "/api/v0/houses",
			body:         `{"name":"Elm","address":"1 Elm St","type":"Castle"}`,
			user:         landlordID,
			setupMocks:   func(*MockServiceInterface, *MockLoggerInterface) {},
			expectedCode: http.StatusBadRequest,
			errorCode:    httptypes.CodeInvalidInput,
		},
		{
			name:   "create house",
			method: http.MethodPost,
			target: "/api/v0/houses",
			body:   `{"name":"Elm","address":"1 Elm St","type":"Multi-Unit House","units":[{"number":"1A","size":"40m2"}]}`,
			user:   landlordID,
			setupMocks: func(s *MockServiceInterface, _ *MockLoggerInterface) {
				s.EXPECT().CreateHouse(gomock.Any(), landlordID, gomock.Any()).DoAndReturn(
					func(_ context.Context, _ string, h *types.House) (*types.House, error) {
						if len(h.Units) != 1 || h.Units[0].Number != "1A" {
							t.Errorf("unexpected units %+v", h.Units)
						}
						return h, nil
					},
				)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name:   "update house takes the id from the path",
			method: http.MethodPut,
			target: "/api/v0/houses/" + houseID,
			body:   `{"name":"Elm","address":"1 Elm St"}`,
			user:   landlordID,
			setupMocks: func(s *MockServiceInterface, _ *MockLoggerInterface) {
				s.EXPECT().UpdateHouse(gomock.Any(), landlordID, gomock.Any()).DoAndReturn(
					func(_ context.Context, _ string, h *types.House) (*types.House, error) {
						if h.ID != houseID {
							t.Errorf("expected house %s, got %s", houseID, h.ID)
						}
						return h, nil
					},
				)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:   "delete house",
			method: http.MethodDelete,
			target: "/api/v0/houses/" + houseID,
			user:   landlordID,
			setupMocks: func(s *MockServiceInterface, _ *MockLoggerInterface) {
				s.EXPECT().DeleteHouse(gomock.Any(), landlordID, houseID).Return(nil)
			},
			expectedCode: http.StatusNoContent,
		},
		{
			name:         "list leases needs a filter",
			method:       http.MethodGet,
			target:       "/api/v0/leases",
			user:         landlordID,
			setupMocks:   func(*MockServiceInterface, *MockLoggerInterface) {},
			expectedCode: http.StatusBadRequest,
			errorCode:    httptypes.CodeInvalidInput,
		},
		{
			name:   "active leases by tenant",
			method: http.MethodGet,
			target: "/api/v0/leases?tenant_id=" + tenantID + "&status=active",
			user:   tenantID,
			setupMocks: func(s *MockServiceInterface, _ *MockLoggerInterface) {
				s.EXPECT().ListLeasesByTenant(gomock.Any(), tenantID, tenantID, "active").Return([]*types.Lease{leaseFixture()}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:   "leases by landlord",
			method: http.MethodGet,
			target: "/api/v0/leases?landlord_id=" + landlordID,
			user:   landlordID,
			setupMocks: func(s *MockServiceInterface, _ *MockLoggerInterface) {
				s.EXPECT().ListLeasesByLandlord(gomock.Any(), landlordID, landlordID).Return([]*types.Lease{}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:   "second active lease conflicts",
			method: http.MethodPost,
			target: "/api/v0/leases",
			body:   `{"house_id":"house-1","tenant_id":"tenant-1","rent_amount":900,"lease_start_date":"2026-03-01T00:00:00Z","lease_end_date":"2027-03-01T00:00:00Z","status":"active"}`,
			user:   landlordID,
			setupMocks: func(s *MockServiceInterface, _ *MockLoggerInterface) {
				s.EXPECT().CreateLease(gomock.Any(), landlordID, gomock.Any()).Return(nil, storage.ErrActiveLeaseExists)
			},
			expectedCode: http.StatusConflict,
			errorCode:    httptypes.CodeConflict,
		},
		{
			name:   "update lease",
			method: http.MethodPut,
			target: "/api/v0/leases/" + leaseID,
			body:   `{"house_id":"house-1","tenant_id":"tenant-1","lease_start_date":"2026-03-01T00:00:00Z","lease_end_date":"2027-03-01T00:00:00Z"}`,
			user:   landlordID,
			setupMocks: func(s *MockServiceInterface, _ *MockLoggerInterface) {
				s.EXPECT().UpdateLease(gomock.Any(), landlordID, gomock.Any()).Return(leaseFixture(), nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:   "delete lease",
			method: http.MethodDelete,
			target: "/api/v0/leases/" + leaseID,
			user:   landlordID,
			setupMocks: func(s *MockServiceInterface, _ *MockLoggerInterface) {
				s.EXPECT().DeleteLease(gomock.Any(), landlordID, leaseID).Return(storage.ErrNotFound)
			},
			expectedCode: http.StatusNotFound,
			errorCode:    httptypes.CodeNotFound,
		},
		{
			name:   "delete leases by filter",
			method: http.MethodDelete,
			target: "/api/v0/leases?tenant_id=" + tenantID,
			user:   landlordID,
			setupMocks: func(s *MockServiceInterface, _ *MockLoggerInterface) {
				s.EXPECT().DeleteLeases(gomock.Any(), landlordID, types.LeaseFilter{TenantID: tenantID}).Return(int64(2), nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:   "payments by repeated lease ids",
			method: http.MethodGet,
			target: "/api/v0/payments?lease_id=a&lease_id=b",
			user:   landlordID,
			setupMocks: func(s *MockServiceInterface, _ *MockLoggerInterface) {
				s.EXPECT().ListPayments(gomock.Any(), landlordID, []string{"a", "b"}).Return([]*types.Payment{}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:         "payment with no amount",
			method:       http.MethodPost,
			target:       "/api/v0/payments",
			body:         `{"lease_id":"lease-1","payment_date":"2026-03-01T00:00:00Z"}`,
			user:         tenantID,
			setupMocks:   func(*MockServiceInterface, *MockLoggerInterface) {},
			expectedCode: http.StatusBadRequest,
			errorCode:    httptypes.CodeInvalidInput,
		},
		{
			name:   "create payment",
			method: http.MethodPost,
			target: "/api/v0/payments",
			body:   `{"lease_id":"lease-1","amount":900,"payment_date":"2026-03-01T00:00:00Z"}`,
			user:   tenantID,
			setupMocks: func(s *MockServiceInterface, _ *MockLoggerInterface) {
				s.EXPECT().CreatePayment(gomock.Any(), tenantID, gomock.Any()).Return(&types.Payment{ID: "p1"}, nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name:   "approve payment",
			method: http.MethodPatch,
			target: "/api/v0/payments/p1/status",
			body:   `{"status":"approved"}`,
			user:   landlordID,
			setupMocks: func(s *MockServiceInterface, _ *MockLoggerInterface) {
				s.EXPECT().UpdatePaymentStatus(gomock.Any(), landlordID, "p1", "approved").Return(&types.Payment{ID: "p1"}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:   "maintenance by house ids",
			method: http.MethodGet,
			target: "/api/v0/maintenance-requests?house_id=h1&house_id=h2",
			user:   landlordID,
			setupMocks: func(s *MockServiceInterface, _ *MockLoggerInterface) {
				s.EXPECT().ListMaintenanceRequests(gomock.Any(), landlordID, types.MaintenanceFilter{HouseIDs: []string{"h1", "h2"}}).Return([]*types.MaintenanceRequest{}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:   "create maintenance request",
			method: http.MethodPost,
			target: "/api/v0/maintenance-requests",
			body:   `{"lease_id":"lease-1","description":"leak","priority":"High"}`,
			user:   tenantID,
			setupMocks: func(s *MockServiceInterface, _ *MockLoggerInterface) {
				s.EXPECT().CreateMaintenanceRequest(gomock.Any(), tenantID, gomock.Any()).Return(&types.MaintenanceRequest{ID: "m1"}, nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name:   "resolve maintenance request",
			method: http.MethodPatch,
			target: "/api/v0/maintenance-requests/m1/status",
			body:   `{"status":"Resolved","resolution_notes":"replaced the washer"}`,
			user:   landlordID,
			setupMocks: func(s *MockServiceInterface, _ *MockLoggerInterface) {
				s.EXPECT().UpdateMaintenanceStatus(gomock.Any(), landlordID, "m1", "Resolved", &notes).Return(&types.MaintenanceRequest{ID: "m1"}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:         "unknown maintenance status",
			method:       http.MethodPatch,
			target:       "/api/v0/maintenance-requests/m1/status",
			body:         `{"status":"Done"}`,
			user:         landlordID,
			setupMocks:   func(*MockServiceInterface, *MockLoggerInterface) {},
			expectedCode: http.StatusBadRequest,
			errorCode:    httptypes.CodeInvalidInput,
		},
		{
			name:   "unexpected errors are internal",
			method: http.MethodGet,
			target: "/api/v0/profiles",
			user:   landlordID,
			setupMocks: func(s *MockServiceInterface, l *MockLoggerInterface) {
				s.EXPECT().ListProfiles(gomock.Any(), landlordID).Return(nil, errors.New("db down"))
				l.EXPECT().Errorf(gomock.Any(), gomock.Any())
			},
			expectedCode: http.StatusInternalServerError,
			errorCode:    httptypes.CodeInternal,
		},
		{
			name:         "malformed body",
			method:       http.MethodPost,
			target:       "/api/v0/houses",
			body:         `{"name":`,
			user:         landlordID,
			setupMocks:   func(*MockServiceInterface, *MockLoggerInterface) {},
			expectedCode: http.StatusBadRequest,
			errorCode:    httptypes.CodeInvalidInput,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockService := NewMockServiceInterface(ctrl)
			mockLogger := NewMockLoggerInterface(ctrl)
			tc.setupMocks(mockService, mockLogger)

			mux := chi.NewRouter()
			NewAPI(mockService, NewMockTracingInterface(ctrl), NewMockMonitorInterface(ctrl), mockLogger).RegisterEndpoints(mux)

			req := httptest.NewRequest(tc.method, tc.target, strings.NewReader(tc.body))
			if tc.user != "" {
				req = req.WithContext(authentication.WithUserID(req.Context(), tc.user))
			}
			w := httptest.NewRecorder()

			mux.ServeHTTP(w, req)

			if w.Code != tc.expectedCode {
				t.Fatalf("expected status %d, got %d: %s", tc.expectedCode, w.Code, w.Body.String())
			}

			if tc.errorCode == "" {
				return
			}

			var body httptypes.ErrorResponse
			if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
				t.Fatalf("failed to decode error body: %v", err)
			}
			if body.Code != tc.errorCode || body.Status != tc.expectedCode {
				t.Errorf("expected code %q, got %+v", tc.errorCode, body)
			}
		})
	}
}
