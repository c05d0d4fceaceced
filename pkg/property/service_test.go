// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package property

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/mock/gomock"

	"github.com/tenantflow/tenantflow/internal/logging"
	"github.com/tenantflow/tenantflow/internal/storage"
	"github.com/tenantflow/tenantflow/internal/types"
)

//go:generate mockgen -build_flags=--mod=mod -package property -destination ./mock_interfaces.go -source=./interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package property -destination ./mock_logger.go -source=../../internal/logging/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package property -destination ./mock_monitor.go -source=../../internal/monitoring/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package property -destination ./mock_tracing.go -source=../../internal/tracing/interfaces.go

const (
	landlordID = "landlord-1"
	tenantID   = "tenant-1"
	strangerID = "stranger-1"
	houseID    = "house-1"
	leaseID    = "lease-1"
)

var now = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

type serviceMocks struct {
	storage *MockStorageInterface
	tx      *MockTxInterface
	authz   *MockAuthzInterface
	kratos  *MockKratosClientInterface
	logger  *MockLoggerInterface
}

func newTestService(t *testing.T, ctrl *gomock.Controller) (*Service, *serviceMocks) {
	t.Helper()

	m := &serviceMocks{
		storage: NewMockStorageInterface(ctrl),
		tx:      NewMockTxInterface(ctrl),
		authz:   NewMockAuthzInterface(ctrl),
		kratos:  NewMockKratosClientInterface(ctrl),
		logger:  NewMockLoggerInterface(ctrl),
	}

	mockTracer := NewMockTracingInterface(ctrl)
	mockTracer.EXPECT().Start(gomock.Any(), gomock.Any()).Return(context.Background(), trace.SpanFromContext(context.Background())).AnyTimes()
	m.logger.EXPECT().Security().Return(logging.NewNoopLogger().Security()).AnyTimes()

	s := NewService(m.storage, m.tx, m.authz, m.kratos, "tenant123", mockTracer, NewMockMonitorInterface(ctrl), m.logger)
	s.now = func() time.Time { return now }

	return s, m
}

// runInTx makes WithTx call through to the wrapped function
func runInTx(m *serviceMocks) {
	m.tx.EXPECT().WithTx(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		},
	)
}

func role(r types.Role) *types.Role {
	return &r
}

func landlordProfile() *types.Profile {
	return &types.Profile{ID: landlordID, Name: "Lana", Role: role(types.RoleLandlord)}
}

func tenantProfile() *types.Profile {
	creator := landlordID
	return &types.Profile{ID: tenantID, Name: "Tom", Role: role(types.RoleTenant), CreatedBy: &creator}
}

func ownedHouseFixture() *types.House {
	rooms := 3
	return &types.House{ID: houseID, LandlordID: landlordID, Name: "Elm", Address: "1 Elm St", Type: types.HouseTypeShared, Rooms: &rooms}
}

func leaseFixture() *types.Lease {
	return &types.Lease{
		ID:             leaseID,
		LandlordID:     landlordID,
		HouseID:        houseID,
		TenantID:       tenantID,
		LeaseStartDate: now,
		LeaseEndDate:   now.AddDate(1, 0, 0),
		Status:         types.LeaseStatusActive,
	}
}

func expectOwnedHouse(m *serviceMocks) {
	m.storage.EXPECT().GetHouse(gomock.Any(), houseID).Return(ownedHouseFixture(), nil)
	m.authz.EXPECT().CheckAccess(gomock.Any(), landlordID, "can_edit", "house:"+houseID).Return(true, nil)
}

func checkErr(t *testing.T, expected, err error) {
	t.Helper()

	if expected != nil {
		if !errors.Is(err, expected) {
			t.Fatalf("expected error %v, got %v", expected, err)
		}
		return
	}

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestService_UpdateProfile(t *testing.T) {
	name := "  <b>Tom</b> Jones "
	blank := "<script></script>"

	testCases := []struct {
		name        string
		viewer      string
		update      *types.ProfileUpdate
		setupMocks  func(*serviceMocks)
		expectedErr error
	}{
		{
			name:   "self update cleans the name",
			viewer: tenantID,
			update: &types.ProfileUpdate{Name: &name},
			setupMocks: func(m *serviceMocks) {
				m.storage.EXPECT().GetVisibleProfile(gomock.Any(), tenantID, tenantID).Return(tenantProfile(), nil)
				m.authz.EXPECT().CheckAccess(gomock.Any(), tenantID, "can_edit", "profile:"+tenantID).Return(true, nil)
				m.storage.EXPECT().UpdateProfile(gomock.Any(), tenantID, gomock.Any()).DoAndReturn(
					func(_ context.Context, _ string, u *types.ProfileUpdate) (*types.Profile, error) {
						if u.Name == nil || *u.Name != "Tom Jones" {
							t.Errorf("expected cleaned name, got %v", u.Name)
						}
						return tenantProfile(), nil
					},
				)
			},
		},
		{
			name:   "creating landlord may edit",
			viewer: landlordID,
			update: &types.ProfileUpdate{Name: &name},
			setupMocks: func(m *serviceMocks) {
				m.storage.EXPECT().GetVisibleProfile(gomock.Any(), landlordID, tenantID).Return(tenantProfile(), nil)
				m.authz.EXPECT().CheckAccess(gomock.Any(), landlordID, "can_edit", "profile:"+tenantID).Return(true, nil)
				m.storage.EXPECT().UpdateProfile(gomock.Any(), tenantID, gomock.Any()).Return(tenantProfile(), nil)
			},
		},
		{
			name:   "other viewer is forbidden",
			viewer: strangerID,
			update: &types.ProfileUpdate{Name: &name},
			setupMocks: func(m *serviceMocks) {
				m.storage.EXPECT().GetVisibleProfile(gomock.Any(), strangerID, tenantID).Return(tenantProfile(), nil)
			},
			expectedErr: ErrForbidden,
		},
		{
			name:   "authz denies",
			viewer: tenantID,
			update: &types.ProfileUpdate{Name: &name},
			setupMocks: func(m *serviceMocks) {
				m.storage.EXPECT().GetVisibleProfile(gomock.Any(), tenantID, tenantID).Return(tenantProfile(), nil)
				m.authz.EXPECT().CheckAccess(gomock.Any(), tenantID, "can_edit", "profile:"+tenantID).Return(false, nil)
			},
			expectedErr: ErrForbidden,
		},
		{
			name:   "name that cleans to empty",
			viewer: tenantID,
			update: &types.ProfileUpdate{Name: &blank},
			setupMocks: func(m *serviceMocks) {
				m.storage.EXPECT().GetVisibleProfile(gomock.Any(), tenantID, tenantID).Return(tenantProfile(), nil)
				m.authz.EXPECT().CheckAccess(gomock.Any(), tenantID, "can_edit", "profile:"+tenantID).Return(true, nil)
			},
			expectedErr: ErrInvalidInput,
		},
		{
			name:   "not visible",
			viewer: strangerID,
			update: &types.ProfileUpdate{Name: &name},
			setupMocks: func(m *serviceMocks) {
				m.storage.EXPECT().GetVisibleProfile(gomock.Any(), strangerID, tenantID).Return(nil, storage.ErrNotFound)
			},
			expectedErr: storage.ErrNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			s, m := newTestService(t, ctrl)
			tc.setupMocks(m)

			_, err := s.UpdateProfile(context.Background(), tc.viewer, tenantID, tc.update)
			checkErr(t, tc.expectedErr, err)
		})
	}
}

func TestService_CreateTenant(t *testing.T) {
	identityErr := errors.New("kratos down")
	dbErr := errors.New("db error")

	testCases := []struct {
		name        string
		req         *CreateTenantRequest
		setupMocks  func(*serviceMocks)
		expectedErr error
	}{
		{
			name: "success with default password",
			req:  &CreateTenantRequest{Name: "Tom", Email: "tom@example.com"},
			setupMocks: func(m *serviceMocks) {
				m.storage.EXPECT().GetProfile(gomock.Any(), landlordID).Return(landlordProfile(), nil)
				m.kratos.EXPECT().CreateIdentity(gomock.Any(), "tom@example.com", "tenant123", "Tom", types.RoleTenant).Return(tenantID, nil)
				m.storage.EXPECT().CreateProfile(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, p *types.Profile) (*types.Profile, error) {
						if p.ID != tenantID || !p.HasRole(types.RoleTenant) || p.CreatedBy == nil || *p.CreatedBy != landlordID {
							t.Errorf("unexpected profile %+v", p)
						}
						return p, nil
					},
				)
				m.authz.EXPECT().AssignProfileManager(gomock.Any(), tenantID, landlordID).Return(nil)
			},
		},
		{
			name: "explicit password",
			req:  &CreateTenantRequest{Name: "Tom", Email: "tom@example.com", Password: "s3cret-pass"},
			setupMocks: func(m *serviceMocks) {
				m.storage.EXPECT().GetProfile(gomock.Any(), landlordID).Return(landlordProfile(), nil)
				m.kratos.EXPECT().CreateIdentity(gomock.Any(), "tom@example.com", "s3cret-pass", "Tom", types.RoleTenant).Return(tenantID, nil)
				m.storage.EXPECT().CreateProfile(gomock.Any(), gomock.Any()).Return(tenantProfile(), nil)
				m.authz.EXPECT().AssignProfileManager(gomock.Any(), tenantID, landlordID).Return(errors.New("fga down"))
				m.logger.EXPECT().Errorf(gomock.Any(), gomock.Any())
			},
		},
		{
			name: "caller is a tenant",
			req:  &CreateTenantRequest{Name: "Tom", Email: "tom@example.com"},
			setupMocks: func(m *serviceMocks) {
				m.storage.EXPECT().GetProfile(gomock.Any(), landlordID).Return(tenantProfile(), nil)
			},
			expectedErr: ErrForbidden,
		},
		{
			name: "caller has no profile",
			req:  &CreateTenantRequest{Name: "Tom", Email: "tom@example.com"},
			setupMocks: func(m *serviceMocks) {
				m.storage.EXPECT().GetProfile(gomock.Any(), landlordID).Return(nil, storage.ErrNotFound)
			},
			expectedErr: ErrForbidden,
		},
		{
			name: "identity creation fails",
			req:  &CreateTenantRequest{Name: "Tom", Email: "tom@example.com"},
			setupMocks: func(m *serviceMocks) {
				m.storage.EXPECT().GetProfile(gomock.Any(), landlordID).Return(landlordProfile(), nil)
				m.kratos.EXPECT().CreateIdentity(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return("", identityErr)
			},
			expectedErr: identityErr,
		},
		{
			name: "profile creation fails rolls back the identity",
			req:  &CreateTenantRequest{Name: "Tom", Email: "tom@example.com"},
			setupMocks: func(m *serviceMocks) {
				m.storage.EXPECT().GetProfile(gomock.Any(), landlordID).Return(landlordProfile(), nil)
				m.kratos.EXPECT().CreateIdentity(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(tenantID, nil)
				m.storage.EXPECT().CreateProfile(gomock.Any(), gomock.Any()).Return(nil, dbErr)
				m.kratos.EXPECT().DeleteIdentity(gomock.Any(), tenantID).Return(nil)
			},
			expectedErr: dbErr,
		},
		{
			name: "missing name",
			req:  &CreateTenantRequest{Name: "<i></i>", Email: "tom@example.com"},
			setupMocks: func(m *serviceMocks) {
				m.storage.EXPECT().GetProfile(gomock.Any(), landlordID).Return(landlordProfile(), nil)
			},
			expectedErr: ErrInvalidInput,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			s, m := newTestService(t, ctrl)
			tc.setupMocks(m)

			_, err := s.CreateTenant(context.Background(), landlordID, tc.req)
			checkErr(t, tc.expectedErr, err)
		})
	}
}

func TestService_DeleteTenant(t *testing.T) {
	filter := types.LeaseFilter{LandlordID: landlordID, TenantID: tenantID}

	testCases := []struct {
		name        string
		setupMocks  func(*serviceMocks)
		expectedErr error
	}{
		{
			name: "success",
			setupMocks: func(m *serviceMocks) {
				m.storage.EXPECT().GetProfile(gomock.Any(), tenantID).Return(tenantProfile(), nil)
				m.authz.EXPECT().CheckAccess(gomock.Any(), landlordID, "can_edit", "profile:"+tenantID).Return(true, nil)
				m.storage.EXPECT().ListLeases(gomock.Any(), filter).Return([]*types.Lease{leaseFixture()}, nil)
				m.storage.EXPECT().DeleteLeases(gomock.Any(), filter).Return(int64(1), nil)
				m.storage.EXPECT().DeleteProfile(gomock.Any(), tenantID).Return(nil)
				m.kratos.EXPECT().DeleteIdentity(gomock.Any(), tenantID).Return(nil)
				m.authz.EXPECT().RemoveLease(gomock.Any(), leaseFixture()).Return(nil)
				m.authz.EXPECT().DeleteObject(gomock.Any(), "profile:"+tenantID).Return(nil)
			},
		},
		{
			name: "lease removal failure does not stop the deletion",
			setupMocks: func(m *serviceMocks) {
				m.storage.EXPECT().GetProfile(gomock.Any(), tenantID).Return(tenantProfile(), nil)
				m.authz.EXPECT().CheckAccess(gomock.Any(), landlordID, "can_edit", "profile:"+tenantID).Return(true, nil)
				m.storage.EXPECT().ListLeases(gomock.Any(), filter).Return(nil, nil)
				m.storage.EXPECT().DeleteLeases(gomock.Any(), filter).Return(int64(0), errors.New("db error"))
				m.logger.EXPECT().Warnf(gomock.Any(), tenantID, gomock.Any())
				m.storage.EXPECT().DeleteProfile(gomock.Any(), tenantID).Return(nil)
				m.kratos.EXPECT().DeleteIdentity(gomock.Any(), tenantID).Return(nil)
				m.authz.EXPECT().DeleteObject(gomock.Any(), "profile:"+tenantID).Return(nil)
			},
		},
		{
			name: "tenant of another landlord",
			setupMocks: func(m *serviceMocks) {
				other := "landlord-2"
				p := tenantProfile()
				p.CreatedBy = &other
				m.storage.EXPECT().GetProfile(gomock.Any(), tenantID).Return(p, nil)
			},
			expectedErr: ErrForbidden,
		},
		{
			name: "profile is a landlord",
			setupMocks: func(m *serviceMocks) {
				m.storage.EXPECT().GetProfile(gomock.Any(), tenantID).Return(landlordProfile(), nil)
			},
			expectedErr: ErrForbidden,
		},
		{
			name: "not found",
			setupMocks: func(m *serviceMocks) {
				m.storage.EXPECT().GetProfile(gomock.Any(), tenantID).Return(nil, storage.ErrNotFound)
			},
			expectedErr: storage.ErrNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			s, m := newTestService(t, ctrl)
			tc.setupMocks(m)

			err := s.DeleteTenant(context.Background(), landlordID, tenantID)
			checkErr(t, tc.expectedErr, err)
		})
	}
}

func TestService_CreateHouse(t *testing.T) {
	zero := 0

	testCases := []struct {
		name        string
		house       *types.House
		setupMocks  func(*serviceMocks)
		check       func(*testing.T, *types.House)
		expectedErr error
	}{
		{
			name:  "shared house defaults rooms and drops units",
			house: &types.House{Name: "Elm", Address: "1 Elm St", Rooms: &zero, Units: []types.Unit{{Number: "1"}}},
			check: func(t *testing.T, h *types.House) {
				if h.Type != types.HouseTypeShared {
					t.Errorf("expected default type, got %q", h.Type)
				}
				if h.Rooms == nil || *h.Rooms != 1 {
					t.Errorf("expected 1 room, got %v", h.Rooms)
				}
				if h.Units != nil {
					t.Errorf("expected no units, got %v", h.Units)
				}
			},
		},
		{
			name: "multi unit house gets unit ids and no rooms",
			house: &types.House{
				Name: "Block", Address: "2 Oak St", Type: types.HouseTypeMultiUnit, Rooms: &zero,
				Units: []types.Unit{{Number: "1A", Size: "40m2"}, {ID: "keep", Number: "1B", Size: "50m2"}},
			},
			check: func(t *testing.T, h *types.House) {
				if h.Rooms != nil {
					t.Errorf("expected no rooms, got %v", *h.Rooms)
				}
				if len(h.Units) != 2 || h.Units[0].ID == "" || h.Units[1].ID != "keep" {
					t.Errorf("unexpected units %+v", h.Units)
				}
				if h.LandlordID != landlordID {
					t.Errorf("expected landlord %s, got %s", landlordID, h.LandlordID)
				}
			},
		},
		{
			name:  "authz mirror failure is logged",
			house: &types.House{Name: "Elm", Address: "1 Elm St"},
			setupMocks: func(m *serviceMocks) {
				m.logger.EXPECT().Errorf(gomock.Any(), gomock.Any())
			},
		},
		{
			name:        "unknown type",
			house:       &types.House{Name: "Elm", Address: "1 Elm St", Type: "Castle"},
			expectedErr: ErrInvalidInput,
		},
		{
			name:        "unit without size",
			house:       &types.House{Name: "Block", Address: "2 Oak St", Type: types.HouseTypeMultiUnit, Units: []types.Unit{{Number: "1A"}}},
			expectedErr: ErrInvalidInput,
		},
		{
			name:        "missing address",
			house:       &types.House{Name: "Elm"},
			expectedErr: ErrInvalidInput,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			s, m := newTestService(t, ctrl)
			m.storage.EXPECT().GetProfile(gomock.Any(), landlordID).Return(landlordProfile(), nil)

			if tc.expectedErr == nil {
				m.storage.EXPECT().CreateHouse(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, h *types.House) (*types.House, error) {
						h.ID = houseID
						return h, nil
					},
				)

				if tc.setupMocks != nil {
					m.authz.EXPECT().AssignHouseLandlord(gomock.Any(), houseID, landlordID).Return(errors.New("fga down"))
					tc.setupMocks(m)
				} else {
					m.authz.EXPECT().AssignHouseLandlord(gomock.Any(), houseID, landlordID).Return(nil)
				}
			}

			h, err := s.CreateHouse(context.Background(), landlordID, tc.house)
			checkErr(t, tc.expectedErr, err)

			if tc.check != nil {
				tc.check(t, h)
			}
		})
	}
}

func TestService_DeleteHouse(t *testing.T) {
	filter := types.LeaseFilter{HouseID: houseID}

	testCases := []struct {
		name        string
		setupMocks  func(*serviceMocks)
		expectedErr error
	}{
		{
			name: "removes leases then the house",
			setupMocks: func(m *serviceMocks) {
				expectOwnedHouse(m)
				gomock.InOrder(
					m.storage.EXPECT().ListLeases(gomock.Any(), filter).Return([]*types.Lease{leaseFixture()}, nil),
					m.storage.EXPECT().DeleteLeases(gomock.Any(), filter).Return(int64(1), nil),
					m.storage.EXPECT().DeleteHouse(gomock.Any(), houseID).Return(nil),
				)
				m.authz.EXPECT().RemoveLease(gomock.Any(), leaseFixture()).Return(nil)
				m.authz.EXPECT().DeleteObject(gomock.Any(), "house:"+houseID).Return(nil)
			},
		},
		{
			name: "lease removal failure is logged and the house is deleted",
			setupMocks: func(m *serviceMocks) {
				expectOwnedHouse(m)
				m.storage.EXPECT().ListLeases(gomock.Any(), filter).Return(nil, nil)
				m.storage.EXPECT().DeleteLeases(gomock.Any(), filter).Return(int64(0), errors.New("db error"))
				m.logger.EXPECT().Warnf(gomock.Any(), houseID, gomock.Any())
				m.storage.EXPECT().DeleteHouse(gomock.Any(), houseID).Return(nil)
				m.authz.EXPECT().DeleteObject(gomock.Any(), "house:"+houseID).Return(nil)
			},
		},
		{
			name: "house of another landlord",
			setupMocks: func(m *serviceMocks) {
				h := ownedHouseFixture()
				h.LandlordID = "landlord-2"
				m.storage.EXPECT().GetHouse(gomock.Any(), houseID).Return(h, nil)
			},
			expectedErr: ErrForbidden,
		},
		{
			name: "house delete fails",
			setupMocks: func(m *serviceMocks) {
				expectOwnedHouse(m)
				m.storage.EXPECT().ListLeases(gomock.Any(), filter).Return(nil, nil)
				m.storage.EXPECT().DeleteLeases(gomock.Any(), filter).Return(int64(0), nil)
				m.storage.EXPECT().DeleteHouse(gomock.Any(), houseID).Return(storage.ErrNotFound)
			},
			expectedErr: storage.ErrNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			s, m := newTestService(t, ctrl)
			tc.setupMocks(m)

			err := s.DeleteHouse(context.Background(), landlordID, houseID)
			checkErr(t, tc.expectedErr, err)
		})
	}
}

func TestService_CreateLease(t *testing.T) {
	newLease := func() *types.Lease {
		return &types.Lease{
			HouseID:        houseID,
			TenantID:       tenantID,
			RentAmount:     900,
			LeaseStartDate: now,
			LeaseEndDate:   now.AddDate(1, 0, 0),
			Status:         types.LeaseStatusActive,
		}
	}

	testCases := []struct {
		name        string
		lease       func() *types.Lease
		setupMocks  func(*serviceMocks)
		expectedErr error
	}{
		{
			name:  "success",
			lease: newLease,
			setupMocks: func(m *serviceMocks) {
				expectOwnedHouse(m)
				m.storage.EXPECT().GetProfile(gomock.Any(), tenantID).Return(tenantProfile(), nil)
				runInTx(m)
				m.storage.EXPECT().HasActiveLease(gomock.Any(), tenantID, "").Return(false, nil)
				m.storage.EXPECT().CreateLease(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, l *types.Lease) (*types.Lease, error) {
						if l.LandlordID != landlordID {
							t.Errorf("expected landlord %s, got %s", landlordID, l.LandlordID)
						}
						l.ID = leaseID
						return l, nil
					},
				)
				m.authz.EXPECT().AssignLease(gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			name:  "tenant already has an active lease",
			lease: newLease,
			setupMocks: func(m *serviceMocks) {
				expectOwnedHouse(m)
				m.storage.EXPECT().GetProfile(gomock.Any(), tenantID).Return(tenantProfile(), nil)
				runInTx(m)
				m.storage.EXPECT().HasActiveLease(gomock.Any(), tenantID, "").Return(true, nil)
			},
			expectedErr: storage.ErrActiveLeaseExists,
		},
		{
			name: "pending lease skips the active check",
			lease: func() *types.Lease {
				l := newLease()
				l.Status = ""
				return l
			},
			setupMocks: func(m *serviceMocks) {
				expectOwnedHouse(m)
				m.storage.EXPECT().GetProfile(gomock.Any(), tenantID).Return(tenantProfile(), nil)
				runInTx(m)
				m.storage.EXPECT().CreateLease(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, l *types.Lease) (*types.Lease, error) {
						if l.Status != types.LeaseStatusPending {
							t.Errorf("expected pending status, got %q", l.Status)
						}
						return l, nil
					},
				)
				m.authz.EXPECT().AssignLease(gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			name: "ends before it starts",
			lease: func() *types.Lease {
				l := newLease()
				l.LeaseEndDate = now.AddDate(0, -1, 0)
				return l
			},
			setupMocks:  expectOwnedHouse,
			expectedErr: ErrInvalidInput,
		},
		{
			name:  "tenant is not a tenant",
			lease: newLease,
			setupMocks: func(m *serviceMocks) {
				expectOwnedHouse(m)
				m.storage.EXPECT().GetProfile(gomock.Any(), tenantID).Return(landlordProfile(), nil)
			},
			expectedErr: ErrInvalidInput,
		},
		{
			name:  "house of another landlord",
			lease: newLease,
			setupMocks: func(m *serviceMocks) {
				h := ownedHouseFixture()
				h.LandlordID = "landlord-2"
				m.storage.EXPECT().GetHouse(gomock.Any(), houseID).Return(h, nil)
			},
			expectedErr: ErrForbidden,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			s, m := newTestService(t, ctrl)
			tc.setupMocks(m)

			_, err := s.CreateLease(context.Background(), landlordID, tc.lease())
			checkErr(t, tc.expectedErr, err)
		})
	}
}

func TestService_UpdateLease_ActiveConflict(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, m := newTestService(t, ctrl)

	m.storage.EXPECT().GetLease(gomock.Any(), leaseID).Return(leaseFixture(), nil)
	m.authz.EXPECT().CheckAccess(gomock.Any(), landlordID, "can_edit", "lease:"+leaseID).Return(true, nil)
	expectOwnedHouse(m)
	m.storage.EXPECT().GetProfile(gomock.Any(), tenantID).Return(tenantProfile(), nil)
	runInTx(m)
	m.storage.EXPECT().HasActiveLease(gomock.Any(), tenantID, leaseID).Return(true, nil)

	update := leaseFixture()
	update.HouseID = ""
	update.TenantID = ""

	_, err := s.UpdateLease(context.Background(), landlordID, update)
	checkErr(t, storage.ErrActiveLeaseExists, err)
}

func TestService_ListLeasesByLandlord(t *testing.T) {
	mine := leaseFixture()
	other := leaseFixture()
	other.ID = "lease-2"
	other.TenantID = "tenant-2"

	testCases := []struct {
		name     string
		viewer   string
		expected int
	}{
		{name: "landlord sees all", viewer: landlordID, expected: 2},
		{name: "tenant sees their own", viewer: tenantID, expected: 1},
		{name: "stranger sees nothing", viewer: strangerID, expected: 0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			s, m := newTestService(t, ctrl)
			m.storage.EXPECT().ListLeasesByLandlord(gomock.Any(), landlordID).Return([]*types.Lease{mine, other}, nil)

			leases, err := s.ListLeasesByLandlord(context.Background(), tc.viewer, landlordID)
			checkErr(t, nil, err)

			if len(leases) != tc.expected {
				t.Errorf("expected %d leases, got %d", tc.expected, len(leases))
			}
		})
	}
}

func TestService_DeleteLeases(t *testing.T) {
	testCases := []struct {
		name        string
		filter      types.LeaseFilter
		setupMocks  func(*serviceMocks)
		expected    int64
		expectedErr error
	}{
		{
			name:   "landlord is forced into the filter",
			filter: types.LeaseFilter{TenantID: tenantID, LandlordID: "landlord-2"},
			setupMocks: func(m *serviceMocks) {
				forced := types.LeaseFilter{TenantID: tenantID, LandlordID: landlordID}
				m.storage.EXPECT().GetProfile(gomock.Any(), landlordID).Return(landlordProfile(), nil)
				m.storage.EXPECT().ListLeases(gomock.Any(), forced).Return([]*types.Lease{leaseFixture()}, nil)
				m.storage.EXPECT().DeleteLeases(gomock.Any(), forced).Return(int64(1), nil)
				m.authz.EXPECT().RemoveLease(gomock.Any(), leaseFixture()).Return(nil)
			},
			expected: 1,
		},
		{
			name:        "tenant or house required",
			filter:      types.LeaseFilter{},
			setupMocks:  func(*serviceMocks) {},
			expectedErr: ErrInvalidInput,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			s, m := newTestService(t, ctrl)
			tc.setupMocks(m)

			n, err := s.DeleteLeases(context.Background(), landlordID, tc.filter)
			checkErr(t, tc.expectedErr, err)

			if n != tc.expected {
				t.Errorf("expected %d deleted, got %d", tc.expected, n)
			}
		})
	}
}

func TestService_ListPayments(t *testing.T) {
	otherLease := leaseFixture()
	otherLease.ID = "lease-2"
	otherLease.LandlordID = "landlord-2"
	otherLease.TenantID = "tenant-2"

	testCases := []struct {
		name       string
		leaseIDs   []string
		setupMocks func(*serviceMocks)
	}{
		{
			name:       "no lease ids",
			leaseIDs:   nil,
			setupMocks: func(*serviceMocks) {},
		},
		{
			name:     "only visible leases are queried",
			leaseIDs: []string{leaseID, leaseID, "lease-2", "gone"},
			setupMocks: func(m *serviceMocks) {
				m.storage.EXPECT().GetLease(gomock.Any(), leaseID).Return(leaseFixture(), nil)
				m.storage.EXPECT().GetLease(gomock.Any(), "lease-2").Return(otherLease, nil)
				m.storage.EXPECT().GetLease(gomock.Any(), "gone").Return(nil, storage.ErrNotFound)
				m.storage.EXPECT().ListPaymentsByLeases(gomock.Any(), []string{leaseID}).Return([]*types.Payment{{ID: "p1"}}, nil)
			},
		},
		{
			name:     "nothing visible",
			leaseIDs: []string{"lease-2"},
			setupMocks: func(m *serviceMocks) {
				m.storage.EXPECT().GetLease(gomock.Any(), "lease-2").Return(otherLease, nil)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			s, m := newTestService(t, ctrl)
			tc.setupMocks(m)

			payments, err := s.ListPayments(context.Background(), landlordID, tc.leaseIDs)
			checkErr(t, nil, err)

			if payments == nil {
				t.Errorf("expected a non nil slice")
			}
		})
	}
}

func TestService_CreatePayment(t *testing.T) {
	testCases := []struct {
		name        string
		viewer      string
		payment     *types.Payment
		setupMocks  func(*serviceMocks)
		expectedErr error
	}{
		{
			name:    "tenant records a pending cash payment",
			viewer:  tenantID,
			payment: &types.Payment{LeaseID: leaseID, Amount: 900, PaymentDate: now, Status: types.PaymentStatusApproved},
			setupMocks: func(m *serviceMocks) {
				m.storage.EXPECT().GetLease(gomock.Any(), leaseID).Return(leaseFixture(), nil)
				m.authz.EXPECT().CheckAccess(gomock.Any(), tenantID, "can_pay", "lease:"+leaseID).Return(true, nil)
				m.storage.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, p *types.Payment) (*types.Payment, error) {
						if p.Status != types.PaymentStatusPending || p.Method != types.PaymentMethodCash {
							t.Errorf("unexpected payment %+v", p)
						}
						return p, nil
					},
				)
			},
		},
		{
			name:    "landlord cannot pay",
			viewer:  landlordID,
			payment: &types.Payment{LeaseID: leaseID, Amount: 900, PaymentDate: now},
			setupMocks: func(m *serviceMocks) {
				m.storage.EXPECT().GetLease(gomock.Any(), leaseID).Return(leaseFixture(), nil)
			},
			expectedErr: ErrForbidden,
		},
		{
			name:        "missing amount",
			viewer:      tenantID,
			payment:     &types.Payment{LeaseID: leaseID, PaymentDate: now},
			setupMocks:  func(*serviceMocks) {},
			expectedErr: ErrInvalidInput,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			s, m := newTestService(t, ctrl)
			tc.setupMocks(m)

			_, err := s.CreatePayment(context.Background(), tc.viewer, tc.payment)
			checkErr(t, tc.expectedErr, err)
		})
	}
}

func TestService_UpdatePaymentStatus(t *testing.T) {
	testCases := []struct {
		name        string
		status      string
		setupMocks  func(*serviceMocks)
		expectedErr error
	}{
		{
			name:   "approve",
			status: types.PaymentStatusApproved,
			setupMocks: func(m *serviceMocks) {
				m.storage.EXPECT().GetPayment(gomock.Any(), "p1").Return(&types.Payment{ID: "p1", LeaseID: leaseID}, nil)
				m.storage.EXPECT().GetLease(gomock.Any(), leaseID).Return(leaseFixture(), nil)
				m.authz.EXPECT().CheckAccess(gomock.Any(), landlordID, "can_edit", "lease:"+leaseID).Return(true, nil)
				m.storage.EXPECT().UpdatePaymentStatus(gomock.Any(), "p1", types.PaymentStatusApproved).Return(&types.Payment{ID: "p1"}, nil)
			},
		},
		{
			name:        "unknown status",
			status:      "refunded",
			setupMocks:  func(*serviceMocks) {},
			expectedErr: ErrInvalidInput,
		},
		{
			name:   "payment not found",
			status: types.PaymentStatusRejected,
			setupMocks: func(m *serviceMocks) {
				m.storage.EXPECT().GetPayment(gomock.Any(), "p1").Return(nil, storage.ErrNotFound)
			},
			expectedErr: storage.ErrNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			s, m := newTestService(t, ctrl)
			tc.setupMocks(m)

			_, err := s.UpdatePaymentStatus(context.Background(), landlordID, "p1", tc.status)
			checkErr(t, tc.expectedErr, err)
		})
	}
}

func TestService_ListMaintenanceRequests(t *testing.T) {
	requests := []*types.MaintenanceRequest{
		{ID: "m1", HouseID: houseID, TenantID: tenantID},
		{ID: "m2", HouseID: "house-2", TenantID: "tenant-2"},
		{ID: "m3", HouseID: houseID, TenantID: "tenant-3"},
	}

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, m := newTestService(t, ctrl)

	filter := types.MaintenanceFilter{HouseIDs: []string{houseID, "house-2"}}
	m.storage.EXPECT().ListMaintenanceRequests(gomock.Any(), filter).Return(requests, nil)
	m.storage.EXPECT().GetHouse(gomock.Any(), houseID).Return(ownedHouseFixture(), nil).Times(1)
	m.storage.EXPECT().GetHouse(gomock.Any(), "house-2").Return(&types.House{ID: "house-2", LandlordID: "landlord-2"}, nil).Times(1)

	got, err := s.ListMaintenanceRequests(context.Background(), landlordID, filter)
	checkErr(t, nil, err)

	if len(got) != 2 || got[0].ID != "m1" || got[1].ID != "m3" {
		t.Errorf("unexpected requests %+v", got)
	}

	empty, err := s.ListMaintenanceRequests(context.Background(), landlordID, types.MaintenanceFilter{})
	checkErr(t, nil, err)

	if empty == nil || len(empty) != 0 {
		t.Errorf("expected an empty list, got %v", empty)
	}
}

func TestService_CreateMaintenanceRequest(t *testing.T) {
	testCases := []struct {
		name        string
		viewer      string
		request     *types.MaintenanceRequest
		setupMocks  func(*serviceMocks)
		expectedErr error
	}{
		{
			name:    "tenant files an open request",
			viewer:  tenantID,
			request: &types.MaintenanceRequest{LeaseID: leaseID, Description: "<b>leak</b> under sink", Status: types.MaintenanceStatusClosed},
			setupMocks: func(m *serviceMocks) {
				m.storage.EXPECT().GetLease(gomock.Any(), leaseID).Return(leaseFixture(), nil)
				m.authz.EXPECT().CheckAccess(gomock.Any(), tenantID, "can_request_maintenance", "lease:"+leaseID).Return(true, nil)
				m.storage.EXPECT().CreateMaintenanceRequest(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, r *types.MaintenanceRequest) (*types.MaintenanceRequest, error) {
						if r.Status != types.MaintenanceStatusOpen || r.Priority != types.MaintenancePriorityMedium {
							t.Errorf("unexpected request %+v", r)
						}
						if r.HouseID != houseID || r.TenantID != tenantID || r.Description != "leak under sink" {
							t.Errorf("unexpected request %+v", r)
						}
						if !r.SubmittedDate.Equal(now) {
							t.Errorf("expected submitted date %v, got %v", now, r.SubmittedDate)
						}
						return r, nil
					},
				)
			},
		},
		{
			name:    "house does not match the lease",
			viewer:  tenantID,
			request: &types.MaintenanceRequest{LeaseID: leaseID, HouseID: "house-2", Description: "leak"},
			setupMocks: func(m *serviceMocks) {
				m.storage.EXPECT().GetLease(gomock.Any(), leaseID).Return(leaseFixture(), nil)
			},
			expectedErr: ErrInvalidInput,
		},
		{
			name:    "not the tenant of the lease",
			viewer:  strangerID,
			request: &types.MaintenanceRequest{LeaseID: leaseID, Description: "leak"},
			setupMocks: func(m *serviceMocks) {
				m.storage.EXPECT().GetLease(gomock.Any(), leaseID).Return(leaseFixture(), nil)
			},
			expectedErr: ErrForbidden,
		},
		{
			name:        "missing description",
			viewer:      tenantID,
			request:     &types.MaintenanceRequest{LeaseID: leaseID},
			setupMocks:  func(*serviceMocks) {},
			expectedErr: ErrInvalidInput,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			s, m := newTestService(t, ctrl)
			tc.setupMocks(m)

			_, err := s.CreateMaintenanceRequest(context.Background(), tc.viewer, tc.request)
			checkErr(t, tc.expectedErr, err)
		})
	}
}

func TestService_UpdateMaintenanceStatus(t *testing.T) {
	notes := "fixed <script>x</script>"

	testCases := []struct {
		name         string
		status       string
		notes        *string
		wantResolved bool
		expectedErr  error
	}{
		{name: "resolved stamps resolved_at", status: types.MaintenanceStatusResolved, notes: &notes, wantResolved: true},
		{name: "closed stamps resolved_at", status: types.MaintenanceStatusClosed, wantResolved: true},
		{name: "reopening clears resolved_at", status: types.MaintenanceStatusInProgress, wantResolved: false},
		{name: "unknown status", status: "Done", expectedErr: ErrInvalidInput},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			s, m := newTestService(t, ctrl)

			if tc.expectedErr == nil {
				m.storage.EXPECT().GetMaintenanceRequest(gomock.Any(), "m1").Return(&types.MaintenanceRequest{ID: "m1", HouseID: houseID}, nil)
				expectOwnedHouse(m)
				m.storage.EXPECT().UpdateMaintenanceStatus(gomock.Any(), "m1", tc.status, gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, _, _ string, resolvedAt *time.Time, n *string) (*types.MaintenanceRequest, error) {
						if (resolvedAt != nil) != tc.wantResolved {
							t.Errorf("expected resolved %v, got %v", tc.wantResolved, resolvedAt)
						}
						if resolvedAt != nil && !resolvedAt.Equal(now) {
							t.Errorf("expected resolved at %v, got %v", now, resolvedAt)
						}
						if tc.notes != nil && (n == nil || *n != "fixed") {
							t.Errorf("expected cleaned notes, got %v", n)
						}
						if tc.notes == nil && n != nil {
							t.Errorf("expected no notes, got %v", *n)
						}
						return &types.MaintenanceRequest{ID: "m1", Status: tc.status}, nil
					},
				)
			}

			_, err := s.UpdateMaintenanceStatus(context.Background(), landlordID, "m1", tc.status, tc.notes)
			checkErr(t, tc.expectedErr, err)
		})
	}
}
