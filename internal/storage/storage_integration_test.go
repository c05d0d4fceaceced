// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

//go:build integration

package storage

import (
	"context"
	"errors"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"

	"github.com/tenantflow/tenantflow/internal/db"
	"github.com/tenantflow/tenantflow/internal/logging"
	"github.com/tenantflow/tenantflow/internal/monitoring"
	"github.com/tenantflow/tenantflow/internal/tracing"
	"github.com/tenantflow/tenantflow/internal/types"
	"github.com/tenantflow/tenantflow/migrations"
)

var (
	testDB      *db.DBClient
	testStorage *Storage
)

func TestMain(m *testing.M) {
	code, err := runIntegration(m)
	if err != nil {
		fmt.Fprintf(os.Stderr, "integration setup failed: %v\n", err)
		os.Exit(1)
	}

	os.Exit(code)
}

func runIntegration(m *testing.M) (int, error) {
	ctx := context.Background()

	ctr, err := postgres.Run(ctx, "postgres:16-alpine",
		postgres.WithDatabase("tenantflow"),
		postgres.WithUsername("tenantflow"),
		postgres.WithPassword("tenantflow"),
		postgres.BasicWaitStrategies(),
	)
	if err != nil {
		return 0, fmt.Errorf("failed to start postgres: %w", err)
	}
	defer func() { _ = testcontainers.TerminateContainer(ctr) }()

	dsn, err := ctr.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		return 0, err
	}

	logger := logging.NewNoopLogger()
	tracer := tracing.NewNoopTracer()
	monitor := monitoring.NewNoopMonitor("test", logger)

	testDB, err = db.NewDBClient(db.Config{DSN: dsn, MaxConns: 4, MinConns: 1, MaxConnLifetime: time.Hour, MaxConnIdleTime: time.Minute}, tracer, monitor, logger)
	if err != nil {
		return 0, err
	}
	defer testDB.Close()

	provider, err := migrations.NewProvider(testDB.DB(), true)
	if err != nil {
		return 0, err
	}
	if _, err := provider.Up(ctx); err != nil {
		return 0, fmt.Errorf("failed to migrate: %w", err)
	}

	testStorage = NewStorage(testDB, tracer, monitor, logger)

	return m.Run(), nil
}

func createProfile(t *testing.T, role types.Role, createdBy *string) *types.Profile {
	t.Helper()

	id := uuid.NewString()
	p, err := testStorage.CreateProfile(context.Background(), &types.Profile{
		ID:        id,
		Name:      string(role) + " " + id[:8],
		Email:     id + "@example.com",
		Role:      &role,
		CreatedBy: createdBy,
	})
	if err != nil {
		t.Fatalf("failed to create profile: %v", err)
	}

	return p
}

func createHouse(t *testing.T, landlordID string) *types.House {
	t.Helper()

	rooms := 2
	h, err := testStorage.CreateHouse(context.Background(), &types.House{
		LandlordID: landlordID,
		Name:       "Elm House",
		Address:    "1 Elm St",
		Type:       types.HouseTypeShared,
		Rooms:      &rooms,
	})
	if err != nil {
		t.Fatalf("failed to create house: %v", err)
	}

	return h
}

func createLease(landlordID, houseID, tenantID, status string) (*types.Lease, error) {
	return testStorage.CreateLease(context.Background(), &types.Lease{
		LandlordID:     landlordID,
		HouseID:        houseID,
		TenantID:       tenantID,
		RentAmount:     900,
		LeaseStartDate: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		LeaseEndDate:   time.Date(2026, 12, 31, 0, 0, 0, 0, time.UTC),
		Status:         status,
	})
}

func TestProfiles(t *testing.T) {
	ctx := context.Background()
	landlord := createProfile(t, types.RoleLandlord, nil)

	got, err := testStorage.GetProfile(ctx, landlord.ID)
	if err != nil {
		t.Fatalf("failed to get profile: %v", err)
	}
	if !got.HasRole(types.RoleLandlord) {
		t.Errorf("expected a landlord, got %+v", got)
	}

	if _, err := testStorage.GetProfile(ctx, uuid.NewString()); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}

	_, err = testStorage.CreateProfile(ctx, &types.Profile{ID: landlord.ID, Name: "dup", Email: "dup@example.com"})
	if !errors.Is(err, ErrDuplicateKey) {
		t.Errorf("expected ErrDuplicateKey, got %v", err)
	}
}

func TestOneActiveLeasePerTenant(t *testing.T) {
	landlord := createProfile(t, types.RoleLandlord, nil)
	tenant := createProfile(t, types.RoleTenant, &landlord.ID)
	house := createHouse(t, landlord.ID)

	if _, err := createLease(landlord.ID, house.ID, tenant.ID, types.LeaseStatusActive); err != nil {
		t.Fatalf("failed to create the first lease: %v", err)
	}

	if _, err := createLease(landlord.ID, house.ID, tenant.ID, types.LeaseStatusActive); !errors.Is(err, ErrActiveLeaseExists) {
		t.Errorf("expected ErrActiveLeaseExists, got %v", err)
	}

	if _, err := createLease(landlord.ID, house.ID, tenant.ID, types.LeaseStatusEnded); err != nil {
		t.Errorf("an ended lease next to the active one should be accepted: %v", err)
	}

	active, err := testStorage.HasActiveLease(context.Background(), tenant.ID, "")
	if err != nil || !active {
		t.Errorf("expected an active lease, got %v, %v", active, err)
	}
}

func TestDeleteLeases(t *testing.T) {
	ctx := context.Background()

	landlord := createProfile(t, types.RoleLandlord, nil)
	house := createHouse(t, landlord.ID)
	other := createHouse(t, landlord.ID)

	for i := 0; i < 3; i++ {
		tenant := createProfile(t, types.RoleTenant, &landlord.ID)
		houseID := house.ID
		if i == 2 {
			houseID = other.ID
		}
		if _, err := createLease(landlord.ID, houseID, tenant.ID, types.LeaseStatusPending); err != nil {
			t.Fatalf("failed to create lease: %v", err)
		}
	}

	if _, err := testStorage.DeleteLeases(ctx, types.LeaseFilter{}); err == nil {
		t.Fatal("expected an unfiltered delete to be refused")
	}

	n, err := testStorage.DeleteLeases(ctx, types.LeaseFilter{LandlordID: landlord.ID, HouseID: house.ID})
	if err != nil {
		t.Fatalf("failed to delete leases: %v", err)
	}
	if n != 2 {
		t.Errorf("expected 2 deleted leases, got %d", n)
	}

	leases, err := testStorage.ListLeasesByLandlord(ctx, landlord.ID)
	if err != nil {
		t.Fatalf("failed to list leases: %v", err)
	}
	if len(leases) != 1 || leases[0].HouseID != other.ID {
		t.Errorf("expected only the lease of the other house, got %+v", leases)
	}
}

func TestWithTxRollsBack(t *testing.T) {
	ctx := context.Background()
	landlord := createProfile(t, types.RoleLandlord, nil)

	boom := errors.New("boom")
	err := testDB.WithTx(ctx, func(txCtx context.Context) error {
		if _, err := testStorage.CreateHouse(txCtx, &types.House{LandlordID: landlord.ID, Name: "Ghost", Address: "nowhere", Type: types.HouseTypeShared}); err != nil {
			return err
		}
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("expected the callback error, got %v", err)
	}

	houses, err := testStorage.ListHousesByLandlord(ctx, landlord.ID, landlord.ID)
	if err != nil {
		t.Fatalf("failed to list houses: %v", err)
	}
	if len(houses) != 0 {
		t.Errorf("expected the house to be rolled back, got %d houses", len(houses))
	}
}

func TestMaintenanceByHouses(t *testing.T) {
	ctx := context.Background()

	landlord := createProfile(t, types.RoleLandlord, nil)
	tenant := createProfile(t, types.RoleTenant, &landlord.ID)
	house := createHouse(t, landlord.ID)

	lease, err := createLease(landlord.ID, house.ID, tenant.ID, types.LeaseStatusActive)
	if err != nil {
		t.Fatalf("failed to create lease: %v", err)
	}

	_, err = testStorage.CreateMaintenanceRequest(ctx, &types.MaintenanceRequest{
		LeaseID:       lease.ID,
		HouseID:       house.ID,
		TenantID:      tenant.ID,
		Description:   "Leaking tap",
		Priority:      types.MaintenancePriorityHigh,
		Status:        types.MaintenanceStatusOpen,
		SubmittedDate: time.Now().UTC(),
	})
	if err != nil {
		t.Fatalf("failed to create maintenance request: %v", err)
	}

	requests, err := testStorage.ListMaintenanceRequests(ctx, types.MaintenanceFilter{HouseIDs: []string{house.ID}})
	if err != nil {
		t.Fatalf("failed to list requests: %v", err)
	}
	if len(requests) != 1 || requests[0].Description != "Leaking tap" {
		t.Errorf("unexpected requests %+v", requests)
	}

	mine, err := testStorage.ListMaintenanceRequests(ctx, types.MaintenanceFilter{TenantID: tenant.ID})
	if err != nil || len(mine) != 1 {
		t.Errorf("expected the tenant to see their request, got %v, %v", mine, err)
	}
}
