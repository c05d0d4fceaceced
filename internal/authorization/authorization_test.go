// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authorization

import (
	"context"
	"errors"
	"slices"
	"testing"

	fga "github.com/openfga/go-sdk"
	"github.com/openfga/go-sdk/client"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/mock/gomock"

	"github.com/tenantflow/tenantflow/internal/openfga"
	"github.com/tenantflow/tenantflow/internal/types"
)

//go:generate mockgen -build_flags=--mod=mod -package authorization -destination ./mock_interfaces.go -source=./interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package authorization -destination ./mock_logger.go -source=../logging/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package authorization -destination ./mock_monitor.go -source=../monitoring/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package authorization -destination ./mock_tracing.go -source=../tracing/interfaces.go

func TestAuthorizer_Check(t *testing.T) {
	user := "user:123"
	relation := "can_view"
	object := "house:456"
	contextualTuples := []openfga.Tuple{*openfga.NewTuple("user:789", "landlord", "house:456")}

	testCases := []struct {
		name           string
		setupMocks     func(*MockAuthzClientInterface)
		expectedResult bool
		expectedErr    bool
	}{
		{
			name: "success - allowed",
			setupMocks: func(mockClient *MockAuthzClientInterface) {
				mockClient.EXPECT().Check(gomock.Any(), user, relation, object, contextualTuples).Return(true, nil)
			},
			expectedResult: true,
			expectedErr:    false,
		},
		{
			name: "success - not allowed",
			setupMocks: func(mockClient *MockAuthzClientInterface) {
				mockClient.EXPECT().Check(gomock.Any(), user, relation, object, contextualTuples).Return(false, nil)
			},
			expectedResult: false,
			expectedErr:    false,
		},
		{
			name: "error - client error",
			setupMocks: func(mockClient *MockAuthzClientInterface) {
				mockClient.EXPECT().Check(gomock.Any(), user, relation, object, contextualTuples).Return(false, errors.New("client error"))
			},
			expectedResult: false,
			expectedErr:    true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockClient := NewMockAuthzClientInterface(ctrl)
			mockTracer := NewMockTracingInterface(ctrl)
			mockMonitor := NewMockMonitorInterface(ctrl)
			mockLogger := NewMockLoggerInterface(ctrl)

			a := NewAuthorizer(mockClient, mockTracer, mockMonitor, mockLogger)

			mockTracer.EXPECT().Start(gomock.Any(), "authorization.Authorizer.Check").
				Return(context.Background(), trace.SpanFromContext(context.Background()))
			tc.setupMocks(mockClient)

			result, err := a.Check(context.Background(), user, relation, object, contextualTuples...)

			if tc.expectedErr {
				if err == nil {
					t.Error("expected error but got none")
				}
			} else if err != nil {
				t.Errorf("unexpected error: %v", err)
			}

			if result != tc.expectedResult {
				t.Errorf("expected result %v, got %v", tc.expectedResult, result)
			}
		})
	}
}

func TestAuthorizer_ListObjects(t *testing.T) {
	user := "user:123"
	relation := "can_view"
	objectType := "house"
	objects := []string{"house:1", "house:2", "house:3"}

	testCases := []struct {
		name        string
		setupMocks  func(*MockAuthzClientInterface)
		expectedErr bool
	}{
		{
			name: "success",
			setupMocks: func(mockClient *MockAuthzClientInterface) {
				mockClient.EXPECT().ListObjects(gomock.Any(), user, relation, objectType).Return(objects, nil)
			},
			expectedErr: false,
		},
		{
			name: "error - client error",
			setupMocks: func(mockClient *MockAuthzClientInterface) {
				mockClient.EXPECT().ListObjects(gomock.Any(), user, relation, objectType).Return(nil, errors.New("client error"))
			},
			expectedErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockClient := NewMockAuthzClientInterface(ctrl)
			mockTracer := NewMockTracingInterface(ctrl)
			mockMonitor := NewMockMonitorInterface(ctrl)
			mockLogger := NewMockLoggerInterface(ctrl)

			a := NewAuthorizer(mockClient, mockTracer, mockMonitor, mockLogger)

			mockTracer.EXPECT().Start(gomock.Any(), "authorization.Authorizer.ListObjects").
				Return(context.Background(), trace.SpanFromContext(context.Background()))
			tc.setupMocks(mockClient)

			result, err := a.ListObjects(context.Background(), user, relation, objectType)

			if tc.expectedErr {
				if err == nil {
					t.Error("expected error but got none")
				}
			} else {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				if len(result) != len(objects) {
					t.Errorf("expected %d objects, got %d", len(objects), len(result))
				}
			}
		})
	}
}

func TestAuthorizer_FilterObjects(t *testing.T) {
	user := "user:123"
	relation := "can_view"
	objectType := "house"
	requestedObjs := []string{"house:1", "house:2", "house:3", "house:4"}
	allowedObjs := []string{"house:1", "house:3", "house:5"}

	testCases := []struct {
		name           string
		setupMocks     func(*MockAuthzClientInterface)
		expectedResult []string
		expectedErr    bool
	}{
		{
			name: "success - filters correctly",
			setupMocks: func(mockClient *MockAuthzClientInterface) {
				mockClient.EXPECT().ListObjects(gomock.Any(), user, relation, objectType).Return(allowedObjs, nil)
			},
			expectedResult: []string{"house:1", "house:3"},
			expectedErr:    false,
		},
		{
			name: "success - no overlap",
			setupMocks: func(mockClient *MockAuthzClientInterface) {
				mockClient.EXPECT().ListObjects(gomock.Any(), user, relation, objectType).Return([]string{"tenant:9"}, nil)
			},
			expectedResult: nil,
			expectedErr:    false,
		},
		{
			name: "error - list objects error",
			setupMocks: func(mockClient *MockAuthzClientInterface) {
				mockClient.EXPECT().ListObjects(gomock.Any(), user, relation, objectType).Return(nil, errors.New("client error"))
			},
			expectedErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockClient := NewMockAuthzClientInterface(ctrl)
			mockTracer := NewMockTracingInterface(ctrl)
			mockMonitor := NewMockMonitorInterface(ctrl)
			mockLogger := NewMockLoggerInterface(ctrl)

			a := NewAuthorizer(mockClient, mockTracer, mockMonitor, mockLogger)

			mockTracer.EXPECT().Start(gomock.Any(), "authorization.Authorizer.FilterObjects").
				Return(context.Background(), trace.SpanFromContext(context.Background()))
			mockTracer.EXPECT().Start(gomock.Any(), "authorization.Authorizer.ListObjects").
				Return(context.Background(), trace.SpanFromContext(context.Background()))
			tc.setupMocks(mockClient)

			result, err := a.FilterObjects(context.Background(), user, relation, objectType, requestedObjs)

			if tc.expectedErr {
				if err == nil {
					t.Error("expected error but got none")
				}
			} else {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				if len(result) != len(tc.expectedResult) {
					t.Errorf("expected %d filtered objects, got %d", len(tc.expectedResult), len(result))
				}
			}
		})
	}
}

func TestAuthorizer_ValidateModel(t *testing.T) {
	testCases := []struct {
		name        string
		setupMocks  func(*MockAuthzClientInterface)
		expectedErr error
	}{
		{
			name: "success - models match",
			setupMocks: func(mockClient *MockAuthzClientInterface) {
				mockClient.EXPECT().CompareModel(gomock.Any(), gomock.Any()).Return(true, nil)
			},
			expectedErr: nil,
		},
		{
			name: "error - models do not match",
			setupMocks: func(mockClient *MockAuthzClientInterface) {
				mockClient.EXPECT().CompareModel(gomock.Any(), gomock.Any()).Return(false, nil)
			},
			expectedErr: ErrInvalidAuthModel,
		},
		{
			name: "error - client error",
			setupMocks: func(mockClient *MockAuthzClientInterface) {
				mockClient.EXPECT().CompareModel(gomock.Any(), gomock.Any()).Return(false, errors.New("client error"))
			},
			expectedErr: errors.New("client error"),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockClient := NewMockAuthzClientInterface(ctrl)
			mockTracer := NewMockTracingInterface(ctrl)
			mockMonitor := NewMockMonitorInterface(ctrl)
			mockLogger := NewMockLoggerInterface(ctrl)

			a := NewAuthorizer(mockClient, mockTracer, mockMonitor, mockLogger)

			mockTracer.EXPECT().Start(gomock.Any(), "authorization.Authorizer.ValidateModel").
				Return(context.Background(), trace.SpanFromContext(context.Background()))
			tc.setupMocks(mockClient)

			err := a.ValidateModel(context.Background())

			if tc.expectedErr != nil {
				if err == nil {
					t.Errorf("expected error %v but got none", tc.expectedErr)
				} else if tc.expectedErr == ErrInvalidAuthModel && err != ErrInvalidAuthModel {
					t.Errorf("expected ErrInvalidAuthModel but got %v", err)
				}
			} else if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestAuthorizer_CheckAccess(t *testing.T) {
	houseID := "house-123"
	userID := "user-456"

	testCases := []struct {
		name           string
		setupMocks     func(*MockAuthzClientInterface)
		expectedResult bool
		expectedErr    bool
	}{
		{
			name: "success - allowed",
			setupMocks: func(mockClient *MockAuthzClientInterface) {
				mockClient.EXPECT().Check(gomock.Any(), UserTuple(userID), CAN_EDIT_PERMISSION, HouseTuple(houseID)).Return(true, nil)
			},
			expectedResult: true,
		},
		{
			name: "success - not allowed",
			setupMocks: func(mockClient *MockAuthzClientInterface) {
				mockClient.EXPECT().Check(gomock.Any(), UserTuple(userID), CAN_EDIT_PERMISSION, HouseTuple(houseID)).Return(false, nil)
			},
			expectedResult: false,
		},
		{
			name: "error - check error",
			setupMocks: func(mockClient *MockAuthzClientInterface) {
				mockClient.EXPECT().Check(gomock.Any(), UserTuple(userID), CAN_EDIT_PERMISSION, HouseTuple(houseID)).Return(false, errors.New("check error"))
			},
			expectedErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockClient := NewMockAuthzClientInterface(ctrl)
			mockTracer := NewMockTracingInterface(ctrl)
			mockMonitor := NewMockMonitorInterface(ctrl)
			mockLogger := NewMockLoggerInterface(ctrl)

			a := NewAuthorizer(mockClient, mockTracer, mockMonitor, mockLogger)

			mockTracer.EXPECT().Start(gomock.Any(), "authorization.Authorizer.CheckAccess").
				Return(context.Background(), trace.SpanFromContext(context.Background()))
			mockTracer.EXPECT().Start(gomock.Any(), "authorization.Authorizer.Check").
				Return(context.Background(), trace.SpanFromContext(context.Background()))
			tc.setupMocks(mockClient)

			result, err := a.CheckAccess(context.Background(), userID, CAN_EDIT_PERMISSION, HouseTuple(houseID))

			if tc.expectedErr {
				if err == nil {
					t.Error("expected error but got none")
				}
			} else if err != nil {
				t.Errorf("unexpected error: %v", err)
			}

			if result != tc.expectedResult {
				t.Errorf("expected result %v, got %v", tc.expectedResult, result)
			}
		})
	}
}

func TestAuthorizer_AssignHouseLandlord(t *testing.T) {
	houseID := "house-123"
	landlordID := "landlord-456"

	testCases := []struct {
		name        string
		setupMocks  func(*MockAuthzClientInterface)
		expectedErr bool
	}{
		{
			name: "success",
			setupMocks: func(mockClient *MockAuthzClientInterface) {
				mockClient.EXPECT().WriteTuple(gomock.Any(), UserTuple(landlordID), LANDLORD_RELATION, HouseTuple(houseID)).Return(nil)
			},
		},
		{
			name: "error - write tuple error",
			setupMocks: func(mockClient *MockAuthzClientInterface) {
				mockClient.EXPECT().WriteTuple(gomock.Any(), UserTuple(landlordID), LANDLORD_RELATION, HouseTuple(houseID)).Return(errors.New("write error"))
			},
			expectedErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockClient := NewMockAuthzClientInterface(ctrl)
			mockTracer := NewMockTracingInterface(ctrl)
			mockMonitor := NewMockMonitorInterface(ctrl)
			mockLogger := NewMockLoggerInterface(ctrl)

			a := NewAuthorizer(mockClient, mockTracer, mockMonitor, mockLogger)

			mockTracer.EXPECT().Start(gomock.Any(), "authorization.Authorizer.AssignHouseLandlord").
				Return(context.Background(), trace.SpanFromContext(context.Background()))
			tc.setupMocks(mockClient)

			err := a.AssignHouseLandlord(context.Background(), houseID, landlordID)

			if tc.expectedErr && err == nil {
				t.Error("expected error but got none")
			} else if !tc.expectedErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestAuthorizer_AssignProfileSelf(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := NewMockAuthzClientInterface(ctrl)
	mockTracer := NewMockTracingInterface(ctrl)

	a := NewAuthorizer(mockClient, mockTracer, NewMockMonitorInterface(ctrl), NewMockLoggerInterface(ctrl))

	mockTracer.EXPECT().Start(gomock.Any(), "authorization.Authorizer.AssignProfileSelf").
		Return(context.Background(), trace.SpanFromContext(context.Background()))
	mockClient.EXPECT().WriteTuple(gomock.Any(), UserTuple("landlord-1"), SELF_RELATION, ProfileTuple("landlord-1")).Return(errors.New("fga down"))

	if err := a.AssignProfileSelf(context.Background(), "landlord-1"); err == nil {
		t.Error("expected the client error to be returned")
	}
}

func TestAuthorizer_AssignProfileManager(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := NewMockAuthzClientInterface(ctrl)
	mockTracer := NewMockTracingInterface(ctrl)
	mockMonitor := NewMockMonitorInterface(ctrl)
	mockLogger := NewMockLoggerInterface(ctrl)

	a := NewAuthorizer(mockClient, mockTracer, mockMonitor, mockLogger)

	mockTracer.EXPECT().Start(gomock.Any(), "authorization.Authorizer.AssignProfileManager").
		Return(context.Background(), trace.SpanFromContext(context.Background()))
	mockClient.EXPECT().WriteTuples(
		gomock.Any(),
		*openfga.NewTuple(UserTuple("tenant-1"), SELF_RELATION, ProfileTuple("tenant-1")),
		*openfga.NewTuple(UserTuple("landlord-1"), MANAGER_RELATION, ProfileTuple("tenant-1")),
	).Return(nil)

	if err := a.AssignProfileManager(context.Background(), "tenant-1", "landlord-1"); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestAuthorizer_LeaseTuples(t *testing.T) {
	lease := &types.Lease{ID: "lease-1", HouseID: "house-1", LandlordID: "landlord-1", TenantID: "tenant-1"}

	testCases := []struct {
		name       string
		span       string
		setupMocks func(*MockAuthzClientInterface)
		call       func(*Authorizer) error
	}{
		{
			name: "assign lease",
			span: "authorization.Authorizer.AssignLease",
			setupMocks: func(mockClient *MockAuthzClientInterface) {
				mockClient.EXPECT().WriteTuples(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, tuples ...openfga.Tuple) error {
						if len(tuples) != 4 {
							t.Errorf("expected 4 tuples, got %d", len(tuples))
						}
						if !slices.Contains(tuples, *openfga.NewTuple(UserTuple("tenant-1"), TENANT_RELATION, HouseTuple("house-1"))) {
							t.Errorf("expected the tenant to be linked to the house, got %v", tuples)
						}
						return nil
					},
				)
			},
			call: func(a *Authorizer) error { return a.AssignLease(context.Background(), lease) },
		},
		{
			name: "remove lease",
			span: "authorization.Authorizer.RemoveLease",
			setupMocks: func(mockClient *MockAuthzClientInterface) {
				mockClient.EXPECT().DeleteTuples(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, tuples ...openfga.Tuple) error {
						if !slices.Contains(tuples, *openfga.NewTuple(UserTuple("landlord-1"), LANDLORD_RELATION, LeaseTuple("lease-1"))) {
							t.Errorf("expected the landlord tuple to be removed, got %v", tuples)
						}
						return nil
					},
				)
			},
			call: func(a *Authorizer) error { return a.RemoveLease(context.Background(), lease) },
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockClient := NewMockAuthzClientInterface(ctrl)
			mockTracer := NewMockTracingInterface(ctrl)
			mockMonitor := NewMockMonitorInterface(ctrl)
			mockLogger := NewMockLoggerInterface(ctrl)

			a := NewAuthorizer(mockClient, mockTracer, mockMonitor, mockLogger)

			mockTracer.EXPECT().Start(gomock.Any(), tc.span).
				Return(context.Background(), trace.SpanFromContext(context.Background()))
			tc.setupMocks(mockClient)

			if err := tc.call(a); err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestAuthorizer_DeleteObject(t *testing.T) {
	object := HouseTuple("house-123")

	testCases := []struct {
		name        string
		setupMocks  func(*MockAuthzClientInterface, *MockLoggerInterface)
		expectedErr bool
	}{
		{
			name: "success - single batch",
			setupMocks: func(mockClient *MockAuthzClientInterface, mockLogger *MockLoggerInterface) {
				tuples := []fga.Tuple{
					{Key: fga.TupleKey{User: "user:1", Relation: "landlord", Object: object}},
					{Key: fga.TupleKey{User: "user:2", Relation: "tenant", Object: object}},
				}
				mockClient.EXPECT().ReadTuples(gomock.Any(), "", "", object, "").Return(&client.ClientReadResponse{
					Tuples:            tuples,
					ContinuationToken: "",
				}, nil)
				mockClient.EXPECT().DeleteTuples(gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			name: "success - multiple batches",
			setupMocks: func(mockClient *MockAuthzClientInterface, mockLogger *MockLoggerInterface) {
				batch1 := []fga.Tuple{{Key: fga.TupleKey{User: "user:1", Relation: "landlord", Object: object}}}
				batch2 := []fga.Tuple{{Key: fga.TupleKey{User: "user:2", Relation: "tenant", Object: object}}}
				gomock.InOrder(
					mockClient.EXPECT().ReadTuples(gomock.Any(), "", "", object, "").Return(&client.ClientReadResponse{Tuples: batch1, ContinuationToken: "next"}, nil),
					mockClient.EXPECT().DeleteTuples(gomock.Any(), gomock.Any()).Return(nil),
					mockClient.EXPECT().ReadTuples(gomock.Any(), "", "", object, "next").Return(&client.ClientReadResponse{Tuples: batch2}, nil),
					mockClient.EXPECT().DeleteTuples(gomock.Any(), gomock.Any()).Return(nil),
				)
			},
		},
		{
			name: "success - nothing to delete",
			setupMocks: func(mockClient *MockAuthzClientInterface, mockLogger *MockLoggerInterface) {
				mockClient.EXPECT().ReadTuples(gomock.Any(), "", "", object, "").Return(&client.ClientReadResponse{}, nil)
			},
		},
		{
			name: "error - read tuples error",
			setupMocks: func(mockClient *MockAuthzClientInterface, mockLogger *MockLoggerInterface) {
				mockClient.EXPECT().ReadTuples(gomock.Any(), "", "", object, "").Return(nil, errors.New("read error"))
				mockLogger.EXPECT().Errorf(gomock.Any(), gomock.Any())
			},
			expectedErr: true,
		},
		{
			name: "error - delete tuples error",
			setupMocks: func(mockClient *MockAuthzClientInterface, mockLogger *MockLoggerInterface) {
				tuples := []fga.Tuple{{Key: fga.TupleKey{User: "user:1", Relation: "landlord", Object: object}}}
				mockClient.EXPECT().ReadTuples(gomock.Any(), "", "", object, "").Return(&client.ClientReadResponse{Tuples: tuples}, nil)
				mockClient.EXPECT().DeleteTuples(gomock.Any(), gomock.Any()).Return(errors.New("delete error"))
				mockLogger.EXPECT().Errorf(gomock.Any(), gomock.Any(), gomock.Any())
			},
			expectedErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockClient := NewMockAuthzClientInterface(ctrl)
			mockTracer := NewMockTracingInterface(ctrl)
			mockMonitor := NewMockMonitorInterface(ctrl)
			mockLogger := NewMockLoggerInterface(ctrl)

			a := NewAuthorizer(mockClient, mockTracer, mockMonitor, mockLogger)

			mockTracer.EXPECT().Start(gomock.Any(), "authorization.Authorizer.DeleteObject").
				Return(context.Background(), trace.SpanFromContext(context.Background()))
			tc.setupMocks(mockClient, mockLogger)

			err := a.DeleteObject(context.Background(), object)

			if tc.expectedErr && err == nil {
				t.Error("expected error but got none")
			} else if !tc.expectedErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestAuthorizationModelProvider(t *testing.T) {
	model := NewAuthorizationModelProvider("v0").GetModel()

	if model.SchemaVersion != "1.1" {
		t.Errorf("unexpected schema version %s", model.SchemaVersion)
	}

	typeNames := make([]string, 0, len(model.TypeDefinitions))
	for _, td := range model.TypeDefinitions {
		typeNames = append(typeNames, td.Type)
	}

	for _, expected := range []string{"user", "profile", "house", "lease"} {
		if !slices.Contains(typeNames, expected) {
			t.Errorf("expected type %s in model, got %v", expected, typeNames)
		}
	}
}

func TestAuthorizationModelProvider_UnknownVersion(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("expected a panic for an unknown model version")
		}
	}()

	NewAuthorizationModelProvider("v9").GetModel()
}
