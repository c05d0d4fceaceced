// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authorization

import (
	"context"
	"fmt"
	"slices"

	"github.com/tenantflow/tenantflow/internal/logging"
	"github.com/tenantflow/tenantflow/internal/monitoring"
	"github.com/tenantflow/tenantflow/internal/openfga"
	"github.com/tenantflow/tenantflow/internal/tracing"
	"github.com/tenantflow/tenantflow/internal/types"
)

var ErrInvalidAuthModel = fmt.Errorf("invalid authorization model schema")

var _ AuthorizerInterface = (*Authorizer)(nil)

type Authorizer struct {
	client AuthzClientInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (a *Authorizer) Check(ctx context.Context, user string, relation string, object string, contextualTuples ...openfga.Tuple) (bool, error) {
	ctx, span := a.tracer.Start(ctx, "authorization.Authorizer.Check")
	defer span.End()

	return a.client.Check(ctx, user, relation, object, contextualTuples...)
}

func (a *Authorizer) ListObjects(ctx context.Context, user string, relation string, objectType string) ([]string, error) {
	ctx, span := a.tracer.Start(ctx, "authorization.Authorizer.ListObjects")
	defer span.End()

	return a.client.ListObjects(ctx, user, relation, objectType)
}

func (a *Authorizer) FilterObjects(ctx context.Context, user string, relation string, objectType string, objs []string) ([]string, error) {
	ctx, span := a.tracer.Start(ctx, "authorization.Authorizer.FilterObjects")
	defer span.End()

	allowedObjs, err := a.ListObjects(ctx, user, relation, objectType)
	if err != nil {
		return nil, err
	}

	var ret []string
	for _, obj := range allowedObjs {
		if slices.Contains(objs, obj) {
			ret = append(ret, obj)
		}
	}
	return ret, nil
}

func (a *Authorizer) ValidateModel(ctx context.Context) error {
	ctx, span := a.tracer.Start(ctx, "authorization.Authorizer.ValidateModel")
	defer span.End()

	model := *NewAuthorizationModelProvider("v0").GetModel()

	eq, err := a.client.CompareModel(ctx, model)
	if err != nil {
		return err
	}
	if !eq {
		return ErrInvalidAuthModel
	}
	return nil
}

func (a *Authorizer) CheckAccess(ctx context.Context, userID, relation, object string) (bool, error) {
	ctx, span := a.tracer.Start(ctx, "authorization.Authorizer.CheckAccess")
	defer span.End()

	return a.Check(ctx, UserTuple(userID), relation, object)
}

func (a *Authorizer) AssignHouseLandlord(ctx context.Context, houseID, landlordID string) error {
	ctx, span := a.tracer.Start(ctx, "authorization.Authorizer.AssignHouseLandlord")
	defer span.End()

	return a.client.WriteTuple(ctx, UserTuple(landlordID), LANDLORD_RELATION, HouseTuple(houseID))
}

// AssignProfileSelf links a self registered profile to its own identity
func (a *Authorizer) AssignProfileSelf(ctx context.Context, profileID string) error {
	ctx, span := a.tracer.Start(ctx, "authorization.Authorizer.AssignProfileSelf")
	defer span.End()

	return a.client.WriteTuple(ctx, UserTuple(profileID), SELF_RELATION, ProfileTuple(profileID))
}

// AssignProfileManager links a profile to itself and to the landlord managing it
func (a *Authorizer) AssignProfileManager(ctx context.Context, profileID, landlordID string) error {
	ctx, span := a.tracer.Start(ctx, "authorization.Authorizer.AssignProfileManager")
	defer span.End()

	return a.client.WriteTuples(
		ctx,
		*openfga.NewTuple(UserTuple(profileID), SELF_RELATION, ProfileTuple(profileID)),
		*openfga.NewTuple(UserTuple(landlordID), MANAGER_RELATION, ProfileTuple(profileID)),
	)
}

func leaseTuples(l *types.Lease) []openfga.Tuple {
	return []openfga.Tuple{
		*openfga.NewTuple(HouseTuple(l.HouseID), HOUSE_RELATION, LeaseTuple(l.ID)),
		*openfga.NewTuple(UserTuple(l.LandlordID), LANDLORD_RELATION, LeaseTuple(l.ID)),
		*openfga.NewTuple(UserTuple(l.TenantID), TENANT_RELATION, LeaseTuple(l.ID)),
		*openfga.NewTuple(UserTuple(l.TenantID), TENANT_RELATION, HouseTuple(l.HouseID)),
	}
}

func (a *Authorizer) AssignLease(ctx context.Context, l *types.Lease) error {
	ctx, span := a.tracer.Start(ctx, "authorization.Authorizer.AssignLease")
	defer span.End()

	return a.client.WriteTuples(ctx, leaseTuples(l)...)
}

func (a *Authorizer) RemoveLease(ctx context.Context, l *types.Lease) error {
	ctx, span := a.tracer.Start(ctx, "authorization.Authorizer.RemoveLease")
	defer span.End()

	return a.client.DeleteTuples(ctx, leaseTuples(l)...)
}

func (a *Authorizer) DeleteObject(ctx context.Context, object string) error {
	ctx, span := a.tracer.Start(ctx, "authorization.Authorizer.DeleteObject")
	defer span.End()

	cToken := ""
	for {
		r, err := a.client.ReadTuples(ctx, "", "", object, cToken)
		if err != nil {
			a.logger.Errorf("error when retrieving tuples: %s", err)
			return err
		}
		if len(r.Tuples) == 0 {
			break
		}
		ts := make([]openfga.Tuple, len(r.Tuples))
		for i, t := range r.Tuples {
			ts[i] = *openfga.NewTuple(t.Key.User, t.Key.Relation, t.Key.Object)
		}
		if err := a.client.DeleteTuples(ctx, ts...); err != nil {
			a.logger.Errorf("error when deleting tuples %v: %s", ts, err)
			return err
		}
		if r.ContinuationToken == "" {
			break
		}
		cToken = r.ContinuationToken
	}
	return nil
}

func NewAuthorizer(client AuthzClientInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Authorizer {
	authorizer := new(Authorizer)
	authorizer.client = client
	authorizer.tracer = tracer
	authorizer.monitor = monitor
	authorizer.logger = logger

	return authorizer
}
