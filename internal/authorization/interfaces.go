// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authorization

import (
	"context"

	fga "github.com/openfga/go-sdk"
	"github.com/openfga/go-sdk/client"

	"github.com/tenantflow/tenantflow/internal/openfga"
	"github.com/tenantflow/tenantflow/internal/types"
)

type AuthorizerInterface interface {
	ListObjects(context.Context, string, string, string) ([]string, error)
	Check(context.Context, string, string, string, ...openfga.Tuple) (bool, error)
	FilterObjects(context.Context, string, string, string, []string) ([]string, error)
	ValidateModel(context.Context) error

	// CheckAccess checks relation for userID on object, object is a full
	// "type:id" string as returned by the tuple helpers
	CheckAccess(context.Context, string, string, string) (bool, error)

	AssignHouseLandlord(context.Context, string, string) error
	AssignProfileSelf(context.Context, string) error
	AssignProfileManager(context.Context, string, string) error
	AssignLease(context.Context, *types.Lease) error
	RemoveLease(context.Context, *types.Lease) error
	// DeleteObject removes every tuple pointing at object
	DeleteObject(context.Context, string) error
}

type AuthzClientInterface interface {
	ListObjects(context.Context, string, string, string) ([]string, error)
	Check(context.Context, string, string, string, ...openfga.Tuple) (bool, error)
	ReadModel(context.Context) (*fga.AuthorizationModel, error)
	CompareModel(context.Context, fga.AuthorizationModel) (bool, error)
	ReadTuples(context.Context, string, string, string, string) (*client.ClientReadResponse, error)
	WriteTuple(ctx context.Context, user, relation, object string) error
	WriteTuples(context.Context, ...openfga.Tuple) error
	DeleteTuple(ctx context.Context, user, relation, object string) error
	DeleteTuples(context.Context, ...openfga.Tuple) error
}
