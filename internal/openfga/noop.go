// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package openfga

import (
	"context"

	fga "github.com/openfga/go-sdk"
	"github.com/openfga/go-sdk/client"

	"github.com/tenantflow/tenantflow/internal/logging"
	"github.com/tenantflow/tenantflow/internal/monitoring"
	"github.com/tenantflow/tenantflow/internal/tracing"
)

// NoopClient allows every check and drops every write, ownership is then
// only enforced by the row level rules in storage
type NoopClient struct {
	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (n *NoopClient) ListObjects(ctx context.Context, user, relation, objectType string) ([]string, error) {
	return make([]string, 0), nil
}

func (n *NoopClient) Check(ctx context.Context, user, relation, object string, tuples ...Tuple) (bool, error) {
	return true, nil
}

func (n *NoopClient) ReadModel(ctx context.Context) (*fga.AuthorizationModel, error) {
	return nil, nil
}

func (n *NoopClient) CompareModel(ctx context.Context, model fga.AuthorizationModel) (bool, error) {
	return true, nil
}

func (n *NoopClient) ReadTuples(ctx context.Context, user, relation, object, continuationToken string) (*client.ClientReadResponse, error) {
	return &client.ClientReadResponse{}, nil
}

func (n *NoopClient) WriteTuple(ctx context.Context, user, relation, object string) error {
	return nil
}

func (n *NoopClient) WriteTuples(ctx context.Context, tuples ...Tuple) error {
	return nil
}

func (n *NoopClient) DeleteTuple(ctx context.Context, user, relation, object string) error {
	return nil
}

func (n *NoopClient) DeleteTuples(ctx context.Context, tuples ...Tuple) error {
	return nil
}

func NewNoopClient(tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *NoopClient {
	c := new(NoopClient)

	c.tracer = tracer
	c.monitor = monitor
	c.logger = logger

	return c
}
