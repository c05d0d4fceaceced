// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package openfga

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"reflect"

	fga "github.com/openfga/go-sdk"
	"github.com/openfga/go-sdk/client"
	"github.com/openfga/go-sdk/credentials"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/tenantflow/tenantflow/internal/logging"
	"github.com/tenantflow/tenantflow/internal/monitoring"
	"github.com/tenantflow/tenantflow/internal/tracing"
)

type Client struct {
	c *client.OpenFgaClient

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (c *Client) ListObjects(ctx context.Context, user, relation, objectType string) ([]string, error) {
	ctx, span := c.tracer.Start(ctx, "openfga.Client.ListObjects")
	defer span.End()

	r, err := c.c.ListObjects(ctx).Body(
		client.ClientListObjectsRequest{
			User:     user,
			Relation: relation,
			Type:     objectType,
		},
	).Execute()
	if err != nil {
		c.logger.Errorf("issues performing list operation: %s", err)
		return nil, err
	}

	return r.GetObjects(), nil
}

func (c *Client) Check(ctx context.Context, user, relation, object string, contextualTuples ...Tuple) (bool, error) {
	ctx, span := c.tracer.Start(ctx, "openfga.Client.Check")
	defer span.End()

	body := client.ClientCheckRequest{
		User:     user,
		Relation: relation,
		Object:   object,
	}

	if len(contextualTuples) > 0 {
		keys := make([]client.ClientContextualTupleKey, 0, len(contextualTuples))
		for _, t := range contextualTuples {
			keys = append(keys, t.toClientTupleKey())
		}
		body.ContextualTuples = keys
	}

	r, err := c.c.Check(ctx).Body(body).Execute()
	if err != nil {
		c.logger.Errorf("issues performing check operation: %s", err)
		return false, err
	}

	return r.GetAllowed(), nil
}

func (c *Client) ReadModel(ctx context.Context) (*fga.AuthorizationModel, error) {
	ctx, span := c.tracer.Start(ctx, "openfga.Client.ReadModel")
	defer span.End()

	authModel, err := c.c.ReadAuthorizationModel(ctx).Execute()
	if err != nil {
		c.logger.Errorf("issues performing read operation: %s", err)
		return nil, err
	}

	return authModel.AuthorizationModel, nil
}

// CompareModel reports whether the deployed model has the same type
// definitions and schema version as model
func (c *Client) CompareModel(ctx context.Context, model fga.AuthorizationModel) (bool, error) {
	ctx, span := c.tracer.Start(ctx, "openfga.Client.CompareModel")
	defer span.End()

	authModel, err := c.ReadModel(ctx)
	if err != nil {
		return false, err
	}

	if authModel == nil || authModel.SchemaVersion != model.SchemaVersion {
		return false, nil
	}

	deployed, err := json.Marshal(authModel.TypeDefinitions)
	if err != nil {
		return false, err
	}
	expected, err := json.Marshal(model.TypeDefinitions)
	if err != nil {
		return false, err
	}

	var d, e any
	if err := json.Unmarshal(deployed, &d); err != nil {
		return false, err
	}
	if err := json.Unmarshal(expected, &e); err != nil {
		return false, err
	}

	return reflect.DeepEqual(d, e), nil
}

func (c *Client) ReadTuples(ctx context.Context, user, relation, object, continuationToken string) (*client.ClientReadResponse, error) {
	ctx, span := c.tracer.Start(ctx, "openfga.Client.ReadTuples")
	defer span.End()

	body := client.ClientReadRequest{}
	if user != "" {
		body.User = &user
	}
	if relation != "" {
		body.Relation = &relation
	}
	if object != "" {
		body.Object = &object
	}

	options := client.ClientReadOptions{}
	if continuationToken != "" {
		options.ContinuationToken = &continuationToken
	}

	r, err := c.c.Read(ctx).Body(body).Options(options).Execute()
	if err != nil {
		c.logger.Errorf("issues performing read operation: %s", err)
		return nil, err
	}

	return r, nil
}

func (c *Client) WriteTuple(ctx context.Context, user, relation, object string) error {
	return c.WriteTuples(ctx, *NewTuple(user, relation, object))
}

func (c *Client) WriteTuples(ctx context.Context, tuples ...Tuple) error {
	ctx, span := c.tracer.Start(ctx, "openfga.Client.WriteTuples")
	defer span.End()

	if len(tuples) == 0 {
		return nil
	}

	body := make(client.ClientWriteTuplesBody, 0, len(tuples))
	for _, t := range tuples {
		body = append(body, t.toClientTupleKey())
	}

	if _, err := c.c.WriteTuples(ctx).Body(body).Execute(); err != nil {
		c.logger.Errorf("issues performing write operation: %s", err)
		return err
	}

	return nil
}

func (c *Client) DeleteTuple(ctx context.Context, user, relation, object string) error {
	return c.DeleteTuples(ctx, *NewTuple(user, relation, object))
}

func (c *Client) DeleteTuples(ctx context.Context, tuples ...Tuple) error {
	ctx, span := c.tracer.Start(ctx, "openfga.Client.DeleteTuples")
	defer span.End()

	if len(tuples) == 0 {
		return nil
	}

	body := make(client.ClientDeleteTuplesBody, 0, len(tuples))
	for _, t := range tuples {
		body = append(body, t.toClientTupleKeyWithoutCondition())
	}

	if _, err := c.c.DeleteTuples(ctx).Body(body).Execute(); err != nil {
		c.logger.Errorf("issues performing delete operation: %s", err)
		return err
	}

	return nil
}

func (c *Client) CreateStore(ctx context.Context, storeName string) (string, error) {
	ctx, span := c.tracer.Start(ctx, "openfga.Client.CreateStore")
	defer span.End()

	store, err := c.c.CreateStore(ctx).Body(client.ClientCreateStoreRequest{Name: storeName}).Execute()
	if err != nil {
		return "", fmt.Errorf("failed to create store %s: %w", storeName, err)
	}

	return store.Id, nil
}

func (c *Client) SetStoreID(ctx context.Context, storeID string) {
	if err := c.c.SetStoreId(storeID); err != nil {
		c.logger.Errorf("failed to set store ID: %s", err)
	}
}

func (c *Client) WriteModel(ctx context.Context, model *client.ClientWriteAuthorizationModelRequest) (string, error) {
	ctx, span := c.tracer.Start(ctx, "openfga.Client.WriteModel")
	defer span.End()

	r, err := c.c.WriteAuthorizationModel(ctx).Body(*model).Execute()
	if err != nil {
		return "", fmt.Errorf("failed to write authorization model: %w", err)
	}

	return r.AuthorizationModelId, nil
}

func NewClient(cfg *Config) *Client {
	c := new(Client)

	c.tracer = cfg.Tracer
	c.monitor = cfg.Monitor
	c.logger = cfg.Logger

	fgaConfig := &client.ClientConfiguration{
		ApiUrl:               fmt.Sprintf("%s://%s", cfg.ApiScheme, cfg.ApiHost),
		StoreId:              cfg.StoreID,
		AuthorizationModelId: cfg.AuthModelID,
		Debug:                cfg.Debug,
		HTTPClient:           &http.Client{Transport: otelhttp.NewTransport(http.DefaultTransport)},
	}

	if cfg.ApiToken != "" {
		fgaConfig.Credentials = &credentials.Credentials{
			Method: credentials.CredentialsMethodApiToken,
			Config: &credentials.Config{
				ApiToken: cfg.ApiToken,
			},
		}
	}

	fgaClient, err := client.NewSdkClient(fgaConfig)
	if err != nil {
		c.logger.Fatalf("issues setting up fga client %s", err)
	}

	c.c = fgaClient

	return c
}
