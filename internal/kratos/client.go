// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package kratos

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	ory "github.com/ory/client-go"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/tenantflow/tenantflow/internal/logging"
	"github.com/tenantflow/tenantflow/internal/monitoring"
	"github.com/tenantflow/tenantflow/internal/tracing"
	"github.com/tenantflow/tenantflow/internal/types"
)

const identitySchema = "default"

var ErrIdentityNotFound = errors.New("identity not found")

type ClientInterface interface {
	GetIdentityIDByEmail(ctx context.Context, email string) (string, error)
	CreateIdentity(ctx context.Context, email, password, name string, role types.Role) (string, error)
	GetIdentity(ctx context.Context, id string) (*ory.Identity, error)
	DeleteIdentity(ctx context.Context, id string) error
}

// Traits mirrors the identity schema used by the registration flows
type Traits struct {
	Email string     `json:"email"`
	Name  string     `json:"name,omitempty"`
	Role  types.Role `json:"role,omitempty"`
}

func (t Traits) asMap() map[string]interface{} {
	traits := map[string]interface{}{
		"email": t.Email,
	}
	if t.Name != "" {
		traits["name"] = t.Name
	}
	if t.Role != "" {
		traits["role"] = string(t.Role)
	}
	return traits
}

type Client struct {
	client  *ory.APIClient
	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewClient(kratosAdminURL string, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Client {
	conf := ory.NewConfiguration()
	conf.Servers = ory.ServerConfigurations{{URL: kratosAdminURL}}
	conf.HTTPClient = &http.Client{Transport: otelhttp.NewTransport(http.DefaultTransport)}
	return &Client{
		client:  ory.NewAPIClient(conf),
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}

func (c *Client) GetIdentityIDByEmail(ctx context.Context, email string) (string, error) {
	ctx, span := c.tracer.Start(ctx, "kratos.GetIdentityIDByEmail")
	defer span.End()

	// NOTE: empty page token because of https://github.com/ory/sdk/issues/461
	ids, r, err := c.client.IdentityAPI.ListIdentities(ctx).CredentialsIdentifier(email).PageToken("").Execute()
	if err != nil {
		if r != nil && r.StatusCode == http.StatusNotFound {
			return "", ErrIdentityNotFound
		}
		return "", fmt.Errorf("failed to list identities: %w", err)
	}

	if len(ids) == 0 {
		return "", ErrIdentityNotFound
	}

	return ids[0].Id, nil
}

// CreateIdentity provisions an identity with a password credential, used for
// the tenants a landlord registers on their behalf
func (c *Client) CreateIdentity(ctx context.Context, email, password, name string, role types.Role) (string, error) {
	ctx, span := c.tracer.Start(ctx, "kratos.CreateIdentity")
	defer span.End()

	body := ory.CreateIdentityBody{
		SchemaId: identitySchema,
		Traits:   Traits{Email: email, Name: name, Role: role}.asMap(),
		Credentials: &ory.IdentityWithCredentials{
			Password: &ory.IdentityWithCredentialsPassword{
				Config: &ory.IdentityWithCredentialsPasswordConfig{
					Password: &password,
				},
			},
		},
	}

	identity, r, err := c.client.IdentityAPI.CreateIdentity(ctx).CreateIdentityBody(body).Execute()
	if err != nil {
		if r != nil && r.StatusCode == http.StatusConflict {
			return "", fmt.Errorf("identity %s already exists: %w", email, err)
		}
		return "", fmt.Errorf("failed to create identity: %w", err)
	}

	c.logger.Debugf("created identity %s for %s", identity.Id, email)
	return identity.Id, nil
}

func (c *Client) GetIdentity(ctx context.Context, id string) (*ory.Identity, error) {
	ctx, span := c.tracer.Start(ctx, "kratos.GetIdentity")
	defer span.End()

	identity, r, err := c.client.IdentityAPI.GetIdentity(ctx, id).Execute()
	if err != nil {
		if r != nil && r.StatusCode == http.StatusNotFound {
			return nil, ErrIdentityNotFound
		}
		return nil, fmt.Errorf("failed to get identity: %w", err)
	}

	return identity, nil
}

func (c *Client) DeleteIdentity(ctx context.Context, id string) error {
	ctx, span := c.tracer.Start(ctx, "kratos.DeleteIdentity")
	defer span.End()

	r, err := c.client.IdentityAPI.DeleteIdentity(ctx, id).Execute()
	if err != nil {
		if r != nil && r.StatusCode == http.StatusNotFound {
			return ErrIdentityNotFound
		}
		return fmt.Errorf("failed to delete identity: %w", err)
	}

	return nil
}
