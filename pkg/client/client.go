// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/oapi-codegen/runtime"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/tenantflow/tenantflow/internal/http/types"
	"github.com/tenantflow/tenantflow/internal/logging"
	"github.com/tenantflow/tenantflow/internal/monitoring"
	"github.com/tenantflow/tenantflow/internal/tracing"
	"github.com/tenantflow/tenantflow/pkg/bootstrap"
)

const apiPrefix = "/api/v0"

var _ bootstrap.DataSourceInterface = (*Client)(nil)

// HttpRequestDoer performs HTTP requests, *http.Client satisfies it
type HttpRequestDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// RequestEditorFn can override or add to a request before it is sent
type RequestEditorFn func(ctx context.Context, req *http.Request) error

type ClientOption func(*Client) error

func WithHTTPClient(doer HttpRequestDoer) ClientOption {
	return func(c *Client) error {
		c.doer = doer
		return nil
	}
}

func WithRequestEditorFn(fn RequestEditorFn) ClientOption {
	return func(c *Client) error {
		c.editors = append(c.editors, fn)
		return nil
	}
}

// WithBearerToken authenticates every request with the token returned by
// token at send time, nothing is added while it returns an empty string
func WithBearerToken(token func() string) ClientOption {
	return WithRequestEditorFn(func(_ context.Context, req *http.Request) error {
		if t := token(); t != "" {
			req.Header.Set("Authorization", "Bearer "+t)
		}
		return nil
	})
}

// Client talks to the TenantFlow REST API
type Client struct {
	server  string
	doer    HttpRequestDoer
	editors []RequestEditorFn

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func pathParam(name, value string) (string, error) {
	return runtime.StyleParamWithLocation("simple", false, name, runtime.ParamLocationPath, value)
}

// addQuery encodes value as a form exploded query parameter, zero values are
// left out
func addQuery(q url.Values, name string, value interface{}) error {
	switch v := value.(type) {
	case string:
		if v == "" {
			return nil
		}
	case []string:
		if len(v) == 0 {
			return nil
		}
	}

	frag, err := runtime.StyleParamWithLocation("form", true, name, runtime.ParamLocationQuery, value)
	if err != nil {
		return err
	}

	parsed, err := url.ParseQuery(frag)
	if err != nil {
		return err
	}

	for k, vs := range parsed {
		for _, v := range vs {
			q.Add(k, v)
		}
	}

	return nil
}

func (c *Client) newRequest(ctx context.Context, method, path string, query url.Values, body interface{}) (*http.Request, error) {
	u, err := url.Parse(c.server + apiPrefix + path)
	if err != nil {
		return nil, err
	}

	if len(query) > 0 {
		u.RawQuery = query.Encode()
	}

	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request: %w", err)
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), reader)
	if err != nil {
		return nil, err
	}

	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	for _, edit := range c.editors {
		if err := edit(ctx, req); err != nil {
			return nil, err
		}
	}

	return req, nil
}

// do sends the request and decodes the data of the response envelope into
// out, non 2xx responses come back as *types.ErrorResponse
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out interface{}) error {
	req, err := c.newRequest(ctx, method, path, query, body)
	if err != nil {
		return err
	}

	resp, err := c.doer.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s failed: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return decodeError(resp)
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}

	envelope := struct {
		Data json.RawMessage `json:"data"`
	}{}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return fmt.Errorf("failed to decode response of %s %s: %w", method, path, err)
	}

	if err := json.Unmarshal(envelope.Data, out); err != nil {
		return fmt.Errorf("failed to decode data of %s %s: %w", method, path, err)
	}

	return nil
}

func decodeError(resp *http.Response) error {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<16))

	apiErr := new(types.ErrorResponse)
	if err := json.Unmarshal(body, apiErr); err != nil || apiErr.Message == "" {
		apiErr.Message = strings.TrimSpace(string(body))
		if apiErr.Message == "" {
			apiErr.Message = http.StatusText(resp.StatusCode)
		}
	}
	apiErr.Status = resp.StatusCode

	return apiErr
}

// IsNotFound reports whether err is a 404 answer of the API
func IsNotFound(err error) bool {
	var apiErr *types.ErrorResponse
	return errors.As(err, &apiErr) && apiErr.Status == http.StatusNotFound && apiErr.Code == types.CodeNotFound
}

// NewClient creates a client for the API served at server, spans are
// propagated through an instrumented transport unless WithHTTPClient is given
func NewClient(server string, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface, opts ...ClientOption) (*Client, error) {
	if !strings.HasPrefix(server, "http") {
		server = "http://" + server
	}

	c := &Client{
		server:  strings.TrimSuffix(server, "/"),
		doer:    &http.Client{Transport: otelhttp.NewTransport(http.DefaultTransport)},
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}

	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}

	return c, nil
}
