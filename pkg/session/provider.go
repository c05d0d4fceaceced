// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package session

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
	ory "github.com/ory/client-go"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/tenantflow/tenantflow/internal/logging"
	"github.com/tenantflow/tenantflow/internal/monitoring"
	"github.com/tenantflow/tenantflow/internal/tracing"
	"github.com/tenantflow/tenantflow/internal/types"
	"github.com/tenantflow/tenantflow/pkg/bootstrap"
)

const passwordMethod = "password"

var ErrInvalidCredentials = errors.New("invalid credentials")

var _ bootstrap.AuthProviderInterface = (*Provider)(nil)

// SignUpRequest registers a landlord
type SignUpRequest struct {
	Email    string
	Password string
	Name     string
	Phone    string
}

// Provider holds the session of the local user. It signs in and out through
// the Kratos native flows and notifies subscribers of every change, including
// changes made to the session file by another process.
type Provider struct {
	store  *FileStore
	kratos *ory.APIClient

	// notifyMu orders deliveries, subscribers see sessions in the order they
	// became current. Handlers must not sign in or out synchronously.
	notifyMu sync.Mutex

	mu          sync.Mutex
	current     *bootstrap.Session
	subscribers map[int]func(*bootstrap.Session)
	nextID      int

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

// Subscribe calls h with the current session right away and on every change
func (p *Provider) Subscribe(h func(*bootstrap.Session)) func() {
	p.notifyMu.Lock()
	defer p.notifyMu.Unlock()

	p.mu.Lock()
	id := p.nextID
	p.nextID++
	p.subscribers[id] = h
	current := p.current
	p.mu.Unlock()

	h(current)

	return func() {
		p.mu.Lock()
		delete(p.subscribers, id)
		p.mu.Unlock()
	}
}

// Session returns the current session, nil when signed out
func (p *Provider) Session() *bootstrap.Session {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.current
}

// Token returns the session token used as bearer token for the API
func (p *Provider) Token() string {
	if s := p.Session(); s != nil {
		return s.Token
	}

	return ""
}

// set stores s as current and notifies subscribers when it differs from the
// previous session
func (p *Provider) set(s *bootstrap.Session) {
	p.notifyMu.Lock()
	defer p.notifyMu.Unlock()

	p.mu.Lock()
	if same(p.current, s) {
		p.mu.Unlock()
		return
	}

	p.current = s
	handlers := make([]func(*bootstrap.Session), 0, len(p.subscribers))
	for _, h := range p.subscribers {
		handlers = append(handlers, h)
	}
	p.mu.Unlock()

	for _, h := range handlers {
		h(s)
	}
}

func same(a, b *bootstrap.Session) bool {
	if a == nil || b == nil {
		return a == b
	}

	return a.UserID == b.UserID && a.Token == b.Token
}

func (p *Provider) SignIn(ctx context.Context, email, password string) (*bootstrap.Session, error) {
	ctx, span := p.tracer.Start(ctx, "session.Provider.SignIn")
	defer span.End()

	flow, _, err := p.kratos.FrontendAPI.CreateNativeLoginFlow(ctx).Execute()
	if err != nil {
		return nil, fmt.Errorf("failed to start login: %w", err)
	}

	body := ory.UpdateLoginFlowWithPasswordMethodAsUpdateLoginFlowBody(
		&ory.UpdateLoginFlowWithPasswordMethod{
			Identifier: email,
			Method:     passwordMethod,
			Password:   password,
		},
	)

	login, r, err := p.kratos.FrontendAPI.UpdateLoginFlow(ctx).Flow(flow.GetId()).UpdateLoginFlowBody(body).Execute()
	if err != nil {
		if r != nil && (r.StatusCode == http.StatusBadRequest || r.StatusCode == http.StatusUnauthorized) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to log in: %w", err)
	}

	session := login.GetSession()
	identity := session.GetIdentity()
	s := &bootstrap.Session{
		UserID: identity.GetId(),
		Email:  traitString(identity.GetTraits(), "email"),
		Token:  login.GetSessionToken(),
	}

	if err := p.persist(s); err != nil {
		return nil, err
	}

	p.logger.Infof("signed in as %s", s.Email)
	return s, nil
}

// SignUp registers a landlord and signs in when Kratos hands out a session
// right away, the session is nil when verification is required first
func (p *Provider) SignUp(ctx context.Context, req SignUpRequest) (*bootstrap.Session, error) {
	ctx, span := p.tracer.Start(ctx, "session.Provider.SignUp")
	defer span.End()

	flow, _, err := p.kratos.FrontendAPI.CreateNativeRegistrationFlow(ctx).Execute()
	if err != nil {
		return nil, fmt.Errorf("failed to start registration: %w", err)
	}

	traits := map[string]interface{}{
		"email": req.Email,
		"name":  req.Name,
		"role":  string(types.RoleLandlord),
	}
	if req.Phone != "" {
		traits["phone"] = req.Phone
	}

	body := ory.UpdateRegistrationFlowWithPasswordMethodAsUpdateRegistrationFlowBody(
		&ory.UpdateRegistrationFlowWithPasswordMethod{
			Method:   passwordMethod,
			Password: req.Password,
			Traits:   traits,
		},
	)

	reg, _, err := p.kratos.FrontendAPI.UpdateRegistrationFlow(ctx).Flow(flow.GetId()).UpdateRegistrationFlowBody(body).Execute()
	if err != nil {
		return nil, fmt.Errorf("failed to register: %w", err)
	}

	identity := reg.GetIdentity()
	if reg.GetSessionToken() == "" {
		p.logger.Infof("registered %s, sign in once the account is verified", req.Email)
		return nil, nil
	}

	s := &bootstrap.Session{
		UserID: identity.GetId(),
		Email:  req.Email,
		Token:  reg.GetSessionToken(),
	}

	if err := p.persist(s); err != nil {
		return nil, err
	}

	return s, nil
}

// SignOut revokes the session at Kratos and forgets it locally, the local
// session is kept when revocation fails
func (p *Provider) SignOut(ctx context.Context) error {
	ctx, span := p.tracer.Start(ctx, "session.Provider.SignOut")
	defer span.End()

	current := p.Session()
	if current == nil {
		return nil
	}

	r, err := p.kratos.FrontendAPI.PerformNativeLogout(ctx).
		PerformNativeLogoutBody(ory.PerformNativeLogoutBody{SessionToken: current.Token}).
		Execute()
	if err != nil && (r == nil || r.StatusCode != http.StatusUnauthorized) {
		return fmt.Errorf("failed to revoke session: %w", err)
	}

	return p.persist(nil)
}

func (p *Provider) persist(s *bootstrap.Session) error {
	if err := p.store.Save(s); err != nil {
		return err
	}

	p.set(s)
	return nil
}

// Reload reads the session file again and notifies subscribers on change
func (p *Provider) Reload() error {
	s, err := p.store.Load()
	if err != nil {
		return err
	}

	p.set(s)
	return nil
}

// Watch reloads the session whenever the session file changes, until ctx is
// done
func (p *Provider) Watch(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to watch session file: %w", err)
	}
	defer watcher.Close()

	// the file itself is replaced on every save, watch its directory
	dir := filepath.Dir(p.store.Path())
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("failed to create %s: %w", dir, err)
	}

	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("failed to watch %s: %w", dir, err)
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			p.logger.Errorf("session file watcher: %v", err)
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}

			if filepath.Clean(event.Name) != p.store.Path() {
				continue
			}

			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Remove) && !event.Has(fsnotify.Rename) {
				continue
			}

			if err := p.Reload(); err != nil {
				p.logger.Errorf("failed to reload session: %v", err)
			}
		}
	}
}

func traitString(traits interface{}, key string) string {
	m, ok := traits.(map[string]interface{})
	if !ok {
		return ""
	}

	v, _ := m[key].(string)
	return v
}

// NewProvider loads the stored session, if any, and talks to the Kratos
// public API at kratosPublicURL
func NewProvider(
	kratosPublicURL string,
	store *FileStore,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) (*Provider, error) {
	conf := ory.NewConfiguration()
	conf.Servers = ory.ServerConfigurations{{URL: kratosPublicURL}}
	conf.HTTPClient = &http.Client{Transport: otelhttp.NewTransport(http.DefaultTransport)}

	p := &Provider{
		store:       store,
		kratos:      ory.NewAPIClient(conf),
		subscribers: make(map[int]func(*bootstrap.Session)),
		tracer:      tracer,
		monitor:     monitor,
		logger:      logger,
	}

	current, err := store.Load()
	if err != nil {
		return nil, err
	}
	p.current = current

	return p, nil
}
