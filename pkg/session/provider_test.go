// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/tenantflow/tenantflow/internal/logging"
	"github.com/tenantflow/tenantflow/internal/monitoring"
	"github.com/tenantflow/tenantflow/internal/tracing"
	"github.com/tenantflow/tenantflow/pkg/bootstrap"
)

func flowJSON(id, kind string) map[string]interface{} {
	return map[string]interface{}{
		"id":          id,
		"type":        "api",
		"expires_at":  "2030-01-01T00:00:00Z",
		"issued_at":   "2026-01-01T00:00:00Z",
		"request_url": "http://kratos/self-service/" + kind + "/api",
		"state":       "choose_method",
		"ui": map[string]interface{}{
			"action": "http://kratos/self-service/" + kind + "?flow=" + id,
			"method": "POST",
			"nodes":  []interface{}{},
		},
	}
}

func identityJSON(id, email string) map[string]interface{} {
	return map[string]interface{}{
		"id":         id,
		"schema_id":  "default",
		"schema_url": "http://kratos/schemas/default",
		"traits":     map[string]interface{}{"email": email},
	}
}

func sessionJSON(id, email string) map[string]interface{} {
	return map[string]interface{}{
		"id":       "s-" + id,
		"active":   true,
		"identity": identityJSON(id, email),
	}
}

type fakeKratos struct {
	mu           sync.Mutex
	logoutTokens []string
	traits       map[string]interface{}
	issueSession bool
}

func (f *fakeKratos) handler() http.Handler {
	mux := http.NewServeMux()

	writeJSON := func(w http.ResponseWriter, status int, v interface{}) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(v)
	}

	mux.HandleFunc("GET /self-service/login/api", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, flowJSON("f1", "login"))
	})

	mux.HandleFunc("POST /self-service/login", func(w http.ResponseWriter, r *http.Request) {
		body := map[string]interface{}{}
		_ = json.NewDecoder(r.Body).Decode(&body)

		if r.URL.Query().Get("flow") != "f1" || body["method"] != "password" || body["password"] != "secret123" {
			writeJSON(w, http.StatusBadRequest, flowJSON("f1", "login"))
			return
		}

		writeJSON(w, http.StatusOK, map[string]interface{}{
			"session":       sessionJSON("u1", fmt.Sprint(body["identifier"])),
			"session_token": "tok-u1",
		})
	})

	mux.HandleFunc("GET /self-service/registration/api", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, flowJSON("r1", "registration"))
	})

	mux.HandleFunc("POST /self-service/registration", func(w http.ResponseWriter, r *http.Request) {
		body := struct {
			Traits map[string]interface{} `json:"traits"`
		}{}
		_ = json.NewDecoder(r.Body).Decode(&body)

		f.mu.Lock()
		f.traits = body.Traits
		issue := f.issueSession
		f.mu.Unlock()

		resp := map[string]interface{}{"identity": identityJSON("u2", fmt.Sprint(body.Traits["email"]))}
		if issue {
			resp["session"] = sessionJSON("u2", fmt.Sprint(body.Traits["email"]))
			resp["session_token"] = "tok-u2"
		}
		writeJSON(w, http.StatusOK, resp)
	})

	mux.HandleFunc("DELETE /self-service/logout/api", func(w http.ResponseWriter, r *http.Request) {
		body := struct {
			SessionToken string `json:"session_token"`
		}{}
		_ = json.NewDecoder(r.Body).Decode(&body)

		f.mu.Lock()
		f.logoutTokens = append(f.logoutTokens, body.SessionToken)
		f.mu.Unlock()

		w.WriteHeader(http.StatusNoContent)
	})

	return mux
}

type recorder struct {
	mu       sync.Mutex
	sessions []*bootstrap.Session
	signal   chan struct{}
}

func newRecorder() *recorder {
	return &recorder{signal: make(chan struct{}, 16)}
}

func (r *recorder) handle(s *bootstrap.Session) {
	r.mu.Lock()
	r.sessions = append(r.sessions, s)
	r.mu.Unlock()

	r.signal <- struct{}{}
}

func (r *recorder) all() []*bootstrap.Session {
	r.mu.Lock()
	defer r.mu.Unlock()

	return append([]*bootstrap.Session(nil), r.sessions...)
}

func newTestProvider(t *testing.T, kratos *fakeKratos) (*Provider, *FileStore) {
	t.Helper()

	srv := httptest.NewServer(kratos.handler())
	t.Cleanup(srv.Close)

	logger := logging.NewNoopLogger()
	store := NewFileStore(filepath.Join(t.TempDir(), sessionFileName))

	p, err := NewProvider(srv.URL, store, tracing.NewNoopTracer(), monitoring.NewNoopMonitor("test", logger), logger)
	if err != nil {
		t.Fatalf("failed to create provider: %v", err)
	}

	return p, store
}

func TestProvider_SignInAndOut(t *testing.T) {
	kratos := new(fakeKratos)
	p, store := newTestProvider(t, kratos)

	rec := newRecorder()
	unsubscribe := p.Subscribe(rec.handle)
	defer unsubscribe()

	s, err := p.SignIn(context.Background(), "l@example.com", "secret123")
	if err != nil {
		t.Fatalf("failed to sign in: %v", err)
	}

	if s.UserID != "u1" || s.Token != "tok-u1" || s.Email != "l@example.com" {
		t.Errorf("unexpected session %+v", s)
	}

	stored, _ := store.Load()
	if stored == nil || stored.Token != "tok-u1" {
		t.Errorf("expected the session to be stored, got %+v", stored)
	}

	if err := p.SignOut(context.Background()); err != nil {
		t.Fatalf("failed to sign out: %v", err)
	}

	if stored, _ := store.Load(); stored != nil {
		t.Errorf("expected the session file to be cleared, got %+v", stored)
	}

	kratos.mu.Lock()
	if len(kratos.logoutTokens) != 1 || kratos.logoutTokens[0] != "tok-u1" {
		t.Errorf("expected the token to be revoked, got %v", kratos.logoutTokens)
	}
	kratos.mu.Unlock()

	got := rec.all()
	if len(got) != 3 || got[0] != nil || got[1] == nil || got[2] != nil {
		t.Errorf("expected nil, session, nil notifications, got %+v", got)
	}
}

func TestProvider_SignInInvalidCredentials(t *testing.T) {
	p, _ := newTestProvider(t, new(fakeKratos))

	_, err := p.SignIn(context.Background(), "l@example.com", "wrong")
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("expected ErrInvalidCredentials, got %v", err)
	}

	if p.Session() != nil {
		t.Error("expected no session")
	}
}

func TestProvider_SignUp(t *testing.T) {
	testCases := []struct {
		name         string
		issueSession bool
		wantSession  bool
	}{
		{name: "session issued", issueSession: true, wantSession: true},
		{name: "verification required", issueSession: false, wantSession: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			kratos := &fakeKratos{issueSession: tc.issueSession}
			p, _ := newTestProvider(t, kratos)

			s, err := p.SignUp(context.Background(), SignUpRequest{Email: "new@example.com", Password: "secret123", Name: "New Landlord"})
			if err != nil {
				t.Fatalf("failed to sign up: %v", err)
			}

			if (s != nil) != tc.wantSession {
				t.Errorf("expected session %v, got %+v", tc.wantSession, s)
			}

			kratos.mu.Lock()
			defer kratos.mu.Unlock()
			if kratos.traits["role"] != "landlord" || kratos.traits["name"] != "New Landlord" {
				t.Errorf("expected landlord traits, got %v", kratos.traits)
			}
		})
	}
}

func TestProvider_SignOutWithoutSession(t *testing.T) {
	kratos := new(fakeKratos)
	p, _ := newTestProvider(t, kratos)

	if err := p.SignOut(context.Background()); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if len(kratos.logoutTokens) != 0 {
		t.Error("expected no logout call")
	}
}

func TestProvider_Watch(t *testing.T) {
	p, store := newTestProvider(t, new(fakeKratos))

	rec := newRecorder()
	p.Subscribe(rec.handle)
	<-rec.signal

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() { done <- p.Watch(ctx) }()

	other := NewFileStore(store.Path())
	timeout := time.After(5 * time.Second)
	tick := time.NewTicker(50 * time.Millisecond)
	defer tick.Stop()

	// the watcher may not be registered yet, keep writing until it notices
	for i := 0; ; i++ {
		select {
		case <-rec.signal:
			got := rec.all()
			if last := got[len(got)-1]; last == nil || last.UserID != "u9" {
				t.Errorf("expected the external session, got %+v", last)
			}
			cancel()
			if err := <-done; err != nil {
				t.Errorf("watch returned %v", err)
			}
			return
		case <-tick.C:
			if err := other.Save(&bootstrap.Session{UserID: "u9", Token: fmt.Sprintf("tok-%d", i)}); err != nil {
				t.Fatal(err)
			}
		case <-timeout:
			t.Fatal("timed out waiting for the session file change")
		}
	}
}

func TestProvider_DeliversSessionsInOrder(t *testing.T) {
	p, _ := newTestProvider(t, new(fakeKratos))

	var (
		mu   sync.Mutex
		last = map[int]*bootstrap.Session{}
		once sync.Once
		wg   sync.WaitGroup
	)

	subscriber := func(id int) func(*bootstrap.Session) {
		return func(s *bootstrap.Session) {
			mu.Lock()
			last[id] = s
			mu.Unlock()

			if s == nil {
				return
			}

			// a concurrent sign out lands while this delivery is still running
			once.Do(func() {
				wg.Add(1)
				go func() {
					defer wg.Done()
					p.set(nil)
				}()
				time.Sleep(50 * time.Millisecond)
			})
		}
	}

	for i := 0; i < 2; i++ {
		defer p.Subscribe(subscriber(i))()
	}

	p.set(&bootstrap.Session{UserID: "u1", Token: "t"})
	wg.Wait()

	if p.Session() != nil {
		t.Fatalf("expected the provider to be signed out, got %+v", p.Session())
	}

	mu.Lock()
	defer mu.Unlock()

	for id, s := range last {
		if s != nil {
			t.Errorf("subscriber %d ended on %+v, expected no session", id, s)
		}
	}
	if len(last) != 2 {
		t.Errorf("expected both subscribers to be notified, got %d", len(last))
	}
}
