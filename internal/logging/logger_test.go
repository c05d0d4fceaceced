// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package logging

import (
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestDebugLogger(t *testing.T) {
	func() {
		_ = recover()
		NewLogger("DEBUG")
	}()
}

func TestInvalidLevel(t *testing.T) {
	func() {
		_ = recover()
		NewLogger("invalid")
	}()
}

func TestNoopLoggerImplementsInterface(t *testing.T) {
	var l LoggerInterface = NewNoopLogger()

	l.Infof("noop %s", "logger")
	l.Security().SystemStartup()

	if err := l.Sync(); err != nil {
		t.Logf("sync on noop logger returned %v", err)
	}
}

func TestSecurityLoggerEvents(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	s := newSecurityLogger(zap.New(core))

	s.AuthzFailure("user-1", "house:h1")
	s.AdminAction("landlord-1", "create_tenant", "profile:t1")

	entries := logs.All()
	if len(entries) != 2 {
		t.Fatalf("expected 2 security entries, got %d", len(entries))
	}

	fields := entries[0].ContextMap()
	if fields["type"] != "security" {
		t.Errorf("expected type security, got %v", fields["type"])
	}
	if fields["event"] != "authz_fail:user-1,house:h1" {
		t.Errorf("unexpected event %v", fields["event"])
	}
	if entries[1].ContextMap()["resource"] != "profile:t1" {
		t.Errorf("unexpected resource %v", entries[1].ContextMap()["resource"])
	}
}
