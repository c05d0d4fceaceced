// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package logging

import (
	"os"

	"go.uber.org/zap"
)

const (
	securityLevel = "WARN"
	appID         = "tenantflow"
)

// SecurityLogger follows the OWASP logging vocabulary, events are tagged
// with a "type" field set to "security"
type SecurityLogger struct {
	l *zap.Logger
}

func (s *SecurityLogger) event(name, description string, fields ...zap.Field) {
	fields = append(
		fields,
		zap.String("type", "security"),
		zap.String("appid", appID),
		zap.String("event", name),
		zap.String("level", securityLevel),
		zap.String("description", description),
	)

	s.l.Warn(description, fields...)
}

func (s *SecurityLogger) SystemStartup() {
	host, _ := os.Hostname()
	s.event("sys_startup", "tenantflow server is starting", zap.String("hostname", host))
}

func (s *SecurityLogger) SystemShutdown() {
	host, _ := os.Hostname()
	s.event("sys_shutdown", "tenantflow server is shutting down", zap.String("hostname", host))
}

func (s *SecurityLogger) AuthnFailure(userID, reason string) {
	s.event("authn_login_fail:"+userID, "authentication failed", zap.String("reason", reason))
}

func (s *SecurityLogger) AuthzFailure(userID, resource string) {
	s.event("authz_fail:"+userID+","+resource, "user attempted to access a resource without entitlement")
}

func (s *SecurityLogger) AdminAction(userID, action, resource string) {
	s.event("privilege_action:"+userID+","+action, "privileged action performed", zap.String("resource", resource))
}

func newSecurityLogger(l *zap.Logger) *SecurityLogger {
	return &SecurityLogger{l: l.WithOptions(zap.AddCallerSkip(1))}
}
