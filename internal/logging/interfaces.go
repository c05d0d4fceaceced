// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package logging

type LoggerInterface interface {
	Errorf(string, ...interface{})
	Infof(string, ...interface{})
	Warnf(string, ...interface{})
	Debugf(string, ...interface{})
	Fatalf(string, ...interface{})
	Error(...interface{})
	Info(...interface{})
	Warn(...interface{})
	Debug(...interface{})
	Fatal(...interface{})
	Sync() error
	Security() SecurityLoggerInterface
}

// SecurityLoggerInterface emits security relevant events with a stable shape
// so they can be picked up by log based alerting.
type SecurityLoggerInterface interface {
	SystemStartup()
	SystemShutdown()
	AuthnFailure(userID, reason string)
	AuthzFailure(userID, resource string)
	AdminAction(userID, action, resource string)
}
