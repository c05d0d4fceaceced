// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package bootstrap

import "errors"

var (
	ErrProfileNotFound = errors.New("profile not found")
	ErrAlreadyStarted  = errors.New("watcher is already started")
	ErrNotStarted      = errors.New("watcher is not started")
	ErrNotLandlord     = errors.New("no landlord is signed in")
)
