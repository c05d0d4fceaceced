// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package status

type Status struct {
	Status    string `json:"status"`
	BuildInfo string `json:"buildInfo,omitempty"`
}

type Version struct {
	Version string `json:"version"`
}

type Ready struct {
	Database string `json:"database"`
}
