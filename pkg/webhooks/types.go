// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package webhooks

// KratosIdentity is the body the after registration hook posts, shaped by
// the hook's jsonnet template
type KratosIdentity struct {
	ID     string       `json:"id"`
	Traits KratosTraits `json:"traits"`
}

type KratosTraits struct {
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
	Role  string `json:"role,omitempty"`
}

// TokenHookResponse carries the extra claims Hydra merges into the tokens
type TokenHookResponse struct {
	Session struct {
		IDToken     map[string]interface{} `json:"id_token,omitempty"`
		AccessToken map[string]interface{} `json:"access_token,omitempty"`
	} `json:"session"`
}
