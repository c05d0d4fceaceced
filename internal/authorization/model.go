// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authorization

import (
	"encoding/json"

	fga "github.com/openfga/go-sdk"
	"github.com/openfga/language/pkg/go/transformer"
)

const v0AuthorizationModel = `
model
  schema 1.1

type user

type profile
  relations
    define self: [user]
    define manager: [user]
    define can_view: self or manager
    define can_edit: self or manager

type house
  relations
    define landlord: [user]
    define tenant: [user]
    define can_view: landlord or tenant
    define can_edit: landlord

type lease
  relations
    define house: [house]
    define landlord: [user]
    define tenant: [user]
    define can_view: landlord or tenant
    define can_edit: landlord
    define can_pay: tenant
    define can_request_maintenance: tenant
`

var models = map[string]string{
	"v0": v0AuthorizationModel,
}

type AuthorizationModelProvider struct {
	apiVersion string
}

// GetModel parses the DSL of the provider's API version, it panics on an
// unknown version or a DSL that does not parse since both are programming errors
func (a *AuthorizationModelProvider) GetModel() *fga.AuthorizationModel {
	dsl, ok := models[a.apiVersion]
	if !ok {
		panic("unknown authorization model version " + a.apiVersion)
	}

	js, err := transformer.TransformDSLToJSON(dsl)
	if err != nil {
		panic(err)
	}

	model := new(fga.AuthorizationModel)
	if err := json.Unmarshal([]byte(js), model); err != nil {
		panic(err)
	}

	return model
}

func NewAuthorizationModelProvider(apiVersion string) *AuthorizationModelProvider {
	a := new(AuthorizationModelProvider)
	a.apiVersion = apiVersion

	return a
}
