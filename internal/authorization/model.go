// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authorization

import (
	_ "embed"
	"encoding/json"
	"fmt"

	fga "github.com/openfga/go-sdk"
	"github.com/openfga/language/pkg/go/transformer"
)

//go:embed model.fga
var v0AuthzModelDSL string

type AuthorizationModelProvider struct {
	apiVersion string
}

func (a *AuthorizationModelProvider) dsl() (string, error) {
	switch a.apiVersion {
	case "v0":
		return v0AuthzModelDSL, nil
	default:
		return "", fmt.Errorf("unknown authorization model version %q", a.apiVersion)
	}
}

// GetModel compiles the DSL for the configured version, it panics on an unknown version or a broken DSL.
func (a *AuthorizationModelProvider) GetModel() *fga.AuthorizationModel {
	dsl, err := a.dsl()
	if err != nil {
		panic(err)
	}

	raw, err := transformer.TransformDSLToJSON(dsl)
	if err != nil {
		panic(fmt.Errorf("failed to compile authorization model: %w", err))
	}

	model := new(fga.AuthorizationModel)
	if err := json.Unmarshal([]byte(raw), model); err != nil {
		panic(fmt.Errorf("failed to decode authorization model: %w", err))
	}

	return model
}

func NewAuthorizationModelProvider(apiVersion string) *AuthorizationModelProvider {
	return &AuthorizationModelProvider{apiVersion: apiVersion}
}
