// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package profiles

import (
	_ "embed"
	"fmt"
	"slices"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/canonical/webhook-service/internal/types"
)

//go:embed profiles.yaml
var defaultProfiles []byte

type Handshake string

const (
	HandshakeChallenge       Handshake = "challenge"
	HandshakeSyntheticUpdate Handshake = "synthetic_update"
	HandshakeConfigCheck     Handshake = "config_check"
)

func (h Handshake) valid() bool {
	switch h {
	case HandshakeChallenge, HandshakeSyntheticUpdate, HandshakeConfigCheck:
		return true
	}
	return false
}

type Teardown string

const (
	TeardownNone         Teardown = "none"
	TeardownDirect       Teardown = "direct"
	TeardownListAndMatch Teardown = "list_and_match"
	TeardownBotToken     Teardown = "bot_token"
)

func (t Teardown) valid() bool {
	switch t {
	case TeardownNone, TeardownDirect, TeardownListAndMatch, TeardownBotToken:
		return true
	}
	return false
}

// Profile is the static description of a provider's lifecycle.
type Profile struct {
	Provider             types.Provider `yaml:"-"`
	RequiredConfigFields []string       `yaml:"requiredConfigFields"`
	TimeLimited          bool           `yaml:"timeLimited"`
	MaxLifetime          time.Duration  `yaml:"maxLifetime"`
	Handshake            Handshake      `yaml:"handshake"`
	Teardown             Teardown       `yaml:"teardown"`
}

// MissingFields lists the required fields that are absent or blank in cfg.
func (p Profile) MissingFields(cfg types.ProviderConfig) []string {
	var missing []string
	for _, field := range p.RequiredConfigFields {
		if strings.TrimSpace(cfg.String(field)) == "" {
			missing = append(missing, field)
		}
	}
	return missing
}

// Registry is immutable once loaded.
type Registry struct {
	profiles map[types.Provider]Profile
}

// Lookup returns the profile for provider, unknown providers resolve to generic with known=false.
func (r *Registry) Lookup(provider types.Provider) (Profile, bool) {
	if p, ok := r.profiles[provider]; ok {
		return p, true
	}
	return r.profiles[types.ProviderGeneric], false
}

// Known reports whether the provider has a profile of its own.
func (r *Registry) Known(provider types.Provider) bool {
	_, ok := r.profiles[provider]
	return ok
}

// Renewable returns the providers whose subscriptions expire, sorted.
func (r *Registry) Renewable() []types.Provider {
	var out []types.Provider
	for provider, p := range r.profiles {
		if p.TimeLimited {
			out = append(out, provider)
		}
	}
	slices.Sort(out)
	return out
}

func (r *Registry) Providers() []types.Provider {
	out := make([]types.Provider, 0, len(r.profiles))
	for provider := range r.profiles {
		out = append(out, provider)
	}
	slices.Sort(out)
	return out
}

type document struct {
	Providers map[string]Profile `yaml:"providers"`
}

// Parse builds a registry from a YAML document, it must define the generic profile.
func Parse(data []byte) (*Registry, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse provider profiles: %w", err)
	}

	r := &Registry{profiles: make(map[types.Provider]Profile, len(doc.Providers))}
	for name, p := range doc.Providers {
		p.Provider = types.Provider(name)

		if p.Handshake == "" {
			p.Handshake = HandshakeConfigCheck
		}
		if p.Teardown == "" {
			p.Teardown = TeardownNone
		}
		if !p.Handshake.valid() {
			return nil, fmt.Errorf("provider %s has unknown handshake %q", name, p.Handshake)
		}
		if !p.Teardown.valid() {
			return nil, fmt.Errorf("provider %s has unknown teardown %q", name, p.Teardown)
		}
		if p.TimeLimited && p.MaxLifetime <= 0 {
			return nil, fmt.Errorf("provider %s is time limited but has no maxLifetime", name)
		}

		r.profiles[p.Provider] = p
	}

	if _, ok := r.profiles[types.ProviderGeneric]; !ok {
		return nil, fmt.Errorf("provider profiles must define %q", types.ProviderGeneric)
	}

	return r, nil
}

// NewRegistry loads the embedded profiles.
func NewRegistry() *Registry {
	r, err := Parse(defaultProfiles)
	if err != nil {
		panic(err)
	}
	return r
}
