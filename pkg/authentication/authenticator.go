// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/coreos/go-oidc/v3/oidc"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/canonical/webhook-service/internal/logging"
	"github.com/canonical/webhook-service/internal/monitoring"
	"github.com/canonical/webhook-service/internal/tracing"
)

type Config struct {
	Issuer string
	// JWKSURL skips discovery when set.
	JWKSURL         string
	AllowedSubjects []string
	RequiredScope   string
}

// NewJWTAuthenticator builds a verifier for API bearer tokens issued by cfg.Issuer.
func NewJWTAuthenticator(ctx context.Context, cfg Config, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) (*JWTVerifier, error) {
	if cfg.Issuer == "" {
		return nil, errors.New("issuer is required for JWT authentication")
	}

	ctx = oidc.ClientContext(ctx, &http.Client{Transport: otelhttp.NewTransport(http.DefaultTransport)})

	oidcConfig := &oidc.Config{SkipClientIDCheck: true}

	var verifier *oidc.IDTokenVerifier

	if cfg.JWKSURL != "" {
		logger.Infof("using JWKS %s for issuer %s", cfg.JWKSURL, cfg.Issuer)
		verifier = oidc.NewVerifier(cfg.Issuer, oidc.NewRemoteKeySet(ctx, cfg.JWKSURL), oidcConfig)
	} else {
		logger.Infof("using OIDC discovery for issuer %s", cfg.Issuer)
		provider, err := oidc.NewProvider(ctx, cfg.Issuer)
		if err != nil {
			return nil, fmt.Errorf("failed to create OIDC provider: %w", err)
		}
		verifier = provider.Verifier(oidcConfig)
	}

	return NewJWTVerifier(verifier, cfg.AllowedSubjects, cfg.RequiredScope, tracer, monitor, logger), nil
}
