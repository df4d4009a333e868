// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/coreos/go-oidc/v3/oidc"

	"github.com/canonical/webhook-service/internal/logging"
	"github.com/canonical/webhook-service/internal/monitoring"
	"github.com/canonical/webhook-service/internal/tracing"
)

var ErrTokenNotAuthorized = errors.New("token is not authorized for this api")

type claims struct {
	Subject string   `json:"sub"`
	Scope   string   `json:"scope"`
	Scopes  []string `json:"scp"`
}

func (c claims) hasScope(scope string) bool {
	return slices.Contains(strings.Fields(c.Scope), scope) || slices.Contains(c.Scopes, scope)
}

var _ TokenVerifierInterface = (*JWTVerifier)(nil)

// JWTVerifier accepts tokens whose subject is allow-listed or that carry the required scope.
// With neither configured every token is rejected.
type JWTVerifier struct {
	verifier        *oidc.IDTokenVerifier
	allowedSubjects []string
	requiredScope   string

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (v *JWTVerifier) VerifyToken(ctx context.Context, rawToken string) (string, error) {
	ctx, span := v.tracer.Start(ctx, "authentication.JWTVerifier.VerifyToken")
	defer span.End()

	token, err := v.verifier.Verify(ctx, rawToken)
	if err != nil {
		return "", fmt.Errorf("failed to verify token: %w", err)
	}

	var c claims
	if err := token.Claims(&c); err != nil {
		return "", fmt.Errorf("failed to extract claims: %w", err)
	}

	if c.Subject == "" {
		return "", fmt.Errorf("%w: missing subject", ErrTokenNotAuthorized)
	}

	if slices.Contains(v.allowedSubjects, c.Subject) {
		return c.Subject, nil
	}

	if v.requiredScope != "" && c.hasScope(v.requiredScope) {
		return c.Subject, nil
	}

	v.logger.Security().AuthzFailure(c.Subject, "api")
	return "", ErrTokenNotAuthorized
}

func NewJWTVerifier(
	verifier *oidc.IDTokenVerifier,
	allowedSubjects []string,
	requiredScope string,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *JWTVerifier {
	v := new(JWTVerifier)

	v.verifier = verifier
	v.allowedSubjects = allowedSubjects
	v.requiredScope = requiredScope

	v.tracer = tracer
	v.monitor = monitor
	v.logger = logger

	return v
}
