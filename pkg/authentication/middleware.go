// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"net/http"
	"strings"

	httptypes "github.com/canonical/webhook-service/internal/http/types"
	"github.com/canonical/webhook-service/internal/logging"
	"github.com/canonical/webhook-service/internal/monitoring"
	"github.com/canonical/webhook-service/internal/tracing"
)

const bearerPrefix = "Bearer "

// Middleware puts the verified subject of the bearer token on the request context.
type Middleware struct {
	verifier TokenVerifierInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (m *Middleware) Authenticate() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, span := m.tracer.Start(r.Context(), "authentication.Middleware.Authenticate")
			defer span.End()

			token, found := bearerToken(r.Header)
			if !found {
				m.unauthorized(w, "missing bearer token")
				return
			}

			subject, err := m.verifier.VerifyToken(ctx, token)
			if err != nil {
				m.logger.Debugf("bearer token rejected: %v", err)
				m.unauthorized(w, "invalid token")
				return
			}

			next.ServeHTTP(w, r.WithContext(WithSubject(ctx, subject)))
		})
	}
}

func (m *Middleware) unauthorized(w http.ResponseWriter, message string) {
	w.Header().Set("WWW-Authenticate", `Bearer realm="webhook-service"`)
	if err := httptypes.WriteError(w, http.StatusUnauthorized, message, nil); err != nil {
		m.logger.Errorf("failed to encode unauthorized response: %v", err)
	}
}

// bearerToken only accepts the RFC 6750 header form.
func bearerToken(headers http.Header) (string, bool) {
	value := headers.Get("Authorization")
	if !strings.HasPrefix(value, bearerPrefix) {
		return "", false
	}

	token := strings.TrimSpace(strings.TrimPrefix(value, bearerPrefix))
	return token, token != ""
}

func NewMiddleware(verifier TokenVerifierInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Middleware {
	m := new(Middleware)

	m.verifier = verifier

	m.tracer = tracer
	m.monitor = monitor
	m.logger = logger

	return m
}
