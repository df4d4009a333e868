// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package testtoken

import (
	"context"
	"net/http"

	"github.com/canonical/webhook-service/internal/logging"
)

const (
	HeaderName = "X-Webhook-Test-Token"
	QueryParam = "test_token"
)

type bypassKey struct{}

// BypassFor returns the webhook id a verified test token was presented for.
func BypassFor(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(bypassKey{}).(string)
	return id, ok && id != ""
}

// Middleware detects test tokens on inbound deliveries.
type Middleware struct {
	tokens ServiceInterface
	logger logging.LoggerInterface
}

// Bypass marks the request context when a valid token is presented.
// Invalid tokens are logged and the request continues unmarked.
func (m *Middleware) Bypass(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw := r.Header.Get(HeaderName)
		if raw == "" {
			raw = r.URL.Query().Get(QueryParam)
		}

		if raw == "" {
			next.ServeHTTP(w, r)
			return
		}

		webhookID, err := m.tokens.Verify(r.Context(), raw)
		if err != nil {
			m.logger.Security().TestTokenRejected(r.URL.Path)
			next.ServeHTTP(w, r)
			return
		}

		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), bypassKey{}, webhookID)))
	})
}

func NewMiddleware(tokens ServiceInterface, logger logging.LoggerInterface) *Middleware {
	m := new(Middleware)

	m.tokens = tokens
	m.logger = logger

	return m
}
