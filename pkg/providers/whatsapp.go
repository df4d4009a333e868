// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package providers

import (
	"context"
	"mime"
	"net/http"
	"net/url"

	"github.com/google/uuid"

	"github.com/canonical/webhook-service/internal/logging"
	"github.com/canonical/webhook-service/internal/types"
)

var _ Adapter = (*whatsAppAdapter)(nil)

type whatsAppAdapter struct {
	*passiveAdapter

	remote *remote
	logger logging.LoggerInterface
}

// Verify replays the Meta subscription handshake against our own callback.
// The callback must answer 200 with the bare challenge as a text/plain body.
func (a *whatsAppAdapter) Verify(ctx context.Context, hook *types.Webhook, _ Params) (*VerifyResult, error) {
	if missing := a.profile.MissingFields(hook.ProviderConfig); len(missing) > 0 {
		return incomplete(missing), nil
	}

	var cfg WhatsAppConfig
	if err := decodeConfig(hook.ProviderConfig, &cfg); err != nil {
		return nil, err
	}

	challenge := uuid.NewString()

	q := url.Values{}
	q.Set("hub.mode", "subscribe")
	q.Set("hub.verify_token", cfg.VerificationToken)
	q.Set("hub.challenge", challenge)

	target := CallbackURL(a.callbackURL, hook.Path) + "?" + q.Encode()

	result := &VerifyResult{
		Passed:         true,
		ExampleRequest: &ExampleRequest{Method: http.MethodGet, URL: target},
	}

	resp, err := a.remote.do(ctx, http.MethodGet, target, nil, nil)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		a.logger.Debugf("whatsapp handshake for webhook %s unreachable: %v", hook.ID, err)
		result.Reason = "callback unreachable"
		result.fail("callback request failed: %v", err)
		return result, nil
	}

	if resp.StatusCode != http.StatusOK {
		result.fail("expected status 200, got %d", resp.StatusCode)
	}

	if string(resp.Body) != challenge {
		result.fail("response body does not echo the challenge")
	}

	if ct := resp.Header.Get("Content-Type"); ct != "" {
		mediaType, _, err := mime.ParseMediaType(ct)
		if err != nil || mediaType != "text/plain" {
			result.fail("expected text/plain content type, got %q", ct)
		}
	}

	if !result.Passed {
		result.Reason = "handshake did not echo the challenge"
	}

	return result, nil
}

func newWhatsAppAdapter(base *passiveAdapter, remote *remote, logger logging.LoggerInterface) *whatsAppAdapter {
	a := new(whatsAppAdapter)

	a.passiveAdapter = base
	a.remote = remote
	a.logger = logger

	return a
}
