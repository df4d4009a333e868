// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package providers

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/canonical/webhook-service/internal/types"
	"github.com/canonical/webhook-service/pkg/profiles"
)

var _ Adapter = (*passiveAdapter)(nil)

// passiveAdapter serves providers that push signed events and keep no subscription on their side.
// The time limited and list-and-match providers embed it for their verification step.
type passiveAdapter struct {
	provider    types.Provider
	profile     profiles.Profile
	callbackURL string
	now         func() time.Time
}

func (a *passiveAdapter) Verify(ctx context.Context, hook *types.Webhook, _ Params) (*VerifyResult, error) {
	if missing := a.profile.MissingFields(hook.ProviderConfig); len(missing) > 0 {
		return incomplete(missing), nil
	}

	return &VerifyResult{Passed: true, ExampleRequest: a.exampleRequest(hook)}, nil
}

func (a *passiveAdapter) Renew(context.Context, *types.WebhookWithOwner) (*RenewResult, error) {
	return &RenewResult{Reason: fmt.Sprintf("%s subscriptions do not expire", a.provider)}, nil
}

func (a *passiveAdapter) Teardown(context.Context, *types.WebhookWithOwner) (*TeardownResult, error) {
	return &TeardownResult{Outcome: TeardownNotRequired}, nil
}

// exampleRequest builds a delivery an operator can replay against the callback, signed like the provider would.
func (a *passiveAdapter) exampleRequest(hook *types.Webhook) *ExampleRequest {
	now := a.now()
	cfg := hook.ProviderConfig
	headers := map[string]string{"Content-Type": "application/json"}

	var body string

	switch a.provider {
	case types.ProviderGitHub:
		body = `{"zen":"Design for failure.","hook_id":0,"hook":{"type":"Repository","active":true}}`
		headers["X-GitHub-Event"] = "ping"
		headers["X-GitHub-Delivery"] = uuid.NewString()
		headers["X-Hub-Signature-256"] = signGitHub(cfg.String("secret"), []byte(body))
	case types.ProviderStripe:
		body = fmt.Sprintf(`{"id":"evt_test_webhook","object":"event","type":"ping","created":%d,"livemode":false}`, now.Unix())
		headers["Stripe-Signature"] = signStripe(cfg.String("signingSecret"), []byte(body), now)
	case types.ProviderSlack:
		body = fmt.Sprintf(`{"type":"event_callback","event_id":"Ev%s","event_time":%d,"event":{"type":"app_mention","text":"ping"}}`, uuid.NewString()[:8], now.Unix())
		sig, ts := signSlack(cfg.String("signingSecret"), []byte(body), now)
		headers["X-Slack-Signature"] = sig
		headers["X-Slack-Request-Timestamp"] = ts
	case types.ProviderMicrosoftTeams:
		body = `{"type":"message","text":"ping","from":{"id":"test","name":"Webhook Test"},"channelId":"msteams"}`
		headers["Authorization"] = signTeams(cfg.String("hmacSecret"), []byte(body))
	case types.ProviderAirtable:
		body = fmt.Sprintf(`{"base":{"id":%q},"webhook":{"id":"ach00000000000000"},"timestamp":%q}`, cfg.String("baseId"), now.UTC().Format(time.RFC3339))
		if secret := cfg.String("macSecretBase64"); secret != "" {
			headers["X-Airtable-Content-MAC"] = signAirtable(secret, []byte(body))
		}
	default:
		body = fmt.Sprintf(`{"event":"test","webhookId":%q,"timestamp":%q}`, hook.ID, now.UTC().Format(time.RFC3339))
	}

	return &ExampleRequest{
		Method:  http.MethodPost,
		URL:     CallbackURL(a.callbackURL, hook.Path),
		Headers: headers,
		Body:    body,
	}
}

func incomplete(missing []string) *VerifyResult {
	r := &VerifyResult{Reason: ReasonIncompleteConfiguration, MissingFields: missing}
	for _, field := range missing {
		r.fail("missing required field %q", field)
	}
	return r
}

func newPassiveAdapter(provider types.Provider, profile profiles.Profile, callbackURL string, now func() time.Time) *passiveAdapter {
	a := new(passiveAdapter)

	a.provider = provider
	a.profile = profile
	a.callbackURL = callbackURL
	a.now = now

	return a
}
