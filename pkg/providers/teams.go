// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package providers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/canonical/webhook-service/internal/logging"
	"github.com/canonical/webhook-service/internal/oauth"
	"github.com/canonical/webhook-service/internal/types"
)

var _ Adapter = (*teamsAdapter)(nil)

// teamsAdapter manages Microsoft Graph change notification subscriptions.
type teamsAdapter struct {
	*passiveAdapter

	graphURL string
	tokens   TokenProviderInterface
	recorder IDRecorderInterface
	// recoverIDs enables the list-and-match fallback when no subscription id is stored
	recoverIDs bool
	remote     *remote
	logger     logging.LoggerInterface
}

type graphSubscription struct {
	ID                 string `json:"id"`
	NotificationURL    string `json:"notificationUrl"`
	ExpirationDateTime string `json:"expirationDateTime"`
}

type graphSubscriptionPage struct {
	Value    []graphSubscription `json:"value"`
	NextLink string              `json:"@odata.nextLink"`
}

func (a *teamsAdapter) subscriptionsURL() string {
	return strings.TrimRight(a.graphURL, "/") + "/subscriptions"
}

func (a *teamsAdapter) subscriptionURL(id string) string {
	return a.subscriptionsURL() + "/" + url.PathEscape(id)
}

// Renew extends the subscription to the maximum lifetime, the expiration Graph answers with is authoritative.
func (a *teamsAdapter) Renew(ctx context.Context, hook *types.WebhookWithOwner) (*RenewResult, error) {
	var cfg TeamsConfig
	if err := decodeConfig(hook.ProviderConfig, &cfg); err != nil {
		return &RenewResult{Reason: err.Error()}, nil
	}

	if cfg.CredentialID == "" {
		return &RenewResult{Reason: "missing credential id"}, nil
	}

	if cfg.ExternalSubscriptionID == "" {
		return &RenewResult{Reason: "missing external subscription id"}, nil
	}

	token, err := a.tokens.GetValidAccessToken(ctx, cfg.CredentialID, hook.OwnerID, "microsoftteams.renew")
	if err != nil {
		return &RenewResult{Reason: fmt.Sprintf("failed to obtain access token: %v", err)}, nil
	}

	requested := a.now().Add(a.profile.MaxLifetime).UTC()

	resp, err := a.remote.doJSON(
		ctx,
		http.MethodPatch,
		a.subscriptionURL(cfg.ExternalSubscriptionID),
		bearer(token),
		map[string]string{"expirationDateTime": requested.Format(time.RFC3339)},
	)
	if err != nil {
		return &RenewResult{Reason: err.Error()}, nil
	}

	if !resp.ok() {
		return &RenewResult{Reason: fmt.Sprintf("provider responded with status %d: %s", resp.StatusCode, snippet(resp.Body))}, nil
	}

	var sub graphSubscription
	if err := resp.decode(&sub); err != nil {
		return &RenewResult{Reason: err.Error()}, nil
	}

	expiration, err := time.Parse(time.RFC3339, sub.ExpirationDateTime)
	if err != nil {
		return &RenewResult{Reason: fmt.Sprintf("provider returned an invalid expiration %q", sub.ExpirationDateTime)}, nil
	}

	return &RenewResult{Renewed: true, NewExpiration: expiration.UTC()}, nil
}

// Teardown deletes the Graph subscription, recovering its id from the subscription list when it was never stored.
func (a *teamsAdapter) Teardown(ctx context.Context, hook *types.WebhookWithOwner) (*TeardownResult, error) {
	var cfg TeamsConfig
	if err := decodeConfig(hook.ProviderConfig, &cfg); err != nil {
		return nil, err
	}

	if cfg.CredentialID == "" {
		return &TeardownResult{Outcome: TeardownSkipped, Reason: "no credential to reach the provider"}, nil
	}

	if cfg.ExternalSubscriptionID == "" && !a.recoverIDs {
		return &TeardownResult{Outcome: TeardownSkipped, Reason: "no subscription id stored"}, nil
	}

	token, err := a.tokens.GetValidAccessToken(ctx, cfg.CredentialID, hook.OwnerID, "microsoftteams.teardown")
	if errors.Is(err, oauth.ErrCredentialNotFound) {
		a.logger.Warnf("credential %s of webhook %s no longer exists, skipping subscription teardown", cfg.CredentialID, hook.ID)
		return &TeardownResult{Outcome: TeardownSkipped, Reason: "credential no longer exists"}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: failed to obtain access token: %w", ErrRemoteCallFailed, err)
	}

	result := &TeardownResult{Outcome: TeardownRemoved}
	id := cfg.ExternalSubscriptionID

	if id == "" {
		subs, err := a.listSubscriptions(ctx, token)
		if err != nil {
			return nil, err
		}

		found, ok := matchCallback(subs, CallbackURL(a.callbackURL, hook.Path), hook.Path)
		if !ok {
			return &TeardownResult{Outcome: TeardownSkipped, Reason: "no matching subscription found"}, nil
		}

		if err := a.recorder.RecordExternalID(ctx, hook.ID, types.ConfigExternalSubscriptionID, found); err != nil {
			return nil, fmt.Errorf("failed to record recovered subscription id: %w", err)
		}

		a.logger.Infof("recovered subscription %s for webhook %s", found, hook.ID)
		id = found
		result.RecoveredID = found
	}

	resp, err := a.remote.do(ctx, http.MethodDelete, a.subscriptionURL(id), bearer(token), nil)
	if err != nil {
		return nil, err
	}

	if !resp.ok() {
		return nil, fmt.Errorf("%w: delete subscription %s responded with status %d", ErrRemoteCallFailed, id, resp.StatusCode)
	}

	return result, nil
}

func (a *teamsAdapter) listSubscriptions(ctx context.Context, token string) ([]remoteHook, error) {
	var hooks []remoteHook

	next := a.subscriptionsURL()
	for next != "" {
		resp, err := a.remote.do(ctx, http.MethodGet, next, bearer(token), nil)
		if err != nil {
			return nil, err
		}

		if !resp.ok() {
			return nil, fmt.Errorf("%w: list subscriptions responded with status %d", ErrRemoteCallFailed, resp.StatusCode)
		}

		var page graphSubscriptionPage
		if err := resp.decode(&page); err != nil {
			return nil, errors.Join(ErrRemoteCallFailed, err)
		}

		for _, s := range page.Value {
			hooks = append(hooks, remoteHook{ID: s.ID, NotificationURL: s.NotificationURL})
		}

		next = page.NextLink
	}

	return hooks, nil
}

func snippet(body []byte) string {
	const limit = 256
	if len(body) > limit {
		return string(body[:limit]) + "..."
	}
	return string(body)
}

func newTeamsAdapter(
	base *passiveAdapter,
	graphURL string,
	tokens TokenProviderInterface,
	recorder IDRecorderInterface,
	recoverIDs bool,
	remote *remote,
	logger logging.LoggerInterface,
) *teamsAdapter {
	a := new(teamsAdapter)

	a.passiveAdapter = base
	a.graphURL = graphURL
	a.tokens = tokens
	a.recorder = recorder
	a.recoverIDs = recoverIDs
	a.remote = remote
	a.logger = logger

	return a
}
