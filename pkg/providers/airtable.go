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

	"github.com/canonical/webhook-service/internal/logging"
	"github.com/canonical/webhook-service/internal/oauth"
	"github.com/canonical/webhook-service/internal/types"
)

var _ Adapter = (*airtableAdapter)(nil)

type airtableAdapter struct {
	*passiveAdapter

	baseURL    string
	tokens     TokenProviderInterface
	recorder   IDRecorderInterface
	recoverIDs bool
	remote     *remote
	logger     logging.LoggerInterface
}

type airtableWebhookList struct {
	Webhooks []struct {
		ID              string `json:"id"`
		NotificationURL string `json:"notificationUrl"`
	} `json:"webhooks"`
}

func (a *airtableAdapter) webhooksURL(baseID string) string {
	return fmt.Sprintf("%s/v0/bases/%s/webhooks", strings.TrimRight(a.baseURL, "/"), url.PathEscape(baseID))
}

// accessToken prefers a stored OAuth credential over a personal access token in the config.
func (a *airtableAdapter) accessToken(ctx context.Context, cfg AirtableConfig, ownerID string) (string, error) {
	if cfg.CredentialID != "" {
		token, err := a.tokens.GetValidAccessToken(ctx, cfg.CredentialID, ownerID, "airtable.teardown")
		if err != nil {
			return "", fmt.Errorf("%w: failed to obtain access token: %w", ErrRemoteCallFailed, err)
		}
		return token, nil
	}
	return cfg.APIKey, nil
}

// Teardown deletes the base webhook, matching on the notification URL when its id was never stored.
func (a *airtableAdapter) Teardown(ctx context.Context, hook *types.WebhookWithOwner) (*TeardownResult, error) {
	var cfg AirtableConfig
	if err := decodeConfig(hook.ProviderConfig, &cfg); err != nil {
		return nil, err
	}

	if cfg.BaseID == "" {
		return &TeardownResult{Outcome: TeardownSkipped, Reason: "no base id configured"}, nil
	}

	if cfg.ExternalWebhookID == "" && !a.recoverIDs {
		return &TeardownResult{Outcome: TeardownSkipped, Reason: "no airtable webhook id stored"}, nil
	}

	token, err := a.accessToken(ctx, cfg, hook.OwnerID)
	if errors.Is(err, oauth.ErrCredentialNotFound) {
		a.logger.Warnf("credential %s of webhook %s no longer exists, skipping airtable teardown", cfg.CredentialID, hook.ID)
		return &TeardownResult{Outcome: TeardownSkipped, Reason: "credential no longer exists"}, nil
	}
	if err != nil {
		return nil, err
	}

	if token == "" {
		return &TeardownResult{Outcome: TeardownSkipped, Reason: "no credential to reach the provider"}, nil
	}

	result := &TeardownResult{Outcome: TeardownRemoved}
	id := cfg.ExternalWebhookID

	if id == "" {
		hooks, err := a.listWebhooks(ctx, cfg.BaseID, token)
		if err != nil {
			return nil, err
		}

		found, ok := matchCallback(hooks, CallbackURL(a.callbackURL, hook.Path), hook.Path)
		if !ok {
			return &TeardownResult{Outcome: TeardownSkipped, Reason: "no matching webhook found in base"}, nil
		}

		if err := a.recorder.RecordExternalID(ctx, hook.ID, types.ConfigExternalWebhookID, found); err != nil {
			return nil, fmt.Errorf("failed to record recovered webhook id: %w", err)
		}

		a.logger.Infof("recovered airtable webhook %s for webhook %s", found, hook.ID)
		id = found
		result.RecoveredID = found
	}

	resp, err := a.remote.do(ctx, http.MethodDelete, a.webhooksURL(cfg.BaseID)+"/"+url.PathEscape(id), bearer(token), nil)
	if err != nil {
		return nil, err
	}

	if !resp.ok() {
		return nil, fmt.Errorf("%w: delete airtable webhook %s responded with status %d", ErrRemoteCallFailed, id, resp.StatusCode)
	}

	return result, nil
}

func (a *airtableAdapter) listWebhooks(ctx context.Context, baseID, token string) ([]remoteHook, error) {
	resp, err := a.remote.do(ctx, http.MethodGet, a.webhooksURL(baseID), bearer(token), nil)
	if err != nil {
		return nil, err
	}

	if !resp.ok() {
		return nil, fmt.Errorf("%w: list airtable webhooks responded with status %d", ErrRemoteCallFailed, resp.StatusCode)
	}

	var list airtableWebhookList
	if err := resp.decode(&list); err != nil {
		return nil, errors.Join(ErrRemoteCallFailed, err)
	}

	hooks := make([]remoteHook, 0, len(list.Webhooks))
	for _, w := range list.Webhooks {
		hooks = append(hooks, remoteHook{ID: w.ID, NotificationURL: w.NotificationURL})
	}

	return hooks, nil
}

func newAirtableAdapter(
	base *passiveAdapter,
	baseURL string,
	tokens TokenProviderInterface,
	recorder IDRecorderInterface,
	recoverIDs bool,
	remote *remote,
	logger logging.LoggerInterface,
) *airtableAdapter {
	a := new(airtableAdapter)

	a.passiveAdapter = base
	a.baseURL = baseURL
	a.tokens = tokens
	a.recorder = recorder
	a.recoverIDs = recoverIDs
	a.remote = remote
	a.logger = logger

	return a
}
