// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package providers

import (
	"context"
	"fmt"
	"math/rand/v2"
	"net/http"
	"strings"

	"github.com/canonical/webhook-service/internal/logging"
	"github.com/canonical/webhook-service/internal/types"
)

var _ Adapter = (*telegramAdapter)(nil)

type telegramAdapter struct {
	*passiveAdapter

	baseURL string
	remote  *remote
	logger  logging.LoggerInterface
}

type telegramEnvelope struct {
	OK          bool           `json:"ok"`
	Description string         `json:"description,omitempty"`
	Result      map[string]any `json:"result,omitempty"`
}

func (a *telegramAdapter) botURL(token, method string) string {
	return fmt.Sprintf("%s/bot%s/%s", strings.TrimRight(a.baseURL, "/"), token, method)
}

// Verify posts a synthetic update to the callback, the bot's getWebhookInfo is reported alongside when reachable.
func (a *telegramAdapter) Verify(ctx context.Context, hook *types.Webhook, _ Params) (*VerifyResult, error) {
	if missing := a.profile.MissingFields(hook.ProviderConfig); len(missing) > 0 {
		return incomplete(missing), nil
	}

	var cfg TelegramConfig
	if err := decodeConfig(hook.ProviderConfig, &cfg); err != nil {
		return nil, err
	}

	now := a.now()
	update := map[string]any{
		"update_id": rand.IntN(1 << 30),
		"message": map[string]any{
			"message_id": 1,
			"date":       now.Unix(),
			"chat":       map[string]any{"id": 0, "type": "private"},
			"from":       map[string]any{"id": 0, "is_bot": false, "first_name": "Webhook Test"},
			"text":       "/start",
		},
	}

	headers := map[string]string{}
	if cfg.SecretToken != "" {
		headers["X-Telegram-Bot-Api-Secret-Token"] = cfg.SecretToken
	}

	callback := CallbackURL(a.callbackURL, hook.Path)
	result := &VerifyResult{Passed: true}

	resp, err := a.remote.doJSON(ctx, http.MethodPost, callback, headers, update)
	switch {
	case err != nil:
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		result.Reason = "callback unreachable"
		result.fail("synthetic update failed: %v", err)
	case !resp.ok():
		result.Reason = "callback rejected the synthetic update"
		result.fail("expected a 2xx status, got %d", resp.StatusCode)
	}

	if state, err := a.webhookInfo(ctx, cfg.BotToken); err != nil {
		a.logger.Debugf("getWebhookInfo for webhook %s unavailable: %v", hook.ID, err)
	} else {
		result.ProviderState = state
		if registered, _ := state["url"].(string); registered != "" && registered != callback {
			result.Diagnostics = append(result.Diagnostics, fmt.Sprintf("bot is registered for %s", registered))
		}
	}

	return result, nil
}

func (a *telegramAdapter) webhookInfo(ctx context.Context, token string) (map[string]any, error) {
	resp, err := a.remote.do(ctx, http.MethodGet, a.botURL(token, "getWebhookInfo"), nil, nil)
	if err != nil {
		return nil, err
	}

	if !resp.ok() {
		return nil, fmt.Errorf("getWebhookInfo responded with status %d", resp.StatusCode)
	}

	var env telegramEnvelope
	if err := resp.decode(&env); err != nil {
		return nil, err
	}

	if !env.OK {
		return nil, fmt.Errorf("getWebhookInfo: %s", env.Description)
	}

	return env.Result, nil
}

// Teardown unregisters the bot's webhook, without a bot token there is nothing to call.
func (a *telegramAdapter) Teardown(ctx context.Context, hook *types.WebhookWithOwner) (*TeardownResult, error) {
	var cfg TelegramConfig
	if err := decodeConfig(hook.ProviderConfig, &cfg); err != nil {
		return nil, err
	}

	if cfg.BotToken == "" {
		return &TeardownResult{Outcome: TeardownSkipped, Reason: "no bot token configured"}, nil
	}

	resp, err := a.remote.do(ctx, http.MethodPost, a.botURL(cfg.BotToken, "deleteWebhook"), nil, nil)
	if err != nil {
		return nil, err
	}

	if !resp.ok() {
		return nil, fmt.Errorf("%w: deleteWebhook responded with status %d", ErrRemoteCallFailed, resp.StatusCode)
	}

	var env telegramEnvelope
	if err := resp.decode(&env); err == nil && !env.OK {
		return nil, fmt.Errorf("%w: deleteWebhook: %s", ErrRemoteCallFailed, env.Description)
	}

	return &TeardownResult{Outcome: TeardownRemoved}, nil
}

func newTelegramAdapter(base *passiveAdapter, baseURL string, remote *remote, logger logging.LoggerInterface) *telegramAdapter {
	a := new(telegramAdapter)

	a.passiveAdapter = base
	a.baseURL = baseURL
	a.remote = remote
	a.logger = logger

	return a
}
