// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package oauth

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/microsoft"

	"github.com/canonical/webhook-service/internal/logging"
	"github.com/canonical/webhook-service/internal/monitoring"
	"github.com/canonical/webhook-service/internal/storage"
	"github.com/canonical/webhook-service/internal/tracing"
)

var (
	ErrCredentialNotFound  = errors.New("credential not found")
	ErrCredentialNotOwned  = errors.New("credential does not belong to user")
	ErrUnsupportedProvider = errors.New("no oauth configuration for credential provider")
	ErrTokenRefresh        = errors.New("failed to refresh access token")
)

const (
	ProviderMicrosoft = "microsoft"
	ProviderAirtable  = "airtable"
)

var _ TokenProviderInterface = (*TokenProvider)(nil)

// TokenProvider hands out access tokens for stored credentials, refreshing and persisting them when expired.
type TokenProvider struct {
	store      CredentialStoreInterface
	configs    map[string]*oauth2.Config
	httpClient *http.Client

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (p *TokenProvider) GetValidAccessToken(ctx context.Context, credentialID, userID, purpose string) (string, error) {
	ctx, span := p.tracer.Start(ctx, "oauth.TokenProvider.GetValidAccessToken")
	defer span.End()

	cred, err := p.store.GetCredential(ctx, credentialID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return "", fmt.Errorf("credential %s: %w", credentialID, ErrCredentialNotFound)
		}
		return "", fmt.Errorf("failed to load credential %s: %w", credentialID, err)
	}

	if cred.UserID != userID {
		p.logger.Security().AuthzFailure(userID, "credential:"+credentialID)
		return "", ErrCredentialNotOwned
	}

	cfg, ok := p.configs[cred.Provider]
	if !ok {
		return "", fmt.Errorf("%s: %w", cred.Provider, ErrUnsupportedProvider)
	}

	current := &oauth2.Token{
		AccessToken:  cred.AccessToken,
		RefreshToken: cred.RefreshToken,
		TokenType:    cred.TokenType,
		Expiry:       cred.Expiry,
	}

	if p.httpClient != nil {
		ctx = context.WithValue(ctx, oauth2.HTTPClient, p.httpClient)
	}

	fresh, err := cfg.TokenSource(ctx, current).Token()
	if err != nil {
		p.logger.Errorf("token refresh for credential %s (%s) failed: %v", credentialID, purpose, err)
		return "", fmt.Errorf("%w: %v", ErrTokenRefresh, err)
	}

	if fresh.AccessToken != current.AccessToken {
		p.logger.Debugf("access token rotated for credential %s", credentialID)

		cred.AccessToken = fresh.AccessToken
		cred.RefreshToken = fresh.RefreshToken
		cred.TokenType = fresh.TokenType
		cred.Expiry = fresh.Expiry

		if err := p.store.UpdateCredentialToken(ctx, cred); err != nil {
			// the fresh token is still usable for this call
			p.logger.Errorf("failed to persist rotated token for credential %s: %v", credentialID, err)
		}
	}

	return fresh.AccessToken, nil
}

// MicrosoftConfig builds the oauth2 config used for Microsoft Graph credentials.
func MicrosoftConfig(clientID, clientSecret, tenant string) *oauth2.Config {
	return &oauth2.Config{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		Endpoint:     microsoft.AzureADEndpoint(tenant),
		Scopes:       []string{"https://graph.microsoft.com/.default", "offline_access"},
	}
}

// AirtableConfig builds the oauth2 config used for Airtable credentials.
func AirtableConfig(clientID, clientSecret string) *oauth2.Config {
	return &oauth2.Config{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		Endpoint: oauth2.Endpoint{
			AuthURL:   "https://airtable.com/oauth2/v1/authorize",
			TokenURL:  "https://airtable.com/oauth2/v1/token",
			AuthStyle: oauth2.AuthStyleInHeader,
		},
		Scopes: []string{"webhook:manage"},
	}
}

func NewTokenProvider(
	store CredentialStoreInterface,
	configs map[string]*oauth2.Config,
	httpClient *http.Client,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *TokenProvider {
	p := new(TokenProvider)

	p.store = store
	p.configs = configs
	p.httpClient = httpClient

	p.tracer = tracer
	p.monitor = monitor
	p.logger = logger

	return p
}

var _ CredentialStoreInterface = (*storage.Storage)(nil)

