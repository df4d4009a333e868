// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package config

import (
	"time"
)

// EnvSpec is the basic environment configuration setup needed for the app to start
type EnvSpec struct {
	OtelGRPCEndpoint string  `envconfig:"otel_grpc_endpoint"`
	OtelHTTPEndpoint string  `envconfig:"otel_http_endpoint"`
	TracingEnabled   bool    `envconfig:"tracing_enabled" default:"true"`
	TracingRatio     float64 `envconfig:"tracing_sample_ratio" default:"1.0"`

	LogLevel string `envconfig:"log_level" default:"error"`
	Debug    bool   `envconfig:"debug" default:"false"`

	Port     int `envconfig:"port" default:"8080"`
	GRPCPort int `envconfig:"grpc_port" default:"50051"`

	CORSAllowedOrigins []string      `envconfig:"cors_allowed_origins"`
	StatusInterval     time.Duration `envconfig:"status_interval" default:"30s"`

	DSN string `envconfig:"DSN" required:"true"`

	DBMaxConns        int32         `envconfig:"db_max_conns" default:"25"`
	DBMinConns        int32         `envconfig:"db_min_conns" default:"2"`
	DBMaxConnLifetime time.Duration `envconfig:"db_max_conn_lifetime" default:"1h"`
	DBMaxConnIdleTime time.Duration `envconfig:"db_max_conn_idle_time" default:"30m"`

	AuthorizationEnabled bool   `envconfig:"authorization_enabled" default:"false"`
	OpenfgaApiScheme     string `envconfig:"openfga_api_scheme" default:""`
	OpenfgaApiHost       string `envconfig:"openfga_api_host"`
	OpenfgaApiToken      string `envconfig:"openfga_api_token"`
	OpenfgaStoreId       string `envconfig:"openfga_store_id"`
	OpenfgaModelId       string `envconfig:"openfga_authorization_model_id" default:""`

	AuthenticationEnabled bool     `envconfig:"authentication_enabled" default:"false"`
	JWTIssuer             string   `envconfig:"jwt_issuer"`
	JWTJwksURL            string   `envconfig:"jwt_jwks_url"`
	JWTAllowedSubjects    []string `envconfig:"jwt_allowed_subjects"`
	JWTRequiredScope      string   `envconfig:"jwt_required_scope"`
	// AdminSubjects may trigger a renewal pass through the API.
	AdminSubjects []string `envconfig:"admin_subjects"`

	WebhookBaseURL  string        `envconfig:"webhook_base_url" required:"true"`
	TestTokenSecret string        `envconfig:"test_token_secret" required:"true"`
	HTTPTimeout     time.Duration `envconfig:"provider_http_timeout" default:"15s"`

	GraphBaseURL    string `envconfig:"graph_base_url" default:"https://graph.microsoft.com/v1.0"`
	AirtableBaseURL string `envconfig:"airtable_base_url" default:"https://api.airtable.com"`
	TelegramBaseURL string `envconfig:"telegram_base_url" default:"https://api.telegram.org"`

	MicrosoftClientID     string `envconfig:"microsoft_client_id"`
	MicrosoftClientSecret string `envconfig:"microsoft_client_secret"`
	MicrosoftTenant       string `envconfig:"microsoft_tenant" default:"common"`

	AirtableClientID     string `envconfig:"airtable_client_id"`
	AirtableClientSecret string `envconfig:"airtable_client_secret"`

	RenewalEnabled   bool          `envconfig:"renewal_enabled" default:"true"`
	RenewalInterval  time.Duration `envconfig:"renewal_interval" default:"1h"`
	RenewalWindow    time.Duration `envconfig:"renewal_window" default:"48h"`
	RenewalRateLimit float64       `envconfig:"renewal_rate_limit" default:"5"`
	RenewalLockTTL   time.Duration `envconfig:"renewal_lock_ttl" default:"10m"`

	RedisAddr     string `envconfig:"redis_addr" default:""`
	RedisPassword string `envconfig:"redis_password"`
	RedisDB       int    `envconfig:"redis_db" default:"0"`
}
