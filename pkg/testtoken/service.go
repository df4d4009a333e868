// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package testtoken

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/canonical/webhook-service/internal/logging"
	"github.com/canonical/webhook-service/internal/monitoring"
	"github.com/canonical/webhook-service/internal/tracing"
)

const (
	MinTTL     = time.Minute
	MaxTTL     = 30 * 24 * time.Hour
	DefaultTTL = 7 * 24 * time.Hour
)

// ErrTokenInvalid is the only verification failure callers ever see.
var ErrTokenInvalid = errors.New("invalid test token")

var _ ServiceInterface = (*Service)(nil)

type claims struct {
	WebhookID string `json:"wid"`
	jwt.RegisteredClaims
}

// Service mints and verifies stateless tokens that let test deliveries through an inactive webhook.
type Service struct {
	key []byte
	now func() time.Time

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

// ClampTTL bounds ttl to [MinTTL, MaxTTL], zero selects DefaultTTL.
func ClampTTL(ttl time.Duration) time.Duration {
	switch {
	case ttl == 0:
		return DefaultTTL
	case ttl < MinTTL:
		return MinTTL
	case ttl > MaxTTL:
		return MaxTTL
	default:
		return ttl
	}
}

func (s *Service) Mint(ctx context.Context, webhookID string, ttl time.Duration) (string, time.Time, error) {
	_, span := s.tracer.Start(ctx, "testtoken.Service.Mint")
	defer span.End()

	if webhookID == "" {
		return "", time.Time{}, fmt.Errorf("webhook id is required")
	}

	if len(s.key) == 0 {
		return "", time.Time{}, fmt.Errorf("test token signing key is not configured")
	}

	expiresAt := s.now().Add(ClampTTL(ttl)).Truncate(time.Second)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		WebhookID:        webhookID,
		RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(expiresAt)},
	})

	signed, err := token.SignedString(s.key)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign test token: %w", err)
	}

	return signed, expiresAt, nil
}

// Verify returns the webhook id the token was minted for.
// Expired, tampered and foreign tokens all yield ErrTokenInvalid.
func (s *Service) Verify(ctx context.Context, token string) (string, error) {
	_, span := s.tracer.Start(ctx, "testtoken.Service.Verify")
	defer span.End()

	if token == "" || len(s.key) == 0 {
		return "", ErrTokenInvalid
	}

	var c claims

	_, err := jwt.ParseWithClaims(
		token,
		&c,
		func(*jwt.Token) (any, error) { return s.key, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		s.logger.Debugf("test token rejected: %v", err)
		return "", ErrTokenInvalid
	}

	if c.WebhookID == "" {
		return "", ErrTokenInvalid
	}

	return c.WebhookID, nil
}

func NewService(key []byte, now func() time.Time, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Service {
	s := new(Service)

	s.key = key
	s.now = now
	if s.now == nil {
		s.now = time.Now
	}

	s.tracer = tracer
	s.monitor = monitor
	s.logger = logger

	return s
}
