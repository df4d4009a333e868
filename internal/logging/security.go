// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package logging

import (
	"go.uber.org/zap"
)

const (
	securityLoggerName = "security"

	eventSystemStartup     = "sys_startup"
	eventSystemShutdown    = "sys_shutdown"
	eventAuthzFailure      = "authz_fail"
	eventTestTokenMinted   = "test_token_minted"
	eventTestTokenRejected = "test_token_rejected"
)

var _ SecurityLoggerInterface = (*SecurityLogger)(nil)

type SecurityLogger struct {
	l *zap.Logger
}

func (s *SecurityLogger) SystemStartup() {
	s.l.Info("system startup", zap.String("event", eventSystemStartup))
}

func (s *SecurityLogger) SystemShutdown() {
	s.l.Info("system shutdown", zap.String("event", eventSystemShutdown))
}

func (s *SecurityLogger) AuthzFailure(subject, resource string) {
	s.l.Warn(
		"authorization failure",
		zap.String("event", eventAuthzFailure+":"+subject+","+resource),
		zap.String("subject", subject),
		zap.String("resource", resource),
	)
}

func (s *SecurityLogger) AuthzFailureWebhookAccess(subject, webhookID, action string) {
	s.l.Warn(
		"webhook access denied",
		zap.String("event", eventAuthzFailure+":"+subject+",webhook:"+webhookID),
		zap.String("subject", subject),
		zap.String("webhook_id", webhookID),
		zap.String("action", action),
	)
}

func (s *SecurityLogger) TestTokenMinted(subject, webhookID string) {
	s.l.Info(
		"test token minted",
		zap.String("event", eventTestTokenMinted),
		zap.String("subject", subject),
		zap.String("webhook_id", webhookID),
	)
}

func (s *SecurityLogger) TestTokenRejected(webhookPath string) {
	s.l.Warn(
		"test token rejected",
		zap.String("event", eventTestTokenRejected),
		zap.String("webhook_path", webhookPath),
	)
}

func newSecurityLogger(l *zap.Logger) *SecurityLogger {
	return &SecurityLogger{l: l.Named(securityLoggerName)}
}
