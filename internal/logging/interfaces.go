// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package logging

type LoggerInterface interface {
	Errorf(string, ...interface{})
	Infof(string, ...interface{})
	Warnf(string, ...interface{})
	Debugf(string, ...interface{})
	Fatalf(string, ...interface{})
	Error(...interface{})
	Info(...interface{})
	Warn(...interface{})
	Debug(...interface{})
	Fatal(...interface{})
	Errorw(string, ...interface{})
	Infow(string, ...interface{})
	Warnw(string, ...interface{})
	Debugw(string, ...interface{})
	Sync() error

	Security() SecurityLoggerInterface
}

// SecurityLoggerInterface emits audit events on a dedicated logger.
type SecurityLoggerInterface interface {
	SystemStartup()
	SystemShutdown()
	AuthzFailure(subject, resource string)
	AuthzFailureWebhookAccess(subject, webhookID, action string)
	TestTokenMinted(subject, webhookID string)
	TestTokenRejected(webhookPath string)
}
