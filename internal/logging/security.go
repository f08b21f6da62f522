// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package logging

import (
	"time"

	"go.uber.org/zap"
)

const (
	eventSystemStartup  = "sys_startup"
	eventSystemShutdown = "sys_shutdown"
	eventAuthnAttempt   = "authn_login_attempt"
	eventAuthnSuccess   = "authn_login_success"
	eventAuthnFailure   = "authn_login_fail"
	eventTokenIssued    = "authn_token_created"
)

// SecurityLogger writes OWASP-style security events on a dedicated logger
type SecurityLogger struct {
	l *zap.Logger
}

func (s *SecurityLogger) log(event, description string, fields ...zap.Field) {
	fields = append(
		fields,
		zap.String("type", "security"),
		zap.String("event", event),
		zap.String("description", description),
		zap.Time("datetime", time.Now().UTC()),
	)
	s.l.Warn(description, fields...)
}

func (s *SecurityLogger) SystemStartup() {
	s.log(eventSystemStartup, "system started")
}

func (s *SecurityLogger) SystemShutdown() {
	s.log(eventSystemShutdown, "system shutting down")
}

func (s *SecurityLogger) AuthnAttempt(email, target string) {
	s.log(eventAuthnAttempt, "sign-in link requested", zap.String("user", email), zap.String("target", target))
}

func (s *SecurityLogger) AuthnSuccess(email, target string) {
	s.log(eventAuthnSuccess, "sign-in link verified", zap.String("user", email), zap.String("target", target))
}

func (s *SecurityLogger) AuthnFailure(reason string) {
	s.log(eventAuthnFailure, "sign-in link rejected", zap.String("reason", reason))
}

func (s *SecurityLogger) TokenIssued(email, target string) {
	s.log(eventTokenIssued, "sign-in token created", zap.String("user", email), zap.String("target", target))
}

func NewSecurityLogger(l *zap.Logger) *SecurityLogger {
	return &SecurityLogger{l: l.Named("security")}
}
