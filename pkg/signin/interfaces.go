// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package signin

import (
	"context"
	"time"

	"github.com/hubsign/landing-service/internal/mail"
	"github.com/hubsign/landing-service/internal/types"
)

type ServiceInterface interface {
	IssueSignIn(ctx context.Context, email string, target Target) (*IssueResult, error)
	VerifyToken(ctx context.Context, token string) (*VerifyResult, error)
	SignUp(ctx context.Context, req SignUp) (*IssueResult, error)
}

type TokenStoreInterface interface {
	Create(ctx context.Context, token *types.MagicLinkToken) error
	Consume(ctx context.Context, tokenHash string, now time.Time) (*types.MagicLinkToken, error)
}

type MailerInterface interface {
	Send(ctx context.Context, msg mail.Message) error
}
