// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package mail

import (
	"context"
)

// Message is a plain text email to a single recipient
type Message struct {
	To      string
	Subject string
	Body    string
}

type MailTransportInterface interface {
	Send(context.Context, Message) error
}
