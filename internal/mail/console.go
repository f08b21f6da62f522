// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package mail

import (
	"context"

	"github.com/hubsign/landing-service/internal/logging"
)

var _ MailTransportInterface = (*ConsoleTransport)(nil)

// ConsoleTransport writes messages to the application log instead of delivering them
type ConsoleTransport struct {
	from   string
	logger logging.LoggerInterface
}

func (c *ConsoleTransport) Send(ctx context.Context, msg Message) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	c.logger.Infof("mail from=%s subject=%q\n%s", c.from, msg.Subject, msg.Body)

	return nil
}

func NewConsoleTransport(from string, logger logging.LoggerInterface) *ConsoleTransport {
	c := new(ConsoleTransport)

	c.from = from
	c.logger = logger

	return c
}
