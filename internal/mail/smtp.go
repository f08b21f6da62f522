// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package mail

import (
	"context"
	"fmt"
	"strings"
	"time"

	gomail "github.com/wneessen/go-mail"

	"github.com/hubsign/landing-service/internal/logging"
	"github.com/hubsign/landing-service/internal/tracing"
)

var _ MailTransportInterface = (*SMTPTransport)(nil)

var headerLineBreaks = strings.NewReplacer("\r\n", " ", "\r", " ", "\n", " ")

type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

// SMTPTransport delivers one message per connection, upgrading with STARTTLS when offered
type SMTPTransport struct {
	cfg     SMTPConfig
	options []gomail.Option

	tracer tracing.TracingInterface
	logger logging.LoggerInterface
}

func (s *SMTPTransport) Send(ctx context.Context, msg Message) error {
	ctx, span := s.tracer.Start(ctx, "mail.SMTPTransport.Send")
	defer span.End()

	m, err := newMsg(s.cfg.From, msg, time.Now())
	if err != nil {
		return err
	}

	client, err := gomail.NewClient(s.cfg.Host, s.options...)
	if err != nil {
		return fmt.Errorf("failed to configure smtp client: %w", err)
	}

	if err := client.DialAndSendWithContext(ctx, m); err != nil {
		return fmt.Errorf("failed to deliver message via %s: %w", s.cfg.Host, err)
	}

	return nil
}

// newMsg builds a plain text message, header values never span more than one line
func newMsg(from string, msg Message, now time.Time) (*gomail.Msg, error) {
	m := gomail.NewMsg()

	if err := m.From(from); err != nil {
		return nil, fmt.Errorf("invalid sender address: %w", err)
	}

	if err := m.To(msg.To); err != nil {
		return nil, fmt.Errorf("invalid recipient address: %w", err)
	}

	m.Subject(headerLineBreaks.Replace(msg.Subject))
	m.SetDateWithValue(now)
	m.SetBodyString(gomail.TypeTextPlain, msg.Body)

	return m, nil
}

func NewSMTPTransport(cfg SMTPConfig, tracer tracing.TracingInterface, logger logging.LoggerInterface) *SMTPTransport {
	s := new(SMTPTransport)

	s.cfg = cfg
	s.options = []gomail.Option{
		gomail.WithTLSPortPolicy(gomail.TLSOpportunistic),
		gomail.WithPort(cfg.Port),
	}

	if cfg.Username != "" {
		s.options = append(
			s.options,
			gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
			gomail.WithUsername(cfg.Username),
			gomail.WithPassword(cfg.Password),
		)
	}

	s.tracer = tracer
	s.logger = logger

	return s
}
