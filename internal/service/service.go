package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/kelseyhightower/envconfig"
	"github.com/quickcar/lead-notification-service/internal/client"
	"github.com/quickcar/lead-notification-service/internal/mail"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

var Module = fx.Module("service",
	fx.Provide(
		fx.Annotate(
			NewNotifier,
			fx.As(new(NotifierProvider)),
		),
		NewNotifierConfig,
	),
)

//go:generate mockgen -package mockservice -destination ./mock/mockservice.go . NotifierProvider
type NotifierProvider interface {
	Notify(ctx context.Context, lead Lead) (json.RawMessage, error)
}

var _ NotifierProvider = (*Notifier)(nil)

// Notifier runs the two-channel dispatch for one lead: admin mail first,
// then one SMS batch to the configured staff numbers. The steps are
// deliberately sequential; a mail failure suppresses the SMS attempt.
type Notifier struct {
	mailer mail.MailProvider
	sms    client.SMSProvider
	config NotifierConfig
	logger *zap.Logger
}

type NotifierConfig struct {
	Sender       string `envconfig:"SMS_SENDER"`
	ManagerPhone string `envconfig:"MANAGER_PHONE"`
	DealerPhone  string `envconfig:"DEALER_PHONE"`
}

type NotifierParams struct {
	fx.In

	Mailer mail.MailProvider
	SMS    client.SMSProvider
	Config NotifierConfig
	Logger *zap.Logger
}

func NewNotifier(params NotifierParams) *Notifier {
	return &Notifier{
		mailer: params.Mailer,
		sms:    params.SMS,
		config: params.Config,
		logger: params.Logger,
	}
}

func NewNotifierConfig() NotifierConfig {
	var cfg NotifierConfig
	envconfig.MustProcess("", &cfg)

	return cfg
}

// Notify validates the lead, mails the administrator and sends the SMS
// batch. On success it returns the raw provider response body.
func (s *Notifier) Notify(ctx context.Context, lead Lead) (json.RawMessage, error) {
	if err := lead.Validate(); err != nil {
		return nil, err
	}
	text, err := lead.SMSText()
	if err != nil {
		return nil, err
	}

	if err := s.mailer.Send(ctx, lead.MailSubject(), lead.MailBody()); err != nil {
		return nil, fmt.Errorf("admin mail: %w", err)
	}

	from := digitsOnly(s.config.Sender)
	if from == "" {
		return nil, errors.New("missing SMS_SENDER")
	}

	// The admin mail has already gone out by the time recipients are
	// checked.
	var recipients []string
	for _, number := range []string{digitsOnly(s.config.ManagerPhone), digitsOnly(s.config.DealerPhone)} {
		if number != "" {
			recipients = append(recipients, number)
		}
	}
	if len(recipients) == 0 {
		return nil, ErrNoRecipients
	}

	messages := make([]client.Message, 0, len(recipients))
	for _, to := range recipients {
		messages = append(messages, client.Message{
			To:   to,
			From: from,
			Text: text,
			Type: client.MessageTypeSMS,
		})
	}

	resp, err := s.sms.SendMany(ctx, messages)
	if err != nil {
		return nil, err
	}

	s.logger.Info("lead dispatched",
		zap.String("car_number", lead.CarNumber),
		zap.Int("sms_recipients", len(messages)),
	)

	return resp, nil
}
