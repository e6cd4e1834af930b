package mail

import (
	"context"

	"github.com/kelseyhightower/envconfig"
	gomail "github.com/wneessen/go-mail"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

//go:generate mockgen -package mockmail -destination ./mock/mockmail.go . MailProvider
type MailProvider interface {
	Send(ctx context.Context, subject string, body string) error
}

var _ MailProvider = (*Mailer)(nil)

// Mailer delivers admin notification mail over SMTP. The underlying client
// is shared across requests and dials per send.
type Mailer struct {
	client *gomail.Client
	config MailerConfig
}

type MailerConfig struct {
	Host     string `envconfig:"SMTP_HOST"`
	Port     int    `envconfig:"SMTP_PORT" default:"587"`
	Secure   bool   `envconfig:"SMTP_SECURE" default:"false"`
	Username string `envconfig:"SMTP_USER"`
	Password string `envconfig:"SMTP_PASS"`

	AdminEmail string `envconfig:"ADMIN_EMAIL"`
	FromName   string `envconfig:"SMTP_FROM_NAME" default:"중고차 빠른 판매"`

	// Verify toggles the boot-time SMTP dial check. Off in CI.
	Verify bool `envconfig:"SMTP_VERIFY" default:"true"`
}

type MailerParams struct {
	fx.In

	Config MailerConfig
	Logger *zap.Logger
}

func NewMailer(lc fx.Lifecycle, params MailerParams) (*Mailer, error) {
	opts := []gomail.Option{
		gomail.WithPort(params.Config.Port),
		gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
		gomail.WithUsername(params.Config.Username),
		gomail.WithPassword(params.Config.Password),
	}
	// SMTP_SECURE=true means implicit TLS (465), otherwise STARTTLS when
	// the server offers it (587).
	if params.Config.Secure {
		opts = append(opts, gomail.WithSSL())
	} else {
		opts = append(opts, gomail.WithTLSPolicy(gomail.TLSOpportunistic))
	}

	client, err := gomail.NewClient(params.Config.Host, opts...)
	if err != nil {
		return nil, err
	}

	mailer := &Mailer{
		client: client,
		config: params.Config,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if !params.Config.Verify {
				return nil
			}
			// Boot-time dial check. A failure is logged, not fatal: the
			// service still serves requests and surfaces mail errors per
			// request.
			if err := client.DialWithContext(ctx); err != nil {
				params.Logger.Error("smtp verify failed", zap.Error(err))
				return nil
			}
			_ = client.Close()
			params.Logger.Info("smtp ok", zap.String("host", params.Config.Host))
			return nil
		},
	})

	return mailer, nil
}

func NewMailerConfig() MailerConfig {
	var cfg MailerConfig
	envconfig.MustProcess("", &cfg)

	return cfg
}

// Send mails the configured administrator address.
func (m *Mailer) Send(ctx context.Context, subject, body string) error {
	msg, err := m.compose(subject, body)
	if err != nil {
		return err
	}
	return m.client.DialAndSendWithContext(ctx, msg)
}

func (m *Mailer) compose(subject, body string) (*gomail.Msg, error) {
	msg := gomail.NewMsg()
	if err := msg.FromFormat(m.config.FromName, m.config.Username); err != nil {
		return nil, err
	}
	if err := msg.To(m.config.AdminEmail); err != nil {
		return nil, err
	}
	msg.Subject(subject)
	msg.SetBodyString(gomail.TypeTextPlain, body)

	return msg, nil
}
