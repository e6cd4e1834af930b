package mail

import "go.uber.org/fx"

var Module = fx.Module("mail",
	fx.Provide(
		fx.Annotate(
			NewMailer,
			fx.As(new(MailProvider)),
		),
		NewMailerConfig,
	),
)
