package client

import "go.uber.org/fx"

var Module = fx.Module("solapi_client",
	fx.Provide(
		fx.Annotate(
			NewSolapiClient,
			fx.As(new(SMSProvider)),
		),
		NewSolapiConfig,
		NewSigner,
		NewCircuitBreakerRegistry,
		NewCircuitBreakerRegistryConfig,
	),
)
