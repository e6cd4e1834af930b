package main

import (
	"os"
	"strings"

	"github.com/quickcar/lead-notification-service/internal/client"
	"github.com/quickcar/lead-notification-service/internal/handler"
	"github.com/quickcar/lead-notification-service/internal/mail"
	"github.com/quickcar/lead-notification-service/internal/metrics"
	"github.com/quickcar/lead-notification-service/internal/server"
	"github.com/quickcar/lead-notification-service/internal/service"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"

	_ "github.com/joho/godotenv/autoload"
)

func main() {
	logger, _ := zap.NewProduction()
	defer logger.Sync()

	logEnvCheck(logger)

	fx.New(
		fx.Provide(func() *zap.Logger { return logger }),
		fx.WithLogger(func(log *zap.Logger) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: log}
		}),
		metrics.Module,
		server.Module,
		handler.Module,
		service.Module,
		client.Module,
		mail.Module,
		fx.Invoke(func(*server.HTTPServer) {}),
	).Run()
}

// logEnvCheck prints a masked summary of the notification config so a
// misdeployed environment is visible in the first log lines.
func logEnvCheck(logger *zap.Logger) {
	logger.Info("env check",
		zap.String("sms_sender", maskDigits(os.Getenv("SMS_SENDER"))),
		zap.String("dealer_phone", maskDigits(os.Getenv("DEALER_PHONE"))),
		zap.String("manager_phone", maskDigits(os.Getenv("MANAGER_PHONE"))),
		zap.Bool("solapi_api_key_set", os.Getenv("SOLAPI_API_KEY") != ""),
		zap.Bool("solapi_api_secret_set", os.Getenv("SOLAPI_API_SECRET") != ""),
	)
}

// maskDigits hides every digit except the last three.
func maskDigits(s string) string {
	total := 0
	for _, r := range s {
		if r >= '0' && r <= '9' {
			total++
		}
	}

	seen := 0
	return strings.Map(func(r rune) rune {
		if r < '0' || r > '9' {
			return r
		}
		seen++
		if total-seen >= 3 {
			return '*'
		}
		return r
	}, s)
}
