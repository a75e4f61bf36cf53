package notify

import (
	"go.uber.org/fx"

	"smc_bot/internal/config"
	"smc_bot/pkg/logger"
)

// New без TG_BOT_TOKEN уведомления уходят в лог.
func New(cfg *config.Config) (Notifier, error) {
	if cfg.Telegram.Token == "" {
		logger.Warn("TG_BOT_TOKEN is empty, notifications go to log")
		return NewStdout(cfg.Telegram.ChatID), nil
	}
	return NewTelegram(cfg.Telegram.Token, cfg.Telegram.ChatID)
}

func Module() fx.Option {
	return fx.Module("notify",
		fx.Provide(New),
	)
}
