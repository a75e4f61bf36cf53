package main

import (
	"context"

	"go.uber.org/fx"

	"smc_bot/internal/config"
	"smc_bot/internal/exchange"
	"smc_bot/internal/journal"
	"smc_bot/internal/metrics"
	"smc_bot/internal/modules/health"
	"smc_bot/internal/modules/postgres"
	"smc_bot/internal/notify"
	"smc_bot/internal/runner"
	"smc_bot/pkg/logger"
	"smc_bot/pkg/tracing"
)

const serviceName = "smc_bot"

func main() {
	logger.SetServiceName(serviceName)
	tracing.SetServiceName(serviceName)

	app := fx.New(
		fx.NopLogger,
		config.Module(),
		// логгер поднимается первым, провайдеры ниже уже пишут в него
		fx.Invoke(initLogger),
		fx.Invoke(initTracing),
		metrics.Module(),
		exchange.Module(),
		notify.Module(),
		postgres.Module(),
		journal.Module(),
		health.Module(),
		runner.Module(),
	)
	app.Run()
}

func initLogger(lc fx.Lifecycle, cfg *config.Config) error {
	if err := logger.Init(cfg.LogLevel); err != nil {
		return err
	}
	lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			logger.Sync()
			return nil
		},
	})
	return nil
}

func initTracing(lc fx.Lifecycle, cfg *config.Config) error {
	_, closer, err := tracing.InitTracer(cfg.Tracing)
	if err != nil {
		return err
	}
	lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			closer()
			return nil
		},
	})
	return nil
}
