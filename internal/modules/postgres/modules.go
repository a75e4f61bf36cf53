package postgres

import (
	"context"
	"fmt"

	"go.uber.org/fx"

	"smc_bot/internal/config"
	"smc_bot/pkg/db"
	"smc_bot/pkg/logger"
)

// NewTxManager пул к базе журнала. Пустой db_dsn даёт nil, база не нужна.
func NewTxManager(lc fx.Lifecycle, cfg *config.Config) (*db.PgTxManager, error) {
	if cfg.DB == "" {
		logger.Info("postgres: db_dsn is empty, skipping pool")
		return nil, nil
	}

	poolMaster, err := db.NewPool(context.Background(), db.PoolConfig{
		DSN: cfg.DB,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create poolMaster: %w", err)
	}
	tm := db.NewPgTxManager(poolMaster)

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := tm.Ping(ctx); err != nil {
				return fmt.Errorf("postgres ping: %w", err)
			}
			return nil
		},
		OnStop: func(context.Context) error {
			tm.Close()
			return nil
		},
	})
	return tm, nil
}

func Module() fx.Option {
	return fx.Module("postgres",
		fx.Provide(NewTxManager),
	)
}
