package journal

import (
	"context"

	"go.uber.org/fx"

	"smc_bot/pkg/db"
	"smc_bot/pkg/logger"
)

// New без пула возвращает Nop, иначе Postgres с миграцией на старте.
func New(lc fx.Lifecycle, tm *db.PgTxManager) Journal {
	if tm == nil {
		logger.Info("journal: disabled")
		return Nop{}
	}

	p := NewPostgres(tm)
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return p.Migrate(ctx)
		},
	})
	return p
}

func Module() fx.Option {
	return fx.Module("journal",
		fx.Provide(New),
	)
}
