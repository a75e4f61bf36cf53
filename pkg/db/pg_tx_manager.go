package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"smc_bot/pkg/logger"
)

type PoolConfig struct {
	DSN string
}

func NewPool(ctx context.Context, conf PoolConfig) (*pgxpool.Pool, error) {
	pc, err := pgxpool.ParseConfig(conf.DSN)
	if err != nil {
		return nil, fmt.Errorf("parse dsn: %w", err)
	}
	return pgxpool.NewWithConfig(ctx, pc)
}

// PgTxManager пул и транзакции ReadCommitted поверх него.
type PgTxManager struct {
	pool *pgxpool.Pool
}

func NewPgTxManager(pool *pgxpool.Pool) *PgTxManager {
	return &PgTxManager{pool: pool}
}

func (m *PgTxManager) Close()                         { m.pool.Close() }
func (m *PgTxManager) Ping(ctx context.Context) error { return m.pool.Ping(ctx) }

func (m *PgTxManager) WithTx(ctx context.Context, fn func(ctx context.Context, tx Executor) error) error {
	err := pgx.BeginTxFunc(ctx, m.pool, pgx.TxOptions{IsoLevel: pgx.ReadCommitted}, func(tx pgx.Tx) error {
		return runLogged(ctx, tx, fn)
	})
	if err != nil {
		return fmt.Errorf("tx: %w", err)
	}
	return nil
}

// runLogged пишет панику fn в лог и пробрасывает её дальше, откат делает BeginTxFunc.
func runLogged(ctx context.Context, tx Executor, fn func(ctx context.Context, tx Executor) error) error {
	defer func() {
		if p := recover(); p != nil {
			logger.Errorw("panic in transaction", zap.Any("panic", p))
			panic(p)
		}
	}()
	return fn(ctx, tx)
}
