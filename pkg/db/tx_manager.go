package db

import (
	"context"

	"github.com/jackc/pgx/v5/pgconn"
)

// Executor то, что нужно писателям журнала от транзакции. pgx.Tx ему соответствует.
type Executor interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
}

// TxRunner выполняет fn в транзакции: коммит при nil, откат при ошибке или панике.
type TxRunner interface {
	WithTx(ctx context.Context, fn func(ctx context.Context, tx Executor) error) error
}
