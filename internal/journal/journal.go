package journal

import (
	"context"
	"time"

	"github.com/bytedance/sonic"
	"github.com/pkg/errors"

	"smc_bot/internal/models"
	"smc_bot/pkg/db"
)

// Journal журнал отправленных сигналов. Только запись, обратно не читается.
type Journal interface {
	Record(ctx context.Context, symbol string, sig models.Signal) error
}

const schemaSQL = `CREATE TABLE IF NOT EXISTS smc_signals (
	id          BIGSERIAL PRIMARY KEY,
	symbol      TEXT        NOT NULL,
	side        TEXT        NOT NULL,
	entry_price DOUBLE PRECISION NOT NULL,
	choch_time  TIMESTAMPTZ NOT NULL,
	payload     JSONB       NOT NULL,
	created_at  TIMESTAMPTZ NOT NULL DEFAULT now()
)`

const insertSQL = `INSERT INTO smc_signals (symbol, side, entry_price, choch_time, payload, created_at)
VALUES ($1, $2, $3, $4, $5, $6)`

type record struct {
	Symbol         string    `json:"symbol"`
	Type           string    `json:"type"`
	EntryPrice     float64   `json:"entry_price"`
	Timestamp      time.Time `json:"timestamp"`
	Trend          string    `json:"trend"`
	OBZoneHigh     float64   `json:"ob_zone_high"`
	OBZoneLow      float64   `json:"ob_zone_low"`
	OBZoneTime     time.Time `json:"ob_zone_time"`
	LiquiditySweep bool      `json:"liquidity_sweep"`
	CHOCHTime      time.Time `json:"choch_time"`
	SL             float64   `json:"sl"`
	TP             float64   `json:"tp"`
}

func toRecord(symbol string, s models.Signal) record {
	return record{
		Symbol:         symbol,
		Type:           string(s.Type),
		EntryPrice:     s.EntryPrice,
		Timestamp:      s.Timestamp,
		Trend:          string(s.Trend),
		OBZoneHigh:     s.OBZoneHigh,
		OBZoneLow:      s.OBZoneLow,
		OBZoneTime:     s.OBZoneTime,
		LiquiditySweep: s.LiquiditySweep,
		CHOCHTime:      s.CHOCHTime,
		SL:             s.SL,
		TP:             s.TP,
	}
}

// Postgres пишет сигналы в таблицу smc_signals.
type Postgres struct {
	tx  db.TxRunner
	now func() time.Time
}

func NewPostgres(tx db.TxRunner) *Postgres {
	return &Postgres{tx: tx, now: time.Now}
}

// Migrate создаёт таблицу, если её нет.
func (p *Postgres) Migrate(ctx context.Context) error {
	err := p.tx.WithTx(ctx, func(ctxTx context.Context, tx db.Executor) error {
		_, err := tx.Exec(ctxTx, schemaSQL)
		return err
	})
	return errors.Wrap(err, "journal: migrate")
}

func (p *Postgres) Record(ctx context.Context, symbol string, sig models.Signal) (err error) {
	defer func() {
		if err != nil {
			err = errors.Wrapf(err, "journal: record %s", symbol)
		}
	}()

	payload, err := sonic.Marshal(toRecord(symbol, sig))
	if err != nil {
		return err
	}

	return p.tx.WithTx(ctx, func(ctxTx context.Context, tx db.Executor) error {
		_, err := tx.Exec(ctxTx, insertSQL,
			symbol, string(sig.Type), sig.EntryPrice, sig.CHOCHTime, payload, p.now().UTC())
		return err
	})
}

// Nop журнал выключен.
type Nop struct{}

func (Nop) Record(context.Context, string, models.Signal) error { return nil }
