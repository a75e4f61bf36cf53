package exchange

import (
	"context"
	"errors"
	"fmt"
	"time"

	"smc_bot/internal/models"
)

// CandleSource отдаёт закрытые и текущую свечи инструмента по таймфрейму, начиная с since.
// Свечи упорядочены по времени, ретраев внутри нет.
type CandleSource interface {
	Candles(ctx context.Context, symbol, interval string, since time.Time) ([]models.Candle, error)
	Name() string
}

var (
	// ErrNoCandles биржа ответила пустым списком.
	ErrNoCandles = errors.New("no candles")
	// ErrMalformedResponse ответ не разобрался.
	ErrMalformedResponse = errors.New("malformed response")
)

// TransportError сетевая ошибка или не-2xx ответ биржи.
type TransportError struct {
	Source string
	Op     string
	Err    error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Source, e.Op, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }
