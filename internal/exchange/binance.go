package exchange

import (
	"context"
	"strconv"
	"time"

	"github.com/adshao/go-binance/v2"
	"github.com/pkg/errors"

	"smc_bot/internal/helper"
	"smc_bot/internal/models"
)

const binanceMaxLimit = 1000

// Binance публичные klines спотового рынка.
type Binance struct {
	client *binance.Client
	now    func() time.Time
}

// NewBinance ключи для klines не нужны. Пустой baseURL оставляет адрес библиотеки.
func NewBinance(baseURL string) *Binance {
	c := binance.NewClient("", "")
	if baseURL != "" {
		c.BaseURL = baseURL
	}
	return &Binance{client: c, now: time.Now}
}

func (b *Binance) Name() string { return "binance" }

// Candles листает klines страницами по 1000 от since до текущего момента,
// так что последняя свеча всегда свежая при любом lookback.
func (b *Binance) Candles(ctx context.Context, symbol, interval string, since time.Time) ([]models.Candle, error) {
	tf := helper.NormTF(interval)
	end := b.now()

	if since.IsZero() {
		// без начала берём последние 1000 свечей до end
		klines, err := b.page(ctx, symbol, tf, 0, end, binanceMaxLimit)
		if err != nil {
			return nil, err
		}
		return b.toCandles(symbol, tf, klines, since)
	}

	var all []*binance.Kline
	start := since.UnixMilli()
	for start <= end.UnixMilli() {
		limit := helper.CandlesIn(end.Sub(time.UnixMilli(start)), tf)
		if limit <= 0 || limit > binanceMaxLimit {
			limit = binanceMaxLimit
		}

		klines, err := b.page(ctx, symbol, tf, start, end, limit)
		if err != nil {
			return nil, err
		}
		all = append(all, klines...)

		if len(klines) < limit {
			break
		}
		last := klines[len(klines)-1]
		if last == nil || last.OpenTime < start {
			break
		}
		start = last.OpenTime + 1
	}
	return b.toCandles(symbol, tf, all, since)
}

func (b *Binance) page(ctx context.Context, symbol, tf string, startMs int64, end time.Time, limit int) ([]*binance.Kline, error) {
	svc := b.client.NewKlinesService().
		Symbol(symbol).
		Interval(tf).
		Limit(limit).
		EndTime(end.UnixMilli())
	if startMs > 0 {
		svc = svc.StartTime(startMs)
	}

	klines, err := svc.Do(ctx)
	if err != nil {
		return nil, &TransportError{
			Source: b.Name(),
			Op:     "klines " + symbol + " " + tf,
			Err:    errors.Wrap(err, "binance klines"),
		}
	}
	return klines, nil
}

func (b *Binance) toCandles(symbol, tf string, klines []*binance.Kline, since time.Time) ([]models.Candle, error) {
	out := make([]models.Candle, 0, len(klines))
	for _, k := range klines {
		if k == nil {
			continue
		}
		out = append(out, ParseRow([]string{
			strconv.FormatInt(k.OpenTime, 10),
			k.Open,
			k.High,
			k.Low,
			k.Close,
			k.Volume,
		}))
	}
	if len(out) == 0 {
		return nil, errors.Wrapf(ErrNoCandles, "binance %s %s", symbol, tf)
	}
	return sinceFilter(out, since), nil
}
