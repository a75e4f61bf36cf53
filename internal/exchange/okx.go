package exchange

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/bytedance/sonic"
	"github.com/pkg/errors"

	"smc_bot/internal/helper"
	"smc_bot/internal/models"
)

const (
	okxDefaultBaseURL = "https://www.okx.com"
	okxMaxLimit       = 300
)

// OKX публичные свечи через REST /api/v5/market/candles.
type OKX struct {
	baseURL string
	http    *http.Client
}

func NewOKX(baseURL string, httpClient *http.Client) *OKX {
	if baseURL == "" {
		baseURL = okxDefaultBaseURL
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}
	return &OKX{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    httpClient,
	}
}

func (o *OKX) Name() string { return "okx" }

// Candles CandleRow OKX: [ts, o, h, l, c, vol, volCcy, volCcyQuote, confirm], новые первыми.
func (o *OKX) Candles(ctx context.Context, symbol, interval string, since time.Time) ([]models.Candle, error) {
	bar, err := okxBar(interval)
	if err != nil {
		return nil, err
	}
	instID := okxInstID(symbol)

	limit := helper.CandlesIn(time.Since(since), interval)
	if limit <= 0 || limit > okxMaxLimit {
		limit = okxMaxLimit
	}

	u := fmt.Sprintf("%s/api/v5/market/candles?instId=%s&bar=%s&limit=%d",
		o.baseURL, url.QueryEscape(instID), url.QueryEscape(bar), limit,
	)
	op := "candles " + instID + " " + bar

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, errors.Wrap(err, "okx new request")
	}
	resp, err := o.http.Do(req)
	if err != nil {
		return nil, &TransportError{Source: o.Name(), Op: op, Err: err}
	}
	defer resp.Body.Close()

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{Source: o.Name(), Op: op, Err: err}
	}
	if resp.StatusCode/100 != 2 {
		return nil, &TransportError{Source: o.Name(), Op: op, Err: fmt.Errorf("http %d: %s", resp.StatusCode, string(b))}
	}

	var r struct {
		Code string     `json:"code"`
		Msg  string     `json:"msg"`
		Data [][]string `json:"data"`
	}
	if err := sonic.Unmarshal(b, &r); err != nil {
		return nil, errors.Wrapf(ErrMalformedResponse, "okx %s: %v", op, err)
	}
	if r.Code != "0" {
		return nil, &TransportError{Source: o.Name(), Op: op, Err: fmt.Errorf("okx error: code=%s msg=%s", r.Code, r.Msg)}
	}
	if len(r.Data) == 0 {
		return nil, errors.Wrapf(ErrNoCandles, "okx %s", op)
	}

	// разворачиваем в порядок по времени
	out := make([]models.Candle, 0, len(r.Data))
	for i := len(r.Data) - 1; i >= 0; i-- {
		out = append(out, ParseRow(r.Data[i]))
	}
	return sinceFilter(out, since), nil
}

// okxInstID BTCUSDT -> BTC-USDT. Уже готовый instId не трогаем.
func okxInstID(symbol string) string {
	s := strings.ToUpper(strings.TrimSpace(symbol))
	if strings.Contains(s, "-") {
		return s
	}
	for _, quote := range []string{"USDT", "USDC", "BTC", "ETH"} {
		if strings.HasSuffix(s, quote) && len(s) > len(quote) {
			return s[:len(s)-len(quote)] + "-" + quote
		}
	}
	return s
}

func okxBar(tf string) (string, error) {
	switch s := helper.NormTF(tf); s {
	case "1m", "3m", "5m", "15m", "30m":
		return s, nil
	case "1h":
		return "1H", nil
	case "2h":
		return "2H", nil
	case "4h":
		return "4H", nil
	case "6h":
		return "6H", nil
	case "12h":
		return "12H", nil
	case "1d":
		return "1D", nil
	case "1w":
		return "1W", nil
	}
	return "", fmt.Errorf("unsupported timeframe for OKX bar: %q", tf)
}
