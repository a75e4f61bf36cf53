package exchange

import (
	"fmt"

	"go.uber.org/fx"

	"smc_bot/internal/config"
)

// New выбирает источник свечей по cfg.Exchange.
func New(cfg *config.Config) (CandleSource, error) {
	switch cfg.Exchange {
	case "binance", "":
		return NewBinance(cfg.Binance.BaseURL), nil
	case "okx":
		return NewOKX(cfg.OKX.BaseURL, nil), nil
	default:
		return nil, fmt.Errorf("unknown exchange %q", cfg.Exchange)
	}
}

func Module() fx.Option {
	return fx.Module("exchange",
		fx.Provide(New),
	)
}
