package notify

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"smc_bot/internal/models"
)

const timeLayout = "2006-01-02 15:04:05"

// FormatSignal текст сообщения о сигнале без разметки.
func FormatSignal(symbol string, sig models.Signal) string {
	return formatSignal(symbol, sig, func(s string) string { return s })
}

// formatSignal собирает строки сообщения, esc применяется к каждому значению.
func formatSignal(symbol string, sig models.Signal, esc func(string) string) string {
	sweep := "нет"
	if sig.LiquiditySweep {
		sweep = "да"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Новый сигнал: %s\n", esc(symbol))
	fmt.Fprintf(&b, "Тип: %s\n", esc(string(sig.Type)))
	fmt.Fprintf(&b, "Цена входа: %s\n", esc(price(sig.EntryPrice)))
	fmt.Fprintf(&b, "SL: %s\n", esc(price(sig.SL)))
	fmt.Fprintf(&b, "TP: %s\n", esc(price(sig.TP)))
	fmt.Fprintf(&b, "Тренд на HTF: %s\n", esc(string(sig.Trend)))
	fmt.Fprintf(&b, "OB зона: %s\n", esc(price(sig.OBZoneLow)+" - "+price(sig.OBZoneHigh)))
	fmt.Fprintf(&b, "Время OB зоны: %s\n", esc(stamp(sig.OBZoneTime)))
	fmt.Fprintf(&b, "CHOCH: %s\n", esc(stamp(sig.CHOCHTime)))
	fmt.Fprintf(&b, "Liquidity Sweep: %s", esc(sweep))
	return b.String()
}

func price(v float64) string { return strconv.FormatFloat(v, 'f', -1, 64) }

func stamp(t time.Time) string { return t.UTC().Format(timeLayout) }
