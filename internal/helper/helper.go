package helper

import (
	"strings"
	"time"
)

// NormTF приводит таймфрейм к виду "5m", "1h", "1d".
func NormTF(raw string) string {
	s := strings.TrimSpace(strings.ToLower(raw))
	s = strings.TrimPrefix(s, "candle")
	switch s {
	case "60m", "1h", "1hour":
		return "1h"
	case "240m", "4h":
		return "4h"
	case "1min":
		return "1m"
	case "5min":
		return "5m"
	case "15min":
		return "15m"
	case "24h", "1day":
		return "1d"
	default:
		return s
	}
}

// TimeframeDuration длительность свечи, 0 для неизвестного таймфрейма.
func TimeframeDuration(tf string) time.Duration {
	switch NormTF(tf) {
	case "1m":
		return time.Minute
	case "3m":
		return 3 * time.Minute
	case "5m":
		return 5 * time.Minute
	case "15m":
		return 15 * time.Minute
	case "30m":
		return 30 * time.Minute
	case "1h":
		return time.Hour
	case "2h":
		return 2 * time.Hour
	case "4h":
		return 4 * time.Hour
	case "6h":
		return 6 * time.Hour
	case "12h":
		return 12 * time.Hour
	case "1d":
		return 24 * time.Hour
	default:
		return 0
	}
}

// CandlesIn сколько свечей таймфрейма tf помещается в lookback, с запасом на текущую.
func CandlesIn(lookback time.Duration, tf string) int {
	d := TimeframeDuration(tf)
	if d <= 0 || lookback <= 0 {
		return 0
	}
	return int(lookback/d) + 1
}
