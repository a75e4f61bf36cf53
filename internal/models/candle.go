package models

import (
	"math"
	"time"
)

// Candle свеча OHLCV после нормализации.
// Отсутствующее числовое поле хранится как NaN, отсутствующее время как time.Time{}.
type Candle struct {
	Time   time.Time
	Open   float64
	High   float64
	Low    float64
	Close  float64
	Volume float64
}

// Missing возвращает имена отсутствующих полей. Объём проверяется только при withVolume.
func (c Candle) Missing(withVolume bool) []string {
	var out []string
	if c.Time.IsZero() {
		out = append(out, "time")
	}
	if absent(c.Open) {
		out = append(out, "open")
	}
	if absent(c.High) {
		out = append(out, "high")
	}
	if absent(c.Low) {
		out = append(out, "low")
	}
	if absent(c.Close) {
		out = append(out, "close")
	}
	if withVolume && absent(c.Volume) {
		out = append(out, "volume")
	}
	return out
}

func absent(v float64) bool { return math.IsNaN(v) || math.IsInf(v, 0) }

// Zone ценовой диапазон свечи order block.
type Zone struct {
	High float64
	Low  float64
	Time time.Time
}

// Complete true, если заданы обе границы.
func (z Zone) Complete() bool { return !absent(z.High) && !absent(z.Low) }
