package exchange

import (
	"math"
	"strconv"
	"strings"
	"time"

	"smc_bot/internal/models"
)

// ParseRow сырая строка свечи: [openTimeMs, open, high, low, close, volume, ...хвост биржи].
// Хвост отбрасывается. Поле, которое не распарсилось или отсутствует, становится NaN
// (время становится нулевым), такую свечу потом отвергнут детекторы.
func ParseRow(row []string) models.Candle {
	c := models.Candle{
		Open:   field(row, 1),
		High:   field(row, 2),
		Low:    field(row, 3),
		Close:  field(row, 4),
		Volume: field(row, 5),
	}
	if len(row) > 0 {
		if ms, err := strconv.ParseInt(strings.TrimSpace(row[0]), 10, 64); err == nil && ms > 0 {
			c.Time = time.UnixMilli(ms).UTC()
		}
	}
	return c
}

func field(row []string, i int) float64 {
	if i >= len(row) {
		return math.NaN()
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(row[i]), 64)
	if err != nil {
		return math.NaN()
	}
	return v
}

// sinceFilter отбрасывает свечи, открытые раньше since.
func sinceFilter(cs []models.Candle, since time.Time) []models.Candle {
	if since.IsZero() {
		return cs
	}
	out := cs[:0]
	for _, c := range cs {
		if c.Time.IsZero() || !c.Time.Before(since) {
			out = append(out, c)
		}
	}
	return out
}
