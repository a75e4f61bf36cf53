package strategy

import (
	"time"

	"smc_bot/internal/models"
)

// series упорядоченная по времени последовательность свечей с доступом по индексу через at.
type series []models.Candle

func (s series) at(i int) (models.Candle, bool) {
	if i < 0 || i >= len(s) {
		return models.Candle{}, false
	}
	return s[i], true
}

// window возвращает свечи i-n+1..i, ok=false если хотя бы одной нет.
func (s series) window(i, n int) ([]models.Candle, bool) {
	out := make([]models.Candle, 0, n)
	for j := i - n + 1; j <= i; j++ {
		c, ok := s.at(j)
		if !ok {
			return nil, false
		}
		out = append(out, c)
	}
	return out, true
}

func (s series) last() (models.Candle, bool) { return s.at(len(s) - 1) }

// until оставляет свечи с временем не позже ref.
func (s series) until(ref time.Time) series {
	out := make(series, 0, len(s))
	for _, c := range s {
		if !c.Time.After(ref) {
			out = append(out, c)
		}
	}
	return out
}

// validate проверяет OHLC (и объём при withVolume). Время детекторам не нужно.
func (s series) validate(op string, withVolume bool) error {
	for i, c := range s {
		var missing []string
		for _, f := range c.Missing(withVolume) {
			if f != "time" {
				missing = append(missing, f)
			}
		}
		if len(missing) > 0 {
			return &ValidationError{Op: op, Index: i, Fields: missing}
		}
	}
	return nil
}

// validateTimes у каждой свечи должно быть время открытия.
func (s series) validateTimes(op string) error {
	for i, c := range s {
		if c.Time.IsZero() {
			return &ValidationError{Op: op, Index: i, Fields: []string{"time"}}
		}
	}
	return nil
}

// scan прогоняет cond по всем индексам, для которых есть n свечей назад (включая текущую).
func (s series) scan(n int, cond func(w []models.Candle) bool) []int {
	var hits []int
	for i := n - 1; i < len(s); i++ {
		w, ok := s.window(i, n)
		if !ok {
			continue
		}
		if cond(w) {
			hits = append(hits, i)
		}
	}
	return hits
}
