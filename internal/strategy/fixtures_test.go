package strategy

import (
	"time"

	"smc_bot/internal/models"
)

var t0 = time.Date(2024, 11, 4, 0, 0, 0, 0, time.UTC)

func bar(at time.Time, o, h, l, c, v float64) models.Candle {
	return models.Candle{Time: at, Open: o, High: h, Low: l, Close: c, Volume: v}
}

// bullishHTF десять часовых свечей, OB на индексе 2 (high=100, low=95), тренд вверх.
func bullishHTF() []models.Candle {
	rows := [][4]float64{
		{90, 93, 89, 92},
		{102, 106, 101, 105},
		{99, 100, 95, 96},
		{96, 103, 96, 102},
		{102, 106, 101, 105},
		{105, 108, 104, 107},
		{107, 110, 106, 109},
		{109, 112, 108, 111},
		{111, 113, 110, 112},
		{112, 115, 111, 114},
	}
	out := make([]models.Candle, 0, len(rows))
	for i, r := range rows {
		out = append(out, bar(t0.Add(time.Duration(i)*time.Hour), r[0], r[1], r[2], r[3], 1000))
	}
	return out
}

func htfRef(htf []models.Candle) time.Time { return htf[len(htf)-1].Time }

// longLTF CHOCH и sweep на последней свече, close=108.
func longLTF(ref time.Time) []models.Candle {
	at := func(k int) time.Time { return ref.Add(time.Duration(k-3) * 5 * time.Minute) }
	return []models.Candle{
		bar(at(0), 110, 111, 109, 110, 100),
		bar(at(1), 110, 110, 106, 107, 100),
		bar(at(2), 107, 107.5, 104, 105, 90),
		bar(at(3), 105, 108.5, 105, 108, 150),
	}
}

// insideZoneLTF последний CHOCH закрывается на 97, внутри зоны 95..100.
func insideZoneLTF(ref time.Time) []models.Candle {
	at := func(k int) time.Time { return ref.Add(time.Duration(k-5) * 5 * time.Minute) }
	return []models.Candle{
		bar(at(0), 99, 99.5, 98.5, 99, 100),
		bar(at(1), 99, 99.2, 97.8, 98, 80),
		bar(at(2), 98, 100.5, 98, 100, 120),
		bar(at(3), 100, 100, 97.5, 98, 100),
		bar(at(4), 98, 98, 95.5, 96, 90),
		bar(at(5), 96, 97.5, 95.8, 97, 85),
	}
}

// bearishHTF каждая свеча пробивает low предыдущей, последний OB high=111, low=107.
func bearishHTF() []models.Candle {
	rows := [][4]float64{
		{120, 121, 118, 119},
		{119, 119.5, 116, 117},
		{117, 118, 114, 115},
		{112, 113, 109, 110},
		{110, 111, 107, 108},
	}
	out := make([]models.Candle, 0, len(rows))
	for i, r := range rows {
		out = append(out, bar(t0.Add(time.Duration(i)*time.Hour), r[0], r[1], r[2], r[3], 1000))
	}
	return out
}

func shortLTF(ref time.Time) []models.Candle {
	at := func(k int) time.Time { return ref.Add(time.Duration(k-2) * 5 * time.Minute) }
	return []models.Candle{
		bar(at(0), 107, 107, 105.5, 106, 100),
		bar(at(1), 104.4, 104.5, 103.5, 104, 90),
		bar(at(2), 104, 105.5, 103.8, 105, 150),
	}
}
