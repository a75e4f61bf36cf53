package strategy

import (
	"math"

	"smc_bot/internal/models"
)

const (
	trendWindow = 10
	// dojiRatio тело свечи меньше 0.1% от close считается доджи.
	dojiRatio = 0.001
)

// Composer собирает OB зону, CHOCH и liquidity sweep в один сигнал.
// Состояния нет, каждый вызов Check зависит только от переданных свечей.
type Composer struct {
	RiskReward float64
	Precision  int32
}

func NewComposer(rr float64, precision int32) *Composer {
	return &Composer{RiskReward: rr, Precision: precision}
}

// CheckEntrySignal проверка с параметрами по умолчанию.
func CheckEntrySignal(htf, ltf []models.Candle) (*models.Signal, error) {
	return NewComposer(DefaultRiskReward, DefaultPrecision).Check(htf, ltf)
}

// Check возвращает сигнал в пределах текущей HTF свечи или nil.
// Ошибка означает битые свечи, отсутствие паттерна ошибкой не является.
func (c *Composer) Check(htfCandles, ltfCandles []models.Candle) (*models.Signal, error) {
	htf, ltf := series(htfCandles), series(ltfCandles)
	if err := htf.validateTimes("composer htf"); err != nil {
		return nil, err
	}
	if err := ltf.validateTimes("composer ltf"); err != nil {
		return nil, err
	}

	current, ok := htf.last()
	if !ok {
		return nil, nil
	}
	ref := current.Time

	obs, err := DetectOrderBlocks(htf)
	if err != nil {
		return nil, err
	}
	if len(obs) == 0 {
		return nil, nil
	}
	ob, ok := htf.at(obs[len(obs)-1])
	if !ok {
		return nil, nil
	}
	zone := models.Zone{High: ob.High, Low: ob.Low, Time: ob.Time}

	// LTF только в пределах текущего HTF времени
	bounded := ltf.until(ref)
	chochs, err := DetectCHOCH(bounded)
	if err != nil {
		return nil, err
	}
	if len(chochs) == 0 {
		return nil, nil
	}

	sweeps, err := DetectLiquiditySweeps(bounded)
	if err != nil {
		return nil, err
	}
	if len(sweeps) == 0 {
		return nil, nil
	}

	choch, ok := bounded.at(chochs[len(chochs)-1])
	if !ok || choch.Time.After(ref) {
		return nil, nil
	}

	if math.Abs(choch.Close-choch.Open) < dojiRatio*choch.Close {
		return nil, nil
	}

	trend := c.Trend(htfCandles)
	entry := choch.Close

	var side models.Side
	switch {
	case entry > zone.High && trend == models.TrendBullish:
		side = models.SideLong
	case entry < zone.Low && trend == models.TrendBearish:
		side = models.SideShort
	default:
		return nil, nil
	}

	sl, tp, err := CalculateTPSL(entry, zone, c.RiskReward, c.Precision)
	if err != nil {
		return nil, nil
	}

	return &models.Signal{
		Type:           side,
		EntryPrice:     entry,
		Timestamp:      choch.Time,
		Trend:          trend,
		OBZoneHigh:     zone.High,
		OBZoneLow:      zone.Low,
		OBZoneTime:     zone.Time,
		LiquiditySweep: len(sweeps) > 0,
		CHOCHTime:      choch.Time,
		SL:             sl,
		TP:             tp,
	}, nil
}

// Trend сравнивает последний close с close в начале окна из последних 10 свечей.
// Пустой ряд считается медвежьим.
func (c *Composer) Trend(candles []models.Candle) models.Trend {
	s := series(candles)
	cur, ok := s.last()
	if !ok {
		return models.TrendBearish
	}
	n := trendWindow
	if len(s) < n {
		n = len(s)
	}
	start, ok := s.at(len(s) - n)
	if ok && cur.Close > start.Close {
		return models.TrendBullish
	}
	return models.TrendBearish
}
