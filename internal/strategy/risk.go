package strategy

import (
	"math"
	"strconv"

	"github.com/shopspring/decimal"

	"smc_bot/internal/models"
)

const (
	DefaultRiskReward = 2.0
	DefaultPrecision  = 5
)

// CalculateTPSL считает стоп за дальней от входа границей зоны и тейк на rr стопов.
// rr <= 0 заменяется на DefaultRiskReward, precision < 0 на DefaultPrecision.
func CalculateTPSL(entry float64, zone models.Zone, rr float64, precision int32) (sl, tp float64, err error) {
	if !zone.Complete() {
		var missing []string
		if math.IsNaN(zone.High) || math.IsInf(zone.High, 0) {
			missing = append(missing, "high")
		}
		if math.IsNaN(zone.Low) || math.IsInf(zone.Low, 0) {
			missing = append(missing, "low")
		}
		return 0, 0, &ValidationError{Op: "tp/sl", Index: -1, Fields: missing}
	}
	if math.IsNaN(entry) || math.IsInf(entry, 0) {
		return 0, 0, &ValidationError{Op: "tp/sl", Index: -1, Fields: []string{"entry"}}
	}
	if rr <= 0 {
		rr = DefaultRiskReward
	}
	if precision < 0 {
		precision = DefaultPrecision
	}

	sl = zone.High
	if entry > zone.High {
		sl = zone.Low
	}
	risk := math.Abs(entry - sl)
	if entry > sl {
		tp = entry + risk*rr
	} else {
		tp = entry - risk*rr
	}
	return round(sl, precision), round(tp, precision), nil
}

// round округляет точное двоичное значение v до places знаков, ничья к чётному.
func round(v float64, places int32) float64 {
	d, err := decimal.NewFromString(strconv.FormatFloat(v, 'f', int(places), 64))
	if err != nil {
		return v
	}
	return d.InexactFloat64()
}
