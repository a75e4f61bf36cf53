package models

import "time"

// Side направление сделки.
type Side string

const (
	SideLong  Side = "LONG"
	SideShort Side = "SHORT"
)

// Trend направление тренда на HTF.
type Trend string

const (
	TrendBullish Trend = "bullish"
	TrendBearish Trend = "bearish"
)

// Signal сигнал на вход. Структура сравнима через ==, на этом держится дедупликация в раннере.
type Signal struct {
	Type           Side
	EntryPrice     float64
	Timestamp      time.Time
	Trend          Trend
	OBZoneHigh     float64
	OBZoneLow      float64
	OBZoneTime     time.Time
	LiquiditySweep bool
	CHOCHTime      time.Time
	SL             float64
	TP             float64
}
