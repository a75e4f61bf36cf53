package strategy

import "smc_bot/internal/models"

// DetectOrderBlocks ищет на HTF свечи, закрывшиеся ниже open и low предыдущей.
// Возвращает индексы по возрастанию, для меньше чем двух свечей пустой результат.
func DetectOrderBlocks(candles []models.Candle) ([]int, error) {
	s := series(candles)
	if err := s.validate("order block", false); err != nil {
		return nil, err
	}
	return s.scan(2, func(w []models.Candle) bool {
		prev, cur := w[0], w[1]
		return cur.Close < prev.Open && cur.Close < prev.Low
	}), nil
}

// DetectCHOCH ищет локальный минимум close с разворотом вверх.
func DetectCHOCH(candles []models.Candle) ([]int, error) {
	s := series(candles)
	if err := s.validate("choch", false); err != nil {
		return nil, err
	}
	return s.scan(3, func(w []models.Candle) bool {
		first, prev, cur := w[0], w[1], w[2]
		return cur.Close > prev.Close && prev.Close < first.Close
	}), nil
}

// DetectLiquiditySweeps ищет закрытие выше high предыдущей свечи на растущем объёме.
// Как и CHOCH, первые две свечи не проверяются.
func DetectLiquiditySweeps(candles []models.Candle) ([]int, error) {
	s := series(candles)
	if err := s.validate("liquidity sweep", true); err != nil {
		return nil, err
	}
	return s.scan(3, func(w []models.Candle) bool {
		prev, cur := w[1], w[2]
		return cur.Volume > prev.Volume && cur.Close > prev.High
	}), nil
}
