package runner

import "smc_bot/internal/models"

// lastSignals последний отправленный сигнал по символу.
// Меняется только из горутины цикла, поэтому без блокировок.
type lastSignals map[string]models.Signal

// changed true, если сигнала по символу ещё не было или он отличается хотя бы одним полем.
func (c lastSignals) changed(symbol string, sig models.Signal) bool {
	prev, ok := c[symbol]
	return !ok || prev != sig
}

func (c lastSignals) store(symbol string, sig models.Signal) { c[symbol] = sig }
