package models

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCandleMissing(t *testing.T) {
	c := Candle{Time: time.Unix(1730678400, 0), Open: 1, High: 2, Low: 0.5, Close: 1.5, Volume: math.NaN()}
	assert.Empty(t, c.Missing(false))
	assert.Equal(t, []string{"volume"}, c.Missing(true))

	c = Candle{Open: math.Inf(1), High: 2, Low: 0.5, Close: math.NaN(), Volume: 1}
	assert.Equal(t, []string{"time", "open", "close"}, c.Missing(true))
}

func TestZoneComplete(t *testing.T) {
	assert.True(t, Zone{High: 100, Low: 95}.Complete())
	assert.False(t, Zone{High: math.NaN(), Low: 95}.Complete())
	assert.False(t, Zone{High: 100, Low: math.NaN()}.Complete())
}
