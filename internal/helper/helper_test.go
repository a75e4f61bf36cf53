package helper

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNormTF(t *testing.T) {
	cases := map[string]string{
		"60m":      "1h",
		" 1H ":     "1h",
		"candle5m": "5m",
		"5min":     "5m",
		"4H":       "4h",
		"1day":     "1d",
		"15m":      "15m",
	}
	for in, want := range cases {
		assert.Equal(t, want, NormTF(in), in)
	}
}

func TestTimeframeDuration(t *testing.T) {
	assert.Equal(t, time.Hour, TimeframeDuration("1H"))
	assert.Equal(t, 5*time.Minute, TimeframeDuration("5m"))
	assert.Zero(t, TimeframeDuration("7m"))
}

func TestCandlesIn(t *testing.T) {
	assert.Equal(t, 25, CandlesIn(24*time.Hour, "1h"))
	assert.Equal(t, 289, CandlesIn(24*time.Hour, "5m"))
	assert.Zero(t, CandlesIn(24*time.Hour, "weird"))
}
