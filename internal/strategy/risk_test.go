package strategy

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"smc_bot/internal/models"
)

func TestCalculateTPSL(t *testing.T) {
	zone := models.Zone{High: 100, Low: 95}

	cases := []struct {
		name   string
		entry  float64
		zone   models.Zone
		rr     float64
		wantSL float64
		wantTP float64
	}{
		{"above zone", 108, zone, 2, 95, 134},
		{"below zone", 90, zone, 2, 100, 70},
		{"inside zone", 97, zone, 2, 100, 91},
		{"custom rr", 108, zone, 3, 95, 147},
		{"default rr", 108, zone, 0, 95, 134},
		{"rounded", 1.123456789, models.Zone{High: 1.1, Low: 1.05}, 2, 1.05, 1.27037},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			sl, tp, err := CalculateTPSL(tc.entry, tc.zone, tc.rr, DefaultPrecision)
			require.NoError(t, err)
			assert.InDelta(t, tc.wantSL, sl, 1e-9)
			assert.InDelta(t, tc.wantTP, tp, 1e-9)
		})
	}
}

func TestRound_BinaryValue(t *testing.T) {
	// 0.000155 в двоичном виде чуть меньше 0.000155
	assert.Equal(t, 0.00015, round(0.000155, 5))
	assert.Equal(t, 2.67, round(2.675, 2))
	assert.Equal(t, 0.12, round(0.125, 2)) // точная ничья, к чётному
	assert.Equal(t, -1.27037, round(-1.270370367, 5))

	sl, _, err := CalculateTPSL(0.0002, models.Zone{High: 0.00018, Low: 0.000155}, 2, DefaultPrecision)
	require.NoError(t, err)
	assert.Equal(t, 0.00015, sl)
}

func TestCalculateTPSL_Idempotent(t *testing.T) {
	zone := models.Zone{High: 0.5123, Low: 0.4987}
	sl1, tp1, err1 := CalculateTPSL(0.53311, zone, 2, DefaultPrecision)
	sl2, tp2, err2 := CalculateTPSL(0.53311, zone, 2, DefaultPrecision)
	require.NoError(t, err1)
	require.NoError(t, err2)
	assert.Equal(t, sl1, sl2)
	assert.Equal(t, tp1, tp2)
}

func TestCalculateTPSL_RoundTripAboveZone(t *testing.T) {
	zone := models.Zone{High: 2.345, Low: 2.2}
	entry := 2.41
	sl, tp, err := CalculateTPSL(entry, zone, 2, 5)
	require.NoError(t, err)
	assert.Equal(t, round(zone.Low, 5), sl)
	assert.Equal(t, round(entry+(entry-zone.Low)*2, 5), tp)
}

func TestCalculateTPSL_IncompleteZone(t *testing.T) {
	var verr *ValidationError

	_, _, err := CalculateTPSL(10, models.Zone{High: math.NaN(), Low: 5}, 2, 5)
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, []string{"high"}, verr.Fields)

	_, _, err = CalculateTPSL(10, models.Zone{High: math.NaN(), Low: math.NaN()}, 2, 5)
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, []string{"high", "low"}, verr.Fields)

	_, _, err = CalculateTPSL(math.NaN(), models.Zone{High: 1, Low: 0.5}, 2, 5)
	assert.True(t, errors.As(err, &verr))
}
