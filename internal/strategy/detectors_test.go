package strategy

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"smc_bot/internal/models"
)

type detector func([]models.Candle) ([]int, error)

func TestDetectors_ShortSequences(t *testing.T) {
	all := bullishHTF()
	cases := []struct {
		name string
		fn   detector
		max  int // длина, при которой паттерн ещё не может сработать
	}{
		{"order block", DetectOrderBlocks, 1},
		{"choch", DetectCHOCH, 2},
		{"liquidity sweep", DetectLiquiditySweeps, 2},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			for n := 0; n <= tc.max; n++ {
				got, err := tc.fn(all[:n])
				require.NoError(t, err)
				assert.Empty(t, got, "len=%d", n)
			}
		})
	}
}

func TestDetectOrderBlocks(t *testing.T) {
	got, err := DetectOrderBlocks(bullishHTF())
	require.NoError(t, err)
	assert.Equal(t, []int{2}, got)

	got, err = DetectOrderBlocks(bearishHTF())
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3, 4}, got)
}

func TestDetectOrderBlocks_IgnoresUnrelatedFields(t *testing.T) {
	base := bullishHTF()
	want, err := DetectOrderBlocks(base)
	require.NoError(t, err)

	shuffled := make([]models.Candle, len(base))
	copy(shuffled, base)
	for i := range shuffled {
		// high и volume в условии не участвуют, open текущей свечи и low текущей тоже
		shuffled[i].High = 1000 - shuffled[i].High
		shuffled[i].Volume = float64(i * 7)
		if i == len(shuffled)-1 {
			shuffled[i].Low = -1
		}
	}
	got, err := DetectOrderBlocks(shuffled)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestDetectCHOCH(t *testing.T) {
	ltf := insideZoneLTF(t0)
	got, err := DetectCHOCH(ltf)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 5}, got)
}

func TestDetectLiquiditySweeps(t *testing.T) {
	got, err := DetectLiquiditySweeps(longLTF(t0))
	require.NoError(t, err)
	assert.Equal(t, []int{3}, got)

	got, err = DetectLiquiditySweeps(insideZoneLTF(t0))
	require.NoError(t, err)
	assert.Equal(t, []int{2}, got)
}

func TestDetectLiquiditySweeps_FirstPairNotChecked(t *testing.T) {
	cs := []models.Candle{
		bar(t0, 10, 11, 9, 10, 10),
		bar(t0.Add(time.Minute), 10, 13, 10, 12, 20), // пробой, но индекс 1
		bar(t0.Add(2*time.Minute), 12, 12.5, 11, 12, 5),
	}
	got, err := DetectLiquiditySweeps(cs)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestDetectors_MissingFields(t *testing.T) {
	noClose := bullishHTF()
	noClose[4].Close = math.NaN()

	_, err := DetectOrderBlocks(noClose)
	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, 4, verr.Index)
	assert.Equal(t, []string{"close"}, verr.Fields)

	_, err = DetectCHOCH(noClose)
	assert.True(t, errors.As(err, &verr))

	noVolume := longLTF(t0)
	noVolume[1].Volume = math.NaN()
	_, err = DetectCHOCH(noVolume)
	assert.NoError(t, err, "choch does not need volume")
	_, err = DetectLiquiditySweeps(noVolume)
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, []string{"volume"}, verr.Fields)

}

func TestDetectors_TimeNotRequired(t *testing.T) {
	noTime := bullishHTF()
	for i := range noTime {
		noTime[i].Time = time.Time{}
	}
	obs, err := DetectOrderBlocks(noTime)
	require.NoError(t, err)
	assert.Equal(t, []int{2}, obs)

	ltf := longLTF(t0)
	ltf[0].Time = time.Time{}
	chochs, err := DetectCHOCH(ltf)
	require.NoError(t, err)
	assert.Equal(t, []int{3}, chochs)
	_, err = DetectLiquiditySweeps(ltf)
	assert.NoError(t, err)
}
