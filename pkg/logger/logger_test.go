package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInit(t *testing.T) {
	require.NoError(t, Init("debug"))
	assert.NotNil(t, InfoLogger)
	assert.NotNil(t, FatalLogger)

	assert.Error(t, Init("loud"))
}

func TestSetServiceName(t *testing.T) {
	old := SetServiceName("smc_bot")
	defer SetServiceName(old)
	assert.Equal(t, "smc_bot", SetServiceName("smc_bot"))
}

func TestHelpersDoNotPanicAfterInit(t *testing.T) {
	InitNop()
	assert.NotPanics(t, func() {
		Debug("debug %d", 1)
		Info("info %s", "x")
		Warn("warn")
		Error("error %v", assert.AnError)
		Errorw("errorw")
	})
}
