package config

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
)

func TestAccessorsReadViper(t *testing.T) {
	viper.Set(KeyMaxAttempts, 250)
	viper.Set(KeySkipPrimalityCheck, true)
	viper.Set(KeyListenAddr, "127.0.0.1:9000")
	viper.Set(KeyLogLevel, "debug")
	t.Cleanup(viper.Reset)

	assert.Equal(t, 250, MaxAttempts())
	assert.True(t, SkipPrimalityCheck())
	assert.Equal(t, "127.0.0.1:9000", ListenAddr())
	assert.Equal(t, "debug", LogLevel())
}
