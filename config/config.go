package config

import (
	"github.com/spf13/viper"
)

// Configuration keys understood by shor_config.yaml and the SHOR_* env vars.
const (
	KeyMaxAttempts        = "max_attempts"
	KeySkipPrimalityCheck = "skip_primality_check"
	KeyListenAddr         = "listen_addr"
	KeyLogLevel           = "log_level"
)

// Defaults applied when no config file or env override is present.
const (
	DefaultMaxAttempts = 1000
	DefaultListenAddr  = "127.0.0.1:8080"
	DefaultLogLevel    = "info"
)

// MaxAttempts returns the configured outer-loop retry budget.
func MaxAttempts() int {
	return viper.GetInt(KeyMaxAttempts)
}

// SkipPrimalityCheck reports whether the Miller-Rabin pre-check is disabled.
func SkipPrimalityCheck() bool {
	return viper.GetBool(KeySkipPrimalityCheck)
}

// ListenAddr returns the address the HTTP server binds to.
func ListenAddr() string {
	return viper.GetString(KeyListenAddr)
}

// LogLevel returns the configured log level name (debug, info, warn, error).
func LogLevel() string {
	return viper.GetString(KeyLogLevel)
}
