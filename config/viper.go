package config

import (
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Init locates and reads shor_config.yaml, seeding defaults first so lookups
// work even without a config file. Environment variables prefixed with SHOR_
// override file values. When no config file exists anywhere on the search
// path, a default one is written to the working directory.
func Init() {
	viper.SetConfigName("shor_config")
	viper.SetConfigType("yaml")

	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = ""
	}

	xdgConfigHome := os.Getenv("XDG_CONFIG_HOME")
	if xdgConfigHome == "" && homeDir != "" {
		xdgConfigHome = filepath.Join(homeDir, ".config")
	}

	configPaths := []string{
		"/etc/shor-go",
		"/usr/local/etc/shor-go",
	}

	if xdgConfigHome != "" {
		configPaths = append(configPaths, filepath.Join(xdgConfigHome, "shor-go"))
	}

	if homeDir != "" {
		configPaths = append(configPaths, filepath.Join(homeDir, ".shor-go"), homeDir)
	}

	configPaths = append(configPaths, ".")

	for _, path := range configPaths {
		viper.AddConfigPath(path)
	}

	viper.SetDefault(KeyMaxAttempts, DefaultMaxAttempts)
	viper.SetDefault(KeySkipPrimalityCheck, false)
	viper.SetDefault(KeyListenAddr, DefaultListenAddr)
	viper.SetDefault(KeyLogLevel, DefaultLogLevel)

	viper.SetEnvPrefix("SHOR")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if err := viper.SafeWriteConfigAs("./shor_config.yaml"); err != nil {
			return
		}
		_ = viper.ReadInConfig()
	}
}
