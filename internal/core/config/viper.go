package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// LoadConfig loads configuration from file using viper.
// CLI flags > environment > config file > defaults precedence; flag
// overrides are applied by the command layer after this returns.
func LoadConfig(configPath string) (*Config, error) {
	v := viper.New()

	// Defaults matching DefaultConfig
	v.SetDefault("database_url", "")
	v.SetDefault("data_dir", "./data")
	v.SetDefault("lint_limit", 10000)

	// Bind environment variables with SW_ prefix
	v.SetEnvPrefix("SW")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Load config file if provided
	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	cfg := &Config{
		DatabaseURL: v.GetString("database_url"),
		DataDir:     v.GetString("data_dir"),
		LintLimit:   v.GetInt("lint_limit"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}
