// Package config provides configuration loading and validation.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all quoter configuration.
type Config struct {
	App    AppConfig    `mapstructure:"app"`
	Engine EngineConfig `mapstructure:"engine"`
	Quoter QuoterConfig `mapstructure:"quoter"`
}

// AppConfig holds general application settings.
type AppConfig struct {
	Name        string `mapstructure:"name"`
	Environment string `mapstructure:"environment"`
	LogLevel    string `mapstructure:"log_level"`
}

// EngineConfig holds calculation engine defaults.
type EngineConfig struct {
	DefaultSlippageBps int64   `mapstructure:"default_slippage_bps"`
	MaxPriceImpactPct  float64 `mapstructure:"max_price_impact_pct"`
}

// QuoterConfig holds settings for the one-shot quoter CLI.
type QuoterConfig struct {
	SnapshotPath string `mapstructure:"snapshot_path"`
	TraceConsole bool   `mapstructure:"trace_console"`
}

// Load reads configuration from the given file (optional) and
// AMMKIT_-prefixed environment variables.
func Load(path string) (*Config, error) {
	v := viper.New()

	v.SetDefault("app.name", "ammkit")
	v.SetDefault("app.environment", "development")
	v.SetDefault("app.log_level", "info")
	v.SetDefault("engine.default_slippage_bps", 50)
	v.SetDefault("engine.max_price_impact_pct", 5.0)
	v.SetDefault("quoter.snapshot_path", "pools.json")
	v.SetDefault("quoter.trace_console", false)

	v.SetEnvPrefix("AMMKIT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("config: reading %s: %w", path, err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks the configuration for out-of-range values.
func (c *Config) Validate() error {
	if c.Engine.DefaultSlippageBps < 0 || c.Engine.DefaultSlippageBps > 5000 {
		return fmt.Errorf("config: default_slippage_bps %d out of range [0, 5000]", c.Engine.DefaultSlippageBps)
	}
	if c.Engine.MaxPriceImpactPct <= 0 || c.Engine.MaxPriceImpactPct > 100 {
		return fmt.Errorf("config: max_price_impact_pct %.2f out of range (0, 100]", c.Engine.MaxPriceImpactPct)
	}
	return nil
}
