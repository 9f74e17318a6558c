// Package config loads server configuration from environment variables,
// with a .env file honored for local development.
package config

import (
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Port           int      `mapstructure:"port"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
	LogLevel       string   `mapstructure:"log_level"`

	OddsAPIKey string `mapstructure:"odds_api_key"`

	LLMAPIKey  string `mapstructure:"llm_api_key"`
	LLMBaseURL string `mapstructure:"llm_base_url"`
	LLMModel   string `mapstructure:"llm_model"`

	DatabaseDSN string `mapstructure:"database_dsn"`

	MatchThreshold float64 `mapstructure:"match_threshold"`
}

// Load reads configuration from the environment. Every key has a
// working default except the two API keys; features backed by a missing
// key degrade rather than fail at startup.
func Load() (*Config, error) {
	_ = godotenv.Load() // .env is optional

	v := viper.New()
	v.SetEnvPrefix("OFP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("port", 8080)
	v.SetDefault("allowed_origins", []string{"http://localhost:3000"})
	v.SetDefault("log_level", "info")
	v.SetDefault("odds_api_key", "")
	v.SetDefault("llm_api_key", "")
	v.SetDefault("llm_base_url", "")
	v.SetDefault("llm_model", "")
	v.SetDefault("database_dsn", "")
	v.SetDefault("match_threshold", 0.6)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
