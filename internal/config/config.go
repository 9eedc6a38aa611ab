package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/viper"
)

type AuthConfig struct {
	Key        string `mapstructure:"key"`
	Placement  string `mapstructure:"placement"`
	QueryParam string `mapstructure:"query_param"`
}

// Config holds the application configuration.
type Config struct {
	TimeoutSeconds int        `mapstructure:"timeout_seconds"`
	Auth           AuthConfig `mapstructure:"auth"`
	TodosBaseURL   string     `mapstructure:"todos_base_url"`
	APODBaseURL    string     `mapstructure:"apod_base_url"`
	ListenAddress  string     `mapstructure:"listen_address"`
	Color          bool       `mapstructure:"color"`
}

// Load reads the optional YAML config file, applies environment overrides, and
// validates the result. Call godotenv.Load first so .env values are visible.
func Load(configFile string) (*Config, error) {
	v := viper.New()

	v.SetDefault("timeout_seconds", 30)
	v.SetDefault("auth.key", "DEMO_KEY")
	v.SetDefault("auth.placement", "query")
	v.SetDefault("auth.query_param", "api_key")
	v.SetDefault("listen_address", "127.0.0.1:8080")
	v.SetDefault("color", false)

	if configFile != "" {
		v.SetConfigFile(configFile)
		v.SetConfigType("yaml")

		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	if key := os.Getenv("APOD_API_KEY"); key != "" {
		cfg.Auth.Key = key
	}
	if placement := os.Getenv("APOD_KEY_PLACEMENT"); placement != "" {
		cfg.Auth.Placement = placement
	}

	if cfg.TimeoutSeconds <= 0 {
		return nil, errors.New("timeout_seconds must be positive")
	}
	if cfg.Auth.Placement != "query" && cfg.Auth.Placement != "header" {
		return nil, fmt.Errorf("auth.placement must be %q or %q", "query", "header")
	}
	if cfg.Auth.Key == "" {
		return nil, errors.New("auth.key is required")
	}

	return &cfg, nil
}

func (c *Config) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}
