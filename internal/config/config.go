package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	HTTPAddr    string        `mapstructure:"http_addr"`
	PostgresDSN string        `mapstructure:"postgres_dsn"`
	RedisAddr   string        `mapstructure:"redis_addr"`
	CacheTTL    time.Duration `mapstructure:"cache_ttl"`
}

// Load reads configuration with priority: environment variables (prefixed
// MEDIATOR_), then config.yaml in the working directory, then defaults.
// A .env file is loaded first if present.
func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	v.SetDefault("http_addr", ":8080")
	v.SetDefault("postgres_dsn", "")
	v.SetDefault("redis_addr", "")
	v.SetDefault("cache_ttl", 30*time.Second)

	v.SetEnvPrefix("MEDIATOR")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

// MustLoad loads configuration and panics on error, for use in main.
func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		panic(fmt.Sprintf("failed to load configuration: %v", err))
	}
	return cfg
}
