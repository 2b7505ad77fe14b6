package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type config struct {
	BaseURL     string        `mapstructure:"base_url"`
	APIKey      string        `mapstructure:"api_key"`
	RoutePrefix string        `mapstructure:"route_prefix"`
	Category    string        `mapstructure:"category"`
	Tags        []string      `mapstructure:"tags"`
	MediaURL    string        `mapstructure:"media_url"`
	Interval    time.Duration `mapstructure:"-"`
}

func loadConfig(path string) (config, error) {
	if strings.TrimSpace(path) == "" {
		return config{}, fmt.Errorf("config path is required")
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	v.SetDefault("interval", "30s")
	if err := v.ReadInConfig(); err != nil {
		return config{}, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg config
	if err := v.Unmarshal(&cfg); err != nil {
		return config{}, fmt.Errorf("failed to decode config: %w", err)
	}

	cfg.BaseURL = strings.TrimSpace(cfg.BaseURL)
	cfg.APIKey = strings.TrimSpace(cfg.APIKey)
	cfg.Category = strings.TrimSpace(cfg.Category)
	if cfg.BaseURL == "" || cfg.APIKey == "" {
		return config{}, fmt.Errorf("config must include base_url and api_key")
	}

	interval, err := time.ParseDuration(strings.TrimSpace(v.GetString("interval")))
	if err != nil {
		return config{}, fmt.Errorf("invalid interval duration: %w", err)
	}
	if interval <= 0 {
		return config{}, fmt.Errorf("interval must be positive")
	}
	cfg.Interval = interval

	return cfg, nil
}
