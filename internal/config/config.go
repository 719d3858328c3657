package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds application configuration loaded from an optional config
// file and environment variables.
type Config struct {
	QuestionsDir     string `mapstructure:"questions_dir"`     // initial browse directory; empty means auto-detect
	ShowExplanations bool   `mapstructure:"show_explanations"` // initial state of the explanation toggle
	LogFile          string `mapstructure:"log_file"`          // diagnostic log destination; empty disables logging
}

// Load reads configuration from config.yaml (working directory or
// ./config) and PMPQUIZ_* environment variables. A missing config file is
// fine; everything has a default.
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")

	v.SetDefault("questions_dir", "")
	v.SetDefault("show_explanations", false)
	v.SetDefault("log_file", "")

	v.SetEnvPrefix("pmpquiz")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return &cfg, nil
}
