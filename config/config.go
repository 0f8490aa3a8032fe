package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

const defaultConfigFile = "config.json"

// Config represents the application's configuration structure. Values come
// from an optional JSON file or environment variables (dashes replaced by
// underscores, e.g. PERIOD_DAYS); command-line flags override both.
type Config struct {
	InputPath     string `json:"input-path" mapstructure:"input-path"`
	EmployeesPath string `json:"employees-path" mapstructure:"employees-path"`
	Format        string `json:"format" mapstructure:"format"`
	OutputPath    string `json:"output-path" mapstructure:"output-path"`
	PeriodDays    int    `json:"period-days" mapstructure:"period-days"`
	LogLevel      string `json:"log-level" mapstructure:"log-level"`
	MetricsAddr   string `json:"metrics-addr" mapstructure:"metrics-addr"`
	PushURL       string `json:"push-url" mapstructure:"push-url"`
}

var configKeys = []string{
	"input-path",
	"employees-path",
	"format",
	"output-path",
	"period-days",
	"log-level",
	"metrics-addr",
	"push-url",
}

// InitConfig reads configuration from a JSON file and environment variables.
// Environment variables take precedence over the config file. A missing
// config file is not an error; defaults and env vars cover every field.
func InitConfig(path string) (*Config, error) {
	if path == "" {
		path = defaultConfigFile
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("json")

	v.SetDefault("format", "text")
	v.SetDefault("period-days", 7)
	v.SetDefault("log-level", "INFO")

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))

	for _, key := range configKeys {
		v.BindEnv(key)
	}

	if err := v.ReadInConfig(); err != nil {
		// ignore error if config file is not found
		// as we can get all config from env vars and flags
		if !strings.Contains(err.Error(), path) {
			return nil, fmt.Errorf("could not read config: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("could not unmarshal config: %w", err)
	}

	return &config, nil
}
