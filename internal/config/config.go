package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"
)

// Config holds application configuration.
type Config struct {
	Calculator CalculatorConfig `mapstructure:"calculator"`
	Display    DisplayConfig    `mapstructure:"display"`
	HTTP       HTTPConfig       `mapstructure:"http"`
	Log        LogConfig        `mapstructure:"log"`
	OTel       OTelConfig       `mapstructure:"otel"`
	Sessions   SessionsConfig   `mapstructure:"sessions"`
}

// CalculatorConfig holds arithmetic settings.
type CalculatorConfig struct {
	Precision int `mapstructure:"precision"`
}

// DisplayConfig holds display sink settings.
type DisplayConfig struct {
	MaxItems int `mapstructure:"max_items"`
}

// HTTPConfig holds server settings.
type HTTPConfig struct {
	Addr            string        `mapstructure:"addr"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

type LogConfig struct {
	Level       string `mapstructure:"level"`
	Development bool   `mapstructure:"development"`
}

// OTelConfig toggles the OTLP exporters. The endpoints themselves come from
// the standard OTEL_EXPORTER_OTLP_* variables.
type OTelConfig struct {
	Enabled     bool   `mapstructure:"enabled"`
	ServiceName string `mapstructure:"service_name"`
}

type SessionsConfig struct {
	Max     int `mapstructure:"max"`
	History int `mapstructure:"history"`
}

// Load reads configuration from file and env. Env var overrides use prefix DESKCALC_.
func Load() (Config, error) {
	v := viper.New()

	// default values
	v.SetDefault("calculator.precision", 15)
	v.SetDefault("display.max_items", 17)
	v.SetDefault("http.addr", ":8080")
	v.SetDefault("http.shutdown_timeout", 5*time.Second)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.development", false)
	v.SetDefault("otel.enabled", false)
	v.SetDefault("otel.service_name", "deskcalc")
	v.SetDefault("sessions.max", 1024)
	v.SetDefault("sessions.history", 64)

	v.SetConfigType("toml")

	cfgPath := os.Getenv("DESKCALC_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "deskcalc"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("DESKCALC")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// a missing default file is fine, an explicit one must be readable
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgPath != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return c, nil
}

// Validate reports the first setting that cannot drive a calculator.
func (c Config) Validate() error {
	if c.Calculator.Precision < 1 {
		return fmt.Errorf("calculator.precision must be positive, got %d", c.Calculator.Precision)
	}
	if c.Display.MaxItems-2 < c.Calculator.Precision {
		return fmt.Errorf("display.max_items must be at least precision+2 (%d), got %d",
			c.Calculator.Precision+2, c.Display.MaxItems)
	}
	if c.Sessions.Max < 1 {
		return fmt.Errorf("sessions.max must be positive, got %d", c.Sessions.Max)
	}
	if c.Sessions.History < 1 {
		return fmt.Errorf("sessions.history must be positive, got %d", c.Sessions.History)
	}
	if _, err := zapcore.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("log.level: %w", err)
	}
	return nil
}
