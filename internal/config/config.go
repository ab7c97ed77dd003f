package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/AbdoTarek2211/Cost-Management/internal/types"
	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

type Configuration struct {
	Server    ServerConfig    `validate:"required"`
	Logging   LoggingConfig   `validate:"required"`
	Payments  PaymentsConfig  `validate:"required"`
	Reminders RemindersConfig `validate:"required"`
}

type ServerConfig struct {
	Address string `validate:"required"`
}

type LoggingConfig struct {
	Level types.LogLevel `validate:"required"`
}

// PaymentsConfig carries the overpayment policy. The reference behavior
// allows the balance due to go negative; rejecting overpayments is an
// opt-in deployment choice rather than a hardcoded rule.
type PaymentsConfig struct {
	AllowOverpayment bool `mapstructure:"allow_overpayment"`
}

type RemindersConfig struct {
	DaysUntilDue int `mapstructure:"days_until_due" validate:"gte=0"`
}

func NewConfig() (*Configuration, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./internal/config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")

	v.SetEnvPrefix("COSTMGMT")
	v.SetEnvKeyReplacer(strings.NewReplacer(
		".", "_",
		"-", "_",
	))
	v.AutomaticEnv()

	setDefaults(v)

	// Read config file if exists
	if err := v.ReadInConfig(); err != nil {
		if !errors.As(err, &viper.ConfigFileNotFoundError{}) {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Configuration
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.address", ":8080")
	v.SetDefault("logging.level", string(types.LogLevelInfo))
	v.SetDefault("payments.allow_overpayment", true)
	v.SetDefault("reminders.days_until_due", 7)
}

func (c Configuration) Validate() error {
	return validator.New().Struct(c)
}

// GetDefaultConfig returns a configuration suitable for tests
func GetDefaultConfig() *Configuration {
	return &Configuration{
		Server:    ServerConfig{Address: ":8080"},
		Logging:   LoggingConfig{Level: types.LogLevelInfo},
		Payments:  PaymentsConfig{AllowOverpayment: true},
		Reminders: RemindersConfig{DaysUntilDue: 7},
	}
}
