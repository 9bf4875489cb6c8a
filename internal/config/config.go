package config

import (
	"strings"

	ierr "github.com/flexprice/vanrental/internal/errors"
	"github.com/flexprice/vanrental/internal/types"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Configuration holds everything the console and the API read at startup.
// Rates are not part of it: they are fixed in the vehicle catalog.
type Configuration struct {
	Deployment DeploymentConfig `mapstructure:"deployment" validate:"required"`
	Server     ServerConfig     `mapstructure:"server" validate:"required"`
	Logging    LoggingConfig    `mapstructure:"logging" validate:"required"`
	Report     ReportConfig     `mapstructure:"report" validate:"required"`
}

type DeploymentConfig struct {
	Mode types.RunMode `mapstructure:"mode" validate:"required"`
}

type ServerConfig struct {
	Address string `mapstructure:"address" validate:"required"`
}

type LoggingConfig struct {
	Level types.LogLevel `mapstructure:"level" validate:"required,oneof=debug info warn error"`
}

// ReportConfig controls how printed reports are headed and dated
type ReportConfig struct {
	CompanyName   string `mapstructure:"company_name" validate:"required"`
	CurrencyLabel string `mapstructure:"currency_label" validate:"required"`
	// DateFormat is a Go reference-time layout
	DateFormat string `mapstructure:"date_format" validate:"required"`
}

// NewConfig loads config.yaml when present and applies VANRENTAL_* env
// overrides. A .env file in the working directory is loaded first.
func NewConfig() (*Configuration, error) {
	// .env is optional; real environment variables win over it
	_ = godotenv.Load()

	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./")
	v.AddConfigPath("./internal/config")

	v.SetEnvPrefix("VANRENTAL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, ierr.WithError(err).
				WithHint("Failed to read config file").
				Mark(ierr.ErrValidation)
		}
	}

	var cfg Configuration
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to decode configuration").
			Mark(ierr.ErrValidation)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// GetDefaultConfig returns the built-in defaults without reading files or env
func GetDefaultConfig() *Configuration {
	return &Configuration{
		Deployment: DeploymentConfig{Mode: types.ModeLocal},
		Server:     ServerConfig{Address: ":8080"},
		Logging:    LoggingConfig{Level: types.LogLevelInfo},
		Report: ReportConfig{
			CompanyName:   "JEFF'S CAR RENTAL",
			CurrencyLabel: types.DefaultCurrencyLabel,
			DateFormat:    "02/01/2006",
		},
	}
}

func (c *Configuration) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return ierr.WithError(err).
			WithHint("Invalid configuration").
			Mark(ierr.ErrValidation)
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	d := GetDefaultConfig()
	v.SetDefault("deployment.mode", string(d.Deployment.Mode))
	v.SetDefault("server.address", d.Server.Address)
	v.SetDefault("logging.level", string(d.Logging.Level))
	v.SetDefault("report.company_name", d.Report.CompanyName)
	v.SetDefault("report.currency_label", d.Report.CurrencyLabel)
	v.SetDefault("report.date_format", d.Report.DateFormat)
}
