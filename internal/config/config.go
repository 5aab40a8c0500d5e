package config

import (
	"fmt"
	"reflect"
	"slices"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/viper"

	"github.com/olusolaa/colorful-logging/internal/core/domain"
	"github.com/olusolaa/colorful-logging/internal/errors"
	"github.com/olusolaa/colorful-logging/internal/highlight"
	"github.com/olusolaa/colorful-logging/internal/log"
	"github.com/olusolaa/colorful-logging/internal/reporting/text"
)

type Config struct {
	Settings SettingsConfig `mapstructure:"settings"`
	Demo     DemoConfig     `mapstructure:"demo"`
	Burst    BurstConfig    `mapstructure:"burst"`
	Report   ReportConfig   `mapstructure:"report"`
}

type SettingsConfig struct {
	LogLevel   domain.Severity     `mapstructure:"log_level" validate:"severity"`
	LogFormat  log.Format          `mapstructure:"log_format" validate:"oneof=console text json"`
	Color      highlight.ColorMode `mapstructure:"color" validate:"oneof=auto always never"`
	Pattern    string              `mapstructure:"pattern" validate:"required"`
	TimeFormat string              `mapstructure:"time_format" validate:"required"`
	Output     log.Output          `mapstructure:"output" validate:"oneof=stderr stdout"`
	Highlight  []domain.FieldKind  `mapstructure:"highlight" validate:"dive,fieldkind"`
}

type DemoConfig struct {
	StepDelayScale float64 `mapstructure:"step_delay_scale" validate:"gte=0,lte=100"`
	WarningChance  float64 `mapstructure:"warning_chance" validate:"gte=0,lte=1"`
	Seed           int64   `mapstructure:"seed"`
}

type BurstConfig struct {
	Workers int `mapstructure:"workers" validate:"min=1,max=64"`
	Events  int `mapstructure:"events" validate:"min=1,max=10000"`
	Rate    int `mapstructure:"rate" validate:"min=1,max=10000"`
}

type ReportConfig struct {
	Output  string `mapstructure:"output" validate:"oneof=text json"`
	NoColor bool   `mapstructure:"no_color"`
	Compact bool   `mapstructure:"compact"`
}

func DefaultConfig() *Config {
	logDefaults := log.DefaultConfig()
	return &Config{
		Settings: SettingsConfig{
			LogLevel:   logDefaults.Level,
			LogFormat:  logDefaults.Format,
			Color:      logDefaults.Color,
			Pattern:    logDefaults.Pattern,
			TimeFormat: logDefaults.TimeFormat,
			Output:     logDefaults.Output,
			Highlight:  logDefaults.Highlight,
		},
		Demo: DemoConfig{
			StepDelayScale: 1.0,
			WarningChance:  0.3,
		},
		Burst: BurstConfig{
			Workers: 4,
			Events:  50,
			Rate:    200,
		},
		Report: ReportConfig{
			Output: text.ReporterTypeText,
		},
	}
}

// LogConfig projects the settings section onto the logger's configuration.
func (c *Config) LogConfig() log.Config {
	cfg := log.DefaultConfig()
	cfg.Level = c.Settings.LogLevel
	cfg.Format = c.Settings.LogFormat
	cfg.Color = c.Settings.Color
	cfg.Pattern = c.Settings.Pattern
	cfg.TimeFormat = c.Settings.TimeFormat
	cfg.Output = c.Settings.Output
	if len(c.Settings.Highlight) > 0 {
		cfg.Highlight = c.Settings.Highlight
	}
	return cfg
}

// SetDefaults registers every key with viper so environment variables are
// picked up by Unmarshal and unchanged flags do not shadow the defaults.
func SetDefaults(v *viper.Viper) {
	d := DefaultConfig()
	fields := make([]string, 0, len(d.Settings.Highlight))
	for _, f := range d.Settings.Highlight {
		fields = append(fields, f.String())
	}
	v.SetDefault("settings.log_level", strings.ToLower(d.Settings.LogLevel.String()))
	v.SetDefault("settings.log_format", string(d.Settings.LogFormat))
	v.SetDefault("settings.color", string(d.Settings.Color))
	v.SetDefault("settings.pattern", d.Settings.Pattern)
	v.SetDefault("settings.time_format", d.Settings.TimeFormat)
	v.SetDefault("settings.output", string(d.Settings.Output))
	v.SetDefault("settings.highlight", fields)
	v.SetDefault("demo.step_delay_scale", d.Demo.StepDelayScale)
	v.SetDefault("demo.warning_chance", d.Demo.WarningChance)
	v.SetDefault("demo.seed", d.Demo.Seed)
	v.SetDefault("burst.workers", d.Burst.Workers)
	v.SetDefault("burst.events", d.Burst.Events)
	v.SetDefault("burst.rate", d.Burst.Rate)
	v.SetDefault("report.output", d.Report.Output)
	v.SetDefault("report.no_color", d.Report.NoColor)
	v.SetDefault("report.compact", d.Report.Compact)
}

// Load registers the defaults on v, decodes it and validates the result.
func Load(v *viper.Viper) (*Config, error) {
	SetDefaults(v)
	cfg := &Config{}
	err := v.Unmarshal(cfg, viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		stringToSeverityHook(),
		stringToFieldKindsHook(),
		stringToFieldKindHook(),
		mapstructure.StringToSliceHookFunc(","),
	)))
	if err != nil {
		return nil, errors.WrapUserFacing(err, errors.CodeConfigParseError, "failed to decode configuration", "Check value types in your configuration file, flags and COLORLOG_* variables.")
	}
	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Validate(cfg *Config) error {
	validate := validator.New(validator.WithRequiredStructEnabled())
	_ = validate.RegisterValidation("severity", func(fl validator.FieldLevel) bool {
		sev := domain.Severity(fl.Field().Int())
		return sev.IsDefined() || sev == domain.SeverityAll || sev == domain.SeverityOff
	})
	_ = validate.RegisterValidation("fieldkind", func(fl validator.FieldLevel) bool {
		return slices.Contains(domain.FieldKinds(), domain.FieldKind(fl.Field().Uint()))
	})

	err := validate.Struct(cfg)
	if err == nil {
		return nil
	}
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return errors.Wrap(err, errors.CodeConfigValidation, "configuration validation failed")
	}
	var details strings.Builder
	details.WriteString("Configuration validation failed:")
	for _, fe := range validationErrors {
		details.WriteString(fmt.Sprintf("\n - Field '%s': Failed on '%s' validation (value: '%v')", fe.Namespace(), fe.Tag(), fe.Value()))
	}
	return errors.NewUserFacing(errors.CodeConfigValidation, details.String(), "Please check your configuration file or flags.")
}

func stringToSeverityHook() mapstructure.DecodeHookFuncType {
	return func(from reflect.Type, to reflect.Type, data any) (any, error) {
		if from.Kind() != reflect.String || to != reflect.TypeOf(domain.Severity(0)) {
			return data, nil
		}
		return domain.ParseSeverity(reflect.ValueOf(data).String())
	}
}

// stringToFieldKindsHook splits "level,message" before elements are decoded;
// left alone, mapstructure would decode the string byte by byte.
func stringToFieldKindsHook() mapstructure.DecodeHookFuncType {
	return func(from reflect.Type, to reflect.Type, data any) (any, error) {
		if from.Kind() != reflect.String || to != reflect.TypeOf([]domain.FieldKind(nil)) {
			return data, nil
		}
		kinds := []domain.FieldKind{}
		for _, name := range strings.Split(reflect.ValueOf(data).String(), ",") {
			if name = strings.TrimSpace(name); name == "" {
				continue
			}
			kind, err := domain.ParseFieldKind(name)
			if err != nil {
				return nil, err
			}
			kinds = append(kinds, kind)
		}
		return kinds, nil
	}
}

func stringToFieldKindHook() mapstructure.DecodeHookFuncType {
	return func(from reflect.Type, to reflect.Type, data any) (any, error) {
		if from.Kind() != reflect.String || to != reflect.TypeOf(domain.FieldKind(0)) {
			return data, nil
		}
		return domain.ParseFieldKind(reflect.ValueOf(data).String())
	}
}
