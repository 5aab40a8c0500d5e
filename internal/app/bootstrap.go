package app

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/viper"

	"github.com/olusolaa/colorful-logging/internal/config"
	"github.com/olusolaa/colorful-logging/internal/core/ports"
	"github.com/olusolaa/colorful-logging/internal/core/service"
	"github.com/olusolaa/colorful-logging/internal/demo"
	"github.com/olusolaa/colorful-logging/internal/errors"
	"github.com/olusolaa/colorful-logging/internal/log"
	"github.com/olusolaa/colorful-logging/internal/reporting/json"
	"github.com/olusolaa/colorful-logging/internal/reporting/text"
)

type Application struct {
	Config   *config.Config
	Logger   ports.Logger
	Demo     *demo.Service
	Registry *service.ScenarioRegistry
	Runner   *service.Runner
	Reporter ports.Reporter
}

type bootstrapOptions struct {
	logWriter    io.Writer
	reportWriter io.Writer
	clock        demo.Clock
}

type Option func(*bootstrapOptions)

// WithLogWriter sends log output to w instead of settings.output.
func WithLogWriter(w io.Writer) Option {
	return func(o *bootstrapOptions) { o.logWriter = w }
}

func WithReportWriter(w io.Writer) Option {
	return func(o *bootstrapOptions) { o.reportWriter = w }
}

func WithClock(c demo.Clock) Option {
	return func(o *bootstrapOptions) { o.clock = c }
}

// Bootstrap loads configuration from v and wires the logger, demo service,
// scenario registry, runner and reporter.
func Bootstrap(ctx context.Context, v *viper.Viper, opts ...Option) (*Application, error) {
	var o bootstrapOptions
	for _, opt := range opts {
		opt(&o)
	}

	cfg, err := config.Load(v)
	if err != nil {
		return nil, err
	}

	logger, err := buildLogger(cfg, o.logWriter)
	if err != nil {
		return nil, errors.Wrap(err, errors.CodeInternal, "logger initialization failed")
	}
	logger.Debugf(ctx, "Logger initialized (Level: %s, Format: %s, Color: %s)", cfg.Settings.LogLevel, cfg.Settings.LogFormat, cfg.Settings.Color)
	if used := v.ConfigFileUsed(); used != "" {
		logger.Debugf(ctx, "Using configuration file: %s", used)
	} else {
		logger.Debugf(ctx, "No configuration file found, using defaults/env/flags.")
	}

	clock := o.clock
	if clock == nil {
		clock = demo.NewClock(cfg.Demo.StepDelayScale)
	}
	demoSvc := demo.NewService(logger,
		demo.WithClock(clock),
		demo.WithSeed(cfg.Demo.Seed),
		demo.WithWarningChance(cfg.Demo.WarningChance),
	)

	registry := service.NewScenarioRegistry()
	if err := registerScenarios(registry, demoSvc); err != nil {
		return nil, err
	}
	logger.Debugf(ctx, "Registered scenarios: %s", strings.Join(registry.Names(), ", "))

	runner, err := service.NewRunner(registry, logger.WithFields(map[string]any{"component": "runner"}))
	if err != nil {
		return nil, errors.Wrap(err, errors.CodeInternal, "failed to initialize scenario runner")
	}

	reporter, err := buildReporter(ctx, cfg, logger, o.reportWriter)
	if err != nil {
		return nil, err
	}

	logger.Debugf(ctx, "Application bootstrap complete")
	return &Application{
		Config:   cfg,
		Logger:   logger,
		Demo:     demoSvc,
		Registry: registry,
		Runner:   runner,
		Reporter: reporter,
	}, nil
}

func buildLogger(cfg *config.Config, w io.Writer) (ports.Logger, error) {
	if w != nil {
		return log.NewLoggerTo(cfg.LogConfig(), w)
	}
	return log.NewLogger(cfg.LogConfig())
}

// registerScenarios exposes each demo flow by name. The level names run the
// matching sample set.
func registerScenarios(registry *service.ScenarioRegistry, svc *demo.Service) error {
	scenarios := []ports.Scenario{
		service.NewScenario("levels", func(ctx context.Context) error {
			svc.DemonstrateAllLevels(ctx)
			return nil
		}),
		service.NewScenario("business", func(ctx context.Context) error {
			_, err := svc.PerformBusinessOperation(ctx)
			return err
		}),
		service.NewScenario("simulate-error", svc.SimulateErrorScenario),
		service.NewScenario("packages", func(ctx context.Context) error {
			svc.DemonstratePackageLogging(ctx)
			return nil
		}),
	}
	for _, level := range []string{"all", "error", "warn", "info", "debug", "trace"} {
		scenarios = append(scenarios, service.NewScenario(level, func(ctx context.Context) error {
			_, err := svc.DemonstrateLevel(ctx, level)
			return err
		}))
	}

	for _, s := range scenarios {
		if err := registry.Register(s); err != nil {
			return err
		}
	}
	return nil
}

func buildReporter(ctx context.Context, cfg *config.Config, logger ports.Logger, w io.Writer) (ports.Reporter, error) {
	switch cfg.Report.Output {
	case text.ReporterTypeText, "":
		reportLog := logger.WithFields(map[string]any{"component": "reporter", "type": text.ReporterTypeText})
		reporter, err := text.NewReporter(text.Config{NoColor: cfg.Report.NoColor, Color: cfg.Settings.Color}, reportLog, text.WithWriter(w))
		if err != nil {
			return nil, errors.Wrap(err, errors.CodeInternal, "failed to initialize Text reporter")
		}
		reportLog.Debugf(ctx, "Using Text reporter (Color: %t)", !cfg.Report.NoColor)
		return reporter, nil
	case json.ReporterTypeJSON:
		reportLog := logger.WithFields(map[string]any{"component": "reporter", "type": json.ReporterTypeJSON})
		reporter, err := json.NewReporter(json.Config{Compact: cfg.Report.Compact}, reportLog, json.WithWriter(w))
		if err != nil {
			return nil, errors.Wrap(err, errors.CodeInternal, "failed to initialize JSON reporter")
		}
		reportLog.Debugf(ctx, "Using JSON reporter (Compact: %t)", cfg.Report.Compact)
		return reporter, nil
	default:
		return nil, errors.NewUserFacing(errors.CodeConfigValidation,
			fmt.Sprintf("unsupported reporter type: %s", cfg.Report.Output), "Supported: text, json")
	}
}
