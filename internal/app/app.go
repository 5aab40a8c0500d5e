package app

import (
	"context"

	"github.com/olusolaa/colorful-logging/internal/core/service"
	"github.com/olusolaa/colorful-logging/internal/highlight"
)

// RunDefault prints the banner and then every level, the same thing the
// bare binary does when invoked without a command.
func (a *Application) RunDefault(ctx context.Context) error {
	a.Demo.Banner(ctx)
	return a.Runner.Run(ctx, "levels")
}

func (a *Application) RunScenario(ctx context.Context, name string) error {
	return a.Runner.Run(ctx, name)
}

// ReportPalette renders the full resolver palette through the configured reporter.
func (a *Application) ReportPalette(ctx context.Context) error {
	if err := a.Reporter.Report(ctx, highlight.Palette()); err != nil {
		a.Logger.Errorf(ctx, err, "Palette report failed")
		return err
	}
	return nil
}

// Burst runs a concurrent emission burst. Zero fields in override fall back
// to the burst section of the configuration.
func (a *Application) Burst(ctx context.Context, override service.BurstConfig) (service.BurstStats, error) {
	cfg := service.BurstConfig{
		Workers: a.Config.Burst.Workers,
		Events:  a.Config.Burst.Events,
		Rate:    a.Config.Burst.Rate,
	}
	if override.Workers != 0 {
		cfg.Workers = override.Workers
	}
	if override.Events != 0 {
		cfg.Events = override.Events
	}
	if override.Rate != 0 {
		cfg.Rate = override.Rate
	}

	burst, err := service.NewBurst(a.Logger, cfg)
	if err != nil {
		return service.BurstStats{}, err
	}
	return burst.Run(ctx)
}
