package main

import (
	"context"
	"fmt"
	"io"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/spf13/cobra"

	"github.com/olusolaa/colorful-logging/internal/app"
	"github.com/olusolaa/colorful-logging/internal/core/domain"
	"github.com/olusolaa/colorful-logging/internal/core/service"
	"github.com/olusolaa/colorful-logging/internal/errors"
)

func (c *cli) demoCommand() *cobra.Command {
	var level string
	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Log sample lines for one level, or for every level",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.withApp(cmd.Context(), func(ctx context.Context, a *app.Application) error {
				res, err := a.Demo.DemonstrateLevel(ctx, level)
				if err != nil {
					return err
				}
				return printJSON(c.stdout, res)
			})
		},
	}
	cmd.Flags().StringVarP(&level, "level", "l", "all", "Level to demonstrate (error, warn, info, debug, trace, all)")
	return cmd
}

func (c *cli) businessCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "business",
		Short: "Run a simulated business operation with step timings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.withApp(cmd.Context(), func(ctx context.Context, a *app.Application) error {
				res, err := a.Demo.PerformBusinessOperation(ctx)
				if err != nil {
					return err
				}
				return printJSON(c.stdout, res)
			})
		},
	}
}

func (c *cli) simulateErrorCommand() *cobra.Command {
	return c.scenarioCommand("simulate-error", "Trigger a simulated failure and exit non-zero")
}

func (c *cli) packagesCommand() *cobra.Command {
	return c.scenarioCommand("packages", "Log from several components to show component-name coloring")
}

func (c *cli) scenarioCommand(name, short string) *cobra.Command {
	return &cobra.Command{
		Use:   name,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.withApp(cmd.Context(), func(ctx context.Context, a *app.Application) error {
				return a.RunScenario(ctx, name)
			})
		},
	}
}

func (c *cli) runCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "run SCENARIO...",
		Short: "Run registered scenarios in order",
		Long: `Run one or more registered scenarios in order, stopping at the first failure.
Scenarios: all, business, debug, error, info, levels, packages, simulate-error, trace, warn.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.withApp(cmd.Context(), func(ctx context.Context, a *app.Application) error {
				for _, name := range args {
					if err := a.RunScenario(ctx, name); err != nil {
						return err
					}
				}
				return nil
			})
		},
	}
}

func (c *cli) levelsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "levels",
		Short: "Print the field and severity to color table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.withApp(cmd.Context(), func(ctx context.Context, a *app.Application) error {
				return a.ReportPalette(ctx)
			})
		},
	}
	cmd.Flags().StringP("output", "o", "", "Report format (text, json)")
	cmd.Flags().Bool("no-color", false, "Disable colors in the text report")
	cmd.Flags().Bool("compact", false, "Write the JSON report on a single line")
	_ = c.viper.BindPFlag("report.output", cmd.Flags().Lookup("output"))
	_ = c.viper.BindPFlag("report.no_color", cmd.Flags().Lookup("no-color"))
	_ = c.viper.BindPFlag("report.compact", cmd.Flags().Lookup("compact"))
	return cmd
}

func (c *cli) burstCommand() *cobra.Command {
	var override service.BurstConfig
	cmd := &cobra.Command{
		Use:   "burst",
		Short: "Emit records from many goroutines at once",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.withApp(cmd.Context(), func(ctx context.Context, a *app.Application) error {
				stats, err := a.Burst(ctx, override)
				if err != nil {
					return err
				}
				return printBurstStats(c.stdout, stats)
			})
		},
	}
	cmd.Flags().IntVarP(&override.Workers, "workers", "w", 0, "Concurrent workers (default from burst.workers)")
	cmd.Flags().IntVarP(&override.Events, "events", "n", 0, "Events per worker (default from burst.events)")
	cmd.Flags().IntVarP(&override.Rate, "rate", "r", 0, "Events per second across all workers (default from burst.rate)")
	return cmd
}

func printJSON(w io.Writer, v any) error {
	out, err := jsoniter.ConfigCompatibleWithStandardLibrary.MarshalIndent(v, "", "  ")
	if err != nil {
		return errors.Wrap(err, errors.CodeReportError, "failed to encode result")
	}
	_, err = fmt.Fprintln(w, string(out))
	return err
}

func printBurstStats(w io.Writer, stats service.BurstStats) error {
	parts := make([]string, 0, len(stats.PerSeverity))
	for _, sev := range domain.Severities() {
		parts = append(parts, fmt.Sprintf("%s=%d", sev, stats.PerSeverity[sev]))
	}
	_, err := fmt.Fprintf(w, "Burst %s emitted %d events (%s)\n", stats.RunID, stats.Emitted, strings.Join(parts, " "))
	return err
}
