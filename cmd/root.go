package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/olusolaa/colorful-logging/internal/app"
	apperrors "github.com/olusolaa/colorful-logging/internal/errors"
)

const (
	envPrefix      = "COLORLOG"
	configFileName = ".colorlog"
)

type cli struct {
	viper   *viper.Viper
	cfgFile string
	envFile string
	stdout  io.Writer
	stderr  io.Writer

	// Extra bootstrap options, used by tests to capture output.
	appOptions []app.Option
}

func newCLI(stdout, stderr io.Writer, opts ...app.Option) *cli {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return &cli{viper: v, stdout: stdout, stderr: stderr, appOptions: opts}
}

func (c *cli) rootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "colorlog",
		Short: "Demonstrates severity-based coloring of console log lines.",
		Long: `colorlog renders log records with the level, message and component
colored by severity: ERROR red, WARN yellow, INFO green, DEBUG blue and
TRACE magenta, with component names cyan unless the record is a warning or
an error. Run without a command to print the banner and every level.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return c.initializeConfig()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.withApp(cmd.Context(), func(ctx context.Context, a *app.Application) error {
				return a.RunDefault(ctx)
			})
		},
	}

	flags := root.PersistentFlags()
	flags.StringVarP(&c.cfgFile, "config", "c", "", "Configuration file path (default is .colorlog.yaml in the working or home directory)")
	flags.StringVar(&c.envFile, "env-file", ".env", "Dotenv file with COLORLOG_* variables, loaded if present")
	flags.String("log-level", "", "Minimum level to emit (trace, debug, info, warn, error, all, off)")
	flags.String("log-format", "", "Log format (console, text, json)")
	flags.String("color", "", "Color mode for console output (auto, always, never)")
	flags.String("pattern", "", "Console line pattern, e.g. '%time %-5level [%component] %message'")

	_ = c.viper.BindPFlag("settings.log_level", flags.Lookup("log-level"))
	_ = c.viper.BindPFlag("settings.log_format", flags.Lookup("log-format"))
	_ = c.viper.BindPFlag("settings.color", flags.Lookup("color"))
	_ = c.viper.BindPFlag("settings.pattern", flags.Lookup("pattern"))

	root.AddCommand(
		c.demoCommand(),
		c.businessCommand(),
		c.simulateErrorCommand(),
		c.packagesCommand(),
		c.runCommand(),
		c.levelsCommand(),
		c.burstCommand(),
	)
	return root
}

func (c *cli) initializeConfig() error {
	// Variables already set in the environment win over the file.
	if c.envFile != "" {
		if err := godotenv.Load(c.envFile); err != nil && !os.IsNotExist(err) {
			return apperrors.WrapUserFacing(err, apperrors.CodeConfigReadError, "failed to read env file "+c.envFile, "Check the file uses KEY=value lines.")
		}
	}

	if c.cfgFile != "" {
		c.viper.SetConfigFile(c.cfgFile)
	} else {
		c.viper.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			c.viper.AddConfigPath(home)
		}
		c.viper.SetConfigName(configFileName)
		c.viper.SetConfigType("yaml")
	}

	if err := c.viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) && c.cfgFile == "" {
			return nil
		}
		return apperrors.WrapUserFacing(err, apperrors.CodeConfigReadError, "failed to read config file", "Check that the file exists and is valid YAML.")
	}
	return nil
}

// withApp bootstraps the application and runs fn, printing user-facing
// errors to stderr.
func (c *cli) withApp(ctx context.Context, fn func(ctx context.Context, a *app.Application) error) error {
	a, err := app.Bootstrap(ctx, c.viper, c.appOptions...)
	if err != nil {
		fmt.Fprintf(c.stderr, "ERROR: Application initialization failed: %v\n", err)
		c.printSuggestion(err)
		return reportedError{err}
	}
	if err := fn(ctx, a); err != nil {
		c.printError(err)
		return reportedError{err}
	}
	return nil
}

// reportedError marks an error already printed to stderr.
type reportedError struct{ err error }

func (e reportedError) Error() string { return e.err.Error() }
func (e reportedError) Unwrap() error { return e.err }

func (c *cli) printError(err error) {
	userMsg, _, _ := apperrors.GetUserFacingMessage(err)
	fmt.Fprintf(c.stderr, "ERROR: %s\n", userMsg)
	c.printSuggestion(err)
}

func (c *cli) printSuggestion(err error) {
	if _, suggestion, _ := apperrors.GetUserFacingMessage(err); suggestion != "" {
		fmt.Fprintf(c.stderr, "Suggestion: %s\n", suggestion)
	}
}

func (c *cli) execute(ctx context.Context, args []string) error {
	root := c.rootCommand()
	root.SetArgs(args)
	root.SetOut(c.stdout)
	root.SetErr(c.stderr)
	err := root.ExecuteContext(ctx)
	if err == nil {
		return nil
	}
	var reported reportedError
	var appErr *apperrors.AppError
	switch {
	case errors.As(err, &reported):
	case errors.As(err, &appErr):
		c.printError(err)
	default:
		fmt.Fprintf(c.stderr, "ERROR: %v\n", err)
	}
	return err
}

// Execute runs the CLI and returns the process exit code.
func Execute(ctx context.Context, args []string) int {
	if err := newCLI(os.Stdout, os.Stderr).execute(ctx, args); err != nil {
		return 1
	}
	return 0
}
