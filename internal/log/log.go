package log

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sort"

	"github.com/olusolaa/colorful-logging/internal/core/domain"
	"github.com/olusolaa/colorful-logging/internal/core/ports"
	apperrors "github.com/olusolaa/colorful-logging/internal/errors"
	"github.com/olusolaa/colorful-logging/internal/highlight"
)

type slogAdapter struct {
	logger *slog.Logger
}

func NewLogger(cfg Config) (ports.Logger, error) {
	var out io.Writer = os.Stderr
	if cfg.Output == OutputStdout {
		out = os.Stdout
	}
	return NewLoggerTo(cfg, out)
}

// NewLoggerTo builds a logger writing to w instead of the configured stream.
func NewLoggerTo(cfg Config, w io.Writer) (ports.Logger, error) {
	handler, err := NewHandler(cfg, w)
	if err != nil {
		return nil, err
	}
	return &slogAdapter{logger: slog.New(handler)}, nil
}

func NewHandler(cfg Config, w io.Writer) (slog.Handler, error) {
	level := cfg.Level.SlogLevel()

	opts := &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if len(groups) == 0 && a.Key == slog.LevelKey {
				if lvl, ok := a.Value.Any().(slog.Level); ok {
					a.Value = slog.StringValue(levelLabel(lvl))
				}
			}
			return a
		},
	}

	switch cfg.Format {
	case FormatJSON:
		return slog.NewJSONHandler(w, opts), nil
	case FormatText:
		return slog.NewTextHandler(w, opts), nil
	case FormatConsole, "":
		pattern := cfg.Pattern
		if pattern == "" {
			pattern = DefaultPattern
		}
		compiled, err := ParsePattern(pattern)
		if err != nil {
			return nil, err
		}
		return NewConsoleHandler(w, ConsoleOptions{
			Level:            level,
			Pattern:          compiled,
			Colorizer:        highlight.NewColorizer(cfg.Color, w),
			TimeFormat:       cfg.TimeFormat,
			DefaultComponent: cfg.DefaultComponent,
			Highlight:        cfg.Highlight,
		}), nil
	default:
		return nil, apperrors.NewUserFacing(apperrors.CodeConfigValidation,
			fmt.Sprintf("unsupported log format %q", cfg.Format),
			"Supported: console, text, json")
	}
}

func (s *slogAdapter) log(ctx context.Context, level slog.Level, err error, format string, args ...any) {
	if ctx == nil {
		ctx = context.Background()
	}
	if !s.logger.Enabled(ctx, level) {
		return
	}
	msg := format
	if len(args) > 0 {
		msg = fmt.Sprintf(format, args...)
	}

	attrs := []slog.Attr{}
	if err != nil {
		var appErr *apperrors.AppError
		if errors.As(err, &appErr) {
			attrs = append(attrs, slog.String("error_code", string(appErr.Code)))
			if appErr.InternalDetails != "" {
				attrs = append(attrs, slog.String("error_details", appErr.InternalDetails))
			}
			if appErr.WrappedError != nil {
				attrs = append(attrs, slog.String("error_wrapped", appErr.WrappedError.Error()))
			}
		} else {
			attrs = append(attrs, slog.String("error", err.Error()))
		}
	}

	s.logger.LogAttrs(ctx, level, msg, attrs...)
}

func (s *slogAdapter) Tracef(ctx context.Context, format string, args ...any) {
	s.log(ctx, domain.LevelTrace, nil, format, args...)
}

func (s *slogAdapter) Debugf(ctx context.Context, format string, args ...any) {
	s.log(ctx, slog.LevelDebug, nil, format, args...)
}

func (s *slogAdapter) Infof(ctx context.Context, format string, args ...any) {
	s.log(ctx, slog.LevelInfo, nil, format, args...)
}

func (s *slogAdapter) Warnf(ctx context.Context, format string, args ...any) {
	s.log(ctx, slog.LevelWarn, nil, format, args...)
}

func (s *slogAdapter) Errorf(ctx context.Context, err error, format string, args ...any) {
	s.log(ctx, slog.LevelError, err, format, args...)
}

// WithFields adds fields in key order so derived lines render deterministically.
func (s *slogAdapter) WithFields(fields map[string]any) ports.Logger {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	anyAttrs := make([]any, 0, len(keys))
	for _, k := range keys {
		anyAttrs = append(anyAttrs, slog.Any(k, fields[k]))
	}
	return &slogAdapter{logger: s.logger.With(anyAttrs...)}
}

// Emit logs at sev through l. Unset and sentinel severities log at info.
func Emit(ctx context.Context, l ports.Logger, sev domain.Severity, format string, args ...any) {
	switch sev {
	case domain.SeverityTrace:
		l.Tracef(ctx, format, args...)
	case domain.SeverityDebug:
		l.Debugf(ctx, format, args...)
	case domain.SeverityWarn:
		l.Warnf(ctx, format, args...)
	case domain.SeverityError:
		l.Errorf(ctx, nil, format, args...)
	default:
		l.Infof(ctx, format, args...)
	}
}
