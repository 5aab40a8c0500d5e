package text

import (
	"context"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/olusolaa/colorful-logging/internal/core/domain"
	"github.com/olusolaa/colorful-logging/internal/core/ports"
	apperrors "github.com/olusolaa/colorful-logging/internal/errors"
	"github.com/olusolaa/colorful-logging/internal/highlight"
)

const ReporterTypeText = "text"

type Config struct {
	NoColor bool `mapstructure:"no_color"`
	// Color is consulted only when NoColor is false. Empty means auto.
	Color highlight.ColorMode `mapstructure:"-"`
}

type Reporter struct {
	config    Config
	writer    io.Writer
	logger    ports.Logger
	colorizer *highlight.Colorizer
}

type Option func(*Reporter)

func WithWriter(w io.Writer) Option {
	return func(r *Reporter) {
		if w != nil {
			r.writer = w
		}
	}
}

func NewReporter(cfg Config, logger ports.Logger, opts ...Option) (*Reporter, error) {
	if logger == nil {
		return nil, apperrors.New(apperrors.CodeInternal, "text reporter requires a logger")
	}
	r := &Reporter{
		config: cfg,
		writer: os.Stdout,
		logger: logger,
	}
	for _, opt := range opts {
		opt(r)
	}

	mode := cfg.Color
	if mode == "" {
		mode = highlight.ColorAuto
	}
	if cfg.NoColor {
		mode = highlight.ColorNever
	}
	r.colorizer = highlight.NewColorizer(mode, r.writer)
	return r, nil
}

func (r *Reporter) Report(ctx context.Context, entries []domain.PaletteEntry) error {
	if len(entries) == 0 {
		fmt.Fprintln(r.writer, "No palette entries to report.")
		return nil
	}

	sorted := make([]domain.PaletteEntry, len(entries))
	copy(sorted, entries)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Field < sorted[j].Field
	})

	t := table.NewWriter()
	t.SetStyle(table.StyleDefault)
	t.SetTitle("Level Color Palette")
	t.AppendHeader(table.Row{"Field", "Severity", "Color", "SGR", "Sample"})

	usage := make(map[domain.ColorCode]int)
	for _, e := range sorted {
		if ctx.Err() != nil {
			r.logger.Warnf(ctx, "Text report generation cancelled.")
			return ctx.Err()
		}
		usage[e.Color]++
		t.AppendRow(table.Row{
			e.Field.String(),
			severityLabel(e.Severity),
			e.Color.Name(),
			string(e.Color),
			r.colorizer.PaintCode(e.Color, sampleText(e)),
		})
	}

	var out strings.Builder
	out.WriteString(t.Render())
	out.WriteString("\n\nSummary:\n")
	fmt.Fprintf(&out, "  Entries:       %d\n", len(sorted))
	fmt.Fprintf(&out, "  Colors in use: %s\n", r.formatUsage(usage))

	if _, err := io.WriteString(r.writer, out.String()); err != nil {
		r.logger.Errorf(ctx, err, "Failed to write text report")
		return apperrors.Wrap(err, apperrors.CodeReportError, "failed to write text report")
	}
	r.logger.Debugf(ctx, "Text report written: %d entries", len(sorted))
	return nil
}

func (r *Reporter) formatUsage(usage map[domain.ColorCode]int) string {
	codes := make([]domain.ColorCode, 0, len(usage))
	for c := range usage {
		codes = append(codes, c)
	}
	sort.Slice(codes, func(i, j int) bool { return codes[i] < codes[j] })

	parts := make([]string, 0, len(codes))
	for _, c := range codes {
		parts = append(parts, fmt.Sprintf("%s=%d", r.colorizer.PaintCode(c, c.Name()), usage[c]))
	}
	return strings.Join(parts, ", ")
}

func severityLabel(s domain.Severity) string {
	if s == domain.SeverityUnset {
		return "(none)"
	}
	return s.String()
}

func sampleText(e domain.PaletteEntry) string {
	switch e.Field {
	case domain.FieldLevel:
		return severityLabel(e.Severity)
	case domain.FieldComponent:
		return "com.example.service.BusinessService"
	default:
		return "Processing business logic"
	}
}
