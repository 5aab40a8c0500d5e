package json

import (
	"context"
	"io"
	"os"
	"sort"

	jsoniter "github.com/json-iterator/go"

	"github.com/olusolaa/colorful-logging/internal/core/domain"
	"github.com/olusolaa/colorful-logging/internal/core/ports"
	apperrors "github.com/olusolaa/colorful-logging/internal/errors"
)

const ReporterTypeJSON = "json"

var codec = jsoniter.ConfigCompatibleWithStandardLibrary

type Config struct {
	Compact bool `mapstructure:"compact"`
}

type Reporter struct {
	config Config
	writer io.Writer
	logger ports.Logger
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
		return nil, apperrors.New(apperrors.CodeInternal, "json reporter requires a logger")
	}
	r := &Reporter{
		config: cfg,
		writer: os.Stdout,
		logger: logger,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r, nil
}

type jsonReport struct {
	Summary jsonSummary `json:"summary"`
	Entries []jsonEntry `json:"entries"`
}

type jsonSummary struct {
	TotalEntries int            `json:"total_entries"`
	Fields       []string       `json:"fields"`
	Colors       map[string]int `json:"colors"`
}

type jsonEntry struct {
	Field    domain.FieldKind `json:"field"`
	Severity string           `json:"severity,omitempty"`
	Color    string           `json:"color"`
	Code     string           `json:"code"`
	Sequence string           `json:"sequence"`
}

func (r *Reporter) Report(ctx context.Context, entries []domain.PaletteEntry) error {
	report := jsonReport{
		Summary: jsonSummary{
			TotalEntries: len(entries),
			Fields:       []string{},
			Colors:       make(map[string]int),
		},
		Entries: make([]jsonEntry, 0, len(entries)),
	}

	seenFields := make(map[domain.FieldKind]bool)
	for _, e := range entries {
		if ctx.Err() != nil {
			r.logger.Warnf(ctx, "JSON report generation cancelled.")
			return ctx.Err()
		}
		if !seenFields[e.Field] {
			seenFields[e.Field] = true
			report.Summary.Fields = append(report.Summary.Fields, e.Field.String())
		}
		report.Summary.Colors[e.Color.Name()]++
		report.Entries = append(report.Entries, jsonEntry{
			Field:    e.Field,
			Severity: e.Severity.String(),
			Color:    e.Color.Name(),
			Code:     string(e.Color),
			Sequence: e.Color.Sequence(),
		})
	}
	sort.Strings(report.Summary.Fields)

	encoder := codec.NewEncoder(r.writer)
	if !r.config.Compact {
		encoder.SetIndent("", "  ")
	}
	if err := encoder.Encode(report); err != nil {
		r.logger.Errorf(ctx, err, "Failed to encode JSON report")
		return apperrors.Wrap(err, apperrors.CodeReportError, "failed to encode JSON report")
	}

	r.logger.Debugf(ctx, "JSON report successfully generated.")
	return nil
}
