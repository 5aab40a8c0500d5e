package log

import (
	"github.com/olusolaa/colorful-logging/internal/core/domain"
	"github.com/olusolaa/colorful-logging/internal/highlight"
)

type Format string

const (
	FormatConsole Format = "console"
	FormatText    Format = "text"
	FormatJSON    Format = "json"
)

type Output string

const (
	OutputStderr Output = "stderr"
	OutputStdout Output = "stdout"
)

const (
	DefaultPattern    = "%time %-5level [%component] %message %attrs"
	DefaultTimeFormat = "15:04:05.000"
	DefaultComponent  = "main"
)

type Config struct {
	Level  domain.Severity
	Format Format
	Output Output

	// Console format only.
	Color            highlight.ColorMode
	Pattern          string
	TimeFormat       string
	DefaultComponent string
	Highlight        []domain.FieldKind
}

func DefaultConfig() Config {
	return Config{
		Level:            domain.SeverityInfo,
		Format:           FormatConsole,
		Output:           OutputStderr,
		Color:            highlight.ColorAuto,
		Pattern:          DefaultPattern,
		TimeFormat:       DefaultTimeFormat,
		DefaultComponent: DefaultComponent,
		Highlight:        domain.FieldKinds(),
	}
}
