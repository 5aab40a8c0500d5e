package domain

import (
	"fmt"
	"log/slog"
	"math"
	"strings"

	"github.com/olusolaa/colorful-logging/internal/errors"
)

// Severity is the urgency of a log record, ordered TRACE < DEBUG < INFO < WARN < ERROR.
// The zero value means the record carries no level at all.
type Severity int8

const (
	SeverityUnset Severity = iota
	SeverityTrace
	SeverityDebug
	SeverityInfo
	SeverityWarn
	SeverityError
)

// Pseudo-levels that logging frameworks use as thresholds. They are never
// attached to an emitted record on purpose but may still reach a formatter.
const (
	SeverityAll Severity = math.MinInt8
	SeverityOff Severity = math.MaxInt8
)

const (
	LevelTrace = slog.Level(-8)
	LevelOff   = slog.Level(math.MaxInt32)
)

var severityNames = [...]string{
	SeverityUnset: "",
	SeverityTrace: "TRACE",
	SeverityDebug: "DEBUG",
	SeverityInfo:  "INFO",
	SeverityWarn:  "WARN",
	SeverityError: "ERROR",
}

func (s Severity) String() string {
	switch {
	case s == SeverityAll:
		return "ALL"
	case s == SeverityOff:
		return "OFF"
	case s >= SeverityUnset && int(s) < len(severityNames):
		return severityNames[s]
	default:
		return fmt.Sprintf("Severity(%d)", int8(s))
	}
}

// IsDefined reports whether s is one of the five real levels.
func (s Severity) IsDefined() bool {
	return s >= SeverityTrace && s <= SeverityError
}

// Severities returns the defined levels in ascending order.
func Severities() []Severity {
	return []Severity{SeverityTrace, SeverityDebug, SeverityInfo, SeverityWarn, SeverityError}
}

func ParseSeverity(name string) (Severity, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "trace":
		return SeverityTrace, nil
	case "debug":
		return SeverityDebug, nil
	case "info":
		return SeverityInfo, nil
	case "warn", "warning":
		return SeverityWarn, nil
	case "error", "err":
		return SeverityError, nil
	case "all":
		return SeverityAll, nil
	case "off":
		return SeverityOff, nil
	default:
		return SeverityUnset, errors.NewUserFacing(errors.CodeInvalidSeverity,
			fmt.Sprintf("unknown log level %q", name),
			"Use one of: trace, debug, info, warn, error.")
	}
}

func (s Severity) MarshalText() ([]byte, error) {
	return []byte(strings.ToLower(s.String())), nil
}

func (s *Severity) UnmarshalText(text []byte) error {
	if len(text) == 0 {
		*s = SeverityUnset
		return nil
	}
	parsed, err := ParseSeverity(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// SeverityFromSlog maps an slog level onto the band it falls in. Levels between
// the named ones (INFO+2 and the like) take the band of the level below them.
func SeverityFromSlog(level slog.Level) Severity {
	switch {
	case level == LevelOff:
		return SeverityOff
	case level >= slog.LevelError:
		return SeverityError
	case level >= slog.LevelWarn:
		return SeverityWarn
	case level >= slog.LevelInfo:
		return SeverityInfo
	case level >= slog.LevelDebug:
		return SeverityDebug
	case level >= LevelTrace:
		return SeverityTrace
	default:
		return SeverityAll
	}
}

// SlogLevel is the inverse of SeverityFromSlog for defined levels and the
// two sentinels. Unset and unrecognized values map to slog.LevelInfo, the
// slog zero value.
func (s Severity) SlogLevel() slog.Level {
	switch s {
	case SeverityTrace:
		return LevelTrace
	case SeverityDebug:
		return slog.LevelDebug
	case SeverityWarn:
		return slog.LevelWarn
	case SeverityError:
		return slog.LevelError
	case SeverityAll:
		return slog.Level(math.MinInt32)
	case SeverityOff:
		return LevelOff
	default:
		return slog.LevelInfo
	}
}
