package log

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/olusolaa/colorful-logging/internal/core/domain"
	"github.com/olusolaa/colorful-logging/internal/highlight"
)

// Attribute keys that name the emitting component instead of being printed
// as key=value pairs.
const (
	ComponentKey = "component"
	loggerKey    = "logger"
)

type ConsoleOptions struct {
	Level            slog.Leveler
	Pattern          *Pattern
	Colorizer        *highlight.Colorizer
	TimeFormat       string
	DefaultComponent string
	// Highlight selects the fields that get colored. Nil means all of them.
	Highlight []domain.FieldKind
}

// ConsoleHandler is an slog.Handler that renders one human-oriented line per
// record, coloring the level, message and component fields by severity.
type ConsoleHandler struct {
	opts      ConsoleOptions
	highlight [3]bool
	w         io.Writer
	mu        *sync.Mutex

	component string
	prefix    string
	preAttrs  []slog.Attr
}

func NewConsoleHandler(w io.Writer, opts ConsoleOptions) *ConsoleHandler {
	if opts.Level == nil {
		opts.Level = slog.LevelInfo
	}
	if opts.Pattern == nil {
		opts.Pattern = MustParsePattern(DefaultPattern)
	}
	if opts.Colorizer == nil {
		opts.Colorizer = highlight.NewColorizer(highlight.ColorAuto, w)
	}
	if opts.TimeFormat == "" {
		opts.TimeFormat = DefaultTimeFormat
	}
	if opts.DefaultComponent == "" {
		opts.DefaultComponent = DefaultComponent
	}

	h := &ConsoleHandler{opts: opts, w: w, mu: &sync.Mutex{}}
	fields := opts.Highlight
	if fields == nil {
		fields = domain.FieldKinds()
	}
	for _, f := range fields {
		if int(f) < len(h.highlight) {
			h.highlight[f] = true
		}
	}
	return h
}

func (h *ConsoleHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.opts.Level.Level()
}

func (h *ConsoleHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return h
	}
	h2 := h.clone()
	for _, a := range attrs {
		if h2.prefix == "" && isComponentKey(a.Key) {
			h2.component = a.Value.Resolve().String()
			continue
		}
		a.Key = h2.prefix + a.Key
		h2.preAttrs = append(h2.preAttrs, a)
	}
	return h2
}

func (h *ConsoleHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	h2 := h.clone()
	h2.prefix = h.prefix + name + "."
	return h2
}

func (h *ConsoleHandler) clone() *ConsoleHandler {
	h2 := *h
	h2.preAttrs = append([]slog.Attr(nil), h.preAttrs...)
	return &h2
}

func (h *ConsoleHandler) Handle(_ context.Context, r slog.Record) error {
	sev := domain.SeverityFromSlog(r.Level)

	component := h.component
	attrs := make([]slog.Attr, 0, len(h.preAttrs)+r.NumAttrs())
	attrs = append(attrs, h.preAttrs...)
	r.Attrs(func(a slog.Attr) bool {
		if h.prefix == "" && isComponentKey(a.Key) {
			component = a.Value.Resolve().String()
			return true
		}
		a.Key = h.prefix + a.Key
		attrs = append(attrs, a)
		return true
	})
	if component == "" {
		component = h.opts.DefaultComponent
	}

	var buf bytes.Buffer
	for _, seg := range h.opts.Pattern.segments {
		switch seg.kind {
		case dirLiteral:
			buf.WriteString(seg.literal)
		case dirTime:
			if !r.Time.IsZero() {
				buf.WriteString(pad(r.Time.Format(h.opts.TimeFormat), seg.width, seg.leftAlign))
			}
		case dirLevel:
			buf.WriteString(h.paint(domain.FieldLevel, sev, pad(levelLabel(r.Level), seg.width, seg.leftAlign)))
		case dirMessage:
			buf.WriteString(h.paint(domain.FieldMessage, sev, pad(r.Message, seg.width, seg.leftAlign)))
		case dirComponent:
			buf.WriteString(h.paint(domain.FieldComponent, sev, pad(component, seg.width, seg.leftAlign)))
		case dirAttrs:
			writeAttrs(&buf, attrs)
		}
	}

	line := bytes.TrimRight(buf.Bytes(), " ")
	if len(line) == 0 || line[len(line)-1] != '\n' {
		line = append(line, '\n')
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := h.w.Write(line)
	return err
}

func (h *ConsoleHandler) paint(field domain.FieldKind, sev domain.Severity, text string) string {
	if !h.highlight[field] {
		return text
	}
	return h.opts.Colorizer.Paint(field, sev, text)
}

func isComponentKey(key string) bool {
	return key == ComponentKey || key == loggerKey
}

// levelLabel names the exact slog level, using TRACE and OFF for the two
// levels slog has no name for.
func levelLabel(level slog.Level) string {
	sev := domain.SeverityFromSlog(level)
	if sev.SlogLevel() == level {
		return sev.String()
	}
	return level.String()
}

func writeAttrs(buf *bytes.Buffer, attrs []slog.Attr) {
	first := true
	var write func(prefix string, a slog.Attr)
	write = func(prefix string, a slog.Attr) {
		v := a.Value.Resolve()
		if a.Equal(slog.Attr{}) {
			return
		}
		if v.Kind() == slog.KindGroup {
			groupPrefix := prefix
			if a.Key != "" {
				groupPrefix = prefix + a.Key + "."
			}
			for _, ga := range v.Group() {
				write(groupPrefix, ga)
			}
			return
		}
		if !first {
			buf.WriteByte(' ')
		}
		first = false
		buf.WriteString(prefix)
		buf.WriteString(a.Key)
		buf.WriteByte('=')
		buf.WriteString(formatValue(v))
	}
	for _, a := range attrs {
		write("", a)
	}
}

func formatValue(v slog.Value) string {
	var s string
	switch v.Kind() {
	case slog.KindString:
		s = v.String()
	case slog.KindTime:
		s = v.Time().Format(time.RFC3339)
	case slog.KindAny:
		if err, ok := v.Any().(error); ok {
			s = err.Error()
		} else {
			s = v.String()
		}
	default:
		return v.String()
	}
	if s == "" || strings.ContainsAny(s, " \t\n\"=") {
		return strconv.Quote(s)
	}
	return s
}
