package log

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/olusolaa/colorful-logging/internal/errors"
)

// MaxPatternWidth bounds the padding width of a single directive.
const MaxPatternWidth = 1024

type directive uint8

const (
	dirLiteral directive = iota
	dirTime
	dirLevel
	dirMessage
	dirComponent
	dirAttrs
)

var directiveNames = map[string]directive{
	"time":      dirTime,
	"date":      dirTime,
	"d":         dirTime,
	"level":     dirLevel,
	"p":         dirLevel,
	"message":   dirMessage,
	"msg":       dirMessage,
	"m":         dirMessage,
	"component": dirComponent,
	"logger":    dirComponent,
	"c":         dirComponent,
	"attrs":     dirAttrs,
	"kv":        dirAttrs,
}

type segment struct {
	kind      directive
	literal   string
	width     int
	leftAlign bool
}

// Pattern is a compiled console line layout, e.g. "%time %-5level [%component] %message".
// Widths follow the logback convention: %-5level pads on the right, %20component on the left.
type Pattern struct {
	source   string
	segments []segment
}

func ParsePattern(src string) (*Pattern, error) {
	p := &Pattern{source: src}
	var lit strings.Builder

	flush := func() {
		if lit.Len() > 0 {
			p.segments = append(p.segments, segment{kind: dirLiteral, literal: lit.String()})
			lit.Reset()
		}
	}

	for i := 0; i < len(src); {
		c := src[i]
		if c != '%' {
			lit.WriteByte(c)
			i++
			continue
		}
		start := i
		i++
		if i >= len(src) {
			return nil, patternError(src, start, "dangling '%'")
		}
		if src[i] == '%' {
			lit.WriteByte('%')
			i++
			continue
		}

		seg := segment{}
		if src[i] == '-' {
			seg.leftAlign = true
			i++
		}
		for i < len(src) && src[i] >= '0' && src[i] <= '9' {
			seg.width = seg.width*10 + int(src[i]-'0')
			if seg.width > MaxPatternWidth {
				return nil, patternError(src, start, fmt.Sprintf("width exceeds %d", MaxPatternWidth))
			}
			i++
		}
		nameStart := i
		for i < len(src) && src[i] >= 'a' && src[i] <= 'z' {
			i++
		}
		name := src[nameStart:i]
		if name == "" {
			return nil, patternError(src, start, "missing directive name")
		}
		if name == "n" {
			lit.WriteByte('\n')
			continue
		}
		kind, ok := directiveNames[name]
		if !ok {
			return nil, patternError(src, start, fmt.Sprintf("unknown directive %%%s", name))
		}
		seg.kind = kind
		flush()
		p.segments = append(p.segments, seg)
	}
	flush()

	if len(p.segments) == 0 {
		return nil, errors.NewUserFacing(errors.CodePatternParse, "log pattern is empty", "Set settings.pattern, for example: "+DefaultPattern)
	}
	return p, nil
}

// MustParsePattern is for patterns known at compile time.
func MustParsePattern(src string) *Pattern {
	p, err := ParsePattern(src)
	if err != nil {
		panic(err)
	}
	return p
}

func (p *Pattern) String() string {
	return p.source
}

func patternError(src string, pos int, reason string) error {
	return errors.NewUserFacing(errors.CodePatternParse,
		fmt.Sprintf("invalid log pattern %q at offset %d: %s", src, pos, reason),
		"Supported directives: %time %level %message %component %attrs %n %%")
}

func pad(s string, width int, leftAlign bool) string {
	n := utf8.RuneCountInString(s)
	if width <= n {
		return s
	}
	fill := strings.Repeat(" ", width-n)
	if leftAlign {
		return s + fill
	}
	return fill + s
}
