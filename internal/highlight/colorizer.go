package highlight

import (
	"io"
	"os"
	"strconv"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/olusolaa/colorful-logging/internal/core/domain"
)

type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

var knownCodes = []domain.ColorCode{
	domain.ColorRed,
	domain.ColorGreen,
	domain.ColorYellow,
	domain.ColorBlue,
	domain.ColorMagenta,
	domain.ColorCyan,
	domain.ColorDefault,
}

// Colorizer applies resolved colors to rendered text. The painters are
// built once; Paint only reads them, so a Colorizer may be shared.
type Colorizer struct {
	enabled  bool
	painters map[domain.ColorCode]*color.Color
}

func NewColorizer(mode ColorMode, w io.Writer) *Colorizer {
	enabled := false
	switch mode {
	case ColorAlways:
		enabled = true
	case ColorNever:
		enabled = false
	default:
		enabled = isTerminal(w) && os.Getenv("NO_COLOR") == ""
	}

	painters := make(map[domain.ColorCode]*color.Color, len(knownCodes))
	for _, code := range knownCodes {
		painters[code] = newPainter(code, enabled)
	}
	return &Colorizer{enabled: enabled, painters: painters}
}

func newPainter(code domain.ColorCode, enabled bool) *color.Color {
	n, _ := strconv.Atoi(string(code))
	c := color.New(color.Attribute(n))
	if enabled {
		c.EnableColor()
	} else {
		c.DisableColor()
	}
	return c
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(interface{ Fd() uintptr })
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func (c *Colorizer) Enabled() bool {
	return c.enabled
}

// Paint wraps text in the color Resolve picks for field at sev, followed by
// a reset. With color disabled the text is returned untouched.
func (c *Colorizer) Paint(field domain.FieldKind, sev domain.Severity, text string) string {
	return c.PaintCode(Resolve(field, sev), text)
}

func (c *Colorizer) PaintCode(code domain.ColorCode, text string) string {
	if !c.enabled {
		return text
	}
	if p, ok := c.painters[code]; ok {
		return p.Sprint(text)
	}
	return code.Sequence() + text + domain.ResetSequence
}
