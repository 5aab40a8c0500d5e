package domain

// ColorCode is an SGR foreground parameter. Wrap text as Sequence()+text+reset.
type ColorCode string

const (
	ColorRed     ColorCode = "31"
	ColorGreen   ColorCode = "32"
	ColorYellow  ColorCode = "33"
	ColorBlue    ColorCode = "34"
	ColorMagenta ColorCode = "35"
	ColorCyan    ColorCode = "36"
	ColorDefault ColorCode = "39"
)

const ResetSequence = "\x1b[0m"

func (c ColorCode) Sequence() string {
	return "\x1b[" + string(c) + "m"
}

func (c ColorCode) Name() string {
	switch c {
	case ColorRed:
		return "red"
	case ColorGreen:
		return "green"
	case ColorYellow:
		return "yellow"
	case ColorBlue:
		return "blue"
	case ColorMagenta:
		return "magenta"
	case ColorCyan:
		return "cyan"
	case ColorDefault:
		return "default"
	default:
		return "sgr(" + string(c) + ")"
	}
}

func (c ColorCode) String() string {
	return c.Name()
}

// PaletteEntry is one resolved (field, severity) cell.
type PaletteEntry struct {
	Field    FieldKind
	Severity Severity
	Color    ColorCode
}
