// Package highlight maps log severities to terminal colors.
//
// Resolve is the whole contract: given the field being rendered and the
// record's severity it returns the foreground color to wrap that field in.
// It never fails. Missing, sentinel (ALL, OFF) and unrecognized severities
// fall back to the table's neutral color so a formatter can never emit a
// broken escape sequence because of an odd record.
package highlight

import "github.com/olusolaa/colorful-logging/internal/core/domain"

type colorTable [domain.SeverityError + 1]domain.ColorCode

// Slot SeverityUnset holds the fallback color of each table.
var (
	levelTable = colorTable{
		domain.SeverityUnset: domain.ColorDefault,
		domain.SeverityTrace: domain.ColorMagenta,
		domain.SeverityDebug: domain.ColorBlue,
		domain.SeverityInfo:  domain.ColorGreen,
		domain.SeverityWarn:  domain.ColorYellow,
		domain.SeverityError: domain.ColorRed,
	}

	// Component names stay cyan unless the record is a warning or an error.
	componentTable = colorTable{
		domain.SeverityUnset: domain.ColorCyan,
		domain.SeverityTrace: domain.ColorCyan,
		domain.SeverityDebug: domain.ColorCyan,
		domain.SeverityInfo:  domain.ColorCyan,
		domain.SeverityWarn:  domain.ColorYellow,
		domain.SeverityError: domain.ColorRed,
	}
)

// Resolve returns the color for field at severity sev. Unknown field kinds
// use the level/message table.
func Resolve(field domain.FieldKind, sev domain.Severity) domain.ColorCode {
	table := &levelTable
	if field == domain.FieldComponent {
		table = &componentTable
	}
	if !sev.IsDefined() {
		return table[domain.SeverityUnset]
	}
	return table[sev]
}

// paletteSeverities is the row order used by Palette: absent, ALL, the five
// levels, OFF.
var paletteSeverities = []domain.Severity{
	domain.SeverityUnset,
	domain.SeverityAll,
	domain.SeverityTrace,
	domain.SeverityDebug,
	domain.SeverityInfo,
	domain.SeverityWarn,
	domain.SeverityError,
	domain.SeverityOff,
}

// Palette lists the resolved color for every field kind and every severity
// a formatter may be handed.
func Palette() []domain.PaletteEntry {
	fields := domain.FieldKinds()
	entries := make([]domain.PaletteEntry, 0, len(fields)*len(paletteSeverities))
	for _, f := range fields {
		for _, s := range paletteSeverities {
			entries = append(entries, domain.PaletteEntry{Field: f, Severity: s, Color: Resolve(f, s)})
		}
	}
	return entries
}
