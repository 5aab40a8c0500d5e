package highlight

import (
	"bytes"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/olusolaa/colorful-logging/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveLevelAndMessage(t *testing.T) {
	want := map[domain.Severity]domain.ColorCode{
		domain.SeverityError: domain.ColorRed,
		domain.SeverityWarn:  domain.ColorYellow,
		domain.SeverityInfo:  domain.ColorGreen,
		domain.SeverityDebug: domain.ColorBlue,
		domain.SeverityTrace: domain.ColorMagenta,
	}
	for _, field := range []domain.FieldKind{domain.FieldLevel, domain.FieldMessage} {
		for sev, color := range want {
			assert.Equal(t, color, Resolve(field, sev), "%s/%s", field, sev)
		}
	}
}

func TestResolveFallbacks(t *testing.T) {
	odd := []domain.Severity{
		domain.SeverityUnset,
		domain.SeverityAll,
		domain.SeverityOff,
		domain.Severity(99),
		domain.Severity(-7),
	}
	for _, sev := range odd {
		assert.Equal(t, domain.ColorDefault, Resolve(domain.FieldLevel, sev), sev.String())
		assert.Equal(t, domain.ColorDefault, Resolve(domain.FieldMessage, sev), sev.String())
		assert.Equal(t, domain.ColorCyan, Resolve(domain.FieldComponent, sev), sev.String())
	}
}

func TestResolveComponent(t *testing.T) {
	all := append(domain.Severities(), domain.SeverityUnset, domain.SeverityAll, domain.SeverityOff, domain.Severity(99))
	for _, sev := range all {
		got := Resolve(domain.FieldComponent, sev)
		switch sev {
		case domain.SeverityError:
			assert.Equal(t, domain.ColorRed, got)
		case domain.SeverityWarn:
			assert.Equal(t, domain.ColorYellow, got)
		default:
			assert.Equal(t, domain.ColorCyan, got, sev.String())
		}
	}
}

func TestResolveScenarios(t *testing.T) {
	tests := []struct {
		name  string
		field domain.FieldKind
		sev   domain.Severity
		want  domain.ColorCode
	}{
		{"level error", domain.FieldLevel, domain.SeverityError, domain.ColorRed},
		{"level warn", domain.FieldLevel, domain.SeverityWarn, domain.ColorYellow},
		{"message info", domain.FieldMessage, domain.SeverityInfo, domain.ColorGreen},
		{"component debug", domain.FieldComponent, domain.SeverityDebug, domain.ColorCyan},
		{"component error", domain.FieldComponent, domain.SeverityError, domain.ColorRed},
		{"level absent", domain.FieldLevel, domain.SeverityUnset, domain.ColorDefault},
		{"unknown field kind", domain.FieldKind(42), domain.SeverityInfo, domain.ColorGreen},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Resolve(tt.field, tt.sev))
		})
	}
}

func TestResolveIsTotal(t *testing.T) {
	for raw := -128; raw <= 127; raw++ {
		for _, field := range append(domain.FieldKinds(), domain.FieldKind(200)) {
			assert.NotEmpty(t, Resolve(field, domain.Severity(raw)))
		}
	}
}

func TestResolveConcurrentIdempotent(t *testing.T) {
	expected := Palette()

	var wg sync.WaitGroup
	errs := make(chan string, 16)
	for g := 0; g < 16; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 200; i++ {
				if diff := cmp.Diff(expected, Palette()); diff != "" {
					errs <- diff
					return
				}
			}
		}()
	}
	wg.Wait()
	close(errs)
	for diff := range errs {
		t.Errorf("palette drifted under concurrent use (-want +got):\n%s", diff)
	}
}

func TestResolveDoesNotAllocate(t *testing.T) {
	allocs := testing.AllocsPerRun(100, func() {
		_ = Resolve(domain.FieldComponent, domain.SeverityWarn)
		_ = Resolve(domain.FieldLevel, domain.SeverityUnset)
	})
	assert.Zero(t, allocs)
}

func TestPalette(t *testing.T) {
	entries := Palette()
	require.Len(t, entries, 3*8)

	want := []domain.PaletteEntry{
		{Field: domain.FieldComponent, Severity: domain.SeverityUnset, Color: domain.ColorCyan},
		{Field: domain.FieldComponent, Severity: domain.SeverityAll, Color: domain.ColorCyan},
		{Field: domain.FieldComponent, Severity: domain.SeverityTrace, Color: domain.ColorCyan},
		{Field: domain.FieldComponent, Severity: domain.SeverityDebug, Color: domain.ColorCyan},
		{Field: domain.FieldComponent, Severity: domain.SeverityInfo, Color: domain.ColorCyan},
		{Field: domain.FieldComponent, Severity: domain.SeverityWarn, Color: domain.ColorYellow},
		{Field: domain.FieldComponent, Severity: domain.SeverityError, Color: domain.ColorRed},
		{Field: domain.FieldComponent, Severity: domain.SeverityOff, Color: domain.ColorCyan},
	}
	if diff := cmp.Diff(want, entries[16:]); diff != "" {
		t.Errorf("component rows mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, domain.FieldLevel, entries[0].Field)
	assert.Equal(t, domain.FieldMessage, entries[8].Field)
}

func TestColorizerModes(t *testing.T) {
	var buf bytes.Buffer

	always := NewColorizer(ColorAlways, &buf)
	assert.True(t, always.Enabled())
	assert.Equal(t, "\x1b[31mERROR\x1b[0m", always.Paint(domain.FieldLevel, domain.SeverityError, "ERROR"))
	assert.Equal(t, "\x1b[36mcom.example.Helper\x1b[0m", always.Paint(domain.FieldComponent, domain.SeverityInfo, "com.example.Helper"))
	assert.Equal(t, "\x1b[39mno level\x1b[0m", always.Paint(domain.FieldMessage, domain.SeverityUnset, "no level"))
	assert.Equal(t, "\x1b[90mgrey\x1b[0m", always.PaintCode(domain.ColorCode("90"), "grey"))

	never := NewColorizer(ColorNever, &buf)
	assert.False(t, never.Enabled())
	assert.Equal(t, "ERROR", never.Paint(domain.FieldLevel, domain.SeverityError, "ERROR"))

	// A bytes.Buffer is never a terminal.
	auto := NewColorizer(ColorAuto, &buf)
	assert.False(t, auto.Enabled())
}
