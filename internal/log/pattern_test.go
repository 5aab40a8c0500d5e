package log

import (
	"testing"

	"github.com/olusolaa/colorful-logging/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePattern(t *testing.T) {
	p, err := ParsePattern("%time %-5level [%20component] %msg %attrs%n")
	require.NoError(t, err)
	assert.Equal(t, "%time %-5level [%20component] %msg %attrs%n", p.String())

	want := []segment{
		{kind: dirTime},
		{kind: dirLiteral, literal: " "},
		{kind: dirLevel, width: 5, leftAlign: true},
		{kind: dirLiteral, literal: " ["},
		{kind: dirComponent, width: 20},
		{kind: dirLiteral, literal: "] "},
		{kind: dirMessage},
		{kind: dirLiteral, literal: " "},
		{kind: dirAttrs},
		{kind: dirLiteral, literal: "\n"},
	}
	assert.Equal(t, want, p.segments)
}

func TestParsePatternAliasesAndEscapes(t *testing.T) {
	p, err := ParsePattern("100%% %p %m %logger %d %kv")
	require.NoError(t, err)

	kinds := make([]directive, 0, len(p.segments))
	for _, s := range p.segments {
		kinds = append(kinds, s.kind)
	}
	assert.Equal(t, []directive{
		dirLiteral, dirLevel, dirLiteral, dirMessage, dirLiteral, dirComponent, dirLiteral, dirTime, dirLiteral, dirAttrs,
	}, kinds)
	assert.Equal(t, "100% ", p.segments[0].literal)
}

func TestParsePatternErrors(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
	}{
		{"empty", ""},
		{"dangling percent", "%level %"},
		{"unknown directive", "%thread %msg"},
		{"width without name", "%-5 %msg"},
		{"width too large", "%1000000000level %msg"},
		{"width just over limit", "%-1025level %msg"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParsePattern(tt.pattern)
			require.Error(t, err)
			assert.True(t, errors.Is(err, errors.CodePatternParse))
		})
	}
}

func TestMustParsePatternPanics(t *testing.T) {
	assert.Panics(t, func() { MustParsePattern("%nope") })
	assert.NotPanics(t, func() { MustParsePattern(DefaultPattern) })
}

func TestPad(t *testing.T) {
	assert.Equal(t, "INFO ", pad("INFO", 5, true))
	assert.Equal(t, " INFO", pad("INFO", 5, false))
	assert.Equal(t, "ERROR", pad("ERROR", 3, true))
	assert.Equal(t, "é   ", pad("é", 4, true))
}

func TestParsePatternMaxWidth(t *testing.T) {
	p, err := ParsePattern("%1024level")
	require.NoError(t, err)
	assert.Equal(t, MaxPatternWidth, p.segments[0].width)
}
