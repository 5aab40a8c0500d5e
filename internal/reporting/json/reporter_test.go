package json

import (
	"bytes"
	"context"
	stderrors "errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/olusolaa/colorful-logging/internal/core/domain"
	"github.com/olusolaa/colorful-logging/internal/errors"
	"github.com/olusolaa/colorful-logging/internal/highlight"
	"github.com/olusolaa/colorful-logging/mocks"
)

type decodedReport struct {
	Summary struct {
		TotalEntries int            `json:"total_entries"`
		Fields       []string       `json:"fields"`
		Colors       map[string]int `json:"colors"`
	} `json:"summary"`
	Entries []struct {
		Field    string `json:"field"`
		Severity string `json:"severity"`
		Color    string `json:"color"`
		Code     string `json:"code"`
		Sequence string `json:"sequence"`
	} `json:"entries"`
}

func TestReportPalette(t *testing.T) {
	var buf bytes.Buffer
	r, err := NewReporter(Config{}, mocks.NewTestLogger(), WithWriter(&buf))
	require.NoError(t, err)

	require.NoError(t, r.Report(context.Background(), highlight.Palette()))

	var got decodedReport
	require.NoError(t, codec.Unmarshal(buf.Bytes(), &got))

	assert.Equal(t, 24, got.Summary.TotalEntries)
	assert.Equal(t, []string{"component", "level", "message"}, got.Summary.Fields)
	wantColors := map[string]int{
		"default": 6, // absent, ALL and OFF for level and message
		"magenta": 2,
		"blue":    2,
		"green":   2,
		"yellow":  3,
		"red":     3,
		"cyan":    6,
	}
	if diff := cmp.Diff(wantColors, got.Summary.Colors); diff != "" {
		t.Errorf("color usage mismatch (-want +got):\n%s", diff)
	}

	require.Len(t, got.Entries, 24)
	first := got.Entries[0]
	assert.Equal(t, "level", first.Field)
	assert.Empty(t, first.Severity)
	assert.Equal(t, "default", first.Color)
	assert.Equal(t, "\x1b[39m", first.Sequence)

	errEntry := got.Entries[6]
	assert.Equal(t, "ERROR", errEntry.Severity)
	assert.Equal(t, "31", errEntry.Code)
}

func TestReportIndentation(t *testing.T) {
	var pretty, compact bytes.Buffer
	pr, err := NewReporter(Config{}, mocks.NewTestLogger(), WithWriter(&pretty))
	require.NoError(t, err)
	cr, err := NewReporter(Config{Compact: true}, mocks.NewTestLogger(), WithWriter(&compact))
	require.NoError(t, err)

	entries := []domain.PaletteEntry{{Field: domain.FieldMessage, Severity: domain.SeverityInfo, Color: domain.ColorGreen}}
	require.NoError(t, pr.Report(context.Background(), entries))
	require.NoError(t, cr.Report(context.Background(), entries))

	assert.Contains(t, pretty.String(), "\n  \"summary\"")
	assert.Equal(t, 1, strings.Count(compact.String(), "\n"))
	assert.Contains(t, compact.String(), `"field":"message","severity":"INFO","color":"green"`)
}

func TestReportEmpty(t *testing.T) {
	var buf bytes.Buffer
	r, err := NewReporter(Config{Compact: true}, mocks.NewTestLogger(), WithWriter(&buf))
	require.NoError(t, err)

	require.NoError(t, r.Report(context.Background(), nil))
	assert.Equal(t, `{"summary":{"total_entries":0,"fields":[],"colors":{}},"entries":[]}`+"\n", buf.String())
}

func TestReportCancelled(t *testing.T) {
	r, err := NewReporter(Config{}, mocks.NewTestLogger(), WithWriter(&bytes.Buffer{}))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, r.Report(ctx, highlight.Palette()), context.Canceled)
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, stderrors.New("broken pipe") }

func TestReportWriteError(t *testing.T) {
	r, err := NewReporter(Config{}, mocks.NewTestLogger(), WithWriter(failingWriter{}))
	require.NoError(t, err)

	err = r.Report(context.Background(), highlight.Palette())
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.CodeReportError))
}
