package service

import (
	"bytes"
	"context"
	stderrors "errors"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/olusolaa/colorful-logging/internal/core/domain"
	"github.com/olusolaa/colorful-logging/internal/errors"
	"github.com/olusolaa/colorful-logging/internal/highlight"
	"github.com/olusolaa/colorful-logging/internal/log"
	"github.com/olusolaa/colorful-logging/mocks"
)

func TestScenarioRegistry(t *testing.T) {
	registry := NewScenarioRegistry()
	noop := func(context.Context) error { return nil }

	require.NoError(t, registry.Register(NewScenario("Business", noop)))
	require.NoError(t, registry.Register(NewScenario("levels", noop)))

	t.Run("lookup is case insensitive", func(t *testing.T) {
		s, err := registry.Get("BUSINESS")
		require.NoError(t, err)
		assert.Equal(t, "Business", s.Name())
	})

	t.Run("duplicate", func(t *testing.T) {
		err := registry.Register(NewScenario("business", noop))
		assert.True(t, errors.Is(err, errors.CodeInternal))
		assert.EqualError(t, err, "[INTERNAL_ERROR] scenario 'business' already registered")
	})

	t.Run("nil and empty", func(t *testing.T) {
		assert.True(t, errors.Is(registry.Register(nil), errors.CodeInternal))
		assert.True(t, errors.Is(registry.Register(NewScenario("", noop)), errors.CodeInternal))
	})

	t.Run("missing", func(t *testing.T) {
		_, err := registry.Get("nope")
		require.Error(t, err)
		assert.True(t, errors.Is(err, errors.CodeScenarioNotFound))
		_, suggestion, ok := errors.GetUserFacingMessage(err)
		assert.True(t, ok)
		assert.Equal(t, "Available scenarios: business, levels", suggestion)
	})

	assert.Equal(t, []string{"business", "levels"}, registry.Names())
}

func TestNewRunnerValidation(t *testing.T) {
	_, err := NewRunner(nil, mocks.NewTestLogger())
	assert.Error(t, err)
	_, err = NewRunner(NewScenarioRegistry(), nil)
	assert.Error(t, err)
}

func TestRunnerRun(t *testing.T) {
	boom := errors.NewUserFacing(errors.CodeSimulatedFailure, "simulated", "")
	registry := NewScenarioRegistry()
	ran := 0
	require.NoError(t, registry.Register(NewScenario("ok", func(context.Context) error { ran++; return nil })))
	require.NoError(t, registry.Register(NewScenario("fail", func(context.Context) error { return boom })))
	require.NoError(t, registry.Register(NewScenario("slow", func(ctx context.Context) error {
		<-ctx.Done()
		return ctx.Err()
	})))

	logger := mocks.NewTestLogger()
	runner, err := NewRunner(registry, logger)
	require.NoError(t, err)

	require.NoError(t, runner.Run(context.Background(), "ok"))
	assert.Equal(t, 1, ran)
	logger.AssertCalled(t, "Infof", mock.Anything, "Scenario %s finished in %s", mock.Anything)

	err = runner.Run(context.Background(), "fail")
	assert.Same(t, boom, err)
	logger.AssertCalled(t, "Errorf", mock.Anything, boom, "Scenario %s failed", mock.Anything)

	err = runner.Run(context.Background(), "missing")
	assert.True(t, errors.Is(err, errors.CodeScenarioNotFound))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err = runner.Run(ctx, "slow")
	assert.True(t, errors.Is(err, errors.CodeOperationInterrupted))
	assert.ErrorIs(t, err, context.Canceled)
}

func newBufferLogger(t *testing.T) (*bytes.Buffer, *log.Config) {
	t.Helper()
	cfg := log.DefaultConfig()
	cfg.Level = domain.SeverityTrace
	cfg.Color = highlight.ColorAlways
	cfg.Pattern = "%level|%component|%message"
	return &bytes.Buffer{}, &cfg
}

func TestBurstRun(t *testing.T) {
	buf, cfg := newBufferLogger(t)
	logger, err := log.NewLoggerTo(*cfg, buf)
	require.NoError(t, err)

	burst, err := NewBurst(logger, BurstConfig{Workers: 5, Events: 20, Rate: 10000})
	require.NoError(t, err)

	stats, err := burst.Run(context.Background())
	require.NoError(t, err)
	_, err = uuid.Parse(stats.RunID)
	assert.NoError(t, err)
	assert.Equal(t, int64(100), stats.Emitted)
	for _, sev := range domain.Severities() {
		assert.Equal(t, int64(20), stats.PerSeverity[sev], sev.String())
	}

	workerLines := 0
	for _, line := range strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n") {
		parts := strings.SplitN(line, "|", 3)
		require.Len(t, parts, 3, line)
		if !strings.Contains(parts[1], "worker-") {
			continue
		}
		workerLines++
		// Level and component must carry the colors of the same record.
		var sev domain.Severity
		for _, s := range domain.Severities() {
			if strings.Contains(parts[0], s.String()) {
				sev = s
			}
		}
		require.True(t, sev.IsDefined(), line)
		assert.True(t, strings.HasPrefix(parts[0], highlight.Resolve(domain.FieldLevel, sev).Sequence()), line)
		assert.True(t, strings.HasPrefix(parts[1], highlight.Resolve(domain.FieldComponent, sev).Sequence()), line)
		assert.True(t, strings.HasPrefix(parts[2], highlight.Resolve(domain.FieldMessage, sev).Sequence()), line)
	}
	assert.Equal(t, 100, workerLines)
}

func TestBurstCancelled(t *testing.T) {
	logger := mocks.NewTestLogger()
	burst, err := NewBurst(logger, BurstConfig{Workers: 2, Events: 1000, Rate: 1})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	stats, err := burst.Run(ctx)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.CodeOperationInterrupted))
	assert.True(t, stderrors.Is(err, context.Canceled))
	assert.Less(t, stats.Emitted, int64(2000))
}

func TestNewBurstValidation(t *testing.T) {
	logger := mocks.NewTestLogger()
	for _, cfg := range []BurstConfig{
		{Workers: 0, Events: 1, Rate: 10},
		{Workers: 1, Events: 0, Rate: 10},
		{Workers: 1, Events: 1, Rate: 0},
		{Workers: 1, Events: 1, Rate: 10001},
	} {
		_, err := NewBurst(logger, cfg)
		assert.True(t, errors.Is(err, errors.CodeConfigValidation), "%+v", cfg)
	}
}
