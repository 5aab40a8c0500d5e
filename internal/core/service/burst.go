package service

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/Pallinder/go-randomdata"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"github.com/olusolaa/colorful-logging/internal/core/domain"
	"github.com/olusolaa/colorful-logging/internal/core/ports"
	"github.com/olusolaa/colorful-logging/internal/errors"
	"github.com/olusolaa/colorful-logging/internal/log"
)

const (
	minBurstRate = 1
	maxBurstRate = 10000
)

type BurstConfig struct {
	Workers int
	Events  int // per worker
	Rate    int // events per second across all workers
}

type BurstStats struct {
	RunID       string
	Emitted     int64
	PerSeverity map[domain.Severity]int64
}

// Burst emits log records from many goroutines at once, cycling through the
// severities, to show the console stays line-atomic and correctly colored
// under concurrent use.
type Burst struct {
	logger  ports.Logger
	cfg     BurstConfig
	limiter *rate.Limiter

	// randomdata shares one generator across callers.
	randMu sync.Mutex
}

func NewBurst(logger ports.Logger, cfg BurstConfig) (*Burst, error) {
	if cfg.Workers <= 0 || cfg.Events <= 0 {
		return nil, errors.NewUserFacing(errors.CodeConfigValidation,
			fmt.Sprintf("burst needs positive workers and events (got %d workers, %d events)", cfg.Workers, cfg.Events),
			"Set --workers and --events to values of at least 1.")
	}
	if cfg.Rate < minBurstRate || cfg.Rate > maxBurstRate {
		return nil, errors.NewUserFacing(errors.CodeConfigValidation,
			fmt.Sprintf("burst rate %d out of range", cfg.Rate),
			fmt.Sprintf("Valid range: %d-%d events per second.", minBurstRate, maxBurstRate))
	}
	return &Burst{
		logger:  logger,
		cfg:     cfg,
		limiter: rate.NewLimiter(rate.Limit(cfg.Rate), cfg.Workers),
	}, nil
}

func (b *Burst) Run(ctx context.Context) (BurstStats, error) {
	runID := uuid.NewString()
	runLogger := b.logger.WithFields(map[string]any{"burst_id": runID})
	runLogger.Infof(ctx, "Starting burst: %d workers x %d events at %d events/s", b.cfg.Workers, b.cfg.Events, b.cfg.Rate)

	severities := domain.Severities()
	var counts [domain.SeverityError + 1]atomic.Int64

	g, gctx := errgroup.WithContext(ctx)
	for w := 0; w < b.cfg.Workers; w++ {
		g.Go(func() error {
			wl := runLogger.WithFields(map[string]any{"component": fmt.Sprintf("worker-%d", w)})
			for i := 0; i < b.cfg.Events; i++ {
				if err := b.limiter.Wait(gctx); err != nil {
					return err
				}
				sev := severities[(w+i)%len(severities)]
				log.Emit(gctx, wl, sev, "%s", b.message(i))
				counts[sev].Add(1)
			}
			return nil
		})
	}
	err := g.Wait()

	stats := BurstStats{RunID: runID, PerSeverity: make(map[domain.Severity]int64, len(severities))}
	for _, sev := range severities {
		n := counts[sev].Load()
		stats.PerSeverity[sev] = n
		stats.Emitted += n
	}

	if err != nil {
		runLogger.Warnf(ctx, "Burst stopped after %d events: %v", stats.Emitted, err)
		return stats, errors.WrapUserFacing(err, errors.CodeOperationInterrupted, "burst interrupted", "")
	}
	runLogger.Infof(ctx, "Burst complete: %d events emitted", stats.Emitted)
	return stats, nil
}

func (b *Burst) message(seq int) string {
	b.randMu.Lock()
	defer b.randMu.Unlock()
	return fmt.Sprintf("event %d: order %d placed by %s", seq, randomdata.Number(1000, 9999), randomdata.SillyName())
}
