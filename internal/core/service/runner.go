package service

import (
	"context"
	"time"

	"github.com/olusolaa/colorful-logging/internal/core/ports"
	"github.com/olusolaa/colorful-logging/internal/errors"
)

type Runner struct {
	registry *ScenarioRegistry
	logger   ports.Logger
}

func NewRunner(registry *ScenarioRegistry, logger ports.Logger) (*Runner, error) {
	if registry == nil {
		return nil, errors.New(errors.CodeInternal, "scenario registry cannot be nil")
	}
	if logger == nil {
		return nil, errors.New(errors.CodeInternal, "logger cannot be nil")
	}
	return &Runner{registry: registry, logger: logger}, nil
}

func (r *Runner) Run(ctx context.Context, name string) error {
	scenario, err := r.registry.Get(name)
	if err != nil {
		r.logger.Errorf(ctx, err, "Cannot run scenario %q", name)
		return err
	}

	r.logger.Debugf(ctx, "Running scenario %s", scenario.Name())
	start := time.Now()
	if err := scenario.Run(ctx); err != nil {
		if ctx.Err() != nil {
			r.logger.Warnf(ctx, "Scenario %s cancelled: %v", scenario.Name(), ctx.Err())
			return errors.WrapUserFacing(err, errors.CodeOperationInterrupted, "scenario cancelled", "")
		}
		r.logger.Errorf(ctx, err, "Scenario %s failed", scenario.Name())
		return err
	}
	r.logger.Infof(ctx, "Scenario %s finished in %s", scenario.Name(), time.Since(start).Round(time.Millisecond))
	return nil
}
