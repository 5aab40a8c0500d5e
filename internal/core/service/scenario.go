package service

import (
	"context"

	"github.com/olusolaa/colorful-logging/internal/core/ports"
)

type funcScenario struct {
	name string
	run  func(ctx context.Context) error
}

// NewScenario adapts a function into a ports.Scenario.
func NewScenario(name string, run func(ctx context.Context) error) ports.Scenario {
	return &funcScenario{name: name, run: run}
}

func (s *funcScenario) Name() string {
	return s.name
}

func (s *funcScenario) Run(ctx context.Context) error {
	return s.run(ctx)
}
