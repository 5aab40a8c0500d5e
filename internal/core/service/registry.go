package service

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/olusolaa/colorful-logging/internal/core/ports"
	"github.com/olusolaa/colorful-logging/internal/errors"
)

type ScenarioRegistry struct {
	mu        sync.RWMutex
	scenarios map[string]ports.Scenario
}

func NewScenarioRegistry() *ScenarioRegistry {
	return &ScenarioRegistry{
		scenarios: make(map[string]ports.Scenario),
	}
}

func (r *ScenarioRegistry) Register(scenario ports.Scenario) error {
	if scenario == nil {
		return errors.New(errors.CodeInternal, "attempted to register nil scenario")
	}
	name := strings.ToLower(scenario.Name())
	if name == "" {
		return errors.New(errors.CodeInternal, "scenario name cannot be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.scenarios[name]; exists {
		return errors.Newf(errors.CodeInternal, "scenario '%s' already registered", name)
	}
	r.scenarios[name] = scenario
	return nil
}

// Get looks a scenario up case-insensitively.
func (r *ScenarioRegistry) Get(name string) (ports.Scenario, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	scenario, exists := r.scenarios[strings.ToLower(name)]
	if !exists {
		return nil, errors.NewUserFacing(errors.CodeScenarioNotFound,
			fmt.Sprintf("scenario '%s' not found", name),
			"Available scenarios: "+strings.Join(r.namesLocked(), ", "))
	}
	return scenario, nil
}

func (r *ScenarioRegistry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.namesLocked()
}

func (r *ScenarioRegistry) namesLocked() []string {
	names := make([]string, 0, len(r.scenarios))
	for name := range r.scenarios {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
