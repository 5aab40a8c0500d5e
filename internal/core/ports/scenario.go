package ports

import "context"

// Scenario is a named demo flow that emits log lines.
type Scenario interface {
	Name() string
	Run(ctx context.Context) error
}

//go:generate mockery --name DemoRunner --output ./mocks --outpkg mocks --case underscore
type DemoRunner interface {
	Run(ctx context.Context, scenario string) error
}
