// Package demo emits realistic log traffic at every severity so the console
// coloring can be seen in context: per-level samples, a simulated business
// transaction, simulated failures and component-name coloring.
package demo

import (
	"context"
	"math/rand/v2"
	"strings"
	"sync"
	"time"

	"github.com/olusolaa/colorful-logging/internal/core/domain"
	"github.com/olusolaa/colorful-logging/internal/core/ports"
	"github.com/olusolaa/colorful-logging/internal/errors"
	"github.com/olusolaa/colorful-logging/internal/highlight"
	"github.com/olusolaa/colorful-logging/internal/log"
)

const (
	ComponentService    = "demo.LoggingService"
	ComponentController = "demo.Controller"
)

// Component names used to show how the component column is colored.
var PackageComponents = []string{
	"com.example.service.BusinessService",
	"com.example.repository.DataRepository",
	"com.example.util.Helper",
}

type Result struct {
	Status    string `json:"status"`
	Message   string `json:"message"`
	Level     string `json:"level,omitempty"`
	Operation string `json:"operation,omitempty"`
	Duration  string `json:"duration,omitempty"`
	Timestamp string `json:"timestamp,omitempty"`
}

type LevelsResult struct {
	Message string   `json:"message"`
	Levels  []string `json:"levels"`
	Colors  []string `json:"colors"`
}

type Service struct {
	logger        ports.Logger
	controller    ports.Logger
	clock         Clock
	warningChance float64

	mu  sync.Mutex
	rnd *rand.Rand
}

type Option func(*Service)

func WithClock(c Clock) Option {
	return func(s *Service) { s.clock = c }
}

// WithSeed makes warning and failure selection reproducible. Zero keeps the
// time-based seed.
func WithSeed(seed int64) Option {
	return func(s *Service) {
		if seed != 0 {
			s.rnd = rand.New(rand.NewPCG(uint64(seed), uint64(seed)>>1|1))
		}
	}
}

func WithWarningChance(p float64) Option {
	return func(s *Service) { s.warningChance = p }
}

func NewService(logger ports.Logger, opts ...Option) *Service {
	now := uint64(time.Now().UnixNano())
	s := &Service{
		logger:        logger.WithFields(map[string]any{"component": ComponentService}),
		controller:    logger.WithFields(map[string]any{"component": ComponentController}),
		clock:         NewClock(1),
		warningChance: 0.3,
		rnd:           rand.New(rand.NewPCG(now, now>>1|1)),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func colorName(sev domain.Severity) string {
	return strings.ToUpper(highlight.Resolve(domain.FieldMessage, sev).Name())
}

// Banner is logged once at startup.
func (s *Service) Banner(ctx context.Context) {
	l := s.logger
	l.Infof(ctx, "Colorful Logging Demo started")
	l.Infof(ctx, "Available commands:")
	l.Infof(ctx, "   colorlog demo                 - Demonstrate all log levels")
	for _, sev := range domain.Severities() {
		name := strings.ToLower(sev.String())
		l.Infof(ctx, "   colorlog demo --level=%-6s - Show only %s logs", name, sev)
	}
	l.Infof(ctx, "   colorlog business             - Run a simulated business operation")
	l.Infof(ctx, "   colorlog simulate-error       - Trigger a simulated failure")
	l.Infof(ctx, "   colorlog levels               - Print the level to color table")
	l.Infof(ctx, "Enjoy the colorful logs in your console!")

	l.Tracef(ctx, "Application initialization trace")
	l.Debugf(ctx, "Loading configuration properties")
	l.Infof(ctx, "Services initialized successfully")
	l.Warnf(ctx, "Using default configuration for some properties")
	l.Infof(ctx, "Ready to produce colorful logs!")
}

// DemonstrateLevel logs the samples for one level. "all", an empty string
// and unknown names demonstrate every level plus a short transaction.
func (s *Service) DemonstrateLevel(ctx context.Context, level string) (Result, error) {
	if level == "" {
		level = "all"
	}
	c := s.controller
	c.Infof(ctx, "Starting colorful logging demonstration for level: %s", level)

	sev, err := domain.ParseSeverity(level)
	if err != nil || !sev.IsDefined() {
		if err := s.demonstrateEveryLevel(ctx); err != nil {
			return Result{}, err
		}
	} else {
		s.demonstrateSamples(ctx, sev)
	}

	c.Infof(ctx, "Colorful logging demonstration completed!")
	return Result{
		Status:  "success",
		Message: "Check your console for colorful logs!",
		Level:   level,
	}, nil
}

func (s *Service) demonstrateSamples(ctx context.Context, sev domain.Severity) {
	c := s.controller
	log.Emit(ctx, c, sev, "%s sample - should appear in %s", sev, colorName(sev))
	switch sev {
	case domain.SeverityError:
		c.Errorf(ctx, nil, "Simulating database connection failure")
		c.Errorf(ctx, nil, "Critical system error occurred at %d", s.clock.Now().UnixMilli())
	case domain.SeverityWarn:
		c.Warnf(ctx, "Memory usage is above %d%%", 80)
		c.Warnf(ctx, "Deprecated API usage detected")
	case domain.SeverityInfo:
		c.Infof(ctx, "Application started successfully")
		c.Infof(ctx, "Processing %d records", 1000)
	case domain.SeverityDebug:
		c.Debugf(ctx, "Variable value: %s", "sample_value")
		c.Debugf(ctx, "Method execution time: %d ms", 150)
	case domain.SeverityTrace:
		c.Tracef(ctx, "Entering method with parameters: %s", "param1, param2")
		c.Tracef(ctx, "Loop iteration: %d", 5)
	}
}

var levelBlurbs = map[domain.Severity]string{
	domain.SeverityTrace: "Most detailed logging level",
	domain.SeverityDebug: "Detailed information for debugging",
	domain.SeverityInfo:  "General information about application flow",
	domain.SeverityWarn:  "Warning about potential issues",
	domain.SeverityError: "Error events that might still allow application to continue",
}

func (s *Service) demonstrateEveryLevel(ctx context.Context) error {
	for _, sev := range domain.Severities() {
		log.Emit(ctx, s.controller, sev, "%s: %s", sev, levelBlurbs[sev])
	}

	c := s.controller
	c.Infof(ctx, "Starting business transaction")
	if err := s.runSteps(ctx, c, transactionSteps); err != nil {
		c.Errorf(ctx, err, "Transaction failed: %v", err)
		return errors.Wrap(err, errors.CodeOperationInterrupted, "business transaction interrupted")
	}
	c.Infof(ctx, "Transaction completed successfully")
	return nil
}

type step struct {
	sev   domain.Severity
	msg   string
	delay time.Duration
}

var (
	transactionSteps = []step{
		{domain.SeverityDebug, "Validating input parameters", 100 * time.Millisecond},
		{domain.SeverityInfo, "Processing payment", 50 * time.Millisecond},
		{domain.SeverityDebug, "Sending confirmation email", 30 * time.Millisecond},
	}
	operationSteps = []step{
		{domain.SeverityDebug, "Validating input parameters", 50 * time.Millisecond},
		{domain.SeverityInfo, "Processing business logic", 100 * time.Millisecond},
		{domain.SeverityDebug, "Accessing database", 30 * time.Millisecond},
		{domain.SeverityInfo, "Calling external service", 80 * time.Millisecond},
	}
)

// runSteps logs each step and then waits out its delay.
func (s *Service) runSteps(ctx context.Context, l ports.Logger, steps []step) error {
	for _, st := range steps {
		log.Emit(ctx, l, st.sev, "%s", st.msg)
		if err := s.clock.Sleep(ctx, st.delay); err != nil {
			return err
		}
	}
	return nil
}

// PerformBusinessOperation walks through validation, processing, data access
// and an external call, occasionally warning about degraded performance.
func (s *Service) PerformBusinessOperation(ctx context.Context) (Result, error) {
	l := s.logger
	l.Infof(ctx, "Starting business operation")

	if err := s.runSteps(ctx, l, operationSteps); err != nil {
		l.Errorf(ctx, err, "Business operation interrupted: %v", err)
		return Result{}, errors.WrapUserFacing(err, errors.CodeOperationInterrupted, "Operation interrupted", "")
	}

	if s.chance(s.warningChance) {
		l.Warnf(ctx, "Performance degradation detected - operation took longer than expected")
	}

	l.Infof(ctx, "Business operation completed successfully")
	return Result{
		Status:    "success",
		Message:   "Colorful logging demonstration completed",
		Operation: "business-demo",
		Duration:  "~260ms",
		Timestamp: s.clock.Now().Format(time.RFC3339),
	}, nil
}

type simulatedFailure struct {
	log     string
	message string
}

var simulatedFailures = []simulatedFailure{
	{"Simulated nil pointer dereference", "simulated nil pointer for demo"},
	{"Simulated invalid argument", "simulated invalid argument for demo"},
	{"Simulated runtime failure", "simulated runtime failure for demo"},
}

// SimulateErrorScenario always fails with a SIMULATED_FAILURE error after
// logging its way down an "unstable" path.
func (s *Service) SimulateErrorScenario(ctx context.Context) error {
	l := s.logger
	l.Infof(ctx, "Simulating error scenario for demonstration")
	l.Debugf(ctx, "Preparing error simulation")
	if err := s.clock.Sleep(ctx, 20*time.Millisecond); err != nil {
		l.Errorf(ctx, err, "Error simulation interrupted: %v", err)
		return errors.WrapUserFacing(err, errors.CodeOperationInterrupted, "Simulation interrupted", "")
	}
	l.Warnf(ctx, "Entering unstable code path")

	failure := simulatedFailures[s.intN(len(simulatedFailures))]
	err := errors.NewUserFacing(errors.CodeSimulatedFailure, failure.message, "This failure is intentional; nothing needs fixing.")
	l.Errorf(ctx, err, "%s", failure.log)
	return err
}

// DemonstratePackageLogging logs through loggers named like Java packages to
// show the component column switching color with severity.
func (s *Service) DemonstratePackageLogging(ctx context.Context) {
	s.logger.Infof(ctx, "Demonstrating package-specific logging colors")

	severities := []domain.Severity{domain.SeverityInfo, domain.SeverityDebug, domain.SeverityWarn}
	layers := []string{"Service", "Repository", "Utility"}
	for i, name := range PackageComponents {
		pl := s.logger.WithFields(map[string]any{"component": name})
		log.Emit(ctx, pl, severities[i], "%s layer logging with package coloring", layers[i])
	}

	s.logger.Infof(ctx, "Package name coloring demonstration completed")
}

// DemonstrateAllLevels logs one line per level and reports the color each
// level's message was painted with.
func (s *Service) DemonstrateAllLevels(ctx context.Context) LevelsResult {
	c := s.controller
	c.Infof(ctx, "Demonstrating all log levels")

	res := LevelsResult{Message: "All log levels demonstrated"}
	for _, sev := range domain.Severities() {
		blurb := levelBlurbs[sev]
		if sev == domain.SeverityError {
			blurb = "Error events (this is just a demo, not a real error)"
		}
		log.Emit(ctx, c, sev, "%s: %s", sev, blurb)
		res.Levels = append(res.Levels, sev.String())
		res.Colors = append(res.Colors, colorName(sev))
	}
	return res
}

func (s *Service) chance(p float64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rnd.Float64() < p
}

func (s *Service) intN(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rnd.IntN(n)
}
