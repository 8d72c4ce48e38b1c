package health

import "context"

// Status represents the aggregated health status.
type Status string

const (
	// Healthy indicates all components are operational.
	Healthy Status = "ok"
	// Degraded indicates partial failure.
	Degraded Status = "degraded"
	// Unhealthy indicates total failure.
	Unhealthy Status = "error"
)

// CheckResult represents an individual component health check outcome.
type CheckResult string

const (
	// CheckOK indicates a passing health check.
	CheckOK CheckResult = "ok"
	// CheckError indicates a failing health check.
	CheckError CheckResult = "error"
)

// Report aggregates health check results.
type Report struct {
	Status Status
	Checks map[string]CheckResult
}

// Service coordinates health checks.
type Service struct {
	cache       CachePinger
	translation Checker
	assistant   Checker
}

// New creates a Service. Both dependencies can be nil.
func New(cache CachePinger, translation Checker) *Service {
	return &Service{cache: cache, translation: translation}
}

// WithAssistant adds the chat model check.
func (s *Service) WithAssistant(c Checker) *Service {
	s.assistant = c
	return s
}

// Check runs health checks against all configured components.
// The matching pipeline has no dependencies, so an empty report is healthy.
func (s *Service) Check(ctx context.Context) Report {
	checks := make(map[string]CheckResult)

	if s.cache != nil {
		checks["cache"] = result(s.cache.Ping(ctx))
	}
	if s.translation != nil {
		checks["translation"] = result(s.translation.HealthCheck(ctx))
	}
	if s.assistant != nil {
		checks["assistant"] = result(s.assistant.HealthCheck(ctx))
	}

	failed := 0
	for _, v := range checks {
		if v == CheckError {
			failed++
		}
	}

	status := Healthy
	switch {
	case failed > 0 && failed == len(checks):
		status = Unhealthy
	case failed > 0:
		status = Degraded
	}

	return Report{Status: status, Checks: checks}
}

func result(err error) CheckResult {
	if err != nil {
		return CheckError
	}
	return CheckOK
}
