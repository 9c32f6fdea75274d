package engine

import (
	"context"

	"go.uber.org/zap"

	"github.com/kapu/contract-assistant-go/internal/constants"
	"github.com/kapu/contract-assistant-go/internal/util"
	apperrors "github.com/kapu/contract-assistant-go/pkg/errors"
)

// Manager runs engines in priority order, skipping providers whose circuit
// breaker is open. All engines failing is a normal outcome; callers fall
// back to template synthesis.
type Manager struct {
	engines  []Engine
	breakers map[string]*util.CircuitBreaker
	logger   *zap.Logger
}

func NewManager(engines []Engine, logger *zap.Logger) *Manager {
	breakers := make(map[string]*util.CircuitBreaker, len(engines))
	for _, e := range engines {
		breakers[e.Name()] = util.NewCircuitBreaker(
			constants.Engine.FailureThreshold,
			constants.Engine.ResetTimeout,
			constants.Engine.HealthCheckInterval,
			nil,
			logger.With(zap.String("provider", e.Name())),
		)
	}
	return &Manager{engines: engines, breakers: breakers, logger: logger}
}

// Available reports whether any engine is configured
func (m *Manager) Available() bool {
	return m != nil && len(m.engines) > 0
}

// Analyze tries each engine in order and returns the first success
func (m *Manager) Analyze(ctx context.Context, question, documentText string) (string, error) {
	if !m.Available() {
		return "", apperrors.NewEngineError("no engines configured", "none", nil)
	}

	var lastErr error
	for _, e := range m.engines {
		breaker := m.breakers[e.Name()]
		if !breaker.CanExecute() {
			m.logger.Debug("Skipping provider with open circuit", zap.String("provider", e.Name()))
			continue
		}

		result, err := e.Analyze(ctx, question, documentText)
		if err != nil {
			breaker.RecordFailure(0)
			m.logger.Warn("Engine analysis failed",
				zap.String("provider", e.Name()),
				zap.Error(err))
			lastErr = err
			continue
		}

		breaker.RecordSuccess()
		return result, nil
	}

	m.logger.Debug("All engines unavailable", zap.Any("circuits", m.Status()))

	if lastErr != nil {
		return "", lastErr
	}
	return "", apperrors.NewEngineError("all provider circuits open", "all", nil)
}

// Status reports each provider's circuit state for diagnostics
func (m *Manager) Status() map[string]util.CircuitBreakerStatus {
	status := make(map[string]util.CircuitBreakerStatus, len(m.breakers))
	for name, breaker := range m.breakers {
		status[name] = breaker.GetStatus()
	}
	return status
}
