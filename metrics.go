package creational

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
)

// Build strategies, used as the "strategy" label and in error messages.
const (
	StrategyDirect     = "direct"
	StrategyPrototype  = "prototype"
	StrategyDescriptor = "descriptor"
)

// factoryMetrics holds the counters of one Factory. A factory built without
// WithMetrics keeps unregistered counters so recording never needs a nil check.
type factoryMetrics struct {
	builds        *prometheus.CounterVec
	registrations *prometheus.CounterVec
}

func newFactoryMetrics(reg prometheus.Registerer) *factoryMetrics {
	m := &factoryMetrics{
		builds: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "creational_builds_total",
				Help: "Total number of vehicle builds by strategy, kind and outcome",
			},
			[]string{"strategy", "kind", "outcome"},
		),
		registrations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "creational_registrations_total",
				Help: "Total number of registry writes by kind and source",
			},
			[]string{"kind", "source"},
		),
	}

	if reg != nil {
		m.builds = registerOrExisting(reg, m.builds)
		m.registrations = registerOrExisting(reg, m.registrations)
	}

	return m
}

// registerOrExisting registers c, reusing an identical collector already
// present on reg so several factories can share one registry.
func registerOrExisting(reg prometheus.Registerer, c *prometheus.CounterVec) *prometheus.CounterVec {
	if err := reg.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(*prometheus.CounterVec); ok {
				return existing
			}
		}
	}
	return c
}

func (m *factoryMetrics) recordBuild(strategy string, key TypeKey, err error) {
	outcome := "success"
	switch {
	case err == nil:
	case errors.Is(err, ErrUnknownTypeKey):
		outcome = "unknown"
	case errors.Is(err, ErrUnregisteredTypeKey):
		outcome = "unregistered"
	default:
		outcome = "failed"
	}

	m.builds.WithLabelValues(strategy, kindLabel(key), outcome).Inc()
}

func (m *factoryMetrics) recordRegistration(source string, key TypeKey) {
	m.registrations.WithLabelValues(kindLabel(key), source).Inc()
}

// kindLabel folds every key outside the closed set into one label value.
func kindLabel(key TypeKey) string {
	if !key.IsValid() {
		return "unknown"
	}
	return key.String()
}
