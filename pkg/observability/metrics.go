package observability

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"

	"github.com/aretw0/typestate/pkg/runner"
)

// Metrics counts inputs and transitions reported by runner hooks.
type Metrics struct {
	Registry *prometheus.Registry

	transitions *prometheus.CounterVec
	inputs      *prometheus.CounterVec
}

// NewMetrics creates the collectors and registers them on a fresh registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		Registry: prometheus.NewRegistry(),
		transitions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "typestate_transitions_total",
				Help: "Total number of state transitions",
			},
			[]string{"phase", "kind"},
		),
		inputs: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "typestate_inputs_total",
				Help: "Total number of input lines read",
			},
			[]string{"phase", "parsed"},
		),
	}
	m.Registry.MustRegister(m.transitions, m.inputs)
	return m
}

// Hooks returns runner hooks that record into m.
func (m *Metrics) Hooks() runner.Hooks {
	return runner.Hooks{
		OnInput: func(ctx context.Context, e *runner.InputEvent) {
			m.inputs.WithLabelValues(string(e.Phase), strconv.FormatBool(e.Parsed)).Inc()
		},
		OnTransition: func(ctx context.Context, e *runner.TransitionEvent) {
			m.transitions.WithLabelValues(string(e.Phase), string(e.Kind)).Inc()
		},
	}
}

// WriteSummary writes the gathered series in the Prometheus text exposition
// format, e.g.
//
//	typestate_transitions_total{kind="accumulate",phase="looping"} 2
func (m *Metrics) WriteSummary(w io.Writer) error {
	families, err := m.Registry.Gather()
	if err != nil {
		return fmt.Errorf("gather metrics: %w", err)
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return fmt.Errorf("write metrics: %w", err)
		}
	}
	return nil
}
