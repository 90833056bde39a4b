// Package metrics records repository activity as Prometheus metrics.
package metrics

import (
	"fmt"
	"io"
	"net/http"
	"sort"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	dto "github.com/prometheus/client_model/go"

	"railbook/internal/repository"
)

const namespace = "railbook"

// Recorder implements repository.Observer on a private Prometheus registry
type Recorder struct {
	registry   *prometheus.Registry
	operations *prometheus.CounterVec
	stored     *prometheus.GaugeVec
}

var _ repository.Observer = (*Recorder)(nil)

// NewRecorder creates a recorder with its own registry
func NewRecorder() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		operations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "repository",
			Name:      "operations_total",
			Help:      "Repository operations by entity and operation.",
		}, []string{"entity", "op"}),
		stored: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "repository",
			Name:      "entities",
			Help:      "Entities currently stored per entity type.",
		}, []string{"entity"}),
	}
	r.registry.MustRegister(r.operations, r.stored)
	return r
}

// Observe counts op and records the store size
func (r *Recorder) Observe(entity string, op repository.Operation, size int) {
	r.operations.WithLabelValues(entity, string(op)).Inc()
	r.stored.WithLabelValues(entity).Set(float64(size))
}

// Registry returns the registry holding the recorder's metrics
func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}

// Handler serves the metrics in the Prometheus exposition format
func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
}

// WriteSummary writes one "name{labels} value" line per sample, sorted
func (r *Recorder) WriteSummary(w io.Writer) error {
	families, err := r.registry.Gather()
	if err != nil {
		return fmt.Errorf("gather metrics: %w", err)
	}

	var lines []string
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			lines = append(lines, fmt.Sprintf("%s{%s} %g", mf.GetName(), labels(m), value(m)))
		}
	}
	sort.Strings(lines)

	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

func labels(m *dto.Metric) string {
	pairs := make([]string, 0, len(m.GetLabel()))
	for _, lp := range m.GetLabel() {
		pairs = append(pairs, fmt.Sprintf("%s=%q", lp.GetName(), lp.GetValue()))
	}
	return strings.Join(pairs, ",")
}

func value(m *dto.Metric) float64 {
	switch {
	case m.GetCounter() != nil:
		return m.GetCounter().GetValue()
	case m.GetGauge() != nil:
		return m.GetGauge().GetValue()
	}
	return 0
}
