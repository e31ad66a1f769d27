// Copyright 2024 Deutsche Telekom IT GmbH
//
// SPDX-License-Identifier: Apache-2.0

package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"uptime-warden/internal/check"
	"uptime-warden/internal/utils"
)

var (
	probes        *prometheus.CounterVec
	probeDuration prometheus.Histogram
	cycles        *prometheus.CounterVec
	alerts        *prometheus.CounterVec
	checkState    *prometheus.GaugeVec

	registry *prometheus.Registry
)

const namespace = "warden"

func init() {
	probes = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name:      "probes_total",
		Help:      "The amount of probes by outcome.",
		Namespace: namespace,
	}, []string{"outcome"})

	probeDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:      "probe_duration_seconds",
		Help:      "The time it took for a probe to resolve.",
		Namespace: namespace,
		Buckets:   []float64{.05, .1, .25, .5, 1, 2, 3, 4, 5},
	})

	cycles = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name:      "cycles_total",
		Help:      "The amount of evaluation cycles by result.",
		Namespace: namespace,
	}, []string{"result"})

	alerts = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name:      "alerts_total",
		Help:      "The amount of alerts by delivery status.",
		Namespace: namespace,
	}, []string{"status"})

	checkState = prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name:      "check_up",
		Help:      "Whether a check was up during its last evaluation.",
		Namespace: namespace,
	}, []string{"checkId"})

	registry = prometheus.NewRegistry()
	registry.MustRegister(probes, probeDuration, cycles, alerts, checkState)
}

// Recorder writes engine metrics unless it was created disabled.
type Recorder struct {
	enabled bool
}

func NewRecorder(enabled bool) *Recorder {
	return &Recorder{enabled: enabled}
}

func (r *Recorder) RecordProbe(outcome check.Outcome) {
	if r == nil || !r.enabled {
		return
	}

	label := "response"
	if outcome.TimedOut() {
		label = "timeout"
	} else if outcome.Failed() {
		label = "error"
	}

	probes.WithLabelValues(label).Inc()
	probeDuration.Observe(outcome.Duration.Seconds())
}

func (r *Recorder) RecordCycle(result string) {
	if r == nil || !r.enabled {
		return
	}
	cycles.WithLabelValues(result).Inc()
}

func (r *Recorder) RecordAlert(delivered bool) {
	if r == nil || !r.enabled {
		return
	}
	alerts.WithLabelValues(utils.IfThenElse(delivered, "delivered", "failed")).Inc()
}

func (r *Recorder) RecordState(checkId string, state check.State) {
	if r == nil || !r.enabled {
		return
	}
	checkState.WithLabelValues(checkId).Set(float64(utils.IfThenElse(state == check.StateUp, 1, 0)))
}
