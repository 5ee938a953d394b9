// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package metrics holds the Prometheus instruments of the HTTP server. All
// instruments live in a private registry exposed through Handler, so tests
// can build as many independent instances as they need.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "travel_journal"

// Metrics holds all Prometheus metrics of the server.
type Metrics struct {
	requestsTotal    *prometheus.CounterVec
	requestDuration  *prometheus.HistogramVec
	requestsInFlight prometheus.Gauge
	panicsTotal      prometheus.Counter

	registry *prometheus.Registry
}

// NewMetrics creates a Metrics instance with its own registry. Go runtime
// and process collectors are registered alongside the HTTP instruments.
func NewMetrics() *Metrics {
	registry := prometheus.NewRegistry()

	m := &Metrics{
		requestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "Total number of HTTP requests by route, method and status code",
			},
			[]string{"route", "method", "status_code"},
		),

		requestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "HTTP request duration in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"route", "method"},
		),

		requestsInFlight: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "http_requests_in_flight",
				Help:      "Number of HTTP requests currently being served",
			},
		),

		panicsTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_panics_total",
				Help:      "Total number of panics recovered while serving HTTP requests",
			},
		),

		registry: registry,
	}

	registry.MustRegister(
		m.requestsTotal,
		m.requestDuration,
		m.requestsInFlight,
		m.panicsTotal,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return m
}

// ObserveRequest records one finished request. An empty route means the
// request matched no route.
func (m *Metrics) ObserveRequest(route, method string, status int, duration time.Duration) {
	if route == "" {
		route = "unmatched"
	}
	m.requestsTotal.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
	m.requestDuration.WithLabelValues(route, method).Observe(duration.Seconds())
}

// RequestStarted increments the in-flight gauge. Every call must be paired
// with RequestFinished.
func (m *Metrics) RequestStarted() {
	m.requestsInFlight.Inc()
}

func (m *Metrics) RequestFinished() {
	m.requestsInFlight.Dec()
}

// RecordPanic counts a recovered panic.
func (m *Metrics) RecordPanic() {
	m.panicsTotal.Inc()
}

// Handler returns the Prometheus exposition handler for the registry.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Registry returns the Prometheus registry.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}
