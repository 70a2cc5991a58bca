// Copyright (c) 2025 github.com/kslamph
//
// Permission is hereby granted, free of charge, to any person obtaining a copy of
// this software and associated documentation files (the "Software"), to deal in
// the Software without restriction, including without limitation the rights to
// use, copy, modify, merge, publish, distribute, sublicense, and/or sell copies of
// the Software, and to permit persons to whom the Software is furnished to do so,
// subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY, FITNESS
// FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE AUTHORS OR
// COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER LIABILITY, WHETHER
// IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM, OUT OF OR IN
// CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE SOFTWARE.

// Package metrics exposes the Prometheus counters chainwatch serves
// on its /metrics endpoint.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds every counter/gauge chainwatch records. Construct one
// with New and share it across the subscription and decode pipeline.
type Metrics struct {
	LogsReceived   prometheus.Counter
	EventsDecoded  *prometheus.CounterVec
	DecodeErrors   *prometheus.CounterVec
	Reconnects     prometheus.Counter
	ActiveSubs     prometheus.Gauge
	DecodeDuration prometheus.Histogram
}

// New registers and returns a fresh Metrics against the default
// Prometheus registry.
func New() *Metrics {
	return &Metrics{
		LogsReceived: promauto.NewCounter(prometheus.CounterOpts{
			Name: "chainwatch_logs_received_total",
			Help: "Total number of raw logs received from the subscription.",
		}),
		EventsDecoded: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "chainwatch_events_decoded_total",
			Help: "Total number of logs successfully decoded, by event name.",
		}, []string{"event"}),
		DecodeErrors: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "chainwatch_decode_errors_total",
			Help: "Total number of logs that failed to decode, by reason.",
		}, []string{"reason"}),
		Reconnects: promauto.NewCounter(prometheus.CounterOpts{
			Name: "chainwatch_reconnects_total",
			Help: "Total number of websocket connections established, including the initial one.",
		}),
		ActiveSubs: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "chainwatch_active_subscriptions",
			Help: "Number of currently active contract subscriptions.",
		}),
		DecodeDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "chainwatch_decode_duration_seconds",
			Help:    "Time spent decoding a single log.",
			Buckets: prometheus.DefBuckets,
		}),
	}
}

// Handler returns the standard Prometheus scrape handler.
func Handler() http.Handler {
	return promhttp.Handler()
}
