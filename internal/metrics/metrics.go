// SPDX-License-Identifier: EPL-2.0

package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	SpeechRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "speech_requests_total",
		Help: "Speech requests by outcome",
	}, []string{"outcome"})

	StageDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "speech_stage_duration_seconds",
		Help:    "Per-stage latency",
		Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1.0, 2.0, 5.0, 10.0},
	}, []string{"stage"})

	AudioDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "speech_audio_duration_seconds",
		Help:    "Length of decoded speech",
		Buckets: []float64{0.5, 1, 2, 5, 10, 30, 60},
	})

	TruncatedBytes = promauto.NewCounter(prometheus.CounterOpts{
		Name: "speech_pcm_truncated_bytes_total",
		Help: "Trailing PCM bytes dropped for not completing a frame",
	})
)
