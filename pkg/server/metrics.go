package server

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	requestCount = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "sitter_finder_requests_total",
		Help: "Requests served per handler.",
	}, []string{"handler"})
	searchDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "sitter_finder_search_duration_seconds",
		Help:    "Time spent matching and sorting one search.",
		Buckets: prometheus.ExponentialBuckets(0.0001, 2, 12),
	})
	searchHits = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "sitter_finder_search_hits",
		Help:    "Result size per search.",
		Buckets: prometheus.LinearBuckets(0, 5, 10),
	})
	cacheHits = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "sitter_finder_cache_results_total",
		Help: "Response cache lookups by outcome.",
	}, []string{"outcome"})
)
