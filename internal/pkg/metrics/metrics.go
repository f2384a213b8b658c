package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	CatalogQueriesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "catalog_queries_total",
		Help: "Total number of catalog product queries",
	}, []string{"sort"})

	CatalogQueryDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "catalog_query_duration_seconds",
		Help:    "Latency of catalog product queries",
		Buckets: prometheus.DefBuckets,
	})

	CatalogDegradedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "catalog_degraded_total",
		Help: "Catalog requests that degraded to a partial or empty result",
	}, []string{"stage"})

	VariantLookupFailures = promauto.NewCounter(prometheus.CounterOpts{
		Name: "catalog_variant_lookup_failures_total",
		Help: "Variant-matched id lookups that failed and were skipped",
	})

	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "HTTP request latency",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path", "status"})

	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "Total number of HTTP requests",
	}, []string{"method", "path", "status"})
)
