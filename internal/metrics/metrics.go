package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	RequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total HTTP requests",
		},
		[]string{"route", "method", "status"},
	)
	RequestLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_latency_seconds",
			Help:    "Latency of HTTP requests",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"route", "method"},
	)
	AuthFailures = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "auth_failures_total",
			Help: "Total rejected chatroom mutations",
		},
	)
	AccountsCreated = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "accounts_created_total",
			Help: "Total accounts registered",
		},
	)
	ChatRoomsCreated = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "chatrooms_created_total",
			Help: "Total chatrooms created",
		},
	)
)

// Handler serves the /metrics endpoint.
var Handler = promhttp.Handler

func Init() {
	prometheus.MustRegister(
		RequestsTotal,
		RequestLatency,
		AuthFailures,
		AccountsCreated,
		ChatRoomsCreated,
	)
}
