package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	HTTPRequests = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "classcompanion", Name: "http_requests_total", Help: "Handled HTTP requests",
	}, []string{"method", "status"})
	HTTPDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: "classcompanion", Name: "http_request_seconds", Help: "HTTP request latency",
		Buckets: prometheus.DefBuckets,
	})
	Uploads = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "classcompanion", Name: "uploads_total", Help: "Accepted file uploads",
	})
)

func init() {
	prometheus.MustRegister(HTTPRequests, HTTPDuration, Uploads)
}

func Handler() http.Handler { return promhttp.Handler() }

func ObserveRequest(method string, status int, d time.Duration) {
	HTTPRequests.WithLabelValues(method, strconv.Itoa(status)).Inc()
	HTTPDuration.Observe(d.Seconds())
}
