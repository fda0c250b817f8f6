package courier

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var requestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "delivery_core",
	Subsystem: "courier",
	Name:      "requests_total",
	Help:      "Total number of courier provider API calls by operation and result.",
}, []string{"operation", "result"})
