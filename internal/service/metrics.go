package service

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	quotesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "delivery_core",
		Subsystem: "quotes",
		Name:      "total",
		Help:      "Delivery quotes by fee source (provider or fallback formula).",
	}, []string{"source"})

	ordersCreated = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "delivery_core",
		Subsystem: "orders",
		Name:      "created_total",
		Help:      "Total number of orders created.",
	})

	transitionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "delivery_core",
		Subsystem: "orders",
		Name:      "transitions_total",
		Help:      "Order status transitions by target status and result.",
	}, []string{"to", "result"})

	dispatchTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "delivery_core",
		Subsystem: "dispatch",
		Name:      "orders_total",
		Help:      "Dispatch attempts by result.",
	}, []string{"result"})

	webhooksTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "delivery_core",
		Subsystem: "webhooks",
		Name:      "total",
		Help:      "Courier webhooks by processing result.",
	}, []string{"result"})

	resyncsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "delivery_core",
		Subsystem: "webhooks",
		Name:      "resyncs_total",
		Help:      "Manual delivery status resyncs by result.",
	}, []string{"result"})
)
