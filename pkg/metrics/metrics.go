package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	StoreInserts = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "huts", Name: "store_inserts_total", Help: "Number of documents inserted, by collection."},
		[]string{"collection"},
	)
	StoreQueries = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "huts", Name: "store_queries_total", Help: "Number of find operations, by collection."},
		[]string{"collection"},
	)
	SeededDocuments = prometheus.NewCounter(
		prometheus.CounterOpts{Namespace: "huts", Name: "seeded_documents_total", Help: "Number of sample documents inserted at startup."},
	)
)

func RegisterCollectors(reg prometheus.Registerer) {
	reg.MustRegister(StoreInserts)
	reg.MustRegister(StoreQueries)
	reg.MustRegister(SeededDocuments)
}
