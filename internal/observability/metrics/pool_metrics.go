package metrics

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
)

// PoolStatter es lo que se necesita del pool de pgx para exponer sus gauges.
type PoolStatter interface {
	Stat() *pgxpool.Stat
}

func registerPoolMetrics(pool PoolStatter) {
	prometheus.MustRegister(prometheus.NewGaugeFunc(
		prometheus.GaugeOpts{
			Name: metricPrefix + "db_pool_acquired_conns",
			Help: "Conexiones del pool en uso",
		},
		func() float64 { return float64(pool.Stat().AcquiredConns()) },
	))
	prometheus.MustRegister(prometheus.NewGaugeFunc(
		prometheus.GaugeOpts{
			Name: metricPrefix + "db_pool_total_conns",
			Help: "Conexiones abiertas en el pool",
		},
		func() float64 { return float64(pool.Stat().TotalConns()) },
	))
}
