// Package metrics expone las métricas Prometheus de la API.
package metrics

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	metricPrefix = "tucontable_"

	ResultOK    = "ok"
	ResultFail  = "fallido"
	ResultError = "error"
)

var (
	registerOnce sync.Once

	calculationsTotal *prometheus.CounterVec

	ufLookupsTotal  *prometheus.CounterVec
	ufLookupLatency *prometheus.HistogramVec

	assistantCommandsTotal *prometheus.CounterVec
	assistantChatLatency   *prometheus.HistogramVec

	exportTotal *prometheus.CounterVec

	httpRequestsTotal  *prometheus.CounterVec
	httpRequestLatency *prometheus.HistogramVec
)

// Init registra las métricas en el registro por defecto. Es idempotente.
// pool puede ser nil (sin base de datos no se exponen las métricas del pool).
func Init(pool PoolStatter) {
	registerOnce.Do(func() {
		calculationsTotal = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "calculations_total",
				Help: "Cálculos tributarios por operación y resultado",
			},
			[]string{"operacion", "resultado"},
		)
		ufLookupsTotal = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "uf_lookups_total",
				Help: "Consultas del valor UF por fuente y resultado",
			},
			[]string{"fuente", "resultado"},
		)
		ufLookupLatency = prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    metricPrefix + "uf_lookup_seconds",
				Help:    "Latencia de la consulta del valor UF",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"fuente"},
		)
		assistantCommandsTotal = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "assistant_commands_total",
				Help: "Comandos ejecutados por el asistente",
			},
			[]string{"comando", "resultado"},
		)
		assistantChatLatency = prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    metricPrefix + "assistant_chat_seconds",
				Help:    "Latencia de una vuelta de chat con el modelo",
				Buckets: []float64{0.5, 1, 2, 5, 10, 20, 30, 60},
			},
			[]string{"resultado"},
		)
		exportTotal = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "calendar_exports_total",
				Help: "Exportaciones del calendario F29 por formato",
			},
			[]string{"formato", "resultado"},
		)
		httpRequestsTotal = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "http_requests_total",
				Help: "Peticiones HTTP por método, ruta y status",
			},
			[]string{"method", "route", "status"},
		)
		httpRequestLatency = prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    metricPrefix + "http_request_seconds",
				Help:    "Latencia de las peticiones HTTP",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		)

		prometheus.MustRegister(
			calculationsTotal,
			ufLookupsTotal,
			ufLookupLatency,
			assistantCommandsTotal,
			assistantChatLatency,
			exportTotal,
			httpRequestsTotal,
			httpRequestLatency,
		)
		if pool != nil {
			registerPoolMetrics(pool)
		}
	})
}

// Resultado traduce un flag de éxito a la etiqueta de resultado.
func Resultado(ok bool) string {
	if ok {
		return ResultOK
	}
	return ResultFail
}

// IncCalculation cuenta un cálculo del paquete sii.
func IncCalculation(operacion string, ok bool) {
	if calculationsTotal != nil {
		calculationsTotal.WithLabelValues(operacion, Resultado(ok)).Inc()
	}
}

// ObserveUFLookup registra una consulta a la fuente UF.
func ObserveUFLookup(fuente string, err error, duration time.Duration) {
	result := ResultOK
	if err != nil {
		result = ResultError
	}
	if ufLookupsTotal != nil {
		ufLookupsTotal.WithLabelValues(fuente, result).Inc()
	}
	if ufLookupLatency != nil {
		ufLookupLatency.WithLabelValues(fuente).Observe(duration.Seconds())
	}
}

// IncAssistantCommand cuenta un comando del asistente.
func IncAssistantCommand(comando string, ok bool) {
	if assistantCommandsTotal != nil {
		assistantCommandsTotal.WithLabelValues(comando, Resultado(ok)).Inc()
	}
}

// ObserveAssistantChat registra la duración de una llamada al modelo.
func ObserveAssistantChat(err error, duration time.Duration) {
	result := ResultOK
	if err != nil {
		result = ResultError
	}
	if assistantChatLatency != nil {
		assistantChatLatency.WithLabelValues(result).Observe(duration.Seconds())
	}
}

// IncExport cuenta una exportación del calendario.
func IncExport(formato string, err error) {
	result := ResultOK
	if err != nil {
		result = ResultError
	}
	if exportTotal != nil {
		exportTotal.WithLabelValues(formato, result).Inc()
	}
}

// ObserveHTTPRequest registra una petición HTTP ya respondida.
func ObserveHTTPRequest(method, route, status string, duration time.Duration) {
	if httpRequestsTotal != nil {
		httpRequestsTotal.WithLabelValues(method, route, status).Inc()
	}
	if httpRequestLatency != nil {
		httpRequestLatency.WithLabelValues(method, route).Observe(duration.Seconds())
	}
}
