package http

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/tucontable-api/internal/observability/metrics"
	"github.com/jhoicas/tucontable-api/pkg/logger"
)

// RequestObserver registra cada request en el log estructurado y en las métricas HTTP.
// La etiqueta de ruta usa el patrón registrado (/api/clientes/:id), no la URL concreta.
func RequestObserver(log *logger.Logger) fiber.Handler {
	if log == nil {
		log = logger.Nop()
	}
	log = log.Component("http")
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		if err != nil {
			// Deja que el ErrorHandler de la app fije el status antes de medir.
			if herr := c.App().ErrorHandler(c, err); herr != nil {
				_ = c.SendStatus(fiber.StatusInternalServerError)
			}
		}
		elapsed := time.Since(start)
		status := c.Response().StatusCode()

		route := c.Route().Path
		if route == "" || route == "/" {
			route = "unmatched"
		}
		metrics.ObserveHTTPRequest(c.Method(), route, strconv.Itoa(status), elapsed)

		ev := log.Info()
		if status >= fiber.StatusInternalServerError {
			ev = log.Error()
		}
		ev.Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", status).
			Dur("duracion", elapsed).
			Str("company_id", GetCompanyID(c)).
			Msg("request")
		return nil
	}
}
