package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/jhoicas/tucontable-api/internal/application/assistant"
	"github.com/jhoicas/tucontable-api/internal/application/auth"
	"github.com/jhoicas/tucontable-api/internal/application/calendar"
	"github.com/jhoicas/tucontable-api/internal/application/clients"
	"github.com/jhoicas/tucontable-api/internal/application/tax"
	"github.com/jhoicas/tucontable-api/pkg/jwt"
)

// RouterDeps dependencias para el router. Un use case nil deja sus rutas sin registrar.
type RouterDeps struct {
	AuthUC      *auth.AuthUseCase
	TaxUC       *tax.UseCase
	ClientUC    *clients.UseCase
	CalendarUC  *calendar.UseCase
	AssistantUC *assistant.UseCase
	JWTSecret   string
	ServiceName string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": deps.ServiceName})
	})
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	api := app.Group("/api")

	// Auth (público salvo el alta de usuarios, que es solo para admin)
	if deps.AuthUC != nil {
		authHandler := NewAuthHandler(deps.AuthUC)
		authGroup := api.Group("/auth")
		authGroup.Post("/register-company", authHandler.RegisterCompany)
		authGroup.Post("/login", authHandler.Login)
		authGroup.Post("/register",
			AuthMiddleware(deps.JWTSecret),
			RequireRole(jwt.RoleAdmin),
			authHandler.Register,
		)
	}

	// Calculadoras tributarias (público)
	if deps.TaxUC != nil {
		taxHandler := NewTaxHandler(deps.TaxUC)
		t := api.Group("/tax")
		t.Get("/rut/validate", taxHandler.ValidarRUT)
		t.Post("/iva/neto-a-bruto", taxHandler.IVANetoABruto)
		t.Post("/iva/bruto-a-neto", taxHandler.IVABrutoANeto)
		t.Post("/iva/extraer", taxHandler.ExtraerIVA)
		t.Post("/retenciones/honorarios", taxHandler.RetencionHonorarios)
		t.Post("/retenciones/construccion", taxHandler.RetencionConstruccion)
		t.Post("/uf/a-pesos", taxHandler.UFAPesos)
		t.Post("/uf/desde-pesos", taxHandler.PesosAUF)
		t.Get("/f29", taxHandler.VencimientoF29)
		t.Get("/sii/estado", taxHandler.ConsultarSII)
		t.Get("/sii/boletas", taxHandler.VerificarBoletas)
	}

	// Rutas protegidas (requieren Bearer Token). El middleware va por grupo para no
	// interceptar rutas públicas ni 404 bajo /api.
	requireAuth := AuthMiddleware(deps.JWTSecret)
	todos := RequireRole(jwt.RoleAdmin, jwt.RoleContador, jwt.RoleAsistente)
	escritura := RequireRole(jwt.RoleAdmin, jwt.RoleContador)

	if deps.ClientUC != nil {
		clientHandler := NewClientHandler(deps.ClientUC)
		cl := api.Group("/clientes", requireAuth)
		cl.Get("/", todos, clientHandler.List)
		cl.Post("/", escritura, clientHandler.Create)
		cl.Get("/:id", todos, clientHandler.Get)
		cl.Put("/:id", escritura, clientHandler.Update)
		cl.Delete("/:id", RequireRole(jwt.RoleAdmin), clientHandler.Delete)
	}

	if deps.CalendarUC != nil {
		calendarHandler := NewCalendarHandler(deps.CalendarUC)
		api.Get("/calendario/f29", requireAuth, todos, calendarHandler.F29)
	}

	if deps.AssistantUC != nil {
		assistantHandler := NewAssistantHandler(deps.AssistantUC)
		api.Post("/asistente/chat", requireAuth, todos, assistantHandler.Chat)
	}
}
