// @title                       TuContable API
// @version                     1.0
// @description                 Cálculos tributarios chilenos (RUT, IVA, retenciones, UF, F29), cartera de clientes y asistente contable.
// @BasePath                    /
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	_ "github.com/jhoicas/tucontable-api/docs"
	"github.com/jhoicas/tucontable-api/internal/application/assistant"
	"github.com/jhoicas/tucontable-api/internal/application/auth"
	"github.com/jhoicas/tucontable-api/internal/application/calendar"
	"github.com/jhoicas/tucontable-api/internal/application/clients"
	"github.com/jhoicas/tucontable-api/internal/application/tax"
	infraai "github.com/jhoicas/tucontable-api/internal/infrastructure/ai"
	infrapdf "github.com/jhoicas/tucontable-api/internal/infrastructure/pdf"
	"github.com/jhoicas/tucontable-api/internal/infrastructure/postgres"
	siireg "github.com/jhoicas/tucontable-api/internal/infrastructure/sii"
	"github.com/jhoicas/tucontable-api/internal/infrastructure/uf"
	infraxlsx "github.com/jhoicas/tucontable-api/internal/infrastructure/xlsx"
	httpRouter "github.com/jhoicas/tucontable-api/internal/interfaces/http"
	"github.com/jhoicas/tucontable-api/internal/observability/metrics"
	"github.com/jhoicas/tucontable-api/pkg/config"
	"github.com/jhoicas/tucontable-api/pkg/logger"
	"github.com/jhoicas/tucontable-api/pkg/sii"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("uf_provider", cfg.UF.Provider).
		Str("sii_registry", cfg.SII.Registry).
		Msg("iniciando aplicación")

	if cfg.JWT.Secret == "" {
		log.Fatal().Msg("JWT_SECRET es requerido")
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	if err := postgres.Migrate(ctx, pool); err != nil {
		log.Fatal().Err(err).Msg("migraciones")
	}
	metrics.Init(pool)

	loc, err := time.LoadLocation(cfg.App.TimeZone)
	if err != nil {
		log.Warn().Err(err).Str("zona", cfg.App.TimeZone).Msg("zona horaria no disponible, se usa la de Chile")
		loc = sii.CargarZonaChile()
	}

	companyRepo := postgres.NewCompanyRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	clientRepo := postgres.NewClientRepository(pool)
	ufRepo := postgres.NewUFValueRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	// UF: fuente configurada -> métricas -> uf_values -> caché en memoria
	rates, err := uf.NewProvider(cfg.UF, ufRepo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("provider UF")
	}
	conversor := sii.NewConversorUF(rates,
		sii.WithLocation(loc),
		sii.WithTimeout(cfg.UF.Timeout),
		sii.WithFuente(cfg.UF.Provider),
	)
	calendario := sii.NewCalendarioF29(sii.CalendarioConZona(loc))
	registro := siireg.NewRegistry(cfg.SII.Registry)

	taxUC := tax.NewUseCase(conversor, calendario, registro, nil, log)
	clientUC := clients.NewUseCase(clientRepo, log)
	calendarUC := calendar.NewUseCase(clientUC, companyRepo, calendario, log,
		infrapdf.NewCalendarPDF(),
		infraxlsx.NewCalendarXLSX(),
	)

	anthropicSvc := infraai.NewAnthropicService(cfg.AI.AnthropicAPIKey, cfg.AI.AnthropicModel)
	assistantUC := assistant.NewUseCase(anthropicSvc,
		assistant.NewDispatcher(taxUC, clientUC, log),
		clientUC, cfg.AI.Timeout, log,
	)

	authUC := auth.NewAuthUseCase(userRepo, companyRepo, txRunner, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	}, log)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: cfg.AI.Timeout + 5*time.Second,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(httpRouter.RequestObserver(log))

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "TuContable API",
	}))

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:      authUC,
		TaxUC:       taxUC,
		ClientUC:    clientUC,
		CalendarUC:  calendarUC,
		AssistantUC: assistantUC,
		JWTSecret:   cfg.JWT.Secret,
		ServiceName: cfg.App.Name,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
