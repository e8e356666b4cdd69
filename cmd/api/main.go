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
	"github.com/gofiber/fiber/v2/middleware/requestid"
	_ "github.com/jhoicas/comex-api/docs" // swagger docs
	"github.com/jhoicas/comex-api/internal/application/simulation"
	"github.com/jhoicas/comex-api/internal/domain/drawback"
	infracache "github.com/jhoicas/comex-api/internal/infrastructure/cache"
	infrapdf "github.com/jhoicas/comex-api/internal/infrastructure/pdf"
	"github.com/jhoicas/comex-api/internal/infrastructure/xmlmemo"
	httpRouter "github.com/jhoicas/comex-api/internal/interfaces/http"
	"github.com/jhoicas/comex-api/pkg/config"
	"github.com/jhoicas/comex-api/pkg/logger"
)

// @title           Comex API
// @version         1.0
// @description     Simulación de costo de importación y evaluación de regímenes de drawback.
// @host            localhost:8080
// @BasePath        /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
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
		Msg("iniciando aplicación")

	// Tabla de reglas de drawback: se valida al arrancar, una tabla inválida detiene el proceso.
	rules, err := drawback.RuleTableFromConfig(cfg.Drawback.Rules)
	if err != nil {
		log.Fatal().Err(err).Msg("DRAWBACK_RULES inválido")
	}
	log.Info().Str("drawback_rules", rules.String()).Msg("tabla de drawback activa")

	ctx := context.Background()
	opts := []simulation.Option{simulation.WithLogger(log)}
	switch cfg.Cache.Driver {
	case config.CacheMemory:
		opts = append(opts, simulation.WithCache(infracache.NewMemoryCache(), cfg.Cache.TTL))
	case config.CacheRedis:
		rc, err := infracache.NewRedisCache(ctx, infracache.RedisOptions{
			Addr:     cfg.Cache.RedisAddr,
			Password: cfg.Cache.RedisPassword,
			DB:       cfg.Cache.RedisDB,
		})
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a Redis")
		}
		defer rc.Close()
		opts = append(opts, simulation.WithCache(rc, cfg.Cache.TTL))
	}
	log.Info().Str("cache", cfg.Cache.Driver).Dur("ttl", cfg.Cache.TTL).Msg("memoización configurada")

	simUC := simulation.NewUseCase(rules, opts...)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(httpRouter.RequestLogger(log))

	// Swagger UI en local: http://localhost:<port>/docs
	if _, err := os.Stat(cfg.HTTP.SwaggerFile); err == nil {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: cfg.HTTP.SwaggerFile,
			Path:     "docs",
			Title:    "Comex API",
		}))
	} else {
		log.Warn().Str("file", cfg.HTTP.SwaggerFile).Msg("swagger deshabilitado: archivo no encontrado")
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	if !cfg.JWT.Enabled() {
		log.Warn().Msg("JWT_SECRET vacío: API sin autenticación")
	}
	httpRouter.Router(app, httpRouter.RouterDeps{
		Simulation:         simUC,
		PDF:                infrapdf.NewMarotoPDFGenerator(cfg.App.Name),
		XML:                xmlmemo.NewRenderer(),
		JWTSecret:          cfg.JWT.Secret,
		RateLimitPerMinute: cfg.HTTP.RateLimitPerMinute,
		Logger:             log,
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
