package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/jhoicas/comex-api/internal/application/dto"
	"github.com/jhoicas/comex-api/internal/application/simulation"
	"github.com/jhoicas/comex-api/pkg/jwt"
	"github.com/jhoicas/comex-api/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	Simulation         *simulation.UseCase
	PDF                simulation.Renderer
	XML                simulation.Renderer
	JWTSecret          string // vacío = API sin autenticación
	RateLimitPerMinute int    // 0 = sin límite
	Logger             *logger.Logger
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	log := deps.Logger
	if log == nil {
		log = logger.Nop()
	}

	var middlewares []fiber.Handler
	if deps.RateLimitPerMinute > 0 {
		middlewares = append(middlewares, limiter.New(limiter.Config{
			Max:        deps.RateLimitPerMinute,
			Expiration: time.Minute,
			LimitReached: func(c *fiber.Ctx) error {
				return c.Status(fiber.StatusTooManyRequests).JSON(dto.ErrorResponse{Code: "RATE_LIMITED", Message: "demasiadas solicitudes, intente más tarde"})
			},
		}))
	}
	// Rutas protegidas (requieren Bearer Token) solo si hay secreto configurado.
	if deps.JWTSecret != "" {
		middlewares = append(middlewares,
			AuthMiddleware(deps.JWTSecret),
			RequireRole(jwt.RoleAnalyst, jwt.RoleAdmin),
		)
	}

	api := app.Group("/api", middlewares...)

	// Simulaciones de importación
	sims := api.Group("/simulations")
	simHandler := NewSimulationHandler(deps.Simulation, log)
	sims.Post("/air", simHandler.Air(nil))
	sims.Post("/sea", simHandler.Sea(nil))
	sims.Post("/simplified", simHandler.Simplified(nil))
	if deps.PDF != nil {
		sims.Post("/air/pdf", simHandler.Air(deps.PDF))
		sims.Post("/sea/pdf", simHandler.Sea(deps.PDF))
		sims.Post("/simplified/pdf", simHandler.Simplified(deps.PDF))
	}
	if deps.XML != nil {
		sims.Post("/air/xml", simHandler.Air(deps.XML))
		sims.Post("/sea/xml", simHandler.Sea(deps.XML))
		sims.Post("/simplified/xml", simHandler.Simplified(deps.XML))
	}

	// Drawback
	dbk := api.Group("/drawback")
	dbkHandler := NewDrawbackHandler(deps.Simulation, log)
	dbk.Post("/evaluate", dbkHandler.Evaluate(nil))
	if deps.PDF != nil {
		dbk.Post("/evaluate/pdf", dbkHandler.Evaluate(deps.PDF))
	}
	if deps.XML != nil {
		dbk.Post("/evaluate/xml", dbkHandler.Evaluate(deps.XML))
	}
	dbk.Get("/rules", dbkHandler.Rules)
}

// RequestLogger registra una línea por petición (método, ruta, estado, latencia, request id).
func RequestLogger(log *logger.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		log.Info().
			Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", c.Response().StatusCode()).
			Dur("latency", time.Since(start)).
			Str("request_id", c.GetRespHeader(fiber.HeaderXRequestID)).
			Msg("http")
		return err
	}
}
