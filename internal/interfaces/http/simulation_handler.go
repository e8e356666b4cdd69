package http

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/comex-api/internal/application/dto"
	"github.com/jhoicas/comex-api/internal/application/simulation"
	"github.com/jhoicas/comex-api/pkg/logger"
)

// SimulationHandler maneja las simulaciones de costo de importación.
// Cada método recibe el Renderer del formato de salida; nil responde JSON.
type SimulationHandler struct {
	uc  *simulation.UseCase
	log *logger.Logger
}

// NewSimulationHandler construye el handler.
func NewSimulationHandler(uc *simulation.UseCase, log *logger.Logger) *SimulationHandler {
	if log == nil {
		log = logger.Nop()
	}
	return &SimulationHandler{uc: uc, log: log}
}

// Air simula una importación aérea.
// @Summary  Simulación de importación aérea
// @Tags     simulations
// @Accept   json
// @Produce  json
// @Param    body body dto.AirImportRequest true "Entrada"
// @Success  200 {object} dto.CostResponse
// @Failure  400 {object} dto.ErrorResponse
// @Failure  422 {object} dto.ErrorResponse
// @Router   /api/simulations/air [post]
func (h *SimulationHandler) Air(r simulation.Renderer) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in dto.AirImportRequest
		if err := c.BodyParser(&in); err != nil {
			return invalidBody(c, err)
		}
		return h.respond(c, r, func(ctx context.Context) (*dto.CostResponse, error) {
			return h.uc.SimulateAir(ctx, in)
		})
	}
}

// Sea simula una importación marítima.
// @Summary  Simulación de importación marítima
// @Tags     simulations
// @Accept   json
// @Produce  json
// @Param    body body dto.SeaImportRequest true "Entrada"
// @Success  200 {object} dto.CostResponse
// @Failure  400 {object} dto.ErrorResponse
// @Failure  422 {object} dto.ErrorResponse
// @Router   /api/simulations/sea [post]
func (h *SimulationHandler) Sea(r simulation.Renderer) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in dto.SeaImportRequest
		if err := c.BodyParser(&in); err != nil {
			return invalidBody(c, err)
		}
		return h.respond(c, r, func(ctx context.Context) (*dto.CostResponse, error) {
			return h.uc.SimulateSea(ctx, in)
		})
	}
}

// Simplified simula una importación simplificada (courier).
// @Summary  Simulación de importación simplificada
// @Tags     simulations
// @Accept   json
// @Produce  json
// @Param    body body dto.SimplifiedImportRequest true "Entrada"
// @Success  200 {object} dto.CostResponse
// @Failure  400 {object} dto.ErrorResponse
// @Failure  422 {object} dto.ErrorResponse
// @Router   /api/simulations/simplified [post]
func (h *SimulationHandler) Simplified(r simulation.Renderer) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in dto.SimplifiedImportRequest
		if err := c.BodyParser(&in); err != nil {
			return invalidBody(c, err)
		}
		return h.respond(c, r, func(ctx context.Context) (*dto.CostResponse, error) {
			return h.uc.SimulateSimplified(ctx, in)
		})
	}
}

// respond ejecuta el cálculo y responde JSON, o el documento de r si no es nil.
func (h *SimulationHandler) respond(c *fiber.Ctx, r simulation.Renderer, run func(context.Context) (*dto.CostResponse, error)) error {
	res, err := run(c.UserContext())
	if err != nil {
		return writeError(c, h.log, err)
	}
	if r == nil {
		return c.JSON(res)
	}
	doc, err := r.RenderCost(c.UserContext(), res)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return sendDocument(c, r.ContentType(), res.CalculationID, doc)
}

func sendDocument(c *fiber.Ctx, contentType, calculationID string, doc []byte) error {
	c.Set(fiber.HeaderContentType, contentType)
	c.Set("X-Calculation-Id", calculationID)
	return c.Status(fiber.StatusOK).Send(doc)
}
