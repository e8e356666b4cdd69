package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/comex-api/internal/application/dto"
	"github.com/jhoicas/comex-api/internal/application/simulation"
	"github.com/jhoicas/comex-api/pkg/logger"
)

// DrawbackHandler maneja la evaluación del régimen de drawback.
type DrawbackHandler struct {
	uc  *simulation.UseCase
	log *logger.Logger
}

// NewDrawbackHandler construye el handler.
func NewDrawbackHandler(uc *simulation.UseCase, log *logger.Logger) *DrawbackHandler {
	if log == nil {
		log = logger.Nop()
	}
	return &DrawbackHandler{uc: uc, log: log}
}

// Evaluate evalúa un acto concesorio. Con r no nil responde el documento renderizado.
// @Summary  Evaluación de drawback
// @Tags     drawback
// @Accept   json
// @Produce  json
// @Param    body body dto.DrawbackRequest true "Acto y movimiento"
// @Success  200 {object} dto.DrawbackResponse
// @Failure  400 {object} dto.ErrorResponse
// @Failure  422 {object} dto.ErrorResponse
// @Router   /api/drawback/evaluate [post]
func (h *DrawbackHandler) Evaluate(r simulation.Renderer) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in dto.DrawbackRequest
		if err := c.BodyParser(&in); err != nil {
			return invalidBody(c, err)
		}
		res, err := h.uc.EvaluateDrawback(c.UserContext(), in)
		if err != nil {
			return writeError(c, h.log, err)
		}
		if r == nil {
			return c.JSON(res)
		}
		doc, err := r.RenderDrawback(c.UserContext(), res)
		if err != nil {
			return writeError(c, h.log, err)
		}
		return sendDocument(c, r.ContentType(), res.CalculationID, doc)
	}
}

// Rules devuelve la tabla modalidad → tributos activa.
// @Summary  Tabla de reglas de drawback
// @Tags     drawback
// @Produce  json
// @Success  200 {object} dto.RulesResponse
// @Router   /api/drawback/rules [get]
func (h *DrawbackHandler) Rules(c *fiber.Ctx) error {
	return c.JSON(h.uc.Rules())
}
