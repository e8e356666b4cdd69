package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/comex-api/internal/application/dto"
	"github.com/jhoicas/comex-api/internal/application/simulation"
	"github.com/jhoicas/comex-api/internal/domain"
	"github.com/jhoicas/comex-api/pkg/logger"
)

// writeError: 422 para validación (mensaje con todos los campos), 500 para el resto.
func writeError(c *fiber.Ctx, log *logger.Logger, err error) error {
	if domain.IsValidation(err) {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{Code: simulation.ErrorCode(err), Message: err.Error()})
	}
	log.Error().Err(err).Str("path", c.Path()).Msg("error interno")
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: dto.CodeInternal, Message: "error interno"})
}

func invalidBody(c *fiber.Ctx, err error) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: dto.CodeInvalidBody, Message: "cuerpo inválido: " + err.Error()})
}
