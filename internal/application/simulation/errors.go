package simulation

import (
	"errors"

	"github.com/jhoicas/comex-api/internal/application/dto"
	"github.com/jhoicas/comex-api/internal/domain"
)

// ErrorCode traduce un error de validación a su código público.
// Con errores agregados gana el primero de la lista; un error que no es de validación da INTERNAL.
func ErrorCode(err error) string {
	switch {
	case errors.Is(err, domain.ErrInvalidRate):
		return dto.CodeInvalidRate
	case errors.Is(err, domain.ErrInvalidQuantity), errors.Is(err, domain.ErrInvalidDivisor):
		return dto.CodeInvalidQuantity
	case errors.Is(err, domain.ErrUnknownModality):
		return dto.CodeUnknownModality
	case errors.Is(err, domain.ErrInvalidDateRange):
		return dto.CodeInvalidDateRange
	case domain.IsValidation(err):
		return dto.CodeValidation
	default:
		return dto.CodeInternal
	}
}
