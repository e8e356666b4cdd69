package domain

import "errors"

// Errores de dominio (sin dependencias externas).
// Todos son fallos de validación deterministas: se rechazan antes de calcular y no se reintentan.
var (
	ErrInvalidInput     = errors.New("entrada inválida")
	ErrInvalidRate      = errors.New("alícuota inválida")
	ErrInvalidQuantity  = errors.New("cantidad inválida")
	ErrInvalidDivisor   = errors.New("divisor volumétrico inválido")
	ErrUnknownModality  = errors.New("modalidad de drawback desconocida")
	ErrInvalidDateRange = errors.New("rango de fechas inválido")
)

// IsValidation indica si err es (o envuelve) un error de validación de entrada.
func IsValidation(err error) bool {
	return errors.Is(err, ErrInvalidInput) ||
		errors.Is(err, ErrInvalidRate) ||
		errors.Is(err, ErrInvalidQuantity) ||
		errors.Is(err, ErrInvalidDivisor) ||
		errors.Is(err, ErrUnknownModality) ||
		errors.Is(err, ErrInvalidDateRange)
}
