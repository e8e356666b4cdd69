package dto

// ErrorResponse cuerpo de error HTTP y de la CLI.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Códigos de error expuestos.
const (
	CodeInvalidBody      = "INVALID_BODY"
	CodeValidation       = "VALIDATION"
	CodeInvalidRate      = "INVALID_RATE"
	CodeInvalidQuantity  = "INVALID_QUANTITY"
	CodeUnknownModality  = "UNKNOWN_MODALITY"
	CodeInvalidDateRange = "INVALID_DATE_RANGE"
	CodeInternal         = "INTERNAL"
)
