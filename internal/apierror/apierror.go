// Package apierror provides standardized error response structures for the API.
// All errors returned to clients go through this package to ensure consistency
// and to prevent leaking internal details (stack traces, DB errors, etc.).
package apierror

// APIError is the canonical error envelope for all 4xx/5xx HTTP responses.
type APIError struct {
	Detail string `json:"detail"`
}

func New(msg string) *APIError {
	return &APIError{Detail: msg}
}

// ValidationError wraps multiple field errors from request binding.
type ValidationError struct {
	Detail string            `json:"detail"`
	Fields map[string]string `json:"fields"`
}

func NewValidation(fields map[string]string) *ValidationError {
	return &ValidationError{Detail: "Error de validacion", Fields: fields}
}

// DetalleError identifies a failing sale line: product plus reason.
type DetalleError struct {
	IDProducto string `json:"idProducto"`
	Error      string `json:"error"`
}

// DetallesError is the structured body returned when one or more sale lines
// fail validation. Every failing line is reported, not just the first.
type DetallesError struct {
	Detail  string         `json:"detail"`
	Errores []DetalleError `json:"errores"`
}

func NewDetalles(errores []DetalleError) *DetallesError {
	return &DetallesError{Detail: "Detalles de venta invalidos", Errores: errores}
}
