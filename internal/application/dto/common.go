package dto

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// SuccessResponse respuesta simple para operaciones sin cuerpo propio
// (mantiene el contrato {"success": true} del frontend).
type SuccessResponse struct {
	Success bool `json:"success"`
}
