package dto

import "time"

// RegisterMovementRequest body para POST /api/movements.
// Fecha y productoNombre los asigna el servidor; el id es opcional (se genera
// un UUID si el cliente no lo envía).
type RegisterMovementRequest struct {
	ID         string `json:"id"`
	ProductoID string `json:"productoId" validate:"required"`
	Tipo       string `json:"tipo" validate:"required,oneof=Entrada Salida"`
	Cantidad   int    `json:"cantidad" validate:"required,gt=0"`
	Motivo     string `json:"motivo" validate:"max=500"`
	Usuario    string `json:"usuario" validate:"max=200"`
}

// MovementResponse salida de un movimiento del libro.
type MovementResponse struct {
	ID             string    `json:"id"`
	Fecha          time.Time `json:"fecha"`
	ProductoID     string    `json:"productoId"`
	ProductoNombre string    `json:"productoNombre"`
	Tipo           string    `json:"tipo"`
	Cantidad       int       `json:"cantidad"`
	Motivo         string    `json:"motivo"`
	Usuario        string    `json:"usuario"`
}
